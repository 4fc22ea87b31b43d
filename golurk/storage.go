package golurk

// BoxStorage is the PC: TOTAL_BOXES_COUNT boxes of IN_BOX_COUNT storable records.
type BoxStorage struct {
	Boxes [TOTAL_BOXES_COUNT][IN_BOX_COUNT]BoxMon

	// Box the player has open, where SendMonToPC starts looking
	CurrentBox uint8
	// Where the last creature sent to the PC landed
	LastBox, LastPos uint8
}

func NewBoxStorage() *BoxStorage {
	pc := &BoxStorage{}
	for b := range pc.Boxes {
		for i := range pc.Boxes[b] {
			pc.Boxes[b][i].Zero()
		}
	}
	return pc
}

func (s *BoxStorage) At(box uint8, pos uint8) *BoxMon {
	return &s.Boxes[box][pos]
}

// IsFull reports whether every slot of every box is taken
func (s *BoxStorage) IsFull() bool {
	for b := range s.Boxes {
		for i := range s.Boxes[b] {
			if !s.Boxes[b][i].HasSpecies() {
				return false
			}
		}
	}

	return true
}

// Count returns the number of occupied slots in box
func (s *BoxStorage) Count(box uint8) int {
	count := 0
	for i := range s.Boxes[box] {
		if s.Boxes[box][i].HasSpecies() {
			count++
		}
	}
	return count
}

// SendMonToPC restores mon's PP and stores it in the first empty slot, scanning from the current box
// and wrapping around. Returns MON_CANT_GIVE when every box is full.
func SendMonToPC(mon *Pokemon, pc *BoxStorage) uint8 {
	boxNo := pc.CurrentBox % TOTAL_BOXES_COUNT

	for {
		for pos := range uint8(IN_BOX_COUNT) {
			slot := &pc.Boxes[boxNo][pos]
			if slot.HasSpecies() {
				continue
			}

			RestorePP(&mon.Box)
			*slot = mon.Box
			pc.LastBox, pc.LastPos = boxNo, pos
			return MON_GIVEN_TO_PC
		}

		boxNo = (boxNo + 1) % TOTAL_BOXES_COUNT
		if boxNo == pc.CurrentBox%TOTAL_BOXES_COUNT {
			return MON_CANT_GIVE
		}
	}
}
