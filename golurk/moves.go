package golurk

import (
	"slices"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

// PP Up bookkeeping: two bits per move slot inside FIELD_PP_BONUSES
var (
	ppUpGetMask = [MAX_MON_MOVES]uint8{0x03, 0x0c, 0x30, 0xc0}
	ppUpSetMask = [MAX_MON_MOVES]uint8{0xfc, 0xf3, 0xcf, 0x3f}
	ppUpAddMask = [MAX_MON_MOVES]uint8{0x01, 0x04, 0x10, 0x40}
)

var moveLogger = func() logr.Logger {
	return internalLogger.WithName("moves")
}

// CalculatePPWithBonus returns the max PP of move in slot moveIndex, each PP Up adding 20% of base
func CalculatePPWithBonus(move uint16, ppBonuses uint8, moveIndex uint8) uint8 {
	basePP := uint32(GlobalData.GetMove(move).PP)
	ups := uint32((ppUpGetMask[moveIndex] & ppBonuses) >> (2 * moveIndex))
	return uint8(basePP + basePP*20*ups/100)
}

func RemovePPBonus(mon *Pokemon, moveIndex uint8) {
	bonuses := uint8(mon.Get(FIELD_PP_BONUSES))
	mon.Set(FIELD_PP_BONUSES, uint32(bonuses&ppUpSetMask[moveIndex]))
}

// RestorePP refills every known move to its max PP
func RestorePP(box *BoxMon) {
	for i := range uint8(MAX_MON_MOVES) {
		move := uint16(box.Get(MOVE_FIELDS[i]))
		if move == MOVE_NONE {
			continue
		}

		bonuses := uint8(box.Get(FIELD_PP_BONUSES))
		box.Set(PP_FIELDS[i], uint32(CalculatePPWithBonus(move, bonuses, i)))
	}
}

// GiveMove puts move in the first empty slot with its base PP.
// Returns the move, MON_ALREADY_KNOWS_MOVE or MON_HAS_MAX_MOVES.
func GiveMove(box *BoxMon, move uint16) uint16 {
	for i := range MAX_MON_MOVES {
		existing := uint16(box.Get(MOVE_FIELDS[i]))
		if existing == MOVE_NONE {
			box.Set(MOVE_FIELDS[i], uint32(move))
			box.Set(PP_FIELDS[i], uint32(GlobalData.GetMove(move).PP))
			return move
		}
		if existing == move {
			return MON_ALREADY_KNOWS_MOVE
		}
	}

	return MON_HAS_MAX_MOVES
}

// SetMoveSlot overwrites a slot with move at its base PP. The PP bonus bits are left alone.
func SetMoveSlot(box *BoxMon, move uint16, slot uint8) {
	if slot >= MAX_MON_MOVES {
		return
	}

	box.Set(MOVE_FIELDS[slot], uint32(move))
	box.Set(PP_FIELDS[slot], uint32(GlobalData.GetMove(move).PP))
}

// DeleteFirstMoveAndGiveMove drops slot 0, shifts the rest down and puts move in the last slot.
// The PP bonus bits shift with their moves, the new move starts without bonuses.
func DeleteFirstMoveAndGiveMove(box *BoxMon, move uint16) {
	var moves [MAX_MON_MOVES]uint32
	var pp [MAX_MON_MOVES]uint32

	for i := range MAX_MON_MOVES - 1 {
		moves[i] = box.Get(MOVE_FIELDS[i+1])
		pp[i] = box.Get(PP_FIELDS[i+1])
	}

	bonuses := uint8(box.Get(FIELD_PP_BONUSES)) >> 2
	moves[MAX_MON_MOVES-1] = uint32(move)
	pp[MAX_MON_MOVES-1] = uint32(GlobalData.GetMove(move).PP)

	for i := range MAX_MON_MOVES {
		box.Set(MOVE_FIELDS[i], moves[i])
		box.Set(PP_FIELDS[i], pp[i])
	}
	box.Set(FIELD_PP_BONUSES, uint32(bonuses))
}

// GiveInitialMoveset teaches every level up move up to the current level in learnset order,
// pushing out the oldest move once all slots are used.
func GiveInitialMoveset(box *BoxMon) {
	species := uint16(box.Get(FIELD_SPECIES))
	level := GetLevelFromBoxMonExp(box)

	for _, entry := range GlobalData.GetLevelUpLearnset(species) {
		if entry.Level > level {
			break
		}

		if GiveMove(box, entry.Move) == MON_HAS_MAX_MOVES {
			DeleteFirstMoveAndGiveMove(box, entry.Move)
		}
	}

	moveLogger().V(1).Info("gave initial moveset", "species", species, "level", level)
}

// MoveLearner walks one creature's level up learnset, offering the moves of its current
// level one at a time. It holds a cursor, so use one learner per creature per level up.
type MoveLearner struct {
	mon         *Pokemon
	cursor      int
	moveToLearn uint16
}

func NewMoveLearner(mon *Pokemon) *MoveLearner {
	return &MoveLearner{mon: mon}
}

// Next offers the next move of the creature's current level. firstMove restarts the scan.
// Returns the learned move, MON_ALREADY_KNOWS_MOVE, MON_HAS_MAX_MOVES (the move is then
// available from MoveToLearn for a replace prompt) or MOVE_NONE when the level has nothing left.
func (l *MoveLearner) Next(firstMove bool) uint16 {
	learnset := GlobalData.GetLevelUpLearnset(l.mon.Species())
	level := l.mon.Level

	if firstMove {
		l.cursor = 0
		for l.cursor < len(learnset) && learnset[l.cursor].Level != level {
			l.cursor++
		}
	}

	if l.cursor >= len(learnset) || learnset[l.cursor].Level != level {
		return MOVE_NONE
	}

	l.moveToLearn = learnset[l.cursor].Move
	l.cursor++
	return GiveMove(&l.mon.Box, l.moveToLearn)
}

// MoveToLearn is the move offered by the last call to Next
func (l *MoveLearner) MoveToLearn() uint16 {
	return l.moveToLearn
}

// GetLevelUpMovesBySpecies lists every level up move of species in learnset order
func GetLevelUpMovesBySpecies(species uint16) []uint16 {
	return lo.Map(GlobalData.GetLevelUpLearnset(species), func(e LevelUpMove, _ int) uint16 {
		return e.Move
	})
}

func knownMoves(mon *Pokemon) []uint16 {
	return lo.Map(MOVE_FIELDS[:], func(f Field, _ int) uint16 {
		return uint16(mon.Get(f))
	})
}

// GetRelearnableMoves lists the level up moves at or below the current level that the
// creature does not know, without duplicates, in learnset order.
func GetRelearnableMoves(mon *Pokemon) []uint16 {
	known := knownMoves(mon)
	moves := make([]uint16, 0)

	for _, entry := range GlobalData.GetLevelUpLearnset(mon.Species()) {
		if entry.Level > mon.Level {
			continue
		}
		if slices.Contains(known, entry.Move) || slices.Contains(moves, entry.Move) {
			continue
		}
		moves = append(moves, entry.Move)
	}

	return moves
}

// GetNumberOfRelearnableMoves is len(GetRelearnableMoves) except that eggs have none
func GetNumberOfRelearnableMoves(mon *Pokemon) int {
	if mon.Get(FIELD_SPECIES2) == SPECIES_EGG {
		return 0
	}

	return len(GetRelearnableMoves(mon))
}

// CanSpeciesLearnTMHM reports whether species can use machine tm (tm01 = 0, hm01 = 50)
func CanSpeciesLearnTMHM(species uint16, tm uint8) bool {
	if species == SPECIES_EGG || int(tm) >= NUM_TMHMS {
		return false
	}

	return GlobalData.tmhmMask(species)&(1<<tm) != 0
}

func CanLearnTMHM(mon *Pokemon, tm uint8) bool {
	return CanSpeciesLearnTMHM(uint16(mon.Get(FIELD_SPECIES2)), tm)
}
