package golurk

import (
	"encoding/binary"
	"errors"
)

// PARTY_MON_SIZE is the box record followed by 20 bytes of runtime values
const PARTY_MON_SIZE = BOX_MON_SIZE + 20

var ErrInvalidPartyMonSize = errors.New("party mon records are exactly 100 bytes")

// Pokemon is the party form of a creature: the storable BoxMon plus the
// runtime values that are recomputed whenever it is loaded into a party.
type Pokemon struct {
	Box BoxMon

	Status    uint32
	Level     uint8
	Mail      uint8
	HP        uint16
	MaxHP     uint16
	Attack    uint16
	Defense   uint16
	Speed     uint16
	SpAttack  uint16
	SpDefense uint16

	// HP gained by the last stat recalculation, used by items that heal by the level-up amount
	LevelUpHP uint16
}

// Get reads a party-only field directly and defers everything else to the box record.
func (p *Pokemon) Get(field Field) uint32 {
	switch field {
	case FIELD_STATUS:
		return p.Status
	case FIELD_LEVEL:
		return uint32(p.Level)
	case FIELD_HP:
		return uint32(p.HP)
	case FIELD_MAX_HP:
		return uint32(p.MaxHP)
	case FIELD_ATK:
		return uint32(p.Attack)
	case FIELD_DEF:
		return uint32(p.Defense)
	case FIELD_SPEED:
		return uint32(p.Speed)
	case FIELD_SPATK:
		return uint32(p.SpAttack)
	case FIELD_SPDEF:
		return uint32(p.SpDefense)
	case FIELD_MAIL:
		return uint32(p.Mail)
	}

	return p.Box.Get(field)
}

// Set writes a party-only field directly and defers everything else to the box record.
// FIELD_SPECIES2 is derived and cannot be written.
func (p *Pokemon) Set(field Field, value uint32) {
	switch field {
	case FIELD_STATUS:
		p.Status = value
	case FIELD_LEVEL:
		p.Level = uint8(value)
	case FIELD_HP:
		p.HP = uint16(value)
	case FIELD_MAX_HP:
		p.MaxHP = uint16(value)
	case FIELD_ATK:
		p.Attack = uint16(value)
	case FIELD_DEF:
		p.Defense = uint16(value)
	case FIELD_SPEED:
		p.Speed = uint16(value)
	case FIELD_SPATK:
		p.SpAttack = uint16(value)
	case FIELD_SPDEF:
		p.SpDefense = uint16(value)
	case FIELD_MAIL:
		p.Mail = uint8(value)
	case FIELD_SPECIES2:
	default:
		p.Box.Set(field, value)
	}
}

func (p *Pokemon) GetBytes(field Field) []byte {
	return p.Box.GetBytes(field)
}

func (p *Pokemon) SetBytes(field Field, data []byte) {
	p.Box.SetBytes(field, data)
}

func (p *Pokemon) Species() uint16 {
	return uint16(p.Get(FIELD_SPECIES))
}

// IsEmpty reports whether the slot holds no creature
func (p *Pokemon) IsEmpty() bool {
	return p.Get(FIELD_SPECIES) == SPECIES_NONE
}

// Zero empties the slot. Mail is reset to MAIL_NONE rather than 0.
func (p *Pokemon) Zero() {
	*p = Pokemon{Mail: MAIL_NONE}
}

// BoxMonToMon loads a storable record into party form and recomputes its stats.
// Status and HP start at zero so a freshly loaded creature comes back at full health.
func BoxMonToMon(box *BoxMon) Pokemon {
	mon := Pokemon{Box: *box, Mail: MAIL_NONE}
	CalculateMonStats(&mon)
	return mon
}

// MarshalBinary encodes the box record followed by status, level, mail and the calculated stats
func (p *Pokemon) MarshalBinary() ([]byte, error) {
	box, err := p.Box.MarshalBinary()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, PARTY_MON_SIZE)
	copy(buf, box)

	le := binary.LittleEndian
	le.PutUint32(buf[80:], p.Status)
	buf[84] = p.Level
	buf[85] = p.Mail
	for i, stat := range []uint16{p.HP, p.MaxHP, p.Attack, p.Defense, p.Speed, p.SpAttack, p.SpDefense} {
		le.PutUint16(buf[86+i*2:], stat)
	}

	return buf, nil
}

func (p *Pokemon) UnmarshalBinary(data []byte) error {
	if len(data) != PARTY_MON_SIZE {
		return ErrInvalidPartyMonSize
	}

	if err := p.Box.UnmarshalBinary(data[:BOX_MON_SIZE]); err != nil {
		return err
	}

	le := binary.LittleEndian
	p.Status = le.Uint32(data[80:])
	p.Level = data[84]
	p.Mail = data[85]
	for i, stat := range []*uint16{&p.HP, &p.MaxHP, &p.Attack, &p.Defense, &p.Speed, &p.SpAttack, &p.SpDefense} {
		*stat = le.Uint16(data[86+i*2:])
	}
	p.LevelUpHP = 0

	return nil
}
