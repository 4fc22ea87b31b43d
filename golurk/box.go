package golurk

import (
	"encoding/binary"
	"errors"
)

const (
	BOX_MON_SIZE   = 80
	SUBSTRUCT_SIZE = 12
	SECURE_SIZE    = NUM_SUBSTRUCTS * SUBSTRUCT_SIZE

	secureWords = SECURE_SIZE / 4
)

// Header flag bits
const (
	boxFlagBadEgg = 1 << iota
	boxFlagHasSpecies
	boxFlagIsEgg
	boxFlagDied
)

var ErrInvalidBoxMonSize = errors.New("box mon records are exactly 80 bytes")

// substructOrders gives, for personality % 24, the physical slot of the
// Growth, Attacks, Condition and Misc substructs in that order.
var substructOrders = [24][NUM_SUBSTRUCTS]uint8{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}, {0, 3, 1, 2}, {0, 2, 3, 1}, {0, 3, 2, 1},
	{1, 0, 2, 3}, {1, 0, 3, 2}, {2, 0, 1, 3}, {3, 0, 1, 2}, {2, 0, 3, 1}, {3, 0, 2, 1},
	{1, 2, 0, 3}, {1, 3, 0, 2}, {2, 1, 0, 3}, {3, 1, 0, 2}, {2, 3, 0, 1}, {3, 2, 0, 1},
	{1, 2, 3, 0}, {1, 3, 2, 0}, {2, 1, 3, 0}, {3, 1, 2, 0}, {2, 3, 1, 0}, {3, 2, 1, 0},
}

// BoxMon is the storable form of a creature: a cleartext header followed by four
// substructs that are shuffled by personality and XOR encrypted with personality and OT id.
//
// All access goes through Get / Set / GetBytes / SetBytes. A record whose checksum no longer
// matches its payload is flagged as a bad egg on first encrypted access and refuses encrypted writes.
type BoxMon struct {
	personality uint32
	otId        uint32
	nickname    [POKEMON_NAME_LENGTH]byte
	language    uint8
	flags       uint8
	otName      [PLAYER_NAME_LENGTH]byte
	markings    uint8
	checksum    uint16
	unknown     uint16
	secure      [secureWords]uint32
}

// secureView is a decrypted scratch copy of the payload. Writes to it only reach
// the record through BoxMon.encrypt.
type secureView struct {
	data  [SECURE_SIZE]byte
	order [NUM_SUBSTRUCTS]uint8
}

func (v *secureView) sub(t uint8) []byte {
	off := int(v.order[t]) * SUBSTRUCT_SIZE
	return v.data[off : off+SUBSTRUCT_SIZE]
}

func (v *secureView) readRaw(loc fieldLoc) uint32 {
	b := v.sub(loc.sub)[loc.off:]
	switch loc.size {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(binary.LittleEndian.Uint16(b))
	default:
		return binary.LittleEndian.Uint32(b)
	}
}

func (v *secureView) read(loc fieldLoc) uint32 {
	raw := v.readRaw(loc)
	if loc.bits == 0 {
		return raw
	}

	return (raw >> loc.shift) & (uint32(1)<<loc.bits - 1)
}

func (v *secureView) write(loc fieldLoc, value uint32) {
	if loc.bits != 0 {
		mask := (uint32(1)<<loc.bits - 1) << loc.shift
		value = (v.readRaw(loc) &^ mask) | ((value << loc.shift) & mask)
	}

	b := v.sub(loc.sub)[loc.off:]
	switch loc.size {
	case 1:
		b[0] = uint8(value)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(value))
	default:
		binary.LittleEndian.PutUint32(b, value)
	}
}

func (v *secureView) get(field Field) uint32 {
	return v.read(secureFieldLocs[field])
}

func (v *secureView) set(field Field, value uint32) {
	v.write(secureFieldLocs[field], value)
}

// checksum is the 16-bit wrapping sum of every half-word of the plain payload
func (v *secureView) checksum() uint16 {
	var sum uint16
	for i := 0; i < SECURE_SIZE; i += 2 {
		sum += binary.LittleEndian.Uint16(v.data[i:])
	}

	return sum
}

func (b *BoxMon) decrypt() *secureView {
	v := &secureView{order: substructOrders[b.personality%24]}
	key := b.personality ^ b.otId
	for i, w := range b.secure {
		binary.LittleEndian.PutUint32(v.data[i*4:], w^key)
	}

	return v
}

func (b *BoxMon) encrypt(v *secureView) {
	key := b.personality ^ b.otId
	for i := range b.secure {
		b.secure[i] = binary.LittleEndian.Uint32(v.data[i*4:]) ^ key
	}
}

// resetPayload replaces the payload with an empty one sealed under the current
// personality and OT id. Creation calls it once both keys are known.
func (b *BoxMon) resetPayload() {
	v := &secureView{order: substructOrders[b.personality%24]}
	b.checksum = v.checksum()
	b.encrypt(v)
}

// unseal decrypts and validates the payload. On a checksum mismatch the record is
// marked as a bad egg (header and misc egg bits) and the stored checksum is left alone.
func (b *BoxMon) unseal() (*secureView, bool) {
	v := b.decrypt()
	if v.checksum() == b.checksum {
		return v, true
	}

	if b.flags&boxFlagBadEgg == 0 {
		codecLogger().V(1).Info("checksum mismatch, flagging bad egg", "personality", b.personality, "stored", b.checksum, "calculated", v.checksum())
	}

	b.flags |= boxFlagBadEgg | boxFlagIsEgg
	v.set(FIELD_IS_EGG, 1)
	b.encrypt(v)
	return v, false
}

func (b *BoxMon) flag(bit uint8) uint32 {
	if b.flags&bit != 0 {
		return 1
	}

	return 0
}

func (b *BoxMon) setFlag(bit uint8, value uint32) {
	if value&1 != 0 {
		b.flags |= bit
	} else {
		b.flags &^= bit
	}
}

// Zero clears the record. A zeroed record is valid: its payload and checksum are both zero.
func (b *BoxMon) Zero() {
	*b = BoxMon{}
}

// Get reads an integer field. Byte-array fields return their length, use GetBytes for the data.
// Fields the record does not carry return 0.
func (b *BoxMon) Get(field Field) uint32 {
	var v *secureView
	if field.encrypted() {
		v, _ = b.unseal()
	}

	switch field {
	case FIELD_PERSONALITY:
		return b.personality
	case FIELD_OT_ID:
		return b.otId
	case FIELD_NICKNAME:
		return uint32(StringLength(b.GetBytes(FIELD_NICKNAME)))
	case FIELD_LANGUAGE:
		return uint32(b.language)
	case FIELD_SANITY_IS_BAD_EGG:
		return b.flag(boxFlagBadEgg)
	case FIELD_SANITY_HAS_SPECIES:
		return b.flag(boxFlagHasSpecies)
	case FIELD_SANITY_IS_EGG:
		return b.flag(boxFlagIsEgg)
	case FIELD_DIED:
		return b.flag(boxFlagDied)
	case FIELD_OT_NAME:
		return PLAYER_NAME_LENGTH
	case FIELD_MARKINGS:
		return uint32(b.markings)
	case FIELD_CHECKSUM:
		return uint32(b.checksum)
	case FIELD_ENCRYPT_SEPARATOR:
		return uint32(b.unknown)
	case FIELD_SPECIES:
		if b.flags&boxFlagBadEgg != 0 {
			return SPECIES_EGG
		}
		return v.get(FIELD_SPECIES)
	case FIELD_SPECIES2:
		species := v.get(FIELD_SPECIES)
		if species != SPECIES_NONE && (v.get(FIELD_IS_EGG) != 0 || b.flags&boxFlagBadEgg != 0) {
			return SPECIES_EGG
		}
		return species
	case FIELD_IVS:
		var ivs uint32
		for i, f := range IV_FIELDS {
			ivs |= v.get(f) << (5 * i)
		}
		return ivs
	case FIELD_RIBBON_COUNT:
		if v.get(FIELD_SPECIES) == SPECIES_NONE || v.get(FIELD_IS_EGG) != 0 {
			return 0
		}
		var count uint32
		for _, ribbon := range ribbonBitPositions {
			count += v.get(ribbon.field)
		}
		return count
	case FIELD_RIBBONS:
		if v.get(FIELD_SPECIES) == SPECIES_NONE || v.get(FIELD_IS_EGG) != 0 {
			return 0
		}
		var ribbons uint32
		for _, ribbon := range ribbonBitPositions {
			ribbons |= v.get(ribbon.field) << ribbon.shift
		}
		return ribbons
	}

	if loc, ok := secureFieldLocs[field]; ok {
		return v.read(loc)
	}

	return 0
}

// GetBytes returns the EOS terminated contents of FIELD_NICKNAME or FIELD_OT_NAME.
// Eggs and bad eggs report their placeholder names instead of the stored nickname.
func (b *BoxMon) GetBytes(field Field) []byte {
	switch field {
	case FIELD_NICKNAME:
		switch {
		case b.flags&boxFlagBadEgg != 0:
			n := min(StringLength(textBadEgg), POKEMON_NAME_LENGTH)
			out := make([]byte, 0, n+1)
			out = append(out, textBadEgg[:n]...)
			return append(out, EOS)
		case b.flags&boxFlagIsEgg != 0:
			return append([]byte(nil), textEggNickname...)
		case b.language == LANGUAGE_JAPANESE:
			out := []byte{EXT_CTRL_CODE_BEGIN, EXT_CTRL_CODE_JPN}
			for i := 0; i < 5 && b.nickname[i] != EOS; i++ {
				out = append(out, b.nickname[i])
			}
			return append(out, EXT_CTRL_CODE_BEGIN, EXT_CTRL_CODE_ENG, EOS)
		default:
			out := make([]byte, 0, POKEMON_NAME_LENGTH+1)
			out = append(out, b.nickname[:]...)
			return append(out, EOS)
		}
	case FIELD_OT_NAME:
		out := make([]byte, 0, PLAYER_NAME_LENGTH+1)
		out = append(out, b.otName[:]...)
		return append(out, EOS)
	}

	return nil
}

// Set writes an integer field, truncating value to the field's width.
// Encrypted writes on a corrupted record only flag it as a bad egg.
func (b *BoxMon) Set(field Field, value uint32) {
	if !field.encrypted() {
		b.setHeader(field, value)
		return
	}

	v, ok := b.unseal()
	if !ok {
		return
	}

	switch field {
	case FIELD_SPECIES:
		v.set(FIELD_SPECIES, value)
		b.setFlag(boxFlagHasSpecies, boolToUint32(v.get(FIELD_SPECIES) != SPECIES_NONE))
	case FIELD_IS_EGG:
		v.set(FIELD_IS_EGG, value)
		b.setFlag(boxFlagIsEgg, v.get(FIELD_IS_EGG))
	case FIELD_IVS:
		for i, f := range IV_FIELDS {
			v.set(f, (value>>(5*i))&MAX_IV)
		}
	default:
		if loc, ok := secureFieldLocs[field]; ok {
			v.write(loc, value)
		}
	}

	b.checksum = v.checksum()
	b.encrypt(v)
}

func (b *BoxMon) setHeader(field Field, value uint32) {
	switch field {
	case FIELD_PERSONALITY:
		b.personality = value
	case FIELD_OT_ID:
		b.otId = value
	case FIELD_LANGUAGE:
		b.language = uint8(value)
	case FIELD_SANITY_IS_BAD_EGG:
		b.setFlag(boxFlagBadEgg, value)
	case FIELD_SANITY_HAS_SPECIES:
		b.setFlag(boxFlagHasSpecies, value)
	case FIELD_SANITY_IS_EGG:
		b.setFlag(boxFlagIsEgg, value)
	case FIELD_DIED:
		b.setFlag(boxFlagDied, value)
	case FIELD_MARKINGS:
		b.markings = uint8(value)
	case FIELD_CHECKSUM:
		b.checksum = uint16(value)
	case FIELD_ENCRYPT_SEPARATOR:
		b.unknown = uint16(value)
	}
}

// SetBytes copies an encoded name into FIELD_NICKNAME or FIELD_OT_NAME.
// Short input is padded with EOS, long input is truncated.
func (b *BoxMon) SetBytes(field Field, data []byte) {
	var dst []byte
	switch field {
	case FIELD_NICKNAME:
		dst = b.nickname[:]
	case FIELD_OT_NAME:
		dst = b.otName[:]
	default:
		return
	}

	n := copy(dst, data)
	for i := n; i < len(dst); i++ {
		dst[i] = EOS
	}
}

// KnownMoves returns a bitmask where bit i is set when moves[i] is one of the creature's moves.
// Empty and egg records know nothing.
func (b *BoxMon) KnownMoves(moves []uint16) uint32 {
	v, _ := b.unseal()
	if v.get(FIELD_SPECIES) == SPECIES_NONE || v.get(FIELD_IS_EGG) != 0 {
		return 0
	}

	var known uint32
	for i, move := range moves {
		if i >= 32 {
			break
		}
		for _, f := range MOVE_FIELDS {
			if uint16(v.get(f)) == move {
				known |= 1 << i
				break
			}
		}
	}

	return known
}

func (b *BoxMon) Nickname() string {
	return DecodeName(b.GetBytes(FIELD_NICKNAME))
}

func (b *BoxMon) OTName() string {
	return DecodeName(b.GetBytes(FIELD_OT_NAME))
}

func (b *BoxMon) HasSpecies() bool {
	return b.Get(FIELD_SPECIES) != SPECIES_NONE
}

// MarshalBinary encodes the record in its 80 byte little-endian layout. The payload stays encrypted.
func (b *BoxMon) MarshalBinary() ([]byte, error) {
	buf := make([]byte, BOX_MON_SIZE)
	le := binary.LittleEndian

	le.PutUint32(buf[0:], b.personality)
	le.PutUint32(buf[4:], b.otId)
	copy(buf[8:18], b.nickname[:])
	buf[18] = b.language
	buf[19] = b.flags
	copy(buf[20:27], b.otName[:])
	buf[27] = b.markings
	le.PutUint16(buf[28:], b.checksum)
	le.PutUint16(buf[30:], b.unknown)
	for i, w := range b.secure {
		le.PutUint32(buf[32+i*4:], w)
	}

	return buf, nil
}

// UnmarshalBinary loads a record produced by MarshalBinary. Corruption is not an
// error here, it surfaces as a bad egg on first encrypted access.
func (b *BoxMon) UnmarshalBinary(data []byte) error {
	if len(data) != BOX_MON_SIZE {
		return ErrInvalidBoxMonSize
	}

	le := binary.LittleEndian
	b.personality = le.Uint32(data[0:])
	b.otId = le.Uint32(data[4:])
	copy(b.nickname[:], data[8:18])
	b.language = data[18]
	b.flags = data[19]
	copy(b.otName[:], data[20:27])
	b.markings = data[27]
	b.checksum = le.Uint16(data[28:])
	b.unknown = le.Uint16(data[30:])
	for i := range b.secure {
		b.secure[i] = le.Uint32(data[32+i*4:])
	}

	return nil
}

func boolToUint32(b bool) uint32 {
	if b {
		return 1
	}

	return 0
}
