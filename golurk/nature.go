package golurk

const (
	NATURE_HARDY = iota
	NATURE_LONELY
	NATURE_BRAVE
	NATURE_ADAMANT
	NATURE_NAUGHTY
	NATURE_BOLD
	NATURE_DOCILE
	NATURE_RELAXED
	NATURE_IMPISH
	NATURE_LAX
	NATURE_TIMID
	NATURE_HASTY
	NATURE_SERIOUS
	NATURE_JOLLY
	NATURE_NAIVE
	NATURE_MODEST
	NATURE_MILD
	NATURE_QUIET
	NATURE_BASHFUL
	NATURE_RASH
	NATURE_CALM
	NATURE_GENTLE
	NATURE_SASSY
	NATURE_CAREFUL
	NATURE_QUIRKY

	NUM_NATURES
)

// Nature modifiers are +1, 0 or -1 for Attack, Defense, Speed, Sp. Atk and Sp. Def, in that order.
type Nature struct {
	Name     string
	StatMods [NUM_NATURE_STATS]int8
}

// NATURES is indexed by personality % NUM_NATURES
var NATURES = [NUM_NATURES]Nature{
	{"Hardy", [5]int8{0, 0, 0, 0, 0}},
	{"Lonely", [5]int8{+1, -1, 0, 0, 0}},
	{"Brave", [5]int8{+1, 0, -1, 0, 0}},
	{"Adamant", [5]int8{+1, 0, 0, -1, 0}},
	{"Naughty", [5]int8{+1, 0, 0, 0, -1}},
	{"Bold", [5]int8{-1, +1, 0, 0, 0}},
	{"Docile", [5]int8{0, 0, 0, 0, 0}},
	{"Relaxed", [5]int8{0, +1, -1, 0, 0}},
	{"Impish", [5]int8{0, +1, 0, -1, 0}},
	{"Lax", [5]int8{0, +1, 0, 0, -1}},
	{"Timid", [5]int8{-1, 0, +1, 0, 0}},
	{"Hasty", [5]int8{0, -1, +1, 0, 0}},
	{"Serious", [5]int8{0, 0, 0, 0, 0}},
	{"Jolly", [5]int8{0, 0, +1, -1, 0}},
	{"Naive", [5]int8{0, 0, +1, 0, -1}},
	{"Modest", [5]int8{-1, 0, 0, +1, 0}},
	{"Mild", [5]int8{0, -1, 0, +1, 0}},
	{"Quiet", [5]int8{0, 0, -1, +1, 0}},
	{"Bashful", [5]int8{0, 0, 0, 0, 0}},
	{"Rash", [5]int8{0, 0, 0, +1, -1}},
	{"Calm", [5]int8{-1, 0, 0, 0, +1}},
	{"Gentle", [5]int8{0, -1, 0, 0, +1}},
	{"Sassy", [5]int8{0, 0, -1, 0, +1}},
	{"Careful", [5]int8{0, 0, 0, -1, +1}},
	{"Quirky", [5]int8{0, 0, 0, 0, 0}},
}

func GetNatureFromPersonality(personality uint32) uint8 {
	return uint8(personality % NUM_NATURES)
}

// ModifyStatByNature applies the 10% nature boost or drop to a computed stat.
// HP, accuracy and evasion are never modified.
func ModifyStatByNature(nature uint8, n uint16, statIndex uint8) uint16 {
	if statIndex <= STAT_HP || statIndex > NUM_NATURE_STATS || int(nature) >= NUM_NATURES {
		return n
	}

	switch NATURES[nature].StatMods[statIndex-1] {
	case 1:
		return uint16(uint32(n) * 110 / 100)
	case -1:
		return uint16(uint32(n) * 90 / 100)
	default:
		return n
	}
}

// Pokeblock flavors
const (
	FLAVOR_SPICY = iota
	FLAVOR_DRY
	FLAVOR_SWEET
	FLAVOR_BITTER
	FLAVOR_SOUR

	FLAVOR_COUNT
)

// flavorStats is the stat each flavor stands for. A nature likes the flavor of the stat it raises.
var flavorStats = [FLAVOR_COUNT]uint8{STAT_ATK, STAT_SPATK, STAT_SPEED, STAT_SPDEF, STAT_DEF}

// GetFlavorRelationByPersonality returns 1 when the nature behind personality likes flavor,
// -1 when it dislikes it and 0 otherwise. Neutral natures have no preferences.
func GetFlavorRelationByPersonality(personality uint32, flavor uint8) int8 {
	if flavor >= FLAVOR_COUNT {
		return 0
	}

	nature := GetNatureFromPersonality(personality)
	return NATURES[nature].StatMods[flavorStats[flavor]-1]
}

func GetMonFlavorRelation(mon *Pokemon, flavor uint8) int8 {
	return GetFlavorRelationByPersonality(mon.Box.personality, flavor)
}
