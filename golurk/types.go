package golurk

const (
	TYPE_NORMAL = iota
	TYPE_FIGHTING
	TYPE_FLYING
	TYPE_POISON
	TYPE_GROUND
	TYPE_ROCK
	TYPE_BUG
	TYPE_GHOST
	TYPE_STEEL
	TYPE_MYSTERY
	TYPE_FIRE
	TYPE_WATER
	TYPE_GRASS
	TYPE_ELECTRIC
	TYPE_PSYCHIC
	TYPE_ICE
	TYPE_DRAGON
	TYPE_DARK

	NUMBER_OF_MON_TYPES
)

var TYPE_NAMES = [NUMBER_OF_MON_TYPES]string{
	"Normal", "Fighting", "Flying", "Poison", "Ground", "Rock", "Bug", "Ghost", "Steel",
	"???", "Fire", "Water", "Grass", "Electric", "Psychic", "Ice", "Dragon", "Dark",
}

// TYPE_MAP resolves the lowercase type names used by the data files
var TYPE_MAP = map[string]uint8{
	"normal":   TYPE_NORMAL,
	"fighting": TYPE_FIGHTING,
	"flying":   TYPE_FLYING,
	"poison":   TYPE_POISON,
	"ground":   TYPE_GROUND,
	"rock":     TYPE_ROCK,
	"bug":      TYPE_BUG,
	"ghost":    TYPE_GHOST,
	"steel":    TYPE_STEEL,
	"mystery":  TYPE_MYSTERY,
	"fire":     TYPE_FIRE,
	"water":    TYPE_WATER,
	"grass":    TYPE_GRASS,
	"electric": TYPE_ELECTRIC,
	"psychic":  TYPE_PSYCHIC,
	"ice":      TYPE_ICE,
	"dragon":   TYPE_DRAGON,
	"dark":     TYPE_DARK,
}

// Types below TYPE_MYSTERY use the physical stats, types above it the special ones.
func IsTypePhysical(t uint8) bool {
	return t < TYPE_MYSTERY
}

func IsTypeSpecial(t uint8) bool {
	return t > TYPE_MYSTERY
}

func TypeName(t uint8) string {
	if int(t) >= NUMBER_OF_MON_TYPES {
		return TYPE_NAMES[TYPE_MYSTERY]
	}

	return TYPE_NAMES[t]
}
