package golurk

import "math/rand/v2"

// Percent thresholds for a wild creature's held item roll. Below the first nothing is held,
// below the second the common item is, above it the rare one.
const (
	WILD_ITEM_NONE_CHANCE   = 45
	WILD_ITEM_COMMON_CHANCE = 95

	// a Compound Eyes lead makes items more likely
	WILD_ITEM_NONE_CHANCE_COMPOUND_EYES   = 20
	WILD_ITEM_COMMON_CHANCE_COMPOUND_EYES = 80
)

// SetWildMonHeldItem rolls the held item of a freshly generated wild creature from its species table.
// lead is the player's first party member and may be nil. A species whose common and rare items
// match always holds it.
func SetWildMonHeldItem(mon *Pokemon, lead *Pokemon, rng *rand.Rand) uint16 {
	items := GlobalData.GetSpecies(mon.Species()).Items
	roll := Random(rng) % 100

	if items[0] == items[1] && items[0] != ITEM_NONE {
		mon.Set(FIELD_HELD_ITEM, uint32(items[0]))
		return items[0]
	}

	noneBelow, commonBelow := uint16(WILD_ITEM_NONE_CHANCE), uint16(WILD_ITEM_COMMON_CHANCE)
	if lead != nil && lead.Get(FIELD_SANITY_IS_EGG) == 0 && GetMonAbility(lead) == ABILITY_COMPOUND_EYES {
		noneBelow, commonBelow = WILD_ITEM_NONE_CHANCE_COMPOUND_EYES, WILD_ITEM_COMMON_CHANCE_COMPOUND_EYES
	}

	item := items[1]
	switch {
	case roll < noneBelow:
		return ITEM_NONE
	case roll < commonBelow:
		item = items[0]
	}

	mon.Set(FIELD_HELD_ITEM, uint32(item))
	return item
}
