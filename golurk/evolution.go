package golurk

import "time"

// Clock supplies the local hour for time-of-day evolutions
type Clock interface {
	Hour() int
}

type SystemClock struct{}

func (SystemClock) Hour() int {
	return time.Now().Hour()
}

// FixedClock always reports the same hour
type FixedClock int

func (c FixedClock) Hour() int {
	return int(c)
}

// GetEvolutionTargetSpecies returns what mon evolves into under mode, or SPECIES_NONE.
//
// EVO_MODE_NORMAL scans every entry and the last one that matches wins.
// EVO_MODE_TRADE consumes the held item when a trade-item evolution matches.
// EVO_MODE_ITEM_USE and EVO_MODE_ITEM_CHECK take the first stone evolution for item.
// An everstone blocks everything except EVO_MODE_ITEM_CHECK.
func GetEvolutionTargetSpecies(mon *Pokemon, mode uint8, item uint16, clock Clock, enigmaHoldEffect uint8) uint16 {
	species := mon.Species()
	heldItem := uint16(mon.Get(FIELD_HELD_ITEM))
	personality := mon.Get(FIELD_PERSONALITY)
	beauty := mon.Get(FIELD_BEAUTY)
	upperPersonality := uint16(personality >> 16)

	if heldItemEffect(mon, enigmaHoldEffect) == HOLD_EFFECT_PREVENT_EVOLVE && mode != EVO_MODE_ITEM_CHECK {
		return SPECIES_NONE
	}

	if clock == nil {
		clock = SystemClock{}
	}

	evolutions := GlobalData.GetEvolutions(species)
	target := uint16(SPECIES_NONE)

	switch mode {
	case EVO_MODE_NORMAL:
		level := uint16(mon.Level)
		friendship := mon.Get(FIELD_FRIENDSHIP)

		for _, evo := range evolutions {
			matched := false

			switch evo.Method {
			case EVO_FRIENDSHIP:
				matched = friendship >= FRIENDSHIP_EVO_TARGET
			case EVO_FRIENDSHIP_DAY:
				hour := clock.Hour()
				matched = hour >= 12 && hour < 24 && friendship >= FRIENDSHIP_EVO_TARGET
			case EVO_FRIENDSHIP_NIGHT:
				hour := clock.Hour()
				matched = hour >= 0 && hour < 12 && friendship >= FRIENDSHIP_EVO_TARGET
			case EVO_LEVEL, EVO_LEVEL_NINJASK:
				matched = evo.Param <= level
			case EVO_LEVEL_ATK_GT_DEF:
				matched = evo.Param <= level && mon.Attack > mon.Defense
			case EVO_LEVEL_ATK_EQ_DEF:
				matched = evo.Param <= level && mon.Attack == mon.Defense
			case EVO_LEVEL_ATK_LT_DEF:
				matched = evo.Param <= level && mon.Attack < mon.Defense
			case EVO_LEVEL_SILCOON:
				matched = evo.Param <= level && upperPersonality%10 <= 4
			case EVO_LEVEL_CASCOON:
				matched = evo.Param <= level && upperPersonality%10 > 4
			case EVO_BEAUTY:
				matched = uint32(evo.Param) <= beauty
			}

			if matched {
				target = evo.Target
			}
		}
	case EVO_MODE_TRADE:
		for _, evo := range evolutions {
			switch evo.Method {
			case EVO_TRADE:
				target = evo.Target
			case EVO_TRADE_ITEM:
				if evo.Param == heldItem {
					heldItem = ITEM_NONE
					mon.Set(FIELD_HELD_ITEM, ITEM_NONE)
					target = evo.Target
				}
			}
		}
	case EVO_MODE_ITEM_USE, EVO_MODE_ITEM_CHECK:
		for _, evo := range evolutions {
			if evo.Method == EVO_ITEM && evo.Param == item {
				target = evo.Target
				break
			}
		}
	}

	if target != SPECIES_NONE {
		growthLogger().V(1).Info("evolution target", "species", species, "mode", mode, "target", target)
	}
	return target
}

// GetShedinjaEvolution returns the species a level-up evolution with a free party slot spawns, if any
func GetShedinjaEvolution(mon *Pokemon) uint16 {
	for _, evo := range GlobalData.GetEvolutions(mon.Species()) {
		if evo.Method == EVO_LEVEL_SHEDINJA && evo.Param <= uint16(mon.Level) {
			return evo.Target
		}
	}
	return SPECIES_NONE
}
