package golurk

// GetEVTotal sums the six effort values
func GetEVTotal(mon *Pokemon) uint32 {
	var total uint32
	for _, f := range EV_FIELDS {
		total += mon.Get(f)
	}
	return total
}

// GainEVs adds the EV yield of defeating defeatedSpecies to mon and recalculates its stats.
// Pokerus doubles the yield and so does a held Macho Brace. Per-stat and total caps always hold.
func GainEVs(mon *Pokemon, defeatedSpecies uint16, enigmaHoldEffect uint8) {
	yield := GlobalData.GetSpecies(defeatedSpecies).EVYield
	total := GetEVTotal(mon)

	multiplier := uint32(1)
	if mon.Get(FIELD_POKERUS) != 0 {
		multiplier = 2
	}
	holdEffect := heldItemEffect(mon, enigmaHoldEffect)

	for i, f := range EV_FIELDS {
		if total >= MAX_TOTAL_EVS {
			break
		}

		ev := mon.Get(f)
		increase := uint32(yield[i]) * multiplier
		if holdEffect == HOLD_EFFECT_MACHO_BRACE {
			increase *= 2
		}

		if total+increase > MAX_TOTAL_EVS {
			increase = MAX_TOTAL_EVS - total
		}
		if ev+increase > MAX_PER_STAT_EVS {
			increase = MAX_PER_STAT_EVS - ev
		}

		total += increase
		mon.Set(f, ev+increase)
	}

	CalculateMonStats(mon)
}
