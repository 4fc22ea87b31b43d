package golurk

// experienceTables holds the total experience needed to reach each level, per growth rate.
// Levels 0 and 1 need no experience.
var experienceTables = buildExperienceTables()

func buildExperienceTables() [NUM_GROWTH_RATES][MAX_LEVEL + 1]uint32 {
	var tables [NUM_GROWTH_RATES][MAX_LEVEL + 1]uint32
	for rate := range NUM_GROWTH_RATES {
		for level := 2; level <= MAX_LEVEL; level++ {
			tables[rate][level] = uint32(expFormula(uint8(rate), int64(level)))
		}
	}

	return tables
}

func expFormula(rate uint8, n int64) int64 {
	cube := n * n * n

	switch rate {
	case GROWTH_ERRATIC:
		switch {
		case n <= 50:
			return cube * (100 - n) / 50
		case n <= 68:
			return cube * (150 - n) / 100
		case n <= 98:
			return cube * ((1911 - 10*n) / 3) / 500
		default:
			return cube * (160 - n) / 100
		}
	case GROWTH_FLUCTUATING:
		switch {
		case n <= 15:
			return cube * ((n+1)/3 + 24) / 50
		case n <= 36:
			return cube * (n + 14) / 50
		default:
			return cube * (n/2 + 32) / 50
		}
	case GROWTH_MEDIUM_SLOW:
		return 6*cube/5 - 15*n*n + 100*n - 140
	case GROWTH_FAST:
		return 4 * cube / 5
	case GROWTH_SLOW:
		return 5 * cube / 4
	default:
		return cube
	}
}

// GetExpForLevel returns the experience threshold of level for a growth rate.
// Out of range arguments return 0.
func GetExpForLevel(growthRate uint8, level uint8) uint32 {
	if growthRate >= NUM_GROWTH_RATES || level > MAX_LEVEL {
		return 0
	}

	return experienceTables[growthRate][level]
}

// LevelFromExp finds the highest level whose threshold is covered by exp, between 1 and MAX_LEVEL
func LevelFromExp(species uint16, exp uint32) uint8 {
	table := experienceTables[GlobalData.GetSpecies(species).GrowthRate%NUM_GROWTH_RATES]

	level := 1
	for level <= MAX_LEVEL && table[level] <= exp {
		level++
	}

	return uint8(level - 1)
}

func GetLevelFromBoxMonExp(box *BoxMon) uint8 {
	return LevelFromExp(uint16(box.Get(FIELD_SPECIES)), box.Get(FIELD_EXP))
}

func GetLevelFromMonExp(mon *Pokemon) uint8 {
	return GetLevelFromBoxMonExp(&mon.Box)
}
