package golurk

// TryIncrementLevel raises the level by one when the experience covers the next threshold.
// Experience past the level 100 threshold is clamped down to it first.
func TryIncrementLevel(mon *Pokemon) bool {
	growth := GlobalData.GetSpecies(mon.Species()).GrowthRate
	maxExp := GetExpForLevel(growth, MAX_LEVEL)

	exp := mon.Get(FIELD_EXP)
	if exp > maxExp {
		exp = maxExp
		mon.Set(FIELD_EXP, exp)
	}

	nextLevel := mon.Level + 1
	if nextLevel > MAX_LEVEL || exp < GetExpForLevel(growth, nextLevel) {
		return false
	}

	mon.Level = nextLevel
	return true
}
