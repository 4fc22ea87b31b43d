package golurk

// Settings holds engine behaviour toggles. Change them before creating or loading creatures.
var Settings = struct {
	// FixHPUnderflow clamps current HP to 1 when a max HP drop would take it to zero or below.
	// Off by default, which keeps the underflow.
	FixHPUnderflow bool
}{}

func calcStat(base uint8, iv uint32, ev uint32, level uint8) int32 {
	return (int32(2*uint32(base)+iv+ev/4)*int32(level))/100 + 5
}

func calcMaxHP(species uint16, iv uint32, ev uint32, level uint8) int32 {
	if species == SPECIES_SHEDINJA {
		return 1
	}

	base := GlobalData.GetSpecies(species).BaseStats[STAT_HP]
	return (int32(2*uint32(base)+iv+ev/4)*int32(level))/100 + int32(level) + 10
}

// CalculateMonStats derives level from experience, then max HP and the five nature scaled stats.
// Current HP moves by the max HP delta. A brand new creature (both HPs zero) starts at full HP.
// A fainted creature (zero HP, nonzero max) keeps its old stats: only the level is refreshed.
// The max HP delta is kept in LevelUpHP (1 when the delta is zero).
func CalculateMonStats(mon *Pokemon) {
	oldMaxHP := int32(mon.MaxHP)
	currentHP := int32(mon.HP)
	species := mon.Species()
	level := GetLevelFromMonExp(mon)

	mon.Level = level

	newMaxHP := calcMaxHP(species, mon.Get(FIELD_HP_IV), mon.Get(FIELD_HP_EV), level)

	levelUpHP := newMaxHP - oldMaxHP
	if levelUpHP == 0 {
		levelUpHP = 1
	}
	mon.LevelUpHP = uint16(levelUpHP)

	if species == SPECIES_SHEDINJA {
		if currentHP != 0 || oldMaxHP == 0 {
			currentHP = 1
		} else {
			return
		}
	} else {
		if currentHP == 0 && oldMaxHP == 0 {
			currentHP = newMaxHP
		} else if currentHP != 0 {
			currentHP += newMaxHP - oldMaxHP
			if Settings.FixHPUnderflow && currentHP <= 0 {
				currentHP = 1
			}
		} else {
			internalLogger.V(2).Info("skipping stat recalculation of fainted mon", "species", species)
			return
		}
	}

	mon.MaxHP = uint16(newMaxHP)

	base := GlobalData.GetSpecies(species).BaseStats
	nature := GetNatureFromPersonality(mon.Box.personality)
	for stat := uint8(STAT_ATK); stat < NUM_STATS; stat++ {
		n := calcStat(base[stat], mon.Get(IV_FIELDS[stat]), mon.Get(EV_FIELDS[stat]), level)
		mon.Set(STAT_FIELDS[stat], uint32(ModifyStatByNature(nature, uint16(n), stat)))
	}

	// Negative results wrap, like any other out of range write to a 16 bit field
	mon.HP = uint16(currentHP)
}

// GetNature returns the creature's nature index
func GetNature(mon *Pokemon) uint8 {
	return GetNatureFromPersonality(mon.Box.personality)
}
