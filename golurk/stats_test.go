package golurk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBulbasaurLevelFiveStats(t *testing.T) {
	mon := newTestMon(SPECIES_BULBASAUR, 5)

	assert.Equal(t, uint8(5), mon.Level)
	assert.Equal(t, uint16(19), mon.MaxHP)
	assert.Equal(t, uint16(19), mon.HP)
	assert.Equal(t, uint16(9), mon.Attack)
	assert.Equal(t, uint16(9), mon.Defense)
	assert.Equal(t, uint16(9), mon.Speed)
	assert.Equal(t, uint16(11), mon.SpAttack)
	assert.Equal(t, uint16(11), mon.SpDefense)
}

func TestNatureModifiesStats(t *testing.T) {
	// personality 3 is Adamant: +Attack, -Sp. Atk
	mon := CreateMon(SPECIES_BULBASAUR, 50, MAX_IV, true, 3, OT_ID_PLAYER_ID, 0, testProfile, seededRng())

	require.Equal(t, uint8(NATURE_ADAMANT), GetNature(&mon))
	assert.Equal(t, uint16(120), mon.MaxHP)
	assert.Equal(t, uint16(75), mon.Attack)
	assert.Equal(t, uint16(76), mon.SpAttack)
	assert.Equal(t, uint16(69), mon.Defense)
}

func TestShedinjaAlwaysHasOneHP(t *testing.T) {
	mon := newTestMon(SPECIES_SHEDINJA, 40)

	assert.Equal(t, uint16(1), mon.MaxHP)
	assert.Equal(t, uint16(1), mon.HP)
}

func TestLevelUpKeepsDamage(t *testing.T) {
	mon := newTestMon(SPECIES_BULBASAUR, 5)
	mon.HP = 10

	mon.Set(FIELD_EXP, GetExpForLevel(GROWTH_MEDIUM_SLOW, 6))
	CalculateMonStats(&mon)

	assert.Equal(t, uint8(6), mon.Level)
	assert.Equal(t, uint16(21), mon.MaxHP)
	assert.Equal(t, uint16(12), mon.HP)
	assert.Equal(t, uint16(2), mon.LevelUpHP)
}

func TestFaintedMonKeepsStats(t *testing.T) {
	mon := newTestMon(SPECIES_BULBASAUR, 5)
	mon.HP = 0

	mon.Set(FIELD_EXP, GetExpForLevel(GROWTH_MEDIUM_SLOW, 30))
	CalculateMonStats(&mon)

	assert.Equal(t, uint8(30), mon.Level)
	assert.Equal(t, uint16(19), mon.MaxHP)
	assert.Equal(t, uint16(0), mon.HP)
	assert.Equal(t, uint16(9), mon.Attack)
}

func TestMaxHPDropUnderflow(t *testing.T) {
	t.Cleanup(func() { Settings.FixHPUnderflow = false })

	drop := func() Pokemon {
		mon := newTestMon(SPECIES_BULBASAUR, 50)
		mon.HP = 1
		mon.Set(FIELD_EXP, GetExpForLevel(GROWTH_MEDIUM_SLOW, 5))
		CalculateMonStats(&mon)
		return mon
	}

	Settings.FixHPUnderflow = false
	mon := drop()
	// 1 + (19 - 105) wraps around
	assert.Equal(t, uint16(1+19-105+65536), mon.HP)

	Settings.FixHPUnderflow = true
	mon = drop()
	assert.Equal(t, uint16(1), mon.HP)
}

func TestBoxMonToMonStartsAtFullHealth(t *testing.T) {
	mon := newTestMon(SPECIES_SQUIRTLE, 10)
	loaded := BoxMonToMon(&mon.Box)

	assert.Equal(t, mon.MaxHP, loaded.HP)
	assert.Equal(t, mon.MaxHP, loaded.MaxHP)
	assert.Equal(t, uint8(MAIL_NONE), loaded.Mail)
	assert.Equal(t, uint32(0), loaded.Status)
}

func TestStatsGrowWithLevel(t *testing.T) {
	natures := []uint8{}
	for n := range uint8(NUM_NATURES) {
		if NATURES[n].StatMods != [NUM_NATURE_STATS]int8{} {
			natures = append(natures, n)
		}
	}

	rapid.Check(t, func(t *rapid.T) {
		base := rapid.Uint8().Draw(t, "base")
		iv := rapid.Uint32Range(0, MAX_IV-1).Draw(t, "iv")
		ev := rapid.Uint32Range(0, MAX_PER_STAT_EVS-4).Draw(t, "ev")
		level := rapid.Uint8Range(1, MAX_LEVEL-1).Draw(t, "level")
		nature := rapid.SampledFrom(natures).Draw(t, "nature")
		stat := rapid.Uint8Range(STAT_ATK, NUM_STATS-1).Draw(t, "stat")

		final := func(iv uint32, ev uint32, level uint8) uint16 {
			return ModifyStatByNature(nature, uint16(calcStat(base, iv, ev, level)), stat)
		}

		require.LessOrEqual(t, calcStat(base, iv, ev, level), calcStat(base, iv, ev, level+1))
		require.LessOrEqual(t, calcStat(base, iv, ev, level), calcStat(base, iv+1, ev, level))
		require.LessOrEqual(t, calcStat(base, iv, ev, level), calcStat(base, iv, ev+4, level))

		require.LessOrEqual(t, final(iv, ev, level), final(iv, ev, level+1))
		require.LessOrEqual(t, final(iv, ev, level), final(iv+1, ev, level))
		require.LessOrEqual(t, final(iv, ev, level), final(iv, ev+4, level))
	})
}

func TestMonStatsGrowWithLevelUnderNature(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nature := rapid.Uint8Range(0, NUM_NATURES-1).Draw(t, "nature")
		level := rapid.Uint8Range(1, MAX_LEVEL-1).Draw(t, "level")
		ev := rapid.Uint32Range(0, MAX_PER_STAT_EVS-4).Draw(t, "ev")

		mon := NewPokeBuilder(SPECIES_PIKACHU, level, seededRng()).SetNature(nature).Build()
		for _, f := range EV_FIELDS {
			mon.Set(f, ev)
		}
		CalculateMonStats(&mon)
		before := mon

		for _, f := range EV_FIELDS {
			mon.Set(f, ev+4)
		}
		CalculateMonStats(&mon)
		afterEVs := mon

		mon.Set(FIELD_EXP, GetExpForLevel(GlobalData.GetSpecies(SPECIES_PIKACHU).GrowthRate, level+1))
		CalculateMonStats(&mon)

		for stat := range uint8(NUM_STATS) {
			require.LessOrEqual(t, before.Get(STAT_FIELDS[stat]), afterEVs.Get(STAT_FIELDS[stat]))
			require.LessOrEqual(t, afterEVs.Get(STAT_FIELDS[stat]), mon.Get(STAT_FIELDS[stat]))
		}
		require.Equal(t, level+1, mon.Level)
	})
}

func TestNatureOnlyTouchesNatureStats(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nature := rapid.Uint8Range(0, NUM_NATURES-1).Draw(t, "nature")
		n := rapid.Uint16Range(1, 999).Draw(t, "stat")

		require.Equal(t, n, ModifyStatByNature(nature, n, STAT_HP))
		for stat := uint8(STAT_ATK); stat < NUM_STATS; stat++ {
			got := ModifyStatByNature(nature, n, stat)
			require.GreaterOrEqual(t, got, uint16(uint32(n)*90/100))
			require.LessOrEqual(t, got, uint16(uint32(n)*110/100))
		}
	})
}
