package golurk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestExpThresholds(t *testing.T) {
	tests := []struct {
		rate  uint8
		level uint8
		exp   uint32
	}{
		{GROWTH_MEDIUM_SLOW, 1, 0},
		{GROWTH_MEDIUM_SLOW, 5, 135},
		{GROWTH_MEDIUM_SLOW, 100, 1059860},
		{GROWTH_MEDIUM_FAST, 10, 1000},
		{GROWTH_MEDIUM_FAST, 100, 1000000},
		{GROWTH_ERRATIC, 100, 600000},
		{GROWTH_FLUCTUATING, 100, 1640000},
		{GROWTH_FAST, 100, 800000},
		{GROWTH_SLOW, 100, 1250000},
		{NUM_GROWTH_RATES, 10, 0},
		{GROWTH_SLOW, MAX_LEVEL + 1, 0},
	}

	for _, test := range tests {
		assert.Equal(t, test.exp, GetExpForLevel(test.rate, test.level), "rate %d level %d", test.rate, test.level)
	}
}

func TestLevelFromExp(t *testing.T) {
	assert.Equal(t, uint8(1), LevelFromExp(SPECIES_BULBASAUR, 0))
	assert.Equal(t, uint8(4), LevelFromExp(SPECIES_BULBASAUR, 134))
	assert.Equal(t, uint8(5), LevelFromExp(SPECIES_BULBASAUR, 135))
	assert.Equal(t, uint8(MAX_LEVEL), LevelFromExp(SPECIES_BULBASAUR, 0xFFFFFFFF))
}

func TestLevelFromExpInvertsThresholds(t *testing.T) {
	species := []uint16{SPECIES_BULBASAUR, SPECIES_PIKACHU, SPECIES_NINCADA, SPECIES_LATIAS}

	rapid.Check(t, func(t *rapid.T) {
		s := rapid.SampledFrom(species).Draw(t, "species")
		level := rapid.Uint8Range(1, MAX_LEVEL).Draw(t, "level")
		rate := GlobalData.GetSpecies(s).GrowthRate

		require.Equal(t, level, LevelFromExp(s, GetExpForLevel(rate, level)))
	})
}

func TestTryIncrementLevel(t *testing.T) {
	mon := newTestMon(SPECIES_BULBASAUR, 5)
	assert.False(t, TryIncrementLevel(&mon))

	mon.Set(FIELD_EXP, GetExpForLevel(GROWTH_MEDIUM_SLOW, 6))
	assert.True(t, TryIncrementLevel(&mon))
	assert.Equal(t, uint8(6), mon.Level)
	assert.False(t, TryIncrementLevel(&mon))
}

func TestTryIncrementLevelClampsExp(t *testing.T) {
	mon := newTestMon(SPECIES_BULBASAUR, 5)
	mon.Level = MAX_LEVEL - 1
	mon.Set(FIELD_EXP, 0xFFFFFFFF)

	assert.True(t, TryIncrementLevel(&mon))
	assert.Equal(t, uint8(MAX_LEVEL), mon.Level)
	assert.Equal(t, uint32(1059860), mon.Get(FIELD_EXP))
	assert.False(t, TryIncrementLevel(&mon))
}
