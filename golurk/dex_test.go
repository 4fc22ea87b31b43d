package golurk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDexNumbers(t *testing.T) {
	tests := []struct {
		species  uint16
		national uint16
		hoenn    uint16
		inHoenn  bool
	}{
		{SPECIES_BULBASAUR, 1, 203, false},
		{SPECIES_WURMPLE, 265, 10, true},
		{SPECIES_LATIAS, 380, 196, true},
	}

	for _, tt := range tests {
		t.Run(GetSpeciesName(tt.species), func(t *testing.T) {
			assert.Equal(t, tt.national, SpeciesToNationalPokedexNum(tt.species))
			assert.Equal(t, tt.hoenn, SpeciesToHoennPokedexNum(tt.species))
			assert.Equal(t, tt.inHoenn, IsSpeciesInHoennDex(tt.species))

			assert.Equal(t, tt.species, NationalPokedexNumToSpecies(tt.national))
			assert.Equal(t, tt.species, HoennPokedexNumToSpecies(tt.hoenn))
			assert.Equal(t, tt.hoenn, NationalToHoennOrder(tt.national))
			assert.Equal(t, tt.national, HoennToNationalOrder(tt.hoenn))

			assert.Equal(t, tt.national, SpeciesToPokedexNum(tt.species, true))
		})
	}
}

func TestRegionalDexNumbering(t *testing.T) {
	assert.Equal(t, uint16(10), SpeciesToPokedexNum(SPECIES_WURMPLE, false))
	assert.Equal(t, uint16(NOT_IN_REGIONAL_DEX), SpeciesToPokedexNum(SPECIES_BULBASAUR, false))
}

func TestDexNumbersOfNothing(t *testing.T) {
	assert.Zero(t, SpeciesToNationalPokedexNum(SPECIES_NONE))
	assert.Zero(t, SpeciesToHoennPokedexNum(SPECIES_NONE))
	assert.Equal(t, uint16(SPECIES_NONE), NationalPokedexNumToSpecies(0))
	assert.Equal(t, uint16(SPECIES_NONE), HoennPokedexNumToSpecies(0))
	assert.Equal(t, uint16(SPECIES_NONE), NationalPokedexNumToSpecies(999))
	assert.Zero(t, NationalToHoennOrder(999))
	assert.Zero(t, HoennToNationalOrder(999))
}
