package golurk

// Pokedex numbers outside the regional dex
const NOT_IN_REGIONAL_DEX = 0xFFFF

// SpeciesToNationalPokedexNum returns 0 for SPECIES_NONE and unknown species
func SpeciesToNationalPokedexNum(species uint16) uint16 {
	if species == SPECIES_NONE {
		return 0
	}
	return GlobalData.GetSpecies(species).NationalDex
}

// SpeciesToHoennPokedexNum gives species outside the regional dex numbers past HOENN_DEX_COUNT
func SpeciesToHoennPokedexNum(species uint16) uint16 {
	if species == SPECIES_NONE {
		return 0
	}
	return GlobalData.GetSpecies(species).HoennDex
}

// SpeciesToPokedexNum numbers species in whichever dex the player has
func SpeciesToPokedexNum(species uint16, nationalDexEnabled bool) uint16 {
	if nationalDexEnabled {
		return SpeciesToNationalPokedexNum(species)
	}

	hoenn := SpeciesToHoennPokedexNum(species)
	if hoenn <= HOENN_DEX_COUNT {
		return hoenn
	}
	return NOT_IN_REGIONAL_DEX
}

func IsSpeciesInHoennDex(species uint16) bool {
	return SpeciesToHoennPokedexNum(species) <= HOENN_DEX_COUNT
}

// NationalPokedexNumToSpecies returns 0 when no species has the number
func NationalPokedexNumToSpecies(nationalNum uint16) uint16 {
	if nationalNum == 0 {
		return SPECIES_NONE
	}
	return GlobalData.nationalToSpecies[nationalNum]
}

// HoennPokedexNumToSpecies returns 0 when no species has the number
func HoennPokedexNumToSpecies(hoennNum uint16) uint16 {
	if hoennNum == 0 {
		return SPECIES_NONE
	}
	return GlobalData.hoennToSpecies[hoennNum]
}

// NationalToHoennOrder returns 0 when the national number is unknown
func NationalToHoennOrder(nationalNum uint16) uint16 {
	return SpeciesToHoennPokedexNum(NationalPokedexNumToSpecies(nationalNum))
}

// HoennToNationalOrder returns 0 when the regional number is unknown
func HoennToNationalOrder(hoennNum uint16) uint16 {
	return SpeciesToNationalPokedexNum(HoennPokedexNumToSpecies(hoennNum))
}
