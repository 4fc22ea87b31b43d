package golurk

import "bytes"

// GetGenderFromSpeciesAndPersonality compares the low personality byte against the species
// gender ratio. Single gender and genderless species return their ratio constant.
func GetGenderFromSpeciesAndPersonality(species uint16, personality uint32) uint8 {
	ratio := GlobalData.GetSpecies(species).GenderRatio

	switch ratio {
	case MON_MALE, MON_FEMALE, MON_GENDERLESS:
		return ratio
	}

	if ratio > uint8(personality&0xFF) {
		return MON_FEMALE
	}

	return MON_MALE
}

func GetBoxMonGender(box *BoxMon) uint8 {
	return GetGenderFromSpeciesAndPersonality(uint16(box.Get(FIELD_SPECIES)), box.Get(FIELD_PERSONALITY))
}

func GetGender(mon *Pokemon) uint8 {
	return GetBoxMonGender(&mon.Box)
}

func IsShinyOTIDPersonality(otId uint32, personality uint32) bool {
	shinyValue := (otId >> 16) ^ (otId & 0xFFFF) ^ (personality >> 16) ^ (personality & 0xFFFF)
	return shinyValue < SHINY_ODDS
}

func IsShiny(box *BoxMon) bool {
	return IsShinyOTIDPersonality(box.Get(FIELD_OT_ID), box.Get(FIELD_PERSONALITY))
}

// GetAbilityBySpecies returns the ability in slot abilityNum. An empty second slot falls back to the first.
func GetAbilityBySpecies(species uint16, abilityNum uint8) uint8 {
	abilities := GlobalData.GetSpecies(species).Abilities
	if abilityNum != 0 && abilities[1] != ABILITY_NONE {
		return abilities[1]
	}

	return abilities[0]
}

func GetMonAbility(mon *Pokemon) uint8 {
	return GetAbilityBySpecies(mon.Species(), uint8(mon.Get(FIELD_ABILITY_NUM)))
}

// IsOtherTrainer reports whether otId / otName belong to someone other than the profile.
// Only the name bytes before EOS are compared.
func IsOtherTrainer(otId uint32, otName []byte, profile Profile) bool {
	if otId != profile.TrainerID {
		return true
	}

	n := StringLength(otName)
	playerName := EncodeName(profile.Name, PLAYER_NAME_LENGTH)
	if n > len(playerName) {
		return true
	}

	return !bytes.Equal(otName[:n], playerName[:n])
}

// IsTradedMon reports whether the creature was caught by someone other than the profile
func IsTradedMon(box *BoxMon, profile Profile) bool {
	return IsOtherTrainer(box.Get(FIELD_OT_ID), box.GetBytes(FIELD_OT_NAME), profile)
}
