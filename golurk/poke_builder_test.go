package golurk

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMonDefaults(t *testing.T) {
	mon := newTestMon(SPECIES_PIKACHU, 12)

	assert.Equal(t, uint16(SPECIES_PIKACHU), mon.Species())
	assert.Equal(t, uint8(12), mon.Level)
	assert.Equal(t, "PIKACHU", mon.Box.Nickname())
	assert.Equal(t, "MAY", mon.Box.OTName())
	assert.Equal(t, testProfile.TrainerID, mon.Get(FIELD_OT_ID))
	assert.Equal(t, uint32(FEMALE), mon.Get(FIELD_OT_GENDER))
	assert.Equal(t, uint32(GAME_LANGUAGE), mon.Get(FIELD_LANGUAGE))
	assert.Equal(t, uint32(GAME_VERSION), mon.Get(FIELD_MET_GAME))
	assert.Equal(t, uint32(12), mon.Get(FIELD_MET_LEVEL))
	assert.Equal(t, uint32(ITEM_POKE_BALL), mon.Get(FIELD_POKEBALL))
	assert.Equal(t, uint32(70), mon.Get(FIELD_FRIENDSHIP))
	assert.Equal(t, GetExpForLevel(GROWTH_MEDIUM_FAST, 12), mon.Get(FIELD_EXP))
	assert.Equal(t, uint8(MAIL_NONE), mon.Mail)
	assert.Equal(t, mon.MaxHP, mon.HP)
	assert.False(t, IsTradedMon(&mon.Box, testProfile))
}

func TestCreateMonIVs(t *testing.T) {
	fixed := CreateMon(SPECIES_BULBASAUR, 50, MAX_IV, false, 0, OT_ID_PLAYER_ID, 0, testProfile, seededRng())
	for _, f := range IV_FIELDS {
		assert.Equal(t, uint32(MAX_IV), fixed.Get(f))
	}

	// every draw is 0xFFFF, so every 5 bit slice is all ones
	random := CreateMon(SPECIES_BULBASAUR, 50, USE_RANDOM_IVS, false, 0, OT_ID_PLAYER_ID, 0, testProfile, rand.New(highSource{}))
	for _, f := range IV_FIELDS {
		assert.Equal(t, uint32(MAX_IV), random.Get(f))
	}
	assert.Equal(t, uint32(0xFFFFFFFF), random.Get(FIELD_PERSONALITY))
}

func TestCreateMonOTModes(t *testing.T) {
	preset := CreateMon(SPECIES_BULBASAUR, 5, 0, true, 0, OT_ID_PRESET, 0xCAFE, testProfile, seededRng())
	assert.Equal(t, uint32(0xCAFE), preset.Get(FIELD_OT_ID))
	assert.True(t, IsTradedMon(&preset.Box, testProfile))

	rng := seededRng()
	for range 20 {
		mon := CreateMon(SPECIES_BULBASAUR, 5, 0, false, 0, OT_ID_RANDOM_NO_SHINY, 0, testProfile, rng)
		require.False(t, IsShiny(&mon.Box))
	}
}

func TestCreateMonAbilitySlot(t *testing.T) {
	first := CreateMon(SPECIES_ABRA, 5, 0, true, 2, OT_ID_PLAYER_ID, 0, testProfile, seededRng())
	second := CreateMon(SPECIES_ABRA, 5, 0, true, 3, OT_ID_PLAYER_ID, 0, testProfile, seededRng())
	assert.Equal(t, uint8(ABILITY_SYNCHRONIZE), GetMonAbility(&first))
	assert.Equal(t, uint8(ABILITY_INNER_FOCUS), GetMonAbility(&second))

	// one ability species never use the second slot
	pikachu := CreateMon(SPECIES_PIKACHU, 5, 0, true, 1, OT_ID_PLAYER_ID, 0, testProfile, seededRng())
	assert.Zero(t, pikachu.Get(FIELD_ABILITY_NUM))
}

func TestCreationVariants(t *testing.T) {
	t.Run("nature", func(t *testing.T) {
		mon := CreateMonWithNature(SPECIES_BULBASAUR, 5, 0, NATURE_ADAMANT, testProfile, seededRng())
		assert.Equal(t, uint8(NATURE_ADAMANT), GetNatureFromPersonality(mon.Get(FIELD_PERSONALITY)))
	})

	t.Run("gender and nature", func(t *testing.T) {
		mon := CreateMonWithGenderNature(SPECIES_BULBASAUR, 5, 0, MON_FEMALE, NATURE_BRAVE, testProfile, seededRng())
		assert.Equal(t, uint8(MON_FEMALE), GetGender(&mon))
		assert.Equal(t, uint8(NATURE_BRAVE), GetNatureFromPersonality(mon.Get(FIELD_PERSONALITY)))
	})

	t.Run("male", func(t *testing.T) {
		mon := CreateMaleMon(SPECIES_BULBASAUR, 5, testProfile, seededRng())
		assert.Equal(t, uint8(MON_MALE), GetGender(&mon))
	})

	t.Run("packed ivs", func(t *testing.T) {
		mon := CreateMonWithIVsPersonality(SPECIES_BULBASAUR, 50, MAX_IV, 0, testProfile, seededRng())
		assert.Equal(t, uint32(MAX_IV), mon.Get(FIELD_HP_IV))
		assert.Zero(t, mon.Get(FIELD_ATK_IV))
		assert.Equal(t, uint16(120), mon.MaxHP)
	})

	t.Run("ivs and ot id", func(t *testing.T) {
		mon := CreateMonWithIVsOTID(SPECIES_BULBASAUR, 50, [NUM_STATS]uint8{MAX_IV, 0, 0, 0, 0, 0}, 0xABCD, testProfile, seededRng())
		assert.Equal(t, uint32(0xABCD), mon.Get(FIELD_OT_ID))
		assert.Equal(t, uint32(MAX_IV), mon.Get(FIELD_HP_IV))
		assert.Equal(t, uint16(120), mon.MaxHP)
	})

	t.Run("ev spread", func(t *testing.T) {
		mon := CreateMonWithEVSpread(SPECIES_BULBASAUR, 50, 0, 0b11, testProfile, seededRng())
		assert.Equal(t, uint32(255), mon.Get(FIELD_HP_EV))
		assert.Equal(t, uint32(255), mon.Get(FIELD_ATK_EV))
		assert.Zero(t, mon.Get(FIELD_DEF_EV))
		assert.Equal(t, uint32(MAX_TOTAL_EVS), GetEVTotal(&mon))

		even := CreateMonWithEVSpread(SPECIES_BULBASAUR, 50, 0, 0b111111, testProfile, seededRng())
		for _, f := range EV_FIELDS {
			assert.Equal(t, uint32(85), even.Get(f))
		}
	})
}

func TestBuilderMetLocation(t *testing.T) {
	mon := NewPokeBuilder(SPECIES_PIKACHU, 5, seededRng()).SetProfile(testProfile).SetMetLocation(16).SetPerfectIVs().Build()
	assert.Equal(t, uint32(16), mon.Get(FIELD_MET_LOCATION))
	assert.Equal(t, uint32(MAX_IV), mon.Get(FIELD_SPEED_IV))
}
