package golurk

import (
	"math/bits"
	"math/rand/v2"

	"github.com/go-logr/logr"
)

var builderLogger = func() logr.Logger {
	return internalLogger.WithName("pokemon-builder")
}

// Profile is the player data creation reads: OT id, OT name and OT gender.
type Profile struct {
	TrainerID uint32
	Name      string
	Gender    uint8
}

// PokemonBuilder creates creatures the way the game does. Everything left unset is rolled
// from rng: random personality, random IVs and the profile's trainer id as OT.
type PokemonBuilder struct {
	species     uint16
	level       uint8
	fixedIV     uint8
	personality *uint32
	otIdMode    uint8
	fixedOtId   uint32
	profile     Profile
	metLocation uint8
	rng         *rand.Rand

	// applied after the initial stat calculation
	ivs      *[NUM_STATS]uint8
	evSpread uint8
}

func NewPokeBuilder(species uint16, level uint8, rng *rand.Rand) *PokemonBuilder {
	return &PokemonBuilder{
		species:  species,
		level:    level,
		fixedIV:  USE_RANDOM_IVS,
		otIdMode: OT_ID_PLAYER_ID,
		rng:      rng,
	}
}

// SetFixedIV gives every stat the same IV. Values above MAX_IV mean random IVs.
func (pb *PokemonBuilder) SetFixedIV(iv uint8) *PokemonBuilder {
	pb.fixedIV = iv
	return pb
}

func (pb *PokemonBuilder) SetPerfectIVs() *PokemonBuilder {
	return pb.SetFixedIV(MAX_IV)
}

func (pb *PokemonBuilder) SetRandomIVs() *PokemonBuilder {
	return pb.SetFixedIV(USE_RANDOM_IVS)
}

// SetIVs overrides the IVs after creation, so the creation rolls are still consumed
func (pb *PokemonBuilder) SetIVs(ivs [NUM_STATS]uint8) *PokemonBuilder {
	pb.ivs = &ivs
	return pb
}

func (pb *PokemonBuilder) SetPersonality(personality uint32) *PokemonBuilder {
	pb.personality = &personality
	return pb
}

// SetNature rolls personalities until one carries nature
func (pb *PokemonBuilder) SetNature(nature uint8) *PokemonBuilder {
	if nature >= NUM_NATURES {
		builderLogger().Info("ignoring invalid nature", "nature", nature)
		return pb
	}

	var personality uint32
	for {
		personality = Random32(pb.rng)
		if GetNatureFromPersonality(personality) == nature {
			break
		}
	}

	return pb.SetPersonality(personality)
}

// SetGenderAndNature rolls personalities until one gives both gender and nature for the species.
// Asking for a gender the species cannot have never returns.
func (pb *PokemonBuilder) SetGenderAndNature(gender uint8, nature uint8) *PokemonBuilder {
	var personality uint32
	for {
		personality = Random32(pb.rng)
		if GetNatureFromPersonality(personality) == nature && GetGenderFromSpeciesAndPersonality(pb.species, personality) == gender {
			break
		}
	}

	return pb.SetPersonality(personality)
}

// SetMale rolls a random OT id and personality pair until the result is male
func (pb *PokemonBuilder) SetMale() *PokemonBuilder {
	var otId, personality uint32
	for {
		otId = Random32(pb.rng)
		personality = Random32(pb.rng)
		if GetGenderFromSpeciesAndPersonality(pb.species, personality) == MON_MALE {
			break
		}
	}

	return pb.SetPersonality(personality).SetOTID(OT_ID_PRESET, otId)
}

// SetOTID picks how the OT id is chosen. id is only used by OT_ID_PRESET.
func (pb *PokemonBuilder) SetOTID(mode uint8, id uint32) *PokemonBuilder {
	pb.otIdMode = mode
	pb.fixedOtId = id
	return pb
}

func (pb *PokemonBuilder) SetProfile(profile Profile) *PokemonBuilder {
	pb.profile = profile
	return pb
}

func (pb *PokemonBuilder) SetMetLocation(mapSec uint8) *PokemonBuilder {
	pb.metLocation = mapSec
	return pb
}

// SetEVSpread splits MAX_TOTAL_EVS evenly over the stats whose bit is set (bit 0 = HP)
func (pb *PokemonBuilder) SetEVSpread(spread uint8) *PokemonBuilder {
	pb.evSpread = spread & (1<<NUM_STATS - 1)
	return pb
}

func (pb *PokemonBuilder) rollOTID(personality uint32) uint32 {
	switch pb.otIdMode {
	case OT_ID_RANDOM_NO_SHINY:
		var value uint32
		for {
			value = Random32(pb.rng)
			if !IsShinyOTIDPersonality(value, personality) {
				return value
			}
		}
	case OT_ID_PRESET:
		return pb.fixedOtId
	default:
		return pb.profile.TrainerID
	}
}

// BuildBox creates the storable record
func (pb *PokemonBuilder) BuildBox() BoxMon {
	var box BoxMon
	box.Zero()

	var personality uint32
	if pb.personality != nil {
		personality = *pb.personality
	} else {
		personality = Random32(pb.rng)
	}

	box.Set(FIELD_PERSONALITY, personality)
	box.Set(FIELD_OT_ID, pb.rollOTID(personality))
	box.resetPayload()

	info := GlobalData.GetSpecies(pb.species)

	box.SetBytes(FIELD_NICKNAME, EncodeName(GetSpeciesName(pb.species), POKEMON_NAME_LENGTH))
	box.Set(FIELD_LANGUAGE, GAME_LANGUAGE)
	box.SetBytes(FIELD_OT_NAME, EncodeName(pb.profile.Name, PLAYER_NAME_LENGTH))
	box.Set(FIELD_SPECIES, uint32(pb.species))
	box.Set(FIELD_EXP, GetExpForLevel(info.GrowthRate, pb.level))
	box.Set(FIELD_FRIENDSHIP, uint32(info.Friendship))
	box.Set(FIELD_MET_LOCATION, uint32(pb.metLocation))
	box.Set(FIELD_MET_LEVEL, uint32(pb.level))
	box.Set(FIELD_MET_GAME, GAME_VERSION)
	box.Set(FIELD_POKEBALL, ITEM_POKE_BALL)
	box.Set(FIELD_OT_GENDER, uint32(pb.profile.Gender))

	if pb.fixedIV < USE_RANDOM_IVS {
		for _, f := range IV_FIELDS {
			box.Set(f, uint32(pb.fixedIV))
		}
	} else {
		// two draws, three 5 bit IVs each
		for group := range 2 {
			value := uint32(Random(pb.rng))
			for i := range 3 {
				box.Set(IV_FIELDS[group*3+i], (value>>(5*i))&MAX_IV)
			}
		}
	}

	if info.Abilities[1] != ABILITY_NONE {
		box.Set(FIELD_ABILITY_NUM, personality&1)
	}

	GiveInitialMoveset(&box)

	builderLogger().V(1).Info("built box mon", "species", pb.species, "level", pb.level, "personality", personality)
	return box
}

// Build creates the party form of the creature with its stats calculated
func (pb *PokemonBuilder) Build() Pokemon {
	var mon Pokemon
	mon.Zero()
	mon.Box = pb.BuildBox()
	mon.Level = pb.level
	mon.Mail = MAIL_NONE
	CalculateMonStats(&mon)

	if pb.ivs != nil {
		for i, f := range IV_FIELDS {
			mon.Set(f, uint32(pb.ivs[i]))
		}
		CalculateMonStats(&mon)
	}

	if pb.evSpread != 0 {
		amount := uint32(MAX_TOTAL_EVS / bits.OnesCount8(pb.evSpread))
		for i, f := range EV_FIELDS {
			if pb.evSpread&(1<<i) != 0 {
				mon.Set(f, amount)
			}
		}
		CalculateMonStats(&mon)
	}

	return mon
}

// CreateMon is the plain creation entry point: random personality unless hasFixedPersonality,
// OT chosen by otIdMode.
func CreateMon(species uint16, level uint8, fixedIV uint8, hasFixedPersonality bool, fixedPersonality uint32,
	otIdMode uint8, fixedOtId uint32, profile Profile, rng *rand.Rand) Pokemon {
	pb := NewPokeBuilder(species, level, rng).SetFixedIV(fixedIV).SetOTID(otIdMode, fixedOtId).SetProfile(profile)
	if hasFixedPersonality {
		pb.SetPersonality(fixedPersonality)
	}

	return pb.Build()
}

func CreateMonWithNature(species uint16, level uint8, fixedIV uint8, nature uint8, profile Profile, rng *rand.Rand) Pokemon {
	return NewPokeBuilder(species, level, rng).SetFixedIV(fixedIV).SetProfile(profile).SetNature(nature).Build()
}

func CreateMonWithGenderNature(species uint16, level uint8, fixedIV uint8, gender uint8, nature uint8, profile Profile, rng *rand.Rand) Pokemon {
	return NewPokeBuilder(species, level, rng).SetFixedIV(fixedIV).SetProfile(profile).SetGenderAndNature(gender, nature).Build()
}

func CreateMaleMon(species uint16, level uint8, profile Profile, rng *rand.Rand) Pokemon {
	return NewPokeBuilder(species, level, rng).SetProfile(profile).SetMale().Build()
}

// CreateMonWithIVsPersonality creates with zero IVs, then applies the packed ivs word
func CreateMonWithIVsPersonality(species uint16, level uint8, ivs uint32, personality uint32, profile Profile, rng *rand.Rand) Pokemon {
	mon := NewPokeBuilder(species, level, rng).SetFixedIV(0).SetPersonality(personality).SetProfile(profile).Build()
	mon.Set(FIELD_IVS, ivs)
	CalculateMonStats(&mon)
	return mon
}

func CreateMonWithIVsOTID(species uint16, level uint8, ivs [NUM_STATS]uint8, otId uint32, profile Profile, rng *rand.Rand) Pokemon {
	return NewPokeBuilder(species, level, rng).SetFixedIV(0).SetOTID(OT_ID_PRESET, otId).SetProfile(profile).SetIVs(ivs).Build()
}

func CreateMonWithEVSpread(species uint16, level uint8, fixedIV uint8, evSpread uint8, profile Profile, rng *rand.Rand) Pokemon {
	return NewPokeBuilder(species, level, rng).SetFixedIV(fixedIV).SetProfile(profile).SetEVSpread(evSpread).Build()
}
