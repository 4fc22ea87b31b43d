package partyview

import (
	"math/rand/v2"
	"os"
	"strings"
	"testing"

	"github.com/nathanieltooley/boxmon/data"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profile = golurk.Profile{TrainerID: 0x0001E240, Name: "MAY", Gender: golurk.FEMALE}

func TestMain(m *testing.M) {
	if errs := golurk.DefaultLoader(data.Files); len(errs) != 0 {
		panic(errs[0])
	}

	os.Exit(m.Run())
}

func newMon(species uint16, level uint8) golurk.Pokemon {
	rng := rand.New(rand.NewPCG(1, 2))
	return golurk.NewPokeBuilder(species, level, rng).SetFixedIV(0).SetPersonality(0).SetProfile(profile).Build()
}

func partyOf(mons ...golurk.Pokemon) *golurk.Party {
	party := golurk.NewParty()
	copy(party.Mons[:], mons)
	party.CalculateCount()
	return party
}

func containsLine(lines []string, part string) bool {
	for _, line := range lines {
		if strings.Contains(line, part) {
			return true
		}
	}
	return false
}

func TestEvolveMon(t *testing.T) {
	mon := newMon(golurk.SPECIES_PIKACHU, 20)
	maxHP := mon.MaxHP

	evolveMon(&mon, golurk.SPECIES_RAICHU)
	assert.Equal(t, uint16(golurk.SPECIES_RAICHU), mon.Species())
	assert.Equal(t, "RAICHU", mon.Box.Nickname())
	assert.Greater(t, mon.MaxHP, maxHP)
}

func TestEvolveMonKeepsNickname(t *testing.T) {
	mon := newMon(golurk.SPECIES_PIKACHU, 20)
	mon.SetBytes(golurk.FIELD_NICKNAME, golurk.EncodeName("SPARKY", golurk.POKEMON_NAME_LENGTH))

	evolveMon(&mon, golurk.SPECIES_RAICHU)
	assert.Equal(t, "SPARKY", mon.Box.Nickname())
}

func TestTryEvolve(t *testing.T) {
	party := partyOf(newMon(golurk.SPECIES_BULBASAUR, 15), newMon(golurk.SPECIES_BULBASAUR, 16))

	assert.Equal(t, "BULBASAUR can't evolve right now.", tryEvolve(party, 0, golurk.FixedClock(12)))
	assert.Equal(t, uint16(golurk.SPECIES_BULBASAUR), party.Mons[0].Species())

	assert.Equal(t, "BULBASAUR evolved into IVYSAUR!", tryEvolve(party, 1, golurk.FixedClock(12)))
	assert.Equal(t, uint16(golurk.SPECIES_IVYSAUR), party.Mons[1].Species())
}

func TestTryEvolveSpawnsShedinja(t *testing.T) {
	party := partyOf(newMon(golurk.SPECIES_NINCADA, 20))

	message := tryEvolve(party, 0, nil)
	assert.Equal(t, "NINCADA evolved into NINJASK! SHEDINJA joined the party.", message)

	require.Equal(t, uint8(2), party.Count)
	assert.Equal(t, uint16(golurk.SPECIES_NINJASK), party.Mons[0].Species())
	assert.Equal(t, uint16(golurk.SPECIES_SHEDINJA), party.Mons[1].Species())
	assert.Equal(t, "SHEDINJA", party.Mons[1].Box.Nickname())
	assert.Equal(t, uint16(1), party.Mons[1].MaxHP)
}

func TestTryEvolveFullPartyHasNoShedinja(t *testing.T) {
	filler := newMon(golurk.SPECIES_PIKACHU, 5)
	party := partyOf(newMon(golurk.SPECIES_NINCADA, 20), filler, filler, filler, filler, filler)

	assert.Equal(t, "NINCADA evolved into NINJASK!", tryEvolve(party, 0, nil))
	assert.Equal(t, uint16(golurk.SPECIES_PIKACHU), party.Mons[5].Species())
}

func TestUseRareCandy(t *testing.T) {
	party := partyOf(newMon(golurk.SPECIES_BULBASAUR, 9))

	messages := useItem(party, 0, golurk.ITEM_RARE_CANDY, 0, nil)
	assert.Equal(t, "Used Rare Candy on BULBASAUR.", messages[0])
	assert.True(t, containsLine(messages, "BULBASAUR grew to Lv. 10!"))
	assert.True(t, containsLine(messages, "BULBASAUR learned Vine Whip!"))
	assert.Equal(t, uint8(10), party.Mons[0].Level)
}

func TestUseRareCandyEvolves(t *testing.T) {
	party := partyOf(newMon(golurk.SPECIES_BULBASAUR, 15))

	messages := useItem(party, 0, golurk.ITEM_RARE_CANDY, 0, nil)
	assert.True(t, containsLine(messages, "grew to Lv. 16!"))
	assert.True(t, containsLine(messages, "evolved into IVYSAUR!"))
	assert.Equal(t, uint16(golurk.SPECIES_IVYSAUR), party.Mons[0].Species())
}

func TestUseEvolutionStone(t *testing.T) {
	party := partyOf(newMon(golurk.SPECIES_PIKACHU, 10))

	messages := useItem(party, 0, golurk.ITEM_THUNDER_STONE, 0, nil)
	assert.Equal(t, []string{"Used Thunder Stone on PIKACHU.", "PIKACHU evolved into RAICHU!"}, messages)
	assert.Equal(t, uint16(golurk.SPECIES_RAICHU), party.Mons[0].Species())
}

func TestUseItemWithoutEffect(t *testing.T) {
	party := partyOf(newMon(golurk.SPECIES_PIKACHU, 10))
	before := party.Mons[0]

	assert.Equal(t, []string{"It won't have any effect."}, useItem(party, 0, golurk.ITEM_POTION, 0, nil))
	assert.Equal(t, before, party.Mons[0])
}

func TestNeedsMove(t *testing.T) {
	assert.True(t, needsMove(golurk.ITEM_ETHER))
	assert.True(t, needsMove(golurk.ITEM_PP_UP))
	assert.False(t, needsMove(golurk.ITEM_ELIXIR))
	assert.False(t, needsMove(golurk.ITEM_POTION))
	assert.False(t, needsMove(golurk.ITEM_POKE_BALL))
}

func TestDepositMember(t *testing.T) {
	pc := golurk.NewBoxStorage()
	party := partyOf(newMon(golurk.SPECIES_PIKACHU, 10), newMon(golurk.SPECIES_ABRA, 10), newMon(golurk.SPECIES_EEVEE, 10))

	message, err := depositMember(party, pc, 0)
	require.NoError(t, err)
	assert.Equal(t, "PIKACHU was sent to box 1.", message)
	assert.Equal(t, uint8(2), party.Count)
	assert.Equal(t, uint16(golurk.SPECIES_ABRA), party.Mons[0].Species())
	assert.Equal(t, uint16(golurk.SPECIES_EEVEE), party.Mons[1].Species())
	assert.True(t, party.Mons[2].IsEmpty())
	assert.Equal(t, uint32(golurk.SPECIES_PIKACHU), pc.Boxes[0][0].Get(golurk.FIELD_SPECIES))

	// the last conscious member stays
	party.Mons[1].HP = 0
	_, err = depositMember(party, pc, 0)
	assert.ErrorContains(t, err, "last conscious")

	// fainted members can go
	_, err = depositMember(party, pc, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), party.Count)

	_, err = depositMember(party, pc, 0)
	assert.ErrorContains(t, err, "only party member")

	_, err = depositMember(party, pc, 4)
	assert.Error(t, err)
}

func TestDepositIntoFullPC(t *testing.T) {
	pc := golurk.NewBoxStorage()
	filler := newMon(golurk.SPECIES_ABRA, 5)
	for b := range pc.Boxes {
		for i := range pc.Boxes[b] {
			pc.Boxes[b][i] = filler.Box
		}
	}

	party := partyOf(newMon(golurk.SPECIES_PIKACHU, 10), newMon(golurk.SPECIES_EEVEE, 10))
	_, err := depositMember(party, pc, 0)
	assert.ErrorIs(t, err, ErrPCFull)
	assert.Equal(t, uint8(2), party.Count)
}
