package golurk

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// Party is a caller-owned, fixed-capacity ordered collection of creatures.
// Count caches the number of leading occupied slots and is refreshed by CalculateCount.
type Party struct {
	Mons  [PARTY_SIZE]Pokemon
	Count uint8
}

func NewParty() *Party {
	party := &Party{}
	party.Zero()
	return party
}

// Zero empties every slot
func (p *Party) Zero() {
	for i := range p.Mons {
		p.Mons[i].Zero()
	}
	p.Count = 0
}

// CalculateCount counts the occupied slots from the front, stopping at the first empty one
func (p *Party) CalculateCount() uint8 {
	p.Count = 0
	for p.Count < PARTY_SIZE && !p.Mons[p.Count].IsEmpty() {
		p.Count++
	}

	return p.Count
}

// Active returns the occupied slots in order
func (p *Party) Active() []*Pokemon {
	p.CalculateCount()
	return lo.Map(p.Mons[:p.Count], func(_ Pokemon, i int) *Pokemon {
		return &p.Mons[i]
	})
}

// IsFull reports whether every slot holds a creature
func (p *Party) IsFull() bool {
	return lo.EveryBy(p.Mons[:], func(mon Pokemon) bool {
		return !mon.IsEmpty()
	})
}

func (p *Party) firstEmpty() int {
	_, i, found := lo.FindIndexOf(p.Mons[:], func(mon Pokemon) bool {
		return mon.IsEmpty()
	})
	if !found {
		return -1
	}

	return i
}

// GiveMonToPlayer stamps the profile's OT data on mon and puts it in the first free party slot.
// A full party sends it to the PC instead.
func GiveMonToPlayer(mon *Pokemon, party *Party, pc *BoxStorage, profile Profile) uint8 {
	mon.SetBytes(FIELD_OT_NAME, EncodeName(profile.Name, PLAYER_NAME_LENGTH))
	mon.Set(FIELD_OT_GENDER, uint32(profile.Gender))
	mon.Set(FIELD_OT_ID, profile.TrainerID)

	i := party.firstEmpty()
	if i < 0 {
		return SendMonToPC(mon, pc)
	}

	party.Mons[i] = *mon
	party.Count = uint8(i + 1)
	return MON_GIVEN_TO_PARTY
}

// MonsStateToDoubles reports whether the party can enter a double battle.
// A one-member party is PLAYER_HAS_ONE_MON, otherwise the non-egg members with HP are counted.
func MonsStateToDoubles(party *Party) uint8 {
	if party.CalculateCount() == 1 {
		return PLAYER_HAS_ONE_MON
	}

	alive := lo.CountBy(party.Mons[:party.Count], func(mon Pokemon) bool {
		species := mon.Get(FIELD_SPECIES2)
		return species != SPECIES_EGG && species != SPECIES_NONE && mon.HP != 0
	})

	if alive > 1 {
		return PLAYER_HAS_TWO_USABLE_MONS
	}
	return PLAYER_HAS_ONE_USABLE_MON
}

// IsPartyAndStorageFull reports whether a new creature has nowhere to go
func IsPartyAndStorageFull(party *Party, pc *BoxStorage) bool {
	return party.IsFull() && pc.IsFull()
}

// RandomParty fills count slots (capped at PARTY_SIZE) with random loaded species at levels in
// [minLevel, maxLevel], random natures and random IVs, all owned by profile. Held items are rolled
// the way a wild encounter rolls them.
func RandomParty(count int, minLevel uint8, maxLevel uint8, profile Profile, rng *rand.Rand) *Party {
	if rng == nil {
		rng = internalRng
	}
	if maxLevel < minLevel {
		minLevel, maxLevel = maxLevel, minLevel
	}

	party := NewParty()
	species := GlobalData.SpeciesIds()
	if len(species) == 0 {
		return party
	}

	for i := range min(count, PARTY_SIZE) {
		level := minLevel + uint8(rng.IntN(int(maxLevel-minLevel)+1))
		party.Mons[i] = NewPokeBuilder(species[rng.IntN(len(species))], level, rng).
			SetRandomIVs().
			SetNature(uint8(rng.IntN(NUM_NATURES))).
			SetProfile(profile).
			Build()
		SetWildMonHeldItem(&party.Mons[i], nil, rng)
	}

	party.CalculateCount()
	return party
}
