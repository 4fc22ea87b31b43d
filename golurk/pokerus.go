package golurk

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// The pokerus byte packs the strain in the upper nibble and the remaining days in the lower nibble.
// A strain with no days left is cured: still counted for "has had" but no longer contagious.
const (
	POKERUS_DAYS_MASK   = 0x0F
	POKERUS_STRAIN_MASK = 0xF0
	POKERUS_CURED       = 0x10
	POKERUS_MAX_DECAY   = 4
)

func selectionMask(party *Party, selection uint8, test func(pokerus uint32) bool) uint8 {
	if selection == 0 {
		return boolToUint8(test(party.Mons[0].Get(FIELD_POKERUS)))
	}

	var result uint8
	for i := 0; selection != 0 && i < PARTY_SIZE; i++ {
		if selection&1 != 0 && test(party.Mons[i].Get(FIELD_POKERUS)) {
			result |= 1 << i
		}
		selection >>= 1
	}

	return result
}

// CheckPokerus returns the members of selection (bit i = slot i) that are currently infected.
// A zero selection checks only the first slot.
func CheckPokerus(party *Party, selection uint8) uint8 {
	return selectionMask(party, selection, func(pokerus uint32) bool {
		return pokerus&POKERUS_DAYS_MASK != 0
	})
}

// CheckHasHadPokerus is CheckPokerus but also counts cured members
func CheckHasHadPokerus(party *Party, selection uint8) uint8 {
	return selectionMask(party, selection, func(pokerus uint32) bool {
		return pokerus != 0
	})
}

// rollPokerusStrain never returns an infection with zero days left
func rollPokerusStrain(rng *rand.Rand) uint8 {
	var strain uint8
	for {
		strain = uint8(Random(rng))
		if strain&0x7 != 0 {
			break
		}
	}

	if strain&0xF0 != 0 {
		strain &= 0x7
	}
	strain |= strain << 4
	strain &= 0xF3
	strain++

	return strain
}

// RandomlyGivePokerus gives a random non-egg member pokerus on three of every 65536 draws.
// Members that have already had it are immune. Returns whether a member was infected.
func RandomlyGivePokerus(party *Party, rng *rand.Rand) bool {
	switch Random(rng) {
	case 0x4000, 0x8000, 0xC000:
	default:
		return false
	}

	eligible := lo.ContainsBy(party.Mons[:], func(mon Pokemon) bool {
		return !mon.IsEmpty() && mon.Get(FIELD_IS_EGG) == 0
	})
	if !eligible {
		return false
	}

	var slot int
	for {
		slot = int(Random(rng) % PARTY_SIZE)
		mon := &party.Mons[slot]
		if !mon.IsEmpty() && mon.Get(FIELD_IS_EGG) == 0 {
			break
		}
	}

	if CheckHasHadPokerus(party, 1<<slot) != 0 {
		return false
	}

	strain := rollPokerusStrain(rng)
	party.Mons[slot].Set(FIELD_POKERUS, uint32(strain))
	growthLogger().V(1).Info("pokerus infection", "slot", slot, "strain", strain)
	return true
}

// UpdatePokerusTime counts days down on every infected member.
// Running out, or more than POKERUS_MAX_DECAY days passing at once, cures it.
func UpdatePokerusTime(party *Party, days uint16) {
	for i := range party.Mons {
		mon := &party.Mons[i]
		if mon.IsEmpty() {
			continue
		}

		pokerus := uint8(mon.Get(FIELD_POKERUS))
		if pokerus&POKERUS_DAYS_MASK == 0 {
			continue
		}

		if uint16(pokerus&POKERUS_DAYS_MASK) < days || days > POKERUS_MAX_DECAY {
			pokerus &= POKERUS_STRAIN_MASK
		} else {
			pokerus -= uint8(days)
		}

		if pokerus == 0 {
			pokerus = POKERUS_CURED
		}

		mon.Set(FIELD_POKERUS, uint32(pokerus))
	}
}

// SpreadPokerus gives, on one of three draws, each infected member's pokerus to its neighbours.
// Members that have ever carried a strain are immune. A right neighbour infected this way
// does not spread further this call.
func SpreadPokerus(party *Party, rng *rand.Rand) {
	if Random(rng)%3 != 0 {
		return
	}

	for i := 0; i < PARTY_SIZE; i++ {
		mon := &party.Mons[i]
		if mon.IsEmpty() {
			continue
		}

		pokerus := mon.Get(FIELD_POKERUS)
		if pokerus&POKERUS_DAYS_MASK == 0 {
			continue
		}

		if i != 0 && party.Mons[i-1].Get(FIELD_POKERUS)&POKERUS_STRAIN_MASK == 0 {
			party.Mons[i-1].Set(FIELD_POKERUS, pokerus)
		}
		if i != PARTY_SIZE-1 && party.Mons[i+1].Get(FIELD_POKERUS)&POKERUS_STRAIN_MASK == 0 {
			party.Mons[i+1].Set(FIELD_POKERUS, pokerus)
			i++
		}
	}
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
