package golurk

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// elsewhere is a map section no test creature was met in
var elsewhere = FriendshipContext{MapSec: 1}

func TestFriendshipBands(t *testing.T) {
	tests := []struct {
		name       string
		start      uint32
		event      uint8
		friendship uint32
	}{
		{"low band", 70, FRIENDSHIP_EVENT_GROW_LEVEL, 75},
		{"middle band", 150, FRIENDSHIP_EVENT_GROW_LEVEL, 153},
		{"high band", 250, FRIENDSHIP_EVENT_GROW_LEVEL, 252},
		{"clamps high", 254, FRIENDSHIP_EVENT_GROW_LEVEL, 255},
		{"faint", 70, FRIENDSHIP_EVENT_FAINT_SMALL, 69},
		{"clamps low", 3, FRIENDSHIP_EVENT_FAINT_LARGE, 0},
		{"high band faint", 220, FRIENDSHIP_EVENT_FAINT_LARGE, 210},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mon := newTestMon(SPECIES_BULBASAUR, 5)
			mon.Set(FIELD_FRIENDSHIP, test.start)

			AdjustFriendship(&mon, test.event, elsewhere)
			assert.Equal(t, test.friendship, mon.Get(FIELD_FRIENDSHIP))
		})
	}
}

func TestFriendshipBonuses(t *testing.T) {
	mon := newTestMon(SPECIES_BULBASAUR, 5)
	mon.Set(FIELD_HELD_ITEM, ITEM_SOOTHE_BELL)
	AdjustFriendship(&mon, FRIENDSHIP_EVENT_GROW_LEVEL, elsewhere)
	assert.Equal(t, uint32(77), mon.Get(FIELD_FRIENDSHIP))

	// luxury ball and home turf each add one
	mon = newTestMon(SPECIES_BULBASAUR, 5)
	mon.Set(FIELD_POKEBALL, ITEM_LUXURY_BALL)
	AdjustFriendship(&mon, FRIENDSHIP_EVENT_GROW_LEVEL, FriendshipContext{MapSec: 0})
	assert.Equal(t, uint32(77), mon.Get(FIELD_FRIENDSHIP))

	// losses get no bonus
	mon = newTestMon(SPECIES_BULBASAUR, 5)
	mon.Set(FIELD_POKEBALL, ITEM_LUXURY_BALL)
	AdjustFriendship(&mon, FRIENDSHIP_EVENT_FAINT_SMALL, FriendshipContext{MapSec: 0})
	assert.Equal(t, uint32(69), mon.Get(FIELD_FRIENDSHIP))
}

func TestFriendshipEnigmaBerry(t *testing.T) {
	mon := newTestMon(SPECIES_BULBASAUR, 5)
	mon.Set(FIELD_HELD_ITEM, ITEM_ENIGMA_BERRY)

	ctx := elsewhere
	ctx.EnigmaHoldEffect = HOLD_EFFECT_FRIENDSHIP_UP
	AdjustFriendship(&mon, FRIENDSHIP_EVENT_GROW_LEVEL, ctx)
	assert.Equal(t, uint32(77), mon.Get(FIELD_FRIENDSHIP))
}

func TestFriendshipGatedEvents(t *testing.T) {
	mon := newTestMon(SPECIES_BULBASAUR, 5)

	AdjustFriendship(&mon, FRIENDSHIP_EVENT_LEAGUE_BATTLE, elsewhere)
	assert.Equal(t, uint32(70), mon.Get(FIELD_FRIENDSHIP))

	league := elsewhere
	league.LeagueBattle = true
	AdjustFriendship(&mon, FRIENDSHIP_EVENT_LEAGUE_BATTLE, league)
	assert.Equal(t, uint32(73), mon.Get(FIELD_FRIENDSHIP))

	skip := elsewhere
	skip.SkipChange = true
	AdjustFriendship(&mon, FRIENDSHIP_EVENT_GROW_LEVEL, skip)
	assert.Equal(t, uint32(73), mon.Get(FIELD_FRIENDSHIP))
}

func TestFriendshipWalkingCoinFlip(t *testing.T) {
	mon := newTestMon(SPECIES_BULBASAUR, 5)

	walk := elsewhere
	walk.Rng = rand.New(highSource{})
	AdjustFriendship(&mon, FRIENDSHIP_EVENT_WALKING, walk)
	assert.Equal(t, uint32(70), mon.Get(FIELD_FRIENDSHIP))

	walk.Rng = rand.New(lowSource{})
	AdjustFriendship(&mon, FRIENDSHIP_EVENT_WALKING, walk)
	assert.Equal(t, uint32(71), mon.Get(FIELD_FRIENDSHIP))
}

func TestFriendshipIgnoresEggs(t *testing.T) {
	mon := newTestMon(SPECIES_EEVEE, 5)
	mon.Set(FIELD_IS_EGG, 1)

	AdjustFriendship(&mon, FRIENDSHIP_EVENT_GROW_LEVEL, elsewhere)
	assert.Equal(t, uint32(70), mon.Get(FIELD_FRIENDSHIP))

	var empty Pokemon
	empty.Zero()
	AdjustFriendship(&empty, FRIENDSHIP_EVENT_GROW_LEVEL, elsewhere)
	assert.Equal(t, uint32(0), empty.Get(FIELD_FRIENDSHIP))
}
