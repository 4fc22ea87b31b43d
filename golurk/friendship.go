package golurk

import (
	"math/rand/v2"

	"github.com/go-logr/logr"
)

var growthLogger = func() logr.Logger {
	return internalLogger.WithName("growth")
}

var friendshipEventModifiers = [...][3]int8{
	FRIENDSHIP_EVENT_GROW_LEVEL:      {5, 3, 2},
	FRIENDSHIP_EVENT_VITAMIN:         {5, 3, 2},
	FRIENDSHIP_EVENT_BATTLE_ITEM:     {1, 1, 0},
	FRIENDSHIP_EVENT_LEAGUE_BATTLE:   {3, 2, 1},
	FRIENDSHIP_EVENT_LEARN_TMHM:      {1, 1, 0},
	FRIENDSHIP_EVENT_WALKING:         {1, 1, 1},
	FRIENDSHIP_EVENT_FAINT_SMALL:     {-1, -1, -1},
	FRIENDSHIP_EVENT_FAINT_FIELD_PSN: {-5, -5, -10},
	FRIENDSHIP_EVENT_FAINT_LARGE:     {-5, -5, -10},
}

// FriendshipContext carries the game state friendship changes depend on
type FriendshipContext struct {
	// Battle facilities freeze friendship
	SkipChange bool
	// Opponent is a gym leader, elite four member or champion
	LeagueBattle bool
	// Region map section the player is standing in
	MapSec uint8
	// Hold effect of the player's enigma berry
	EnigmaHoldEffect uint8

	Rng *rand.Rand
}

// heldItemEffect resolves the hold effect of the mon's item, reading the enigma berry from ctx
func heldItemEffect(mon *Pokemon, enigmaHoldEffect uint8) uint8 {
	heldItem := uint16(mon.Get(FIELD_HELD_ITEM))
	if heldItem == ITEM_ENIGMA_BERRY {
		return enigmaHoldEffect
	}

	return GlobalData.ItemHoldEffect(heldItem)
}

func friendshipBand(friendship int) int {
	band := 0
	if friendship > 99 {
		band++
	}
	if friendship > 199 {
		band++
	}
	return band
}

// AdjustFriendship applies the friendship change of event to mon. Eggs and empty slots are left alone.
func AdjustFriendship(mon *Pokemon, event uint8, ctx FriendshipContext) {
	if ctx.SkipChange || int(event) >= len(friendshipEventModifiers) {
		return
	}

	species := mon.Get(FIELD_SPECIES2)
	if species == SPECIES_NONE || species == SPECIES_EGG {
		return
	}

	if event == FRIENDSHIP_EVENT_WALKING && Random(ctx.Rng)&1 != 0 {
		return
	}
	if event == FRIENDSHIP_EVENT_LEAGUE_BATTLE && !ctx.LeagueBattle {
		return
	}

	holdEffect := heldItemEffect(mon, ctx.EnigmaHoldEffect)
	friendship := int(mon.Get(FIELD_FRIENDSHIP))

	mod := int(friendshipEventModifiers[event][friendshipBand(friendship)])
	if mod > 0 && holdEffect == HOLD_EFFECT_FRIENDSHIP_UP {
		mod = 150 * mod / 100
	}

	friendship += mod
	if mod > 0 {
		if mon.Get(FIELD_POKEBALL) == ITEM_LUXURY_BALL {
			friendship++
		}
		if mon.Get(FIELD_MET_LOCATION) == uint32(ctx.MapSec) {
			friendship++
		}
	}

	friendship = max(0, min(friendship, MAX_FRIENDSHIP))
	mon.Set(FIELD_FRIENDSHIP, uint32(friendship))

	growthLogger().V(2).Info("adjusted friendship", "event", event, "mod", mod, "friendship", friendship)
}
