package golurk

import (
	"github.com/go-logr/logr"
)

var itemLogger = func() logr.Logger {
	return internalLogger.WithName("items")
}

// Heal amounts with special meaning in ItemEffect.HealHP
const (
	HEAL_HP_LVL_UP = 253
	HEAL_HP_HALF   = 254
	HEAL_HP_FULL   = 255
)

// ItemEffect is what using an item on a creature can do. Effects apply in field order.
type ItemEffect struct {
	CureInfatuation bool
	DireHit         bool
	// Stages added to each battle stat, indexed by STAT_*
	XStats    [NUM_BATTLE_STATS]uint8
	GuardSpec bool
	LevelUp   bool
	// STATUS1 bits cured
	CureStatus    uint32
	CureConfusion bool
	// Signed EV change per stat, indexed by STAT_*
	EVs [NUM_STATS]int8
	// HP restored, or one of the HEAL_HP_* codes
	HealHP    uint8
	Revive    bool
	HealPP    uint8
	HealPPOne bool
	PPUp      bool
	PPMax     bool
	EvoStone  bool
	// Friendship change for the 0-99, 100-199 and 200-255 bands
	Friendship *[3]int8
}

// SideTimers is the per-side battle state items can touch
type SideTimers struct {
	MistTimer uint8
}

// ItemContext is the game state an item use depends on. A nil Battler means the item is used outside battle.
type ItemContext struct {
	Battler *BattleMon
	Side    *SideTimers

	Friendship FriendshipContext
	// Effect of the player's enigma berry when it is the item being used
	EnigmaEffect *ItemEffect
	// UsedByAI only predicts the heal, leaving HP untouched
	UsedByAI bool
	Clock    Clock
	// Evolve is called when an evolution stone matches. The engine never swaps the species itself.
	Evolve func(mon *Pokemon, targetSpecies uint16)
}

// ItemUseResult reports what an item did
type ItemUseResult struct {
	// NoEffect is set when using the item changed nothing
	NoEffect bool
	// HP the item would heal, filled only for UsedByAI
	PredictedHeal uint16
	// Species an evolution stone turns mon into
	EvolvesInto uint16
}

// Order the stat stage items and EV items are checked in
var (
	xStatOrder = [...]uint8{STAT_ATK, STAT_DEF, STAT_SPEED, STAT_ACC, STAT_SPATK, STAT_SPDEF}
	// HP and Attack EVs are checked before the heals, the rest after
	earlyEVOrder = [...]uint8{STAT_HP, STAT_ATK}
	lateEVOrder  = [...]uint8{STAT_DEF, STAT_SPEED, STAT_SPDEF, STAT_SPATK}

	cureStatusOrder = [...]uint32{
		STATUS1_SLEEP,
		STATUS1_PSN_ANY | STATUS1_TOXIC_COUNTER,
		STATUS1_BURN,
		STATUS1_FREEZE,
		STATUS1_PARALYSIS,
	}
)

// HealStatusConditions clears healMask from mon's status, and from the battler when given.
// Returns false if none of those conditions were present.
func HealStatusConditions(mon *Pokemon, healMask uint32, battler *BattleMon) bool {
	if mon.Status&healMask == 0 {
		return false
	}

	mon.Status &^= healMask
	if battler != nil {
		battler.Status1 &^= healMask
	}
	return true
}

type itemUse struct {
	mon       *Pokemon
	item      uint16
	moveIndex uint8
	effect    *ItemEffect
	ctx       ItemContext

	holdEffect       uint8
	noEffect         bool
	friendshipOnly   bool
	friendshipChange int8
	result           ItemUseResult
}

// UseItem applies item to mon, moveIndex selecting the move for single-move items.
// Items without an effect do nothing.
func UseItem(mon *Pokemon, item uint16, moveIndex uint8, ctx ItemContext) ItemUseResult {
	u := &itemUse{
		mon:        mon,
		item:       item,
		moveIndex:  moveIndex % MAX_MON_MOVES,
		ctx:        ctx,
		holdEffect: heldItemEffect(mon, ctx.Friendship.EnigmaHoldEffect),
		noEffect:   true,
	}

	if item == ITEM_ENIGMA_BERRY {
		u.effect = ctx.EnigmaEffect
	} else {
		u.effect = GlobalData.GetItem(item).Effect
	}

	if u.effect == nil {
		return ItemUseResult{NoEffect: true}
	}

	for _, stage := range []func() bool{u.battleEffects, u.fieldEffects, u.restoreEffects, u.growthEffects} {
		if done := stage(); done {
			break
		}
	}

	u.result.NoEffect = u.noEffect
	itemLogger().V(1).Info("used item", "item", item, "species", mon.Species(), "noEffect", u.noEffect)
	return u.result
}

// battleEffects covers the items that only act on a battler: cure infatuation, Dire Hit and X items
func (u *itemUse) battleEffects() bool {
	b := u.ctx.Battler
	if b == nil {
		return false
	}

	if u.effect.CureInfatuation && b.Status2&STATUS2_INFATUATION != 0 {
		b.Status2 &^= STATUS2_INFATUATION
		u.noEffect = false
	}

	if u.effect.DireHit && b.Status2&STATUS2_FOCUS_ENERGY == 0 {
		b.Status2 |= STATUS2_FOCUS_ENERGY
		u.noEffect = false
	}

	for _, stat := range xStatOrder {
		stages := u.effect.XStats[stat]
		if stages != 0 && b.RaiseStatStage(stat, int8(stages)) {
			u.noEffect = false
		}
	}

	return false
}

// fieldEffects covers Guard Spec, Rare Candy and the status cures
func (u *itemUse) fieldEffects() bool {
	mon, b := u.mon, u.ctx.Battler

	if u.effect.GuardSpec && u.ctx.Side != nil && u.ctx.Side.MistTimer == 0 {
		u.ctx.Side.MistTimer = 5
		u.noEffect = false
	}

	if u.effect.LevelUp && mon.Level != MAX_LEVEL {
		growthRate := GlobalData.GetSpecies(mon.Species()).GrowthRate
		mon.Set(FIELD_EXP, GetExpForLevel(growthRate, mon.Level+1))
		CalculateMonStats(mon)
		u.noEffect = false
	}

	for _, mask := range cureStatusOrder {
		if u.effect.CureStatus&mask == 0 {
			continue
		}

		if HealStatusConditions(mon, mask, b) {
			if mask == STATUS1_SLEEP && b != nil {
				b.Status2 &^= STATUS2_NIGHTMARE
			}
			u.noEffect = false
		}
	}

	if u.effect.CureConfusion && b != nil && b.Status2&STATUS2_CONFUSION != 0 {
		b.Status2 &^= STATUS2_CONFUSION
		u.noEffect = false
	}

	return false
}

// changeEV applies an EV item. Raising stops at EV_ITEM_RAISE_LIMIT and at MAX_TOTAL_EVS.
// Returns true when the total is already capped, which ends the whole item use.
func (u *itemUse) changeEV(stat uint8) bool {
	change := int32(u.effect.EVs[stat])
	if change == 0 {
		return false
	}

	field := EV_FIELDS[stat]
	ev := int32(u.mon.Get(field))

	if change > 0 {
		total := int32(GetEVTotal(u.mon))
		if total >= MAX_TOTAL_EVS {
			u.noEffect = true
			return true
		}
		if ev >= EV_ITEM_RAISE_LIMIT {
			return false
		}

		increase := min(change, EV_ITEM_RAISE_LIMIT-ev)
		if total+increase > MAX_TOTAL_EVS {
			increase = MAX_TOTAL_EVS - total
		}
		ev += increase
	} else {
		if ev == 0 {
			// nothing to lower, but the friendship change still applies
			u.friendshipOnly = true
			return false
		}
		ev = max(ev+change, 0)
	}

	u.mon.Set(field, uint32(ev))
	CalculateMonStats(u.mon)
	u.noEffect = false
	return false
}

func (u *itemUse) ppUp() {
	mon, i := u.mon, u.moveIndex
	bonuses := uint8(mon.Get(FIELD_PP_BONUSES))
	move := uint16(mon.Get(MOVE_FIELDS[i]))
	ups := (bonuses & ppUpGetMask[i]) >> (i * 2)
	oldMax := CalculatePPWithBonus(move, bonuses, i)

	if ups > 2 || oldMax <= 4 {
		return
	}

	bonuses += ppUpAddMask[i]
	mon.Set(FIELD_PP_BONUSES, uint32(bonuses))
	gained := CalculatePPWithBonus(move, bonuses, i) - oldMax
	mon.Set(PP_FIELDS[i], mon.Get(PP_FIELDS[i])+uint32(gained))
	u.noEffect = false
}

func (u *itemUse) ppMax() {
	mon, i := u.mon, u.moveIndex
	bonuses := uint8(mon.Get(FIELD_PP_BONUSES))
	move := uint16(mon.Get(MOVE_FIELDS[i]))
	ups := (bonuses & ppUpGetMask[i]) >> (i * 2)
	oldMax := CalculatePPWithBonus(move, bonuses, i)

	if ups >= 3 || oldMax <= 4 {
		return
	}

	bonuses = bonuses&ppUpSetMask[i] + ppUpAddMask[i]*3
	mon.Set(FIELD_PP_BONUSES, uint32(bonuses))
	gained := CalculatePPWithBonus(move, bonuses, i) - oldMax
	mon.Set(PP_FIELDS[i], mon.Get(PP_FIELDS[i])+uint32(gained))
	u.noEffect = false
}

func (u *itemUse) healHP() {
	mon := u.mon

	if u.effect.Revive {
		if mon.HP != 0 {
			return
		}
	} else if mon.HP == 0 {
		return
	}

	amount := uint32(u.effect.HealHP)
	switch u.effect.HealHP {
	case HEAL_HP_FULL:
		amount = uint32(mon.MaxHP) - uint32(mon.HP)
	case HEAL_HP_HALF:
		amount = max(uint32(mon.MaxHP)/2, 1)
	case HEAL_HP_LVL_UP:
		amount = uint32(mon.LevelUpHP)
	}

	if mon.MaxHP == mon.HP {
		return
	}

	if u.ctx.UsedByAI {
		u.result.PredictedHeal = uint16(amount)
	} else {
		hp := min(uint32(mon.HP)+amount, uint32(mon.MaxHP))
		mon.HP = uint16(hp)
		if u.ctx.Battler != nil {
			u.ctx.Battler.HP = mon.HP
		}
	}
	u.noEffect = false
}

func (u *itemUse) restoreMovePP(i uint8) {
	mon := u.mon
	move := uint16(mon.Get(MOVE_FIELDS[i]))
	maxPP := uint32(CalculatePPWithBonus(move, uint8(mon.Get(FIELD_PP_BONUSES)), i))
	pp := mon.Get(PP_FIELDS[i])
	if pp == maxPP {
		return
	}

	pp = min(pp+uint32(u.effect.HealPP), maxPP)
	mon.Set(PP_FIELDS[i], pp)

	if b := u.ctx.Battler; b != nil && b.Status2&STATUS2_TRANSFORMED == 0 {
		b.PP[i] = uint8(pp)
	}
	u.noEffect = false
}

// restoreEffects covers PP Up, HP and Attack EVs, heals, PP restores and evolution stones
func (u *itemUse) restoreEffects() bool {
	if u.effect.PPUp {
		u.ppUp()
	}

	for _, stat := range earlyEVOrder {
		if u.changeEV(stat) {
			return true
		}
	}

	if u.effect.HealHP != 0 {
		u.healHP()
	}

	if u.effect.HealPP != 0 {
		if u.effect.HealPPOne {
			u.restoreMovePP(u.moveIndex)
		} else {
			for i := range uint8(MAX_MON_MOVES) {
				u.restoreMovePP(i)
			}
		}
	}

	if u.effect.EvoStone {
		target := GetEvolutionTargetSpecies(u.mon, EVO_MODE_ITEM_USE, u.item, u.ctx.Clock, u.ctx.Friendship.EnigmaHoldEffect)
		if target != SPECIES_NONE {
			u.result.EvolvesInto = target
			if u.ctx.Evolve != nil {
				u.ctx.Evolve(u.mon, target)
			}
			u.noEffect = false
			return true
		}
	}

	return false
}

// growthEffects covers the remaining EVs, PP Max and the friendship change
func (u *itemUse) growthEffects() bool {
	for _, stat := range lateEVOrder {
		if u.changeEV(stat) {
			return true
		}
	}

	if u.effect.PPMax {
		u.ppMax()
	}

	if u.effect.Friendship != nil {
		u.changeFriendship()
	}

	return false
}

// changeFriendship only fires when the item did something else, or lowered an EV that was already zero
func (u *itemUse) changeFriendship() {
	if u.noEffect && !u.friendshipOnly {
		return
	}
	if u.ctx.Friendship.SkipChange || u.friendshipChange != 0 {
		return
	}

	mon := u.mon
	friendship := int32(mon.Get(FIELD_FRIENDSHIP))
	u.friendshipChange = u.effect.Friendship[friendshipBand(int(friendship))]
	change := int32(u.friendshipChange)

	if change > 0 && u.holdEffect == HOLD_EFFECT_FRIENDSHIP_UP {
		friendship += 150 * change / 100
	} else {
		friendship += change
	}

	if change > 0 {
		if mon.Get(FIELD_POKEBALL) == ITEM_LUXURY_BALL {
			friendship++
		}
		if mon.Get(FIELD_MET_LOCATION) == uint32(u.ctx.Friendship.MapSec) {
			friendship++
		}
	}

	friendship = max(0, min(friendship, MAX_FRIENDSHIP))
	mon.Set(FIELD_FRIENDSHIP, uint32(friendship))
	u.noEffect = false
}
