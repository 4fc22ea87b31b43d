package golurk

import (
	"github.com/go-logr/logr"
)

var damageLogger = func() logr.Logger {
	return internalLogger.WithName("damage")
}

// EnigmaBerry is the hold effect a battler's enigma berry was loaded with
type EnigmaBerry struct {
	HoldEffect      uint8
	HoldEffectParam uint8
}

// BattleField is the battle state damage depends on besides the two combatants.
// Battler slots alternate sides: even slots belong to the player.
type BattleField struct {
	TypeFlags uint32
	Weather   uint32
	// Badge flags (FLAG_BADGE*_GET) the player owns
	Badges uint32
	// Trainer id of the first opponent
	Opponent uint16

	Battlers       [MAX_BATTLERS_COUNT]*BattleMon
	AbsentBattlers uint8
	ResourceFlags  [MAX_BATTLERS_COUNT]uint32
	EnigmaBerries  [MAX_BATTLERS_COUNT]EnigmaBerry

	ActiveBattler uint8
	Attacker      uint8
	Target        uint8

	// Move being executed. Zero means the move passed to the calculation.
	CurrentMove uint16
	Critical    bool
	MudSport    bool
	WaterSport  bool
	// Forces weather off regardless of the abilities on the field
	WeatherSuppressed bool
}

func BattlerSide(battler uint8) uint8 {
	return battler & 1
}

func (f *BattleField) currentMove(move uint16) uint16 {
	if f.CurrentMove != MOVE_NONE {
		return f.CurrentMove
	}
	return move
}

// AbilityOnField reports whether any battler still standing has ability
func (f *BattleField) AbilityOnField(ability uint8) bool {
	for _, b := range f.Battlers {
		if b != nil && b.Ability == ability && b.HP != 0 {
			return true
		}
	}
	return false
}

// WeatherHasEffect is false while cloud nine or air lock is on the field
func (f *BattleField) WeatherHasEffect() bool {
	return !f.WeatherSuppressed && !f.AbilityOnField(ABILITY_CLOUD_NINE) && !f.AbilityOnField(ABILITY_AIR_LOCK)
}

// ShouldGetStatBadgeBoost reports whether battler's stat gets the badge's 10% boost.
// Only the player's side gets it, and never in link, e-reader, recorded link, frontier or secret base battles.
func (f *BattleField) ShouldGetStatBadgeBoost(badge uint32, battler uint8) bool {
	if f.TypeFlags&(BATTLE_TYPE_LINK|BATTLE_TYPE_EREADER_TRAINER|BATTLE_TYPE_RECORDED_LINK|BATTLE_TYPE_FRONTIER) != 0 {
		return false
	}
	if BattlerSide(battler) != B_SIDE_PLAYER {
		return false
	}
	if f.TypeFlags&BATTLE_TYPE_TRAINER != 0 && f.Opponent == TRAINER_SECRET_BASE {
		return false
	}

	return f.Badges&badge != 0
}

// CountAliveMonsInBattle counts the battlers present for one of the BATTLE_ALIVE_* cases
func (f *BattleField) CountAliveMonsInBattle(caseId uint8) uint8 {
	var count uint8
	for i := range uint8(MAX_BATTLERS_COUNT) {
		if f.AbsentBattlers&(1<<i) != 0 {
			continue
		}

		switch caseId {
		case BATTLE_ALIVE_EXCEPT_ACTIVE:
			if i != f.ActiveBattler {
				count++
			}
		case BATTLE_ALIVE_ATK_SIDE:
			if BattlerSide(i) == BattlerSide(f.Attacker) {
				count++
			}
		case BATTLE_ALIVE_DEF_SIDE:
			if BattlerSide(i) == BattlerSide(f.Target) {
				count++
			}
		}
	}

	return count
}

func (f *BattleField) bothTargetsUp() bool {
	return f.TypeFlags&BATTLE_TYPE_DOUBLE != 0 && f.CountAliveMonsInBattle(BATTLE_ALIVE_DEF_SIDE) == 2
}

func (f *BattleField) holdEffect(b *BattleMon, slot uint8) (uint8, uint8) {
	if b.Item == ITEM_ENIGMA_BERRY {
		berry := f.EnigmaBerries[slot%MAX_BATTLERS_COUNT]
		return berry.HoldEffect, berry.HoldEffectParam
	}

	return GlobalData.ItemHoldEffect(b.Item), GlobalData.ItemHoldEffectParam(b.Item)
}

type damageCalc struct {
	attacker *BattleMon
	defender *BattleMon
	field    *BattleField
	move     uint16
	atkSlot  uint8
	defSlot  uint8

	moveType uint8
	power    uint16

	attack    uint16
	defense   uint16
	spAttack  uint16
	spDefense uint16

	atkHoldEffect uint8
	atkHoldParam  uint8
	defHoldEffect uint8
	defHoldParam  uint8
}

// stagedAttack applies the attacker's stage. Critical hits ignore drops.
func (c *damageCalc) stagedAttack(stat uint16, statIndex uint8) int32 {
	stage := c.attacker.StatStages[statIndex]
	if c.field.Critical && stage <= DEFAULT_STAT_STAGE {
		return int32(stat)
	}
	return ApplyStatStage(stat, stage)
}

// stagedDefense applies the defender's stage. Critical hits ignore boosts.
func (c *damageCalc) stagedDefense(stat uint16, statIndex uint8) int32 {
	stage := c.defender.StatStages[statIndex]
	if c.field.Critical && stage >= DEFAULT_STAT_STAGE {
		return int32(stat)
	}
	return ApplyStatStage(stat, stage)
}

func (c *damageCalc) formula(attack int32, defense int32) int32 {
	damage := attack * int32(c.power)
	damage *= 2*int32(c.attacker.Level)/5 + 2

	// a zero defense can only come from halving a stat of 1
	defense = max(defense, 1)

	damage /= defense
	return damage / 50
}

// screen halves damage behind reflect or light screen, or takes a third off with two targets up
func (c *damageCalc) screen(damage int32, sideStatus uint16, screen uint16) int32 {
	if sideStatus&screen == 0 || c.field.Critical {
		return damage
	}

	if c.field.bothTargetsUp() {
		return 2 * (damage / 3)
	}
	return damage / 2
}

func (c *damageCalc) spread(damage int32) int32 {
	if GlobalData.GetMove(c.move).Target == MOVE_TARGET_BOTH && c.field.bothTargetsUp() {
		return damage / 2
	}
	return damage
}

func (c *damageCalc) weather(damage int32) int32 {
	if !c.field.WeatherHasEffect() {
		return damage
	}

	weather := c.field.Weather
	if weather&WEATHER_RAIN_TEMPORARY != 0 {
		switch c.moveType {
		case TYPE_FIRE:
			damage /= 2
		case TYPE_WATER:
			damage = 15 * damage / 10
		}
	}

	if weather&(WEATHER_RAIN_ANY|WEATHER_SANDSTORM_ANY|WEATHER_HAIL_ANY) != 0 && c.field.currentMove(c.move) == MOVE_SOLAR_BEAM {
		damage /= 2
	}

	if weather&WEATHER_SUN_ANY != 0 {
		switch c.moveType {
		case TYPE_FIRE:
			damage = 15 * damage / 10
		case TYPE_WATER:
			damage /= 2
		}
	}

	return damage
}

// CalculateBaseDamage returns the damage of one hit before the random roll, STAB and type effectiveness.
// powerOverride and typeOverride replace the move's own power and type when nonzero.
// atkSlot and defSlot are the battler slots of attacker and defender.
// The result always carries a flat +2, so a damaging move never does less than 3.
func CalculateBaseDamage(attacker *BattleMon, defender *BattleMon, move uint16, sideStatus uint16,
	powerOverride uint16, typeOverride uint8, atkSlot uint8, defSlot uint8, field *BattleField) int32 {
	if field == nil {
		field = &BattleField{}
	}

	info := GlobalData.GetMove(move)
	c := &damageCalc{
		attacker:  attacker,
		defender:  defender,
		field:     field,
		move:      move,
		atkSlot:   atkSlot,
		defSlot:   defSlot,
		moveType:  info.Type,
		power:     uint16(info.Power),
		attack:    attacker.Attack,
		defense:   defender.Defense,
		spAttack:  attacker.SpAttack,
		spDefense: defender.SpDefense,
	}

	if powerOverride != 0 {
		c.power = powerOverride
	}
	if typeOverride != 0 {
		c.moveType = typeOverride & 0x3F
	}

	c.atkHoldEffect, c.atkHoldParam = field.holdEffect(attacker, atkSlot)
	c.defHoldEffect, c.defHoldParam = field.holdEffect(defender, defSlot)

	for _, rule := range damageRules {
		rule.apply(c)
	}

	var damage int32

	if IsTypePhysical(c.moveType) {
		damage = c.formula(c.stagedAttack(c.attack, STAT_ATK), c.stagedDefense(c.defense, STAT_DEF))

		if attacker.Status1&STATUS1_BURN != 0 && attacker.Ability != ABILITY_GUTS {
			damage /= 2
		}

		damage = c.screen(damage, sideStatus, SIDE_STATUS_REFLECT)
		damage = c.spread(damage)

		if damage == 0 {
			damage = 1
		}
	}

	if c.moveType == TYPE_MYSTERY {
		damage = 0
	}

	if IsTypeSpecial(c.moveType) {
		damage = c.formula(c.stagedAttack(c.spAttack, STAT_SPATK), c.stagedDefense(c.spDefense, STAT_SPDEF))
		damage = c.screen(damage, sideStatus, SIDE_STATUS_LIGHTSCREEN)
		damage = c.spread(damage)
		damage = c.weather(damage)

		if field.ResourceFlags[atkSlot%MAX_BATTLERS_COUNT]&RESOURCE_FLAG_FLASH_FIRE != 0 && c.moveType == TYPE_FIRE {
			damage = 15 * damage / 10
		}

		if damage == 0 {
			damage = 1
		}
	}

	damageLogger().V(2).Info("base damage",
		"move", move,
		"type", TypeName(c.moveType),
		"power", c.power,
		"attack", c.attack,
		"defense", c.defense,
		"spAttack", c.spAttack,
		"spDefense", c.spDefense,
		"critical", field.Critical,
		"damage", damage+2)

	return damage + 2
}
