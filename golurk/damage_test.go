package golurk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evenMon is a level 50 battler with 100 in every stat
func evenMon() *BattleMon {
	b := &BattleMon{
		Species:   SPECIES_SNORLAX,
		Attack:    100,
		Defense:   100,
		Speed:     100,
		SpAttack:  100,
		SpDefense: 100,
		HP:        100,
		MaxHP:     100,
		Level:     50,
	}
	b.ResetStatStages()
	return b
}

func baseDamage(attacker, defender *BattleMon, move uint16, field *BattleField) int32 {
	return CalculateBaseDamage(attacker, defender, move, 0, 0, 0, 0, 1, field)
}

func TestMinimumDamage(t *testing.T) {
	attacker := evenMon()
	attacker.Level = 1
	attacker.Attack = 1
	defender := evenMon()
	defender.Defense = 200

	assert.Equal(t, int32(3), baseDamage(attacker, defender, MOVE_TACKLE, nil))

	attacker.SpAttack = 1
	defender.SpDefense = 200
	assert.Equal(t, int32(3), baseDamage(attacker, defender, MOVE_WATER_GUN, nil))
}

func TestPhysicalDamage(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(attacker, defender *BattleMon, field *BattleField)
		move   uint16
		damage int32
	}{
		{"plain", func(a, d *BattleMon, f *BattleField) {}, MOVE_TACKLE, 17},
		{"burn", func(a, d *BattleMon, f *BattleField) { a.Status1 = STATUS1_BURN }, MOVE_TACKLE, 9},
		{"guts ignores burn", func(a, d *BattleMon, f *BattleField) {
			a.Ability = ABILITY_GUTS
			a.Status1 = STATUS1_BURN
		}, MOVE_TACKLE, 25},
		{"huge power", func(a, d *BattleMon, f *BattleField) { a.Ability = ABILITY_HUGE_POWER }, MOVE_TACKLE, 32},
		{"choice band", func(a, d *BattleMon, f *BattleField) { a.Item = ITEM_CHOICE_BAND }, MOVE_TACKLE, 25},
		{"type boosting item", func(a, d *BattleMon, f *BattleField) { a.Item = ITEM_SILK_SCARF }, MOVE_TACKLE, 18},
		{"wrong type item", func(a, d *BattleMon, f *BattleField) { a.Item = ITEM_CHARCOAL }, MOVE_TACKLE, 17},
		{"attack badge", func(a, d *BattleMon, f *BattleField) { f.Badges = FLAG_BADGE01_GET }, MOVE_TACKLE, 18},
		{"no badge in link battles", func(a, d *BattleMon, f *BattleField) {
			f.Badges = FLAG_BADGE01_GET
			f.TypeFlags = BATTLE_TYPE_LINK
		}, MOVE_TACKLE, 17},
		{"marvel scale", func(a, d *BattleMon, f *BattleField) {
			d.Ability = ABILITY_MARVEL_SCALE
			d.Status1 = STATUS1_PARALYSIS
		}, MOVE_TACKLE, 12},
		{"attack drop", func(a, d *BattleMon, f *BattleField) { a.StatStages[STAT_ATK] = 4 }, MOVE_TACKLE, 9},
		{"defense boost", func(a, d *BattleMon, f *BattleField) { d.StatStages[STAT_DEF] = 8 }, MOVE_TACKLE, 9},
		{"critical ignores attack drop", func(a, d *BattleMon, f *BattleField) {
			a.StatStages[STAT_ATK] = 4
			f.Critical = true
		}, MOVE_TACKLE, 17},
		{"critical ignores defense boost", func(a, d *BattleMon, f *BattleField) {
			d.StatStages[STAT_DEF] = 8
			f.Critical = true
		}, MOVE_TACKLE, 17},
		{"critical keeps attack boost", func(a, d *BattleMon, f *BattleField) {
			a.StatStages[STAT_ATK] = 8
			f.Critical = true
		}, MOVE_TACKLE, 32},
		{"explosion halves defense", func(a, d *BattleMon, f *BattleField) {}, MOVE_SELF_DESTRUCT, 178},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			attacker, defender := evenMon(), evenMon()
			field := &BattleField{}
			test.setup(attacker, defender, field)

			assert.Equal(t, test.damage, baseDamage(attacker, defender, test.move, field))
		})
	}
}

func TestScreens(t *testing.T) {
	attacker, defender := evenMon(), evenMon()

	assert.Equal(t, int32(9), CalculateBaseDamage(attacker, defender, MOVE_TACKLE, SIDE_STATUS_REFLECT, 0, 0, 0, 1, nil))
	assert.Equal(t, int32(17), CalculateBaseDamage(attacker, defender, MOVE_TACKLE, SIDE_STATUS_LIGHTSCREEN, 0, 0, 0, 1, nil))
	assert.Equal(t, int32(10), CalculateBaseDamage(attacker, defender, MOVE_WATER_GUN, SIDE_STATUS_LIGHTSCREEN, 0, 0, 0, 1, nil))

	crit := &BattleField{Critical: true}
	assert.Equal(t, int32(17), CalculateBaseDamage(attacker, defender, MOVE_TACKLE, SIDE_STATUS_REFLECT, 0, 0, 0, 1, crit))

	// with two targets up the screen takes a third off instead
	double := &BattleField{TypeFlags: BATTLE_TYPE_DOUBLE, Target: 1}
	assert.Equal(t, int32(12), CalculateBaseDamage(attacker, defender, MOVE_TACKLE, SIDE_STATUS_REFLECT, 0, 0, 0, 1, double))
}

func TestSpecialDamage(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(attacker, defender *BattleMon, field *BattleField)
		move   uint16
		damage int32
	}{
		{"plain", func(a, d *BattleMon, f *BattleField) {}, MOVE_WATER_GUN, 19},
		{"rain boosts water", func(a, d *BattleMon, f *BattleField) { f.Weather = WEATHER_RAIN_TEMPORARY }, MOVE_WATER_GUN, 27},
		{"rain weakens fire", func(a, d *BattleMon, f *BattleField) { f.Weather = WEATHER_RAIN_TEMPORARY }, MOVE_EMBER, 10},
		{"sun weakens water", func(a, d *BattleMon, f *BattleField) { f.Weather = WEATHER_SUN_TEMPORARY }, MOVE_WATER_GUN, 10},
		{"sun boosts fire", func(a, d *BattleMon, f *BattleField) { f.Weather = WEATHER_SUN_PERMANENT }, MOVE_EMBER, 27},
		{"cloud nine", func(a, d *BattleMon, f *BattleField) {
			f.Weather = WEATHER_RAIN_TEMPORARY
			f.Battlers[2] = &BattleMon{Ability: ABILITY_CLOUD_NINE, HP: 1}
		}, MOVE_WATER_GUN, 19},
		{"fainted cloud nine", func(a, d *BattleMon, f *BattleField) {
			f.Weather = WEATHER_RAIN_TEMPORARY
			f.Battlers[2] = &BattleMon{Ability: ABILITY_CLOUD_NINE}
		}, MOVE_WATER_GUN, 27},
		{"suppressed weather", func(a, d *BattleMon, f *BattleField) {
			f.Weather = WEATHER_RAIN_TEMPORARY
			f.WeatherSuppressed = true
		}, MOVE_WATER_GUN, 19},
		{"type boosting item", func(a, d *BattleMon, f *BattleField) { a.Item = ITEM_MYSTIC_WATER }, MOVE_WATER_GUN, 21},
		{"torrent", func(a, d *BattleMon, f *BattleField) {
			a.Ability = ABILITY_TORRENT
			a.HP = 33
		}, MOVE_WATER_GUN, 28},
		{"torrent above a third", func(a, d *BattleMon, f *BattleField) {
			a.Ability = ABILITY_TORRENT
			a.HP = 34
		}, MOVE_WATER_GUN, 19},
		{"flash fire", func(a, d *BattleMon, f *BattleField) { f.ResourceFlags[0] = RESOURCE_FLAG_FLASH_FIRE }, MOVE_EMBER, 27},
		{"thick fat", func(a, d *BattleMon, f *BattleField) { d.Ability = ABILITY_THICK_FAT }, MOVE_EMBER, 10},
		{"water sport", func(a, d *BattleMon, f *BattleField) { f.WaterSport = true }, MOVE_EMBER, 10},
		{"mud sport", func(a, d *BattleMon, f *BattleField) { f.MudSport = true }, MOVE_THUNDER_SHOCK, 10},
		{"light ball", func(a, d *BattleMon, f *BattleField) {
			a.Species = SPECIES_PIKACHU
			a.Item = ITEM_LIGHT_BALL
		}, MOVE_THUNDER_SHOCK, 37},
		{"deep sea scale", func(a, d *BattleMon, f *BattleField) {
			d.Species = SPECIES_CLAMPERL
			d.Item = ITEM_DEEP_SEA_SCALE
		}, MOVE_WATER_GUN, 10},
		{"enigma berry uses the battler's slot", func(a, d *BattleMon, f *BattleField) {
			a.Item = ITEM_ENIGMA_BERRY
			f.EnigmaBerries[0] = EnigmaBerry{HoldEffect: HOLD_EFFECT_WATER_POWER, HoldEffectParam: 10}
		}, MOVE_WATER_GUN, 21},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			attacker, defender := evenMon(), evenMon()
			field := &BattleField{}
			test.setup(attacker, defender, field)

			assert.Equal(t, test.damage, baseDamage(attacker, defender, test.move, field))
		})
	}
}

func TestSpreadMoveInDoubles(t *testing.T) {
	attacker, defender := evenMon(), evenMon()

	assert.Equal(t, int32(26), baseDamage(attacker, defender, MOVE_RAZOR_LEAF, nil))

	double := &BattleField{TypeFlags: BATTLE_TYPE_DOUBLE, Target: 1}
	assert.Equal(t, int32(14), baseDamage(attacker, defender, MOVE_RAZOR_LEAF, double))

	// one foe down means no spread penalty
	double.AbsentBattlers = 1 << 3
	assert.Equal(t, int32(26), baseDamage(attacker, defender, MOVE_RAZOR_LEAF, double))
}

func TestOverrides(t *testing.T) {
	attacker, defender := evenMon(), evenMon()

	assert.Equal(t, int32(2), CalculateBaseDamage(attacker, defender, MOVE_TACKLE, 0, 0, TYPE_MYSTERY, 0, 1, nil))
	assert.Equal(t, int32(19), CalculateBaseDamage(attacker, defender, MOVE_TACKLE, 0, 40, TYPE_WATER, 0, 1, nil))
	assert.Equal(t, int32(32), CalculateBaseDamage(attacker, defender, MOVE_TACKLE, 0, 70, 0, 0, 1, nil))
}

func TestCountAliveMonsInBattle(t *testing.T) {
	field := &BattleField{ActiveBattler: 0, Attacker: 0, Target: 1, AbsentBattlers: 1 << 2}

	assert.Equal(t, uint8(2), field.CountAliveMonsInBattle(BATTLE_ALIVE_EXCEPT_ACTIVE))
	assert.Equal(t, uint8(1), field.CountAliveMonsInBattle(BATTLE_ALIVE_ATK_SIDE))
	assert.Equal(t, uint8(2), field.CountAliveMonsInBattle(BATTLE_ALIVE_DEF_SIDE))
}

func TestStatBadgeBoost(t *testing.T) {
	field := &BattleField{Badges: FLAG_BADGE01_GET | FLAG_BADGE05_GET}

	assert.True(t, field.ShouldGetStatBadgeBoost(FLAG_BADGE01_GET, 0))
	assert.False(t, field.ShouldGetStatBadgeBoost(FLAG_BADGE01_GET, 1))
	assert.False(t, field.ShouldGetStatBadgeBoost(FLAG_BADGE07_GET, 0))

	field.TypeFlags = BATTLE_TYPE_TRAINER
	field.Opponent = TRAINER_SECRET_BASE
	assert.False(t, field.ShouldGetStatBadgeBoost(FLAG_BADGE01_GET, 0))

	field.TypeFlags = BATTLE_TYPE_BATTLE_TOWER
	field.Opponent = 0
	assert.False(t, field.ShouldGetStatBadgeBoost(FLAG_BADGE01_GET, 0))
}

func TestStatStages(t *testing.T) {
	assert.Equal(t, int32(100), ApplyStatStage(100, DEFAULT_STAT_STAGE))
	assert.Equal(t, int32(400), ApplyStatStage(100, MAX_STAT_STAGE))
	assert.Equal(t, int32(25), ApplyStatStage(100, MIN_STAT_STAGE))
	assert.Equal(t, int32(150), ApplyStatStage(100, DEFAULT_STAT_STAGE+1))
	assert.Equal(t, int32(66), ApplyStatStage(100, DEFAULT_STAT_STAGE-1))
	assert.Equal(t, int32(400), ApplyStatStage(100, 20))

	b := evenMon()
	require.True(t, b.RaiseStatStage(STAT_ATK, 4))
	require.True(t, b.RaiseStatStage(STAT_ATK, 4))
	assert.Equal(t, int8(MAX_STAT_STAGE), b.StatStages[STAT_ATK])
	assert.False(t, b.RaiseStatStage(STAT_ATK, 1))
}

func TestNewBattleMon(t *testing.T) {
	mon := newTestMon(SPECIES_PIKACHU, 10)
	mon.Set(FIELD_HELD_ITEM, ITEM_LIGHT_BALL)
	mon.Set(FIELD_ATK_IV, 17)
	mon.Set(FIELD_SPDEF_IV, 31)
	mon.Set(FIELD_ABILITY_NUM, 1)

	b := NewBattleMon(&mon)

	assert.Equal(t, uint16(SPECIES_PIKACHU), b.Species)
	assert.Equal(t, mon.Attack, b.Attack)
	assert.Equal(t, uint16(ITEM_LIGHT_BALL), b.Item)
	assert.Equal(t, uint8(ABILITY_STATIC), b.Ability)
	assert.Equal(t, [2]uint8{TYPE_ELECTRIC, TYPE_ELECTRIC}, b.Types)
	assert.Equal(t, uint16(MOVE_THUNDER_SHOCK), b.Moves[0])
	assert.Equal(t, "PIKACHU", b.Nickname)
	assert.Equal(t, testProfile.Name, b.OtName)
	assert.Equal(t, mon.Get(FIELD_EXP), b.Experience)
	assert.NotZero(t, b.Experience)
	assert.Equal(t, [NUM_STATS]uint8{0, 17, 0, 0, 0, 31}, b.IVs)
	assert.False(t, b.IsEgg)
	assert.Equal(t, uint8(1), b.AbilityNum)
	assert.True(t, b.Alive())
	for _, stage := range b.StatStages {
		assert.Equal(t, int8(DEFAULT_STAT_STAGE), stage)
	}
}
