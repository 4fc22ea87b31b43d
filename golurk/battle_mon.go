package golurk

// statStageRatios scales a stat by numerator/denominator for stages -6..+6
var statStageRatios = [MAX_STAT_STAGE + 1][2]int32{
	{10, 40}, {10, 35}, {10, 30}, {10, 25}, {10, 20}, {10, 15},
	{10, 10},
	{15, 10}, {20, 10}, {25, 10}, {30, 10}, {35, 10}, {40, 10},
}

// BattleMon is the snapshot of a party creature the battle engine works on.
// Stat stages are stored offset by DEFAULT_STAT_STAGE, so 6 is neutral.
type BattleMon struct {
	Species     uint16
	Attack      uint16
	Defense     uint16
	Speed       uint16
	SpAttack    uint16
	SpDefense   uint16
	Moves       [MAX_MON_MOVES]uint16
	PP          [MAX_MON_MOVES]uint8
	PPBonuses   uint8
	StatStages  [NUM_BATTLE_STATS]int8
	Ability     uint8
	Types       [2]uint8
	HP          uint16
	MaxHP       uint16
	Level       uint8
	Friendship  uint8
	Item        uint16
	Status1     uint32
	Status2     uint32
	Personality uint32
	OtId        uint32
	Nickname    string
	OtName      string
	Experience  uint32
	IVs         [NUM_STATS]uint8
	IsEgg       bool
	AbilityNum  uint8
}

// NewBattleMon copies what battle needs out of a party creature
func NewBattleMon(mon *Pokemon) BattleMon {
	species := mon.Get(FIELD_SPECIES2)
	info := GlobalData.GetSpecies(uint16(species))

	b := BattleMon{
		Species:     uint16(species),
		Attack:      mon.Attack,
		Defense:     mon.Defense,
		Speed:       mon.Speed,
		SpAttack:    mon.SpAttack,
		SpDefense:   mon.SpDefense,
		PPBonuses:   uint8(mon.Get(FIELD_PP_BONUSES)),
		Ability:     GetMonAbility(mon),
		Types:       info.Types,
		HP:          mon.HP,
		MaxHP:       mon.MaxHP,
		Level:       mon.Level,
		Friendship:  uint8(mon.Get(FIELD_FRIENDSHIP)),
		Item:        uint16(mon.Get(FIELD_HELD_ITEM)),
		Status1:     mon.Status,
		Personality: mon.Get(FIELD_PERSONALITY),
		OtId:        mon.Get(FIELD_OT_ID),
		Nickname:    mon.Box.Nickname(),
		OtName:      mon.Box.OTName(),
		Experience:  mon.Get(FIELD_EXP),
		IsEgg:       mon.Get(FIELD_IS_EGG) != 0,
		AbilityNum:  uint8(mon.Get(FIELD_ABILITY_NUM)),
	}

	for i, f := range IV_FIELDS {
		b.IVs[i] = uint8(mon.Get(f))
	}

	for i := range MAX_MON_MOVES {
		b.Moves[i] = uint16(mon.Get(MOVE_FIELDS[i]))
		b.PP[i] = uint8(mon.Get(PP_FIELDS[i]))
	}

	b.ResetStatStages()
	return b
}

func (b *BattleMon) ResetStatStages() {
	for i := range b.StatStages {
		b.StatStages[i] = DEFAULT_STAT_STAGE
	}
}

// RaiseStatStage moves a stage up by n, stopping at MAX_STAT_STAGE. Returns false when already maxed.
func (b *BattleMon) RaiseStatStage(stat uint8, n int8) bool {
	if b.StatStages[stat] >= MAX_STAT_STAGE {
		return false
	}

	b.StatStages[stat] = min(b.StatStages[stat]+n, MAX_STAT_STAGE)
	return true
}

func (b *BattleMon) Alive() bool {
	return b.HP != 0
}

// ApplyStatStage scales stat by the ratio for stage
func ApplyStatStage(stat uint16, stage int8) int32 {
	stage = max(MIN_STAT_STAGE, min(stage, MAX_STAT_STAGE))
	ratio := statStageRatios[stage]
	return int32(stat) * ratio[0] / ratio[1]
}
