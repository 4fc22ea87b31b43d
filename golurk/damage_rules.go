package golurk

// holdEffectToType lists the type boosting held items in lookup order
var holdEffectToType = [...][2]uint8{
	{HOLD_EFFECT_BUG_POWER, TYPE_BUG},
	{HOLD_EFFECT_STEEL_POWER, TYPE_STEEL},
	{HOLD_EFFECT_GROUND_POWER, TYPE_GROUND},
	{HOLD_EFFECT_ROCK_POWER, TYPE_ROCK},
	{HOLD_EFFECT_GRASS_POWER, TYPE_GRASS},
	{HOLD_EFFECT_DARK_POWER, TYPE_DARK},
	{HOLD_EFFECT_FIGHTING_POWER, TYPE_FIGHTING},
	{HOLD_EFFECT_ELECTRIC_POWER, TYPE_ELECTRIC},
	{HOLD_EFFECT_WATER_POWER, TYPE_WATER},
	{HOLD_EFFECT_FLYING_POWER, TYPE_FLYING},
	{HOLD_EFFECT_POISON_POWER, TYPE_POISON},
	{HOLD_EFFECT_ICE_POWER, TYPE_ICE},
	{HOLD_EFFECT_GHOST_POWER, TYPE_GHOST},
	{HOLD_EFFECT_PSYCHIC_POWER, TYPE_PSYCHIC},
	{HOLD_EFFECT_FIRE_POWER, TYPE_FIRE},
	{HOLD_EFFECT_DRAGON_POWER, TYPE_DRAGON},
	{HOLD_EFFECT_NORMAL_POWER, TYPE_NORMAL},
}

// damageRule adjusts the effective stats or power before the damage formula runs
type damageRule struct {
	name  string
	apply func(c *damageCalc)
}

func percent(n uint16, pct uint32) uint16 {
	return uint16(uint32(n) * pct / 100)
}

func pinch(c *damageCalc, ability uint8, moveType uint8) {
	if c.moveType == moveType && c.attacker.Ability == ability && c.attacker.HP <= c.attacker.MaxHP/3 {
		c.power = percent(c.power, 150)
	}
}

func isLatiTwin(species uint16) bool {
	return species == SPECIES_LATIAS || species == SPECIES_LATIOS
}

// damageRules run in this exact order. Each integer step truncates, so reordering changes results.
var damageRules = []damageRule{
	{"huge power", func(c *damageCalc) {
		if c.attacker.Ability == ABILITY_HUGE_POWER || c.attacker.Ability == ABILITY_PURE_POWER {
			c.attack *= 2
		}
	}},
	{"attack badge", func(c *damageCalc) {
		if c.field.ShouldGetStatBadgeBoost(FLAG_BADGE01_GET, c.atkSlot) {
			c.attack = percent(c.attack, 110)
		}
	}},
	{"defense badge", func(c *damageCalc) {
		if c.field.ShouldGetStatBadgeBoost(FLAG_BADGE05_GET, c.defSlot) {
			c.defense = percent(c.defense, 110)
		}
	}},
	{"special attack badge", func(c *damageCalc) {
		if c.field.ShouldGetStatBadgeBoost(FLAG_BADGE07_GET, c.atkSlot) {
			c.spAttack = percent(c.spAttack, 110)
		}
	}},
	{"special defense badge", func(c *damageCalc) {
		if c.field.ShouldGetStatBadgeBoost(FLAG_BADGE07_GET, c.defSlot) {
			c.spDefense = percent(c.spDefense, 110)
		}
	}},
	{"type boosting item", func(c *damageCalc) {
		for _, pair := range holdEffectToType {
			if c.atkHoldEffect != pair[0] || c.moveType != pair[1] {
				continue
			}

			if IsTypePhysical(c.moveType) {
				c.attack = percent(c.attack, uint32(c.atkHoldParam)+100)
			} else {
				c.spAttack = percent(c.spAttack, uint32(c.atkHoldParam)+100)
			}
			return
		}
	}},
	{"choice band", func(c *damageCalc) {
		if c.atkHoldEffect == HOLD_EFFECT_CHOICE_BAND {
			c.attack = percent(c.attack, 150)
		}
	}},
	{"soul dew attacker", func(c *damageCalc) {
		if c.atkHoldEffect == HOLD_EFFECT_SOUL_DEW && c.field.TypeFlags&BATTLE_TYPE_FRONTIER == 0 && isLatiTwin(c.attacker.Species) {
			c.spAttack = percent(c.spAttack, 150)
		}
	}},
	{"soul dew defender", func(c *damageCalc) {
		if c.defHoldEffect == HOLD_EFFECT_SOUL_DEW && c.field.TypeFlags&BATTLE_TYPE_FRONTIER == 0 && isLatiTwin(c.defender.Species) {
			c.spDefense = percent(c.spDefense, 150)
		}
	}},
	{"deep sea tooth", func(c *damageCalc) {
		if c.atkHoldEffect == HOLD_EFFECT_DEEP_SEA_TOOTH && c.attacker.Species == SPECIES_CLAMPERL {
			c.spAttack *= 2
		}
	}},
	{"deep sea scale", func(c *damageCalc) {
		if c.defHoldEffect == HOLD_EFFECT_DEEP_SEA_SCALE && c.defender.Species == SPECIES_CLAMPERL {
			c.spDefense *= 2
		}
	}},
	{"light ball", func(c *damageCalc) {
		if c.atkHoldEffect == HOLD_EFFECT_LIGHT_BALL && c.attacker.Species == SPECIES_PIKACHU {
			c.spAttack *= 2
		}
	}},
	{"metal powder", func(c *damageCalc) {
		if c.defHoldEffect == HOLD_EFFECT_METAL_POWDER && c.defender.Species == SPECIES_DITTO {
			c.defense *= 2
		}
	}},
	{"thick club", func(c *damageCalc) {
		if c.atkHoldEffect == HOLD_EFFECT_THICK_CLUB && (c.attacker.Species == SPECIES_CUBONE || c.attacker.Species == SPECIES_MAROWAK) {
			c.attack *= 2
		}
	}},
	{"thick fat", func(c *damageCalc) {
		if c.defender.Ability == ABILITY_THICK_FAT && (c.moveType == TYPE_FIRE || c.moveType == TYPE_ICE) {
			c.spAttack /= 2
		}
	}},
	{"hustle", func(c *damageCalc) {
		if c.attacker.Ability == ABILITY_HUSTLE {
			c.attack = percent(c.attack, 150)
		}
	}},
	{"plus", func(c *damageCalc) {
		if c.attacker.Ability == ABILITY_PLUS && c.field.AbilityOnField(ABILITY_MINUS) {
			c.spAttack = percent(c.spAttack, 150)
		}
	}},
	{"minus", func(c *damageCalc) {
		if c.attacker.Ability == ABILITY_MINUS && c.field.AbilityOnField(ABILITY_PLUS) {
			c.spAttack = percent(c.spAttack, 150)
		}
	}},
	{"guts", func(c *damageCalc) {
		if c.attacker.Ability == ABILITY_GUTS && c.attacker.Status1 != 0 {
			c.attack = percent(c.attack, 150)
		}
	}},
	{"marvel scale", func(c *damageCalc) {
		if c.defender.Ability == ABILITY_MARVEL_SCALE && c.defender.Status1 != 0 {
			c.defense = percent(c.defense, 150)
		}
	}},
	{"mud sport", func(c *damageCalc) {
		if c.moveType == TYPE_ELECTRIC && c.field.MudSport {
			c.power /= 2
		}
	}},
	{"water sport", func(c *damageCalc) {
		if c.moveType == TYPE_FIRE && c.field.WaterSport {
			c.power /= 2
		}
	}},
	{"overgrow", func(c *damageCalc) { pinch(c, ABILITY_OVERGROW, TYPE_GRASS) }},
	{"blaze", func(c *damageCalc) { pinch(c, ABILITY_BLAZE, TYPE_FIRE) }},
	{"torrent", func(c *damageCalc) { pinch(c, ABILITY_TORRENT, TYPE_WATER) }},
	{"swarm", func(c *damageCalc) { pinch(c, ABILITY_SWARM, TYPE_BUG) }},
	{"explosion", func(c *damageCalc) {
		if GlobalData.GetMove(c.field.currentMove(c.move)).Effect == EFFECT_EXPLOSION {
			c.defense /= 2
		}
	}},
}
