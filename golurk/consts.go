package golurk

const (
	MAX_IV                = 31
	USE_RANDOM_IVS        = MAX_IV + 1
	MAX_PER_STAT_EVS      = 255
	MAX_TOTAL_EVS         = 510
	EV_ITEM_RAISE_LIMIT   = 100
	MIN_LEVEL             = 1
	MAX_LEVEL             = 100
	MAX_FRIENDSHIP        = 255
	FRIENDSHIP_EVO_TARGET = 220
	SHINY_ODDS            = 8
)

const (
	POKEMON_NAME_LENGTH    = 10
	PLAYER_NAME_LENGTH     = 7
	MAX_MON_MOVES          = 4
	PARTY_SIZE             = 6
	TOTAL_BOXES_COUNT      = 14
	IN_BOX_COUNT           = 30
	MAX_BATTLERS_COUNT     = 4
	NUM_TECHNICAL_MACHINES = 50
	NUM_HIDDEN_MACHINES    = 8
	NUM_TMHMS              = NUM_TECHNICAL_MACHINES + NUM_HIDDEN_MACHINES
	HOENN_DEX_COUNT        = 202
	MAIL_NONE              = 0xFF
)

// Stat indexes. The first six are permanent stats and follow EV/IV storage order.
const (
	STAT_HP = iota
	STAT_ATK
	STAT_DEF
	STAT_SPEED
	STAT_SPATK
	STAT_SPDEF
	STAT_ACC
	STAT_EVASION

	NUM_STATS        = 6
	NUM_NATURE_STATS = NUM_STATS - 1
	NUM_BATTLE_STATS = 8
)

const (
	MIN_STAT_STAGE     = 0
	DEFAULT_STAT_STAGE = 6
	MAX_STAT_STAGE     = 12
)

var STAT_NAMES = [NUM_BATTLE_STATS]string{"HP", "Attack", "Defense", "Speed", "Sp. Atk", "Sp. Def", "Accuracy", "Evasion"}

const (
	MON_MALE       = 0x00
	MON_FEMALE     = 0xFE
	MON_GENDERLESS = 0xFF
)

const (
	GROWTH_MEDIUM_FAST = iota
	GROWTH_ERRATIC
	GROWTH_FLUCTUATING
	GROWTH_MEDIUM_SLOW
	GROWTH_FAST
	GROWTH_SLOW

	NUM_GROWTH_RATES
)

var GROWTH_RATE_MAP = map[string]uint8{
	"medium_fast": GROWTH_MEDIUM_FAST,
	"erratic":     GROWTH_ERRATIC,
	"fluctuating": GROWTH_FLUCTUATING,
	"medium_slow": GROWTH_MEDIUM_SLOW,
	"fast":        GROWTH_FAST,
	"slow":        GROWTH_SLOW,
}

const (
	LANGUAGE_JAPANESE = 1
	LANGUAGE_ENGLISH  = 2
	LANGUAGE_FRENCH   = 3
	LANGUAGE_ITALIAN  = 4
	LANGUAGE_GERMAN   = 5
	LANGUAGE_SPANISH  = 7

	GAME_LANGUAGE = LANGUAGE_ENGLISH
)

const (
	VERSION_SAPPHIRE   = 1
	VERSION_RUBY       = 2
	VERSION_EMERALD    = 3
	VERSION_FIRE_RED   = 4
	VERSION_LEAF_GREEN = 5

	GAME_VERSION = VERSION_EMERALD
)

const (
	MALE   = 0
	FEMALE = 1
)

// Return values of the move granting functions
const (
	MOVE_NONE              = 0
	MON_ALREADY_KNOWS_MOVE = 0xFFFE
	MON_HAS_MAX_MOVES      = 0xFFFF
)

// Return values of GiveMonToPlayer / SendMonToPC
const (
	MON_GIVEN_TO_PARTY = iota
	MON_GIVEN_TO_PC
	MON_CANT_GIVE
)

// Return values of MonsStateToDoubles
const (
	PLAYER_HAS_TWO_USABLE_MONS = iota
	PLAYER_HAS_ONE_MON
	PLAYER_HAS_ONE_USABLE_MON
)

// Non-volatile status, stored on the party mon
const (
	STATUS1_NONE          = 0
	STATUS1_SLEEP         = 0x7
	STATUS1_POISON        = 0x8
	STATUS1_BURN          = 0x10
	STATUS1_FREEZE        = 0x20
	STATUS1_PARALYSIS     = 0x40
	STATUS1_TOXIC_POISON  = 0x80
	STATUS1_TOXIC_COUNTER = 0xF00
	STATUS1_PSN_ANY       = STATUS1_POISON | STATUS1_TOXIC_POISON
	STATUS1_ANY           = STATUS1_SLEEP | STATUS1_POISON | STATUS1_BURN | STATUS1_FREEZE | STATUS1_PARALYSIS | STATUS1_TOXIC_POISON
)

// Volatile status, only exists on battle mons
const (
	STATUS2_CONFUSION    = 0x00000007
	STATUS2_INFATUATION  = 0x000F0000
	STATUS2_FOCUS_ENERGY = 0x00100000
	STATUS2_TRANSFORMED  = 0x00200000
	STATUS2_NIGHTMARE    = 0x08000000
)

var STATUS_NAME_MAP = map[string]uint32{
	"sleep":     STATUS1_SLEEP,
	"poison":    STATUS1_PSN_ANY | STATUS1_TOXIC_COUNTER,
	"burn":      STATUS1_BURN,
	"freeze":    STATUS1_FREEZE,
	"paralysis": STATUS1_PARALYSIS,
}

const (
	WEATHER_NONE           = 0
	WEATHER_RAIN_TEMPORARY = 1 << 0
	WEATHER_RAIN_DOWNPOUR  = 1 << 1
	WEATHER_RAIN_PERMANENT = 1 << 2
	WEATHER_RAIN_ANY       = WEATHER_RAIN_TEMPORARY | WEATHER_RAIN_DOWNPOUR | WEATHER_RAIN_PERMANENT
	WEATHER_SANDSTORM_TEMP = 1 << 3
	WEATHER_SANDSTORM_PERM = 1 << 4
	WEATHER_SANDSTORM_ANY  = WEATHER_SANDSTORM_TEMP | WEATHER_SANDSTORM_PERM
	WEATHER_SUN_TEMPORARY  = 1 << 5
	WEATHER_SUN_PERMANENT  = 1 << 6
	WEATHER_SUN_ANY        = WEATHER_SUN_TEMPORARY | WEATHER_SUN_PERMANENT
	WEATHER_HAIL           = 1 << 7
	WEATHER_HAIL_ANY       = WEATHER_HAIL
)

const (
	SIDE_STATUS_REFLECT     = 1 << 0
	SIDE_STATUS_LIGHTSCREEN = 1 << 1
)

const (
	B_SIDE_PLAYER   = 0
	B_SIDE_OPPONENT = 1
)

const (
	BATTLE_TYPE_DOUBLE          = 1 << 0
	BATTLE_TYPE_LINK            = 1 << 1
	BATTLE_TYPE_IS_MASTER       = 1 << 2
	BATTLE_TYPE_TRAINER         = 1 << 3
	BATTLE_TYPE_FIRST_BATTLE    = 1 << 4
	BATTLE_TYPE_MULTI           = 1 << 6
	BATTLE_TYPE_SAFARI          = 1 << 7
	BATTLE_TYPE_BATTLE_TOWER    = 1 << 8
	BATTLE_TYPE_EREADER_TRAINER = 1 << 11
	BATTLE_TYPE_DOME            = 1 << 16
	BATTLE_TYPE_PALACE          = 1 << 17
	BATTLE_TYPE_ARENA           = 1 << 18
	BATTLE_TYPE_FACTORY         = 1 << 19
	BATTLE_TYPE_PIKE            = 1 << 20
	BATTLE_TYPE_PYRAMID         = 1 << 21
	BATTLE_TYPE_RECORDED        = 1 << 24
	BATTLE_TYPE_RECORDED_LINK   = 1 << 25
	BATTLE_TYPE_SECRET_BASE     = 1 << 27

	BATTLE_TYPE_FRONTIER = BATTLE_TYPE_BATTLE_TOWER | BATTLE_TYPE_DOME | BATTLE_TYPE_PALACE |
		BATTLE_TYPE_ARENA | BATTLE_TYPE_FACTORY | BATTLE_TYPE_PIKE | BATTLE_TYPE_PYRAMID
)

// Badges that give a 10% stat boost in battle
const (
	FLAG_BADGE01_GET = 1 << 0
	FLAG_BADGE05_GET = 1 << 4
	FLAG_BADGE07_GET = 1 << 6
)

const TRAINER_SECRET_BASE = 1024

const (
	TRAINER_CLASS_PKMN_TRAINER = 0x00
	TRAINER_CLASS_ELITE_FOUR   = 0x1F
	TRAINER_CLASS_LEADER       = 0x20
	TRAINER_CLASS_CHAMPION     = 0x26
)

const (
	BATTLE_ALIVE_EXCEPT_ACTIVE = iota
	BATTLE_ALIVE_ATK_SIDE
	BATTLE_ALIVE_DEF_SIDE
)

const RESOURCE_FLAG_FLASH_FIRE = 1 << 0

const (
	FRIENDSHIP_EVENT_GROW_LEVEL = iota
	FRIENDSHIP_EVENT_VITAMIN
	FRIENDSHIP_EVENT_BATTLE_ITEM
	FRIENDSHIP_EVENT_LEAGUE_BATTLE
	FRIENDSHIP_EVENT_LEARN_TMHM
	FRIENDSHIP_EVENT_WALKING
	FRIENDSHIP_EVENT_FAINT_SMALL
	FRIENDSHIP_EVENT_FAINT_FIELD_PSN
	FRIENDSHIP_EVENT_FAINT_LARGE
)

const (
	EVO_MODE_NORMAL = iota
	EVO_MODE_TRADE
	EVO_MODE_ITEM_USE
	EVO_MODE_ITEM_CHECK
)

const (
	EVO_NONE = iota
	EVO_FRIENDSHIP
	EVO_FRIENDSHIP_DAY
	EVO_FRIENDSHIP_NIGHT
	EVO_LEVEL
	EVO_TRADE
	EVO_TRADE_ITEM
	EVO_ITEM
	EVO_LEVEL_ATK_GT_DEF
	EVO_LEVEL_ATK_EQ_DEF
	EVO_LEVEL_ATK_LT_DEF
	EVO_LEVEL_SILCOON
	EVO_LEVEL_CASCOON
	EVO_LEVEL_NINJASK
	EVO_LEVEL_SHEDINJA
	EVO_BEAUTY
)

var EVO_METHOD_MAP = map[string]uint8{
	"friendship":       EVO_FRIENDSHIP,
	"friendship_day":   EVO_FRIENDSHIP_DAY,
	"friendship_night": EVO_FRIENDSHIP_NIGHT,
	"level":            EVO_LEVEL,
	"trade":            EVO_TRADE,
	"trade_item":       EVO_TRADE_ITEM,
	"item":             EVO_ITEM,
	"level_atk_gt_def": EVO_LEVEL_ATK_GT_DEF,
	"level_atk_eq_def": EVO_LEVEL_ATK_EQ_DEF,
	"level_atk_lt_def": EVO_LEVEL_ATK_LT_DEF,
	"level_silcoon":    EVO_LEVEL_SILCOON,
	"level_cascoon":    EVO_LEVEL_CASCOON,
	"level_ninjask":    EVO_LEVEL_NINJASK,
	"level_shedinja":   EVO_LEVEL_SHEDINJA,
	"beauty":           EVO_BEAUTY,
}

// OT id generation modes for the creation factory
const (
	OT_ID_PLAYER_ID = iota
	OT_ID_PRESET
	OT_ID_RANDOM_NO_SHINY
)

const (
	MAPSEC_LITTLEROOT_TOWN = 0x00
	MAPSEC_OLDALE_TOWN     = 0x01
	MAPSEC_PETALBURG_CITY  = 0x03
	MAPSEC_ROUTE_101       = 0x10
	MAPSEC_ROUTE_102       = 0x11
	MAPSEC_NONE            = 0xD5
)

// Species ids. Gen 1 and 2 species use their national number, later species use the internal index.
const (
	SPECIES_NONE       = 0
	SPECIES_BULBASAUR  = 1
	SPECIES_IVYSAUR    = 2
	SPECIES_VENUSAUR   = 3
	SPECIES_CHARMANDER = 4
	SPECIES_SQUIRTLE   = 7
	SPECIES_PIKACHU    = 25
	SPECIES_RAICHU     = 26
	SPECIES_ABRA       = 63
	SPECIES_KADABRA    = 64
	SPECIES_ALAKAZAM   = 65
	SPECIES_ONIX       = 95
	SPECIES_CUBONE     = 104
	SPECIES_MAROWAK    = 105
	SPECIES_HITMONLEE  = 106
	SPECIES_HITMONCHAN = 107
	SPECIES_DITTO      = 132
	SPECIES_EEVEE      = 133
	SPECIES_VAPOREON   = 134
	SPECIES_SNORLAX    = 143
	SPECIES_ESPEON     = 196
	SPECIES_UMBREON    = 197
	SPECIES_STEELIX    = 208
	SPECIES_TYROGUE    = 236
	SPECIES_HITMONTOP  = 237
	SPECIES_WURMPLE    = 290
	SPECIES_SILCOON    = 291
	SPECIES_BEAUTIFLY  = 292
	SPECIES_CASCOON    = 293
	SPECIES_DUSTOX     = 294
	SPECIES_NINCADA    = 301
	SPECIES_NINJASK    = 302
	SPECIES_SHEDINJA   = 303
	SPECIES_FEEBAS     = 328
	SPECIES_MILOTIC    = 329
	SPECIES_CLAMPERL   = 373
	SPECIES_HUNTAIL    = 374
	SPECIES_GOREBYSS   = 375
	SPECIES_LATIAS     = 407
	SPECIES_LATIOS     = 408
	SPECIES_EGG        = 412

	NUM_SPECIES = SPECIES_EGG
)

const (
	ITEM_NONE           = 0
	ITEM_POKE_BALL      = 4
	ITEM_LUXURY_BALL    = 11
	ITEM_POTION         = 13
	ITEM_ANTIDOTE       = 14
	ITEM_BURN_HEAL      = 15
	ITEM_ICE_HEAL       = 16
	ITEM_AWAKENING      = 17
	ITEM_PARALYZE_HEAL  = 18
	ITEM_FULL_RESTORE   = 19
	ITEM_MAX_POTION     = 20
	ITEM_HYPER_POTION   = 21
	ITEM_SUPER_POTION   = 22
	ITEM_FULL_HEAL      = 23
	ITEM_REVIVE         = 24
	ITEM_MAX_REVIVE     = 25
	ITEM_ETHER          = 34
	ITEM_MAX_ETHER      = 35
	ITEM_ELIXIR         = 36
	ITEM_MAX_ELIXIR     = 37
	ITEM_HP_UP          = 63
	ITEM_PROTEIN        = 64
	ITEM_IRON           = 65
	ITEM_CARBOS         = 66
	ITEM_CALCIUM        = 67
	ITEM_RARE_CANDY     = 68
	ITEM_PP_UP          = 69
	ITEM_ZINC           = 70
	ITEM_PP_MAX         = 71
	ITEM_GUARD_SPEC     = 73
	ITEM_DIRE_HIT       = 74
	ITEM_X_ATTACK       = 75
	ITEM_X_DEFEND       = 76
	ITEM_X_SPEED        = 77
	ITEM_X_ACCURACY     = 78
	ITEM_X_SPECIAL      = 79
	ITEM_SUN_STONE      = 93
	ITEM_MOON_STONE     = 94
	ITEM_FIRE_STONE     = 95
	ITEM_THUNDER_STONE  = 96
	ITEM_WATER_STONE    = 97
	ITEM_LEAF_STONE     = 98
	ITEM_PEARL          = 110
	ITEM_BIG_PEARL      = 111
	ITEM_ORAN_BERRY     = 139
	ITEM_POMEG_BERRY    = 153
	ITEM_KELPSY_BERRY   = 154
	ITEM_QUALOT_BERRY   = 155
	ITEM_HONDEW_BERRY   = 156
	ITEM_GREPA_BERRY    = 157
	ITEM_TAMATO_BERRY   = 158
	ITEM_ENIGMA_BERRY   = 175
	ITEM_MACHO_BRACE    = 181
	ITEM_SOOTHE_BELL    = 184
	ITEM_CHOICE_BAND    = 186
	ITEM_SILVER_POWDER  = 188
	ITEM_SOUL_DEW       = 191
	ITEM_DEEP_SEA_TOOTH = 192
	ITEM_DEEP_SEA_SCALE = 193
	ITEM_EVERSTONE      = 195
	ITEM_METAL_COAT     = 199
	ITEM_LEFTOVERS      = 200
	ITEM_LIGHT_BALL     = 202
	ITEM_SOFT_SAND      = 203
	ITEM_HARD_STONE     = 204
	ITEM_MIRACLE_SEED   = 205
	ITEM_BLACK_GLASSES  = 206
	ITEM_BLACK_BELT     = 207
	ITEM_MAGNET         = 208
	ITEM_MYSTIC_WATER   = 209
	ITEM_SHARP_BEAK     = 210
	ITEM_POISON_BARB    = 211
	ITEM_NEVER_MELT_ICE = 212
	ITEM_SPELL_TAG      = 213
	ITEM_TWISTED_SPOON  = 214
	ITEM_CHARCOAL       = 215
	ITEM_DRAGON_FANG    = 216
	ITEM_SILK_SCARF     = 217
	ITEM_METAL_POWDER   = 223
	ITEM_THICK_CLUB     = 224
)

const (
	HOLD_EFFECT_NONE           = 0
	HOLD_EFFECT_RESTORE_HP     = 1
	HOLD_EFFECT_CURE_PAR       = 2
	HOLD_EFFECT_CURE_SLP       = 3
	HOLD_EFFECT_CURE_PSN       = 4
	HOLD_EFFECT_CURE_BRN       = 5
	HOLD_EFFECT_CURE_FRZ       = 6
	HOLD_EFFECT_RESTORE_PP     = 7
	HOLD_EFFECT_CURE_STATUS    = 9
	HOLD_EFFECT_MACHO_BRACE    = 24
	HOLD_EFFECT_EXP_SHARE      = 25
	HOLD_EFFECT_FRIENDSHIP_UP  = 27
	HOLD_EFFECT_CHOICE_BAND    = 29
	HOLD_EFFECT_BUG_POWER      = 31
	HOLD_EFFECT_SOUL_DEW       = 34
	HOLD_EFFECT_DEEP_SEA_TOOTH = 35
	HOLD_EFFECT_DEEP_SEA_SCALE = 36
	HOLD_EFFECT_PREVENT_EVOLVE = 38
	HOLD_EFFECT_STEEL_POWER    = 42
	HOLD_EFFECT_LEFTOVERS      = 43
	HOLD_EFFECT_LIGHT_BALL     = 45
	HOLD_EFFECT_GROUND_POWER   = 46
	HOLD_EFFECT_ROCK_POWER     = 47
	HOLD_EFFECT_GRASS_POWER    = 48
	HOLD_EFFECT_DARK_POWER     = 49
	HOLD_EFFECT_FIGHTING_POWER = 50
	HOLD_EFFECT_ELECTRIC_POWER = 51
	HOLD_EFFECT_WATER_POWER    = 52
	HOLD_EFFECT_FLYING_POWER   = 53
	HOLD_EFFECT_POISON_POWER   = 54
	HOLD_EFFECT_ICE_POWER      = 55
	HOLD_EFFECT_GHOST_POWER    = 56
	HOLD_EFFECT_PSYCHIC_POWER  = 57
	HOLD_EFFECT_FIRE_POWER     = 58
	HOLD_EFFECT_DRAGON_POWER   = 59
	HOLD_EFFECT_NORMAL_POWER   = 60
	HOLD_EFFECT_METAL_POWDER   = 64
	HOLD_EFFECT_THICK_CLUB     = 65
)

var HOLD_EFFECT_MAP = map[string]uint8{
	"":               HOLD_EFFECT_NONE,
	"restore_hp":     HOLD_EFFECT_RESTORE_HP,
	"cure_par":       HOLD_EFFECT_CURE_PAR,
	"cure_slp":       HOLD_EFFECT_CURE_SLP,
	"cure_psn":       HOLD_EFFECT_CURE_PSN,
	"cure_brn":       HOLD_EFFECT_CURE_BRN,
	"cure_frz":       HOLD_EFFECT_CURE_FRZ,
	"restore_pp":     HOLD_EFFECT_RESTORE_PP,
	"cure_status":    HOLD_EFFECT_CURE_STATUS,
	"macho_brace":    HOLD_EFFECT_MACHO_BRACE,
	"exp_share":      HOLD_EFFECT_EXP_SHARE,
	"friendship_up":  HOLD_EFFECT_FRIENDSHIP_UP,
	"choice_band":    HOLD_EFFECT_CHOICE_BAND,
	"bug_power":      HOLD_EFFECT_BUG_POWER,
	"soul_dew":       HOLD_EFFECT_SOUL_DEW,
	"deep_sea_tooth": HOLD_EFFECT_DEEP_SEA_TOOTH,
	"deep_sea_scale": HOLD_EFFECT_DEEP_SEA_SCALE,
	"prevent_evolve": HOLD_EFFECT_PREVENT_EVOLVE,
	"steel_power":    HOLD_EFFECT_STEEL_POWER,
	"leftovers":      HOLD_EFFECT_LEFTOVERS,
	"light_ball":     HOLD_EFFECT_LIGHT_BALL,
	"ground_power":   HOLD_EFFECT_GROUND_POWER,
	"rock_power":     HOLD_EFFECT_ROCK_POWER,
	"grass_power":    HOLD_EFFECT_GRASS_POWER,
	"dark_power":     HOLD_EFFECT_DARK_POWER,
	"fighting_power": HOLD_EFFECT_FIGHTING_POWER,
	"electric_power": HOLD_EFFECT_ELECTRIC_POWER,
	"water_power":    HOLD_EFFECT_WATER_POWER,
	"flying_power":   HOLD_EFFECT_FLYING_POWER,
	"poison_power":   HOLD_EFFECT_POISON_POWER,
	"ice_power":      HOLD_EFFECT_ICE_POWER,
	"ghost_power":    HOLD_EFFECT_GHOST_POWER,
	"psychic_power":  HOLD_EFFECT_PSYCHIC_POWER,
	"fire_power":     HOLD_EFFECT_FIRE_POWER,
	"dragon_power":   HOLD_EFFECT_DRAGON_POWER,
	"normal_power":   HOLD_EFFECT_NORMAL_POWER,
	"metal_powder":   HOLD_EFFECT_METAL_POWDER,
	"thick_club":     HOLD_EFFECT_THICK_CLUB,
}

const (
	ABILITY_NONE          = 0
	ABILITY_STENCH        = 1
	ABILITY_DRIZZLE       = 2
	ABILITY_SPEED_BOOST   = 3
	ABILITY_BATTLE_ARMOR  = 4
	ABILITY_STURDY        = 5
	ABILITY_DAMP          = 6
	ABILITY_LIMBER        = 7
	ABILITY_SAND_VEIL     = 8
	ABILITY_STATIC        = 9
	ABILITY_VOLT_ABSORB   = 10
	ABILITY_WATER_ABSORB  = 11
	ABILITY_OBLIVIOUS     = 12
	ABILITY_CLOUD_NINE    = 13
	ABILITY_COMPOUND_EYES = 14
	ABILITY_INSOMNIA      = 15
	ABILITY_COLOR_CHANGE  = 16
	ABILITY_IMMUNITY      = 17
	ABILITY_FLASH_FIRE    = 18
	ABILITY_SHIELD_DUST   = 19
	ABILITY_OWN_TEMPO     = 20
	ABILITY_SUCTION_CUPS  = 21
	ABILITY_INTIMIDATE    = 22
	ABILITY_SHADOW_TAG    = 23
	ABILITY_ROUGH_SKIN    = 24
	ABILITY_WONDER_GUARD  = 25
	ABILITY_LEVITATE      = 26
	ABILITY_EFFECT_SPORE  = 27
	ABILITY_SYNCHRONIZE   = 28
	ABILITY_CLEAR_BODY    = 29
	ABILITY_NATURAL_CURE  = 30
	ABILITY_LIGHTNING_ROD = 31
	ABILITY_SERENE_GRACE  = 32
	ABILITY_SWIFT_SWIM    = 33
	ABILITY_CHLOROPHYLL   = 34
	ABILITY_ILLUMINATE    = 35
	ABILITY_TRACE         = 36
	ABILITY_HUGE_POWER    = 37
	ABILITY_POISON_POINT  = 38
	ABILITY_INNER_FOCUS   = 39
	ABILITY_MAGMA_ARMOR   = 40
	ABILITY_WATER_VEIL    = 41
	ABILITY_MAGNET_PULL   = 42
	ABILITY_SOUNDPROOF    = 43
	ABILITY_RAIN_DISH     = 44
	ABILITY_SAND_STREAM   = 45
	ABILITY_PRESSURE      = 46
	ABILITY_THICK_FAT     = 47
	ABILITY_EARLY_BIRD    = 48
	ABILITY_FLAME_BODY    = 49
	ABILITY_RUN_AWAY      = 50
	ABILITY_KEEN_EYE      = 51
	ABILITY_HYPER_CUTTER  = 52
	ABILITY_PICKUP        = 53
	ABILITY_TRUANT        = 54
	ABILITY_HUSTLE        = 55
	ABILITY_CUTE_CHARM    = 56
	ABILITY_PLUS          = 57
	ABILITY_MINUS         = 58
	ABILITY_FORECAST      = 59
	ABILITY_STICKY_HOLD   = 60
	ABILITY_SHED_SKIN     = 61
	ABILITY_GUTS          = 62
	ABILITY_MARVEL_SCALE  = 63
	ABILITY_LIQUID_OOZE   = 64
	ABILITY_OVERGROW      = 65
	ABILITY_BLAZE         = 66
	ABILITY_TORRENT       = 67
	ABILITY_SWARM         = 68
	ABILITY_ROCK_HEAD     = 69
	ABILITY_DROUGHT       = 70
	ABILITY_ARENA_TRAP    = 71
	ABILITY_VITAL_SPIRIT  = 72
	ABILITY_WHITE_SMOKE   = 73
	ABILITY_PURE_POWER    = 74
	ABILITY_SHELL_ARMOR   = 75
	ABILITY_CACOPHONY     = 76
	ABILITY_AIR_LOCK      = 77
)

var ABILITY_NAMES = [...]string{
	"", "stench", "drizzle", "speed_boost", "battle_armor", "sturdy", "damp", "limber", "sand_veil",
	"static", "volt_absorb", "water_absorb", "oblivious", "cloud_nine", "compound_eyes", "insomnia",
	"color_change", "immunity", "flash_fire", "shield_dust", "own_tempo", "suction_cups", "intimidate",
	"shadow_tag", "rough_skin", "wonder_guard", "levitate", "effect_spore", "synchronize", "clear_body",
	"natural_cure", "lightning_rod", "serene_grace", "swift_swim", "chlorophyll", "illuminate", "trace",
	"huge_power", "poison_point", "inner_focus", "magma_armor", "water_veil", "magnet_pull", "soundproof",
	"rain_dish", "sand_stream", "pressure", "thick_fat", "early_bird", "flame_body", "run_away", "keen_eye",
	"hyper_cutter", "pickup", "truant", "hustle", "cute_charm", "plus", "minus", "forecast", "sticky_hold",
	"shed_skin", "guts", "marvel_scale", "liquid_ooze", "overgrow", "blaze", "torrent", "swarm", "rock_head",
	"drought", "arena_trap", "vital_spirit", "white_smoke", "pure_power", "shell_armor", "cacophony", "air_lock",
}

// Move ids used directly by the engine or the bundled data
const (
	MOVE_POUND         = 1
	MOVE_SCRATCH       = 10
	MOVE_GUST          = 16
	MOVE_BIND          = 20
	MOVE_VINE_WHIP     = 22
	MOVE_DOUBLE_KICK   = 24
	MOVE_ROLLING_KICK  = 27
	MOVE_HEADBUTT      = 29
	MOVE_TACKLE        = 33
	MOVE_BODY_SLAM     = 34
	MOVE_TAIL_WHIP     = 39
	MOVE_POISON_STING  = 40
	MOVE_LEER          = 43
	MOVE_BITE          = 44
	MOVE_GROWL         = 45
	MOVE_EMBER         = 52
	MOVE_FLAMETHROWER  = 53
	MOVE_WATER_GUN     = 55
	MOVE_SURF          = 57
	MOVE_ICE_BEAM      = 58
	MOVE_PSYBEAM       = 60
	MOVE_HYPER_BEAM    = 63
	MOVE_ABSORB        = 71
	MOVE_LEECH_SEED    = 73
	MOVE_RAZOR_LEAF    = 75
	MOVE_SOLAR_BEAM    = 76
	MOVE_STRING_SHOT   = 81
	MOVE_THUNDER_SHOCK = 84
	MOVE_THUNDERBOLT   = 85
	MOVE_THUNDER_WAVE  = 86
	MOVE_ROCK_THROW    = 88
	MOVE_EARTHQUAKE    = 89
	MOVE_CONFUSION     = 93
	MOVE_QUICK_ATTACK  = 98
	MOVE_TELEPORT      = 100
	MOVE_SCREECH       = 103
	MOVE_HARDEN        = 106
	MOVE_WITHDRAW      = 110
	MOVE_LIGHT_SCREEN  = 113
	MOVE_REFLECT       = 115
	MOVE_FOCUS_ENERGY  = 116
	MOVE_SELF_DESTRUCT = 120
	MOVE_BONE_CLUB     = 125
	MOVE_CLAMP         = 128
	MOVE_SWIFT         = 129
	MOVE_KINESIS       = 134
	MOVE_HI_JUMP_KICK  = 136
	MOVE_LEECH_LIFE    = 141
	MOVE_BUBBLE        = 145
	MOVE_SPLASH        = 150
	MOVE_EXPLOSION     = 153
	MOVE_FURY_SWIPES   = 154
	MOVE_ROCK_SLIDE    = 157
	MOVE_MACH_PUNCH    = 183
	MOVE_MUD_SLAP      = 189
	MOVE_SANDSTORM     = 201
	MOVE_FURY_CUTTER   = 210
	MOVE_DRAGON_BREATH = 225
	MOVE_IRON_TAIL     = 231
	MOVE_METAL_CLAW    = 232
	MOVE_SHADOW_BALL   = 247
	MOVE_LUSTER_PURGE  = 295
	MOVE_MIST_BALL     = 296
)

const (
	EFFECT_HIT                      = 0
	EFFECT_SLEEP                    = 1
	EFFECT_POISON_HIT               = 2
	EFFECT_ABSORB                   = 3
	EFFECT_BURN_HIT                 = 4
	EFFECT_FREEZE_HIT               = 5
	EFFECT_PARALYZE_HIT             = 6
	EFFECT_EXPLOSION                = 7
	EFFECT_ATTACK_UP                = 10
	EFFECT_DEFENSE_UP               = 11
	EFFECT_ALWAYS_HIT               = 17
	EFFECT_ATTACK_DOWN              = 18
	EFFECT_DEFENSE_DOWN             = 19
	EFFECT_SPEED_DOWN               = 20
	EFFECT_ACCURACY_DOWN            = 23
	EFFECT_MULTI_HIT                = 29
	EFFECT_FLINCH_HIT               = 31
	EFFECT_LIGHT_SCREEN             = 35
	EFFECT_TRAP                     = 42
	EFFECT_HIGH_CRITICAL            = 43
	EFFECT_DOUBLE_HIT               = 44
	EFFECT_RECOIL_IF_MISS           = 45
	EFFECT_FOCUS_ENERGY             = 47
	EFFECT_DEFENSE_DOWN_2           = 59
	EFFECT_REFLECT                  = 65
	EFFECT_PARALYZE                 = 67
	EFFECT_DEFENSE_DOWN_HIT         = 69
	EFFECT_SPEED_DOWN_HIT           = 70
	EFFECT_SPECIAL_ATTACK_DOWN_HIT  = 71
	EFFECT_SPECIAL_DEFENSE_DOWN_HIT = 72
	EFFECT_ACCURACY_DOWN_HIT        = 73
	EFFECT_CONFUSE_HIT              = 76
	EFFECT_RECHARGE                 = 80
	EFFECT_LEECH_SEED               = 84
	EFFECT_SPLASH                   = 85
	EFFECT_TELEPORT                 = 99
	EFFECT_QUICK_ATTACK             = 103
	EFFECT_SANDSTORM                = 115
	EFFECT_FURY_CUTTER              = 119
	EFFECT_ATTACK_UP_HIT            = 138
	EFFECT_EARTHQUAKE               = 147
	EFFECT_SOLAR_BEAM               = 151
)

var EFFECT_NAME_MAP = map[string]uint8{
	"hit":                      EFFECT_HIT,
	"sleep":                    EFFECT_SLEEP,
	"poison_hit":               EFFECT_POISON_HIT,
	"absorb":                   EFFECT_ABSORB,
	"burn_hit":                 EFFECT_BURN_HIT,
	"freeze_hit":               EFFECT_FREEZE_HIT,
	"paralyze_hit":             EFFECT_PARALYZE_HIT,
	"explosion":                EFFECT_EXPLOSION,
	"attack_up":                EFFECT_ATTACK_UP,
	"defense_up":               EFFECT_DEFENSE_UP,
	"always_hit":               EFFECT_ALWAYS_HIT,
	"attack_down":              EFFECT_ATTACK_DOWN,
	"defense_down":             EFFECT_DEFENSE_DOWN,
	"speed_down":               EFFECT_SPEED_DOWN,
	"accuracy_down":            EFFECT_ACCURACY_DOWN,
	"multi_hit":                EFFECT_MULTI_HIT,
	"flinch_hit":               EFFECT_FLINCH_HIT,
	"light_screen":             EFFECT_LIGHT_SCREEN,
	"trap":                     EFFECT_TRAP,
	"high_critical":            EFFECT_HIGH_CRITICAL,
	"double_hit":               EFFECT_DOUBLE_HIT,
	"recoil_if_miss":           EFFECT_RECOIL_IF_MISS,
	"focus_energy":             EFFECT_FOCUS_ENERGY,
	"defense_down_2":           EFFECT_DEFENSE_DOWN_2,
	"reflect":                  EFFECT_REFLECT,
	"paralyze":                 EFFECT_PARALYZE,
	"defense_down_hit":         EFFECT_DEFENSE_DOWN_HIT,
	"speed_down_hit":           EFFECT_SPEED_DOWN_HIT,
	"special_attack_down_hit":  EFFECT_SPECIAL_ATTACK_DOWN_HIT,
	"special_defense_down_hit": EFFECT_SPECIAL_DEFENSE_DOWN_HIT,
	"accuracy_down_hit":        EFFECT_ACCURACY_DOWN_HIT,
	"confuse_hit":              EFFECT_CONFUSE_HIT,
	"recharge":                 EFFECT_RECHARGE,
	"leech_seed":               EFFECT_LEECH_SEED,
	"splash":                   EFFECT_SPLASH,
	"teleport":                 EFFECT_TELEPORT,
	"quick_attack":             EFFECT_QUICK_ATTACK,
	"sandstorm":                EFFECT_SANDSTORM,
	"fury_cutter":              EFFECT_FURY_CUTTER,
	"attack_up_hit":            EFFECT_ATTACK_UP_HIT,
	"earthquake":               EFFECT_EARTHQUAKE,
	"solar_beam":               EFFECT_SOLAR_BEAM,
}

const (
	MOVE_TARGET_SELECTED         = 0x00
	MOVE_TARGET_DEPENDS          = 0x01
	MOVE_TARGET_USER_OR_SELECTED = 0x02
	MOVE_TARGET_RANDOM           = 0x04
	MOVE_TARGET_BOTH             = 0x08
	MOVE_TARGET_USER             = 0x10
	MOVE_TARGET_FOES_AND_ALLY    = 0x20
	MOVE_TARGET_OPPONENTS_FIELD  = 0x40
)

var MOVE_TARGET_MAP = map[string]uint8{
	"selected":         MOVE_TARGET_SELECTED,
	"depends":          MOVE_TARGET_DEPENDS,
	"user_or_selected": MOVE_TARGET_USER_OR_SELECTED,
	"random":           MOVE_TARGET_RANDOM,
	"both":             MOVE_TARGET_BOTH,
	"user":             MOVE_TARGET_USER,
	"foes_and_ally":    MOVE_TARGET_FOES_AND_ALLY,
	"opponents_field":  MOVE_TARGET_OPPONENTS_FIELD,
}
