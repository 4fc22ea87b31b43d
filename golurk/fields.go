package golurk

// Field names one piece of creature data for Get / Set.
// Fields up to and including FIELD_ENCRYPT_SEPARATOR live in the cleartext header,
// everything after it lives in the encrypted substructs or on the party form.
type Field uint8

const (
	FIELD_PERSONALITY Field = iota
	FIELD_OT_ID
	FIELD_NICKNAME
	FIELD_LANGUAGE
	FIELD_SANITY_IS_BAD_EGG
	FIELD_SANITY_HAS_SPECIES
	FIELD_SANITY_IS_EGG
	FIELD_DIED
	FIELD_OT_NAME
	FIELD_MARKINGS
	FIELD_CHECKSUM
	FIELD_ENCRYPT_SEPARATOR
	FIELD_SPECIES
	FIELD_HELD_ITEM
	FIELD_MOVE1
	FIELD_MOVE2
	FIELD_MOVE3
	FIELD_MOVE4
	FIELD_PP1
	FIELD_PP2
	FIELD_PP3
	FIELD_PP4
	FIELD_PP_BONUSES
	FIELD_COOL
	FIELD_BEAUTY
	FIELD_CUTE
	FIELD_EXP
	FIELD_HP_EV
	FIELD_ATK_EV
	FIELD_DEF_EV
	FIELD_SPEED_EV
	FIELD_SPATK_EV
	FIELD_SPDEF_EV
	FIELD_FRIENDSHIP
	FIELD_SMART
	FIELD_POKERUS
	FIELD_MET_LOCATION
	FIELD_MET_LEVEL
	FIELD_MET_GAME
	FIELD_POKEBALL
	FIELD_HP_IV
	FIELD_ATK_IV
	FIELD_DEF_IV
	FIELD_SPEED_IV
	FIELD_SPATK_IV
	FIELD_SPDEF_IV
	FIELD_IS_EGG
	FIELD_ABILITY_NUM
	FIELD_TOUGH
	FIELD_SHEEN
	FIELD_OT_GENDER
	FIELD_COOL_RIBBON
	FIELD_BEAUTY_RIBBON
	FIELD_CUTE_RIBBON
	FIELD_SMART_RIBBON
	FIELD_TOUGH_RIBBON
	FIELD_CHAMPION_RIBBON
	FIELD_WINNING_RIBBON
	FIELD_VICTORY_RIBBON
	FIELD_ARTIST_RIBBON
	FIELD_EFFORT_RIBBON
	FIELD_MARINE_RIBBON
	FIELD_LAND_RIBBON
	FIELD_SKY_RIBBON
	FIELD_COUNTRY_RIBBON
	FIELD_NATIONAL_RIBBON
	FIELD_EARTH_RIBBON
	FIELD_WORLD_RIBBON
	FIELD_UNUSED_RIBBONS
	FIELD_EVENT_LEGAL

	// Party-only fields
	FIELD_STATUS
	FIELD_LEVEL
	FIELD_HP
	FIELD_MAX_HP
	FIELD_ATK
	FIELD_DEF
	FIELD_SPEED
	FIELD_SPATK
	FIELD_SPDEF
	FIELD_MAIL

	// Derived fields
	FIELD_SPECIES2
	FIELD_IVS
	FIELD_KNOWN_MOVES
	FIELD_RIBBON_COUNT
	FIELD_RIBBONS

	NUM_FIELDS
)

var fieldNames = [NUM_FIELDS]string{
	"personality", "ot_id", "nickname", "language", "sanity_is_bad_egg", "sanity_has_species",
	"sanity_is_egg", "died", "ot_name", "markings", "checksum", "encrypt_separator", "species",
	"held_item", "move1", "move2", "move3", "move4", "pp1", "pp2", "pp3", "pp4", "pp_bonuses",
	"cool", "beauty", "cute", "exp", "hp_ev", "atk_ev", "def_ev", "speed_ev", "spatk_ev", "spdef_ev",
	"friendship", "smart", "pokerus", "met_location", "met_level", "met_game", "pokeball", "hp_iv",
	"atk_iv", "def_iv", "speed_iv", "spatk_iv", "spdef_iv", "is_egg", "ability_num", "tough", "sheen",
	"ot_gender", "cool_ribbon", "beauty_ribbon", "cute_ribbon", "smart_ribbon", "tough_ribbon",
	"champion_ribbon", "winning_ribbon", "victory_ribbon", "artist_ribbon", "effort_ribbon",
	"marine_ribbon", "land_ribbon", "sky_ribbon", "country_ribbon", "national_ribbon", "earth_ribbon",
	"world_ribbon", "unused_ribbons", "event_legal", "status", "level", "hp", "max_hp", "atk", "def",
	"speed", "spatk", "spdef", "mail", "species2", "ivs", "known_moves", "ribbon_count", "ribbons",
}

func (f Field) String() string {
	if f >= NUM_FIELDS {
		return "unknown"
	}

	return fieldNames[f]
}

func (f Field) encrypted() bool {
	return f > FIELD_ENCRYPT_SEPARATOR
}

// Logical substruct indexes. Their physical slot depends on personality % 24.
const (
	SUBSTRUCT_GROWTH = iota
	SUBSTRUCT_ATTACKS
	SUBSTRUCT_CONDITION
	SUBSTRUCT_MISC

	NUM_SUBSTRUCTS
)

// fieldLoc places a plain integer field inside a decrypted substruct.
// Packed fields use shift/bits, whole fields leave bits at 0.
type fieldLoc struct {
	sub   uint8
	off   uint8
	size  uint8
	shift uint8
	bits  uint8
}

var secureFieldLocs = map[Field]fieldLoc{
	FIELD_SPECIES:    {SUBSTRUCT_GROWTH, 0, 2, 0, 0},
	FIELD_HELD_ITEM:  {SUBSTRUCT_GROWTH, 2, 2, 0, 0},
	FIELD_EXP:        {SUBSTRUCT_GROWTH, 4, 4, 0, 0},
	FIELD_PP_BONUSES: {SUBSTRUCT_GROWTH, 8, 1, 0, 0},
	FIELD_FRIENDSHIP: {SUBSTRUCT_GROWTH, 9, 1, 0, 0},

	FIELD_MOVE1: {SUBSTRUCT_ATTACKS, 0, 2, 0, 0},
	FIELD_MOVE2: {SUBSTRUCT_ATTACKS, 2, 2, 0, 0},
	FIELD_MOVE3: {SUBSTRUCT_ATTACKS, 4, 2, 0, 0},
	FIELD_MOVE4: {SUBSTRUCT_ATTACKS, 6, 2, 0, 0},
	FIELD_PP1:   {SUBSTRUCT_ATTACKS, 8, 1, 0, 0},
	FIELD_PP2:   {SUBSTRUCT_ATTACKS, 9, 1, 0, 0},
	FIELD_PP3:   {SUBSTRUCT_ATTACKS, 10, 1, 0, 0},
	FIELD_PP4:   {SUBSTRUCT_ATTACKS, 11, 1, 0, 0},

	FIELD_HP_EV:    {SUBSTRUCT_CONDITION, 0, 1, 0, 0},
	FIELD_ATK_EV:   {SUBSTRUCT_CONDITION, 1, 1, 0, 0},
	FIELD_DEF_EV:   {SUBSTRUCT_CONDITION, 2, 1, 0, 0},
	FIELD_SPEED_EV: {SUBSTRUCT_CONDITION, 3, 1, 0, 0},
	FIELD_SPATK_EV: {SUBSTRUCT_CONDITION, 4, 1, 0, 0},
	FIELD_SPDEF_EV: {SUBSTRUCT_CONDITION, 5, 1, 0, 0},
	FIELD_COOL:     {SUBSTRUCT_CONDITION, 6, 1, 0, 0},
	FIELD_BEAUTY:   {SUBSTRUCT_CONDITION, 7, 1, 0, 0},
	FIELD_CUTE:     {SUBSTRUCT_CONDITION, 8, 1, 0, 0},
	FIELD_SMART:    {SUBSTRUCT_CONDITION, 9, 1, 0, 0},
	FIELD_TOUGH:    {SUBSTRUCT_CONDITION, 10, 1, 0, 0},
	FIELD_SHEEN:    {SUBSTRUCT_CONDITION, 11, 1, 0, 0},

	FIELD_POKERUS:      {SUBSTRUCT_MISC, 0, 1, 0, 0},
	FIELD_MET_LOCATION: {SUBSTRUCT_MISC, 1, 1, 0, 0},
	FIELD_MET_LEVEL:    {SUBSTRUCT_MISC, 2, 2, 0, 7},
	FIELD_MET_GAME:     {SUBSTRUCT_MISC, 2, 2, 7, 4},
	FIELD_POKEBALL:     {SUBSTRUCT_MISC, 2, 2, 11, 4},
	FIELD_OT_GENDER:    {SUBSTRUCT_MISC, 2, 2, 15, 1},

	FIELD_HP_IV:       {SUBSTRUCT_MISC, 4, 4, 0, 5},
	FIELD_ATK_IV:      {SUBSTRUCT_MISC, 4, 4, 5, 5},
	FIELD_DEF_IV:      {SUBSTRUCT_MISC, 4, 4, 10, 5},
	FIELD_SPEED_IV:    {SUBSTRUCT_MISC, 4, 4, 15, 5},
	FIELD_SPATK_IV:    {SUBSTRUCT_MISC, 4, 4, 20, 5},
	FIELD_SPDEF_IV:    {SUBSTRUCT_MISC, 4, 4, 25, 5},
	FIELD_IS_EGG:      {SUBSTRUCT_MISC, 4, 4, 30, 1},
	FIELD_ABILITY_NUM: {SUBSTRUCT_MISC, 4, 4, 31, 1},

	FIELD_COOL_RIBBON:     {SUBSTRUCT_MISC, 8, 4, 0, 3},
	FIELD_BEAUTY_RIBBON:   {SUBSTRUCT_MISC, 8, 4, 3, 3},
	FIELD_CUTE_RIBBON:     {SUBSTRUCT_MISC, 8, 4, 6, 3},
	FIELD_SMART_RIBBON:    {SUBSTRUCT_MISC, 8, 4, 9, 3},
	FIELD_TOUGH_RIBBON:    {SUBSTRUCT_MISC, 8, 4, 12, 3},
	FIELD_CHAMPION_RIBBON: {SUBSTRUCT_MISC, 8, 4, 15, 1},
	FIELD_WINNING_RIBBON:  {SUBSTRUCT_MISC, 8, 4, 16, 1},
	FIELD_VICTORY_RIBBON:  {SUBSTRUCT_MISC, 8, 4, 17, 1},
	FIELD_ARTIST_RIBBON:   {SUBSTRUCT_MISC, 8, 4, 18, 1},
	FIELD_EFFORT_RIBBON:   {SUBSTRUCT_MISC, 8, 4, 19, 1},
	FIELD_MARINE_RIBBON:   {SUBSTRUCT_MISC, 8, 4, 20, 1},
	FIELD_LAND_RIBBON:     {SUBSTRUCT_MISC, 8, 4, 21, 1},
	FIELD_SKY_RIBBON:      {SUBSTRUCT_MISC, 8, 4, 22, 1},
	FIELD_COUNTRY_RIBBON:  {SUBSTRUCT_MISC, 8, 4, 23, 1},
	FIELD_NATIONAL_RIBBON: {SUBSTRUCT_MISC, 8, 4, 24, 1},
	FIELD_EARTH_RIBBON:    {SUBSTRUCT_MISC, 8, 4, 25, 1},
	FIELD_WORLD_RIBBON:    {SUBSTRUCT_MISC, 8, 4, 26, 1},
	FIELD_UNUSED_RIBBONS:  {SUBSTRUCT_MISC, 8, 4, 27, 4},
	FIELD_EVENT_LEGAL:     {SUBSTRUCT_MISC, 8, 4, 31, 1},
}

// Convenience groupings, indexed in STAT_* order
var (
	EV_FIELDS   = [NUM_STATS]Field{FIELD_HP_EV, FIELD_ATK_EV, FIELD_DEF_EV, FIELD_SPEED_EV, FIELD_SPATK_EV, FIELD_SPDEF_EV}
	IV_FIELDS   = [NUM_STATS]Field{FIELD_HP_IV, FIELD_ATK_IV, FIELD_DEF_IV, FIELD_SPEED_IV, FIELD_SPATK_IV, FIELD_SPDEF_IV}
	STAT_FIELDS = [NUM_STATS]Field{FIELD_MAX_HP, FIELD_ATK, FIELD_DEF, FIELD_SPEED, FIELD_SPATK, FIELD_SPDEF}
	MOVE_FIELDS = [MAX_MON_MOVES]Field{FIELD_MOVE1, FIELD_MOVE2, FIELD_MOVE3, FIELD_MOVE4}
	PP_FIELDS   = [MAX_MON_MOVES]Field{FIELD_PP1, FIELD_PP2, FIELD_PP3, FIELD_PP4}
)

// ribbonBitPositions lays the ribbons out in the packed FIELD_RIBBONS order
var ribbonBitPositions = []struct {
	field Field
	shift uint8
}{
	{FIELD_CHAMPION_RIBBON, 0},
	{FIELD_COOL_RIBBON, 1},
	{FIELD_BEAUTY_RIBBON, 4},
	{FIELD_CUTE_RIBBON, 7},
	{FIELD_SMART_RIBBON, 10},
	{FIELD_TOUGH_RIBBON, 13},
	{FIELD_WINNING_RIBBON, 16},
	{FIELD_VICTORY_RIBBON, 17},
	{FIELD_ARTIST_RIBBON, 18},
	{FIELD_EFFORT_RIBBON, 19},
	{FIELD_MARINE_RIBBON, 20},
	{FIELD_LAND_RIBBON, 21},
	{FIELD_SKY_RIBBON, 22},
	{FIELD_COUNTRY_RIBBON, 23},
	{FIELD_NATIONAL_RIBBON, 24},
	{FIELD_EARTH_RIBBON, 25},
	{FIELD_WORLD_RIBBON, 26},
}
