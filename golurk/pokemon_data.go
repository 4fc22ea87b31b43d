package golurk

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownSpecies = errors.New("unknown species")
	ErrUnknownMove    = errors.New("unknown move")
	ErrUnknownItem    = errors.New("unknown item")
)

var GlobalData = pokemonDb{}

type pokemonDb struct {
	species    map[uint16]SpeciesInfo
	moves      map[uint16]MoveInfo
	items      map[uint16]ItemInfo
	learnsets  map[uint16][]LevelUpMove
	evolutions map[uint16][]Evolution
	tmhm       map[uint16]uint64
	machines   [NUM_TMHMS]uint16

	nationalToSpecies map[uint16]uint16
	hoennToSpecies    map[uint16]uint16
}

// SpeciesInfo is the static per-species record. Stats are in STAT_* order.
type SpeciesInfo struct {
	Name        string
	NationalDex uint16
	HoennDex    uint16
	BaseStats   [NUM_STATS]uint8
	Types       [2]uint8
	EVYield     [NUM_STATS]uint8
	GenderRatio uint8
	Friendship  uint8
	GrowthRate  uint8
	Abilities   [2]uint8
	// wild held items: Items[0] is the common one, Items[1] the rare one
	Items       [2]uint16
}

type MoveInfo struct {
	Name            string
	Effect          uint8
	Power           uint8
	Type            uint8
	Accuracy        uint8
	PP              uint8
	SecondaryChance uint8
	Target          uint8
	Priority        int8
}

type ItemInfo struct {
	Name            string
	HoldEffect      uint8
	HoldEffectParam uint8
	// nil for items that cannot be used on a creature
	Effect *ItemEffect
}

type LevelUpMove struct {
	Level uint8
	Move  uint16
}

type Evolution struct {
	Method uint8
	Param  uint16
	Target uint16
}

// GetSpecies returns the zero SpeciesInfo for unknown ids
func (db pokemonDb) GetSpecies(species uint16) SpeciesInfo {
	return db.species[species]
}

func (db pokemonDb) GetSpeciesByName(name string) (uint16, bool) {
	for id, info := range db.species {
		if strings.EqualFold(info.Name, name) {
			return id, true
		}
	}

	return SPECIES_NONE, false
}

// SpeciesIds lists every loaded species in ascending id order
func (db pokemonDb) SpeciesIds() []uint16 {
	ids := lo.Keys(db.species)
	slices.Sort(ids)
	return ids
}

func (db pokemonDb) GetMove(move uint16) MoveInfo {
	return db.moves[move]
}

func (db pokemonDb) GetMoveByName(name string) (uint16, bool) {
	for id, info := range db.moves {
		if info.Name == name {
			return id, true
		}
	}

	return MOVE_NONE, false
}

func (db pokemonDb) GetItem(item uint16) ItemInfo {
	return db.items[item]
}

func (db pokemonDb) GetItemByName(name string) (uint16, bool) {
	for id, info := range db.items {
		if info.Name == name {
			return id, true
		}
	}

	return ITEM_NONE, false
}

// UsableItemIds lists every item with an effect on creatures in ascending id order
func (db pokemonDb) UsableItemIds() []uint16 {
	ids := lo.Keys(lo.PickBy(db.items, func(_ uint16, info ItemInfo) bool {
		return info.Effect != nil
	}))
	slices.Sort(ids)
	return ids
}

func (db pokemonDb) ItemHoldEffect(item uint16) uint8 {
	return db.items[item].HoldEffect
}

func (db pokemonDb) ItemHoldEffectParam(item uint16) uint8 {
	return db.items[item].HoldEffectParam
}

func (db pokemonDb) GetLevelUpLearnset(species uint16) []LevelUpMove {
	return db.learnsets[species]
}

func (db pokemonDb) GetEvolutions(species uint16) []Evolution {
	return db.evolutions[species]
}

// GetTMHMMove returns the move taught by machine index i (tm01 = 0), or MOVE_NONE
func (db pokemonDb) GetTMHMMove(i uint8) uint16 {
	if int(i) >= NUM_TMHMS {
		return MOVE_NONE
	}

	return db.machines[i]
}

func (db pokemonDb) tmhmMask(species uint16) uint64 {
	return db.tmhm[species]
}

var upperCaser = cases.Upper(language.English)

// GetSpeciesName returns the in-game (upper case) name, or "" for unknown species
func GetSpeciesName(species uint16) string {
	return upperCaser.String(GlobalData.GetSpecies(species).Name)
}

// LoadSpecies takes in the bytes of a csv file with a header row and the columns:
// id, name, national, hoenn, hp, attack, defense, speed, sp_attack, sp_defense, type1, type2,
// six ev yields in the same stat order, gender_ratio, friendship, growth_rate, ability1, ability2,
// item1, item2 (wild held item ids, 0 for none)
func LoadSpecies(fileBytes []byte) (map[uint16]SpeciesInfo, error) {
	csvReader := csv.NewReader(bytes.NewBuffer(fileBytes))
	csvReader.FieldsPerRecord = 25
	if _, err := csvReader.Read(); err != nil {
		return nil, fmt.Errorf("species header: %w", err)
	}

	rows, err := csvReader.ReadAll()
	if err != nil {
		internalLogger.Error(err, "invalid csv data")
		return nil, err
	}

	internalLogger.Info("Loading species data")

	species := make(map[uint16]SpeciesInfo, len(rows))
	for _, row := range rows {
		var nums [19]uint64
		numCols := []int{0, 2, 3, 4, 5, 6, 7, 8, 9, 12, 13, 14, 15, 16, 17, 18, 19, 23, 24}
		for i, col := range numCols {
			bits := 8
			if col <= 3 || col >= 23 {
				bits = 16
			}

			nums[i], err = strconv.ParseUint(row[col], 10, bits)
			if err != nil {
				internalLogger.WithName("species_parsing").Error(err, "invalid number", "species", row[1], "column", col)
				return nil, fmt.Errorf("species %s column %d: %w", row[1], col, err)
			}
		}

		info := SpeciesInfo{
			Name:        row[1],
			NationalDex: uint16(nums[1]),
			HoennDex:    uint16(nums[2]),
			GenderRatio: uint8(nums[15]),
			Friendship:  uint8(nums[16]),
			Items:       [2]uint16{uint16(nums[17]), uint16(nums[18])},
		}
		for i := range NUM_STATS {
			info.BaseStats[i] = uint8(nums[3+i])
			info.EVYield[i] = uint8(nums[9+i])
		}

		type1, ok := TYPE_MAP[row[10]]
		if !ok {
			return nil, fmt.Errorf("species %s: unknown type %q", row[1], row[10])
		}
		info.Types = [2]uint8{type1, type1}
		if row[11] != "" {
			type2, ok := TYPE_MAP[row[11]]
			if !ok {
				return nil, fmt.Errorf("species %s: unknown type %q", row[1], row[11])
			}
			info.Types[1] = type2
		}

		growth, ok := GROWTH_RATE_MAP[row[20]]
		if !ok {
			return nil, fmt.Errorf("species %s: unknown growth rate %q", row[1], row[20])
		}
		info.GrowthRate = growth

		for i, name := range row[21:23] {
			if name == "" {
				continue
			}
			ability := slices.Index(ABILITY_NAMES[:], name)
			if ability < 0 {
				return nil, fmt.Errorf("species %s: unknown ability %q", row[1], name)
			}
			info.Abilities[i] = uint8(ability)
		}

		internalLogger.WithName("load_species").V(1).Info("loaded species", "id", nums[0], "name", info.Name, "stats", info.BaseStats)
		species[uint16(nums[0])] = info
	}

	internalLogger.Info("Loaded species", "count", len(species))

	return species, nil
}

// checkHeldItems makes sure every wild held item of the species table is a known item
func checkHeldItems(species map[uint16]SpeciesInfo, items map[uint16]ItemInfo) error {
	for id, info := range species {
		for _, item := range info.Items {
			if item == ITEM_NONE {
				continue
			}
			if _, ok := items[item]; !ok {
				return fmt.Errorf("species %s (%d): held item %d: %w", info.Name, id, item, ErrUnknownItem)
			}
		}
	}

	return nil
}

// validateJSON checks doc against the schema source when one is given
func validateJSON(name string, schemaBytes []byte, doc []byte) error {
	if schemaBytes == nil {
		return nil
	}

	schema, err := jsonschema.CompileString(name, string(schemaBytes))
	if err != nil {
		return fmt.Errorf("compile %s: %w", name, err)
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("validate %s: %w", name, err)
	}

	return nil
}

type moveRecord struct {
	Id              uint16 `json:"id"`
	Name            string `json:"name"`
	Effect          string `json:"effect"`
	Power           uint8  `json:"power"`
	Type            string `json:"type"`
	Accuracy        uint8  `json:"accuracy"`
	PP              uint8  `json:"pp"`
	SecondaryChance uint8  `json:"secondary_chance"`
	Target          string `json:"target"`
	Priority        int8   `json:"priority"`
}

// LoadMoves takes in json that lists out move information. A nil schema skips validation.
func LoadMoves(moveBytes []byte, schemaBytes []byte) (map[uint16]MoveInfo, error) {
	internalLogger.Info("Loading move data")

	if err := validateJSON("moves.schema.json", schemaBytes, moveBytes); err != nil {
		internalLogger.Error(err, "Move data failed validation")
		return nil, err
	}

	records := make([]moveRecord, 0, 128)
	if err := json.Unmarshal(moveBytes, &records); err != nil {
		internalLogger.Error(err, "Couldn't unmarshal move data")
		return nil, err
	}

	moves := make(map[uint16]MoveInfo, len(records))
	for _, r := range records {
		effect, ok := EFFECT_NAME_MAP[r.Effect]
		if !ok {
			return nil, fmt.Errorf("move %s: unknown effect %q", r.Name, r.Effect)
		}
		moveType, ok := TYPE_MAP[r.Type]
		if !ok {
			return nil, fmt.Errorf("move %s: unknown type %q", r.Name, r.Type)
		}

		moves[r.Id] = MoveInfo{
			Name:            r.Name,
			Effect:          effect,
			Power:           r.Power,
			Type:            moveType,
			Accuracy:        r.Accuracy,
			PP:              r.PP,
			SecondaryChance: r.SecondaryChance,
			Target:          MOVE_TARGET_MAP[r.Target],
			Priority:        r.Priority,
		}
	}

	internalLogger.Info("Loaded moves", "count", len(moves))

	return moves, nil
}

type itemEffectRecord struct {
	CureInfatuation bool             `json:"cure_infatuation"`
	DireHit         bool             `json:"dire_hit"`
	XStats          map[string]uint8 `json:"x_stats"`
	GuardSpec       bool             `json:"guard_spec"`
	LevelUp         bool             `json:"level_up"`
	CureStatus      []string         `json:"cure_status"`
	CureConfusion   bool             `json:"cure_confusion"`
	EVs             map[string]int8  `json:"evs"`
	HealHP          uint8            `json:"heal_hp"`
	Revive          bool             `json:"revive"`
	HealPP          uint8            `json:"heal_pp"`
	HealPPOne       bool             `json:"heal_pp_one"`
	PPUp            bool             `json:"pp_up"`
	PPMax           bool             `json:"pp_max"`
	EvoStone        bool             `json:"evo_stone"`
	Friendship      []int8           `json:"friendship"`
}

type itemRecord struct {
	Id              uint16            `json:"id"`
	Name            string            `json:"name"`
	HoldEffect      string            `json:"hold_effect"`
	HoldEffectParam uint8             `json:"hold_effect_param"`
	Effect          *itemEffectRecord `json:"effect"`
}

// Stat names used by the ev and x_stats objects of the item table
var itemStatNames = map[string]uint8{
	"hp":         STAT_HP,
	"attack":     STAT_ATK,
	"defense":    STAT_DEF,
	"speed":      STAT_SPEED,
	"sp_attack":  STAT_SPATK,
	"sp_defense": STAT_SPDEF,
	"accuracy":   STAT_ACC,
}

func (r *itemEffectRecord) toEffect() (*ItemEffect, error) {
	effect := &ItemEffect{
		CureInfatuation: r.CureInfatuation,
		DireHit:         r.DireHit,
		GuardSpec:       r.GuardSpec,
		LevelUp:         r.LevelUp,
		CureConfusion:   r.CureConfusion,
		HealHP:          r.HealHP,
		Revive:          r.Revive,
		HealPP:          r.HealPP,
		HealPPOne:       r.HealPPOne,
		PPUp:            r.PPUp,
		PPMax:           r.PPMax,
		EvoStone:        r.EvoStone,
	}

	for name, stages := range r.XStats {
		stat, ok := itemStatNames[name]
		if !ok || stat == STAT_HP {
			return nil, fmt.Errorf("unknown x stat %q", name)
		}
		effect.XStats[stat] = stages
	}

	for _, name := range r.CureStatus {
		mask, ok := STATUS_NAME_MAP[name]
		if !ok {
			return nil, fmt.Errorf("unknown status %q", name)
		}
		effect.CureStatus |= mask
	}

	for name, change := range r.EVs {
		stat, ok := itemStatNames[name]
		if !ok || stat >= NUM_STATS {
			return nil, fmt.Errorf("unknown ev stat %q", name)
		}
		effect.EVs[stat] = change
	}

	if r.Friendship != nil {
		if len(r.Friendship) != 3 {
			return nil, fmt.Errorf("friendship needs 3 bands, got %d", len(r.Friendship))
		}
		effect.Friendship = &[3]int8{r.Friendship[0], r.Friendship[1], r.Friendship[2]}
	}

	return effect, nil
}

// LoadItems takes in json that lists items, their hold effects and their use effects.
// A nil schema skips validation.
func LoadItems(itemBytes []byte, schemaBytes []byte) (map[uint16]ItemInfo, error) {
	internalLogger.Info("Loading item data")

	if err := validateJSON("items.schema.json", schemaBytes, itemBytes); err != nil {
		internalLogger.Error(err, "Item data failed validation")
		return nil, err
	}

	records := make([]itemRecord, 0, 128)
	if err := json.Unmarshal(itemBytes, &records); err != nil {
		internalLogger.Error(err, "Couldn't parse items.json")
		return nil, err
	}

	items := make(map[uint16]ItemInfo, len(records))
	for _, r := range records {
		holdEffect, ok := HOLD_EFFECT_MAP[r.HoldEffect]
		if !ok {
			return nil, fmt.Errorf("item %s: unknown hold effect %q", r.Name, r.HoldEffect)
		}

		info := ItemInfo{Name: r.Name, HoldEffect: holdEffect, HoldEffectParam: r.HoldEffectParam}
		if r.Effect != nil {
			effect, err := r.Effect.toEffect()
			if err != nil {
				return nil, fmt.Errorf("item %s: %w", r.Name, err)
			}
			info.Effect = effect
		}

		items[r.Id] = info
	}

	internalLogger.Info("Loaded items", "count", len(items))
	return items, nil
}

// NameIndex resolves the lower case names used as keys by the yaml tables
type NameIndex struct {
	species map[string]uint16
	moves   map[string]uint16
	items   map[string]uint16
}

func NewNameIndex(species map[uint16]SpeciesInfo, moves map[uint16]MoveInfo, items map[uint16]ItemInfo) NameIndex {
	return NameIndex{
		species: lo.MapEntries(species, func(id uint16, info SpeciesInfo) (string, uint16) {
			return strings.ToLower(info.Name), id
		}),
		moves: lo.MapEntries(moves, func(id uint16, info MoveInfo) (string, uint16) {
			return info.Name, id
		}),
		items: lo.MapEntries(items, func(id uint16, info ItemInfo) (string, uint16) {
			return info.Name, id
		}),
	}
}

func (idx NameIndex) lookup(table map[string]uint16, name string, kind error) (uint16, error) {
	id, ok := table[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", kind, name)
	}

	return id, nil
}

// LoadLearnsets takes in yaml mapping species names to ordered {level, move} lists
func LoadLearnsets(learnsetBytes []byte, idx NameIndex) (map[uint16][]LevelUpMove, error) {
	raw := map[string][]struct {
		Level uint8  `yaml:"level"`
		Move  string `yaml:"move"`
	}{}
	if err := yaml.Unmarshal(learnsetBytes, &raw); err != nil {
		internalLogger.Error(err, "Couldn't parse learnsets")
		return nil, err
	}

	learnsets := make(map[uint16][]LevelUpMove, len(raw))
	for speciesName, entries := range raw {
		species, err := idx.lookup(idx.species, speciesName, ErrUnknownSpecies)
		if err != nil {
			return nil, fmt.Errorf("learnsets: %w", err)
		}

		learnset := make([]LevelUpMove, 0, len(entries))
		for _, e := range entries {
			move, err := idx.lookup(idx.moves, e.Move, ErrUnknownMove)
			if err != nil {
				return nil, fmt.Errorf("learnset %s: %w", speciesName, err)
			}
			learnset = append(learnset, LevelUpMove{Level: e.Level, Move: move})
		}

		learnsets[species] = learnset
	}

	internalLogger.Info("Loaded learnsets", "species_count", len(learnsets))
	return learnsets, nil
}

// LoadEvolutions takes in yaml mapping species names to ordered evolution entries.
// Item methods name the item, every other method uses the numeric param.
func LoadEvolutions(evolutionBytes []byte, idx NameIndex) (map[uint16][]Evolution, error) {
	raw := map[string][]struct {
		Method string `yaml:"method"`
		Param  uint16 `yaml:"param"`
		Item   string `yaml:"item"`
		Target string `yaml:"target"`
	}{}
	if err := yaml.Unmarshal(evolutionBytes, &raw); err != nil {
		internalLogger.Error(err, "Couldn't parse evolutions")
		return nil, err
	}

	evolutions := make(map[uint16][]Evolution, len(raw))
	for speciesName, entries := range raw {
		species, err := idx.lookup(idx.species, speciesName, ErrUnknownSpecies)
		if err != nil {
			return nil, fmt.Errorf("evolutions: %w", err)
		}

		for _, e := range entries {
			method, ok := EVO_METHOD_MAP[e.Method]
			if !ok {
				return nil, fmt.Errorf("evolution %s: unknown method %q", speciesName, e.Method)
			}

			target, err := idx.lookup(idx.species, e.Target, ErrUnknownSpecies)
			if err != nil {
				return nil, fmt.Errorf("evolution %s: %w", speciesName, err)
			}

			param := e.Param
			if e.Item != "" {
				param, err = idx.lookup(idx.items, e.Item, ErrUnknownItem)
				if err != nil {
					return nil, fmt.Errorf("evolution %s: %w", speciesName, err)
				}
			}

			evolutions[species] = append(evolutions[species], Evolution{Method: method, Param: param, Target: target})
		}
	}

	internalLogger.Info("Loaded evolutions", "species_count", len(evolutions))
	return evolutions, nil
}

// machineIndex turns "tm01".."tm50" / "hm01".."hm08" into a 0-based machine index
func machineIndex(name string) (uint8, error) {
	if len(name) != 4 {
		return 0, fmt.Errorf("bad machine name %q", name)
	}

	n, err := strconv.ParseUint(name[2:], 10, 8)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("bad machine name %q", name)
	}

	switch name[:2] {
	case "tm":
		if n <= NUM_TECHNICAL_MACHINES {
			return uint8(n - 1), nil
		}
	case "hm":
		if n <= NUM_HIDDEN_MACHINES {
			return uint8(NUM_TECHNICAL_MACHINES + n - 1), nil
		}
	}

	return 0, fmt.Errorf("bad machine name %q", name)
}

// LoadTMHM takes in yaml with the machine -> move table and the machines each species can use
func LoadTMHM(tmhmBytes []byte, idx NameIndex) ([NUM_TMHMS]uint16, map[uint16]uint64, error) {
	var machines [NUM_TMHMS]uint16
	raw := struct {
		Machines      map[string]string   `yaml:"machines"`
		Compatibility map[string][]string `yaml:"compatibility"`
	}{}
	if err := yaml.Unmarshal(tmhmBytes, &raw); err != nil {
		internalLogger.Error(err, "Couldn't parse tmhm table")
		return machines, nil, err
	}

	for name, moveName := range raw.Machines {
		i, err := machineIndex(name)
		if err != nil {
			return machines, nil, err
		}
		move, err := idx.lookup(idx.moves, moveName, ErrUnknownMove)
		if err != nil {
			return machines, nil, fmt.Errorf("machine %s: %w", name, err)
		}
		machines[i] = move
	}

	masks := make(map[uint16]uint64, len(raw.Compatibility))
	for speciesName, names := range raw.Compatibility {
		species, err := idx.lookup(idx.species, speciesName, ErrUnknownSpecies)
		if err != nil {
			return machines, nil, fmt.Errorf("tmhm: %w", err)
		}

		var mask uint64
		for _, name := range names {
			i, err := machineIndex(name)
			if err != nil {
				return machines, nil, fmt.Errorf("tmhm %s: %w", speciesName, err)
			}
			mask |= 1 << i
		}
		masks[species] = mask
	}

	internalLogger.Info("Loaded tm/hm compatibility", "species_count", len(masks))
	return machines, masks, nil
}

// DefaultLoader loads the bundled tables from the root of files (see the data package).
// Species, moves and items load concurrently first, then the name keyed yaml tables
// that reference them. GlobalData is only replaced when everything loaded.
func DefaultLoader(files fs.FS) []error {
	var db pokemonDb

	var g errgroup.Group
	g.Go(func() error {
		speciesBytes, err := fs.ReadFile(files, "species.csv")
		if err != nil {
			return err
		}

		db.species, err = LoadSpecies(speciesBytes)
		return err
	})
	g.Go(func() error {
		moveBytes, schemaBytes, err := readWithSchema(files, "moves.json", "schemas/moves.schema.json")
		if err != nil {
			return err
		}

		db.moves, err = LoadMoves(moveBytes, schemaBytes)
		return err
	})
	g.Go(func() error {
		itemBytes, schemaBytes, err := readWithSchema(files, "items.json", "schemas/items.schema.json")
		if err != nil {
			return err
		}

		db.items, err = LoadItems(itemBytes, schemaBytes)
		return err
	})
	if err := g.Wait(); err != nil {
		return []error{err}
	}
	if err := checkHeldItems(db.species, db.items); err != nil {
		return []error{err}
	}

	db.nationalToSpecies, db.hoennToSpecies = buildDexIndex(db.species)
	idx := NewNameIndex(db.species, db.moves, db.items)

	var tables errgroup.Group
	tables.Go(func() error {
		b, err := fs.ReadFile(files, "learnsets.yaml")
		if err != nil {
			return err
		}

		db.learnsets, err = LoadLearnsets(b, idx)
		return err
	})
	tables.Go(func() error {
		b, err := fs.ReadFile(files, "evolutions.yaml")
		if err != nil {
			return err
		}

		db.evolutions, err = LoadEvolutions(b, idx)
		return err
	})
	tables.Go(func() error {
		b, err := fs.ReadFile(files, "tmhm.yaml")
		if err != nil {
			return err
		}

		db.machines, db.tmhm, err = LoadTMHM(b, idx)
		return err
	})
	if err := tables.Wait(); err != nil {
		return []error{err}
	}

	GlobalData = db
	return nil
}

// buildDexIndex inverts the species table's dex numbers
func buildDexIndex(species map[uint16]SpeciesInfo) (map[uint16]uint16, map[uint16]uint16) {
	national := make(map[uint16]uint16, len(species))
	hoenn := make(map[uint16]uint16, len(species))

	for id, info := range species {
		if info.NationalDex != 0 {
			national[info.NationalDex] = id
		}
		if info.HoennDex != 0 {
			hoenn[info.HoennDex] = id
		}
	}

	return national, hoenn
}

// readWithSchema reads a json table and its schema. A missing schema is not an error.
func readWithSchema(files fs.FS, name string, schemaName string) ([]byte, []byte, error) {
	doc, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, nil, err
	}

	schema, err := fs.ReadFile(files, schemaName)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	return doc, schema, nil
}
