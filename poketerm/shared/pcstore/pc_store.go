// Package pcstore persists the PC boxes to sqlite. Every occupied slot is one row holding the
// 80 byte box record, with the species and nickname copied out so slots can be searched.
package pcstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

var ErrEmptyPath = errors.New("empty pc database path")

type Store struct {
	db *sql.DB
}

// Slot is a stored creature and where it sits
type Slot struct {
	Box      uint8
	Pos      uint8
	Species  uint16
	Nickname string
	Mon      golurk.BoxMon
}

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS boxes (
			box INTEGER NOT NULL,
			pos INTEGER NOT NULL,
			species INTEGER NOT NULL,
			nickname TEXT NOT NULL,
			record BLOB NOT NULL,
			PRIMARY KEY (box, pos)
		);`,
		`CREATE INDEX IF NOT EXISTS boxes_species ON boxes(species);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces everything stored with the contents of pc
func (s *Store) Save(ctx context.Context, pc *golurk.BoxStorage) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM boxes`); err != nil {
		return err
	}

	insert, err := tx.PrepareContext(ctx, `INSERT INTO boxes (box, pos, species, nickname, record) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insert.Close()

	stored := 0
	for b := range pc.Boxes {
		for p := range pc.Boxes[b] {
			mon := &pc.Boxes[b][p]
			if !mon.HasSpecies() {
				continue
			}

			record, err := mon.MarshalBinary()
			if err != nil {
				return err
			}
			if _, err = insert.ExecContext(ctx, b, p, mon.Get(golurk.FIELD_SPECIES), mon.Nickname(), record); err != nil {
				return fmt.Errorf("storing box %d slot %d: %w", b, p, err)
			}
			stored++
		}
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES ('current_box', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		strconv.Itoa(int(pc.CurrentBox)),
	); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	log.Debug().Int("stored", stored).Msg("saved pc")
	return nil
}

// Load rebuilds the PC. An empty database gives empty boxes.
func (s *Store) Load(ctx context.Context) (*golurk.BoxStorage, error) {
	pc := golurk.NewBoxStorage()

	var current string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'current_box'`).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, err
	default:
		box, err := strconv.Atoi(current)
		if err != nil || box < 0 || box >= golurk.TOTAL_BOXES_COUNT {
			return nil, fmt.Errorf("bad current box %q", current)
		}
		pc.CurrentBox = uint8(box)
	}

	slots, err := s.query(ctx, `SELECT box, pos, species, nickname, record FROM boxes`)
	if err != nil {
		return nil, err
	}
	for _, slot := range slots {
		pc.Boxes[slot.Box][slot.Pos] = slot.Mon
	}

	return pc, nil
}

// Search returns every stored slot holding species in box order
func (s *Store) Search(ctx context.Context, species uint16) ([]Slot, error) {
	return s.query(ctx, `SELECT box, pos, species, nickname, record FROM boxes WHERE species = ? ORDER BY box, pos`, species)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Slot, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []Slot
	for rows.Next() {
		var (
			slot   Slot
			record []byte
		)
		if err := rows.Scan(&slot.Box, &slot.Pos, &slot.Species, &slot.Nickname, &record); err != nil {
			return nil, err
		}
		if slot.Box >= golurk.TOTAL_BOXES_COUNT || slot.Pos >= golurk.IN_BOX_COUNT {
			return nil, fmt.Errorf("slot %d/%d is outside the pc", slot.Box, slot.Pos)
		}
		if err := slot.Mon.UnmarshalBinary(record); err != nil {
			return nil, fmt.Errorf("box %d slot %d: %w", slot.Box, slot.Pos, err)
		}

		slots = append(slots, slot)
	}

	return slots, rows.Err()
}
