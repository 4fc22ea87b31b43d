package global

import (
	"context"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/nathanieltooley/boxmon/poketerm/shared/pcstore"
	"github.com/rs/zerolog/log"
)

// The party and PC every view works on. PartyID stays uuid.Nil until the party is first saved.
var (
	Party     = golurk.NewParty()
	PartyID   uuid.UUID
	PartyName = "PARTY"

	PC = golurk.NewBoxStorage()
	// nil when the pc database could not be opened, the PC then only lives in memory
	PCStore *pcstore.Store
)

// SetParty replaces the working party with one loaded from or saved to id
func SetParty(id uuid.UUID, name string, party *golurk.Party) {
	party.CalculateCount()
	Party = party
	PartyID = id
	PartyName = name
}

// NewSession drops the working party, keeping the PC
func NewSession(party *golurk.Party) {
	SetParty(uuid.Nil, "PARTY", party)
}

// pcWriter is the part of the PC database background saves need
type pcWriter interface {
	Save(ctx context.Context, pc *golurk.BoxStorage) error
}

// pcSaver orders PC writes. Every snapshot gets a generation when it is taken, on the update
// goroutine, and a write only happens when nothing newer has been written yet.
type pcSaver struct {
	issued atomic.Uint64

	mu      sync.Mutex
	written uint64
}

var pcSaves pcSaver

func (s *pcSaver) next() uint64 {
	return s.issued.Add(1)
}

// save writes pc as generation gen. It reports false when a newer snapshot already landed.
func (s *pcSaver) save(ctx context.Context, store pcWriter, gen uint64, pc *golurk.BoxStorage) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen <= s.written {
		log.Debug().Uint64("generation", gen).Uint64("written", s.written).Msg("skipping stale pc snapshot")
		return false, nil
	}

	if err := store.Save(ctx, pc); err != nil {
		return false, err
	}

	s.written = gen
	return true, nil
}

// SavePCCmd writes a snapshot of the PC in the background. Failures are only logged, the PC stays in memory.
// Snapshots that finish out of order never overwrite a newer one.
func SavePCCmd() tea.Cmd {
	if PCStore == nil {
		return nil
	}

	store := PCStore
	snapshot := *PC
	gen := pcSaves.next()
	return func() tea.Msg {
		if _, err := pcSaves.save(context.Background(), store, gen, &snapshot); err != nil {
			log.Err(err).Uint64("generation", gen).Msg("failed to save pc")
		}
		return nil
	}
}

// FlushPC writes the live PC right away. Background saves still in flight are skipped afterwards.
func FlushPC(ctx context.Context) error {
	if PCStore == nil {
		return nil
	}

	_, err := pcSaves.save(ctx, PCStore, pcSaves.next(), PC)
	return err
}
