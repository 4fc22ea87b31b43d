// Package partyfs saves parties as zstd compressed files of party records, one file per party named by uuid.
package partyfs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoSuchParty  = errors.New("no such party exists")
	ErrBadPartyFile = errors.New("not a party file")
)

const (
	partyExt     = ".party"
	formatVer    = 1
	maxNameBytes = 255
)

var magic = []byte("BXPT")

type SavedParty struct {
	Id    uuid.UUID
	Name  string
	Party *golurk.Party
}

func partyPath(dir string, id uuid.UUID) string {
	return filepath.Join(dir, id.String()+partyExt)
}

// Encode writes name and the occupied slots of party, compressed
func Encode(w io.Writer, name string, party *golurk.Party) error {
	if len(name) > maxNameBytes {
		return fmt.Errorf("party name is %d bytes, at most %d allowed", len(name), maxNameBytes)
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	mons := party.Active()

	bw := bufio.NewWriter(enc)
	bw.Write(magic)
	bw.WriteByte(formatVer)
	bw.WriteByte(byte(len(name)))
	bw.WriteString(name)
	bw.WriteByte(byte(len(mons)))

	for _, mon := range mons {
		record, err := mon.MarshalBinary()
		if err != nil {
			enc.Close()
			return err
		}
		bw.Write(record)
	}

	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}

	return enc.Close()
}

// Decode reads a party written by Encode
func Decode(r io.Reader) (string, *golurk.Party, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return "", nil, err
	}
	defer dec.Close()

	br := bufio.NewReader(dec)

	header := make([]byte, len(magic)+2)
	if _, err := io.ReadFull(br, header); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBadPartyFile, err)
	}
	if !bytes.Equal(header[:len(magic)], magic) {
		return "", nil, ErrBadPartyFile
	}
	if header[len(magic)] != formatVer {
		return "", nil, fmt.Errorf("%w: unknown version %d", ErrBadPartyFile, header[len(magic)])
	}

	name := make([]byte, header[len(magic)+1])
	if _, err := io.ReadFull(br, name); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBadPartyFile, err)
	}

	count, err := br.ReadByte()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBadPartyFile, err)
	}
	if count > golurk.PARTY_SIZE {
		return "", nil, fmt.Errorf("%w: %d members", ErrBadPartyFile, count)
	}

	party := golurk.NewParty()
	record := make([]byte, golurk.PARTY_MON_SIZE)
	for i := range int(count) {
		if _, err := io.ReadFull(br, record); err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBadPartyFile, err)
		}
		if err := party.Mons[i].UnmarshalBinary(record); err != nil {
			return "", nil, err
		}
	}
	party.CalculateCount()

	return string(name), party, nil
}

// SaveParty writes party under a new id
func SaveParty(dir string, name string, party *golurk.Party) (uuid.UUID, error) {
	id := uuid.New()
	return id, OverwriteParty(dir, id, name, party)
}

// OverwriteParty replaces the party saved under id, creating it when missing
func OverwriteParty(dir string, id uuid.UUID, name string, party *golurk.Party) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	// write to a temp file first so a failed save never truncates the old one
	tmp, err := os.CreateTemp(dir, id.String()+"-*.tmp")
	if err != nil {
		return err
	}

	if err := Encode(tmp, name, party); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), partyPath(dir, id)); err != nil {
		return err
	}

	log.Debug().Str("id", id.String()).Str("name", name).Msg("saved party")
	return nil
}

func LoadParty(dir string, id uuid.UUID) (SavedParty, error) {
	f, err := os.Open(partyPath(dir, id))
	if errors.Is(err, fs.ErrNotExist) {
		return SavedParty{}, ErrNoSuchParty
	}
	if err != nil {
		return SavedParty{}, err
	}
	defer f.Close()

	name, party, err := Decode(f)
	if err != nil {
		return SavedParty{}, err
	}

	return SavedParty{Id: id, Name: name, Party: party}, nil
}

func DeleteParty(dir string, id uuid.UUID) error {
	err := os.Remove(partyPath(dir, id))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNoSuchParty
	}

	return err
}

// ListParties loads every party in dir sorted by name. Unreadable files are logged and skipped.
// A missing dir has no parties.
func ListParties(dir string) ([]SavedParty, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	parties := make([]SavedParty, 0, len(entries))
	for _, entry := range entries {
		idString, ok := strings.CutSuffix(entry.Name(), partyExt)
		if entry.IsDir() || !ok {
			continue
		}

		id, err := uuid.Parse(idString)
		if err != nil {
			log.Warn().Str("file", entry.Name()).Msg("skipping party file without a uuid name")
			continue
		}

		saved, err := LoadParty(dir, id)
		if err != nil {
			log.Err(err).Str("file", entry.Name()).Msg("skipping unreadable party file")
			continue
		}

		parties = append(parties, saved)
	}

	slices.SortFunc(parties, func(a, b SavedParty) int {
		return strings.Compare(a.Name, b.Name)
	})

	return parties, nil
}
