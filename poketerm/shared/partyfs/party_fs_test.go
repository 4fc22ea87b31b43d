package partyfs

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/nathanieltooley/boxmon/data"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if errs := golurk.DefaultLoader(data.Files); len(errs) != 0 {
		panic(errs[0])
	}

	os.Exit(m.Run())
}

var profile = golurk.Profile{TrainerID: 12345, Name: "BRENDAN", Gender: golurk.MALE}

func testParty(count int) *golurk.Party {
	return golurk.RandomParty(count, 10, 20, profile, rand.New(rand.NewPCG(1, 2)))
}

func TestEncodeDecode(t *testing.T) {
	party := testParty(3)
	party.Mons[1].HP = 1

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "route 101", party))

	name, decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "route 101", name)
	assert.Equal(t, uint8(3), decoded.Count)
	assert.Equal(t, uint16(1), decoded.Mons[1].HP)
	for i := range 3 {
		assert.Equal(t, party.Mons[i].Box, decoded.Mons[i].Box)
		assert.Equal(t, party.Mons[i].MaxHP, decoded.Mons[i].MaxHP)
	}
	assert.True(t, decoded.Mons[3].IsEmpty())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("definitely not zstd")))
	assert.Error(t, err)

	// compressed, but not a party
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "", golurk.NewParty()))
	raw := buf.Bytes()
	_, _, err = Decode(bytes.NewReader(raw[:len(raw)/2]))
	assert.Error(t, err)
}

func TestEncodeRejectsLongNames(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, string(make([]byte, 300)), testParty(1)))
}

func TestSaveLoadDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "parties")

	id, err := SaveParty(dir, "main", testParty(2))
	require.NoError(t, err)

	saved, err := LoadParty(dir, id)
	require.NoError(t, err)
	assert.Equal(t, id, saved.Id)
	assert.Equal(t, "main", saved.Name)
	assert.Equal(t, uint8(2), saved.Party.Count)

	require.NoError(t, OverwriteParty(dir, id, "renamed", testParty(5)))
	saved, err = LoadParty(dir, id)
	require.NoError(t, err)
	assert.Equal(t, "renamed", saved.Name)
	assert.Equal(t, uint8(5), saved.Party.Count)

	require.NoError(t, DeleteParty(dir, id))
	_, err = LoadParty(dir, id)
	assert.ErrorIs(t, err, ErrNoSuchParty)
	assert.ErrorIs(t, DeleteParty(dir, id), ErrNoSuchParty)
}

func TestListParties(t *testing.T) {
	dir := t.TempDir()

	parties, err := ListParties(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, parties)

	_, err = SaveParty(dir, "zeta", testParty(1))
	require.NoError(t, err)
	_, err = SaveParty(dir, "alpha", testParty(2))
	require.NoError(t, err)

	// neither of these is a party
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, uuid.NewString()+".party"), []byte("broken"), 0644))

	parties, err = ListParties(dir)
	require.NoError(t, err)
	require.Len(t, parties, 2)
	assert.Equal(t, "alpha", parties[0].Name)
	assert.Equal(t, "zeta", parties[1].Name)
}
