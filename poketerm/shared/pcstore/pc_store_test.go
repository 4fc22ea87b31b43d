package pcstore

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

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

func openTemp(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "nested", "pc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func boxMon(species uint16) golurk.BoxMon {
	rng := rand.New(rand.NewPCG(3, 4))
	return golurk.NewPokeBuilder(species, 12, rng).BuildBox()
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestLoadEmpty(t *testing.T) {
	store := openTemp(t)

	pc, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint8(0), pc.CurrentBox)
	for b := range golurk.TOTAL_BOXES_COUNT {
		assert.Zero(t, pc.Count(uint8(b)))
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := openTemp(t)

	pc := golurk.NewBoxStorage()
	pc.CurrentBox = 4
	pc.Boxes[0][0] = boxMon(golurk.SPECIES_PIKACHU)
	pc.Boxes[0][7] = boxMon(golurk.SPECIES_ABRA)
	pc.Boxes[13][29] = boxMon(golurk.SPECIES_PIKACHU)

	require.NoError(t, store.Save(ctx, pc))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), loaded.CurrentBox)
	assert.Equal(t, 2, loaded.Count(0))
	assert.Equal(t, 1, loaded.Count(13))
	assert.Equal(t, pc.Boxes[0][7], loaded.Boxes[0][7])
	assert.Equal(t, uint32(golurk.SPECIES_PIKACHU), loaded.Boxes[13][29].Get(golurk.FIELD_SPECIES))

	// a second save replaces the first instead of merging
	pc.Boxes[0][0].Zero()
	pc.CurrentBox = 1
	require.NoError(t, store.Save(ctx, pc))

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), loaded.CurrentBox)
	assert.Equal(t, 1, loaded.Count(0))
	assert.False(t, loaded.Boxes[0][0].HasSpecies())
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	store := openTemp(t)

	pc := golurk.NewBoxStorage()
	pc.Boxes[2][5] = boxMon(golurk.SPECIES_PIKACHU)
	pc.Boxes[0][3] = boxMon(golurk.SPECIES_PIKACHU)
	pc.Boxes[1][0] = boxMon(golurk.SPECIES_ABRA)
	require.NoError(t, store.Save(ctx, pc))

	slots, err := store.Search(ctx, golurk.SPECIES_PIKACHU)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, uint8(0), slots[0].Box)
	assert.Equal(t, uint8(3), slots[0].Pos)
	assert.Equal(t, uint8(2), slots[1].Box)
	assert.Equal(t, "PIKACHU", slots[1].Nickname)
	assert.Equal(t, uint16(golurk.SPECIES_PIKACHU), slots[1].Species)

	slots, err = store.Search(ctx, golurk.SPECIES_SNORLAX)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pc.db")

	store, err := Open(path)
	require.NoError(t, err)
	pc := golurk.NewBoxStorage()
	pc.Boxes[9][9] = boxMon(golurk.SPECIES_EEVEE)
	require.NoError(t, store.Save(ctx, pc))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.Boxes[9][9].HasSpecies())
}
