package mainmenu

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/boxmon/data"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/nathanieltooley/boxmon/poketerm/global"
	"github.com/nathanieltooley/boxmon/poketerm/rendering/components"
	"github.com/nathanieltooley/boxmon/poketerm/shared/partyfs"
	"github.com/nathanieltooley/boxmon/poketerm/views/partyview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if errs := golurk.DefaultLoader(data.Files); len(errs) != 0 {
		panic(errs[0])
	}

	os.Exit(m.Run())
}

func TestResolveSaveDir(t *testing.T) {
	assert.Equal(t, filepath.Join(global.DefaultConfigDir(), "parties"), resolveSaveDir(" parties/ "))

	abs := filepath.Join(t.TempDir(), "mine")
	assert.Equal(t, abs, resolveSaveDir(abs))
}

func TestCommitOptions(t *testing.T) {
	global.ConfigLocation = filepath.Join(t.TempDir(), "config.json")
	before := global.Opt

	bad := global.Opt
	bad.LocalPlayerName = "MAXIMILIAN"
	assert.ErrorContains(t, commitOptions(bad), "player_name")
	assert.Equal(t, before, global.Opt)
	assert.NoFileExists(t, global.ConfigLocation)

	good := global.Opt
	good.LocalPlayerName = "BRENDAN"
	good.TrainerID = 4321
	require.NoError(t, commitOptions(good))
	assert.Equal(t, good, global.Opt)

	loaded, err := global.LoadConfig(global.ConfigLocation)
	require.NoError(t, err)
	assert.Equal(t, "BRENDAN", loaded.LocalPlayerName)
	assert.Equal(t, uint32(4321), loaded.TrainerID)
}

func TestLoadPartyMenu(t *testing.T) {
	dir := t.TempDir()
	global.Opt.PartySaveLocation = dir

	party := golurk.RandomParty(2, 5, 5, golurk.Profile{Name: "MAY"}, nil)
	id, err := partyfs.SaveParty(dir, "RIVALS", party)
	require.NoError(t, err)

	var model tea.Model = newLoadPartyMenu(components.NewBreadcrumb())
	model, _ = model.Update(listPartiesCmd(dir)())

	menu := model.(loadPartyModel)
	assert.False(t, menu.loading)
	require.Len(t, menu.list.Items(), 1)
	assert.Contains(t, menu.list.Items()[0].FilterValue(), "RIVALS: ")

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.IsType(t, partyview.PartyMenuModel{}, next)
	assert.Equal(t, id, global.PartyID)
	assert.Equal(t, "RIVALS", global.PartyName)
	assert.Equal(t, uint8(2), global.Party.Count)
}

func TestDeleteFromLoadPartyMenu(t *testing.T) {
	dir := t.TempDir()
	global.Opt.PartySaveLocation = dir

	_, err := partyfs.SaveParty(dir, "OLD", golurk.RandomParty(1, 5, 5, golurk.Profile{Name: "MAY"}, nil))
	require.NoError(t, err)

	var model tea.Model = newLoadPartyMenu(components.NewBreadcrumb())
	model, _ = model.Update(listPartiesCmd(dir)())
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})

	menu := model.(loadPartyModel)
	assert.Empty(t, menu.list.Items())
	assert.Equal(t, "Deleted OLD.", menu.message)

	parties, err := partyfs.ListParties(dir)
	require.NoError(t, err)
	assert.Empty(t, parties)
}

func TestMainMenuOpensViews(t *testing.T) {
	var model tea.Model = NewModel()

	// Party, PC Boxes, New Random Party
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.IsType(t, partyview.PartyMenuModel{}, next)
	assert.Equal(t, uint8(6), global.Party.Count)
	assert.Equal(t, "PARTY", global.PartyName)
}

func TestHelpListsScreenKeys(t *testing.T) {
	view := newHelpMenu(components.NewBreadcrumb()).View()

	for _, want := range []string{"Party", "PC Boxes", "use item", "send to PC", "find species", "set current box", "quit"} {
		assert.Contains(t, view, want)
	}
}

func TestHelpGoesBack(t *testing.T) {
	var model tea.Model = newHelpMenu(backToMenu())

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.IsType(t, MainMenuModel{}, next)
}
