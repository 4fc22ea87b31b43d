package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/boxmon/data"
	"github.com/nathanieltooley/boxmon/poketerm/global"
	"github.com/nathanieltooley/boxmon/poketerm/shared/pcstore"
	"github.com/nathanieltooley/boxmon/poketerm/views/mainmenu"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type model struct {
	currentView tea.Model
}

func (m model) Init() tea.Cmd {
	return m.currentView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, global.QuitKey) {
		return m, tea.Quit
	}

	newView, cmd := m.currentView.Update(msg)
	m.currentView = newView

	return m, cmd
}

func (m model) View() string {
	return m.currentView.View()
}

// openPC loads the saved boxes. Without a database the PC only lives for this run.
func openPC(path string) *pcstore.Store {
	store, err := pcstore.Open(path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("could not open pc database")
		return nil
	}

	pc, err := store.Load(context.Background())
	if err != nil {
		log.Err(err).Msg("could not load pc, starting with empty boxes")
		return store
	}

	global.PC = pc
	return store
}

func main() {
	if err := global.GlobalInit(data.Files, true); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start boxmon: %s\n", err)
		os.Exit(1)
	}

	global.PCStore = openPC(global.Opt.PCDatabase)

	m := model{currentView: mainmenu.NewModel()}
	finalModel := lo.Must(tea.NewProgram(m, tea.WithAltScreen()).Run())
	log.Debug().Type("view", finalModel.(model).currentView).Msg("exited")

	if global.PCStore != nil {
		if err := global.FlushPC(context.Background()); err != nil {
			log.Err(err).Msg("failed to save pc on exit")
		}
		if err := global.PCStore.Close(); err != nil {
			log.Err(err).Msg("failed to close pc database")
		}
	}
}
