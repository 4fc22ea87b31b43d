package mainmenu

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/nathanieltooley/boxmon/poketerm/global"
	"github.com/nathanieltooley/boxmon/poketerm/rendering"
	"github.com/nathanieltooley/boxmon/poketerm/rendering/components"
	"github.com/nathanieltooley/boxmon/poketerm/shared/partyfs"
	"github.com/nathanieltooley/boxmon/poketerm/views/partyview"
	"github.com/rs/zerolog/log"
)

var deletePartyKey = key.NewBinding(key.WithKeys("d"))

type savedPartyItem struct {
	partyfs.SavedParty
}

func (s savedPartyItem) FilterValue() string {
	names := make([]string, 0, s.Party.Count)
	for i := range s.Party.Count {
		names = append(names, s.Party.Mons[i].Box.Nickname())
	}

	return fmt.Sprintf("%s: %s", s.Name, strings.Join(names, ", "))
}

type partiesLoadedMsg struct {
	parties []partyfs.SavedParty
	err     error
}

type loadPartyModel struct {
	backtrack components.Breadcrumbs

	list    list.Model
	loading bool
	message string
}

func newLoadPartyMenu(backtrack components.Breadcrumbs) loadPartyModel {
	partyList := list.New(nil, rendering.NewSimpleListDelegate(), 80, 20)
	partyList.Title = "Saved Parties"
	partyList.SetShowHelp(false)
	partyList.SetFilteringEnabled(false)

	return loadPartyModel{
		backtrack: backtrack,
		list:      partyList,
		loading:   true,
	}
}

func listPartiesCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		parties, err := partyfs.ListParties(dir)
		return partiesLoadedMsg{parties, err}
	}
}

func (m loadPartyModel) Init() tea.Cmd {
	return listPartiesCmd(global.Opt.PartySaveLocation)
}

func (m loadPartyModel) View() string {
	body := m.list.View()
	switch {
	case m.loading:
		body = "Loading parties..."
	case len(m.list.Items()) == 0:
		body = fmt.Sprintf("No saved parties in %s", global.Opt.PartySaveLocation)
	}

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center,
		body,
		m.message,
		"enter load  d delete  esc back",
	))
}

func (m loadPartyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case partiesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			log.Err(msg.err).Msg("failed to list parties")
			m.message = msg.err.Error()
			return m, nil
		}

		items := make([]list.Item, len(msg.parties))
		for i, saved := range msg.parties {
			items[i] = savedPartyItem{saved}
		}
		cmd := m.list.SetItems(items)
		return m, cmd
	case clearErrorMessage:
		m.message = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, global.BackKey):
			return m.backtrack.PopDefault(func() tea.Model { return NewModel() }), nil
		case key.Matches(msg, global.SelectKey):
			selected, ok := m.list.SelectedItem().(savedPartyItem)
			if !ok {
				return m, nil
			}

			global.SetParty(selected.Id, selected.Name, copyParty(selected.Party))
			log.Info().Str("id", selected.Id.String()).Str("name", selected.Name).Msg("loaded party")

			return partyview.NewPartyMenu(m.backtrack), nil
		case key.Matches(msg, deletePartyKey):
			selected, ok := m.list.SelectedItem().(savedPartyItem)
			if !ok {
				return m, nil
			}

			if err := partyfs.DeleteParty(global.Opt.PartySaveLocation, selected.Id); err != nil {
				m.message = err.Error()
			} else {
				m.list.RemoveItem(m.list.Index())
				m.message = fmt.Sprintf("Deleted %s.", selected.Name)
			}

			return m, tea.Tick(time.Second*3, func(t time.Time) tea.Msg {
				return clearErrorMessage{t}
			})
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func copyParty(party *golurk.Party) *golurk.Party {
	dup := *party
	return &dup
}
