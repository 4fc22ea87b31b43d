package partyview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/nathanieltooley/boxmon/poketerm/global"
	"github.com/nathanieltooley/boxmon/poketerm/rendering"
	"github.com/nathanieltooley/boxmon/poketerm/rendering/components"
	"github.com/nathanieltooley/boxmon/poketerm/shared/partyfs"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type menuState int

const (
	stateBrowse menuState = iota
	stateItems
	stateMoves
)

type itemEntry struct {
	id   uint16
	name string
}

func (i itemEntry) FilterValue() string { return i.name }

type moveEntry struct {
	index uint8
	name  string
	pp    uint32
}

func (m moveEntry) FilterValue() string { return m.name }
func (m moveEntry) Detail() string      { return fmt.Sprintf("PP %d", m.pp) }

type partySavedMsg struct {
	id  uuid.UUID
	err error
}

type clearMessageMsg struct {
	t time.Time
}

type PartyMenuModel struct {
	backtrack components.Breadcrumbs

	partyView components.PartyView
	state     menuState
	itemList  list.Model
	moveList  list.Model

	pendingItem uint16
	messages    []string
	clock       golurk.Clock
}

func newPickerList(items []list.Item, title string) list.Model {
	l := list.New(items, rendering.NewSimpleListDelegate(), 30, 14)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

func NewPartyMenu(backtrack components.Breadcrumbs) PartyMenuModel {
	items := lo.Map(golurk.GlobalData.UsableItemIds(), func(id uint16, _ int) list.Item {
		return itemEntry{id, rendering.DisplayName(golurk.GlobalData.GetItem(id).Name)}
	})

	return PartyMenuModel{
		backtrack: backtrack,
		partyView: components.NewPartyView(global.Party),
		itemList:  newPickerList(items, "Use which item?"),
		clock:     golurk.SystemClock{},
	}
}

func (m PartyMenuModel) Init() tea.Cmd { return nil }

func (m PartyMenuModel) View() string {
	var right string
	switch m.state {
	case stateItems:
		right = m.itemList.View()
	case stateMoves:
		right = m.moveList.View()
	default:
		if mon := m.partyView.Selected(); mon != nil {
			right = components.MonSummary(mon, global.Opt.Profile())
		}
	}

	header := fmt.Sprintf("%s (%d/%d)", global.PartyName, m.partyView.Party.Count, golurk.PARTY_SIZE)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.partyView.View(), "  ", right)
	footer := rendering.Footer(60, m.messages, rendering.KeyHints(global.PartyKeys))

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, header, body, footer))
}

func (m PartyMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case partySavedMsg:
		if msg.err != nil {
			log.Err(msg.err).Msg("failed to save party")
			cmd := m.show(fmt.Sprintf("Could not save: %s", msg.err))
			return m, cmd
		}

		global.PartyID = msg.id
		cmd := m.show(fmt.Sprintf("Saved %s.", global.PartyName))
		return m, cmd
	case clearMessageMsg:
		m.messages = nil
		return m, nil
	case tea.KeyMsg:
		switch m.state {
		case stateItems:
			return m.updateItems(msg)
		case stateMoves:
			return m.updateMoves(msg)
		}

		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m PartyMenuModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, global.BackKey) {
		return m.backtrack.PopDefault(func() tea.Model { return m }), nil
	}

	index := m.partyView.CurrentPokemonIndex
	hasSelection := m.partyView.Selected() != nil

	switch {
	case key.Matches(msg, global.PartyKeys.Save):
		return m, savePartyCmd(global.Opt.PartySaveLocation, global.PartyID, global.PartyName, global.Party)
	case !hasSelection:
	case key.Matches(msg, global.PartyKeys.UseItem):
		m.state = stateItems
		m.partyView.Focused = false
		return m, nil
	case key.Matches(msg, global.PartyKeys.Evolve):
		message := tryEvolve(global.Party, index, m.clock)
		m.partyView.Clamp()
		cmd := m.show(message)
		return m, cmd
	case key.Matches(msg, global.PartyKeys.Deposit):
		message, err := depositMember(global.Party, global.PC, index)
		if err != nil {
			cmd := m.show(err.Error())
			return m, cmd
		}
		m.partyView.Clamp()
		cmd := m.show(message)
		return m, tea.Batch(cmd, global.SavePCCmd())
	}

	var cmd tea.Cmd
	m.partyView, cmd = m.partyView.Update(msg)
	return m, cmd
}

func (m PartyMenuModel) updateItems(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtering := m.itemList.FilterState() == list.Filtering

	if !filtering && key.Matches(msg, global.BackKey) {
		m.state = stateBrowse
		m.partyView.Focused = true
		return m, nil
	}

	if !filtering && key.Matches(msg, global.SelectKey) {
		entry, ok := m.itemList.SelectedItem().(itemEntry)
		if !ok {
			return m, nil
		}

		if needsMove(entry.id) {
			m.pendingItem = entry.id
			m.moveList = newPickerList(moveEntries(m.partyView.Selected()), "Use on which move?")
			m.state = stateMoves
			return m, nil
		}

		return m.finishItem(entry.id, 0)
	}

	var cmd tea.Cmd
	m.itemList, cmd = m.itemList.Update(msg)
	return m, cmd
}

func (m PartyMenuModel) updateMoves(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, global.BackKey) {
		m.state = stateItems
		return m, nil
	}

	if key.Matches(msg, global.SelectKey) {
		entry, ok := m.moveList.SelectedItem().(moveEntry)
		if !ok {
			return m, nil
		}

		return m.finishItem(m.pendingItem, entry.index)
	}

	var cmd tea.Cmd
	m.moveList, cmd = m.moveList.Update(msg)
	return m, cmd
}

func (m PartyMenuModel) finishItem(item uint16, moveIndex uint8) (tea.Model, tea.Cmd) {
	messages := useItem(global.Party, m.partyView.CurrentPokemonIndex, item, moveIndex, m.clock)

	m.state = stateBrowse
	m.partyView.Focused = true
	m.partyView.Clamp()
	cmd := m.show(messages...)
	return m, cmd
}

func moveEntries(mon *golurk.Pokemon) []list.Item {
	entries := make([]list.Item, 0, golurk.MAX_MON_MOVES)
	for i := range uint8(golurk.MAX_MON_MOVES) {
		move := uint16(mon.Get(golurk.MOVE_FIELDS[i]))
		if move == golurk.MOVE_NONE {
			continue
		}

		name := rendering.DisplayName(golurk.GlobalData.GetMove(move).Name)
		entries = append(entries, moveEntry{i, name, mon.Get(golurk.PP_FIELDS[i])})
	}

	return entries
}

// show replaces the message lines and clears them after a few seconds
func (m *PartyMenuModel) show(messages ...string) tea.Cmd {
	m.messages = messages

	return tea.Tick(time.Second*4, func(t time.Time) tea.Msg {
		return clearMessageMsg{t}
	})
}

func savePartyCmd(dir string, id uuid.UUID, name string, party *golurk.Party) tea.Cmd {
	snapshot := *party

	return func() tea.Msg {
		if id == uuid.Nil {
			newId, err := partyfs.SaveParty(dir, name, &snapshot)
			return partySavedMsg{newId, err}
		}

		return partySavedMsg{id, partyfs.OverwriteParty(dir, id, name, &snapshot)}
	}
}
