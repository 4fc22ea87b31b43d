package boxview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/nathanieltooley/boxmon/poketerm/global"
	"github.com/nathanieltooley/boxmon/poketerm/rendering"
	"github.com/nathanieltooley/boxmon/poketerm/rendering/components"
	"github.com/nathanieltooley/boxmon/poketerm/shared/pcstore"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const boxColumns = 6

var (
	ErrPartyFull  = errors.New("the party is full")
	ErrEmptySlot  = errors.New("that slot is empty")
	ErrNoDatabase = errors.New("no PC database is open")

	slotStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Width(12).Align(lipgloss.Center)
	highlightedSlotStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Width(12).Align(lipgloss.Center).Foreground(rendering.HighlightedColor)
)

type searchDoneMsg struct {
	species uint16
	slots   []pcstore.Slot
	err     error
}

type clearMessageMsg struct {
	t time.Time
}

type BoxMenuModel struct {
	backtrack components.Breadcrumbs

	box    uint8
	cursor int

	messages []string
}

func NewBoxMenu(backtrack components.Breadcrumbs) BoxMenuModel {
	return BoxMenuModel{
		backtrack: backtrack,
		box:       global.PC.CurrentBox % golurk.TOTAL_BOXES_COUNT,
	}
}

func (m BoxMenuModel) selected() *golurk.BoxMon {
	return global.PC.At(m.box, uint8(m.cursor))
}

func (m BoxMenuModel) Init() tea.Cmd { return nil }

func (m BoxMenuModel) View() string {
	rows := make([]string, 0, golurk.IN_BOX_COUNT/boxColumns)
	for row := range golurk.IN_BOX_COUNT / boxColumns {
		cells := make([]string, boxColumns)
		for col := range boxColumns {
			pos := row*boxColumns + col
			cells[col] = slotLabel(global.PC.At(m.box, uint8(pos)))

			if pos == m.cursor {
				cells[col] = highlightedSlotStyle.Render(cells[col])
			} else {
				cells[col] = slotStyle.Render(cells[col])
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	title := fmt.Sprintf("BOX %d (%d/%d)", m.box+1, global.PC.Count(m.box), golurk.IN_BOX_COUNT)
	if m.box == global.PC.CurrentBox {
		title += " *"
	}

	grid := lipgloss.JoinVertical(lipgloss.Center, append([]string{title}, rows...)...)

	var summary string
	if slot := m.selected(); slot.HasSpecies() {
		mon := golurk.BoxMonToMon(slot)
		summary = components.MonSummary(&mon, global.Opt.Profile())
	}

	footer := rendering.Footer(80, m.messages, rendering.KeyHints(global.PCKeys))
	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", summary),
		footer,
	))
}

func slotLabel(mon *golurk.BoxMon) string {
	if !mon.HasSpecies() {
		return "-"
	}

	return fmt.Sprintf("%s\nLv. %d", mon.Nickname(), golurk.GetLevelFromBoxMonExp(mon))
}

func (m BoxMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		cmd := m.show(describeSearch(msg))
		return m, cmd
	case clearMessageMsg:
		m.messages = nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, global.PCKeys.Back):
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		case key.Matches(msg, global.PCKeys.Left):
			m.cursor = (m.cursor + golurk.IN_BOX_COUNT - 1) % golurk.IN_BOX_COUNT
		case key.Matches(msg, global.PCKeys.Right):
			m.cursor = (m.cursor + 1) % golurk.IN_BOX_COUNT
		case key.Matches(msg, global.PCKeys.Up):
			m.cursor = (m.cursor + golurk.IN_BOX_COUNT - boxColumns) % golurk.IN_BOX_COUNT
		case key.Matches(msg, global.PCKeys.Down):
			m.cursor = (m.cursor + boxColumns) % golurk.IN_BOX_COUNT
		case key.Matches(msg, global.PCKeys.NextBox):
			m.box = (m.box + 1) % golurk.TOTAL_BOXES_COUNT
		case key.Matches(msg, global.PCKeys.PrevBox):
			m.box = (m.box + golurk.TOTAL_BOXES_COUNT - 1) % golurk.TOTAL_BOXES_COUNT
		case key.Matches(msg, global.PCKeys.SetCurrent):
			global.PC.CurrentBox = m.box
			cmd := m.show(fmt.Sprintf("New arrivals will go to box %d first.", m.box+1))
			return m, tea.Batch(cmd, global.SavePCCmd())
		case key.Matches(msg, global.PCKeys.Withdraw):
			message, err := withdraw(global.PC, global.Party, m.box, uint8(m.cursor))
			if err != nil {
				cmd := m.show(err.Error())
				return m, cmd
			}
			cmd := m.show(message)
			return m, tea.Batch(cmd, global.SavePCCmd())
		case key.Matches(msg, global.PCKeys.Find):
			if slot := m.selected(); slot.HasSpecies() {
				return m, searchCmd(global.PCStore, uint16(slot.Get(golurk.FIELD_SPECIES)))
			}
		}
	}

	return m, nil
}

// withdraw moves a stored creature into the first free party slot at full health
func withdraw(pc *golurk.BoxStorage, party *golurk.Party, box uint8, pos uint8) (string, error) {
	slot := pc.At(box, pos)
	if !slot.HasSpecies() {
		return "", ErrEmptySlot
	}

	count := party.CalculateCount()
	if count >= golurk.PARTY_SIZE {
		return "", ErrPartyFull
	}

	party.Mons[count] = golurk.BoxMonToMon(slot)
	party.CalculateCount()
	name := slot.Nickname()
	slot.Zero()

	log.Debug().Uint8("box", box).Uint8("pos", pos).Msg("withdrew from pc")
	return fmt.Sprintf("Withdrew %s.", name), nil
}

func searchCmd(store *pcstore.Store, species uint16) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return searchDoneMsg{species: species, err: ErrNoDatabase}
		}

		slots, err := store.Search(context.Background(), species)
		return searchDoneMsg{species, slots, err}
	}
}

// describeSearch summarises where a species is stored. The database reflects the last save.
func describeSearch(msg searchDoneMsg) string {
	name := golurk.GetSpeciesName(msg.species)
	if msg.err != nil {
		return fmt.Sprintf("Could not search for %s: %s", name, msg.err)
	}

	boxes := lo.Uniq(lo.Map(msg.slots, func(slot pcstore.Slot, _ int) string {
		return fmt.Sprint(slot.Box + 1)
	}))

	switch len(msg.slots) {
	case 0:
		return fmt.Sprintf("No saved %s found.", name)
	case 1:
		return fmt.Sprintf("1 %s stored in box %s.", name, boxes[0])
	}

	return fmt.Sprintf("%d %s stored in boxes %s.", len(msg.slots), name, strings.Join(boxes, ", "))
}

func (m *BoxMenuModel) show(messages ...string) tea.Cmd {
	m.messages = messages

	return tea.Tick(time.Second*4, func(t time.Time) tea.Msg {
		return clearMessageMsg{t}
	})
}
