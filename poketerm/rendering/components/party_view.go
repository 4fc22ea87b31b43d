package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/nathanieltooley/boxmon/poketerm/rendering"
)

// PartyView lists the occupied party slots and tracks which one is selected
type PartyView struct {
	Party   *golurk.Party
	Focused bool

	CurrentPokemonIndex int
}

var (
	pokemonPartyStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Align(lipgloss.Center).Width(24)
	highlightedPokemonPartyStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Align(lipgloss.Center).Width(24).Foreground(rendering.HighlightedColor)

	movePartyDown = key.NewBinding(
		key.WithKeys("j", "down"),
	)

	movePartyUp = key.NewBinding(
		key.WithKeys("k", "up"),
	)
)

func NewPartyView(party *golurk.Party) PartyView {
	party.CalculateCount()
	return PartyView{
		Party:   party,
		Focused: true,
	}
}

// Selected returns the highlighted member, nil for an empty party
func (m PartyView) Selected() *golurk.Pokemon {
	if m.CurrentPokemonIndex >= int(m.Party.Count) {
		return nil
	}

	return &m.Party.Mons[m.CurrentPokemonIndex]
}

// Clamp keeps the selection inside the party after members leave it
func (m *PartyView) Clamp() {
	m.Party.CalculateCount()
	if m.CurrentPokemonIndex >= int(m.Party.Count) {
		m.CurrentPokemonIndex = max(int(m.Party.Count)-1, 0)
	}
}

func PartyPanel(mon *golurk.Pokemon) string {
	name := mon.Box.Nickname()
	if symbol := rendering.GenderSymbol(golurk.GetGender(mon)); symbol != "" {
		name += " " + symbol
	}

	level := fmt.Sprintf("Lv. %d", mon.Level)
	if status := rendering.StatusText(mon.Status); status != "" {
		level += " " + status
	} else if mon.HP == 0 {
		level += " FNT"
	}

	return fmt.Sprintf("%s\n%s\n%s %s", name, level, rendering.HPBar(mon.HP, mon.MaxHP, 10), rendering.HPText(mon.HP, mon.MaxHP))
}

func (m PartyView) Init() tea.Cmd { return nil }
func (m PartyView) View() string {
	if m.Party.Count == 0 {
		return pokemonPartyStyle.Render("No party members")
	}

	partyPanels := make([]string, 0, m.Party.Count)

	for i, pokemon := range m.Party.Active() {
		panel := PartyPanel(pokemon)

		if i == m.CurrentPokemonIndex && m.Focused {
			partyPanels = append(partyPanels, highlightedPokemonPartyStyle.Render(panel))
		} else {
			partyPanels = append(partyPanels, pokemonPartyStyle.Render(panel))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center, partyPanels...)
}

func (m PartyView) Update(msg tea.Msg) (PartyView, tea.Cmd) {
	count := int(m.Party.Count)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Focused && count > 0 {
			if key.Matches(msg, movePartyDown) {
				m.CurrentPokemonIndex++

				if m.CurrentPokemonIndex > count-1 {
					m.CurrentPokemonIndex = 0
				}
			}

			if key.Matches(msg, movePartyUp) {
				m.CurrentPokemonIndex--

				if m.CurrentPokemonIndex < 0 {
					m.CurrentPokemonIndex = count - 1
				}
			}
		}
	}

	return m, nil
}
