package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/boxmon/poketerm/rendering"
)

var (
	nextButtonKey = key.NewBinding(key.WithKeys("j", "down", "tab"))
	prevButtonKey = key.NewBinding(key.WithKeys("k", "up", "shift+tab"))
	pressKey      = key.NewBinding(key.WithKeys("enter"))
)

// ViewButton opens the view OnClick builds. The returned cmd is usually the new view's Init.
type ViewButton struct {
	Name    string
	OnClick func() (tea.Model, tea.Cmd)
}

type MenuButtons struct {
	buttons  []ViewButton
	selected int
	blurred  bool
}

func NewMenuButton(buttons []ViewButton) MenuButtons {
	return MenuButtons{buttons: buttons}
}

// Update only returns a model once a button is pressed, so callers keep their own view on nil
func (m *MenuButtons) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.blurred || len(m.buttons) == 0 {
		return nil, nil
	}

	switch {
	case key.Matches(keyMsg, nextButtonKey):
		m.selected = (m.selected + 1) % len(m.buttons)
	case key.Matches(keyMsg, prevButtonKey):
		m.selected = (m.selected - 1 + len(m.buttons)) % len(m.buttons)
	case key.Matches(keyMsg, pressKey):
		return m.buttons[m.selected].OnClick()
	}

	return nil, nil
}

func (m MenuButtons) View() string {
	views := make([]string, len(m.buttons))
	for i, button := range m.buttons {
		style := rendering.ButtonStyle
		if !m.blurred && i == m.selected {
			style = rendering.HighlightedButtonStyle
		}
		views[i] = style.Render(button.Name)
	}

	return lipgloss.JoinVertical(lipgloss.Center, views...)
}

// Unfocus drops the highlight and ignores keys until Focus
func (m *MenuButtons) Unfocus() {
	m.blurred = true
}

// Focus starts again from the first button
func (m *MenuButtons) Focus() {
	if m.blurred {
		m.blurred = false
		m.selected = 0
	}
}
