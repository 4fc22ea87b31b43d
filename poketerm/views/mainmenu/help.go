package mainmenu

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/boxmon/poketerm/global"
	"github.com/nathanieltooley/boxmon/poketerm/rendering"
	"github.com/nathanieltooley/boxmon/poketerm/rendering/components"
)

// helpSection is one screen's keys on the help page
type helpSection struct {
	title string
	keys  help.KeyMap
}

var helpSections = []helpSection{
	{"Menus", global.MenuKeys},
	{"Party", global.PartyKeys},
	{"PC Boxes", global.PCKeys},
}

type helpMenuModel struct {
	backtrack components.Breadcrumbs
	help      help.Model
}

func newHelpMenu(backtrack components.Breadcrumbs) helpMenuModel {
	h := help.New()
	h.ShowAll = true
	return helpMenuModel{backtrack: backtrack, help: h}
}

func (m helpMenuModel) Init() tea.Cmd { return nil }

func (m helpMenuModel) View() string {
	blocks := make([]string, 0, len(helpSections)*2)
	for _, section := range helpSections {
		blocks = append(blocks, rendering.TitleStyle.Render(section.title), m.help.View(section.keys), "")
	}

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func (m helpMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, global.BackKey) {
		return m.backtrack.PopDefault(func() tea.Model { return NewModel() }), nil
	}

	return m, nil
}
