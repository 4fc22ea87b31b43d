package mainmenu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/nathanieltooley/boxmon/poketerm/global"
	"github.com/nathanieltooley/boxmon/poketerm/rendering"
	"github.com/nathanieltooley/boxmon/poketerm/rendering/components"
	"github.com/nathanieltooley/boxmon/poketerm/views/boxview"
	"github.com/nathanieltooley/boxmon/poketerm/views/partyview"
	"github.com/rs/zerolog/log"
)

const (
	randomPartySize     = 6
	randomPartyMinLevel = 5
	randomPartyMaxLevel = 50
)

type MainMenuModel struct {
	buttons components.MenuButtons
}

func backToMenu() components.Breadcrumbs {
	return components.NewBreadcrumb().PushNew(func() tea.Model { return NewModel() })
}

func NewModel() MainMenuModel {
	buttons := []components.ViewButton{
		{
			Name: "Party",
			OnClick: func() (tea.Model, tea.Cmd) {
				return partyview.NewPartyMenu(backToMenu()), nil
			},
		},
		{
			Name: "PC Boxes",
			OnClick: func() (tea.Model, tea.Cmd) {
				return boxview.NewBoxMenu(backToMenu()), nil
			},
		},
		{
			Name: "New Random Party",
			OnClick: func() (tea.Model, tea.Cmd) {
				party := golurk.RandomParty(randomPartySize, randomPartyMinLevel, randomPartyMaxLevel, global.Opt.Profile(), global.BoxRand)
				global.NewSession(party)
				log.Info().Uint8("count", party.Count).Msg("rolled a random party")

				return partyview.NewPartyMenu(backToMenu()), nil
			},
		},
		{
			Name: "Load Party",
			OnClick: func() (tea.Model, tea.Cmd) {
				menu := newLoadPartyMenu(backToMenu())
				return menu, menu.Init()
			},
		},
		{
			Name: "Options",
			OnClick: func() (tea.Model, tea.Cmd) {
				return newOptionsMenu(backToMenu()), nil
			},
		},
		{
			Name: "Help",
			OnClick: func() (tea.Model, tea.Cmd) {
				return newHelpMenu(backToMenu()), nil
			},
		},
	}

	return MainMenuModel{
		buttons: components.NewMenuButton(buttons),
	}
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) View() string {
	header := rendering.TitleStyle.Render("Boxmon!")
	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, header, m.buttons.View()))
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, startCmd := m.buttons.Update(msg)
	if newModel != nil {
		return newModel, startCmd
	}

	return m, nil
}
