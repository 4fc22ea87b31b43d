package mainmenu

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/boxmon/poketerm/global"
	"github.com/nathanieltooley/boxmon/poketerm/rendering"
	"github.com/nathanieltooley/boxmon/poketerm/rendering/components"
	"github.com/rs/zerolog/log"
)

type optionsMenuModel struct {
	backtrack components.Breadcrumbs

	focus           components.FocusRing
	shouldShowError bool
	err             error
}

type clearErrorMessage struct {
	t time.Time
}

// resolveSaveDir turns a relative party directory into one under the config dir
func resolveSaveDir(input string) string {
	dir := filepath.Clean(strings.TrimSpace(input))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(global.DefaultConfigDir(), dir)
	}

	return dir
}

// commitOptions validates and writes config, only replacing the live options when the write worked
func commitOptions(config global.GlobalConfig) error {
	if err := global.SaveConfig(global.ConfigLocation, config); err != nil {
		return err
	}

	global.Opt = config
	return nil
}

type saveLocationInput struct {
	inner textinput.Model
}

func (s *saveLocationInput) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	cmds := make([]tea.Cmd, 0)

	s.inner.Focus()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) && s.inner.Value() != "" {
			saveDir := resolveSaveDir(s.inner.Value())

			if err := os.MkdirAll(saveDir, 0750); err != nil {
				cmds = append(cmds, opM.showError(err))
			} else {
				config := global.Opt
				config.PartySaveLocation = saveDir
				if err := commitOptions(config); err != nil {
					cmds = append(cmds, opM.showError(err))
				}
			}

			s.inner.SetValue(global.Opt.PartySaveLocation)
		}
	}

	var uCmd tea.Cmd
	s.inner, uCmd = s.inner.Update(msg)
	cmds = append(cmds, uCmd)

	return opM, tea.Batch(cmds...)
}

func (s *saveLocationInput) Blur() {
	s.inner.Blur()
}

func (s saveLocationInput) View() string {
	return lipgloss.JoinVertical(lipgloss.Center, "Party Folder", s.inner.View())
}

func (s saveLocationInput) FocusedView() string {
	return s.View()
}

type playerNameInput struct {
	inner textinput.Model
}

func (p *playerNameInput) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	cmds := []tea.Cmd{p.inner.Focus()}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			config := global.Opt
			config.LocalPlayerName = strings.TrimSpace(p.inner.Value())
			if config.LocalPlayerName == "" {
				config.LocalPlayerName = "PLAYER"
			}

			if err := commitOptions(config); err != nil {
				cmds = append(cmds, opM.showError(err))
			}
			p.inner.SetValue(global.Opt.LocalPlayerName)
		}
	}

	var uCmd tea.Cmd
	p.inner, uCmd = p.inner.Update(msg)
	cmds = append(cmds, uCmd)

	return opM, tea.Batch(cmds...)
}

func (p *playerNameInput) Blur() {
	p.inner.Blur()
}

func (p *playerNameInput) View() string {
	return lipgloss.JoinVertical(lipgloss.Center, "Player Name", p.inner.View())
}
func (p *playerNameInput) FocusedView() string { return p.View() }

type trainerIDInput struct {
	inner textinput.Model
}

func (t *trainerIDInput) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	cmds := []tea.Cmd{t.inner.Focus()}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			id, err := strconv.ParseUint(strings.TrimSpace(t.inner.Value()), 10, 32)
			if err != nil {
				cmds = append(cmds, opM.showError(err))
			} else {
				config := global.Opt
				config.TrainerID = uint32(id)
				if err := commitOptions(config); err != nil {
					cmds = append(cmds, opM.showError(err))
				}
			}
			t.inner.SetValue(strconv.FormatUint(uint64(global.Opt.TrainerID), 10))
		}
	}

	var uCmd tea.Cmd
	t.inner, uCmd = t.inner.Update(msg)
	cmds = append(cmds, uCmd)

	return opM, tea.Batch(cmds...)
}

func (t *trainerIDInput) Blur() {
	t.inner.Blur()
}

func (t *trainerIDInput) View() string {
	return lipgloss.JoinVertical(lipgloss.Center, "Trainer ID", t.inner.View())
}
func (t *trainerIDInput) FocusedView() string { return t.View() }

func newOptionsMenu(backtrack components.Breadcrumbs) optionsMenuModel {
	prompt := textinput.New()
	prompt.Focus()
	prompt.SetValue(global.Opt.PartySaveLocation)

	namePrompt := textinput.New()
	namePrompt.CharLimit = 7
	namePrompt.SetValue(global.Opt.LocalPlayerName)

	idPrompt := textinput.New()
	idPrompt.CharLimit = 10
	idPrompt.SetValue(strconv.FormatUint(uint64(global.Opt.TrainerID), 10))

	return optionsMenuModel{
		backtrack: backtrack,
		focus:     components.NewFocusRing(&saveLocationInput{prompt}, &playerNameInput{namePrompt}, &trainerIDInput{idPrompt}),
	}
}

func (m optionsMenuModel) Init() tea.Cmd { return nil }
func (m optionsMenuModel) View() string {
	if m.shouldShowError {
		return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, "Error!", rendering.ButtonStyle.Render(m.err.Error())))
	} else {
		return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, m.focus.Views()...))
	}
}

func (m optionsMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)

	switch msg := msg.(type) {
	case clearErrorMessage:
		m.shouldShowError = false
		m.err = nil
	case tea.KeyMsg:
		if m.shouldShowError {
			return m, nil
		}

		if key.Matches(msg, global.DownTabKey) {
			m.focus.Next()
		}

		if key.Matches(msg, global.UpTabKey) {
			m.focus.Prev()
		}

		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}
	}

	newModel, focusCmd := m.focus.Update(m, msg)
	m = newModel.(optionsMenuModel)
	cmds = append(cmds, focusCmd)

	return m, tea.Batch(cmds...)
}

func (m *optionsMenuModel) showError(err error) tea.Cmd {
	m.shouldShowError = true
	m.err = err

	log.Err(err).Msg("error in options")

	return tea.Tick(time.Second*2, func(t time.Time) tea.Msg {
		return clearErrorMessage{t}
	})
}
