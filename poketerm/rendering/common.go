package rendering

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/boxmon/poketerm/global"
)

var (
	HighlightedColor = lipgloss.Color("33")
	MutedColor       = lipgloss.Color("245")

	ButtonStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Width(30).Padding(1, 3).Align(lipgloss.Center)
	HighlightedButtonStyle = ButtonStyle.Border(lipgloss.DoubleBorder(), true).Foreground(HighlightedColor)

	HighlightedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(HighlightedColor)
	ItemStyle            = lipgloss.NewStyle().PaddingLeft(2)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightedColor).PaddingBottom(1)

	messageStyle = lipgloss.NewStyle().PaddingTop(1)
)

func Center(width int, height int, text string) string {
	return lipgloss.PlaceVertical(height, lipgloss.Center, lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
}

func GlobalCenter(text string) string {
	return Center(global.TERM_WIDTH, global.TERM_HEIGHT, text)
}

// Footer renders the latest messages of a screen above its key hint line
func Footer(width int, messages []string, hint string) string {
	lines := append(append([]string{}, messages...), hint)
	return messageStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// KeyHints is the one line summary of keys shown under a screen
func KeyHints(keys help.KeyMap) string {
	return help.New().ShortHelpView(keys.ShortHelp())
}
