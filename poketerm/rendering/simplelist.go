package rendering

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Detailer is a list item with a second, right aligned column (PP, member count)
type Detailer interface {
	Detail() string
}

type lineDelegate struct {
	selected lipgloss.Style
	normal   lipgloss.Style
	detail   lipgloss.Style

	detailWidth int
}

func (d lineDelegate) Height() int                             { return 1 }
func (d lineDelegate) Spacing() int                            { return 0 }
func (d lineDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d lineDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	style, cursor := d.normal, "  "
	if index == m.Index() {
		style, cursor = d.selected, "> "
	}

	line := cursor + item.FilterValue()
	if detailer, ok := item.(Detailer); ok {
		width := max(m.Width()-d.detailWidth-lipgloss.Width(line)-style.GetHorizontalFrameSize(), 1)
		line += lipgloss.NewStyle().Width(width).Render("") + d.detail.Render(detailer.Detail())
	}

	fmt.Fprint(w, style.Render(line))
}

// NewSimpleListDelegate renders one line per item with a cursor on the selected one
func NewSimpleListDelegate() list.ItemDelegate {
	return lineDelegate{
		selected:    HighlightedItemStyle,
		normal:      ItemStyle,
		detail:      lipgloss.NewStyle().Width(8).Align(lipgloss.Right).Foreground(MutedColor),
		detailWidth: 8,
	}
}
