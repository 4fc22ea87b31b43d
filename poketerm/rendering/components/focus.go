package components

import tea "github.com/charmbracelet/bubbletea"

// Focusable is one input of a form. Only the focused input sees messages.
type Focusable interface {
	OnFocus(tea.Model, tea.Msg) (tea.Model, tea.Cmd)
	Blur()
	View() string
	FocusedView() string
}

// FocusRing moves focus through a fixed set of inputs, wrapping at both ends
type FocusRing struct {
	current int
	items   []Focusable
}

func NewFocusRing(items ...Focusable) FocusRing {
	return FocusRing{items: items}
}

func (f *FocusRing) Current() int {
	return f.current
}

func (f *FocusRing) Next() {
	f.step(1)
}

func (f *FocusRing) Prev() {
	f.step(-1)
}

func (f *FocusRing) step(delta int) {
	if len(f.items) == 0 {
		return
	}

	f.items[f.current].Blur()
	f.current = (f.current + delta + len(f.items)) % len(f.items)
}

// Update hands msg to the focused input
func (f *FocusRing) Update(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(f.items) == 0 {
		return m, nil
	}

	return f.items[f.current].OnFocus(m, msg)
}

func (f *FocusRing) Views() []string {
	views := make([]string, len(f.items))
	for i, item := range f.items {
		if i == f.current {
			views[i] = item.FocusedView()
		} else {
			views[i] = item.View()
		}
	}

	return views
}
