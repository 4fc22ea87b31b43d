package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// Breadcrumbs is the back stack of views. Every method works on a copy, so a view
// can hand its crumbs to a child and still go back with the ones it holds.
type Breadcrumbs struct {
	trail []func() tea.Model
}

func NewBreadcrumb() Breadcrumbs {
	return Breadcrumbs{}
}

// Push remembers an existing view, state included
func (b Breadcrumbs) Push(model tea.Model) Breadcrumbs {
	return b.PushNew(func() tea.Model { return model })
}

// PushNew remembers how to rebuild a view, for views that should come back fresh
func (b Breadcrumbs) PushNew(build func() tea.Model) Breadcrumbs {
	trail := make([]func() tea.Model, len(b.trail), len(b.trail)+1)
	copy(trail, b.trail)
	b.trail = append(trail, build)

	log.Debug().Int("depth", len(b.trail)).Msg("breadcrumb pushed")
	return b
}

func (b Breadcrumbs) Depth() int {
	return len(b.trail)
}

// Pop returns the last view and the crumbs below it
func (b Breadcrumbs) Pop() (tea.Model, Breadcrumbs, bool) {
	if len(b.trail) == 0 {
		return nil, b, false
	}

	last := len(b.trail) - 1
	model := b.trail[last]()
	b.trail = b.trail[:last]

	log.Debug().Int("depth", last).Msg("breadcrumb popped")
	return model, b, true
}

// PopDefault goes back one view, or to def when there is nothing to go back to
func (b Breadcrumbs) PopDefault(def func() tea.Model) tea.Model {
	if model, _, ok := b.Pop(); ok {
		return model
	}

	return def()
}
