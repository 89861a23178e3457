package ui

import (
	tea "charm.land/bubbletea/v2"
)

// Panel is one piece of mounted content living inside a workspace cell, a
// header popover, or the modal overlay.
type Panel interface {
	ID() string
	Type() string
	Title() string
	SetSize(width, height int)
	SetFocused(focused bool)
	Focused() bool
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// basePanel carries the bookkeeping shared by every widget.
type basePanel struct {
	id      string
	typ     string
	title   string
	width   int
	height  int
	focused bool
}

func (b *basePanel) ID() string    { return b.id }
func (b *basePanel) Type() string  { return b.typ }
func (b *basePanel) Title() string { return b.title }
func (b *basePanel) Focused() bool { return b.focused }

func (b *basePanel) SetFocused(focused bool) { b.focused = focused }

func (b *basePanel) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b *basePanel) innerWidth() int {
	w := b.width
	if w < 1 {
		w = DefaultWrapWidth
	}
	return w
}
