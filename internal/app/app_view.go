package app

import (
	tea "charm.land/bubbletea/v2"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	m.renderer.Layout()
	v.SetContent(m.renderer.Render())
	return v
}

// RenderToString renders the current view as a string. Useful for tests.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	m.renderer.Layout()
	return m.renderer.Render()
}
