package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mosaicterm/mosaic/internal/workspace"
)

// handleMouse routes mouse events through the renderer's hit tests into
// workspace interactions. Coordinates are terminal cells.
func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return nil
		}
		return m.handleClick(msg)

	case tea.MouseMotionMsg:
		if m.ws.Interaction() != workspace.InteractionNone {
			m.ws.PointerMove(msg.X, msg.Y)
			return nil
		}
		return nil

	case tea.MouseReleaseMsg:
		if m.ws.Interaction() != workspace.InteractionNone {
			m.ws.PointerUp(msg.X, msg.Y)
		}
		return nil

	case tea.MouseWheelMsg:
		return m.forwardWheel(msg)
	}
	return nil
}

func (m *Model) handleClick(msg tea.MouseClickMsg) tea.Cmd {
	x, y := msg.X, msg.Y

	// Modal first: clicks outside dismiss, clicks inside go to the widget.
	if modal := m.ws.ModalPanel(); modal != nil {
		if m.ws.HandleBackdropClick(x, y) {
			return nil
		}
		if p, ok := m.host.Panel(modal.PanelID); ok {
			return p.Update(msg)
		}
		return nil
	}

	if chip, ok := m.renderer.HeaderChipAt(x, y); ok {
		m.ws.TogglePopover(chip)
		return nil
	}

	// Popover: clicking its bottom-right corner starts a resize drag,
	// anywhere else inside goes to the widget, outside closes it.
	if open := m.ws.OpenPopoverID(); open != "" {
		if rect, ok := m.renderer.PopoverRect(); ok {
			if rect.Contains(x, y) {
				if x == rect.X+rect.W-1 && y == rect.Y+rect.H-1 {
					m.ws.BeginPopoverResize(open, x, y)
					return nil
				}
				if p, ok := m.host.Panel(open); ok {
					return p.Update(msg)
				}
				return nil
			}
			m.ws.CloseOpenPopover()
		}
	}

	if panelID, ok := m.renderer.TabAt(x, y); ok {
		m.ws.FocusPanel(panelID)
		return nil
	}

	if splitID, index, ok := m.renderer.DividerAt(x, y); ok {
		m.ws.BeginResize(splitID, index, x, y)
		return nil
	}

	if panelID, ok := m.renderer.PanelAt(x, y); ok {
		m.ws.FocusPanel(panelID)
		if rect, ok := m.renderer.PanelRect(panelID); ok && y == rect.Y {
			// Dragging from the title row moves the panel. With shift
			// held the drag reorders within the enclosing split.
			if msg.Mod == tea.ModShift {
				m.ws.BeginReorder(panelID, x, y)
			} else {
				m.ws.BeginDock(panelID, x, y)
			}
			return nil
		}
		if p, ok := m.host.Panel(panelID); ok {
			return p.Update(msg)
		}
	}
	return nil
}

// forwardWheel scrolls the panel under the pointer.
func (m *Model) forwardWheel(msg tea.MouseWheelMsg) tea.Cmd {
	id, ok := m.renderer.PanelAt(msg.X, msg.Y)
	if !ok {
		return nil
	}
	if p, ok := m.host.Panel(id); ok {
		return p.Update(msg)
	}
	return nil
}
