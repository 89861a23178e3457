package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mosaicterm/mosaic/internal/keys"
	"github.com/mosaicterm/mosaic/internal/logger"
	"github.com/mosaicterm/mosaic/internal/ui"
	"github.com/mosaicterm/mosaic/internal/workspace"
)

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	// Trigger the first-run settings check
	return func() tea.Msg {
		return StartupModalMsg{}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.SetSize(msg.Width, msg.Height)
		m.renderer.Layout()

	case StartupModalMsg:
		if !m.config.HasSeenWelcome() {
			m.openSettingsModal()
			m.config.MarkWelcomeShown()
			if err := m.config.Save(); err != nil {
				logger.Warn("app: saving config after welcome: %v", err)
			}
		}

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Not handled globally, route to the focused panel widget.
		return m, m.forwardToFocused(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m, m.handleMouse(msg)
	}

	return m, nil
}

// handleKeyPress handles global keyboard input. Returns (nil, nil) when the
// key should fall through to the focused panel widget.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.Debug("app: key %q focused=%s", key, m.ws.FocusedPanelID())

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	// The modal captures all keys while open.
	if modal := m.ws.ModalPanel(); modal != nil {
		return m.handleModalKey(modal, msg)
	}

	switch key {
	case keys.Escape:
		if m.ws.HandleEscape() {
			return m, nil
		}
		return nil, nil

	case keys.Tab:
		m.ws.FocusNextPanel(1)
		return m, nil

	case keys.ShiftTab:
		m.ws.FocusNextPanel(-1)
		return m, nil

	case keys.CtrlO:
		m.openChat(m.selectedSession())
		return m, nil

	case keys.CtrlN:
		m.openChat(newSessionID())
		return m, nil

	case keys.CtrlW:
		if id := m.ws.FocusedPanelID(); id != "" {
			m.ws.ClosePanel(id)
		}
		return m, nil

	case keys.CtrlT:
		if id := m.ws.FocusedPanelID(); id != "" {
			m.ws.ToggleSplitViewMode(id)
		}
		return m, nil

	case keys.CtrlP:
		if id := m.ws.FocusedPanelID(); id != "" {
			m.ws.PinPanel(id)
		}
		return m, nil

	case keys.CtrlRight:
		if id := m.ws.FocusedPanelID(); id != "" {
			m.ws.CycleTab(id, 1)
		}
		return m, nil

	case keys.CtrlLeft:
		if id := m.ws.FocusedPanelID(); id != "" {
			m.ws.CycleTab(id, -1)
		}
		return m, nil

	case keys.CtrlS:
		m.openSettingsModal()
		return m, nil

	case keys.Enter:
		if m.submitInput() {
			return m, nil
		}
		return nil, nil

	case "q":
		// Quit, unless the focused panel accepts text.
		if !m.focusAcceptsText() {
			return m, tea.Quit
		}
		return nil, nil
	}

	return nil, nil
}

func (m *Model) focusAcceptsText() bool {
	p, ok := m.host.Panel(m.ws.FocusedPanelID())
	if !ok {
		return false
	}
	switch p.(type) {
	case *ui.InputPanel, *ui.SearchPanel:
		return true
	}
	return false
}

// handleModalKey routes keys while a modal panel is open.
func (m *Model) handleModalKey(modal *workspace.PanelInstance, msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.ws.HandleEscape()
		return m, nil

	case keys.Enter:
		if modal.PanelType == workspace.SettingsPanelType {
			m.applySettings(modal.PanelID)
			m.ws.CloseModalPanel()
			return m, nil
		}
	}
	if p, ok := m.host.Panel(modal.PanelID); ok {
		return m, p.Update(msg)
	}
	return m, nil
}

// openChat opens a chat panel bound to the given session, reusing the
// session's existing panel if one is already open.
func (m *Model) openChat(sessionID string) {
	opts := workspace.OpenOptions{Focus: true}
	if sessionID != "" {
		opts.Binding = &workspace.Binding{SessionID: sessionID, Fixed: true}
	}
	m.ws.OpenPanel(workspace.ChatPanelType, opts)
}

// selectedSession returns the session highlighted in the sessions panel, if
// one is mounted.
func (m *Model) selectedSession() string {
	for _, id := range m.host.PanelIDs() {
		p, ok := m.host.Panel(id)
		if !ok {
			continue
		}
		if sp, ok := p.(*ui.SessionsPanel); ok {
			return sp.Selected()
		}
	}
	return ""
}

// submitInput sends the input panel contents to the most recent chat panel.
// Returns false when the focused panel is not the input panel.
func (m *Model) submitInput() bool {
	focused, ok := m.host.Panel(m.ws.FocusedPanelID())
	if !ok {
		return false
	}
	ip, ok := focused.(*ui.InputPanel)
	if !ok {
		return false
	}
	text := ip.Value()
	if text == "" {
		return true
	}
	chatID, ok := m.ws.LastPanelOfType(workspace.ChatPanelType)
	if !ok {
		return true
	}
	if p, ok := m.host.Panel(chatID); ok {
		if cp, ok := p.(*ui.ChatPanel); ok {
			cp.Append(ui.ChatMessage{Role: "user", Content: text})
		}
	}
	ip.Clear()
	return true
}

// openSettingsModal opens the settings panel seeded from config.
func (m *Model) openSettingsModal() {
	id, ok := m.ws.OpenModalPanel(workspace.SettingsPanelType, workspace.OpenOptions{})
	if !ok {
		return
	}
	if p, ok := m.host.Panel(id); ok {
		if sp, ok := p.(*ui.SettingsPanel); ok {
			sp.SetValues(m.config.GetTheme(), m.config.GetNotificationsEnabled(), m.config.GetDebug())
		}
	}
}

// applySettings writes the settings form values back to config.
func (m *Model) applySettings(panelID string) {
	p, ok := m.host.Panel(panelID)
	if !ok {
		return
	}
	sp, ok := p.(*ui.SettingsPanel)
	if !ok {
		return
	}
	theme, notifications, debug := sp.Values()
	m.config.SetTheme(theme)
	m.config.SetNotificationsEnabled(notifications)
	m.config.SetDebug(debug)
	logger.SetDebug(debug)
	if err := m.config.Save(); err != nil {
		logger.Warn("app: saving settings: %v", err)
	}
}

// forwardToFocused routes an unhandled message to the focused panel widget.
func (m *Model) forwardToFocused(msg tea.Msg) tea.Cmd {
	id := m.ws.FocusedPanelID()
	if open := m.ws.OpenPopoverID(); open != "" {
		id = open
	}
	if p, ok := m.host.Panel(id); ok {
		return p.Update(msg)
	}
	return nil
}
