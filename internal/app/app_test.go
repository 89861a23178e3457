package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mosaicterm/mosaic/internal/config"
	"github.com/mosaicterm/mosaic/internal/ui"
	"github.com/mosaicterm/mosaic/internal/workspace"
)

// newTestModel builds an app model backed by a throwaway home directory and
// sends an initial window size.
func newTestModel(t *testing.T) *Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	m, err := New(cfg, "test")
	if err != nil {
		t.Fatalf("creating app: %v", err)
	}
	m.SetSessions([]string{"alpha", "beta"})
	return update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(m *Model, msg tea.Msg) *Model {
	model, _ := m.Update(msg)
	return model.(*Model)
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestNewBuildsDefaultLayout(t *testing.T) {
	m := newTestModel(t)

	for _, id := range []string{"sessions-1", "chat-1", "input-1"} {
		if _, ok := m.ws.Panel(id); !ok {
			t.Errorf("expected default panel %s", id)
		}
	}
	if got := m.ws.FocusedPanelID(); got != "sessions-1" {
		t.Errorf("focused = %s, want sessions-1", got)
	}
}

func TestStartupModalShownOnce(t *testing.T) {
	m := newTestModel(t)

	m = update(m, StartupModalMsg{})
	modal := m.ws.ModalPanel()
	if modal == nil || modal.PanelType != workspace.SettingsPanelType {
		t.Fatalf("expected settings modal on first run, got %v", modal)
	}
	if !m.config.HasSeenWelcome() {
		t.Error("welcome should be marked shown")
	}

	m = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m = update(m, StartupModalMsg{})
	if m.ws.ModalPanel() != nil {
		t.Error("startup modal should not reopen after welcome")
	}
}

func TestCtrlNOpensFreshChat(t *testing.T) {
	m := newTestModel(t)

	m = update(m, ctrlKey('n'))
	if _, ok := m.ws.Panel("chat-2"); !ok {
		t.Fatal("expected a second chat panel")
	}
	if got := m.ws.FocusedPanelID(); got != "chat-2" {
		t.Errorf("focused = %s, want chat-2", got)
	}
}

func TestCtrlOReusesSessionChat(t *testing.T) {
	m := newTestModel(t)

	// The sessions panel has "alpha" selected; ctrl+o binds a chat to it.
	m = update(m, ctrlKey('o'))
	first := m.ws.FocusedPanelID()

	// A second ctrl+o for the same session reuses the panel.
	m = update(m, ctrlKey('o'))
	if got := m.ws.FocusedPanelID(); got != first {
		t.Errorf("focused = %s, want reused %s", got, first)
	}
}

func TestCtrlWClosesFocusedPanel(t *testing.T) {
	m := newTestModel(t)

	m.ws.FocusPanel("chat-1")
	m = update(m, ctrlKey('w'))
	if _, ok := m.ws.Panel("chat-1"); ok {
		t.Error("chat-1 should be closed")
	}
	if got := m.ws.FocusedPanelID(); got == "chat-1" || got == "" {
		t.Errorf("focus should move to a surviving panel, got %q", got)
	}
}

func TestTabCyclesFocus(t *testing.T) {
	m := newTestModel(t)

	seen := map[string]bool{m.ws.FocusedPanelID(): true}
	m = update(m, tea.KeyPressMsg{Code: tea.KeyTab})
	seen[m.ws.FocusedPanelID()] = true
	m = update(m, tea.KeyPressMsg{Code: tea.KeyTab})
	seen[m.ws.FocusedPanelID()] = true
	if len(seen) != 3 {
		t.Errorf("tab should visit all three panels, saw %v", seen)
	}

	m = update(m, tea.KeyPressMsg{Code: tea.KeyTab})
	if !seen[m.ws.FocusedPanelID()] {
		t.Error("fourth tab should wrap to an already-seen panel")
	}
}

func TestSettingsModalLifecycle(t *testing.T) {
	m := newTestModel(t)

	m = update(m, ctrlKey('s'))
	if m.ws.ModalPanel() == nil {
		t.Fatal("ctrl+s should open the settings modal")
	}

	m = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.ws.ModalPanel() != nil {
		t.Fatal("escape should dismiss the settings modal")
	}

	m = update(m, ctrlKey('s'))
	m = update(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.ws.ModalPanel() != nil {
		t.Error("enter should apply settings and close the modal")
	}
}

func TestEnterSubmitsInputToChat(t *testing.T) {
	m := newTestModel(t)

	m.ws.FocusPanel("chat-1")
	m.ws.FocusPanel("input-1")
	m = update(m, runeKey('h'))
	m = update(m, runeKey('i'))
	m = update(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	chat := chatPanel(t, m, "chat-1")
	msgs := chat.Messages()
	if len(msgs) != 1 || msgs[0].Content != "hi" {
		t.Fatalf("chat messages = %v, want one %q entry", msgs, "hi")
	}
	input := inputPanel(t, m, "input-1")
	if input.Value() != "" {
		t.Errorf("input should clear after submit, got %q", input.Value())
	}
}

func TestDividerDragResizes(t *testing.T) {
	m := newTestModel(t)

	x, y, ok := findDivider(m)
	if !ok {
		t.Fatal("no divider found in default layout")
	}

	m = update(m, tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	if m.ws.Interaction() != workspace.InteractionResize {
		t.Fatalf("interaction = %v, want resize", m.ws.Interaction())
	}
	m = update(m, tea.MouseMotionMsg{X: x + 10, Y: y, Button: tea.MouseLeft})
	m = update(m, tea.MouseReleaseMsg{X: x + 10, Y: y, Button: tea.MouseLeft})
	if m.ws.Interaction() != workspace.InteractionNone {
		t.Error("release should end the interaction")
	}
}

func TestPinAndPopoverFromHeader(t *testing.T) {
	m := newTestModel(t)

	m.ws.FocusPanel("sessions-1")
	m = update(m, ctrlKey('p'))
	if got := m.ws.HeaderPanels(); len(got) != 1 || got[0] != "sessions-1" {
		t.Fatalf("header panels = %v, want [sessions-1]", got)
	}

	m.renderer.Layout()
	x, y, ok := findHeaderChip(m)
	if !ok {
		t.Fatal("no header chip after pinning")
	}
	m = update(m, tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	if m.ws.OpenPopoverID() != "sessions-1" {
		t.Fatalf("popover = %q, want sessions-1", m.ws.OpenPopoverID())
	}

	m = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.ws.OpenPopoverID() != "" {
		t.Error("escape should close the popover")
	}
}

func TestViewRendersFullFrame(t *testing.T) {
	m := newTestModel(t)

	out := m.RenderToString()
	if out == "" || out == "Loading..." {
		t.Fatalf("unexpected render output %q", out)
	}
}

func chatPanel(t *testing.T, m *Model, id string) *ui.ChatPanel {
	t.Helper()
	p, ok := m.host.Panel(id)
	if !ok {
		t.Fatalf("panel %s not mounted", id)
	}
	cp, ok := p.(*ui.ChatPanel)
	if !ok {
		t.Fatalf("panel %s is %T, want chat", id, p)
	}
	return cp
}

func inputPanel(t *testing.T, m *Model, id string) *ui.InputPanel {
	t.Helper()
	p, ok := m.host.Panel(id)
	if !ok {
		t.Fatalf("panel %s not mounted", id)
	}
	ip, ok := p.(*ui.InputPanel)
	if !ok {
		t.Fatalf("panel %s is %T, want input", id, p)
	}
	return ip
}

// findDivider scans the frame for a split divider cell.
func findDivider(m *Model) (int, int, bool) {
	m.renderer.Layout()
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if _, _, ok := m.renderer.DividerAt(x, y); ok {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// findHeaderChip scans the header row for a pinned panel chip.
func findHeaderChip(m *Model) (int, int, bool) {
	for x := 0; x < m.width; x++ {
		if _, ok := m.renderer.HeaderChipAt(x, 0); ok {
			return x, 0, true
		}
	}
	return 0, 0, false
}
