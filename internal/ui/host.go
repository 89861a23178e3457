package ui

import (
	"sort"

	"github.com/mosaicterm/mosaic/internal/errors"
	"github.com/mosaicterm/mosaic/internal/layout"
	"github.com/mosaicterm/mosaic/internal/logger"
	"github.com/mosaicterm/mosaic/internal/workspace"
)

// Host owns the widget table: one widget per mounted panel. It is the
// content side of the workspace contract; the engine tells it what exists,
// what is visible, and what has focus, and the renderer asks it for views.
type Host struct {
	panels   map[string]Panel
	visible  map[string]bool
	bindings map[string]*workspace.Binding

	// Sessions feeds the sessions panel; Searcher feeds the search panel.
	Sessions func() []string
	Searcher func(query string) []string

	// OnInventory observes every inventory broadcast.
	OnInventory func(inv workspace.Inventory)

	latest workspace.Inventory
}

// NewHost returns an empty host.
func NewHost() *Host {
	return &Host{
		panels:   make(map[string]Panel),
		visible:  make(map[string]bool),
		bindings: make(map[string]*workspace.Binding),
	}
}

// Panel returns the widget for a panel id.
func (h *Host) Panel(panelID string) (Panel, bool) {
	p, ok := h.panels[panelID]
	return p, ok
}

// PanelIDs returns every mounted panel id in sorted order.
func (h *Host) PanelIDs() []string {
	ids := make([]string, 0, len(h.panels))
	for id := range h.panels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Visible reports whether a panel is currently shown somewhere.
func (h *Host) Visible(panelID string) bool { return h.visible[panelID] }

// Inventory returns the most recent workspace inventory.
func (h *Host) Inventory() workspace.Inventory { return h.latest }

// MountPanel builds the widget for a panel coming alive.
func (h *Host) MountPanel(req workspace.MountRequest) error {
	if _, ok := h.panels[req.PanelID]; ok {
		return nil
	}
	var p Panel
	switch req.PanelType {
	case "chat":
		sessionID := ""
		if req.Binding != nil {
			sessionID = req.Binding.SessionID
		}
		p = NewChatPanel(req.PanelID, sessionID)
	case "input":
		p = NewInputPanel(req.PanelID)
	case "sessions":
		sp := NewSessionsPanel(req.PanelID)
		if h.Sessions != nil {
			sp.SetSessions(h.Sessions())
		}
		p = sp
	case "search":
		p = NewSearchPanel(req.PanelID, h.Searcher)
	case "settings":
		p = NewSettingsPanel(req.PanelID)
	case "empty":
		p = NewEmptyPanel(req.PanelID)
	default:
		return errors.MountFailed(req.PanelID, errors.ManifestNotFound(req.PanelType))
	}
	h.panels[req.PanelID] = p
	h.bindings[req.PanelID] = req.Binding
	logger.Debug("host: mounted %s as %s on %s", req.PanelID, req.PanelType, req.Surface)
	return nil
}

// UnmountPanel tears the widget down.
func (h *Host) UnmountPanel(panelID string) {
	delete(h.panels, panelID)
	delete(h.visible, panelID)
	delete(h.bindings, panelID)
}

// SetPanelVisibility records whether a panel is on screen.
func (h *Host) SetPanelVisibility(panelID string, visible bool) {
	h.visible[panelID] = visible
}

// SetPanelFocus forwards focus to the widget.
func (h *Host) SetPanelFocus(panelID string, focused bool) {
	if p, ok := h.panels[panelID]; ok {
		p.SetFocused(focused)
	}
}

// SetPanelSize forwards a new content size to the widget.
func (h *Host) SetPanelSize(panelID string, size layout.Size) {
	if p, ok := h.panels[panelID]; ok {
		p.SetSize(size.Width, size.Height)
	}
}

// PanelBinding returns the binding recorded at mount.
func (h *Host) PanelBinding(panelID string) *workspace.Binding {
	return h.bindings[panelID]
}

// SetPanelBinding rebinds a panel; chat widgets reload their transcript.
func (h *Host) SetPanelBinding(panelID string, b *workspace.Binding) {
	h.bindings[panelID] = b
	if chat, ok := h.panels[panelID].(*ChatPanel); ok && b != nil {
		if chat.SessionID() != b.SessionID {
			chat.Rebind(b.SessionID)
		}
	}
}

// PanelContext describes a panel for inventory consumers.
func (h *Host) PanelContext(panelID string) map[string]string {
	p, ok := h.panels[panelID]
	if !ok {
		return nil
	}
	ctx := map[string]string{"type": p.Type()}
	if b := h.bindings[panelID]; b != nil && b.SessionID != "" {
		ctx["session"] = b.SessionID
	}
	return ctx
}

// SendPanelEvent receives the inventory broadcast.
func (h *Host) SendPanelEvent(inv workspace.Inventory) {
	h.latest = inv
	if h.OnInventory != nil {
		h.OnInventory(inv)
	}
}
