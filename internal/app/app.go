// Package app contains the top-level Bubble Tea model that wires the
// workspace, panel registry, renderer, and configuration together.
package app

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mosaicterm/mosaic/internal/config"
	"github.com/mosaicterm/mosaic/internal/notification"
	"github.com/mosaicterm/mosaic/internal/registry"
	"github.com/mosaicterm/mosaic/internal/ui"
	"github.com/mosaicterm/mosaic/internal/workspace"
)

// StartupModalMsg triggers the first-run settings modal check after the
// program starts.
type StartupModalMsg struct{}

// Model is the root Bubble Tea model.
type Model struct {
	config   *config.Config
	version  string
	reg      *registry.Registry
	host     *ui.Host
	ws       *workspace.Workspace
	renderer *ui.Renderer

	width  int
	height int

	// sessions is the list offered by the sessions panel. Embedding
	// applications replace it via SetSessions.
	sessions []string
}

// New creates the app model and wires the workspace stack.
func New(cfg *config.Config, version string) (*Model, error) {
	m := &Model{
		config:  cfg,
		version: version,
	}

	m.reg = registry.New()
	m.host = ui.NewHost()
	m.host.Sessions = func() []string { return m.sessions }
	m.host.Searcher = m.searchSessions

	store, err := config.NewLayoutStore()
	if err != nil {
		return nil, err
	}

	resolve := registry.NewResolver(registry.Environment{
		AllowedTypes: cfg.GetAllowedPanelTypes(),
		Capabilities: cfg.GetCapabilities(),
	})

	notify := func(title, message string) {
		if !cfg.GetNotificationsEnabled() {
			return
		}
		_ = notification.PanelAttention(title, message)
	}

	ws, err := workspace.New(workspace.Options{
		Host:     m.host,
		Registry: m.reg,
		Resolve:  resolve,
		Store:    store,
		Notify:   notify,
	})
	if err != nil {
		return nil, err
	}
	m.ws = ws

	m.renderer = ui.NewRenderer(ws, m.host)
	ws.SetGeometry(m.renderer)

	return m, nil
}

// Workspace exposes the workspace for command handlers and tests.
func (m *Model) Workspace() *workspace.Workspace { return m.ws }

// SetSessions replaces the session list offered by the sessions panel and
// refreshes any mounted sessions widget.
func (m *Model) SetSessions(ids []string) {
	m.sessions = ids
	for _, id := range m.host.PanelIDs() {
		if p, ok := m.host.Panel(id); ok {
			if sp, ok := p.(*ui.SessionsPanel); ok {
				sp.SetSessions(ids)
			}
		}
	}
}

// searchSessions is the default searcher backing the search panel.
func (m *Model) searchSessions(query string) []string {
	if query == "" {
		return nil
	}
	var out []string
	for _, id := range m.sessions {
		if containsFold(id, query) {
			out = append(out, id)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// newSessionID mints an identifier for a fresh chat session.
func newSessionID() string {
	return uuid.New().String()
}
