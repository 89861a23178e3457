// Package registry holds the panel type manifests and builds panel
// instances on behalf of the workspace.
package registry

import (
	"sync"

	"github.com/mosaicterm/mosaic/internal/errors"
	"github.com/mosaicterm/mosaic/internal/layout"
	"github.com/mosaicterm/mosaic/internal/workspace"
)

// Factory creates the content-side instance for a panel. The registry calls
// it when the workspace opens a panel of the factory's type.
type Factory func(panelID string, opts workspace.OpenOptions) error

// Registry maps panel types to manifests and factories. Registration order
// is preserved; the default layout is built by walking it.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	manifests map[string]workspace.Manifest
	factories map[string]Factory
}

// New returns a registry preloaded with the builtin panel types.
func New() *Registry {
	r := &Registry{
		manifests: make(map[string]workspace.Manifest),
		factories: make(map[string]Factory),
	}
	for _, m := range builtinManifests() {
		r.Register(m, nil)
	}
	return r
}

// Register adds or replaces a panel type. A nil factory means instances need
// no content-side setup.
func (r *Registry) Register(m workspace.Manifest, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.manifests[m.Type]; !ok {
		r.order = append(r.order, m.Type)
	}
	r.manifests[m.Type] = m
	if f != nil {
		r.factories[m.Type] = f
	}
}

// Manifests returns every manifest in registration order.
func (r *Registry) Manifests() []workspace.Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]workspace.Manifest, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.manifests[t])
	}
	return out
}

// Manifest looks up a single panel type.
func (r *Registry) Manifest(panelType string) (workspace.Manifest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.manifests[panelType]
	return m, ok
}

// CreateInstance runs the type's factory for a new panel id.
func (r *Registry) CreateInstance(panelType, panelID string, opts workspace.OpenOptions) error {
	r.mu.RLock()
	_, known := r.manifests[panelType]
	f := r.factories[panelType]
	r.mu.RUnlock()
	if !known {
		return errors.ManifestNotFound(panelType)
	}
	if f == nil {
		return nil
	}
	return f(panelID, opts)
}

// builtinManifests is the default panel catalog. Chat panels are
// session-scoped and may open any number of times; the administrative panels
// are singletons.
func builtinManifests() []workspace.Manifest {
	return []workspace.Manifest{
		{
			Type:             workspace.ChatPanelType,
			Title:            "Chat",
			Icon:             "💬",
			MultiInstance:    true,
			SessionScope:     true,
			DefaultPlacement: &layout.Placement{Region: layout.RegionCenter},
			Capabilities:     []string{"sessions"},
		},
		{
			Type:             "sessions",
			Title:            "Sessions",
			Icon:             "☰",
			DefaultPlacement: &layout.Placement{Region: layout.RegionLeft},
			Capabilities:     []string{"sessions"},
		},
		{
			Type:             "input",
			Title:            "Input",
			Icon:             "✎",
			DefaultPlacement: &layout.Placement{Region: layout.RegionBottom},
		},
		{
			Type:  "search",
			Title: "Search",
			Icon:  "🔍",
		},
		{
			Type:      "settings",
			Title:     "Settings",
			Icon:      "⚙",
			ModalOnly: true,
		},
		{
			Type:          workspace.EmptyPanelType,
			Title:         "Empty",
			MultiInstance: true,
		},
	}
}
