package registry

import (
	"testing"

	"github.com/mosaicterm/mosaic/internal/workspace"
)

func TestBuiltinCatalog(t *testing.T) {
	r := New()
	ms := r.Manifests()
	if len(ms) == 0 {
		t.Fatal("builtin catalog is empty")
	}
	chat, ok := r.Manifest(workspace.ChatPanelType)
	if !ok {
		t.Fatal("chat manifest missing")
	}
	if !chat.MultiInstance || !chat.SessionScope {
		t.Errorf("chat = %+v, want multi-instance and session-scoped", chat)
	}
	settings, ok := r.Manifest("settings")
	if !ok || !settings.ModalOnly {
		t.Error("settings should be modal-only")
	}
	if _, ok := r.Manifest(workspace.EmptyPanelType); !ok {
		t.Error("placeholder manifest missing")
	}
}

func TestRegisterPreservesOrderAndReplaces(t *testing.T) {
	r := New()
	before := len(r.Manifests())
	r.Register(workspace.Manifest{Type: "custom", Title: "Custom"}, nil)
	ms := r.Manifests()
	if len(ms) != before+1 || ms[len(ms)-1].Type != "custom" {
		t.Fatalf("new type should append, got %d manifests", len(ms))
	}
	r.Register(workspace.Manifest{Type: "custom", Title: "Renamed"}, nil)
	ms = r.Manifests()
	if len(ms) != before+1 {
		t.Fatal("re-registering must replace, not append")
	}
	if m, _ := r.Manifest("custom"); m.Title != "Renamed" {
		t.Errorf("title = %q, want Renamed", m.Title)
	}
}

func TestCreateInstance(t *testing.T) {
	r := New()
	var got string
	r.Register(workspace.Manifest{Type: "custom"}, func(panelID string, opts workspace.OpenOptions) error {
		got = panelID
		return nil
	})
	if err := r.CreateInstance("custom", "custom-1", workspace.OpenOptions{}); err != nil {
		t.Fatalf("CreateInstance error: %v", err)
	}
	if got != "custom-1" {
		t.Errorf("factory saw %q, want custom-1", got)
	}
	// Builtins have no factory and still succeed.
	if err := r.CreateInstance("chat", "chat-1", workspace.OpenOptions{}); err != nil {
		t.Errorf("builtin create error: %v", err)
	}
	if err := r.CreateInstance("bogus", "bogus-1", workspace.OpenOptions{}); err == nil {
		t.Error("unknown type should fail")
	}
}

func TestResolverAllowedTypes(t *testing.T) {
	resolve := NewResolver(Environment{AllowedTypes: []string{"chat"}})
	if av := resolve(workspace.Manifest{Type: "chat"}); av.State != workspace.Available {
		t.Errorf("chat availability = %v, want available", av.State)
	}
	av := resolve(workspace.Manifest{Type: "search"})
	if av.State != workspace.Unavailable || av.Reason == "" {
		t.Errorf("search availability = %+v, want unavailable with reason", av)
	}
}

func TestResolverCapabilities(t *testing.T) {
	resolve := NewResolver(Environment{
		Capabilities: []string{"sessions"},
		Warming:      []string{"index"},
	})
	if av := resolve(workspace.Manifest{Type: "chat", Capabilities: []string{"sessions"}}); av.State != workspace.Available {
		t.Errorf("availability = %v, want available", av.State)
	}
	if av := resolve(workspace.Manifest{Type: "search", Capabilities: []string{"index"}}); av.State != workspace.Loading {
		t.Errorf("availability = %v, want loading while warming", av.State)
	}
	if av := resolve(workspace.Manifest{Type: "x", Capabilities: []string{"gpu"}}); av.State != workspace.Unavailable {
		t.Errorf("availability = %v, want unavailable for missing capability", av.State)
	}
}

func TestResolverUnrestrictedEnvironment(t *testing.T) {
	resolve := NewResolver(Environment{})
	if av := resolve(workspace.Manifest{Type: "anything", Capabilities: []string{"whatever"}}); av.State != workspace.Available {
		t.Errorf("empty environment should allow everything, got %v", av.State)
	}
}
