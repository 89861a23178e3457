package workspace

import (
	"encoding/json"

	"github.com/mosaicterm/mosaic/internal/layout"
)

// ChatPanelType is the panel type with the session-reuse rule: requesting a
// chat panel fixed-bound to a session that already has one focuses the
// existing panel instead of opening a duplicate.
const ChatPanelType = "chat"

// EmptyPanelType is the placeholder seeded before a removal that would
// otherwise empty the tree.
const EmptyPanelType = "empty"

// SettingsPanelType is the built-in modal-only settings panel.
const SettingsPanelType = "settings"

// Phase tracks a tree panel through its lifecycle:
// created -> mounted -> {visible <-> hidden} -> unmounted -> destroyed.
type Phase int

const (
	PhaseCreated Phase = iota
	PhaseMounted
	PhaseVisible
	PhaseHidden
	PhaseUnmounted
	PhaseDestroyed
)

func (p Phase) String() string {
	switch p {
	case PhaseCreated:
		return "created"
	case PhaseMounted:
		return "mounted"
	case PhaseVisible:
		return "visible"
	case PhaseHidden:
		return "hidden"
	case PhaseUnmounted:
		return "unmounted"
	case PhaseDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Binding associates a session-scoped panel with a backend session, or marks
// it global/unbound. A fixed binding does not follow the active session.
type Binding struct {
	SessionID string `json:"sessionId,omitempty"`
	Global    bool   `json:"global,omitempty"`
	Fixed     bool   `json:"fixed,omitempty"`
}

// PanelInstance is the engine-side record of one open panel. State is an
// opaque blob the engine persists but never interprets.
type PanelInstance struct {
	PanelID   string            `json:"panelId"`
	PanelType string            `json:"panelType"`
	Binding   *Binding          `json:"binding,omitempty"`
	Meta      map[string]string `json:"meta,omitempty"`
	State     json.RawMessage   `json:"state,omitempty"`

	phase Phase
}

// Phase returns the lifecycle phase of the instance.
func (p *PanelInstance) Phase() Phase { return p.phase }

// Manifest describes a registered panel type.
type Manifest struct {
	Type             string
	Title            string
	Icon             string
	MultiInstance    bool
	SessionScope     bool
	ModalOnly        bool
	DefaultPlacement *layout.Placement
	Capabilities     []string
}

// AvailabilityState gates whether a panel type can open right now.
type AvailabilityState int

const (
	Available AvailabilityState = iota
	Loading
	Unavailable
)

// Availability is the result of resolving a manifest against the allowed
// types and capabilities of the current environment.
type Availability struct {
	State  AvailabilityState
	Reason string
}

// Resolver decides availability for a manifest.
type Resolver func(m Manifest) Availability

// OpenOptions carries per-open overrides.
type OpenOptions struct {
	Placement     *layout.Placement
	TargetPanelID string
	Binding       *Binding
	State         json.RawMessage
	Focus         bool
}

// Surface names where a panel is mounted.
type Surface string

const (
	SurfaceTree   Surface = "tree"
	SurfaceHeader Surface = "header"
	SurfaceModal  Surface = "modal"
)

// MountRequest is passed to the host when a panel's content should come
// alive.
type MountRequest struct {
	PanelID   string
	PanelType string
	Surface   Surface
	Binding   *Binding
	State     json.RawMessage
}

// Host is the consumed panel-content contract: everything about what is
// inside a panel lives behind it.
type Host interface {
	MountPanel(req MountRequest) error
	UnmountPanel(panelID string)
	SetPanelVisibility(panelID string, visible bool)
	SetPanelFocus(panelID string, focused bool)
	SetPanelSize(panelID string, size layout.Size)
	PanelBinding(panelID string) *Binding
	SetPanelBinding(panelID string, b *Binding)
	PanelContext(panelID string) map[string]string
	SendPanelEvent(inv Inventory)
}

// Registry is the consumed manifest contract.
type Registry interface {
	Manifests() []Manifest
	Manifest(panelType string) (Manifest, bool)
	CreateInstance(panelType, panelID string, opts OpenOptions) error
}

// Store persists the layout and the focus history under separate keys.
type Store interface {
	SaveLayout(p PersistedLayout) error
	LoadLayout() (PersistedLayout, bool, error)
	SaveHistory(ids []string) error
	LoadHistory() ([]string, error)
}

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Geometry answers the hit-testing questions the interaction state machine
// needs, so the machine itself never touches the screen.
type Geometry interface {
	PanelRect(panelID string) (Rect, bool)
	SplitChildRect(splitID string, child int) (Rect, bool)
	HeaderDockRect() Rect
	ModalRect() (Rect, bool)
	PanelAt(x, y int) (string, bool)
	// OverlayOpen reports whether a higher-priority surface (menu, dialog,
	// open popover form) should swallow escape/backdrop events.
	OverlayOpen() bool
}

// NotifyFunc delivers an attention notification for a panel the user cannot
// currently see.
type NotifyFunc func(title, message string)

// PanelInfo is one inventory entry.
type PanelInfo struct {
	PanelID   string            `json:"panelId"`
	PanelType string            `json:"panelType"`
	Title     string            `json:"title"`
	Visible   bool              `json:"visible"`
	Binding   *Binding          `json:"binding,omitempty"`
	Context   map[string]string `json:"context,omitempty"`
}

// Inventory is the full workspace summary pushed to the host after every
// structural or visibility change.
type Inventory struct {
	WorkspaceID string      `json:"workspaceId"`
	Active      *PanelInfo  `json:"active,omitempty"`
	Panels      []PanelInfo `json:"panels"`
}

// PersistedLayout is the version-gated stored shape. A version mismatch
// discards rather than migrates.
type PersistedLayout struct {
	Version          int                       `json:"version"`
	Layout           *layout.Node              `json:"layout"`
	Panels           map[string]*PanelInstance `json:"panels"`
	HeaderPanels     []string                  `json:"headerPanels"`
	HeaderPanelSizes map[string]layout.Size    `json:"headerPanelSizes"`
}

// LayoutVersion is the current persisted-layout schema version.
const LayoutVersion = 1
