package workspace

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/mosaicterm/mosaic/internal/errors"
	"github.com/mosaicterm/mosaic/internal/layout"
	"github.com/mosaicterm/mosaic/internal/logger"
)

// Workspace owns the layout tree, the panel instance table, the header strip,
// the modal slot, focus, and the interaction state machine. All mutation goes
// through its methods; the tree itself is immutable between mutations.
type Workspace struct {
	id    string
	root  *layout.Node
	panels map[string]*PanelInstance

	headerPanels     []string
	headerPanelSizes map[string]layout.Size
	openPopoverID    string

	modal *PanelInstance

	focusedID string
	history   []string

	containerSize layout.Size

	host     Host
	registry Registry
	resolve  Resolver
	store    Store
	geom     Geometry
	notify   NotifyFunc

	// onRender is invoked after every change that affects what is on
	// screen, including live interaction updates that are not persisted.
	onRender func()

	session *interactionSession

	log *slog.Logger
}

// Options wires a Workspace to its collaborators. Host, Registry, and Store
// are required; the rest default to inert implementations.
type Options struct {
	Host     Host
	Registry Registry
	Resolve  Resolver
	Store    Store
	Geometry Geometry
	Notify   NotifyFunc
}

const maxHistory = 50

// defaultHeaderPanelSize is used for pinned panels with no stored size.
var defaultHeaderPanelSize = layout.Size{Width: 60, Height: 20}

// New builds a Workspace and constructs its initial layout, preferring the
// persisted one and falling back to the manifest-driven default. It fails
// only when the registry has no manifests at all, because then nothing can
// ever be shown.
func New(opts Options) (*Workspace, error) {
	if len(opts.Registry.Manifests()) == 0 {
		return nil, errors.NoManifests()
	}
	resolve := opts.Resolve
	if resolve == nil {
		resolve = func(Manifest) Availability { return Availability{State: Available} }
	}
	notify := opts.Notify
	if notify == nil {
		notify = func(string, string) {}
	}
	w := &Workspace{
		id:               uuid.NewString(),
		panels:           make(map[string]*PanelInstance),
		headerPanelSizes: make(map[string]layout.Size),
		host:             opts.Host,
		registry:         opts.Registry,
		resolve:          resolve,
		store:            opts.Store,
		geom:             opts.Geometry,
		notify:           notify,
		onRender:         func() {},
		log:              logger.ComponentLogger("workspace"),
	}
	if err := w.load(); err != nil {
		return nil, err
	}
	w.afterMutation()
	return w, nil
}

// SetOnRender installs the render hook. The hook must be cheap; it fires on
// every live interaction update.
func (w *Workspace) SetOnRender(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	w.onRender = fn
}

// SetGeometry installs the hit-testing source. Interactions are inert until
// one is present.
func (w *Workspace) SetGeometry(g Geometry) { w.geom = g }

// ID returns the workspace identifier.
func (w *Workspace) ID() string { return w.id }

// Root returns the current layout tree. Callers must treat it as read-only.
func (w *Workspace) Root() *layout.Node { return w.root }

// Panel returns the instance for a panel id.
func (w *Workspace) Panel(panelID string) (*PanelInstance, bool) {
	p, ok := w.panels[panelID]
	return p, ok
}

// FocusedPanelID returns the currently focused panel id, or "".
func (w *Workspace) FocusedPanelID() string { return w.focusedID }

// HeaderPanels returns the pinned panel ids in strip order.
func (w *Workspace) HeaderPanels() []string {
	out := make([]string, len(w.headerPanels))
	copy(out, w.headerPanels)
	return out
}

// HeaderPanelSize returns the popover size for a pinned panel.
func (w *Workspace) HeaderPanelSize(panelID string) layout.Size {
	if s, ok := w.headerPanelSizes[panelID]; ok {
		return s
	}
	return defaultHeaderPanelSize
}

// OpenPopoverID returns the pinned panel whose popover is open, or "".
func (w *Workspace) OpenPopoverID() string { return w.openPopoverID }

// ModalPanel returns the instance occupying the modal slot, or nil.
func (w *Workspace) ModalPanel() *PanelInstance { return w.modal }

// SetContainerSize records the workspace extent used for placement
// heuristics on subsequent inserts.
func (w *Workspace) SetContainerSize(size layout.Size) { w.containerSize = size }

// allocatePanelID returns the smallest unused "type-N" id for the type,
// counting every live surface so an id is never reused while visible
// anywhere.
func (w *Workspace) allocatePanelID(panelType string) string {
	used := make(map[string]bool, len(w.panels)+1)
	for id := range w.panels {
		used[id] = true
	}
	if w.modal != nil {
		used[w.modal.PanelID] = true
	}
	for n := 1; ; n++ {
		id := fmt.Sprintf("%s-%d", panelType, n)
		if !used[id] {
			return id
		}
	}
}

// sortedPanelIDs returns tree/header panel ids in lexical order, the
// deterministic order used for reuse lookups.
func (w *Workspace) sortedPanelIDs() []string {
	ids := make([]string, 0, len(w.panels))
	for id := range w.panels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (w *Workspace) isHeaderPanel(panelID string) bool {
	for _, id := range w.headerPanels {
		if id == panelID {
			return true
		}
	}
	return false
}

// afterMutation runs the post-change pipeline: lifecycle sync, persistence,
// inventory broadcast, and a render.
func (w *Workspace) afterMutation() {
	w.syncLifecycle()
	w.pruneHistory()
	w.persist()
	w.broadcastInventory()
	w.onRender()
}

// syncLifecycle mounts panels that have not been mounted yet and pushes the
// current visibility of every instance to the host. Tabs hide their inactive
// branches, header panels are visible only while their popover is open, and
// the modal panel is always visible.
func (w *Workspace) syncLifecycle() {
	visible := make(map[string]bool)
	for _, id := range layout.CollectVisiblePanelIDs(w.root) {
		visible[id] = true
	}
	if w.openPopoverID != "" {
		visible[w.openPopoverID] = true
	}
	for id, inst := range w.panels {
		w.ensureMounted(inst, w.surfaceFor(id))
		w.setVisible(inst, visible[id])
	}
	if w.modal != nil {
		w.ensureMounted(w.modal, SurfaceModal)
		w.setVisible(w.modal, true)
	}
}

func (w *Workspace) surfaceFor(panelID string) Surface {
	if w.isHeaderPanel(panelID) {
		return SurfaceHeader
	}
	return SurfaceTree
}

func (w *Workspace) ensureMounted(inst *PanelInstance, surface Surface) {
	if inst.phase != PhaseCreated && inst.phase != PhaseUnmounted {
		return
	}
	err := w.host.MountPanel(MountRequest{
		PanelID:   inst.PanelID,
		PanelType: inst.PanelType,
		Surface:   surface,
		Binding:   inst.Binding,
		State:     inst.State,
	})
	if err != nil {
		w.log.Error("mount failed", "panel", inst.PanelID, "error", err)
		return
	}
	inst.phase = PhaseMounted
}

func (w *Workspace) setVisible(inst *PanelInstance, visible bool) {
	if inst.phase == PhaseCreated || inst.phase == PhaseUnmounted || inst.phase == PhaseDestroyed {
		return
	}
	want := PhaseHidden
	if visible {
		want = PhaseVisible
	}
	if inst.phase == want {
		return
	}
	inst.phase = want
	w.host.SetPanelVisibility(inst.PanelID, visible)
}

// unmount tears a panel down and removes its bookkeeping everywhere.
func (w *Workspace) unmount(inst *PanelInstance) {
	if inst.phase != PhaseCreated && inst.phase != PhaseDestroyed {
		w.host.UnmountPanel(inst.PanelID)
	}
	inst.phase = PhaseDestroyed
	delete(w.panels, inst.PanelID)
	delete(w.headerPanelSizes, inst.PanelID)
	if w.openPopoverID == inst.PanelID {
		w.openPopoverID = ""
	}
	w.dropFromHistory(inst.PanelID)
}

// persist writes the tree-plus-header shape. Modal panels are ephemeral and
// never stored.
func (w *Workspace) persist() {
	if w.store == nil {
		return
	}
	p := PersistedLayout{
		Version:          LayoutVersion,
		Layout:           w.root.Clone(),
		Panels:           make(map[string]*PanelInstance, len(w.panels)),
		HeaderPanels:     w.HeaderPanels(),
		HeaderPanelSizes: make(map[string]layout.Size, len(w.headerPanelSizes)),
	}
	for id, inst := range w.panels {
		p.Panels[id] = inst
	}
	for id, size := range w.headerPanelSizes {
		p.HeaderPanelSizes[id] = size
	}
	if err := w.store.SaveLayout(p); err != nil {
		w.log.Error("layout save failed", "error", err)
	}
}

func (w *Workspace) persistHistory() {
	if w.store == nil {
		return
	}
	if err := w.store.SaveHistory(append([]string(nil), w.history...)); err != nil {
		w.log.Error("history save failed", "error", err)
	}
}

// load restores the persisted layout if its version matches and it survives
// validation, otherwise builds the manifest-driven default.
func (w *Workspace) load() error {
	if w.store != nil {
		if stored, ok, err := w.store.LoadLayout(); err != nil {
			w.log.Warn("discarding stored layout", "error", err)
		} else if ok {
			if w.restore(stored) {
				if hist, err := w.store.LoadHistory(); err == nil {
					w.history = hist
					w.pruneHistory()
				}
				return nil
			}
		}
	}
	return w.buildDefaultLayout()
}

// restore adopts a stored layout. Panels whose type no longer has a manifest
// are pruned from the tree; if nothing usable remains the whole snapshot is
// discarded.
func (w *Workspace) restore(stored PersistedLayout) bool {
	if stored.Version != LayoutVersion {
		w.log.Info("stored layout version mismatch", "stored", stored.Version, "want", LayoutVersion)
		return false
	}
	if stored.Layout == nil || stored.Panels == nil {
		return false
	}
	known := func(id string) bool {
		inst, ok := stored.Panels[id]
		if !ok {
			return false
		}
		_, ok = w.registry.Manifest(inst.PanelType)
		return ok
	}
	root := layout.Prune(stored.Layout, known)
	if root == nil {
		return false
	}
	if err := layout.Validate(root); err != nil {
		w.log.Warn("stored layout invalid", "error", err)
		return false
	}
	keep := make(map[string]bool)
	for _, id := range layout.CollectPanelIDs(root) {
		keep[id] = true
	}
	var header []string
	for _, id := range stored.HeaderPanels {
		if known(id) {
			header = append(header, id)
			keep[id] = true
		}
	}
	w.root = root
	w.headerPanels = header
	for id := range keep {
		inst := stored.Panels[id]
		inst.phase = PhaseCreated
		w.panels[id] = inst
		if err := w.registry.CreateInstance(inst.PanelType, id, OpenOptions{Binding: inst.Binding, State: inst.State}); err != nil {
			w.log.Warn("instance restore failed", "panel", id, "error", err)
		}
	}
	for id, size := range stored.HeaderPanelSizes {
		if keep[id] {
			w.headerPanelSizes[id] = size
		}
	}
	if first := layout.CollectVisiblePanelIDs(w.root); len(first) > 0 {
		w.focusedID = first[0]
	}
	return true
}

// buildDefaultLayout opens every available manifest that declares a default
// placement, in manifest order. If that yields nothing it falls back to a
// single panel of the first openable type.
func (w *Workspace) buildDefaultLayout() error {
	for _, m := range w.registry.Manifests() {
		if m.ModalOnly || m.DefaultPlacement == nil {
			continue
		}
		if w.resolve(m).State == Unavailable {
			continue
		}
		w.openInTree(m, OpenOptions{Placement: m.DefaultPlacement})
	}
	if w.root == nil {
		for _, m := range w.registry.Manifests() {
			if m.ModalOnly {
				continue
			}
			if w.resolve(m).State == Unavailable {
				continue
			}
			w.openInTree(m, OpenOptions{})
			break
		}
	}
	if w.root == nil {
		// Last resort: take the first non-modal manifest even if it
		// resolved unavailable, so the tree keeps its one-leaf floor.
		for _, m := range w.registry.Manifests() {
			if !m.ModalOnly {
				w.openInTree(m, OpenOptions{})
				break
			}
		}
	}
	if w.root == nil {
		return errors.NoManifests()
	}
	if ids := layout.CollectVisiblePanelIDs(w.root); len(ids) > 0 {
		w.focusedID = ids[0]
	}
	return nil
}

// RequestAttention surfaces a notification for a panel the user cannot see.
// Visible panels are ignored; the screen already shows them.
func (w *Workspace) RequestAttention(panelID, message string) {
	inst, ok := w.panels[panelID]
	if !ok || inst.phase == PhaseVisible {
		return
	}
	w.notify(w.panelTitle(inst), message)
}

func (w *Workspace) panelTitle(inst *PanelInstance) string {
	title := inst.PanelType
	if m, ok := w.registry.Manifest(inst.PanelType); ok && m.Title != "" {
		title = m.Title
	}
	if inst.Binding != nil && inst.Binding.SessionID != "" {
		title = fmt.Sprintf("%s (%s)", title, inst.Binding.SessionID)
	}
	return title
}

// BuildInventory summarizes every open panel for host-side consumers such as
// a command palette or an agent tool surface.
func (w *Workspace) BuildInventory() Inventory {
	inv := Inventory{WorkspaceID: w.id}
	for _, id := range w.sortedPanelIDs() {
		inst := w.panels[id]
		info := PanelInfo{
			PanelID:   id,
			PanelType: inst.PanelType,
			Title:     w.panelTitle(inst),
			Visible:   inst.phase == PhaseVisible,
			Binding:   inst.Binding,
			Context:   w.host.PanelContext(id),
		}
		inv.Panels = append(inv.Panels, info)
		if id == w.focusedID {
			active := info
			inv.Active = &active
		}
	}
	return inv
}

func (w *Workspace) broadcastInventory() {
	w.host.SendPanelEvent(w.BuildInventory())
}
