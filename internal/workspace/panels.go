package workspace

import (
	"github.com/mosaicterm/mosaic/internal/layout"
)

// OpenPanel opens (or reuses) a panel of the given type and returns its id.
// It returns "" and false when the type is unknown or currently unavailable;
// callers treat that as a quiet no-op.
//
// Reuse rules, in order: modal-only types go to the modal slot; a
// non-multi-instance type focuses its existing panel; a chat panel fixed to a
// session that already has one focuses that panel. Reuse lookups scan panel
// ids in lexical order so the outcome is deterministic.
func (w *Workspace) OpenPanel(panelType string, opts OpenOptions) (string, bool) {
	m, ok := w.registry.Manifest(panelType)
	if !ok {
		w.log.Warn("open of unknown panel type", "type", panelType)
		return "", false
	}
	if av := w.resolve(m); av.State != Available {
		w.log.Info("panel type not available", "type", panelType, "reason", av.Reason)
		return "", false
	}
	if m.ModalOnly {
		return w.OpenModalPanel(panelType, opts)
	}
	if id, ok := w.reusable(m, opts); ok {
		inst := w.panels[id]
		if opts.Binding != nil {
			inst.Binding = opts.Binding
			w.host.SetPanelBinding(id, opts.Binding)
		}
		if opts.State != nil {
			inst.State = opts.State
		}
		if opts.Focus {
			w.FocusPanel(id)
		} else {
			w.afterMutation()
		}
		return id, true
	}
	id := w.openInTree(m, opts)
	if id == "" {
		return "", false
	}
	if opts.Focus {
		w.FocusPanel(id)
	} else {
		w.afterMutation()
	}
	return id, true
}

// reusable finds an existing panel the open request should land on instead
// of creating a new instance.
func (w *Workspace) reusable(m Manifest, opts OpenOptions) (string, bool) {
	if !m.MultiInstance {
		for _, id := range w.sortedPanelIDs() {
			if w.panels[id].PanelType == m.Type {
				return id, true
			}
		}
		return "", false
	}
	if m.Type == ChatPanelType && opts.Binding != nil && opts.Binding.Fixed && opts.Binding.SessionID != "" {
		for _, id := range w.sortedPanelIDs() {
			inst := w.panels[id]
			if inst.PanelType != ChatPanelType || inst.Binding == nil {
				continue
			}
			if inst.Binding.Fixed && inst.Binding.SessionID == opts.Binding.SessionID {
				return id, true
			}
		}
	}
	return "", false
}

// openInTree creates a fresh instance and splices it into the tree. It does
// not run the post-mutation pipeline; callers decide whether focus follows.
func (w *Workspace) openInTree(m Manifest, opts OpenOptions) string {
	id := w.allocatePanelID(m.Type)
	if err := w.registry.CreateInstance(m.Type, id, opts); err != nil {
		w.log.Error("instance creation failed", "type", m.Type, "error", err)
		return ""
	}
	inst := &PanelInstance{
		PanelID:   id,
		PanelType: m.Type,
		Binding:   opts.Binding,
		State:     opts.State,
		phase:     PhaseCreated,
	}
	w.panels[id] = inst

	placement := layout.Placement{Region: layout.RegionCenter}
	if opts.Placement != nil {
		placement = *opts.Placement
	} else if m.DefaultPlacement != nil {
		placement = *m.DefaultPlacement
	}
	target := opts.TargetPanelID
	if target == "" {
		target = w.focusedID
	}
	w.root = layout.InsertPanel(w.root, id, placement, target, w.containerSize)
	return id
}

// ClosePanel removes a panel from the tree and destroys its instance. When
// the panel is the last leaf, a placeholder is opened first so the tree
// never empties. Focus, if lost, falls to the first visible panel in
// document order.
func (w *Workspace) ClosePanel(panelID string) bool {
	if w.modal != nil && w.modal.PanelID == panelID {
		w.CloseModalPanel()
		return true
	}
	inst, ok := w.panels[panelID]
	if !ok {
		return false
	}
	if w.isHeaderPanel(panelID) {
		w.removeHeaderPanel(panelID)
		w.unmount(inst)
		w.refocusAfterLoss(panelID)
		w.afterMutation()
		return true
	}
	if !layout.ContainsPanel(w.root, panelID) {
		w.unmount(inst)
		w.afterMutation()
		return true
	}
	w.seedPlaceholderIfLast(panelID)
	w.root = layout.RemovePanel(w.root, panelID)
	w.unmount(inst)
	w.refocusAfterLoss(panelID)
	w.afterMutation()
	return true
}

// seedPlaceholderIfLast opens an empty-type placeholder next to the panel
// about to leave the tree if it is the only leaf left.
func (w *Workspace) seedPlaceholderIfLast(panelID string) {
	if w.root == nil || !w.root.IsLeaf() || w.root.PanelID != panelID {
		return
	}
	m, ok := w.registry.Manifest(EmptyPanelType)
	if !ok {
		w.log.Warn("no placeholder manifest, tree may empty")
		return
	}
	w.openInTree(m, OpenOptions{
		Placement:     &layout.Placement{Region: layout.RegionCenter},
		TargetPanelID: panelID,
	})
}

func (w *Workspace) refocusAfterLoss(panelID string) {
	if w.focusedID != panelID {
		return
	}
	w.focusedID = ""
	ids := layout.CollectVisiblePanelIDs(w.root)
	if len(ids) > 0 {
		w.focusLocked(ids[0])
	} else if w.host != nil {
		w.host.SetPanelFocus(panelID, false)
	}
}

// PinPanel lifts a panel out of the tree into the header strip. Its content
// stays mounted and reachable through the popover.
func (w *Workspace) PinPanel(panelID string) {
	if _, ok := w.panels[panelID]; !ok {
		return
	}
	if w.isHeaderPanel(panelID) || !layout.ContainsPanel(w.root, panelID) {
		return
	}
	w.seedPlaceholderIfLast(panelID)
	w.root = layout.RemovePanel(w.root, panelID)
	w.headerPanels = append(w.headerPanels, panelID)
	if _, ok := w.headerPanelSizes[panelID]; !ok {
		w.headerPanelSizes[panelID] = defaultHeaderPanelSize
	}
	w.refocusAfterLoss(panelID)
	w.afterMutation()
}

// UnpinPanel returns a pinned panel to the tree, placed center on the
// focused panel.
func (w *Workspace) UnpinPanel(panelID string) {
	if !w.isHeaderPanel(panelID) {
		return
	}
	w.removeHeaderPanel(panelID)
	if w.openPopoverID == panelID {
		w.openPopoverID = ""
	}
	w.root = layout.InsertPanel(w.root, panelID, layout.Placement{Region: layout.RegionCenter}, w.focusedID, w.containerSize)
	w.FocusPanel(panelID)
}

func (w *Workspace) removeHeaderPanel(panelID string) {
	out := w.headerPanels[:0]
	for _, id := range w.headerPanels {
		if id != panelID {
			out = append(out, id)
		}
	}
	w.headerPanels = out
}

// TogglePopover opens or closes the floating popover of a pinned panel. At
// most one popover is open at a time, and opening one terminates any active
// pointer interaction.
func (w *Workspace) TogglePopover(panelID string) {
	if !w.isHeaderPanel(panelID) {
		return
	}
	w.endSession(true)
	if w.openPopoverID == panelID {
		w.openPopoverID = ""
	} else {
		w.openPopoverID = panelID
	}
	w.afterMutation()
}

// CloseOpenPopover closes whichever popover is open, if any. Returns true
// when something was closed.
func (w *Workspace) CloseOpenPopover() bool {
	if w.openPopoverID == "" {
		return false
	}
	w.openPopoverID = ""
	w.afterMutation()
	return true
}

// SetHeaderPanelSize stores the popover size for a pinned panel.
func (w *Workspace) SetHeaderPanelSize(panelID string, size layout.Size) {
	if !w.isHeaderPanel(panelID) {
		return
	}
	if size.Width < 1 {
		size.Width = 1
	}
	if size.Height < 1 {
		size.Height = 1
	}
	w.headerPanelSizes[panelID] = size
	w.host.SetPanelSize(panelID, size)
	w.persist()
	w.onRender()
}
