package workspace

// OpenModalPanel opens a panel in the single modal slot, force-closing any
// panel already occupying it. Modal panels live outside the tree and are
// never persisted.
func (w *Workspace) OpenModalPanel(panelType string, opts OpenOptions) (string, bool) {
	m, ok := w.registry.Manifest(panelType)
	if !ok {
		w.log.Warn("open of unknown modal panel type", "type", panelType)
		return "", false
	}
	if av := w.resolve(m); av.State != Available {
		w.log.Info("modal panel type not available", "type", panelType, "reason", av.Reason)
		return "", false
	}
	if w.modal != nil {
		w.CloseModalPanel()
	}
	id := w.allocatePanelID(panelType)
	if err := w.registry.CreateInstance(panelType, id, opts); err != nil {
		w.log.Error("modal instance creation failed", "type", panelType, "error", err)
		return "", false
	}
	w.modal = &PanelInstance{
		PanelID:   id,
		PanelType: panelType,
		Binding:   opts.Binding,
		State:     opts.State,
		phase:     PhaseCreated,
	}
	w.afterMutation()
	return id, true
}

// CloseModalPanel dismisses the modal panel, if any.
func (w *Workspace) CloseModalPanel() {
	if w.modal == nil {
		return
	}
	inst := w.modal
	w.modal = nil
	if inst.phase != PhaseCreated && inst.phase != PhaseDestroyed {
		w.host.UnmountPanel(inst.PanelID)
	}
	inst.phase = PhaseDestroyed
	w.afterMutation()
}

// HandleEscape applies the escape precedence: an active pointer interaction
// is cancelled first, then an open popover closes, then the modal, unless a
// higher-priority overlay wants the key. Returns true when the key was
// consumed.
func (w *Workspace) HandleEscape() bool {
	if w.session != nil {
		w.CancelInteraction()
		return true
	}
	if w.geom != nil && w.geom.OverlayOpen() {
		return false
	}
	if w.CloseOpenPopover() {
		return true
	}
	if w.modal != nil {
		w.CloseModalPanel()
		return true
	}
	return false
}

// HandleBackdropClick dismisses the modal when a click lands outside its
// rect. Returns true when the click was consumed.
func (w *Workspace) HandleBackdropClick(x, y int) bool {
	if w.modal == nil || w.geom == nil {
		return false
	}
	if w.geom.OverlayOpen() {
		return false
	}
	if r, ok := w.geom.ModalRect(); ok && r.Contains(x, y) {
		return false
	}
	w.CloseModalPanel()
	return true
}
