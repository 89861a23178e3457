package workspace

import (
	"github.com/mosaicterm/mosaic/internal/layout"
)

// FocusPanel moves focus to a panel in the tree. Any ancestor tabs node has
// its active tab switched so the panel actually becomes visible. The move is
// recorded at the head of the focus history.
func (w *Workspace) FocusPanel(panelID string) {
	if _, ok := w.panels[panelID]; !ok {
		return
	}
	if !layout.ContainsPanel(w.root, panelID) {
		return
	}
	w.focusLocked(panelID)
	w.afterMutation()
}

// focusLocked performs the focus switch without running the post-mutation
// pipeline. Callers that batch several changes use it directly.
func (w *Workspace) focusLocked(panelID string) {
	w.root = activateTabsFor(w.root, panelID)
	if w.focusedID == panelID {
		return
	}
	if w.focusedID != "" {
		w.host.SetPanelFocus(w.focusedID, false)
	}
	w.focusedID = panelID
	w.host.SetPanelFocus(panelID, true)
	w.recordFocus(panelID)
}

// activateTabsFor clones the tree with every tabs ancestor of the panel
// switched so the panel sits on the active branch.
func activateTabsFor(root *layout.Node, panelID string) *layout.Node {
	if root == nil {
		return nil
	}
	clone := root.Clone()
	activateIn(clone, panelID)
	return clone
}

func activateIn(n *layout.Node, panelID string) bool {
	if n.IsLeaf() {
		return n.PanelID == panelID
	}
	found := false
	for _, c := range n.Children {
		if activateIn(c, panelID) {
			found = true
		}
	}
	if found && n.ViewMode == layout.ModeTabs {
		n.ActiveID = panelID
	}
	return found
}

// recordFocus prepends the panel to the history, deduplicating and capping
// its length.
func (w *Workspace) recordFocus(panelID string) {
	out := make([]string, 0, len(w.history)+1)
	out = append(out, panelID)
	for _, id := range w.history {
		if id != panelID {
			out = append(out, id)
		}
	}
	if len(out) > maxHistory {
		out = out[:maxHistory]
	}
	w.history = out
	w.persistHistory()
}

func (w *Workspace) dropFromHistory(panelID string) {
	out := w.history[:0]
	for _, id := range w.history {
		if id != panelID {
			out = append(out, id)
		}
	}
	if len(out) != len(w.history) {
		w.history = out
		w.persistHistory()
	} else {
		w.history = out
	}
}

// pruneHistory drops entries whose panel no longer exists.
func (w *Workspace) pruneHistory() {
	out := w.history[:0]
	for _, id := range w.history {
		if _, ok := w.panels[id]; ok {
			out = append(out, id)
		}
	}
	w.history = out
}

// FocusHistory returns the most-recent-first focus history.
func (w *Workspace) FocusHistory() []string {
	out := make([]string, len(w.history))
	copy(out, w.history)
	return out
}

// LastPanelOfType returns the most recently focused panel of the type,
// falling back to document order when the history has no entry for it.
func (w *Workspace) LastPanelOfType(panelType string) (string, bool) {
	for _, id := range w.history {
		if inst, ok := w.panels[id]; ok && inst.PanelType == panelType {
			return id, true
		}
	}
	for _, id := range layout.CollectPanelIDs(w.root) {
		if inst, ok := w.panels[id]; ok && inst.PanelType == panelType {
			return id, true
		}
	}
	return "", false
}

// FocusNextPanel cycles focus through the visible panels in document order.
func (w *Workspace) FocusNextPanel(delta int) {
	ids := layout.CollectVisiblePanelIDs(w.root)
	if len(ids) == 0 {
		return
	}
	cur := -1
	for i, id := range ids {
		if id == w.focusedID {
			cur = i
			break
		}
	}
	next := ((cur+delta)%len(ids) + len(ids)) % len(ids)
	w.FocusPanel(ids[next])
}
