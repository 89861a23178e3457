package workspace

import (
	"github.com/mosaicterm/mosaic/internal/layout"
)

// MovePanel relocates a panel relative to a target. Unknown panels and
// self-moves leave the tree unchanged.
func (w *Workspace) MovePanel(panelID string, p layout.Placement, targetID string) {
	if !layout.ContainsPanel(w.root, panelID) {
		return
	}
	w.root = layout.MovePanel(w.root, panelID, p, targetID, w.containerSize)
	w.afterMutation()
}

// ToggleSplitViewMode flips the split enclosing the panel between side-by-side
// and tabs presentation. Entering tabs makes the panel the active tab.
func (w *Workspace) ToggleSplitViewMode(panelID string) {
	split := layout.FindEnclosingSplit(w.root, panelID)
	if split == nil {
		return
	}
	clone := w.root.Clone()
	target := layout.FindSplit(clone, split.SplitID)
	if target == nil {
		return
	}
	if target.ViewMode == layout.ModeTabs {
		target.ViewMode = layout.ModeSplit
		target.ActiveID = ""
	} else {
		target.ViewMode = layout.ModeTabs
		target.ActiveID = panelID
	}
	w.root = clone
	w.afterMutation()
}

// CloseSplit closes every panel under the split enclosing the given panel.
func (w *Workspace) CloseSplit(panelID string) {
	split := layout.FindEnclosingSplit(w.root, panelID)
	if split == nil {
		return
	}
	for _, id := range layout.CollectPanelIDs(split) {
		w.ClosePanel(id)
	}
}

// CycleTab moves the active tab of the tabs node enclosing the panel by
// delta, wrapping at either end.
func (w *Workspace) CycleTab(panelID string, delta int) {
	split := layout.FindEnclosingSplit(w.root, panelID)
	if split == nil || split.ViewMode != layout.ModeTabs || len(split.Children) == 0 {
		return
	}
	cur := 0
	for i, c := range split.Children {
		if layout.ContainsPanel(c, split.ActiveID) {
			cur = i
			break
		}
	}
	n := len(split.Children)
	next := ((cur+delta)%n + n) % n
	nextID := layout.FirstPanelID(split.Children[next])
	if nextID == "" {
		return
	}
	clone := w.root.Clone()
	if target := layout.FindSplit(clone, split.SplitID); target != nil {
		target.ActiveID = nextID
	}
	w.root = clone
	w.focusLocked(nextID)
	w.afterMutation()
}
