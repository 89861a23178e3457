package workspace

import (
	"github.com/mosaicterm/mosaic/internal/layout"
)

// InteractionKind names the active pointer interaction, if any.
type InteractionKind int

const (
	InteractionNone InteractionKind = iota
	InteractionResize
	InteractionDock
	InteractionReorder
	InteractionPopoverResize
)

// dockBandFraction is the share of a panel edge that counts as a side drop.
// Pointers inside the remaining middle area target center.
const dockBandFraction = 4 // band = extent / dockBandFraction

// DropTarget is the prospective outcome of a drag, exposed so the renderer
// can draw the drop highlight.
type DropTarget struct {
	PanelID string
	Region  layout.Region
	Header  bool
	Rect    Rect
}

type interactionSession struct {
	kind InteractionKind

	// snapshot to revert to on cancel
	origRoot *layout.Node

	// resize
	splitID string
	index   int

	// dock and reorder
	panelID string
	drop    *DropTarget
	target  int // reorder target index

	// popover resize
	origSize       layout.Size
	startX, startY int
}

// Interaction returns the kind of the active session.
func (w *Workspace) Interaction() InteractionKind {
	if w.session == nil {
		return InteractionNone
	}
	return w.session.kind
}

// CurrentDropTarget returns the highlight target of an active drag, or nil.
func (w *Workspace) CurrentDropTarget() *DropTarget {
	if w.session == nil {
		return nil
	}
	return w.session.drop
}

// ReorderTarget returns the pending sibling index of an active reorder.
func (w *Workspace) ReorderTarget() (int, bool) {
	if w.session == nil || w.session.kind != InteractionReorder {
		return 0, false
	}
	return w.session.target, true
}

// begin installs a fresh session, force-terminating whatever was active.
func (w *Workspace) begin(s *interactionSession) {
	w.endSession(true)
	s.origRoot = w.root
	w.session = s
}

// BeginResize starts dragging the divider after child index of a split.
func (w *Workspace) BeginResize(splitID string, index int, x, y int) {
	split := layout.FindSplit(w.root, splitID)
	if split == nil || split.ViewMode != layout.ModeSplit {
		return
	}
	if index < 0 || index >= len(split.Children)-1 {
		return
	}
	w.begin(&interactionSession{kind: InteractionResize, splitID: splitID, index: index, startX: x, startY: y})
}

// BeginDock starts dragging a panel toward a new home.
func (w *Workspace) BeginDock(panelID string, x, y int) {
	if !layout.ContainsPanel(w.root, panelID) {
		return
	}
	w.begin(&interactionSession{kind: InteractionDock, panelID: panelID, startX: x, startY: y})
}

// BeginReorder starts dragging a panel among its split siblings.
func (w *Workspace) BeginReorder(panelID string, x, y int) {
	split := layout.FindEnclosingSplit(w.root, panelID)
	if split == nil {
		return
	}
	idx := siblingIndex(split, panelID)
	if idx < 0 {
		return
	}
	w.begin(&interactionSession{kind: InteractionReorder, panelID: panelID, target: idx, startX: x, startY: y})
}

// BeginPopoverResize starts resizing the open popover of a pinned panel.
func (w *Workspace) BeginPopoverResize(panelID string, x, y int) {
	if !w.isHeaderPanel(panelID) || w.openPopoverID != panelID {
		return
	}
	w.begin(&interactionSession{
		kind:     InteractionPopoverResize,
		panelID:  panelID,
		origSize: w.HeaderPanelSize(panelID),
		startX:   x,
		startY:   y,
	})
}

// PointerMove feeds pointer motion into the active session. Resize and
// popover-resize apply live; dock and reorder only update their pending
// target.
func (w *Workspace) PointerMove(x, y int) {
	s := w.session
	if s == nil {
		return
	}
	switch s.kind {
	case InteractionResize:
		w.resizeTo(s, x, y)
	case InteractionDock:
		s.drop = w.dockTargetAt(x, y)
		w.onRender()
	case InteractionReorder:
		w.reorderTargetAt(s, x, y)
		w.onRender()
	case InteractionPopoverResize:
		size := layout.Size{
			Width:  s.origSize.Width + (x - s.startX),
			Height: s.origSize.Height + (y - s.startY),
		}
		if size.Width < 10 {
			size.Width = 10
		}
		if size.Height < 3 {
			size.Height = 3
		}
		w.headerPanelSizes[s.panelID] = size
		w.host.SetPanelSize(s.panelID, size)
		w.onRender()
	}
}

// PointerUp terminates the session and commits its outcome.
func (w *Workspace) PointerUp(x, y int) {
	if w.session != nil {
		w.PointerMove(x, y)
	}
	w.endSession(false)
}

// PointerCancel terminates the session exactly like PointerUp. Capture loss
// and pointer-cancel are commits, not aborts.
func (w *Workspace) PointerCancel() {
	w.endSession(false)
}

// CancelInteraction aborts the session, reverting any live changes. This is
// the escape-key path.
func (w *Workspace) CancelInteraction() {
	w.endSession(true)
}

// endSession clears the session before applying its outcome so a re-entrant
// or duplicate terminator can never commit twice.
func (w *Workspace) endSession(cancelled bool) {
	s := w.session
	if s == nil {
		return
	}
	w.session = nil
	if cancelled {
		switch s.kind {
		case InteractionResize, InteractionReorder:
			w.root = s.origRoot
		case InteractionPopoverResize:
			w.headerPanelSizes[s.panelID] = s.origSize
			w.host.SetPanelSize(s.panelID, s.origSize)
		}
		w.onRender()
		return
	}
	switch s.kind {
	case InteractionResize:
		w.afterMutation()
	case InteractionDock:
		w.commitDock(s)
	case InteractionReorder:
		w.commitReorder(s)
	case InteractionPopoverResize:
		w.persist()
		w.onRender()
	}
}

// resizeTo recomputes the two shares around the dragged divider. Neither
// side may drop below a five percent floor of their combined extent; when
// the combined extent is too small to honor the floor twice the divider
// snaps to the middle.
func (w *Workspace) resizeTo(s *interactionSession, x, y int) {
	if w.geom == nil {
		return
	}
	split := layout.FindSplit(w.root, s.splitID)
	if split == nil || s.index >= len(split.Children)-1 {
		return
	}
	a, okA := w.geom.SplitChildRect(s.splitID, s.index)
	b, okB := w.geom.SplitChildRect(s.splitID, s.index+1)
	if !okA || !okB {
		return
	}
	var start, extent, pos int
	if split.Direction == layout.DirectionHorizontal {
		start = a.X
		extent = (b.X + b.W) - a.X
		pos = x - start
	} else {
		start = a.Y
		extent = (b.Y + b.H) - a.Y
		pos = y - start
	}
	if extent <= 0 {
		return
	}
	floor := extent / 20
	if floor < 2 {
		floor = 2
	}
	var ratio float64
	if extent < 2*floor {
		ratio = 0.5
	} else {
		if pos < floor {
			pos = floor
		}
		if pos > extent-floor {
			pos = extent - floor
		}
		ratio = float64(pos) / float64(extent)
	}
	clone := w.root.Clone()
	target := layout.FindSplit(clone, s.splitID)
	if target == nil {
		return
	}
	combined := target.Sizes[s.index] + target.Sizes[s.index+1]
	target.Sizes[s.index] = combined * ratio
	target.Sizes[s.index+1] = combined * (1 - ratio)
	w.root = clone
	w.onRender()
}

// dockTargetAt hit-tests the pointer into a drop target: the header strip,
// or a panel with a region derived from which edge band the pointer sits in.
func (w *Workspace) dockTargetAt(x, y int) *DropTarget {
	if w.geom == nil {
		return nil
	}
	if hr := w.geom.HeaderDockRect(); hr.Contains(x, y) {
		return &DropTarget{Header: true, Rect: hr}
	}
	panelID, ok := w.geom.PanelAt(x, y)
	if !ok {
		return nil
	}
	r, ok := w.geom.PanelRect(panelID)
	if !ok || r.Empty() {
		return nil
	}
	region := regionFor(r, x, y)
	return &DropTarget{PanelID: panelID, Region: region, Rect: highlightRect(r, region)}
}

// regionFor maps a pointer position inside a rect to a drop region using the
// quarter-extent edge bands.
func regionFor(r Rect, x, y int) layout.Region {
	bandW := r.W / dockBandFraction
	bandH := r.H / dockBandFraction
	switch {
	case x < r.X+bandW:
		return layout.RegionLeft
	case x >= r.X+r.W-bandW:
		return layout.RegionRight
	case y < r.Y+bandH:
		return layout.RegionTop
	case y >= r.Y+r.H-bandH:
		return layout.RegionBottom
	default:
		return layout.RegionCenter
	}
}

// highlightRect is the half of the target the drop would occupy, or the
// whole rect for a center (tab join) drop.
func highlightRect(r Rect, region layout.Region) Rect {
	switch region {
	case layout.RegionLeft:
		return Rect{X: r.X, Y: r.Y, W: r.W / 2, H: r.H}
	case layout.RegionRight:
		return Rect{X: r.X + r.W/2, Y: r.Y, W: r.W - r.W/2, H: r.H}
	case layout.RegionTop:
		return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H / 2}
	case layout.RegionBottom:
		return Rect{X: r.X, Y: r.Y + r.H/2, W: r.W, H: r.H - r.H/2}
	default:
		return r
	}
}

func (w *Workspace) commitDock(s *interactionSession) {
	drop := s.drop
	if drop == nil {
		w.onRender()
		return
	}
	if drop.Header {
		w.PinPanel(s.panelID)
		return
	}
	w.MovePanel(s.panelID, layout.Placement{Region: drop.Region}, drop.PanelID)
}

// reorderTargetAt picks the sibling slot under the pointer. A child rect
// containing the pointer wins outright; otherwise the slot is inferred from
// how many sibling midpoints the pointer has passed along the split axis.
func (w *Workspace) reorderTargetAt(s *interactionSession, x, y int) {
	if w.geom == nil {
		return
	}
	split := layout.FindEnclosingSplit(w.root, s.panelID)
	if split == nil {
		return
	}
	horizontal := split.Direction == layout.DirectionHorizontal
	pos := y
	if horizontal {
		pos = x
	}
	passed := 0
	for i := range split.Children {
		r, ok := w.geom.SplitChildRect(split.SplitID, i)
		if !ok {
			return
		}
		if r.Contains(x, y) {
			s.target = i
			return
		}
		mid := r.Y + r.H/2
		if horizontal {
			mid = r.X + r.W/2
		}
		if pos > mid {
			passed++
		}
	}
	if passed > len(split.Children)-1 {
		passed = len(split.Children) - 1
	}
	s.target = passed
}

func (w *Workspace) commitReorder(s *interactionSession) {
	split := layout.FindEnclosingSplit(w.root, s.panelID)
	if split == nil {
		w.onRender()
		return
	}
	from := siblingIndex(split, s.panelID)
	to := s.target
	if from < 0 || to < 0 || to >= len(split.Children) || from == to {
		w.onRender()
		return
	}
	clone := w.root.Clone()
	target := layout.FindSplit(clone, split.SplitID)
	if target == nil {
		w.onRender()
		return
	}
	child := target.Children[from]
	size := target.Sizes[from]
	target.Children = append(target.Children[:from], target.Children[from+1:]...)
	target.Sizes = append(target.Sizes[:from], target.Sizes[from+1:]...)
	target.Children = append(target.Children[:to], append([]*layout.Node{child}, target.Children[to:]...)...)
	target.Sizes = append(target.Sizes[:to], append([]float64{size}, target.Sizes[to:]...)...)
	w.root = clone
	w.afterMutation()
}

// siblingIndex returns the index of the child branch containing the panel.
func siblingIndex(split *layout.Node, panelID string) int {
	for i, c := range split.Children {
		if layout.ContainsPanel(c, panelID) {
			return i
		}
	}
	return -1
}
