package ui

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/mosaicterm/mosaic/internal/layout"
	"github.com/mosaicterm/mosaic/internal/workspace"
)

// tabStop maps a rendered tab label to the panel it activates.
type tabStop struct {
	rect    workspace.Rect
	panelID string
}

// divider is a grabbable boundary between two split children.
type divider struct {
	rect    workspace.Rect
	splitID string
	index   int
}

// Renderer lays the workspace tree out into terminal cells and draws it. It
// doubles as the workspace geometry source: every rect it reports comes from
// the same pass that produced the last frame.
type Renderer struct {
	ws   *workspace.Workspace
	host *Host

	width  int
	height int

	panelRects map[string]workspace.Rect
	childRects map[string][]workspace.Rect
	chipRects  map[string]workspace.Rect
	tabStops   []tabStop
	dividers   []divider

	popoverRect workspace.Rect
	hasPopover  bool
	modalRect   workspace.Rect
	hasModal    bool
}

// NewRenderer wires a renderer to the workspace and widget host.
func NewRenderer(ws *workspace.Workspace, host *Host) *Renderer {
	return &Renderer{ws: ws, host: host}
}

// SetSize records the terminal size and informs the workspace.
func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.ws.SetContainerSize(layout.Size{Width: width, Height: height})
}

// bodyRect is the region the layout tree occupies.
func (r *Renderer) bodyRect() workspace.Rect {
	return workspace.Rect{
		X: 0,
		Y: HeaderHeight,
		W: r.width,
		H: r.height - HeaderHeight - FooterHeight,
	}
}

// Layout recomputes every rect from the current tree. Call before Render and
// before consuming geometry after a mutation.
func (r *Renderer) Layout() {
	r.panelRects = make(map[string]workspace.Rect)
	r.childRects = make(map[string][]workspace.Rect)
	r.chipRects = make(map[string]workspace.Rect)
	r.tabStops = nil
	r.dividers = nil
	r.hasPopover = false
	r.hasModal = false

	if r.width <= 0 || r.height <= 0 {
		return
	}
	r.layoutHeader()
	r.layoutNode(r.ws.Root(), r.bodyRect())
	r.layoutPopover()
	r.layoutModal()
	r.applySizes()
}

func (r *Renderer) layoutHeader() {
	x := 0
	for _, id := range r.ws.HeaderPanels() {
		title := "?"
		if p, ok := r.host.Panel(id); ok {
			title = p.Title()
		}
		w := lipgloss.Width(HeaderChipStyle.Render(title))
		r.chipRects[id] = workspace.Rect{X: x, Y: 0, W: w, H: 1}
		x += w
	}
}

func (r *Renderer) layoutNode(n *layout.Node, rect workspace.Rect) {
	if n == nil || rect.Empty() {
		return
	}
	if n.IsLeaf() {
		r.panelRects[n.PanelID] = rect
		return
	}
	if n.ViewMode == layout.ModeTabs {
		r.layoutTabs(n, rect)
		return
	}

	horizontal := n.Direction == layout.DirectionHorizontal
	extent := rect.H
	if horizontal {
		extent = rect.W
	}
	extents := splitExtents(n.Sizes, extent)
	rects := make([]workspace.Rect, len(n.Children))
	offset := 0
	for i, c := range n.Children {
		var cr workspace.Rect
		if horizontal {
			cr = workspace.Rect{X: rect.X + offset, Y: rect.Y, W: extents[i], H: rect.H}
		} else {
			cr = workspace.Rect{X: rect.X, Y: rect.Y + offset, W: rect.W, H: extents[i]}
		}
		rects[i] = cr
		offset += extents[i]
		r.layoutNode(c, cr)
	}
	r.childRects[n.SplitID] = rects

	// The boundary between adjacent children doubles as a resize handle.
	for i := 0; i < len(rects)-1; i++ {
		var dr workspace.Rect
		if horizontal {
			dr = workspace.Rect{X: rects[i].X + rects[i].W - 1, Y: rect.Y, W: 2, H: rect.H}
		} else {
			dr = workspace.Rect{X: rect.X, Y: rects[i].Y + rects[i].H - 1, W: rect.W, H: 2}
		}
		r.dividers = append(r.dividers, divider{rect: dr, splitID: n.SplitID, index: i})
	}
}

func (r *Renderer) layoutTabs(n *layout.Node, rect workspace.Rect) {
	content := workspace.Rect{X: rect.X, Y: rect.Y + TabBarHeight, W: rect.W, H: rect.H - TabBarHeight}
	rects := make([]workspace.Rect, len(n.Children))
	x := rect.X
	active := layout.ActiveBranch(n)
	for i, c := range n.Children {
		rects[i] = content
		label := r.tabLabel(c)
		w := lipgloss.Width(TabInactiveStyle.Render(label))
		if x+w <= rect.X+rect.W {
			r.tabStops = append(r.tabStops, tabStop{
				rect:    workspace.Rect{X: x, Y: rect.Y, W: w, H: 1},
				panelID: layout.FirstPanelID(c),
			})
		}
		x += w
		if c == active {
			r.layoutNode(c, content)
		}
	}
	r.childRects[n.SplitID] = rects
}

func (r *Renderer) tabLabel(branch *layout.Node) string {
	id := layout.FirstPanelID(branch)
	if p, ok := r.host.Panel(id); ok {
		return Truncate(p.Title(), 20)
	}
	return id
}

func (r *Renderer) layoutPopover() {
	id := r.ws.OpenPopoverID()
	if id == "" {
		return
	}
	size := r.ws.HeaderPanelSize(id)
	w := clamp(size.Width, PopoverMinWidth, maxInt(PopoverMinWidth, r.width))
	h := clamp(size.Height, PopoverMinHeight, maxInt(PopoverMinHeight, r.height-HeaderHeight))
	x := 0
	if chip, ok := r.chipRects[id]; ok {
		x = chip.X
	}
	if x+w > r.width {
		x = maxInt(0, r.width-w)
	}
	r.popoverRect = workspace.Rect{X: x, Y: HeaderHeight, W: w, H: h}
	r.hasPopover = true
}

func (r *Renderer) layoutModal() {
	if r.ws.ModalPanel() == nil {
		return
	}
	w := minInt(r.width-4, 60)
	h := minInt(r.height-4, 20)
	if w < 10 || h < 5 {
		w, h = r.width, r.height
	}
	r.modalRect = workspace.Rect{
		X: (r.width - w) / 2,
		Y: (r.height - h) / 2,
		W: w,
		H: h,
	}
	r.hasModal = true
}

// applySizes pushes content areas into the widgets.
func (r *Renderer) applySizes() {
	for id, rect := range r.panelRects {
		if p, ok := r.host.Panel(id); ok {
			p.SetSize(maxInt(1, rect.W-BorderSize), maxInt(1, rect.H-BorderSize-1))
		}
	}
	if r.hasPopover {
		if p, ok := r.host.Panel(r.ws.OpenPopoverID()); ok {
			p.SetSize(maxInt(1, r.popoverRect.W-BorderSize), maxInt(1, r.popoverRect.H-BorderSize))
		}
	}
	if r.hasModal {
		if m := r.ws.ModalPanel(); m != nil {
			if p, ok := r.host.Panel(m.PanelID); ok {
				p.SetSize(maxInt(1, r.modalRect.W-6), maxInt(1, r.modalRect.H-4))
			}
		}
	}
}

// Render draws the full frame. Layout must have run since the last change.
func (r *Renderer) Render() string {
	if r.width <= 0 || r.height <= 0 {
		return "Loading..."
	}
	body := r.renderNode(r.ws.Root(), r.bodyRect())
	frame := lipgloss.JoinVertical(
		lipgloss.Left,
		r.renderHeader(),
		body,
		r.renderFooter(),
	)
	if drop := r.ws.CurrentDropTarget(); drop != nil && !drop.Rect.Empty() && !drop.Header {
		frame = overlay(frame, renderDropHighlight(drop.Rect), drop.Rect.X, drop.Rect.Y)
	}
	if r.hasPopover {
		frame = overlay(frame, r.renderPopover(), r.popoverRect.X, r.popoverRect.Y)
	}
	if r.hasModal {
		frame = overlay(frame, r.renderModal(), r.modalRect.X, r.modalRect.Y)
	}
	return frame
}

func (r *Renderer) renderHeader() string {
	var chips []string
	openID := r.ws.OpenPopoverID()
	for _, id := range r.ws.HeaderPanels() {
		title := "?"
		if p, ok := r.host.Panel(id); ok {
			title = p.Title()
		}
		if id == openID {
			chips = append(chips, HeaderChipOpenStyle.Render(title))
		} else {
			chips = append(chips, HeaderChipStyle.Render(title))
		}
	}
	if drop := r.ws.CurrentDropTarget(); drop != nil && drop.Header {
		chips = append(chips, HeaderDockHintStyle.Render("⇱ pin here"))
	}
	line := strings.Join(chips, "")
	return HeaderStyle.Width(r.width).Render(line)
}

func (r *Renderer) renderFooter() string {
	hints := "tab: next panel  ctrl+w: close  ctrl+t: tabs  ctrl+o: chat  ctrl+s: settings  q: quit"
	return lipgloss.NewStyle().Foreground(ColorTextMuted).Width(r.width).Render(Truncate(hints, r.width))
}

func (r *Renderer) renderNode(n *layout.Node, rect workspace.Rect) string {
	if n == nil || rect.Empty() {
		return ""
	}
	if n.IsLeaf() {
		return r.renderPanelBox(n.PanelID, rect, false)
	}
	if n.ViewMode == layout.ModeTabs {
		bar := r.renderTabBar(n, rect.W)
		content := r.renderNode(layout.ActiveBranch(n), workspace.Rect{
			X: rect.X, Y: rect.Y + TabBarHeight, W: rect.W, H: rect.H - TabBarHeight,
		})
		return lipgloss.JoinVertical(lipgloss.Left, bar, content)
	}

	rects := r.childRects[n.SplitID]
	views := make([]string, len(n.Children))
	for i, c := range n.Children {
		views[i] = r.renderNode(c, rects[i])
	}
	if n.Direction == layout.DirectionHorizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func (r *Renderer) renderTabBar(n *layout.Node, width int) string {
	active := layout.ActiveBranch(n)
	var parts []string
	for _, c := range n.Children {
		label := r.tabLabel(c)
		if c == active {
			parts = append(parts, TabActiveStyle.Render(label))
		} else {
			parts = append(parts, TabInactiveStyle.Render(label))
		}
	}
	bar := strings.Join(parts, "")
	return TabBarStyle.Width(width).Render(ansi.Truncate(bar, width, ""))
}

func (r *Renderer) renderPanelBox(panelID string, rect workspace.Rect, borderless bool) string {
	if rect.W < MinPanelWidth || rect.H < MinPanelHeight {
		return lipgloss.NewStyle().Width(rect.W).Height(rect.H).Render("…")
	}
	p, ok := r.host.Panel(panelID)
	if !ok {
		return PanelStyle.Width(rect.W - BorderSize).Height(rect.H - BorderSize).Render("")
	}
	style := PanelStyle
	if p.Focused() {
		style = PanelFocusedStyle
	}
	titleStyle := PanelTitleMutedStyle
	if p.Focused() {
		titleStyle = PanelTitleStyle
	}
	inner := rect.W - BorderSize
	title := titleStyle.Render(Truncate(p.Title(), inner))
	content := lipgloss.NewStyle().
		Width(inner).
		MaxWidth(inner).
		Height(rect.H - BorderSize - 1).
		MaxHeight(rect.H - BorderSize - 1).
		Render(p.View())
	box := lipgloss.JoinVertical(lipgloss.Left, title, content)
	if borderless {
		return box
	}
	return style.Width(inner).Height(rect.H - BorderSize).Render(box)
}

func (r *Renderer) renderPopover() string {
	id := r.ws.OpenPopoverID()
	p, ok := r.host.Panel(id)
	if !ok {
		return ""
	}
	return PopoverStyle.
		Width(r.popoverRect.W - BorderSize).
		Height(r.popoverRect.H - BorderSize).
		Render(p.View())
}

func (r *Renderer) renderModal() string {
	m := r.ws.ModalPanel()
	if m == nil {
		return ""
	}
	p, ok := r.host.Panel(m.PanelID)
	if !ok {
		return ""
	}
	title := ModalTitleStyle.Render(p.Title())
	help := ModalHelpStyle.Render("enter: apply  esc: close")
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", p.View(), "", help)
	return ModalStyle.
		Width(r.modalRect.W - BorderSize).
		Height(r.modalRect.H - BorderSize).
		Render(body)
}

func renderDropHighlight(rect workspace.Rect) string {
	if rect.W < 2 || rect.H < 2 {
		return ""
	}
	return DropHighlightStyle.Width(rect.W - 2).Height(rect.H - 2).Render("")
}

// Geometry implementation.

func (r *Renderer) PanelRect(panelID string) (workspace.Rect, bool) {
	rect, ok := r.panelRects[panelID]
	return rect, ok
}

func (r *Renderer) SplitChildRect(splitID string, child int) (workspace.Rect, bool) {
	rects, ok := r.childRects[splitID]
	if !ok || child < 0 || child >= len(rects) {
		return workspace.Rect{}, false
	}
	return rects[child], true
}

func (r *Renderer) HeaderDockRect() workspace.Rect {
	return workspace.Rect{X: 0, Y: 0, W: r.width, H: HeaderHeight}
}

func (r *Renderer) ModalRect() (workspace.Rect, bool) {
	return r.modalRect, r.hasModal
}

func (r *Renderer) PanelAt(x, y int) (string, bool) {
	for id, rect := range r.panelRects {
		if rect.Contains(x, y) {
			return id, true
		}
	}
	return "", false
}

// OverlayOpen reports whether something above the modal wants escape and
// backdrop events. The terminal UI has no such surface.
func (r *Renderer) OverlayOpen() bool { return false }

// Extra hit tests the pointer router uses.

// DividerAt finds a resize handle under the pointer.
func (r *Renderer) DividerAt(x, y int) (splitID string, index int, ok bool) {
	for _, d := range r.dividers {
		if d.rect.Contains(x, y) {
			return d.splitID, d.index, true
		}
	}
	return "", 0, false
}

// TabAt finds a tab label under the pointer; the result is the panel the tab
// activates.
func (r *Renderer) TabAt(x, y int) (string, bool) {
	for _, ts := range r.tabStops {
		if ts.rect.Contains(x, y) {
			return ts.panelID, true
		}
	}
	return "", false
}

// HeaderChipAt finds a pinned-panel chip under the pointer.
func (r *Renderer) HeaderChipAt(x, y int) (string, bool) {
	for id, rect := range r.chipRects {
		if rect.Contains(x, y) {
			return id, true
		}
	}
	return "", false
}

// PopoverRect returns the open popover's rect.
func (r *Renderer) PopoverRect() (workspace.Rect, bool) {
	return r.popoverRect, r.hasPopover
}

// overlay splices over onto base at cell position (x, y), preserving ANSI
// styling on both sides of the seam.
func overlay(base, over string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(over, "\n")
	for i, ol := range overLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		bl := baseLines[row]
		w := ansi.StringWidth(ol)
		left := ansi.Truncate(bl, x, "")
		leftW := ansi.StringWidth(left)
		for leftW < x {
			left += " "
			leftW++
		}
		right := ansi.TruncateLeft(bl, x+w, "")
		baseLines[row] = left + ol + right
	}
	return strings.Join(baseLines, "\n")
}

// splitExtents converts normalized shares into integer extents that sum
// exactly to extent, accumulating rounding error instead of dropping it.
func splitExtents(sizes []float64, extent int) []int {
	out := make([]int, len(sizes))
	acc := 0.0
	used := 0
	for i, s := range sizes {
		acc += s * float64(extent)
		v := int(math.Round(acc)) - used
		if v < 0 {
			v = 0
		}
		out[i] = v
		used += v
	}
	if n := len(out); n > 0 {
		out[n-1] += extent - used
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
