package layout

// RemovePanel returns a new tree with the named leaf removed. A split left
// with a single child collapses into that child, and a tabs node whose
// active branch disappears adopts the first panel of its remaining children.
// The result is nil only when panelID was the tree's sole leaf.
func RemovePanel(root *Node, panelID string) *Node {
	if root == nil {
		return nil
	}
	return removeFrom(root.Clone(), panelID)
}

func removeFrom(n *Node, panelID string) *Node {
	if n.IsLeaf() {
		if n.PanelID == panelID {
			return nil
		}
		return n
	}

	children := n.Children[:0]
	sizes := make([]float64, 0, len(n.Sizes))
	for i, c := range n.Children {
		kept := removeFrom(c, panelID)
		if kept == nil {
			continue
		}
		children = append(children, kept)
		if i < len(n.Sizes) {
			sizes = append(sizes, n.Sizes[i])
		}
	}
	n.Children = children

	switch len(n.Children) {
	case 0:
		return nil
	case 1:
		// Splits are never kept with a single child; the child takes the
		// split's place (and its share of the parent, handled by the caller).
		return n.Children[0]
	}

	n.Sizes = NormalizeSizes(sizes, len(n.Children))
	if n.ViewMode == ModeTabs && n.ActiveID != "" && !ContainsPanel(n, n.ActiveID) {
		n.ActiveID = FirstPanelID(n.Children[0])
	}
	return n
}

// MovePanel relocates a single leaf: it is removed and then re-inserted at
// the requested placement. Subtrees never move as a unit.
func MovePanel(root *Node, panelID string, p Placement, targetID string, containerSize Size) *Node {
	if root == nil || !ContainsPanel(root, panelID) {
		return root.Clone()
	}
	if panelID == targetID {
		return root.Clone()
	}
	pruned := RemovePanel(root, panelID)
	return InsertPanel(pruned, panelID, p, targetID, containerSize)
}

// Prune drops every leaf whose id fails keep, collapsing splits the same way
// removal does. Used to discard panels without a backing instance when
// loading a persisted tree. Returns nil when nothing survives.
func Prune(root *Node, keep func(panelID string) bool) *Node {
	if root == nil {
		return nil
	}
	return pruneFrom(root.Clone(), keep)
}

func pruneFrom(n *Node, keep func(string) bool) *Node {
	if n.IsLeaf() {
		if keep(n.PanelID) {
			return n
		}
		return nil
	}

	children := n.Children[:0]
	sizes := make([]float64, 0, len(n.Sizes))
	for i, c := range n.Children {
		kept := pruneFrom(c, keep)
		if kept == nil {
			continue
		}
		children = append(children, kept)
		if i < len(n.Sizes) {
			sizes = append(sizes, n.Sizes[i])
		}
	}
	n.Children = children

	switch len(n.Children) {
	case 0:
		return nil
	case 1:
		return n.Children[0]
	}

	n.Sizes = NormalizeSizes(sizes, len(n.Children))
	if n.ViewMode == ModeTabs && n.ActiveID != "" && !ContainsPanel(n, n.ActiveID) {
		n.ActiveID = FirstPanelID(n.Children[0])
	}
	return n
}
