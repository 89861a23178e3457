package layout

// CollectPanelIDs returns every panel id in the tree in pre-order.
func CollectPanelIDs(root *Node) []string {
	var ids []string
	walk(root, func(n *Node) {
		if n.IsLeaf() {
			ids = append(ids, n.PanelID)
		}
	})
	return ids
}

// CollectSplitIDs returns every split id in the tree in pre-order.
func CollectSplitIDs(root *Node) []string {
	var ids []string
	walk(root, func(n *Node) {
		if !n.IsLeaf() {
			ids = append(ids, n.SplitID)
		}
	})
	return ids
}

func walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		walk(c, fn)
	}
}

// CollectVisiblePanelIDs returns the panel ids reachable without crossing an
// inactive tabs branch. In a tabs node only the branch containing ActiveID
// (or the first branch, when ActiveID is unset) is descended.
func CollectVisiblePanelIDs(root *Node) []string {
	var ids []string
	collectVisible(root, &ids)
	return ids
}

func collectVisible(n *Node, ids *[]string) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		*ids = append(*ids, n.PanelID)
		return
	}
	if n.ViewMode == ModeTabs {
		collectVisible(activeBranch(n), ids)
		return
	}
	for _, c := range n.Children {
		collectVisible(c, ids)
	}
}

// activeBranch returns the child of a tabs node that is currently shown.
func activeBranch(n *Node) *Node {
	if len(n.Children) == 0 {
		return nil
	}
	if n.ActiveID != "" {
		for _, c := range n.Children {
			if ContainsPanel(c, n.ActiveID) {
				return c
			}
		}
	}
	return n.Children[0]
}

// ActiveBranch exposes the shown child of a tabs node for rendering.
func ActiveBranch(n *Node) *Node {
	if n == nil || n.IsLeaf() {
		return nil
	}
	return activeBranch(n)
}

// ContainsPanel reports whether the subtree holds a leaf with the given id.
func ContainsPanel(root *Node, panelID string) bool {
	return findLeaf(root, panelID) != nil
}

// FirstPanelID returns the first panel id in document order, or "" for a nil
// tree.
func FirstPanelID(root *Node) string {
	if root == nil {
		return ""
	}
	if root.IsLeaf() {
		return root.PanelID
	}
	for _, c := range root.Children {
		if id := FirstPanelID(c); id != "" {
			return id
		}
	}
	return ""
}

// FindEnclosingSplit returns the nearest split ancestor of the named leaf,
// found by a top-down search. Nil when the panel is absent or is the root.
func FindEnclosingSplit(root *Node, panelID string) *Node {
	if root == nil || root.IsLeaf() {
		return nil
	}
	for _, c := range root.Children {
		if c.IsLeaf() {
			if c.PanelID == panelID {
				return root
			}
			continue
		}
		if ContainsPanel(c, panelID) {
			return FindEnclosingSplit(c, panelID)
		}
	}
	return nil
}

// FindSplit returns the split node with the given id, or nil.
func FindSplit(root *Node, splitID string) *Node {
	var found *Node
	walk(root, func(n *Node) {
		if found == nil && !n.IsLeaf() && n.SplitID == splitID {
			found = n
		}
	})
	return found
}
