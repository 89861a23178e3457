package layout

// InsertPanel returns a new tree with panelID inserted relative to the panel
// named by targetID. An empty targetID (or an unknown one) makes the whole
// tree the target. containerSize is a hint for future size heuristics and may
// be zero.
//
// Center placement joins the target's enclosing tabs node when there is one,
// and otherwise converts the target into a new two-child tabs node with the
// inserted panel active. The directional regions divide space: when the
// target is itself a split running the same axis in split mode the new panel
// becomes an extra child with an equal share (siblings shrink
// proportionally); otherwise the target is wrapped in a new two-child split.
func InsertPanel(root *Node, panelID string, p Placement, targetID string, containerSize Size) *Node {
	_ = containerSize
	if root == nil {
		return NewLeaf(panelID)
	}
	tree := root.Clone()

	if targetID != "" && !ContainsPanel(tree, targetID) {
		targetID = ""
	}

	if p.Region == RegionCenter {
		return insertCenter(tree, panelID, targetID)
	}
	return insertSide(tree, panelID, p.Region, targetID)
}

func insertCenter(tree *Node, panelID, targetID string) *Node {
	if targetID != "" {
		if enclosing := FindEnclosingSplit(tree, targetID); enclosing != nil && enclosing.ViewMode == ModeTabs {
			enclosing.Children = append(enclosing.Children, NewLeaf(panelID))
			enclosing.Sizes = NormalizeSizes(nil, len(enclosing.Children))
			enclosing.ActiveID = panelID
			return tree
		}
	}

	target := resolveTarget(tree, targetID)
	if target == tree && tree.ViewMode == ModeTabs {
		// Root itself is a tabs node; join it rather than nesting.
		tree.Children = append(tree.Children, NewLeaf(panelID))
		tree.Sizes = NormalizeSizes(nil, len(tree.Children))
		tree.ActiveID = panelID
		return tree
	}

	tabs := NewSplit(DirectionHorizontal, ModeTabs, []*Node{target, NewLeaf(panelID)}, nil)
	tabs.ActiveID = panelID
	return replaceNode(tree, target, tabs)
}

func insertSide(tree *Node, panelID string, region Region, targetID string) *Node {
	dir := region.Direction()
	target := resolveTarget(tree, targetID)

	if !target.IsLeaf() && target.Direction == dir && target.ViewMode == ModeSplit {
		n := len(target.Children)
		scaled := make([]float64, 0, n+1)
		share := 1 / float64(n+1)
		factor := float64(n) / float64(n+1)
		leaf := NewLeaf(panelID)
		if region.before() {
			target.Children = append([]*Node{leaf}, target.Children...)
			scaled = append(scaled, share)
			for _, s := range target.Sizes {
				scaled = append(scaled, s*factor)
			}
		} else {
			target.Children = append(target.Children, leaf)
			for _, s := range target.Sizes {
				scaled = append(scaled, s*factor)
			}
			scaled = append(scaled, share)
		}
		target.Sizes = NormalizeSizes(scaled, len(target.Children))
		return tree
	}

	var children []*Node
	if region.before() {
		children = []*Node{NewLeaf(panelID), target}
	} else {
		children = []*Node{target, NewLeaf(panelID)}
	}
	split := NewSplit(dir, ModeSplit, children, nil)
	return replaceNode(tree, target, split)
}

// resolveTarget maps a target panel id to its leaf node, defaulting to the
// tree root when the id is empty.
func resolveTarget(tree *Node, targetID string) *Node {
	if targetID == "" {
		return tree
	}
	if leaf := findLeaf(tree, targetID); leaf != nil {
		return leaf
	}
	return tree
}

func findLeaf(n *Node, panelID string) *Node {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		if n.PanelID == panelID {
			return n
		}
		return nil
	}
	for _, c := range n.Children {
		if found := findLeaf(c, panelID); found != nil {
			return found
		}
	}
	return nil
}

// replaceNode swaps old (found by pointer identity) for repl, returning the
// new root. The sizes slot in the parent is untouched: the replacement
// inherits the replaced node's share of space.
func replaceNode(root, old, repl *Node) *Node {
	if root == old {
		return repl
	}
	replaceIn(root, old, repl)
	return root
}

func replaceIn(n, old, repl *Node) bool {
	for i, c := range n.Children {
		if c == old {
			n.Children[i] = repl
			return true
		}
		if !c.IsLeaf() && replaceIn(c, old, repl) {
			return true
		}
	}
	return false
}
