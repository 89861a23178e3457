package layout

import (
	"fmt"
	"math"
)

const sizesTolerance = 1e-6

// Validate checks the structural invariants of a persisted tree: leaves have
// panel ids, splits have at least two children with matching positive sizes
// summing to 1, and a tabs node's ActiveID (when set) is reachable through
// one of its children. Duplicate panel ids anywhere in the tree are rejected.
func Validate(root *Node) error {
	if root == nil {
		return fmt.Errorf("layout: tree is empty")
	}
	seen := make(map[string]bool)
	return validateNode(root, seen)
}

func validateNode(n *Node, seen map[string]bool) error {
	if n.IsLeaf() {
		if n.PanelID == "" {
			return fmt.Errorf("layout: leaf without panel id")
		}
		if seen[n.PanelID] {
			return fmt.Errorf("layout: duplicate panel id %q", n.PanelID)
		}
		seen[n.PanelID] = true
		return nil
	}

	if len(n.Children) < 2 {
		return fmt.Errorf("layout: split %q has %d children", n.SplitID, len(n.Children))
	}
	if n.Direction != DirectionHorizontal && n.Direction != DirectionVertical {
		return fmt.Errorf("layout: split %q has direction %q", n.SplitID, n.Direction)
	}
	if n.ViewMode != ModeSplit && n.ViewMode != ModeTabs {
		return fmt.Errorf("layout: split %q has view mode %q", n.SplitID, n.ViewMode)
	}
	if len(n.Sizes) != len(n.Children) {
		return fmt.Errorf("layout: split %q has %d sizes for %d children", n.SplitID, len(n.Sizes), len(n.Children))
	}
	for i, s := range n.Sizes {
		if !(s > 0) || math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("layout: split %q size %d is %v", n.SplitID, i, s)
		}
	}
	if sum := sizesSum(n.Sizes); math.Abs(sum-1) > sizesTolerance {
		return fmt.Errorf("layout: split %q sizes sum to %v", n.SplitID, sum)
	}
	if n.ViewMode == ModeTabs && n.ActiveID != "" && !ContainsPanel(n, n.ActiveID) {
		return fmt.Errorf("layout: tabs %q active panel %q unreachable", n.SplitID, n.ActiveID)
	}

	for _, c := range n.Children {
		if err := validateNode(c, seen); err != nil {
			return err
		}
	}
	return nil
}
