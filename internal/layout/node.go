// Package layout implements the pure tree data structure behind the panel
// workspace: a recursive arrangement of panel leaves and split nodes.
//
// Every operation in this package is side-effect free: inputs are never
// mutated, and mutating operations return a freshly built root. Callers must
// treat any previously held node reference as stale after applying one.
package layout

import (
	"math"

	"github.com/google/uuid"
)

// Direction is the axis along which a split divides its space.
type Direction string

const (
	DirectionHorizontal Direction = "horizontal"
	DirectionVertical   Direction = "vertical"
)

// ViewMode controls how a split presents its children: side by side with
// independent sizes, or stacked as tabs with a single active child shown.
type ViewMode string

const (
	ModeSplit ViewMode = "split"
	ModeTabs  ViewMode = "tabs"
)

// Region names the side of a target a panel is inserted at. Center joins or
// forms a tabs node instead of dividing space.
type Region string

const (
	RegionCenter Region = "center"
	RegionLeft   Region = "left"
	RegionRight  Region = "right"
	RegionTop    Region = "top"
	RegionBottom Region = "bottom"
)

// Direction returns the split axis a region implies. Center has no axis.
func (r Region) Direction() Direction {
	switch r {
	case RegionLeft, RegionRight:
		return DirectionHorizontal
	case RegionTop, RegionBottom:
		return DirectionVertical
	default:
		return ""
	}
}

// before reports whether the inserted panel goes in front of the target.
func (r Region) before() bool {
	return r == RegionLeft || r == RegionTop
}

// Placement describes where an insert or move lands relative to a target.
type Placement struct {
	Region Region `json:"region"`
}

// Size is a width/height pair in terminal cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Node is one vertex of the layout tree. A node is either a panel leaf
// (PanelID set, everything else zero) or a split (SplitID, Direction,
// ViewMode, Children and Sizes set; ActiveID only meaningful in tabs mode).
//
// Split invariant: len(Sizes) == len(Children), every entry positive, and
// the entries sum to 1 within floating point tolerance.
type Node struct {
	PanelID   string    `json:"panelId,omitempty"`
	SplitID   string    `json:"splitId,omitempty"`
	Direction Direction `json:"direction,omitempty"`
	ViewMode  ViewMode  `json:"viewMode,omitempty"`
	Children  []*Node   `json:"children,omitempty"`
	Sizes     []float64 `json:"sizes,omitempty"`
	ActiveID  string    `json:"activeId,omitempty"`
}

// NewLeaf returns a panel leaf node.
func NewLeaf(panelID string) *Node {
	return &Node{PanelID: panelID}
}

// NewSplit returns a split node with a fresh id. Sizes are normalized against
// the child count, so passing nil yields equal shares.
func NewSplit(dir Direction, mode ViewMode, children []*Node, sizes []float64) *Node {
	return &Node{
		SplitID:   uuid.NewString(),
		Direction: dir,
		ViewMode:  mode,
		Children:  children,
		Sizes:     NormalizeSizes(sizes, len(children)),
	}
}

// IsLeaf reports whether the node is a panel leaf.
func (n *Node) IsLeaf() bool {
	return n != nil && len(n.Children) == 0
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		PanelID:   n.PanelID,
		SplitID:   n.SplitID,
		Direction: n.Direction,
		ViewMode:  n.ViewMode,
		ActiveID:  n.ActiveID,
	}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	if len(n.Sizes) > 0 {
		out.Sizes = make([]float64, len(n.Sizes))
		copy(out.Sizes, n.Sizes)
	}
	return out
}

// sizesEqual is a tolerance compare used by tests and validation.
func sizesSum(sizes []float64) float64 {
	var sum float64
	for _, s := range sizes {
		if !math.IsNaN(s) && !math.IsInf(s, 0) {
			sum += s
		}
	}
	return sum
}
