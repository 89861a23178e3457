package layout

import (
	"testing"
)

func TestRemovePanel_SoleLeafReturnsNil(t *testing.T) {
	if got := RemovePanel(NewLeaf("a"), "a"); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestRemovePanel_CollapsesSingleChildSplit(t *testing.T) {
	root := InsertPanel(NewLeaf("a"), "b", Placement{Region: RegionRight}, "", Size{})
	result := RemovePanel(root, "b")
	if !result.IsLeaf() || result.PanelID != "a" {
		t.Fatalf("expected collapse to leaf a, got %+v", result)
	}
}

func TestRemovePanel_TabsReassignsActive(t *testing.T) {
	root := InsertPanel(NewLeaf("a"), "b", Placement{Region: RegionCenter}, "a", Size{})
	root = InsertPanel(root, "c", Placement{Region: RegionCenter}, "a", Size{})
	if root.ActiveID != "c" {
		t.Fatalf("setup: active = %q", root.ActiveID)
	}
	result := RemovePanel(root, "c")
	if result.ActiveID != "a" {
		t.Errorf("active = %q, want a (first remaining child)", result.ActiveID)
	}
}

func TestRemovePanel_ScenarioCollapseAroundTabs(t *testing.T) {
	// Tree: A alone. Insert B right -> horizontal [A,B]. Insert C center at A
	// -> A's slot is tabs {A,C}. Remove B -> tree collapses to the tabs node.
	tree := NewLeaf("A")
	tree = InsertPanel(tree, "B", Placement{Region: RegionRight}, "", Size{})
	tree = InsertPanel(tree, "C", Placement{Region: RegionCenter}, "A", Size{})
	result := RemovePanel(tree, "B")

	if result.IsLeaf() || result.ViewMode != ModeTabs {
		t.Fatalf("expected tabs root after collapse, got %+v", result)
	}
	if !idsEqual(sortedIDs(result), []string{"A", "C"}) {
		t.Errorf("panels = %v, want [A C]", sortedIDs(result))
	}
	if result.ActiveID != "C" {
		t.Errorf("active = %q, want C", result.ActiveID)
	}
}

func TestRemovePanel_MissingPanelIsIdentity(t *testing.T) {
	root := InsertPanel(NewLeaf("a"), "b", Placement{Region: RegionRight}, "", Size{})
	result := RemovePanel(root, "ghost")
	if !idsEqual(sortedIDs(result), []string{"a", "b"}) {
		t.Errorf("panels = %v, want [a b]", sortedIDs(result))
	}
}

func TestMovePanel_RightToLeft(t *testing.T) {
	root := InsertPanel(NewLeaf("a"), "b", Placement{Region: RegionRight}, "", Size{})
	result := MovePanel(root, "b", Placement{Region: RegionLeft}, "a", Size{})
	if result.Children[0].PanelID != "b" {
		t.Errorf("expected b first after move, got %s", result.Children[0].PanelID)
	}
	if !idsEqual(sortedIDs(result), []string{"a", "b"}) {
		t.Errorf("panels = %v", sortedIDs(result))
	}
}

func TestMovePanel_SoleLeafIsIdentity(t *testing.T) {
	result := MovePanel(NewLeaf("a"), "a", Placement{Region: RegionRight}, "", Size{})
	if !result.IsLeaf() || result.PanelID != "a" {
		t.Fatalf("expected single leaf a, got %+v", result)
	}
}

func TestMovePanel_OntoItselfIsIdentity(t *testing.T) {
	root := InsertPanel(NewLeaf("a"), "b", Placement{Region: RegionRight}, "", Size{})
	result := MovePanel(root, "b", Placement{Region: RegionCenter}, "b", Size{})
	if !idsEqual(sortedIDs(result), []string{"a", "b"}) {
		t.Errorf("panels = %v, want [a b]", sortedIDs(result))
	}
}

func TestPrune_DropsUnknownLeaves(t *testing.T) {
	root := InsertPanel(NewLeaf("a"), "b", Placement{Region: RegionRight}, "", Size{})
	root = InsertPanel(root, "c", Placement{Region: RegionBottom}, "", Size{})

	keep := map[string]bool{"a": true, "c": true}
	result := Prune(root, func(id string) bool { return keep[id] })
	if !idsEqual(sortedIDs(result), []string{"a", "c"}) {
		t.Errorf("panels = %v, want [a c]", sortedIDs(result))
	}
	if err := Validate(result); err != nil {
		t.Errorf("pruned tree invalid: %v", err)
	}
}

func TestPrune_NothingSurvives(t *testing.T) {
	root := InsertPanel(NewLeaf("a"), "b", Placement{Region: RegionRight}, "", Size{})
	if got := Prune(root, func(string) bool { return false }); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}
