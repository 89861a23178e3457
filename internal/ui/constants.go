// Package ui renders the workspace: panel widgets, the split/tab tree, the
// pinned-panel header strip, and the modal overlay.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the pinned-panel strip in lines
	HeaderHeight = 1

	// FooterHeight is the height of the key-hint footer in lines
	FooterHeight = 1

	// TabBarHeight is the height of a tabs node's tab bar
	TabBarHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// MinPanelWidth is the narrowest a panel cell may get before its
	// content is replaced with an overflow marker
	MinPanelWidth = 6

	// MinPanelHeight is the shortest a panel cell may get
	MinPanelHeight = 3

	// TextareaHeight is the number of lines for the input panel textarea
	TextareaHeight = 3

	// DefaultWrapWidth is the wrap width used before the first resize
	DefaultWrapWidth = 80

	// PopoverMinWidth and PopoverMinHeight bound popover resizing
	PopoverMinWidth  = 20
	PopoverMinHeight = 5

	// SearchInputCharLimit bounds the search panel query length
	SearchInputCharLimit = 100
)
