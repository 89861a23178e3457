package ui

import "charm.land/lipgloss/v2"

// Color palette - Indigo + Teal theme
var (
	ColorPrimary     = lipgloss.Color("#6366F1") // Indigo
	ColorSecondary   = lipgloss.Color("#14B8A6") // Teal
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#6366F1") // Indigo when focused
	ColorBg          = lipgloss.Color("#111827") // Dark background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#9CA3AF") // Muted text
	ColorTextInverse = lipgloss.Color("#111827") // Dark text for light backgrounds
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber
	ColorError       = lipgloss.Color("#EF4444") // Red
	ColorSuccess     = lipgloss.Color("#10B981") // Green
	ColorDrop        = lipgloss.Color("#14B8A6") // Drop-highlight accent
)

// Header strip styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorBg).
			Padding(0, 1)

	HeaderChipStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	HeaderChipOpenStyle = lipgloss.NewStyle().
				Foreground(ColorTextInverse).
				Background(ColorPrimary).
				Padding(0, 1)

	HeaderDockHintStyle = lipgloss.NewStyle().
				Foreground(ColorTextInverse).
				Background(ColorDrop).
				Padding(0, 1)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	PanelTitleMutedStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)
)

// Tab bar styles
var (
	TabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTextInverse).
			Background(ColorPrimary).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Padding(0, 1)

	TabBarStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Drop highlight drawn while dragging a panel
var DropHighlightStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(ColorDrop).
	Foreground(ColorDrop)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Popover styles
var PopoverStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorSecondary)

// Placeholder panel styles
var EmptyHintStyle = lipgloss.NewStyle().
	Foreground(ColorTextMuted).
	Italic(true)
