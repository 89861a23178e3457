package ui

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Truncate shortens s to at most width display cells, appending an ellipsis
// when anything was cut. Grapheme clusters are never split.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	budget := width - 1 // reserve a cell for the ellipsis
	var out []byte
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)
		if used+w > budget {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out) + "…"
}

// PadRight pads s with spaces to exactly width display cells, truncating
// first if it is too long.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	for runewidth.StringWidth(s) < width {
		s += " "
	}
	return s
}
