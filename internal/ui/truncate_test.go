package ui

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello w…"},
		{"zero", "hello", 0, ""},
		{"one", "hello", 1, "…"},
		{"wide runes", "日本語テキスト", 7, "日本語…"},
		{"empty", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if w := runewidth.StringWidth(got); w > tt.width {
				t.Errorf("result width %d exceeds budget %d", w, tt.width)
			}
		})
	}
}

func TestTruncateKeepsGraphemesWhole(t *testing.T) {
	// Family emoji is one grapheme built from several runes.
	s := "a👨‍👩‍👧b"
	got := Truncate(s, 2)
	if got != "a…" {
		t.Errorf("Truncate = %q, want grapheme-safe %q", got, "a…")
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 4); runewidth.StringWidth(got) != 4 {
		t.Errorf("PadRight overflow: %q", got)
	}
}

func TestSplitExtentsSumExactly(t *testing.T) {
	tests := []struct {
		name   string
		sizes  []float64
		extent int
	}{
		{"halves", []float64{0.5, 0.5}, 81},
		{"thirds", []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, 100},
		{"skewed", []float64{0.05, 0.95}, 24},
		{"many", []float64{0.1, 0.2, 0.3, 0.4}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitExtents(tt.sizes, tt.extent)
			sum := 0
			for _, v := range got {
				if v < 0 {
					t.Errorf("negative extent in %v", got)
				}
				sum += v
			}
			if sum != tt.extent {
				t.Errorf("extents %v sum to %d, want %d", got, sum, tt.extent)
			}
		})
	}
}

func TestOverlaySplicesLines(t *testing.T) {
	base := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"
	got := overlay(base, "XX\nYY", 3, 1)
	lines := []string{"aaaaaaaaaa", "bbbXXbbbbb", "cccYYccccc"}
	for i, want := range lines {
		gotLines := splitLines(got)
		if gotLines[i] != want {
			t.Errorf("line %d = %q, want %q", i, gotLines[i], want)
		}
	}
}

func TestOverlayOutOfBoundsRowsIgnored(t *testing.T) {
	base := "aaaa"
	got := overlay(base, "X\nY\nZ", 0, 0)
	if splitLines(got)[0] != "Xaaa" {
		t.Errorf("first line = %q", splitLines(got)[0])
	}
	if len(splitLines(got)) != 1 {
		t.Error("overlay must not grow the base")
	}
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
