package layout

import (
	"math"
	"testing"
)

func checkNormalized(t *testing.T, got []float64, count int) {
	t.Helper()
	if len(got) != count {
		t.Fatalf("len = %d, want %d", len(got), count)
	}
	sum := 0.0
	for i, v := range got {
		if !(v > 0) {
			t.Errorf("entry %d = %v, want positive", i, v)
		}
		sum += v
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("sum = %v, want 1", sum)
	}
}

func TestNormalizeSizes(t *testing.T) {
	tests := []struct {
		name  string
		sizes []float64
		count int
	}{
		{"nil input", nil, 3},
		{"too short", []float64{0.5}, 4},
		{"too long", []float64{0.2, 0.2, 0.2, 0.2, 0.2}, 2},
		{"zero entries", []float64{0, 0, 0}, 3},
		{"negative entries", []float64{-1, 0.5, 0.5}, 3},
		{"nan entry", []float64{0.2, math.NaN(), 0.9}, 3},
		{"inf entry", []float64{math.Inf(1), 0.5}, 2},
		{"already normalized", []float64{0.25, 0.75}, 2},
		{"overcommitted", []float64{0.9, 0.9, math.NaN()}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkNormalized(t, NormalizeSizes(tt.sizes, tt.count), tt.count)
		})
	}
}

func TestNormalizeSizes_PreservesProportions(t *testing.T) {
	got := NormalizeSizes([]float64{1, 3}, 2)
	if math.Abs(got[0]-0.25) > 1e-9 || math.Abs(got[1]-0.75) > 1e-9 {
		t.Errorf("got %v, want [0.25 0.75]", got)
	}
}

func TestNormalizeSizes_InvalidsShareRemainder(t *testing.T) {
	got := NormalizeSizes([]float64{0.5, math.NaN(), math.NaN()}, 3)
	if math.Abs(got[1]-got[2]) > 1e-9 {
		t.Errorf("invalid entries should get equal shares, got %v", got)
	}
	if math.Abs(got[1]-0.25) > 1e-9 {
		t.Errorf("each invalid entry should get half the remainder, got %v", got)
	}
}

func TestNormalizeSizes_ZeroCount(t *testing.T) {
	if got := NormalizeSizes([]float64{0.5}, 0); got != nil {
		t.Errorf("expected nil for count 0, got %v", got)
	}
}
