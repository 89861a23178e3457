package layout

import "math"

// minShare is the floor given to an entry that has no remainder left to
// claim. Normalization divides by the total afterwards, so the output still
// sums to 1.
const minShare = 1e-4

// NormalizeSizes repairs an arbitrary sizes slice into exactly count positive
// entries summing to 1. Entries that are missing, zero, negative, NaN or
// infinite receive an equal share of whatever the valid entries left
// unallocated. A nil or empty input yields equal shares.
func NormalizeSizes(sizes []float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	out := make([]float64, count)

	invalid := 0
	validSum := 0.0
	for i := range out {
		var v float64
		if i < len(sizes) {
			v = sizes[i]
		}
		if v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[i] = v
			validSum += v
		} else {
			out[i] = -1
			invalid++
		}
	}

	if invalid > 0 {
		share := (1 - validSum) / float64(invalid)
		if share <= 0 {
			share = minShare
		}
		for i := range out {
			if out[i] < 0 {
				out[i] = share
			}
		}
	}

	total := 0.0
	for _, v := range out {
		total += v
	}
	if total <= 0 {
		equal := 1 / float64(count)
		for i := range out {
			out[i] = equal
		}
		return out
	}
	for i := range out {
		out[i] /= total
	}
	return out
}
