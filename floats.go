package ternary

import "math"

const Tolerance = 1e-6

// Equality is tolerance based. Gridline indices are multiples of a
// float step, and exact comparison would misclassify values that are
// one ulp off an edge.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// arange is the half-open range [start, stop) stepped by step. The
// element count is fixed up front as ceil((stop-start)/step), so a stop
// that is an exact multiple of the step is excluded while one that
// overshoots by less than a step is covered by the final element.
// Gridline and tick spacing depends on exactly these semantics.
func arange(start, stop, step float64) []float64 {
	if step <= 0 || stop <= start {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	vals := make([]float64, n)
	for k := range vals {
		vals[k] = start + float64(k)*step
	}
	return vals
}
