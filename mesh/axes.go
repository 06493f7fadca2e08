// SPDX-License-Identifier: MIT

package mesh

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Axes holds one ordered sample sequence per parameter.
// axes[k][i] is the i-th sample along dimension k.
type Axes [][]float64

// Linspace returns n evenly spaced samples over [lo, hi], endpoints included.
// n == 1 yields [lo]. n < 1 yields nil.
//
// Complexity: O(n).
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n < 1:
		return nil
	case n == 1:
		return []float64{lo}
	}

	out := floats.Span(make([]float64, n), lo, hi)
	out[n-1] = hi // pin the endpoint against rounding in the step product

	return out
}

// BuildAxes samples every center value v over [v·(1−pct), v·(1+pct)] with
// resolution points per axis.
//
// Contract:
//   - len(center) ≥ 1, all finite;
//   - 0 < pct < 1;
//   - resolution ≥ 1.
//
// For v > 0 the axis increases from v·(1−pct) to v·(1+pct); for v < 0 it
// decreases (first sample is still v·(1−pct)); for v == 0 it is all zeros.
//
// Errors: ErrEmptyCenter, ErrNonFinite, ErrBadPercentage, ErrBadResolution.
//
// Complexity: O(N·R).
func BuildAxes(center []float64, pct float64, resolution int) (Axes, error) {
	if len(center) == 0 {
		return nil, ErrEmptyCenter
	}
	if math.IsNaN(pct) || pct <= 0 || pct >= 1 {
		return nil, ErrBadPercentage
	}
	if resolution < 1 {
		return nil, ErrBadResolution
	}

	axes := make(Axes, len(center))
	for k, v := range center {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
		axes[k] = Linspace(v*(1-pct), v*(1+pct), resolution)
	}

	return axes, nil
}

// Dims returns the number of axes (N).
func (a Axes) Dims() int { return len(a) }

// Shape returns the per-axis sample counts.
func (a Axes) Shape() Shape {
	s := make(Shape, len(a))
	for k := range a {
		s[k] = len(a[k])
	}

	return s
}

// ZeroAxes lists the dimensions whose samples are all zero, i.e. axes built
// around a zero center. Such axes cannot produce a non-zero deviation.
func (a Axes) ZeroAxes() []int {
	var out []int
	for k, ax := range a {
		zero := true
		for _, v := range ax {
			if v != 0 {
				zero = false
				break
			}
		}
		if zero {
			out = append(out, k)
		}
	}

	return out
}

// Point writes the coordinate of grid point idx into dst and returns it.
// dst is allocated when nil or too short. Component k is axes[k][idx[k]],
// for every dimension simultaneously (outer-product semantics).
//
// Errors: ErrIndexOutOfRange.
//
// Complexity: O(N).
func (a Axes) Point(idx Index, dst []float64) ([]float64, error) {
	if len(idx) != len(a) {
		return nil, ErrIndexOutOfRange
	}
	if cap(dst) < len(a) {
		dst = make([]float64, len(a))
	}
	dst = dst[:len(a)]
	for k, i := range idx {
		if i < 0 || i >= len(a[k]) {
			return nil, ErrIndexOutOfRange
		}
		dst[k] = a[k][i]
	}

	return dst, nil
}
