// SPDX-License-Identifier: MIT

package mesh

import "math"

// Envelope returns, for every dimension k, the largest |axes[k][idx[k]] − center[k]|
// over all contour tuples.
//
// This is a worst-case excursion along each axis among the mesh points in the
// band, not a statistical standard error: it overestimates the uncertainty of
// correlated parameters. An empty contour yields all zeros.
//
// Errors: ErrDimensionMismatch (len(center) ≠ len(axes)), ErrIndexOutOfRange.
//
// Complexity: O(N·|contour|).
func Envelope(center []float64, axes Axes, contour []Index) ([]float64, error) {
	if len(center) != len(axes) {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, len(center))
	shape := axes.Shape()

	var d float64
	for _, idx := range contour {
		if !shape.Contains(idx) {
			return nil, ErrIndexOutOfRange
		}
		for k, i := range idx {
			if d = math.Abs(axes[k][i] - center[k]); d > out[k] {
				out[k] = d
			}
		}
	}

	return out, nil
}
