// SPDX-License-Identifier: MIT

package mesh

import "math"

// Index is an N-tuple of grid indices (i₁,…,i_N).
type Index []int

// Clone returns an independent copy of idx.
func (idx Index) Clone() Index {
	return append(Index(nil), idx...)
}

// Shape holds the extent of every dimension.
type Shape []int

// Size returns the product of the extents, or ErrGridTooLarge when the
// product overflows int, or ErrBadShape for an empty shape or an extent < 1.
//
// Complexity: O(N).
func (s Shape) Size() (int, error) {
	if len(s) == 0 {
		return 0, ErrBadShape
	}
	size := 1
	for _, e := range s {
		if e < 1 {
			return 0, ErrBadShape
		}
		if size > math.MaxInt/e {
			return 0, ErrGridTooLarge
		}
		size *= e
	}

	return size, nil
}

// Strides returns row-major strides: stride[N−1] = 1,
// stride[k] = stride[k+1]·extent[k+1].
func (s Shape) Strides() []int {
	st := make([]int, len(s))
	acc := 1
	for k := len(s) - 1; k >= 0; k-- {
		st[k] = acc
		acc *= s[k]
	}

	return st
}

// Contains reports whether idx has the right length and every component lies
// within [0, extent).
//
// Complexity: O(N).
func (s Shape) Contains(idx Index) bool {
	if len(idx) != len(s) {
		return false
	}
	for k, i := range idx {
		if i < 0 || i >= s[k] {
			return false
		}
	}

	return true
}

// GridSize returns the number of points spanned by axes and enforces an
// optional ceiling (limit ≤ 0 disables it).
//
// Errors: ErrBadShape, ErrGridTooLarge.
func GridSize(axes Axes, limit int) (int, error) {
	size, err := axes.Shape().Size()
	if err != nil {
		return 0, err
	}
	if limit > 0 && size > limit {
		return size, ErrGridTooLarge
	}

	return size, nil
}
