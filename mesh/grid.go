// SPDX-License-Identifier: MIT

// Package mesh - Grid storage (row-major, N-dimensional) & safe accessors.
//
// Purpose:
//   - Hold one float64 per grid point in a flat buffer addressed by an Index
//     tuple through explicit strides: offset = Σ idx[k]·stride[k].
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Deterministic iteration (Each walks offsets in ascending order, which is
//     row-major tuple order).
//
// Complexity quicksheet:
//   - NewGrid: O(size) zero-init; At/Set/Offset: O(N); Unravel: O(N); Each: O(size·N).

package mesh

import "fmt"

// gridErrorf wraps a sentinel with the Grid method and the offending tuple.
func gridErrorf(method string, idx Index, err error) error {
	return fmt.Errorf("Grid.%s(%v): %w", method, []int(idx), err)
}

// Grid is a dense N-dimensional array of float64 values.
type Grid struct {
	shape   Shape
	strides []int
	data    []float64 // len == product(shape)
}

// NewGrid allocates a zero-filled grid of the given shape.
//
// Errors: ErrBadShape, ErrGridTooLarge.
func NewGrid(shape Shape) (*Grid, error) {
	size, err := shape.Size()
	if err != nil {
		return nil, err
	}

	return &Grid{
		shape:   append(Shape(nil), shape...),
		strides: shape.Strides(),
		data:    make([]float64, size),
	}, nil
}

// Dims returns the number of dimensions (N).
func (g *Grid) Dims() int { return len(g.shape) }

// Len returns the number of grid points (product of the extents).
func (g *Grid) Len() int { return len(g.data) }

// Shape returns a copy of the extents.
func (g *Grid) Shape() Shape { return append(Shape(nil), g.shape...) }

// Offset maps an index tuple to its flat offset.
//
// Errors: ErrIndexOutOfRange.
func (g *Grid) Offset(idx Index) (int, error) {
	if !g.shape.Contains(idx) {
		return 0, gridErrorf("Offset", idx, ErrIndexOutOfRange)
	}
	off := 0
	for k, i := range idx {
		off += i * g.strides[k]
	}

	return off, nil
}

// Unravel is the inverse of Offset: it writes the tuple for flat offset off
// into dst (allocated when too short) and returns it.
//
// Errors: ErrIndexOutOfRange when off ∉ [0, Len()).
func (g *Grid) Unravel(off int, dst Index) (Index, error) {
	if off < 0 || off >= len(g.data) {
		return nil, fmt.Errorf("Grid.Unravel(%d): %w", off, ErrIndexOutOfRange)
	}
	if cap(dst) < len(g.shape) {
		dst = make(Index, len(g.shape))
	}
	dst = dst[:len(g.shape)]
	for k, st := range g.strides {
		dst[k] = off / st
		off %= st
	}

	return dst, nil
}

// At returns the value stored at idx.
//
// Errors: ErrIndexOutOfRange.
func (g *Grid) At(idx Index) (float64, error) {
	off, err := g.Offset(idx)
	if err != nil {
		return 0, err
	}

	return g.data[off], nil
}

// Set stores v at idx.
//
// Errors: ErrIndexOutOfRange.
func (g *Grid) Set(idx Index, v float64) error {
	off, err := g.Offset(idx)
	if err != nil {
		return err
	}
	g.data[off] = v

	return nil
}

// Each calls fn for every point in row-major order. The Index passed to fn
// is reused between calls; Clone it to keep it. Iteration stops early when
// fn returns false.
func (g *Grid) Each(fn func(idx Index, v float64) bool) {
	it := NewIterator(g.shape)
	off := 0
	for it.Next() {
		if !fn(it.Index(), g.data[off]) {
			return
		}
		off++
	}
}
