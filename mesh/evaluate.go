// SPDX-License-Identifier: MIT

package mesh

import "fmt"

// Func evaluates the objective at a coordinate vector of length N.
// The slice is reused between calls; implementations must not retain it.
type Func func(point []float64) (float64, error)

// MemoryMode controls whether a scan materializes the full grid.
//
//   - FullGrid  — store all R^N values in a Grid. Memory: O(R^N).
//   - Streaming — iterate index tuples lazily; only the caller's visitor
//     decides what to keep. Memory: O(N).
type MemoryMode int

const (
	// FullGrid mode: materialize every value.
	FullGrid MemoryMode = iota

	// Streaming mode: evaluate on demand and discard.
	Streaming
)

// String returns "full" or "streaming".
func (m MemoryMode) String() string {
	switch m {
	case FullGrid:
		return "full"
	case Streaming:
		return "streaming"
	default:
		return "unknown"
	}
}

// ParseMemoryMode maps "full" / "streaming" to a MemoryMode.
func ParseMemoryMode(s string) (MemoryMode, error) {
	switch s {
	case "full", "":
		return FullGrid, nil
	case "streaming":
		return Streaming, nil
	default:
		return FullGrid, fmt.Errorf("mesh: unknown memory mode %q", s)
	}
}

// Evaluate computes f at every point of the Cartesian product of axes and
// returns the values as a Grid keyed by index tuple.
//
// Algorithm:
//  1. Allocate a Grid of shape (len(axes[0]), …, len(axes[N−1])).
//  2. Walk the tuples in row-major order; for tuple (i₁,…,i_N) build the point
//     (axes[1][i₁], …, axes[N][i_N]) and store f(point) at the same offset.
//
// Errors: ErrBadShape, ErrGridTooLarge, or the first error from f wrapped
// with the failing tuple.
//
// Complexity: O(R^N) calls to f, O(R^N) memory.
func Evaluate(axes Axes, f Func) (*Grid, error) {
	g, err := NewGrid(axes.Shape())
	if err != nil {
		return nil, err
	}

	off := 0
	err = Scan(axes, f, func(_ Index, v float64) error {
		g.data[off] = v
		off++
		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// Scan evaluates f lazily at every grid point and hands (idx, value) to
// visit in row-major order. Nothing is stored. The Index passed to visit is
// reused; Clone it to keep it. A non-nil error from visit stops the scan and
// is returned unchanged.
//
// Errors: ErrBadShape, ErrGridTooLarge, f's error (wrapped with the tuple), visit's error.
//
// Complexity: O(R^N) calls to f, O(N) memory.
func Scan(axes Axes, f Func, visit func(idx Index, v float64) error) error {
	shape := axes.Shape()
	if _, err := shape.Size(); err != nil {
		return err
	}

	var (
		it    = NewIterator(shape)
		point = make([]float64, len(axes))
		v     float64
		err   error
	)
	for it.Next() {
		idx := it.Index()
		for k, i := range idx {
			point[k] = axes[k][i]
		}
		if v, err = f(point); err != nil {
			return fmt.Errorf("mesh: evaluate at %v: %w", []int(idx), err)
		}
		if err = visit(idx, v); err != nil {
			return err
		}
	}

	return nil
}
