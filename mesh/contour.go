// SPDX-License-Identifier: MIT

package mesh

// Band is the closed interval [Target−HalfWidth, Target+HalfWidth].
//
// A negative HalfWidth is degenerate and contains nothing; an infinite
// HalfWidth contains every non-NaN value.
type Band struct {
	Target    float64
	HalfWidth float64
}

// Contains reports whether v lies in the band. NaN is never contained.
func (b Band) Contains(v float64) bool {
	if b.HalfWidth < 0 {
		return false
	}

	return v >= b.Target-b.HalfWidth && v <= b.Target+b.HalfWidth
}

// Contour returns the tuples of every grid point whose value lies in band,
// in row-major order. The result may be empty (nil).
//
// Complexity: O(R^N·N) time, O(N·|contour|) memory.
func Contour(g *Grid, band Band) []Index {
	if g == nil || band.HalfWidth < 0 {
		return nil
	}

	var out []Index
	g.Each(func(idx Index, v float64) bool {
		if band.Contains(v) {
			out = append(out, idx.Clone())
		}
		return true
	})

	return out
}

// ContourScan is the streaming counterpart of Evaluate followed by Contour:
// it evaluates f over the grid without storing values and keeps only the
// tuples inside band. It also returns the number of points visited.
//
// Errors: as Scan.
//
// Complexity: O(R^N) calls to f, O(N·|contour|) memory.
func ContourScan(axes Axes, f Func, band Band) ([]Index, int, error) {
	var (
		out     []Index
		visited int
	)
	err := Scan(axes, f, func(idx Index, v float64) error {
		visited++
		if band.Contains(v) {
			out = append(out, idx.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, visited, err
	}

	return out, visited, nil
}
