// SPDX-License-Identifier: MIT

package chisq

import "math"

// ModelFunc predicts y for every x given the fitted parameters and the known
// constants. It must be deterministic, free of hidden state, and return a
// slice of exactly len(x) values. The slices it receives are copies, so
// writing to them has no effect outside the call.
//
// Example (straight line, params = [a, b]):
//
//	line := func(x, p, _ []float64) []float64 {
//		out := make([]float64, len(x))
//		for i, xi := range x {
//			out[i] = p[0]*xi + p[1]
//		}
//		return out
//	}
type ModelFunc func(x, params, constants []float64) []float64

// Observations is an immutable (x, y, dy) triple.
// Construct it with NewObservations; the zero value has no data.
type Observations struct {
	x, y, dy []float64
}

// NewObservations validates and deep-copies the three sequences.
//
// Contract:
//   - len(x) == len(y) == len(dy) > 0;
//   - every value finite;
//   - dy[i] > 0 (division by dy² must be defined).
//
// Errors: ErrEmptyObservations, ErrLengthMismatch, ErrNonFinite, ErrNonPositiveSigma.
//
// Complexity: O(n) time and memory.
func NewObservations(x, y, dy []float64) (Observations, error) {
	n := len(x)
	if n == 0 {
		return Observations{}, ErrEmptyObservations
	}
	if len(y) != n || len(dy) != n {
		return Observations{}, ErrLengthMismatch
	}

	var i int
	for i = 0; i < n; i++ {
		if !finite(x[i]) || !finite(y[i]) || !finite(dy[i]) {
			return Observations{}, ErrNonFinite
		}
		if dy[i] <= 0 {
			return Observations{}, ErrNonPositiveSigma
		}
	}

	return Observations{
		x:  append([]float64(nil), x...),
		y:  append([]float64(nil), y...),
		dy: append([]float64(nil), dy...),
	}, nil
}

// Len returns the number of observations.
func (o Observations) Len() int { return len(o.x) }

// X returns a copy of the abscissae.
func (o Observations) X() []float64 { return append([]float64(nil), o.x...) }

// Y returns a copy of the observed values.
func (o Observations) Y() []float64 { return append([]float64(nil), o.y...) }

// DY returns a copy of the uncertainties.
func (o Observations) DY() []float64 { return append([]float64(nil), o.dy...) }

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
