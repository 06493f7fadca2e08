// SPDX-License-Identifier: MIT

package simplex

import "math"

// validate checks the start point and options and resolves the budgets.
// It returns (maxIterations, maxEvaluations).
//
// Complexity: O(N).
func validate(x0 []float64, opts Options) (int, int, error) {
	n := len(x0)
	if n == 0 {
		return 0, 0, ErrEmptyStart
	}
	for _, v := range x0 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, ErrNonFiniteStart
		}
	}

	if opts.MaxIterations < 0 || opts.MaxEvaluations < 0 {
		return 0, 0, ErrBadOptions
	}
	if opts.XTol < 0 || opts.FTol < 0 || math.IsNaN(opts.XTol) || math.IsNaN(opts.FTol) {
		return 0, 0, ErrBadOptions
	}
	if opts.NonzeroDelta <= 0 || opts.ZeroDelta <= 0 {
		return 0, 0, ErrBadOptions
	}
	switch opts.Method {
	case Native, Gonum:
	default:
		return 0, 0, ErrBadOptions
	}

	maxIter := opts.MaxIterations
	if maxIter == 0 {
		maxIter = budgetPerDimension * n
	}
	maxEval := opts.MaxEvaluations
	if maxEval == 0 {
		maxEval = budgetPerDimension * n
	}

	return maxIter, maxEval, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
