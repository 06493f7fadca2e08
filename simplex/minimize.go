// SPDX-License-Identifier: MIT

package simplex

// Minimize searches for the point minimizing f, starting from x0.
//
// Contract:
//   - x0 non-empty and finite; it is never modified.
//   - opts validated (see validate.go); budgets of 0 resolve to 200·N.
//
// Returns the best point, its value and the stopping reason. Hitting a
// budget is reported through Result.Status, not as an error.
//
// Errors: ErrEmptyStart, ErrNonFiniteStart, ErrBadOptions, ErrDegenerate,
// or the first error returned by f.
func Minimize(f Func, x0 []float64, opts Options) (Result, error) {
	maxIter, maxEval, err := validate(x0, opts)
	if err != nil {
		return Result{}, err
	}
	if f == nil {
		return Result{}, ErrBadOptions
	}

	start := append([]float64(nil), x0...)
	switch opts.Method {
	case Gonum:
		return gonumNelderMead(f, start, opts, maxIter, maxEval)
	default:
		return nelderMead(f, start, opts, maxIter, maxEval)
	}
}
