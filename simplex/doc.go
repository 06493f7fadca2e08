// SPDX-License-Identifier: MIT

// Package simplex minimizes a scalar function of N variables without
// derivatives, using the Nelder–Mead downhill simplex method.
//
// 🚀 What is Nelder–Mead?
//
//	The method keeps N+1 candidate points (a simplex) and repeatedly replaces
//	the worst vertex by reflecting it through the centroid of the others,
//	expanding when the reflection is very good, contracting when it is poor,
//	and shrinking the whole simplex toward the best vertex as a last resort.
//	It needs only function values, which makes it a natural driver for
//	chi-squared fits of arbitrary user models.
//
// ✨ Methods:
//   - Native — classic fmin semantics: initial simplex from 5% steps,
//     coefficients ρ=1 χ=2 ψ=½ σ=½, stops when both the vertex spread
//     (XTol) and the objective spread (FTol) fall below tolerance.
//     Vertices live in a gonum mat.Dense.
//   - Gonum  — delegates to gonum.org/v1/gonum/optimize.NelderMead with a
//     FunctionConverge converger; useful as a cross-check.
//
// ⚙️ Usage:
//
//	opts := simplex.DefaultOptions()
//	res, err := simplex.Minimize(func(x []float64) (float64, error) {
//		return (x[0]-3)*(x[0]-3) + (x[1]+1)*(x[1]+1), nil
//	}, []float64{0, 0}, opts)
//
// Budgets:
//
//	MaxIterations and MaxEvaluations default to 200·N (0 means "use default").
//	Hitting a budget is not an error: Result.Status reports which one fired.
//
// Errors:
//   - ErrEmptyStart / ErrNonFiniteStart — bad initial guess.
//   - ErrBadOptions                      — negative budgets or tolerances, unknown method.
//   - ErrDegenerate                      — best value is non-finite (flat or broken objective).
//   - any error returned by the objective is propagated unchanged.
package simplex
