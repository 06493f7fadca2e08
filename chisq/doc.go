// SPDX-License-Identifier: MIT

// Package chisq computes the chi-squared goodness-of-fit statistic of a
// parametric model against observed data with per-point uncertainties.
//
// What is chi-squared?
//
//	For observations (xᵢ, yᵢ, σᵢ) and a model f(x; θ, c) the statistic is
//
//	    χ²(θ) = Σᵢ (yᵢ − f(xᵢ; θ, c))² / σᵢ²
//
//	Lower is better; χ² = 0 means the model reproduces every observation.
//	θ are the fitted parameters, c the optional known constants.
//
// Key pieces:
//   - Observations — validated, immutable (x, y, dy) triple.
//   - ModelFunc    — caller-owned, vectorized model f(x, params, constants).
//   - ChiSquared   — one-shot evaluation.
//   - Objective    — binds data/model/constants into θ ↦ χ² for minimizers.
//
// Errors:
//
//	Every input-shape failure wraps ErrInputShape, so callers can match the
//	whole class with errors.Is(err, chisq.ErrInputShape) and still inspect the
//	precise cause (ErrLengthMismatch, ErrModelShape, ErrModelPanic, …).
//	A panicking model function is recovered; it never unwinds past this package.
//
// Complexity:
//
//	O(n) per evaluation plus the cost of one model call, where n = len(x).
//	No memoization: every Eval calls the model afresh.
package chisq
