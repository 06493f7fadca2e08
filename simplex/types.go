// SPDX-License-Identifier: MIT

package simplex

import "errors"

// Sentinel errors.
var (
	// ErrEmptyStart indicates a zero-length initial guess.
	ErrEmptyStart = errors.New("simplex: initial point must be non-empty")

	// ErrNonFiniteStart indicates NaN or ±Inf in the initial guess.
	ErrNonFiniteStart = errors.New("simplex: initial point must be finite")

	// ErrBadOptions indicates an invalid Options combination.
	ErrBadOptions = errors.New("simplex: invalid options")

	// ErrDegenerate indicates the search ended on a non-finite objective value.
	ErrDegenerate = errors.New("simplex: degenerate search (non-finite objective)")
)

// Func is the objective: it maps a point to a scalar to be minimized.
// NaN results are treated as +Inf. A non-nil error aborts the search.
type Func func(x []float64) (float64, error)

// Method selects the Nelder–Mead implementation.
type Method int

const (
	// Native is the in-package Nelder–Mead with fmin termination rules.
	Native Method = iota

	// Gonum delegates to gonum.org/v1/gonum/optimize.NelderMead.
	Gonum
)

// String returns the lower-case method name used by the CLI and logs.
func (m Method) String() string {
	switch m {
	case Native:
		return "native"
	case Gonum:
		return "gonum"
	default:
		return "unknown"
	}
}

// ParseMethod maps "native" / "gonum" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "native", "":
		return Native, nil
	case "gonum":
		return Gonum, nil
	default:
		return Native, ErrBadOptions
	}
}

// Status reports why the search stopped.
type Status int

const (
	// Converged: vertex and value spreads are within tolerance.
	Converged Status = iota

	// IterationLimit: MaxIterations was reached first.
	IterationLimit

	// EvaluationLimit: MaxEvaluations was reached first.
	EvaluationLimit
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationLimit:
		return "iteration-limit"
	case EvaluationLimit:
		return "evaluation-limit"
	default:
		return "unknown"
	}
}

// Defaults mirror the classic fmin configuration.
const (
	DefaultXTol         = 1e-4    // absolute vertex spread tolerance
	DefaultFTol         = 1e-4    // absolute objective spread tolerance
	DefaultNonzeroDelta = 0.05    // relative step for non-zero start coordinates
	DefaultZeroDelta    = 0.00025 // absolute step for zero start coordinates
	budgetPerDimension  = 200     // default budget multiplier (200·N)
)

// Nelder–Mead coefficients (reflection, expansion, contraction, shrink).
const (
	rho   = 1.0
	chi   = 2.0
	psi   = 0.5
	sigma = 0.5
)

// Options configures Minimize.
//
// Fields:
//   - Method         — Native (default) or Gonum.
//   - MaxIterations  — iteration budget; 0 ⇒ 200·N.
//   - MaxEvaluations — objective-call budget; 0 ⇒ 200·N.
//   - XTol, FTol     — convergence tolerances (absolute).
//   - NonzeroDelta   — initial simplex: x0[k] *= 1+NonzeroDelta.
//   - ZeroDelta      — initial simplex: x0[k] = ZeroDelta when x0[k]==0.
type Options struct {
	Method         Method
	MaxIterations  int
	MaxEvaluations int
	XTol           float64
	FTol           float64
	NonzeroDelta   float64
	ZeroDelta      float64
}

// DefaultOptions returns the fmin-compatible configuration.
func DefaultOptions() Options {
	return Options{
		Method:       Native,
		XTol:         DefaultXTol,
		FTol:         DefaultFTol,
		NonzeroDelta: DefaultNonzeroDelta,
		ZeroDelta:    DefaultZeroDelta,
	}
}

// Result holds the outcome of a minimization.
type Result struct {
	// X is the best point found (length N).
	X []float64

	// F is the objective value at X.
	F float64

	// Iterations is the number of simplex iterations performed.
	Iterations int

	// Evaluations is the number of objective calls.
	Evaluations int

	// Status tells which stopping rule fired.
	Status Status
}
