// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// gonumConvergeWindow is the number of major iterations without an FTol
// improvement after which gonum's FunctionConverge declares convergence.
const gonumConvergeWindow = 50

// gonumNelderMead runs gonum's optimize.NelderMead under the same budgets.
//
// The gonum Problem.Func cannot return an error, so the first objective
// error is captured and every later call returns +Inf; the captured error
// is reported once Minimize returns.
func gonumNelderMead(f Func, x0 []float64, opts Options, maxIter, maxEval int) (Result, error) {
	var (
		evalErr error
		evals   int
	)
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			if evalErr != nil {
				return math.Inf(1)
			}
			evals++
			v, err := f(x)
			if err != nil {
				evalErr = err
				return math.Inf(1)
			}
			if math.IsNaN(v) {
				return math.Inf(1)
			}
			return v
		},
	}

	settings := &optimize.Settings{
		MajorIterations: maxIter,
		FuncEvaluations: maxEval,
		Converger: &optimize.FunctionConverge{
			Absolute:   opts.FTol,
			Iterations: gonumConvergeWindow,
		},
	}

	res, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if evalErr != nil {
		return Result{}, evalErr
	}
	if res == nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}

	var status Status
	switch res.Status {
	case optimize.FunctionConvergence, optimize.MethodConverge, optimize.Success:
		status = Converged
	case optimize.IterationLimit:
		status = IterationLimit
	case optimize.FunctionEvaluationLimit:
		status = EvaluationLimit
	default:
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrDegenerate, err)
		}
		status = Converged
	}
	if !isFinite(res.F) {
		return Result{}, ErrDegenerate
	}

	return Result{
		X:           append([]float64(nil), res.X...),
		F:           res.F,
		Iterations:  res.Stats.MajorIterations,
		Evaluations: evals,
		Status:      status,
	}, nil
}
