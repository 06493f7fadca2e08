// SPDX-License-Identifier: MIT

package fit

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvfit/chisq"
	"github.com/katalvlaran/lvfit/simplex"
)

// Result is the outcome of Fit.
type Result struct {
	// Params is the best-fit parameter vector θ̂. All NaN when the fit failed.
	Params []float64

	// Chi2 is χ²(θ̂). NaN when the fit failed.
	Chi2 float64

	// Iterations and Evaluations are the minimizer's counters.
	Iterations  int
	Evaluations int

	// Status tells which stopping rule fired. Only meaningful when Defined.
	Status simplex.Status
}

// Defined reports whether r carries a usable fit (no NaN sentinel).
func (r Result) Defined() bool {
	if len(r.Params) == 0 || math.IsNaN(r.Chi2) {
		return false
	}
	for _, p := range r.Params {
		if math.IsNaN(p) {
			return false
		}
	}

	return true
}

// failureHint picks the Error-level message for a failed Fit.
func failureHint(err error) string {
	if errors.Is(err, ErrInputShape) {
		return "fit failed; check the dimensions and values of your input arrays"
	}

	return "fit failed; the search did not reach a finite minimum, check the model and starting point"
}

// undefinedResult is the "fit failed" sentinel: n NaN parameters, NaN χ².
func undefinedResult(n int) Result {
	return Result{Params: nanVector(n), Chi2: math.NaN()}
}

func nanVector(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}

	return out
}

// Fit minimizes χ²(θ) = Σ ((y_i − f(x_i; θ, constants)) / dy_i)² over θ,
// starting from initial.
//
// Implementation:
//   - Stage 1: validate and copy (x, y, dy) into chisq.Observations.
//   - Stage 2: bind the model into a chisq.Objective.
//   - Stage 3: run simplex.Minimize with the configured backend and budgets.
//
// Behavior highlights:
//   - Never panics: a panicking model is reported as ErrInputShape.
//   - Hitting a budget is not an error; inspect Result.Status.
//   - Inputs are never mutated.
//
// Errors (all with Result.Params filled by NaN):
//   - ErrInputShape: mismatched lengths, non-positive dy, non-finite data or
//     start, a model that panics or returns a wrong-length slice.
//   - ErrDegenerateSearch: the objective is non-finite everywhere the simplex
//     went.
//
// Complexity:
//   - O(budget·M) model work, budget ≤ 200·N evaluations by default.
func Fit(x, y, dy, initial []float64, model chisq.ModelFunc, opts ...Option) (res Result, err error) {
	o := gatherOptions(opts)
	log := o.logger.WithStage("fit").WithDims(len(initial))
	start := time.Now()
	evaluations := 0

	defer func() {
		if r := recover(); r != nil {
			res = undefinedResult(len(initial))
			err = fmt.Errorf("%w: recovered: %v", ErrInputShape, r)
		}
		o.metrics.RecordFit(time.Since(start), evaluations, err)
		if err != nil {
			log.Error(failureHint(err), "error", err)
		}
	}()

	obs, err := chisq.NewObservations(x, y, dy)
	if err != nil {
		return undefinedResult(len(initial)), err
	}
	obj, err := chisq.NewObjective(obs, model, o.constants)
	if err != nil {
		return undefinedResult(len(initial)), err
	}

	log.Debug("minimizing", "method", o.search.Method.String(), "observations", obs.Len())
	sr, err := simplex.Minimize(obj.Eval, initial, o.search)
	evaluations = obj.Evaluations()
	if err != nil {
		return undefinedResult(len(initial)), classify(err)
	}

	res = Result{
		Params:      sr.X,
		Chi2:        sr.F,
		Iterations:  sr.Iterations,
		Evaluations: sr.Evaluations,
		Status:      sr.Status,
	}
	if sr.Status != simplex.Converged {
		log.Warn("minimizer stopped before convergence",
			"status", sr.Status.String(), "iterations", sr.Iterations, "evaluations", sr.Evaluations)
	}
	log.Debug("fit done", "chi2", res.Chi2, "iterations", res.Iterations, "evaluations", res.Evaluations)

	return res, nil
}
