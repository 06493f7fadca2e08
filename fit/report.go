// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvfit/chisq"
)

// hessianStep is the central-difference step in units of each parameter's
// own magnitude (1 for parameters that are exactly zero).
const hessianStep = 1e-4

// Report is a goodness-of-fit summary of a Result.
type Report struct {
	// Chi2 is χ²(θ̂) recomputed from the data.
	Chi2 float64

	// DOF is M − N (may be ≤ 0 for under-determined fits).
	DOF int

	// ReducedChi2 is Chi2/DOF; NaN when DOF ≤ 0.
	ReducedChi2 float64

	// PValue is P(χ²_DOF ≥ Chi2); NaN when DOF ≤ 0.
	PValue float64

	// Residuals are the normalized residuals (y_i − f_i)/dy_i.
	Residuals []float64
}

// Summarize computes goodness-of-fit statistics for res.
//
// Errors: ErrUndefinedFit when res carries the NaN sentinel; ErrInputShape
// for bad observations or a failing model.
func Summarize(x, y, dy []float64, model chisq.ModelFunc, res Result, opts ...Option) (rep Report, err error) {
	o := gatherOptions(opts)
	log := o.logger.WithStage("summary").WithDims(len(res.Params))

	defer func() {
		if r := recover(); r != nil {
			rep = Report{}
			err = fmt.Errorf("%w: recovered: %v", ErrInputShape, r)
		}
		if err != nil {
			log.Error("summary failed", "error", err)
		}
	}()

	if !res.Defined() {
		return Report{}, ErrUndefinedFit
	}
	obs, err := chisq.NewObservations(x, y, dy)
	if err != nil {
		return Report{}, err
	}
	residuals, err := chisq.Residuals(res.Params, obs, model, o.constants)
	if err != nil {
		return Report{}, err
	}

	var c2 float64
	for _, r := range residuals {
		c2 += r * r
	}
	rep = Report{
		Chi2:        c2,
		DOF:         chisq.DegreesOfFreedom(obs.Len(), len(res.Params)),
		ReducedChi2: math.NaN(),
		PValue:      math.NaN(),
		Residuals:   residuals,
	}
	if rep.DOF > 0 {
		rep.ReducedChi2 = c2 / float64(rep.DOF)
		rep.PValue = distuv.ChiSquared{K: float64(rep.DOF)}.Survival(c2)
	} else {
		log.Warn("no degrees of freedom left", "observations", obs.Len(), "params", len(res.Params))
	}

	return rep, nil
}

// StandardErrors returns the curvature-based 1σ errors sqrt(diag(2·H⁻¹)) at
// best, where H is the central-difference Hessian of χ².
//
// Near a minimum χ² ≈ χ²_min + ½·δᵀHδ, so 2·H⁻¹ is the parameter covariance.
// This complements the mesh envelope: it accounts for correlations but
// assumes the surface is quadratic.
//
// Errors:
//   - ErrUndefinedFit: best contains NaN or ±Inf.
//   - ErrInputShape: bad observations or a failing model.
//   - ErrSingularCurvature: H is not positive definite (flat or saddle).
func StandardErrors(x, y, dy []float64, model chisq.ModelFunc, best []float64, opts ...Option) (se []float64, err error) {
	o := gatherOptions(opts)
	log := o.logger.WithStage("curvature").WithDims(len(best))

	defer func() {
		if r := recover(); r != nil {
			se = nanVector(len(best))
			err = fmt.Errorf("%w: recovered: %v", ErrInputShape, r)
		}
		if err != nil {
			log.Error("standard errors failed", "error", err)
		}
	}()

	if len(best) == 0 || !defined(best, 0) {
		return nanVector(len(best)), ErrUndefinedFit
	}
	obs, err := chisq.NewObservations(x, y, dy)
	if err != nil {
		return nanVector(len(best)), err
	}
	obj, err := chisq.NewObjective(obs, model, o.constants)
	if err != nil {
		return nanVector(len(best)), err
	}

	var evalErr error
	f := func(p []float64) float64 {
		v, err := obj.Eval(p)
		if err != nil {
			if evalErr == nil {
				evalErr = err
			}
			return math.NaN()
		}
		return v
	}

	// Differentiate g(u) = χ²(θ + s⊙u) so every parameter gets a step
	// relative to its own magnitude, then map back: H_jk = G_jk / (s_j·s_k).
	n := len(best)
	scale := make([]float64, n)
	for k, v := range best {
		scale[k] = math.Abs(v)
		if scale[k] == 0 {
			scale[k] = 1
		}
	}
	theta := make([]float64, n)
	g := func(u []float64) float64 {
		for k := range theta {
			theta[k] = best[k] + scale[k]*u[k]
		}
		return f(theta)
	}
	var h mat.SymDense
	fd.Hessian(&h, g, make([]float64, n), &fd.Settings{Formula: fd.Central, Step: hessianStep})
	if evalErr != nil {
		return nanVector(n), evalErr
	}
	for j := 0; j < n; j++ {
		for k := j; k < n; k++ {
			h.SetSym(j, k, h.At(j, k)/(scale[j]*scale[k]))
		}
	}
	log.Debug("hessian computed", "evaluations", obj.Evaluations())

	var chol mat.Cholesky
	if ok := chol.Factorize(&h); !ok {
		return nanVector(len(best)), ErrSingularCurvature
	}
	var inv mat.SymDense
	if err = chol.InverseTo(&inv); err != nil {
		return nanVector(len(best)), fmt.Errorf("%w: %w", ErrSingularCurvature, err)
	}

	se = make([]float64, len(best))
	for k := range se {
		v := 2 * inv.At(k, k)
		if !(v > 0) || math.IsInf(v, 0) {
			return nanVector(len(best)), ErrSingularCurvature
		}
		se[k] = math.Sqrt(v)
	}

	return se, nil
}
