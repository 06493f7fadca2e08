// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvfit/chisq"
	"github.com/katalvlaran/lvfit/mesh"
)

// UncertaintyStatus classifies an EstimateUncertainty outcome.
type UncertaintyStatus int

const (
	// Found: the contour is non-empty; Values holds the envelope.
	Found UncertaintyStatus = iota

	// NotFound: no mesh point fell in the band. Values is all zero. Increase
	// the resolution or the percentage range.
	NotFound

	// DegenerateInput: the inputs could not be meshed. Values is all NaN and
	// the returned error says why.
	DegenerateInput
)

// String implements fmt.Stringer.
func (s UncertaintyStatus) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not-found"
	case DegenerateInput:
		return "degenerate-input"
	default:
		return "unknown"
	}
}

// Uncertainty is the outcome of EstimateUncertainty.
type Uncertainty struct {
	// Values[k] is the largest |θ_k − θ̂_k| among mesh points in the band.
	Values []float64

	Status UncertaintyStatus

	// Target and HalfWidth describe the band [Target−HalfWidth, Target+HalfWidth].
	Target    float64
	HalfWidth float64

	// ContourSize is the number of mesh points in the band.
	ContourSize int

	// GridPoints is R^N, the number of mesh points evaluated.
	GridPoints int

	// ZeroAxes lists the parameters whose best-fit value is 0; their axis
	// collapses and their uncertainty is always 0.
	ZeroAxes []int
}

// EstimateUncertainty estimates per-parameter uncertainties around a best fit
// by exhaustive mesh search.
//
// Implementation:
//   - Stage 1: validate observations and the best fit.
//   - Stage 2: build one axis per parameter, θ̂_k·(1±pct) with R samples.
//   - Stage 3: evaluate χ² at all R^N points (FullGrid or Streaming).
//   - Stage 4: keep points with χ² ∈ [T−dt, T+dt], T = bestChi2 + Δχ²,
//     dt = factor·T.
//   - Stage 5: report the per-axis envelope of the kept points.
//
// Behavior highlights:
//   - An empty contour is a NotFound status with a nil error and a Warn log.
//   - bestChi2 is taken as given; it is not recomputed.
//   - Never panics.
//
// Errors (Status = DegenerateInput, Values all NaN):
//   - ErrInputShape: bad observations, an undefined best fit, a model that
//     fails on some mesh point, or a mesh larger than WithMaxGridPoints.
//
// Complexity:
//   - O(R^N·M) model work. Memory O(R^N) in FullGrid, O(N·|contour|) in
//     Streaming.
func EstimateUncertainty(
	x, y, dy []float64,
	model chisq.ModelFunc,
	best []float64,
	bestChi2 float64,
	opts ...Option,
) (u Uncertainty, err error) {
	o := gatherOptions(opts)
	log := o.logger.WithStage("mesh").WithDims(len(best))
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			u = degenerateUncertainty(len(best), u)
			err = fmt.Errorf("%w: recovered: %v", ErrInputShape, r)
		}
		o.metrics.RecordMesh(u.GridPoints, u.ContourSize, time.Since(start), err)
		if err != nil {
			log.Error("uncertainty estimation failed", "error", err)
		}
	}()

	u.Target = bestChi2 + o.deltaChi2
	u.HalfWidth = o.tolFactor * u.Target

	if !defined(best, bestChi2) {
		return degenerateUncertainty(len(best), u), ErrUndefinedFit
	}
	obs, err := chisq.NewObservations(x, y, dy)
	if err != nil {
		return degenerateUncertainty(len(best), u), err
	}
	obj, err := chisq.NewObjective(obs, model, o.constants)
	if err != nil {
		return degenerateUncertainty(len(best), u), err
	}

	axes, err := mesh.BuildAxes(best, o.pct, o.resolution)
	if err != nil {
		return degenerateUncertainty(len(best), u), classify(err)
	}
	if u.ZeroAxes = axes.ZeroAxes(); len(u.ZeroAxes) > 0 {
		log.Warn("zero-valued parameters have a collapsed axis; their uncertainty is 0",
			"axes", u.ZeroAxes)
	}
	if u.GridPoints, err = mesh.GridSize(axes, o.maxGridPoints); err != nil {
		return degenerateUncertainty(len(best), u), classify(err)
	}
	if u.GridPoints > largeGridPoints {
		log.Warn("large mesh", "points", u.GridPoints, "mode", o.mode.String())
	}

	band := mesh.Band{Target: u.Target, HalfWidth: u.HalfWidth}
	log.Debug("scanning mesh",
		"points", u.GridPoints, "target", band.Target, "halfWidth", band.HalfWidth, "mode", o.mode.String())

	contour, err := scanContour(axes, obj.Eval, band, o.mode)
	if err != nil {
		return degenerateUncertainty(len(best), u), classify(err)
	}
	u.ContourSize = len(contour)

	if u.Values, err = mesh.Envelope(best, axes, contour); err != nil {
		return degenerateUncertainty(len(best), u), classify(err)
	}
	if u.ContourSize == 0 {
		u.Status = NotFound
		log.Warn("failed to find uncertainties; check resolution and range",
			"pct", o.pct, "resolution", o.resolution)
		return u, nil
	}

	u.Status = Found
	log.Debug("contour found", "size", u.ContourSize, "evaluations", obj.Evaluations())

	return u, nil
}

// scanContour evaluates the mesh in the requested memory mode and returns
// the tuples inside band.
func scanContour(axes mesh.Axes, f mesh.Func, band mesh.Band, mode mesh.MemoryMode) ([]mesh.Index, error) {
	if mode == mesh.Streaming {
		contour, _, err := mesh.ContourScan(axes, f, band)
		return contour, err
	}

	g, err := mesh.Evaluate(axes, f)
	if err != nil {
		return nil, err
	}

	return mesh.Contour(g, band), nil
}

// degenerateUncertainty keeps the diagnostics gathered so far and replaces
// the values by the NaN sentinel.
func degenerateUncertainty(n int, u Uncertainty) Uncertainty {
	u.Values = nanVector(n)
	u.Status = DegenerateInput
	u.ContourSize = 0

	return u
}

// defined reports whether best is finite and chi2 is a finite, nonnegative
// chi-squared value.
func defined(best []float64, chi2 float64) bool {
	if !(chi2 >= 0) || math.IsInf(chi2, 1) {
		return false
	}
	for _, v := range best {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
