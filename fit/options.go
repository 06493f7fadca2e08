// SPDX-License-Identifier: MIT

// Package fit: functional configuration shared by Fit, EstimateUncertainty,
// Summarize and StandardErrors. This file defines:
//   - Option (functional setter over an unexported options struct),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that resolves the effective configuration.
//
// Every public entry point accepts the same ...Option list; options that do
// not apply to an operation are ignored by it (e.g. WithResolution in Fit).
package fit

import (
	"math"

	"github.com/katalvlaran/lvfit/mesh"
	"github.com/katalvlaran/lvfit/simplex"
)

// ---------- Defaults (single source of truth) ----------

// Mesh policy.
const (
	// DefaultPercentage is the half-width of every axis relative to θ̂_k.
	DefaultPercentage = 0.01

	// DefaultResolution is the number of samples per axis.
	DefaultResolution = 100

	// DefaultDeltaChi2 is added to χ²_min to obtain the contour target
	// (1 ⇒ the classic one-parameter 1σ level).
	DefaultDeltaChi2 = 1.0

	// DefaultToleranceFactor scales the target into the band half-width:
	// dt = factor·target.
	DefaultToleranceFactor = 0.25

	// DefaultMemoryMode materializes the full grid.
	DefaultMemoryMode = mesh.FullGrid

	// DefaultMaxGridPoints is the hard ceiling on R^N (≈16.7M points).
	DefaultMaxGridPoints = 1 << 24

	// largeGridPoints triggers a Warn diagnostic before evaluation.
	largeGridPoints = 1 << 20
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPercentageInvalid = "fit: WithPercentage: pct must be finite, in (0, 1)"
	panicResolutionInvalid = "fit: WithResolution: resolution must be ≥ 1"
	panicDeltaChi2Invalid  = "fit: WithDeltaChi2: delta must be finite, > 0"
	panicToleranceInvalid  = "fit: WithToleranceFactor: factor must be ≥ 0 and not NaN"
	panicMaxGridInvalid    = "fit: WithMaxGridPoints: limit must be ≥ 0"
	panicMemoryModeInvalid = "fit: WithMemoryMode: unknown mode"
	panicMethodInvalid     = "fit: WithMethod: unknown method"
	panicBudgetInvalid     = "fit: WithMaxIterations/WithMaxEvaluations: budget must be ≥ 0"
	panicTolerancesInvalid = "fit: WithTolerances: xtol and ftol must be finite, ≥ 0"
	panicConstantsInvalid  = "fit: WithConstants: constants must be finite"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error); applying an Option never fails.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	constants []float64 // forwarded verbatim to the model

	// minimizer
	search simplex.Options

	// mesh
	pct           float64         // DefaultPercentage
	resolution    int             // DefaultResolution
	deltaChi2     float64         // DefaultDeltaChi2
	tolFactor     float64         // DefaultToleranceFactor
	mode          mesh.MemoryMode // DefaultMemoryMode
	maxGridPoints int             // DefaultMaxGridPoints; 0 disables

	// ambient
	logger  *Logger
	metrics MetricsCollector
}

func defaultOptions() options {
	return options{
		search:        simplex.DefaultOptions(),
		pct:           DefaultPercentage,
		resolution:    DefaultResolution,
		deltaChi2:     DefaultDeltaChi2,
		tolFactor:     DefaultToleranceFactor,
		mode:          DefaultMemoryMode,
		maxGridPoints: DefaultMaxGridPoints,
		logger:        NoopLogger(),
		metrics:       NoopMetricsCollector{},
	}
}

// gatherOptions applies opts over the defaults. nil options are skipped.
func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ---------- Constructors (WithX) ----------

// WithConstants sets the known constants forwarded to the model on every
// call. The slice is copied.
func WithConstants(constants ...float64) Option {
	for _, c := range constants {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			panic(panicConstantsInvalid)
		}
	}
	cp := append([]float64(nil), constants...)

	return func(o *options) { o.constants = cp }
}

// WithPercentage sets the relative half-width of every mesh axis:
// axis k spans [θ̂_k·(1−pct), θ̂_k·(1+pct)].
//
// Panics unless 0 < pct < 1.
func WithPercentage(pct float64) Option {
	if math.IsNaN(pct) || pct <= 0 || pct >= 1 {
		panic(panicPercentageInvalid)
	}

	return func(o *options) { o.pct = pct }
}

// WithResolution sets the number of samples per axis (R). The mesh costs R^N
// model evaluations.
func WithResolution(resolution int) Option {
	if resolution < 1 {
		panic(panicResolutionInvalid)
	}

	return func(o *options) { o.resolution = resolution }
}

// WithDeltaChi2 sets Δχ² in target = χ²_min + Δχ².
func WithDeltaChi2(delta float64) Option {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
		panic(panicDeltaChi2Invalid)
	}

	return func(o *options) { o.deltaChi2 = delta }
}

// WithToleranceFactor sets the band half-width as a fraction of the target:
// dt = factor·target. +Inf keeps every finite mesh point; 0 keeps only exact
// hits.
func WithToleranceFactor(factor float64) Option {
	if math.IsNaN(factor) || factor < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tolFactor = factor }
}

// WithMemoryMode selects FullGrid (materialize R^N values) or Streaming
// (keep only contour indices).
func WithMemoryMode(mode mesh.MemoryMode) Option {
	if mode != mesh.FullGrid && mode != mesh.Streaming {
		panic(panicMemoryModeInvalid)
	}

	return func(o *options) { o.mode = mode }
}

// WithMaxGridPoints caps R^N. EstimateUncertainty refuses larger meshes with
// an ErrInputShape error. 0 disables the ceiling.
func WithMaxGridPoints(limit int) Option {
	if limit < 0 {
		panic(panicMaxGridInvalid)
	}

	return func(o *options) { o.maxGridPoints = limit }
}

// WithMethod selects the Nelder–Mead backend used by Fit.
func WithMethod(method simplex.Method) Option {
	if method != simplex.Native && method != simplex.Gonum {
		panic(panicMethodInvalid)
	}

	return func(o *options) { o.search.Method = method }
}

// WithMaxIterations sets the minimizer iteration budget (0 ⇒ 200·N).
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicBudgetInvalid)
	}

	return func(o *options) { o.search.MaxIterations = n }
}

// WithMaxEvaluations sets the minimizer objective-call budget (0 ⇒ 200·N).
func WithMaxEvaluations(n int) Option {
	if n < 0 {
		panic(panicBudgetInvalid)
	}

	return func(o *options) { o.search.MaxEvaluations = n }
}

// WithTolerances sets the absolute vertex (xtol) and value (ftol) spreads at
// which the minimizer stops. Both must hold.
func WithTolerances(xtol, ftol float64) Option {
	if math.IsNaN(xtol) || math.IsInf(xtol, 0) || xtol < 0 ||
		math.IsNaN(ftol) || math.IsInf(ftol, 0) || ftol < 0 {
		panic(panicTolerancesInvalid)
	}

	return func(o *options) {
		o.search.XTol = xtol
		o.search.FTol = ftol
	}
}

// WithLogger routes diagnostics to l. nil restores the silent default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector routes per-call metrics to mc. nil restores the no-op
// collector.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
