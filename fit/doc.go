// SPDX-License-Identifier: MIT

// Package fit is the public entry point of lvfit: chi-squared model fitting
// with mesh-based ("1-sigma contour") parameter uncertainties.
//
// 🚀 Workflow:
//
//	res, err := fit.Fit(x, y, dy, []float64{1, 1}, model)
//	unc, err := fit.EstimateUncertainty(x, y, dy, model, res.Params, res.Chi2,
//		fit.WithPercentage(0.05), fit.WithResolution(60))
//
//	1. Fit minimizes χ²(θ) with Nelder–Mead (package simplex).
//	2. EstimateUncertainty samples every parameter over θ̂·(1±pct) with
//	   `resolution` points, evaluates χ² on the full Cartesian mesh, keeps the
//	   points with χ² ∈ [T−dt, T+dt] where T = χ²_min + ΔΧ² (default 1) and
//	   dt = factor·T (default 0.25), then reports per parameter the largest
//	   excursion from θ̂ among those points.
//
// ⚠️ Known approximations:
//   - dt = 0.25·T is a coarse heuristic band, not a calibrated confidence
//     interval; tune it with WithToleranceFactor.
//   - The envelope is a worst-case bound and overestimates the uncertainty of
//     correlated parameters. StandardErrors gives the curvature-based
//     complement.
//   - A zero-valued best-fit parameter has a collapsed axis and always reports
//     zero uncertainty (a Warn diagnostic is emitted).
//   - The mesh costs R^N model calls; WithMaxGridPoints caps it.
//
// Error policy ("best effort, report and continue"):
//
//	No function in this package panics or lets a model panic escape. Failures
//	return NaN-filled sentinel results together with an error that
//	matches ErrInputShape or ErrDegenerateSearch via errors.Is, and a
//	diagnostic is logged. An empty contour is not an error: the Uncertainty
//	status is NotFound and its values are zero.
//
// Logging is silent by default; pass WithLogger(fit.NewTextLogger(slog.LevelDebug))
// to see every stage.
package fit
