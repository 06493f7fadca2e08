// Package lvfit fits parametric models to measured data by chi-squared
// minimization and estimates parameter uncertainties by scanning a mesh of
// parameter space around the best fit.
//
// 🚀 What is inside?
//
//	• Objective: χ² = Σ ((y − f(x; θ)) / dy)² over validated observations
//	• Minimizer: Nelder–Mead (native fmin semantics or gonum/optimize)
//	• Mesh: N-d axes, strided grid, lazy row-major iterator, two memory modes
//	• Contour: points with χ² near χ²_min + Δχ², reduced to a per-axis envelope
//	• Extras: curvature standard errors, p-values, a model registry and a CLI
//
// ✨ Why lvfit?
//
//   - Small surface: Fit, EstimateUncertainty, Summarize, StandardErrors
//   - Never panics on bad data: NaN sentinels plus classified errors
//   - Silent by default, structured slog diagnostics when asked
//   - Built on gonum for the numerics
//
// Subpackages:
//
//	chisq/   — observations, model signature, χ² and the bound Objective
//	simplex/ — Nelder–Mead minimization with budgets and stopping status
//	mesh/    — axes, Grid, Iterator, Evaluate/Scan, Contour, Envelope
//	fit/     — public API, options, logging and metrics
//	models/  — built-in model functions (linear, gaussian, sine, …)
//	cmd/lvfit — command-line front end
//
// Quick ASCII picture of a 2-D contour (● = χ² in band, ✕ = best fit):
//
//	    · · ● ● · ·
//	    · ● · · ● ·
//	    · ● · ✕ ● ·
//	    · · ● ● · ·
//
// The envelope is the largest distance from ✕ to any ● along each axis.
//
//	go get github.com/katalvlaran/lvfit
package lvfit
