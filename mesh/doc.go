// SPDX-License-Identifier: MIT

// Package mesh builds N-dimensional parameter grids around a best fit,
// evaluates an objective on every grid point, extracts the points whose value
// falls in a band around a target level (a contour), and reduces that contour
// to per-axis worst-case deviations.
//
// 🚀 Pipeline:
//
//	center θ̂ ─▶ BuildAxes ─▶ Axes (N × R samples)
//	                          │
//	                          ├─▶ Evaluate ─▶ Grid (R^N values) ─▶ Contour(band)
//	                          └─▶ Scan (lazy, streaming) ──────────▶ ContourScan(band)
//	                                                                    │
//	                                           Envelope(center, axes, contour)
//
// Indexing:
//
//	A grid point is an Index — a tuple (i₁,…,i_N) with 0 ≤ i_k < R. Its
//	coordinate is (axes[1][i₁], …, axes[N][i_N]): the full Cartesian product of
//	the axes, exactly the semantics of an N-dimensional meshgrid. Grid storage
//	is row-major with explicit strides (offset = Σ i_k·stride_k, the last axis
//	varying fastest); there is no string key and no recursive lookup.
//
// Memory modes:
//   - FullGrid  — materialize all R^N values in a Grid (O(R^N) memory).
//   - Streaming — walk the index tuples with an Iterator and keep only the
//     contour (O(N·|contour|) memory), recomputing nothing twice.
//
// Cost:
//
//	R^N objective evaluations in either mode. This grows explosively:
//	R=100 with N=4 is 10⁸ model calls. Use GridSize with a ceiling before
//	committing to a scan.
//
// Zero-valued centers:
//
//	An axis centered on 0 collapses to the single value 0 (the range is
//	v·(1±p)). Such an axis always yields a zero deviation; Axes.ZeroAxes
//	lists them so callers can warn.
package mesh
