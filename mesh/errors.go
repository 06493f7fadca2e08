// SPDX-License-Identifier: MIT

package mesh

import "errors"

// Sentinel errors for mesh operations.
var (
	// ErrEmptyCenter indicates a zero-length center vector.
	ErrEmptyCenter = errors.New("mesh: center must be non-empty")

	// ErrNonFinite indicates NaN or ±Inf in a center or axis sample.
	ErrNonFinite = errors.New("mesh: NaN or Inf encountered")

	// ErrBadPercentage indicates pct outside the open interval (0, 1).
	ErrBadPercentage = errors.New("mesh: percentage must be in (0, 1)")

	// ErrBadResolution indicates a resolution below 1.
	ErrBadResolution = errors.New("mesh: resolution must be ≥ 1")

	// ErrBadShape indicates an empty shape or a non-positive extent.
	ErrBadShape = errors.New("mesh: invalid shape")

	// ErrIndexOutOfRange indicates an index tuple of the wrong length or
	// with a component outside [0, extent).
	ErrIndexOutOfRange = errors.New("mesh: index out of range")

	// ErrGridTooLarge indicates R^N overflows int or exceeds the caller's ceiling.
	ErrGridTooLarge = errors.New("mesh: grid too large")

	// ErrDimensionMismatch indicates center/axes/index dimensionalities disagree.
	ErrDimensionMismatch = errors.New("mesh: dimension mismatch")
)
