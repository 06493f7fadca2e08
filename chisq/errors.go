// SPDX-License-Identifier: MIT

package chisq

import (
	"errors"
	"fmt"
)

// ErrInputShape is the umbrella sentinel for malformed inputs: mismatched
// observation lengths, model output of the wrong length, a model that cannot
// consume the parameter vector, or invalid uncertainties.
var ErrInputShape = errors.New("chisq: input shape error")

var (
	// ErrEmptyObservations indicates zero observations.
	ErrEmptyObservations = fmt.Errorf("%w: observations must be non-empty", ErrInputShape)

	// ErrLengthMismatch indicates x, y and dy differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: x, y and dy must have equal length", ErrInputShape)

	// ErrNonPositiveSigma indicates a zero or negative dy entry.
	ErrNonPositiveSigma = fmt.Errorf("%w: dy must be strictly positive", ErrInputShape)

	// ErrNonFinite indicates NaN or ±Inf among the observations.
	ErrNonFinite = fmt.Errorf("%w: NaN or Inf in observations", ErrInputShape)

	// ErrNilModel indicates a nil ModelFunc.
	ErrNilModel = fmt.Errorf("%w: model function is nil", ErrInputShape)

	// ErrModelShape indicates the model returned a slice whose length differs from len(x).
	ErrModelShape = fmt.Errorf("%w: model output length differs from x", ErrInputShape)

	// ErrModelPanic indicates the model panicked, usually because it indexed
	// past the parameter or constant slice it was given.
	ErrModelPanic = fmt.Errorf("%w: model function panicked", ErrInputShape)
)
