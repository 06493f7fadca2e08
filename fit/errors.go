// SPDX-License-Identifier: MIT

package fit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvfit/chisq"
	"github.com/katalvlaran/lvfit/mesh"
	"github.com/katalvlaran/lvfit/simplex"
)

var (
	// ErrInputShape classifies malformed inputs: mismatched observation
	// lengths, bad dy, a model that rejects the parameter vector, invalid mesh
	// settings or a grid above the configured ceiling.
	// It is the same sentinel as chisq.ErrInputShape.
	ErrInputShape = chisq.ErrInputShape

	// ErrDegenerateSearch indicates the minimizer ended on a non-finite
	// objective (flat, broken or overflowing chi-squared).
	ErrDegenerateSearch = errors.New("fit: degenerate search")

	// ErrUndefinedFit indicates EstimateUncertainty or Summarize received an
	// undefined best fit (NaN parameters or chi-squared).
	ErrUndefinedFit = fmt.Errorf("%w: best fit is undefined", ErrInputShape)

	// ErrSingularCurvature indicates the chi-squared Hessian is not positive
	// definite at the best fit, so no curvature-based errors exist.
	ErrSingularCurvature = errors.New("fit: chi-squared curvature is not positive definite")
)

// classify maps lower-level errors onto the fit taxonomy while keeping the
// original error reachable through errors.Is.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInputShape), errors.Is(err, ErrDegenerateSearch):
		return err
	case errors.Is(err, simplex.ErrDegenerate):
		return fmt.Errorf("%w: %w", ErrDegenerateSearch, err)
	case errors.Is(err, simplex.ErrEmptyStart),
		errors.Is(err, simplex.ErrNonFiniteStart),
		errors.Is(err, simplex.ErrBadOptions),
		errors.Is(err, mesh.ErrEmptyCenter),
		errors.Is(err, mesh.ErrNonFinite),
		errors.Is(err, mesh.ErrBadPercentage),
		errors.Is(err, mesh.ErrBadResolution),
		errors.Is(err, mesh.ErrBadShape),
		errors.Is(err, mesh.ErrGridTooLarge),
		errors.Is(err, mesh.ErrDimensionMismatch),
		errors.Is(err, mesh.ErrIndexOutOfRange):
		return fmt.Errorf("%w: %w", ErrInputShape, err)
	default:
		return fmt.Errorf("%w: %w", ErrDegenerateSearch, err)
	}
}
