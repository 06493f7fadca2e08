// SPDX-License-Identifier: MIT

package chisq

import "fmt"

// ChiSquared returns Σ (yᵢ − f(xᵢ))² / dyᵢ² for the given parameter vector.
//
// Algorithm:
//  1. Call model(x, params, constants) once (vectorized), recovering panics.
//  2. Check the output length against len(x).
//  3. Accumulate the normalized squared residuals in observation order.
//
// The value may be NaN or +Inf when the model itself produces non-finite
// predictions; that is not an input-shape error and is left to the caller
// (the minimizer treats it as "worse than anything finite").
//
// Errors: ErrNilModel, ErrModelShape, ErrModelPanic (all wrap ErrInputShape).
//
// Complexity: O(n) plus one model call.
func ChiSquared(params []float64, obs Observations, model ModelFunc, constants []float64) (float64, error) {
	pred, err := predict(obs, model, params, constants)
	if err != nil {
		return 0, err
	}

	var (
		sum float64
		r   float64
		i   int
	)
	for i = range obs.y {
		r = (obs.y[i] - pred[i]) / obs.dy[i]
		sum += r * r
	}

	return sum, nil
}

// Residuals returns the normalized residuals (yᵢ − f(xᵢ)) / dyᵢ.
// Their squares sum to ChiSquared for the same inputs.
//
// Errors: same as ChiSquared.
func Residuals(params []float64, obs Observations, model ModelFunc, constants []float64) ([]float64, error) {
	pred, err := predict(obs, model, params, constants)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(pred))
	for i := range pred {
		out[i] = (obs.y[i] - pred[i]) / obs.dy[i]
	}

	return out, nil
}

// DegreesOfFreedom returns n − p, the number of observations minus the number
// of fitted parameters. The result may be zero or negative for
// under-determined fits; callers decide how to treat that.
func DegreesOfFreedom(observations, params int) int {
	return observations - params
}

// predict invokes the model and validates its output.
// A panic inside the model is converted into ErrModelPanic.
func predict(obs Observations, model ModelFunc, params, constants []float64) (pred []float64, err error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if obs.Len() == 0 {
		return nil, ErrEmptyObservations
	}

	defer func() {
		if r := recover(); r != nil {
			pred = nil
			err = fmt.Errorf("%w: %v", ErrModelPanic, r)
		}
	}()

	// The model works on private copies: writes to x, params or constants
	// must not reach the observations or the caller's search state.
	pred = model(
		append([]float64(nil), obs.x...),
		append([]float64(nil), params...),
		append([]float64(nil), constants...),
	)
	if len(pred) != len(obs.x) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrModelShape, len(pred), len(obs.x))
	}

	return pred, nil
}
