// SPDX-License-Identifier: MIT

package chisq

// Objective binds observations, a model and known constants into the scalar
// function θ ↦ χ²(θ) that minimizers and mesh scans consume.
//
// Objective is not safe for concurrent use: Eval increments an evaluation
// counter without synchronization.
type Objective struct {
	obs       Observations
	model     ModelFunc
	constants []float64
	evals     int
}

// NewObjective validates the collaborators and returns a ready Objective.
// constants may be nil. The constants slice is copied.
//
// Errors: ErrNilModel, ErrEmptyObservations.
func NewObjective(obs Observations, model ModelFunc, constants []float64) (*Objective, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if obs.Len() == 0 {
		return nil, ErrEmptyObservations
	}

	return &Objective{
		obs:       obs,
		model:     model,
		constants: append([]float64(nil), constants...),
	}, nil
}

// Eval returns χ²(params). Every call invokes the model; nothing is cached.
func (o *Objective) Eval(params []float64) (float64, error) {
	o.evals++

	return ChiSquared(params, o.obs, o.model, o.constants)
}

// Evaluations returns how many times Eval has been called.
func (o *Objective) Evaluations() int { return o.evals }

// Observations returns the bound observation set.
func (o *Objective) Observations() Observations { return o.obs }
