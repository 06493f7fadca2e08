// SPDX-License-Identifier: MIT

// Package models is a small registry of ready-made chisq.ModelFunc values
// used by the lvfit command and handy in tests.
//
// Every model is vectorized over x and reads its parameters positionally;
// the names in Spec.Params document the order.
package models

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvfit/chisq"
)

// ErrUnknownModel is returned by Lookup for unregistered names.
var ErrUnknownModel = errors.New("models: unknown model")

// Spec describes one registered model.
type Spec struct {
	Name      string
	Formula   string
	Params    []string // positional parameter names
	Constants []string // optional constants, in order
	Func      chisq.ModelFunc
}

// NumParams returns the expected parameter vector length.
func (s Spec) NumParams() int { return len(s.Params) }

var registry = map[string]Spec{
	"linear": {
		Name:    "linear",
		Formula: "a·x + b",
		Params:  []string{"a", "b"},
		Func:    Linear,
	},
	"quadratic": {
		Name:    "quadratic",
		Formula: "a·x² + b·x + c",
		Params:  []string{"a", "b", "c"},
		Func:    Quadratic,
	},
	"exponential": {
		Name:    "exponential",
		Formula: "a·exp(b·x)",
		Params:  []string{"a", "b"},
		Func:    Exponential,
	},
	"gaussian": {
		Name:    "gaussian",
		Formula: "a·exp(−(x−mu)²/(2·s²))",
		Params:  []string{"a", "mu", "s"},
		Func:    Gaussian,
	},
	"powerlaw": {
		Name:    "powerlaw",
		Formula: "a·x^b",
		Params:  []string{"a", "b"},
		Func:    PowerLaw,
	},
	"sine": {
		Name:      "sine",
		Formula:   "a·sin(w·x + phi) [+ offset]",
		Params:    []string{"a", "w", "phi"},
		Constants: []string{"offset"},
		Func:      Sine,
	},
}

// Lookup returns the model registered under name.
func Lookup(name string) (Spec, error) {
	s, ok := registry[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownModel, name, Names())
	}

	return s, nil
}

// Names returns the registered names in ascending order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// All returns every registered Spec ordered by name.
func All() []Spec {
	names := Names()
	out := make([]Spec, len(names))
	for i, name := range names {
		out[i] = registry[name]
	}

	return out
}

// apply maps fn over x.
func apply(x []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = fn(xi)
	}

	return out
}

// Linear is a·x + b.
func Linear(x, p, _ []float64) []float64 {
	a, b := p[0], p[1]
	return apply(x, func(v float64) float64 { return a*v + b })
}

// Quadratic is a·x² + b·x + c.
func Quadratic(x, p, _ []float64) []float64 {
	a, b, c := p[0], p[1], p[2]
	return apply(x, func(v float64) float64 { return (a*v+b)*v + c })
}

// Exponential is a·exp(b·x).
func Exponential(x, p, _ []float64) []float64 {
	a, b := p[0], p[1]
	return apply(x, func(v float64) float64 { return a * math.Exp(b*v) })
}

// Gaussian is a·exp(−(x−mu)²/(2·s²)). s = 0 yields NaN away from mu.
func Gaussian(x, p, _ []float64) []float64 {
	a, mu, s := p[0], p[1], p[2]
	return apply(x, func(v float64) float64 {
		d := (v - mu) / s
		return a * math.Exp(-0.5*d*d)
	})
}

// PowerLaw is a·x^b. Non-positive x with a fractional b yields NaN.
func PowerLaw(x, p, _ []float64) []float64 {
	a, b := p[0], p[1]
	return apply(x, func(v float64) float64 { return a * math.Pow(v, b) })
}

// Sine is a·sin(w·x + phi), plus constants[0] when given.
func Sine(x, p, c []float64) []float64 {
	a, w, phi := p[0], p[1], p[2]
	var offset float64
	if len(c) > 0 {
		offset = c[0]
	}
	return apply(x, func(v float64) float64 { return a*math.Sin(w*v+phi) + offset })
}
