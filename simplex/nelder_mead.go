// SPDX-License-Identifier: MIT

package simplex

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// nelderMead — native downhill simplex.
//
// Algorithm Outline:
//  1. Build the initial simplex: row 0 = x0, row k+1 = x0 with coordinate k
//     scaled by (1+NonzeroDelta), or set to ZeroDelta when x0[k]==0.
//  2. Evaluate all N+1 vertices and sort ascending by value.
//  3. Loop while evaluations < maxEval and iterations < maxIter:
//     a. stop if max|xᵢ−x₀| ≤ XTol and max|f₀−fᵢ| ≤ FTol;
//     b. centroid x̄ of the N best vertices, d = x̄ − x_worst;
//     c. reflect xr = x̄ + ρ·d;
//     - fr < f₀       → expand xe = x̄ + ρχ·d, keep the better of xe/xr;
//     - fr < f_{N−1}  → accept xr;
//     - fr < f_N      → outside contraction xc = x̄ + ψρ·d, accept if fc ≤ fr;
//     - otherwise     → inside contraction xcc = x̄ − ψ·d, accept if fcc < f_N;
//     - rejected contraction → shrink every vertex toward x₀ by σ;
//     d. re-sort.
//  4. Return row 0 and its value.
//
// Complexity: O(iterations · (N² + N·cost(f))) time, O(N²) memory.
func nelderMead(f Func, x0 []float64, opts Options, maxIter, maxEval int) (Result, error) {
	n := len(x0)
	s := &state{
		f:    f,
		sim:  mat.NewDense(n+1, n, nil),
		fsim: make([]float64, n+1),
		tmp:  make([]float64, n),
	}

	// Stage 1: initial simplex.
	s.sim.SetRow(0, x0)
	var (
		k   int
		row []float64
	)
	for k = 0; k < n; k++ {
		row = s.sim.RawRowView(k + 1)
		copy(row, x0)
		if row[k] != 0 {
			row[k] *= 1 + opts.NonzeroDelta
		} else {
			row[k] = opts.ZeroDelta
		}
	}

	// Stage 2: evaluate and sort.
	var err error
	for k = 0; k <= n; k++ {
		if s.fsim[k], err = s.eval(s.sim.RawRowView(k)); err != nil {
			return Result{}, err
		}
	}
	s.sort()

	xbar := make([]float64, n)
	dir := make([]float64, n)
	xr := make([]float64, n)
	xe := make([]float64, n)
	xc := make([]float64, n)

	var (
		iterations = 1
		converged  bool
		fr, fe, fc float64
		shrink     bool
		worst      []float64
	)

	// Stage 3: main loop.
	for s.evals < maxEval && iterations < maxIter {
		if s.converged(opts.XTol, opts.FTol) {
			converged = true
			break
		}

		worst = s.sim.RawRowView(n)
		s.centroid(xbar)
		floats.SubTo(dir, xbar, worst)

		floats.AddScaledTo(xr, xbar, rho, dir)
		if fr, err = s.eval(xr); err != nil {
			return Result{}, err
		}

		shrink = false
		switch {
		case fr < s.fsim[0]:
			floats.AddScaledTo(xe, xbar, rho*chi, dir)
			if fe, err = s.eval(xe); err != nil {
				return Result{}, err
			}
			if fe < fr {
				s.replaceWorst(xe, fe)
			} else {
				s.replaceWorst(xr, fr)
			}
		case fr < s.fsim[n-1]:
			s.replaceWorst(xr, fr)
		case fr < s.fsim[n]:
			floats.AddScaledTo(xc, xbar, psi*rho, dir)
			if fc, err = s.eval(xc); err != nil {
				return Result{}, err
			}
			if fc <= fr {
				s.replaceWorst(xc, fc)
			} else {
				shrink = true
			}
		default:
			floats.AddScaledTo(xc, xbar, -psi, dir)
			if fc, err = s.eval(xc); err != nil {
				return Result{}, err
			}
			if fc < s.fsim[n] {
				s.replaceWorst(xc, fc)
			} else {
				shrink = true
			}
		}

		if shrink {
			if err = s.shrink(); err != nil {
				return Result{}, err
			}
		}

		s.sort()
		iterations++
	}

	// Stage 4: classify and return.
	status := Converged
	if !converged && !s.converged(opts.XTol, opts.FTol) {
		if s.evals >= maxEval {
			status = EvaluationLimit
		} else {
			status = IterationLimit
		}
	}
	if !isFinite(s.fsim[0]) {
		return Result{}, ErrDegenerate
	}

	return Result{
		X:           append([]float64(nil), s.sim.RawRowView(0)...),
		F:           s.fsim[0],
		Iterations:  iterations,
		Evaluations: s.evals,
		Status:      status,
	}, nil
}

// state holds the simplex: sim rows are vertices, fsim their values.
// Rows are kept sorted so that row 0 is the best and row N the worst.
type state struct {
	f     Func
	sim   *mat.Dense
	fsim  []float64
	tmp   []float64
	evals int
}

// eval calls f, counting the call and mapping NaN to +Inf.
func (s *state) eval(x []float64) (float64, error) {
	s.evals++
	v, err := s.f(x)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return math.Inf(1), nil
	}

	return v, nil
}

// converged applies the two fmin spread tests.
// An Inf−Inf spread is NaN and therefore never converged.
func (s *state) converged(xtol, ftol float64) bool {
	var (
		n     = len(s.fsim) - 1
		best  = s.sim.RawRowView(0)
		xs, d float64
		i, j  int
	)
	for i = 1; i <= n; i++ {
		d = math.Abs(s.fsim[0] - s.fsim[i])
		if !(d <= ftol) {
			return false
		}
		row := s.sim.RawRowView(i)
		for j = range row {
			if d = math.Abs(row[j] - best[j]); d > xs {
				xs = d
			}
		}
	}

	return xs <= xtol
}

// centroid writes the mean of the N best vertices into dst.
func (s *state) centroid(dst []float64) {
	n := len(s.fsim) - 1
	for i := range dst {
		dst[i] = 0
	}
	for i := 0; i < n; i++ {
		floats.Add(dst, s.sim.RawRowView(i))
	}
	floats.Scale(1/float64(n), dst)
}

// replaceWorst overwrites the last row with x and its value.
func (s *state) replaceWorst(x []float64, fx float64) {
	n := len(s.fsim) - 1
	copy(s.sim.RawRowView(n), x)
	s.fsim[n] = fx
}

// shrink moves every vertex except the best halfway toward it and re-evaluates.
func (s *state) shrink() error {
	var (
		n    = len(s.fsim) - 1
		best = s.sim.RawRowView(0)
		err  error
	)
	for i := 1; i <= n; i++ {
		row := s.sim.RawRowView(i)
		floats.SubTo(s.tmp, row, best)
		floats.AddScaledTo(row, best, sigma, s.tmp)
		if s.fsim[i], err = s.eval(row); err != nil {
			return err
		}
	}

	return nil
}

// sort orders vertices by value (stable insertion sort, N is small).
func (s *state) sort() {
	var (
		n    = len(s.fsim)
		i, j int
	)
	for i = 1; i < n; i++ {
		for j = i; j > 0 && s.fsim[j] < s.fsim[j-1]; j-- {
			s.swap(j, j-1)
		}
	}
}

func (s *state) swap(a, b int) {
	ra, rb := s.sim.RawRowView(a), s.sim.RawRowView(b)
	copy(s.tmp, ra)
	copy(ra, rb)
	copy(rb, s.tmp)
	s.fsim[a], s.fsim[b] = s.fsim[b], s.fsim[a]
}
