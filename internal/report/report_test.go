package report_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfit/fit"
	"github.com/katalvlaran/lvfit/internal/report"
	"github.com/katalvlaran/lvfit/models"
	"github.com/katalvlaran/lvfit/simplex"
)

func linearSpec(t *testing.T) models.Spec {
	t.Helper()
	s, err := models.Lookup("linear")
	require.NoError(t, err)
	return s
}

func TestRender_Full(t *testing.T) {
	var buf bytes.Buffer
	in := report.Input{
		Model:  linearSpec(t),
		Result: fit.Result{Params: []float64{1.98333, 1.075}, Chi2: 2.29333, Iterations: 41, Evaluations: 80, Status: simplex.Converged},
		Uncertainty: &fit.Uncertainty{
			Values: []float64{0.0992, 0.5106}, Status: fit.Found,
			Target: 3.29333, HalfWidth: 0.82333, ContourSize: 56, GridPoints: 1681,
		},
		StdErrors: []float64{0.0771517, 0.389597},
		Summary:   &fit.Report{Chi2: 2.29333, DOF: 6, ReducedChi2: 0.382222, PValue: 0.890842},
	}
	require.NoError(t, report.Render(&buf, in))

	out := buf.String()
	for _, want := range []string{
		"lvfit · linear", "a·x + b",
		"param", "± mesh", "± curvature",
		"1.98333", "0.0992", "0.0771517",
		"1.075", "0.5106", "0.389597",
		"converged after 41 iterations, 80 evaluations",
		"dof 6", "p 0.890842",
		"uncertainty: found (contour 56 of 1681 points",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_Partial(t *testing.T) {
	var buf bytes.Buffer
	in := report.Input{
		Model:       linearSpec(t),
		Result:      fit.Result{Params: []float64{2, 0}, Chi2: 0},
		Uncertainty: &fit.Uncertainty{Values: []float64{0, 0}, Status: fit.NotFound, ZeroAxes: []int{1}},
	}
	require.NoError(t, report.Render(&buf, in))

	out := buf.String()
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "check resolution and range")
	assert.Contains(t, out, "zero-valued parameters [1]")
	assert.Contains(t, out, "χ² 0")
}

func TestRender_Undefined(t *testing.T) {
	var buf bytes.Buffer
	nan := math.NaN()
	in := report.Input{
		Model:  linearSpec(t),
		Result: fit.Result{Params: []float64{nan, nan}, Chi2: nan},
	}
	require.NoError(t, report.Render(&buf, in))

	out := buf.String()
	assert.Contains(t, out, "NaN")
	assert.Contains(t, out, "check the dimensions and values of your input arrays")
}
