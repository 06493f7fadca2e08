package mesh_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfit/mesh"
)

// encode packs a 3-D point into one number so the test can tell which
// sample of which axis reached f.
func encode(p []float64) (float64, error) {
	return p[0] + 10*p[1] + 100*p[2], nil
}

// TestEvaluate_OuterProduct: R^N entries, valid keys, and the value at
// (i,j,k) is f(axes[0][i], axes[1][j], axes[2][k]) — not a diagonal walk.
func TestEvaluate_OuterProduct(t *testing.T) {
	axes := mesh.Axes{{0, 1, 2, 3}, {0, 1, 2, 3}, {0, 1, 2, 3}}

	g, err := mesh.Evaluate(axes, encode)
	require.NoError(t, err)
	assert.Equal(t, 64, g.Len(), "R^N entries")

	shape := axes.Shape()
	count := 0
	g.Each(func(idx mesh.Index, v float64) bool {
		count++
		assert.True(t, shape.Contains(idx))
		want := float64(idx[0]) + 10*float64(idx[1]) + 100*float64(idx[2])
		assert.Equal(t, want, v, "value at %v", idx)
		return true
	})
	assert.Equal(t, 64, count)
}

// TestEvaluate_UnevenAxes uses different extents per dimension.
func TestEvaluate_UnevenAxes(t *testing.T) {
	axes := mesh.Axes{{5, 6}, {0.1, 0.2, 0.3}}
	f := func(p []float64) (float64, error) { return p[0]*1000 + p[1], nil }

	g, err := mesh.Evaluate(axes, f)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Len())

	v, err := g.At(mesh.Index{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 6000.3, v, 1e-9)

	v, err = g.At(mesh.Index{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 5000.2, v, 1e-9)
}

// TestEvaluate_ErrorCarriesIndex aborts on the first failing point.
func TestEvaluate_ErrorCarriesIndex(t *testing.T) {
	boom := errors.New("boom")
	axes := mesh.Axes{{1, 2}, {1, 2}}
	f := func(p []float64) (float64, error) {
		if p[0] == 2 && p[1] == 1 {
			return 0, boom
		}
		return 0, nil
	}

	_, err := mesh.Evaluate(axes, f)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "[1 0]")

	_, err = mesh.Evaluate(mesh.Axes{}, f)
	assert.ErrorIs(t, err, mesh.ErrBadShape)
}

// TestScan_MatchesEvaluate: streaming visits the same (idx, value) pairs.
func TestScan_MatchesEvaluate(t *testing.T) {
	axes := mesh.Axes{{1, 2, 3}, {-1, 0, 1}}
	g, err := mesh.Evaluate(axes, encode2)
	require.NoError(t, err)

	visited := 0
	err = mesh.Scan(axes, encode2, func(idx mesh.Index, v float64) error {
		visited++
		want, err := g.At(idx)
		require.NoError(t, err)
		assert.Equal(t, want, v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, g.Len(), visited)

	stop := errors.New("stop")
	err = mesh.Scan(axes, encode2, func(mesh.Index, float64) error { return stop })
	assert.ErrorIs(t, err, stop)
}

func encode2(p []float64) (float64, error) { return p[0]*p[0] + p[1], nil }

//----------------------------------------------------------------------------//
// Contour & Envelope
//----------------------------------------------------------------------------//

// paraboloid returns x² + y² on a symmetric 2-D mesh.
func paraboloidGrid(t *testing.T) (mesh.Axes, *mesh.Grid) {
	t.Helper()
	axes := mesh.Axes{mesh.Linspace(-2, 2, 5), mesh.Linspace(-2, 2, 5)}
	g, err := mesh.Evaluate(axes, func(p []float64) (float64, error) {
		return p[0]*p[0] + p[1]*p[1], nil
	})
	require.NoError(t, err)
	return axes, g
}

// TestContour_OnlyInBand: every returned value lies in [target−dt, target+dt].
func TestContour_OnlyInBand(t *testing.T) {
	_, g := paraboloidGrid(t)
	band := mesh.Band{Target: 1, HalfWidth: 0.25}

	c := mesh.Contour(g, band)
	// x²+y² = 1 only at the four axis neighbours of the origin.
	assert.ElementsMatch(t, []mesh.Index{{1, 2}, {2, 1}, {2, 3}, {3, 2}}, c)
	for _, idx := range c {
		v, err := g.At(idx)
		require.NoError(t, err)
		assert.True(t, v >= band.Target-band.HalfWidth && v <= band.Target+band.HalfWidth)
	}
}

// TestContour_ClosedInterval includes both band edges.
func TestContour_ClosedInterval(t *testing.T) {
	_, g := paraboloidGrid(t)
	// values 1 and 2 are the edges of [1, 2].
	c := mesh.Contour(g, mesh.Band{Target: 1.5, HalfWidth: 0.5})
	assert.Len(t, c, 8, "four points at 1 and four at 2")
}

// TestContour_InfiniteAndNegativeWidth covers the two limit cases.
func TestContour_InfiniteAndNegativeWidth(t *testing.T) {
	_, g := paraboloidGrid(t)

	all := mesh.Contour(g, mesh.Band{Target: 0, HalfWidth: math.Inf(1)})
	assert.Len(t, all, g.Len())

	none := mesh.Contour(g, mesh.Band{Target: 0, HalfWidth: -1})
	assert.Empty(t, none)

	assert.Nil(t, mesh.Contour(nil, mesh.Band{Target: 0, HalfWidth: 1}))
	assert.False(t, mesh.Band{Target: 0, HalfWidth: 1}.Contains(math.NaN()))
}

// TestContourScan_MatchesContour: streaming and full modes agree.
func TestContourScan_MatchesContour(t *testing.T) {
	axes, g := paraboloidGrid(t)
	band := mesh.Band{Target: 4, HalfWidth: 1}

	full := mesh.Contour(g, band)
	lazy, visited, err := mesh.ContourScan(axes, func(p []float64) (float64, error) {
		return p[0]*p[0] + p[1]*p[1], nil
	}, band)
	require.NoError(t, err)
	assert.Equal(t, full, lazy)
	assert.Equal(t, 25, visited)
}

// TestEnvelope_MaxDeviationPerAxis reduces the contour to per-axis maxima.
func TestEnvelope_MaxDeviationPerAxis(t *testing.T) {
	axes, g := paraboloidGrid(t)
	c := mesh.Contour(g, mesh.Band{Target: 1, HalfWidth: 0.25})

	unc, err := mesh.Envelope([]float64{0, 0}, axes, c)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, unc)

	// Off-center reference: deviations are measured from center, not 0.
	unc, err = mesh.Envelope([]float64{0.5, 0}, axes, []mesh.Index{{0, 2}, {4, 2}})
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 0}, unc)
}

// TestEnvelope_EmptyContourIsZero and error paths.
func TestEnvelope_EmptyContourIsZero(t *testing.T) {
	axes := mesh.Axes{{1, 2}, {3, 4}, {5, 6}}
	unc, err := mesh.Envelope([]float64{1, 3, 5}, axes, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, unc)

	_, err = mesh.Envelope([]float64{1}, axes, nil)
	assert.ErrorIs(t, err, mesh.ErrDimensionMismatch)

	_, err = mesh.Envelope([]float64{1, 3, 5}, axes, []mesh.Index{{0, 0, 2}})
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
}
