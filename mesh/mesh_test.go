package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfit/mesh"
)

//----------------------------------------------------------------------------//
// Linspace & BuildAxes
//----------------------------------------------------------------------------//

// TestLinspace_Endpoints checks length, endpoints and uniform spacing.
func TestLinspace_Endpoints(t *testing.T) {
	s := mesh.Linspace(1, 3, 5)
	assert.Equal(t, []float64{1, 1.5, 2, 2.5, 3}, s)

	assert.Equal(t, []float64{7}, mesh.Linspace(7, 9, 1), "n=1 yields the lower bound")
	assert.Nil(t, mesh.Linspace(0, 1, 0))
}

// TestBuildAxes_Properties: for v≠0 (positive) the first sample is v(1−p),
// the last v(1+p), the sequence is strictly increasing and has length R.
func TestBuildAxes_Properties(t *testing.T) {
	const (
		pct = 0.2
		res = 11
	)
	center := []float64{2.5, 0.04, 1e3}

	axes, err := mesh.BuildAxes(center, pct, res)
	require.NoError(t, err)
	require.Equal(t, len(center), axes.Dims())

	for k, v := range center {
		ax := axes[k]
		require.Len(t, ax, res)
		assert.InDelta(t, v*(1-pct), ax[0], 1e-12)
		assert.Equal(t, v*(1+pct), ax[res-1])
		for i := 1; i < res; i++ {
			assert.Greater(t, ax[i], ax[i-1], "axis %d must increase", k)
		}
	}
	assert.Equal(t, mesh.Shape{res, res, res}, axes.Shape())
	assert.Empty(t, axes.ZeroAxes())
}

// TestBuildAxes_ZeroAndNegativeCenters documents the two edge cases.
func TestBuildAxes_ZeroAndNegativeCenters(t *testing.T) {
	axes, err := mesh.BuildAxes([]float64{0, -2}, 0.5, 3)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0}, axes[0], "zero center collapses")
	assert.Equal(t, []float64{-1, -2, -3}, axes[1], "negative center decreases")
	assert.Equal(t, []int{0}, axes.ZeroAxes())
}

// TestBuildAxes_Errors covers every validation sentinel.
func TestBuildAxes_Errors(t *testing.T) {
	cases := []struct {
		name   string
		center []float64
		pct    float64
		res    int
		want   error
	}{
		{"EmptyCenter", nil, 0.1, 10, mesh.ErrEmptyCenter},
		{"ZeroPct", []float64{1}, 0, 10, mesh.ErrBadPercentage},
		{"OnePct", []float64{1}, 1, 10, mesh.ErrBadPercentage},
		{"NaNPct", []float64{1}, math.NaN(), 10, mesh.ErrBadPercentage},
		{"ZeroRes", []float64{1}, 0.1, 0, mesh.ErrBadResolution},
		{"NaNCenter", []float64{math.NaN()}, 0.1, 10, mesh.ErrNonFinite},
		{"InfCenter", []float64{1, math.Inf(-1)}, 0.1, 10, mesh.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mesh.BuildAxes(tc.center, tc.pct, tc.res)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestAxes_Point picks one sample per dimension simultaneously.
func TestAxes_Point(t *testing.T) {
	axes := mesh.Axes{{1, 2, 3}, {10, 20}, {100, 200, 300, 400}}

	p, err := axes.Point(mesh.Index{2, 0, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 10, 400}, p)

	buf := make([]float64, 0, 3)
	p, err = axes.Point(mesh.Index{0, 1, 1}, buf)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 20, 200}, p)

	_, err = axes.Point(mesh.Index{0, 2, 0}, nil)
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
	_, err = axes.Point(mesh.Index{0, 0}, nil)
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
}

//----------------------------------------------------------------------------//
// Shape, Iterator, Grid
//----------------------------------------------------------------------------//

// TestShape_SizeAndStrides pins the row-major layout.
func TestShape_SizeAndStrides(t *testing.T) {
	s := mesh.Shape{2, 3, 4}
	size, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, 24, size)
	assert.Equal(t, []int{12, 4, 1}, s.Strides())

	_, err = mesh.Shape{}.Size()
	assert.ErrorIs(t, err, mesh.ErrBadShape)
	_, err = mesh.Shape{3, 0}.Size()
	assert.ErrorIs(t, err, mesh.ErrBadShape)
	_, err = mesh.Shape{math.MaxInt / 2, 3}.Size()
	assert.ErrorIs(t, err, mesh.ErrGridTooLarge)

	assert.True(t, s.Contains(mesh.Index{1, 2, 3}))
	assert.False(t, s.Contains(mesh.Index{2, 0, 0}))
	assert.False(t, s.Contains(mesh.Index{0, -1, 0}))
	assert.False(t, s.Contains(mesh.Index{0, 0}))
}

// TestGridSize_Limit enforces the caller's ceiling.
func TestGridSize_Limit(t *testing.T) {
	axes := mesh.Axes{make([]float64, 10), make([]float64, 10), make([]float64, 10)}

	n, err := mesh.GridSize(axes, 0)
	require.NoError(t, err)
	assert.Equal(t, 1000, n)

	n, err = mesh.GridSize(axes, 999)
	assert.ErrorIs(t, err, mesh.ErrGridTooLarge)
	assert.Equal(t, 1000, n)
}

// TestIterator_RowMajorAndReset walks a 2×3 shape twice.
func TestIterator_RowMajorAndReset(t *testing.T) {
	want := []mesh.Index{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	it := mesh.NewIterator(mesh.Shape{2, 3})

	for pass := 0; pass < 2; pass++ {
		var got []mesh.Index
		for it.Next() {
			got = append(got, it.Index().Clone())
		}
		assert.Equal(t, want, got, "pass %d", pass)
		assert.False(t, it.Next(), "exhausted iterator stays exhausted")
		it.Reset()
	}

	empty := mesh.NewIterator(mesh.Shape{3, 0})
	assert.False(t, empty.Next())
}

// TestGrid_AccessorsAndUnravel round-trips every offset.
func TestGrid_AccessorsAndUnravel(t *testing.T) {
	g, err := mesh.NewGrid(mesh.Shape{3, 4, 2})
	require.NoError(t, err)
	assert.Equal(t, 24, g.Len())
	assert.Equal(t, 3, g.Dims())
	assert.Equal(t, mesh.Shape{3, 4, 2}, g.Shape())

	require.NoError(t, g.Set(mesh.Index{2, 1, 1}, 42))
	v, err := g.At(mesh.Index{2, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	off, err := g.Offset(mesh.Index{2, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 2*8+1*2+1, off)

	var buf mesh.Index
	for o := 0; o < g.Len(); o++ {
		buf, err = g.Unravel(o, buf)
		require.NoError(t, err)
		back, err := g.Offset(buf)
		require.NoError(t, err)
		assert.Equal(t, o, back)
	}

	_, err = g.At(mesh.Index{3, 0, 0})
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
	assert.ErrorIs(t, g.Set(mesh.Index{0, 0}, 1), mesh.ErrIndexOutOfRange)
	_, err = g.Unravel(24, nil)
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)

	_, err = mesh.NewGrid(mesh.Shape{})
	assert.ErrorIs(t, err, mesh.ErrBadShape)
}

// TestGrid_EachEarlyStop stops after the first three points.
func TestGrid_EachEarlyStop(t *testing.T) {
	g, err := mesh.NewGrid(mesh.Shape{4, 4})
	require.NoError(t, err)

	seen := 0
	g.Each(func(mesh.Index, float64) bool {
		seen++
		return seen < 3
	})
	assert.Equal(t, 3, seen)
}

func TestParseMemoryMode(t *testing.T) {
	for _, m := range []mesh.MemoryMode{mesh.FullGrid, mesh.Streaming} {
		got, err := mesh.ParseMemoryMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := mesh.ParseMemoryMode("mmap")
	assert.Error(t, err)
}
