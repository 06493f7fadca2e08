package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfit/chisq"
	"github.com/katalvlaran/lvfit/internal/dataset"
)

func TestLoad_WithHeaderAndComments(t *testing.T) {
	in := `x, y, dy
# calibration run
1, 2, 0.1
2, 4.5, 0.2
3, 6, 0.1
`
	obs, err := dataset.Load(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, obs.Len())
	assert.Equal(t, []float64{1, 2, 3}, obs.X())
	assert.Equal(t, []float64{2, 4.5, 6}, obs.Y())
	assert.Equal(t, []float64{0.1, 0.2, 0.1}, obs.DY())
}

func TestLoad_NoHeader(t *testing.T) {
	obs, err := dataset.Load(strings.NewReader("1,2,0.5\n2,3,0.5\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, obs.Len())
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"TwoColumns", "1,2\n", dataset.ErrMalformed},
		{"BadNumber", "1,2,0.1\n2,abc,0.1\n", dataset.ErrMalformed},
		{"HeaderOnly", "x,y,dy\n", chisq.ErrEmptyObservations},
		{"Empty", "", chisq.ErrEmptyObservations},
		{"ZeroSigma", "1,2,0\n", chisq.ErrNonPositiveSigma},
		{"LateHeader", "1,2,0.1\nx,y,dy\n", dataset.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.Load(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_ReportsLine(t *testing.T) {
	_, err := dataset.Load(strings.NewReader("1,2,0.1\n2,3,0.1\n3,oops,0.1\n"))
	require.ErrorIs(t, err, dataset.ErrMalformed)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obs.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2,0.1\n2,4,0.1\n"), 0o600))

	obs, err := dataset.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, obs.Len())

	_, err = dataset.LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
