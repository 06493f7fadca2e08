package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfit/internal/cli"
	"github.com/katalvlaran/lvfit/models"
)

const noisyCSV = `x,y,dy
1,3.3,0.5
2,4.8,0.5
3,7.1,0.5
4,8.6,0.5
5,11.25,0.5
6,12.9,0.5
7,15.35,0.5
8,16.7,0.5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the command tree and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_SubcommandsPresent(t *testing.T) {
	have := map[string]bool{}
	for _, c := range cli.NewRootCmd().Commands() {
		have[c.Name()] = true
	}
	assert.True(t, have["fit"])
	assert.True(t, have["models"])
}

func TestCommands_HaveDescriptions(t *testing.T) {
	var check func(*cobra.Command)
	check = func(cmd *cobra.Command) {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return
		}
		assert.NotEmptyf(t, cmd.Short, "command %s missing Short", cmd.Name())
		assert.NotEmptyf(t, cmd.Long, "command %s missing Long", cmd.Name())
		for _, sc := range cmd.Commands() {
			check(sc)
		}
	}
	check(cli.NewRootCmd())
}

func TestModelsCmd_ListsEveryModel(t *testing.T) {
	out, _, err := run(t, "models")
	require.NoError(t, err)
	for _, name := range models.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "constants: offset")
}

func TestFitCmd_Noisy(t *testing.T) {
	data := writeFile(t, "obs.csv", noisyCSV)

	out, _, err := run(t, "fit", "--data", data, "--pct", "0.5", "--resolution", "41")
	require.NoError(t, err)

	assert.Contains(t, out, "lvfit · linear")
	assert.Contains(t, out, "fit: converged")
	assert.Contains(t, out, "uncertainty: found")
	assert.Contains(t, out, "of 1681 points")
	assert.Contains(t, out, "dof 6")
}

func TestFitCmd_StreamingAndGonum(t *testing.T) {
	data := writeFile(t, "obs.csv", noisyCSV)

	out, _, err := run(t, "fit", "--data", data, "--pct", "0.5", "--resolution", "21",
		"--memory", "streaming", "--method", "gonum", "--max-evaluations", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "of 441 points")
}

func TestFitCmd_EnvOverride(t *testing.T) {
	data := writeFile(t, "obs.csv", noisyCSV)
	t.Setenv("LVFIT_RESOLUTION", "5")
	t.Setenv("LVFIT_PCT", "0.5")

	out, _, err := run(t, "fit", "--data", data)
	require.NoError(t, err)
	assert.Contains(t, out, "of 25 points")
}

func TestFitCmd_ConfigFile(t *testing.T) {
	data := writeFile(t, "obs.csv", noisyCSV)
	cfg := writeFile(t, "lvfit.yaml", "model: linear\npct: 0.5\nresolution: 11\ninitial: [1, 1]\n")

	out, _, err := run(t, "fit", "--config", cfg, "--data", data)
	require.NoError(t, err)
	assert.Contains(t, out, "of 121 points")
}

func TestFitCmd_SkipMeshAndDump(t *testing.T) {
	data := writeFile(t, "obs.csv", noisyCSV)

	out, _, err := run(t, "fit", "--data", data, "--skip-mesh", "--dump")
	require.NoError(t, err)
	assert.NotContains(t, out, "uncertainty:")
	assert.Contains(t, out, "Params")
	assert.Contains(t, out, "ReducedChi2")
}

func TestFitCmd_LogsToStderr(t *testing.T) {
	data := writeFile(t, "obs.csv", "1,2,0.1\n2,4,0.1\n3,6,0.1\n4,8,0.1\n")

	_, errOut, err := run(t, "fit", "--data", data, "--pct", "0.5", "--resolution", "20",
		"--initial", "1,1", "--log-level", "warn", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"level":"WARN"`)
	assert.Contains(t, errOut, "check resolution and range")
}

func TestFitCmd_Errors(t *testing.T) {
	data := writeFile(t, "obs.csv", noisyCSV)
	bad := writeFile(t, "bad.csv", "1,2\n")

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"MissingData", []string{"fit"}, "--data is required"},
		{"BadPct", []string{"fit", "--data", data, "--pct", "1.5"}, "--pct"},
		{"BadResolution", []string{"fit", "--data", data, "--resolution", "0"}, "--resolution"},
		{"UnknownModel", []string{"fit", "--data", data, "--model", "cubic"}, "unknown model"},
		{"WrongInitial", []string{"fit", "--data", data, "--initial", "1,2,3"}, "takes 2 parameters"},
		{"BadInitial", []string{"fit", "--data", data, "--initial", "1,x"}, "not a finite number"},
		{"BadMemory", []string{"fit", "--data", data, "--memory", "disk"}, "--memory"},
		{"BadMethod", []string{"fit", "--data", data, "--method", "bfgs"}, "--method"},
		{"BadLogLevel", []string{"fit", "--data", data, "--log-level", "loud"}, "--log-level"},
		{"BadCSV", []string{"fit", "--data", bad}, "malformed row"},
		{"MissingFile", []string{"fit", "--data", filepath.Join(t.TempDir(), "nope.csv")}, "dataset"},
		{"GridTooLarge", []string{"fit", "--data", data, "--max-grid-points", "10"}, "grid"},
		{"MissingConfig", []string{"fit", "--data", data, "--config", filepath.Join(t.TempDir(), "nope.yaml")}, "config"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
