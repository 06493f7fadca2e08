// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvfit/fit"
	"github.com/katalvlaran/lvfit/mesh"
	"github.com/katalvlaran/lvfit/simplex"
)

// bindFlags binds every flag in fs to the viper key of the same name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})
}

// fitConfig is the resolved fit command configuration.
type fitConfig struct {
	Data           string
	Model          string
	Initial        []float64
	Constants      []float64
	Pct            float64
	Resolution     int
	DeltaChi2      float64
	Tolerance      float64
	Memory         mesh.MemoryMode
	Method         simplex.Method
	MaxGridPoints  int
	MaxIterations  int
	MaxEvaluations int
	SkipMesh       bool
	Dump           bool
}

// loadFitConfig reads and validates the fit keys. Every range check here
// mirrors a fit.WithX constructor so that bad user input surfaces as an
// error instead of a panic.
func loadFitConfig(v *viper.Viper) (fitConfig, error) {
	var (
		c   fitConfig
		err error
	)
	c.Data = v.GetString("data")
	if c.Data == "" {
		return c, fmt.Errorf("lvfit: --data is required")
	}
	c.Model = v.GetString("model")
	if c.Initial, err = floatList(v, "initial"); err != nil {
		return c, err
	}
	if c.Constants, err = floatList(v, "constants"); err != nil {
		return c, err
	}

	c.Pct = v.GetFloat64("pct")
	if math.IsNaN(c.Pct) || c.Pct <= 0 || c.Pct >= 1 {
		return c, fmt.Errorf("lvfit: --pct must be in (0, 1), got %v", c.Pct)
	}
	c.Resolution = v.GetInt("resolution")
	if c.Resolution < 1 {
		return c, fmt.Errorf("lvfit: --resolution must be ≥ 1, got %d", c.Resolution)
	}
	c.DeltaChi2 = v.GetFloat64("delta-chi2")
	if math.IsNaN(c.DeltaChi2) || math.IsInf(c.DeltaChi2, 0) || c.DeltaChi2 <= 0 {
		return c, fmt.Errorf("lvfit: --delta-chi2 must be > 0, got %v", c.DeltaChi2)
	}
	c.Tolerance = v.GetFloat64("tolerance")
	if math.IsNaN(c.Tolerance) || c.Tolerance < 0 {
		return c, fmt.Errorf("lvfit: --tolerance must be ≥ 0, got %v", c.Tolerance)
	}
	if c.Memory, err = mesh.ParseMemoryMode(v.GetString("memory")); err != nil {
		return c, fmt.Errorf("lvfit: --memory: %w", err)
	}
	if c.Method, err = simplex.ParseMethod(v.GetString("method")); err != nil {
		return c, fmt.Errorf("lvfit: --method: %w", err)
	}
	c.MaxGridPoints = v.GetInt("max-grid-points")
	c.MaxIterations = v.GetInt("max-iterations")
	c.MaxEvaluations = v.GetInt("max-evaluations")
	if c.MaxGridPoints < 0 || c.MaxIterations < 0 || c.MaxEvaluations < 0 {
		return c, fmt.Errorf("lvfit: budgets must be ≥ 0")
	}
	c.SkipMesh = v.GetBool("skip-mesh")
	c.Dump = v.GetBool("dump")

	return c, nil
}

// options translates the configuration into fit options.
func (c fitConfig) options(logger *fit.Logger) []fit.Option {
	return []fit.Option{
		fit.WithConstants(c.Constants...),
		fit.WithPercentage(c.Pct),
		fit.WithResolution(c.Resolution),
		fit.WithDeltaChi2(c.DeltaChi2),
		fit.WithToleranceFactor(c.Tolerance),
		fit.WithMemoryMode(c.Memory),
		fit.WithMaxGridPoints(c.MaxGridPoints),
		fit.WithMethod(c.Method),
		fit.WithMaxIterations(c.MaxIterations),
		fit.WithMaxEvaluations(c.MaxEvaluations),
		fit.WithLogger(logger),
	}
}

// floatList reads key as a list of numbers. It accepts a comma-separated
// string (flags, env) or a list (config files).
func floatList(v *viper.Viper, key string) ([]float64, error) {
	var fields []string
	switch raw := v.Get(key).(type) {
	case nil:
		return nil, nil
	case string:
		if strings.TrimSpace(raw) == "" {
			return nil, nil
		}
		fields = strings.Split(raw, ",")
	case []any:
		for _, item := range raw {
			fields = append(fields, fmt.Sprint(item))
		}
	case []float64:
		return append([]float64(nil), raw...), nil
	default:
		fields = []string{fmt.Sprint(raw)}
	}

	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("lvfit: --%s: %q is not a finite number", key, f)
		}
		out = append(out, x)
	}

	return out, nil
}
