// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvfit/fit"
	"github.com/katalvlaran/lvfit/internal/dataset"
	"github.com/katalvlaran/lvfit/internal/report"
	"github.com/katalvlaran/lvfit/models"
)

func newFitCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a model to a CSV of x,y,dy observations",
		Long: `The 'fit' subcommand minimizes chi-squared for the chosen model, then scans
a mesh of ±pct around the best fit to estimate per-parameter uncertainties,
and prints curvature-based standard errors and goodness-of-fit statistics.

Example:
  lvfit fit --data obs.csv --model linear --initial 1,1 --pct 0.05 --resolution 60`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFit(cmd, v)
		},
	}

	f := cmd.Flags()
	f.String("data", "", "CSV file with x,y,dy columns (required)")
	f.String("model", "linear", "model name, see 'lvfit models'")
	f.String("initial", "", "comma-separated initial parameters (default: all ones)")
	f.String("constants", "", "comma-separated known constants passed to the model")
	f.Float64("pct", fit.DefaultPercentage, "relative mesh half-width around each best-fit parameter")
	f.Int("resolution", fit.DefaultResolution, "mesh samples per parameter")
	f.Float64("delta-chi2", fit.DefaultDeltaChi2, "contour level above the minimum chi-squared")
	f.Float64("tolerance", fit.DefaultToleranceFactor, "band half-width as a fraction of the contour level")
	f.String("memory", "full", "mesh memory mode: full or streaming")
	f.String("method", "native", "minimizer backend: native or gonum")
	f.Int("max-grid-points", fit.DefaultMaxGridPoints, "refuse meshes larger than this (0 disables)")
	f.Int("max-iterations", 0, "minimizer iteration budget (0 = 200·N)")
	f.Int("max-evaluations", 0, "minimizer evaluation budget (0 = 200·N)")
	f.Bool("skip-mesh", false, "skip the mesh uncertainty scan")
	f.Bool("dump", false, "pretty-print the raw results after the report")
	bindFlags(v, f)

	return cmd
}

func runFit(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := loadFitConfig(v)
	if err != nil {
		return err
	}
	logger, err := newLogger(v, cmd)
	if err != nil {
		return err
	}
	spec, err := models.Lookup(cfg.Model)
	if err != nil {
		return err
	}
	obs, err := dataset.LoadFile(cfg.Data)
	if err != nil {
		return err
	}

	initial := cfg.Initial
	if len(initial) == 0 {
		initial = make([]float64, spec.NumParams())
		for i := range initial {
			initial[i] = 1
		}
	}
	if len(initial) != spec.NumParams() {
		return fmt.Errorf("lvfit: model %s takes %d parameters (%v), got %d initial values",
			spec.Name, spec.NumParams(), spec.Params, len(initial))
	}

	x, y, dy := obs.X(), obs.Y(), obs.DY()
	opts := cfg.options(logger)
	in := report.Input{Model: spec}

	in.Result, err = fit.Fit(x, y, dy, initial, spec.Func, opts...)
	if err != nil {
		_ = report.Render(cmd.OutOrStdout(), in)
		return err
	}

	if !cfg.SkipMesh {
		u, err := fit.EstimateUncertainty(x, y, dy, spec.Func, in.Result.Params, in.Result.Chi2, opts...)
		in.Uncertainty = &u
		if err != nil {
			_ = report.Render(cmd.OutOrStdout(), in)
			return err
		}
	}
	if se, err := fit.StandardErrors(x, y, dy, spec.Func, in.Result.Params, opts...); err == nil {
		in.StdErrors = se
	} else {
		logger.Warn("standard errors unavailable", "error", err)
	}
	if rep, err := fit.Summarize(x, y, dy, spec.Func, in.Result, opts...); err == nil {
		in.Summary = &rep
	} else {
		logger.Warn("summary unavailable", "error", err)
	}

	if err = report.Render(cmd.OutOrStdout(), in); err != nil {
		return err
	}
	if cfg.Dump {
		if _, err = pp.Fprintln(cmd.OutOrStdout(), in.Result, in.Uncertainty, in.Summary); err != nil {
			return err
		}
	}

	return nil
}
