// SPDX-License-Identifier: MIT

// Package cli implements the lvfit command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvfit/fit"
)

// envPrefix namespaces environment overrides: LVFIT_PCT, LVFIT_MODEL, …
const envPrefix = "LVFIT"

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "lvfit",
		Short: "Chi-squared model fitting with mesh-based uncertainties",
		Long: `lvfit fits a parametric model to (x, y, dy) observations by chi-squared
minimization and estimates per-parameter uncertainties by scanning a mesh
around the best fit.

Every flag can also be set in a config file (--config, YAML/TOML/JSON) or
through LVFIT_<FLAG> environment variables, e.g. LVFIT_RESOLUTION=50.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if path := v.GetString("config"); path != "" {
				v.SetConfigFile(path)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("lvfit: config: %w", err)
				}
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, toml or json)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	bindFlags(v, pf)

	root.AddCommand(newFitCmd(v), newModelsCmd())

	return root
}

// newLogger builds the library logger from the log-level and log-format keys.
func newLogger(v *viper.Viper, cmd *cobra.Command) (*fit.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return nil, fmt.Errorf("lvfit: --log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(v.GetString("log-format")) {
	case "", "text":
		return fit.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), opts)), nil
	case "json":
		return fit.NewLogger(slog.NewJSONHandler(cmd.ErrOrStderr(), opts)), nil
	default:
		return nil, fmt.Errorf("lvfit: --log-format: unknown format %q", v.GetString("log-format"))
	}
}
