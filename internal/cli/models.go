// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfit/models"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the built-in models",
		Long:  `The 'models' subcommand lists every built-in model with its formula, parameter order and optional constants.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := lipgloss.NewRenderer(cmd.OutOrStdout())
			nameStyle := r.NewStyle().Bold(true).Width(12).Foreground(lipgloss.Color("86"))
			formulaStyle := r.NewStyle().Width(30)
			faintStyle := r.NewStyle().Faint(true)

			var b strings.Builder
			for _, s := range models.All() {
				line := nameStyle.Render(s.Name) + formulaStyle.Render(s.Formula) +
					faintStyle.Render("params: "+strings.Join(s.Params, ", "))
				if len(s.Constants) > 0 {
					line += faintStyle.Render("; constants: " + strings.Join(s.Constants, ", "))
				}
				b.WriteString(line + "\n")
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}
