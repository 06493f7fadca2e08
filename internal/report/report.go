// SPDX-License-Identifier: MIT

// Package report renders fit outcomes for the terminal.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvfit/fit"
	"github.com/katalvlaran/lvfit/models"
)

const (
	nameWidth  = 8
	valueWidth = 14
	na         = "n/a"
)

// Input bundles everything the fit command computed. Nil members are
// rendered as n/a.
type Input struct {
	Model       models.Spec
	Result      fit.Result
	Uncertainty *fit.Uncertainty
	StdErrors   []float64
	Summary     *fit.Report
}

// Render writes a styled report to w. Colors are enabled only when w is a
// terminal.
func Render(w io.Writer, in Input) error {
	r := lipgloss.NewRenderer(w)
	var (
		titleStyle  = r.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
		headerStyle = r.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
		nameStyle   = r.NewStyle().Width(nameWidth).Foreground(lipgloss.Color("86"))
		cellStyle   = r.NewStyle().Width(valueWidth)
		faintStyle  = r.NewStyle().Faint(true)
		okStyle     = r.NewStyle().Foreground(lipgloss.Color("46"))
		warnStyle   = r.NewStyle().Foreground(lipgloss.Color("214"))
		errStyle    = r.NewStyle().Foreground(lipgloss.Color("9"))
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render("lvfit · "+in.Model.Name) + " " + faintStyle.Render(in.Model.Formula) + "\n\n")

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		nameStyle.Render("param"),
		cellStyle.Render("value"),
		cellStyle.Render("± mesh"),
		cellStyle.Render("± curvature"),
	)
	b.WriteString(headerStyle.Render(header) + "\n")

	for k, p := range in.Result.Params {
		name := "p" + strconv.Itoa(k)
		if k < len(in.Model.Params) {
			name = in.Model.Params[k]
		}
		mesh := na
		if in.Uncertainty != nil && k < len(in.Uncertainty.Values) {
			mesh = num(in.Uncertainty.Values[k])
		}
		curv := na
		if k < len(in.StdErrors) {
			curv = num(in.StdErrors[k])
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			nameStyle.Render(name),
			cellStyle.Render(num(p)),
			cellStyle.Render(mesh),
			cellStyle.Render(curv),
		) + "\n")
	}
	b.WriteString("\n")

	fitLine := fmt.Sprintf("fit: %s after %d iterations, %d evaluations",
		in.Result.Status, in.Result.Iterations, in.Result.Evaluations)
	if !in.Result.Defined() {
		fitLine = "fit: undefined; check the dimensions and values of your input arrays"
		b.WriteString(errStyle.Render(fitLine) + "\n")
	} else {
		b.WriteString(okStyle.Render(fitLine) + "\n")
	}

	if s := in.Summary; s != nil {
		b.WriteString(fmt.Sprintf("χ² %s   dof %d   χ²/dof %s   p %s\n",
			num(s.Chi2), s.DOF, num(s.ReducedChi2), num(s.PValue)))
	} else {
		b.WriteString(fmt.Sprintf("χ² %s\n", num(in.Result.Chi2)))
	}

	if u := in.Uncertainty; u != nil {
		line := fmt.Sprintf("uncertainty: %s (contour %d of %d points, band %s ± %s)",
			u.Status, u.ContourSize, u.GridPoints, num(u.Target), num(u.HalfWidth))
		switch u.Status {
		case fit.Found:
			b.WriteString(okStyle.Render(line) + "\n")
		case fit.NotFound:
			b.WriteString(warnStyle.Render(line+"; check resolution and range") + "\n")
		default:
			b.WriteString(errStyle.Render(line) + "\n")
		}
		if len(u.ZeroAxes) > 0 {
			b.WriteString(warnStyle.Render(fmt.Sprintf("zero-valued parameters %v have no mesh extent", u.ZeroAxes)) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// num formats v compactly, keeping NaN readable.
func num(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}

	return strconv.FormatFloat(v, 'g', 6, 64)
}
