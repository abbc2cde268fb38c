package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/busemann/internal/inlet"
	"github.com/san-kum/busemann/internal/sweep"
)

func deg(rad float64) float64 { return rad * 180 / math.Pi }

// Report renders the performance summary of a design.
func Report(in *inlet.Inlet, t Theme) string {
	s := newStyles(t)
	p := in.Performance

	row := func(label, value string) string {
		return s.label.Render(label) + s.value.Render(value)
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("Busemann inlet  M%.3f → M%.3f", p.FreestreamMach, p.ExitMach)),
		s.muted.Render(fmt.Sprintf("method %s  γ %.3f  %d states", in.Config.Method, in.Config.Gamma, len(in.Solution))),
		"",
		row("Pre-shock Mach", fmt.Sprintf("%.4f", p.PreShockMach)),
		row("Terminal shock angle", fmt.Sprintf("%.3f°", deg(p.TerminalShockAngle))),
		row("Shock angle", fmt.Sprintf("%.3f°", deg(p.ShockAngle))),
		row("Flow deflection", fmt.Sprintf("%.3f°", deg(p.Deflection))),
		"",
		s.label.Render("Total pressure recovery") + s.recoveryStyle(p.TotalPressureRecovery).Render(fmt.Sprintf("%.4f", p.TotalPressureRecovery)),
		row("Static pressure ratio", fmt.Sprintf("%.3f", p.StaticPressureRatio)),
		row("Static temperature ratio", fmt.Sprintf("%.3f", p.StaticTemperatureRatio)),
		row("Contraction ratio", fmt.Sprintf("%.3f", p.ContractionRatio)),
		row("Length / capture radius", fmt.Sprintf("%.3f", p.LengthRatio)),
		"",
		row("Capture radius", fmt.Sprintf("%.4f", in.Contour.CaptureRadius())),
		row("Exit radius", fmt.Sprintf("%.4f", in.Contour.ExitRadius())),
		row("Focus", fmt.Sprintf("(%.4f, %.4f)", in.Contour.Focus.X, in.Contour.Focus.Y)),
	}

	return s.panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SweepTable renders one row per outcome, failures included.
func SweepTable(outcomes []sweep.Outcome, t Theme) string {
	s := newStyles(t)

	var b strings.Builder
	b.WriteString(s.header.Render(fmt.Sprintf("%4s %8s %8s %10s %10s %10s %10s", "#", "M1", "M3", "recovery", "p3/p1", "CR", "L/Rc")))
	b.WriteString("\n")

	for _, o := range outcomes {
		if o.Err != nil {
			b.WriteString(fmt.Sprintf("%4d %8.3f %8.3f ", o.Index, o.Config.FreestreamMach, o.Config.ExitMach))
			b.WriteString(s.bad.Render(o.Err.Error()))
			b.WriteString("\n")
			continue
		}
		p := o.Inlet.Performance
		b.WriteString(fmt.Sprintf("%4d %8.3f %8.3f ", o.Index, p.FreestreamMach, p.ExitMach))
		b.WriteString(s.recoveryStyle(p.TotalPressureRecovery).Render(fmt.Sprintf("%10.4f", p.TotalPressureRecovery)))
		b.WriteString(fmt.Sprintf(" %10.3f %10.3f %10.3f\n", p.StaticPressureRatio, p.ContractionRatio, p.LengthRatio))
	}

	return b.String()
}
