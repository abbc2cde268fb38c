package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/san-kum/busemann/internal/flow"
	"github.com/san-kum/busemann/internal/inlet"
)

// ContourPlot draws the upper wall and its mirror image resampled onto
// width uniformly spaced axial stations.
func ContourPlot(c inlet.Contour, width, height int) (string, error) {
	if c.Len() < 2 {
		return "", fmt.Errorf("contour needs at least 2 points, got %d", c.Len())
	}
	if width < 2 {
		width = 2
	}

	xs := c.Xs()
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return "", fmt.Errorf("contour x not increasing at point %d", i)
		}
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, c.Ys()); err != nil {
		return "", fmt.Errorf("resample contour: %w", err)
	}

	stations := floats.Span(make([]float64, width), xs[0], xs[len(xs)-1])
	upper := make([]float64, width)
	lower := make([]float64, width)
	for i, x := range stations {
		upper[i] = pl.Predict(x)
		lower[i] = -upper[i]
	}

	return asciigraph.PlotMany([][]float64{upper, lower},
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Green),
		asciigraph.Caption(fmt.Sprintf("wall radius, x from 0 to %.3f", c.Length())),
	), nil
}

// MachPlot draws the Mach number from the leading edge to the terminal
// shock.
func MachPlot(sol flow.Solution, width, height int) (string, error) {
	if len(sol) < 2 {
		return "", fmt.Errorf("solution needs at least 2 states, got %d", len(sol))
	}

	machs := sol.Machs()
	for i, j := 0, len(machs)-1; i < j; i, j = i+1, j-1 {
		machs[i], machs[j] = machs[j], machs[i]
	}

	return asciigraph.Plot(machs,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption("Mach number, leading edge to terminal shock"),
	), nil
}
