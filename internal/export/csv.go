package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/busemann/internal/flow"
	"github.com/san-kum/busemann/internal/inlet"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 8, 64)
}

// WriteContourCSV writes the wall points as x,y rows.
func WriteContourCSV(w io.Writer, c inlet.Contour) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range c.Points {
		if err := cw.Write([]string{formatFloat(p.X), formatFloat(p.Y)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSolutionCSV writes the conical-flow history with the local Mach number.
func WriteSolutionCSV(w io.Writer, sol flow.Solution) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"theta", "r", "u", "v", "mach"}); err != nil {
		return err
	}
	for _, s := range sol {
		rec := []string{
			formatFloat(s.Theta),
			formatFloat(s.R),
			formatFloat(s.Velocity.U),
			formatFloat(s.Velocity.V),
			formatFloat(s.Velocity.Mach()),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
