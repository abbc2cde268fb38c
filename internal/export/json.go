package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/busemann/internal/inlet"
)

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonReport struct {
	Method      string            `json:"method"`
	Gamma       float64           `json:"gamma"`
	Performance inlet.Performance `json:"performance"`
	Focus       jsonPoint         `json:"focus"`
	Contour     []jsonPoint       `json:"contour"`
}

// WriteJSON writes the performance summary and contour of a design.
func WriteJSON(w io.Writer, in *inlet.Inlet) error {
	report := jsonReport{
		Method:      string(in.Config.Method),
		Gamma:       in.Config.Gamma,
		Performance: in.Performance,
		Focus:       jsonPoint{X: in.Contour.Focus.X, Y: in.Contour.Focus.Y},
		Contour:     make([]jsonPoint, in.Contour.Len()),
	}
	for i, p := range in.Contour.Points {
		report.Contour[i] = jsonPoint{X: p.X, Y: p.Y}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
