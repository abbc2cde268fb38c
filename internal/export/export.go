// Package export writes inlet designs as CSV, SVG, PNG or JSON.
package export

import (
	"fmt"
	"io"

	"gonum.org/v1/plot/vg"

	"github.com/san-kum/busemann/internal/inlet"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatSVG, FormatPNG, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format: %s", s)
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Write exports the contour of in. CSV and JSON need only the contour and
// performance, so in.Solution may be empty.
func Write(w io.Writer, f Format, in *inlet.Inlet) error {
	switch f {
	case FormatCSV:
		return WriteContourCSV(w, in.Contour)
	case FormatSVG:
		svg := ContourToSVG(in.Contour, 800, 400, "#00ff00")
		if svg == "" {
			return fmt.Errorf("contour needs at least 2 points, got %d", in.Contour.Len())
		}
		_, err := io.WriteString(w, svg)
		return err
	case FormatPNG:
		title := fmt.Sprintf("Busemann inlet M%.2f -> M%.2f", in.Performance.FreestreamMach, in.Performance.ExitMach)
		return WritePNG(w, in.Contour, title, 8*vg.Inch, 4*vg.Inch)
	case FormatJSON:
		return WriteJSON(w, in)
	}
	return fmt.Errorf("unknown export format: %s", f)
}
