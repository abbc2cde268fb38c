package export

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/busemann/internal/inlet"
)

var (
	wallColor  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	shockColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// ContourPlot builds a gonum plot of the inlet section.
func ContourPlot(c inlet.Contour, title string) (*plot.Plot, error) {
	if c.Len() < 2 {
		return nil, fmt.Errorf("contour needs at least 2 points, got %d", c.Len())
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x / capture radius"
	p.Y.Label.Text = "y / capture radius"
	p.Add(plotter.NewGrid())

	upper := make(plotter.XYs, c.Len())
	lower := make(plotter.XYs, c.Len())
	for i, pt := range c.Points {
		upper[i] = plotter.XY{X: pt.X, Y: pt.Y}
		lower[i] = plotter.XY{X: pt.X, Y: -pt.Y}
	}

	var wall *plotter.Line
	for _, xys := range []plotter.XYs{upper, lower} {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = wallColor
		line.Width = vg.Points(1.5)
		p.Add(line)
		wall = line
	}

	exit := c.Points[c.Len()-1]
	shock, err := plotter.NewLine(plotter.XYs{
		{X: exit.X, Y: exit.Y},
		{X: c.Focus.X, Y: c.Focus.Y},
		{X: exit.X, Y: -exit.Y},
	})
	if err != nil {
		return nil, err
	}
	shock.Color = shockColor
	shock.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(shock)

	p.Legend.Add("wall", wall)
	p.Legend.Add("terminal shock", shock)
	p.Legend.Top = true

	return p, nil
}

// WritePNG renders the contour to w as a PNG image.
func WritePNG(w io.Writer, c inlet.Contour, title string, width, height vg.Length) error {
	p, err := ContourPlot(c, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
