package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/busemann/internal/inlet"
)

// ContourToSVG draws the meridional section of an inlet: the upper wall,
// its mirror image, the axis and the terminal shock as a dashed line from
// the focal point to the wall exit.
func ContourToSVG(c inlet.Contour, width, height int, strokeColor string) string {
	if c.Len() < 2 {
		return ""
	}

	lo, hi := c.Bounds()
	minX, maxX := lo.X, hi.X
	maxY := hi.Y
	minY := -maxY

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeX = maxX - minX
	rangeY = maxY - minY

	toPx := func(x, y float64) (float64, float64) {
		return (x - minX) / rangeX * float64(width),
			float64(height) - (y-minY)/rangeY*float64(height)
	}

	path := func(sign float64) string {
		var sb strings.Builder
		for i, p := range c.Points {
			x, y := toPx(p.X, sign*p.Y)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		return sb.String()
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	ax0, ay := toPx(minX, 0)
	ax1, _ := toPx(maxX, 0)
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#555555" stroke-width="0.5"/>
`, ax0, ay, ax1, ay))

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, strokeColor, path(1)))
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, strokeColor, path(-1)))

	exit := c.Points[c.Len()-1]
	fx, fy := toPx(c.Focus.X, c.Focus.Y)
	for _, sign := range []float64{1, -1} {
		ex, ey := toPx(exit.X, sign*exit.Y)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#ff5f5f" stroke-width="1" stroke-dasharray="4 2"/>
`, fx, fy, ex, ey))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
