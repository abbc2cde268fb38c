package inlet

import (
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/busemann/internal/flow"
)

type Point struct {
	X float64
	Y float64
}

// Contour is the wall of the inlet in the meridional plane, ordered from the
// leading edge to the terminal shock. Focus is where the terminal shock
// meets the axis.
type Contour struct {
	Points []Point
	Focus  Point
}

// NewContour maps a streamline history to wall coordinates. The solution
// runs from the terminal shock upstream, so it is reversed, shifted so the
// leading edge is at x = 0 and scaled so its y equals captureRadius.
func NewContour(sol flow.Solution, captureRadius float64) (Contour, error) {
	if len(sol) == 0 {
		return Contour{}, flow.Errorf(flow.ErrDesignOutOfRange, "empty solution")
	}
	lead := sol.Last()
	if !(lead.Y() > 0) {
		return Contour{}, flow.Errorf(flow.ErrDesignOutOfRange, "leading edge at y=%g", lead.Y())
	}

	x0 := lead.X()
	scale := captureRadius / lead.Y()

	pts := make([]Point, len(sol))
	for i, s := range sol {
		pts[len(sol)-1-i] = Point{X: (s.X() - x0) * scale, Y: s.Y() * scale}
	}
	pts[0].Y = captureRadius

	return Contour{
		Points: pts,
		Focus:  Point{X: -x0 * scale, Y: 0},
	}, nil
}

func (c Contour) Len() int { return len(c.Points) }

func (c Contour) Xs() []float64 {
	xs := make([]float64, len(c.Points))
	for i, p := range c.Points {
		xs[i] = p.X
	}
	return xs
}

func (c Contour) Ys() []float64 {
	ys := make([]float64, len(c.Points))
	for i, p := range c.Points {
		ys[i] = p.Y
	}
	return ys
}

func (c Contour) CaptureRadius() float64 {
	if len(c.Points) == 0 {
		return 0
	}
	return c.Points[0].Y
}

// ExitRadius is the wall radius at the terminal shock.
func (c Contour) ExitRadius() float64 {
	if len(c.Points) == 0 {
		return 0
	}
	return c.Points[len(c.Points)-1].Y
}

func (c Contour) Length() float64 {
	if len(c.Points) == 0 {
		return 0
	}
	return c.Points[len(c.Points)-1].X - c.Points[0].X
}

// Bounds returns the bounding box of the wall and the focal point.
func (c Contour) Bounds() (lo, hi Point) {
	if len(c.Points) == 0 {
		return c.Focus, c.Focus
	}
	xs := append(c.Xs(), c.Focus.X)
	ys := append(c.Ys(), c.Focus.Y)
	return Point{X: floats.Min(xs), Y: floats.Min(ys)}, Point{X: floats.Max(xs), Y: floats.Max(ys)}
}
