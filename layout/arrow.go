package layout

import "math"

// Arrow is the drag-to-target pointer from a source to the cursor.
type Arrow struct {
	X0, Y0, X1, Y1 float64
}

func NewArrow(x0, y0 float64) Arrow {
	return Arrow{X0: x0, Y0: y0, X1: x0, Y1: y0}
}

func (a Arrow) To(x, y float64) Arrow {
	a.X1, a.Y1 = x, y
	return a
}

func (a Arrow) Angle() float64 {
	return math.Atan2(a.Y1-a.Y0, a.X1-a.X0)
}

func (a Arrow) Length() float64 {
	return math.Hypot(a.X1-a.X0, a.Y1-a.Y0)
}

// ScaleX stretches an arrow image of width w to span the arrow.
func (a Arrow) ScaleX(w float64) float64 {
	if w <= 0 {
		return 0
	}
	return a.Length() / w
}
