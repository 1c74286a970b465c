package types

// Point is a screen-space position in logical pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis aligned rectangle, Min inclusive and Max exclusive.
type Rect struct {
	Min, Max Point
}

// RectFromCenter builds a rectangle of the given size centred on c.
func RectFromCenter(c Point, w, h float64) Rect {
	return Rect{
		Min: Point{X: c.X - w/2, Y: c.Y - h/2},
		Max: Point{X: c.X + w/2, Y: c.Y + h/2},
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

// Scale returns a rectangle with the same center and both sides multiplied by k.
func (r Rect) Scale(k float64) Rect {
	return RectFromCenter(r.Center(), r.Width()*k, r.Height()*k)
}
