package rendering

// Point represents a 2D position in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Sub returns the component-wise difference of two sizes.
func (s Size) Sub(other Size) Size {
	return Size{Width: s.Width - other.Width, Height: s.Height - other.Height}
}

// Rect represents a rectangle by its top-left origin and size.
type Rect struct {
	Origin Point
	Size   Size
}

// RectFromXYWH constructs a Rect from origin coordinates, width and height.
func RectFromXYWH(x, y, width, height float64) Rect {
	return Rect{
		Origin: Point{X: x, Y: y},
		Size:   Size{Width: width, Height: height},
	}
}

// Contains reports whether the point lies within the rectangle,
// boundary included.
func (r Rect) Contains(p Point) bool {
	return r.Origin.X <= p.X && p.X <= r.Origin.X+r.Size.Width &&
		r.Origin.Y <= p.Y && p.Y <= r.Origin.Y+r.Size.Height
}
