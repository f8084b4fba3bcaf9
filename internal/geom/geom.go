// Package geom provides the integer rectangle math used by the window
// coordinator. Everything here is a pure function of its inputs.
package geom

// Point is a position in global screen coordinates.
type Point struct {
	X int
	Y int
}

// Add returns p translated by the offset o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the offset from o to p.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Rect is a window or screen frame in global screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Origin returns the top-left corner of r.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// WithOrigin returns r moved to origin p, size unchanged.
func (r Rect) WithOrigin(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersect returns the intersection of r and o, or a zero Rect when they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())

	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// IntersectionArea returns the overlapping area of r and o in square units.
func (r Rect) IntersectionArea(o Rect) int {
	isect := r.Intersect(o)
	return isect.Width * isect.Height
}

// Union returns the smallest Rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	x1 := min(r.X, o.X)
	y1 := min(r.Y, o.Y)
	x2 := max(r.Right(), o.Right())
	y2 := max(r.Bottom(), o.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	isect := r.Intersect(o)
	return isect.Width > 0 && isect.Height > 0
}

// OverlapX reports whether the horizontal extents of a and b overlap, or come
// within slack of overlapping.
func OverlapX(a, b Rect, slack int) bool {
	return a.X < b.Right()+slack && b.X < a.Right()+slack
}

// OverlapY reports whether the vertical extents of a and b overlap, or come
// within slack of overlapping.
func OverlapY(a, b Rect, slack int) bool {
	return a.Y < b.Bottom()+slack && b.Y < a.Bottom()+slack
}

// EdgeGapX returns the signed horizontal separation between the extents of
// a and b: the distance between the facing edges when the rects are apart,
// zero when they touch, and negative when they overlap.
func EdgeGapX(a, b Rect) int {
	return max(b.X-a.Right(), a.X-b.Right())
}

// EdgeGapY is the vertical counterpart of EdgeGapX.
func EdgeGapY(a, b Rect) int {
	return max(b.Y-a.Bottom(), a.Y-b.Bottom())
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
