// Package viewport maps between screen pixels, a scrolled and zoomable map
// pane, and grid cells.
package viewport

// Point is a position in screen pixels.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Right is the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom is the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether p lies inside r. The top and left edges are
// inclusive, the bottom and right edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Disjoint reports whether r and o share no area. Rectangles that only touch
// along an edge count as overlapping, matching the culling test used by the
// renderers.
func (r Rect) Disjoint(o Rect) bool {
	return r.Right() < o.X || r.X > o.Right() || r.Bottom() < o.Y || r.Y > o.Bottom()
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}
