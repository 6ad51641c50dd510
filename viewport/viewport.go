package viewport

import (
	"iter"
	"math"

	"github.com/plus3/tilekit/tilemap"
)

// Viewport places a Cols x Rows grid inside a scrollable pane. Cells start at
// Area.X+Scroll.X+Margin (and likewise for y) and are CellSize pixels square.
// Scroll is usually zero or negative, as reported by a scroll panel widget.
type Viewport struct {
	Area     Rect
	Scroll   Point
	Margin   float64
	CellSize int
	Cols     int
	Rows     int

	// Visible is the part of the pane currently on screen. A zero Visible
	// means the whole Area.
	Visible Rect
}

// Origin is the screen position of the top-left corner of cell (0, 0).
func (v Viewport) Origin() Point {
	return Point{
		X: v.Area.X + v.Scroll.X + v.Margin,
		Y: v.Area.Y + v.Scroll.Y + v.Margin,
	}
}

// CellRect is the screen rectangle of cell c.
func (v Viewport) CellRect(c tilemap.Coord) Rect {
	o := v.Origin()
	size := float64(v.CellSize)
	return Rect{
		X: o.X + float64(c.X)*size,
		Y: o.Y + float64(c.Y)*size,
		W: size,
		H: size,
	}
}

// ScreenToCell returns the cell under p. The second result is false when p
// falls outside the grid or the cell size is not positive.
func (v Viewport) ScreenToCell(p Point) (tilemap.Coord, bool) {
	if v.CellSize <= 0 {
		return tilemap.Coord{}, false
	}
	o := v.Origin()
	size := float64(v.CellSize)
	c := tilemap.Coord{
		X: int(math.Floor((p.X - o.X) / size)),
		Y: int(math.Floor((p.Y - o.Y) / size)),
	}
	if c.X < 0 || c.X >= v.Cols || c.Y < 0 || c.Y >= v.Rows {
		return tilemap.Coord{}, false
	}
	return c, true
}

// Hit is ScreenToCell restricted to points inside the visible region, so a
// cell scrolled out of view cannot be edited through the panel border.
func (v Viewport) Hit(p Point) (tilemap.Coord, bool) {
	if !v.view().Contains(p) {
		return tilemap.Coord{}, false
	}
	return v.ScreenToCell(p)
}

func (v Viewport) view() Rect {
	if v.Visible == (Rect{}) {
		return v.Area
	}
	return v.Visible
}

// CellVisible reports whether any part of cell c intersects the visible
// region.
func (v Viewport) CellVisible(c tilemap.Coord) bool {
	return !v.CellRect(c).Disjoint(v.view())
}

// VisibleCells yields the cells that intersect the visible region in
// row-major order. Cells whose rectangles are disjoint from it are skipped.
func (v Viewport) VisibleCells() iter.Seq[tilemap.Coord] {
	return func(yield func(tilemap.Coord) bool) {
		if v.CellSize <= 0 || v.Cols <= 0 || v.Rows <= 0 {
			return
		}
		view := v.view()
		o := v.Origin()
		size := float64(v.CellSize)

		// candidate range, widened by one cell and then checked exactly
		x0 := clampInt(int(math.Floor((view.X-o.X)/size))-1, 0, v.Cols)
		x1 := clampInt(int(math.Ceil((view.Right()-o.X)/size))+1, 0, v.Cols)
		y0 := clampInt(int(math.Floor((view.Y-o.Y)/size))-1, 0, v.Rows)
		y1 := clampInt(int(math.Ceil((view.Bottom()-o.Y)/size))+1, 0, v.Rows)

		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				c := tilemap.Coord{X: x, Y: y}
				if v.CellRect(c).Disjoint(view) {
					continue
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

// ContentSize is the scrollable extent of the grid including the margin on
// both sides.
func (v Viewport) ContentSize() (float64, float64) {
	size := float64(v.CellSize)
	return float64(v.Cols)*size + 2*v.Margin, float64(v.Rows)*size + 2*v.Margin
}

// ClampScroll limits Scroll so the content never scrolls past its far edge
// or away from its near edge.
func (v Viewport) ClampScroll() Viewport {
	view := v.view()
	w, h := v.ContentSize()
	v.Scroll.X = clampFloat(v.Scroll.X, math.Min(0, view.W-w), 0)
	v.Scroll.Y = clampFloat(v.Scroll.Y, math.Min(0, view.H-h), 0)
	return v
}

// CenterOn scrolls so cell c sits in the middle of the visible region, as
// far as ClampScroll allows.
func (v Viewport) CenterOn(c tilemap.Coord) Viewport {
	view := v.view()
	size := float64(v.CellSize)
	v.Scroll = Point{
		X: view.X + view.W/2 - v.Area.X - v.Margin - (float64(c.X)+0.5)*size,
		Y: view.Y + view.H/2 - v.Area.Y - v.Margin - (float64(c.Y)+0.5)*size,
	}
	return v.ClampScroll()
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
