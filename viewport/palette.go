package viewport

import (
	"math"

	"github.com/plus3/tilekit/tilemap"
)

// PaletteLayout arranges the tiles of a sprite sheet in a scrollable side
// panel, TileSize pixels each with Gap pixels between them.
type PaletteLayout struct {
	Area     Rect
	Scroll   Point
	Padding  float64
	TileSize int
	Gap      int
	Count    int
}

// PerRow is how many tiles fit on one row of the panel, at least one.
func (l PaletteLayout) PerRow() int {
	stride := float64(l.TileSize + l.Gap)
	if stride <= 0 {
		return 1
	}
	return max(int((l.Area.W-2*l.Padding)/stride), 1)
}

// RowCount is the number of rows needed for Count tiles.
func (l PaletteLayout) RowCount() int {
	per := l.PerRow()
	return (l.Count + per - 1) / per
}

// ContentSize is the scrollable extent of the palette.
func (l PaletteLayout) ContentSize() (float64, float64) {
	stride := float64(l.TileSize + l.Gap)
	return float64(l.PerRow())*stride + 2*l.Padding, float64(l.RowCount())*stride + 2*l.Padding
}

// TileRect is the screen rectangle of tile id (1-based).
func (l PaletteLayout) TileRect(id tilemap.Tile) (Rect, bool) {
	if id < 1 || int(id) > l.Count {
		return Rect{}, false
	}
	idx := int(id) - 1
	per := l.PerRow()
	stride := float64(l.TileSize + l.Gap)
	return Rect{
		X: l.Area.X + l.Scroll.X + l.Padding + float64(idx%per)*stride,
		Y: l.Area.Y + l.Scroll.Y + l.Padding + float64(idx/per)*stride,
		W: float64(l.TileSize),
		H: float64(l.TileSize),
	}, true
}

// TileAt returns the tile under p. Points in the gaps between tiles or
// outside the panel hit nothing.
func (l PaletteLayout) TileAt(p Point) (tilemap.Tile, bool) {
	if !l.Area.Contains(p) || l.TileSize <= 0 {
		return tilemap.Empty, false
	}
	stride := float64(l.TileSize + l.Gap)
	lx := p.X - (l.Area.X + l.Scroll.X + l.Padding)
	ly := p.Y - (l.Area.Y + l.Scroll.Y + l.Padding)
	if lx < 0 || ly < 0 {
		return tilemap.Empty, false
	}
	col := int(math.Floor(lx / stride))
	row := int(math.Floor(ly / stride))
	if col >= l.PerRow() {
		return tilemap.Empty, false
	}
	if lx-float64(col)*stride >= float64(l.TileSize) || ly-float64(row)*stride >= float64(l.TileSize) {
		return tilemap.Empty, false
	}
	id := tilemap.Tile(row*l.PerRow() + col + 1)
	if int(id) > l.Count {
		return tilemap.Empty, false
	}
	return id, true
}
