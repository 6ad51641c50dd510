package tilemap

import (
	"fmt"
	"iter"
	"math"
)

// MaxWidth and MaxHeight bound every grid. The file format itself has no
// limit; the decoder clamps declared sizes to these values.
const (
	MaxWidth  = 64
	MaxHeight = 64
)

// Tile is a tile identifier. Zero is an empty cell; positive values are
// 1-based indices into a sprite sheet.
type Tile int

// Empty is the tile id of a cell with nothing in it.
const Empty Tile = 0

// MaxTile is the largest id the text format can hold.
const MaxTile Tile = math.MaxInt32

// Coord addresses a grid cell.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Grid is a bounded, row-major 2D array of tiles.
type Grid struct {
	width  int
	height int
	cells  []Tile
}

// NewGrid creates an empty grid. Dimensions must lie in 1..MaxWidth and
// 1..MaxHeight.
func NewGrid(width, height int) (Grid, error) {
	if width < 1 || width > MaxWidth {
		return Grid{}, &BoundsError{Field: "width", Value: width, Max: MaxWidth}
	}
	if height < 1 || height > MaxHeight {
		return Grid{}, &BoundsError{Field: "height", Value: height, Max: MaxHeight}
	}
	return Grid{
		width:  width,
		height: height,
		cells:  make([]Tile, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the tile at c. The second result is false when c is outside the
// grid.
func (g *Grid) At(c Coord) (Tile, bool) {
	if !g.InBounds(c) {
		return Empty, false
	}
	return g.cells[c.Y*g.width+c.X], true
}

// Set stores t at c.
func (g *Grid) Set(c Coord, t Tile) error {
	if !g.InBounds(c) {
		if c.X < 0 || c.X >= g.width {
			return &BoundsError{Field: "x", Value: c.X, Max: g.width - 1}
		}
		return &BoundsError{Field: "y", Value: c.Y, Max: g.height - 1}
	}
	if t < 0 || t > MaxTile {
		return &BoundsError{Field: "tile", Value: int(t), Max: int(MaxTile)}
	}
	g.cells[c.Y*g.width+c.X] = t
	return nil
}

// Row returns a copy of row y, or nil if y is out of range.
func (g *Grid) Row(y int) []Tile {
	if y < 0 || y >= g.height {
		return nil
	}
	row := make([]Tile, g.width)
	copy(row, g.cells[y*g.width:(y+1)*g.width])
	return row
}

// Cells iterates over every cell in row-major order.
func (g *Grid) Cells() iter.Seq2[Coord, Tile] {
	return func(yield func(Coord, Tile) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(Coord{X: x, Y: y}, g.cells[y*g.width+x]) {
					return
				}
			}
		}
	}
}

// Clear resets every cell to Empty.
func (g *Grid) Clear() {
	clear(g.cells)
}

func (g *Grid) clone() Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return Grid{width: g.width, height: g.height, cells: cells}
}
