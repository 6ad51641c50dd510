// Package tilemap holds the tile map document model and its line-oriented
// text format shared by the editor and the engine.
package tilemap

// NoSprite is the sprite name written when a map has no sheet.
const NoSprite = "none"

// SpriteRef names the sprite sheet a map was painted with. A map only refers
// to a sheet; it never owns the decoded image.
type SpriteRef struct {
	Name       string
	TileWidth  int
	TileHeight int
}

// IsNone reports whether the reference points at no sheet.
func (r SpriteRef) IsNone() bool {
	return r.Name == "" || r.Name == NoSprite
}

func (r SpriteRef) normalize() SpriteRef {
	if r.IsNone() {
		return SpriteRef{Name: NoSprite}
	}
	return r
}

// Document is an editable tile map: grid, start cell and sprite reference.
type Document struct {
	grid   Grid
	start  Coord
	sprite SpriteRef
}

// New creates an empty document with the start cell at the origin.
func New(width, height int) (*Document, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	return &Document{grid: grid, sprite: SpriteRef{Name: NoSprite}}, nil
}

func (d *Document) Width() int  { return d.grid.Width() }
func (d *Document) Height() int { return d.grid.Height() }

// Grid exposes the tile grid for reading and painting.
func (d *Document) Grid() *Grid { return &d.grid }

// At returns the tile at c.
func (d *Document) At(c Coord) (Tile, bool) { return d.grid.At(c) }

// Set stores a tile at c.
func (d *Document) Set(c Coord, t Tile) error { return d.grid.Set(c, t) }

// Start returns the start cell.
func (d *Document) Start() Coord { return d.start }

// SetStart moves the start cell. It must lie inside the grid.
func (d *Document) SetStart(c Coord) error {
	if !d.grid.InBounds(c) {
		if c.X < 0 || c.X >= d.grid.Width() {
			return &BoundsError{Field: "start x", Value: c.X, Max: d.grid.Width() - 1}
		}
		return &BoundsError{Field: "start y", Value: c.Y, Max: d.grid.Height() - 1}
	}
	d.start = c
	return nil
}

// Sprite returns the referenced sheet.
func (d *Document) Sprite() SpriteRef { return d.sprite }

// SetSprite replaces the sheet reference. Any spelling of "no sheet" is
// stored as NoSprite with zero tile dimensions.
func (d *Document) SetSprite(r SpriteRef) {
	d.sprite = r.normalize()
}

// Validate checks every tile against a sheet holding totalTiles tiles and
// returns a *TileRangeError naming the offending cells, or nil.
func (d *Document) Validate(totalTiles int) error {
	var bad []Coord
	for c, t := range d.grid.Cells() {
		if t < 0 || int(t) > totalTiles {
			bad = append(bad, c)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return &TileRangeError{TotalTiles: totalTiles, Cells: bad}
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	return &Document{grid: d.grid.clone(), start: d.start, sprite: d.sprite}
}

// Equal reports whether two documents have the same dimensions, tiles, start
// cell and sprite reference.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.start != o.start || d.sprite != o.sprite {
		return false
	}
	if d.grid.width != o.grid.width || d.grid.height != o.grid.height {
		return false
	}
	for i, t := range d.grid.cells {
		if o.grid.cells[i] != t {
			return false
		}
	}
	return true
}
