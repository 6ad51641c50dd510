// Package sprite indexes the tiles of a sprite sheet image.
//
// Tiles are addressed with 1-based ids laid out row by row, so id 1 is the
// top-left tile and id Cols is the last tile of the first row. Id 0 is the
// eraser and never maps to a source rectangle.
package sprite

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/plus3/tilekit/tilemap"
)

// LoadError reports a sheet that could not be loaded: the image is missing
// or undecodable, or the tile dimensions are not positive.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("sprite: %v", e.Err)
	}
	return fmt.Sprintf("sprite: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Sheet is a sprite sheet cut into equally sized tiles. Remainder pixels on
// the right and bottom edges are padding and belong to no tile.
type Sheet struct {
	Path  string
	Image image.Image

	imageWidth  int
	imageHeight int
	tileWidth   int
	tileHeight  int
	cols        int
	rows        int
	selected    int
}

// NewSheet builds a sheet index for an image of the given pixel size.
func NewSheet(path string, imageWidth, imageHeight, tileWidth, tileHeight int) (*Sheet, error) {
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("tile size %dx%d must be positive", tileWidth, tileHeight)}
	}
	if imageWidth < 0 || imageHeight < 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("invalid image size %dx%d", imageWidth, imageHeight)}
	}
	return &Sheet{
		Path:        path,
		imageWidth:  imageWidth,
		imageHeight: imageHeight,
		tileWidth:   tileWidth,
		tileHeight:  tileHeight,
		cols:        imageWidth / tileWidth,
		rows:        imageHeight / tileHeight,
	}, nil
}

// FromImage builds a sheet over an already decoded image.
func FromImage(path string, img image.Image, tileWidth, tileHeight int) (*Sheet, error) {
	if img == nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("no image")}
	}
	b := img.Bounds()
	s, err := NewSheet(path, b.Dx(), b.Dy(), tileWidth, tileHeight)
	if err != nil {
		return nil, err
	}
	s.Image = img
	return s, nil
}

// Name is the base file name written into map files.
func (s *Sheet) Name() string {
	if s.Path == "" {
		return tilemap.NoSprite
	}
	return filepath.Base(s.Path)
}

func (s *Sheet) TileWidth() int  { return s.tileWidth }
func (s *Sheet) TileHeight() int { return s.tileHeight }
func (s *Sheet) Cols() int       { return s.cols }
func (s *Sheet) Rows() int       { return s.rows }

// ImageSize returns the pixel size of the whole sheet.
func (s *Sheet) ImageSize() (int, int) { return s.imageWidth, s.imageHeight }

// TotalTiles is Cols*Rows.
func (s *Sheet) TotalTiles() int { return s.cols * s.rows }

// Contains reports whether id addresses a tile of the sheet.
func (s *Sheet) Contains(id tilemap.Tile) bool {
	return id >= 1 && int(id) <= s.TotalTiles()
}

// TileRect returns the source rectangle of tile id in sheet pixels. The
// second result is false for id <= 0 and ids beyond TotalTiles; callers must
// not draw in that case.
func (s *Sheet) TileRect(id tilemap.Tile) (image.Rectangle, bool) {
	if !s.Contains(id) {
		return image.Rectangle{}, false
	}
	idx := int(id) - 1
	x := (idx % s.cols) * s.tileWidth
	y := (idx / s.cols) * s.tileHeight
	return image.Rect(x, y, x+s.tileWidth, y+s.tileHeight), true
}

// Selected is the current brush: 0 erases, 1..TotalTiles paints.
func (s *Sheet) Selected() tilemap.Tile { return tilemap.Tile(s.selected) }

// Select sets the brush. Ids outside 0..TotalTiles are rejected and leave
// the brush unchanged.
func (s *Sheet) Select(id tilemap.Tile) bool {
	if id != tilemap.Empty && !s.Contains(id) {
		return false
	}
	s.selected = int(id)
	return true
}

// Ref is the reference a map stores for this sheet.
func (s *Sheet) Ref() tilemap.SpriteRef {
	return tilemap.SpriteRef{Name: s.Name(), TileWidth: s.tileWidth, TileHeight: s.tileHeight}
}
