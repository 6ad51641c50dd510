// Package editor holds the state of the interactive map editor: the open
// document, the sprite sheet and its texture, the modal dialog, and the map
// and palette scroll positions. Front ends feed it pointer input once per
// frame and draw what it describes.
package editor

import (
	"errors"
	"fmt"
	"os"

	"github.com/plus3/tilekit/config"
	"github.com/plus3/tilekit/render"
	"github.com/plus3/tilekit/sprite"
	"github.com/plus3/tilekit/tilemap"
	"github.com/plus3/tilekit/viewport"
)

// ErrNoMap is returned by operations that need an open map.
var ErrNoMap = errors.New("editor: no map loaded")

// Session is the editor state. The zero value is not usable; call
// NewSession.
type Session struct {
	cfg    config.Editor
	loader render.TextureLoader
	scale  viewport.Scale

	doc      *tilemap.Document
	mapPath  string
	sheet    *sprite.Sheet
	texture  render.Texture
	invalid  *tilemap.TileRangeError
	dialog   Dialog
	menuOpen bool

	cellSize      int
	mapScroll     viewport.Point
	paletteScroll viewport.Point
	hover         *tilemap.Coord
	paletteHover  tilemap.Tile
}

// NewSession creates an editor with no map and no sprite sheet. loader may
// be nil, in which case sheets are indexed but never uploaded.
func NewSession(cfg config.Editor, loader render.TextureLoader) *Session {
	s := &Session{cfg: cfg, loader: loader, scale: 1}
	s.cellSize = s.zoom().Default
	return s
}

// Report describes the side effects of LoadMap.
type Report struct {
	// Clamped lists header values that were out of range.
	Clamped []*tilemap.BoundsError
	// SheetPath is the sheet that was loaded next to the map, if any.
	SheetPath string
	// SheetErr is set when the referenced sheet exists but failed to load.
	SheetErr error
	// Invalid lists cells whose tile the sheet cannot resolve.
	Invalid *tilemap.TileRangeError
}

// Document returns the open map, or nil.
func (s *Session) Document() *tilemap.Document { return s.doc }

// MapPath is the file the map was last loaded from or saved to.
func (s *Session) MapPath() string { return s.mapPath }

// Sheet returns the loaded sprite sheet, or nil.
func (s *Session) Sheet() *sprite.Sheet { return s.sheet }

// Texture returns the uploaded sheet texture, or nil.
func (s *Session) Texture() render.Texture { return s.texture }

// Invalid returns the cells the current sheet cannot draw, or nil.
func (s *Session) Invalid() *tilemap.TileRangeError { return s.invalid }

// NewMap replaces the document with an empty width x height map. Sizes are
// clamped to the allowed range.
func (s *Session) NewMap(width, height int) error {
	doc, err := tilemap.New(clamp(width, 1, tilemap.MaxWidth), clamp(height, 1, tilemap.MaxHeight))
	if err != nil {
		return err
	}
	if s.sheet != nil {
		doc.SetSprite(s.sheet.Ref())
	}
	s.doc = doc
	s.mapPath = ""
	s.invalid = nil
	s.mapScroll = viewport.Point{}
	s.hover = nil
	return nil
}

// LoadMap reads a map file. On error the previous document is kept. When the
// map references a sprite sheet that exists next to it, the sheet is loaded
// too; a failure there is reported but does not undo the map load.
func (s *Session) LoadMap(path string) (Report, error) {
	doc, clamped, err := tilemap.ReadFile(path)
	if err != nil {
		return Report{}, err
	}
	s.doc = doc
	s.mapPath = path
	s.invalid = nil
	s.mapScroll = viewport.Point{}
	s.hover = nil

	report := Report{Clamped: clamped}
	ref := doc.Sprite()
	if !ref.IsNone() && ref.TileWidth > 0 && ref.TileHeight > 0 {
		sheetPath := tilemap.SiblingPath(path, ref.Name)
		if _, err := os.Stat(sheetPath); err == nil {
			if err := s.LoadSheet(sheetPath, ref.TileWidth, ref.TileHeight); err != nil {
				report.SheetErr = err
			} else {
				report.SheetPath = sheetPath
			}
		}
	}
	if s.sheet != nil {
		s.revalidate()
	}
	report.Invalid = s.invalid
	return report, nil
}

// SaveMap writes the document to path, recording the loaded sheet in the
// header.
func (s *Session) SaveMap(path string) error {
	if s.doc == nil {
		return ErrNoMap
	}
	if s.sheet != nil {
		s.doc.SetSprite(s.sheet.Ref())
	} else {
		s.doc.SetSprite(tilemap.SpriteRef{Name: tilemap.NoSprite})
	}
	if err := tilemap.WriteFile(path, s.doc); err != nil {
		return err
	}
	s.mapPath = path
	return nil
}

// LoadSheet indexes and uploads a sprite sheet. A sheet that fails to decode
// leaves the current one in place. Once decoding succeeds the previous
// texture is released before the new one is uploaded; if that upload fails
// the editor is left without a sheet.
func (s *Session) LoadSheet(path string, tileWidth, tileHeight int) error {
	sheet, err := sprite.Load(path, tileWidth, tileHeight)
	if err != nil {
		return err
	}

	s.releaseTexture()
	if s.loader != nil {
		tex, err := s.loader.Upload(sheet.Image)
		if err != nil {
			s.sheet = nil
			s.invalid = nil
			return &sprite.LoadError{Path: path, Err: fmt.Errorf("upload texture: %w", err)}
		}
		s.texture = tex
	}

	s.sheet = sheet
	s.paletteScroll = viewport.Point{}
	s.paletteHover = tilemap.Empty
	if s.doc != nil {
		s.doc.SetSprite(sheet.Ref())
	}
	s.revalidate()
	return nil
}

func (s *Session) revalidate() {
	s.invalid = nil
	if s.doc == nil || s.sheet == nil {
		return
	}
	var rangeErr *tilemap.TileRangeError
	if errors.As(s.doc.Validate(s.sheet.TotalTiles()), &rangeErr) {
		s.invalid = rangeErr
	}
}

func (s *Session) releaseTexture() {
	if s.texture != nil {
		s.texture.Release()
		s.texture = nil
	}
}

// Close releases the sheet texture.
func (s *Session) Close() {
	s.releaseTexture()
	s.sheet = nil
}

// Brush is the tile painted by the left button; 0 erases.
func (s *Session) Brush() tilemap.Tile {
	if s.sheet == nil {
		return tilemap.Empty
	}
	return s.sheet.Selected()
}

// SelectTile sets the brush. Without a sheet only the eraser can be chosen.
func (s *Session) SelectTile(id tilemap.Tile) bool {
	if s.sheet == nil {
		return id == tilemap.Empty
	}
	return s.sheet.Select(id)
}

// Paint sets cell c to the brush.
func (s *Session) Paint(c tilemap.Coord) error {
	if s.doc == nil {
		return ErrNoMap
	}
	return s.doc.Set(c, s.Brush())
}

// Erase clears cell c.
func (s *Session) Erase(c tilemap.Coord) error {
	if s.doc == nil {
		return ErrNoMap
	}
	return s.doc.Set(c, tilemap.Empty)
}

// SetStart moves the player start to c.
func (s *Session) SetStart(c tilemap.Coord) error {
	if s.doc == nil {
		return ErrNoMap
	}
	return s.doc.SetStart(c)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
