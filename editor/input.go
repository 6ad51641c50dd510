package editor

import (
	"github.com/plus3/tilekit/render"
	"github.com/plus3/tilekit/tilemap"
	"github.com/plus3/tilekit/viewport"
)

// Input is the pointer state of one frame.
type Input struct {
	Mouse       viewport.Point
	LeftDown    bool
	LeftPressed bool
	RightDown   bool
	Shift       bool
	Wheel       float64

	// Pan scrolls the pane by this many pixels.
	Pan viewport.Point

	// Captured is set when an overlay widget owns the pointer this frame.
	Captured bool
}

// Scale returns the current UI scale.
func (s *Session) Scale() viewport.Scale { return s.scale }

// SetScale updates the UI scale from the window height. When the scale
// changes the zoom resets to the scaled default.
func (s *Session) SetScale(screenHeight int) bool {
	next := viewport.UIScale(screenHeight)
	if !next.Changed(s.scale) {
		return false
	}
	s.scale = next
	s.cellSize = s.zoom().Default
	return true
}

func (s *Session) zoom() viewport.Zoom {
	return s.cfg.CellSize.Zoom().Scaled(s.scale)
}

// CellSize is the current cell size in pixels.
func (s *Session) CellSize() int { return s.cellSize }

// Zoom changes the cell size by wheel ticks within the configured bounds.
// The scroll origin stays put.
func (s *Session) Zoom(wheel float64) {
	s.cellSize = s.zoom().Apply(s.cellSize, wheel)
}

// MapView places the open map in area.
func (s *Session) MapView(area viewport.Rect) viewport.Viewport {
	v := viewport.Viewport{
		Area:     area,
		Scroll:   s.mapScroll,
		Margin:   float64(s.scale.Px(s.cfg.Margin)),
		CellSize: s.cellSize,
	}
	if s.doc != nil {
		v.Cols, v.Rows = s.doc.Width(), s.doc.Height()
	}
	return v
}

// PaletteLayout places the sheet's tiles in area.
func (s *Session) PaletteLayout(area viewport.Rect) viewport.PaletteLayout {
	l := viewport.PaletteLayout{
		Area:     area,
		Scroll:   s.paletteScroll,
		Padding:  float64(s.scale.Px(10)),
		TileSize: s.scale.Px(s.cfg.PaletteTile),
		Gap:      s.scale.Px(s.cfg.PaletteGap),
	}
	if s.sheet != nil {
		l.Count = s.sheet.TotalTiles()
	}
	return l
}

// HandleMapInput applies one frame of pointer input to the map pane:
// shift+click sets the start, the left button paints (held to drag), the
// right button erases and the wheel zooms.
func (s *Session) HandleMapInput(in Input, area viewport.Rect) {
	s.hover = nil
	if s.doc == nil || !s.CanInteract() || in.Captured {
		return
	}

	v := s.MapView(area)
	if in.Pan != (viewport.Point{}) {
		v.Scroll = v.Scroll.Add(in.Pan)
		v = v.ClampScroll()
		s.mapScroll = v.Scroll
	}

	if c, ok := v.Hit(in.Mouse); ok {
		// Hit only reports cells inside the grid, so these edits cannot fail.
		s.hover = &c
		switch {
		case in.Shift && in.LeftPressed:
			s.doc.SetStart(c)
		case in.LeftDown:
			s.doc.Set(c, s.Brush())
		}
		if in.RightDown {
			s.doc.Set(c, tilemap.Empty)
		}
	}

	if in.Wheel != 0 && area.Contains(in.Mouse) {
		s.Zoom(in.Wheel)
		s.mapScroll = s.MapView(area).ClampScroll().Scroll
	}
}

// HandlePaletteInput applies pointer input to the sprite panel: a click
// selects the tile under the pointer and the wheel scrolls.
func (s *Session) HandlePaletteInput(in Input, area viewport.Rect) {
	s.paletteHover = tilemap.Empty
	if s.sheet == nil || !s.CanInteract() || in.Captured {
		return
	}

	l := s.PaletteLayout(area)
	if in.Wheel != 0 && area.Contains(in.Mouse) {
		stride := float64(l.TileSize + l.Gap)
		_, h := l.ContentSize()
		y := l.Scroll.Y + in.Wheel*stride
		s.paletteScroll.Y = min(max(y, min(0, area.H-h)), 0)
		l.Scroll = s.paletteScroll
	}

	if id, ok := l.TileAt(in.Mouse); ok {
		s.paletteHover = id
		if in.LeftPressed {
			s.SelectTile(id)
		}
	}
}

// Hover is the map cell under the pointer, or nil.
func (s *Session) Hover() *tilemap.Coord { return s.hover }

// MapPass describes how to draw the map pane this frame.
func (s *Session) MapPass(area viewport.Rect, theme render.Theme) render.MapPass {
	return render.MapPass{
		View:      s.MapView(area),
		Doc:       s.doc,
		Sheet:     s.sheet,
		Texture:   s.texture,
		Theme:     theme,
		Scale:     s.scale,
		Grid:      s.cfg.ShowGrid,
		ShowStart: true,
		Hover:     s.hover,
	}
}

// PalettePass describes how to draw the sprite panel this frame.
func (s *Session) PalettePass(area viewport.Rect, theme render.Theme) render.PalettePass {
	return render.PalettePass{
		Layout:  s.PaletteLayout(area),
		Sheet:   s.sheet,
		Texture: s.texture,
		Theme:   theme,
		Scale:   s.scale,
		Hover:   s.paletteHover,
	}
}
