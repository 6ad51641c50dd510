package editor

import (
	"fmt"

	"github.com/plus3/tilekit/tilemap"
)

// Dialog returns the open dialog, or nil.
func (s *Session) Dialog() Dialog { return s.dialog }

// MenuOpen reports whether the File menu is open.
func (s *Session) MenuOpen() bool { return s.menuOpen }

// ToggleMenu opens or closes the File menu.
func (s *Session) ToggleMenu() { s.menuOpen = !s.menuOpen }

// CloseMenu closes the File menu.
func (s *Session) CloseMenu() { s.menuOpen = false }

// CanInteract reports whether the map and palette accept pointer input:
// no dialog is open and the menu is closed.
func (s *Session) CanInteract() bool {
	return s.dialog == nil && !s.menuOpen
}

// OpenNewMapDialog opens the New Map dialog with the configured default size.
func (s *Session) OpenNewMapDialog() *NewMapDialog {
	d := &NewMapDialog{Width: s.cfg.NewMap.Width, Height: s.cfg.NewMap.Height}
	s.dialog = d
	s.menuOpen = false
	return d
}

// OpenTileSizeDialog opens the tile size prompt for the sheet at path.
func (s *Session) OpenTileSizeDialog(path string) *TileSizeDialog {
	d := &TileSizeDialog{Path: path, TileWidth: s.cfg.TileSize.Width, TileHeight: s.cfg.TileSize.Height}
	s.dialog = d
	s.menuOpen = false
	return d
}

// CancelDialog closes the dialog without touching the document or sheet.
func (s *Session) CancelDialog() { s.dialog = nil }

// ConfirmDialog applies the open dialog and closes it. The dialog is closed
// even when applying it fails.
func (s *Session) ConfirmDialog() error {
	d := s.dialog
	s.dialog = nil
	switch d := d.(type) {
	case *NewMapDialog:
		return s.NewMap(d.Width, d.Height)
	case *TileSizeDialog:
		tw := clamp(d.TileWidth, 1, s.cfg.MaxTileSize)
		th := clamp(d.TileHeight, 1, s.cfg.MaxTileSize)
		return s.LoadSheet(d.Path, tw, th)
	}
	return nil
}

// Escape closes the dialog, or the menu when no dialog is open. It reports
// whether anything was closed.
func (s *Session) Escape() bool {
	switch {
	case s.dialog != nil:
		s.dialog = nil
	case s.menuOpen:
		s.menuOpen = false
	default:
		return false
	}
	return true
}

// Info is the text of the toolbar labels.
type Info struct {
	Map    string
	Sprite string
	Brush  string
}

// Info describes the document, sheet and brush. Empty fields are not shown.
func (s *Session) Info() Info {
	var info Info
	if s.doc != nil {
		info.Map = fmt.Sprintf("Map: %dx%d", s.doc.Width(), s.doc.Height())
	}
	if s.sheet != nil {
		info.Sprite = fmt.Sprintf("Sprite: %s  (%dx%d tiles)", s.sheet.Name(), s.sheet.Cols(), s.sheet.Rows())
	}
	switch b := s.Brush(); {
	case b > tilemap.Empty:
		info.Brush = fmt.Sprintf("Brush: tile %d", b)
	case s.sheet != nil:
		info.Brush = "Brush: eraser"
	}
	return info
}

// Status is the hover line shown at the bottom of the map pane, or "" when
// the pointer is not over a cell.
func (s *Session) Status() string {
	if s.doc == nil || s.hover == nil {
		return ""
	}
	t, ok := s.doc.At(*s.hover)
	if !ok {
		return ""
	}
	return fmt.Sprintf("Cell %s   Value: %d   Zoom: %d%%", *s.hover, t, s.zoom().Percent(s.cellSize))
}
