package editor_test

import (
	"testing"

	"github.com/plus3/tilekit/editor"
	"github.com/plus3/tilekit/render"
	"github.com/plus3/tilekit/tilemap"
	"github.com/plus3/tilekit/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The map pane sits under a 30 pixel toolbar. With the default 10 pixel
// margin and 32 pixel cells, cell (1, 1) spans x 42..74 and y 72..104.
var mapArea = viewport.Rect{X: 0, Y: 30, W: 800, H: 600}

var overCell11 = viewport.Point{X: 50, Y: 80}

func tileAt(t *testing.T, doc *tilemap.Document, c tilemap.Coord) tilemap.Tile {
	t.Helper()
	tile, ok := doc.At(c)
	require.True(t, ok)
	return tile
}

func TestHandleMapInputPaintAndErase(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.NewMap(4, 4))
	require.NoError(t, s.LoadSheet(writePNG(t, t.TempDir(), "tiles.png", 64, 64), 32, 32))
	require.True(t, s.SelectTile(2))

	s.HandleMapInput(editor.Input{Mouse: overCell11, LeftDown: true}, mapArea)
	assert.Equal(t, tilemap.Tile(2), tileAt(t, s.Document(), tilemap.Coord{X: 1, Y: 1}))
	require.NotNil(t, s.Hover())
	assert.Equal(t, tilemap.Coord{X: 1, Y: 1}, *s.Hover())
	assert.Equal(t, "Cell (1, 1)   Value: 2   Zoom: 100%", s.Status())

	// dragging paints every cell the pointer crosses
	s.HandleMapInput(editor.Input{Mouse: viewport.Point{X: 80, Y: 80}, LeftDown: true}, mapArea)
	assert.Equal(t, tilemap.Tile(2), tileAt(t, s.Document(), tilemap.Coord{X: 2, Y: 1}))

	s.HandleMapInput(editor.Input{Mouse: overCell11, RightDown: true}, mapArea)
	assert.Equal(t, tilemap.Empty, tileAt(t, s.Document(), tilemap.Coord{X: 1, Y: 1}))
}

func TestHandleMapInputShiftClickSetsStart(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.NewMap(4, 4))
	require.NoError(t, s.LoadSheet(writePNG(t, t.TempDir(), "tiles.png", 64, 64), 32, 32))
	require.True(t, s.SelectTile(1))

	s.HandleMapInput(editor.Input{Mouse: overCell11, LeftDown: true, LeftPressed: true, Shift: true}, mapArea)
	assert.Equal(t, tilemap.Coord{X: 1, Y: 1}, s.Document().Start())
	assert.Equal(t, tilemap.Empty, tileAt(t, s.Document(), tilemap.Coord{X: 1, Y: 1}), "shift+click does not paint")
}

func TestHandleMapInputEdgeCell(t *testing.T) {
	// cell (3, 3) of a 4x4 map spans x 106..138 and y 136..168
	overCell33 := viewport.Point{X: 120, Y: 150}
	last := tilemap.Coord{X: 3, Y: 3}

	tests := []struct {
		name      string
		in        editor.Input
		wantTile  tilemap.Tile
		wantStart tilemap.Coord
	}{
		{"paint", editor.Input{Mouse: overCell33, LeftDown: true}, 3, tilemap.Coord{}},
		{"erase", editor.Input{Mouse: overCell33, RightDown: true}, tilemap.Empty, tilemap.Coord{}},
		{"start", editor.Input{Mouse: overCell33, LeftDown: true, LeftPressed: true, Shift: true}, 1, last},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newSession(t)
			require.NoError(t, s.NewMap(4, 4))
			require.NoError(t, s.LoadSheet(writePNG(t, t.TempDir(), "tiles.png", 64, 64), 32, 32))
			require.NoError(t, s.Document().Set(last, 1))
			require.True(t, s.SelectTile(3))

			s.HandleMapInput(tt.in, mapArea)
			require.NotNil(t, s.Hover())
			assert.Equal(t, last, *s.Hover())
			assert.Equal(t, tt.wantTile, tileAt(t, s.Document(), last))
			assert.Equal(t, tt.wantStart, s.Document().Start())
		})
	}
}

func TestHandleMapInputOutsideGrid(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.NewMap(2, 2))
	before := s.Document().Clone()

	s.HandleMapInput(editor.Input{Mouse: viewport.Point{X: 5, Y: 35}, RightDown: true}, mapArea)
	s.HandleMapInput(editor.Input{Mouse: viewport.Point{X: 300, Y: 300}, RightDown: true}, mapArea)
	assert.Nil(t, s.Hover())
	assert.Empty(t, s.Status())
	assert.True(t, before.Equal(s.Document()))
}

func TestHandleMapInputBlocked(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*editor.Session)
		in    editor.Input
	}{
		{"dialog open", func(s *editor.Session) { s.OpenNewMapDialog() }, editor.Input{}},
		{"menu open", func(s *editor.Session) { s.ToggleMenu() }, editor.Input{}},
		{"captured by overlay", func(*editor.Session) {}, editor.Input{Captured: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newSession(t)
			require.NoError(t, s.NewMap(4, 4))
			require.NoError(t, s.LoadSheet(writePNG(t, t.TempDir(), "tiles.png", 64, 64), 32, 32))
			require.True(t, s.SelectTile(3))
			tt.setup(s)

			in := tt.in
			in.Mouse, in.LeftDown, in.Wheel = overCell11, true, 1
			s.HandleMapInput(in, mapArea)

			assert.Equal(t, tilemap.Empty, tileAt(t, s.Document(), tilemap.Coord{X: 1, Y: 1}))
			assert.Equal(t, 32, s.CellSize())
			assert.Nil(t, s.Hover())
		})
	}
}

func TestHandleMapInputWheelZooms(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.NewMap(4, 4))

	s.HandleMapInput(editor.Input{Mouse: overCell11, Wheel: 2}, mapArea)
	assert.Equal(t, 40, s.CellSize())

	s.HandleMapInput(editor.Input{Mouse: viewport.Point{X: 900, Y: 80}, Wheel: 2}, mapArea)
	assert.Equal(t, 40, s.CellSize(), "wheel outside the pane is ignored")
}

func TestHandleMapInputPanClamps(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.NewMap(64, 64))

	s.HandleMapInput(editor.Input{Pan: viewport.Point{X: -100, Y: 50}}, mapArea)
	v := s.MapView(mapArea)
	assert.Equal(t, viewport.Point{X: -100, Y: 0}, v.Scroll)

	s.HandleMapInput(editor.Input{Pan: viewport.Point{X: -1e6, Y: -1e6}}, mapArea)
	v = s.MapView(mapArea)
	w, h := v.ContentSize()
	assert.Equal(t, viewport.Point{X: 800 - w, Y: 600 - h}, v.Scroll)
}

func TestZoomClamps(t *testing.T) {
	s, _ := newSession(t)
	s.Zoom(100)
	assert.Equal(t, 128, s.CellSize())
	s.Zoom(-100)
	assert.Equal(t, 8, s.CellSize())
}

func TestSetScale(t *testing.T) {
	s, _ := newSession(t)
	s.Zoom(3)

	assert.False(t, s.SetScale(1080))
	assert.Equal(t, 44, s.CellSize())

	assert.True(t, s.SetScale(2160))
	assert.Equal(t, viewport.Scale(2), s.Scale())
	assert.Equal(t, 64, s.CellSize(), "zoom resets to the scaled default")

	s.Zoom(1)
	assert.Equal(t, 72, s.CellSize(), "step scales too")

	assert.True(t, s.SetScale(200))
	assert.Equal(t, viewport.MinScale, s.Scale())
	assert.Equal(t, 16, s.CellSize())
}

var paletteArea = viewport.Rect{X: 500, Y: 30, W: 300, H: 400}

func TestHandlePaletteInput(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.LoadSheet(writePNG(t, t.TempDir(), "tiles.png", 96, 64), 32, 32))

	// five tiles per row: tile 4 starts at x 500+10+3*52
	s.HandlePaletteInput(editor.Input{Mouse: viewport.Point{X: 670, Y: 45}}, paletteArea)
	assert.Equal(t, tilemap.Empty, s.Brush(), "hover alone does not select")

	s.HandlePaletteInput(editor.Input{Mouse: viewport.Point{X: 670, Y: 45}, LeftPressed: true}, paletteArea)
	assert.Equal(t, tilemap.Tile(4), s.Brush())

	pass := s.PalettePass(paletteArea, render.DefaultTheme)
	assert.Equal(t, tilemap.Tile(4), pass.Hover)
	assert.Equal(t, 6, pass.Layout.Count)

	s.OpenNewMapDialog()
	s.HandlePaletteInput(editor.Input{Mouse: viewport.Point{X: 515, Y: 45}, LeftPressed: true}, paletteArea)
	assert.Equal(t, tilemap.Tile(4), s.Brush(), "dialog blocks selection")
}

func TestHandlePaletteInputScroll(t *testing.T) {
	s, _ := newSession(t)
	// 16x16 tiles on a 256x256 sheet give 256 tiles, far taller than the panel
	require.NoError(t, s.LoadSheet(writePNG(t, t.TempDir(), "tiles.png", 256, 256), 16, 16))

	in := editor.Input{Mouse: viewport.Point{X: 515, Y: 45}, Wheel: -1}
	s.HandlePaletteInput(in, paletteArea)
	assert.Equal(t, -52.0, s.PaletteLayout(paletteArea).Scroll.Y)

	in.Wheel = 5
	s.HandlePaletteInput(in, paletteArea)
	assert.Equal(t, 0.0, s.PaletteLayout(paletteArea).Scroll.Y)
}

func TestMapPassFromSession(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.NewMap(3, 3))
	s.HandleMapInput(editor.Input{Mouse: overCell11}, mapArea)

	pass := s.MapPass(mapArea, render.DefaultTheme)
	assert.Same(t, s.Document(), pass.Doc)
	assert.Equal(t, 3, pass.View.Cols)
	assert.True(t, pass.ShowStart)
	require.NotNil(t, pass.Hover)
	assert.Equal(t, tilemap.Coord{X: 1, Y: 1}, *pass.Hover)
}
