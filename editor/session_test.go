package editor_test

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/tilekit/config"
	"github.com/plus3/tilekit/editor"
	"github.com/plus3/tilekit/render"
	"github.com/plus3/tilekit/sprite"
	"github.com/plus3/tilekit/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	events []string
	fail   bool
	n      int
}

func (l *fakeLoader) Upload(img image.Image) (render.Texture, error) {
	if l.fail {
		return nil, errors.New("device lost")
	}
	l.n++
	tex := &fakeTexture{name: fmt.Sprintf("tex%d", l.n), loader: l}
	l.events = append(l.events, "upload "+tex.name)
	return tex, nil
}

type fakeTexture struct {
	name   string
	loader *fakeLoader
}

func (t *fakeTexture) Size() (int, int) { return 0, 0 }
func (t *fakeTexture) Release()         { t.loader.events = append(t.loader.events, "release "+t.name) }

func newSession(t *testing.T) (*editor.Session, *fakeLoader) {
	t.Helper()
	loader := &fakeLoader{}
	s := editor.NewSession(config.Default().Editor, loader)
	t.Cleanup(s.Close)
	return s, loader
}

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
	return path
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewSession(t *testing.T) {
	s, _ := newSession(t)
	assert.Nil(t, s.Document())
	assert.Nil(t, s.Sheet())
	assert.Nil(t, s.Dialog())
	assert.True(t, s.CanInteract())
	assert.Equal(t, 32, s.CellSize())
	assert.Equal(t, tilemap.Empty, s.Brush())
	assert.Equal(t, editor.Info{}, s.Info())
}

func TestNewMapDialog(t *testing.T) {
	s, _ := newSession(t)
	s.ToggleMenu()

	d := s.OpenNewMapDialog()
	assert.Equal(t, &editor.NewMapDialog{Width: 4, Height: 4}, d)
	assert.False(t, s.MenuOpen(), "opening a dialog closes the menu")
	assert.False(t, s.CanInteract())

	d.Width = 10
	require.NoError(t, s.ConfirmDialog())
	assert.Nil(t, s.Dialog())
	require.NotNil(t, s.Document())
	assert.Equal(t, 10, s.Document().Width())
	assert.Equal(t, 4, s.Document().Height())
}

func TestNewMapClampsSize(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.NewMap(0, 500))
	assert.Equal(t, 1, s.Document().Width())
	assert.Equal(t, tilemap.MaxHeight, s.Document().Height())
}

func TestCancelDialogLeavesStateUnchanged(t *testing.T) {
	dir := t.TempDir()
	s, loader := newSession(t)
	require.NoError(t, s.NewMap(3, 3))
	require.NoError(t, s.LoadSheet(writePNG(t, dir, "tiles.png", 64, 64), 32, 32))
	require.NoError(t, s.Paint(tilemap.Coord{X: 1, Y: 1}))

	doc, sheet, tex := s.Document(), s.Sheet(), s.Texture()
	before := doc.Clone()

	d := s.OpenNewMapDialog()
	d.Width, d.Height = 20, 20
	s.CancelDialog()

	ts := s.OpenTileSizeDialog(writePNG(t, dir, "other.png", 16, 16))
	assert.Equal(t, 16, ts.TileWidth)
	s.CancelDialog()

	assert.Same(t, doc, s.Document())
	assert.True(t, before.Equal(s.Document()))
	assert.Same(t, sheet, s.Sheet())
	assert.Equal(t, tex, s.Texture())
	assert.Equal(t, []string{"upload tex1"}, loader.events)
}

func TestTileSizeDialogConfirm(t *testing.T) {
	s, _ := newSession(t)
	d := s.OpenTileSizeDialog(writePNG(t, t.TempDir(), "tiles.png", 128, 64))
	d.TileWidth, d.TileHeight = 32, 32

	require.NoError(t, s.ConfirmDialog())
	require.NotNil(t, s.Sheet())
	assert.Equal(t, 8, s.Sheet().TotalTiles())
	assert.Nil(t, s.Dialog())
}

func TestTileSizeDialogConfirmFailureClosesDialog(t *testing.T) {
	s, _ := newSession(t)
	s.OpenTileSizeDialog(filepath.Join(t.TempDir(), "missing.png"))

	err := s.ConfirmDialog()
	var loadErr *sprite.LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Nil(t, s.Dialog())
	assert.Nil(t, s.Sheet())
}

func TestEscapeClosesDialogThenMenu(t *testing.T) {
	s, _ := newSession(t)
	s.OpenNewMapDialog()
	s.ToggleMenu()
	require.True(t, s.MenuOpen())

	assert.True(t, s.Escape())
	assert.Nil(t, s.Dialog())
	assert.True(t, s.MenuOpen())

	assert.True(t, s.Escape())
	assert.False(t, s.MenuOpen())

	assert.False(t, s.Escape())
	assert.True(t, s.CanInteract())
}

func TestLoadMapEmptyFileKeepsDocument(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.NewMap(5, 5))
	doc := s.Document()

	_, err := s.LoadMap(writeFile(t, t.TempDir(), "empty.txt", ""))
	var formatErr *tilemap.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Same(t, doc, s.Document())
}

func TestLoadMapMissingFile(t *testing.T) {
	s, _ := newSession(t)
	_, err := s.LoadMap(filepath.Join(t.TempDir(), "nope.txt"))
	var ioErr *tilemap.IoError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.Nil(t, s.Document())
}

func TestLoadMapAutoLoadsSheet(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "tiles.png", 64, 32)
	path := writeFile(t, dir, "level.txt", "tiles.png 32 32\n3 1\n0 0\n1 2 5\n")

	s, loader := newSession(t)
	report, err := s.LoadMap(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "tiles.png"), report.SheetPath)
	assert.NoError(t, report.SheetErr)
	require.NotNil(t, s.Sheet())
	assert.Equal(t, 2, s.Sheet().TotalTiles())
	assert.Equal(t, []string{"upload tex1"}, loader.events)

	require.NotNil(t, report.Invalid)
	assert.Equal(t, []tilemap.Coord{{X: 2, Y: 0}}, report.Invalid.Cells)
	assert.Same(t, report.Invalid, s.Invalid())

	tile, _ := s.Document().At(tilemap.Coord{X: 2})
	assert.Equal(t, tilemap.Tile(5), tile, "validation never rewrites tiles")
	assert.Equal(t, path, s.MapPath())
}

func TestLoadMapWithoutSheetFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "level.txt", "tiles.png 32 32\n2 2\n1 1\n1 1\n1 1\n")

	s, loader := newSession(t)
	report, err := s.LoadMap(path)
	require.NoError(t, err)
	assert.Empty(t, report.SheetPath)
	assert.NoError(t, report.SheetErr)
	assert.Nil(t, s.Sheet())
	assert.Empty(t, loader.events)
	assert.Equal(t, tilemap.Coord{X: 1, Y: 1}, s.Document().Start())
}

func TestLoadMapReportsClamping(t *testing.T) {
	rows := ""
	for range 70 {
		rows += "0\n"
	}
	path := writeFile(t, t.TempDir(), "big.txt", "none 0 0\n70 70\n0 0\n"+rows)

	s, _ := newSession(t)
	report, err := s.LoadMap(path)
	require.NoError(t, err)
	assert.Len(t, report.Clamped, 2)
	assert.Equal(t, tilemap.MaxWidth, s.Document().Width())
}

func TestLoadSheetFailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	s, loader := newSession(t)
	require.NoError(t, s.LoadSheet(writePNG(t, dir, "tiles.png", 64, 64), 32, 32))
	sheet, tex := s.Sheet(), s.Texture()

	err := s.LoadSheet(filepath.Join(dir, "missing.png"), 32, 32)
	var loadErr *sprite.LoadError
	require.ErrorAs(t, err, &loadErr)

	err = s.LoadSheet(writeFile(t, dir, "junk.png", "not an image"), 32, 32)
	require.ErrorAs(t, err, &loadErr)

	assert.Same(t, sheet, s.Sheet())
	assert.Equal(t, tex, s.Texture())
	assert.Equal(t, []string{"upload tex1"}, loader.events)
}

func TestLoadSheetReleasesBeforeUpload(t *testing.T) {
	dir := t.TempDir()
	s, loader := newSession(t)
	require.NoError(t, s.LoadSheet(writePNG(t, dir, "a.png", 64, 64), 32, 32))
	require.NoError(t, s.LoadSheet(writePNG(t, dir, "b.png", 32, 32), 16, 16))

	assert.Equal(t, []string{"upload tex1", "release tex1", "upload tex2"}, loader.events)
	assert.Equal(t, "b.png", s.Sheet().Name())
}

func TestLoadSheetUploadFailureDetaches(t *testing.T) {
	dir := t.TempDir()
	s, loader := newSession(t)
	require.NoError(t, s.LoadSheet(writePNG(t, dir, "a.png", 64, 64), 32, 32))

	loader.fail = true
	err := s.LoadSheet(writePNG(t, dir, "b.png", 64, 64), 32, 32)
	var loadErr *sprite.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorContains(t, err, "device lost")

	assert.Nil(t, s.Sheet())
	assert.Nil(t, s.Texture())
	assert.Equal(t, []string{"upload tex1", "release tex1"}, loader.events)
}

func TestLoadSheetSyncsDocument(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.NewMap(2, 2))
	require.NoError(t, s.LoadSheet(writePNG(t, t.TempDir(), "tiles.png", 64, 64), 16, 32))

	assert.Equal(t, tilemap.SpriteRef{Name: "tiles.png", TileWidth: 16, TileHeight: 32}, s.Document().Sprite())
}

func TestSaveMap(t *testing.T) {
	dir := t.TempDir()
	s, _ := newSession(t)
	assert.ErrorIs(t, s.SaveMap(filepath.Join(dir, "out.txt")), editor.ErrNoMap)

	require.NoError(t, s.NewMap(3, 2))
	require.NoError(t, s.LoadSheet(writePNG(t, dir, "tiles.png", 64, 64), 32, 32))
	require.True(t, s.SelectTile(3))
	require.NoError(t, s.Paint(tilemap.Coord{X: 2, Y: 1}))
	require.NoError(t, s.SetStart(tilemap.Coord{X: 1, Y: 0}))

	path := filepath.Join(dir, "out.txt")
	require.NoError(t, s.SaveMap(path))
	assert.Equal(t, path, s.MapPath())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tiles.png 32 32\n3 2\n1 0\n0 0 0\n0 0 3\n", string(data))

	loaded, _, err := tilemap.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, loaded.Equal(s.Document()))
}

func TestSaveMapWithoutSheetWritesNone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	s, _ := newSession(t)
	require.NoError(t, s.NewMap(1, 1))
	require.NoError(t, s.SaveMap(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "none 0 0\n1 1\n0 0\n0\n", string(data))
}

func TestEditingRequiresMap(t *testing.T) {
	s, _ := newSession(t)
	assert.ErrorIs(t, s.Paint(tilemap.Coord{}), editor.ErrNoMap)
	assert.ErrorIs(t, s.Erase(tilemap.Coord{}), editor.ErrNoMap)
	assert.ErrorIs(t, s.SetStart(tilemap.Coord{}), editor.ErrNoMap)
}

func TestPaintEraseStart(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.NewMap(4, 4))
	require.NoError(t, s.LoadSheet(writePNG(t, t.TempDir(), "tiles.png", 64, 64), 32, 32))

	assert.False(t, s.SelectTile(5), "sheet holds four tiles")
	require.True(t, s.SelectTile(4))
	require.NoError(t, s.Paint(tilemap.Coord{X: 3, Y: 3}))
	tile, _ := s.Document().At(tilemap.Coord{X: 3, Y: 3})
	assert.Equal(t, tilemap.Tile(4), tile)

	require.NoError(t, s.Erase(tilemap.Coord{X: 3, Y: 3}))
	tile, _ = s.Document().At(tilemap.Coord{X: 3, Y: 3})
	assert.Equal(t, tilemap.Empty, tile)

	var bounds *tilemap.BoundsError
	assert.ErrorAs(t, s.Paint(tilemap.Coord{X: 4, Y: 0}), &bounds)
	assert.ErrorAs(t, s.SetStart(tilemap.Coord{X: 0, Y: 9}), &bounds)
}

func TestSelectTileWithoutSheet(t *testing.T) {
	s, _ := newSession(t)
	assert.True(t, s.SelectTile(tilemap.Empty))
	assert.False(t, s.SelectTile(1))
}

func TestInfo(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.NewMap(8, 6))
	assert.Equal(t, editor.Info{Map: "Map: 8x6"}, s.Info())

	require.NoError(t, s.LoadSheet(writePNG(t, t.TempDir(), "tiles.png", 128, 64), 32, 32))
	assert.Equal(t, editor.Info{
		Map:    "Map: 8x6",
		Sprite: "Sprite: tiles.png  (4x2 tiles)",
		Brush:  "Brush: eraser",
	}, s.Info())

	s.SelectTile(7)
	assert.Equal(t, "Brush: tile 7", s.Info().Brush)
}
