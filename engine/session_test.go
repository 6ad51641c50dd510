package engine_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/tilekit/engine"
	"github.com/plus3/tilekit/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(t *testing.T, rows ...[]tilemap.Tile) *tilemap.Document {
	t.Helper()
	doc, err := tilemap.New(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		for x, tile := range row {
			require.NoError(t, doc.Set(tilemap.Coord{X: x, Y: y}, tile))
		}
	}
	return doc
}

func TestMovementPolarity(t *testing.T) {
	doc := grid(t, []tilemap.Tile{1, 1, 0})

	opts := engine.MovementOptions(doc.Grid(), tilemap.Coord{X: 0})
	assert.Equal(t, engine.Options{Right: true}, opts)

	opts = engine.MovementOptions(doc.Grid(), tilemap.Coord{X: 1})
	assert.False(t, opts.Right, "neighbour is empty")
	assert.True(t, opts.Left, "neighbour holds tile 1")

	opts = engine.MovementOptions(doc.Grid(), tilemap.Coord{X: 2})
	assert.Equal(t, engine.Options{Left: true}, opts)
}

func TestMovementEdges(t *testing.T) {
	doc := grid(t,
		[]tilemap.Tile{1, 1, 1},
		[]tilemap.Tile{1, 1, 1},
		[]tilemap.Tile{1, 1, 1},
	)

	tests := []struct {
		pos  tilemap.Coord
		want engine.Options
	}{
		{tilemap.Coord{X: 0, Y: 0}, engine.Options{Right: true, Down: true}},
		{tilemap.Coord{X: 2, Y: 0}, engine.Options{Left: true, Down: true}},
		{tilemap.Coord{X: 0, Y: 2}, engine.Options{Right: true, Up: true}},
		{tilemap.Coord{X: 2, Y: 2}, engine.Options{Left: true, Up: true}},
		{tilemap.Coord{X: 1, Y: 1}, engine.Options{Right: true, Left: true, Up: true, Down: true}},
	}
	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, engine.MovementOptions(doc.Grid(), tt.pos))
		})
	}
}

func TestSessionMove(t *testing.T) {
	doc := grid(t,
		[]tilemap.Tile{0, 2, 0},
		[]tilemap.Tile{3, 4, 0},
	)
	require.NoError(t, doc.SetStart(tilemap.Coord{X: 1, Y: 0}))

	s, err := engine.NewSession(doc)
	require.NoError(t, err)
	assert.Equal(t, tilemap.Coord{X: 1, Y: 0}, s.Player.Coord)

	assert.False(t, s.Move(engine.Right), "empty neighbour")
	assert.False(t, s.Move(engine.Up), "top edge")
	assert.Equal(t, tilemap.Coord{X: 1, Y: 0}, s.Player.Coord)

	assert.True(t, s.Move(engine.Down))
	assert.Equal(t, tilemap.Coord{X: 1, Y: 1}, s.Player.Coord)

	assert.True(t, s.Move(engine.Left))
	assert.Equal(t, tilemap.Coord{X: 0, Y: 1}, s.Player.Coord)

	assert.False(t, s.Move(engine.Left), "left edge")
	assert.False(t, s.Move(engine.Down), "bottom edge")

	s.Reset()
	assert.Equal(t, doc.Start(), s.Player.Coord)
}

func TestSessionMoveStepsExactlyOne(t *testing.T) {
	doc := grid(t, []tilemap.Tile{5, 5, 5, 5, 5})
	s, err := engine.NewSession(doc)
	require.NoError(t, err)

	for i := 1; i < 5; i++ {
		require.True(t, s.Move(engine.Right))
		assert.Equal(t, i, s.Player.Coord.X)
	}
	assert.False(t, s.Move(engine.Right))
	assert.Equal(t, 4, s.Player.Coord.X)
}

func TestNewSessionNilMap(t *testing.T) {
	_, err := engine.NewSession(nil)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.txt")
	data := "tiles.png 16 16\n3 2\n2 1\n1 1 1\n0 1 1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := engine.Load(path)
	require.NoError(t, err)
	assert.Equal(t, tilemap.Coord{X: 2, Y: 1}, s.Player.Coord)
	assert.Empty(t, s.Clamped)
	assert.Equal(t, "tiles.png", s.Map.Sprite().Name)

	var buf bytes.Buffer
	require.NoError(t, s.Dump(&buf))
	assert.Equal(t, "map 3x2 sprite tiles.png\n  1  1  1\n  0  1  P\nstart (2, 1) player (2, 1)\n", buf.String())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := engine.Load(filepath.Join(dir, "missing.txt"))
	var ioErr *tilemap.IoError
	assert.ErrorAs(t, err, &ioErr)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = engine.Load(empty)
	var formatErr *tilemap.FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "right", engine.Right.String())
	assert.Equal(t, "down", engine.Down.String())
	assert.Equal(t, "unknown", engine.Direction(9).String())
	assert.Equal(t, tilemap.Coord{Y: -1}, engine.Up.Delta())
	assert.False(t, engine.Options{Right: true}.Allows(engine.Direction(9)))
}

func ExampleSession_Move() {
	doc, _ := tilemap.New(3, 1)
	_ = doc.Set(tilemap.Coord{X: 0}, 1)
	_ = doc.Set(tilemap.Coord{X: 1}, 1)

	s, _ := engine.NewSession(doc)
	fmt.Println(s.Move(engine.Right), s.Player.Coord)
	fmt.Println(s.Move(engine.Right), s.Player.Coord)

	// Output:
	// true (1, 0)
	// false (1, 0)
}
