package main

import (
	"fmt"
	"io"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/plus3/tilekit/config"
	"github.com/plus3/tilekit/engine"
	"github.com/plus3/tilekit/render"
	"github.com/plus3/tilekit/render/raylibrender"
	"github.com/plus3/tilekit/sprite"
	"github.com/plus3/tilekit/viewport"
)

const consoleText = 20

var moveKeys = []struct {
	key int32
	dir engine.Direction
}{
	{rl.KeyRight, engine.Right},
	{rl.KeyLeft, engine.Left},
	{rl.KeyUp, engine.Up},
	{rl.KeyDown, engine.Down},
}

// InputSystem moves the player and feeds typed text to the console. After
// every move key the map is dumped to Out.
type InputSystem struct {
	Out io.Writer
}

func (s *InputSystem) Execute(frame *engine.Frame) {
	session := frame.Session

	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		session.Console.Type(string(rune(r)))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		session.Console.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		session.Console.Submit()
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		session.Reset()
		session.Console.Print(fmt.Sprintf("Back at the start %s.", session.Player.Coord))
	}

	for _, m := range moveKeys {
		if !rl.IsKeyPressed(m.key) {
			continue
		}
		if !session.Move(m.dir) {
			session.Console.Print(fmt.Sprintf("You cannot go %s.", m.dir))
		}
		frame.Defer(func() {
			if err := session.Dump(s.Out); err != nil {
				session.Console.Print(err.Error())
			}
		})
	}
}

// RenderSystem draws the map in the top three quarters of the window and the
// console below it.
type RenderSystem struct {
	cfg     config.Engine
	theme   render.Theme
	surface raylibrender.Surface

	sheet   *sprite.Sheet
	texture render.Texture
}

func (s *RenderSystem) Execute(frame *engine.Frame) {
	session := frame.Session
	w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	mapH := float64(int(h)/4) * 3
	mapArea := viewport.Rect{W: w, H: mapH}
	box := viewport.Rect{Y: mapH, W: w, H: h - mapH}

	view := viewport.Viewport{
		Area:     mapArea,
		Margin:   float64(s.cfg.Margin),
		CellSize: s.cfg.CellSize,
		Cols:     session.Map.Width(),
		Rows:     session.Map.Height(),
	}.CenterOn(session.Player.Coord)

	player := session.Player.Coord
	pass := render.MapPass{
		View:    view,
		Doc:     session.Map,
		Sheet:   s.sheet,
		Texture: s.texture,
		Theme:   s.theme,
		Scale:   1,
		Grid:    s.cfg.ShowGrid,
		Player:  &player,
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	pass.Draw(s.surface)
	s.drawConsole(&session.Console, box)
	rl.EndDrawing()
}

func (s *RenderSystem) drawConsole(c *engine.Console, box viewport.Rect) {
	s.surface.FillRect(box, s.theme.PaletteBackground)
	s.surface.Clip(box)
	defer s.surface.Unclip()

	const pad = 8
	line := float64(consoleText + 4)
	y := box.Bottom() - pad - line
	s.surface.Text("> "+c.Input(), box.X+pad, y, consoleText, s.theme.Label)

	lines := c.Lines()
	for i := len(lines) - 1; i >= 0; i-- {
		y -= line
		if y < box.Y {
			break
		}
		s.surface.Text(lines[i], box.X+pad, y, consoleText, s.theme.Hint)
	}
}

func (s *RenderSystem) release() {
	if s.texture != nil {
		s.texture.Release()
		s.texture = nil
	}
}
