package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/tilekit/config"
	"github.com/plus3/tilekit/editor"
	"github.com/plus3/tilekit/overlay"
	"github.com/plus3/tilekit/render"
	"github.com/plus3/tilekit/render/ebitenrender"
	"github.com/plus3/tilekit/viewport"
)

const (
	panelHeader  = 24
	statusHeight = 22
	statusText   = 14
)

var dim = color.NRGBA{0, 0, 0, 120}

// Game implements ebiten.Game on top of an editor session.
type Game struct {
	cfg     config.Editor
	session *editor.Session
	surface *ebitenrender.Surface
	ui      *overlay.Layer
	theme   render.Theme

	width, height int
	lastMouse     viewport.Point

	// path is the file name typed into the File menu.
	path string
	// message is the last error shown in the toolbar.
	message string
}

func newGame(cfg config.Editor, ui *overlay.Layer, surface *ebitenrender.Surface) *Game {
	g := &Game{
		cfg:     cfg,
		session: editor.NewSession(cfg, ebitenrender.Loader{}),
		surface: surface,
		ui:      ui,
		theme:   render.DefaultTheme,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
	ui.Add(
		overlay.Item{Name: "toolbar", Render: g.toolbar},
		overlay.Item{Name: "file menu", Render: g.fileMenu},
		overlay.Item{Name: "sprite header", Render: g.spriteHeader},
		overlay.Item{Name: "dialog", Render: g.dialog},
	)
	return g
}

// panes splits the window into the toolbar, the map pane and the sprite
// panel with its header.
type panes struct {
	toolbar viewport.Rect
	mapArea viewport.Rect
	header  viewport.Rect
	palette viewport.Rect
}

func (g *Game) panes() panes {
	scale := g.session.Scale()
	w, h := float64(g.width), float64(g.height)
	bar := float64(scale.Px(g.cfg.Toolbar))
	panel := min(float64(scale.Px(g.cfg.SpritePanel)), w)
	header := float64(scale.Px(panelHeader))

	return panes{
		toolbar: viewport.Rect{W: w, H: bar},
		mapArea: viewport.Rect{Y: bar, W: w - panel, H: h - bar},
		header:  viewport.Rect{X: w - panel, Y: bar, W: panel, H: header},
		palette: viewport.Rect{X: w - panel, Y: bar + header, W: panel, H: h - bar - header},
	}
}

func (g *Game) input() editor.Input {
	x, y := ebiten.CursorPosition()
	mouse := viewport.Point{X: float64(x), Y: float64(y)}

	in := editor.Input{
		Mouse:       mouse,
		LeftDown:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RightDown:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Shift:       ebiten.IsKeyPressed(ebiten.KeyShift),
		Captured:    g.ui.State().WantCaptureMouse,
	}
	_, in.Wheel = ebiten.Wheel()

	// middle drag pans the map
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) && !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		in.Pan = viewport.Point{X: mouse.X - g.lastMouse.X, Y: mouse.Y - g.lastMouse.Y}
	}
	g.lastMouse = mouse
	return in
}

func (g *Game) Update() error {
	g.ui.Begin()
	defer g.ui.End()

	if g.session.SetScale(g.height) {
		log.Printf("ui scale %.2f", float64(g.session.Scale()))
	}
	p := g.panes()

	keyboard := g.ui.State().WantCaptureKeyboard
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Escape()
	}
	if !keyboard && g.session.Dialog() != nil && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.report(g.session.ConfirmDialog())
	}

	in := g.input()
	g.session.HandleMapInput(in, p.mapArea)
	g.session.HandlePaletteInput(in, p.palette)

	// a click anywhere outside the menu closes it
	if g.session.MenuOpen() && in.LeftPressed && !in.Captured {
		g.session.CloseMenu()
	}

	g.ui.Render()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.theme.Background)
	p := g.panes()

	g.surface.Begin(screen)
	g.session.MapPass(p.mapArea, g.theme).Draw(g.surface)
	g.session.PalettePass(p.palette, g.theme).Draw(g.surface)
	g.drawStatus(p.mapArea)

	if g.session.Dialog() != nil {
		g.surface.FillRect(viewport.Rect{W: float64(g.width), H: float64(g.height)}, dim)
	}
	g.ui.Draw(screen)
}

func (g *Game) drawStatus(area viewport.Rect) {
	status := g.session.Status()
	if status == "" {
		return
	}
	scale := g.session.Scale()
	h := float64(scale.Px(statusHeight))
	strip := viewport.Rect{X: area.X, Y: area.Bottom() - h, W: area.W, H: h}
	g.surface.FillRect(strip, g.theme.PaletteBackground)
	g.surface.Text(status, strip.X+float64(scale.Px(6)), strip.Y+float64(scale.Px(3)), float64(scale.Px(statusText)), g.theme.Label)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ui.Layout(outsideWidth, outsideHeight)
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) report(err error) {
	if err == nil {
		g.message = ""
		return
	}
	log.Printf("mapeditor: %v", err)
	g.message = err.Error()
}
