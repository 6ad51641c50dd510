package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tilekit/editor"
	"github.com/plus3/tilekit/tilemap"
)

const (
	barFlags = imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoCollapse | imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoScrollbar
	menuFlags = imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoMove | imgui.WindowFlagsNoSavedSettings |
		imgui.WindowFlagsAlwaysAutoResize
	dialogFlags = imgui.WindowFlagsNoCollapse | imgui.WindowFlagsNoMove | imgui.WindowFlagsNoSavedSettings |
		imgui.WindowFlagsAlwaysAutoResize
)

var errNoPath = errors.New("enter a file path in the File menu first")

// beginBar opens a fixed, undecorated window at x, y with size w x h.
func beginBar(name string, x, y, w, h float64) bool {
	imgui.SetNextWindowPosV(imgui.NewVec2(float32(x), float32(y)), imgui.CondAlways, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(float32(w), float32(h)), imgui.CondAlways)
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(4, 2))
	open := imgui.BeginV(name, nil, barFlags)
	imgui.PopStyleVar()
	return open
}

func (g *Game) toolbar() {
	r := g.panes().toolbar
	if beginBar("##toolbar", r.X, r.Y, r.W, r.H) {
		if imgui.Button("File") {
			g.session.ToggleMenu()
		}
		info := g.session.Info()
		for _, label := range []string{info.Map, info.Sprite, info.Brush} {
			if label != "" {
				imgui.SameLine()
				imgui.Text(label)
			}
		}
		if g.message != "" {
			imgui.SameLine()
			imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(1, 0.4, 0.4, 1))
			imgui.Text(g.message)
			imgui.PopStyleColor()
		}
	}
	imgui.End()
}

func (g *Game) fileMenu() {
	if !g.session.MenuOpen() {
		return
	}
	r := g.panes().toolbar
	imgui.SetNextWindowPosV(imgui.NewVec2(float32(r.X), float32(r.Bottom())), imgui.CondAlways, imgui.NewVec2(0, 0))
	if imgui.BeginV("##filemenu", nil, menuFlags) {
		imgui.SetNextItemWidth(260)
		imgui.InputTextWithHint("##path", "maps/level1.txt or tiles.png", &g.path, imgui.InputTextFlagsNone, nil)
		imgui.Separator()

		full := imgui.NewVec2(-1, 0)
		if imgui.ButtonV("New Map", full) {
			g.session.OpenNewMapDialog()
		}
		if imgui.ButtonV("Load Map", full) {
			g.loadMap(g.path)
		}
		if imgui.ButtonV("Save Map", full) {
			g.saveMap()
		}
		if imgui.ButtonV("Load Sprite", full) {
			g.loadSprite()
		}
	}
	imgui.End()
}

func (g *Game) spriteHeader() {
	r := g.panes().header
	if beginBar("##sprites", r.X, r.Y, r.W, r.H) {
		if imgui.Button("Eraser (Clear Tile)") {
			g.session.SelectTile(tilemap.Empty)
		}
	}
	imgui.End()
}

func (g *Game) dialog() {
	d := g.session.Dialog()
	if d == nil {
		return
	}

	center := imgui.NewVec2(float32(g.width)/2, float32(g.height)/2)
	imgui.SetNextWindowPosV(center, imgui.CondAlways, imgui.NewVec2(0.5, 0.5))
	if imgui.BeginV(d.Title(), nil, dialogFlags) {
		switch d := d.(type) {
		case *editor.NewMapDialog:
			inputInt("Width", &d.Width)
			inputInt("Height", &d.Height)
			imgui.Text(fmt.Sprintf("Sizes are clamped to %dx%d.", tilemap.MaxWidth, tilemap.MaxHeight))
		case *editor.TileSizeDialog:
			imgui.Text(filepath.Base(d.Path))
			inputInt("Tile width", &d.TileWidth)
			inputInt("Tile height", &d.TileHeight)
		}
		imgui.Separator()
		if imgui.Button("OK") {
			g.report(g.session.ConfirmDialog())
		}
		imgui.SameLine()
		if imgui.Button("Cancel") {
			g.session.CancelDialog()
		}
	}
	imgui.End()
}

func inputInt(label string, v *int) {
	n := int32(*v)
	imgui.SetNextItemWidth(120)
	if imgui.InputInt(label, &n) {
		*v = int(n)
	}
}

func (g *Game) loadMap(path string) {
	g.session.CloseMenu()
	if path == "" {
		g.report(errNoPath)
		return
	}
	report, err := g.session.LoadMap(path)
	if err != nil {
		g.report(err)
		return
	}
	g.report(report.SheetErr)
	for _, c := range report.Clamped {
		log.Printf("%s: clamped %v", path, c)
	}
	if report.SheetPath != "" {
		log.Printf("loaded %s with %s", path, report.SheetPath)
	}
	if report.Invalid != nil {
		log.Printf("%s: %v", path, report.Invalid)
	}
}

func (g *Game) saveMap() {
	g.session.CloseMenu()
	path := g.path
	if path == "" {
		path = g.session.MapPath()
	}
	if path == "" {
		g.report(errNoPath)
		return
	}
	if err := g.session.SaveMap(path); err != nil {
		g.report(err)
		return
	}
	g.report(nil)
	log.Printf("saved %s", path)
}

func (g *Game) loadSprite() {
	if g.path == "" {
		g.session.CloseMenu()
		g.report(errNoPath)
		return
	}
	g.session.OpenTileSizeDialog(g.path)
}
