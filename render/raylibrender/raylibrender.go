// Package raylibrender implements the render collaborators on top of raylib.
// All calls must happen on the thread that opened the window.
package raylibrender

import (
	"errors"
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/plus3/tilekit/render"
	"github.com/plus3/tilekit/viewport"
)

var (
	_ render.TextureLoader = Loader{}
	_ render.Surface       = Surface{}
)

// Texture wraps a raylib texture.
type Texture struct {
	tex rl.Texture2D
}

// Size returns the texture size in pixels.
func (t *Texture) Size() (int, int) { return int(t.tex.Width), int(t.tex.Height) }

// Release unloads the texture from the GPU.
func (t *Texture) Release() {
	if t.tex.ID != 0 {
		rl.UnloadTexture(t.tex)
		t.tex = rl.Texture2D{}
	}
}

// Loader uploads decoded sheet images.
type Loader struct{}

// Upload converts img to a raylib image and loads it as a texture.
func (Loader) Upload(img image.Image) (render.Texture, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New("raylibrender: empty image")
	}
	rimg := rl.NewImageFromImage(img)
	defer rl.UnloadImage(rimg)

	tex := rl.LoadTextureFromImage(rimg)
	if tex.ID == 0 {
		return nil, errors.New("raylibrender: texture upload failed")
	}
	return &Texture{tex: tex}, nil
}

// Surface draws with the raylib immediate mode API between BeginDrawing and
// EndDrawing.
type Surface struct{}

func (Surface) DrawTexture(tex render.Texture, src image.Rectangle, dst viewport.Rect) {
	t, ok := tex.(*Texture)
	if !ok || t.tex.ID == 0 {
		return
	}
	rl.DrawTexturePro(t.tex, rl.NewRectangle(float32(src.Min.X), float32(src.Min.Y), float32(src.Dx()), float32(src.Dy())),
		rect(dst), rl.Vector2{}, 0, rl.White)
}

func (Surface) FillRect(dst viewport.Rect, c color.Color) {
	rl.DrawRectangleRec(rect(dst), rgba(c))
}

func (Surface) StrokeRect(dst viewport.Rect, width float64, c color.Color) {
	rl.DrawRectangleLinesEx(rect(dst), float32(width), rgba(c))
}

func (Surface) Text(s string, x, y, size float64, c color.Color) {
	rl.DrawText(s, int32(x), int32(y), int32(size), rgba(c))
}

func (Surface) MeasureText(s string, size float64) float64 {
	return float64(rl.MeasureText(s, int32(size)))
}

func (Surface) Clip(r viewport.Rect) {
	rl.BeginScissorMode(int32(r.X), int32(r.Y), int32(r.W), int32(r.H))
}

func (Surface) Unclip() { rl.EndScissorMode() }

func rect(r viewport.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

// rgba converts to the straight-alpha color raylib expects.
func rgba(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}
