// Package ebitenrender implements the render collaborators on top of Ebiten.
package ebitenrender

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kamstrup/intmap"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/plus3/tilekit/render"
	"github.com/plus3/tilekit/viewport"
)

var (
	_ render.TextureLoader = Loader{}
	_ render.Surface       = (*Surface)(nil)
)

// Texture is a sheet image living on the GPU. Sub-images for source
// rectangles are created once and reused.
type Texture struct {
	img  *ebiten.Image
	subs *intmap.Map[uint64, *ebiten.Image]
}

// Size returns the texture size in pixels.
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Release frees the GPU memory. The texture must not be drawn afterwards.
func (t *Texture) Release() {
	t.subs.Clear()
	t.img.Deallocate()
}

func (t *Texture) sub(src image.Rectangle) *ebiten.Image {
	key := uint64(src.Min.X)<<48 | uint64(src.Min.Y)<<32 | uint64(src.Dx())<<16 | uint64(src.Dy())
	if img, ok := t.subs.Get(key); ok {
		return img
	}
	img := t.img.SubImage(src).(*ebiten.Image)
	t.subs.Put(key, img)
	return img
}

// Loader uploads decoded sheet images.
type Loader struct{}

// Upload copies img into a new Ebiten image.
func (Loader) Upload(img image.Image) (render.Texture, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("ebitenrender: empty image")
	}
	return &Texture{
		img:  ebiten.NewImageFromImage(img),
		subs: intmap.New[uint64, *ebiten.Image](64),
	}, nil
}

// Surface draws onto an Ebiten screen image.
type Surface struct {
	screen *ebiten.Image
	target *ebiten.Image
	font   *text.GoTextFaceSource
}

// NewSurface loads the label font. Call Begin every frame before drawing.
func NewSurface() (*Surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenrender: load font: %w", err)
	}
	return &Surface{font: src}, nil
}

// Begin points the surface at this frame's screen.
func (s *Surface) Begin(screen *ebiten.Image) {
	s.screen = screen
	s.target = screen
}

func (s *Surface) DrawTexture(tex render.Texture, src image.Rectangle, dst viewport.Rect) {
	t, ok := tex.(*Texture)
	if !ok || src.Empty() {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(dst.W/float64(src.Dx()), dst.H/float64(src.Dy()))
	opts.GeoM.Translate(dst.X, dst.Y)
	opts.Filter = ebiten.FilterNearest
	s.target.DrawImage(t.sub(src), opts)
}

func (s *Surface) FillRect(dst viewport.Rect, c color.Color) {
	vector.DrawFilledRect(s.target, float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H), c, false)
}

func (s *Surface) StrokeRect(dst viewport.Rect, width float64, c color.Color) {
	// vector strokes are centred on the edge; keep them inside the rect
	in := dst.Inset(width / 2)
	vector.StrokeRect(s.target, float32(in.X), float32(in.Y), float32(in.W), float32(in.H), float32(width), c, false)
}

func (s *Surface) Text(str string, x, y, size float64, c color.Color) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(c)
	text.Draw(s.target, str, s.face(size), opts)
}

func (s *Surface) MeasureText(str string, size float64) float64 {
	w, _ := text.Measure(str, s.face(size), 0)
	return w
}

func (s *Surface) Clip(r viewport.Rect) {
	rect := image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
	s.target = s.screen.SubImage(rect).(*ebiten.Image)
}

func (s *Surface) Unclip() {
	s.target = s.screen
}

func (s *Surface) face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: s.font, Size: size}
}
