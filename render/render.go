// Package render lays out the map pane and the sprite palette and issues the
// resulting draw calls through a backend Surface. Backends live in the
// ebitenrender and raylibrender subpackages.
package render

import (
	"image"
	"image/color"

	"github.com/plus3/tilekit/viewport"
)

// Texture is a sprite sheet uploaded to the GPU.
type Texture interface {
	Size() (int, int)
	Release()
}

// TextureLoader turns a decoded sheet image into a Texture.
type TextureLoader interface {
	Upload(img image.Image) (Texture, error)
}

// Surface is the drawing target of a frame. Coordinates are screen pixels.
type Surface interface {
	DrawTexture(tex Texture, src image.Rectangle, dst viewport.Rect)
	FillRect(dst viewport.Rect, c color.Color)
	StrokeRect(dst viewport.Rect, width float64, c color.Color)
	Text(s string, x, y, size float64, c color.Color)
	MeasureText(s string, size float64) float64

	// Clip restricts drawing to r until Unclip is called.
	Clip(r viewport.Rect)
	Unclip()
}

// Theme holds the colors used by the passes.
type Theme struct {
	Background  color.Color
	Empty       color.Color
	Placeholder color.Color
	Grid        color.Color
	Start       color.Color
	Hover       color.Color
	Label       color.Color
	Hint        color.Color
	Player      color.Color

	PaletteBackground color.Color
	PaletteTile       color.Color
	PaletteBorder     color.Color
	PaletteSelected   color.Color
	PaletteHover      color.Color
}

// DefaultTheme is the dark editor look.
var DefaultTheme = Theme{
	Background:  color.RGBA{30, 30, 30, 255},
	Empty:       color.RGBA{20, 20, 20, 255},
	Placeholder: color.RGBA{60, 100, 60, 255},
	Grid:        color.RGBA{50, 50, 50, 255},
	Start:       color.RGBA{0, 228, 48, 255},
	Hover:       color.NRGBA{255, 255, 255, 40},
	Label:       color.White,
	Hint:        color.RGBA{130, 130, 130, 255},
	Player:      color.RGBA{230, 41, 55, 255},

	PaletteBackground: color.RGBA{35, 35, 35, 255},
	PaletteTile:       color.RGBA{25, 25, 25, 255},
	PaletteBorder:     color.RGBA{60, 60, 60, 255},
	PaletteSelected:   color.RGBA{253, 249, 0, 255},
	PaletteHover:      color.NRGBA{255, 255, 255, 30},
}

func px(s viewport.Scale, v int) float64 {
	if s <= 0 {
		s = 1
	}
	return float64(s.Px(v))
}

func centerText(surface Surface, s string, r viewport.Rect, size float64, c color.Color) {
	w := surface.MeasureText(s, size)
	surface.Text(s, r.X+(r.W-w)/2, r.Y+(r.H-size)/2, size, c)
}
