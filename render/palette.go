package render

import (
	"strconv"

	"github.com/plus3/tilekit/sprite"
	"github.com/plus3/tilekit/tilemap"
	"github.com/plus3/tilekit/viewport"
)

// PalettePass draws every tile of the sheet into the side panel and marks
// the current brush.
type PalettePass struct {
	Layout  viewport.PaletteLayout
	Sheet   *sprite.Sheet
	Texture Texture
	Theme   Theme
	Scale   viewport.Scale
	Hover   tilemap.Tile
}

// Draw renders the palette and returns the number of tiles drawn.
func (p PalettePass) Draw(s Surface) int {
	area := p.Layout.Area
	s.FillRect(area, p.Theme.PaletteBackground)

	if p.Sheet == nil || p.Texture == nil {
		size := px(p.Scale, 14)
		s.Text("No sprite loaded.", area.X+px(p.Scale, 12), area.Y+px(p.Scale, 26), size, p.Theme.Hint)
		s.Text("File > Load Sprite", area.X+px(p.Scale, 12), area.Y+px(p.Scale, 46), size, p.Theme.Hint)
		return 0
	}

	layout := p.Layout
	layout.Count = p.Sheet.TotalTiles()

	s.Clip(area)
	defer s.Unclip()

	drawn := 0
	for i := 1; i <= layout.Count; i++ {
		id := tilemap.Tile(i)
		dst, _ := layout.TileRect(id)
		if dst.Disjoint(area) {
			continue
		}
		s.FillRect(dst, p.Theme.PaletteTile)
		if src, ok := p.Sheet.TileRect(id); ok {
			s.DrawTexture(p.Texture, src, dst)
		}
		if id == p.Sheet.Selected() {
			s.StrokeRect(dst, 3, p.Theme.PaletteSelected)
		} else {
			s.StrokeRect(dst, 1, p.Theme.PaletteBorder)
		}
		if id == p.Hover {
			s.FillRect(dst, p.Theme.PaletteHover)
			s.Text(strconv.Itoa(i), dst.X+px(p.Scale, 2), dst.Y+px(p.Scale, 2), px(p.Scale, 10), p.Theme.Label)
		}
		drawn++
	}
	return drawn
}
