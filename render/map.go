package render

import (
	"strconv"

	"github.com/plus3/tilekit/sprite"
	"github.com/plus3/tilekit/tilemap"
	"github.com/plus3/tilekit/viewport"
)

// MapPass draws the visible part of a map document into its pane.
//
// Cells holding a tile the sheet can resolve are drawn from the texture.
// Other non-empty cells get a labelled placeholder, and empty cells only
// get the background fill.
type MapPass struct {
	View    viewport.Viewport
	Doc     *tilemap.Document
	Sheet   *sprite.Sheet
	Texture Texture
	Theme   Theme
	Scale   viewport.Scale

	Grid      bool
	ShowStart bool
	Hover     *tilemap.Coord
	Player    *tilemap.Coord
}

// Draw renders the pass and returns the number of cells drawn.
func (p MapPass) Draw(s Surface) int {
	s.FillRect(p.View.Area, p.Theme.Background)

	if p.Doc == nil {
		centerText(s, "No map loaded.  Use File > New Map or Load Map", p.View.Area, px(p.Scale, 18), p.Theme.Hint)
		return 0
	}

	view := p.View
	view.Cols, view.Rows = p.Doc.Width(), p.Doc.Height()

	clip := view.Visible
	if clip == (viewport.Rect{}) {
		clip = view.Area
	}
	s.Clip(clip)
	defer s.Unclip()

	drawn := 0
	for c := range view.VisibleCells() {
		r := view.CellRect(c)
		t, _ := p.Doc.At(c)
		p.drawTile(s, t, r)

		if p.Grid {
			s.StrokeRect(r, 1, p.Theme.Grid)
		}
		if p.ShowStart && c == p.Doc.Start() {
			s.StrokeRect(r, 2, p.Theme.Start)
			s.Text("S", r.X+px(p.Scale, 3), r.Y+px(p.Scale, 2), px(p.Scale, 12), p.Theme.Start)
		}
		if p.Player != nil && c == *p.Player {
			avatar := r.Inset(r.W / 4)
			s.FillRect(avatar, p.Theme.Player)
			centerText(s, "P", r, px(p.Scale, 12), p.Theme.Label)
		}
		if p.Hover != nil && c == *p.Hover {
			s.FillRect(r, p.Theme.Hover)
		}
		drawn++
	}
	return drawn
}

func (p MapPass) drawTile(s Surface, t tilemap.Tile, r viewport.Rect) {
	if t <= tilemap.Empty {
		s.FillRect(r, p.Theme.Empty)
		return
	}
	if p.Sheet != nil && p.Texture != nil {
		if src, ok := p.Sheet.TileRect(t); ok {
			s.DrawTexture(p.Texture, src, r)
			return
		}
	}
	s.FillRect(r, p.Theme.Placeholder)
	centerText(s, strconv.Itoa(int(t)), r, px(p.Scale, 10), p.Theme.Label)
}
