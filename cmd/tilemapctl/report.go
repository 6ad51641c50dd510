package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"text/template"

	"github.com/plus3/tilekit/sprite"
	"github.com/plus3/tilekit/tilemap"
)

type TileCount struct {
	Tile  tilemap.Tile
	Cells int
}

type MapReport struct {
	// Header
	Path   string
	Width  int
	Height int
	Start  tilemap.Coord
	Sprite tilemap.SpriteRef

	// Contents
	Cells   int
	Empty   int
	Tiles   []TileCount
	Clamped []*tilemap.BoundsError

	// Sheet
	Sheet      *SheetReport
	SheetError string
	Invalid    *tilemap.TileRangeError
}

func newMapReport(path string, doc *tilemap.Document, clamped []*tilemap.BoundsError) *MapReport {
	r := &MapReport{
		Path:    path,
		Width:   doc.Width(),
		Height:  doc.Height(),
		Start:   doc.Start(),
		Sprite:  doc.Sprite(),
		Cells:   doc.Width() * doc.Height(),
		Clamped: clamped,
	}

	counts := map[tilemap.Tile]int{}
	for _, t := range doc.Grid().Cells() {
		if t == tilemap.Empty {
			r.Empty++
			continue
		}
		counts[t]++
	}
	for _, t := range slices.Sorted(maps.Keys(counts)) {
		r.Tiles = append(r.Tiles, TileCount{Tile: t, Cells: counts[t]})
	}
	return r
}

func (r *MapReport) attachSheet(doc *tilemap.Document, sheet *sprite.Sheet) {
	r.Sheet = newSheetReport(sheet)
	var rangeErr *tilemap.TileRangeError
	if errors.As(doc.Validate(sheet.TotalTiles()), &rangeErr) {
		r.Invalid = rangeErr
	}
}

func (r *MapReport) Generate(w io.Writer) error {
	const reportTemplate = `
# Map Report: {{.Path}}

## Header
- **Size:** {{.Width}}x{{.Height}} ({{.Cells}} cells)
- **Start:** {{.Start}}
- **Sprite:** {{if .Sprite.IsNone}}none{{else}}{{.Sprite.Name}} ({{.Sprite.TileWidth}}x{{.Sprite.TileHeight}} px tiles){{end}}
{{- range .Clamped}}
- **Clamped:** {{.}}
{{- end}}

## Contents
- **Empty cells:** {{.Empty}} ({{percent .Empty .Cells}})
{{- range .Tiles}}
- Tile {{.Tile}}: {{.Cells}}
{{- end}}
{{if .Sheet}}
## Sprite Sheet
- **Image:** {{.Sheet.ImageWidth}}x{{.Sheet.ImageHeight}} px
- **Grid:** {{.Sheet.Cols}}x{{.Sheet.Rows}} ({{.Sheet.Total}} tiles)
{{- if .Invalid}}
- **Out of range:** {{len .Invalid.Cells}} cell(s) reference tiles beyond {{.Invalid.TotalTiles}}
{{- else}}
- **Out of range:** none
{{- end}}
{{else if .SheetError}}
## Sprite Sheet
- **Error:** {{.SheetError}}
{{end}}`

	tmpl, err := template.New("map").Funcs(funcs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}

type SheetReport struct {
	Name        string
	ImageWidth  int
	ImageHeight int
	TileWidth   int
	TileHeight  int
	Cols        int
	Rows        int
	Total       int
	PadRight    int
	PadBottom   int
}

func newSheetReport(s *sprite.Sheet) *SheetReport {
	w, h := s.ImageSize()
	return &SheetReport{
		Name:        s.Name(),
		ImageWidth:  w,
		ImageHeight: h,
		TileWidth:   s.TileWidth(),
		TileHeight:  s.TileHeight(),
		Cols:        s.Cols(),
		Rows:        s.Rows(),
		Total:       s.TotalTiles(),
		PadRight:    w - s.Cols()*s.TileWidth(),
		PadBottom:   h - s.Rows()*s.TileHeight(),
	}
}

func (r *SheetReport) Generate(w io.Writer) error {
	const reportTemplate = `
# Sprite Sheet: {{.Name}}

- **Image:** {{.ImageWidth}}x{{.ImageHeight}} px
- **Tile:** {{.TileWidth}}x{{.TileHeight}} px
- **Grid:** {{.Cols}} cols x {{.Rows}} rows
- **Tiles:** {{.Total}} (ids 1..{{.Total}}, 0 erases)
{{- if or .PadRight .PadBottom}}
- **Unused padding:** {{.PadRight}} px right, {{.PadBottom}} px bottom
{{- end}}
`

	tmpl, err := template.New("sheet").Funcs(funcs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}

var funcs = template.FuncMap{
	"percent": func(part, whole int) string {
		if whole == 0 {
			return "0%"
		}
		return fmt.Sprintf("%d%%", part*100/whole)
	},
}
