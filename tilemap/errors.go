package tilemap

import (
	"fmt"
	"strings"
)

// FormatError reports input that cannot be decoded as a map document, or a
// document that cannot be represented in the text format.
type FormatError struct {
	Line int // 1-based line number, 0 when not tied to a line
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("tilemap: line %d: %s", e.Line, e.Msg)
	}
	return "tilemap: " + e.Msg
}

// BoundsError describes a value that exceeded its allowed range. The decoder
// clamps such values and reports them through Decoder.Clamped; Grid.Set
// returns one for out-of-range coordinates.
type BoundsError struct {
	Field string
	Value int
	Max   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("tilemap: %s %d out of range (max %d)", e.Field, e.Value, e.Max)
}

// TileRangeError lists cells whose tile id is outside the attached sheet.
type TileRangeError struct {
	TotalTiles int
	Cells      []Coord
}

func (e *TileRangeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tilemap: %d cell(s) reference tiles beyond %d:", len(e.Cells), e.TotalTiles)
	for i, c := range e.Cells {
		if i == 8 {
			b.WriteString(" ...")
			break
		}
		fmt.Fprintf(&b, " %s", c)
	}
	return b.String()
}

// IoError wraps a failure to open, read or write a map file.
type IoError struct {
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("tilemap: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }
