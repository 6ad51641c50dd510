package tilemap

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const maxLineSize = 1 << 20

// Decoder reads a map document from the text format:
//
//	<spriteFileName> <tileW> <tileH>
//	<width> <height>
//	<startX> <startY>
//	<width tiles>            (height lines, top row first)
//
// The three header lines are mandatory. Row data is lenient: missing rows
// or trailing values are left empty, and a value that is not a non-negative
// integer ends its row.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
	clamped []*BoundsError
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Decoder{scanner: s}
}

// Decode reads one document. On error no document is returned.
func (d *Decoder) Decode() (*Document, error) {
	d.clamped = nil

	header, err := d.header("sprite header", 3)
	if err != nil {
		return nil, err
	}
	tileW, err := d.number(header[1], "tile width")
	if err != nil {
		return nil, err
	}
	tileH, err := d.number(header[2], "tile height")
	if err != nil {
		return nil, err
	}
	sprite := SpriteRef{Name: header[0], TileWidth: tileW, TileHeight: tileH}.normalize()

	size, err := d.header("size line", 2)
	if err != nil {
		return nil, err
	}
	width, err := d.dimension(size[0], "width", MaxWidth)
	if err != nil {
		return nil, err
	}
	height, err := d.dimension(size[1], "height", MaxHeight)
	if err != nil {
		return nil, err
	}

	startLine, err := d.header("start line", 2)
	if err != nil {
		return nil, err
	}
	startX, err := d.number(startLine[0], "start x")
	if err != nil {
		return nil, err
	}
	startY, err := d.number(startLine[1], "start y")
	if err != nil {
		return nil, err
	}

	doc, err := New(width, height)
	if err != nil {
		return nil, err
	}
	doc.sprite = sprite
	doc.start = Coord{X: d.clamp(startX, "start x", width-1), Y: d.clamp(startY, "start y", height-1)}

	for y := 0; y < height; y++ {
		fields, ok := d.next()
		if !ok {
			break
		}
		for x := 0; x < width && x < len(fields); x++ {
			v, err := strconv.ParseUint(fields[x], 10, 31)
			if err != nil {
				break
			}
			doc.grid.cells[y*width+x] = Tile(v)
		}
	}
	if err := d.scanner.Err(); err != nil {
		return nil, &FormatError{Line: d.line, Msg: err.Error()}
	}
	return doc, nil
}

// Clamped reports the values the last Decode had to clamp into range.
func (d *Decoder) Clamped() []*BoundsError {
	return d.clamped
}

// next returns the fields of the next non-blank line.
func (d *Decoder) next() ([]string, bool) {
	for d.scanner.Scan() {
		d.line++
		fields := strings.Fields(d.scanner.Text())
		if len(fields) > 0 {
			return fields, true
		}
	}
	return nil, false
}

func (d *Decoder) header(name string, want int) ([]string, error) {
	fields, ok := d.next()
	if !ok {
		if err := d.scanner.Err(); err != nil {
			return nil, &FormatError{Line: d.line + 1, Msg: err.Error()}
		}
		return nil, &FormatError{Line: d.line + 1, Msg: "missing " + name}
	}
	if len(fields) < want {
		return nil, &FormatError{
			Line: d.line,
			Msg:  fmt.Sprintf("%s has %d field(s), want %d", name, len(fields), want),
		}
	}
	return fields, nil
}

func (d *Decoder) number(s, name string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, &FormatError{Line: d.line, Msg: fmt.Sprintf("%s %q is not a non-negative integer", name, s)}
	}
	return int(v), nil
}

func (d *Decoder) dimension(s, name string, limit int) (int, error) {
	v, err := d.number(s, name)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, &FormatError{Line: d.line, Msg: name + " must be at least 1"}
	}
	return d.clamp(v, name, limit), nil
}

func (d *Decoder) clamp(v int, name string, limit int) int {
	if v <= limit {
		return v
	}
	d.clamped = append(d.clamped, &BoundsError{Field: name, Value: v, Max: limit})
	return limit
}

// Decode parses a document from data.
func Decode(data []byte) (*Document, error) {
	return NewDecoder(bytes.NewReader(data)).Decode()
}

// Encoder writes documents in the text format.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes doc as exactly 3+height lines.
func (e *Encoder) Encode(doc *Document) error {
	sprite := doc.sprite.normalize()
	if strings.ContainsFunc(sprite.Name, unicode.IsSpace) {
		return &FormatError{Line: 1, Msg: fmt.Sprintf("sprite name %q contains whitespace", sprite.Name)}
	}
	if sprite.IsNone() {
		sprite.TileWidth, sprite.TileHeight = 0, 0
	}
	for _, v := range [2]int{sprite.TileWidth, sprite.TileHeight} {
		if v < 0 || v > math.MaxInt32 {
			return &FormatError{Line: 1, Msg: fmt.Sprintf("tile size %dx%d out of range", sprite.TileWidth, sprite.TileHeight)}
		}
	}

	bw := bufio.NewWriter(e.w)
	fmt.Fprintf(bw, "%s %d %d\n", sprite.Name, sprite.TileWidth, sprite.TileHeight)
	fmt.Fprintf(bw, "%d %d\n", doc.Width(), doc.Height())
	fmt.Fprintf(bw, "%d %d\n", doc.start.X, doc.start.Y)

	var num []byte
	for y := 0; y < doc.Height(); y++ {
		for x := 0; x < doc.Width(); x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			num = strconv.AppendInt(num[:0], int64(doc.grid.cells[y*doc.Width()+x]), 10)
			bw.Write(num)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Encode renders doc in the text format.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
