package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Dump writes a human-readable view of doc. The marker cell, usually the
// player, is printed as "P"; pass nil to print tiles only.
func Dump(w io.Writer, doc *Document, marker *Coord) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "map %dx%d sprite %s\n", doc.Width(), doc.Height(), doc.Sprite().Name)
	for y := 0; y < doc.Height(); y++ {
		for x := 0; x < doc.Width(); x++ {
			c := Coord{X: x, Y: y}
			label := "P"
			if marker == nil || *marker != c {
				t, _ := doc.At(c)
				label = strconv.Itoa(int(t))
			}
			fmt.Fprintf(bw, "%3s", label)
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "start %s", doc.Start())
	if marker != nil {
		fmt.Fprintf(bw, " player %s", *marker)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
