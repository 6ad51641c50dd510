package sprite

import (
	"bufio"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// Load decodes the image at path and indexes it with the given tile size.
// Tile dimensions are checked before the file is opened.
func Load(path string, tileWidth, tileHeight int) (*Sheet, error) {
	if _, err := NewSheet(path, 0, 0, tileWidth, tileHeight); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return Decode(path, f, tileWidth, tileHeight)
}

// Decode reads a png, jpeg or bmp image from r.
func Decode(path string, r io.Reader, tileWidth, tileHeight int) (*Sheet, error) {
	img, _, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return FromImage(path, img, tileWidth, tileHeight)
}
