package tilemap

import (
	"bytes"
	"os"
	"path/filepath"
)

// ReadFile loads the document stored at path. Clamped values are reported in
// the second result.
func ReadFile(path string) (*Document, []*BoundsError, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &IoError{Op: "read", Path: path, Err: err}
	}
	dec := NewDecoder(bytes.NewReader(data))
	doc, err := dec.Decode()
	if err != nil {
		return nil, nil, err
	}
	return doc, dec.Clamped(), nil
}

// WriteFile stores doc at path. The document is encoded before the file is
// touched, so an unencodable document leaves any existing file intact.
func WriteFile(path string, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &IoError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// SiblingPath resolves name relative to the directory holding mapPath. Map
// files refer to their sprite sheet by bare file name.
func SiblingPath(mapPath, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(filepath.Dir(mapPath), name)
}
