// Package engine is the read-only runtime side of tilekit: it loads a map,
// places the player on the start cell and answers movement queries. A small
// frame scheduler drives the front end's systems.
package engine

import (
	"errors"
	"io"

	"github.com/plus3/tilekit/tilemap"
)

// Player is the player's cell.
type Player struct {
	Coord tilemap.Coord
}

// Session holds the loaded map and the player.
type Session struct {
	Map     *tilemap.Document
	Player  Player
	Console Console

	// Clamped lists the header values the decoder had to clamp on load.
	Clamped []*tilemap.BoundsError
}

// NewSession places the player on the start cell of doc.
func NewSession(doc *tilemap.Document) (*Session, error) {
	if doc == nil {
		return nil, errors.New("engine: nil map")
	}
	return &Session{Map: doc, Player: Player{Coord: doc.Start()}}, nil
}

// Load reads a map file and starts a session on it.
func Load(path string) (*Session, error) {
	doc, clamped, err := tilemap.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := NewSession(doc)
	if err != nil {
		return nil, err
	}
	s.Clamped = clamped
	return s, nil
}

// Options reports the permitted steps from the player's cell.
func (s *Session) Options() Options {
	return MovementOptions(s.Map.Grid(), s.Player.Coord)
}

// Move steps the player one cell in d when permitted. A refused move leaves
// the player where it is and returns false.
func (s *Session) Move(d Direction) bool {
	if !s.Options().Allows(d) {
		return false
	}
	delta := d.Delta()
	s.Player.Coord.X += delta.X
	s.Player.Coord.Y += delta.Y
	return true
}

// Reset puts the player back on the start cell.
func (s *Session) Reset() {
	s.Player.Coord = s.Map.Start()
}

// Dump writes the map with the player marked.
func (s *Session) Dump(w io.Writer) error {
	pos := s.Player.Coord
	return tilemap.Dump(w, s.Map, &pos)
}
