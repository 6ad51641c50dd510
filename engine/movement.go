package engine

import "github.com/plus3/tilekit/tilemap"

// Direction is one of the four grid neighbours.
type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

var directionNames = [...]string{"right", "left", "up", "down"}

func (d Direction) String() string {
	if d < Right || d > Down {
		return "unknown"
	}
	return directionNames[d]
}

// Delta is the coordinate change of a single step in d.
func (d Direction) Delta() tilemap.Coord {
	switch d {
	case Right:
		return tilemap.Coord{X: 1}
	case Left:
		return tilemap.Coord{X: -1}
	case Up:
		return tilemap.Coord{Y: -1}
	case Down:
		return tilemap.Coord{Y: 1}
	}
	return tilemap.Coord{}
}

// Options says which directions the player may step in.
type Options struct {
	Right, Left, Up, Down bool
}

// Allows reports whether d is permitted.
func (o Options) Allows(d Direction) bool {
	switch d {
	case Right:
		return o.Right
	case Left:
		return o.Left
	case Up:
		return o.Up
	case Down:
		return o.Down
	}
	return false
}

// MovementOptions computes the permitted steps from pos on g. A step is
// permitted when pos is not on that edge of the grid and the neighbouring
// tile is greater than zero: only non-empty cells are walkable.
func MovementOptions(g *tilemap.Grid, pos tilemap.Coord) Options {
	walkable := func(d Direction) bool {
		next := tilemap.Coord{X: pos.X + d.Delta().X, Y: pos.Y + d.Delta().Y}
		t, ok := g.At(next)
		return ok && t > 0
	}
	return Options{
		Right: walkable(Right),
		Left:  walkable(Left),
		Up:    walkable(Up),
		Down:  walkable(Down),
	}
}
