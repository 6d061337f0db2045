// Package world provides generic 2D grid primitives for tile-based games.
// The grid is unbounded: a Position is just a coordinate pair, and cells only
// exist where the game chooses to remember them.
package world

import "fmt"

// Position is an integer cell coordinate on the unbounded grid.
type Position struct {
	X int
	Y int
}

// Step returns the position one cell away in the given direction.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
