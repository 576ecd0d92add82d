package torus

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyInput indicates the input text contains zero lines.
	ErrEmptyInput = errors.New("torus: input has no lines")
	// ErrInputRead indicates the input source could not be read or is not
	// valid UTF-8 text.
	ErrInputRead = errors.New("torus: read failed")
)

// Blank is the rune used to pad rows shorter than the grid width.
const Blank = ' '

// Directions lists the neighbor offsets (dx, dy) in search order:
// down, right, up, left. The order decides which of several equal-length
// shortest paths a breadth-first search returns.
var Directions = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Coord addresses a single cell. Valid coordinates satisfy
// 0 ≤ X < Width and 0 ≤ Y < Height.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a mutable Width×Height field of runes with toroidal adjacency.
// cells[y][x] holds the rune at column x, row y.
type Grid struct {
	Width, Height int
	cells         [][]rune
}
