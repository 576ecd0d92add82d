package torus

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Parse builds a Grid from text, one row per line.
// Lines are separated by '\n'; a trailing '\r' on a line is dropped and a
// final newline does not start an extra row. Height is the number of lines,
// Width the rune length of the longest one; shorter rows are padded with Blank.
// Returns ErrEmptyInput if text holds no lines at all, and an error wrapping
// ErrInputRead if text is not valid UTF-8.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrInputRead)
	}
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	w := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > w {
			w = n
		}
	}
	g := New(w, len(lines))
	for y, line := range lines {
		x := 0
		for _, r := range line {
			g.cells[y][x] = r
			x++
		}
	}

	return g, nil
}

// Read consumes r entirely and parses it as a grid.
// Read failures are wrapped with ErrInputRead.
func Read(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputRead, err)
	}
	return Parse(string(data))
}

// Load reads the file at path and parses it as a grid.
// A missing or unreadable file yields an error wrapping ErrInputRead and
// naming both the path and the OS cause.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInputRead, path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return g, nil
}

// New allocates a w×h grid filled with Blank.
func New(w, h int) *Grid {
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = Blank
		}
		cells[y] = row
	}
	return &Grid{Width: w, Height: h, cells: cells}
}

// At returns the rune at (x,y). It panics if (x,y) is out of bounds.
func (g *Grid) At(x, y int) rune {
	return g.cells[y][x]
}

// Set stores r at (x,y). It panics if (x,y) is out of bounds.
func (g *Grid) Set(x, y int, r rune) {
	g.cells[y][x] = r
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Normalize wraps (x,y) onto the torus using a non-negative modulus, so
// leaving the left edge re-enters on the right and leaving the top re-enters
// at the bottom. The grid must have non-zero Width and Height.
// Complexity: O(1).
func (g *Grid) Normalize(x, y int) Coord {
	return Coord{
		X: ((x % g.Width) + g.Width) % g.Width,
		Y: ((y % g.Height) + g.Height) % g.Height,
	}
}

// Neighbors returns the four toroidal neighbors of c in Directions order.
func (g *Grid) Neighbors(c Coord) [4]Coord {
	var out [4]Coord
	for i, d := range Directions {
		out[i] = g.Normalize(c.X+d[0], c.Y+d[1])
	}
	return out
}

// Find scans rows top to bottom and columns left to right, returning the
// first coordinate holding target. ok is false when target is absent.
// Complexity: O(W×H).
func (g *Grid) Find(target rune) (c Coord, ok bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] == target {
				return Coord{X: x, Y: y}, true
			}
		}
	}
	return Coord{}, false
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, cells: make([][]rune, g.Height)}
	for y := range g.cells {
		c.cells[y] = make([]rune, g.Width)
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Row returns a copy of row y as a string, padding included.
func (g *Grid) Row(y int) string {
	return string(g.cells[y])
}

// String joins the rows with '\n'. Padding spaces are kept and no trailing
// newline is added.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range row {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Index maps c to its row-major index.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return g.index(c.X, c.Y)
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.Width, Y: idx / g.Width}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
