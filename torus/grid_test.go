package torus_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/torusroute/torus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioA is a 7×4 map with the entry at (4,1) and the exit at (3,2).
const scenarioA = "##    #\n#  #i #\n#  O## \n   #   "

//----------------------------------------------------------------------------//
// Parse, Read and Load
//----------------------------------------------------------------------------//

// TestParse_Dimensions checks Width/Height and cell placement on a fixed map.
func TestParse_Dimensions(t *testing.T) {
	g, err := torus.Parse(scenarioA)
	require.NoError(t, err)
	assert.Equal(t, 7, g.Width)
	assert.Equal(t, 4, g.Height)
	assert.Equal(t, 'i', g.At(4, 1))
	assert.Equal(t, 'O', g.At(3, 2))
	assert.Equal(t, '#', g.At(0, 0))
}

// TestParse_Errors verifies that text without any line is rejected.
func TestParse_Errors(t *testing.T) {
	_, err := torus.Parse("")
	require.ErrorIs(t, err, torus.ErrEmptyInput)
}

// TestParse_InvalidUTF8 rejects bytes that do not decode as text instead of
// turning them into replacement characters.
func TestParse_InvalidUTF8(t *testing.T) {
	_, err := torus.Parse("#\xe9i O#")
	require.ErrorIs(t, err, torus.ErrInputRead)
	assert.Contains(t, err.Error(), "UTF-8")

	path := filepath.Join(t.TempDir(), "latin1.txt")
	require.NoError(t, os.WriteFile(path, []byte("#\xe9i O#"), 0o600))
	_, err = torus.Load(path)
	require.ErrorIs(t, err, torus.ErrInputRead)
	assert.Contains(t, err.Error(), "latin1.txt")
}

// TestParse_LineSplitting covers newline handling at the edges of the text.
func TestParse_LineSplitting(t *testing.T) {
	cases := []struct {
		name          string
		text          string
		width, height int
	}{
		{"SingleLine", "abc", 3, 1},
		{"TrailingNewline", "abc\nde\n", 3, 2},
		{"CRLF", "ab\r\ncd\r\n", 2, 2},
		{"InnerBlankLine", "ab\n\ncd", 2, 3},
		{"OnlyNewline", "\n", 0, 1},
		{"Unicode", "ab\nλμν", 3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := torus.Parse(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.width, g.Width, "width")
			assert.Equal(t, tc.height, g.Height, "height")
		})
	}
}

// TestParse_RaggedPadding ensures short rows are padded with open blanks.
func TestParse_RaggedPadding(t *testing.T) {
	g, err := torus.Parse("####\n#\n##")
	require.NoError(t, err)
	require.Equal(t, 4, g.Width)

	assert.Equal(t, "#   ", g.Row(1))
	assert.Equal(t, "##  ", g.Row(2))
	assert.Equal(t, torus.Blank, g.At(3, 1))
}

// TestParse_Idempotent loads the same text twice and compares the results.
func TestParse_Idempotent(t *testing.T) {
	a, err := torus.Parse(scenarioA)
	require.NoError(t, err)
	b, err := torus.Parse(scenarioA)
	require.NoError(t, err)

	assert.Equal(t, a.Width, b.Width)
	assert.Equal(t, a.Height, b.Height)
	for y := 0; y < a.Height; y++ {
		assert.Equal(t, a.Row(y), b.Row(y), "row %d", y)
	}
}

// TestLoad reads a map from disk.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(scenarioA), 0o600))

	g, err := torus.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Height)
	assert.Equal(t, 7, g.Width)

	c, ok := g.Find('i')
	require.True(t, ok)
	assert.Equal(t, torus.Coord{X: 4, Y: 1}, c)
}

// TestLoad_Errors covers a missing file and an empty file.
func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "non_existent_file.txt")
	_, err := torus.Load(missing)
	require.ErrorIs(t, err, torus.ErrInputRead)
	assert.Contains(t, err.Error(), "non_existent_file.txt")
	assert.True(t, errors.Is(err, torus.ErrInputRead))

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = torus.Load(empty)
	require.ErrorIs(t, err, torus.ErrEmptyInput)
}

// failingReader returns an error on every Read.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

// TestRead_Error wraps reader failures with ErrInputRead.
func TestRead_Error(t *testing.T) {
	_, err := torus.Read(failingReader{})
	require.ErrorIs(t, err, torus.ErrInputRead)
	assert.Contains(t, err.Error(), "disk on fire")

	g, err := torus.Read(strings.NewReader("a\nb"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height)
}

//----------------------------------------------------------------------------//
// Coordinates
//----------------------------------------------------------------------------//

// TestNormalize checks fixed wrap cases on the 7×4 map.
func TestNormalize(t *testing.T) {
	g, err := torus.Parse(scenarioA)
	require.NoError(t, err)

	cases := []struct {
		x, y int
		want torus.Coord
	}{
		{7, 0, torus.Coord{X: 0, Y: 0}},
		{-1, 0, torus.Coord{X: 6, Y: 0}},
		{0, -1, torus.Coord{X: 0, Y: 3}},
		{0, 4, torus.Coord{X: 0, Y: 0}},
		{-15, -9, torus.Coord{X: 6, Y: 3}},
		{3, 2, torus.Coord{X: 3, Y: 2}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, g.Normalize(tc.x, tc.y), "Normalize(%d,%d)", tc.x, tc.y)
	}
}

// TestNormalize_RangeAndPeriodicity sweeps offsets well outside the grid.
func TestNormalize_RangeAndPeriodicity(t *testing.T) {
	g := torus.New(5, 3)
	for x := -20; x <= 20; x++ {
		for y := -20; y <= 20; y++ {
			c := g.Normalize(x, y)
			require.True(t, g.InBounds(c.X, c.Y), "Normalize(%d,%d)=%v out of range", x, y, c)
			require.Equal(t, c, g.Normalize(x+g.Width, y))
			require.Equal(t, c, g.Normalize(x, y+g.Height))
		}
	}
}

// TestNeighbors verifies the down, right, up, left order with wrapping.
func TestNeighbors(t *testing.T) {
	g := torus.New(3, 3)
	got := g.Neighbors(torus.Coord{X: 0, Y: 0})
	want := [4]torus.Coord{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 0}}
	assert.Equal(t, want, got)
}

// TestIndexCoordinate round-trips every cell through its row-major index.
func TestIndexCoordinate(t *testing.T) {
	g := torus.New(4, 3)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := torus.Coord{X: x, Y: y}
			assert.Equal(t, c, g.Coordinate(g.Index(c)))
		}
	}
	assert.Equal(t, "(2,1)", torus.Coord{X: 2, Y: 1}.String())
}

//----------------------------------------------------------------------------//
// Find, String, Clone
//----------------------------------------------------------------------------//

// TestFind covers present, absent and duplicated markers.
func TestFind(t *testing.T) {
	g, err := torus.Parse(scenarioA)
	require.NoError(t, err)

	c, ok := g.Find('i')
	require.True(t, ok)
	assert.Equal(t, torus.Coord{X: 4, Y: 1}, c)

	c, ok = g.Find('O')
	require.True(t, ok)
	assert.Equal(t, torus.Coord{X: 3, Y: 2}, c)

	_, ok = g.Find('Z')
	assert.False(t, ok)

	dup, err := torus.Parse("  i\ni  ")
	require.NoError(t, err)
	c, ok = dup.Find('i')
	require.True(t, ok)
	assert.Equal(t, torus.Coord{X: 2, Y: 0}, c, "first row-major match wins")
}

// TestString ensures serialization keeps padding and adds no trailing newline.
func TestString(t *testing.T) {
	g, err := torus.Parse(scenarioA)
	require.NoError(t, err)
	assert.Equal(t, scenarioA, g.String())

	ragged, err := torus.Parse("ab\nc\n")
	require.NoError(t, err)
	assert.Equal(t, "ab\nc ", ragged.String())
}

// TestSetAndClone checks that a clone does not share cells with its source.
func TestSetAndClone(t *testing.T) {
	g, err := torus.Parse(scenarioA)
	require.NoError(t, err)
	c := g.Clone()

	g.Set(4, 0, '.')
	assert.Equal(t, '.', g.At(4, 0))
	assert.Equal(t, ' ', c.At(4, 0))
}

// TestAt_OutOfBoundsPanics documents that direct access is not wrapped.
func TestAt_OutOfBoundsPanics(t *testing.T) {
	g := torus.New(2, 2)
	assert.Panics(t, func() { g.At(2, 0) })
	assert.Panics(t, func() { g.Set(0, 2, 'x') })
}
