package legend

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a legend with a malformed or conflicting marker.
var ErrInvalid = errors.New("legend: invalid marker")

// Legend maps map roles to the runes that denote them.
type Legend struct {
	Wall  rune
	Entry rune
	Exit  rune
	Path  rune
}

// file mirrors the YAML layout; empty fields keep defaults.
type file struct {
	Wall  string `yaml:"wall"`
	Entry string `yaml:"entry"`
	Exit  string `yaml:"exit"`
	Path  string `yaml:"path"`
}

// Default returns the standard legend: '#' wall, 'i' entry, 'O' exit, '.' path.
func Default() Legend {
	return Legend{Wall: '#', Entry: 'i', Exit: 'O', Path: '.'}
}

// Passable reports whether r can be stepped on. Everything except the wall
// rune is open, including the entry and exit markers.
func (l Legend) Passable(r rune) bool {
	return r != l.Wall
}

// Validate rejects legends whose markers collide.
func (l Legend) Validate() error {
	seen := map[rune]string{}
	for _, m := range []struct {
		name string
		r    rune
	}{{"wall", l.Wall}, {"entry", l.Entry}, {"exit", l.Exit}, {"path", l.Path}} {
		if prev, ok := seen[m.r]; ok {
			return fmt.Errorf("%w: %s and %s share %q", ErrInvalid, prev, m.name, m.r)
		}
		seen[m.r] = m.name
	}
	return nil
}

// Parse decodes YAML legend data on top of Default.
func Parse(data []byte) (Legend, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Legend{}, fmt.Errorf("legend: parse: %w", err)
	}

	l := Default()
	for _, o := range []struct {
		name string
		val  string
		dst  *rune
	}{
		{"wall", f.Wall, &l.Wall},
		{"entry", f.Entry, &l.Entry},
		{"exit", f.Exit, &l.Exit},
		{"path", f.Path, &l.Path},
	} {
		if o.val == "" {
			continue
		}
		if utf8.RuneCountInString(o.val) != 1 {
			return Legend{}, fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalid, o.name, o.val)
		}
		*o.dst, _ = utf8.DecodeRuneInString(o.val)
	}

	if err := l.Validate(); err != nil {
		return Legend{}, err
	}
	return l, nil
}

// Load reads and parses the legend file at path.
func Load(path string) (Legend, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Legend{}, fmt.Errorf("legend: read %q: %w", path, err)
	}
	return Parse(data)
}
