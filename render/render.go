package render

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/torusroute/bfs"
	"github.com/katalvlaran/torusroute/legend"
	"github.com/katalvlaran/torusroute/torus"
)

// Role colors used by Colored.
const (
	wallColor  = "#6b7280"
	entryColor = "#22c55e"
	exitColor  = "#ef4444"
	pathColor  = "#facc15"
)

// MarkPath writes lg.Path on every cell of path, except cells holding the
// entry or exit marker, which are left untouched.
func MarkPath(g *torus.Grid, path bfs.Path, lg legend.Legend) {
	for _, c := range path {
		switch g.At(c.X, c.Y) {
		case lg.Entry, lg.Exit:
			continue
		}
		g.Set(c.X, c.Y, lg.Path)
	}
}

// Plain returns the grid text, rows joined by '\n'.
func Plain(g *torus.Grid) string {
	return g.String()
}

// Colored returns the grid text with walls, endpoints and path cells styled
// for profile. Runs of same-role runes share one escape sequence. The Ascii
// profile yields exactly Plain(g).
func Colored(g *torus.Grid, lg legend.Legend, profile termenv.Profile) string {
	if profile == termenv.Ascii {
		return Plain(g)
	}
	colors := map[rune]termenv.Color{
		lg.Wall:  profile.Color(wallColor),
		lg.Entry: profile.Color(entryColor),
		lg.Exit:  profile.Color(exitColor),
		lg.Path:  profile.Color(pathColor),
	}

	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := []rune(g.Row(y))
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end] == row[start] {
				end++
			}
			run := string(row[start:end])
			if c, ok := colors[row[start]]; ok {
				sb.WriteString(profile.String(run).Foreground(c).String())
			} else {
				sb.WriteString(run)
			}
			start = end
		}
	}
	return sb.String()
}
