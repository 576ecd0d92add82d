package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/torusroute/bfs"
	"github.com/katalvlaran/torusroute/legend"
	"github.com/katalvlaran/torusroute/render"
	"github.com/katalvlaran/torusroute/torus"
)

// Outcome summarizes one routing attempt.
// Result is nil when either endpoint is missing.
type Outcome struct {
	Entry, Exit       torus.Coord
	HasEntry, HasExit bool
	Result            *bfs.Result
}

// Marked reports whether a path was overlaid onto the grid.
func (o Outcome) Marked() bool {
	return o.Result != nil && o.Result.Found
}

// Route locates the entry and exit markers of lg in g, searches for a
// shortest path and, when one exists, marks it onto g in place.
// A missing endpoint or an unreachable exit leaves g untouched and is not an
// error.
func Route(ctx context.Context, g *torus.Grid, lg legend.Legend, log *slog.Logger) (Outcome, error) {
	var out Outcome
	out.Entry, out.HasEntry = g.Find(lg.Entry)
	out.Exit, out.HasExit = g.Find(lg.Exit)
	if !out.HasEntry || !out.HasExit {
		log.Info("endpoint missing, map left unchanged",
			"entry_found", out.HasEntry, "exit_found", out.HasExit)
		return out, nil
	}
	log.Debug("endpoints located", "entry", out.Entry, "exit", out.Exit)

	res, err := bfs.Search(g, out.Entry, out.Exit,
		bfs.WithContext(ctx),
		bfs.WithPassable(lg.Passable),
	)
	if err != nil {
		return out, fmt.Errorf("search: %w", err)
	}
	out.Result = res

	if !res.Found {
		region := g.RegionOf(out.Entry, lg.Passable)
		log.Info("no path found, map left unchanged",
			"visited", res.Visited, "entry_region", len(region))
		return out, nil
	}
	log.Debug("path found", "length", res.Len(), "visited", res.Visited)
	render.MarkPath(g, res.Path, lg)

	return out, nil
}
