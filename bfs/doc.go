// Package bfs provides breadth-first search over a torus.Grid, returning the
// unweighted shortest path between two cells under toroidal 4-adjacency.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell.
//   - Each step moves one cell down, right, up or left; stepping off an edge
//     re-enters on the opposite edge.
//   - Stop as soon as the end cell is dequeued and rebuild the route from
//     parent links.
//   - Returns a Result containing:
//   - Found: whether end was reached
//   - Path:  cells after start up to and including end
//   - Visited: how many cells were dequeued
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in torus.Directions order (down, right, up, left).
//	When several shortest paths exist, the returned one is the first found
//	under that order, so results are fully reproducible.
//
// No path
//
//	An unreachable end is a normal outcome: Search returns Found == false
//	and a nil error.
//
// Complexity (W×H cells)
//
//   - Time:   O(W×H)   (each cell enqueued at most once)
//   - Memory: O(W×H)   (queue, visited flags, parent links)
//
// Usage
//
//	res, err := bfs.Search(g, entry, exit)
//	if err != nil {
//	    // ErrGridNil, ErrOutOfBounds, ErrOptionViolation, ctx or hook error
//	}
//	if res.Found {
//	    for _, c := range res.Path { ... }
//	}
//
//	// With functional options:
//	res, err := bfs.Search(
//	    g, entry, exit,
//	    bfs.WithContext(ctx),
//	    bfs.WithPassable(lg.Passable),
//	    bfs.WithMaxDepth(64),
//	    bfs.WithOnVisit(func(c torus.Coord, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOutOfBounds      if start or end lies outside the grid.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
