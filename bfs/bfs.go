// Package bfs provides breadth-first search over a torus.Grid, returning an
// unweighted shortest path between two cells under toroidal 4-adjacency.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/torusroute/torus"
)

// queueItem pairs a cell index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable search state.
type walker struct {
	grid    *torus.Grid
	opts    Options
	ctx     context.Context
	end     int
	queue   []queueItem
	visited []bool
	parent  []int
	res     *Result
}

// Search runs breadth-first search on g from start to end.
// Cells whose rune fails the Passable test are never entered; start and end
// themselves are assumed passable. Neighbors are generated in
// torus.Directions order, which fixes the tie-break between equal-length
// shortest paths.
//
// A nil error with Result.Found == false means end is unreachable.
// Returns ErrGridNil, ErrOutOfBounds or ErrOptionViolation for invalid input,
// the context error on cancellation, or a wrapped OnVisit error.
func Search(g *torus.Grid, start, end torus.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, c := range []torus.Coord{start, end} {
		if !g.InBounds(c.X, c.Y) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Width, g.Height)
		}
	}

	n := g.Width * g.Height
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		end:     g.Index(end),
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		parent:  make([]int, n),
		res:     &Result{},
	}
	for i := range w.parent {
		w.parent[i] = -1
	}

	w.enqueue(g.Index(start), 0, -1)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// enqueue marks idx visited, records its parent and appends it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	w.visited[idx] = true
	w.parent[idx] = parent
	w.opts.OnEnqueue(w.grid.Coordinate(idx), d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until the end cell is dequeued, the frontier
// empties, a hook fails or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if item.idx == w.end {
			w.res.Found = true
			w.res.Path = w.reconstruct()
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(w.grid.Coordinate(item.idx), item.depth)
	return item
}

// visit counts the cell and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Visited++
	c := w.grid.Coordinate(item.idx)
	if err := w.opts.OnVisit(c, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", c, err)
	}
	return nil
}

// enqueueNeighbors wraps each offset onto the torus and enqueues unseen,
// passable cells within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.grid.Neighbors(w.grid.Coordinate(item.idx)) {
		ni := w.grid.Index(nb)
		if w.visited[ni] || !w.opts.Passable(w.grid.At(nb.X, nb.Y)) {
			continue
		}
		w.enqueue(ni, nextDepth, item.idx)
	}
}

// reconstruct walks parent links back from end and reverses them.
// The start cell (parent == -1) is excluded.
func (w *walker) reconstruct() Path {
	path := Path{}
	for at := w.end; w.parent[at] >= 0; at = w.parent[at] {
		path = append(path, w.grid.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Distance returns the toroidal BFS distance from start to every cell,
// indexed row-major; unreachable or impassable cells hold -1.
// Complexity: O(W×H).
func Distance(g *torus.Grid, start torus.Coord, passable func(rune) bool) []int {
	dist := make([]int, g.Width*g.Height)
	for i := range dist {
		dist[i] = -1
	}
	if !g.InBounds(start.X, start.Y) {
		return dist
	}
	s := g.Index(start)
	dist[s] = 0
	queue := []torus.Coord{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Neighbors(u) {
			vi := g.Index(v)
			if dist[vi] >= 0 || !passable(g.At(v.X, v.Y)) {
				continue
			}
			dist[vi] = dist[g.Index(u)] + 1
			queue = append(queue, v)
		}
	}
	return dist
}
