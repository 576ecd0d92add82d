// Package bfs provides tunable options, result types and error definitions
// for breadth-first search over a torus.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/torusroute/torus"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("bfs: coordinate out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Path is the ordered sequence of cells after start up to and including end.
// Consecutive cells are toroidal neighbors.
type Path []torus.Coord

// Result holds the outcome of a search:
//   - Found: whether end was reached. False is the legitimate "no path"
//     outcome, not an error.
//   - Path: the route when Found; empty when start == end.
//   - Visited: number of cells dequeued before the search stopped.
type Result struct {
	Found   bool
	Path    Path
	Visited int
}

// Len returns the number of steps in the path.
func (r *Result) Len() int {
	return len(r.Path)
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Passable decides which cell runes may be entered. Defaults to
	// everything except '#'.
	Passable func(r rune) bool

	// OnEnqueue is called when a cell is enqueued, with its depth from start.
	OnEnqueue func(c torus.Coord, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(c torus.Coord, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(c torus.Coord, depth int) error

	// MaxDepth, if > 0, stops expanding cells beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - '#' is the only impassable rune
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Passable:  func(r rune) bool { return r != '#' },
		OnEnqueue: func(torus.Coord, int) {},
		OnDequeue: func(torus.Coord, int) {},
		OnVisit:   func(torus.Coord, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPassable replaces the passability test.
func WithPassable(fn func(r rune) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Passable = fn
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c torus.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c torus.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c torus.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits how far from start the search expands.
//
//	d > 0: cells deeper than d are never enqueued
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}
