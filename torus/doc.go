// Package torus treats a rectangular field of runes as a toroidal graph:
// every cell has exactly four neighbors, and stepping off one edge re-enters
// on the opposite edge.
//
// What:
//
//   - Grid holds Width×Height runes, row-major, padded with spaces.
//   - Parse, Read and Load build a Grid from text (one row per line).
//   - Normalize wraps any signed offset into an in-bounds Coord.
//   - Find locates the first cell (row-major) holding a marker.
//   - Regions groups passable cells into toroidal connected components.
//   - String serializes the grid back to text.
//
// Why:
//
//   - Wrap-around maps: asteroid fields, pac-man tunnels, tiled puzzles.
//   - A single owner mutates the grid in place (e.g. a path overlay) and
//     prints it; no locking is involved.
//
// Padding:
//
//	Rows shorter than the longest line are padded with ' ', which is open
//	terrain. Ragged input is accepted, never rejected.
//
// Complexity:
//
//   - Parse:     O(W×H) time and memory.
//   - Normalize: O(1).
//   - Find:      O(W×H).
//   - Regions:   O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyInput: the text has no lines at all.
//   - ErrInputRead:  the source could not be read (wraps the OS cause).
package torus
