// Package cli is the command line driver: it parses arguments, loads the
// map, routes between the entry and exit markers, and prints the result.
// Process-level concerns (exit codes, stdout/stderr) stay here so the torus,
// bfs and render packages remain free of process I/O.
package cli
