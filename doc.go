// Package torusroute finds and draws shortest routes on wrap-around text maps.
//
// A map is a rectangle of characters: '#' walls, 'i' the entry, 'O' the exit,
// anything else open ground. Moves go one cell down, right, up or left, and
// leaving one edge re-enters on the opposite edge, so the map is a torus.
//
// Under the hood, everything is organized under four packages:
//
//	torus/   Grid, Coord, Parse/Load, Normalize, Find, Regions
//	bfs/     breadth-first Search with hooks, depth limit and context
//	render/  MarkPath overlay, plain and colored serialization
//	legend/  marker runes, overridable from a YAML file
//
// Quick ASCII example (the exit is one step left of the entry, through the
// edge):
//
//	##   ##
//	i     O
//	##   ##
//
// The torusroute command wires them together:
//
//	go install github.com/katalvlaran/torusroute/cmd/torusroute@latest
//	torusroute map.txt
package torusroute
