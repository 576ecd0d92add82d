// Package legend defines the reserved marker runes of a map: wall, entry,
// exit and path overlay. Defaults are '#', 'i', 'O' and '.'; a YAML file may
// override any subset of them.
//
// Example legend.yaml:
//
//	wall: "X"
//	path: "*"
package legend
