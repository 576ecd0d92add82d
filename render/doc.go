// Package render overlays a found path onto a torus.Grid and serializes the
// result, either as plain text or styled for a terminal color profile.
package render
