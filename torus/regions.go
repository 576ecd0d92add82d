package torus

// Regions finds all contiguous areas of passable cells under toroidal
// 4-adjacency. Components are seeded in row-major order; each component lists
// its cells in breadth-first discovery order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Regions(passable func(rune) bool) [][]Coord {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]Coord

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !passable(g.cells[y][x]) {
				continue
			}
			i0 := g.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []Coord{{X: x, Y: y}}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				for _, v := range g.Neighbors(queue[qi]) {
					vi := g.index(v.X, v.Y)
					if seen[vi] || !passable(g.cells[v.Y][v.X]) {
						continue
					}
					seen[vi] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// RegionOf returns the component from Regions that contains c, or nil when c
// is impassable or out of bounds.
func (g *Grid) RegionOf(c Coord, passable func(rune) bool) []Coord {
	if !g.InBounds(c.X, c.Y) {
		return nil
	}
	for _, comp := range g.Regions(passable) {
		for _, cell := range comp {
			if cell == c {
				return comp
			}
		}
	}
	return nil
}
