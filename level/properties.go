package level

import "github.com/depp/intern-apocalypse-sub001/geom"

// UpdateProperties derives everything that depends on the finished topology
// and the walkable flags: per-edge passability, per-cell centroid and
// bounds. It also strips twin references across the outer boundary, so an
// interior edge facing a border cell reads as a plain boundary (Back ==
// NoEdge) from then on. Call again after toggling Walkable flags; the pass
// is idempotent.
func (l *Level) UpdateProperties() {
	for i := range l.edges {
		e := &l.edges[i]
		if e.dead || e.Back == NoEdge {
			continue
		}
		if e.Cell >= 0 && l.edges[e.Back].Cell < 0 {
			l.edges[e.Back].Back = NoEdge
			e.Back = NoEdge
		}
	}

	for i := range l.border {
		l.border[i].Walkable = false
	}

	for i := range l.edges {
		e := &l.edges[i]
		if e.dead {
			continue
		}
		// Impassable from the walkable side toward blocked or missing
		// neighbours; edges of blocked cells never obstruct.
		e.Passable = e.Back != NoEdge &&
			(!l.Cell(e.Cell).Walkable || l.Cell(l.edges[e.Back].Cell).Walkable)
	}

	for i := range l.cells {
		l.refreshCellShape(&l.cells[i])
	}
	for i := range l.border {
		l.refreshCellShape(&l.border[i])
	}
}

// refreshCellShape recomputes a cell's bounds and polygon centroid. Border
// cells own open chains where the shoelace sum is meaningless, so they get
// the midpoint of their bounds instead.
func (l *Level) refreshCellShape(c *Cell) {
	bounds := geom.EmptyRect()
	var area, cx, cy float64
	l.eachCellEdge(c, func(_ EdgeID, e *Edge) bool {
		bounds = bounds.Including(e.Vertex0).Including(e.Vertex1)
		cross := e.Vertex0.Wedge(e.Vertex1)
		area += cross
		cx += (e.Vertex0.X + e.Vertex1.X) * cross
		cy += (e.Vertex0.Y + e.Vertex1.Y) * cross
		return true
	})
	c.Bounds = bounds
	if c.Index < 0 || area == 0 {
		c.Centroid = bounds.Center()
		return
	}
	c.Centroid = geom.Vector{X: cx / (3 * area), Y: cy / (3 * area)}
}
