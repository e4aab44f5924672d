package level

import (
	"fmt"

	"github.com/depp/intern-apocalypse-sub001/geom"
)

// splitSnapEps is the crossing-fraction tolerance below which a crossing is
// welded to an edge endpoint. Welding keeps twin endpoints exactly equal,
// which the surgery relies on.
const splitSnapEps = 1e-9

// carve records how the new site's region cuts one existing interior cell:
// the edge where the region boundary enters the cell's ring, the run of
// fully ceded edges, and the edge where it exits again. vIn and vOut are
// the two crossing points; the chord between them becomes the shared
// boundary with the new cell.
type carve struct {
	cellIndex int32
	entry     EdgeID
	inside    []EdgeID
	exit      EdgeID
	vIn, vOut geom.Vector
}

// AddCell inserts a site, carving its region out of every cell it overlaps.
// Insertion walks the outer boundary through border twins, which
// UpdateProperties strips, so all sites must be added before the first
// UpdateProperties call.
func (l *Level) AddCell(center geom.Vector) *Cell {
	start := l.FindCell(center)
	if start.Center == center {
		panic(fmt.Sprintf("level: site %v coincides with cell %d", center, start.Index))
	}
	// ceded reports whether a ring vertex is claimed by the new site.
	// Strictly closer only, so equidistant vertices stay with their cell.
	ceded := func(site, v geom.Vector) bool {
		return center.DistanceSq(v) < site.DistanceSq(v)
	}

	// Locate the edge of the nearest cell along which its ring crosses into
	// the new site's region.
	firstEntry := NoEdge
	l.eachCellEdge(start, func(id EdgeID, e *Edge) bool {
		if !ceded(start.Center, e.Vertex0) && ceded(start.Center, e.Vertex1) {
			firstEntry = id
			return false
		}
		return true
	})
	if firstEntry == NoEdge {
		panic(fmt.Sprintf("level: no boundary crossing on cell %d for site %v", start.Index, center))
	}

	// First pass: walk the region boundary cell to cell without mutating
	// anything, collecting one carve per crossed cell. The walk must close
	// back on the starting cell through its original entry edge.
	var carves []carve
	cellIndex, entry := start.Index, firstEntry
	var vIn geom.Vector // undefined for the first carve until the walk closes
	for {
		if len(carves) > len(l.cells) {
			panic(fmt.Sprintf("level: carve walk for site %v did not close", center))
		}
		cv := l.scanCarve(cellIndex, entry, vIn, center, ceded)
		carves = append(carves, cv)

		nextCell, nextEntry, nextVIn := l.advanceCarve(&cv, center, ceded)
		if nextCell == start.Index {
			if nextEntry != firstEntry {
				panic(fmt.Sprintf("level: carve walk for site %v closed on edge %d, expected %d", center, nextEntry, firstEntry))
			}
			carves[0].vIn = nextVIn
			break
		}
		cellIndex, entry, vIn = nextCell, nextEntry, nextVIn
	}

	// Second pass: cut every carved cell and collect the new cell's edges.
	ni := int32(len(l.cells))
	var pieces []EdgeID
	for k := range carves {
		pieces = l.applyCarve(&carves[k], ni, pieces, center)
	}
	ringEntry := l.closeRing(pieces, center)

	l.cells = append(l.cells, Cell{Index: ni, Center: center, Edge: ringEntry, Walkable: true})
	return &l.cells[ni]
}

// scanCarve classifies the ring of one cell against the new site: edges
// whose far vertex is ceded are swallowed whole, and the first edge whose
// far vertex is kept carries the exit crossing.
func (l *Level) scanCarve(cellIndex int32, entry EdgeID, vIn geom.Vector, center geom.Vector, ceded func(geom.Vector, geom.Vector) bool) carve {
	cell := l.Cell(cellIndex)
	cv := carve{cellIndex: cellIndex, entry: entry, vIn: vIn}
	id := l.edges[entry].Next
	for steps := 0; ; steps++ {
		if id == entry || steps > len(l.edges) {
			panic(fmt.Sprintf("level: carve of cell %d for site %v never exits", cellIndex, center))
		}
		e := &l.edges[id]
		if ceded(cell.Center, e.Vertex1) {
			cv.inside = append(cv.inside, id)
			id = e.Next
			continue
		}
		t := bisectorParam(e.Vertex0, e.Vertex1, cell.Center, center)
		if t < -splitSnapEps || t > 1+splitSnapEps {
			panic(fmt.Sprintf("level: crossing fraction %g off edge %d (cell %d, site %v)", t, id, cellIndex, center))
		}
		if t >= 1-splitSnapEps {
			// The crossing sits on the far vertex. Swallow this edge whole;
			// the next edge then carries the crossing at its start.
			cv.inside = append(cv.inside, id)
			id = e.Next
			continue
		}
		cv.exit = id
		if t <= splitSnapEps {
			cv.vOut = e.Vertex0
		} else {
			cv.vOut = e.Vertex0.Lerp(e.Vertex1, t)
		}
		return cv
	}
}

// advanceCarve steps from a carve's exit edge to the next carved cell.
// Crossing an interior boundary lands directly in the twin's cell. Crossing
// onto the border instead walks the outer chains clockwise, hopping square
// corners through twin pointers, until an interior cell reclaims the
// boundary.
func (l *Level) advanceCarve(cv *carve, center geom.Vector, ceded func(geom.Vector, geom.Vector) bool) (int32, EdgeID, geom.Vector) {
	back := l.edges[cv.exit].Back
	if back == NoEdge {
		panic(fmt.Sprintf("level: carve exit edge %d has no twin (cell %d)", cv.exit, cv.cellIndex))
	}
	if bc := l.edges[back].Cell; bc >= 0 {
		return bc, back, cv.vOut
	}

	g := back
	for steps := 0; ; steps++ {
		if steps > len(l.edges) {
			panic(fmt.Sprintf("level: border walk for site %v never re-enters", center))
		}
		h := l.edges[g].Next
		if h == NoEdge {
			// Square corner: cross to the interior twin, step back along its
			// ring, and cross out again onto the adjacent border chain.
			gb := l.edges[g].Back
			if gb == NoEdge {
				panic(fmt.Sprintf("level: border edge %d has no twin", g))
			}
			h = l.edges[l.edges[gb].Prev].Back
			if h == NoEdge {
				panic(fmt.Sprintf("level: border chain broken at corner after edge %d", g))
			}
		}
		f := l.edges[h].Back
		if f == NoEdge {
			panic(fmt.Sprintf("level: border edge %d has no twin", h))
		}
		fc := l.Cell(l.edges[f].Cell)
		if ceded(fc.Center, l.edges[h].Vertex1) {
			// The whole span of h belongs to the new site; its interior twin
			// is consumed by that cell's own carve.
			g = h
			continue
		}
		t := bisectorParam(l.edges[f].Vertex0, l.edges[f].Vertex1, fc.Center, center)
		if t < -splitSnapEps || t > 1+splitSnapEps {
			panic(fmt.Sprintf("level: re-entry fraction %g off edge %d (site %v)", t, f, center))
		}
		if t <= splitSnapEps {
			// Region grazes the shared vertex only; keep walking.
			g = h
			continue
		}
		var vIn geom.Vector
		if t >= 1-splitSnapEps {
			vIn = l.edges[f].Vertex1
		} else {
			vIn = l.edges[f].Vertex0.Lerp(l.edges[f].Vertex1, t)
		}
		return l.edges[f].Cell, f, vIn
	}
}

// applyCarve performs the ring surgery for one carved cell and appends the
// edges handed to the new cell (index ni) to pieces.
func (l *Level) applyCarve(cv *carve, ni int32, pieces []EdgeID, center geom.Vector) []EdgeID {
	if cv.vIn == cv.vOut {
		// The region only grazes this cell at a vertex: nothing is ceded.
		if len(cv.inside) != 0 {
			panic(fmt.Sprintf("level: vertex graze of cell %d for site %v cedes %d edges", cv.cellIndex, center, len(cv.inside)))
		}
		return pieces
	}

	if cv.vIn != l.edges[cv.entry].Vertex1 {
		if part := l.splitEntry(cv, ni); part != NoEdge {
			pieces = append(pieces, part)
		}
	}

	for _, id := range cv.inside {
		back := l.edges[id].Back
		if back == NoEdge {
			panic(fmt.Sprintf("level: ceded edge %d has no twin (cell %d)", id, cv.cellIndex))
		}
		if l.edges[back].Cell >= 0 {
			// The twin cell's own carve kills the other side.
			l.kill(id)
		} else {
			// Border-facing edges transfer whole to the new cell.
			l.edges[id].Cell = ni
			pieces = append(pieces, id)
		}
	}

	if cv.vOut != l.edges[cv.exit].Vertex0 {
		if part := l.splitExit(cv, ni); part != NoEdge {
			pieces = append(pieces, part)
		}
	}

	// The chord pair: outer side closes the carved cell's ring, inner side
	// joins the new cell.
	outer := l.newEdge(cv.vIn, cv.vOut, cv.cellIndex)
	inner := l.newEdge(cv.vOut, cv.vIn, ni)
	l.pair(outer, inner)
	l.edges[cv.entry].Next = outer
	l.edges[outer].Prev = cv.entry
	l.edges[outer].Next = cv.exit
	l.edges[cv.exit].Prev = outer
	l.Cell(cv.cellIndex).Edge = outer
	return append(pieces, inner)
}

// splitEntry truncates the carve's entry edge at the entry crossing. The
// ceded remainder vanishes against an interior twin (the neighbour's carve
// truncates its own side to the same point) but against the border it is
// handed to the new cell, with the border chain split to match.
func (l *Level) splitEntry(cv *carve, ni int32) EdgeID {
	e := cv.entry
	back := l.edges[e].Back
	if back == NoEdge {
		panic(fmt.Sprintf("level: entry edge %d has no twin", e))
	}
	v0, v1 := l.edges[e].Vertex0, l.edges[e].Vertex1
	l.edges[e].Vertex1 = cv.vIn
	if l.edges[back].Cell >= 0 {
		return NoEdge
	}

	borderCell := l.edges[back].Cell
	part := l.newEdge(cv.vIn, v1, ni)
	split := l.newEdge(cv.vIn, v0, borderCell)
	l.edges[back].Vertex1 = cv.vIn
	l.insertAfterInChain(back, split)
	l.pair(back, part)
	l.pair(split, e)
	return part
}

// splitExit mirrors splitEntry at the exit crossing: the part of the exit
// edge before the crossing is ceded.
func (l *Level) splitExit(cv *carve, ni int32) EdgeID {
	e := cv.exit
	back := l.edges[e].Back
	if back == NoEdge {
		panic(fmt.Sprintf("level: exit edge %d has no twin", e))
	}
	v0 := l.edges[e].Vertex0
	l.edges[e].Vertex0 = cv.vOut
	if l.edges[back].Cell >= 0 {
		return NoEdge
	}

	borderCell := l.edges[back].Cell
	part := l.newEdge(v0, cv.vOut, ni)
	split := l.newEdge(cv.vOut, v0, borderCell)
	l.edges[back].Vertex1 = cv.vOut
	l.insertAfterInChain(back, split)
	l.pair(split, part)
	// back stays paired with the kept remnant of e.
	return part
}

// closeRing links the new cell's edges into a single anticlockwise ring by
// matching end vertices to start vertices, and returns its entry edge.
// Shared crossing points are propagated as identical Vectors, so exact
// comparison is sound here.
func (l *Level) closeRing(pieces []EdgeID, center geom.Vector) EdgeID {
	if len(pieces) < 3 {
		panic(fmt.Sprintf("level: new cell for site %v has %d edges", center, len(pieces)))
	}
	byStart := make(map[geom.Vector]EdgeID, len(pieces))
	for _, id := range pieces {
		if other, dup := byStart[l.edges[id].Vertex0]; dup {
			panic(fmt.Sprintf("level: edges %d and %d both start at %v", other, id, l.edges[id].Vertex0))
		}
		byStart[l.edges[id].Vertex0] = id
	}
	for _, id := range pieces {
		next, ok := byStart[l.edges[id].Vertex1]
		if !ok {
			panic(fmt.Sprintf("level: new cell ring for site %v is open at %v", center, l.edges[id].Vertex1))
		}
		l.edges[id].Next = next
		l.edges[next].Prev = id
	}
	return pieces[0]
}

// bisectorParam returns the fraction along v0->v1 at which a point is
// equidistant from the two sites.
func bisectorParam(v0, v1, oldSite, newSite geom.Vector) float64 {
	u := oldSite.Sub(newSite)
	d := v1.Sub(v0)
	denom := d.Dot(u)
	if denom == 0 {
		panic(fmt.Sprintf("level: edge %v-%v parallel to bisector of %v and %v", v0, v1, oldSite, newSite))
	}
	mid := oldSite.Add(newSite).Scale(0.5)
	return mid.Sub(v0).Dot(u) / denom
}
