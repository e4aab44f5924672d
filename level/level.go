// Package level builds and owns the static geometry of a game level: a
// planar subdivision of convex cells produced by inserting nearest-site
// ("relaxed Voronoi") centers one at a time into a bounded square.
//
// The half-edge graph lives in an arena: all edges sit in one slice and
// reference each other through EdgeID indices, so rings can be spliced
// freely without pointer cycles. Cell indices >= 0 are interior cells with
// circular edge rings wound anticlockwise (the cell lies on the left of
// Vertex0->Vertex1). The four negative indices are the border cells
// bounding the square; they own open, clockwise edge chains and are never
// walkable.
//
// A level is built once. After UpdateProperties only the Walkable flags may
// change, followed by another UpdateProperties call to re-derive the
// Passable flags. Structural invariant violations are programming errors
// and panic with the implicated cell or edge.
package level

import (
	"fmt"

	"github.com/depp/intern-apocalypse-sub001/geom"
)

// EdgeID indexes an edge in the level's arena.
type EdgeID int32

// NoEdge marks an absent edge reference.
const NoEdge EdgeID = -1

// Border cell indices, one per side of the square.
const (
	BorderBottom int32 = -1
	BorderRight  int32 = -2
	BorderTop    int32 = -3
	BorderLeft   int32 = -4
)

// Edge is one directed boundary segment of a cell. Vertex1 equals the next
// edge's Vertex0. Back is the twin edge on the adjacent cell, NoEdge on the
// outer boundary (and, after UpdateProperties, on any edge facing a border
// cell).
type Edge struct {
	Vertex0 geom.Vector
	Vertex1 geom.Vector
	Cell    int32
	Prev    EdgeID
	Next    EdgeID
	Back    EdgeID

	// Passable is derived by UpdateProperties: an edge is impassable
	// exactly when it has no twin, or its own cell is walkable and the
	// twin's cell is not.
	Passable bool

	dead bool
}

// Cell is a convex polygonal region. Center is the site that seeded it
// during construction; Centroid and Bounds are derived by UpdateProperties.
type Cell struct {
	Index    int32
	Center   geom.Vector
	Edge     EdgeID // arbitrary ring entry (chain head for border cells)
	Walkable bool
	Centroid geom.Vector
	Bounds   geom.Rect
}

// Level owns every cell and edge produced by one construction run.
type Level struct {
	Size   float64
	cells  []Cell
	border [4]Cell
	edges  []Edge
}

// Build constructs the subdivision of the square [-size,size]^2 from an
// ordered list of sites. The first site seeds the initial cell; the rest
// are inserted one at a time, so the result is order-dependent but
// deterministic. Derived properties are computed before returning; callers
// may toggle cell walkability afterwards and call UpdateProperties again.
func Build(size float64, siteCenters []geom.Vector) *Level {
	if size <= 0 || len(siteCenters) == 0 {
		panic("level: Build needs a positive size and a seed site")
	}
	l := New(size, siteCenters[0])
	for _, c := range siteCenters[1:] {
		l.AddCell(c)
	}
	l.UpdateProperties()
	return l
}

// New returns a level holding a single interior cell covering the whole
// square, seeded at the given site. Callers add the remaining sites with
// AddCell and finish with UpdateProperties; Build wraps the sequence.
func New(size float64, seed geom.Vector) *Level {
	l := &Level{Size: size}
	a := geom.Vector{X: -size, Y: -size}
	b := geom.Vector{X: size, Y: -size}
	c := geom.Vector{X: size, Y: size}
	d := geom.Vector{X: -size, Y: size}

	// Interior cell 0, anticlockwise around the square.
	e0 := l.newEdge(a, b, 0)
	e1 := l.newEdge(b, c, 0)
	e2 := l.newEdge(c, d, 0)
	e3 := l.newEdge(d, a, 0)
	l.linkRing(e0, e1, e2, e3)

	// One clockwise border edge per side, twinned with the interior ring.
	g0 := l.newEdge(b, a, BorderBottom)
	g1 := l.newEdge(c, b, BorderRight)
	g2 := l.newEdge(d, c, BorderTop)
	g3 := l.newEdge(a, d, BorderLeft)
	l.pair(e0, g0)
	l.pair(e1, g1)
	l.pair(e2, g2)
	l.pair(e3, g3)

	l.cells = []Cell{{Index: 0, Center: seed, Edge: e0, Walkable: true}}
	l.border = [4]Cell{
		{Index: BorderBottom, Center: geom.Vector{X: 0, Y: -size}, Edge: g0},
		{Index: BorderRight, Center: geom.Vector{X: size, Y: 0}, Edge: g1},
		{Index: BorderTop, Center: geom.Vector{X: 0, Y: size}, Edge: g2},
		{Index: BorderLeft, Center: geom.Vector{X: -size, Y: 0}, Edge: g3},
	}
	return l
}

// NumCells returns the number of interior cells.
func (l *Level) NumCells() int { return len(l.cells) }

// Cell returns the cell for an index; negative indices address the border
// cells.
func (l *Level) Cell(index int32) *Cell {
	if index >= 0 {
		return &l.cells[index]
	}
	return &l.border[-index-1]
}

// Edge dereferences an edge id.
func (l *Level) Edge(id EdgeID) *Edge {
	if id == NoEdge {
		panic("level: NoEdge dereference")
	}
	return &l.edges[id]
}

// EachEdge visits every live edge, border edges included.
func (l *Level) EachEdge(fn func(EdgeID, *Edge)) {
	for i := range l.edges {
		if l.edges[i].dead {
			continue
		}
		fn(EdgeID(i), &l.edges[i])
	}
}

// CellEdges returns the edges of a cell in ring (or chain) order.
func (l *Level) CellEdges(index int32) []EdgeID {
	var out []EdgeID
	l.eachCellEdge(l.Cell(index), func(id EdgeID, _ *Edge) bool {
		out = append(out, id)
		return true
	})
	return out
}

// FindCell returns the interior cell whose site is nearest to p.
func (l *Level) FindCell(p geom.Vector) *Cell {
	best := &l.cells[0]
	bestD := best.Center.DistanceSq(p)
	for i := 1; i < len(l.cells); i++ {
		if d := l.cells[i].Center.DistanceSq(p); d < bestD {
			best, bestD = &l.cells[i], d
		}
	}
	return best
}

// FindUnpassableEdges returns the impassable interior-owned edges whose
// segment comes within radius of center.
func (l *Level) FindUnpassableEdges(center geom.Vector, radius float64) []EdgeID {
	return l.AppendUnpassableEdges(nil, center, radius)
}

// AppendUnpassableEdges is FindUnpassableEdges with a reusable destination
// slice, for per-frame callers.
func (l *Level) AppendUnpassableEdges(dst []EdgeID, center geom.Vector, radius float64) []EdgeID {
	for i := range l.edges {
		e := &l.edges[i]
		if e.dead || e.Cell < 0 || e.Passable {
			continue
		}
		if geom.SegmentIntersectsCircle(e.Vertex0, e.Vertex1, center, radius) {
			dst = append(dst, EdgeID(i))
		}
	}
	return dst
}

// eachCellEdge walks a cell's edges by Next, stopping when the walk wraps
// (interior ring) or runs off the end of an open border chain.
func (l *Level) eachCellEdge(c *Cell, fn func(EdgeID, *Edge) bool) {
	if c.Edge == NoEdge {
		return
	}
	id := c.Edge
	for steps := 0; ; steps++ {
		if steps > len(l.edges) {
			panic(fmt.Sprintf("level: unterminated edge ring on cell %d", c.Index))
		}
		e := &l.edges[id]
		if !fn(id, e) {
			return
		}
		id = e.Next
		if id == NoEdge || id == c.Edge {
			return
		}
	}
}

func (l *Level) newEdge(v0, v1 geom.Vector, cell int32) EdgeID {
	id := EdgeID(len(l.edges))
	l.edges = append(l.edges, Edge{
		Vertex0: v0, Vertex1: v1, Cell: cell,
		Prev: NoEdge, Next: NoEdge, Back: NoEdge,
	})
	return id
}

// pair links two edges as twins of one physical boundary.
func (l *Level) pair(a, b EdgeID) {
	l.edges[a].Back = b
	l.edges[b].Back = a
}

// linkRing closes ids into a circular doubly-linked ring in order.
func (l *Level) linkRing(ids ...EdgeID) {
	for i, id := range ids {
		next := ids[(i+1)%len(ids)]
		l.edges[id].Next = next
		l.edges[next].Prev = id
	}
}

// insertAfterInChain splices b directly after a in a's list.
func (l *Level) insertAfterInChain(a, b EdgeID) {
	next := l.edges[a].Next
	l.edges[a].Next = b
	l.edges[b].Prev = a
	l.edges[b].Next = next
	if next != NoEdge {
		l.edges[next].Prev = b
	}
}

// kill tombstones an edge whose boundary segment vanished. Arena slots are
// never reused; construction happens once per level.
func (l *Level) kill(id EdgeID) {
	e := &l.edges[id]
	e.dead = true
	e.Prev, e.Next, e.Back = NoEdge, NoEdge, NoEdge
}
