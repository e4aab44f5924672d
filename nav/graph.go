// Package nav maintains a navigation field over a level's cells: a
// multi-source shortest-path tree toward a set of target points, queried
// per-agent for a next-hop direction and remaining distance.
package nav

import (
	"container/heap"

	"github.com/depp/intern-apocalypse-sub001/geom"
	"github.com/depp/intern-apocalypse-sub001/level"
)

// NoCell marks a cell the field does not reach.
const NoCell int32 = -1

// Graph is a next-hop field over one level. Update recomputes it for a new
// target set; Navigate reads it. A Graph is not safe for concurrent use.
type Graph struct {
	level   *level.Level
	targets []geom.Vector

	// Per interior cell, indexed by cell index.
	next   []int32   // next cell toward the nearest target, own index at a seed
	dist   []float64 // path distance to the nearest target
	target []int32   // which target the cell drains to
}

// Route is the field's answer for one query point.
type Route struct {
	// Direction points toward the next cell's site, or straight at the
	// target inside a seed cell. Zero when no target is reachable.
	Direction geom.Vector
	// Distance is the path distance from the query cell to its target.
	Distance float64
	// Target indexes the chosen target in the Update call, NoCell if none.
	Target int32
}

// New returns an empty field for l. Every cell is unreached until the
// first Update call.
func New(l *level.Level) *Graph {
	n := l.NumCells()
	g := &Graph{
		level:  l,
		next:   make([]int32, n),
		dist:   make([]float64, n),
		target: make([]int32, n),
	}
	for i := range g.next {
		g.next[i] = NoCell
		g.target[i] = NoCell
	}
	return g
}

// Update rebuilds the field as a multi-source Dijkstra expansion from the
// cells containing the targets. Cell-to-cell steps are weighted by
// site-to-site distance; a seed cell's cost is the distance from its site
// to the exact target point. Where fronts meet, the first-settled (nearer)
// target wins. Unwalkable target cells seed nothing.
func (g *Graph) Update(targets []geom.Vector) {
	g.targets = append(g.targets[:0], targets...)
	for i := range g.next {
		g.next[i] = NoCell
		g.dist[i] = 0
		g.target[i] = NoCell
	}

	settled := make([]bool, len(g.next))
	var pq cellQueue
	for ti, p := range targets {
		c := g.level.FindCell(p)
		if !c.Walkable {
			continue
		}
		heap.Push(&pq, cellCost{
			cell:   c.Index,
			via:    c.Index,
			target: int32(ti),
			cost:   c.Center.Distance(p),
		})
	}

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(cellCost)
		if settled[cur.cell] {
			continue
		}
		settled[cur.cell] = true
		g.next[cur.cell] = cur.via
		g.dist[cur.cell] = cur.cost
		g.target[cur.cell] = cur.target

		site := g.level.Cell(cur.cell).Center
		for _, id := range g.level.CellEdges(cur.cell) {
			e := g.level.Edge(id)
			// Settled cells are walkable (seeds are, and expansion only
			// crosses passable edges), so a passable edge here always leads
			// to another walkable cell.
			if !e.Passable || e.Back == level.NoEdge {
				continue
			}
			from := g.level.Edge(e.Back).Cell
			if from < 0 || settled[from] {
				continue
			}
			heap.Push(&pq, cellCost{
				cell:   from,
				via:    cur.cell,
				target: cur.target,
				cost:   cur.cost + site.Distance(g.level.Cell(from).Center),
			})
		}
	}
}

// Navigate returns the route from a world position toward its nearest
// target. The direction is zero when the field is empty or the position's
// cell is unreached.
func (g *Graph) Navigate(from geom.Vector) Route {
	c := g.level.FindCell(from)
	nx := g.next[c.Index]
	if nx == NoCell {
		return Route{Target: NoCell}
	}
	r := Route{Distance: g.dist[c.Index], Target: g.target[c.Index]}
	if nx == c.Index {
		// Seed cell: head straight for the target point itself.
		r.Direction = g.targets[r.Target].Sub(from).Normalize()
		return r
	}
	r.Direction = g.level.Cell(nx).Center.Sub(from).Normalize()
	return r
}

// Reachable reports whether the field reaches the cell containing p.
func (g *Graph) Reachable(p geom.Vector) bool {
	return g.next[g.level.FindCell(p).Index] != NoCell
}

type cellCost struct {
	cell   int32
	via    int32
	target int32
	cost   float64
}

type cellQueue []cellCost

func (q cellQueue) Len() int           { return len(q) }
func (q cellQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q cellQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *cellQueue) Push(x any)        { *q = append(*q, x.(cellCost)) }
func (q *cellQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
