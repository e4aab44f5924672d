package walk

import "github.com/depp/intern-apocalypse-sub001/geom"

// Collider is one moving disc in a resolve pass.
type Collider struct {
	Pos    geom.Vector
	Delta  geom.Vector // desired displacement this tick
	Radius float64
}

const (
	// groupSlack joins colliders into one separation group slightly before
	// they actually touch, so converging discs settle in the same pass.
	groupSlack       = 0.05
	separationRounds = 3
)

// ResolveColliders advances every collider by its Delta, sliding along
// walls, then separates mutually overlapping colliders group by group with
// every push itself resolved against the walls. Positions are updated in
// place; walls touched during the pass accumulate in HitEdges.
func (w *Walker) ResolveColliders(cs []Collider) {
	for i := range cs {
		c := &cs[i]
		c.Pos = w.Walk(c.Pos, c.Pos.Add(c.Delta), c.Radius)
	}

	if len(cs) < 2 {
		return
	}
	uf := newUnionFind(len(cs))
	for i := range cs {
		for j := i + 1; j < len(cs); j++ {
			reach := cs[i].Radius + cs[j].Radius + groupSlack
			if cs[i].Pos.DistanceSq(cs[j].Pos) < reach*reach {
				uf.union(int32(i), int32(j))
			}
		}
	}

	groups := make(map[int32][]int)
	for i := range cs {
		root := uf.find(int32(i))
		groups[root] = append(groups[root], i)
	}
	for _, members := range groups {
		if len(members) > 1 {
			w.separate(cs, members)
		}
	}
}

// separate pushes overlapping members of one group apart, half the overlap
// each way, re-resolving every push against the walls so nobody gets shoved
// through a wall. A few rounds settle chains of overlaps.
func (w *Walker) separate(cs []Collider, members []int) {
	for round := 0; round < separationRounds; round++ {
		moved := false
		for x, i := range members {
			for _, j := range members[x+1:] {
				a, b := &cs[i], &cs[j]
				d := b.Pos.Sub(a.Pos)
				dist := d.Length()
				overlap := a.Radius + b.Radius - dist
				if overlap <= 0 {
					continue
				}
				var push geom.Vector
				if dist == 0 {
					// Coincident centers: pick an arbitrary axis.
					push = geom.Vector{X: overlap / 2}
				} else {
					push = d.Scale(overlap / 2 / dist)
				}
				a.Pos = w.Walk(a.Pos, a.Pos.Sub(push), a.Radius)
				b.Pos = w.Walk(b.Pos, b.Pos.Add(push), b.Radius)
				moved = true
			}
		}
		if !moved {
			return
		}
	}
}

// unionFind is a flat-array disjoint set with path halving.
type unionFind struct {
	parent []int32
}

func newUnionFind(n int) unionFind {
	p := make([]int32, n)
	for i := range p {
		p[i] = int32(i)
	}
	return unionFind{parent: p}
}

func (u unionFind) find(i int32) int32 {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u unionFind) union(a, b int32) {
	if ra, rb := u.find(a), u.find(b); ra != rb {
		u.parent[rb] = ra
	}
}
