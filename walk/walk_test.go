package walk

import (
	"math"
	"math/rand"
	"testing"

	"github.com/depp/intern-apocalypse-sub001/geom"
	"github.com/depp/intern-apocalypse-sub001/level"
)

// lowerHalfLevel splits a size-10 square along y = 0 and blocks the upper
// half, leaving one straight wall.
func lowerHalfLevel(t *testing.T) *level.Level {
	t.Helper()
	l := level.Build(10, []geom.Vector{{X: 0, Y: -2}, {X: 0, Y: 2}})
	l.Cell(1).Walkable = false
	l.UpdateProperties()
	return l
}

func segmentDistance(p, a, b geom.Vector) float64 {
	d := b.Sub(a)
	t := p.Sub(a).Dot(d) / d.LengthSq()
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(d.Scale(t)))
}

func TestWalkUnobstructed(t *testing.T) {
	l := level.Build(10, []geom.Vector{{X: 0, Y: 0}})
	w := NewWalker(l)

	end := geom.Vector{X: 1, Y: 2}
	if got := w.Walk(geom.Vector{}, end, 0.5); got != end {
		t.Errorf("Walk = %v, want %v", got, end)
	}
	if got := w.Walk(end, end, 0.5); got != end {
		t.Errorf("zero-length walk moved to %v", got)
	}
}

func TestWalkHeadOnStopsAtWall(t *testing.T) {
	l := lowerHalfLevel(t)
	w := NewWalker(l)

	got := w.Walk(geom.Vector{X: 0, Y: -2}, geom.Vector{X: 0, Y: 3}, 0.5)
	want := geom.Vector{X: 0, Y: -0.5}
	if got.Sub(want).Length() > 1e-9 {
		t.Errorf("Walk = %v, want %v", got, want)
	}
	if len(w.HitEdges) == 0 {
		t.Errorf("wall contact not recorded in HitEdges")
	}
}

func TestWalkSlidesAlongWall(t *testing.T) {
	l := lowerHalfLevel(t)
	w := NewWalker(l)

	got := w.Walk(geom.Vector{X: -2, Y: -2}, geom.Vector{X: 2, Y: 1}, 0.5)
	want := geom.Vector{X: 2, Y: -0.5}
	if got.Sub(want).Length() > 1e-9 {
		t.Errorf("Walk = %v, want %v", got, want)
	}
}

func TestWalkWedgeTerminates(t *testing.T) {
	// Two blocked cells form a funnel over the walkable cell, with walls
	// along x+y = 3 and y-x = 3 meeting above the origin.
	l := level.Build(10, []geom.Vector{{X: 0, Y: 0}, {X: -3, Y: 3}, {X: 3, Y: 3}})
	l.Cell(1).Walkable = false
	l.Cell(2).Walkable = false
	l.UpdateProperties()
	w := NewWalker(l)

	start := geom.Vector{X: 0.1, Y: 1}
	got := w.Walk(start, geom.Vector{X: 0, Y: 4}, 0.5)

	if !got.IsFinite() {
		t.Fatalf("Walk = %v", got)
	}
	apex := geom.Vector{X: 0, Y: 3}
	rightFoot := geom.Vector{X: 10, Y: -7}
	leftFoot := geom.Vector{X: -10, Y: -7}
	if d := segmentDistance(got, rightFoot, apex); d < 0.5-1e-3 {
		t.Errorf("result %v is %g from the right wall", got, d)
	}
	if d := segmentDistance(got, apex, leftFoot); d < 0.5-1e-3 {
		t.Errorf("result %v is %g from the left wall", got, d)
	}
	if got.Distance(start) > 4+1e-6 {
		t.Errorf("wedged walk drifted from %v to %v", start, got)
	}
}

func TestWalkRoundsConvexCorner(t *testing.T) {
	// Cell 2 is blocked; its region's lowest vertex pokes into the walkable
	// area, so a path crossing underneath must round the corner arc.
	l := level.Build(5, []geom.Vector{{X: 0, Y: 0}, {X: 2.5, Y: 0}, {X: 1.75, Y: 4}})
	l.Cell(2).Walkable = false
	l.UpdateProperties()
	w := NewWalker(l)

	corner := geom.Vector{X: 1.25, Y: 1.8359375}
	got := w.Walk(geom.Vector{X: -2, Y: 1.5}, geom.Vector{X: 3, Y: 1.5}, 0.5)

	if !got.IsFinite() {
		t.Fatalf("Walk = %v", got)
	}
	if d := got.Distance(corner); d < 0.5-1e-3 {
		t.Errorf("result %v is %g from the corner, want >= 0.5", got, d)
	}
	if got.X <= 0 {
		t.Errorf("walk made no progress past the corner: %v", got)
	}
}

func TestWalkContainedWhenOverlappingCorner(t *testing.T) {
	l := level.Build(5, []geom.Vector{{X: 0, Y: 0}, {X: 2.5, Y: 0}, {X: 1.75, Y: 4}})
	l.Cell(2).Walkable = false
	l.UpdateProperties()
	w := NewWalker(l)

	// Start closer to the blocked corner than the disc radius and nudge
	// toward it; the result must stay within the requested distance.
	corner := geom.Vector{X: 1.25, Y: 1.8359375}
	start := corner.Add(geom.Vector{X: -0.1, Y: -0.1})
	delta := geom.Vector{X: 0.02, Y: 0.005}
	got := w.Walk(start, start.Add(delta), 0.4)

	if travelled := start.Distance(got); travelled > delta.Length()+1e-9 {
		t.Errorf("moved %g for a request of %g", travelled, delta.Length())
	}
}

func TestWalkNeverExceedsRequestedDistance(t *testing.T) {
	l := level.Build(5, []geom.Vector{{X: 0, Y: 0}, {X: 2.5, Y: 0}, {X: 1.75, Y: 4}})
	l.Cell(2).Walkable = false
	l.UpdateProperties()
	w := NewWalker(l)

	rng := rand.New(rand.NewSource(5))
	pos := geom.Vector{X: -2, Y: 1.5}
	for i := 0; i < 2000; i++ {
		delta := geom.Vector{
			X: rng.Float64()*0.4 - 0.2,
			Y: rng.Float64()*0.4 - 0.2,
		}
		next := w.Walk(pos, pos.Add(delta), 0.4)
		if d := pos.Distance(next); d > delta.Length()+1e-9 {
			t.Fatalf("step %d from %v by %v: moved %g for a request of %g",
				i, pos, delta, d, delta.Length())
		}
		pos = next
	}
}

func TestResolveCollidersSeparates(t *testing.T) {
	l := level.Build(10, []geom.Vector{{X: 0, Y: 0}})
	w := NewWalker(l)

	cs := []Collider{
		{Pos: geom.Vector{X: -0.3, Y: 0}, Radius: 0.5},
		{Pos: geom.Vector{X: 0.3, Y: 0}, Radius: 0.5},
	}
	w.ResolveColliders(cs)

	if d := cs[0].Pos.Distance(cs[1].Pos); d < 1-1e-6 {
		t.Errorf("colliders still overlap: distance %g", d)
	}
	mid := cs[0].Pos.Add(cs[1].Pos).Scale(0.5)
	if mid.Length() > 1e-9 {
		t.Errorf("separation was not symmetric: midpoint %v", mid)
	}
}

func TestResolveCollidersRespectsWalls(t *testing.T) {
	l := lowerHalfLevel(t)
	w := NewWalker(l)

	up := geom.Vector{X: 0, Y: 0.5}
	cs := []Collider{
		{Pos: geom.Vector{X: 0, Y: -0.6}, Delta: up, Radius: 0.5},
		{Pos: geom.Vector{X: 0, Y: -1.6}, Delta: up, Radius: 0.5},
	}
	w.ResolveColliders(cs)

	// The leading collider is pinned at the wall; the trailing one backs
	// off instead of shoving it through.
	if want := (geom.Vector{X: 0, Y: -0.5}); cs[0].Pos.Sub(want).Length() > 1e-9 {
		t.Errorf("leading collider at %v, want %v", cs[0].Pos, want)
	}
	if cs[1].Pos.Y > -1.35 {
		t.Errorf("trailing collider at %v, want pushed back below y=-1.35", cs[1].Pos)
	}
	if math.Abs(cs[1].Pos.X) > 1e-9 {
		t.Errorf("trailing collider drifted sideways to %v", cs[1].Pos)
	}
}

func TestResolveCollidersDistantGroupsIndependent(t *testing.T) {
	l := level.Build(10, []geom.Vector{{X: 0, Y: 0}})
	w := NewWalker(l)

	cs := []Collider{
		{Pos: geom.Vector{X: -5, Y: 0}, Delta: geom.Vector{X: 1, Y: 0}, Radius: 0.5},
		{Pos: geom.Vector{X: 5, Y: 0}, Delta: geom.Vector{X: -1, Y: 0}, Radius: 0.5},
	}
	w.ResolveColliders(cs)

	if want := (geom.Vector{X: -4, Y: 0}); cs[0].Pos != want {
		t.Errorf("collider 0 at %v, want %v", cs[0].Pos, want)
	}
	if want := (geom.Vector{X: 4, Y: 0}); cs[1].Pos != want {
		t.Errorf("collider 1 at %v, want %v", cs[1].Pos, want)
	}
}
