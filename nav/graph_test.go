package nav

import (
	"math"
	"math/rand"
	"testing"

	"github.com/depp/intern-apocalypse-sub001/geom"
	"github.com/depp/intern-apocalypse-sub001/level"
)

func buildThreeCells(t *testing.T) *level.Level {
	t.Helper()
	return level.Build(5, []geom.Vector{{X: 0, Y: 0}, {X: 2.5, Y: 0}, {X: 1.75, Y: 4}})
}

func TestNavigateTowardSingleTarget(t *testing.T) {
	l := buildThreeCells(t)
	g := New(l)
	target := geom.Vector{X: 1.75, Y: 4}
	g.Update([]geom.Vector{target})

	// From cell 0 the next hop is cell 2 itself; the direction aims at its
	// site and the recorded distance is the site-to-site leg.
	r := g.Navigate(geom.Vector{X: -2, Y: -2})
	if r.Target != 0 {
		t.Fatalf("Target = %d, want 0", r.Target)
	}
	wantDist := math.Sqrt(19.0625)
	if math.Abs(r.Distance-wantDist) > 1e-9 {
		t.Errorf("Distance = %g, want %g", r.Distance, wantDist)
	}
	wantDir := geom.Vector{X: 3.75, Y: 6}.Normalize()
	if r.Direction.Sub(wantDir).Length() > 1e-9 {
		t.Errorf("Direction = %v, want %v", r.Direction, wantDir)
	}

	// Inside the seed cell the direction points at the exact target point.
	r = g.Navigate(geom.Vector{X: 1, Y: 4.5})
	if want := (geom.Vector{X: 0.75, Y: -0.5}).Normalize(); r.Direction.Sub(want).Length() > 1e-9 {
		t.Errorf("seed cell Direction = %v, want %v", r.Direction, want)
	}
	if r.Distance != 0 {
		t.Errorf("seed cell Distance = %g, want 0", r.Distance)
	}
}

func TestNavigatePicksNearerTarget(t *testing.T) {
	l := buildThreeCells(t)
	g := New(l)
	g.Update([]geom.Vector{{X: -4, Y: -4}, {X: 1.75, Y: 4}})

	// Cell 1 is closer to the second target's front than the first's.
	r := g.Navigate(geom.Vector{X: 4, Y: -1})
	if r.Target != 1 {
		t.Errorf("Target = %d, want 1", r.Target)
	}
}

func TestNavigateUnreachable(t *testing.T) {
	l := buildThreeCells(t)
	l.Cell(2).Walkable = false
	l.UpdateProperties()

	g := New(l)
	g.Update([]geom.Vector{{X: 1.75, Y: 4}})

	// The lone target sits in a blocked cell, so the field stays empty.
	for _, p := range []geom.Vector{{X: -2, Y: -2}, {X: 4, Y: -1}, {X: 1, Y: 4.5}} {
		r := g.Navigate(p)
		if r.Target != NoCell || !r.Direction.IsZero() {
			t.Errorf("Navigate(%v) = %+v, want empty route", p, r)
		}
		if g.Reachable(p) {
			t.Errorf("Reachable(%v) = true", p)
		}
	}
}

func TestNavigateAroundBlockedCell(t *testing.T) {
	// A lightly jittered 3x3 grid with the center cell blocked: routes from
	// the right column must flow around it.
	rng := rand.New(rand.NewSource(3))
	var sites []geom.Vector
	for gy := 0; gy < 3; gy++ {
		for gx := 0; gx < 3; gx++ {
			sites = append(sites, geom.Vector{
				X: float64(gx-1)*4 + (rng.Float64()-0.5)*0.4,
				Y: float64(gy-1)*4 + (rng.Float64()-0.5)*0.4,
			})
		}
	}
	l := level.Build(6, sites)
	mid := l.FindCell(geom.Vector{})
	mid.Walkable = false
	l.UpdateProperties()

	g := New(l)
	target := geom.Vector{X: -4, Y: 0}
	g.Update([]geom.Vector{target})

	r := g.Navigate(geom.Vector{X: 4, Y: 0})
	if r.Target != 0 {
		t.Fatalf("Target = %d, want 0", r.Target)
	}
	// The next hop must not be the blocked middle cell.
	if r.Direction.X < -0.99 {
		t.Errorf("route crosses the blocked cell: direction %v", r.Direction)
	}
	// Detour distance: two diagonal-ish legs instead of two straight ones.
	if r.Distance <= 8 {
		t.Errorf("Distance = %g, want > 8 around the blocked cell", r.Distance)
	}

	if g.Reachable(geom.Vector{}) {
		t.Errorf("blocked cell reported reachable")
	}
}

func TestNavigateBeforeFirstUpdate(t *testing.T) {
	l := level.Build(5, []geom.Vector{{X: 0, Y: 0}, {X: 2.5, Y: 0}})
	g := New(l)

	if g.Reachable(geom.Vector{X: -1, Y: 0}) {
		t.Error("fresh graph reports a reachable cell")
	}
	r := g.Navigate(geom.Vector{X: -1, Y: 0})
	if !r.Direction.IsZero() || r.Distance != 0 || r.Target != NoCell {
		t.Errorf("fresh graph returned route %+v", r)
	}
}
