// Package walk resolves disc movement against a level's impassable edges.
// Walls are inset by the agent's radius and corners get matching arcs, so
// the disc itself reduces to a point that slides along the inflated
// boundary. Agent-against-agent resolution lives in colliders.go.
package walk

import (
	"fmt"
	"math"

	"github.com/depp/intern-apocalypse-sub001/geom"
	"github.com/depp/intern-apocalypse-sub001/level"
)

const (
	// maxSlides bounds the resolve loop; each iteration consumes one wall
	// or corner contact.
	maxSlides = 9
	// backtrackAllowance tolerates a start point fractionally behind a wall
	// plane from accumulated rounding.
	backtrackAllowance = 1e-9
	// repeatHitDistSq suppresses re-hitting an obstacle at the point it was
	// already hit this walk.
	repeatHitDistSq = 1e-12
	// queryPadding widens the swept-disc query so walls just outside the
	// direct path still register.
	queryPadding = 0.5
	minStepSq    = 1e-18
)

// Walker resolves point walks against one level. It caches the inflated
// obstacle set per walk and may be reused across calls; it is not safe for
// concurrent use.
type Walker struct {
	level   *level.Level
	ids     []level.EdgeID
	edges   []wallEdge
	corners []wallCorner

	// HitEdges accumulates the edges touched since the last ResetHits, for
	// the debug overlay.
	HitEdges []level.EdgeID
}

type wallEdge struct {
	id     level.EdgeID
	a      geom.Vector // inset segment start
	dir    geom.Vector // unit direction along the wall
	normal geom.Vector // unit normal toward the walkable side
	length float64

	hitValid bool
	hitPoint geom.Vector
}

type wallCorner struct {
	center geom.Vector
	edge   level.EdgeID // one of the two edges meeting at the corner

	hitValid bool
	hitPoint geom.Vector
}

func NewWalker(l *level.Level) *Walker {
	return &Walker{level: l}
}

// ResetHits clears the accumulated hit set.
func (w *Walker) ResetHits() { w.HitEdges = w.HitEdges[:0] }

// Walk moves a disc of the given radius from start toward end, sliding
// along any impassable edges in the way, and returns the final position.
// The result is the start of the last resolved segment, so a walk cut off
// mid-slide lands on the contact point rather than inside a wall.
func (w *Walker) Walk(start, end geom.Vector, radius float64) geom.Vector {
	if start == end {
		return start
	}
	w.prepare(start, end, radius)

	segStart, segEnd := start, end
	lastSign := 0.0
	for iter := 0; iter < maxSlides; iter++ {
		delta := segEnd.Sub(segStart)
		if delta.LengthSq() < minStepSq {
			break
		}

		hit, ok := w.firstHit(segStart, delta, radius)
		if !ok {
			segStart = segEnd
			break
		}
		w.recordHit(hit)

		newEnd := w.slide(hit, segStart, delta, radius)
		segStart, segEnd = hit.point, newEnd

		// Opposing walls deflect the slide to alternating sides; once the
		// sign flips the disc is wedged and stays on the contact point.
		sign := signOf(delta.Wedge(newEnd.Sub(hit.point)))
		if sign != 0 && lastSign != 0 && sign != lastSign {
			break
		}
		if sign != 0 {
			lastSign = sign
		}
	}

	if !segStart.IsFinite() {
		panic(fmt.Sprintf("walk: non-finite position %v from walk %v -> %v", segStart, start, end))
	}
	return segStart
}

// prepare gathers the impassable edges a swept disc along start-end could
// touch, insets them by the radius, and adds arcs at wall corners that bend
// away from the walkable side.
func (w *Walker) prepare(start, end geom.Vector, radius float64) {
	mid := start.Add(end).Scale(0.5)
	reach := radius + start.Distance(end)/2 + queryPadding
	w.ids = w.level.AppendUnpassableEdges(w.ids[:0], mid, reach)

	w.edges = w.edges[:0]
	w.corners = w.corners[:0]
	for _, id := range w.ids {
		e := w.level.Edge(id)
		d := e.Vertex1.Sub(e.Vertex0)
		length := d.Length()
		if length == 0 {
			continue
		}
		dir := d.Scale(1 / length)
		n := dir.NormalLeft()
		w.edges = append(w.edges, wallEdge{
			id:     id,
			a:      e.Vertex0.Add(n.Scale(radius)),
			dir:    dir,
			normal: n,
			length: length,
		})
	}

	// A corner arc fills the gap between two inset segments wherever the
	// wall turns clockwise (away from the walkable left side).
	for _, id := range w.ids {
		e := w.level.Edge(id)
		for _, other := range w.ids {
			f := w.level.Edge(other)
			if f.Vertex0 != e.Vertex1 {
				continue
			}
			d1 := e.Vertex1.Sub(e.Vertex0)
			d2 := f.Vertex1.Sub(f.Vertex0)
			if d1.Wedge(d2) < 0 {
				w.corners = append(w.corners, wallCorner{center: e.Vertex1, edge: id})
			}
		}
	}
}

type contact struct {
	t      float64
	point  geom.Vector
	edge   int // index into w.edges, -1 for a corner
	corner int
}

// firstHit finds the earliest obstacle contact along the segment, skipping
// contacts already registered at the same point this walk.
func (w *Walker) firstHit(p, delta geom.Vector, radius float64) (contact, bool) {
	best := contact{t: math.Inf(1), edge: -1, corner: -1}

	for i := range w.edges {
		e := &w.edges[i]
		ds := p.Sub(e.a).Dot(e.normal)
		de := ds + delta.Dot(e.normal)
		if ds < -backtrackAllowance || de >= 0 || de >= ds {
			continue
		}
		t := ds / (ds - de)
		if t < 0 {
			t = 0
		}
		if t >= best.t {
			continue
		}
		h := p.Add(delta.Scale(t))
		along := h.Sub(e.a).Dot(e.dir)
		if along < 0 || along > e.length {
			continue
		}
		if e.hitValid && h.DistanceSq(e.hitPoint) < repeatHitDistSq {
			continue
		}
		best = contact{t: t, point: h, edge: i, corner: -1}
	}

	for i := range w.corners {
		c := &w.corners[i]
		rel := p.Sub(c.center)
		if rel.Dot(delta) >= 0 {
			continue
		}
		// |rel + delta*t| = radius, smaller root.
		a2 := delta.LengthSq()
		b2 := 2 * rel.Dot(delta)
		c2 := rel.LengthSq() - radius*radius
		disc := b2*b2 - 4*a2*c2
		if disc < 0 {
			continue
		}
		t := (-b2 - math.Sqrt(disc)) / (2 * a2)
		if t < 0 {
			// Circle behind the start, or the start already overlapping it.
			// An overlapping start is not a contact.
			continue
		}
		if t > 1 || t >= best.t {
			continue
		}
		h := p.Add(delta.Scale(t))
		if c.hitValid && h.DistanceSq(c.hitPoint) < repeatHitDistSq {
			continue
		}
		best = contact{t: t, point: h, edge: -1, corner: i}
	}

	return best, !math.IsInf(best.t, 1)
}

func (w *Walker) recordHit(hit contact) {
	if hit.edge >= 0 {
		e := &w.edges[hit.edge]
		e.hitValid, e.hitPoint = true, hit.point
		w.HitEdges = append(w.HitEdges, e.id)
		return
	}
	c := &w.corners[hit.corner]
	c.hitValid, c.hitPoint = true, hit.point
	w.HitEdges = append(w.HitEdges, c.edge)
}

// slide converts the motion remaining after a contact into a glide along
// the obstacle and returns the new segment end.
func (w *Walker) slide(hit contact, p, delta geom.Vector, radius float64) geom.Vector {
	rem := delta.Scale(1 - hit.t)

	if hit.edge >= 0 {
		e := &w.edges[hit.edge]
		along := hit.point.Sub(e.a).Dot(e.dir) + rem.Dot(e.dir)
		if along < 0 {
			along = 0
		} else if along > e.length {
			along = e.length
		}
		return e.a.Add(e.dir.Scale(along))
	}

	// Corner: rotate the contact radial around the arc by the remaining
	// distance, stopping where the radial becomes perpendicular to the
	// motion (the disc has rounded the corner).
	c := &w.corners[hit.corner]
	radial := hit.point.Sub(c.center).Normalize()
	dn := rem.Normalize()
	if dn.IsZero() {
		return hit.point
	}
	turn := signOf(radial.Wedge(dn))
	if turn == 0 {
		return hit.point
	}
	cos := radial.Dot(dn)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	maxAngle := math.Acos(cos) - math.Pi/2
	if maxAngle <= 0 {
		return hit.point
	}
	angle := rem.Length() / radius
	if angle > maxAngle {
		angle = maxAngle
	}
	return c.center.Add(radial.Rotate(turn * angle).Scale(radius))
}

func signOf(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
