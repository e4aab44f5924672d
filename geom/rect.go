package geom

import "math"

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	Min, Max Vector
}

// EmptyRect returns a rectangle that contains nothing; including any point
// into it yields that point's degenerate rectangle.
func EmptyRect() Rect {
	return Rect{
		Min: Vector{math.Inf(1), math.Inf(1)},
		Max: Vector{math.Inf(-1), math.Inf(-1)},
	}
}

// Including returns r grown to contain p.
func (r Rect) Including(p Vector) Rect {
	return Rect{
		Min: Vector{math.Min(r.Min.X, p.X), math.Min(r.Min.Y, p.Y)},
		Max: Vector{math.Max(r.Max.X, p.X), math.Max(r.Max.Y, p.Y)},
	}
}

func (r Rect) Contains(p Vector) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Vector {
	return Vector{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}
