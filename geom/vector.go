// Package geom provides the 2D primitives shared by the level builder,
// the navigation field and the collision resolver. Vectors are plain
// immutable values; all operations return new vectors.
package geom

import "math"

// Vector is an immutable 2D point or direction.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s} }

func (v Vector) Dot(o Vector) float64 { return v.X*o.X + v.Y*o.Y }

// Wedge is the 2D cross product: positive when o lies anticlockwise of v.
func (v Vector) Wedge(o Vector) float64 { return v.X*o.Y - v.Y*o.X }

func (v Vector) Length() float64   { return math.Hypot(v.X, v.Y) }
func (v Vector) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vector) Distance(o Vector) float64   { return o.Sub(v).Length() }
func (v Vector) DistanceSq(o Vector) float64 { return o.Sub(v).LengthSq() }

// Normalize returns the unit vector in v's direction, or the zero vector
// when v has no direction.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{v.X / l, v.Y / l}
}

// NormalLeft returns v rotated 90 degrees anticlockwise. For an edge walked
// with its cell on the left, this points into the cell.
func (v Vector) NormalLeft() Vector { return Vector{-v.Y, v.X} }

// Lerp interpolates from v toward o by t.
func (v Vector) Lerp(o Vector, t float64) Vector {
	return Vector{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Rotate returns v rotated by the given angle in radians (anticlockwise).
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 }

// IsFinite reports whether both components are finite numbers.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
