// Package vector2 provides the 2D vector primitive shared by every other
// package in this module. It wraps mgl64.Vec2 rather than reimplementing
// arithmetic, and adds the handful of operations the GJK/EPA descent needs
// on top: right-hand normals, direction-seeking normals and clockwise
// rotation.
package vector2

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a 2D vector. The zero value is the origin.
type Vector struct {
	mgl64.Vec2
}

// New builds a Vector from components.
func New(x, y float64) Vector {
	return Vector{mgl64.Vec2{x, y}}
}

// Add returns v+o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.Vec2.Add(o.Vec2)}
}

// Sub returns v-o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.Vec2.Sub(o.Vec2)}
}

// Mul returns v scaled by k.
func (v Vector) Mul(k float64) Vector {
	return Vector{v.Vec2.Mul(k)}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{v.Vec2.Mul(-1)}
}

// Dot returns the inner product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.Vec2.Dot(o.Vec2)
}

// Len returns the Euclidean length of v.
func (v Vector) Len() float64 {
	return v.Vec2.Len()
}

// LenSqr returns the squared length of v, avoiding a square root.
func (v Vector) LenSqr() float64 {
	return v.Vec2.LenSqr()
}

// Cross returns the scalar (z-component) cross product of a and b.
func Cross(a, b Vector) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// NormalizeOrZero returns v/‖v‖, or the zero vector if v is the zero vector.
// mgl64's Normalize divides by zero length and produces NaNs; callers in
// this module rely on the zero-maps-to-zero behaviour instead.
func (v Vector) NormalizeOrZero() Vector {
	if v.Vec2 == (mgl64.Vec2{}) {
		return Vector{}
	}
	return Vector{v.Vec2.Normalize()}
}

// RightNormal returns the unit vector obtained by rotating v ninety degrees
// clockwise: (x,y) -> (y,-x). Returns the zero vector for a zero input.
func (v Vector) RightNormal() Vector {
	return New(v.Y(), -v.X()).NormalizeOrZero()
}

// NormalInDirection returns whichever of ±v.RightNormal() has a positive
// inner product with d. Returns the zero vector if that dot product is
// exactly zero (d lies along v, or v is degenerate).
func (v Vector) NormalInDirection(d Vector) Vector {
	n := v.RightNormal()
	dot := n.Dot(d)
	switch {
	case dot > 0:
		return n
	case dot < 0:
		return n.Neg()
	default:
		return Vector{}
	}
}

// Rotated returns v rotated by theta radians using the clockwise-positive
// convention: a positive theta turns (1,0) towards (0,-1).
func (v Vector) Rotated(theta float64) Vector {
	sin, cos := math.Sincos(theta)
	x, y := v.X(), v.Y()
	return New(x*cos+y*sin, -x*sin+y*cos)
}

// DistanceTo returns ‖v-o‖.
func (v Vector) DistanceTo(o Vector) float64 {
	return v.Sub(o).Len()
}

// ApproxEqual reports whether v and o differ by no more than eps in each
// component, useful for tests.
func (v Vector) ApproxEqual(o Vector, eps float64) bool {
	return math.Abs(v.X()-o.X()) <= eps && math.Abs(v.Y()-o.Y()) <= eps
}
