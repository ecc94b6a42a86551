// Package collide2d is a 2D convex collision-detection library built on
// GJK for overlap testing and EPA for penetration resolution.
//
// The public surface is deliberately small: build shapes with MakeDisk or
// TryMakePolygon, set their Pos and Angle directly, and query pairs with
// Overlaps or Penetration. The gjk, epa, shape and vector2 packages hold
// the implementation and can be used directly by callers who need the
// lower-level primitives (e.g. a custom broad phase).
package collide2d

import (
	"github.com/akmonengine/collide2d/epa"
	"github.com/akmonengine/collide2d/gjk"
	"github.com/akmonengine/collide2d/shape"
	"github.com/akmonengine/collide2d/vector2"
)

// Shape is any convex body the GJK/EPA descent can query. Disk and
// Polygon (from the shape package) implement it; MakeDisk and
// TryMakePolygon are the usual way to obtain one.
type Shape = shape.Shape

// Vector is the 2D vector type used throughout the public API.
type Vector = vector2.Vector

// Construction errors returned by TryMakePolygon.
var (
	ErrTooFewCorners    = shape.ErrTooFewCorners
	ErrDuplicateCorner  = shape.ErrDuplicateCorner
	ErrCollinearCorners = shape.ErrCollinearCorners
	ErrNotConvex        = shape.ErrNotConvex
)

// MakeDisk returns a disk of the given radius, positioned at the origin.
// It never fails: any positive radius is valid.
func MakeDisk(radius float64) Shape {
	return shape.NewDisk(radius)
}

// TryMakePolygon validates corners (given in local space, either winding
// direction) and returns a convex Polygon, or one of the sentinel errors
// in this package if the corners don't describe a valid convex polygon.
func TryMakePolygon(corners []Vector) (Shape, error) {
	return shape.TryNewPolygon(corners)
}

// Overlaps reports whether a and b currently overlap, using DefaultConfig.
func Overlaps(a, b Shape) bool {
	return OverlapsWithConfig(a, b, DefaultConfig)
}

// OverlapsWithConfig is Overlaps with an explicit Config, letting callers
// tune the epsilon and iteration caps per query.
func OverlapsWithConfig(a, b Shape, cfg Config) bool {
	if !boundingRadiiOverlap(a, b) {
		return false
	}
	eps := epsFor(a, b, cfg)
	overlap, _ := gjk.Run(a, b, eps, cfg.GJKMaxIter)
	return overlap
}

// Penetration returns the minimum-translation vector separating a and b,
// using DefaultConfig. The zero vector is returned if the shapes don't
// overlap. The vector points from a toward b: moving b by this amount
// (or a by its negation) separates the shapes.
func Penetration(a, b Shape) Vector {
	return PenetrationWithConfig(a, b, DefaultConfig)
}

// PenetrationWithConfig is Penetration with an explicit Config.
func PenetrationWithConfig(a, b Shape, cfg Config) Vector {
	if !boundingRadiiOverlap(a, b) {
		return Vector{}
	}
	eps := epsFor(a, b, cfg)
	overlap, simplex := gjk.Run(a, b, eps, cfg.GJKMaxIter)
	if !overlap {
		return Vector{}
	}
	return epa.Resolve(a, b, simplex, eps, cfg.EPAMaxIter)
}

// boundingRadiiOverlap is an optional broad-phase rejection: if the
// bounding disks of a and b don't overlap, the shapes themselves can't
// either, so GJK/EPA never need to run. It never produces a false
// negative (it only ever skips work that would have reported no
// overlap), so it cannot change the result of Overlaps or Penetration.
func boundingRadiiOverlap(a, b Shape) bool {
	posA, _ := a.Pose()
	posB, _ := b.Pose()
	r := a.BoundingRadius() + b.BoundingRadius()
	return posA.Sub(posB).LenSqr() <= r*r
}
