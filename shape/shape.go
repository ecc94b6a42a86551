// Package shape implements the shape model and support functions: the
// convex primitives (disks and polygons) the GJK/EPA descent operates on.
package shape

import (
	"math"

	"github.com/akmonengine/collide2d/vector2"
)

// Shape is anything the GJK/EPA descent can query: a support point in a
// given direction, a bounding radius for broad-phase rejection, and the
// pose (position, angle) it is currently placed at.
type Shape interface {
	// Support returns the point of the shape, in world space, furthest
	// along dir. dir need not be normalized.
	Support(dir vector2.Vector) vector2.Vector
	// BoundingRadius returns the radius of the smallest disk, centered on
	// the shape's position, that contains the whole shape.
	BoundingRadius() float64
	// Pose returns the shape's current position and rotation angle.
	Pose() (vector2.Vector, float64)
}

// Disk is a circle of fixed Radius, free to be moved by setting Pos.
type Disk struct {
	Radius float64
	Pos    vector2.Vector
	Angle  float64
}

// NewDisk builds a Disk of the given radius, positioned at the origin.
func NewDisk(radius float64) *Disk {
	return &Disk{Radius: radius}
}

// Support returns the boundary point of the disk furthest along dir. A
// zero dir is arbitrary but deterministic: it resolves to (1,0).
func (d *Disk) Support(dir vector2.Vector) vector2.Vector {
	u := dir.NormalizeOrZero()
	if u == (vector2.Vector{}) {
		u = vector2.New(1, 0)
	}
	return d.Pos.Add(u.Mul(d.Radius))
}

// BoundingRadius returns the disk's own radius.
func (d *Disk) BoundingRadius() float64 {
	return d.Radius
}

// Pose returns the disk's position and angle. Angle has no effect on a
// disk's shape but is retained for a uniform Shape interface.
func (d *Disk) Pose() (vector2.Vector, float64) {
	return d.Pos, d.Angle
}

// Polygon is a convex polygon given by its Corners in local space, placed
// in the world at Pos with rotation Angle.
type Polygon struct {
	Corners []vector2.Vector
	Pos     vector2.Vector
	Angle   float64

	boundingRadius float64
}

// TryNewPolygon validates corners and, if they describe a convex polygon
// with no duplicate or collinear vertices, returns a Polygon. corners are
// in local (unrotated, untranslated) space; either winding direction is
// accepted.
func TryNewPolygon(corners []vector2.Vector) (*Polygon, error) {
	if len(corners) < 3 {
		return nil, ErrTooFewCorners
	}
	if hasDuplicateCorner(corners) {
		return nil, ErrDuplicateCorner
	}
	if hasCollinearTriple(corners) {
		return nil, ErrCollinearCorners
	}
	if convexHullSize(corners) != len(corners) {
		return nil, ErrNotConvex
	}

	owned := make([]vector2.Vector, len(corners))
	copy(owned, corners)

	boundingRadius := 0.0
	for _, c := range owned {
		if r := c.Len(); r > boundingRadius {
			boundingRadius = r
		}
	}

	return &Polygon{Corners: owned, boundingRadius: boundingRadius}, nil
}

// Support returns the corner (rotated and translated into world space)
// furthest along dir.
func (p *Polygon) Support(dir vector2.Vector) vector2.Vector {
	best := p.Corners[0].Rotated(p.Angle)
	bestDot := best.Dot(dir)
	for _, c := range p.Corners[1:] {
		r := c.Rotated(p.Angle)
		if d := r.Dot(dir); d > bestDot {
			bestDot = d
			best = r
		}
	}
	return p.Pos.Add(best)
}

// BoundingRadius returns the distance from the origin to the farthest
// local-space corner, computed once at construction time.
func (p *Polygon) BoundingRadius() float64 {
	return p.boundingRadius
}

// Pose returns the polygon's position and rotation angle.
func (p *Polygon) Pose() (vector2.Vector, float64) {
	return p.Pos, p.Angle
}

// constructionEps bounds the degeneracy checks performed once at
// TryNewPolygon time. It is deliberately not derived from shape scale
// (unlike the query-scoped EPS used by gjk/epa): a polygon's own corners
// are the only scale available, and a fixed small epsilon is sufficient
// for validating hand- or generator-supplied vertex lists.
const constructionEps = 1e-9

func hasDuplicateCorner(corners []vector2.Vector) bool {
	for i := 0; i < len(corners); i++ {
		for j := i + 1; j < len(corners); j++ {
			if corners[i].Sub(corners[j]).LenSqr() <= constructionEps*constructionEps {
				return true
			}
		}
	}
	return false
}

func hasCollinearTriple(corners []vector2.Vector) bool {
	n := len(corners)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				area2 := vector2.Cross(corners[j].Sub(corners[i]), corners[k].Sub(corners[i]))
				if math.Abs(area2) <= constructionEps {
					return true
				}
			}
		}
	}
	return false
}

// convexHullSize returns the number of points on the convex hull of pts,
// found by a Jarvis march (gift wrap). Duplicate and collinear points must
// already be ruled out by the caller, or the march can stall.
func convexHullSize(pts []vector2.Vector) int {
	n := len(pts)
	if n < 3 {
		return n
	}

	leftmost := 0
	for i := 1; i < n; i++ {
		if pts[i].X() < pts[leftmost].X() ||
			(pts[i].X() == pts[leftmost].X() && pts[i].Y() < pts[leftmost].Y()) {
			leftmost = i
		}
	}

	count := 0
	p := leftmost
	for {
		count++
		q := (p + 1) % n
		for i := 0; i < n; i++ {
			if i == p {
				continue
			}
			if vector2.Cross(pts[q].Sub(pts[p]), pts[i].Sub(pts[p])) < 0 {
				q = i
			}
		}
		p = q
		if p == leftmost || count > n {
			break
		}
	}
	return count
}
