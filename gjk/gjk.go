// Package gjk implements the Gilbert-Johnson-Keerthi (GJK) algorithm for
// 2D collision detection.
//
// GJK detects whether two convex shapes overlap by testing if their
// Minkowski difference contains the origin. The simplex is built
// incrementally and reduced each iteration to its closest feature (point,
// edge or triangle) until the origin is found inside it or a separating
// direction is proven.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the
//     Distance Between Complex Objects in Three-Dimensional Space" (1988)
package gjk

import (
	"math"

	"github.com/akmonengine/collide2d/shape"
	"github.com/akmonengine/collide2d/vector2"
)

// Simplex holds up to 3 points of the Minkowski difference, in the order
// they were added. In 2D a 3-point simplex (triangle) is the largest
// feature that can contain the origin; there is no tetrahedron case.
type Simplex struct {
	Points [3]vector2.Vector
	Count  int
}

// MinkowskiSupport returns a support point of the Minkowski difference
// A-B: furthestPoint(A, dir) - furthestPoint(B, -dir).
func MinkowskiSupport(a, b shape.Shape, dir vector2.Vector) vector2.Vector {
	return a.Support(dir).Sub(b.Support(dir.Neg()))
}

// Run performs GJK between a and b, returning whether the origin is
// contained in their Minkowski difference (i.e. the shapes overlap), and
// the final simplex. On overlap, the simplex is handed to epa.Resolve to
// compute a penetration vector; a simplex with fewer than 3 points signals
// a degenerate touching case (shapes meeting at a vertex or edge).
//
// eps is the query-scoped line-thickness epsilon and maxIter the
// iteration cap; both are supplied by the caller rather than read from a
// package global, so repeated queries never interfere with one another.
func Run(a, b shape.Shape, eps float64, maxIter int) (bool, Simplex) {
	var simplex Simplex

	posA, _ := a.Pose()
	posB, _ := b.Pose()
	seed := posB.Sub(posA).RightNormal()
	if seed == (vector2.Vector{}) {
		seed = vector2.New(1, 0)
	}

	s0 := MinkowskiSupport(a, b, seed)
	simplex.Points[0] = s0
	simplex.Count = 1

	dir := s0.Neg()
	if dir.LenSqr() <= eps*eps {
		// The first support point already sits on the origin: the
		// shapes touch at a single vertex.
		return true, simplex
	}

	for i := 0; i < maxIter; i++ {
		s := MinkowskiSupport(a, b, dir)

		if s.LenSqr() <= eps*eps {
			// The support point sits on the origin: the shapes touch at a
			// single vertex.
			simplex.Points[0] = s
			simplex.Count = 1
			return true, simplex
		}
		if stalled(&simplex, s, eps) {
			return false, simplex
		}
		if s.Dot(dir) <= eps {
			return false, simplex
		}

		simplex.Points[simplex.Count] = s
		simplex.Count++

		inside, next, ok := refine(&simplex, eps)
		if inside || !ok {
			return true, simplex
		}
		dir = next
	}

	// Iteration cap reached: treat as a numerical pathology and report
	// no overlap, the conservative answer for collision response.
	return false, simplex
}

// stalled reports whether s duplicates an existing simplex vertex to
// within eps, which would mean the search has stopped making progress.
func stalled(s *Simplex, point vector2.Vector, eps float64) bool {
	for i := 0; i < s.Count; i++ {
		if point.Sub(s.Points[i]).LenSqr() <= eps*eps {
			return true
		}
	}
	return false
}

// refine reduces the simplex to the feature closest to the origin and
// reports whether that feature contains the origin. ok is false when no
// next search direction is returned: the direction would be zero, or the
// origin lies within eps of the segment. The caller treats both as the
// origin being contained (a degenerate but valid touching case).
func refine(s *Simplex, eps float64) (inside bool, dir vector2.Vector, ok bool) {
	switch s.Count {
	case 2:
		return refineLine(s, eps)
	case 3:
		return refineTriangle(s, eps)
	}
	return false, vector2.Vector{}, false
}

// refineLine handles a 2-point simplex [a, b]. It reports the Voronoi
// region of the origin: closest to a, closest to b, or closest to the
// interior of the segment.
func refineLine(s *Simplex, eps float64) (bool, vector2.Vector, bool) {
	a := s.Points[0]
	b := s.Points[1]
	ab := b.Sub(a)
	ba := a.Sub(b)

	if ab.Dot(a.Neg()) < 0 {
		s.Points[0] = a
		s.Count = 1
		d := a.Neg().NormalizeOrZero()
		if d == (vector2.Vector{}) {
			return true, d, false
		}
		return false, d, true
	}

	if ba.Dot(b.Neg()) < 0 {
		s.Points[0] = b
		s.Count = 1
		d := b.Neg().NormalizeOrZero()
		if d == (vector2.Vector{}) {
			return true, d, false
		}
		return false, d, true
	}

	n := ab.NormalInDirection(a.Neg())
	if n == (vector2.Vector{}) {
		// ab is parallel to a: the origin lies on the infinite line but
		// the perpendicular is undefined. Treat as contained.
		return true, vector2.Vector{}, false
	}

	if math.Abs(a.Neg().Dot(n)) <= eps {
		// Origin lies within EPS of the segment: touching.
		return true, vector2.Vector{}, false
	}

	return false, n, true
}

// refineTriangle handles a 3-point simplex [c, b, a] (c oldest, a most
// recent). For each edge, the outward normal (pointing away from the
// excluded third vertex) is tested against the origin; if the origin is
// outside any edge the simplex reduces to that edge. If the origin is
// inside all three edges it is contained in the triangle.
func refineTriangle(s *Simplex, eps float64) (bool, vector2.Vector, bool) {
	c := s.Points[0]
	b := s.Points[1]
	a := s.Points[2]

	area2 := vector2.Cross(b.Sub(a), c.Sub(a))
	if math.Abs(area2) <= eps*eps {
		// Degenerate (collinear) triangle: drop the oldest point and
		// refine as a line with the two most recent points.
		s.Points[0] = b
		s.Points[1] = a
		s.Count = 2
		return refineLine(s, eps)
	}

	edges := [3]struct{ p, q, third vector2.Vector }{
		{a, b, c},
		{b, c, a},
		{c, a, b},
	}

	for _, e := range edges {
		n := e.q.Sub(e.p).NormalInDirection(e.p.Sub(e.third))
		if n.Dot(e.p.Neg()) > 0 {
			s.Points[0] = e.p
			s.Points[1] = e.q
			s.Count = 2
			return refineLine(s, eps)
		}
	}

	return true, vector2.Vector{}, true
}
