// Package epa implements the Expanding Polytope Algorithm for computing
// 2D penetration vectors.
//
// EPA runs after GJK detects an overlap, expanding the simplex GJK leaves
// behind into a closed boundary polygon in the Minkowski difference
// space. Each step finds the boundary edge closest to the origin, queries
// a new support point in that edge's outward normal direction, and
// splits the edge with it. When the support point no longer extends the
// boundary, the closest edge is the face of the true Minkowski boundary
// and its projection of the origin gives the separating vector.
//
// References:
//   - Van den Bergen: "Proximity Queries and Penetration Depth
//     Computation on 3D Game Objects" (2001)
package epa

import (
	"math"

	"github.com/akmonengine/collide2d/gjk"
	"github.com/akmonengine/collide2d/shape"
	"github.com/akmonengine/collide2d/vector2"
)

// Resolve computes the minimum-translation vector that separates a from
// b, given the simplex GJK left behind after reporting an overlap. eps is
// the same query-scoped epsilon GJK used, and maxIter bounds the
// polytope-expansion loop.
//
// The result points from a toward b: translating b by Resolve(a, b, ...)
// (or a by its negation) separates the shapes.
func Resolve(a, b shape.Shape, simplex gjk.Simplex, eps float64, maxIter int) vector2.Vector {
	if simplex.Count < 3 {
		return degenerateResolve(a, b, eps)
	}

	boundary := []vector2.Vector{simplex.Points[0], simplex.Points[1], simplex.Points[2]}
	if signedArea(boundary) < 0 {
		boundary[1], boundary[2] = boundary[2], boundary[1]
	}

	for i := 0; i < maxIter; i++ {
		idx, _, normal := closestEdge(boundary)
		w := gjk.MinkowskiSupport(a, b, normal)

		if onBoundary(boundary, w, eps) {
			p := boundary[idx]
			q := boundary[(idx+1)%len(boundary)]
			return projectOrigin(p, q, eps)
		}

		boundary = insertAfter(boundary, idx, w)
	}

	// Iteration cap reached: report the best edge found so far rather
	// than diverge further.
	idx, _, _ := closestEdge(boundary)
	p := boundary[idx]
	q := boundary[(idx+1)%len(boundary)]
	return projectOrigin(p, q, eps)
}

// degenerateResolve handles a GJK simplex with fewer than 3 points: the
// shapes meet at a single vertex or along an edge with no measurable
// area. The fallback is a nudge of magnitude eps along the line from a's
// center to b's center, or along +x when the centers coincide.
func degenerateResolve(a, b shape.Shape, eps float64) vector2.Vector {
	posA, _ := a.Pose()
	posB, _ := b.Pose()
	dir := posB.Sub(posA).NormalizeOrZero()
	if dir == (vector2.Vector{}) {
		dir = vector2.New(1, 0)
	}
	return dir.Mul(eps)
}

// closestEdge returns the index of the boundary edge closest to the
// origin, its perpendicular distance, and its outward unit normal.
// boundary is assumed to be wound counter-clockwise.
func closestEdge(boundary []vector2.Vector) (int, float64, vector2.Vector) {
	bestIdx := 0
	bestDist := math.Inf(1)
	var bestNormal vector2.Vector

	n := len(boundary)
	for i := 0; i < n; i++ {
		p := boundary[i]
		q := boundary[(i+1)%n]

		normal := q.Sub(p).RightNormal()
		dist := normal.Dot(p)
		if dist < 0 {
			normal = normal.Neg()
			dist = -dist
		}

		if dist < bestDist {
			bestDist = dist
			bestIdx = i
			bestNormal = normal
		}
	}

	return bestIdx, bestDist, bestNormal
}

// onBoundary reports whether w lies within eps of an existing boundary
// vertex, meaning the support point found nothing beyond the current
// polygon and expansion has converged.
func onBoundary(boundary []vector2.Vector, w vector2.Vector, eps float64) bool {
	for _, v := range boundary {
		if w.Sub(v).LenSqr() <= eps*eps {
			return true
		}
	}
	return false
}

// insertAfter returns boundary with w inserted immediately after index i.
func insertAfter(boundary []vector2.Vector, i int, w vector2.Vector) []vector2.Vector {
	boundary = append(boundary, vector2.Vector{})
	copy(boundary[i+2:], boundary[i+1:])
	boundary[i+1] = w
	return boundary
}

// projectOrigin projects the origin onto line segment pq and returns the
// vector from the origin to that foot, scaled out by eps so the result
// strictly separates the shapes rather than leaving them exactly touching.
func projectOrigin(p, q vector2.Vector, eps float64) vector2.Vector {
	edge := q.Sub(p)
	length := edge.Len()
	var foot vector2.Vector
	if length <= eps {
		foot = p
	} else {
		u := edge.Mul(1 / length)
		t := u.Dot(p.Neg())
		foot = p.Add(u.Mul(t))
	}

	footLen := foot.Len()
	if footLen <= eps {
		return vector2.New(eps, 0)
	}
	return foot.Mul((footLen + eps) / footLen)
}

// signedArea returns twice the signed area of the polygon (positive for
// counter-clockwise winding).
func signedArea(poly []vector2.Vector) float64 {
	area := 0.0
	n := len(poly)
	for i := 0; i < n; i++ {
		area += vector2.Cross(poly[i], poly[(i+1)%n])
	}
	return area
}
