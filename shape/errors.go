package shape

import "errors"

// Sentinel errors returned by TryNewPolygon. Matched with errors.Is.
var (
	ErrTooFewCorners    = errors.New("shape: polygon needs at least three corners")
	ErrDuplicateCorner  = errors.New("shape: duplicate corner")
	ErrCollinearCorners = errors.New("shape: three corners are collinear")
	ErrNotConvex        = errors.New("shape: corners do not form a convex polygon")
)
