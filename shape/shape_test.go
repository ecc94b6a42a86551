package shape

import (
	"math"
	"testing"

	"github.com/akmonengine/collide2d/vector2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() []vector2.Vector {
	return []vector2.Vector{
		vector2.New(-1, -1),
		vector2.New(1, -1),
		vector2.New(1, 1),
		vector2.New(-1, 1),
	}
}

func TestTryNewPolygon_Square(t *testing.T) {
	p, err := TryNewPolygon(square())
	require.NoError(t, err)
	assert.Len(t, p.Corners, 4)
	assert.InDelta(t, math.Sqrt2, p.BoundingRadius(), 1e-9)
}

func TestTryNewPolygon_RejectsTooFewCorners(t *testing.T) {
	_, err := TryNewPolygon([]vector2.Vector{vector2.New(0, 0), vector2.New(1, 0)})
	require.ErrorIs(t, err, ErrTooFewCorners)
}

func TestTryNewPolygon_RejectsDuplicateCorner(t *testing.T) {
	corners := []vector2.Vector{
		vector2.New(0, 0),
		vector2.New(1, 0),
		vector2.New(1, 0),
		vector2.New(0, 1),
	}
	_, err := TryNewPolygon(corners)
	require.ErrorIs(t, err, ErrDuplicateCorner)
}

func TestTryNewPolygon_RejectsCollinearCorners(t *testing.T) {
	corners := []vector2.Vector{
		vector2.New(0, 0),
		vector2.New(1, 0),
		vector2.New(2, 0),
		vector2.New(1, 1),
	}
	_, err := TryNewPolygon(corners)
	require.ErrorIs(t, err, ErrCollinearCorners)
}

func TestTryNewPolygon_RejectsNonConvex(t *testing.T) {
	corners := []vector2.Vector{
		vector2.New(0, 0),
		vector2.New(2, 0),
		vector2.New(1.5, 1),
		vector2.New(2, 2),
		vector2.New(0, 2),
	}
	_, err := TryNewPolygon(corners)
	require.ErrorIs(t, err, ErrNotConvex)
}

func TestTryNewPolygon_AcceptsClockwiseWinding(t *testing.T) {
	corners := []vector2.Vector{
		vector2.New(-1, 1),
		vector2.New(1, 1),
		vector2.New(1, -1),
		vector2.New(-1, -1),
	}
	_, err := TryNewPolygon(corners)
	require.NoError(t, err)
}

func TestPolygon_SupportPicksFarthestCorner(t *testing.T) {
	p, err := TryNewPolygon(square())
	require.NoError(t, err)
	p.Pos = vector2.New(5, 5)

	got := p.Support(vector2.New(1, 0))
	assert.True(t, got.ApproxEqual(vector2.New(6, 6), 1e-9) || got.ApproxEqual(vector2.New(6, 4), 1e-9),
		"Support(+x) = %v, want a corner with x=6", got)
}

func TestDisk_SupportLiesOnBoundary(t *testing.T) {
	d := NewDisk(2)
	d.Pos = vector2.New(1, 1)

	got := d.Support(vector2.New(0, 1))
	assert.True(t, got.ApproxEqual(vector2.New(1, 3), 1e-9))
	assert.InDelta(t, 2.0, d.BoundingRadius(), 1e-12)
}
