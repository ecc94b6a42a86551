package gjk

import (
	"testing"

	"github.com/akmonengine/collide2d/shape"
	"github.com/akmonengine/collide2d/vector2"
)

const testEPS = 1e-9
const testMaxIter = 64

func disk(radius float64, pos vector2.Vector) *shape.Disk {
	d := shape.NewDisk(radius)
	d.Pos = pos
	return d
}

func box(halfExtent float64, pos vector2.Vector) *shape.Polygon {
	corners := []vector2.Vector{
		vector2.New(-halfExtent, -halfExtent),
		vector2.New(halfExtent, -halfExtent),
		vector2.New(halfExtent, halfExtent),
		vector2.New(-halfExtent, halfExtent),
	}
	p, err := shape.TryNewPolygon(corners)
	if err != nil {
		panic(err)
	}
	p.Pos = pos
	return p
}

func TestRun_OverlappingDisks(t *testing.T) {
	a := disk(1, vector2.New(0, 0))
	b := disk(1, vector2.New(1.5, 0))

	overlap, _ := Run(a, b, testEPS, testMaxIter)
	if !overlap {
		t.Fatal("expected overlap for disks 1.5 apart with combined radius 2")
	}
}

func TestRun_SeparatedDisks(t *testing.T) {
	a := disk(1, vector2.New(0, 0))
	b := disk(1, vector2.New(5, 0))

	overlap, _ := Run(a, b, testEPS, testMaxIter)
	if overlap {
		t.Fatal("expected no overlap for disks 5 apart with combined radius 2")
	}
}

func TestRun_TouchingDisksAtBoundary(t *testing.T) {
	a := disk(1, vector2.New(0, 0))
	b := disk(1, vector2.New(2, 0))

	eps := 1e-6
	overlap, _ := Run(a, b, eps, testMaxIter)
	if !overlap {
		t.Fatal("expected touching disks to register as overlapping within EPS")
	}
}

func TestRun_OverlappingBoxes(t *testing.T) {
	a := box(1, vector2.New(0, 0))
	b := box(1, vector2.New(1, 0))

	overlap, simplex := Run(a, b, testEPS, testMaxIter)
	if !overlap {
		t.Fatal("expected overlap for boxes of half-extent 1 centered 1 apart")
	}
	if simplex.Count < 2 {
		t.Fatalf("expected a degenerate-or-larger simplex, got Count=%d", simplex.Count)
	}
}

func TestRun_SeparatedBoxes(t *testing.T) {
	a := box(1, vector2.New(0, 0))
	b := box(1, vector2.New(3, 0))

	overlap, _ := Run(a, b, testEPS, testMaxIter)
	if overlap {
		t.Fatal("expected no overlap for boxes of half-extent 1 centered 3 apart")
	}
}

func TestRun_DiskInsideBox(t *testing.T) {
	a := box(5, vector2.New(0, 0))
	b := disk(0.5, vector2.New(0, 0))

	overlap, _ := Run(a, b, testEPS, testMaxIter)
	if !overlap {
		t.Fatal("expected overlap when a disk sits fully inside a box")
	}
}

func TestRun_IsSymmetric(t *testing.T) {
	a := box(1, vector2.New(0, 0))
	b := disk(1, vector2.New(1, 1))

	ab, _ := Run(a, b, testEPS, testMaxIter)
	ba, _ := Run(b, a, testEPS, testMaxIter)
	if ab != ba {
		t.Fatalf("Run(a,b)=%v but Run(b,a)=%v, expected symmetry", ab, ba)
	}
}

func TestMinkowskiSupport_IsAntiSymmetric(t *testing.T) {
	a := disk(1, vector2.New(0, 0))
	b := disk(1, vector2.New(3, 0))
	dir := vector2.New(1, 0)

	forward := MinkowskiSupport(a, b, dir)
	backward := MinkowskiSupport(b, a, dir.Neg())

	if !forward.Neg().ApproxEqual(backward, 1e-9) {
		t.Fatalf("MinkowskiSupport(a,b,d) = %v, want -MinkowskiSupport(b,a,-d) = %v", forward, backward.Neg())
	}
}
