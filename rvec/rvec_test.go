package rvec

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vecbridge/vecbridge/vectest"
)

func TestCoordHolders(t *testing.T) {
	vectest.CoordHolder2[float64, Vec2, *Vec2](t, 1, 2)
	vectest.CoordHolder2[float64, Vec3, *Vec3](t, 1, 2)
	vectest.CoordHolder3[float64, Vec3, *Vec3](t, 1, 2, 3)
}

func TestVector2(t *testing.T) {
	vectest.Vector2Ops[float64, Vec2, Vec3, *Vec2](t, 1, 2, 3, 1e-12)
}

func TestVector3(t *testing.T) {
	vectest.Vector3Ops[float64, Vec3, Vec2, *Vec3](t, 1, 2, 3, 1e-12)
}

func TestBackingRoundTrip(t *testing.T) {
	p := r2.Vec{X: 1, Y: 2}
	if FromR2(p).R2() != p {
		t.Errorf("r2 round trip changed %v", p)
	}
	q := r3.Vec{X: 1, Y: 2, Z: 3}
	if FromR3(q).R3() != q {
		t.Errorf("r3 round trip changed %v", q)
	}
}
