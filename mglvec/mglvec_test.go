package mglvec

import (
	"testing"

	"github.com/vecbridge/vecbridge/vectest"
)

func TestCoordHolders(t *testing.T) {
	vectest.CoordHolder2[float32, Vec2, *Vec2](t, 1, 2)
	vectest.CoordHolder2[float32, Vec3, *Vec3](t, 1, 2)
	vectest.CoordHolder3[float32, Vec3, *Vec3](t, 1, 2, 3)

	vectest.CoordHolder2[float64, DVec2, *DVec2](t, 1, 2)
	vectest.CoordHolder2[float64, DVec3, *DVec3](t, 1, 2)
	vectest.CoordHolder3[float64, DVec3, *DVec3](t, 1, 2, 3)
}

func TestVector2(t *testing.T) {
	vectest.Vector2Ops[float32, Vec2, Vec3, *Vec2](t, 1, 2, 3, 1e-3)
	vectest.Vector2Ops[float64, DVec2, DVec3, *DVec2](t, 1, 2, 3, 1e-12)
}

func TestVector3(t *testing.T) {
	vectest.Vector3Ops[float32, Vec3, Vec2, *Vec3](t, 1, 2, 3, 1e-3)
	vectest.Vector3Ops[float64, DVec3, DVec2, *DVec3](t, 1, 2, 3, 1e-12)
}
