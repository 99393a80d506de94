package modelvec

import (
	"testing"

	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"

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
	c := model2d.Coord{X: 1, Y: 2}
	if FromCoord(c).Coord() != c {
		t.Errorf("model2d round trip changed %v", c)
	}
	c3 := model3d.Coord3D{X: 1, Y: 2, Z: 3}
	if FromCoord3D(c3).Coord3D() != c3 {
		t.Errorf("model3d round trip changed %v", c3)
	}
}
