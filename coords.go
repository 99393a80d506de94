package vecbridge

import "golang.org/x/exp/constraints"

// HasXY is the minimal capability of a 2D coordinate holder: construction
// from a coordinate pair and read access to both axes. It exists separately
// from [Vector2] so that externally owned storage types (FFI structs, GPU
// staging buffers) can participate in generic code without promising a full
// vector algebra. No validation is performed on coordinates; non-finite
// values are stored as given.
//
// New2D is a method rather than a constructor function so that generic code
// can build values of V without threading a factory through every call; it
// may be invoked on the zero value. On an inherently three-dimensional type
// New2D sets the z axis to zero.
type HasXY[F constraints.Float, V any] interface {
	New2D(x, y F) V
	X() F
	Y() F
}

// HasXYZ extends HasXY with a z axis. The x and y axes of a HasXYZ value
// remain independently addressable as a 2D holder of the same scalar type.
type HasXYZ[F constraints.Float, V any] interface {
	HasXY[F, V]
	New3D(x, y, z F) V
	Z() F
}

// Mut2 is the write side of a 2D coordinate holder, bound to the pointer
// type of V. Writing through a setter and writing through the pointer
// returned by the matching Ptr method produce identical post-states.
type Mut2[F constraints.Float, V any] interface {
	*V
	SetX(F)
	SetY(F)
	XPtr() *F
	YPtr() *F
}

// Mut3 is the write side of a 3D coordinate holder.
type Mut3[F constraints.Float, V any] interface {
	Mut2[F, V]
	SetZ(F)
	ZPtr() *F
}
