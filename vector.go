package vecbridge

import "golang.org/x/exp/constraints"

// Vector2 is the full 2D vector algebra over the scalar F. V is the
// implementing type itself and V3 is its paired 3D counterpart; the pairing
// is bidirectional, so generic code names both sides as
//
//	func f[F vecbridge.Scalar, V2 vecbridge.Vector2[F, V2, V3], V3 vecbridge.Vector3[F, V3, V2]](...)
//
// and the compiler checks that promotion and demotion land on the partner
// type. Projecting through To3D and back with To2D reproduces the original
// vector exactly.
//
// All methods are value operations on copies; none mutates the receiver.
// Implementations must be plain value types, safe to copy and to pass
// between goroutines.
type Vector2[F constraints.Float, V, V3 any] interface {
	comparable
	HasXY[F, V]
	Approx[F, V]

	// To3D lifts the vector into its paired 3D type, supplying the new z
	// axis explicitly.
	To3D(z F) V3

	Add(V) V
	Sub(V) V
	Neg() V
	Mul(F) V
	Div(F) V
	// At returns the axis with index 0 (x) or 1 (y), and panics for any
	// other index. A literal out-of-range index is a programming error, not
	// a runtime condition to recover from.
	At(i int) F

	// Magnitude returns the Euclidean norm. MagnitudeSq returns its square
	// without taking a root; callers that only compare lengths should
	// prefer it. Magnitude()*Magnitude() matches MagnitudeSq() within
	// floating tolerance, not bit-exactly.
	Magnitude() F
	MagnitudeSq() F

	Dot(V) F
	// PerpDot returns x1*y2 - y1*x2, the signed 2D pseudo-cross product.
	// It is zero for collinear vectors, which makes it the primitive for
	// orientation tests.
	PerpDot(V) F

	Distance(V) F
	DistanceSq(V) F

	// Normalize returns the vector scaled to unit magnitude by plain
	// division. Normalizing a zero vector divides by zero and yields
	// non-finite axes per IEEE-754; callers that cannot rule out zero input
	// must use SafeNormalize.
	Normalize() V
	// SafeNormalize returns the normalized vector and true, or the zero
	// value and false if and only if the magnitude is exactly zero. The
	// zero test is exact, not tolerance-based.
	SafeNormalize() (V, bool)
}

// Vector3 is the full 3D vector algebra over the scalar F, mirroring
// [Vector2] with a z axis. V2 is the paired 2D counterpart.
type Vector3[F constraints.Float, V, V2 any] interface {
	comparable
	HasXYZ[F, V]
	Approx[F, V]

	// To2D projects the vector into its paired 2D type by dropping z.
	To2D() V2

	Add(V) V
	Sub(V) V
	Neg() V
	Mul(F) V
	Div(F) V
	// At returns the axis with index 0 (x), 1 (y) or 2 (z), and panics for
	// any other index.
	At(i int) F

	Magnitude() F
	MagnitudeSq() F

	Dot(V) F
	// Cross returns the 3D cross product. The result is the zero vector
	// exactly when the operands are collinear, including when either is the
	// zero vector. There is no PerpDot in 3D; the 2D pseudo-cross concept
	// does not extend past two dimensions.
	Cross(V) V

	Distance(V) F
	DistanceSq(V) F

	Normalize() V
	SafeNormalize() (V, bool)
}

// AssertPair does nothing at runtime. Instantiating it asserts at compile
// time that V2 and V3 form a conformant, mutually paired 2D/3D vector
// algebra over F, with mutation through the pointer types PV2 and PV3:
//
//	var _ = vecbridge.AssertPair[float32, Vec2, Vec3, *Vec2, *Vec3]
func AssertPair[
	F constraints.Float,
	V2 Vector2[F, V2, V3],
	V3 Vector3[F, V3, V2],
	PV2 Mut2[F, V2],
	PV3 Mut3[F, V3],
]() {
}
