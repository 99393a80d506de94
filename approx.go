package vecbridge

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultMaxUlps is the ULP distance under which two scalars compare equal
// when the caller has no tighter requirement.
const DefaultMaxUlps uint32 = 4

// DefaultEpsilon returns the default absolute tolerance for F, the machine
// epsilon of the width.
func DefaultEpsilon[F Scalar]() F {
	return Epsilon[F]()
}

// AbsDiffEq reports whether a and b differ by at most epsilon. Exactly equal
// values compare equal regardless of epsilon, so equal infinities are
// accepted.
func AbsDiffEq[F Scalar](a, b, epsilon F) bool {
	if a == b {
		return true
	}
	return Abs(a-b) <= epsilon
}

// UlpsEq reports whether a and b differ by at most epsilon, or by at most
// maxUlps representable values of the same sign. NaN is unequal to
// everything, itself included.
func UlpsEq[F Scalar](a, b, epsilon F, maxUlps uint32) bool {
	if AbsDiffEq(a, b, epsilon) {
		return true
	}
	if a != a || b != b {
		return false
	}
	switch x := any(a).(type) {
	case float32:
		y := any(b).(float32)
		if math32.Signbit(x) != math32.Signbit(y) {
			return false
		}
		d := int64(int32(math.Float32bits(x))) - int64(int32(math.Float32bits(y)))
		if d < 0 {
			d = -d
		}
		return d <= int64(maxUlps)
	default:
		f, g := float64(a), float64(b)
		if math.Signbit(f) != math.Signbit(g) {
			return false
		}
		return scalar.EqualWithinULP(f, g, uint(maxUlps))
	}
}

// Approx is axis-wise approximate equality for vector types, under both a
// ULP-distance model and an absolute-difference model. Each axis is compared
// independently and the axis results are ANDed.
//
// This is a capability of this package rather than a use of an external
// equality interface because Go methods cannot be declared on types owned by
// another package; adapter wrapper types implement Approx by delegating each
// axis to [UlpsEq] and [AbsDiffEq]. Callers without specific tolerance
// requirements pass [DefaultEpsilon] and [DefaultMaxUlps].
type Approx[F constraints.Float, V any] interface {
	// UlpsEq reports whether every axis of the receiver is ULP-equal to the
	// corresponding axis of other under epsilon and maxUlps.
	UlpsEq(other V, epsilon F, maxUlps uint32) bool
	// AbsDiffEq reports whether every axis of the receiver is within epsilon
	// of the corresponding axis of other.
	AbsDiffEq(other V, epsilon F) bool
}

// ApproxEq is the zero-parameter convenience form of vector approximate
// equality: ULP equality under [DefaultEpsilon] and [DefaultMaxUlps].
func ApproxEq[F Scalar, V Approx[F, V]](a, b V) bool {
	return a.UlpsEq(b, DefaultEpsilon[F](), DefaultMaxUlps)
}
