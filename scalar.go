package vecbridge

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is the set of types usable as a vector coordinate.
//
// The constraint is exact rather than approximate (no ~) so that the
// width-dispatched operations in this package are total: a value of any
// Scalar type is either a float32 or a float64 at runtime. Scalar satisfies
// constraints.Float, so Scalar-constrained code can call into code written
// against the wider constraint.
type Scalar interface {
	float32 | float64
}

// Sqrt returns the square root of v, computed in v's own width.
func Sqrt[F Scalar](v F) F {
	switch x := any(v).(type) {
	case float32:
		return F(math32.Sqrt(x))
	default:
		return F(math.Sqrt(float64(v)))
	}
}

// Abs returns the absolute value of v.
func Abs[F Scalar](v F) F {
	switch x := any(v).(type) {
	case float32:
		return F(math32.Abs(x))
	default:
		return F(math.Abs(float64(v)))
	}
}

// IsNormal reports whether v is a normal floating-point number: neither
// zero, subnormal, infinite, nor NaN.
func IsNormal[F Scalar](v F) bool {
	switch x := any(v).(type) {
	case float32:
		exp := math.Float32bits(x) >> 23 & 0xff
		return exp != 0 && exp != 0xff
	default:
		exp := math.Float64bits(float64(v)) >> 52 & 0x7ff
		return exp != 0 && exp != 0x7ff
	}
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite[F Scalar](v F) bool {
	switch x := any(v).(type) {
	case float32:
		return !math32.IsInf(x, 0) && !math32.IsNaN(x)
	default:
		f := float64(v)
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	}
}

// IsZero reports whether v is exactly zero, of either sign.
func IsZero[F Scalar](v F) bool {
	return v == 0
}

// Clamp limits v to the range [lo, hi]. A value equal to a bound is returned
// as that bound. The lower bound is applied before the upper one, so when
// lo > hi the result is hi; Clamp never panics. Infinities and NaN follow
// from the ordinary IEEE-754 comparisons.
func Clamp[F Scalar](v, lo, hi F) F {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// Epsilon returns the machine epsilon of F: the difference between 1 and the
// smallest representable value of F greater than 1.
func Epsilon[F Scalar]() F {
	switch any(F(0)).(type) {
	case float32:
		return 0x1p-23
	default:
		return 0x1p-52
	}
}

// Inf returns positive infinity of F if sign >= 0, negative infinity
// otherwise.
func Inf[F Scalar](sign int) F {
	switch any(F(0)).(type) {
	case float32:
		return F(math32.Inf(sign))
	default:
		return F(math.Inf(sign))
	}
}

// Bits returns the IEEE-754 bit pattern of v. For a float32 the pattern
// occupies the low 32 bits of the result. Bits and FromBits round-trip
// losslessly at both widths.
func Bits[F Scalar](v F) uint64 {
	switch x := any(v).(type) {
	case float32:
		return uint64(math.Float32bits(x))
	default:
		return math.Float64bits(float64(v))
	}
}

// FromBits reconstructs a value of F from the bit pattern returned by Bits.
func FromBits[F Scalar](u uint64) F {
	switch any(F(0)).(type) {
	case float32:
		return F(math.Float32frombits(uint32(u)))
	default:
		return F(math.Float64frombits(u))
	}
}

// Lerp linearly interpolates from a to b by t, with t outside [0, 1]
// extrapolating.
func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}
