// Package vecbridge lets generic numeric code operate uniformly over
// different concrete 2D/3D vector representations, varying in scalar
// precision and backing library, without coupling to any single one.
//
// The package defines capability interfaces rather than vector types. A
// generic algorithm is written against [Vector2] and [Vector3] (or the
// smaller [HasXY]/[HasXYZ] coordinate capabilities) and a concrete backing
// type is substituted at the call site:
//
//	func Area[F vecbridge.Scalar, V2 vecbridge.Vector2[F, V2, V3], V3 vecbridge.Vector3[F, V3, V2]](a, b, c V2) F {
//		return b.Sub(a).PerpDot(c.Sub(a)) / 2
//	}
//
// Adapters for go-gl/mathgl, unixpickle/model3d, and gonum spatial vectors
// live in the mglvec, modelvec, and rvec subpackages. Any other backing type
// can be wired in the same way and verified against the contracts with the
// vectest conformance battery.
package vecbridge
