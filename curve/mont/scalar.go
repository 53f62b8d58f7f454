// Package mont wraps curve25519 points, carried as Montgomery
// u-coordinates, and their birationally equivalent Edwards form behind the
// canonical encodings the Montgomery-point DLEQ variant (spec 4.B) needs:
// scalar multiplication of u-coordinates (computed in the Edwards group,
// not with a Montgomery ladder), and an explicit, sign-bit-addressable
// lift to Edwards form for the verifier's four-candidate check.
package mont

import (
	"io"

	"filippo.io/edwards25519"
)

// ScalarSize is the canonical encoding width of a scalar mod the curve25519
// group order L.
const ScalarSize = 32

// Scalar is an element of Z/L, the curve25519 scalar field.
type Scalar struct {
	inner edwards25519.Scalar
}

// RandomScalar samples uniformly from Z/L by reading 64 bytes of entropy
// from rng and performing a wide reduction, mirroring the
// curve25519_dalek::scalar::Scalar::random convention the original
// implementation relies on.
func RandomScalar(rng io.Reader) (Scalar, error) {
	var wide [64]byte
	if _, err := io.ReadFull(rng, wide[:]); err != nil {
		return Scalar{}, err
	}
	var s Scalar
	if _, err := s.inner.SetUniformBytes(wide[:]); err != nil {
		return Scalar{}, err
	}
	return s, nil
}

// ReduceWide reduces a 32-byte digest modulo L, the "reduce" step of
// spec 4.B's DLEQ challenge (c interpreted as a scalar modulo the group
// order). Zero-extending to 64 bytes before the library's wide reduction
// is mathematically identical to a direct mod-L reduction of the 32-byte
// value.
func ReduceWide(digest [32]byte) Scalar {
	var wide [64]byte
	copy(wide[:32], digest[:])
	var s Scalar
	if _, err := s.inner.SetUniformBytes(wide[:]); err != nil {
		panic("mont: wide reduction of a zero-extended digest cannot fail")
	}
	return s
}

// ScalarFromCanonicalBytes decodes a scalar already known to be < L, used
// when deserializing a peer-supplied proof response r.
func ScalarFromCanonicalBytes(b []byte) (Scalar, error) {
	var s Scalar
	if _, err := s.inner.SetCanonicalBytes(b); err != nil {
		return Scalar{}, err
	}
	return s, nil
}

// Bytes returns the canonical little-endian encoding curve25519 uses.
func (s Scalar) Bytes() [ScalarSize]byte {
	var out [ScalarSize]byte
	copy(out[:], s.inner.Bytes())
	return out
}

// Add returns s + other mod L.
func (s Scalar) Add(other Scalar) Scalar {
	var r Scalar
	r.inner.Add(&s.inner, &other.inner)
	return r
}

// Sub returns s - other mod L.
func (s Scalar) Sub(other Scalar) Scalar {
	var r Scalar
	r.inner.Subtract(&s.inner, &other.inner)
	return r
}

// Mul returns s * other mod L.
func (s Scalar) Mul(other Scalar) Scalar {
	var r Scalar
	r.inner.Multiply(&s.inner, &other.inner)
	return r
}

// Zeroize overwrites the scalar's memory.
func (s *Scalar) Zeroize() {
	s.inner = edwards25519.Scalar{}
}
