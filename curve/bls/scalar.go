// Package bls wraps gnark-crypto's BLS12-381 field and group arithmetic
// behind the fixed-width canonical encodings the Fiat-Shamir transform in
// package nizk and the polynomial commitment scheme in package poly depend
// on. Nothing here stores randomness; every sampling call takes an
// explicit io.Reader, following the teacher's own Pick(rand)-shaped
// sampling convention.
package bls

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ScalarSize is the canonical big-endian encoding width of an Fr element.
const ScalarSize = fr.Bytes

// Modulus returns the characteristic of the scalar field Fr: the bound
// ScalarFromCanonicalBytes checks against (and through it the
// rejection-sampling Fiat-Shamir reduction in package nizk) to tell a
// canonical digest from one that wrapped around.
func Modulus() *big.Int {
	return fr.Modulus()
}

// ScalarFromCanonicalBytes decodes b as a big-endian integer and returns
// (scalar, true) only if it is already less than the field modulus,
// i.e. without silently reducing it. Used by the rejection-sampling
// transcript hash, where reducing a non-canonical digest instead of
// retrying would bias the challenge distribution.
func ScalarFromCanonicalBytes(b []byte) (Scalar, bool) {
	var x big.Int
	x.SetBytes(b)
	if x.Cmp(fr.Modulus()) >= 0 {
		return Scalar{}, false
	}
	var s Scalar
	s.inner.SetBytes(b)
	return s, true
}

// Scalar is an element of the BLS12-381 scalar field Fr.
type Scalar struct {
	inner fr.Element
}

// NewScalar returns the additive identity.
func NewScalar() Scalar {
	return Scalar{}
}

// ScalarFromUint64 builds a small scalar, mostly useful for domain indices
// and test fixtures.
func ScalarFromUint64(v uint64) Scalar {
	var s Scalar
	s.inner.SetUint64(v)
	return s
}

// ScalarFromFr wraps a gnark-crypto fr.Element directly, used to adopt
// values produced by gnark-crypto's own helpers (e.g. an FFT domain's
// generator) without a re-encode/decode round trip.
func ScalarFromFr(e fr.Element) Scalar {
	return Scalar{inner: e}
}

// RandomScalar samples a uniformly random field element by reading 48
// bytes (a comfortable security margin over the 32-byte field size) from
// rng and reducing modulo the field characteristic. rng is never retained.
func RandomScalar(rng io.Reader) (Scalar, error) {
	var buf [48]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return Scalar{}, err
	}
	var s Scalar
	s.inner.SetBytes(buf[:])
	return s, nil
}

// Bytes returns the canonical fixed-width big-endian encoding.
func (s Scalar) Bytes() [ScalarSize]byte {
	return s.inner.Bytes()
}

// SetBytes decodes a canonical big-endian encoding, reducing modulo the
// field characteristic if the input does not represent a canonical
// residue. Matches gnark-crypto's own SetBytes semantics so encode/decode
// round-trips for every value this package itself produces.
func (s *Scalar) SetBytes(b []byte) {
	s.inner.SetBytes(b)
}

// Add returns s + other.
func (s Scalar) Add(other Scalar) Scalar {
	var r Scalar
	r.inner.Add(&s.inner, &other.inner)
	return r
}

// Sub returns s - other.
func (s Scalar) Sub(other Scalar) Scalar {
	var r Scalar
	r.inner.Sub(&s.inner, &other.inner)
	return r
}

// Mul returns s * other.
func (s Scalar) Mul(other Scalar) Scalar {
	var r Scalar
	r.inner.Mul(&s.inner, &other.inner)
	return r
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	var r Scalar
	r.inner.Neg(&s.inner)
	return r
}

// Inverse returns s^-1. Undefined if s is zero. The only caller in this
// module is poly.Lagrange, whose denominators are products of differences
// of distinct domain points and so are never zero.
func (s Scalar) Inverse() Scalar {
	var r Scalar
	r.inner.Inverse(&s.inner)
	return r
}

// Pow returns s^e for a small non-negative exponent, used by the
// commitment-verification MSM (beta^k).
func (s Scalar) Pow(e uint64) Scalar {
	var r Scalar
	r.inner.SetOne()
	base := s
	for e > 0 {
		if e&1 == 1 {
			r = r.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return r
}

// Equal reports whether s and other represent the same field element.
func (s Scalar) Equal(other Scalar) bool {
	return s.inner.Equal(&other.inner)
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Zeroize overwrites s's memory. Called on every exit path of the dealer's
// Share handler and inside the NIZK provers per spec's secret-scoping
// requirement; Go has no destructor hook so this only protects against
// accidental later reuse of the value, not against a GC'd copy elsewhere.
func (s *Scalar) Zeroize() {
	s.inner = fr.Element{}
}
