package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1Size and G2Size are the canonical compressed-or-uncompressed widths
// gnark-crypto's Marshal produces for affine points on each curve.
const (
	G1Size = bls12381.SizeOfG1AffineUncompressed
	G2Size = bls12381.SizeOfG2AffineUncompressed
)

// G1 is an affine point on the BLS12-381 G1 curve. All polynomial
// commitments in package poly live in G1, per spec.
type G1 struct {
	inner bls12381.G1Affine
}

// G2 is an affine point on the BLS12-381 G2 curve, used for public keys in
// the pairing-based cross-check variant of the commitment scheme.
type G2 struct {
	inner bls12381.G2Affine
}

// GT is the target group of the pairing, e: G1 x G2 -> GT.
type GT = bls12381.GT

// Generators returns the canonical G1 and G2 base points.
func Generators() (G1, G2) {
	_, _, g1, g2 := bls12381.Generators()
	return G1{inner: g1}, G2{inner: g2}
}

// ScalarMul returns scalar * p.
func (p G1) ScalarMul(scalar Scalar) G1 {
	var x big.Int
	scalar.inner.ToBigIntRegular(&x)
	var r G1
	r.inner.ScalarMultiplication(&p.inner, &x)
	return r
}

// Add returns p + q.
func (p G1) Add(q G1) G1 {
	var r G1
	r.inner.Add(&p.inner, &q.inner)
	return r
}

// Sub returns p - q.
func (p G1) Sub(q G1) G1 {
	var r G1
	r.inner.Sub(&p.inner, &q.inner)
	return r
}

// Equal reports point equality.
func (p G1) Equal(q G1) bool {
	return p.inner.Equal(&q.inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p G1) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// Bytes returns the canonical uncompressed encoding.
func (p G1) Bytes() []byte {
	b := p.inner.Marshal()
	return b
}

// SetBytes decodes a canonical G1 encoding.
func (p *G1) SetBytes(b []byte) error {
	return p.inner.Unmarshal(b)
}

// ScalarMul returns scalar * p.
func (p G2) ScalarMul(scalar Scalar) G2 {
	var x big.Int
	scalar.inner.ToBigIntRegular(&x)
	var r G2
	r.inner.ScalarMultiplication(&p.inner, &x)
	return r
}

// Add returns p + q.
func (p G2) Add(q G2) G2 {
	var r G2
	r.inner.Add(&p.inner, &q.inner)
	return r
}

// Equal reports point equality.
func (p G2) Equal(q G2) bool {
	return p.inner.Equal(&q.inner)
}

// Bytes returns the canonical uncompressed encoding.
func (p G2) Bytes() []byte {
	return p.inner.Marshal()
}

// SetBytes decodes a canonical G2 encoding.
func (p *G2) SetBytes(b []byte) error {
	return p.inner.Unmarshal(b)
}

// Pair computes the product of pairings e(p[0],q[0]) * e(p[1],q[1]) * ...,
// the multi-pairing form used by the optional pairing-based commitment
// cross-check (spec 4.C) and by any dispute artifact that needs to relay a
// commitment through G2.
func Pair(p []G1, q []G2) (GT, error) {
	p1 := make([]bls12381.G1Affine, len(p))
	p2 := make([]bls12381.G2Affine, len(q))
	for i := range p {
		p1[i] = p[i].inner
	}
	for i := range q {
		p2[i] = q[i].inner
	}
	return bls12381.Pair(p1, p2)
}
