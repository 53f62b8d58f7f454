package nizk

import (
	"io"

	"github.com/poupas/hybridvss/curve/bls"
)

// SchnorrProof is a non-interactive proof of knowledge of x such that
// gx = x*g, for g, gx in G1 (spec 4.B). Grounded on
// original_source/src/syncvss/nizkp.rs's SchnorrPoK.
type SchnorrProof struct {
	S bls.Scalar
	E bls.Scalar
}

// Prove builds a proof of knowledge of x for gx = x*g.
func Prove(g, gx bls.G1, x bls.Scalar, rng io.Reader) (SchnorrProof, error) {
	k, err := bls.RandomScalar(rng)
	if err != nil {
		return SchnorrProof{}, err
	}
	defer k.Zeroize()

	r := g.ScalarMul(k)
	e := hashToScalar(r.Bytes(), g.Bytes(), gx.Bytes())
	s := k.Sub(x.Mul(e))
	return SchnorrProof{S: s, E: e}, nil
}

// Verify recomputes r = s*g + e*gx and checks that it re-derives the
// challenge e carried in the proof.
func (p SchnorrProof) Verify(g, gx bls.G1) bool {
	r := g.ScalarMul(p.S).Add(gx.ScalarMul(p.E))
	e := hashToScalar(r.Bytes(), g.Bytes(), gx.Bytes())
	return e.Equal(p.E)
}
