package nizk

import (
	"io"

	"github.com/poupas/hybridvss/curve/mont"
)

// MontgomeryProof is a NIZK proof that log_x1(y1) == log_x2(y2) for points
// on the curve25519 Montgomery curve, the x25519-shaped DLEQ variant of
// spec 4.B. Grounded on original_source/src/syncvss/nizkp.rs's
// NIZKP::dleq/dleq_verify.
type MontgomeryProof struct {
	C [32]byte
	R mont.Scalar
}

// ProveMontgomeryDLEQ proves knowledge of alpha such that y1 = alpha*x1 and
// y2 = alpha*x2, without revealing alpha.
func ProveMontgomeryDLEQ(x1, y1, x2, y2 mont.Point, alpha mont.Scalar, rng io.Reader) (MontgomeryProof, error) {
	w, err := mont.RandomScalar(rng)
	if err != nil {
		return MontgomeryProof{}, err
	}
	defer w.Zeroize()

	t1 := x1.ScalarMul(w)
	t2 := x2.ScalarMul(w)

	x1b, y1b, x2b, y2b := x1.Bytes(), y1.Bytes(), x2.Bytes(), y2.Bytes()
	t1b, t2b := t1.Bytes(), t2.Bytes()
	c := hash32(x1b[:], y1b[:], x2b[:], y2b[:], t1b[:], t2b[:])

	r := w.Sub(alpha.Mul(mont.ReduceWide(c)))
	return MontgomeryProof{C: c, R: r}, nil
}

// Verify checks the proof against the four base/image pairs. Montgomery
// encoding discards the sign of the Edwards lift of y1 and y2, so the
// verifier recomputes the commitment in Edwards form for every one of the
// four sign assignments and accepts iff exactly one matches (spec 4.B, 9):
// accepting on "any" match instead of "exactly one" would make the proof
// malleable.
func (p MontgomeryProof) Verify(x1, y1, x2, y2 mont.Point) bool {
	piC := mont.ReduceWide(p.C)

	x1e0, ok1 := x1.ToEdwards(0)
	x2e0, ok2 := x2.ToEdwards(0)
	if !ok1 || !ok2 {
		return false
	}
	x1r := x1e0.ScalarMul(p.R)
	x2r := x2e0.ScalarMul(p.R)

	x1b, y1b, x2b, y2b := x1.Bytes(), y1.Bytes(), x2.Bytes(), y2.Bytes()

	trySign := func(sign1, sign2 byte) bool {
		y1e, ok := y1.ToEdwards(sign1)
		if !ok {
			return false
		}
		y2e, ok := y2.ToEdwards(sign2)
		if !ok {
			return false
		}
		t1 := x1r.Add(y1e.ScalarMul(piC))
		t2 := x2r.Add(y2e.ScalarMul(piC))
		t1m, t2m := t1.ToMontgomery().Bytes(), t2.ToMontgomery().Bytes()
		c := hash32(x1b[:], y1b[:], x2b[:], y2b[:], t1m[:], t2m[:])
		return c == p.C
	}

	matches := 0
	for s1 := byte(0); s1 < 2; s1++ {
		for s2 := byte(0); s2 < 2; s2++ {
			if trySign(s1, s2) {
				matches++
			}
		}
	}
	return matches == 1
}
