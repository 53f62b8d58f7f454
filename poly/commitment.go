package poly

import (
	"errors"

	"github.com/poupas/hybridvss/curve/bls"
	"golang.org/x/crypto/blake2b"
)

// ErrCommitmentMismatch names spec 7's commitment-mismatch error kind. No
// function in this package returns it: VerifyPoint and MatchesRow report a
// mismatch by returning false.
var ErrCommitmentMismatch = errors.New("poly: commitment mismatch")

// Commitment is the n x (t+1) matrix C of spec 3: for each domain point
// alpha_m, the G1 commitments to the coefficients of phi(., alpha_m). Once
// bound to a VSS instance it never changes.
type Commitment struct {
	rows [][]bls.G1 // rows[m][k] = coeff_k(row_m) * g
}

// Commit publishes the row commitments for every node in the domain.
func Commit(b *Bivariate, domain Domain, g bls.G1) Commitment {
	rows := make([][]bls.G1, domain.Len())
	for m := 0; m < domain.Len(); m++ {
		row := b.Row(domain.At(m))
		coeffs := row.Coeffs()
		rowCommit := make([]bls.G1, len(coeffs))
		for k, c := range coeffs {
			rowCommit[k] = g.ScalarMul(c)
		}
		rows[m] = rowCommit
	}
	return Commitment{rows: rows}
}

// CommitmentFromRows reconstructs a Commitment from its raw row matrix,
// used when decoding one off the wire (package wire).
func CommitmentFromRows(rows [][]bls.G1) Commitment {
	return Commitment{rows: rows}
}

// N returns the number of committed rows.
func (c Commitment) N() int {
	return len(c.rows)
}

// Degree returns t, inferred from the width of a row.
func (c Commitment) Degree() int {
	if len(c.rows) == 0 {
		return -1
	}
	return len(c.rows[0]) - 1
}

// Row returns the raw commitment vector for node m, e.g. to serialize it
// or to run VerifyPoint against a specific sender's row.
func (c Commitment) Row(m int) []bls.G1 {
	return c.rows[m]
}

// Equal reports whether two commitment matrices are identical, used to
// detect a dealer (or relaying node) asserting two different C values
// to the same recipient (spec 7's Contradiction error kind).
func (c Commitment) Equal(other Commitment) bool {
	if len(c.rows) != len(other.rows) {
		return false
	}
	for m := range c.rows {
		if len(c.rows[m]) != len(other.rows[m]) {
			return false
		}
		for k := range c.rows[m] {
			if !c.rows[m][k].Equal(other.rows[m][k]) {
				return false
			}
		}
	}
	return true
}

// MatchesRow checks a freshly received row polynomial against row m of the
// commitment matrix coefficient by coefficient: g^coeff[k] must equal
// C[m][k] for every k. Used by the Send handler (spec 4.D's verify_share),
// stronger than VerifyPoint since it is checking the full polynomial
// rather than a single evaluation.
func (c Commitment) MatchesRow(m int, u Univariate, g bls.G1) bool {
	coeffs := u.Coeffs()
	row := c.rows[m]
	if len(coeffs) != len(row) {
		return false
	}
	for k, coeff := range coeffs {
		if !g.ScalarMul(coeff).Equal(row[k]) {
			return false
		}
	}
	return true
}

// Digest returns a fixed-size fingerprint of the whole commitment matrix,
// used to key per-commitment tallies and to spot a dealer asserting two
// different C values to different recipients (spec 7's Contradiction
// error kind).
func (c Commitment) Digest() [32]byte {
	h, _ := blake2b.New256(nil)
	for _, row := range c.rows {
		for _, p := range row {
			h.Write(p.Bytes())
		}
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// VerifyPoint checks an alleged evaluation alpha = a(beta) of node m's row
// against row m of the commitment matrix (spec 4.C):
//
//	sum_k beta^k * C[m][k] == alpha * g
//
// This is the core of both verify_share (checking the dealer's Send) and
// verify_point (checking a relayed Echo/Ready), a single G1
// multi-scalar-multiplication plus one scalar-mul comparison, no pairing
// required.
func VerifyPoint(row []bls.G1, beta, alpha bls.Scalar, g bls.G1) bool {
	lhs := msm(row, beta)
	rhs := g.ScalarMul(alpha)
	return lhs.Equal(rhs)
}

// msm computes sum_k beta^k * points[k] by Horner's method in the
// exponent: rather than raising beta to increasing powers, accumulate from
// the top coefficient down, the same scheme Univariate.Evaluate uses.
func msm(points []bls.G1, beta bls.Scalar) bls.G1 {
	acc := bls.G1{}
	for k := len(points) - 1; k >= 0; k-- {
		acc = acc.ScalarMul(beta).Add(points[k])
	}
	return acc
}

// PairingCheck is the optional pairing-based cross-check named in spec
// 4.C for when a commitment row has been relayed through G2 by a separate
// committer rather than read directly off the dealer's own G1 matrix: it
// checks that e(sum_k beta^k * C[m][k], g2) == e(alpha * g1, g2). The
// pairing is non-degenerate, so this holds exactly when the G1-only
// VerifyPoint check above holds.
func PairingCheck(row []bls.G1, beta, alpha bls.Scalar, g1 bls.G1, g2 bls.G2) (bool, error) {
	lhs := msm(row, beta)
	rhs := g1.ScalarMul(alpha)
	diff := lhs.Sub(rhs)
	gt, err := bls.Pair([]bls.G1{diff}, []bls.G2{g2})
	if err != nil {
		return false, err
	}
	var identity bls.GT
	identity.SetOne()
	return gt.Equal(&identity), nil
}
