package poly

import (
	"io"

	"github.com/poupas/hybridvss/curve/bls"
)

// Bivariate is the dealer's secret bivariate polynomial phi(x,y) in
// Fr[x,y], degree t in each variable, materialized as a (t+1)x(t+1)
// coefficient matrix (spec 3). phi(0,0) is the shared secret. Created once
// per dealer invocation and destroyed (Zeroize) once the dealer has
// emitted every Send.
type Bivariate struct {
	t     int
	coeff [][]bls.Scalar // coeff[i][j] is the coefficient of x^i y^j
}

// Sample draws a fresh SYMMETRIC bivariate polynomial of degree t in each
// variable with phi(0,0) = secret and every other coefficient uniformly
// random, following spec 4.C ("the remaining t*(t+2) coefficients are
// chosen uniformly at random") and spec 4.D's symmetric construction
// (phi(x,y) = phi(y,x)): only the upper triangle coeff[i][j], i<=j, is
// drawn, and coeff[j][i] is mirrored from it. Symmetry is load-bearing,
// not cosmetic — HandleReady verifies a relayed Ready against C.Row(m),
// i.e. phi(alpha_i, alpha_m), while node m derives that Ready by
// interpolating its own echo tally into phi(alpha_m, .) and evaluating
// at alpha_i; the two only agree when phi(x,y) = phi(y,x).
func Sample(rng io.Reader, t int, secret bls.Scalar) (*Bivariate, error) {
	coeff := make([][]bls.Scalar, t+1)
	for i := range coeff {
		coeff[i] = make([]bls.Scalar, t+1)
	}
	for i := 0; i <= t; i++ {
		for j := i; j <= t; j++ {
			if i == 0 && j == 0 {
				coeff[i][j] = secret
				continue
			}
			s, err := bls.RandomScalar(rng)
			if err != nil {
				return nil, err
			}
			coeff[i][j] = s
			coeff[j][i] = s
		}
	}
	return &Bivariate{t: t, coeff: coeff}, nil
}

// Row returns the univariate polynomial phi(x, alpha_m) = sum_i (sum_j
// coeff[i][j] * alpha_m^j) x^i, i.e. node m's row of the dealer's
// polynomial, the a_m(.) of spec 3's Send message.
func (b *Bivariate) Row(alphaM bls.Scalar) Univariate {
	coeffs := make([]bls.Scalar, b.t+1)
	for i := 0; i <= b.t; i++ {
		acc := bls.NewScalar()
		pow := bls.ScalarFromUint64(1)
		for j := 0; j <= b.t; j++ {
			acc = acc.Add(b.coeff[i][j].Mul(pow))
			pow = pow.Mul(alphaM)
		}
		coeffs[i] = acc
	}
	return Univariate{coeffs: coeffs}
}

// Column returns phi(alpha_m, y) as a univariate polynomial in y, the
// symmetric counterpart of Row. The reconstruction sub-protocol's column-0
// check does not call it; it reads C[m][0] through VerifyPoint with beta=0.
func (b *Bivariate) Column(alphaM bls.Scalar) Univariate {
	coeffs := make([]bls.Scalar, b.t+1)
	for j := 0; j <= b.t; j++ {
		acc := bls.NewScalar()
		pow := bls.ScalarFromUint64(1)
		for i := 0; i <= b.t; i++ {
			acc = acc.Add(b.coeff[i][j].Mul(pow))
			pow = pow.Mul(alphaM)
		}
		coeffs[j] = acc
	}
	return Univariate{coeffs: coeffs}
}

// Secret returns phi(0,0), the coefficient coeff[0][0].
func (b *Bivariate) Secret() bls.Scalar {
	return b.coeff[0][0]
}

// Degree returns t, the per-variable degree bound.
func (b *Bivariate) Degree() int {
	return b.t
}

// Zeroize overwrites every coefficient's memory. The dealer MUST call this
// once it has emitted every Send (spec 3, spec 5): the polynomial encodes
// the shared secret in its constant term and every other share in its
// rows, so it is the single most sensitive value this package handles.
func (b *Bivariate) Zeroize() {
	for i := range b.coeff {
		for j := range b.coeff[i] {
			b.coeff[i][j].Zeroize()
		}
	}
}

// Univariate is a degree-t polynomial over Fr, represented by its
// coefficients in ascending order.
type Univariate struct {
	coeffs []bls.Scalar
}

// NewUnivariate wraps a coefficient slice (ascending degree order).
func NewUnivariate(coeffs []bls.Scalar) Univariate {
	return Univariate{coeffs: coeffs}
}

// Degree returns the polynomial's degree bound (len(coeffs)-1).
func (u Univariate) Degree() int {
	return len(u.coeffs) - 1
}

// Coeffs returns the coefficient slice in ascending degree order.
func (u Univariate) Coeffs() []bls.Scalar {
	return u.coeffs
}

// Evaluate computes u(x) by Horner's method.
func (u Univariate) Evaluate(x bls.Scalar) bls.Scalar {
	acc := bls.NewScalar()
	for i := len(u.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(u.coeffs[i])
	}
	return acc
}

// Zeroize overwrites every coefficient's memory. Package vss never holds
// the echo-aggregated interpolated polynomial a'(x) as a Univariate (it
// evaluates it point by point with InterpolateAt), so it does not call
// this, and the tallied points it interpolates from are not zeroized.
func (u Univariate) Zeroize() {
	for i := range u.coeffs {
		u.coeffs[i].Zeroize()
	}
}
