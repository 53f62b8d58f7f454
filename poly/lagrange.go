package poly

import "github.com/poupas/hybridvss/curve/bls"

// Lagrange computes the Lagrange basis coefficients for interpolating at
// evaluation point x, given a set of domain indices and a function
// resolving each index to its domain point. Grounded on
// luxfi-threshold/pkg/math/polynomial's Lagrange(group, ids) shape,
// reimplemented over bls.Scalar since the pack's own Lagrange helpers are
// tied to different curve types (secp256k1 and the herumi Fr type).
func Lagrange(domain Domain, indices []int, x bls.Scalar) map[int]bls.Scalar {
	coeffs := make(map[int]bls.Scalar, len(indices))
	for _, i := range indices {
		xi := domain.At(i)
		num := bls.ScalarFromUint64(1)
		den := bls.ScalarFromUint64(1)
		for _, j := range indices {
			if j == i {
				continue
			}
			xj := domain.At(j)
			num = num.Mul(x.Sub(xj))
			den = den.Mul(xi.Sub(xj))
		}
		coeffs[i] = num.Mul(den.Inverse())
	}
	return coeffs
}

// InterpolateAt interpolates the unique degree-(len(points)-1) polynomial
// through the given (domain-index, value) pairs and evaluates it at x,
// without ever materializing the coefficient form. Used both to rebuild
// a'(x) from t+1 Echos/Readys and to recover a secret from t+1 shares
// (spec 4.D).
func InterpolateAt(domain Domain, values map[int]bls.Scalar, x bls.Scalar) bls.Scalar {
	indices := make([]int, 0, len(values))
	for i := range values {
		indices = append(indices, i)
	}
	coeffs := Lagrange(domain, indices, x)
	acc := bls.NewScalar()
	for _, i := range indices {
		acc = acc.Add(values[i].Mul(coeffs[i]))
	}
	return acc
}
