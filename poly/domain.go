package poly

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"

	"github.com/poupas/hybridvss/curve/bls"
)

// Domain is the ordered list of public evaluation points alpha_0..alpha_n-1
// that identify participants (spec 3). Position i in the domain is node
// i's public identifier; it never changes for the life of a VSS instance.
type Domain struct {
	points []bls.Scalar
}

// NewDomain builds a domain of n distinct, non-zero evaluation points: the
// first n powers of the generator of the smallest 2-adic subgroup of Fr
// with order >= n, taken from gnark-crypto's own FFT domain construction
// (ecc/bls12-381/fr/fft). This is the same "smallest FFT-friendly subgroup
// of order >= n" the teacher's pairing stack already ships a generator for,
// rather than hand-deriving a root of unity.
func NewDomain(n int) (Domain, error) {
	if n <= 0 {
		return Domain{}, fmt.Errorf("poly: domain size must be positive, got %d", n)
	}
	fftDomain := fft.NewDomain(uint64(n))

	points := make([]bls.Scalar, n)
	acc := bls.ScalarFromUint64(1)
	gen := bls.ScalarFromFr(fftDomain.Generator)
	for i := 0; i < n; i++ {
		points[i] = acc
		acc = acc.Mul(gen)
	}
	return Domain{points: points}, nil
}

// Len returns the number of points in the domain.
func (d Domain) Len() int {
	return len(d.points)
}

// At returns the evaluation point identifying node i.
func (d Domain) At(i int) bls.Scalar {
	return d.points[i]
}

// Points returns the full ordered slice of domain points.
func (d Domain) Points() []bls.Scalar {
	return d.points
}
