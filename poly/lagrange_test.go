package poly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poupas/hybridvss/curve/bls"
)

func TestInterpolateAtRecoversKnownPolynomial(t *testing.T) {
	domain, err := NewDomain(6)
	require.NoError(t, err)

	// f(x) = 3 + 5x, degree 1, so any 2 points determine it everywhere.
	f := func(x bls.Scalar) bls.Scalar {
		return bls.ScalarFromUint64(3).Add(bls.ScalarFromUint64(5).Mul(x))
	}

	values := map[int]bls.Scalar{
		0: f(domain.At(0)),
		2: f(domain.At(2)),
	}

	for i := 0; i < domain.Len(); i++ {
		got := InterpolateAt(domain, values, domain.At(i))
		require.True(t, got.Equal(f(domain.At(i))), "mismatch at index %d", i)
	}

	zero := InterpolateAt(domain, values, bls.ScalarFromUint64(0))
	require.True(t, zero.Equal(bls.ScalarFromUint64(3)))
}

func TestLagrangeBasisIsOneAtOwnPointZeroElsewhere(t *testing.T) {
	domain, err := NewDomain(5)
	require.NoError(t, err)

	coeffs := Lagrange(domain, []int{0, 1, 2}, domain.At(1))
	require.True(t, coeffs[1].Equal(bls.ScalarFromUint64(1)))
	require.True(t, coeffs[0].IsZero())
	require.True(t, coeffs[2].IsZero())
}
