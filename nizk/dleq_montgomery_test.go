package nizk

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poupas/hybridvss/curve/mont"
)

func TestMontgomeryDLEQProveVerify(t *testing.T) {
	x1 := mont.Basepoint()
	x1Edwards, ok := x1.ToEdwards(0)
	require.True(t, ok)
	x2Point := x1Edwards.ScalarMul(scalarFive(t)).ToMontgomery() // a second base point, 5*x1

	alpha, err := mont.RandomScalar(rand.Reader)
	require.NoError(t, err)

	y1 := x1.ScalarMul(alpha)
	y2 := x2Point.ScalarMul(alpha)

	proof, err := ProveMontgomeryDLEQ(x1, y1, x2Point, y2, alpha, rand.Reader)
	require.NoError(t, err)
	require.True(t, proof.Verify(x1, y1, x2Point, y2))
}

func TestMontgomeryDLEQRejectsMismatchedExponent(t *testing.T) {
	x1 := mont.Basepoint()
	x2Edwards, ok := x1.ToEdwards(0)
	require.True(t, ok)
	x2Point := x2Edwards.ScalarMul(scalarFive(t)).ToMontgomery()

	alpha, err := mont.RandomScalar(rand.Reader)
	require.NoError(t, err)
	beta, err := mont.RandomScalar(rand.Reader)
	require.NoError(t, err)

	y1 := x1.ScalarMul(alpha)
	y2 := x2Point.ScalarMul(beta) // different exponent

	proof, err := ProveMontgomeryDLEQ(x1, y1, x2Point, y2, alpha, rand.Reader)
	require.NoError(t, err)
	require.False(t, proof.Verify(x1, y1, x2Point, y2))
}

func scalarFive(t *testing.T) mont.Scalar {
	t.Helper()
	var b [mont.ScalarSize]byte
	b[0] = 5
	s, err := mont.ScalarFromCanonicalBytes(b[:])
	require.NoError(t, err)
	return s
}
