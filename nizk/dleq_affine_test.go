package nizk

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poupas/hybridvss/curve/bls"
)

func TestAffineDLEQProveVerify(t *testing.T) {
	g1, _ := bls.Generators()
	x1 := g1
	x2 := g1.ScalarMul(bls.ScalarFromUint64(7)) // a second base point, 7*x1

	alpha, err := bls.RandomScalar(rand.Reader)
	require.NoError(t, err)

	y1 := x1.ScalarMul(alpha)
	y2 := x2.ScalarMul(alpha)

	proof, err := ProveAffineDLEQ(x1, y1, x2, y2, alpha, rand.Reader)
	require.NoError(t, err)
	require.True(t, proof.Verify(x1, y1, x2, y2))
}

func TestAffineDLEQRejectsMismatchedExponent(t *testing.T) {
	g1, _ := bls.Generators()
	x1 := g1
	x2 := g1.ScalarMul(bls.ScalarFromUint64(7))

	alpha, err := bls.RandomScalar(rand.Reader)
	require.NoError(t, err)
	beta, err := bls.RandomScalar(rand.Reader)
	require.NoError(t, err)

	y1 := x1.ScalarMul(alpha)
	y2 := x2.ScalarMul(beta)

	proof, err := ProveAffineDLEQ(x1, y1, x2, y2, alpha, rand.Reader)
	require.NoError(t, err)
	require.False(t, proof.Verify(x1, y1, x2, y2))
}
