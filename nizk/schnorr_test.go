package nizk

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poupas/hybridvss/curve/bls"
)

func TestSchnorrProveVerify(t *testing.T) {
	g, _ := bls.Generators()
	x, err := bls.RandomScalar(rand.Reader)
	require.NoError(t, err)
	gx := g.ScalarMul(x)

	proof, err := Prove(g, gx, x, rand.Reader)
	require.NoError(t, err)
	require.True(t, proof.Verify(g, gx))
}

func TestSchnorrRejectsWrongPublicPoint(t *testing.T) {
	g, _ := bls.Generators()
	x, err := bls.RandomScalar(rand.Reader)
	require.NoError(t, err)
	gx := g.ScalarMul(x)

	proof, err := Prove(g, gx, x, rand.Reader)
	require.NoError(t, err)

	wrong := g.ScalarMul(bls.ScalarFromUint64(999))
	require.False(t, proof.Verify(g, wrong))
}
