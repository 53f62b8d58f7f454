package poly

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poupas/hybridvss/curve/bls"
)

func TestCommitVerifyPointAndMatchesRow(t *testing.T) {
	g, g2 := bls.Generators()
	domain, err := NewDomain(5)
	require.NoError(t, err)

	secret := bls.ScalarFromUint64(123)
	b, err := Sample(rand.Reader, 2, secret)
	require.NoError(t, err)

	commitment := Commit(b, domain, g)

	for m := 0; m < domain.Len(); m++ {
		row := b.Row(domain.At(m))
		require.True(t, commitment.MatchesRow(m, row, g))

		for k := 0; k < domain.Len(); k++ {
			beta := domain.At(k)
			alpha := row.Evaluate(beta)
			require.True(t, VerifyPoint(commitment.Row(m), beta, alpha, g))
		}
	}

	ok, err := PairingCheck(commitment.Row(0), domain.At(0), b.Row(domain.At(0)).Evaluate(domain.At(0)), g, g2)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyPointRejectsWrongEvaluation(t *testing.T) {
	g, _ := bls.Generators()
	domain, err := NewDomain(4)
	require.NoError(t, err)

	b, err := Sample(rand.Reader, 2, bls.ScalarFromUint64(1))
	require.NoError(t, err)
	commitment := Commit(b, domain, g)

	wrong := bls.ScalarFromUint64(999)
	require.False(t, VerifyPoint(commitment.Row(0), domain.At(0), wrong, g))
}

func TestCommitmentDigestStableAndSensitive(t *testing.T) {
	g, _ := bls.Generators()
	domain, err := NewDomain(4)
	require.NoError(t, err)

	b1, err := Sample(rand.Reader, 2, bls.ScalarFromUint64(1))
	require.NoError(t, err)
	b2, err := Sample(rand.Reader, 2, bls.ScalarFromUint64(2))
	require.NoError(t, err)

	c1 := Commit(b1, domain, g)
	c1Again := Commit(b1, domain, g)
	c2 := Commit(b2, domain, g)

	require.Equal(t, c1.Digest(), c1Again.Digest())
	require.NotEqual(t, c1.Digest(), c2.Digest())
	require.True(t, c1.Equal(c1Again))
	require.False(t, c1.Equal(c2))
}
