package bls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestG1ScalarMulAndSerialization(t *testing.T) {
	g, _ := Generators()
	three := ScalarFromUint64(3)
	p := g.ScalarMul(three)

	expected := g.Add(g).Add(g)
	require.True(t, p.Equal(expected))

	encoded := p.Bytes()
	var decoded G1
	require.NoError(t, decoded.SetBytes(encoded))
	require.True(t, p.Equal(decoded))
}

func TestG1Identity(t *testing.T) {
	g, _ := Generators()
	zero := g.ScalarMul(NewScalar())
	require.True(t, zero.IsIdentity())
}

func TestPairingBilinearity(t *testing.T) {
	g1, g2 := Generators()
	a := ScalarFromUint64(4)
	b := ScalarFromUint64(7)

	lhs, err := Pair([]G1{g1.ScalarMul(a)}, []G2{g2.ScalarMul(b)})
	require.NoError(t, err)

	rhs, err := Pair([]G1{g1.ScalarMul(a.Mul(b))}, []G2{g2})
	require.NoError(t, err)

	require.True(t, lhs.Equal(&rhs))
}
