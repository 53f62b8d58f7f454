package bls

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	require.NoError(t, err)

	b := s.Bytes()
	var decoded Scalar
	decoded.SetBytes(b[:])
	require.True(t, s.Equal(decoded))
}

func TestScalarArithmetic(t *testing.T) {
	a := ScalarFromUint64(5)
	b := ScalarFromUint64(3)

	require.True(t, a.Add(b).Equal(ScalarFromUint64(8)))
	require.True(t, a.Sub(b).Equal(ScalarFromUint64(2)))
	require.True(t, a.Mul(b).Equal(ScalarFromUint64(15)))
	require.True(t, a.Mul(a.Inverse()).Equal(ScalarFromUint64(1)))
}

func TestScalarPow(t *testing.T) {
	base := ScalarFromUint64(2)
	require.True(t, base.Pow(10).Equal(ScalarFromUint64(1024)))
	require.True(t, base.Pow(0).Equal(ScalarFromUint64(1)))
}

func TestScalarFromCanonicalBytesRejectsOutOfRange(t *testing.T) {
	modBytes := Modulus().Bytes()
	_, ok := ScalarFromCanonicalBytes(modBytes)
	require.False(t, ok, "the modulus itself is not a canonical residue")

	zero := make([]byte, ScalarSize)
	s, ok := ScalarFromCanonicalBytes(zero)
	require.True(t, ok)
	require.True(t, s.IsZero())
}

func TestScalarZeroize(t *testing.T) {
	s := ScalarFromUint64(42)
	s.Zeroize()
	require.True(t, s.IsZero())
}
