package nizk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashToScalarDeterministic(t *testing.T) {
	a := hashToScalar([]byte("hello"), []byte("world"))
	b := hashToScalar([]byte("hello"), []byte("world"))
	require.True(t, a.Equal(b))
}

func TestHashToScalarSensitiveToEachPart(t *testing.T) {
	a := hashToScalar([]byte("hello"), []byte("world"))
	b := hashToScalar([]byte("hello"), []byte("wurld"))
	require.False(t, a.Equal(b))
}

func TestHash32Deterministic(t *testing.T) {
	a := hash32([]byte("x"), []byte("y"))
	b := hash32([]byte("x"), []byte("y"))
	require.Equal(t, a, b)
}
