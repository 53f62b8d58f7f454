package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomainPointsAreDistinctAndNonZero(t *testing.T) {
	d, err := NewDomain(7)
	require.NoError(t, err)
	require.Equal(t, 7, d.Len())

	seen := make(map[string]bool)
	for i := 0; i < d.Len(); i++ {
		p := d.At(i)
		require.False(t, p.IsZero())
		raw := p.Bytes()
		key := string(raw[:])
		require.False(t, seen[key], "domain point %d collided with an earlier one", i)
		seen[key] = true
	}
}

func TestNewDomainRejectsNonPositiveSize(t *testing.T) {
	_, err := NewDomain(0)
	require.Error(t, err)
}
