package vss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewParamsRejectsInsufficientWeight(t *testing.T) {
	_, err := NewParams(1, 2, []uint32{1, 1, 1, 1, 1, 1}, 0)
	require.Error(t, err)
}

func TestNewParamsAcceptsSufficientWeight(t *testing.T) {
	// 3t+2f+1 = 3*1+2*1+1 = 6, W=6.
	p, err := NewParams(1, 1, []uint32{1, 1, 1, 1, 1, 1}, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(6), p.TotalWeight())
}

func TestNewParamsRejectsBadDealerIndex(t *testing.T) {
	_, err := NewParams(0, 0, []uint32{1, 1, 1}, 5)
	require.Error(t, err)
}

func TestThresholdFormulas(t *testing.T) {
	p, err := NewParams(1, 1, []uint32{1, 1, 1, 1, 1, 1}, 0)
	require.NoError(t, err)

	require.Equal(t, uint32(4), p.EchoThreshold())    // ceil((6+1+1)/2) = 4
	require.Equal(t, uint32(2), p.AmplifyThreshold()) // f+1 = 2
	require.Equal(t, uint32(4), p.OutputThreshold())  // W-t-f = 6-1-1 = 4
}
