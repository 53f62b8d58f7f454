package wire

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poupas/hybridvss/curve/bls"
	"github.com/poupas/hybridvss/poly"
	"github.com/poupas/hybridvss/vss"
)

func buildCommitment(t *testing.T) poly.Commitment {
	t.Helper()
	g, _ := bls.Generators()
	domain, err := poly.NewDomain(4)
	require.NoError(t, err)
	b, err := poly.Sample(rand.Reader, 2, bls.ScalarFromUint64(9))
	require.NoError(t, err)
	return poly.Commit(b, domain, g)
}

func TestSendRoundTrip(t *testing.T) {
	c := buildCommitment(t)
	a := poly.NewUnivariate([]bls.Scalar{bls.ScalarFromUint64(1), bls.ScalarFromUint64(2), bls.ScalarFromUint64(3)})
	send := vss.Send{C: c, A: a}

	encoded := EncodeSend(send)
	decoded, err := DecodeSend(encoded)
	require.NoError(t, err)
	require.True(t, decoded.C.Equal(send.C))
	require.Equal(t, send.A.Coeffs(), decoded.A.Coeffs())
}

func TestEchoRoundTrip(t *testing.T) {
	c := buildCommitment(t)
	echo := vss.Echo{C: c, Alpha: bls.ScalarFromUint64(77)}

	encoded := EncodeEcho(echo)
	decoded, err := DecodeEcho(encoded)
	require.NoError(t, err)
	require.True(t, decoded.C.Equal(echo.C))
	require.True(t, decoded.Alpha.Equal(echo.Alpha))
}

func TestReadyRoundTrip(t *testing.T) {
	c := buildCommitment(t)
	ready := vss.Ready{C: c, Alpha: bls.ScalarFromUint64(55)}

	encoded := EncodeReady(ready)
	decoded, err := DecodeReady(encoded)
	require.NoError(t, err)
	require.True(t, decoded.C.Equal(ready.C))
	require.True(t, decoded.Alpha.Equal(ready.Alpha))
}

func TestSharedRoundTrip(t *testing.T) {
	c := buildCommitment(t)
	shared := vss.Shared{C: c, S: bls.ScalarFromUint64(33)}

	encoded := EncodeShared(shared)
	decoded, err := DecodeShared(encoded)
	require.NoError(t, err)
	require.True(t, decoded.C.Equal(shared.C))
	require.True(t, decoded.S.Equal(shared.S))
}

func TestDecodeRejectsWrongTag(t *testing.T) {
	c := buildCommitment(t)
	encoded := EncodeSend(vss.Send{C: c, A: poly.NewUnivariate([]bls.Scalar{bls.ScalarFromUint64(1)})})
	_, err := DecodeEcho(encoded)
	require.Error(t, err)
}

func TestDecodeRejectsTruncatedInput(t *testing.T) {
	c := buildCommitment(t)
	encoded := EncodeShared(vss.Shared{C: c, S: bls.ScalarFromUint64(1)})
	_, err := DecodeShared(encoded[:len(encoded)-5])
	require.Error(t, err)
}
