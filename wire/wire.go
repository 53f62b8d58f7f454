// Package wire implements the canonical, bit-exact encoding for every
// HybridVSS protocol message (spec 6): a one-byte kind tag followed by
// fixed-width and u32-big-endian-length-prefixed fields. Canonical
// encoding matters here for the same reason it matters to the NIZK
// transcripts in package nizk: any two honest implementations must
// produce byte-identical wire output for the same logical message, or
// the Digest-based commitment dedup in package vss silently diverges
// across nodes.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/poupas/hybridvss/curve/bls"
	"github.com/poupas/hybridvss/poly"
	"github.com/poupas/hybridvss/vss"
)

// ErrTruncated is returned by any Decode function when the input ends
// before a length-prefixed field is fully present.
var ErrTruncated = errors.New("wire: truncated input")

// Message kind tags, the first byte of every encoded message.
const (
	KindSend   byte = 1
	KindEcho   byte = 2
	KindReady  byte = 3
	KindShared byte = 4
)

func putU32(buf []byte, v int) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return append(buf, b[:]...)
}

func takeU32(b []byte) (int, []byte, error) {
	if len(b) < 4 {
		return 0, nil, ErrTruncated
	}
	return int(binary.BigEndian.Uint32(b[:4])), b[4:], nil
}

func takeN(b []byte, n int) ([]byte, []byte, error) {
	if len(b) < n {
		return nil, nil, ErrTruncated
	}
	return b[:n], b[n:], nil
}

// EncodeScalar appends the canonical fixed-width encoding of s.
func EncodeScalar(buf []byte, s bls.Scalar) []byte {
	b := s.Bytes()
	return append(buf, b[:]...)
}

// DecodeScalar reads a fixed-width scalar off the front of b.
func DecodeScalar(b []byte) (bls.Scalar, []byte, error) {
	raw, rest, err := takeN(b, bls.ScalarSize)
	if err != nil {
		return bls.Scalar{}, nil, err
	}
	var s bls.Scalar
	s.SetBytes(raw)
	return s, rest, nil
}

// EncodeG1 appends the canonical uncompressed encoding of p.
func EncodeG1(buf []byte, p bls.G1) []byte {
	return append(buf, p.Bytes()...)
}

// DecodeG1 reads a fixed-width G1 point off the front of b.
func DecodeG1(b []byte) (bls.G1, []byte, error) {
	raw, rest, err := takeN(b, bls.G1Size)
	if err != nil {
		return bls.G1{}, nil, err
	}
	var p bls.G1
	if err := p.SetBytes(raw); err != nil {
		return bls.G1{}, nil, fmt.Errorf("wire: decode G1: %w", err)
	}
	return p, rest, nil
}

// EncodeUnivariate appends a u32 coefficient count followed by each
// coefficient in ascending-degree order.
func EncodeUnivariate(buf []byte, u poly.Univariate) []byte {
	coeffs := u.Coeffs()
	buf = putU32(buf, len(coeffs))
	for _, c := range coeffs {
		buf = EncodeScalar(buf, c)
	}
	return buf
}

// DecodeUnivariate reads a length-prefixed coefficient vector.
func DecodeUnivariate(b []byte) (poly.Univariate, []byte, error) {
	n, rest, err := takeU32(b)
	if err != nil {
		return poly.Univariate{}, nil, err
	}
	coeffs := make([]bls.Scalar, n)
	for i := 0; i < n; i++ {
		var c bls.Scalar
		c, rest, err = DecodeScalar(rest)
		if err != nil {
			return poly.Univariate{}, nil, err
		}
		coeffs[i] = c
	}
	return poly.NewUnivariate(coeffs), rest, nil
}

// EncodeCommitment appends a u32 row count, u32 column count, and every
// G1 element of the matrix in row-major order.
func EncodeCommitment(buf []byte, c poly.Commitment) []byte {
	n, t := c.N(), c.Degree()+1
	buf = putU32(buf, n)
	buf = putU32(buf, t)
	for m := 0; m < n; m++ {
		row := c.Row(m)
		for k := 0; k < t; k++ {
			buf = EncodeG1(buf, row[k])
		}
	}
	return buf
}

// DecodeCommitment reads a length-prefixed commitment matrix.
func DecodeCommitment(b []byte) (poly.Commitment, []byte, error) {
	n, rest, err := takeU32(b)
	if err != nil {
		return poly.Commitment{}, nil, err
	}
	t, rest, err := takeU32(rest)
	if err != nil {
		return poly.Commitment{}, nil, err
	}
	rows := make([][]bls.G1, n)
	for m := 0; m < n; m++ {
		row := make([]bls.G1, t)
		for k := 0; k < t; k++ {
			var p bls.G1
			p, rest, err = DecodeG1(rest)
			if err != nil {
				return poly.Commitment{}, nil, err
			}
			row[k] = p
		}
		rows[m] = row
	}
	return poly.CommitmentFromRows(rows), rest, nil
}

// EncodeSend serializes a Send message with its kind tag.
func EncodeSend(s vss.Send) []byte {
	buf := []byte{KindSend}
	buf = EncodeCommitment(buf, s.C)
	buf = EncodeUnivariate(buf, s.A)
	return buf
}

// DecodeSend parses a Send message, checking the kind tag.
func DecodeSend(b []byte) (vss.Send, error) {
	if len(b) < 1 || b[0] != KindSend {
		return vss.Send{}, fmt.Errorf("wire: expected Send tag")
	}
	c, rest, err := DecodeCommitment(b[1:])
	if err != nil {
		return vss.Send{}, err
	}
	a, _, err := DecodeUnivariate(rest)
	if err != nil {
		return vss.Send{}, err
	}
	return vss.Send{C: c, A: a}, nil
}

// EncodeEcho serializes an Echo message with its kind tag.
func EncodeEcho(e vss.Echo) []byte {
	buf := []byte{KindEcho}
	buf = EncodeCommitment(buf, e.C)
	buf = EncodeScalar(buf, e.Alpha)
	return buf
}

// DecodeEcho parses an Echo message, checking the kind tag.
func DecodeEcho(b []byte) (vss.Echo, error) {
	if len(b) < 1 || b[0] != KindEcho {
		return vss.Echo{}, fmt.Errorf("wire: expected Echo tag")
	}
	c, rest, err := DecodeCommitment(b[1:])
	if err != nil {
		return vss.Echo{}, err
	}
	alpha, _, err := DecodeScalar(rest)
	if err != nil {
		return vss.Echo{}, err
	}
	return vss.Echo{C: c, Alpha: alpha}, nil
}

// EncodeReady serializes a Ready message with its kind tag.
func EncodeReady(r vss.Ready) []byte {
	buf := []byte{KindReady}
	buf = EncodeCommitment(buf, r.C)
	buf = EncodeScalar(buf, r.Alpha)
	return buf
}

// DecodeReady parses a Ready message, checking the kind tag.
func DecodeReady(b []byte) (vss.Ready, error) {
	if len(b) < 1 || b[0] != KindReady {
		return vss.Ready{}, fmt.Errorf("wire: expected Ready tag")
	}
	c, rest, err := DecodeCommitment(b[1:])
	if err != nil {
		return vss.Ready{}, err
	}
	alpha, _, err := DecodeScalar(rest)
	if err != nil {
		return vss.Ready{}, err
	}
	return vss.Ready{C: c, Alpha: alpha}, nil
}

// EncodeShared serializes a Shared message with its kind tag.
func EncodeShared(s vss.Shared) []byte {
	buf := []byte{KindShared}
	buf = EncodeCommitment(buf, s.C)
	buf = EncodeScalar(buf, s.S)
	return buf
}

// DecodeShared parses a Shared message, checking the kind tag.
func DecodeShared(b []byte) (vss.Shared, error) {
	if len(b) < 1 || b[0] != KindShared {
		return vss.Shared{}, fmt.Errorf("wire: expected Shared tag")
	}
	c, rest, err := DecodeCommitment(b[1:])
	if err != nil {
		return vss.Shared{}, err
	}
	s, _, err := DecodeScalar(rest)
	if err != nil {
		return vss.Shared{}, err
	}
	return vss.Shared{C: c, S: s}, nil
}
