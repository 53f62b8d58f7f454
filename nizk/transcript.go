package nizk

import (
	"golang.org/x/crypto/blake2b"

	"github.com/poupas/hybridvss/curve/bls"
)

// hashToScalar implements the Fiat-Shamir challenge reduction of spec 4.B
// for the prime-order-affine DLEQ and the Schnorr PoK: BLAKE2b-256 over the
// concatenated transcript parts, reinterpreted as an element of Fr.
//
// The digest may land at or above the field modulus, in which case it does
// not decode to a canonical scalar. spec 9 flags the original
// implementation's retry loop as buggy because it re-hashes without
// changing the input, which never terminates on a pathological digest.
// This implementation resolves that open question by appending a one-byte
// counter to the transcript on every attempt (0 on the first, incremented
// on each retry), so successive attempts hash distinct inputs. A 32-byte
// digest lies below the Fr modulus with probability about 0.45, so about
// 2.2 attempts are needed on average; the counter wraps after 256
// attempts, all of which fail with probability below 2^-220.
func hashToScalar(parts ...[]byte) bls.Scalar {
	for counter := byte(0); ; counter++ {
		h, _ := blake2b.New256(nil)
		for _, p := range parts {
			h.Write(p)
		}
		h.Write([]byte{counter})
		digest := h.Sum(nil)
		if s, ok := bls.ScalarFromCanonicalBytes(digest); ok {
			return s
		}
	}
}

// hash32 is the fixed 32-byte BLAKE2b-256 digest used verbatim (no
// rejection sampling) by the Montgomery-point DLEQ variant, whose
// challenge is consumed as raw bytes reduced mod the curve25519 group
// order rather than decoded as a field element.
func hash32(parts ...[]byte) [32]byte {
	h, _ := blake2b.New256(nil)
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
