package vss

import (
	"github.com/poupas/hybridvss/curve/bls"
	"github.com/poupas/hybridvss/poly"
)

// Share is the dealer's private input: the secret to be shared (spec 3).
type Share struct {
	S bls.Scalar
}

// Send is the dealer-to-node message carrying the full commitment matrix
// and the recipient's own row of the dealer's bivariate polynomial
// (spec 3). A node verifies it with poly.Commitment.MatchesRow before
// acting on it.
type Send struct {
	C poly.Commitment
	A poly.Univariate
}

// Echo is exchanged between every pair of nodes once a node has accepted
// a Send: C identifies the instance, Alpha is the sender's row evaluated
// at the recipient's own domain point (spec 3).
type Echo struct {
	C     poly.Commitment
	Alpha bls.Scalar
}

// Ready carries the same shape as Echo but is emitted either once the
// Echo threshold fires or during Ready amplification (spec 3, spec 4.D).
type Ready struct {
	C     poly.Commitment
	Alpha bls.Scalar
}

// Shared is emitted locally once a node crosses the output threshold: C
// identifies the completed instance and S is that node's final secret
// share, a_i(0) recovered by interpolation (spec 3).
type Shared struct {
	C poly.Commitment
	S bls.Scalar
}
