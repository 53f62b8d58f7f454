package vss

import (
	"github.com/poupas/hybridvss/curve/bls"
	"github.com/poupas/hybridvss/poly"
)

// ReconstructContext drives the optional reconstruction sub-protocol
// (spec 4.D): once a threshold of participants have reached Shared, any
// collector gathering t+1 of their final shares can recover the original
// secret without further interaction with the dealer.
type ReconstructContext struct {
	params    *Params
	c         poly.Commitment
	domain    poly.Domain
	g         bls.G1
	collected map[int]bls.Scalar
	secret    *bls.Scalar
}

// NewReconstructContext starts a reconstruction round against the given
// commitment matrix. g must be the same G1 generator used to build C.
func NewReconstructContext(params *Params, c poly.Commitment, domain poly.Domain, g bls.G1) *ReconstructContext {
	return &ReconstructContext{
		params:    params,
		c:         c,
		domain:    domain,
		g:         g,
		collected: make(map[int]bls.Scalar),
	}
}

// ReconstructShare feeds in participant from's final share. It verifies
// the share against column 0 of the commitment matrix (row `from`
// evaluated at beta=0 collapses to the constant-term commitment, so
// VerifyPoint with beta=0 checks exactly phi(alpha_from, 0) == share*g)
// before accepting it. Once t+1 distinct, verified shares have been
// collected, it interpolates them at x=0 to recover the secret; ok
// reports whether a value is available (either newly recovered on this
// call, or already recovered on an earlier one).
func (r *ReconstructContext) ReconstructShare(from int, share bls.Scalar) (secret bls.Scalar, ok bool) {
	if !poly.VerifyPoint(r.c.Row(from), bls.ScalarFromUint64(0), share, r.g) {
		if r.secret != nil {
			return *r.secret, true
		}
		return bls.Scalar{}, false
	}
	if _, dup := r.collected[from]; !dup {
		r.collected[from] = share
	}
	if r.secret != nil {
		return *r.secret, true
	}
	if len(r.collected) < r.params.T+1 {
		return bls.Scalar{}, false
	}
	z := poly.InterpolateAt(r.domain, r.collected, bls.ScalarFromUint64(0))
	r.secret = &z
	return z, true
}
