// Package vss implements the per-participant HybridVSS state machine
// (spec 4.D): the dealer's Share handler and every node's Send/Echo/Ready
// handlers, threshold counting, and the reconstruction sub-protocol.
//
// Grounded on original_source/tests/hybridvss.rs's Scheme harness for the
// exact threshold arithmetic, and on DeDiS-crypto/share/vss's aggregator
// (per-sender dedup, EnoughApprovals/DealCertified threshold-checking
// shape) for the Go idiom of tallying distinct-sender valid messages.
package vss

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned by NewParams when the weight invariant
// W >= 3t + 2f + 1 does not hold, or the dealer index is out of range
// (spec 3, spec 6).
var ErrInvalidParams = errors.New("vss: invalid parameters")

// Params is the public configuration of a single VSS instance: the
// failure threshold f, the reconstruction threshold t, the per-node
// weights, and the dealer's index (spec 3).
//
// This implementation places one domain point per node (not one per unit
// of weight): weight only scales the threshold arithmetic (the W in
// ceil((W+t+1)/2) and W-t-f), and a valid message from sender m
// contributes Weight(m) to a running tally rather than requiring m to
// hold Weight(m) distinct domain slots. Every concrete scenario in the
// specification's test vectors uses uniform weight-1 nodes, so both
// readings agree there; this is the simpler of the two and is the one
// actually exercised end-to-end, so it is the one this repo implements
// (see DESIGN.md for the full resolution).
type Params struct {
	F       int
	T       int
	Weights []uint32
	D       int
}

// NewParams validates and constructs a Params. W is the sum of Weights;
// the constructor enforces W >= 3T + 2F + 1 and D < len(Weights) (spec 3,
// spec 6, spec 7's "Parameter violation" error kind).
func NewParams(f, t int, weights []uint32, d int) (*Params, error) {
	n := len(weights)
	if n == 0 {
		return nil, fmt.Errorf("%w: no participants", ErrInvalidParams)
	}
	if d < 0 || d >= n {
		return nil, fmt.Errorf("%w: dealer index %d out of range [0,%d)", ErrInvalidParams, d, n)
	}
	if f < 0 || t < 0 {
		return nil, fmt.Errorf("%w: f and t must be non-negative", ErrInvalidParams)
	}
	var w uint64
	for _, wi := range weights {
		if wi == 0 {
			return nil, fmt.Errorf("%w: zero-weight participant", ErrInvalidParams)
		}
		w += uint64(wi)
	}
	need := uint64(3*t + 2*f + 1)
	if w < need {
		return nil, fmt.Errorf("%w: total weight %d below required %d (3t+2f+1)", ErrInvalidParams, w, need)
	}
	cp := make([]uint32, n)
	copy(cp, weights)
	return &Params{F: f, T: t, Weights: cp, D: d}, nil
}

// N returns the number of participants.
func (p *Params) N() int {
	return len(p.Weights)
}

// TotalWeight returns W, the sum of all participant weights.
func (p *Params) TotalWeight() uint32 {
	var w uint32
	for _, wi := range p.Weights {
		w += wi
	}
	return w
}

// Weight returns the weight of participant i.
func (p *Params) Weight(i int) uint32 {
	return p.Weights[i]
}

// EchoThreshold returns ceil((W+T+1)/2), the weight of distinct-sender
// valid Echos required to move from Init to emitting Readys (spec 4.D).
func (p *Params) EchoThreshold() uint32 {
	w := uint64(p.TotalWeight())
	num := w + uint64(p.T) + 1
	return uint32((num + 1) / 2)
}

// AmplifyThreshold returns F+1, the weight of distinct-sender valid
// Readys required to amplify (spec 4.D).
func (p *Params) AmplifyThreshold() uint32 {
	return uint32(p.F + 1)
}

// OutputThreshold returns W-T-F, the weight of distinct-sender valid
// Readys required to transition to Shared (spec 4.D).
func (p *Params) OutputThreshold() uint32 {
	w := int64(p.TotalWeight())
	out := w - int64(p.T) - int64(p.F)
	if out < 0 {
		out = 0
	}
	return uint32(out)
}
