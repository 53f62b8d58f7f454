package vss

import "github.com/poupas/hybridvss/poly"

// Status is the externally observable state of a Context, mirroring the
// VSSState enum the original implementation exposes to its test harness
// (a supplemented feature: the distilled specification only names
// Init/Shared/Failed, but a caller driving the state machine needs to
// distinguish "still sharing, here's how much Ready weight has arrived" from a
// definitive outcome).
type Status interface {
	isStatus()
}

// StatusSharing reports that this node has not yet reached the output
// threshold; WeightReady is the largest running weight of distinct-sender
// valid Readys collected so far for any one commitment.
type StatusSharing struct {
	WeightReady uint32
}

// StatusSuccess reports that this node has reconstructed its final share
// and reached the Shared state, against commitment C.
type StatusSuccess struct {
	C poly.Commitment
}

// StatusFailure reports that this node detected a protocol violation
// (spec 7's Contradiction error kind) and will no longer act on messages
// for this instance.
type StatusFailure struct {
	Reason error
}

func (StatusSharing) isStatus() {}
func (StatusSuccess) isStatus() {}
func (StatusFailure) isStatus() {}
