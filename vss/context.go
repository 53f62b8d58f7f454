package vss

import (
	"errors"
	"fmt"
	"io"

	"github.com/poupas/hybridvss/curve/bls"
	"github.com/poupas/hybridvss/poly"
)

// ErrNotDealer is returned by Share when called on a node other than the
// instance's designated dealer.
var ErrNotDealer = errors.New("vss: only the dealer may call Share")

// ErrContradiction is the error, wrapped, that StatusFailure.Reason carries
// once a node has observed the dealer asserting two different commitment
// matrices (spec 7). No handler returns it directly.
var ErrContradiction = errors.New("vss: dealer equivocated")

type internalState int

const (
	stateInit internalState = iota
	stateShared
	stateFailed
)

// tally accumulates distinct-sender valid Echo or Ready values for one
// commitment digest, following DeDiS-crypto/share/vss's aggregator shape:
// dedup by sender, sum weight, and let the caller check thresholds on
// every update.
type tally struct {
	c      poly.Commitment
	from   map[int]bls.Scalar
	weight uint32
}

// Context drives the HybridVSS state machine for a single participant in
// a single instance: it holds no network transport of its own, just pure
// handlers from incoming message to outgoing messages, following the
// teacher's style of keeping protocol logic free of I/O.
type Context struct {
	params  *Params
	domain  poly.Domain
	myIndex int
	g       bls.G1

	state internalState
	err   error

	sendDigest   *[32]byte
	sendSeen     bool
	echoes       map[[32]byte]*tally
	readies      map[[32]byte]*tally
	readyEmitted map[[32]byte]bool
	finalShare   *bls.Scalar
	finalCommit  poly.Commitment
}

// NewContext builds a fresh per-participant state machine for myIndex
// within the instance described by params.
func NewContext(params *Params, myIndex int) (*Context, error) {
	if myIndex < 0 || myIndex >= params.N() {
		return nil, fmt.Errorf("vss: participant index %d out of range [0,%d)", myIndex, params.N())
	}
	domain, err := poly.NewDomain(params.N())
	if err != nil {
		return nil, err
	}
	g, _ := bls.Generators()
	return &Context{
		params:       params,
		domain:       domain,
		myIndex:      myIndex,
		g:            g,
		state:        stateInit,
		echoes:       make(map[[32]byte]*tally),
		readies:      make(map[[32]byte]*tally),
		readyEmitted: make(map[[32]byte]bool),
	}, nil
}

// Status reports the current externally observable state (spec 6's
// supplemented VSSState).
func (c *Context) Status() Status {
	switch c.state {
	case stateShared:
		return StatusSuccess{C: c.finalCommit}
	case stateFailed:
		return StatusFailure{Reason: c.err}
	default:
		var best uint32
		for _, t := range c.readies {
			if t.weight > best {
				best = t.weight
			}
		}
		return StatusSharing{WeightReady: best}
	}
}

func (c *Context) fail(err error) {
	c.state = stateFailed
	c.err = err
}

// Share is the dealer-only entry point (spec 4.D): it samples a fresh
// bivariate polynomial with the given secret, commits to it, and returns
// the per-node Send messages. The caller is responsible for routing
// sends[j] to node j.
func (c *Context) Share(rng io.Reader, share Share) ([]Send, error) {
	if c.myIndex != c.params.D {
		return nil, ErrNotDealer
	}
	bivar, err := poly.Sample(rng, c.params.T, share.S)
	if err != nil {
		return nil, err
	}
	defer bivar.Zeroize()

	commitment := poly.Commit(bivar, c.domain, c.g)
	sends := make([]Send, c.params.N())
	for j := 0; j < c.params.N(); j++ {
		sends[j] = Send{C: commitment, A: bivar.Row(c.domain.At(j))}
	}
	return sends, nil
}

// HandleSend processes the dealer's Send to this node. On success it
// returns the Echo this node must send to every other participant. ok is
// false if the message failed verification and must be discarded (spec
// 7's Commitment mismatch error kind).
func (c *Context) HandleSend(send Send) (echoesOut []Echo, ok bool) {
	if c.state == stateFailed {
		return nil, false
	}
	if !send.C.MatchesRow(c.myIndex, send.A, c.g) {
		return nil, false
	}
	digest := send.C.Digest()
	if c.sendSeen {
		if *c.sendDigest != digest {
			c.fail(fmt.Errorf("%w: dealer sent inconsistent commitments", ErrContradiction))
		}
		return nil, false
	}
	c.sendSeen = true
	c.sendDigest = &digest

	echoes := make([]Echo, c.params.N())
	for j := 0; j < c.params.N(); j++ {
		echoes[j] = Echo{C: send.C, Alpha: send.A.Evaluate(c.domain.At(j))}
	}
	return echoes, true
}

func (c *Context) tallyFor(m map[[32]byte]*tally, digest [32]byte, C poly.Commitment) *tally {
	t, found := m[digest]
	if !found {
		t = &tally{c: C, from: make(map[int]bls.Scalar)}
		m[digest] = t
	}
	return t
}

// HandleEcho processes an Echo received from participant from. On
// crossing the echo threshold it returns the Readys this node must send
// to every participant. ok is false if nothing new happened (invalid
// message, duplicate sender, or threshold not yet reached).
func (c *Context) HandleEcho(from int, echo Echo) (readiesOut []Ready, ok bool) {
	if c.state == stateFailed {
		return nil, false
	}
	if !poly.VerifyPoint(echo.C.Row(from), c.domain.At(c.myIndex), echo.Alpha, c.g) {
		return nil, false
	}
	digest := echo.C.Digest()
	t := c.tallyFor(c.echoes, digest, echo.C)
	if _, dup := t.from[from]; dup {
		return nil, false
	}
	t.from[from] = echo.Alpha
	t.weight += c.params.Weight(from)

	if c.readyEmitted[digest] || t.weight < c.params.EchoThreshold() {
		return nil, false
	}
	readies := make([]Ready, c.params.N())
	for j := 0; j < c.params.N(); j++ {
		readies[j] = Ready{C: echo.C, Alpha: poly.InterpolateAt(c.domain, t.from, c.domain.At(j))}
	}
	c.readyEmitted[digest] = true
	return readies, true
}

// HandleReady processes a Ready received from participant from. It may
// return further Readys to relay (on crossing the amplification
// threshold) or a Shared message once this node has reconstructed its
// final share (on crossing the output threshold); at most one of the two
// is non-nil on any call, and once Shared has fired once, later Readys
// are still tallied but no longer drive a transition (spec 4.D, spec 7's
// idempotence requirement).
func (c *Context) HandleReady(from int, ready Ready) (readiesOut []Ready, shared *Shared) {
	if c.state == stateFailed {
		return nil, nil
	}
	if !poly.VerifyPoint(ready.C.Row(from), c.domain.At(c.myIndex), ready.Alpha, c.g) {
		return nil, nil
	}
	digest := ready.C.Digest()
	t := c.tallyFor(c.readies, digest, ready.C)
	if _, dup := t.from[from]; dup {
		return nil, nil
	}
	t.from[from] = ready.Alpha
	t.weight += c.params.Weight(from)

	if c.state == stateInit && t.weight >= c.params.OutputThreshold() {
		finalShare := poly.InterpolateAt(c.domain, t.from, bls.ScalarFromUint64(0))
		c.state = stateShared
		c.finalShare = &finalShare
		c.finalCommit = ready.C
		return nil, &Shared{C: ready.C, S: finalShare}
	}

	if c.state == stateInit && !c.readyEmitted[digest] && t.weight >= c.params.AmplifyThreshold() {
		readies := make([]Ready, c.params.N())
		for j := 0; j < c.params.N(); j++ {
			readies[j] = Ready{C: ready.C, Alpha: poly.InterpolateAt(c.domain, t.from, c.domain.At(j))}
		}
		c.readyEmitted[digest] = true
		return readies, nil
	}
	return nil, nil
}

// FinalShare returns this node's reconstructed share once Shared, or
// false before then.
func (c *Context) FinalShare() (bls.Scalar, bool) {
	if c.finalShare == nil {
		return bls.Scalar{}, false
	}
	return *c.finalShare, true
}
