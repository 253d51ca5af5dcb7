package client

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ValentinKolb/judp/rpc/codec"
	"github.com/ValentinKolb/judp/rpc/common"
	"github.com/ValentinKolb/judp/rpc/framing"
	"github.com/ValentinKolb/judp/rpc/transport"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

var Logger = logger.GetLogger("client")

// --------------------------------------------------------------------------
// Call State Definition
// --------------------------------------------------------------------------

// CallState tracks the lifecycle of one batch of calls.
type CallState uint8

const (
	StateIdle CallState = iota
	StateSending
	StateAwaitingResponses
	StateComplete
)

// String returns the string representation of a CallState.
func (s CallState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateAwaitingResponses:
		return "awaiting responses"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// --------------------------------------------------------------------------
// Caller
// --------------------------------------------------------------------------

// ResponseFunc receives each matched response in arrival order.
type ResponseFunc func(resp *common.Message) error

// Caller correlates outbound requests with inbound responses. It tracks every
// sent request with an id in a pending call set keyed by the canonical id,
// removes entries as matching responses arrive, and completes when the set is
// empty. Responses with unmatched or missing ids cannot belong to this
// invocation and are discarded.
type Caller struct {
	config    common.ClientConfig
	transport transport.IClientTransport
	codec     codec.ILineCodec
	pending   *xsync.MapOf[string, *common.Message]
	nextID    uint64
	state     CallState
}

// NewCaller creates a new Caller on top of a connected transport.
func NewCaller(config common.ClientConfig, t transport.IClientTransport, c codec.ILineCodec) *Caller {
	return &Caller{
		config:    config,
		transport: t,
		codec:     c,
		pending:   xsync.NewMapOf[string, *common.Message](),
		state:     StateIdle,
	}
}

// State returns the current call state.
func (c *Caller) State() CallState {
	return c.state
}

// NewRequest builds a request for the given method, assigning the next id.
// Ids are monotonically increasing integers starting at 0, unique within this
// Caller's lifetime.
func (c *Caller) NewRequest(method string, params []byte) *common.Message {
	id := c.nextID
	c.nextID++
	return common.NewRequest(method, params, id)
}

// Call sends the given requests in input order, batched into datagrams by the
// framing layer, then blocks receiving datagrams until every request with an
// id has been answered. Matched responses are handed to out in arrival order,
// which may differ from input order. Notifications are sent but never awaited.
//
// When the read timeout expires with entries still pending, Call returns a
// *common.TimeoutError naming the missing ids; responses matched before the
// timeout have already been emitted.
func (c *Caller) Call(requests []*common.Message, out ResponseFunc) error {
	c.state = StateSending

	packer := framing.NewPacker(c.config.SendBufSize, c.transport.Send)

	for _, msg := range requests {
		kind := msg.Kind()
		if kind != common.KindRequest && kind != common.KindNotification {
			if err := msg.Validate(); err != nil {
				return fmt.Errorf("message is not a valid JSON-RPC request: %v", err)
			}
			return fmt.Errorf("cannot send a %s as a request", kind)
		}

		line, err := c.codec.EncodeLine(msg)
		if err != nil {
			return err
		}
		if err := packer.Append(line); err != nil {
			return err
		}

		if kind == common.KindRequest {
			c.pending.Store(common.IDKey(msg.ID), msg)
		}
	}

	if err := packer.Flush(); err != nil {
		return err
	}

	expected := c.pending.Size()
	if expected == 0 {
		c.state = StateComplete
		return nil
	}

	c.state = StateAwaitingResponses
	Logger.Debugf("Sent %d messages, awaiting %d responses", len(requests), expected)

	received := 0
	for c.pending.Size() > 0 {
		datagram, err := c.transport.Receive()
		if errors.Is(err, transport.ErrTimeout) {
			return &common.TimeoutError{
				Received:   received,
				Expected:   expected,
				PendingIDs: c.pendingIDs(),
			}
		}
		if err != nil {
			return err
		}

		for _, line := range framing.Split(datagram) {
			resp, err := c.codec.DecodeLine(line)
			if err != nil {
				// isolated to this line, siblings are still processed
				Logger.Warningf("Skipping malformed line: %v", err)
				continue
			}
			if resp.Kind() != common.KindResponse {
				Logger.Debugf("Discarding non-response message (%s)", resp.Kind())
				continue
			}

			key := common.IDKey(resp.ID)
			if _, ok := c.pending.LoadAndDelete(key); !ok {
				// duplicates and stray packets are a normal consequence of UDP
				Logger.Debugf("Discarding response with unmatched id %s", key)
				continue
			}

			received++
			if err := out(resp); err != nil {
				return err
			}
		}
	}

	c.state = StateComplete
	return nil
}

// pendingIDs returns the ids still awaiting a response, sorted for stable
// error messages.
func (c *Caller) pendingIDs() []string {
	ids := make([]string, 0, c.pending.Size())
	c.pending.Range(func(key string, _ *common.Message) bool {
		ids = append(ids, key)
		return true
	})
	sort.Strings(ids)
	return ids
}
