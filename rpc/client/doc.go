// Package client implements the calling side of the JSON-RPC over UDP
// system: sending a batch of requests and correlating the responses that
// arrive, in whatever datagrams the server chose to batch them into.
//
// The Caller moves through four states per invocation:
//
//	Idle -> Sending -> AwaitingResponses -> Complete
//
// During Sending every request with an id is recorded in the pending call
// set; notifications are sent but never awaited. During AwaitingResponses
// each received datagram is split and decoded line by line, matched responses
// are removed from the set and emitted in arrival order, and unmatched or
// malformed lines are discarded without affecting their siblings. The
// invocation completes when the set is empty or fails with a TimeoutError
// naming the ids that never arrived.
//
// There is no delivery guarantee beyond this; a lost datagram leaves its
// entries pending until the read timeout abandons them.
package client
