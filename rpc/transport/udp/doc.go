// Package udp implements the UDP socket transport for the JSON-RPC line
// protocol. It provides concrete implementations of the transport package's
// client and server interfaces on top of connected and unconnected UDP
// sockets.
//
// Datagrams are the atomic unit of delivery: a datagram arrives whole or not
// at all, unordered relative to other datagrams. The transport adds no
// reliability layer of its own; a dropped datagram is a terminal failure for
// the messages it carried.
//
// Key Components:
//
//   - clientTransport: Connected UDP socket with a configurable read timeout.
//     Receive reports an expired timeout as transport.ErrTimeout so the
//     correlation layer can abandon pending calls.
//
//   - serverTransport: Bound UDP socket processing one received datagram
//     fully (handler call plus response sends) before receiving the next.
//
// Receive buffers are sized to the maximum possible UDP payload (65507
// bytes), so no valid datagram is ever truncated.
package udp
