// Package server implements the serving side of the JSON-RPC over UDP
// system: an echo server that answers every request with a response embedding
// the submitted request object as its result.
//
// Each received datagram is handled as one atomic batch: its lines are split
// and decoded independently, every well-formed request produces a response
// with the same id, notifications are suppressed, and the responses are
// packed into reply datagrams under the server's own send buffer size.
// Malformed lines, invalid request shapes and responses too large for a
// single datagram are answered with the standard JSON-RPC error codes
// (-32700, -32600, -32603), each as its own unbatched datagram.
//
// The server keeps no state between datagrams. Operational counters are
// published via the VictoriaMetrics metrics package and can be exposed over
// an optional HTTP metrics endpoint.
package server
