// Package transport defines the interfaces and abstractions for datagram
// communication in the JSON-RPC over UDP system. It provides a common
// contract that transport implementations must fulfill, keeping the framing
// and correlation layers agnostic of the concrete socket primitives.
//
// The package focuses on:
//   - Defining clear interfaces for the calling and serving side
//   - Treating whole datagrams as the atomic unit of exchange
//   - Enabling in-memory implementations for testing
//
// Key Components:
//
//   - IClientTransport: Interface for calling side transports that handles
//     connecting, sending datagrams and receiving responses with a timeout.
//
//   - IServerTransport: Interface for serving side transports that receive
//     datagrams and route them to a registered handler.
//
//   - ServerHandleFunc: Function type for datagram handling callbacks.
package transport
