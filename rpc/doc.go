// Package rpc provides the transport core for carrying JSON-RPC 2.0
// messages, encoded one per line, over UDP datagrams. It acts as the
// communication layer between the command line surface and the operating
// system socket primitives.
//
// The package is organized into several subpackages:
//
//   - common: Core data structures and utilities used across the system,
//     including the JSON-RPC message model, configuration structures, typed
//     errors and logging.
//
//   - codec: The line codec converting a single message to and from its
//     one-line serialized form.
//
//   - framing: Datagram packing and unpacking, batching encoded lines into
//     size-bounded datagrams and splitting received datagrams back into
//     candidate lines.
//
//   - transport: Socket abstractions with the UDP implementation, treating
//     whole datagrams as the atomic unit of exchange.
//
//   - client: The calling side, correlating requests and responses over the
//     pending call set, with timeout handling.
//
//   - server: The serving side, an echo responder that answers every
//     request with a response embedding the original request object.
package rpc
