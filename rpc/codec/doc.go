// Package codec implements the line codec of the JSON-RPC over UDP system.
// A line codec converts a single JSON-RPC message to and from its one-line
// serialized form, the unit the framing layer packs into datagrams.
//
// The package guarantees two invariants:
//   - An encoded line never contains a raw line delimiter byte. Well-formed
//     JSON serialization never emits raw newlines, so a violation is treated
//     as a logic error upstream rather than a recoverable condition.
//   - Decode failures are isolated per line. A malformed candidate from a
//     datagram yields a *common.MalformedLineError and never prevents sibling
//     lines of the same datagram from being decoded.
//
// Key Components:
//
//   - ILineCodec: Interface for line codecs, allowing the rest of the system
//     to stay agnostic of the concrete encoding.
//
//   - NewJSONLineCodec: The JSON implementation. Decoding validates the
//     JSON-RPC object shape via Message.Validate, so downstream code only ever
//     sees classified messages.
package codec
