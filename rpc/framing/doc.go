// Package framing implements datagram framing for newline-delimited JSON-RPC
// messages. UDP provides no framing of its own, so this package is the single
// place that decides how encoded lines map onto datagrams.
//
// The package focuses on:
//   - Greedy first-fit packing of lines into size-bounded datagram buffers,
//     minimizing datagram count while preserving message order and never
//     splitting a message across two datagrams
//   - Splitting a received datagram back into candidate lines
//
// Key Components:
//
//   - Packer: Accumulates encoded lines into a buffer and emits it as one
//     datagram whenever the next line would exceed the configured limit. Every
//     emitted buffer is at most the limit; a single line larger than the limit
//     yields an OversizedMessageError instead of a truncated datagram.
//
//   - Split: Splits a datagram's bytes on the delimiter, discarding trailing
//     empty candidates. Each candidate is decoded independently by the caller,
//     so one corrupted line never aborts the rest of the batch.
package framing
