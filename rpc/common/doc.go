// Package common provides core data structures and utilities shared across
// the JSON-RPC over UDP system. It defines fundamental types, configuration
// structures, and protocol elements used by other packages.
//
// The package focuses on:
//   - The JSON-RPC 2.0 message model shared by client and server
//   - Configuration structures for the calling and serving side
//   - Typed errors for framing, decoding and correlation failures
//   - Custom logging built on the dragonboat logger interface
//
// Key Components:
//
//   - Message: Core data structure for all JSON-RPC communication. One struct
//     covers requests, notifications and responses; Kind() classifies a decoded
//     message once so downstream code never probes individual fields. Includes
//     factory methods for creating the message variants.
//
//   - MessageKind: Enumeration of the message variants (request, notification,
//     response, invalid).
//
//   - ClientConfig / ServerConfig: Configuration for the calling and serving
//     side, including the per-side send buffer size, endpoint addresses and
//     timeouts. ResolveEndpoint expands the ":port" shorthand once at
//     configuration time.
//
//   - MalformedLineError / OversizedMessageError / TimeoutError: Typed errors
//     with per-line, per-message and per-invocation granularity.
//
//   - Logger: Custom logging implementation that provides consistent
//     formatting across the application.
package common
