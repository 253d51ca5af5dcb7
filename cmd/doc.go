// Package cmd implements the command-line interface for judp, the JSON-RPC
// over UDP tool. It provides a hierarchical command structure covering both
// sides of the protocol.
//
// The package is organized into several subpackages:
//
//   - req: Command for generating JSON-RPC request object JSON
//   - call: Command for sending requests from stdin and printing responses
//   - serve: Command for running the JSON-RPC echo server
//   - bench: Command for benchmarking an echo server
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See judp -help for a list of all commands.
package cmd
