package common

import (
	"fmt"
	"strings"
)

// --------------------------------------------------------------------------
// Framing / Decoding Errors
// --------------------------------------------------------------------------

// MalformedLineError reports a candidate line that is not valid JSON or not a
// valid JSON-RPC object shape. It is local to the one line it names; sibling
// lines of the same datagram are still processed.
type MalformedLineError struct {
	Line []byte
	// Shape is true when the bytes were valid JSON but not a valid JSON-RPC
	// object shape (invalid request rather than parse error)
	Shape bool
	Cause error
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %q: %v", e.Line, e.Cause)
}

func (e *MalformedLineError) Unwrap() error {
	return e.Cause
}

// OversizedMessageError reports an encoded line that alone exceeds the
// configured maximum datagram size. Such a line can never be packed and the
// error is surfaced immediately instead of silently truncating.
type OversizedMessageError struct {
	Size  int
	Limit int
}

func (e *OversizedMessageError) Error() string {
	return fmt.Sprintf("encoded message size %d exceeds send buffer size %d", e.Size, e.Limit)
}

// --------------------------------------------------------------------------
// Correlation Errors
// --------------------------------------------------------------------------

// TimeoutError reports that the read timeout expired while responses were
// still pending. It names the ids that never arrived.
type TimeoutError struct {
	Received   int
	Expected   int
	PendingIDs []string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out waiting for responses (received %d of %d, pending ids: %s)",
		e.Received, e.Expected, strings.Join(e.PendingIDs, ", "))
}
