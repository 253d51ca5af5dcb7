package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Version is the protocol version string carried by every message.
const Version = "2.0"

// --------------------------------------------------------------------------
// Message Structure
// --------------------------------------------------------------------------

// Message represents a single JSON-RPC 2.0 object used for requests,
// notifications and responses. Which fields are set depends on the kind of
// message; Kind() classifies a decoded message once so downstream code never
// probes individual fields.
type Message struct {
	// Protocol version, must be the literal "2.0"
	JSONRPC string `json:"jsonrpc"`

	// Request / notification fields
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`

	// Correlation id. A nil value means the field was absent (notification),
	// which is distinct from an explicit JSON null. Kept as a non-pointer
	// RawMessage: encoding/json sets a pointer field to nil for JSON null,
	// while the non-pointer form preserves the literal "null".
	ID json.RawMessage `json:"id,omitempty"`

	// Response only fields (mutually exclusive)
	Result json.RawMessage `json:"result,omitempty"`
	Error  *ErrorObject    `json:"error,omitempty"`
}

// ErrorObject is the error member of a JSON-RPC response.
type ErrorObject struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Well-known JSON-RPC 2.0 error codes used by the echo server.
const (
	ErrCodeParse          = -32700
	ErrCodeInvalidRequest = -32600
	ErrCodeInternal       = -32603
)

// --------------------------------------------------------------------------
// Message Kind Definition
// --------------------------------------------------------------------------

// MessageKind classifies a Message by its populated fields.
type MessageKind uint8

const (
	KindInvalid      MessageKind = iota
	KindRequest                  // method + id
	KindNotification             // method, no id
	KindResponse                 // result or error + id
)

// String returns the string representation of a MessageKind.
func (k MessageKind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindNotification:
		return "notification"
	case KindResponse:
		return "response"
	default:
		return "invalid"
	}
}

// Kind classifies the message. A message that is neither a well-formed
// request, notification nor response yields KindInvalid.
func (m *Message) Kind() MessageKind {
	if m.JSONRPC != Version {
		return KindInvalid
	}
	if m.Method != "" {
		if m.Result != nil || m.Error != nil {
			return KindInvalid
		}
		if m.ID == nil {
			return KindNotification
		}
		return KindRequest
	}
	// Responses carry exactly one of result/error and always an id
	if m.ID != nil && (m.Result != nil) != (m.Error != nil) {
		return KindResponse
	}
	return KindInvalid
}

// Validate returns an error describing why the message is not a valid
// JSON-RPC 2.0 object, or nil if it is.
func (m *Message) Validate() error {
	if m.JSONRPC != Version {
		return fmt.Errorf("invalid jsonrpc version: %q (expected %q)", m.JSONRPC, Version)
	}
	if m.Kind() == KindInvalid {
		if m.Method != "" {
			return fmt.Errorf("request must not carry result or error members")
		}
		if m.Result != nil && m.Error != nil {
			return fmt.Errorf("response carries both result and error members")
		}
		return fmt.Errorf("message is neither a request, notification nor response")
	}
	return nil
}

// --------------------------------------------------------------------------
// Message Factory Functions
// --------------------------------------------------------------------------

// NewRequest creates a new request with an integer id.
func NewRequest(method string, params json.RawMessage, id uint64) *Message {
	return &Message{
		JSONRPC: Version,
		Method:  method,
		Params:  params,
		ID:      json.RawMessage(strconv.FormatUint(id, 10)),
	}
}

// NewNotification creates a new request without an id. Per JSON-RPC 2.0
// semantics no response is expected or sent for it.
func NewNotification(method string, params json.RawMessage) *Message {
	return &Message{
		JSONRPC: Version,
		Method:  method,
		Params:  params,
	}
}

// NewEchoResponse creates a response whose result embeds the original request
// object unchanged.
func NewEchoResponse(id json.RawMessage, request json.RawMessage) *Message {
	return &Message{
		JSONRPC: Version,
		ID:      bytes.Clone(id),
		Result:  request,
	}
}

// NewErrorResponse creates an error response with a null id. Used by the
// server when the offending request's id is unknown or unusable.
func NewErrorResponse(code int, message string) *Message {
	return &Message{
		JSONRPC: Version,
		ID:      json.RawMessage("null"),
		Error: &ErrorObject{
			Code:    code,
			Message: message,
		},
	}
}

// --------------------------------------------------------------------------
// ID Helpers
// --------------------------------------------------------------------------

// IDKey canonicalizes a raw id value for use as a map key, so that ids that
// differ only in insignificant whitespace still correlate.
func IDKey(id json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, id); err != nil {
		return string(id)
	}
	return buf.String()
}
