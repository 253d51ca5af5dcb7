package common

import (
	"encoding/json"
	"testing"
)

// TestMessageKind tests the Kind classification for all message variants
func TestMessageKind(t *testing.T) {
	id := json.RawMessage(`0`)

	tests := []struct {
		name     string
		message  Message
		expected MessageKind
	}{
		{
			name:     "Request with method and id",
			message:  Message{JSONRPC: "2.0", Method: "hello", ID: id},
			expected: KindRequest,
		},
		{
			name:     "Notification without id",
			message:  Message{JSONRPC: "2.0", Method: "hello"},
			expected: KindNotification,
		},
		{
			name:     "Response with result",
			message:  Message{JSONRPC: "2.0", ID: id, Result: json.RawMessage(`{}`)},
			expected: KindResponse,
		},
		{
			name:     "Response with error",
			message:  Message{JSONRPC: "2.0", ID: id, Error: &ErrorObject{Code: -32700, Message: "parse error"}},
			expected: KindResponse,
		},
		{
			name:     "Missing version",
			message:  Message{Method: "hello", ID: id},
			expected: KindInvalid,
		},
		{
			name:     "Wrong version",
			message:  Message{JSONRPC: "1.0", Method: "hello", ID: id},
			expected: KindInvalid,
		},
		{
			name:     "Response with both result and error",
			message:  Message{JSONRPC: "2.0", ID: id, Result: json.RawMessage(`{}`), Error: &ErrorObject{}},
			expected: KindInvalid,
		},
		{
			name:     "Response without id",
			message:  Message{JSONRPC: "2.0", Result: json.RawMessage(`{}`)},
			expected: KindInvalid,
		},
		{
			name:     "Request carrying a result",
			message:  Message{JSONRPC: "2.0", Method: "hello", ID: id, Result: json.RawMessage(`{}`)},
			expected: KindInvalid,
		},
		{
			name:     "Empty message",
			message:  Message{JSONRPC: "2.0"},
			expected: KindInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if kind := tt.message.Kind(); kind != tt.expected {
				t.Errorf("Kind() = %s, want %s", kind, tt.expected)
			}

			// Validate must agree with Kind
			err := tt.message.Validate()
			if tt.expected == KindInvalid && err == nil {
				t.Errorf("Validate() = nil for invalid message")
			}
			if tt.expected != KindInvalid && err != nil {
				t.Errorf("Validate() = %v for valid message", err)
			}
		})
	}
}

// TestFactoryFunctions tests the message factory functions
func TestFactoryFunctions(t *testing.T) {
	t.Run("NewRequest", func(t *testing.T) {
		msg := NewRequest("hello", json.RawMessage(`["world"]`), 7)
		if msg.Kind() != KindRequest {
			t.Fatalf("Kind() = %s, want request", msg.Kind())
		}
		if string(msg.ID) != "7" {
			t.Errorf("ID = %s, want 7", msg.ID)
		}
	})

	t.Run("NewNotification", func(t *testing.T) {
		msg := NewNotification("hello", nil)
		if msg.Kind() != KindNotification {
			t.Fatalf("Kind() = %s, want notification", msg.Kind())
		}
		if msg.ID != nil {
			t.Errorf("ID = %s, want absent", msg.ID)
		}
	})

	t.Run("NewEchoResponse", func(t *testing.T) {
		request := json.RawMessage(`{"jsonrpc":"2.0","id":0,"method":"hello","params":["world"]}`)
		msg := NewEchoResponse(json.RawMessage(`0`), request)
		if msg.Kind() != KindResponse {
			t.Fatalf("Kind() = %s, want response", msg.Kind())
		}

		encoded, err := json.Marshal(msg)
		if err != nil {
			t.Fatalf("Failed to marshal response: %v", err)
		}
		expected := `{"jsonrpc":"2.0","id":0,"result":{"jsonrpc":"2.0","id":0,"method":"hello","params":["world"]}}`
		if string(encoded) != expected {
			t.Errorf("Marshalled response doesn't match:\nGot:  %s\nWant: %s", encoded, expected)
		}
	})

	t.Run("NewErrorResponse", func(t *testing.T) {
		msg := NewErrorResponse(ErrCodeParse, "parse error")
		if msg.Kind() != KindResponse {
			t.Fatalf("Kind() = %s, want response", msg.Kind())
		}
		if string(msg.ID) != "null" {
			t.Errorf("ID = %s, want null", msg.ID)
		}

		encoded, err := json.Marshal(msg)
		if err != nil {
			t.Fatalf("Failed to marshal response: %v", err)
		}
		expected := `{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"parse error"}}`
		if string(encoded) != expected {
			t.Errorf("Marshalled response doesn't match:\nGot:  %s\nWant: %s", encoded, expected)
		}
	})
}

// TestIDKey tests the id canonicalization used for correlation
func TestIDKey(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{name: "Integer id", id: `0`, expected: `0`},
		{name: "Integer id with whitespace", id: ` 42 `, expected: `42`},
		{name: "String id", id: `"abc"`, expected: `"abc"`},
		{name: "Null id", id: `null`, expected: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if key := IDKey(json.RawMessage(tt.id)); key != tt.expected {
				t.Errorf("IDKey(%q) = %q, want %q", tt.id, key, tt.expected)
			}
		})
	}
}

// TestUnmarshalDistinguishesAbsentID tests that an absent id is distinct from null
func TestUnmarshalDistinguishesAbsentID(t *testing.T) {
	var notification Message
	if err := json.Unmarshal([]byte(`{"jsonrpc":"2.0","method":"hello"}`), &notification); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if notification.ID != nil {
		t.Errorf("absent id unmarshalled as %s, want nil", notification.ID)
	}

	var withNull Message
	if err := json.Unmarshal([]byte(`{"jsonrpc":"2.0","method":"hello","id":null}`), &withNull); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if withNull.ID == nil {
		t.Errorf("explicit null id unmarshalled as absent")
	}
}
