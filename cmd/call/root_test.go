package call

import (
	"errors"
	"strings"
	"testing"

	"github.com/ValentinKolb/judp/rpc/codec"
	"github.com/ValentinKolb/judp/rpc/common"
)

// TestReadRequests tests reading newline-delimited request objects
func TestReadRequests(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":0,"method":"hello","params":["world"]}

{"jsonrpc":"2.0","method":"notify"}
{"jsonrpc":"2.0","id":1,"method":"bye"}
`

	requests, err := readRequests(strings.NewReader(input), codec.NewJSONLineCodec())
	if err != nil {
		t.Fatalf("readRequests failed: %v", err)
	}

	// blank lines are skipped, everything else kept in input order
	if len(requests) != 3 {
		t.Fatalf("Got %d requests, want 3", len(requests))
	}
	if requests[0].Method != "hello" || requests[2].Method != "bye" {
		t.Errorf("Requests out of order: %+v", requests)
	}
	if requests[1].Kind() != common.KindNotification {
		t.Errorf("Kind() = %s, want notification", requests[1].Kind())
	}
}

// TestReadRequestsMalformedInputAborts tests that a bad stdin line fails the
// whole read before anything is sent
func TestReadRequestsMalformedInputAborts(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":0,"method":"hello"}
not json
{"jsonrpc":"2.0","id":1,"method":"bye"}
`

	_, err := readRequests(strings.NewReader(input), codec.NewJSONLineCodec())

	var malformed *common.MalformedLineError
	if !errors.As(err, &malformed) {
		t.Fatalf("readRequests error = %v, want MalformedLineError", err)
	}
}

// TestReadRequestsEmptyInput tests that empty input yields no requests
func TestReadRequestsEmptyInput(t *testing.T) {
	requests, err := readRequests(strings.NewReader(""), codec.NewJSONLineCodec())
	if err != nil {
		t.Fatalf("readRequests failed: %v", err)
	}
	if len(requests) != 0 {
		t.Errorf("Got %d requests, want 0", len(requests))
	}
}
