package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ValentinKolb/judp/rpc/common"
)

// NewJSONLineCodec creates a new line codec using json encoding
func NewJSONLineCodec() ILineCodec {
	return &jsonLineCodecImpl{}
}

// jsonLineCodecImpl implements the ILineCodec interface using json encoding
type jsonLineCodecImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.ILineCodec)
// --------------------------------------------------------------------------

func (c jsonLineCodecImpl) EncodeLine(msg *common.Message) ([]byte, error) {
	line, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	// encoding/json never emits raw newlines inside a value; finding one
	// indicates a logic error upstream, not a recoverable condition
	if bytes.IndexByte(line, '\n') >= 0 {
		return nil, fmt.Errorf("encoded message contains a raw line delimiter")
	}
	return line, nil
}

func (c jsonLineCodecImpl) DecodeLine(line []byte) (*common.Message, error) {
	var msg common.Message
	if err := json.Unmarshal(line, &msg); err != nil {
		// Unmarshal conflates syntax errors with type mismatches. A line that
		// is valid JSON but not an object ("hello", 42, [1,2,3]) parsed fine;
		// it just has the wrong shape.
		return nil, &common.MalformedLineError{Line: line, Shape: json.Valid(line), Cause: err}
	}
	if err := msg.Validate(); err != nil {
		return nil, &common.MalformedLineError{Line: line, Shape: true, Cause: err}
	}
	return &msg, nil
}
