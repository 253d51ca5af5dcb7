package codec

import "github.com/ValentinKolb/judp/rpc/common"

// ILineCodec is the interface for all line codecs. A line codec converts
// between a single JSON-RPC message and its one-line wire form.
type ILineCodec interface {
	// EncodeLine encodes a Message into a single line without a trailing
	// delimiter. It returns an error if the encoded form would contain a raw
	// line delimiter, since the delimiter is the only separator the framing
	// layer trusts.
	EncodeLine(msg *common.Message) ([]byte, error)
	// DecodeLine decodes one candidate line into a Message. It returns a
	// *common.MalformedLineError if the bytes are not valid JSON or not a
	// valid JSON-RPC object shape.
	DecodeLine(line []byte) (*common.Message, error)
}
