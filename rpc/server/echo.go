package server

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/VictoriaMetrics/metrics"
	"github.com/ValentinKolb/judp/rpc/codec"
	"github.com/ValentinKolb/judp/rpc/common"
	"github.com/ValentinKolb/judp/rpc/framing"
)

var (
	metricDatagramsReceived = metrics.GetOrCreateCounter(`judp_datagrams_received_total`)
	metricDatagramsSent     = metrics.GetOrCreateCounter(`judp_datagrams_sent_total`)
	metricRequests          = metrics.GetOrCreateCounter(`judp_requests_total`)
	metricNotifications     = metrics.GetOrCreateCounter(`judp_notifications_total`)
	metricMalformedLines    = metrics.GetOrCreateCounter(`judp_malformed_lines_total`)
	metricOversized         = metrics.GetOrCreateCounter(`judp_oversized_responses_total`)
)

// EchoResponder consumes decoded requests from one datagram and produces one
// response per request, the response's result embedding the original request
// object unchanged. Notifications receive no response. Responses are batched
// by the framing layer under the serving side's own send buffer size; error
// responses bypass the batching and become datagrams of their own.
type EchoResponder struct {
	codec       codec.ILineCodec
	sendBufSize int
}

// NewEchoResponder creates a new EchoResponder.
func NewEchoResponder(c codec.ILineCodec, sendBufSize int) *EchoResponder {
	return &EchoResponder{
		codec:       c,
		sendBufSize: sendBufSize,
	}
}

// HandleDatagram processes one received datagram and returns the response
// datagrams to send back to the originating address, in order.
func (r *EchoResponder) HandleDatagram(datagram []byte) [][]byte {
	metricDatagramsReceived.Inc()

	var responses [][]byte
	packer := framing.NewPacker(r.sendBufSize, func(d []byte) error {
		// the packer reuses its buffer, so keep a copy
		responses = append(responses, bytes.Clone(d))
		metricDatagramsSent.Inc()
		return nil
	})

	for _, line := range framing.Split(datagram) {
		req, err := r.codec.DecodeLine(line)
		if err != nil {
			metricMalformedLines.Inc()
			Logger.Warningf("Received malformed line: %v", err)
			responses = append(responses, r.errorDatagram(err))
			metricDatagramsSent.Inc()
			continue
		}

		switch req.Kind() {
		case common.KindNotification:
			// no id, no response
			metricNotifications.Inc()
			continue
		case common.KindRequest:
			metricRequests.Inc()
		default:
			// a response or anything else is not a request we can serve
			metricMalformedLines.Inc()
			responses = append(responses, r.errorDatagram(&common.MalformedLineError{Line: line, Shape: true}))
			metricDatagramsSent.Inc()
			continue
		}

		resp := common.NewEchoResponse(req.ID, json.RawMessage(line))
		encoded, err := r.codec.EncodeLine(resp)
		if err != nil {
			Logger.Errorf("Failed to encode response: %v", err)
			continue
		}

		if err := packer.Append(encoded); err != nil {
			var oversized *common.OversizedMessageError
			if errors.As(err, &oversized) {
				metricOversized.Inc()
				Logger.Warningf("Dropping oversized response: %v", err)
				errResp := common.NewErrorResponse(common.ErrCodeInternal, "response size exceeds maximum UDP packet size")
				responses = append(responses, r.encodeRaw(errResp))
				metricDatagramsSent.Inc()
				continue
			}
			Logger.Errorf("Failed to pack response: %v", err)
		}
	}

	if err := packer.Flush(); err != nil {
		Logger.Errorf("Failed to flush responses: %v", err)
	}

	return responses
}

// errorDatagram builds the protocol error response for a malformed line:
// parse errors yield -32700, shape errors -32600, both with a null id since
// the offending request's id is unusable.
func (r *EchoResponder) errorDatagram(err error) []byte {
	code := common.ErrCodeParse
	var malformed *common.MalformedLineError
	if errors.As(err, &malformed) && malformed.Shape {
		code = common.ErrCodeInvalidRequest
	}

	message := "parse error"
	if code == common.ErrCodeInvalidRequest {
		message = "invalid request"
	}
	if malformed != nil && malformed.Cause != nil {
		message = malformed.Cause.Error()
	}

	return r.encodeRaw(common.NewErrorResponse(code, message))
}

// encodeRaw encodes an internally built message whose serialization cannot
// fail.
func (r *EchoResponder) encodeRaw(msg *common.Message) []byte {
	line, err := r.codec.EncodeLine(msg)
	if err != nil {
		Logger.Panicf("failed to encode error response: %v", err)
	}
	return line
}
