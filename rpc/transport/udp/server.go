package udp

import (
	"fmt"
	"net"

	"github.com/ValentinKolb/judp/rpc/common"
	"github.com/ValentinKolb/judp/rpc/transport"
)

// serverTransport implements the serving side UDP transport. One datagram is
// processed fully (handler called, responses sent back) before the next is
// received; UDP message boundaries make each datagram an atomic batch, so no
// concurrent handling is needed.
type serverTransport struct {
	handler transport.ServerHandleFunc
	config  common.ServerConfig
}

// NewUDPServerTransport creates a new UDP server transport
func NewUDPServerTransport() transport.IServerTransport {
	return &serverTransport{}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IServerTransport)
// --------------------------------------------------------------------------

func (t *serverTransport) RegisterHandler(handler transport.ServerHandleFunc) {
	t.handler = handler
}

func (t *serverTransport) Listen(config common.ServerConfig) error {
	t.config = config

	addr, err := net.ResolveUDPAddr("udp", config.Endpoint)
	if err != nil {
		return fmt.Errorf("failed to resolve bind address: %v", err)
	}

	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return fmt.Errorf("failed to create UDP socket: %v", err)
	}
	defer conn.Close()

	Logger.Infof("Starting udp server on %s", config.Endpoint)

	recvBuf := make([]byte, common.MaxDatagramSize)
	for {
		n, peer, err := conn.ReadFromUDP(recvBuf)
		if err != nil {
			return fmt.Errorf("failed to receive datagram: %v", err)
		}
		if n == 0 {
			continue
		}

		for _, resp := range t.handler(peer, recvBuf[:n]) {
			sent, err := conn.WriteToUDP(resp, peer)
			if err != nil {
				Logger.Errorf("Failed to send response to %s: %v", peer, err)
				continue
			}
			if sent != len(resp) {
				return fmt.Errorf("failed to send complete response (%d of %d bytes)", sent, len(resp))
			}
		}
	}
}
