package udp

import (
	"fmt"
	"net"
	"time"

	"github.com/ValentinKolb/judp/rpc/common"
	"github.com/ValentinKolb/judp/rpc/transport"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("transport/udp")

// clientTransport implements the calling side UDP transport. The socket is
// connected to the server endpoint, so plain Read/Write suffice and stray
// datagrams from other peers are filtered by the kernel.
type clientTransport struct {
	conn    net.Conn
	timeout time.Duration
}

// NewUDPClientTransport creates a new UDP client transport
func NewUDPClientTransport() transport.IClientTransport {
	return &clientTransport{}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IClientTransport)
// --------------------------------------------------------------------------

func (t *clientTransport) Connect(config common.ClientConfig) error {
	conn, err := net.Dial("udp", config.Endpoint)
	if err != nil {
		return fmt.Errorf("failed to create UDP socket: %v", err)
	}
	t.conn = conn
	t.timeout = time.Duration(config.TimeoutSecond) * time.Second

	Logger.Infof("Connected to %s via udp", config.Endpoint)
	return nil
}

func (t *clientTransport) Send(datagram []byte) error {
	n, err := t.conn.Write(datagram)
	if err != nil {
		return fmt.Errorf("failed to send request packet: %v", err)
	}
	if n != len(datagram) {
		return fmt.Errorf("failed to send complete request packet (%d of %d bytes)", n, len(datagram))
	}
	return nil
}

func (t *clientTransport) Receive() ([]byte, error) {
	if t.timeout > 0 {
		if err := t.conn.SetReadDeadline(time.Now().Add(t.timeout)); err != nil {
			return nil, err
		}
	}

	buf := make([]byte, common.MaxDatagramSize)
	n, err := t.conn.Read(buf)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return nil, transport.ErrTimeout
		}
		return nil, err
	}
	return buf[:n], nil
}

func (t *clientTransport) Close() error {
	if t.conn == nil {
		return nil
	}
	return t.conn.Close()
}
