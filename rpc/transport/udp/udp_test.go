package udp

import (
	"bytes"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/ValentinKolb/judp/rpc/common"
	"github.com/ValentinKolb/judp/rpc/transport"
)

// listenPacket opens a UDP socket owned by the test and returns it together
// with its address
func listenPacket(t *testing.T) (net.PacketConn, string) {
	t.Helper()
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to open test socket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn, conn.LocalAddr().String()
}

// connect dials the given endpoint with the client transport
func connect(t *testing.T, endpoint string, timeoutSecond int) transport.IClientTransport {
	t.Helper()
	client := NewUDPClientTransport()
	err := client.Connect(common.ClientConfig{
		Endpoint:      endpoint,
		SendBufSize:   common.DefaultSendBufSize,
		TimeoutSecond: timeoutSecond,
	})
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

// TestClientTransportRoundTrip tests sending a datagram to a peer socket and
// receiving the reply
func TestClientTransportRoundTrip(t *testing.T) {
	peer, endpoint := listenPacket(t)
	client := connect(t, endpoint, 5)

	request := []byte(`{"jsonrpc":"2.0","id":0,"method":"hello"}`)
	if err := client.Send(request); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	// the peer echoes the datagram back
	buf := make([]byte, common.MaxDatagramSize)
	peer.SetReadDeadline(time.Now().Add(5 * time.Second))
	n, addr, err := peer.ReadFrom(buf)
	if err != nil {
		t.Fatalf("Peer read failed: %v", err)
	}
	if !bytes.Equal(buf[:n], request) {
		t.Fatalf("Peer received %q, want %q", buf[:n], request)
	}
	if _, err := peer.WriteTo(buf[:n], addr); err != nil {
		t.Fatalf("Peer write failed: %v", err)
	}

	reply, err := client.Receive()
	if err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	if !bytes.Equal(reply, request) {
		t.Errorf("Received %q, want %q", reply, request)
	}
}

// TestClientTransportDatagramBoundaries tests that two sends arrive as two
// distinct datagrams, not a merged stream
func TestClientTransportDatagramBoundaries(t *testing.T) {
	peer, endpoint := listenPacket(t)
	client := connect(t, endpoint, 5)

	first := []byte(`{"jsonrpc":"2.0","id":0,"method":"a"}`)
	second := []byte(`{"jsonrpc":"2.0","id":1,"method":"b"}`)
	if err := client.Send(first); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if err := client.Send(second); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	buf := make([]byte, common.MaxDatagramSize)
	for _, want := range [][]byte{first, second} {
		peer.SetReadDeadline(time.Now().Add(5 * time.Second))
		n, _, err := peer.ReadFrom(buf)
		if err != nil {
			t.Fatalf("Peer read failed: %v", err)
		}
		if !bytes.Equal(buf[:n], want) {
			t.Errorf("Peer received %q, want %q", buf[:n], want)
		}
	}
}

// TestClientTransportTimeout tests that a silent peer surfaces ErrTimeout
func TestClientTransportTimeout(t *testing.T) {
	_, endpoint := listenPacket(t)
	client := connect(t, endpoint, 1)

	start := time.Now()
	_, err := client.Receive()
	if !errors.Is(err, transport.ErrTimeout) {
		t.Fatalf("Receive error = %v, want ErrTimeout", err)
	}
	if elapsed := time.Since(start); elapsed < 500*time.Millisecond {
		t.Errorf("Receive returned after %s, expected the full read deadline", elapsed)
	}
}

// TestClientTransportCloseIdempotent tests closing an unconnected transport
func TestClientTransportCloseIdempotent(t *testing.T) {
	client := NewUDPClientTransport()
	if err := client.Close(); err != nil {
		t.Errorf("Close on unconnected transport failed: %v", err)
	}
}
