package transport

import (
	"errors"
	"net"

	"github.com/ValentinKolb/judp/rpc/common"
)

// ErrTimeout is returned by IClientTransport.Receive when the configured read
// timeout expires before a datagram arrives.
var ErrTimeout = errors.New("receive timed out")

// --------------------------------------------------------------------------
// Server Transport
// --------------------------------------------------------------------------

// ServerHandleFunc is a function type that handles one received datagram.
// This function is called by a server transport layer when a datagram is
// received. It takes the peer address and the datagram payload as parameters
// and returns zero or more response datagrams, which the transport sends back
// to the peer in order.
type ServerHandleFunc func(peer net.Addr, datagram []byte) (responses [][]byte)

// IServerTransport is the interface for the serving side transport layer
type IServerTransport interface {
	// RegisterHandler registers a handler for the transport layer
	// This handler should be called for every received datagram
	RegisterHandler(handler ServerHandleFunc)
	// Listen starts the transport layer and blocks receiving datagrams
	Listen(config common.ServerConfig) error
}

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IClientTransport is the interface for the calling side transport layer
type IClientTransport interface {
	// Connect initializes the transport with the given configuration
	Connect(config common.ClientConfig) error
	// Send sends one datagram to the server. A partial send is an error.
	Send(datagram []byte) error
	// Receive blocks until a datagram arrives or the configured read timeout
	// expires, in which case it returns ErrTimeout
	Receive() ([]byte, error)
	// Close closes the transport connection
	Close() error
}
