package common

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

const (
	// DefaultSendBufSize is the default maximum UDP payload per outgoing
	// packet. Messages are joined with '\n' up to this size.
	DefaultSendBufSize = 1200

	// MaxDatagramSize is the largest possible UDP payload
	// (65535 - 8 byte UDP header - 20 byte IP header).
	MaxDatagramSize = 65507
)

// ResolveEndpoint expands the ":port" shorthand to "127.0.0.1:port" and
// verifies the result is a valid host:port pair. The expansion happens once
// at configuration time; all other layers see the full form.
func ResolveEndpoint(endpoint string) (string, error) {
	if strings.HasPrefix(endpoint, ":") {
		endpoint = "127.0.0.1" + endpoint
	}
	if _, _, err := net.SplitHostPort(endpoint); err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %v", endpoint, err)
	}
	return endpoint, nil
}

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds all configuration parameters for the calling side.
type ClientConfig struct {
	// Endpoint is the server address (host:port, already resolved)
	Endpoint string

	// SendBufSize is the maximum UDP payload per outgoing packet
	SendBufSize int

	// TimeoutSecond is the read timeout while waiting for responses
	TimeoutSecond int

	// Pretty enables indented JSON output
	Pretty bool

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Client Configuration")
	addField("Endpoint", c.Endpoint)
	addField("Send Buffer Size", fmt.Sprintf("%d bytes", c.SendBufSize))
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	addField("Pretty Output", strconv.FormatBool(c.Pretty))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}

// --------------------------------------------------------------------------
// Server configuration struct
// --------------------------------------------------------------------------

// ServerConfig holds all configuration parameters for the serving side.
type ServerConfig struct {
	// Endpoint is the UDP bind address (host:port, already resolved)
	Endpoint string

	// SendBufSize is the maximum UDP payload per response packet
	SendBufSize int

	// MetricsEndpoint is the optional HTTP listen address for Prometheus
	// metrics; empty disables the metrics listener
	MetricsEndpoint string

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the server configuration
func (c *ServerConfig) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Echo Server")
	addField("Endpoint", c.Endpoint)
	addField("Send Buffer Size", fmt.Sprintf("%d bytes", c.SendBufSize))
	if c.MetricsEndpoint != "" {
		addField("Metrics Endpoint", c.MetricsEndpoint)
	}

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
