package server

import (
	"net"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/ValentinKolb/judp/rpc/codec"
	"github.com/ValentinKolb/judp/rpc/common"
	"github.com/ValentinKolb/judp/rpc/transport"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("server")

// NewEchoServer creates a new echo server
// It takes a config, transport and line codec as parameters
//
// Usage:
//
//	s := server.NewEchoServer(
//		config,
//		udp.NewUDPServerTransport(),
//		codec.NewJSONLineCodec(),
//	)
//
//	if err := s.Serve(); err != nil {
//		panic(err)
//	}
func NewEchoServer(
	config common.ServerConfig,
	transport transport.IServerTransport,
	codec codec.ILineCodec,
) echoServer {
	Logger.Infof("Created Echo Server")
	Logger.Infof(config.String())

	return echoServer{
		config:    config,
		transport: transport,
		responder: NewEchoResponder(codec, config.SendBufSize),
	}
}

type echoServer struct {
	config    common.ServerConfig
	transport transport.IServerTransport
	responder *EchoResponder
}

func (s *echoServer) registerTransportHandler() {
	s.transport.RegisterHandler(func(peer net.Addr, datagram []byte) [][]byte {
		return s.responder.HandleDatagram(datagram)
	})
}

func (s *echoServer) init() error {
	// Init logger
	common.InitLoggers(s.config.LogLevel)

	// Start the metrics listener if configured
	if s.config.MetricsEndpoint != "" {
		go func() {
			Logger.Infof("Starting metrics listener on %s", s.config.MetricsEndpoint)
			err := http.ListenAndServe(s.config.MetricsEndpoint, http.HandlerFunc(
				func(w http.ResponseWriter, _ *http.Request) {
					metrics.WritePrometheus(w, true)
				}))
			Logger.Errorf("Metrics listener stopped: %v", err)
		}()
	}

	// Configure the transport layer
	s.registerTransportHandler()

	return nil
}

// Serve starts the echo server
// This function will also initialize the server and start the transport layer
func (s *echoServer) Serve() error {
	if err := s.init(); err != nil {
		return err
	}
	return s.transport.Listen(s.config)
}
