package serve

import (
	"fmt"

	"github.com/ValentinKolb/judp/cmd/util"
	"github.com/ValentinKolb/judp/rpc/codec"
	"github.com/ValentinKolb/judp/rpc/common"
	"github.com/ValentinKolb/judp/rpc/server"
	"github.com/ValentinKolb/judp/rpc/transport/udp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serveCmdConfig = &common.ServerConfig{}

	// ServeCmd represents the echo-server command
	ServeCmd = &cobra.Command{
		Use:   "echo-server [addr]",
		Short: "Run a JSON-RPC echo server",
		Long: `Run a JSON-RPC echo server on the given UDP bind address (FORMAT: [IP_ADDR]:PORT).

This server will respond to every request with a response containing
the same request object as the result value.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// add flags
	key := "send-buf-size"
	ServeCmd.PersistentFlags().IntP(key, "b", common.DefaultSendBufSize, util.WrapString("Max UDP payload per response packet; responses are joined with '\\n' up to this size"))

	key = "metrics-endpoint"
	ServeCmd.PersistentFlags().String(key, "", util.WrapString("Optional HTTP listen address for Prometheus metrics (e.g. :6060); empty disables the metrics listener"))

	key = "log-level"
	ServeCmd.PersistentFlags().String(key, "info", util.WrapString("The level at which logs will be output (debug, info, warn, error)"))
}

// processConfig reads the configuration from the command line flags and environment variables
func processConfig(cmd *cobra.Command, args []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	endpoint, err := common.ResolveEndpoint(args[0])
	if err != nil {
		return err
	}

	serveCmdConfig.Endpoint = endpoint
	serveCmdConfig.SendBufSize = viper.GetInt("send-buf-size")
	serveCmdConfig.MetricsEndpoint = viper.GetString("metrics-endpoint")
	serveCmdConfig.LogLevel = viper.GetString("log-level")

	if serveCmdConfig.SendBufSize < 1 {
		return fmt.Errorf("send-buf-size must be positive")
	}
	if serveCmdConfig.SendBufSize > common.MaxDatagramSize {
		return fmt.Errorf("send-buf-size must be <= %d", common.MaxDatagramSize)
	}

	return nil
}

func run(_ *cobra.Command, _ []string) error {
	s := server.NewEchoServer(
		*serveCmdConfig,
		udp.NewUDPServerTransport(),
		codec.NewJSONLineCodec(),
	)
	return s.Serve()
}
