package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/judp/cmd/bench"
	"github.com/ValentinKolb/judp/cmd/call"
	"github.com/ValentinKolb/judp/cmd/req"
	"github.com/ValentinKolb/judp/cmd/serve"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "judp",
		Short: "JSON-RPC 2.0 over UDP",
		Long: fmt.Sprintf(`judp (v%s)

A small transport tool that carries JSON-RPC 2.0 messages, encoded one per
line, over UDP datagrams. Requests are batched into packets of a configurable
maximum size without ever splitting a message across two packets.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of judp",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("judp v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(req.ReqCmd)
	RootCmd.AddCommand(call.CallCmd)
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(bench.BenchCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
