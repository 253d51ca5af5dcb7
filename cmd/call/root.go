package call

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ValentinKolb/judp/cmd/util"
	"github.com/ValentinKolb/judp/rpc/client"
	"github.com/ValentinKolb/judp/rpc/codec"
	"github.com/ValentinKolb/judp/rpc/common"
	"github.com/ValentinKolb/judp/rpc/transport/udp"
	"github.com/spf13/cobra"
)

var (
	callCmdConfig *common.ClientConfig

	// CallCmd represents the call command
	CallCmd = &cobra.Command{
		Use:     "call [server]",
		Short:   "Read JSON-RPC requests from standard input and execute the RPC calls",
		Long:    `Read newline-delimited JSON-RPC request objects from standard input, send them to the given server over UDP (batched into packets of at most send-buf-size bytes) and write the responses to standard output in arrival order. The server address may use the ":port" shorthand for "127.0.0.1:port".`,
		Args:    cobra.ExactArgs(1),
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// add flags
	util.SetupClientFlags(CallCmd)

	key := "pretty"
	CallCmd.PersistentFlags().BoolP(key, "p", false, util.WrapString("Pretty-print JSON responses to stdout"))
}

// processConfig reads the configuration from the command line flags and environment variables
func processConfig(cmd *cobra.Command, args []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	config, err := util.GetClientConfig(args[0])
	if err != nil {
		return err
	}
	callCmdConfig = config

	return nil
}

func run(_ *cobra.Command, _ []string) error {
	common.InitLoggers(callCmdConfig.LogLevel)

	// read the requests from stdin
	lineCodec := codec.NewJSONLineCodec()
	requests, err := readRequests(os.Stdin, lineCodec)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		return nil
	}

	// connect to the server
	trans := udp.NewUDPClientTransport()
	if err := trans.Connect(*callCmdConfig); err != nil {
		return err
	}
	defer trans.Close()

	// send the requests and print responses in arrival order
	caller := client.NewCaller(*callCmdConfig, trans, lineCodec)
	return caller.Call(requests, printResponse(lineCodec))
}

// readRequests reads newline-delimited JSON-RPC objects from r. A malformed
// input line aborts the call before anything is sent; stdin is under the
// user's control, unlike the network.
func readRequests(r io.Reader, lineCodec codec.ILineCodec) ([]*common.Message, error) {
	var requests []*common.Message

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), common.MaxDatagramSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		msg, err := lineCodec.DecodeLine(line)
		if err != nil {
			return nil, err
		}
		requests = append(requests, msg)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// printResponse writes one response per line to stdout, optionally indented
func printResponse(lineCodec codec.ILineCodec) client.ResponseFunc {
	return func(resp *common.Message) error {
		line, err := lineCodec.EncodeLine(resp)
		if err != nil {
			return err
		}

		if callCmdConfig.Pretty {
			var buf bytes.Buffer
			if err := json.Indent(&buf, line, "", "  "); err != nil {
				return err
			}
			line = buf.Bytes()
		}

		_, err = fmt.Println(string(line))
		return err
	}
}
