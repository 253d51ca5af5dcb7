package req

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ValentinKolb/judp/cmd/util"
	"github.com/ValentinKolb/judp/rpc/codec"
	"github.com/ValentinKolb/judp/rpc/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	reqCount        = 1
	reqNotification = false
	reqParams       json.RawMessage

	// ReqCmd represents the req command
	ReqCmd = &cobra.Command{
		Use:     "req [method]",
		Short:   "Generate JSON-RPC request object JSON",
		Long:    `Generate JSON-RPC request objects and write them to standard output, one per line. The output is suitable as input for the call command.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// add flags
	key := "count"
	ReqCmd.Flags().IntP(key, "c", 1, util.WrapString("Count of requests to generate; ids are assigned 0..count-1"))

	key = "notification"
	ReqCmd.Flags().BoolP(key, "n", false, util.WrapString("Exclude the \"id\" field from the resulting JSON object"))

	key = "params"
	ReqCmd.Flags().StringP(key, "p", "", util.WrapString("Request parameters (JSON array or JSON object)"))
}

// processConfig reads the configuration from the command line flags and environment variables
func processConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	reqCount = viper.GetInt("count")
	reqNotification = viper.GetBool("notification")

	if reqCount < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	// params must be a JSON array or JSON object
	if params := strings.TrimSpace(viper.GetString("params")); params != "" {
		if !json.Valid([]byte(params)) {
			return fmt.Errorf("params is not valid JSON")
		}
		if params[0] != '[' && params[0] != '{' {
			return fmt.Errorf("params must be a JSON array or JSON object")
		}
		reqParams = json.RawMessage(params)
	}

	return nil
}

func run(_ *cobra.Command, args []string) error {
	method := args[0]
	lineCodec := codec.NewJSONLineCodec()

	for id := 0; id < reqCount; id++ {
		var msg *common.Message
		if reqNotification {
			msg = common.NewNotification(method, reqParams)
		} else {
			msg = common.NewRequest(method, reqParams, uint64(id))
		}

		line, err := lineCodec.EncodeLine(msg)
		if err != nil {
			return err
		}
		fmt.Println(string(line))
	}

	return nil
}
