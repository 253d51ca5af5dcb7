package util

import (
	"strings"

	"github.com/ValentinKolb/judp/rpc/common"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("judp")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// SetupClientFlags adds the flags shared by all calling side commands
func SetupClientFlags(cmd *cobra.Command) {
	key := "send-buf-size"
	cmd.PersistentFlags().IntP(key, "b", common.DefaultSendBufSize, WrapString("Max UDP payload per outgoing packet; requests are joined with '\\n' up to this size"))

	key = "timeout"
	cmd.PersistentFlags().Int(key, 5, WrapString("Read timeout in seconds for waiting responses"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "info", WrapString("The level at which logs will be output (debug, info, warn, error)"))
}

// GetClientConfig reads the client configuration from viper. The server
// argument may use the ":port" shorthand for "127.0.0.1:port".
func GetClientConfig(server string) (*common.ClientConfig, error) {
	endpoint, err := common.ResolveEndpoint(server)
	if err != nil {
		return nil, err
	}

	return &common.ClientConfig{
		Endpoint:      endpoint,
		SendBufSize:   viper.GetInt("send-buf-size"),
		TimeoutSecond: viper.GetInt("timeout"),
		Pretty:        viper.GetBool("pretty"),
		LogLevel:      viper.GetString("log-level"),
	}, nil
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
