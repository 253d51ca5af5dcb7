package bench

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ValentinKolb/judp/cmd/util"
	"github.com/ValentinKolb/judp/rpc/client"
	"github.com/ValentinKolb/judp/rpc/codec"
	"github.com/ValentinKolb/judp/rpc/common"
	"github.com/ValentinKolb/judp/rpc/transport/udp"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

var (
	benchCmdConfig *common.ClientConfig
	benchRate      = 0
	benchMethod    = "bench.echo"

	// BenchCmd represents the bench command
	BenchCmd = &cobra.Command{
		Use:     "bench [server]",
		Short:   "Benchmark a JSON-RPC echo server",
		Long:    `Benchmark a JSON-RPC echo server by flooding it with single request/response round trips and reporting throughput and latency percentiles.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// add flags
	util.SetupClientFlags(BenchCmd)

	key := "rate"
	BenchCmd.PersistentFlags().Int(key, 0, util.WrapString("Cap on requests per second; 0 disables rate limiting"))

	key = "method"
	BenchCmd.PersistentFlags().String(key, "bench.echo", util.WrapString("Method name to use for the generated requests"))
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
	benchCmdConfig = config
	benchRate = viper.GetInt("rate")
	benchMethod = viper.GetString("method")

	return nil
}

func run(_ *cobra.Command, _ []string) error {
	common.InitLoggers(benchCmdConfig.LogLevel)

	fmt.Println("Benchmark tool for JSON-RPC echo servers")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(benchCmdConfig.String())
	if benchRate > 0 {
		fmt.Printf("Rate limit: %d req/sec\n", benchRate)
	}
	fmt.Println()

	// connect once, reuse the transport for all iterations
	trans := udp.NewUDPClientTransport()
	if err := trans.Connect(*benchCmdConfig); err != nil {
		return err
	}
	defer trans.Close()

	caller := client.NewCaller(*benchCmdConfig, trans, codec.NewJSONLineCodec())

	var limiter *rate.Limiter
	if benchRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(benchRate), 1)
	}

	timer := gometrics.NewTimer()
	discard := func(*common.Message) error { return nil }
	var callErr error

	result := testing.Benchmark(func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if limiter != nil {
				_ = limiter.Wait(context.Background())
			}

			req := caller.NewRequest(benchMethod, nil)
			start := time.Now()
			if err := caller.Call([]*common.Message{req}, discard); err != nil {
				callErr = err
				b.StopTimer()
				return
			}
			timer.UpdateSince(start)
		}
	})

	if callErr != nil {
		return fmt.Errorf("benchmark aborted: %w", callErr)
	}

	printResult("echo round trip", result)
	printLatencies(timer)

	return nil
}

// printResult formats one benchmark result
func printResult(test string, result testing.BenchmarkResult) {
	nsPerOp := float64(result.T.Nanoseconds()) / float64(result.N)
	opsPerSec := 1.0 / (nsPerOp / 1e9)

	// Format the time per operation with appropriate units
	var timePerOpStr string
	if nsPerOp < 1000 {
		timePerOpStr = fmt.Sprintf("%.2f ns/op", nsPerOp)
	} else if nsPerOp < 1000000 {
		timePerOpStr = fmt.Sprintf("%.2f ns/op (%.2f µs/op)", nsPerOp, nsPerOp/1000)
	} else if nsPerOp < 1000000000 {
		timePerOpStr = fmt.Sprintf("%.2f ns/op (%.2f ms/op)", nsPerOp, nsPerOp/1000000)
	} else {
		timePerOpStr = fmt.Sprintf("%.2f ns/op (%.2f s/op)", nsPerOp, nsPerOp/1000000000)
	}

	fmt.Printf("%-20s\t%s\t%.2f ops/sec\tN: %d\n", test, timePerOpStr, opsPerSec, result.N)
}

// printLatencies formats the latency percentiles recorded by the timer
func printLatencies(timer gometrics.Timer) {
	ps := timer.Percentiles([]float64{0.5, 0.9, 0.99})

	fmt.Println()
	fmt.Println("Latency percentiles:")
	fmt.Printf("  %-6s: %s\n", "p50", time.Duration(ps[0]))
	fmt.Printf("  %-6s: %s\n", "p90", time.Duration(ps[1]))
	fmt.Printf("  %-6s: %s\n", "p99", time.Duration(ps[2]))
	fmt.Printf("  %-6s: %s\n", "max", time.Duration(timer.Max()))
}
