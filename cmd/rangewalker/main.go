package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blackridgelabs/rangewalker/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:           "rangewalker",
	Short:         "Run the decoy traffic generator for a training range host",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRangewalker,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("sites-file", "sites.txt", "Path to the site list file")
	flags.String("adapter", "", "Network adapter to rotate (prompted if unset)")
	flags.String("cidr", "", "CIDR block for rotation, e.g. 10.0.0.0/24 (prompted if unset)")
	flags.String("dns", "", "DNS server IPv4 (prompted if unset)")
	flags.String("gateway", "", "Default gateway IPv4 (prompted if unset)")
	flags.Int("rotation-interval-mins", config.DefaultRotationIntervalMins, "Rotation interval in minutes (prompted if left default)")
	flags.Float64("request-delay-mins", config.DefaultRequestDelayMins, "Base per-request delay in minutes (prompted if left default)")
	flags.Int("site-switch-mins", config.DefaultSiteSwitchMins, "Dwell time per root site in minutes (prompted if left default)")
	flags.Int("num-users", config.DefaultNumUsers, "Number of concurrent virtual users (prompted if left default)")
	flags.String("status-addr", "127.0.0.1:9090", "Bind address for the status/metrics HTTP server; empty disables it")
	flags.String("log-file", "", "Optional JSONL event log path, in addition to stderr")
	flags.String("run-id", "", "Run identifier stamped on every logged event (generated if unset)")

	for _, name := range []string{
		"sites-file", "adapter", "cidr", "dns", "gateway",
		"rotation-interval-mins", "request-delay-mins", "site-switch-mins",
		"num-users", "status-addr", "log-file", "run-id",
	} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	viper.SetEnvPrefix("RANGEWALKER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
