// Command conductor runs the ticket orchestration daemon: it schedules open
// tickets across projects, supervises agent CLI sessions, reviews and
// summarizes finished work, and serves the HTTP/WebSocket API.
//
// The binary doubles as the permission hook shim the agent CLI invokes before
// every tool call ("conductor hook"), so a single artifact ships to both the
// daemon host and the agent workdirs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetworks/conductor/pkg/version"
)

var (
	flagConfig  string
	flagEnvFile string
)

func main() {
	root := &cobra.Command{
		Use:          "conductor",
		Short:        "Autonomous ticket orchestration daemon",
		SilenceUsage: true,
		RunE:         runDaemon,
	}
	root.Flags().StringVar(&flagConfig, "config", getEnv("CONDUCTOR_CONFIG", "/etc/conductor/config.yaml"), "path to the YAML config file")
	root.Flags().StringVar(&flagEnvFile, "env-file", ".env", "path to the .env file")

	root.AddCommand(versionCmd(), hookCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
