package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/siddhi-bansal/focus-flow/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "focusflow",
	Short: "Track your focus, visualize your patterns",
	Long: `focusflow analyzes the application activity log and reports how your
time splits between focus, distraction, and neutral use.

Record activity, inspect summaries and per-app breakdowns, classify titles
with overrides, and serve a local dashboard API.`,
}

var (
	configPath string
	logLevel   string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "focusflow.yaml", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cobra.OnInitialize(func() {
		logging.Init(logging.ParseLevel(logLevel))
	})
}
