package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siddhi-bansal/focus-flow/internal/util"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the detailed activity log",
	Long: `Show per-session rows for a look-back window, most recent first.

Examples:
  focusflow log
  focusflow log --hours 6 --limit 50`,
	RunE: runLog,
}

var (
	logHours int
	logLimit int
)

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().IntVar(&logHours, "hours", 0, "Look-back window in hours (default from config)")
	logCmd.Flags().IntVar(&logLimit, "limit", 0, "Maximum rows to show (0 = all)")
}

func runLog(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	a, now, err := loadAnalysis(ctx, app)
	if err != nil {
		return fmt.Errorf("failed to load activity log: %w", err)
	}

	hours := logHours
	if hours <= 0 {
		hours = app.Config.DefaultRangeHours
	}

	entries := a.ActivityLog(hours, now)
	if len(entries) == 0 {
		fmt.Printf("No activity in the last %dh\n", hours)
		return nil
	}
	if logLimit > 0 && len(entries) > logLimit {
		entries = entries[:logLimit]
	}

	fmt.Printf("Activity Log (last %dh, most recent first)\n\n", hours)
	for _, e := range entries {
		fmt.Printf("  %s  [%s] %-40s %8s\n",
			util.FormatClock(e.Time),
			categoryMarker(string(e.Category)),
			util.Truncate(e.DisplayTitle, 40),
			util.FormatSeconds(e.DurationSeconds))
	}
	return nil
}
