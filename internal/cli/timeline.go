package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siddhi-bansal/focus-flow/internal/util"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the hourly focus timeline",
	Long: `Show tracked time per hour bucket, split by category.

Examples:
  focusflow timeline
  focusflow timeline --hours 12`,
	RunE: runTimeline,
}

var timelineHours int

func init() {
	rootCmd.AddCommand(timelineCmd)
	timelineCmd.Flags().IntVar(&timelineHours, "hours", 0, "Look-back window in hours (default from config)")
}

func runTimeline(cmd *cobra.Command, args []string) error {
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

	hours := timelineHours
	if hours <= 0 {
		hours = app.Config.DefaultRangeHours
	}

	buckets := a.Timeline(hours, now)
	if len(buckets) == 0 {
		fmt.Printf("No activity in the last %dh\n", hours)
		return nil
	}

	fmt.Printf("Timeline (last %dh)\n\n", hours)
	fmt.Printf("  %-17s %10s %12s %10s\n", "Hour", "Focus", "Distraction", "Neutral")
	for _, b := range buckets {
		fmt.Printf("  %-17s %10s %12s %10s\n",
			util.FormatDateTime(b.Hour),
			util.FormatSeconds(b.Focus),
			util.FormatSeconds(b.Distraction),
			util.FormatSeconds(b.Neutral))
	}
	return nil
}
