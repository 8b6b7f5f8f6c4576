package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siddhi-bansal/focus-flow/internal/analyzer"
	"github.com/siddhi-bansal/focus-flow/internal/util"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the focus summary",
	Long: `Show focus vs distraction time, the focus score, and the top apps
for a look-back window.

Examples:
  focusflow summary               # Last 24 hours
  focusflow summary --hours 6     # Last 6 hours
  focusflow summary --hours 168   # Last week`,
	RunE: runSummary,
}

var summaryHours int

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().IntVar(&summaryHours, "hours", 0, "Look-back window in hours (default from config)")
}

func runSummary(cmd *cobra.Command, args []string) error {
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

	hours := summaryHours
	if hours <= 0 {
		hours = app.Config.DefaultRangeHours
	}

	sum := a.Summary(hours, now)
	score := a.FocusScore(hours, now)
	thresholds := analyzer.Thresholds{
		Excellent: app.Config.Score.Excellent,
		Good:      app.Config.Score.Good,
		Low:       app.Config.Score.Low,
	}

	fmt.Printf("Focus Summary (last %dh)\n", hours)
	fmt.Printf("========================\n\n")
	fmt.Printf("Focus Score: %.1f/100 (%s)\n\n", score, analyzer.RateScore(score, thresholds))
	fmt.Printf("Time Breakdown:\n")
	fmt.Printf("  Focus:       %8s  (%.1f%%)\n", util.FormatSeconds(sum.FocusSeconds), sum.FocusPercentage)
	fmt.Printf("  Distraction: %8s  (%.1f%%)\n", util.FormatSeconds(sum.DistractionSeconds), sum.DistractionPercentage)
	fmt.Printf("  Neutral:     %8s\n", util.FormatSeconds(sum.NeutralSeconds))
	fmt.Printf("  Tracked:     %8s across %d sessions\n", util.FormatSeconds(sum.TotalTracked), sum.SessionCount)

	if analyzer.HighDistraction(sum, app.Config.HighDistractionPercent) {
		fmt.Printf("\nWarning: distraction time is above %.0f%% of the window\n",
			app.Config.HighDistractionPercent)
	}

	usage := a.AppBreakdown(hours, now)
	if len(usage) > 0 {
		fmt.Printf("\nTop Apps:\n")
		limit := app.Config.TopAppsLimit
		if limit > len(usage) {
			limit = len(usage)
		}
		for i := 0; i < limit; i++ {
			fmt.Printf("  %d. %s: %s\n", i+1, usage[i].App, util.FormatSeconds(usage[i].Seconds))
		}
	}

	return nil
}
