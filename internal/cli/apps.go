package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siddhi-bansal/focus-flow/internal/util"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "Show time spent per application",
	Long: `Show tracked time grouped by base application, longest first.

Examples:
  focusflow apps                 # Last 24 hours, top 10
  focusflow apps --hours 6
  focusflow apps --limit 25`,
	RunE: runApps,
}

var (
	appsHours int
	appsLimit int
)

func init() {
	rootCmd.AddCommand(appsCmd)
	appsCmd.Flags().IntVar(&appsHours, "hours", 0, "Look-back window in hours (default from config)")
	appsCmd.Flags().IntVar(&appsLimit, "limit", 0, "Maximum apps to show (default from config)")
}

func runApps(cmd *cobra.Command, args []string) error {
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

	hours := appsHours
	if hours <= 0 {
		hours = app.Config.DefaultRangeHours
	}
	limit := appsLimit
	if limit <= 0 {
		limit = app.Config.TopAppsLimit
	}

	usage := a.AppBreakdown(hours, now)
	if len(usage) == 0 {
		fmt.Printf("No activity in the last %dh\n", hours)
		return nil
	}
	if len(usage) > limit {
		usage = usage[:limit]
	}

	fmt.Printf("App Usage (last %dh)\n\n", hours)
	for i, u := range usage {
		cat := app.Categorizer.Categorize(ctx, u.App, u.App)
		fmt.Printf("  %2d. [%s] %-30s %s\n", i+1, categoryMarker(string(cat)),
			util.Truncate(u.App, 30), util.FormatSeconds(u.Seconds))
	}
	return nil
}
