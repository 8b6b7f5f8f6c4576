package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siddhi-bansal/focus-flow/internal/analyzer"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the focus score",
	Long: `Show the focus score for a look-back window as a single number.

The score is the share of focus time within all tracked time, 0 to 100.

Examples:
  focusflow score
  focusflow score --hours 6`,
	RunE: runScore,
}

var scoreHours int

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().IntVar(&scoreHours, "hours", 0, "Look-back window in hours (default from config)")
}

func runScore(cmd *cobra.Command, args []string) error {
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

	hours := scoreHours
	if hours <= 0 {
		hours = app.Config.DefaultRangeHours
	}

	score := a.FocusScore(hours, now)
	thresholds := analyzer.Thresholds{
		Excellent: app.Config.Score.Excellent,
		Good:      app.Config.Score.Good,
		Low:       app.Config.Score.Low,
	}
	fmt.Printf("%.1f (%s)\n", score, analyzer.RateScore(score, thresholds))
	return nil
}
