package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <app title>",
	Short: "Append an activity sample to the log",
	Long: `Append one (timestamp, title) row to the activity log.

The OS-level sampler normally writes these rows; record exists for manual
entries and for driving the engine without a sampler.

Examples:
  focusflow record "VSCode"
  focusflow record "Google Chrome - Inbox - Gmail" --at 2025-06-02T09:30:00Z`,
	Args: cobra.ExactArgs(1),
	RunE: runRecord,
}

var recordAt string

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.Flags().StringVar(&recordAt, "at", "", "Timestamp (RFC3339) instead of now")
}

func runRecord(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	ts := time.Now()
	if recordAt != "" {
		ts, err = time.Parse(time.RFC3339, recordAt)
		if err != nil {
			return fmt.Errorf("invalid --at timestamp: %w", err)
		}
	}

	if err := app.Log.Append(ts, args[0]); err != nil {
		return fmt.Errorf("failed to record sample: %w", err)
	}
	app.Metrics.SampleRecorded(ctx)

	fmt.Printf("Recorded %q at %s in %s\n", args[0], ts.Format(time.RFC3339), app.Log.Path())
	return nil
}
