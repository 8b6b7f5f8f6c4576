package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/siddhi-bansal/focus-flow/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <title>",
	Short: "Classify a window title",
	Long: `Classify a window title as focus, distraction, or neutral.

Resolution order: user override, cached model answer, fresh model call,
local rule table. Model and override answers are cached; rule answers are
recomputed every time.

Examples:
  focusflow classify "YouTube - Lo-fi beats"
  focusflow classify "Google Chrome - Jira board" --force`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

var classifyForce bool

var overrideCmd = &cobra.Command{
	Use:   "override <title> <category>",
	Short: "Pin a category for a title",
	Long: `Pin a category for a title, taking precedence over model answers.

Category must be one of: focus, distraction, neutral.

Examples:
  focusflow classify override "YouTube - Conference talk" focus
  focusflow classify override "Slack" distraction --rationale "team chat spiral"`,
	Args: cobra.ExactArgs(2),
	RunE: runOverride,
}

var (
	overrideConfidence float64
	overrideRationale  string
)

var revertCmd = &cobra.Command{
	Use:   "revert <title>",
	Short: "Remove a pinned category",
	Long: `Remove the cached classification for a title so the next classify
resolves it fresh.

Examples:
  focusflow classify revert "YouTube - Conference talk"`,
	Args: cobra.ExactArgs(1),
	RunE: runRevert,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.AddCommand(overrideCmd)
	classifyCmd.AddCommand(revertCmd)
	classifyCmd.Flags().BoolVar(&classifyForce, "force", false, "Skip the cache and classify fresh")
	overrideCmd.Flags().Float64Var(&overrideConfidence, "confidence", 100, "Confidence to store (0-100)")
	overrideCmd.Flags().StringVar(&overrideRationale, "rationale", "", "Short note on why")
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	rec, err := app.Resolver.Resolve(ctx, args[0], classifyForce)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	printRecord(rec)
	return nil
}

func runOverride(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	rec, err := app.Resolver.SaveOverride(ctx, args[0], args[1], overrideConfidence, overrideRationale)
	if errors.Is(err, classify.ErrInvalidCategory) {
		return fmt.Errorf("invalid category %q (want focus, distraction, or neutral)", args[1])
	}
	if err != nil {
		return fmt.Errorf("failed to save override: %w", err)
	}

	printRecord(rec)
	return nil
}

func runRevert(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Resolver.RevertOverride(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to revert override: %w", err)
	}

	fmt.Printf("Reverted %q\n", args[0])
	return nil
}

func printRecord(rec classify.Record) {
	fmt.Printf("Category:   %s\n", rec.Category)
	fmt.Printf("Confidence: %.0f\n", rec.Confidence)
	fmt.Printf("Source:     %s", rec.Source)
	if rec.Cached {
		fmt.Printf(" (cached)")
	}
	fmt.Println()
	if len(rec.Tags) > 0 {
		fmt.Printf("Tags:       %s\n", strings.Join(rec.Tags, ", "))
	}
	if rec.Rationale != "" {
		fmt.Printf("Rationale:  %s\n", rec.Rationale)
	}
}
