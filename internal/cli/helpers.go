package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/siddhi-bansal/focus-flow/internal/analyzer"
)

// loadAnalysis reads the full activity log and builds one analysis pass.
// The returned instant is the "now" the pass was built with; every query
// against the analyzer must use it so the open session's duration stays
// consistent across metrics.
func loadAnalysis(ctx context.Context, app *AppContext) (*analyzer.Analyzer, time.Time, error) {
	samples, err := app.Log.ReadAll()
	if err != nil {
		return nil, time.Time{}, err
	}
	now := time.Now()
	a := analyzer.New(ctx, samples, app.Categorizer, now)
	for _, anomaly := range a.Anomalies() {
		slog.Warn("out-of-order timestamp in activity log",
			"row", anomaly.Index, "skew", anomaly.Skew)
	}
	return a, now, nil
}

func categoryMarker(cat string) string {
	switch cat {
	case "focus":
		return "+"
	case "distraction":
		return "-"
	case "not_set":
		return "?"
	default:
		return " "
	}
}
