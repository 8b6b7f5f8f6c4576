// Package analyzer turns the raw activity log into duration-bounded,
// categorized sessions and computes the windowed aggregates behind every
// report. The whole derived state is recomputed from the full log on each
// pass; nothing here reads a live clock.
package analyzer

import (
	"time"

	"github.com/siddhi-bansal/focus-flow/internal/classify"
)

// Sample is one raw row from the activity log: an application became active
// at a point in time. Samples are append-only and never mutated.
type Sample struct {
	Timestamp time.Time
	RawTitle  string
}

// Session is a contiguous interval during which one raw title was active,
// bounded by the next observed title change or the injected "now".
type Session struct {
	Start           time.Time
	RawTitle        string
	BaseApp         string
	DisplayTitle    string
	DurationSeconds int64
	Category        classify.Category
}

// Anomaly flags a data-integrity problem in the log: the sample at Index is
// followed by an earlier timestamp. The duration was clamped to zero and the
// negative gap preserved here.
type Anomaly struct {
	Index int
	Skew  time.Duration
}

// Summary aggregates tracked time by category over a look-back window.
type Summary struct {
	FocusSeconds          int64   `json:"focus_time"`
	DistractionSeconds    int64   `json:"distraction_time"`
	NeutralSeconds        int64   `json:"neutral_time"`
	TotalTracked          int64   `json:"total_tracked"`
	FocusPercentage       float64 `json:"focus_percentage"`
	DistractionPercentage float64 `json:"distraction_percentage"`
	SessionCount          int     `json:"session_count"`
}

// AppUsage is one row of the per-app breakdown.
type AppUsage struct {
	App     string `json:"app"`
	Seconds int64  `json:"seconds"`
}

// LogEntry is one row of the detailed activity log view.
type LogEntry struct {
	Time            time.Time         `json:"time"`
	DisplayTitle    string            `json:"display_title"`
	RawTitle        string            `json:"raw_title"`
	Category        classify.Category `json:"category"`
	DurationSeconds int64             `json:"duration_seconds"`
}

// TimelineBucket sums tracked seconds per category within one hour.
type TimelineBucket struct {
	Hour        time.Time `json:"hour"`
	Focus       int64     `json:"focus"`
	Distraction int64     `json:"distraction"`
	Neutral     int64     `json:"neutral"`
}
