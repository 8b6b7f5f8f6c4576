package analyzer

import (
	"time"

	"github.com/siddhi-bansal/focus-flow/internal/normalize"
)

// BuildSessions converts an ordered sample sequence into sessions. Exactly
// one session is produced per sample: each session lasts until the next
// sample's timestamp, and the final one until now. Durations are floored to
// whole seconds.
//
// Out-of-order timestamps are clamped to a zero duration and reported as
// anomalies rather than silently dropped, so callers can surface the
// data-integrity problem.
func BuildSessions(samples []Sample, now time.Time) ([]Session, []Anomaly) {
	if len(samples) == 0 {
		return nil, nil
	}

	sessions := make([]Session, 0, len(samples))
	var anomalies []Anomaly

	for i, sample := range samples {
		var gap time.Duration
		if i < len(samples)-1 {
			gap = samples[i+1].Timestamp.Sub(sample.Timestamp)
		} else {
			gap = now.Sub(sample.Timestamp)
		}
		if gap < 0 {
			anomalies = append(anomalies, Anomaly{Index: i, Skew: gap})
			gap = 0
		}

		base := normalize.BaseApp(sample.RawTitle)
		sessions = append(sessions, Session{
			Start:           sample.Timestamp,
			RawTitle:        sample.RawTitle,
			BaseApp:         base,
			DisplayTitle:    normalize.DisplayTitle(sample.RawTitle, base),
			DurationSeconds: int64(gap / time.Second),
		})
	}

	return sessions, anomalies
}
