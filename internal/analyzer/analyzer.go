package analyzer

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/siddhi-bansal/focus-flow/internal/classify"
)

// Categorizer assigns a category to one session. Implementations must not
// block on network calls; aggregation passes stay offline.
type Categorizer interface {
	Categorize(ctx context.Context, baseApp, displayTitle string) classify.Category
}

// Analyzer holds the categorized session set for one analysis pass. The
// same "now" used to build it must be passed to every query of the pass so
// all metrics computed together agree on the open session's duration.
type Analyzer struct {
	sessions  []Session
	anomalies []Anomaly
}

// New builds and categorizes sessions from raw samples. An empty log yields
// an analyzer whose queries all report zero values.
func New(ctx context.Context, samples []Sample, cat Categorizer, now time.Time) *Analyzer {
	sessions, anomalies := BuildSessions(samples, now)
	for i := range sessions {
		sessions[i].Category = cat.Categorize(ctx, sessions[i].BaseApp, sessions[i].DisplayTitle)
	}
	return &Analyzer{sessions: sessions, anomalies: anomalies}
}

func (a *Analyzer) Sessions() []Session  { return a.sessions }
func (a *Analyzer) Anomalies() []Anomaly { return a.anomalies }

func cutoff(hours int, now time.Time) time.Time {
	return now.Add(-time.Duration(hours) * time.Hour)
}

// inWindow keeps a session whose start is at or after the cutoff.
func inWindow(s Session, cut time.Time) bool {
	return !s.Start.Before(cut)
}

// Summary sums tracked time by category over the window.
func (a *Analyzer) Summary(hours int, now time.Time) Summary {
	cut := cutoff(hours, now)
	var sum Summary
	for _, s := range a.sessions {
		if !inWindow(s, cut) {
			continue
		}
		sum.SessionCount++
		switch s.Category {
		case classify.CategoryFocus:
			sum.FocusSeconds += s.DurationSeconds
		case classify.CategoryDistraction:
			sum.DistractionSeconds += s.DurationSeconds
		default:
			sum.NeutralSeconds += s.DurationSeconds
		}
	}
	sum.TotalTracked = sum.FocusSeconds + sum.DistractionSeconds + sum.NeutralSeconds
	if sum.TotalTracked > 0 {
		sum.FocusPercentage = round1(float64(sum.FocusSeconds) / float64(sum.TotalTracked) * 100)
		sum.DistractionPercentage = round1(float64(sum.DistractionSeconds) / float64(sum.TotalTracked) * 100)
	}
	return sum
}

// AppBreakdown sums tracked time per base app, descending by duration with
// ties broken by first-seen order.
func (a *Analyzer) AppBreakdown(hours int, now time.Time) []AppUsage {
	cut := cutoff(hours, now)
	totals := make(map[string]int64)
	var order []string
	for _, s := range a.sessions {
		if !inWindow(s, cut) {
			continue
		}
		if _, seen := totals[s.BaseApp]; !seen {
			order = append(order, s.BaseApp)
		}
		totals[s.BaseApp] += s.DurationSeconds
	}

	usage := make([]AppUsage, 0, len(order))
	for _, app := range order {
		usage = append(usage, AppUsage{App: app, Seconds: totals[app]})
	}
	sort.SliceStable(usage, func(i, j int) bool {
		return usage[i].Seconds > usage[j].Seconds
	})
	return usage
}

// FocusScore is focus time over total tracked time as a 0-100 score with one
// decimal place; 0.0 when nothing was tracked.
func (a *Analyzer) FocusScore(hours int, now time.Time) float64 {
	sum := a.Summary(hours, now)
	if sum.TotalTracked == 0 {
		return 0.0
	}
	return round1(float64(sum.FocusSeconds) / float64(sum.TotalTracked) * 100)
}

// ActivityLog lists the windowed sessions most recent first.
func (a *Analyzer) ActivityLog(hours int, now time.Time) []LogEntry {
	cut := cutoff(hours, now)
	var entries []LogEntry
	for i := len(a.sessions) - 1; i >= 0; i-- {
		s := a.sessions[i]
		if !inWindow(s, cut) {
			continue
		}
		entries = append(entries, LogEntry{
			Time:            s.Start,
			DisplayTitle:    s.DisplayTitle,
			RawTitle:        s.RawTitle,
			Category:        s.Category,
			DurationSeconds: s.DurationSeconds,
		})
	}
	return entries
}

// Timeline sums tracked seconds per (hour bucket, category), hour buckets
// floored to the hour, ascending.
func (a *Analyzer) Timeline(hours int, now time.Time) []TimelineBucket {
	cut := cutoff(hours, now)
	buckets := make(map[time.Time]*TimelineBucket)
	for _, s := range a.sessions {
		if !inWindow(s, cut) {
			continue
		}
		hour := s.Start.Truncate(time.Hour)
		b, ok := buckets[hour]
		if !ok {
			b = &TimelineBucket{Hour: hour}
			buckets[hour] = b
		}
		switch s.Category {
		case classify.CategoryFocus:
			b.Focus += s.DurationSeconds
		case classify.CategoryDistraction:
			b.Distraction += s.DurationSeconds
		default:
			b.Neutral += s.DurationSeconds
		}
	}

	out := make([]TimelineBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour.Before(out[j].Hour) })
	return out
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
