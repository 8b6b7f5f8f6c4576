package analyzer

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func TestBuildSessions_Empty(t *testing.T) {
	sessions, anomalies := BuildSessions(nil, t0)
	if len(sessions) != 0 || len(anomalies) != 0 {
		t.Fatalf("expected empty result, got %d sessions, %d anomalies", len(sessions), len(anomalies))
	}
}

func TestBuildSessions_OneSessionPerSample(t *testing.T) {
	samples := []Sample{
		{Timestamp: t0, RawTitle: "VSCode"},
		{Timestamp: t0.Add(300 * time.Second), RawTitle: "YouTube"},
		{Timestamp: t0.Add(600 * time.Second), RawTitle: "VSCode"},
	}
	now := t0.Add(900 * time.Second)

	sessions, anomalies := BuildSessions(samples, now)
	if len(sessions) != len(samples) {
		t.Fatalf("expected %d sessions, got %d", len(samples), len(sessions))
	}
	if len(anomalies) != 0 {
		t.Fatalf("unexpected anomalies: %+v", anomalies)
	}
	for i, s := range sessions {
		if s.DurationSeconds != 300 {
			t.Errorf("session %d duration = %d, want 300", i, s.DurationSeconds)
		}
	}
}

func TestBuildSessions_DurationsCoverTrackedRange(t *testing.T) {
	samples := []Sample{
		{Timestamp: t0, RawTitle: "VSCode"},
		{Timestamp: t0.Add(17*time.Second + 400*time.Millisecond), RawTitle: "Slack"},
		{Timestamp: t0.Add(93*time.Second + 900*time.Millisecond), RawTitle: "Terminal"},
	}
	now := t0.Add(200 * time.Second)

	sessions, _ := BuildSessions(samples, now)
	var total int64
	for _, s := range sessions {
		total += s.DurationSeconds
	}
	want := int64(now.Sub(t0) / time.Second)
	// Flooring each gap loses less than one second per session.
	if total > want || total < want-int64(len(samples)) {
		t.Errorf("total duration %d outside [%d, %d]", total, want-int64(len(samples)), want)
	}
}

func TestBuildSessions_FinalSessionTracksNow(t *testing.T) {
	samples := []Sample{{Timestamp: t0, RawTitle: "VSCode"}}

	early, _ := BuildSessions(samples, t0.Add(10*time.Second))
	late, _ := BuildSessions(samples, t0.Add(60*time.Second))

	if early[0].DurationSeconds != 10 {
		t.Errorf("expected 10s, got %d", early[0].DurationSeconds)
	}
	if late[0].DurationSeconds != 60 {
		t.Errorf("expected 60s, got %d", late[0].DurationSeconds)
	}
}

func TestBuildSessions_OutOfOrderClampedAndFlagged(t *testing.T) {
	samples := []Sample{
		{Timestamp: t0.Add(100 * time.Second), RawTitle: "VSCode"},
		{Timestamp: t0, RawTitle: "Slack"},
	}
	now := t0.Add(300 * time.Second)

	sessions, anomalies := BuildSessions(samples, now)
	if sessions[0].DurationSeconds != 0 {
		t.Errorf("expected clamped duration 0, got %d", sessions[0].DurationSeconds)
	}
	if len(anomalies) != 1 {
		t.Fatalf("expected 1 anomaly, got %d", len(anomalies))
	}
	if anomalies[0].Index != 0 || anomalies[0].Skew >= 0 {
		t.Errorf("unexpected anomaly %+v", anomalies[0])
	}
}

func TestBuildSessions_NormalizesTitles(t *testing.T) {
	samples := []Sample{{Timestamp: t0, RawTitle: "Google Chrome: FocusPulse"}}
	sessions, _ := BuildSessions(samples, t0.Add(time.Minute))

	if sessions[0].BaseApp != "Google Chrome" {
		t.Errorf("base app = %q, want Google Chrome", sessions[0].BaseApp)
	}
	if sessions[0].DisplayTitle != "Chrome — FocusPulse" {
		t.Errorf("display title = %q", sessions[0].DisplayTitle)
	}
}
