package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/siddhi-bansal/focus-flow/internal/analyzer"
	"github.com/siddhi-bansal/focus-flow/internal/classify"
)

// loadAnalyzer builds one analysis pass and returns the "now" it was built
// with; callers thread that same instant into every query they make.
func (s *Server) loadAnalyzer(r *http.Request) (*analyzer.Analyzer, time.Time, error) {
	samples, err := s.samples.ReadAll()
	if err != nil {
		return nil, time.Time{}, err
	}
	now := s.now()
	a := analyzer.New(r.Context(), samples, s.categorizer, now)
	if n := len(a.Anomalies()); n > 0 {
		slog.Warn("activity log has out-of-order timestamps", "count", n)
	}
	return a, now, nil
}

func (s *Server) hours(r *http.Request) int {
	if v := r.URL.Query().Get("hours"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			return h
		}
	}
	return s.cfg.DefaultRangeHours
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	a, now, err := s.loadAnalyzer(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, a.Summary(s.hours(r), now))
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	a, now, err := s.loadAnalyzer(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	score := a.FocusScore(s.hours(r), now)
	writeJSON(w, map[string]any{
		"score":  score,
		"rating": analyzer.RateScore(score, s.thresholds()),
	})
}

func (s *Server) handleApps(w http.ResponseWriter, r *http.Request) {
	a, now, err := s.loadAnalyzer(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	usage := a.AppBreakdown(s.hours(r), now)

	limit := s.cfg.TopAppsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if len(usage) > limit {
		usage = usage[:limit]
	}
	writeJSON(w, usage)
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	a, now, err := s.loadAnalyzer(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, a.Timeline(s.hours(r), now))
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	a, now, err := s.loadAnalyzer(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, a.ActivityLog(s.hours(r), now))
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	a, now, err := s.loadAnalyzer(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	hours := s.hours(r)
	sum := a.Summary(hours, now)
	score := a.FocusScore(hours, now)
	writeJSON(w, map[string]any{
		"score":            score,
		"rating":           analyzer.RateScore(score, s.thresholds()),
		"high_distraction": analyzer.HighDistraction(sum, s.cfg.HighDistractionPercent),
		"summary":          sum,
		"available_ranges": s.cfg.AvailableRanges,
	})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		http.Error(w, "missing title parameter", http.StatusBadRequest)
		return
	}
	force := r.URL.Query().Get("force") == "true"

	rec, err := s.classifier.Resolve(r.Context(), title, force)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, rec)
}

type overrideRequest struct {
	Title      string  `json:"title"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

func (s *Server) handleSaveOverride(w http.ResponseWriter, r *http.Request) {
	var req overrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "missing title", http.StatusBadRequest)
		return
	}
	if req.Confidence == 0 {
		req.Confidence = 100
	}

	rec, err := s.classifier.SaveOverride(r.Context(), req.Title, req.Category, req.Confidence, req.Rationale)
	if err != nil {
		if errors.Is(err, classify.ErrInvalidCategory) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, rec)
}

func (s *Server) handleRevertOverride(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		http.Error(w, "missing title parameter", http.StatusBadRequest)
		return
	}
	if err := s.classifier.RevertOverride(r.Context(), title); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) thresholds() analyzer.Thresholds {
	return analyzer.Thresholds{
		Excellent: s.cfg.Score.Excellent,
		Good:      s.cfg.Score.Good,
		Low:       s.cfg.Score.Low,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
