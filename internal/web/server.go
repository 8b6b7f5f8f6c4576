// Package web serves the dashboard JSON API. Every request recomputes the
// analysis from the full activity log with a single "now" per request, so
// all metrics in one response agree.
package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/siddhi-bansal/focus-flow/internal/analyzer"
	"github.com/siddhi-bansal/focus-flow/internal/classify"
	"github.com/siddhi-bansal/focus-flow/internal/config"
)

// SampleSource loads the activity log.
type SampleSource interface {
	ReadAll() ([]analyzer.Sample, error)
}

// Classifier is the slice of the resolver the API needs.
type Classifier interface {
	Resolve(ctx context.Context, title string, force bool) (classify.Record, error)
	SaveOverride(ctx context.Context, title, category string, confidence float64, rationale string) (classify.Record, error)
	RevertOverride(ctx context.Context, title string) error
}

type Server struct {
	router      *http.ServeMux
	port        int
	cfg         config.Config
	samples     SampleSource
	categorizer analyzer.Categorizer
	classifier  Classifier

	// now is swapped in tests.
	now func() time.Time
}

func NewServer(port int, cfg config.Config, samples SampleSource, cat analyzer.Categorizer, cls Classifier) *Server {
	s := &Server{
		router:      http.NewServeMux(),
		port:        port,
		cfg:         cfg,
		samples:     samples,
		categorizer: cat,
		classifier:  cls,
		now:         time.Now,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.HandleFunc("GET /api/summary", s.handleSummary)
	s.router.HandleFunc("GET /api/score", s.handleScore)
	s.router.HandleFunc("GET /api/apps", s.handleApps)
	s.router.HandleFunc("GET /api/timeline", s.handleTimeline)
	s.router.HandleFunc("GET /api/log", s.handleLog)
	s.router.HandleFunc("GET /api/insights", s.handleInsights)

	s.router.HandleFunc("GET /api/classify", s.handleClassify)
	s.router.HandleFunc("POST /api/override", s.handleSaveOverride)
	s.router.HandleFunc("DELETE /api/override", s.handleRevertOverride)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	fmt.Printf("Starting server at http://localhost:%d\n", s.port)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Server shutdown error: %v\n", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
