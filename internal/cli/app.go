package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/siddhi-bansal/focus-flow/internal/analyzer"
	"github.com/siddhi-bansal/focus-flow/internal/classify"
	"github.com/siddhi-bansal/focus-flow/internal/config"
	"github.com/siddhi-bansal/focus-flow/internal/database"
	"github.com/siddhi-bansal/focus-flow/internal/metrics"
	"github.com/siddhi-bansal/focus-flow/internal/storage"
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config      config.Config
	Log         *storage.ActivityLog
	DB          *sql.DB
	CacheRepo   classify.CacheRepository
	Resolver    *classify.Resolver
	Categorizer analyzer.Categorizer
	Metrics     *metrics.Exporter
}

// NewAppContext creates an AppContext with all dependencies initialized.
// The remote classifier is only wired when OPENAI_API_KEY is set; without it
// classification degrades to the local rule table.
func NewAppContext(ctx context.Context) (*AppContext, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.NewLocal(cfg.CacheDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open classification cache: %w", err)
	}

	repo, err := classify.NewSQLCacheRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize classification cache: %w", err)
	}

	var remote classify.RemoteClassifier
	if key := config.APIKey(); key != "" {
		client := openai.NewClient(option.WithAPIKey(key))
		remote = classify.NewOpenAIClassifier(&client, cfg.OpenAI.Model,
			time.Duration(cfg.OpenAI.TimeoutSeconds)*time.Second)
	}

	var exporter *metrics.Exporter
	if cfg.OTel.Endpoint != "" {
		exporter, err = metrics.NewExporter(ctx, metrics.Config{
			Endpoint: cfg.OTel.Endpoint,
			Insecure: cfg.OTel.Insecure,
		})
		if err != nil {
			// Metrics are best-effort; keep working without them.
			slog.Warn("metrics exporter disabled", "error", err)
			exporter = nil
		}
	}

	var obs classify.Observer
	if exporter != nil {
		obs = exporter
	}

	sets := classify.NewAppSets(cfg.FocusApps, cfg.DistractionApps)

	return &AppContext{
		Config:      cfg,
		Log:         storage.NewActivityLog(cfg.ActivityLog),
		DB:          db,
		CacheRepo:   repo,
		Resolver:    classify.NewResolver(repo, remote, classify.DefaultRules(), obs),
		Categorizer: classify.NewCachedCategorizer(sets, repo),
		Metrics:     exporter,
	}, nil
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = a.Metrics.Close(ctx)
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
