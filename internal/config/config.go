// Package config loads the focusflow configuration file. Every field has a
// working default so a missing file just means the stock setup.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Score holds the focus-score rating thresholds.
type Score struct {
	Excellent float64 `yaml:"excellent"`
	Good      float64 `yaml:"good"`
	Low       float64 `yaml:"low"`
}

// OpenAI configures the remote classifier. The API key comes from the
// OPENAI_API_KEY environment variable only, never the file.
type OpenAI struct {
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// OTel configures the optional metrics exporter. An empty endpoint disables
// it.
type OTel struct {
	Endpoint string `yaml:"endpoint"`
	Insecure bool   `yaml:"insecure"`
}

type Config struct {
	DataDir     string `yaml:"data_dir"`
	ActivityLog string `yaml:"activity_log"`
	CacheDB     string `yaml:"cache_db"`

	FocusApps       []string `yaml:"focus_apps"`
	DistractionApps []string `yaml:"distraction_apps"`

	DefaultRangeHours      int     `yaml:"default_range_hours"`
	AvailableRanges        []int   `yaml:"available_ranges"`
	Score                  Score   `yaml:"score"`
	TopAppsLimit           int     `yaml:"top_apps_limit"`
	HighDistractionPercent float64 `yaml:"high_distraction_percent"`

	OpenAI OpenAI `yaml:"openai"`
	OTel   OTel   `yaml:"otel"`
}

// Default is the stock configuration, app sets included.
func Default() Config {
	return Config{
		DataDir: "data",
		FocusApps: []string{
			"VSCode", "PyCharm", "Xcode", "Sublime Text", "IntelliJ IDEA",
			"Notion", "Obsidian", "Microsoft Word", "Pages", "Google Docs",
			"Gmail", "Slack", "Zoom", "Microsoft Teams",
			"Terminal", "iTerm2", "iTerm",
			"Google Chrome", "Safari", "Firefox",
		},
		DistractionApps: []string{
			"YouTube", "Netflix", "Prime Video", "TikTok", "Twitch",
			"Twitter", "X", "Reddit", "Instagram", "Facebook",
			"Discord", "Telegram", "WhatsApp", "Messages",
			"Steam", "Epic Games", "App Store",
			"Spotify", "Apple Music",
		},
		DefaultRangeHours:      24,
		AvailableRanges:        []int{6, 12, 24, 168},
		Score:                  Score{Excellent: 75, Good: 50, Low: 30},
		TopAppsLimit:           10,
		HighDistractionPercent: 30,
		OpenAI:                 OpenAI{Model: "gpt-4o-mini", TimeoutSeconds: 30},
	}
}

// Load reads the config file over the defaults. A missing file yields the
// defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if cfg.ActivityLog == "" {
		cfg.ActivityLog = filepath.Join(cfg.DataDir, "activity_log.csv")
	}
	if cfg.CacheDB == "" {
		cfg.CacheDB = filepath.Join(cfg.DataDir, "classification_cache.db")
	}
	if cfg.DefaultRangeHours <= 0 {
		cfg.DefaultRangeHours = 24
	}
	if cfg.TopAppsLimit <= 0 {
		cfg.TopAppsLimit = 10
	}
	if cfg.OpenAI.TimeoutSeconds <= 0 {
		cfg.OpenAI.TimeoutSeconds = 30
	}
	return cfg, nil
}

// APIKey returns the OpenAI credential, empty when remote classification is
// unavailable.
func APIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}
