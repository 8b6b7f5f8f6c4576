package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultRangeHours != 24 {
		t.Errorf("default range = %d, want 24", cfg.DefaultRangeHours)
	}
	if cfg.ActivityLog != filepath.Join("data", "activity_log.csv") {
		t.Errorf("activity log path = %q", cfg.ActivityLog)
	}
	if len(cfg.FocusApps) == 0 || len(cfg.DistractionApps) == 0 {
		t.Error("expected stock app sets")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data_dir: /tmp/ff
focus_apps: [Emacs]
score:
  excellent: 80
  good: 60
  low: 40
openai:
  model: gpt-4o
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.FocusApps) != 1 || cfg.FocusApps[0] != "Emacs" {
		t.Errorf("focus apps = %v", cfg.FocusApps)
	}
	if cfg.Score.Excellent != 80 {
		t.Errorf("excellent = %v, want 80", cfg.Score.Excellent)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.OpenAI.Model)
	}
	if cfg.ActivityLog != filepath.Join("/tmp/ff", "activity_log.csv") {
		t.Errorf("activity log path = %q", cfg.ActivityLog)
	}
	// Timeout keeps its default when the file omits it.
	if cfg.OpenAI.TimeoutSeconds != 30 {
		t.Errorf("timeout = %d, want 30", cfg.OpenAI.TimeoutSeconds)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("::: not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
