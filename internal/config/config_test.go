package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amonks/devflow/internal/config"
	"github.com/amonks/devflow/internal/testsupport"
)

func writeGlobal(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "devflow")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}
}

func writeProject(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Suggest.LearningURL != "" || cfg.Suggest.PlannerURL != "" {
		t.Error("expected empty suggestion endpoints")
	}
	if !cfg.Pomodoro.NotifyEnabled() {
		t.Error("expected notifications on by default")
	}
	timeout, err := cfg.Suggest.TimeoutDuration(5 * time.Second)
	if err != nil || timeout != 5*time.Second {
		t.Errorf("expected fallback timeout, got %v %v", timeout, err)
	}
}

func TestLoad_Full(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeProject(t, tmpDir, `
[suggest]
learning-url = "https://learn.example.com/api/chat/v3"
planner-url = "https://plan.example.com/api/chat/v4"
timeout = "10s"

[suggest.headers]
ngrok-skip-browser-warning = "1"

[pomodoro]
notify = false

[ui]
theme = "dark"

[log]
level = "debug"
file = "/tmp/devflow.log"
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Suggest.LearningURL != "https://learn.example.com/api/chat/v3" {
		t.Errorf("unexpected learning url %q", cfg.Suggest.LearningURL)
	}
	if cfg.Suggest.PlannerURL != "https://plan.example.com/api/chat/v4" {
		t.Errorf("unexpected planner url %q", cfg.Suggest.PlannerURL)
	}
	if d, err := cfg.Suggest.TimeoutDuration(time.Second); err != nil || d != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v %v", d, err)
	}
	if cfg.Suggest.Headers["ngrok-skip-browser-warning"] != "1" {
		t.Errorf("unexpected headers %v", cfg.Suggest.Headers)
	}
	if cfg.Pomodoro.NotifyEnabled() {
		t.Error("expected notifications off")
	}
	if cfg.UI.Theme != "dark" || cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/devflow.log" {
		t.Errorf("unexpected ui/log config: %+v %+v", cfg.UI, cfg.Log)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeGlobal(t, home, `
[suggest]
learning-url = "https://global.example.com/learn"
planner-url = "https://global.example.com/plan"

[suggest.headers]
X-Global = "g"
X-Shared = "global"

[pomodoro]
notify = false

[ui]
theme = "dark"
`)
	writeProject(t, tmpDir, `
[suggest]
planner-url = ""

[suggest.headers]
X-Shared = "project"

[ui]
theme = "light"
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Suggest.LearningURL != "https://global.example.com/learn" {
		t.Errorf("expected global learning url, got %q", cfg.Suggest.LearningURL)
	}
	if cfg.Suggest.PlannerURL != "" {
		t.Errorf("expected project to clear planner url, got %q", cfg.Suggest.PlannerURL)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("expected project theme, got %q", cfg.UI.Theme)
	}
	if cfg.Pomodoro.NotifyEnabled() {
		t.Error("expected global notify=false to apply")
	}
	if cfg.Suggest.Headers["X-Global"] != "g" || cfg.Suggest.Headers["X-Shared"] != "project" {
		t.Errorf("unexpected merged headers %v", cfg.Suggest.Headers)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "syntax", content: "[suggest\n", want: "parse config file"},
		{name: "unknown key", content: "[suggest]\nendpoint = \"x\"\n", want: "unknown keys"},
		{name: "theme", content: "[ui]\ntheme = \"sepia\"\n", want: "ui.theme"},
		{name: "timeout", content: "[suggest]\ntimeout = \"soon\"\n", want: "suggest.timeout"},
		{name: "negative timeout", content: "[suggest]\ntimeout = \"-1s\"\n", want: "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testsupport.SetupTestHome(t)
			tmpDir := t.TempDir()
			writeProject(t, tmpDir, tt.content)

			_, err := config.Load(tmpDir)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
