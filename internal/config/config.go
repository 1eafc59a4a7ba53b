// Package config handles loading devflow.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the project-level configuration file name.
const FileName = "devflow.toml"

// Config represents the devflow.toml configuration file.
type Config struct {
	Suggest  Suggest  `toml:"suggest"`
	Pomodoro Pomodoro `toml:"pomodoro"`
	UI       UI       `toml:"ui"`
	Log      Log      `toml:"log"`
}

// Suggest configures the remote suggestion services.
type Suggest struct {
	// LearningURL is the learning-recommendation endpoint. The question is
	// sent as a query parameter.
	LearningURL string `toml:"learning-url"`

	// PlannerURL is the endpoint that receives the task list.
	PlannerURL string `toml:"planner-url"`

	// Timeout bounds each request, e.g. "30s".
	Timeout string `toml:"timeout"`

	// Headers are added to every suggestion request.
	Headers map[string]string `toml:"headers"`
}

// Pomodoro configures the focus timer.
type Pomodoro struct {
	// Notify rings the terminal bell when a session completes.
	Notify *bool `toml:"notify"`
}

// UI configures the presentation layer.
type UI struct {
	// Theme is "light" or "dark".
	Theme string `toml:"theme"`
}

// Log configures diagnostic logging.
type Log struct {
	// Level is a zap level name such as "debug" or "warn".
	Level string `toml:"level"`

	// File, when set, receives JSON logs with size-based rotation.
	File string `toml:"file"`
}

// TimeoutDuration parses Timeout. An empty value yields fallback.
func (s Suggest) TimeoutDuration(fallback time.Duration) (time.Duration, error) {
	if s.Timeout == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parse suggest.timeout %q: %w", s.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("suggest.timeout must be positive, got %q", s.Timeout)
	}
	return d, nil
}

// NotifyEnabled reports whether completion notifications are on. The
// default is on.
func (p Pomodoro) NotifyEnabled() bool {
	return p.Notify == nil || *p.Notify
}

// Load loads configuration from the project directory and the global
// config file. Returns an empty config if no config files exist.
func Load(projectDir string) (*Config, error) {
	globalPath, err := GlobalPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(projectDir, FileName))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if err := validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// GlobalPath returns the path of the per-user config file.
func GlobalPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "devflow", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, toml.MetaData{}, fmt.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Suggest.LearningURL = mergeString(projectMeta.IsDefined("suggest", "learning-url"), projectCfg.Suggest.LearningURL, globalCfg.Suggest.LearningURL)
	merged.Suggest.PlannerURL = mergeString(projectMeta.IsDefined("suggest", "planner-url"), projectCfg.Suggest.PlannerURL, globalCfg.Suggest.PlannerURL)
	merged.Suggest.Timeout = mergeString(projectMeta.IsDefined("suggest", "timeout"), projectCfg.Suggest.Timeout, globalCfg.Suggest.Timeout)
	merged.UI.Theme = mergeString(projectMeta.IsDefined("ui", "theme"), projectCfg.UI.Theme, globalCfg.UI.Theme)
	merged.Log.Level = mergeString(projectMeta.IsDefined("log", "level"), projectCfg.Log.Level, globalCfg.Log.Level)
	merged.Log.File = mergeString(projectMeta.IsDefined("log", "file"), projectCfg.Log.File, globalCfg.Log.File)

	if projectMeta.IsDefined("pomodoro", "notify") {
		merged.Pomodoro.Notify = projectCfg.Pomodoro.Notify
	} else if globalMeta.IsDefined("pomodoro", "notify") {
		merged.Pomodoro.Notify = globalCfg.Pomodoro.Notify
	}

	// Header tables merge key by key; project values win.
	if len(globalCfg.Suggest.Headers) > 0 || len(projectCfg.Suggest.Headers) > 0 {
		merged.Suggest.Headers = make(map[string]string)
		for k, v := range globalCfg.Suggest.Headers {
			merged.Suggest.Headers[k] = v
		}
		for k, v := range projectCfg.Suggest.Headers {
			merged.Suggest.Headers[k] = v
		}
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func validate(cfg *Config) error {
	switch cfg.UI.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("ui.theme must be \"light\" or \"dark\", got %q", cfg.UI.Theme)
	}
	if _, err := cfg.Suggest.TimeoutDuration(time.Second); err != nil {
		return err
	}
	return nil
}
