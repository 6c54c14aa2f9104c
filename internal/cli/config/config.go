package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lcsubmit/pkg/utils/logger"

	"gopkg.in/yaml.v3"
)

const (
	BackendCommand = "command"
	BackendHTTP    = "http"
)

const (
	DefaultBackend   = BackendCommand
	DefaultCommand   = "leetcode submit {file}"
	DefaultBaseURL   = "http://127.0.0.1:8080"
	DefaultTimeout   = 2 * time.Minute
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
	DefaultLogOutput = "stderr"
)

// Config holds CLI configuration.
type Config struct {
	FilePath FilePathConfig `yaml:"filePath"`
	Submit   SubmitConfig   `yaml:"submit"`
	Result   ResultConfig   `yaml:"result"`
	Log      logger.Config  `yaml:"log"`
}

// FilePathConfig mirrors the filePath.default.codefile setting.
type FilePathConfig struct {
	Default struct {
		CodeFile string `yaml:"codefile"`
	} `yaml:"default"`
}

// SubmitConfig selects and configures the submitter backend.
type SubmitConfig struct {
	Backend   string        `yaml:"backend"`
	Command   string        `yaml:"command"`
	BaseURL   string        `yaml:"baseURL"`
	Timeout   time.Duration `yaml:"timeout"`
	StatePath string        `yaml:"statePath"`
}

type ResultConfig struct {
	Language string `yaml:"language"`
}

// CodeFile returns the trimmed code file path.
func (c Config) CodeFile() string {
	return strings.TrimSpace(c.FilePath.Default.CodeFile)
}

// DefaultPath returns ~/.config/lcsubmit/config.yaml, or a relative path when
// the home directory is unknown.
func DefaultPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// Load reads the YAML config at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("read config file failed: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file failed: %w", err)
		}
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values that have no usable default.
func (c Config) Validate() error {
	switch c.Submit.Backend {
	case BackendCommand, BackendHTTP:
	default:
		return fmt.Errorf("unknown submit backend: %s (must be %s or %s)", c.Submit.Backend, BackendCommand, BackendHTTP)
	}
	if c.Submit.Timeout < 0 {
		return fmt.Errorf("submit timeout must not be negative")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Submit.Backend == "" {
		cfg.Submit.Backend = DefaultBackend
	}
	if strings.TrimSpace(cfg.Submit.Command) == "" {
		cfg.Submit.Command = DefaultCommand
	}
	if cfg.Submit.BaseURL == "" {
		cfg.Submit.BaseURL = DefaultBaseURL
	}
	if cfg.Submit.Timeout == 0 {
		cfg.Submit.Timeout = DefaultTimeout
	}
	if cfg.Submit.StatePath == "" {
		cfg.Submit.StatePath = filepath.Join(configDir(), "state.json")
	}
	cfg.Submit.StatePath = expandHome(cfg.Submit.StatePath)
	cfg.FilePath.Default.CodeFile = expandHome(strings.TrimSpace(cfg.FilePath.Default.CodeFile))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Log.OutputPath == "" {
		cfg.Log.OutputPath = DefaultLogOutput
	}
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".lcsubmit"
	}
	return filepath.Join(home, ".config", "lcsubmit")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

// Save writes cfg to path as YAML, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir failed: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file failed: %w", err)
	}
	return nil
}
