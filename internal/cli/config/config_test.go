package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lcsubmit/internal/testutil"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	testutil.AssertEqual(t, cfg.Submit.Backend, BackendCommand)
	testutil.AssertEqual(t, cfg.Submit.Command, DefaultCommand)
	testutil.AssertEqual(t, cfg.Submit.BaseURL, DefaultBaseURL)
	testutil.AssertEqual(t, cfg.Submit.Timeout, DefaultTimeout)
	testutil.AssertEqual(t, filepath.Base(cfg.Submit.StatePath), "state.json")
	testutil.AssertEqual(t, cfg.Log.Level, DefaultLogLevel)
	testutil.AssertEqual(t, cfg.Log.Format, DefaultLogFormat)
	testutil.AssertEqual(t, cfg.Log.OutputPath, DefaultLogOutput)
	testutil.AssertEqual(t, cfg.CodeFile(), "")
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", `
filePath:
  default:
    codefile: "  /tmp/lc/code.cpp  "
submit:
  backend: http
  baseURL: http://judge.local:9000
  timeout: 45s
  statePath: /tmp/lc/state.json
result:
  language: golang
log:
  level: debug
  format: json
  output: /tmp/lc/lcsubmit.log
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	testutil.AssertEqual(t, cfg.CodeFile(), "/tmp/lc/code.cpp")
	testutil.AssertEqual(t, cfg.Submit.Backend, BackendHTTP)
	testutil.AssertEqual(t, cfg.Submit.BaseURL, "http://judge.local:9000")
	testutil.AssertEqual(t, cfg.Submit.Timeout, 45*time.Second)
	testutil.AssertEqual(t, cfg.Submit.StatePath, "/tmp/lc/state.json")
	testutil.AssertEqual(t, cfg.Submit.Command, DefaultCommand)
	testutil.AssertEqual(t, cfg.Result.Language, "golang")
	testutil.AssertEqual(t, cfg.Log.Level, "debug")
	testutil.AssertEqual(t, cfg.Log.Format, "json")
	testutil.AssertEqual(t, cfg.Log.OutputPath, "/tmp/lc/lcsubmit.log")
}

func TestLoadExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "filePath:\n  default:\n    codefile: ~/lc/code.cpp\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	testutil.AssertEqual(t, cfg.CodeFile(), filepath.Join(home, "lc", "code.cpp"))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown backend", "submit:\n  backend: carrier-pigeon\n", "unknown submit backend"},
		{"negative timeout", "submit:\n  timeout: -1s\n", "must not be negative"},
		{"malformed yaml", "submit: [\n", "parse config file failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), "config.yaml", tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			testutil.AssertTrue(t, strings.Contains(err.Error(), tt.wantErr), err.Error())
		})
	}
}

func TestDefaultPath(t *testing.T) {
	testutil.AssertEqual(t, filepath.Base(DefaultPath()), "config.yaml")
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.FilePath.Default.CodeFile = "/tmp/lc/code.cpp"
	cfg.Submit.Timeout = 90 * time.Second
	cfg.Result.Language = "python3"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	testutil.AssertEqual(t, got.CodeFile(), "/tmp/lc/code.cpp")
	testutil.AssertEqual(t, got.Submit.Timeout, 90*time.Second)
	testutil.AssertEqual(t, got.Result.Language, "python3")
	testutil.AssertEqual(t, got.Submit.Backend, BackendCommand)
	testutil.AssertTrue(t, strings.Contains(testutil.ReadFile(t, path), "codefile: /tmp/lc/code.cpp"), "yaml keys follow the settings names")
}
