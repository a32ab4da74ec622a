package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"meetingaudio/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("MEETINGAUDIO_MEETINGS_DIR", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "meetingaudio", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if want := filepath.Join(tempHome, "meetings"); cfg.Paths.MeetingsDir != want {
		t.Fatalf("unexpected meetings dir: got %q want %q", cfg.Paths.MeetingsDir, want)
	}
	if cfg.Paths.LogDir != "" {
		t.Fatalf("expected file logging disabled by default, got %q", cfg.Paths.LogDir)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Scan.Workers != config.Default().Scan.Workers {
		t.Fatalf("unexpected workers: %d", cfg.Scan.Workers)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "meetingaudio.toml")

	type payload struct {
		Paths struct {
			MeetingsDir string `toml:"meetings_dir"`
			LogDir      string `toml:"log_dir"`
		} `toml:"paths"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
		Scan struct {
			Workers int `toml:"workers"`
		} `toml:"scan"`
	}
	custom := payload{}
	custom.Paths.MeetingsDir = filepath.Join(tempDir, "calls")
	custom.Paths.LogDir = filepath.Join(tempDir, "logs")
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"
	custom.Scan.Workers = 8

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom config to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Paths.MeetingsDir != custom.Paths.MeetingsDir {
		t.Fatalf("unexpected meetings dir: %q", cfg.Paths.MeetingsDir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging settings, got %+v", cfg.Logging)
	}
	if cfg.Scan.Workers != 8 {
		t.Fatalf("unexpected workers: %d", cfg.Scan.Workers)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.LogDir); err != nil || !info.IsDir() {
		t.Fatalf("expected log dir to exist: %v", err)
	}
	if _, err := os.Stat(cfg.Paths.MeetingsDir); !os.IsNotExist(err) {
		t.Fatalf("meetings dir must not be created, stat err=%v", err)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())
	t.Setenv("MEETINGAUDIO_MEETINGS_DIR", "~/calls")
	t.Setenv("MEETINGAUDIO_LOG_LEVEL", "debug")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(tempHome, "calls"); cfg.Paths.MeetingsDir != want {
		t.Fatalf("unexpected meetings dir: got %q want %q", cfg.Paths.MeetingsDir, want)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected level: %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"workers", "[scan]\nworkers = 500\n", "scan.workers"},
		{"unknown key", "[paths]\nextensions = [\"flac\"]\n", "parse config"},
		{"syntax", "[paths\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(path, false); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if want := filepath.Join(tempHome, "meetings"); cfg.Paths.MeetingsDir != want {
		t.Fatalf("unexpected meetings dir: %q", cfg.Paths.MeetingsDir)
	}
}

func TestCreateSampleKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("# mine\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	err := config.CreateSample(path, false)
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("expected fs.ErrExist, got %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != "# mine\n" {
		t.Fatalf("existing config was modified: %q", data)
	}

	if err := config.CreateSample(path, true); err != nil {
		t.Fatalf("CreateSample with overwrite failed: %v", err)
	}
	if data, _ := os.ReadFile(path); !strings.Contains(string(data), "[paths]") {
		t.Fatalf("expected sample content, got %q", data)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.ExpandPath("~/a/../b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "b"); got != want {
		t.Fatalf("unexpected expansion: got %q want %q", got, want)
	}
}
