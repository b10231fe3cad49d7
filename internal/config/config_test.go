package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !reflect.DeepEqual(cfg.Triggers, []string{"/pickup", "/snapshot"}) {
		t.Errorf("Expected default triggers, got %v", cfg.Triggers)
	}
	if cfg.MaxSessions != 0 {
		t.Errorf("Expected unlimited sessions, got %d", cfg.MaxSessions)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn', got '%s'", cfg.LogLevel)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	root := t.TempDir()

	writeFile(t, filepath.Join(home, ".session-context.yaml"), "max_sessions: 3\nlog_level: info\n")
	writeFile(t, ProjectConfigPath(root), "max_sessions: 5\ntriggers:\n  - /resume\n")

	cfg, err := Load(root, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxSessions != 5 {
		t.Errorf("MaxSessions = %d, want 5", cfg.MaxSessions)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if !reflect.DeepEqual(cfg.Triggers, []string{"/resume"}) {
		t.Errorf("Triggers = %v, want [/resume]", cfg.Triggers)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()

	writeFile(t, ProjectConfigPath(root), "max_sessions: 5\n")
	explicit := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, explicit, "max_sessions: 9\n")

	cfg, err := Load(root, explicit)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxSessions != 9 {
		t.Errorf("MaxSessions = %d, want 9", cfg.MaxSessions)
	}

	if _, err := Load(root, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with missing explicit config should fail")
	}
}

func TestLoad_MalformedProjectFileIsSkipped(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	writeFile(t, ProjectConfigPath(root), "max_sessions: [unclosed\n")

	cfg, err := Load(root, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxSessions != 0 {
		t.Errorf("MaxSessions = %d, want default 0", cfg.MaxSessions)
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	writeFile(t, ProjectConfigPath(root), "max_sessions: 5\n")
	t.Setenv("SESSION_CONTEXT_MAX_SESSIONS", "2")

	cfg, err := Load(root, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxSessions != 2 {
		t.Errorf("MaxSessions = %d, want 2", cfg.MaxSessions)
	}
}

func TestConfigYAML(t *testing.T) {
	data, err := DefaultConfig().YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{"triggers:", "- /pickup", "max_sessions: 0", "log_level: warn"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML() missing %q in:\n%s", want, out)
		}
	}
}
