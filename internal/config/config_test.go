package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- Validate ---

func TestValidate_ValidConfig(t *testing.T) {
	cfg := Defaults()
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Defaults()
	cfg.General.LogLevel = "verbose"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestValidate_ValidLogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := Defaults()
		cfg.General.LogLevel = level
		if err := Validate(cfg); err != nil {
			t.Fatalf("log level %q should be valid: %v", level, err)
		}
	}
}

func TestValidate_EmptyTitle(t *testing.T) {
	cfg := Defaults()
	cfg.Export.Title = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for empty title")
	}
}

func TestValidate_EmptyTimeFormat(t *testing.T) {
	cfg := Defaults()
	cfg.Export.TimeFormat = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for empty time format")
	}
}

// --- Load / Save ---

func TestLoadSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	original := Defaults()
	original.Export.Title = "My messages"

	if err := Save(path, original); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Export.Title != "My messages" {
		t.Errorf("expected title to survive the round trip, got %q", loaded.Export.Title)
	}
	if loaded.Export.TimeFormat != original.Export.TimeFormat {
		t.Errorf("time format changed: %q", loaded.Export.TimeFormat)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	partial := "export:\n  title: Only the title\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Export.Title != "Only the title" {
		t.Errorf("override lost: %q", cfg.Export.Title)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("default log level lost: %q", cfg.General.LogLevel)
	}
	if cfg.Export.TimeFormat == "" {
		t.Error("default time format lost")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	bad := "general:\n  logLevel: shouty\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

// --- Environment expansion ---

func TestExpandEnvVars_SetVariable(t *testing.T) {
	t.Setenv("SIGNALHTML_TEST_TITLE", "from env")
	got := ExpandEnvVars("title: ${SIGNALHTML_TEST_TITLE}")
	if got != "title: from env" {
		t.Errorf("expected substitution, got %q", got)
	}
}

func TestExpandEnvVars_DefaultValue(t *testing.T) {
	got := ExpandEnvVars("title: ${SIGNALHTML_UNSET_VAR:-fallback}")
	if got != "title: fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestExpandEnvVars_UnsetWithoutDefault(t *testing.T) {
	got := ExpandEnvVars("title: ${SIGNALHTML_UNSET_VAR}")
	if !strings.Contains(got, "${SIGNALHTML_UNSET_VAR}") {
		t.Errorf("unset variable without default should stay verbatim, got %q", got)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("SIGNALHTML_TEST_TITLE", "env title")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "export:\n  title: ${SIGNALHTML_TEST_TITLE}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Export.Title != "env title" {
		t.Errorf("expected env substitution, got %q", cfg.Export.Title)
	}
}

// --- Paths ---

func TestExpandPath_Home(t *testing.T) {
	got := ExpandPath("~/logs/out.log")
	if strings.HasPrefix(got, "~") {
		t.Errorf("tilde not expanded: %q", got)
	}
	if !strings.HasSuffix(got, filepath.Join("logs", "out.log")) {
		t.Errorf("path tail lost: %q", got)
	}
}

func TestExpandPath_Plain(t *testing.T) {
	if got := ExpandPath("/var/log/x.log"); got != "/var/log/x.log" {
		t.Errorf("absolute path should pass through, got %q", got)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if !strings.HasSuffix(path, filepath.Join(".signalhtml", "config.yaml")) {
		t.Errorf("unexpected default config path: %q", path)
	}
}
