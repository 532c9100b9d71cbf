package backup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCheck_MissingDatabase(t *testing.T) {
	dir := t.TempDir()

	_, err := Check(dir)
	if !errors.Is(err, ErrDatabaseNotFound) {
		t.Errorf("expected ErrDatabaseNotFound, got %v", err)
	}
}

func TestCheck_MissingVersionMarker(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "database.sqlite", "")

	_, err := Check(dir)
	if !errors.Is(err, ErrDatabaseVersionNotFound) {
		t.Errorf("expected ErrDatabaseVersionNotFound, got %v", err)
	}
}

func TestCheck_ReturnsVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "database.sqlite", "")
	writeFile(t, dir, "DatabaseVersion.sbf", "dbVersion: 65\n")

	version, err := Check(dir)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if version != "65" {
		t.Errorf("expected version 65, got %q", version)
	}
}

func TestCheck_UnsupportedVersionIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "database.sqlite", "")
	writeFile(t, dir, "DatabaseVersion.sbf", "dbVersion: 170")

	version, err := Check(dir)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if version != "170" {
		t.Errorf("expected version 170, got %q", version)
	}
	if Supported(version) {
		t.Error("version 170 should not be reported as supported")
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare number", "65", "65"},
		{"labeled", "dbVersion: 65", "65"},
		{"trailing newline", "dbVersion: 65\n", "65"},
		{"surrounding whitespace", "  65  ", "65"},
		{"multiple colons", "a:b:170", "170"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseVersion(tt.input); got != tt.want {
				t.Errorf("ParseVersion(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDatabasePath(t *testing.T) {
	got := DatabasePath("/backups/signal")
	want := filepath.Join("/backups/signal", "database.sqlite")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSupported(t *testing.T) {
	if !Supported("65") {
		t.Error("version 65 should be supported")
	}
	if Supported("64") {
		t.Error("version 64 should not be supported")
	}
}
