package backup

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestAttachmentFilename(t *testing.T) {
	got := AttachmentFilename(3, 1677000000000)
	if got != "Attachment_3_1677000000000.bin" {
		t.Errorf("unexpected filename: %q", got)
	}
}

func TestLocator_Locate_Found(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Attachment_3_1234.bin", "jpegdata")

	loc := NewLocator(dir, testLogger())
	path, ok := loc.Locate(3, 1234)
	if !ok {
		t.Fatal("expected attachment to be found")
	}
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %q", path)
	}
	if filepath.Base(path) != "Attachment_3_1234.bin" {
		t.Errorf("unexpected file name in path %q", path)
	}
}

func TestLocator_Locate_Missing(t *testing.T) {
	loc := NewLocator(t.TempDir(), testLogger())

	path, ok := loc.Locate(9, 9999)
	if ok {
		t.Error("expected missing attachment to be reported as not found")
	}
	if path != "" {
		t.Errorf("expected empty path for missing attachment, got %q", path)
	}
}

func TestLocator_Locate_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Attachment_7_77.bin", "x")
	loc := NewLocator(dir, testLogger())

	path1, ok1 := loc.Locate(7, 77)
	path2, ok2 := loc.Locate(7, 77)
	if path1 != path2 || ok1 != ok2 {
		t.Errorf("expected identical results, got (%q,%v) and (%q,%v)", path1, ok1, path2, ok2)
	}

	miss1, okm1 := loc.Locate(8, 88)
	miss2, okm2 := loc.Locate(8, 88)
	if miss1 != miss2 || okm1 != okm2 {
		t.Errorf("expected identical miss results, got (%q,%v) and (%q,%v)", miss1, okm1, miss2, okm2)
	}
}
