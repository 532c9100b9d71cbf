package backup

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Locator resolves attachment files inside a backup directory. Attachments
// are stored flat, named after the part row that describes them.
type Locator struct {
	dir    string
	logger *slog.Logger
}

func NewLocator(dir string, logger *slog.Logger) *Locator {
	return &Locator{dir: dir, logger: logger}
}

// AttachmentFilename returns the name an attachment is stored under in the
// backup directory.
func AttachmentFilename(id, uniqueID int64) string {
	return fmt.Sprintf("Attachment_%d_%d.bin", id, uniqueID)
}

// Locate returns the absolute path of an attachment file and whether it
// exists. A missing file is logged as a warning and reported with an empty
// path; the caller keeps the attachment metadata either way.
func (l *Locator) Locate(id, uniqueID int64) (string, bool) {
	name := AttachmentFilename(id, uniqueID)
	path := filepath.Join(l.dir, name)
	if _, err := os.Stat(path); err != nil {
		l.logger.Warn("attachment file missing", "file", name)
		return "", false
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs, true
	}
	return path, true
}
