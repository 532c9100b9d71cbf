// Package backup validates a decrypted Signal backup directory and resolves
// the files inside it. A backup is a plain directory holding the decrypted
// database, a version marker and the loose attachment files.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	databaseFile = "database.sqlite"
	versionFile  = "DatabaseVersion.sbf"

	// SupportedVersion is the database schema version the queries are
	// written against. Other versions are exported on a best-effort basis.
	SupportedVersion = "65"
)

var (
	ErrDatabaseNotFound        = errors.New("backup database not found")
	ErrDatabaseVersionNotFound = errors.New("backup version marker not found")
)

// DatabasePath returns the path of the decrypted database inside a backup
// directory.
func DatabasePath(dir string) string {
	return filepath.Join(dir, databaseFile)
}

// Check verifies that dir contains a usable backup and returns its database
// version. Both the database file and the version marker must exist; an
// unexpected version is not an error here, callers decide how loudly to
// complain about it.
func Check(dir string) (string, error) {
	if _, err := os.Stat(DatabasePath(dir)); err != nil {
		return "", fmt.Errorf("%s: %w", dir, ErrDatabaseNotFound)
	}

	versionPath := filepath.Join(dir, versionFile)
	if _, err := os.Stat(versionPath); err != nil {
		return "", fmt.Errorf("%s: %w", dir, ErrDatabaseVersionNotFound)
	}

	raw, err := os.ReadFile(versionPath)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", versionPath, err)
	}
	return ParseVersion(string(raw)), nil
}

// ParseVersion extracts the version number from the marker file contents.
// The marker is written as a short "label: value" line; everything after the
// last colon is the version.
func ParseVersion(raw string) string {
	parts := strings.Split(raw, ":")
	return strings.TrimSpace(parts[len(parts)-1])
}

// Supported reports whether the exporter was written for this database
// version.
func Supported(version string) bool {
	return version == SupportedVersion
}
