package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// Ext returns the lower-cased file extension of path, including the
// leading dot, so extension lookups behave the same on case-insensitive
// filesystems
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// ConfigDir returns the per-user configuration directory for configdiff
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "configdiff"), nil
}
