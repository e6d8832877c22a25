//go:build !windows

package volume

import (
	"fmt"
	"path/filepath"
)

// Root returns the path to pass to Query for path. statfs resolves the
// filesystem from any path on it, so this is the absolute path itself.
func Root(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	return abs, nil
}

// DefaultRoot returns the filesystem root.
func DefaultRoot() (string, error) {
	return "/", nil
}
