package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// SafeRel is filepath.Rel with slash separated output that refuses results
// escaping base.
func SafeRel(base, target string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(base), filepath.Clean(target))
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("path traversal detected: %s escapes %s", target, base)
	}
	return rel, nil
}

// WriteFileVFS writes data, creating parent directories and replacing any
// existing file.
func WriteFileVFS(fs afero.Fs, path string, data []byte) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
