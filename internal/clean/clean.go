// Package clean removes generated files from the output directory so a
// rebuild does not leave pages of deleted content behind.
package clean

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// generated lists the root level files written by the generators.
var generated = map[string]bool{
	"feed.xml":    true,
	"sitemap.xml": true,
	"goto.php":    true,
}

// IsGenerated reports whether a file below the output directory is produced
// by a build rather than copied from the resources. Gzip siblings of
// generated files count as generated.
func IsGenerated(rel string) bool {
	if base, ok := strings.CutSuffix(rel, ".gz"); ok {
		return IsGenerated(base)
	}
	if strings.EqualFold(filepath.Ext(rel), ".html") {
		return true
	}
	return generated[filepath.ToSlash(rel)]
}

// Output removes every generated file below outputDir and then every
// directory left empty. Copied resources stay. A missing outputDir is not
// an error. Returns the number of removed files.
func Output(fsys afero.Fs, outputDir string, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if exists, err := afero.DirExists(fsys, outputDir); err != nil || !exists {
		return 0, err
	}

	var files, dirs []string
	err := afero.Walk(fsys, outputDir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == outputDir {
			return nil
		}
		if info.IsDir() {
			dirs = append(dirs, path)
			return nil
		}
		rel, err := filepath.Rel(outputDir, path)
		if err != nil {
			return err
		}
		if IsGenerated(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", outputDir, err)
	}

	for _, path := range files {
		if err := fsys.Remove(path); err != nil {
			return 0, fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	// Deepest first, so parents empty out before they are checked
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })
	for _, dir := range dirs {
		empty, err := afero.IsEmpty(fsys, dir)
		if err != nil {
			return 0, fmt.Errorf("failed to inspect %s: %w", dir, err)
		}
		if empty {
			if err := fsys.Remove(dir); err != nil {
				return 0, fmt.Errorf("failed to remove %s: %w", dir, err)
			}
		}
	}

	if len(files) > 0 {
		logger.Debug("Removed stale output", "dir", outputDir, "files", len(files))
	}
	return len(files), nil
}
