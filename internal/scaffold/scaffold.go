// Package scaffold creates a sample blog project.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/blogbuilder/builder/assets"
	"github.com/Kush-Singh-26/blogbuilder/builder/config"
	"github.com/Kush-Singh-26/blogbuilder/builder/utils"
)

// ErrProjectExists is returned when the directory already holds a blog.
var ErrProjectExists = errors.New("project already initialized")

// Init writes the sample configuration, content, resources and templates
// into dir, creating it when needed. Existing projects are left alone.
func Init(fsys afero.Fs, dir string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if exists, err := afero.Exists(fsys, cfgPath); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("%w: %s exists", ErrProjectExists, cfgPath)
	}

	samples := assets.Scaffold()
	created := 0

	err := fs.WalkDir(samples, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))

		if d.IsDir() {
			return fsys.MkdirAll(target, 0755)
		}

		data, err := fs.ReadFile(samples, path)
		if err != nil {
			return err
		}
		if err := utils.WriteFileVFS(fsys, target, data); err != nil {
			return err
		}
		created++
		logger.Debug("Created file", "path", target)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to initialize %s: %w", dir, err)
	}

	logger.Info("Initialized blog project", "dir", dir, "files", created)
	return nil
}
