package utils

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// CopyError aborts a build: the resources tree could not be mirrored.
type CopyError struct {
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy resource %s: %v", e.Path, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// ConflictWarning records a resource that was not copied because the
// destination already exists.
type ConflictWarning struct {
	Path string
}

func (w ConflictWarning) String() string {
	return fmt.Sprintf("resource file %s already exists, file not copied", w.Path)
}

// CopyResult summarizes one CopyResources call.
type CopyResult struct {
	Copied    int
	Conflicts []ConflictWarning
}

// resourceCopier holds the state of a single copy run.
type resourceCopier struct {
	srcFs  afero.Fs
	destFs afero.Fs
	srcDir string
	dstDir string
	logger *slog.Logger
	result CopyResult
}

// CopyResources mirrors every file below resourcesDir into outputDir at the
// same path relative to resourcesDir. Existing destination files are never
// overwritten. A missing resources directory copies nothing.
func CopyResources(srcFs, destFs afero.Fs, resourcesDir, outputDir string, logger *slog.Logger) (*CopyResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := srcFs.Stat(resourcesDir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("No resources directory, nothing to copy", "path", resourcesDir)
			return &CopyResult{}, nil
		}
		return nil, &CopyError{Path: resourcesDir, Err: err}
	}

	c := &resourceCopier{
		srcFs:  srcFs,
		destFs: destFs,
		srcDir: filepath.Clean(resourcesDir),
		dstDir: filepath.Clean(outputDir),
		logger: logger,
	}

	if err := afero.Walk(srcFs, c.srcDir, c.visit); err != nil {
		var copyErr *CopyError
		if errors.As(err, &copyErr) {
			return nil, copyErr
		}
		return nil, &CopyError{Path: c.srcDir, Err: err}
	}

	logger.Info("Resource files copied", "count", c.result.Copied, "skipped", len(c.result.Conflicts))
	return &c.result, nil
}

func (c *resourceCopier) visit(path string, info fs.FileInfo, err error) error {
	if err != nil {
		return &CopyError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil
	}

	rel, err := SafeRel(c.srcDir, path)
	if err != nil {
		return &CopyError{Path: path, Err: err}
	}
	target := filepath.Join(c.dstDir, filepath.FromSlash(rel))

	exists, err := afero.Exists(c.destFs, target)
	if err != nil {
		return &CopyError{Path: target, Err: err}
	}
	if exists {
		warning := ConflictWarning{Path: rel}
		c.result.Conflicts = append(c.result.Conflicts, warning)
		c.logger.Warn(warning.String())
		return nil
	}

	if err := c.copyFile(path, target, info.Mode()); err != nil {
		return &CopyError{Path: path, Err: err}
	}
	c.result.Copied++
	c.logger.Debug("Resource file copied", "path", rel)
	return nil
}

func (c *resourceCopier) copyFile(src, dst string, mode fs.FileMode) error {
	if err := c.destFs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(dst), err)
	}

	in, err := c.srcFs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := c.destFs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode.Perm()|0200)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy file: %w", err)
	}
	return out.Close()
}
