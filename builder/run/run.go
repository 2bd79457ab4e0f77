package run

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Kush-Singh-26/blogbuilder/builder/config"
	"github.com/Kush-Singh-26/blogbuilder/builder/utils"
	"github.com/Kush-Singh-26/blogbuilder/internal/watch"
)

// RunOptions are the command line switches of the build command.
type RunOptions struct {
	Compress bool // Overrides compress: false in blog.yaml
	Watch    bool // Rebuild on changes until ctx is done
	Logger   *slog.Logger
}

// Run loads blog.yaml from projectDir and builds the blog once, or keeps
// rebuilding on changes in watch mode.
func Run(ctx context.Context, projectDir string, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg, err := config.Load(projectDir)
	if err != nil {
		return err
	}
	if opts.Compress {
		cfg.Compress = true
	}

	lock, err := utils.AcquireBuildLock(projectDir)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	b, err := NewBuilder(projectDir, cfg, WithLogger(logger))
	if err != nil {
		return err
	}

	if _, err := b.Build(); err != nil {
		if !opts.Watch {
			return fmt.Errorf("build failed: %w", err)
		}
		logger.Error("Build failed", "error", err)
	}

	if !opts.Watch {
		return nil
	}

	// Events that leave every watched file as it was (editor temp files,
	// touches of directories) do not trigger a rebuild.
	lastHash, _ := utils.HashDirs(b.SourceFs, b.WatchDirs())

	w, err := watch.New(b.WatchDirs(), func(ev watch.Event) {
		hash, err := utils.HashDirs(b.SourceFs, b.WatchDirs())
		if err == nil && hash == lastHash {
			logger.Debug("No content change, skipping rebuild", "path", ev.Name)
			return
		}
		lastHash = hash

		logger.Info("Change detected, rebuilding", "path", ev.Name)
		if _, err := b.Build(); err != nil {
			logger.Error("Build failed", "error", err)
		}
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	return w.Start(ctx)
}
