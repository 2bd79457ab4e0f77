package run

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/blogbuilder/builder/config"
	"github.com/Kush-Singh-26/blogbuilder/builder/metrics"
	"github.com/Kush-Singh-26/blogbuilder/builder/parser"
)

// Builder maintains the state for blog builds. Builds of one Builder never
// overlap.
type Builder struct {
	projectDir string
	cfg        *config.Config
	md         parser.Converter
	logger     *slog.Logger
	mu         sync.Mutex
	metrics    *metrics.BuildMetrics
	SourceFs   afero.Fs
	DestFs     afero.Fs
}

// Option customizes a Builder.
type Option func(*Builder)

// WithSourceFs sets the filesystem content, templates and resources are read from.
func WithSourceFs(fs afero.Fs) Option {
	return func(b *Builder) { b.SourceFs = fs }
}

// WithDestFs sets the filesystem the blog is written to.
func WithDestFs(fs afero.Fs) Option {
	return func(b *Builder) { b.DestFs = fs }
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// WithConverter replaces the goldmark converter.
func WithConverter(md parser.Converter) Option {
	return func(b *Builder) { b.md = md }
}

// NewBuilder initializes a builder for the project in projectDir. Both
// filesystems default to the OS filesystem.
func NewBuilder(projectDir string, cfg *config.Config, opts ...Option) (*Builder, error) {
	if cfg == nil {
		return nil, errors.New("builder needs a configuration")
	}

	b := &Builder{
		projectDir: projectDir,
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.SourceFs == nil {
		b.SourceFs = afero.NewOsFs()
	}
	if b.DestFs == nil {
		b.DestFs = afero.NewOsFs()
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	if b.md == nil {
		b.md = parser.New()
	}
	return b, nil
}

// Metrics returns the counters of the last finished build, or nil.
func (b *Builder) Metrics() *metrics.BuildMetrics {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.metrics
}

// WatchDirs are the project directories whose changes require a rebuild.
func (b *Builder) WatchDirs() []string {
	return []string{
		b.cfg.ContentPath(b.projectDir),
		b.cfg.ResourcesPath(b.projectDir),
		b.cfg.TemplatesPath(b.projectDir),
	}
}
