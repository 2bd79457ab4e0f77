package run

import (
	"fmt"

	"github.com/Kush-Singh-26/blogbuilder/builder/metrics"
	"github.com/Kush-Singh-26/blogbuilder/builder/models"
	"github.com/Kush-Singh-26/blogbuilder/builder/utils"
	"github.com/Kush-Singh-26/blogbuilder/internal/clean"
)

// Build executes a single build pass. Stages run strictly in order and the
// first fatal error stops the build; files already written stay.
func (b *Builder) Build() (*models.BuildContext, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	m := metrics.NewBuildMetrics()
	ctx := &models.BuildContext{ProjectDir: b.projectDir}
	outputDir := b.cfg.OutputPath(b.projectDir)

	b.logger.Info("Building blog", "project", b.projectDir, "output", outputDir)

	// 1. Stale output
	removed, err := clean.Output(b.DestFs, outputDir, b.logger)
	if err != nil {
		return nil, err
	}
	m.FilesRemoved = removed

	// 2. Content
	if err := metrics.Phase(&m.ScanTime, func() error { return b.processContent(ctx) }); err != nil {
		return nil, err
	}
	m.PostsProcessed = len(ctx.Posts)
	m.PagesProcessed = len(ctx.Pages)

	// 3. Pages
	if err := metrics.Phase(&m.RenderTime, func() error { return b.renderPages(ctx, m) }); err != nil {
		return nil, err
	}

	// 4. Resources
	if err := metrics.Phase(&m.ResourceTime, func() error { return b.copyResources(m) }); err != nil {
		return nil, err
	}

	// 5. Feed, sitemap and shortener
	if err := metrics.Phase(&m.FeedTime, func() error { return b.generateMeta(ctx) }); err != nil {
		return nil, err
	}

	// 6. Gzip siblings
	if b.cfg.Precompress {
		n, err := utils.Precompress(b.DestFs, outputDir, func(rel string) bool {
			return clean.IsGenerated(rel) && utils.IsCompressible(rel)
		})
		if err != nil {
			return nil, fmt.Errorf("precompress: %w", err)
		}
		m.FilesCompressed = n
	}

	m.RecordEnd()
	m.Log(b.logger)
	b.metrics = m
	return ctx, nil
}
