package run

import (
	"github.com/Kush-Singh-26/blogbuilder/builder/linker"
	"github.com/Kush-Singh-26/blogbuilder/builder/metrics"
	"github.com/Kush-Singh-26/blogbuilder/builder/models"
	"github.com/Kush-Singh-26/blogbuilder/builder/renderer"
	"github.com/Kush-Singh-26/blogbuilder/builder/scanner"
)

// processContent scans the content directory and orders the documents.
func (b *Builder) processContent(ctx *models.BuildContext) error {
	docs, err := scanner.New(b.SourceFs, b.md, b.logger).Scan(b.cfg.ContentPath(b.projectDir))
	if err != nil {
		return err
	}

	ctx.Posts, ctx.Pages = linker.Order(docs)
	b.logger.Debug("Ordered content", "posts", len(ctx.Posts), "pages", len(ctx.Pages))
	return nil
}

// renderPages writes posts, pages, the index and the category pages.
func (b *Builder) renderPages(ctx *models.BuildContext, m *metrics.BuildMetrics) error {
	rnd, err := renderer.New(
		b.SourceFs,
		b.DestFs,
		b.cfg.TemplatesPath(b.projectDir),
		b.cfg.OutputPath(b.projectDir),
		b.cfg,
		b.logger,
	)
	if err != nil {
		return err
	}

	if err := rnd.WritePosts(ctx.Posts); err != nil {
		return err
	}
	if err := rnd.WritePages(ctx.Pages); err != nil {
		return err
	}
	if err := rnd.WriteIndex(ctx.Posts); err != nil {
		return err
	}

	ctx.Categories, err = rnd.WriteCategoryPages(ctx.Posts)
	if err != nil {
		return err
	}

	m.CategoryPages = len(ctx.Categories)
	m.FilesWritten += rnd.Written()
	return nil
}
