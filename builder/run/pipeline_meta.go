package run

import (
	"github.com/Kush-Singh-26/blogbuilder/builder/generators"
	"github.com/Kush-Singh-26/blogbuilder/builder/models"
)

// generateMeta writes the feed and the sitemap. A failing URL shortener is
// logged and does not fail the build.
func (b *Builder) generateMeta(ctx *models.BuildContext) error {
	outputDir := b.cfg.OutputPath(b.projectDir)

	if err := generators.GenerateFeed(b.DestFs, outputDir, b.cfg, ctx.Posts); err != nil {
		return err
	}
	if err := generators.GenerateSitemap(b.DestFs, outputDir, b.cfg.BaseURL, ctx.Posts, ctx.Pages); err != nil {
		return err
	}

	if b.cfg.URLShortener {
		if err := generators.GenerateShortener(b.DestFs, outputDir, b.cfg.BaseURL, ctx.Posts); err != nil {
			b.logger.Error("Failed to create URL shortener", "error", err)
		} else {
			b.logger.Info("URL shortener created", "file", generators.ShortenerFile)
		}
	}
	return nil
}
