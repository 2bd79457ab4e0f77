package generators

import (
	"encoding/xml"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/blogbuilder/builder/config"
	"github.com/Kush-Singh-26/blogbuilder/builder/models"
	"github.com/Kush-Singh-26/blogbuilder/builder/utils"
)

const (
	FeedFile  = "feed.xml"
	generator = "blogbuilder"
)

// GenerateFeed writes an RSS 2.0 feed of the first cfg.FeedPosts posts.
// Posts must be ordered most recent first.
func GenerateFeed(destFs afero.Fs, outputDir string, cfg *config.Config, posts []*models.Document) error {
	if len(posts) > cfg.FeedPosts {
		posts = posts[:cfg.FeedPosts]
	}

	items := make([]models.Item, 0, len(posts))
	for _, p := range posts {
		link := cfg.BaseURL + p.OutputPath
		items = append(items, models.Item{
			Title:       p.Title,
			Link:        link,
			Description: utils.MakeLinksAbsolute(string(p.Body), cfg.BaseURL),
			Categories:  p.Categories,
			PubDate:     p.CreatedAt.Format(time.RFC1123Z),
			Guid: models.Guid{
				IsPermaLink: false,
				Value:       uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String(),
			},
		})
	}

	channel := models.Channel{
		Title:       cfg.Title,
		Link:        cfg.BaseURL,
		Description: cfg.Description,
		Language:    cfg.Language,
		Generator:   generator,
		Items:       items,
	}
	if len(posts) > 0 {
		channel.LastBuildDate = posts[0].CreatedAt.Format(time.RFC1123Z)
	}

	output, err := xml.MarshalIndent(models.Rss{Version: "2.0", Channel: channel}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", FeedFile, err)
	}

	path := filepath.Join(outputDir, FeedFile)
	if err := utils.WriteFileVFS(destFs, path, []byte(xml.Header+string(output)+"\n")); err != nil {
		return fmt.Errorf("failed to write %s: %w", FeedFile, err)
	}
	return nil
}
