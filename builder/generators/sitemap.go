package generators

import (
	"encoding/xml"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/blogbuilder/builder/models"
	"github.com/Kush-Singh-26/blogbuilder/builder/utils"
)

const (
	SitemapFile = "sitemap.xml"
	lastModDate = "2006-01-02"
)

// GenerateSitemap lists the index page followed by every document.
func GenerateSitemap(destFs afero.Fs, outputDir, baseURL string, posts, pages []*models.Document) error {
	baseURL = utils.EnsureTrailingSlash(baseURL)

	urls := make([]models.Url, 0, len(posts)+len(pages)+1)
	index := models.Url{Loc: baseURL}
	if len(posts) > 0 {
		index.LastMod = lastMod(posts[0])
	}
	urls = append(urls, index)

	for _, docs := range [][]*models.Document{posts, pages} {
		for _, d := range docs {
			urls = append(urls, models.Url{Loc: baseURL + d.OutputPath, LastMod: lastMod(d)})
		}
	}

	output, err := xml.MarshalIndent(models.UrlSet{Urls: urls}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", SitemapFile, err)
	}

	path := filepath.Join(outputDir, SitemapFile)
	if err := utils.WriteFileVFS(destFs, path, []byte(xml.Header+string(output)+"\n")); err != nil {
		return fmt.Errorf("failed to write %s: %w", SitemapFile, err)
	}
	return nil
}

func lastMod(d *models.Document) string {
	var t time.Time
	switch {
	case !d.ModifiedAt.IsZero():
		t = d.ModifiedAt
	case d.IsPost():
		t = d.CreatedAt
	default:
		return ""
	}
	return t.Format(lastModDate)
}
