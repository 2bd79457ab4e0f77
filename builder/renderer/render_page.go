package renderer

import (
	"html/template"

	"github.com/Kush-Singh-26/blogbuilder/builder/models"
	"github.com/Kush-Singh-26/blogbuilder/builder/utils"
)

// IndexPath is the output path of the post listing.
const IndexPath = "index.html"

func (r *Renderer) WritePosts(posts []*models.Document) error {
	r.indexCategories(Categories(posts, r.cfg.Language))
	return r.writeDocuments(r.cfg.Templates.Post, posts)
}

func (r *Renderer) WritePages(pages []*models.Document) error {
	return r.writeDocuments(r.cfg.Templates.Page, pages)
}

func (r *Renderer) writeDocuments(name string, docs []*models.Document) error {
	for _, doc := range docs {
		if err := r.render(name, doc.OutputPath, documentData(doc)); err != nil {
			return err
		}
	}
	return nil
}

// documentData relativizes the body of a copy so the document itself keeps
// the original links for the feed.
func documentData(doc *models.Document) models.PageData {
	root := doc.RootPath()
	view := *doc
	view.Body = template.HTML(utils.MakeLinksRelative(string(doc.Body), root))

	return models.PageData{
		Title:    doc.Title,
		Document: &view,
		RootPath: root,
	}
}

// WriteIndex lists posts most recent first, capped at indexPosts when set.
func (r *Renderer) WriteIndex(posts []*models.Document) error {
	listed := posts
	if n := r.cfg.IndexPosts; n > 0 && len(listed) > n {
		listed = listed[:n]
	}

	return r.render(r.cfg.Templates.Index, IndexPath, models.PageData{
		Title: r.cfg.Title,
		Posts: listed,
	})
}
