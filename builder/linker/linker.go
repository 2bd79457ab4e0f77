// Package linker orders blog posts and links neighbouring posts.
package linker

import (
	"path"
	"slices"
	"strings"

	"github.com/Kush-Singh-26/blogbuilder/builder/models"
)

// Comparator orders two documents like cmp.Compare.
type Comparator func(a, b *models.Document) int

// ByCreatedDesc puts the most recent post first; equal dates fall back to
// the source path so the order is total.
func ByCreatedDesc(a, b *models.Document) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.SourcePath, b.SourcePath)
}

// Partition splits documents into posts and pages, keeping scan order.
func Partition(docs []*models.Document) (posts, pages []*models.Document) {
	for _, doc := range docs {
		if doc.IsPost() {
			posts = append(posts, doc)
		} else {
			pages = append(pages, doc)
		}
	}
	return posts, pages
}

// Sort orders posts in place.
func Sort(posts []*models.Document, cmp Comparator) {
	slices.SortStableFunc(posts, cmp)
}

// Link sets NextLink to the more recent neighbour and PreviousLink to the
// older one. posts must already be sorted most recent first.
func Link(posts []*models.Document) {
	for i, post := range posts {
		post.NextLink = ""
		post.PreviousLink = ""
		if i > 0 {
			post.NextLink = RelativeLink(post, posts[i-1])
		}
		if i < len(posts)-1 {
			post.PreviousLink = RelativeLink(post, posts[i+1])
		}
	}
}

// RelativeLink is the path from the directory of from's output file to to's
// output file, e.g. "../2016/cupcake_ipsum.html".
func RelativeLink(from, to *models.Document) string {
	fromDir := path.Dir(from.OutputPath)
	target := to.OutputPath

	if fromDir == "." {
		return target
	}

	fromParts := strings.Split(fromDir, "/")
	toParts := strings.Split(target, "/")

	common := 0
	for common < len(fromParts) && common < len(toParts)-1 && fromParts[common] == toParts[common] {
		common++
	}

	link := strings.Repeat("../", len(fromParts)-common) + strings.Join(toParts[common:], "/")
	return strings.TrimPrefix(link, "./")
}

// Order partitions, sorts and links in one step.
func Order(docs []*models.Document) (posts, pages []*models.Document) {
	posts, pages = Partition(docs)
	Sort(posts, ByCreatedDesc)
	Link(posts)
	return posts, pages
}
