// defines the data structures used by templates and generators
package models

import (
	"encoding/xml"
	"html/template"
	"path"
	"strings"
	"time"
)

// Kind decides which template renders a document and whether it takes part
// in ordering, feed and category pages.
type Kind int

const (
	KindPage Kind = iota
	KindBlogPost
)

func (k Kind) String() string {
	if k == KindBlogPost {
		return "post"
	}
	return "page"
}

// Document is one content file of the project.
type Document struct {
	SourcePath  string // Relative to the content root, slash separated
	OutputPath  string // Relative to the output root, slash separated
	Kind        Kind
	Title       string
	Description string
	CreatedAt   time.Time
	ModifiedAt  time.Time
	Categories  []string
	ShortLink   string
	Body        template.HTML
	TOC         []TOCEntry
	Meta        map[string]interface{}

	// Set by the linker, posts only
	PreviousLink string
	NextLink     string
}

// NewDocument derives the output path from the source path.
func NewDocument(sourcePath string, kind Kind) *Document {
	sourcePath = strings.TrimPrefix(path.Clean(strings.ReplaceAll(sourcePath, "\\", "/")), "/")
	return &Document{
		SourcePath: sourcePath,
		OutputPath: OutputPathFor(sourcePath),
		Kind:       kind,
	}
}

// OutputPathFor replaces the source extension with .html.
func OutputPathFor(sourcePath string) string {
	return strings.TrimSuffix(sourcePath, path.Ext(sourcePath)) + ".html"
}

func (d *Document) IsPost() bool {
	return d.Kind == KindBlogPost
}

func (d *Document) HasPrevious() bool {
	return d.PreviousLink != ""
}

func (d *Document) HasNext() bool {
	return d.NextLink != ""
}

// RootPath leads from the document's output file back to the output root.
func (d *Document) RootPath() string {
	return RootPathFor(d.OutputPath)
}

// RootPathFor returns "../" once per directory level of an output path.
func RootPathFor(outputPath string) string {
	return strings.Repeat("../", strings.Count(outputPath, "/"))
}

// TOCEntry is a heading of a document body.
type TOCEntry struct {
	ID    string
	Text  string
	Level int
}

// CategoryListing is one generated category page.
type CategoryListing struct {
	Name       string // First spelling found in the posts
	Title      string // Display title
	Slug       string
	OutputPath string
	Posts      []*Document
}

// PageData is the context passed to HTML templates.
type PageData struct {
	Site      interface{} // *config.Config, kept untyped to avoid an import cycle
	Title     string
	Document  *Document
	Posts     []*Document
	Category  *CategoryListing
	RootPath  string
	BuildTime time.Time
}

// --- Sitemap Structures ---

type UrlSet struct {
	XMLName xml.Name `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// --- RSS Structures ---

type Rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel Channel  `xml:"channel"`
}

type Channel struct {
	Title         string `xml:"title"`
	Link          string `xml:"link"`
	Description   string `xml:"description"`
	Language      string `xml:"language,omitempty"`
	Generator     string `xml:"generator,omitempty"`
	LastBuildDate string `xml:"lastBuildDate,omitempty"`
	Items         []Item `xml:"item"`
}

type Item struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate"`
	Guid        Guid     `xml:"guid"`
}

type Guid struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}
