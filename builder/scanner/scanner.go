// Package scanner discovers markdown content and turns it into documents.
package scanner

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/blogbuilder/builder/models"
	"github.com/Kush-Singh-26/blogbuilder/builder/parser"
	"github.com/Kush-Singh-26/blogbuilder/builder/utils"
)

// Accepted layouts for the created and modified front matter keys.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ScanError aborts a build: a content file could not be read or described.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

type Scanner struct {
	fs     afero.Fs
	md     parser.Converter
	logger *slog.Logger
}

func New(fs afero.Fs, md parser.Converter, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{fs: fs, md: md, logger: logger}
}

// IsMarkdown reports whether a file name has a markdown extension.
func IsMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// Scan walks root and returns one document per markdown file in walk order.
func (s *Scanner) Scan(root string) ([]*models.Document, error) {
	var docs []*models.Document
	byOutput := make(map[string]string)

	err := afero.Walk(s.fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return &ScanError{Path: path, Err: err}
		}
		if info.IsDir() || !IsMarkdown(path) {
			return nil
		}

		rel, err := utils.SafeRel(root, path)
		if err != nil {
			return &ScanError{Path: path, Err: err}
		}

		doc, err := s.scanFile(path, rel)
		if err != nil {
			return err
		}

		if other, ok := byOutput[doc.OutputPath]; ok {
			return &ScanError{Path: path, Err: fmt.Errorf("output %s already produced by %s", doc.OutputPath, other)}
		}
		byOutput[doc.OutputPath] = doc.SourcePath

		s.logger.Debug("Scanned document", "path", doc.SourcePath, "kind", doc.Kind.String())
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (s *Scanner) scanFile(path, rel string) (*models.Document, error) {
	source, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, &ScanError{Path: path, Err: err}
	}

	res, err := s.md.Convert(source)
	if err != nil {
		return nil, &ScanError{Path: path, Err: err}
	}

	kind := models.KindPage
	if utils.GetBool(res.Meta, "blog") {
		kind = models.KindBlogPost
	}

	doc := models.NewDocument(rel, kind)
	doc.Body = template.HTML(res.HTML)
	doc.TOC = res.TOC
	doc.Meta = res.Meta
	doc.Title = utils.GetString(res.Meta, "title")
	if doc.Title == "" {
		base := filepath.Base(rel)
		doc.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	doc.Description = utils.GetString(res.Meta, "description")
	doc.ShortLink = utils.GetString(res.Meta, "shortlink")
	doc.Categories = utils.GetStringList(res.Meta, "categories")

	if raw := utils.GetString(res.Meta, "created"); raw != "" {
		doc.CreatedAt, err = parseDate(raw)
		if err != nil && doc.IsPost() {
			return nil, &ScanError{Path: path, Err: fmt.Errorf("invalid created date: %w", err)}
		}
	} else if doc.IsPost() {
		return nil, &ScanError{Path: path, Err: fmt.Errorf("blog post without created date")}
	}
	if !doc.IsPost() {
		doc.CreatedAt = time.Time{}
	}

	if raw := utils.GetString(res.Meta, "modified"); raw != "" {
		if doc.ModifiedAt, err = parseDate(raw); err != nil {
			s.logger.Warn("Ignoring invalid modified date", "path", path, "value", raw)
			doc.ModifiedAt = time.Time{}
		}
	}

	return doc, nil
}

func parseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
