// Configures the markdown converter and link normalization
package parser

import (
	"bytes"
	"fmt"
	"strings"

	chroma_html "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/gohugoio/hugo-goldmark-extensions/passthrough"
	admonitions "github.com/stefanfritsch/goldmark-admonitions"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/Kush-Singh-26/blogbuilder/builder/models"
)

// Result is a converted markdown file.
type Result struct {
	HTML []byte
	Meta map[string]interface{}
	TOC  []models.TOCEntry
}

// Converter turns markdown source into HTML plus its front matter.
type Converter interface {
	Convert(source []byte) (*Result, error)
}

// MetaError reports a front matter block that is not valid YAML.
type MetaError struct {
	Err error
}

func (e *MetaError) Error() string {
	return fmt.Sprintf("malformed front matter: %v", e.Err)
}

func (e *MetaError) Unwrap() error {
	return e.Err
}

// Markdown is the goldmark backed Converter.
type Markdown struct {
	md goldmark.Markdown
}

func codeBlockWrapper(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	if entering {
		langBytes, _ := c.Language()
		lang := string(langBytes)
		if lang == "" {
			lang = "text"
		}
		_, _ = w.WriteString(`<div class="code-wrapper" data-lang="` + lang + `">`)
	} else {
		_, _ = w.WriteString(`</div>`)
	}
}

// New creates the goldmark converter used for every content file.
func New() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
				meta.Meta,
				&admonitions.Extender{},
				highlighting.NewHighlighting(
					highlighting.WithStyle("nord"),
					highlighting.WithFormatOptions(
						chroma_html.WithClasses(true),
					),
					highlighting.WithWrapperRenderer(codeBlockWrapper),
				),
				passthrough.New(passthrough.Config{
					InlineDelimiters: []passthrough.Delimiters{{Open: "$", Close: "$"}, {Open: "\\(", Close: "\\)"}},
					BlockDelimiters:  []passthrough.Delimiters{{Open: "$$", Close: "$$"}, {Open: "\\[", Close: "\\]"}},
				}),
			),
			goldmark.WithParserOptions(
				parser.WithASTTransformers(
					util.Prioritized(&URLTransformer{}, 100),
					util.Prioritized(&TOCTransformer{}, 200),
				),
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Convert parses the front matter and renders the body.
func (m *Markdown) Convert(source []byte) (*Result, error) {
	pc := parser.NewContext()
	doc := m.md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))

	metaData, err := meta.TryGet(pc)
	if err != nil {
		return nil, &MetaError{Err: err}
	}
	if metaData == nil {
		metaData = make(map[string]interface{})
	}

	var buf bytes.Buffer
	if err := m.md.Renderer().Render(&buf, source, doc); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}

	return &Result{HTML: buf.Bytes(), Meta: metaData, TOC: GetTOC(pc)}, nil
}

// URLTransformer prepares link destinations for the link rewriter: site links
// written as "/path" become root relative ("path"), external links open in a
// new tab and images load lazily.
type URLTransformer struct{}

func (t *URLTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch target := n.(type) {
		case *ast.Link:
			target.Destination = processDestination(target, target.Destination)
		case *ast.Image:
			target.Destination = processDestination(target, target.Destination)
		}
		return ast.WalkContinue, nil
	})
}

func processDestination(n ast.Node, dest []byte) []byte {
	href := string(dest)

	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		if _, isLink := n.(*ast.Link); isLink {
			n.SetAttribute([]byte("target"), []byte("_blank"))
			n.SetAttribute([]byte("rel"), []byte("noopener noreferrer"))
		}
	}
	if _, isImage := n.(*ast.Image); isImage {
		n.SetAttribute([]byte("loading"), []byte("lazy"))
	}

	if strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") {
		return []byte(strings.TrimLeft(href, "/"))
	}
	return dest
}
