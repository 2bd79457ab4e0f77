package parser

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/Kush-Singh-26/blogbuilder/builder/models"
)

var tocKey = parser.NewContextKey()

func GetTOC(pc parser.Context) []models.TOCEntry {
	if v := pc.Get(tocKey); v != nil {
		return v.([]models.TOCEntry)
	}
	return nil
}

// TOCTransformer collects level 2 to 6 headings that carry an id.
type TOCTransformer struct{}

func (t *TOCTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	var toc []models.TOCEntry

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindHeading {
			return ast.WalkContinue, nil
		}

		heading := n.(*ast.Heading)
		if heading.Level < 2 || heading.Level > 6 {
			return ast.WalkSkipChildren, nil
		}

		id, ok := heading.AttributeString("id")
		if !ok {
			return ast.WalkSkipChildren, nil
		}
		idBytes, ok := id.([]byte)
		if !ok {
			return ast.WalkSkipChildren, nil
		}

		toc = append(toc, models.TOCEntry{
			ID:    string(idBytes),
			Text:  headingText(heading, reader.Source()),
			Level: heading.Level,
		})
		return ast.WalkSkipChildren, nil
	})

	pc.Set(tocKey, toc)
}

func headingText(heading ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(heading, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && child.Kind() == ast.KindText {
			sb.Write(child.(*ast.Text).Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
