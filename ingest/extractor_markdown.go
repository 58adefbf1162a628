package ingest

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var _ Extractor = MarkdownExtractor{}

// MarkdownExtractor reduces markdown to plain text by walking the goldmark
// AST and collecting text and code content, discarding formatting markers.
type MarkdownExtractor struct{}

func (MarkdownExtractor) Extract(content []byte) (string, error) {
	content = stripFrontMatter(content)

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var b strings.Builder
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		// Separate block-level nodes so paragraph structure survives.
		if n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument && b.Len() > 0 {
			b.WriteString("\n\n")
		}

		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(content))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.AutoLink:
			b.Write(t.URL(content))
		case *ast.FencedCodeBlock:
			writeSegments(&b, content, t)
		case *ast.CodeBlock:
			writeSegments(&b, content, t)
		case *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}

	return collapseWhitespace(b.String()), nil
}

func writeSegments(b *strings.Builder, source []byte, node interface {
	Lines() *text.Segments
}) {
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
}

// stripFrontMatter removes a leading YAML front matter block delimited by
// --- lines.
func stripFrontMatter(content []byte) []byte {
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return content
	}
	end := bytes.Index(content[4:], []byte("\n---"))
	if end < 0 {
		return content
	}
	rest := content[4+end+4:]
	if i := bytes.IndexByte(rest, '\n'); i >= 0 {
		return rest[i+1:]
	}
	return nil
}
