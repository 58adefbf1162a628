// Package ingest turns raw documents into chunk records ready for an
// embedding stage. It pairs content-type aware text extraction with the
// chunkers from the root package.
package ingest

import (
	"strings"
)

// Extractor converts raw content to plain text.
type Extractor interface {
	Extract(content []byte) (string, error)
}

// ContentType identifies the MIME type of content for extraction.
type ContentType string

const (
	TypePlainText ContentType = "text/plain"
	TypeMarkdown  ContentType = "text/markdown"
	TypeHTML      ContentType = "text/html"
	TypeCSV       ContentType = "text/csv"
	TypeJSON      ContentType = "application/json"
	TypePDF       ContentType = "application/pdf"
)

// ContentTypeFromExtension maps file extensions to content types.
// Unknown extensions fall back to plain text.
func ContentTypeFromExtension(ext string) ContentType {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "md", "markdown":
		return TypeMarkdown
	case "html", "htm":
		return TypeHTML
	case "csv":
		return TypeCSV
	case "json":
		return TypeJSON
	case "pdf":
		return TypePDF
	default:
		return TypePlainText
	}
}

// PlainTextExtractor returns content as-is.
type PlainTextExtractor struct{}

func (PlainTextExtractor) Extract(content []byte) (string, error) {
	return string(content), nil
}

// defaultExtractors returns the built-in extractor registry.
func defaultExtractors() map[ContentType]Extractor {
	return map[ContentType]Extractor{
		TypePlainText: PlainTextExtractor{},
		TypeMarkdown:  MarkdownExtractor{},
		TypeHTML:      HTMLExtractor{},
		TypeCSV:       CSVExtractor{},
		TypeJSON:      JSONExtractor{},
		TypePDF:       PDFExtractor{},
	}
}

// collapseWhitespace trims every line and limits blank runs to a single
// blank line, so extracted text chunks on paragraph boundaries.
func collapseWhitespace(text string) string {
	var b strings.Builder
	blanks := 0

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if b.Len() > 0 {
				blanks++
			}
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
			if blanks > 0 {
				b.WriteByte('\n')
			}
		}
		b.WriteString(trimmed)
		blanks = 0
	}

	return b.String()
}
