package ingest

import (
	"bytes"
	"net/url"
	"strings"
	"unicode/utf8"

	readability "github.com/go-shiori/go-readability"
)

var _ Extractor = HTMLExtractor{}

// HTMLExtractor extracts readable article text from HTML using
// go-readability. Pages too small or too plain for readability to find an
// article fall back to tag stripping.
type HTMLExtractor struct{}

func (HTMLExtractor) Extract(content []byte) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(content), &url.URL{})
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return collapseWhitespace(article.TextContent), nil
	}
	return stripTags(string(content)), nil
}

// stripTags removes markup, dropping script and style content entirely and
// inserting line breaks at block-level tags.
func stripTags(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	skipUntil := ""
	i := 0
	for i < len(content) {
		r, size := utf8.DecodeRuneInString(content[i:])

		if skipUntil != "" {
			if r == '<' && hasFoldPrefix(content[i:], skipUntil) {
				skipUntil = ""
			} else {
				i += size
				continue
			}
		}

		if r == '<' {
			end := strings.IndexByte(content[i:], '>')
			if end < 0 {
				break
			}
			tag := strings.ToLower(strings.TrimSpace(content[i+1 : i+end]))
			closing := strings.HasPrefix(tag, "/")
			name, _, _ := strings.Cut(strings.TrimPrefix(tag, "/"), " ")
			switch name {
			case "script":
				if !closing {
					skipUntil = "</script"
				}
			case "style":
				if !closing {
					skipUntil = "</style"
				}
			case "p", "div", "br", "li", "tr", "blockquote", "pre",
				"h1", "h2", "h3", "h4", "h5", "h6":
				b.WriteByte('\n')
			}
			i += end + 1
			continue
		}

		b.WriteRune(r)
		i += size
	}

	return collapseWhitespace(decodeBasicEntities(b.String()))
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&#39;", "'",
	"&nbsp;", " ",
)

func decodeBasicEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return entityReplacer.Replace(s)
}
