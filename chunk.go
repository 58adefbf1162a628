package textchunk

import (
	"strings"
	"unicode/utf8"
)

// Chunk is a bounded slice of source text produced by a chunker.
//
// Start and End are byte offsets into the whitespace-trimmed input passed
// to [Chunker.Chunk], always on UTF-8 rune boundaries. Content aliases the
// input slice whenever the chunk covers one contiguous range; a chunk
// stitched across dropped content carries copied content, and Start/End
// then describe the full source span its pieces were drawn from.
type Chunk struct {
	Content string
	Start   int
	End     int
}

// Contiguous reports whether Content is a direct view of the source text,
// i.e. Content == source[Start:End].
func (c Chunk) Contiguous() bool {
	return len(c.Content) == c.End-c.Start
}

// Chunker splits text into bounded, possibly overlapping chunks in
// left-to-right document order. Leading and trailing whitespace is trimmed
// before processing; chunk offsets are relative to the trimmed input.
//
// Implementations are pure and safe for concurrent use on independent
// inputs.
type Chunker interface {
	Chunk(input string) ([]Chunk, error)
}

const (
	// DefaultSize is the default chunk size for all chunkers.
	DefaultSize = 1000

	// DefaultOverlap is the default overlap for the character based chunkers.
	DefaultOverlap = 500

	// DefaultSentenceOverlap is the default number of neighboring sentences
	// the snapping sliding window borrows on each side of a chunk.
	DefaultSentenceOverlap = 5

	// DefaultDelimiter is the default sentence delimiter for the snapping
	// sliding window.
	DefaultDelimiter = '.'
)

// DefaultDelims is the default delimiter hierarchy for the [Recursive]
// chunker, tried coarsest to finest. The trailing empty string splits at
// arbitrary rune positions.
var DefaultDelims = []string{"\n\n", "\n", " ", ""}

// MarkdownDelims additionally tries heading markers and fenced-code/rule
// markers before falling back to the plain-text hierarchy.
var MarkdownDelims = []string{
	"#", "##", "###", "####", "#####", "######",
	"\n```", "\n---\n", "\n___\n",
	"\n\n", "\n", " ", "",
}

// DefaultSkipForward disqualifies sentence boundaries followed by common
// URL endings, abbreviation tails, and file extensions.
var DefaultSkipForward = []string{"com", "org", "net", "g.", "e.", "sh", "rs", "js", "json", "vhost"}

// DefaultSkipBack disqualifies sentence boundaries preceded by common
// abbreviations and URL prefixes.
var DefaultSkipBack = []string{"www", "etc"}

// span is a half-open byte range into the source text. Raw splits are
// tracked as spans so neighbor adjacency can be tested and adjacent ranges
// merged by widening instead of copying.
type span struct {
	start, end int
}

func (s span) len() int {
	return s.end - s.start
}

func (s span) empty() bool {
	return s.end <= s.start
}

// snapLeft returns the largest offset <= pos that begins a rune.
// Offsets that land inside a multi-byte rune round down.
func snapLeft(s string, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(s) {
		return len(s)
	}
	for pos > 0 && !utf8.RuneStart(s[pos]) {
		pos--
	}
	return pos
}

// snapRight returns the smallest offset >= pos that begins a rune.
func snapRight(s string, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(s) {
		return len(s)
	}
	for pos < len(s) && !utf8.RuneStart(s[pos]) {
		pos++
	}
	return pos
}

// sliceSpan slices text by sp, verifying that both offsets sit on rune
// boundaries. Every computed offset must already be snapped, so a failure
// here is an internal invariant violation and never a user condition.
func sliceSpan(text string, sp span) (string, error) {
	if sp.start < 0 || sp.end > len(text) || sp.start > sp.end {
		return "", &ErrBoundary{Offset: sp.start, Reason: "span out of range"}
	}
	if sp.start < len(text) && !utf8.RuneStart(text[sp.start]) {
		return "", &ErrBoundary{Offset: sp.start, Reason: "start splits a rune"}
	}
	if sp.end < len(text) && !utf8.RuneStart(text[sp.end]) {
		return "", &ErrBoundary{Offset: sp.end, Reason: "end splits a rune"}
	}
	return text[sp.start:sp.end], nil
}

// joinSpans merges source-order spans into one Chunk. When every span ends
// exactly where the next begins, the result is a single widened view of the
// source; a gap between spans forces a copy of the pieces into a fresh
// buffer.
func joinSpans(text string, parts []span) (Chunk, error) {
	contiguous := true
	for i := 1; i < len(parts); i++ {
		if parts[i-1].end != parts[i].start {
			contiguous = false
			break
		}
	}

	start := parts[0].start
	end := parts[len(parts)-1].end

	if contiguous {
		content, err := sliceSpan(text, span{start, end})
		if err != nil {
			return Chunk{}, err
		}
		return Chunk{Content: content, Start: start, End: end}, nil
	}

	var b strings.Builder
	for _, p := range parts {
		s, err := sliceSpan(text, p)
		if err != nil {
			return Chunk{}, err
		}
		b.WriteString(s)
	}
	return Chunk{Content: b.String(), Start: start, End: end}, nil
}
