package textchunk

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var _ Chunker = (*Recursive)(nil)

// Recursive chunks input by a delimiter hierarchy, tried coarsest to
// finest, modeled on langchain's RecursiveCharacterTextSplitter.
//
// The input is split inclusively on the first delimiter (the delimiter
// stays attached to the preceding piece). Pieces are packed into a running
// buffer as long as the buffer stays within size; a piece that cannot fit
// even alone is split again with the next delimiter in the hierarchy. A
// piece still larger than size when the hierarchy is exhausted is dropped:
// deliberate lossy behavior for content with no acceptable boundary.
//
// Raw splits are then stitched into chunks with up to overlap bytes
// borrowed from each neighboring split, so emitted chunks never exceed
// size + 2*overlap bytes.
type Recursive struct {
	size    int
	overlap int
	delims  []string
}

// NewRecursive creates a Recursive chunker. A nil or empty delims uses
// DefaultDelims.
func NewRecursive(size, overlap int, delims []string) (*Recursive, error) {
	if size < 1 {
		return nil, &ErrConfig{Message: fmt.Sprintf("size must be positive, got %d", size)}
	}
	if overlap < 0 {
		return nil, &ErrConfig{Message: fmt.Sprintf("overlap must not be negative, got %d", overlap)}
	}
	if len(delims) == 0 {
		delims = DefaultDelims
	}
	return &Recursive{size: size, overlap: overlap, delims: delims}, nil
}

// DefaultRecursive returns a Recursive chunker with DefaultSize,
// DefaultOverlap, and DefaultDelims.
func DefaultRecursive() *Recursive {
	return &Recursive{size: DefaultSize, overlap: DefaultOverlap, delims: DefaultDelims}
}

// MarkdownRecursive returns a Recursive chunker that respects markdown
// structure: headings, fenced code blocks, and horizontal rules are tried
// as split points before paragraph and line breaks.
func MarkdownRecursive(size, overlap int) (*Recursive, error) {
	return NewRecursive(size, overlap, MarkdownDelims)
}

// Chunk splits input with the delimiter hierarchy, then stitches the raw
// splits with neighbor overlap. Chunks that end up empty or all-whitespace
// are discarded.
func (r *Recursive) Chunk(input string) ([]Chunk, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	var splits []span
	if pending := r.chunkRecursive(input, span{0, len(input)}, 0, span{}, &splits); !pending.empty() {
		splits = append(splits, pending)
	}

	return r.stitch(input, splits)
}

// chunkRecursive splits sp with delims[idx] and packs the resulting pieces
// into buf, flushing full buffers to splits. A piece too large for an empty
// buffer recurses with the next delimiter, inheriting buf as a
// continuation seed; the caller adopts whatever partial buffer the deeper
// level leaves unflushed. The final partial buffer is returned rather than
// flushed so it can be merged with the caller's next sibling piece.
//
// When idx exhausts the hierarchy the piece is dropped and buf returned
// untouched.
func (r *Recursive) chunkRecursive(text string, sp span, idx int, buf span, splits *[]span) span {
	if idx >= len(r.delims) {
		return buf
	}

	for _, piece := range splitInclusive(text, sp, r.delims[idx]) {
		if buf.len()+piece.len() <= r.size {
			// Pieces arrive in source order, so a non-empty buffer always
			// ends exactly where the next piece begins.
			if buf.empty() {
				buf = piece
			} else {
				buf.end = piece.end
			}
			continue
		}

		if !buf.empty() {
			*splits = append(*splits, buf)
			buf = span{}

			if piece.len() <= r.size {
				buf = piece
				continue
			}
		}

		buf = r.chunkRecursive(text, piece, idx+1, buf, splits)
	}

	return buf
}

// splitInclusive splits sp on delim, keeping the delimiter attached to the
// preceding piece. An empty delimiter splits into individual runes.
func splitInclusive(text string, sp span, delim string) []span {
	if sp.empty() {
		return nil
	}

	if delim == "" {
		pieces := make([]span, 0, sp.len())
		for i := sp.start; i < sp.end; {
			_, size := utf8.DecodeRuneInString(text[i:sp.end])
			pieces = append(pieces, span{i, i + size})
			i += size
		}
		return pieces
	}

	var pieces []span
	start := sp.start
	for start < sp.end {
		idx := strings.Index(text[start:sp.end], delim)
		if idx < 0 {
			pieces = append(pieces, span{start, sp.end})
			break
		}
		end := start + idx + len(delim)
		pieces = append(pieces, span{start, end})
		start = end
	}
	return pieces
}

// stitch turns raw splits into final chunks by borrowing up to overlap
// trailing bytes from the previous split and up to overlap leading bytes
// from the next, both rounded inward to rune boundaries. Splits separated
// by dropped content are concatenated into a fresh buffer; everything else
// widens in place.
func (r *Recursive) stitch(input string, splits []span) ([]Chunk, error) {
	var chunks []Chunk

	for i, cur := range splits {
		parts := make([]span, 0, 3)

		if i > 0 {
			prev := splits[i-1]
			tail := prev
			if prev.len() > r.overlap {
				tail = span{snapRight(input, prev.end-r.overlap), prev.end}
			}
			parts = append(parts, tail)
		}

		parts = append(parts, cur)

		if i < len(splits)-1 {
			next := splits[i+1]
			head := next
			if next.len() > r.overlap {
				head = span{next.start, snapLeft(input, next.start+r.overlap)}
			}
			parts = append(parts, head)
		}

		chunk, err := joinSpans(input, parts)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(chunk.Content) == "" {
			continue
		}
		chunks = append(chunks, chunk)
	}

	return chunks, nil
}
