package textchunk

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var _ Chunker = (*SnappingSlidingWindow)(nil)

// SnappingSlidingWindow is a sentence-aware sliding window. It accumulates
// input sentence by sentence until a size threshold, snaps the chunk end
// outward to the enclosing sentence boundary, then borrows overlap whole
// sentences of context on each side. Size is therefore a soft target:
// chunk edges always land on real sentence breaks, so chunks typically run
// slightly larger than size.
//
// Skip patterns suppress false boundaries. A delimiter immediately
// preceded by a skip-back pattern ("etc") or immediately followed by a
// skip-forward pattern ("com", "org") is not a sentence end; the cursor
// jumps past the pattern and accumulation continues.
type SnappingSlidingWindow struct {
	size        int
	overlap     int
	delim       rune
	skipForward []string
	skipBack    []string
}

// SnapOption configures a SnappingSlidingWindow.
type SnapOption func(*SnappingSlidingWindow)

// WithDelimiter sets the sentence delimiter. The default is '.'.
func WithDelimiter(delim rune) SnapOption {
	return func(s *SnappingSlidingWindow) { s.delim = delim }
}

// WithSkipForward replaces the patterns that, found immediately after a
// delimiter, disqualify it as a sentence boundary.
func WithSkipForward(pats ...string) SnapOption {
	return func(s *SnappingSlidingWindow) { s.skipForward = pats }
}

// WithSkipBack replaces the patterns checked immediately before a
// delimiter.
func WithSkipBack(pats ...string) SnapOption {
	return func(s *SnappingSlidingWindow) { s.skipBack = pats }
}

// NewSnappingSlidingWindow creates a SnappingSlidingWindow with the given
// size threshold and sentence overlap. Without options it uses the '.'
// delimiter and the default skip pattern lists.
func NewSnappingSlidingWindow(size, overlap int, opts ...SnapOption) (*SnappingSlidingWindow, error) {
	if size < 1 {
		return nil, &ErrConfig{Message: fmt.Sprintf("size must be positive, got %d", size)}
	}
	if overlap < 0 {
		return nil, &ErrConfig{Message: fmt.Sprintf("overlap must not be negative, got %d", overlap)}
	}
	s := &SnappingSlidingWindow{
		size:        size,
		overlap:     overlap,
		delim:       DefaultDelimiter,
		skipForward: DefaultSkipForward,
		skipBack:    DefaultSkipBack,
	}
	for _, o := range opts {
		o(s)
	}
	if !utf8.ValidRune(s.delim) {
		return nil, &ErrConfig{Message: "delimiter is not a valid rune"}
	}
	return s, nil
}

// DefaultSnappingSlidingWindow returns a SnappingSlidingWindow with
// DefaultSize, DefaultSentenceOverlap, the '.' delimiter, and the default
// skip pattern lists.
func DefaultSnappingSlidingWindow() *SnappingSlidingWindow {
	return &SnappingSlidingWindow{
		size:        DefaultSize,
		overlap:     DefaultSentenceOverlap,
		delim:       DefaultDelimiter,
		skipForward: DefaultSkipForward,
		skipBack:    DefaultSkipBack,
	}
}

// Chunk splits input into overlapping sentence-aligned chunks. The final
// partial buffer, if non-empty, is emitted as the last chunk even when it
// is under size.
func (s *SnappingSlidingWindow) Chunk(input string) ([]Chunk, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	var chunks []Chunk

	cur := newCursor(input, s.delim)
	_, seed := utf8.DecodeRuneInString(input)
	core := span{0, seed}
	start := seed

	for {
		if start >= len(input) {
			if !core.empty() {
				chunk, err := joinSpans(input, []span{core})
				if err != nil {
					return nil, err
				}
				chunks = append(chunks, chunk)
			}
			break
		}

		cur.advance()

		// Skip patterns only apply to interior boundaries; the end of the
		// input always ends a sentence.
		if !cur.done() && cur.advanceIfPeek(s.skipForward, s.skipBack) {
			continue
		}

		core.end = cur.pos
		start = cur.pos

		if core.len() < s.size {
			continue
		}

		// Gather overlap sentences of context on each side, re-applying
		// skip suppression in both directions.
		prev := input[:core.start]
		next := input[core.end:]
		pc := newReverseCursor(prev, s.delim)
		nc := newCursor(next, s.delim)
		for i := 0; i < s.overlap; i++ {
			for {
				pc.advance()
				if pc.done() || !pc.advanceIfPeek(s.skipForward, s.skipBack) {
					break
				}
			}
			for {
				nc.advance()
				if nc.done() || !nc.advanceIfPeek(s.skipForward, s.skipBack) {
					break
				}
			}
		}

		lookback := pc.slice()
		lookahead := nc.slice()
		full := span{core.start - len(lookback), core.end + len(lookahead)}
		chunk, err := joinSpans(input, []span{full})
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)

		// Resume accumulation one rune past the core end.
		w := 0
		if core.end < len(input) {
			_, w = utf8.DecodeRuneInString(input[core.end:])
		}
		nextStart := core.end + w
		if nextStart+nc.pos >= len(input) {
			break
		}
		core = span{core.end, nextStart}
		start = nextStart
	}

	return chunks, nil
}
