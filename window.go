package textchunk

import (
	"fmt"
	"strings"
)

var _ Chunker = (*SlidingWindow)(nil)

// SlidingWindow is the most basic of chunkers. It walks the input in fixed
// steps of size bytes and extends every window by overlap bytes on each
// side, with no regard for content. Window edges that land inside a
// multi-byte rune round down to the preceding rune boundary.
type SlidingWindow struct {
	size    int
	overlap int
}

// NewSlidingWindow creates a SlidingWindow. It returns *ErrConfig when
// size is not positive or overlap is not smaller than size.
func NewSlidingWindow(size, overlap int) (*SlidingWindow, error) {
	if size < 1 {
		return nil, &ErrConfig{Message: fmt.Sprintf("size must be positive, got %d", size)}
	}
	if overlap < 0 {
		return nil, &ErrConfig{Message: fmt.Sprintf("overlap must not be negative, got %d", overlap)}
	}
	if overlap >= size {
		return nil, &ErrConfig{Message: fmt.Sprintf("size (%d) must be greater than overlap (%d)", size, overlap)}
	}
	return &SlidingWindow{size: size, overlap: overlap}, nil
}

// DefaultSlidingWindow returns a SlidingWindow with DefaultSize and
// DefaultOverlap.
func DefaultSlidingWindow() *SlidingWindow {
	return &SlidingWindow{size: DefaultSize, overlap: DefaultOverlap}
}

// Chunk splits input into fixed-size overlapping chunks. Chunk i covers
// bytes [i*size - overlap, (i+1)*size + overlap) of the trimmed input;
// the final chunk is truncated at the input end.
func (w *SlidingWindow) Chunk(input string) ([]Chunk, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	if len(input) <= w.size+w.overlap {
		return []Chunk{{Content: input, Start: 0, End: len(input)}}, nil
	}

	var chunks []Chunk

	start := 0
	end := w.size
	for {
		chunkStart := 0
		if start > 0 {
			chunkStart = snapLeft(input, start-w.overlap)
		}
		chunkEnd := end + w.overlap

		if chunkEnd > len(input) {
			chunk, err := joinSpans(input, []span{{chunkStart, len(input)}})
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, chunk)
			break
		}

		chunk, err := joinSpans(input, []span{{chunkStart, snapLeft(input, chunkEnd)}})
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)

		start = end
		end += w.size
	}

	return chunks, nil
}
