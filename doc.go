// Package textchunk splits text into bounded, possibly overlapping chunks
// suitable for retrieval and embedding pipelines.
//
// Three chunkers implement the [Chunker] contract:
//
//   - [SlidingWindow]: fixed-size windows by byte count, extended by a
//     fixed overlap on each side
//   - [Recursive]: delimiter-hierarchy splitting (paragraph, line, word)
//     with overlap stitched from neighboring splits
//   - [SnappingSlidingWindow]: sentence-aware windows whose boundaries
//     snap outward to real sentence breaks, with whole-sentence overlap and
//     skip patterns that suppress false boundaries (abbreviations, URLs)
//
// # Quick Start
//
//	chunker, err := textchunk.NewRecursive(1000, 500, nil)
//	if err != nil {
//		return err
//	}
//	chunks, err := chunker.Chunk(text)
//	if err != nil {
//		return err
//	}
//	for _, c := range chunks {
//		fmt.Println(c.Content)
//	}
//
// Every [Chunk] carries its byte offsets into the whitespace-trimmed input.
// Chunk content aliases the input wherever the chunk covers one contiguous
// range, so chunking large documents does not copy them; only chunks
// stitched across dropped content are copied into fresh buffers.
//
// Chunkers are pure. They hold no mutable state across calls, so a single
// chunker may be shared between goroutines and applied to independent
// inputs concurrently with no coordination.
//
// # Subpackages
//
// The ingest package wraps the chunkers in a document pipeline: extraction
// from markdown, HTML, and PDF, unicode normalization, and line-delimited
// JSON output for downstream embedding stages. The observer package adds
// OpenTelemetry tracing and metrics via the [Tracer] interface.
package textchunk
