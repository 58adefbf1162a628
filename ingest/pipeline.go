package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"

	textchunk "github.com/nvalent/textchunk"
)

// Document is the source text a pipeline run was fed, after extraction and
// normalization.
type Document struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Source    string `json:"source"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}

// ChunkRecord is one chunk of a document, ready for an embedding stage.
// Start and End are byte offsets into Document.Content.
type ChunkRecord struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"`
	Index      int    `json:"index"`
	Content    string `json:"content"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
}

// Result holds the outcome of one pipeline run.
type Result struct {
	Document Document
	Chunks   []ChunkRecord
}

// Pipeline runs extract, normalize, and chunk over raw documents.
// Embedding and storage are not handled here; callers consume the chunk
// records, typically as JSONL via WriteJSONL.
type Pipeline struct {
	chunker    textchunk.Chunker
	extractors map[ContentType]Extractor
	tracer     textchunk.Tracer
	normalize  bool
}

// NewPipeline creates a Pipeline with the default recursive chunker, the
// built-in extractor registry, and NFC normalization on.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		chunker:    textchunk.DefaultRecursive(),
		extractors: defaultExtractors(),
		normalize:  true,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Run extracts text from content according to ct, normalizes it, and
// chunks it into records.
func (p *Pipeline) Run(ctx context.Context, content []byte, ct ContentType, source, title string) (Result, error) {
	var span textchunk.Span
	if p.tracer != nil {
		ctx, span = p.tracer.Start(ctx, "ingest.run",
			textchunk.StringAttr("content_type", string(ct)),
			textchunk.StringAttr("source", source),
		)
		defer span.End()
	}

	ext, ok := p.extractors[ct]
	if !ok {
		ext = PlainTextExtractor{}
	}

	text, err := ext.Extract(content)
	if err != nil {
		err = fmt.Errorf("extract %s: %w", ct, err)
		if span != nil {
			span.Error(err)
		}
		return Result{}, err
	}
	if p.normalize {
		// NFC so visually identical text always chunks identically.
		text = norm.NFC.String(text)
	}

	chunks, err := p.chunker.Chunk(text)
	if err != nil {
		err = fmt.Errorf("chunk %s: %w", source, err)
		if span != nil {
			span.Error(err)
		}
		return Result{}, err
	}

	doc := Document{
		ID:        textchunk.NewID(),
		Title:     title,
		Source:    source,
		Content:   text,
		CreatedAt: textchunk.NowUnix(),
	}

	records := make([]ChunkRecord, len(chunks))
	for i, c := range chunks {
		records[i] = ChunkRecord{
			ID:         textchunk.NewID(),
			DocumentID: doc.ID,
			Index:      i,
			Content:    c.Content,
			Start:      c.Start,
			End:        c.End,
		}
	}

	if span != nil {
		span.SetAttr(textchunk.IntAttr("chunks", len(records)))
	}

	return Result{Document: doc, Chunks: records}, nil
}

// RunFile reads path and runs the pipeline, picking the extractor from the
// file extension.
func (p *Pipeline) RunFile(ctx context.Context, path string) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	ct := ContentTypeFromExtension(filepath.Ext(path))
	return p.Run(ctx, content, ct, path, filepath.Base(path))
}

// WriteJSONL writes each chunk record of res as one JSON line.
func WriteJSONL(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	for _, rec := range res.Chunks {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode chunk %d: %w", rec.Index, err)
		}
	}
	return nil
}
