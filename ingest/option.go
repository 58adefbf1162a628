package ingest

import textchunk "github.com/nvalent/textchunk"

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithChunker sets the chunker used to split extracted text.
func WithChunker(c textchunk.Chunker) Option {
	return func(p *Pipeline) { p.chunker = c }
}

// WithExtractor registers or replaces the Extractor for a content type.
func WithExtractor(ct ContentType, e Extractor) Option {
	return func(p *Pipeline) { p.extractors[ct] = e }
}

// WithTracer sets the tracer used to instrument pipeline runs.
func WithTracer(t textchunk.Tracer) Option {
	return func(p *Pipeline) { p.tracer = t }
}

// WithoutNormalization disables Unicode NFC normalization of extracted
// text.
func WithoutNormalization() Option {
	return func(p *Pipeline) { p.normalize = false }
}
