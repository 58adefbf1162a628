package observer

import (
	"context"
	"time"

	textchunk "github.com/nvalent/textchunk"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ObservedChunker wraps a textchunk.Chunker with OTEL instrumentation.
// Chunking itself takes no context, so spans and metrics are emitted
// against the context given at wrap time.
type ObservedChunker struct {
	inner textchunk.Chunker
	inst  *Instruments
	kind  string
	ctx   context.Context
}

// WrapChunker returns an instrumented chunker that emits traces, metrics,
// and logs. kind names the chunker in telemetry, e.g. "recursive".
func WrapChunker(ctx context.Context, inner textchunk.Chunker, kind string, inst *Instruments) *ObservedChunker {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ObservedChunker{inner: inner, inst: inst, kind: kind, ctx: ctx}
}

var _ textchunk.Chunker = (*ObservedChunker)(nil)

func (o *ObservedChunker) Chunk(input string) ([]textchunk.Chunk, error) {
	ctx, span := o.inst.Tracer.Start(o.ctx, "chunk.split", trace.WithAttributes(
		AttrChunkerKind.String(o.kind),
		AttrInputBytes.Int(len(input)),
	))
	defer span.End()
	start := time.Now()

	chunks, err := o.inner.Chunk(input)

	durationMs := float64(time.Since(start).Milliseconds())
	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	var contentBytes int
	for _, c := range chunks {
		contentBytes += len(c.Content)
	}

	span.SetAttributes(
		AttrChunkCount.Int(len(chunks)),
		AttrChunkBytes.Int(contentBytes),
		AttrStatus.String(status),
	)

	kindAttrs := metric.WithAttributes(AttrChunkerKind.String(o.kind))
	o.inst.DocumentsIngested.Add(ctx, 1, metric.WithAttributes(
		AttrChunkerKind.String(o.kind),
		attribute.String("status", status),
	))
	o.inst.ChunksProduced.Add(ctx, int64(len(chunks)), kindAttrs)
	o.inst.ChunkBytes.Add(ctx, int64(contentBytes), kindAttrs)
	o.inst.ChunkDuration.Record(ctx, durationMs, kindAttrs)

	// Structured log
	var rec otellog.Record
	rec.SetSeverity(otellog.SeverityInfo)
	rec.SetBody(otellog.StringValue("chunking completed"))
	rec.AddAttributes(
		otellog.String("chunk.kind", o.kind),
		otellog.Int("chunk.count", len(chunks)),
		otellog.Int("chunk.bytes", contentBytes),
		otellog.Float64("chunk.duration_ms", durationMs),
		otellog.String("status", status),
	)
	o.inst.Logger.Emit(ctx, rec)

	return chunks, err
}
