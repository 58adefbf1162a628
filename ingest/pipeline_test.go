package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	textchunk "github.com/nvalent/textchunk"
)

func TestPipelineRun(t *testing.T) {
	p := NewPipeline()

	content := []byte("First paragraph of the document.\n\nSecond paragraph with more words.")
	res, err := p.Run(context.Background(), content, TypePlainText, "memo.txt", "Memo")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	doc := res.Document
	if doc.ID == "" {
		t.Error("document ID is empty")
	}
	if doc.Title != "Memo" || doc.Source != "memo.txt" {
		t.Errorf("document = %+v, want title Memo source memo.txt", doc)
	}
	if doc.CreatedAt == 0 {
		t.Error("document CreatedAt is zero")
	}

	if len(res.Chunks) == 0 {
		t.Fatal("no chunk records")
	}
	for i, rec := range res.Chunks {
		if rec.ID == "" {
			t.Errorf("chunks[%d].ID is empty", i)
		}
		if rec.DocumentID != doc.ID {
			t.Errorf("chunks[%d].DocumentID = %q, want %q", i, rec.DocumentID, doc.ID)
		}
		if rec.Index != i {
			t.Errorf("chunks[%d].Index = %d", i, rec.Index)
		}
		if len(rec.Content) == rec.End-rec.Start && rec.Content != doc.Content[rec.Start:rec.End] {
			t.Errorf("chunks[%d] offsets do not match document content", i)
		}
	}
}

func TestPipelineNormalizes(t *testing.T) {
	p := NewPipeline()

	// e + combining acute composes to a single rune under NFC.
	content := []byte("résumé text")
	res, err := p.Run(context.Background(), content, TypePlainText, "cv.txt", "CV")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(res.Document.Content, "résumé") {
		t.Errorf("Content = %q, want composed résumé", res.Document.Content)
	}

	raw := NewPipeline(WithoutNormalization())
	res, err = raw.Run(context.Background(), content, TypePlainText, "cv.txt", "CV")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(res.Document.Content, "é") {
		t.Errorf("Content = %q, want decomposed form preserved", res.Document.Content)
	}
}

func TestPipelineCustomChunker(t *testing.T) {
	w, err := textchunk.NewSlidingWindow(10, 2)
	if err != nil {
		t.Fatalf("NewSlidingWindow: %v", err)
	}
	p := NewPipeline(WithChunker(w))

	res, err := p.Run(context.Background(), []byte(strings.Repeat("abcde ", 10)), TypePlainText, "s", "s")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Chunks) < 2 {
		t.Errorf("len(chunks) = %d, want several windows", len(res.Chunks))
	}
}

func TestPipelineRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	if err := os.WriteFile(path, []byte("# Note\n\nA markdown paragraph."), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := NewPipeline()
	res, err := p.RunFile(context.Background(), path)
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if res.Document.Title != "note.md" {
		t.Errorf("Title = %q, want note.md", res.Document.Title)
	}
	if !strings.Contains(res.Document.Content, "A markdown paragraph.") {
		t.Errorf("Content = %q, want extracted paragraph", res.Document.Content)
	}
	if strings.Contains(res.Document.Content, "#") {
		t.Errorf("Content = %q, heading marker not stripped", res.Document.Content)
	}
}

func TestPipelineTracer(t *testing.T) {
	tr := &recordingTracer{}
	p := NewPipeline(WithTracer(tr))

	_, err := p.Run(context.Background(), []byte("some text"), TypePlainText, "s", "s")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(tr.spans) != 1 || tr.spans[0].name != "ingest.run" {
		t.Fatalf("spans = %+v, want one ingest.run span", tr.spans)
	}
	if !tr.spans[0].ended {
		t.Error("span not ended")
	}
}

func TestWriteJSONL(t *testing.T) {
	p := NewPipeline()
	res, err := p.Run(context.Background(), []byte("line one\n\nline two"), TypePlainText, "s", "s")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSONL(&buf, res); err != nil {
		t.Fatalf("WriteJSONL: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(res.Chunks) {
		t.Fatalf("got %d lines, want %d", len(lines), len(res.Chunks))
	}
	for i, line := range lines {
		var rec ChunkRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if rec.DocumentID != res.Document.ID {
			t.Errorf("line %d DocumentID = %q, want %q", i, rec.DocumentID, res.Document.ID)
		}
	}
}

// --- test tracer ---

type recordedSpan struct {
	name  string
	ended bool
	errs  []error
}

type recordingTracer struct {
	spans []*recordedSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, attrs ...textchunk.SpanAttr) (context.Context, textchunk.Span) {
	s := &recordedSpan{name: name}
	t.spans = append(t.spans, s)
	return ctx, s
}

func (s *recordedSpan) SetAttr(attrs ...textchunk.SpanAttr) {}

func (s *recordedSpan) Event(name string, attrs ...textchunk.SpanAttr) {}

func (s *recordedSpan) Error(err error) { s.errs = append(s.errs, err) }

func (s *recordedSpan) End() { s.ended = true }
