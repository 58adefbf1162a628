package observer

import (
	"context"
	"errors"
	"testing"

	textchunk "github.com/nvalent/textchunk"
)

// testInstruments creates Instruments against the global OTEL providers
// (no-ops by default). This is safe for testing delegation behavior
// without any real OTEL backend.
func testInstruments(t *testing.T) *Instruments {
	t.Helper()
	inst, err := NewInstruments()
	if err != nil {
		t.Fatalf("NewInstruments: %v", err)
	}
	return inst
}

// mockChunker for observer tests.
type mockChunker struct {
	chunks []textchunk.Chunk
	err    error
	calls  int
}

func (m *mockChunker) Chunk(input string) ([]textchunk.Chunk, error) {
	m.calls++
	return m.chunks, m.err
}

func TestObservedChunkerDelegates(t *testing.T) {
	want := []textchunk.Chunk{
		{Content: "one", Start: 0, End: 3},
		{Content: "two", Start: 3, End: 6},
	}
	inner := &mockChunker{chunks: want}
	oc := WrapChunker(context.Background(), inner, "mock", testInstruments(t))

	got, err := oc.Chunk("onetwo")
	if err != nil {
		t.Fatalf("Chunk: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("inner called %d times, want 1", inner.calls)
	}
	if len(got) != len(want) {
		t.Fatalf("len(chunks) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunks[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestObservedChunkerPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	inner := &mockChunker{err: wantErr}
	oc := WrapChunker(context.Background(), inner, "mock", testInstruments(t))

	_, err := oc.Chunk("anything")
	if !errors.Is(err, wantErr) {
		t.Errorf("Chunk error = %v, want %v", err, wantErr)
	}
}

func TestObservedChunkerRealChunker(t *testing.T) {
	oc := WrapChunker(context.Background(), textchunk.DefaultSlidingWindow(), "window", testInstruments(t))

	chunks, err := oc.Chunk("a small input")
	if err != nil {
		t.Fatalf("Chunk: %v", err)
	}
	if len(chunks) != 1 || chunks[0].Content != "a small input" {
		t.Errorf("chunks = %+v, want single full chunk", chunks)
	}
}

func TestNewTracerSpans(t *testing.T) {
	tr := NewTracer()

	ctx, span := tr.Start(context.Background(), "op",
		textchunk.StringAttr("k", "v"),
		textchunk.IntAttr("n", 3),
	)
	if ctx == nil {
		t.Fatal("Start returned nil context")
	}
	span.SetAttr(textchunk.StringAttr("later", "attr"))
	span.Event("milestone", textchunk.IntAttr("count", 1))
	span.Error(errors.New("recorded"))
	span.End()
}

func TestToOTELAttr(t *testing.T) {
	cases := []textchunk.SpanAttr{
		{Key: "s", Value: "str"},
		{Key: "i", Value: 7},
		{Key: "i64", Value: int64(7)},
		{Key: "f", Value: 3.14},
		{Key: "b", Value: true},
		{Key: "other", Value: struct{ X int }{1}},
	}
	for _, a := range cases {
		kv := toOTELAttr(a)
		if string(kv.Key) != a.Key {
			t.Errorf("toOTELAttr(%v).Key = %q, want %q", a, kv.Key, a.Key)
		}
		if !kv.Valid() {
			t.Errorf("toOTELAttr(%v) produced invalid attribute", a)
		}
	}
}
