package textchunk

import "testing"

// --- forward cursor tests ---

func TestCursorAdvancesToDelimiter(t *testing.T) {
	input := "This is such a sentence. One of the sentences in the world. Super wow."
	c := newCursor(input, '.')

	if c.slice() != "" {
		t.Fatalf("slice() before advance = %q, want empty", c.slice())
	}

	expected := []string{
		"This is such a sentence.",
		"This is such a sentence. One of the sentences in the world.",
		input,
	}
	for _, want := range expected {
		c.advance()
		if got := c.slice(); got != want {
			t.Errorf("slice() = %q, want %q", got, want)
		}
	}
}

func TestCursorAdvancesPastRepeatingDelimiters(t *testing.T) {
	input := "This is such a sentence... One of the sentences in the world. Super wow."
	c := newCursor(input, '.')

	expected := []string{
		"This is such a sentence...",
		"This is such a sentence... One of the sentences in the world.",
		input,
	}
	for _, want := range expected {
		c.advance()
		if got := c.slice(); got != want {
			t.Errorf("slice() = %q, want %q", got, want)
		}
	}
}

func TestCursorAdvancesExact(t *testing.T) {
	input := "This is Sparta my friend"
	c := newCursor(input, '.')

	var buf string
	for _, word := range splitInclusiveWords(input) {
		if got := c.slice(); got != buf {
			t.Errorf("slice() = %q, want %q", got, buf)
		}
		c.advanceExact(len(word))
		buf += word
	}
}

func TestCursorPeekForward(t *testing.T) {
	input := "This. Is. Sentence. etc."
	c := newCursor(input, '.')

	expected := []string{"This", " Is", " Sentence", " etc"}
	for _, pat := range expected {
		if !c.peekForward(pat) {
			t.Errorf("peekForward(%q) = false, want true", pat)
		}
		c.advance()
	}
	if c.peekForward("etc") {
		t.Error("peekForward(etc) at end = true, want false")
	}
}

func TestCursorPeekBack(t *testing.T) {
	input := "This. Is. Sentence. etc."
	c := newCursor(input, '.')

	if c.peekBack("This") {
		t.Error("peekBack(This) before advance = true, want false")
	}
	expected := []string{"This", " Is", " Sentence", " etc"}
	for _, pat := range expected {
		c.advance()
		if !c.peekBack(pat) {
			t.Errorf("peekBack(%q) = false, want true", pat)
		}
	}
	if !c.peekBack("etc") {
		t.Error("peekBack(etc) at end = false, want true")
	}
}

func TestCursorUnicodeDelimiter(t *testing.T) {
	input := "一つ目の文。二つ目の文。三つ目。"
	c := newCursor(input, '。')

	expected := []string{
		"一つ目の文。",
		"一つ目の文。二つ目の文。",
		input,
	}
	for _, want := range expected {
		c.advance()
		if got := c.slice(); got != want {
			t.Errorf("slice() = %q, want %q", got, want)
		}
	}
	if !c.done() {
		t.Error("done() = false after consuming all text")
	}
}

// --- reverse cursor tests ---

func TestReverseCursorAdvancesToDelimiter(t *testing.T) {
	input := "This is such a sentence. One of the sentences in the world. Super wow."
	c := newReverseCursor(input, '.')

	expected := []string{
		" Super wow.",
		" One of the sentences in the world. Super wow.",
		input,
	}
	for _, want := range expected {
		c.advance()
		if got := c.slice(); got != want {
			t.Errorf("slice() = %q, want %q", got, want)
		}
	}
}

func TestReverseCursorAdvancesPastRepeatingDelimiters(t *testing.T) {
	input := "This is such a sentence..... Very sentencey. So many.......... words. One of the sentences in the world... Super wow."
	c := newReverseCursor(input, '.')

	expected := []string{
		" One of the sentences in the world... Super wow.",
		" So many.......... words. One of the sentences in the world... Super wow.",
		input,
	}
	for _, want := range expected {
		c.advance()
		if got := c.slice(); got != want {
			t.Errorf("slice() = %q, want %q", got, want)
		}
	}
}

func TestReverseCursorAdvancesExact(t *testing.T) {
	input := "This is Sparta my friend"
	c := newReverseCursor(input, '.')

	words := splitInclusiveWords(input)
	var buf string
	for i := len(words) - 1; i >= 0; i-- {
		if got := c.slice(); got != buf {
			t.Errorf("slice() = %q, want %q", got, buf)
		}
		c.advanceExact(len(words[i]))
		buf = words[i] + buf
	}
}

func TestReverseCursorPeekForward(t *testing.T) {
	input := "This. Is. Sentence. etc."
	c := newReverseCursor(input, '.')

	expected := []string{" etc", " Sentence", " Is"}
	for _, pat := range expected {
		c.advance()
		if !c.peekForward(pat) {
			t.Errorf("peekForward(%q) = false, want true", pat)
		}
	}
	c.advance()
	if !c.peekForward("This") {
		t.Error("peekForward(This) at start = false, want true")
	}
}

func TestReverseCursorPeekBack(t *testing.T) {
	input := "This. Is. Sentence. etc."
	c := newReverseCursor(input, '.')

	if !c.peekBack("etc") {
		t.Error("peekBack(etc) before advance = false, want true")
	}
	expected := []string{" etc", " Sentence", " Is", "This"}
	for _, pat := range expected {
		if !c.peekBack(pat) {
			t.Errorf("peekBack(%q) = false, want true", pat)
		}
		c.advance()
	}
	if c.peekBack("etc") {
		t.Error("peekBack(etc) at start = true, want false")
	}
}

// splitInclusiveWords splits on spaces keeping the space attached to the
// preceding word, mirroring how advanceExact consumers walk the text.
func splitInclusiveWords(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			out = append(out, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
