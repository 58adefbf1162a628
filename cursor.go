package textchunk

import "unicode/utf8"

// cursor scans forward through text. Its position is always snapped to
// just past a delimiter occurrence; a maximal run of repeated delimiters
// ("...") counts as a single boundary.
type cursor struct {
	text  string
	pos   int
	delim rune
	width int
}

func newCursor(text string, delim rune) *cursor {
	return &cursor{text: text, delim: delim, width: utf8.RuneLen(delim)}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.text)
}

// slice returns everything up to the current position.
func (c *cursor) slice() string {
	if c.pos >= len(c.text) {
		return c.text
	}
	return c.text[:c.pos]
}

// advance moves the position just past the next delimiter occurrence,
// consuming any immediately repeated delimiters. Reaching the end of the
// text without a delimiter leaves the position at the end.
func (c *cursor) advance() {
	i := c.pos
	for i < len(c.text) {
		r, size := utf8.DecodeRuneInString(c.text[i:])
		i += size
		if r == c.delim {
			break
		}
	}
	for i < len(c.text) {
		r, size := utf8.DecodeRuneInString(c.text[i:])
		if r != c.delim {
			break
		}
		i += size
	}
	c.pos = i
}

// advanceExact moves the position forward by n bytes without treating
// anything skipped as a boundary. Used to jump past matched skip patterns.
func (c *cursor) advanceExact(n int) {
	c.pos = snapRight(c.text, min(c.pos+n, len(c.text)))
}

// peekBack reports whether pat sits immediately before the delimiter the
// cursor last crossed.
func (c *cursor) peekBack(pat string) bool {
	end := c.pos - c.width
	start := end - len(pat)
	if pat == "" || start < 0 {
		return false
	}
	return c.text[start:end] == pat
}

// peekForward reports whether pat sits immediately after the current
// position. Patterns touching the very end of the text do not match: end
// of input is always a real boundary.
func (c *cursor) peekForward(pat string) bool {
	if pat == "" || c.pos+len(pat) >= len(c.text) {
		return false
	}
	return c.text[c.pos:c.pos+len(pat)] == pat
}

// advanceIfPeek jumps past the first matching skip pattern and reports
// whether one matched. Back patterns are checked before forward patterns.
func (c *cursor) advanceIfPeek(forward, back []string) bool {
	for _, pat := range back {
		if c.peekBack(pat) {
			c.advanceExact(len(pat))
			return true
		}
	}
	for _, pat := range forward {
		if c.peekForward(pat) {
			c.advanceExact(len(pat))
			return true
		}
	}
	return false
}

// reverseCursor scans backward from the end of text toward its start. Its
// position rests on a delimiter rune (or at offset zero once the text is
// exhausted). Unlike the forward cursor it never stops at runs of repeated
// delimiters: an ellipsis does not end a sentence when scanning backward.
type reverseCursor struct {
	text  string
	pos   int
	delim rune
}

func newReverseCursor(text string, delim rune) *reverseCursor {
	pos := 0
	if text != "" {
		_, size := utf8.DecodeLastRuneInString(text)
		pos = len(text) - size
	}
	return &reverseCursor{text: text, pos: pos, delim: delim}
}

func (c *reverseCursor) done() bool {
	return c.pos == 0
}

// slice returns everything after the rune the cursor rests on, or the
// whole text once the cursor has reached the start.
func (c *reverseCursor) slice() string {
	if c.pos == 0 {
		return c.text
	}
	_, size := utf8.DecodeRuneInString(c.text[c.pos:])
	return c.text[c.pos+size:]
}

// advance moves the position backward to the previous lone delimiter. The
// delimiter the cursor currently rests on does not count, and neither does
// any delimiter that is part of a run.
func (c *reverseCursor) advance() {
	if c.pos == 0 {
		return
	}

	first := true
	j := c.pos
	for {
		if j == 0 {
			c.pos = 0
			return
		}

		r, _ := utf8.DecodeRuneInString(c.text[j:])
		if r != c.delim {
			j = prevRuneStart(c.text, j)
			continue
		}

		// Walk to the start of the delimiter run extending backward from j.
		run := false
		for j > 0 {
			p := prevRuneStart(c.text, j)
			pr, _ := utf8.DecodeRuneInString(c.text[p:])
			if pr != c.delim {
				break
			}
			j = p
			run = true
		}

		if !run && !first {
			c.pos = j
			return
		}
		first = false

		if j == 0 {
			c.pos = 0
			return
		}
		j = prevRuneStart(c.text, j)
	}
}

// advanceExact moves the position backward by n bytes without treating
// anything skipped as a boundary.
func (c *reverseCursor) advanceExact(n int) {
	c.pos = snapLeft(c.text, max(c.pos-n, 0))
}

// peekBack reports whether pat sits immediately before the delimiter the
// cursor rests on.
func (c *reverseCursor) peekBack(pat string) bool {
	if pat == "" || c.pos < len(pat) {
		return false
	}
	return c.text[c.pos-len(pat):c.pos] == pat
}

// peekForward reports whether pat sits immediately after the delimiter the
// cursor rests on.
func (c *reverseCursor) peekForward(pat string) bool {
	start := c.pos
	if c.pos > 0 {
		_, size := utf8.DecodeRuneInString(c.text[c.pos:])
		start = c.pos + size
	}
	if pat == "" || start+len(pat) > len(c.text) {
		return false
	}
	return c.text[start:start+len(pat)] == pat
}

// advanceIfPeek jumps past the first matching skip pattern and reports
// whether one matched. Back patterns are checked before forward patterns.
func (c *reverseCursor) advanceIfPeek(forward, back []string) bool {
	for _, pat := range back {
		if c.peekBack(pat) {
			c.advanceExact(len(pat))
			return true
		}
	}
	for _, pat := range forward {
		if c.peekForward(pat) {
			c.advanceExact(len(pat))
			return true
		}
	}
	return false
}

// prevRuneStart returns the offset of the rune preceding pos.
func prevRuneStart(s string, pos int) int {
	_, size := utf8.DecodeLastRuneInString(s[:pos])
	return pos - size
}
