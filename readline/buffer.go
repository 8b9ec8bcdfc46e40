package readline

// Buffer is the authoritative text state of the line: the text itself plus a
// caret expressed as a [start, end] selection range. A collapsed range
// (start == end) is a plain caret. All positions are rune offsets and every
// mutator re-establishes 0 <= start <= end <= len(text).
type Buffer struct {
	text     []rune
	selStart int
	selEnd   int
}

// NewBuffer returns a buffer holding text with the caret at the end.
func NewBuffer(text string) *Buffer {
	b := &Buffer{text: []rune(text)}
	b.selStart = len(b.text)
	b.selEnd = len(b.text)
	return b
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the text length in runes.
func (b *Buffer) Len() int { return len(b.text) }

// Selection returns the current selection range. start == end means a caret.
func (b *Buffer) Selection() (start, end int) { return b.selStart, b.selEnd }

// Caret returns the selection start, which every editing command treats as
// the caret position.
func (b *Buffer) Caret() int { return b.selStart }

// SetCaret collapses the selection to a caret at pos, clamped into the text.
func (b *Buffer) SetCaret(pos int) {
	pos = clampInt(pos, 0, len(b.text))
	b.selStart = pos
	b.selEnd = pos
}

// Select sets the selection range, normalizing order and clamping both ends.
func (b *Buffer) Select(start, end int) {
	start = clampInt(start, 0, len(b.text))
	end = clampInt(end, 0, len(b.text))
	if end < start {
		start, end = end, start
	}
	b.selStart = start
	b.selEnd = end
}

// SetText replaces the whole text and clamps the selection into it.
func (b *Buffer) SetText(text string) {
	b.text = []rune(text)
	b.Select(b.selStart, b.selEnd)
}

// DeleteRange removes [start, end) and collapses the caret to start.
func (b *Buffer) DeleteRange(start, end int) {
	b.Replace(start, end, "")
}

// Replace splices text over [start, end) and leaves the caret right after
// the inserted text.
func (b *Buffer) Replace(start, end int, text string) {
	start = clampInt(start, 0, len(b.text))
	end = clampInt(end, 0, len(b.text))
	if end < start {
		start, end = end, start
	}
	ins := []rune(text)
	out := make([]rune, 0, len(b.text)-(end-start)+len(ins))
	out = append(out, b.text[:start]...)
	out = append(out, ins...)
	out = append(out, b.text[end:]...)
	b.text = out
	b.SetCaret(start + len(ins))
}
