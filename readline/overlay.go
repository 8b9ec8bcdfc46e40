package readline

// zeroWidthMark is appended before measuring the pre-completion text so
// trailing spaces cannot collapse out of the measurement.
const zeroWidthMark = "​"

// Overlay is the transient multi-candidate suggestion surface. It holds the
// request/response pair it was spawned for and the measured size of the text
// up to the completion point. It owns a narrow slice of key handling and
// reports commits to its owner through the commit callback; it never touches
// the buffer itself, and it never hides itself; the owner clears its slot.
type Overlay struct {
	req      CompletionRequest
	resp     CompletionResponse
	textSize Size
	onCommit func(text string, pos int)
}

func newOverlay(req CompletionRequest, resp CompletionResponse, m Measurer, onCommit func(text string, pos int)) *Overlay {
	runes := []rune(req.Input)
	pre := string(runes[:clampInt(resp.Pos, 0, len(runes))])
	return &Overlay{
		req:      req,
		resp:     resp,
		textSize: m.Measure(pre + zeroWidthMark),
		onCommit: onCommit,
	}
}

// Candidates returns the completion texts, one per overlay row.
func (o *Overlay) Candidates() []string { return o.resp.Completions }

// TextSize returns the measured size of the pre-completion text.
func (o *Overlay) TextSize() Size { return o.textSize }

// HandleKey gives the overlay first refusal on a token. Tab is swallowed so
// a second lookup cannot nest under an open overlay; Enter commits the first
// candidate; Escape commits the empty string, which leaves the buffer
// untouched. Everything else falls through to the line editor.
func (o *Overlay) HandleKey(token string) bool {
	switch token {
	case "Tab":
		return true
	case "Enter":
		o.commit(o.resp.Completions[0])
		return true
	case "Escape":
		o.commit("")
		return true
	}
	return false
}

func (o *Overlay) commit(text string) {
	if o.onCommit != nil {
		o.onCommit(text, o.resp.Pos)
	}
}
