package readline

import "log/slog"

// EditorConfig configures a bare Editor. The zero value is usable; nil
// fields get defaults.
type EditorConfig struct {
	// Text is the initial line content.
	Text string
	// OnCommit is invoked on Enter with the full line. The editor leaves the
	// buffer unchanged; the host decides whether to clear it.
	OnCommit func(text string)
	// Measurer sizes the pre-completion text when an overlay opens.
	Measurer Measurer
	// Logger receives diagnostics for unhandled tokens and failed lookups.
	Logger *slog.Logger
}

// Editor is the line-editing engine. It owns the buffer and caret, dispatches
// canonical key tokens, and coordinates the completion pipeline: it holds at
// most one overlay and at most one in-flight completion lookup, and both
// slots are cleared before anything new is created, so a second instance can
// never exist.
type Editor struct {
	buf     *Buffer
	overlay *Overlay

	// gen counts completion lookups; pendingGen names the one still current.
	// Zero means no lookup is in flight. Stale results are recognized by a
	// generation mismatch and dropped.
	gen        uint64
	pendingGen uint64
	pendingReq CompletionRequest
	launch     bool

	// blurSel preserves the selection across a blur/focus cycle to counter
	// the platform habit of selecting everything on focus.
	blurSel [2]int

	measure  Measurer
	onCommit func(text string)
	logger   *slog.Logger
}

// NewEditor returns an editor over cfg.Text with the caret at the end.
func NewEditor(cfg EditorConfig) *Editor {
	if cfg.Measurer == nil {
		cfg.Measurer = cellMeasurer{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Editor{
		buf:      NewBuffer(cfg.Text),
		measure:  cfg.Measurer,
		onCommit: cfg.OnCommit,
		logger:   cfg.Logger,
	}
}

// Buffer exposes the underlying text state. Hosts use it for rendering and
// for the default edits (literal insertion, basic caret keys) the token
// dispatch declines.
func (e *Editor) Buffer() *Buffer { return e.buf }

// Overlay returns the active completion overlay, or nil.
func (e *Editor) Overlay() *Overlay { return e.overlay }

// HandleKey dispatches one canonical token and reports whether it was
// consumed. The overlay, when present, gets first refusal; otherwise any
// token that reaches dispatch supersedes the lookup in flight and dismisses
// the overlay before the command runs.
func (e *Editor) HandleKey(token string) bool {
	if token == "" {
		return false
	}
	if e.overlay != nil && e.overlay.HandleKey(token) {
		return true
	}

	e.invalidateCompletion()
	e.overlay = nil

	switch token {
	case "Delete", "M-Backspace":
		caret := e.buf.Caret()
		e.buf.DeleteRange(backwardWordBoundary(e.buf.text, caret), caret)
	case "Enter":
		if e.onCommit != nil {
			e.onCommit(e.buf.Text())
		}
	case "Tab":
		e.startCompletion()
	case "C-a":
		e.buf.SetCaret(0)
	case "C-b":
		e.buf.SetCaret(e.buf.Caret() - 1)
	case "C-e":
		e.buf.SetCaret(e.buf.Len())
	case "C-f":
		e.buf.SetCaret(e.buf.Caret() + 1)
	case "C-k":
		e.buf.DeleteRange(e.buf.Caret(), e.buf.Len())
	case "C-u":
		e.buf.DeleteRange(0, e.buf.Caret())
	case "C-n", "C-p":
		// Reserved for history navigation.
	case "C-x", "C-c", "C-v", "C-J", "C-l", "C-R":
		// Cut/copy/paste and host-level chords stay with the platform.
		return false
	default:
		e.logger.Debug("unhandled key token", "token", token)
		return false
	}
	return true
}

// InsertText replaces the current selection with text, the way the platform
// default input path would. Hosts call this for printable keys the dispatch
// declined.
func (e *Editor) InsertText(text string) {
	start, end := e.buf.Selection()
	e.buf.Replace(start, end, text)
}

// Blur snapshots the selection and tears down completion state: the lookup
// in flight is abandoned and the overlay dismissed.
func (e *Editor) Blur() {
	start, end := e.buf.Selection()
	e.blurSel = [2]int{start, end}
	e.invalidateCompletion()
	e.overlay = nil
}

// Focus restores the selection captured at the last blur.
func (e *Editor) Focus() {
	e.buf.Select(e.blurSel[0], e.blurSel[1])
}

// invalidateCompletion abandons the lookup in flight. A response for its
// generation arriving later no longer matches anything and is dropped.
func (e *Editor) invalidateCompletion() {
	e.pendingGen = 0
	e.launch = false
}

func (e *Editor) startCompletion() {
	e.gen++
	e.pendingGen = e.gen
	e.pendingReq = CompletionRequest{Input: e.buf.Text(), Pos: e.buf.Caret()}
	e.launch = true
}

// TakeCompletionRequest returns the request created by the most recent Tab
// press, exactly once. The host runs the lookup and feeds the outcome back
// through ResolveCompletion with the same generation.
func (e *Editor) TakeCompletionRequest() (CompletionRequest, uint64, bool) {
	if !e.launch {
		return CompletionRequest{}, 0, false
	}
	e.launch = false
	return e.pendingReq, e.pendingGen, true
}

// ResolveCompletion delivers the outcome of a lookup. A result whose
// generation no longer matches the lookup in flight is stale and dropped
// silently. Errors count as zero candidates. A non-empty shared prefix is
// applied immediately; two or more candidates additionally open the overlay.
func (e *Editor) ResolveCompletion(gen uint64, resp CompletionResponse, err error) {
	if gen == 0 || gen != e.pendingGen {
		return
	}
	e.pendingGen = 0
	if err != nil {
		e.logger.Debug("completion lookup failed", "error", err)
		return
	}
	if len(resp.Completions) == 0 {
		return
	}

	if n := longestCommonPrefix(resp.Completions); n > 0 {
		e.applyCompletion(string([]rune(resp.Completions[0])[:n]), resp.Pos)
	}
	if len(resp.Completions) > 1 {
		e.overlay = newOverlay(e.pendingReq, resp, e.measure, func(text string, pos int) {
			e.applyCompletion(text, pos)
			e.overlay = nil
		})
	}
}

// applyCompletion splices text into the buffer at pos, eliding the leading
// run of characters that already sit in the buffer at pos. The elision is a
// literal character-by-character prefix match, not a diff: the new text is
// buffer[:pos] + text + buffer[pos+overlap:]. A run that ends on a mismatch
// inside the buffer gives back its final character; only a run that reaches
// the end of the buffer or of text is elided whole.
func (e *Editor) applyCompletion(text string, pos int) {
	runes := []rune(text)
	pos = clampInt(pos, 0, e.buf.Len())
	overlap := 0
	for overlap < len(runes) && pos+overlap < e.buf.Len() {
		if e.buf.text[pos+overlap] != runes[overlap] {
			if overlap > 0 {
				overlap--
			}
			break
		}
		overlap++
	}
	e.buf.Replace(pos, pos+overlap, text)
}
