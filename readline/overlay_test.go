package readline

import "testing"

// openOverlay drives the editor through a full Tab round trip so the overlay
// under test carries real request/response state.
func openOverlay(t *testing.T, text string, caret int, resp CompletionResponse) *Editor {
	t.Helper()
	e := newTestEditor(text, caret)
	if !e.HandleKey("Tab") {
		t.Fatalf("Tab not handled")
	}
	_, gen, ok := e.TakeCompletionRequest()
	if !ok {
		t.Fatalf("no completion request after Tab")
	}
	e.ResolveCompletion(gen, resp, nil)
	if e.Overlay() == nil {
		t.Fatalf("overlay did not open for %d candidates", len(resp.Completions))
	}
	return e
}

func TestOverlaySwallowsTab(t *testing.T) {
	e := openOverlay(t, "git ch", 6, CompletionResponse{
		Completions: []string{"checkout", "chmod"},
		Pos:         4,
	})
	if !e.HandleKey("Tab") {
		t.Fatalf("Tab not consumed by overlay")
	}
	if e.Overlay() == nil {
		t.Fatalf("overlay dismissed by Tab")
	}
	if _, _, ok := e.TakeCompletionRequest(); ok {
		t.Fatalf("Tab under the overlay started a new lookup")
	}
}

func TestOverlayEnterCommitsFirstCandidate(t *testing.T) {
	e := openOverlay(t, "git ch", 6, CompletionResponse{
		Completions: []string{"checkout", "chmod"},
		Pos:         4,
	})
	if !e.HandleKey("Enter") {
		t.Fatalf("Enter not consumed by overlay")
	}
	if got, want := e.Buffer().Text(), "git checkout"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if e.Overlay() != nil {
		t.Fatalf("overlay survived commit")
	}
}

func TestOverlayEnterDoesNotReachCommitCallback(t *testing.T) {
	committed := 0
	e := NewEditor(EditorConfig{
		Text:     "git ch",
		OnCommit: func(string) { committed++ },
	})
	e.HandleKey("Tab")
	_, gen, _ := e.TakeCompletionRequest()
	e.ResolveCompletion(gen, CompletionResponse{
		Completions: []string{"checkout", "chmod"},
		Pos:         4,
	}, nil)

	e.HandleKey("Enter")
	if committed != 0 {
		t.Fatalf("Enter under the overlay committed the line %d times", committed)
	}
}

func TestOverlayEscapeDismissesWithoutEditing(t *testing.T) {
	e := openOverlay(t, "git ch", 6, CompletionResponse{
		Completions: []string{"checkout", "chmod"},
		Pos:         4,
	})
	if !e.HandleKey("Escape") {
		t.Fatalf("Escape not consumed by overlay")
	}
	if got, want := e.Buffer().Text(), "git ch"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if e.Overlay() != nil {
		t.Fatalf("overlay survived Escape")
	}
}

func TestOverlayEscapeKeepsAutoAppliedPrefix(t *testing.T) {
	// Candidates extending what is typed get their shared prefix applied
	// before the overlay opens; Escape only dismisses, it does not undo.
	e := openOverlay(t, "git ch", 6, CompletionResponse{
		Completions: []string{"checkout", "cheese"},
		Pos:         4,
	})
	if got, want := e.Buffer().Text(), "git che"; got != want {
		t.Fatalf("text before Escape: got %q, want %q", got, want)
	}
	if !e.HandleKey("Escape") {
		t.Fatalf("Escape not consumed by overlay")
	}
	if got, want := e.Buffer().Text(), "git che"; got != want {
		t.Fatalf("text after Escape: got %q, want %q", got, want)
	}
	if e.Overlay() != nil {
		t.Fatalf("overlay survived Escape")
	}
}

func TestOverlayOtherTokensFallThrough(t *testing.T) {
	e := openOverlay(t, "git ch", 6, CompletionResponse{
		Completions: []string{"checkout", "chmod"},
		Pos:         4,
	})
	if !e.HandleKey("C-a") {
		t.Fatalf("C-a not handled by the editor")
	}
	if got, want := e.Buffer().Caret(), 0; got != want {
		t.Fatalf("caret: got %d, want %d", got, want)
	}
	if e.Overlay() != nil {
		t.Fatalf("overlay survived a fall-through token")
	}
}

func TestOverlayTextSizeIncludesTrailingSpace(t *testing.T) {
	ov := newOverlay(
		CompletionRequest{Input: "git ", Pos: 4},
		CompletionResponse{Completions: []string{"status", "stash"}, Pos: 4},
		cellMeasurer{}, nil,
	)
	// The zero-width mark keeps the trailing space from collapsing out but
	// contributes no cells of its own.
	if got, want := ov.TextSize().Width, 4; got != want {
		t.Fatalf("overlay text width: got %d, want %d", got, want)
	}
}

func TestOverlayMeasuresUpToCompletionPos(t *testing.T) {
	ov := newOverlay(
		CompletionRequest{Input: "git checkout", Pos: 12},
		CompletionResponse{Completions: []string{"main", "master"}, Pos: 4},
		cellMeasurer{}, nil,
	)
	// Only the text before the completion point counts toward placement.
	if got, want := ov.TextSize().Width, 4; got != want {
		t.Fatalf("overlay text width: got %d, want %d", got, want)
	}
}
