package readline

import "context"

// CompletionRequest is a snapshot of the line at the moment completion was
// requested. It identifies exactly one lookup and is never mutated once
// created.
type CompletionRequest struct {
	// Input is the full line text.
	Input string
	// Pos is the caret rune offset within Input.
	Pos int
}

// CompletionResponse carries zero or more candidate replacement texts and
// the rune offset they apply at. Pos normally echoes the request's, but a
// provider may move it, typically back to the start of the word being
// completed.
type CompletionResponse struct {
	Completions []string
	Pos         int
}

// Completer produces completion candidates for a request. Implementations
// must not mutate the request. An error is treated exactly like an empty
// candidate list; the component surfaces nothing to the user.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}

// CompleterFunc adapts a plain function to the Completer interface.
type CompleterFunc func(ctx context.Context, req CompletionRequest) (CompletionResponse, error)

func (f CompleterFunc) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	return f(ctx, req)
}
