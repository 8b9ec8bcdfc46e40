// Package readline provides a Bubble Tea single-line input component with
// Emacs-style kill and motion commands and asynchronous tab completion.
//
// The package is split into a host-agnostic engine (Editor, Buffer, Overlay,
// the key token translator, and the overlay placement math) and a Bubble Tea
// Model that adapts terminal key events, runs completion lookups as commands,
// and composites the candidate popup over the rendered line.
package readline
