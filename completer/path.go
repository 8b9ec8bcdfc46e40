// Package completer provides completion providers for the readline
// component.
package completer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jellydator/ttlcache/v3"
	"mvdan.cc/sh/v3/syntax"

	"github.com/rob-opsi/smash/readline"
)

const (
	defaultMaxCandidates = 50
	defaultCacheTTL      = 2 * time.Second
)

// PathConfig configures a Path completer. The zero value is usable.
type PathConfig struct {
	// Root anchors relative path fragments. Empty means the process working
	// directory.
	Root string
	// MaxCandidates caps the response size.
	MaxCandidates int
	// CacheTTL bounds how long a directory listing is reused.
	CacheTTL time.Duration
}

// Path completes filesystem paths for the shell word under the caret.
// Directory listings are held in a TTL cache so a burst of Tab presses does
// not hit the filesystem every time.
type Path struct {
	cfg   PathConfig
	cache *ttlcache.Cache[string, []string]
}

// NewPath creates a Path completer. Callers must Close it to stop the cache
// expiration loop.
func NewPath(cfg PathConfig) *Path {
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = defaultMaxCandidates
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	c := ttlcache.New[string, []string](
		ttlcache.WithTTL[string, []string](cfg.CacheTTL),
		ttlcache.WithDisableTouchOnHit[string, []string](),
	)
	go c.Start()
	return &Path{cfg: cfg, cache: c}
}

// Close stops the cache expiration loop.
func (p *Path) Close() { p.cache.Stop() }

// Complete implements readline.Completer. The returned position covers only
// the final path segment of the word, so any directory part already typed
// stays in place when a candidate is spliced in.
func (p *Path) Complete(ctx context.Context, req readline.CompletionRequest) (readline.CompletionResponse, error) {
	if err := ctx.Err(); err != nil {
		return readline.CompletionResponse{}, err
	}

	bytePos := byteOffset(req.Input, req.Pos)
	start := wordStart(req.Input, bytePos)
	fragment := req.Input[start:bytePos]

	dir, prefix := filepath.Split(fragment)
	names, err := p.listing(p.resolveDir(dir))
	if err != nil {
		return readline.CompletionResponse{}, err
	}

	completions := make([]string, 0, len(names))
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		completions = append(completions, name)
		if len(completions) == p.cfg.MaxCandidates {
			break
		}
	}

	pos := utf8.RuneCountInString(req.Input[:start]) + utf8.RuneCountInString(dir)
	return readline.CompletionResponse{Completions: completions, Pos: pos}, nil
}

// listing returns the entries of dir, directories marked with a trailing
// slash, in the order os.ReadDir yields them.
func (p *Path) listing(dir string) ([]string, error) {
	if item := p.cache.Get(dir); item != nil {
		return item.Value(), nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	p.cache.Set(dir, names, ttlcache.DefaultTTL)
	return names, nil
}

func (p *Path) resolveDir(dir string) string {
	if strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, dir[2:])
		}
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	root := p.cfg.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, dir)
}

// wordStart finds the byte offset where the shell word containing pos begins.
// The input is parsed as bash; half-typed lines often fail to parse, in which
// case a plain whitespace scan decides.
func wordStart(input string, pos int) int {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	prog, err := parser.Parse(strings.NewReader(input), "")
	if err != nil {
		return scanWordStart(input, pos)
	}

	start := -1
	syntax.Walk(prog, func(node syntax.Node) bool {
		w, ok := node.(*syntax.Word)
		if !ok {
			return true
		}
		s, e := int(w.Pos().Offset()), int(w.End().Offset())
		if s <= pos && pos <= e && s > start {
			start = s
		}
		return true
	})
	if start < 0 {
		return scanWordStart(input, pos)
	}
	return start
}

func scanWordStart(input string, pos int) int {
	start := pos
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if unicode.IsSpace(r) {
			break
		}
		start -= size
	}
	return start
}

// byteOffset converts a rune offset into s to a byte offset, clamping to the
// string's bounds.
func byteOffset(s string, runePos int) int {
	if runePos <= 0 {
		return 0
	}
	for i := range s {
		if runePos == 0 {
			return i
		}
		runePos--
	}
	return len(s)
}
