package readline

import "log/slog"

const (
	defaultPrompt        = "> "
	defaultOverlayMargin = 1
)

// Config configures the readline Model.
type Config struct {
	// Prompt is rendered before the editable text.
	Prompt string

	// Text is the initial line content.
	Text string

	// Completer answers Tab presses. Nil behaves like a provider that always
	// returns nothing.
	Completer Completer

	// OnCommit is invoked on Enter with the full line. The component does
	// not clear the line itself.
	OnCommit func(text string)

	// Style controls rendering. The zero value gets DefaultStyle.
	Style Style

	// OverlayMargin is reserved on the far side when the candidate popup
	// must be clipped. Zero gets a one-cell default.
	OverlayMargin int

	// Logger receives diagnostics. Nil gets slog.Default.
	Logger *slog.Logger
}

func normalizeConfig(cfg Config) Config {
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	if cfg.Style.isZero() {
		cfg.Style = DefaultStyle()
	}
	if cfg.OverlayMargin <= 0 {
		cfg.OverlayMargin = defaultOverlayMargin
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
