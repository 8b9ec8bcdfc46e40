package readline

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea component wrapping an Editor. Key messages are
// translated to canonical tokens and dispatched; Tab presses turn into
// commands that run the configured Completer, and their results come back as
// private messages tagged with the generation that requested them, so a
// result that arrives after further typing is recognized as stale and
// dropped.
type Model struct {
	cfg Config
	ed  *Editor

	width   int
	height  int
	focused bool
}

// completionResultMsg carries an asynchronous completion outcome back into
// the update loop together with the generation that requested it.
type completionResultMsg struct {
	gen  uint64
	resp CompletionResponse
	err  error
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	return Model{
		cfg: cfg,
		ed: NewEditor(EditorConfig{
			Text:     cfg.Text,
			OnCommit: cfg.OnCommit,
			Measurer: cellMeasurer{},
			Logger:   cfg.Logger,
		}),
		focused: true,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Editor exposes the underlying engine, mainly for headless hosts and tests.
func (m Model) Editor() *Editor { return m.ed }

// Value returns the current line content.
func (m Model) Value() string { return m.ed.Buffer().Text() }

// SetValue replaces the line content and puts the caret at the end.
func (m Model) SetValue(text string) Model {
	m.ed.Buffer().SetText(text)
	m.ed.Buffer().SetCaret(m.ed.Buffer().Len())
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.ed.Focus()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.ed.Blur()
	}
	return m
}

// SetSize sets the region the component may draw into. Height beyond the
// input line is where the completion popup goes.
func (m Model) SetSize(width, height int) Model {
	m.width = maxInt(width, 0)
	m.height = maxInt(height, 0)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.FocusMsg:
		return m.Focus(), nil
	case tea.BlurMsg:
		return m.Blur(), nil
	case completionResultMsg:
		m.ed.ResolveCompletion(msg.gen, msg.resp, msg.err)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Pasted text is always literal input, never a command.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.ed.InsertText(string(msg.Runes))
		return m, nil
	}

	token := Translate(eventFromKeyMsg(msg))
	if m.ed.HandleKey(token) {
		return m, m.launchCompletion()
	}
	m.applyDefault(token, msg)
	return m, nil
}

// launchCompletion turns the editor's freshly issued completion request, if
// any, into a command running the configured provider.
func (m Model) launchCompletion() tea.Cmd {
	req, gen, ok := m.ed.TakeCompletionRequest()
	if !ok {
		return nil
	}
	if m.cfg.Completer == nil {
		m.ed.ResolveCompletion(gen, CompletionResponse{}, nil)
		return nil
	}
	c := m.cfg.Completer
	return func() tea.Msg {
		resp, err := c.Complete(context.Background(), req)
		return completionResultMsg{gen: gen, resp: resp, err: err}
	}
}

// applyDefault performs the edits the platform text input would: literal
// insertion and the caret keys token dispatch leaves alone.
func (m Model) applyDefault(token string, msg tea.KeyMsg) {
	b := m.ed.Buffer()
	switch token {
	case "Left":
		if start, end := b.Selection(); start != end {
			b.SetCaret(start)
		} else {
			b.SetCaret(start - 1)
		}
	case "Right":
		if start, end := b.Selection(); start != end {
			b.SetCaret(end)
		} else {
			b.SetCaret(end + 1)
		}
	case "Home":
		b.SetCaret(0)
	case "End":
		b.SetCaret(b.Len())
	case "Backspace":
		if start, end := b.Selection(); start != end {
			b.DeleteRange(start, end)
		} else if start > 0 {
			b.DeleteRange(start-1, start)
		}
	case " ":
		m.ed.InsertText(" ")
	default:
		if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0 {
			m.ed.InsertText(string(msg.Runes))
		}
	}
}
