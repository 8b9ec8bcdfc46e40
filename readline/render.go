package readline

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m Model) View() string {
	base := m.renderBase()
	ov := m.ed.Overlay()
	if ov == nil {
		return base
	}
	popup, pl, ok := m.renderPopup(ov)
	if !ok {
		return base
	}
	return overlay.Composite(popup, base, overlay.Left, overlay.Top, pl.X, pl.Y)
}

// renderBase draws the prompt line and pads the rest of the component's
// height with blank rows so the popup has rows to composite over.
func (m Model) renderBase() string {
	line := m.renderLine()
	if m.height <= 1 {
		return line
	}
	return line + strings.Repeat("\n", m.height-1)
}

func (m Model) renderLine() string {
	st := m.cfg.Style
	b := m.ed.Buffer()
	text := []rune(b.Text())
	start, end := b.Selection()

	var sb strings.Builder
	sb.WriteString(st.Prompt.Render(m.cfg.Prompt))

	if !m.focused {
		sb.WriteString(st.Text.Render(string(text)))
		return sb.String()
	}

	if start != end {
		sb.WriteString(st.Text.Render(string(text[:start])))
		sb.WriteString(st.Selection.Render(string(text[start:end])))
		sb.WriteString(st.Text.Render(string(text[end:])))
		return sb.String()
	}

	sb.WriteString(st.Text.Render(string(text[:start])))
	if start < len(text) {
		sb.WriteString(st.Cursor.Render(string(text[start : start+1])))
		sb.WriteString(st.Text.Render(string(text[start+1:])))
	} else {
		// Caret at end of line renders as a one-cell placeholder.
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// renderPopup renders the candidate list into a framed box and places it
// near the caret. When neither side of the input has room for the whole box
// the list is clipped through a viewport on the roomier side.
func (m Model) renderPopup(ov *Overlay) (string, Placement, bool) {
	st := m.cfg.Style
	content := strings.Join(ov.Candidates(), "\n")
	inner := cellMeasurer{}.Measure(content)

	frameW := st.Popup.GetHorizontalFrameSize()
	frameH := st.Popup.GetVerticalFrameSize()
	total := Size{Width: inner.Width + frameW, Height: inner.Height + frameH}

	metrics := Metrics{
		InputPadding:   lipgloss.Width(st.Prompt.Render(m.cfg.Prompt)),
		OverlayPadding: st.Popup.GetMarginLeft() + st.Popup.GetBorderLeftSize() + st.Popup.GetPaddingLeft(),
		Margin:         m.cfg.OverlayMargin,
	}

	pl := placeOverlay(maxInt(m.height, 1), Rect{Left: 0, Top: 0, Width: m.width}, ov.TextSize(), total, metrics)
	if pl.Height <= 0 {
		return "", pl, false
	}

	if pl.Height < total.Height {
		clipped := pl.Height - frameH
		if clipped <= 0 {
			return "", pl, false
		}
		vp := viewport.New(inner.Width, clipped)
		vp.SetContent(content)
		content = vp.View()
	}

	maxX := m.width - total.Width
	if maxX < 0 {
		maxX = 0
	}
	pl.X = clampInt(pl.X, 0, maxX)
	if pl.Y < 0 {
		pl.Y = 0
	}
	return st.Popup.Render(content), pl, true
}
