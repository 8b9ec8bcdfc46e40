package readline

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
)

// Style controls rendering of the line and the completion popup.
type Style struct {
	Prompt    lipgloss.Style
	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Popup frames the candidate list; its border and padding feed into the
	// overlay placement math.
	Popup lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Text:      lipgloss.NewStyle(),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

func (s Style) isZero() bool {
	return reflect.DeepEqual(s, Style{})
}
