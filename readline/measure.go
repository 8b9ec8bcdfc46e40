package readline

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Measurer reports the rendered extent of a string. It is an injected
// capability so placement stays testable without a terminal.
type Measurer interface {
	Measure(s string) Size
}

// cellMeasurer measures strings in terminal cells, grapheme cluster by
// grapheme cluster.
type cellMeasurer struct{}

func (cellMeasurer) Measure(s string) Size {
	lines := strings.Split(s, "\n")
	w := 0
	for _, line := range lines {
		if lw := lineCellWidth(line); lw > w {
			w = lw
		}
	}
	return Size{Width: w, Height: len(lines)}
}

func lineCellWidth(line string) int {
	w := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		w += graphemeCellWidth(g.Str())
	}
	return w
}

func graphemeCellWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w <= 0 {
		if fallback := uniseg.StringWidth(text); fallback > w {
			w = fallback
		}
	}
	if w < 0 {
		w = 0
	}
	return w
}
