package readline

// Size is a measured extent in display units. The placement math is
// unit-agnostic; the bundled measurer works in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Rect is the input box's on-screen rectangle, in the same coordinate space
// as the viewport the overlay is placed in.
type Rect struct {
	Left  int
	Top   int
	Width int
}

// Metrics holds the fixed spacing constants overlay placement depends on.
type Metrics struct {
	// InputPadding is the horizontal inset from the input's left edge to
	// where its text starts (the prompt width, for the terminal renderer).
	InputPadding int
	// OverlayPadding is the overlay's own left frame: border plus padding.
	OverlayPadding int
	// Margin is reserved on the far side when the overlay does not fit on
	// either side and has to be clipped.
	Margin int
}

// Placement locates the overlay. Height is the clipped height; it equals the
// overlay's measured height whenever the overlay fits.
type Placement struct {
	X      int
	Y      int
	Height int
	Above  bool
}

// placeOverlay positions the overlay relative to the input rect. Preference
// order: fully below the input's text baseline, fully above the input, then
// clipped on whichever side has more room with Margin kept free on the far
// side. Horizontally the overlay's text column lines up with the caret.
func placeOverlay(viewportHeight int, input Rect, text Size, overlay Size, m Metrics) Placement {
	x := input.Left + m.InputPadding - m.OverlayPadding + text.Width

	baseline := input.Top + text.Height
	below := viewportHeight - baseline
	above := input.Top

	switch {
	case below >= overlay.Height:
		return Placement{X: x, Y: baseline, Height: overlay.Height}
	case above >= overlay.Height:
		return Placement{X: x, Y: input.Top - overlay.Height, Height: overlay.Height, Above: true}
	case below >= above:
		return Placement{X: x, Y: baseline, Height: maxInt(below-m.Margin, 0)}
	default:
		h := maxInt(above-m.Margin, 0)
		return Placement{X: x, Y: input.Top - h, Height: h, Above: true}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
