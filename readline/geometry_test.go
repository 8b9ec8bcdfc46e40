package readline

import "testing"

func TestPlaceOverlay(t *testing.T) {
	metrics := Metrics{InputPadding: 2, OverlayPadding: 2, Margin: 1}
	text := Size{Width: 10, Height: 1}

	tests := []struct {
		name     string
		viewport int
		input    Rect
		overlay  Size
		want     Placement
	}{
		{
			name:     "fits below",
			viewport: 24,
			input:    Rect{Left: 0, Top: 0, Width: 80},
			overlay:  Size{Width: 20, Height: 6},
			want:     Placement{X: 10, Y: 1, Height: 6},
		},
		{
			name:     "falls back above",
			viewport: 24,
			input:    Rect{Left: 0, Top: 20, Width: 80},
			overlay:  Size{Width: 20, Height: 6},
			want:     Placement{X: 10, Y: 14, Height: 6, Above: true},
		},
		{
			name:     "clipped below when roomier",
			viewport: 10,
			input:    Rect{Left: 0, Top: 2, Width: 80},
			overlay:  Size{Width: 20, Height: 9},
			want:     Placement{X: 10, Y: 3, Height: 6},
		},
		{
			name:     "clipped above when roomier",
			viewport: 10,
			input:    Rect{Left: 0, Top: 8, Width: 80},
			overlay:  Size{Width: 20, Height: 9},
			want:     Placement{X: 10, Y: 1, Height: 7, Above: true},
		},
		{
			name:     "ties break toward below",
			viewport: 9,
			input:    Rect{Left: 0, Top: 4, Width: 80},
			overlay:  Size{Width: 20, Height: 8},
			want:     Placement{X: 10, Y: 5, Height: 3},
		},
		{
			name:     "margin can eat the whole clipped height",
			viewport: 2,
			input:    Rect{Left: 0, Top: 0, Width: 80},
			overlay:  Size{Width: 20, Height: 8},
			want:     Placement{X: 10, Y: 1, Height: 0},
		},
		{
			name:     "input offset shifts x",
			viewport: 24,
			input:    Rect{Left: 5, Top: 0, Width: 80},
			overlay:  Size{Width: 20, Height: 6},
			want:     Placement{X: 15, Y: 1, Height: 6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := placeOverlay(tt.viewport, tt.input, text, tt.overlay, metrics)
			if got != tt.want {
				t.Fatalf("placeOverlay: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlaceOverlayCaretAlignment(t *testing.T) {
	// The overlay's text column sits under the caret: the input padding moves
	// it right, the overlay's own frame moves it back left.
	m := Metrics{InputPadding: 4, OverlayPadding: 3, Margin: 1}
	got := placeOverlay(24, Rect{Left: 0, Top: 0, Width: 80}, Size{Width: 7, Height: 1}, Size{Width: 12, Height: 4}, m)
	if want := 0 + 4 - 3 + 7; got.X != want {
		t.Fatalf("x: got %d, want %d", got.X, want)
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{12, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := clampInt(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clampInt(%d, %d, %d): got %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
