package readline

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyEvent is a raw platform key event: the key's reported identity plus the
// command modifiers. Shift carries no flag of its own; shifted keys arrive
// with a distinct Name ("A" vs "a"), which is how terminals and Bubble Tea
// report them.
type KeyEvent struct {
	Name string
	Ctrl bool
	Alt  bool
}

// modifierKeys are keys that never form a command on their own, including
// composition placeholders some platforms emit.
var modifierKeys = map[string]struct{}{
	"Alt":          {},
	"Control":      {},
	"Shift":        {},
	"Meta":         {},
	"Dead":         {},
	"Process":      {},
	"Unidentified": {},
}

// Translate maps a raw key event to its canonical command token, for example
// "C-a", "M-Backspace", or "Enter". The empty token means "not a command":
// callers must take no action and let default handling run. Digits always
// translate to the empty token so they never collide with platform shortcuts.
func Translate(ev KeyEvent) string {
	if ev.Name == "" {
		return ""
	}
	if _, ok := modifierKeys[ev.Name]; ok {
		return ""
	}
	if len(ev.Name) == 1 && ev.Name[0] >= '0' && ev.Name[0] <= '9' {
		return ""
	}

	var sb strings.Builder
	if ev.Alt {
		sb.WriteString("M-")
	}
	if ev.Ctrl {
		sb.WriteString("C-")
	}
	sb.WriteString(ev.Name)
	return sb.String()
}

// eventFromKeyMsg adapts a Bubble Tea key message into a KeyEvent. Keys the
// component has no use for map to a zero event, which Translate turns into
// the empty token.
func eventFromKeyMsg(msg tea.KeyMsg) KeyEvent {
	ev := KeyEvent{Alt: msg.Alt}
	switch msg.Type {
	case tea.KeyRunes:
		ev.Name = string(msg.Runes)
	case tea.KeySpace:
		ev.Name = " "
	case tea.KeyEnter:
		ev.Name = "Enter"
	case tea.KeyTab:
		ev.Name = "Tab"
	case tea.KeyEsc:
		ev.Name = "Escape"
	case tea.KeyBackspace:
		ev.Name = "Backspace"
	case tea.KeyDelete:
		ev.Name = "Delete"
	case tea.KeyLeft:
		ev.Name = "Left"
	case tea.KeyRight:
		ev.Name = "Right"
	case tea.KeyUp:
		ev.Name = "Up"
	case tea.KeyDown:
		ev.Name = "Down"
	case tea.KeyHome:
		ev.Name = "Home"
	case tea.KeyEnd:
		ev.Name = "End"
	default:
		// Control chords arrive as dedicated key types, not as a flag.
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			ev.Ctrl = true
			ev.Name = string(rune('a' + int(msg.Type-tea.KeyCtrlA)))
		}
	}
	return ev
}
