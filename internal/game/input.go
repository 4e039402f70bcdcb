package game

import "github.com/gdamore/tcell/v2"

// Key is a movement key understood by the game core.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyW:
		return "w"
	case KeyA:
		return "a"
	case KeyS:
		return "s"
	case KeyD:
		return "d"
	}
	return "none"
}

// KeyEvent is a press or release reported by a front-end.
type KeyEvent struct {
	Key    Key
	Down   bool
	Repeat bool
}

// keyToDelta converts a movement key to a unit direction. Screen y grows
// downward.
func keyToDelta(k Key) (int, int) {
	switch k {
	case KeyUp, KeyW:
		return 0, -1
	case KeyDown, KeyS:
		return 0, 1
	case KeyLeft, KeyA:
		return -1, 0
	case KeyRight, KeyD:
		return 1, 0
	}
	return 0, 0
}

// terminalKey maps a tcell key event to a movement key. quit is true for
// the keys that end a terminal session.
func terminalKey(ev *tcell.EventKey) (k Key, quit bool) {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp, false
	case tcell.KeyDown:
		return KeyDown, false
	case tcell.KeyLeft:
		return KeyLeft, false
	case tcell.KeyRight:
		return KeyRight, false
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyNone, true
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W':
		return KeyW, false
	case 'a', 'A':
		return KeyA, false
	case 's', 'S':
		return KeyS, false
	case 'd', 'D':
		return KeyD, false
	case 'q', 'Q':
		return KeyNone, true
	}
	return KeyNone, false
}
