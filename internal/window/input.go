package window

import (
	"red-rockit/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = []struct {
	key  ebiten.Key
	game game.Key
}{
	{ebiten.KeyArrowUp, game.KeyUp},
	{ebiten.KeyArrowDown, game.KeyDown},
	{ebiten.KeyArrowLeft, game.KeyLeft},
	{ebiten.KeyArrowRight, game.KeyRight},
	{ebiten.KeyW, game.KeyW},
	{ebiten.KeyA, game.KeyA},
	{ebiten.KeyS, game.KeyS},
	{ebiten.KeyD, game.KeyD},
}

// keyEvents returns the movement key transitions of the current tick.
// Ebiten reports each transition once, so no event is a repeat.
func keyEvents() []game.KeyEvent {
	var out []game.KeyEvent
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			out = append(out, game.KeyEvent{Key: b.game, Down: true})
		}
		if inpututil.IsKeyJustReleased(b.key) {
			out = append(out, game.KeyEvent{Key: b.game, Down: false})
		}
	}
	return out
}
