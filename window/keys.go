//go:build window

package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/itwt/space-battle/input"
)

// keyMap binds backend-neutral keys to ebiten keys
var keyMap = map[input.Key]ebiten.Key{
	input.KeyUp:    ebiten.KeyArrowUp,
	input.KeyDown:  ebiten.KeyArrowDown,
	input.KeyLeft:  ebiten.KeyArrowLeft,
	input.KeyRight: ebiten.KeyArrowRight,
	input.KeyEnter: ebiten.KeyEnter,
	input.KeySpace: ebiten.KeySpace,

	input.KeyA + 0:  ebiten.KeyA,
	input.KeyA + 1:  ebiten.KeyB,
	input.KeyA + 2:  ebiten.KeyC,
	input.KeyA + 3:  ebiten.KeyD,
	input.KeyA + 4:  ebiten.KeyE,
	input.KeyA + 5:  ebiten.KeyF,
	input.KeyA + 6:  ebiten.KeyG,
	input.KeyA + 7:  ebiten.KeyH,
	input.KeyA + 8:  ebiten.KeyI,
	input.KeyA + 9:  ebiten.KeyJ,
	input.KeyA + 10: ebiten.KeyK,
	input.KeyA + 11: ebiten.KeyL,
	input.KeyA + 12: ebiten.KeyM,
	input.KeyA + 13: ebiten.KeyN,
	input.KeyA + 14: ebiten.KeyO,
	input.KeyA + 15: ebiten.KeyP,
	input.KeyA + 16: ebiten.KeyQ,
	input.KeyA + 17: ebiten.KeyR,
	input.KeyA + 18: ebiten.KeyS,
	input.KeyA + 19: ebiten.KeyT,
	input.KeyA + 20: ebiten.KeyU,
	input.KeyA + 21: ebiten.KeyV,
	input.KeyA + 22: ebiten.KeyW,
	input.KeyA + 23: ebiten.KeyX,
	input.KeyA + 24: ebiten.KeyY,
	input.KeyA + 25: ebiten.KeyZ,
}

// pressedKeys samples the keyboard; call only from Update
func pressedKeys() input.KeySet {
	var s input.KeySet
	for k, ek := range keyMap {
		if ebiten.IsKeyPressed(ek) {
			s = s.With(k)
		}
	}
	return s
}
