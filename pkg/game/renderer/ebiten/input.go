package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "wanderer/pkg/engine/input"
)

// keyBindings maps Ebitengine keys to the shared action set. Digits map to
// action slots separately in checkInput.
var keyBindings = map[ebiten.Key]engineinput.Action{
	ebiten.KeyArrowUp:    engineinput.ActionMoveNorth,
	ebiten.KeyW:          engineinput.ActionMoveNorth,
	ebiten.KeyK:          engineinput.ActionMoveNorth,
	ebiten.KeyArrowDown:  engineinput.ActionMoveSouth,
	ebiten.KeyS:          engineinput.ActionMoveSouth,
	ebiten.KeyJ:          engineinput.ActionMoveSouth,
	ebiten.KeyArrowLeft:  engineinput.ActionMoveWest,
	ebiten.KeyA:          engineinput.ActionMoveWest,
	ebiten.KeyH:          engineinput.ActionMoveWest,
	ebiten.KeyArrowRight: engineinput.ActionMoveEast,
	ebiten.KeyD:          engineinput.ActionMoveEast,
	ebiten.KeyL:          engineinput.ActionMoveEast,
	ebiten.KeyQ:          engineinput.ActionQuit,
	ebiten.KeyEscape:     engineinput.ActionQuit,
	ebiten.KeyEqual:      engineinput.ActionZoomIn,
	ebiten.KeyMinus:      engineinput.ActionZoomOut,
}

// slotKeys maps digit keys to room action slots.
var slotKeys = map[ebiten.Key]int{
	ebiten.KeyDigit1: 1,
	ebiten.KeyDigit2: 2,
	ebiten.KeyDigit3: 3,
	ebiten.KeyDigit4: 4,
	ebiten.KeyDigit5: 5,
}

// Update handles input and advances the session (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	now := time.Now()

	if in := e.checkInput(); in.Action != engineinput.ActionNone {
		switch in.Action {
		case engineinput.ActionQuit:
			return errQuit
		case engineinput.ActionZoomIn:
			e.adjustZoom(0.1)
		case engineinput.ActionZoomOut:
			e.adjustZoom(-0.1)
		default:
			e.session.HandleIntent(in, now)
		}
	}

	width, height := e.gameAreaSize()
	e.bounds, e.tileSize = e.session.Tick(now, width, height)
	if e.tileSize < 1 {
		e.tileSize = 1
	}

	if e.session.Quit() {
		return errQuit
	}
	return nil
}

// checkInput returns the intent for the key pressed this frame, if any.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for key, slot := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			return engineinput.Intent{Action: engineinput.ActionSlot, Slot: slot}
		}
	}
	for key, action := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			return engineinput.Intent{Action: action}
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// adjustZoom changes the HUD font scale within sane limits.
func (e *EbitenRenderer) adjustZoom(delta float64) {
	e.fontScale += delta
	if e.fontScale < 0.5 {
		e.fontScale = 0.5
	}
	if e.fontScale > 2.5 {
		e.fontScale = 2.5
	}
	e.invalidateFontCache()
}
