package ui

import (
	cfg "github.com/automoto/lostpath/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding lists the keys and standard gamepad buttons that hold an action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// DefaultBindings maps every action to its keyboard and pad inputs.
var DefaultBindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveForward: {
		Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
	},
	cfg.ActionMoveBack: {
		Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
	},
	cfg.ActionMoveLeft: {
		Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
	},
	cfg.ActionMoveRight: {
		Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionPush: {
		Keys:                   []ebiten.Key{ebiten.KeyE},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionMenuSelect: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionMenuBack: {
		Keys:                   []ebiten.Key{ebiten.KeyBackspace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	cfg.ActionMute: {
		Keys: []ebiten.Key{ebiten.KeyM},
	},
}

const analogDeadzone = 0.25

// padLookSpeed converts right stick deflection into pointer pixels per poll.
const padLookSpeed = 12

// Input reads the keyboard, the first standard gamepads and the mouse.
type Input struct {
	Bindings map[cfg.ActionID]Binding

	gamepads         []ebiten.GamepadID
	lastX, lastY     int
	havePointer      bool
	stickX, stickY   float64
	moveLeft         bool
	moveRight        bool
	moveUp, moveDown bool
}

func NewInput() *Input {
	return &Input{Bindings: DefaultBindings}
}

// Poll samples the gamepad sticks once per tick. Call it before the game
// reads any action.
func (in *Input) Poll() {
	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])
	in.moveLeft, in.moveRight, in.moveUp, in.moveDown = false, false, false, false
	in.stickX, in.stickY = 0, 0

	for _, id := range in.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		in.moveLeft = in.moveLeft || h < -analogDeadzone
		in.moveRight = in.moveRight || h > analogDeadzone
		in.moveUp = in.moveUp || v < -analogDeadzone
		in.moveDown = in.moveDown || v > analogDeadzone

		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if lx < -analogDeadzone || lx > analogDeadzone {
			in.stickX += lx * padLookSpeed
		}
		if ly < -analogDeadzone || ly > analogDeadzone {
			in.stickY += ly * padLookSpeed
		}
	}
}

func (in *Input) Pressed(action cfg.ActionID) bool {
	switch action {
	case cfg.ActionMoveLeft:
		if in.moveLeft {
			return true
		}
	case cfg.ActionMoveRight:
		if in.moveRight {
			return true
		}
	case cfg.ActionMoveForward:
		if in.moveUp {
			return true
		}
	case cfg.ActionMoveBack:
		if in.moveDown {
			return true
		}
	}

	binding, ok := in.Bindings[action]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, id := range in.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

// PointerDelta reports cursor movement since the previous call plus any
// right stick look. The first call only records the cursor.
func (in *Input) PointerDelta() (dx, dy float64) {
	x, y := ebiten.CursorPosition()
	if in.havePointer {
		dx, dy = float64(x-in.lastX), float64(y-in.lastY)
	}
	in.lastX, in.lastY, in.havePointer = x, y, true
	return dx + in.stickX, dy + in.stickY
}
