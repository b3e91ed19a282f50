package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState aggregates the per-device snapshots a Button query consults.
// Any field may be nil: queries against a missing device report false, so a
// mouse-only tool can simply never allocate keyboard or gamepad state.
type InputState struct {
	Keyboard *ButtonState[ebiten.Key]
	Mouse    *ButtonState[ebiten.MouseButton]
	Gamepad  *ButtonState[ebiten.GamepadButton]

	// scratch buffers reused across Poll calls
	keys         []ebiten.Key
	mouseButtons []ebiten.MouseButton
	gamepadIDs   []ebiten.GamepadID
	padButtons   []ebiten.GamepadButton
}

// NewInputState creates an InputState with all three device snapshots
// allocated, ready for Poll.
func NewInputState() *InputState {
	return &InputState{
		Keyboard: NewButtonState[ebiten.Key](),
		Mouse:    NewButtonState[ebiten.MouseButton](),
		Gamepad:  NewButtonState[ebiten.GamepadButton](),
	}
}

// Poll refreshes every allocated snapshot from Ebitengine. Call once per
// Update. All connected gamepads merge into the one gamepad snapshot: a
// button held on any pad counts as held.
func (in *InputState) Poll() {
	if in.Keyboard != nil {
		in.keys = inpututil.AppendPressedKeys(in.keys[:0])
		in.Keyboard.SetPressed(in.keys)
	}
	if in.Mouse != nil {
		in.mouseButtons = in.mouseButtons[:0]
		for b := ebiten.MouseButton(0); b <= ebiten.MouseButtonMax; b++ {
			if ebiten.IsMouseButtonPressed(b) {
				in.mouseButtons = append(in.mouseButtons, b)
			}
		}
		in.Mouse.SetPressed(in.mouseButtons)
	}
	if in.Gamepad != nil {
		in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])
		in.padButtons = in.padButtons[:0]
		for b := ebiten.GamepadButton(0); b <= ebiten.GamepadButtonMax; b++ {
			for _, id := range in.gamepadIDs {
				if ebiten.IsGamepadButtonPressed(id, b) {
					in.padButtons = append(in.padButtons, b)
					break
				}
			}
		}
		in.Gamepad.SetPressed(in.padButtons)
	}
}
