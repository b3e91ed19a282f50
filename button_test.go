package rowan

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Construction and accessors ---

func TestButtonConstructors(t *testing.T) {
	kb := KeyButton(ebiten.KeySpace)
	if kb.Device() != DeviceKeyboard {
		t.Errorf("KeyButton device = %v, want DeviceKeyboard", kb.Device())
	}
	if k, ok := kb.Key(); !ok || k != ebiten.KeySpace {
		t.Errorf("Key() = (%v, %v), want (KeySpace, true)", k, ok)
	}
	if _, ok := kb.Mouse(); ok {
		t.Error("Mouse() on a keyboard button reported ok")
	}

	mb := MouseButton(ebiten.MouseButtonRight)
	if m, ok := mb.Mouse(); !ok || m != ebiten.MouseButtonRight {
		t.Errorf("Mouse() = (%v, %v), want (MouseButtonRight, true)", m, ok)
	}

	gb := GamepadButton(ebiten.GamepadButton3)
	if g, ok := gb.Gamepad(); !ok || g != ebiten.GamepadButton3 {
		t.Errorf("Gamepad() = (%v, %v), want (GamepadButton3, true)", g, ok)
	}
}

func TestButtonComparable(t *testing.T) {
	// Same code on different devices must not compare equal.
	a := KeyButton(ebiten.Key(2))
	b := MouseButton(ebiten.MouseButton(2))
	if a == b {
		t.Error("keyboard and mouse buttons with the same code compare equal")
	}
	if KeyButton(ebiten.KeyA) != KeyButton(ebiten.KeyA) {
		t.Error("identical key buttons do not compare equal")
	}
}

// --- Query dispatch against snapshots ---

func TestButtonQueries_MissingSnapshotIsFalse(t *testing.T) {
	buttons := []Button{
		KeyButton(ebiten.KeyA),
		MouseButton(ebiten.MouseButtonLeft),
		GamepadButton(ebiten.GamepadButton0),
	}
	empty := &InputState{} // all device snapshots nil
	for _, b := range buttons {
		if b.Pressed(nil) || b.JustPressed(nil) || b.JustReleased(nil) {
			t.Errorf("%v: query against nil InputState = true, want false", b)
		}
		if b.Pressed(empty) || b.JustPressed(empty) || b.JustReleased(empty) {
			t.Errorf("%v: query against empty InputState = true, want false", b)
		}
	}
}

func TestButtonQueries_DispatchByDevice(t *testing.T) {
	in := &InputState{
		Keyboard: NewButtonState[ebiten.Key](),
		Mouse:    NewButtonState[ebiten.MouseButton](),
		Gamepad:  NewButtonState[ebiten.GamepadButton](),
	}
	in.Keyboard.Press(ebiten.KeyA)

	if !KeyButton(ebiten.KeyA).Pressed(in) {
		t.Error("key:A not pressed after keyboard press")
	}
	if !KeyButton(ebiten.KeyA).JustPressed(in) {
		t.Error("key:A not just-pressed after keyboard press")
	}
	// Same code, different devices: only the keyboard snapshot holds it.
	if MouseButton(ebiten.MouseButton(int(ebiten.KeyA))).Pressed(in) {
		t.Error("mouse button with key A's code reported pressed")
	}
	if GamepadButton(ebiten.GamepadButton(int(ebiten.KeyA))).Pressed(in) {
		t.Error("gamepad button with key A's code reported pressed")
	}

	in.Keyboard.Tick()
	in.Keyboard.Release(ebiten.KeyA)
	if KeyButton(ebiten.KeyA).Pressed(in) {
		t.Error("key:A still pressed after release")
	}
	if !KeyButton(ebiten.KeyA).JustReleased(in) {
		t.Error("key:A not just-released after release")
	}
}

// --- Text form ---

func TestButtonStringRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		button Button
		text   string
	}{
		{"key", KeyButton(ebiten.KeySpace), "key:Space"},
		{"mouse left", MouseButton(ebiten.MouseButtonLeft), "mouse:left"},
		{"mouse middle", MouseButton(ebiten.MouseButtonMiddle), "mouse:middle"},
		{"mouse right", MouseButton(ebiten.MouseButtonRight), "mouse:right"},
		{"mouse numeric", MouseButton(ebiten.MouseButton4), "mouse:4"},
		{"gamepad", GamepadButton(ebiten.GamepadButton7), "pad:7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.button.String(); got != tt.text {
				t.Errorf("String() = %q, want %q", got, tt.text)
			}
			parsed, err := ParseButton(tt.text)
			if err != nil {
				t.Fatalf("ParseButton(%q): %v", tt.text, err)
			}
			if parsed != tt.button {
				t.Errorf("ParseButton(%q) = %v, want %v", tt.text, parsed, tt.button)
			}
		})
	}
}

func TestParseButtonRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"Space",
		"key:",
		"key:NotAKey",
		"mouse:99",
		"pad:-1",
		"pad:notanumber",
		"joystick:0",
	} {
		if _, err := ParseButton(s); err == nil {
			t.Errorf("ParseButton(%q) succeeded, want error", s)
		}
	}
}
