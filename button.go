package rowan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Device identifies the device class a Button belongs to.
type Device uint8

const (
	DeviceKeyboard Device = iota + 1 // keyboard key
	DeviceMouse                      // mouse button
	DeviceGamepad                    // gamepad button
)

// String returns the device prefix used in the Button text form.
func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "key"
	case DeviceMouse:
		return "mouse"
	case DeviceGamepad:
		return "pad"
	default:
		return "unknown"
	}
}

// Button unifies keyboard keys, mouse buttons, and gamepad buttons behind one
// comparable value. Equality and map keying are by (device, code). The zero
// Button belongs to no device and never reports pressed.
type Button struct {
	device Device
	code   int
}

// KeyButton wraps a keyboard key.
func KeyButton(k ebiten.Key) Button {
	return Button{device: DeviceKeyboard, code: int(k)}
}

// MouseButton wraps a mouse button.
func MouseButton(b ebiten.MouseButton) Button {
	return Button{device: DeviceMouse, code: int(b)}
}

// GamepadButton wraps a gamepad button.
func GamepadButton(b ebiten.GamepadButton) Button {
	return Button{device: DeviceGamepad, code: int(b)}
}

// Device returns the device class of the button.
func (b Button) Device() Device {
	return b.device
}

// Key returns the underlying keyboard key, if the button is one.
func (b Button) Key() (ebiten.Key, bool) {
	if b.device != DeviceKeyboard {
		return 0, false
	}
	return ebiten.Key(b.code), true
}

// Mouse returns the underlying mouse button, if the button is one.
func (b Button) Mouse() (ebiten.MouseButton, bool) {
	if b.device != DeviceMouse {
		return 0, false
	}
	return ebiten.MouseButton(b.code), true
}

// Gamepad returns the underlying gamepad button, if the button is one.
func (b Button) Gamepad() (ebiten.GamepadButton, bool) {
	if b.device != DeviceGamepad {
		return 0, false
	}
	return ebiten.GamepadButton(b.code), true
}

// Pressed reports whether the button is held down in the snapshot matching
// its device. A nil InputState, or a missing device snapshot, reports false.
func (b Button) Pressed(in *InputState) bool {
	if in == nil {
		return false
	}
	switch b.device {
	case DeviceKeyboard:
		return in.Keyboard != nil && in.Keyboard.Pressed(ebiten.Key(b.code))
	case DeviceMouse:
		return in.Mouse != nil && in.Mouse.Pressed(ebiten.MouseButton(b.code))
	case DeviceGamepad:
		return in.Gamepad != nil && in.Gamepad.Pressed(ebiten.GamepadButton(b.code))
	}
	return false
}

// JustPressed reports whether the button went down this frame in the snapshot
// matching its device. A nil InputState, or a missing device snapshot,
// reports false.
func (b Button) JustPressed(in *InputState) bool {
	if in == nil {
		return false
	}
	switch b.device {
	case DeviceKeyboard:
		return in.Keyboard != nil && in.Keyboard.JustPressed(ebiten.Key(b.code))
	case DeviceMouse:
		return in.Mouse != nil && in.Mouse.JustPressed(ebiten.MouseButton(b.code))
	case DeviceGamepad:
		return in.Gamepad != nil && in.Gamepad.JustPressed(ebiten.GamepadButton(b.code))
	}
	return false
}

// JustReleased reports whether the button went up this frame in the snapshot
// matching its device. A nil InputState, or a missing device snapshot,
// reports false.
func (b Button) JustReleased(in *InputState) bool {
	if in == nil {
		return false
	}
	switch b.device {
	case DeviceKeyboard:
		return in.Keyboard != nil && in.Keyboard.JustReleased(ebiten.Key(b.code))
	case DeviceMouse:
		return in.Mouse != nil && in.Mouse.JustReleased(ebiten.MouseButton(b.code))
	case DeviceGamepad:
		return in.Gamepad != nil && in.Gamepad.JustReleased(ebiten.GamepadButton(b.code))
	}
	return false
}

// --- Text form ---

// keyByName inverts ebiten.Key.String for parsing. Built once at startup;
// duplicate names (there are none today) resolve to the lowest key code.
var keyByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		name := k.String()
		if name == "" {
			continue
		}
		if _, dup := m[name]; !dup {
			m[name] = k
		}
	}
	return m
}()

var mouseNames = map[ebiten.MouseButton]string{
	ebiten.MouseButtonLeft:   "left",
	ebiten.MouseButtonMiddle: "middle",
	ebiten.MouseButtonRight:  "right",
}

var mouseByName = func() map[string]ebiten.MouseButton {
	m := make(map[string]ebiten.MouseButton, len(mouseNames))
	for b, name := range mouseNames {
		m[name] = b
	}
	return m
}()

// String returns the button in its persistent text form: "key:Space",
// "mouse:left", or "pad:3". Mouse buttons past the named three use their
// numeric code.
func (b Button) String() string {
	switch b.device {
	case DeviceKeyboard:
		return "key:" + ebiten.Key(b.code).String()
	case DeviceMouse:
		if name, ok := mouseNames[ebiten.MouseButton(b.code)]; ok {
			return "mouse:" + name
		}
		return "mouse:" + strconv.Itoa(b.code)
	case DeviceGamepad:
		return "pad:" + strconv.Itoa(b.code)
	default:
		return "unknown"
	}
}

// ParseButton parses the text form produced by String.
func ParseButton(s string) (Button, error) {
	device, code, ok := strings.Cut(s, ":")
	if !ok {
		return Button{}, fmt.Errorf("rowan: malformed button %q: missing device prefix", s)
	}
	switch device {
	case "key":
		k, ok := keyByName[code]
		if !ok {
			return Button{}, fmt.Errorf("rowan: unknown key name %q", code)
		}
		return KeyButton(k), nil
	case "mouse":
		if b, ok := mouseByName[code]; ok {
			return MouseButton(b), nil
		}
		n, err := strconv.Atoi(code)
		if err != nil || n < 0 || n > int(ebiten.MouseButtonMax) {
			return Button{}, fmt.Errorf("rowan: unknown mouse button %q", code)
		}
		return MouseButton(ebiten.MouseButton(n)), nil
	case "pad":
		n, err := strconv.Atoi(code)
		if err != nil || n < 0 || n > int(ebiten.GamepadButtonMax) {
			return Button{}, fmt.Errorf("rowan: unknown gamepad button %q", code)
		}
		return GamepadButton(ebiten.GamepadButton(n)), nil
	default:
		return Button{}, fmt.Errorf("rowan: unknown button device %q", device)
	}
}

// MarshalYAML encodes the button as its text form scalar.
func (b Button) MarshalYAML() (any, error) {
	return b.String(), nil
}

// UnmarshalYAML decodes the button from its text form scalar.
func (b *Button) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseButton(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
