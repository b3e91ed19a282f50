package editor

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/rowan"
)

// Action is the editor's input action set.
type Action int

const (
	PanUp Action = iota + 1
	PanDown
	PanLeft
	PanRight
	Deselect
	Place
)

var actionNames = map[Action]string{
	PanUp:    "pan_up",
	PanDown:  "pan_down",
	PanLeft:  "pan_left",
	PanRight: "pan_right",
	Deselect: "deselect",
	Place:    "place",
}

// String returns the snake_case name used in bindings files.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction is the inverse of String, for loading bindings files.
func ParseAction(s string) (Action, bool) {
	for a, name := range actionNames {
		if name == s {
			return a, true
		}
	}
	return 0, false
}

// DefaultMapping binds WASD to panning, Escape to deselect, and the left
// mouse button to placement.
func DefaultMapping() *rowan.ButtonMapping[Action] {
	m := rowan.NewButtonMapping[Action]()
	m.InsertMapping(rowan.NewMappedButtons(PanUp, rowan.KeyButton(ebiten.KeyW)))
	m.InsertMapping(rowan.NewMappedButtons(PanDown, rowan.KeyButton(ebiten.KeyS)))
	m.InsertMapping(rowan.NewMappedButtons(PanLeft, rowan.KeyButton(ebiten.KeyA)))
	m.InsertMapping(rowan.NewMappedButtons(PanRight, rowan.KeyButton(ebiten.KeyD)))
	m.InsertMapping(rowan.NewMappedButtons(Deselect, rowan.KeyButton(ebiten.KeyEscape)))
	m.InsertMapping(rowan.NewMappedButtons(Place, rowan.MouseButton(ebiten.MouseButtonLeft)))
	return m
}
