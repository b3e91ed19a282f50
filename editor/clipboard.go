package editor

import (
	"fmt"

	"github.com/atotto/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/rowan"
)

// The clipboard carries single level elements as YAML, the same shape they
// take inside a level file. That keeps elements pasteable across editor
// instances and hand-editable in a text editor in between.

func encodeElement(e rowan.Element) ([]byte, error) {
	data, err := yaml.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("rowan: failed to encode element: %w", err)
	}
	return data, nil
}

func decodeElement(data []byte) (rowan.Element, error) {
	var e rowan.Element
	if err := yaml.Unmarshal(data, &e); err != nil {
		return rowan.Element{}, fmt.Errorf("rowan: failed to decode element: %w", err)
	}
	return e, nil
}

// CopyElement puts an element on the system clipboard.
func CopyElement(e rowan.Element) error {
	data, err := encodeElement(e)
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("rowan: clipboard write: %w", err)
	}
	return nil
}

// PasteElement reads an element from the system clipboard.
func PasteElement() (rowan.Element, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return rowan.Element{}, fmt.Errorf("rowan: clipboard read: %w", err)
	}
	return decodeElement([]byte(text))
}

// CopySelection copies the current selection as an element at its snapped
// position.
func (e *LevelEditor) CopySelection() error {
	sel := e.sel
	if sel == nil {
		return fmt.Errorf("rowan: level editor: nothing selected")
	}
	element := rowan.Element{
		Position: sel.Pos,
		Sprite:   sel.Key,
		Collider: &rowan.ColliderDef{Width: sel.Size.X, Height: sel.Size.Y},
	}
	if sel.Index >= 0 {
		element = element.WithSpriteIndex(sel.Index)
	}
	return CopyElement(element)
}

// PasteSelection replaces the selection with the clipboard element.
func (e *LevelEditor) PasteSelection() error {
	element, err := PasteElement()
	if err != nil {
		return err
	}
	size := rowan.Vec2{X: SnapSize, Y: SnapSize}
	if element.Collider != nil {
		size = rowan.Vec2{X: element.Collider.Width, Y: element.Collider.Height}
	}
	index := -1
	if element.SpriteIndex != nil {
		index = *element.SpriteIndex
	}
	e.Select(element.Sprite, index, size)
	e.MovePreview(element.Position)
	return nil
}
