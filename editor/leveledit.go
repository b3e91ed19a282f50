package editor

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"

	"github.com/phanxgames/rowan"
)

// SnapSize is the placement grid pitch in world pixels.
const SnapSize = 24

// colliderInset shrinks placement colliders slightly so sprites sharing a
// grid edge do not register as overlapping.
const colliderInset = 0.25

// Selection is the sprite currently attached to the cursor. Pos is its
// snapped world center; Colliding means placing here would overlap an
// existing body and hosts should tint the preview as a warning.
type Selection struct {
	Key   string
	Index int
	Size  rowan.Vec2

	Pos       rowan.Vec2
	Colliding bool

	obj *resolv.Object
}

type placedObject struct {
	element rowan.Element
	obj     *resolv.Object
}

// LevelEditor accumulates placed sprites into a level. It owns a resolv
// space holding one body per placed sprite plus the selection preview, which
// vetoes placements that would overlap.
type LevelEditor struct {
	name string
	id   rowan.LevelID

	space    *resolv.Space
	sel      *Selection
	placed   []placedObject
	saveFunc func([]byte) error
}

// NewLevelEditor starts an empty level with the given name and id. The space
// bounds the editable area.
func NewLevelEditor(name string, id rowan.LevelID, space *resolv.Space) *LevelEditor {
	return &LevelEditor{name: name, id: id, space: space}
}

// SetSaveFunc sets the destination Save writes the marshaled level to.
func (e *LevelEditor) SetSaveFunc(fn func([]byte) error) {
	e.saveFunc = fn
}

// Selection returns the current selection, or nil.
func (e *LevelEditor) Selection() *Selection {
	return e.sel
}

// Placed returns the elements placed so far, in placement order.
func (e *LevelEditor) Placed() []rowan.Element {
	out := make([]rowan.Element, len(e.placed))
	for i, p := range e.placed {
		out[i] = p.element
	}
	return out
}

// Select attaches a sprite to the cursor, replacing any current selection.
// The previous selection's position carries over so swapping sprites does
// not jump the preview.
func (e *LevelEditor) Select(key string, index int, size rowan.Vec2) {
	pos := rowan.Vec2{}
	if e.sel != nil {
		pos = e.sel.Pos
		e.dropPreview()
	}
	sel := &Selection{Key: key, Index: index, Size: size, Pos: pos}
	sel.obj = resolv.NewObject(
		pos.X-(size.X-colliderInset)/2, pos.Y-(size.Y-colliderInset)/2,
		size.X-colliderInset, size.Y-colliderInset,
	)
	e.space.Add(sel.obj)
	e.sel = sel
	e.refreshCollision()
}

// Deselect drops the selection preview.
func (e *LevelEditor) Deselect() {
	if e.sel == nil {
		return
	}
	e.dropPreview()
	e.sel = nil
}

func (e *LevelEditor) dropPreview() {
	if e.sel.obj != nil {
		e.space.Remove(e.sel.obj)
	}
}

// SnapToGrid snaps a world position onto the placement grid so that the
// sprite's anchor corner lands on a grid line. anchor is the offset from the
// sprite center to that corner.
func SnapToGrid(pos, anchor rowan.Vec2) rowan.Vec2 {
	p := pos.Add(anchor).Sub(rowan.Vec2{X: SnapSize / 2, Y: SnapSize / 2})
	p.X = math.Ceil(p.X/SnapSize) * SnapSize
	p.Y = math.Ceil(p.Y/SnapSize) * SnapSize
	return p.Sub(anchor)
}

// MovePreview snaps the selection to the grid cell under the cursor and
// refreshes its collision warning. No-op without a selection.
func (e *LevelEditor) MovePreview(cursor rowan.Vec2) {
	if e.sel == nil {
		return
	}
	anchor := rowan.Vec2{X: -e.sel.Size.X / 2, Y: -e.sel.Size.Y / 2}
	e.sel.Pos = SnapToGrid(cursor, anchor)
	e.sel.obj.X = e.sel.Pos.X - (e.sel.Size.X-colliderInset)/2
	e.sel.obj.Y = e.sel.Pos.Y - (e.sel.Size.Y-colliderInset)/2
	e.sel.obj.Update()
	e.refreshCollision()
}

func (e *LevelEditor) refreshCollision() {
	e.sel.Colliding = e.sel.obj.Check(0, 0) != nil
}

// Place commits the selection at its current position. A colliding preview
// refuses to place; either way the selection stays attached to the cursor.
// Reports whether an element was placed.
func (e *LevelEditor) Place() bool {
	sel := e.sel
	if sel == nil || sel.Colliding {
		return false
	}
	element := rowan.Element{
		Position: sel.Pos,
		Sprite:   sel.Key,
		Collider: &rowan.ColliderDef{Width: sel.Size.X, Height: sel.Size.Y},
	}
	if sel.Index >= 0 {
		element = element.WithSpriteIndex(sel.Index)
	}
	obj := resolv.NewObject(
		sel.Pos.X-(sel.Size.X-colliderInset)/2, sel.Pos.Y-(sel.Size.Y-colliderInset)/2,
		sel.Size.X-colliderInset, sel.Size.Y-colliderInset,
	)
	e.space.Add(obj)
	e.placed = append(e.placed, placedObject{element: element, obj: obj})
	// the preview now overlaps what it just placed, until the cursor moves
	e.refreshCollision()
	return true
}

// BuildLevel assembles the placed elements into a level.
func (e *LevelEditor) BuildLevel() *rowan.Level {
	return &rowan.Level{
		Name:     e.name,
		ID:       e.id,
		Elements: e.Placed(),
	}
}

// Save marshals the current level and hands it to the save destination.
func (e *LevelEditor) Save() error {
	if e.saveFunc == nil {
		return fmt.Errorf("rowan: level editor: no save destination set")
	}
	data, err := e.BuildLevel().Marshal()
	if err != nil {
		return err
	}
	return e.saveFunc(data)
}

// Update runs one editor frame: move the preview to the cursor, then apply
// the frame's inputs. Ctrl+S saves; Deselect and Place fire on their bound
// buttons' press edges.
func (e *LevelEditor) Update(m *rowan.ButtonMapping[Action], in *rowan.InputState, cursor rowan.Vec2) error {
	e.MovePreview(cursor)

	if in != nil && in.Keyboard != nil &&
		in.Keyboard.Pressed(ebiten.KeyControlLeft) && in.Keyboard.JustPressed(ebiten.KeyS) {
		if err := e.Save(); err != nil {
			return err
		}
	}
	if m.JustPressed(Deselect, in) {
		e.Deselect()
	}
	if m.JustPressed(Place, in) {
		e.Place()
	}
	return nil
}
