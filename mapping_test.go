package rowan

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type testAction int

const (
	actJump testAction = iota
	actFire
	actCrouch
	actUnused
)

func newTestMapping(t *testing.T) *ButtonMapping[testAction] {
	t.Helper()
	m := NewButtonMapping[testAction]()
	if !m.InsertMapping(NewMappedButtons(actJump, KeyButton(ebiten.KeySpace), GamepadButton(ebiten.GamepadButton0))) {
		t.Fatal("insert actJump failed")
	}
	if !m.InsertMapping(NewMappedButtons(actFire, MouseButton(ebiten.MouseButtonLeft))) {
		t.Fatal("insert actFire failed")
	}
	return m
}

// snapshot captures every observable lookup for change detection.
func snapshot(m *ButtonMapping[testAction]) []MappedButtons[testAction] {
	return m.Entries()
}

func entriesEqual(a, b []MappedButtons[testAction]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Action() != b[i].Action() {
			return false
		}
		ab, bb := a[i].Buttons(), b[i].Buttons()
		if len(ab) != len(bb) {
			return false
		}
		for j := range ab {
			if ab[j] != bb[j] {
				return false
			}
		}
	}
	return true
}

// --- InsertMapping ---

func TestInsertMapping_BidirectionalLookup(t *testing.T) {
	m := newTestMapping(t)

	buttons, ok := m.Buttons(actJump)
	if !ok || len(buttons) != 2 {
		t.Fatalf("Buttons(actJump) = (%v, %v), want two buttons", buttons, ok)
	}
	// get_action and get_buttons are mutual inverses over the claimed set.
	for _, b := range buttons {
		action, ok := m.ActionFor(b)
		if !ok || action != actJump {
			t.Errorf("ActionFor(%v) = (%v, %v), want (actJump, true)", b, action, ok)
		}
		if !m.IsMapped(b) {
			t.Errorf("IsMapped(%v) = false, want true", b)
		}
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestInsertMapping_DuplicateActionRejected(t *testing.T) {
	m := newTestMapping(t)
	before := snapshot(m)

	if m.InsertMapping(NewMappedButtons(actJump, KeyButton(ebiten.KeyJ))) {
		t.Error("insert with duplicate action succeeded")
	}
	if !entriesEqual(before, snapshot(m)) {
		t.Error("failed insert mutated the mapping")
	}
	if m.IsMapped(KeyButton(ebiten.KeyJ)) {
		t.Error("failed insert claimed the new button")
	}
}

func TestInsertMapping_ClaimedButtonRejected(t *testing.T) {
	m := newTestMapping(t)
	before := snapshot(m)

	// actCrouch offers one free button and one claimed by actJump; the whole
	// insert must fail and the free button must stay unclaimed.
	if m.InsertMapping(NewMappedButtons(actCrouch, KeyButton(ebiten.KeyC), KeyButton(ebiten.KeySpace))) {
		t.Error("insert with claimed button succeeded")
	}
	if !entriesEqual(before, snapshot(m)) {
		t.Error("failed insert mutated the mapping")
	}
	if m.IsMapped(KeyButton(ebiten.KeyC)) {
		t.Error("failed insert claimed the free button")
	}
	if _, ok := m.Buttons(actCrouch); ok {
		t.Error("failed insert registered the action")
	}
}

// --- UpdateButtons ---

func TestUpdateButtons_ReplacesAndReindexes(t *testing.T) {
	m := newTestMapping(t)

	if !m.UpdateButtons(actJump, KeyButton(ebiten.KeyW)) {
		t.Fatal("UpdateButtons on existing action failed")
	}

	// Old buttons are unclaimed, the new one maps to exactly this action.
	if m.IsMapped(KeyButton(ebiten.KeySpace)) || m.IsMapped(GamepadButton(ebiten.GamepadButton0)) {
		t.Error("old buttons still mapped after update")
	}
	action, ok := m.ActionFor(KeyButton(ebiten.KeyW))
	if !ok || action != actJump {
		t.Errorf("ActionFor(key:W) = (%v, %v), want (actJump, true)", action, ok)
	}

	// Entry position is reused, not reallocated.
	entries := m.Entries()
	if entries[0].Action() != actJump {
		t.Errorf("entry 0 action = %v, want actJump (position reused)", entries[0].Action())
	}
}

func TestUpdateButtons_AbsentActionIsNoOp(t *testing.T) {
	m := newTestMapping(t)
	before := snapshot(m)

	if m.UpdateButtons(actUnused, KeyButton(ebiten.KeyQ)) {
		t.Error("UpdateButtons on absent action reported success")
	}
	if !entriesEqual(before, snapshot(m)) {
		t.Error("UpdateButtons on absent action mutated the mapping")
	}
}

func TestUpdateButtons_RejectsButtonsClaimedByOtherAction(t *testing.T) {
	m := newTestMapping(t)
	before := snapshot(m)

	// mouse:left belongs to actFire; actJump may not take it by update.
	if m.UpdateButtons(actJump, MouseButton(ebiten.MouseButtonLeft)) {
		t.Error("UpdateButtons stole a button claimed by another action")
	}
	if !entriesEqual(before, snapshot(m)) {
		t.Error("rejected update mutated the mapping")
	}
}

func TestUpdateButtons_RebindingOwnButtonsAllowed(t *testing.T) {
	m := newTestMapping(t)

	// Keeping one of the action's own buttons while swapping the other is
	// not a conflict.
	if !m.UpdateButtons(actJump, KeyButton(ebiten.KeySpace), KeyButton(ebiten.KeyW)) {
		t.Fatal("update reusing the action's own button was rejected")
	}
	if m.IsMapped(GamepadButton(ebiten.GamepadButton0)) {
		t.Error("dropped button still mapped")
	}
	buttons, _ := m.Buttons(actJump)
	want := []Button{KeyButton(ebiten.KeySpace), KeyButton(ebiten.KeyW)}
	if len(buttons) != 2 || buttons[0] != want[0] || buttons[1] != want[1] {
		t.Errorf("Buttons(actJump) = %v, want %v", buttons, want)
	}
}

// --- Invariant sweep over insert sequences ---

func TestMappingInvariants_AfterMixedInserts(t *testing.T) {
	m := NewButtonMapping[testAction]()
	inserts := []MappedButtons[testAction]{
		NewMappedButtons(actJump, KeyButton(ebiten.KeySpace)),
		NewMappedButtons(actFire, KeyButton(ebiten.KeySpace)),       // rejected: button claimed
		NewMappedButtons(actFire, MouseButton(ebiten.MouseButtonLeft)),
		NewMappedButtons(actJump, KeyButton(ebiten.KeyW)),           // rejected: action claimed
		NewMappedButtons(actCrouch, KeyButton(ebiten.KeyC), KeyButton(ebiten.KeyControlLeft)),
	}
	for _, ins := range inserts {
		m.InsertMapping(ins)
	}

	// Every button claimed by exactly one entry; ActionFor/Buttons inverse.
	seen := make(map[Button]testAction)
	for _, e := range m.Entries() {
		for _, b := range e.Buttons() {
			if prev, dup := seen[b]; dup {
				t.Fatalf("button %v claimed by both %v and %v", b, prev, e.Action())
			}
			seen[b] = e.Action()
		}
		buttons, ok := m.Buttons(e.Action())
		if !ok {
			t.Fatalf("entry action %v not resolvable", e.Action())
		}
		for _, b := range buttons {
			if got, _ := m.ActionFor(b); got != e.Action() {
				t.Errorf("ActionFor(%v) = %v, want %v", b, got, e.Action())
			}
		}
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

// --- Action-level queries ---

func TestMappingQueries_AnyBoundButtonSatisfies(t *testing.T) {
	m := newTestMapping(t)
	in := &InputState{
		Keyboard: NewButtonState[ebiten.Key](),
		Gamepad:  NewButtonState[ebiten.GamepadButton](),
	}

	if m.Pressed(actJump, in) {
		t.Error("actJump pressed with nothing held")
	}

	// The second bound button alone satisfies the action.
	in.Gamepad.Press(ebiten.GamepadButton0)
	if !m.Pressed(actJump, in) {
		t.Error("actJump not pressed via its gamepad binding")
	}
	if !m.JustPressed(actJump, in) {
		t.Error("actJump not just-pressed via its gamepad binding")
	}

	in.Gamepad.Tick()
	in.Gamepad.Release(ebiten.GamepadButton0)
	if !m.JustReleased(actJump, in) {
		t.Error("actJump not just-released")
	}
}

func TestMappingQueries_MissingSnapshotAndUnmappedAction(t *testing.T) {
	m := newTestMapping(t)

	// actFire is mouse-bound; without a mouse snapshot it can never fire.
	in := &InputState{Keyboard: NewButtonState[ebiten.Key]()}
	if m.Pressed(actFire, in) || m.JustPressed(actFire, in) || m.JustReleased(actFire, in) {
		t.Error("mouse-bound action fired without a mouse snapshot")
	}

	// An action with no mapping entry always yields false.
	full := NewInputState()
	full.Keyboard.Press(ebiten.KeyQ)
	if m.Pressed(actUnused, full) {
		t.Error("unmapped action reported pressed")
	}
}
