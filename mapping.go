package rowan

// MappedButtons pairs one action with the ordered buttons bound to it.
// The structure itself does not deduplicate; a ButtonMapping enforces
// exclusive button ownership at insertion.
type MappedButtons[A comparable] struct {
	action  A
	buttons []Button
}

// NewMappedButtons binds action to the given buttons. The button slice is
// copied; typical mappings hold one or two buttons.
func NewMappedButtons[A comparable](action A, buttons ...Button) MappedButtons[A] {
	bs := make([]Button, len(buttons))
	copy(bs, buttons)
	return MappedButtons[A]{action: action, buttons: bs}
}

// Action returns the mapped action.
func (m MappedButtons[A]) Action() A {
	return m.action
}

// Buttons returns a copy of the bound buttons in order.
func (m MappedButtons[A]) Buttons() []Button {
	out := make([]Button, len(m.buttons))
	copy(out, m.buttons)
	return out
}

// ButtonMapping is a bidirectional registry between actions and buttons.
// Each action appears in at most one entry, and each button is claimed by at
// most one entry; both are enforced at insertion. Entry positions are stable:
// updating an action's buttons reuses its slot.
//
// A ButtonMapping is built once at startup (usually from a default table),
// then optionally mutated when the player rebinds keys. It is not safe for
// concurrent mutation.
type ButtonMapping[A comparable] struct {
	entries  []MappedButtons[A]
	byAction map[A]int
	byButton map[Button]int
}

// NewButtonMapping creates an empty registry.
func NewButtonMapping[A comparable]() *ButtonMapping[A] {
	return &ButtonMapping[A]{
		byAction: make(map[A]int),
		byButton: make(map[Button]int),
	}
}

// InsertMapping adds a new entry. It fails without mutating anything if the
// action is already bound or any of the entry's buttons is already claimed by
// an existing entry. The caller decides whether a failed insert is fatal.
func (bm *ButtonMapping[A]) InsertMapping(m MappedButtons[A]) bool {
	if _, exists := bm.byAction[m.action]; exists {
		debugf("insert rejected: action %v already mapped", m.action)
		return false
	}
	for _, b := range m.buttons {
		if _, claimed := bm.byButton[b]; claimed {
			debugf("insert rejected: button %v already claimed", b)
			return false
		}
	}
	idx := len(bm.entries)
	for _, b := range m.buttons {
		bm.byButton[b] = idx
	}
	bm.byAction[m.action] = idx
	bm.entries = append(bm.entries, m)
	return true
}

// UpdateButtons replaces the buttons bound to an existing action, keeping the
// entry's position. It returns false without mutating anything if the action
// is not present, or if any new button is claimed by a different action;
// rebinding must release the other action first.
func (bm *ButtonMapping[A]) UpdateButtons(action A, buttons ...Button) bool {
	idx, ok := bm.byAction[action]
	if !ok {
		return false
	}
	for _, b := range buttons {
		if owner, claimed := bm.byButton[b]; claimed && owner != idx {
			debugf("update rejected: button %v claimed by another action", b)
			return false
		}
	}
	for _, b := range bm.entries[idx].buttons {
		delete(bm.byButton, b)
	}
	bs := make([]Button, len(buttons))
	copy(bs, buttons)
	for _, b := range bs {
		bm.byButton[b] = idx
	}
	bm.entries[idx].buttons = bs
	return true
}

// Buttons returns the buttons bound to action, in binding order.
// The second return is false if the action is not mapped.
func (bm *ButtonMapping[A]) Buttons(action A) ([]Button, bool) {
	idx, ok := bm.byAction[action]
	if !ok {
		return nil, false
	}
	return bm.entries[idx].Buttons(), true
}

// ActionFor returns the action that claims button, if any.
func (bm *ButtonMapping[A]) ActionFor(button Button) (A, bool) {
	idx, ok := bm.byButton[button]
	if !ok {
		var zero A
		return zero, false
	}
	return bm.entries[idx].action, true
}

// IsMapped reports whether any action claims button.
func (bm *ButtonMapping[A]) IsMapped(button Button) bool {
	_, ok := bm.byButton[button]
	return ok
}

// Len returns the number of entries.
func (bm *ButtonMapping[A]) Len() int {
	return len(bm.entries)
}

// Entries returns a copy of the entries in insertion order.
func (bm *ButtonMapping[A]) Entries() []MappedButtons[A] {
	out := make([]MappedButtons[A], len(bm.entries))
	for i, e := range bm.entries {
		out[i] = NewMappedButtons(e.action, e.buttons...)
	}
	return out
}

// Pressed reports whether any button bound to action is held in the supplied
// input snapshots. An unmapped action reports false.
func (bm *ButtonMapping[A]) Pressed(action A, in *InputState) bool {
	idx, ok := bm.byAction[action]
	if !ok {
		return false
	}
	for _, b := range bm.entries[idx].buttons {
		if b.Pressed(in) {
			return true
		}
	}
	return false
}

// JustPressed reports whether any button bound to action went down this
// frame. An unmapped action reports false.
func (bm *ButtonMapping[A]) JustPressed(action A, in *InputState) bool {
	idx, ok := bm.byAction[action]
	if !ok {
		return false
	}
	for _, b := range bm.entries[idx].buttons {
		if b.JustPressed(in) {
			return true
		}
	}
	return false
}

// JustReleased reports whether any button bound to action went up this
// frame. An unmapped action reports false.
func (bm *ButtonMapping[A]) JustReleased(action A, in *InputState) bool {
	idx, ok := bm.byAction[action]
	if !ok {
		return false
	}
	for _, b := range bm.entries[idx].buttons {
		if b.JustReleased(in) {
			return true
		}
	}
	return false
}
