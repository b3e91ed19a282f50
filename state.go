package rowan

// ButtonState is a per-frame snapshot of one device class: which codes are
// held, which went down this frame, and which went up this frame.
//
// Two usage styles are supported. Event-driven callers feed Press/Release and
// call Tick at the end of each frame to decay the edge sets. Polling callers
// hand the full held set to SetPressed each frame and let it derive the edges
// from the previous frame.
//
// ButtonState is not safe for concurrent use; snapshots belong to the update
// loop that fills them.
type ButtonState[T comparable] struct {
	pressed      map[T]struct{}
	justPressed  map[T]struct{}
	justReleased map[T]struct{}
}

// NewButtonState creates an empty snapshot.
func NewButtonState[T comparable]() *ButtonState[T] {
	return &ButtonState[T]{
		pressed:      make(map[T]struct{}),
		justPressed:  make(map[T]struct{}),
		justReleased: make(map[T]struct{}),
	}
}

// Press registers code as held. The just-pressed edge fires only if the code
// was not already held.
func (s *ButtonState[T]) Press(code T) {
	if _, held := s.pressed[code]; held {
		return
	}
	s.pressed[code] = struct{}{}
	s.justPressed[code] = struct{}{}
}

// Release registers code as released. The just-released edge fires only if
// the code was held.
func (s *ButtonState[T]) Release(code T) {
	if _, held := s.pressed[code]; !held {
		return
	}
	delete(s.pressed, code)
	s.justReleased[code] = struct{}{}
}

// SetPressed replaces the held set with current and derives the edge sets
// from the difference against the previous frame. Intended for polling input
// backends that report the full held set each frame.
func (s *ButtonState[T]) SetPressed(current []T) {
	clear(s.justPressed)
	clear(s.justReleased)

	next := make(map[T]struct{}, len(current))
	for _, code := range current {
		next[code] = struct{}{}
		if _, held := s.pressed[code]; !held {
			s.justPressed[code] = struct{}{}
		}
	}
	for code := range s.pressed {
		if _, held := next[code]; !held {
			s.justReleased[code] = struct{}{}
		}
	}
	s.pressed = next
}

// Tick decays the edge sets at the end of a frame. Held codes stay held.
func (s *ButtonState[T]) Tick() {
	clear(s.justPressed)
	clear(s.justReleased)
}

// Clear releases everything and drops all edges. The snapshot is as new.
func (s *ButtonState[T]) Clear() {
	clear(s.pressed)
	clear(s.justPressed)
	clear(s.justReleased)
}

// Pressed reports whether code is held.
func (s *ButtonState[T]) Pressed(code T) bool {
	_, ok := s.pressed[code]
	return ok
}

// JustPressed reports whether code went down this frame.
func (s *ButtonState[T]) JustPressed(code T) bool {
	_, ok := s.justPressed[code]
	return ok
}

// JustReleased reports whether code went up this frame.
func (s *ButtonState[T]) JustReleased(code T) bool {
	_, ok := s.justReleased[code]
	return ok
}

// Held returns the held codes in unspecified order.
func (s *ButtonState[T]) Held() []T {
	out := make([]T, 0, len(s.pressed))
	for code := range s.pressed {
		out = append(out, code)
	}
	return out
}
