package input

// MouseButton distinguishes the two drag gestures the viewer understands.
type MouseButton int

const (
	// MousePrimary orbits the model.
	MousePrimary MouseButton = iota
	// MouseSecondary pans the model in the view plane.
	MouseSecondary
)

// Sampler tracks currently-held keys and mouse drag state. It is fed by the
// per-frame input pump and read by the camera controller; everything runs on
// the UI thread, so there is no locking.
type Sampler struct {
	pressed map[int32]struct{}

	primaryDown   bool
	secondaryDown bool
	lastX, lastY  float32
}

// NewSampler returns an empty sampler: no keys held, no drag in progress.
func NewSampler() *Sampler {
	return &Sampler{pressed: make(map[int32]struct{})}
}

// KeyDown records key as held.
func (s *Sampler) KeyDown(key int32) {
	s.pressed[key] = struct{}{}
}

// KeyUp records key as released.
func (s *Sampler) KeyUp(key int32) {
	delete(s.pressed, key)
}

// FocusLost clears every held key. Key-up events are not delivered while the
// window is unfocused, so without this a key could stay "stuck" and keep
// moving the camera after the user has switched away.
func (s *Sampler) FocusLost() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
	s.primaryDown = false
	s.secondaryDown = false
}

// IsPressed reports whether key is currently held.
func (s *Sampler) IsPressed(key int32) bool {
	_, ok := s.pressed[key]
	return ok
}

// ActionHeld reports whether the key bound to action is currently held.
func (s *Sampler) ActionHeld(b Bindings, a Action) bool {
	key, ok := b[a]
	return ok && s.IsPressed(key)
}

// MouseDown starts a drag with the given button at cursor position (x, y).
// The position is stored before any move event fires, so the first drag
// delta is measured from the press point.
func (s *Sampler) MouseDown(btn MouseButton, x, y float32) {
	switch btn {
	case MousePrimary:
		s.primaryDown = true
	case MouseSecondary:
		s.secondaryDown = true
	}
	s.lastX, s.lastY = x, y
}

// MouseUp ends the drag for the given button.
func (s *Sampler) MouseUp(btn MouseButton) {
	switch btn {
	case MousePrimary:
		s.primaryDown = false
	case MouseSecondary:
		s.secondaryDown = false
	}
}

// MouseMove records the new cursor position and returns the delta against
// the previous one, as (last - new) on both axes. The stored position is
// updated even when no button is held, so a drag that starts later is
// correct from its first moved pixel.
func (s *Sampler) MouseMove(x, y float32) (deltaX, deltaY float32) {
	deltaX = s.lastX - x
	deltaY = s.lastY - y
	s.lastX, s.lastY = x, y
	return deltaX, deltaY
}

// DragActive reports whether a drag with the given button is in progress.
func (s *Sampler) DragActive(btn MouseButton) bool {
	switch btn {
	case MousePrimary:
		return s.primaryDown
	case MouseSecondary:
		return s.secondaryDown
	}
	return false
}

// AnyKeyHeld reports whether at least one key is held.
func (s *Sampler) AnyKeyHeld() bool {
	return len(s.pressed) > 0
}
