package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDownUp(t *testing.T) {
	s := NewSampler()
	assert.False(t, s.IsPressed(rl.KeyW))

	s.KeyDown(rl.KeyW)
	assert.True(t, s.IsPressed(rl.KeyW))
	assert.True(t, s.AnyKeyHeld())

	s.KeyUp(rl.KeyW)
	assert.False(t, s.IsPressed(rl.KeyW))
	assert.False(t, s.AnyKeyHeld())
}

func TestFocusLostClearsEverything(t *testing.T) {
	s := NewSampler()
	s.KeyDown(rl.KeyW)
	s.KeyDown(rl.KeyLeftShift)
	s.MouseDown(MousePrimary, 10, 10)

	s.FocusLost()

	assert.False(t, s.AnyKeyHeld())
	assert.False(t, s.DragActive(MousePrimary))
	assert.False(t, s.DragActive(MouseSecondary))
}

func TestMouseMoveDeltaFromPressPoint(t *testing.T) {
	s := NewSampler()
	s.MouseDown(MousePrimary, 100, 50)

	dx, dy := s.MouseMove(90, 60)
	assert.InDelta(t, 10, dx, 1e-6)
	assert.InDelta(t, -10, dy, 1e-6)

	// Next delta is relative to the previous move, not the press point.
	dx, dy = s.MouseMove(90, 60)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestMouseMoveTracksWithoutButtons(t *testing.T) {
	s := NewSampler()
	s.MouseMove(10, 10)
	s.MouseMove(200, 300)

	// Drag starting now must not see the stale (10,10) position.
	s.MouseDown(MouseSecondary, 200, 300)
	dx, dy := s.MouseMove(201, 302)
	assert.InDelta(t, -1, dx, 1e-6)
	assert.InDelta(t, -2, dy, 1e-6)
}

func TestActionHeld(t *testing.T) {
	s := NewSampler()
	b := DefaultBindings()

	s.KeyDown(rl.KeyW)
	assert.True(t, s.ActionHeld(b, MoveUp))
	assert.False(t, s.ActionHeld(b, MoveDown))
}

func TestDefaultBindingsCoverAllActions(t *testing.T) {
	b := DefaultBindings()
	assert.Len(t, b, int(actionCount))
}

func TestApplyOverrides(t *testing.T) {
	b := DefaultBindings()
	err := b.ApplyOverrides(map[string]string{
		"spin-left":  "j",
		"spin-right": "l",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(rl.KeyJ), b[SpinLeft])
	assert.Equal(t, int32(rl.KeyL), b[SpinRight])
	// Untouched actions keep their defaults.
	assert.Equal(t, int32(rl.KeyW), b[MoveUp])
}

func TestApplyOverridesRejectsUnknownNames(t *testing.T) {
	b := DefaultBindings()

	err := b.ApplyOverrides(map[string]string{"warp-speed": "w"})
	assert.Error(t, err)

	err = b.ApplyOverrides(map[string]string{"move-up": "hyperkey"})
	assert.Error(t, err)
	// A failed override map applies nothing, including its valid entries.
	err = b.ApplyOverrides(map[string]string{"move-up": "t", "move-down": "nope"})
	assert.Error(t, err)
	assert.Equal(t, int32(rl.KeyW), b[MoveUp])
}

func TestKeysDeduplicated(t *testing.T) {
	b := Bindings{MoveUp: rl.KeyW, MoveDown: rl.KeyW, StrafeLeft: rl.KeyA}
	keys := b.Keys()
	assert.Equal(t, []int32{rl.KeyA, rl.KeyW}, keys)
}
