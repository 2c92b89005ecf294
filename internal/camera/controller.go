package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"modelviewer/internal/input"
	"modelviewer/internal/settings"
	"modelviewer/internal/transform"
)

const (
	// speedFactor multiplies/divides the effective keyboard speed while the
	// speed-up/speed-down modifier is held.
	speedFactor = 3
	// scaleKeyRate halves the keyboard scale rate relative to translation so
	// Q/E feels comparable to W/A/S/D.
	scaleKeyRate = 0.5
	// minWheelStep floors the per-event zoom multiplier so a violent wheel
	// delta cannot invert or collapse the scale matrix.
	minWheelStep = 0.01
	// panRefHeight and panRefFOV are the window height and field of view at
	// which the pan sensitivities are calibrated; other sizes are normalized
	// against them so panning feels the same in any window.
	panRefHeight = 480
	panRefFOV    = 60
)

// Controller converts sampled input into transform mutations. Continuous
// input (held keys) is applied once per frame via Advance; discrete mouse
// events arrive between frames via Drag and Wheel.
type Controller struct {
	state    *transform.State
	sampler  *input.Sampler
	bindings input.Bindings
	cfg      settings.Settings

	viewportHeight float32
}

// NewController wires a controller to the transform state it mutates and the
// sampler it reads. cfg is read-only after construction.
func NewController(state *transform.State, sampler *input.Sampler, bindings input.Bindings, cfg settings.Settings) *Controller {
	return &Controller{
		state:          state,
		sampler:        sampler,
		bindings:       bindings,
		cfg:            cfg,
		viewportHeight: panRefHeight,
	}
}

// SetViewportHeight records the current window height, used to normalize pan
// drags. Called once per frame before input is applied.
func (c *Controller) SetViewportHeight(h float32) {
	if h > 0 {
		c.viewportHeight = h
	}
}

// Advance applies one frame of continuous keyboard motion scaled by the
// elapsed wall-clock seconds. With no keys held the transform is untouched.
func (c *Controller) Advance(elapsed float32) {
	if elapsed <= 0 || !c.sampler.AnyKeyHeld() {
		return
	}

	speed := c.cfg.Movement * elapsed
	if c.held(input.SpeedUp) {
		speed *= speedFactor
	}
	if c.held(input.SpeedDown) {
		speed /= speedFactor
	}

	// View-plane translation. Depth is reserved for scaling (below) so the
	// camera cannot fly through the far side of the model.
	if c.held(input.MoveUp) {
		c.state.Translate(0, speed, 0)
	}
	if c.held(input.MoveDown) {
		c.state.Translate(0, -speed, 0)
	}
	if c.held(input.StrafeLeft) {
		c.state.Translate(-speed, 0, 0)
	}
	if c.held(input.StrafeRight) {
		c.state.Translate(speed, 0, 0)
	}

	if c.held(input.ScaleUp) {
		c.state.ScaleBy(1 + speed*scaleKeyRate)
	}
	if c.held(input.ScaleDown) {
		c.state.ScaleBy(1 - speed*scaleKeyRate)
	}

	// Keyboard rotation reuses the translation speed as an angular rate in
	// radians, expressed in degrees for the transform API. Increments are
	// left-multiplied so the turn is in the camera's current local frame.
	rotSpeed := mgl32.RadToDeg(speed)
	if c.held(input.PitchUp) {
		c.state.RotateLocal(rotSpeed, mgl32.Vec3{1, 0, 0})
	}
	if c.held(input.PitchDown) {
		c.state.RotateLocal(-rotSpeed, mgl32.Vec3{1, 0, 0})
	}
	if c.held(input.SpinLeft) {
		c.state.RotateLocal(rotSpeed, mgl32.Vec3{0, 1, 0})
	}
	if c.held(input.SpinRight) {
		c.state.RotateLocal(-rotSpeed, mgl32.Vec3{0, 1, 0})
	}
}

// Drag applies a mouse drag of (deltaX, deltaY) pixels. The primary button
// orbits: yaw about Y from horizontal movement and pitch about X from
// vertical movement, combined into one increment and left-multiplied onto
// the cumulative rotation. The secondary button pans in the view plane,
// normalized by window height and field of view so the model tracks the
// cursor at any size.
func (c *Controller) Drag(deltaX, deltaY float32, btn input.MouseButton) {
	switch btn {
	case input.MousePrimary:
		yaw := mgl32.HomogRotate3DY(mgl32.DegToRad(-deltaX * c.cfg.RotateX))
		pitch := mgl32.HomogRotate3DX(mgl32.DegToRad(-deltaY * c.cfg.RotateY))
		c.state.ApplyRotation(yaw.Mul4(pitch))
	case input.MouseSecondary:
		panAdj := (panRefHeight / c.viewportHeight) * (c.cfg.FieldOfView / panRefFOV)
		c.state.Translate(-deltaX*c.cfg.PanX*panAdj, 0, 0)
		c.state.Translate(0, deltaY*c.cfg.PanY*panAdj, 0)
	}
}

// Wheel zooms by scaling: one notch multiplies the cumulative scale by
// (1 + zoom sensitivity × delta), floored at minWheelStep.
func (c *Controller) Wheel(delta float32) {
	factor := 1 + c.cfg.Zoom*delta
	if factor < minWheelStep {
		factor = minWheelStep
	}
	c.state.ScaleBy(factor)
}

func (c *Controller) held(a input.Action) bool {
	return c.sampler.ActionHeld(c.bindings, a)
}
