package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraBackOff is the fixed distance the scene is pushed away from the
// camera along the view axis. The view fitter scales the model so that this
// distance frames it; see camera.FitScale.
const CameraBackOff = 4

// State holds the three composable matrices that place the model in view
// space: a cumulative scale, a cumulative rotation and a translation.
// All mutation happens on the UI thread; there is no locking.
type State struct {
	scale       mgl32.Mat4
	rotation    mgl32.Mat4
	translation mgl32.Mat4
}

// New returns a State in its reset pose (identity scale and rotation,
// translated back by CameraBackOff).
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores the default pose: identity scale, identity rotation, and a
// translation of (0, 0, -CameraBackOff) so the origin sits in front of the
// camera.
func (s *State) Reset() {
	s.scale = mgl32.Ident4()
	s.rotation = mgl32.Ident4()
	s.translation = mgl32.Translate3D(0, 0, -CameraBackOff)
}

// ModelMatrix composes translation × rotation × scale. The order is
// load-bearing: scale is intrinsic to the object, rotation is about the
// object's own axes, and translation places the rotated, scaled object in
// view space. Safe to call every frame; no side effects.
func (s *State) ModelMatrix() mgl32.Mat4 {
	return s.translation.Mul4(s.rotation).Mul4(s.scale)
}

// Translate moves the translation matrix by (x, y, z) in its local frame.
func (s *State) Translate(x, y, z float32) {
	s.translation = s.translation.Mul4(mgl32.Translate3D(x, y, z))
}

// ScaleBy multiplies the cumulative scale uniformly by factor. Scale is never
// reset between operations, so successive calls compound.
func (s *State) ScaleBy(factor float32) {
	s.scale = s.scale.Mul4(mgl32.Scale3D(factor, factor, factor))
}

// SetScale replaces the cumulative scale with a uniform scale of factor.
// Used by the view fitter after a model load.
func (s *State) SetScale(factor float32) {
	s.scale = mgl32.Scale3D(factor, factor, factor)
}

// ScaleFactor returns the current uniform scale component. Only meaningful
// while all scale operations have been uniform, which is true for every
// mutation this package exposes.
func (s *State) ScaleFactor() float32 {
	return s.scale.At(0, 0)
}

// RotateLocal rotates by deg degrees about axis, left-multiplying the
// increment onto the cumulative rotation so the turn happens in the current
// local frame rather than the original world frame.
func (s *State) RotateLocal(deg float32, axis mgl32.Vec3) {
	s.rotation = mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis).Mul4(s.rotation)
}

// ApplyRotation left-multiplies an already-composed incremental rotation onto
// the cumulative rotation. Used by mouse orbit, which combines a yaw and a
// pitch into one increment per event.
func (s *State) ApplyRotation(inc mgl32.Mat4) {
	s.rotation = inc.Mul4(s.rotation)
}

// Rotation returns the cumulative rotation matrix.
func (s *State) Rotation() mgl32.Mat4 { return s.rotation }

// Translation returns the translation matrix.
func (s *State) Translation() mgl32.Mat4 { return s.translation }

// Scale returns the cumulative scale matrix.
func (s *State) Scale() mgl32.Mat4 { return s.scale }
