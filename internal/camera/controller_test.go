package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"modelviewer/internal/input"
	"modelviewer/internal/settings"
	"modelviewer/internal/transform"
)

func newTestController() (*Controller, *transform.State, *input.Sampler) {
	st := transform.New()
	sam := input.NewSampler()
	ctrl := NewController(st, sam, input.DefaultBindings(), settings.Default())
	return ctrl, st, sam
}

func TestAdvanceNoKeysIsIdentityEvolution(t *testing.T) {
	ctrl, st, _ := newTestController()
	before := st.ModelMatrix()
	for i := 0; i < 100; i++ {
		ctrl.Advance(0.016)
	}
	assert.Equal(t, before, st.ModelMatrix())
}

func TestAdvanceTranslatesHeldDirections(t *testing.T) {
	ctrl, st, sam := newTestController()

	sam.KeyDown(rl.KeyW)
	ctrl.Advance(0.5)
	assertMat4Near(t, mgl32.Translate3D(0, 0.5, -4), st.Translation())

	sam.KeyUp(rl.KeyW)
	sam.KeyDown(rl.KeyA)
	ctrl.Advance(0.5)
	assertMat4Near(t, mgl32.Translate3D(-0.5, 0.5, -4), st.Translation())
}

func TestSpeedModifiers(t *testing.T) {
	ctrl, st, sam := newTestController()

	sam.KeyDown(rl.KeyW)
	sam.KeyDown(rl.KeyLeftShift)
	ctrl.Advance(0.5)
	assertMat4Near(t, mgl32.Translate3D(0, 1.5, -4), st.Translation())

	st.Reset()
	sam.KeyUp(rl.KeyLeftShift)
	sam.KeyDown(rl.KeyLeftControl)
	ctrl.Advance(0.6)
	assertMat4Near(t, mgl32.Translate3D(0, 0.2, -4), st.Translation())
}

func TestAdvanceScalesInsteadOfDollying(t *testing.T) {
	ctrl, st, sam := newTestController()

	sam.KeyDown(rl.KeyE)
	ctrl.Advance(0.5)
	assert.InDelta(t, 1.25, st.ScaleFactor(), 1e-6)
	// Translation depth untouched; depth change is scaling only.
	assertMat4Near(t, mgl32.Translate3D(0, 0, -4), st.Translation())

	sam.KeyUp(rl.KeyE)
	sam.KeyDown(rl.KeyQ)
	ctrl.Advance(0.5)
	assert.InDelta(t, 1.25*0.75, st.ScaleFactor(), 1e-6)
}

func TestAdvancePitchUsesElapsedAsRadians(t *testing.T) {
	ctrl, st, sam := newTestController()

	sam.KeyDown(rl.KeyUp)
	ctrl.Advance(0.25)
	assertMat4Near(t, mgl32.HomogRotate3DX(0.25), st.Rotation())
}

func TestAdvanceSpinLeftMultiplies(t *testing.T) {
	ctrl, st, sam := newTestController()

	sam.KeyDown(rl.KeyUp)
	ctrl.Advance(0.25)
	first := st.Rotation()
	sam.KeyUp(rl.KeyUp)
	sam.KeyDown(rl.KeyRight)
	ctrl.Advance(0.25)

	want := mgl32.HomogRotate3DY(-0.25).Mul4(first)
	assertMat4Near(t, want, st.Rotation())
}

func TestFocusLossStopsMotion(t *testing.T) {
	ctrl, st, sam := newTestController()

	sam.KeyDown(rl.KeyW)
	sam.KeyDown(rl.KeyRight)
	sam.FocusLost()

	before := st.ModelMatrix()
	ctrl.Advance(0.5)
	assert.Equal(t, before, st.ModelMatrix())
}

func TestOrbitDragRoundTrip(t *testing.T) {
	st := transform.New()
	cfg := settings.Default()
	cfg.RotateX = 0.6
	ctrl := NewController(st, input.NewSampler(), input.DefaultBindings(), cfg)

	ctrl.Drag(10, 0, input.MousePrimary)
	assertMat4Near(t, mgl32.HomogRotate3DY(mgl32.DegToRad(-6)), st.Rotation())

	ctrl.Drag(-10, 0, input.MousePrimary)
	assertMat4Near(t, mgl32.Ident4(), st.Rotation())
}

func TestPanDragNormalization(t *testing.T) {
	ctrl, st, _ := newTestController()

	// Reference window: height 480, FOV 60 -> adjustment factor 1.
	ctrl.SetViewportHeight(480)
	ctrl.Drag(10, 6, input.MouseSecondary)
	assertMat4Near(t, mgl32.Translate3D(-0.1, 0.06, -4), st.Translation())

	// Double height halves the per-pixel pan.
	st.Reset()
	ctrl.SetViewportHeight(960)
	ctrl.Drag(10, 6, input.MouseSecondary)
	assertMat4Near(t, mgl32.Translate3D(-0.05, 0.03, -4), st.Translation())
}

func TestWheelIsMultiplicative(t *testing.T) {
	ctrl, st, _ := newTestController()

	ctrl.Wheel(2)
	ctrl.Wheel(-1)
	sequential := st.ScaleFactor()

	st.Reset()
	st.ScaleBy((1 + 0.1*2) * (1 - 0.1))
	assert.InDelta(t, st.ScaleFactor(), sequential, 1e-6)

	// Order does not matter.
	st.Reset()
	ctrl.Wheel(-1)
	ctrl.Wheel(2)
	assert.InDelta(t, sequential, st.ScaleFactor(), 1e-6)
}

func TestWheelFloorPreventsInversion(t *testing.T) {
	ctrl, st, _ := newTestController()

	ctrl.Wheel(-1000)
	assert.Greater(t, st.ScaleFactor(), float32(0))
}

func assertMat4Near(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, want[i], got[i], 1e-5)
	}
}
