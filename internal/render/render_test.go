package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"modelviewer/internal/model"
)

func TestMatrixToRaylibElementOrder(t *testing.T) {
	var m mgl32.Mat4
	for i := range m {
		m[i] = float32(i)
	}
	got := matrixToRaylib(m)

	// Spot-check the translation column and the diagonal.
	assert.Equal(t, float32(12), got.M12)
	assert.Equal(t, float32(13), got.M13)
	assert.Equal(t, float32(14), got.M14)
	assert.Equal(t, float32(0), got.M0)
	assert.Equal(t, float32(5), got.M5)
	assert.Equal(t, float32(10), got.M10)
	assert.Equal(t, float32(15), got.M15)
}

func TestGridSegmentsSpanAndHeight(t *testing.T) {
	segs := gridSegments(5, -1)
	assert.Len(t, segs, gridDivisions+1)

	for _, s := range segs {
		assert.InDelta(t, -1, s.From.Y(), 1e-6)
		assert.InDelta(t, -1, s.To.Y(), 1e-6)
		assert.InDelta(t, -5, s.From.Z(), 1e-6)
		assert.InDelta(t, 5, s.To.Z(), 1e-6)
	}
	assert.InDelta(t, -5, segs[0].From.X(), 1e-6)
	assert.InDelta(t, 5, segs[len(segs)-1].From.X(), 1e-5)
}

func TestGridExtentScalesWithModel(t *testing.T) {
	assert.InDelta(t, gridMinExtent, gridExtent(0), 1e-6)
	assert.InDelta(t, gridMinExtent, gridExtent(1), 1e-6)
	assert.InDelta(t, 15, gridExtent(10), 1e-6)
}

func TestHudAverageFPSOverWindow(t *testing.T) {
	var h Hud
	assert.Zero(t, h.AverageFPS())

	// Steady 100 FPS.
	for i := 0; i < 60; i++ {
		h.AddFrame(0.01)
	}
	assert.InDelta(t, 100, h.AverageFPS(), 1)

	// Old samples fall out of the 0.25 s window, so a rate change shows up
	// quickly.
	for i := 0; i < 30; i++ {
		h.AddFrame(0.02)
	}
	assert.InDelta(t, 50, h.AverageFPS(), 5)
}

func TestHudIgnoresZeroDelta(t *testing.T) {
	var h Hud
	h.AddFrame(0) // first frame has no meaningful delta
	assert.Zero(t, h.AverageFPS())
}

func TestGroundYFollowsModelLowerBound(t *testing.T) {
	assert.Zero(t, groundY(nil))

	m := &model.Model{
		Meshes:      []model.Mesh{{}},
		BoundingMin: mgl32.Vec3{-1, -2.5, -1},
		BoundingMax: mgl32.Vec3{1, 1, 1},
	}
	assert.InDelta(t, -2.5, groundY(m), 1e-6)
}

func TestColorFromVec4Clamps(t *testing.T) {
	c := colorFromVec4(mgl32.Vec4{0, 1, 2, -1})
	assert.Equal(t, uint8(0), c.R)
	assert.Equal(t, uint8(255), c.G)
	assert.Equal(t, uint8(255), c.B)
	assert.Equal(t, uint8(0), c.A)
}
