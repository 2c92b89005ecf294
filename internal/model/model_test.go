package model

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestAttribSetFromMeshArrays(t *testing.T) {
	var f float32
	var c uint8

	bare := rl.Mesh{}
	assert.Equal(t, AttribPosition, attribsOf(bare))

	lit := rl.Mesh{Normals: &f}
	assert.True(t, attribsOf(lit).Has(AttribPosition|AttribNormal))
	assert.False(t, attribsOf(lit).Has(AttribTexcoord))

	full := rl.Mesh{Normals: &f, Texcoords: &f, Colors: &c}
	assert.Equal(t, AttribPosition|AttribNormal|AttribTexcoord|AttribColor, attribsOf(full))
}

func TestAttribSetString(t *testing.T) {
	assert.Equal(t, "position", AttribPosition.String())
	assert.Equal(t, "position|normal|uv|color",
		(AttribPosition | AttribNormal | AttribTexcoord | AttribColor).String())
	assert.Equal(t, "none", AttribSet(0).String())
}

func TestModelSizeUsesLongerCorner(t *testing.T) {
	m := &Model{
		Meshes:      []Mesh{{}},
		BoundingMin: mgl32.Vec3{-3, 0, 0},
		BoundingMax: mgl32.Vec3{1, 1, 0},
	}
	assert.InDelta(t, 3, m.Size(), 1e-6)
}

func TestNilModelIsInert(t *testing.T) {
	var m *Model
	assert.False(t, m.Valid())
	assert.Zero(t, m.Size())
	assert.Equal(t, mgl32.Vec3{}, m.Extents())
	assert.NotPanics(t, func() { m.Unload() })
}

func TestExtents(t *testing.T) {
	m := &Model{
		Meshes:      []Mesh{{}},
		BoundingMin: mgl32.Vec3{-1, -2, -3},
		BoundingMax: mgl32.Vec3{1, 2, 3},
	}
	assert.Equal(t, mgl32.Vec3{2, 4, 6}, m.Extents())
}
