package model

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// AttribSet records which per-vertex attributes a mesh actually carries.
// Meshes in one model are heterogeneous (an OBJ group may have UVs while its
// neighbor does not), so the render loop branches on this set instead of
// assuming a fixed layout.
type AttribSet uint8

const (
	AttribPosition AttribSet = 1 << iota
	AttribNormal
	AttribTexcoord
	AttribColor
)

// Has reports whether every attribute in a is present.
func (s AttribSet) Has(a AttribSet) bool {
	return s&a == a
}

// String lists the attributes for logs, e.g. "position|normal|uv".
func (s AttribSet) String() string {
	var parts []string
	if s.Has(AttribPosition) {
		parts = append(parts, "position")
	}
	if s.Has(AttribNormal) {
		parts = append(parts, "normal")
	}
	if s.Has(AttribTexcoord) {
		parts = append(parts, "uv")
	}
	if s.Has(AttribColor) {
		parts = append(parts, "color")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Mesh is one drawable piece of a model: the GPU-side raylib mesh plus its
// attribute capability set.
type Mesh struct {
	Raw     rl.Mesh
	Attribs AttribSet
}

// Model is a loaded model: its meshes and the axis-aligned bounding box the
// view fitter frames. A nil *Model means nothing is loaded.
type Model struct {
	Path        string
	Meshes      []Mesh
	BoundingMin mgl32.Vec3
	BoundingMax mgl32.Vec3

	raw rl.Model
}

// Valid reports whether m holds at least one drawable mesh. Safe on nil.
func (m *Model) Valid() bool {
	return m != nil && len(m.Meshes) > 0
}

// Size returns the model's characteristic size: the longer of the two
// bounding corner vectors measured from the origin.
func (m *Model) Size() float32 {
	if !m.Valid() {
		return 0
	}
	maxLen := m.BoundingMax.Len()
	if minLen := m.BoundingMin.Len(); minLen > maxLen {
		return minLen
	}
	return maxLen
}

// Extents returns the bounding-box edge lengths, for the HUD readout.
func (m *Model) Extents() mgl32.Vec3 {
	if !m.Valid() {
		return mgl32.Vec3{}
	}
	return m.BoundingMax.Sub(m.BoundingMin)
}

// Unload releases the model's GPU resources. Safe on nil.
func (m *Model) Unload() {
	if m == nil {
		return
	}
	rl.UnloadModel(m.raw)
	m.Meshes = nil
}

// attribsOf derives a mesh's capability set from which vertex arrays raylib
// filled in. Positions are always present in a mesh raylib accepted.
func attribsOf(mesh rl.Mesh) AttribSet {
	set := AttribPosition
	if mesh.Normals != nil {
		set |= AttribNormal
	}
	if mesh.Texcoords != nil {
		set |= AttribTexcoord
	}
	if mesh.Colors != nil {
		set |= AttribColor
	}
	return set
}
