package model

import (
	"fmt"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Load reads a model file through raylib (OBJ, glTF, IQM, VOX, M3D) and
// uploads its meshes to the GPU, so it must run after the window exists.
// Loading is synchronous on the UI thread; large files stall the frame.
func Load(path string) (*Model, error) {
	raw := rl.LoadModel(path)
	if !rl.IsModelValid(raw) || raw.MeshCount == 0 {
		rl.UnloadModel(raw)
		return nil, fmt.Errorf("load model %s: no meshes", path)
	}
	return wrap(raw, path), nil
}

// Primitive builds a generated mesh by name without touching the
// filesystem: cube, sphere, cylinder, cone, torus, knot or plane.
func Primitive(name string) (*Model, error) {
	var mesh rl.Mesh
	switch name {
	case "cube":
		mesh = rl.GenMeshCube(1, 1, 1)
	case "sphere":
		mesh = rl.GenMeshSphere(0.75, 24, 32)
	case "cylinder":
		mesh = rl.GenMeshCylinder(0.5, 1, 24)
	case "cone":
		mesh = rl.GenMeshCone(0.5, 1, 24)
	case "torus":
		mesh = rl.GenMeshTorus(0.3, 1, 24, 32)
	case "knot":
		mesh = rl.GenMeshKnot(1, 2, 24, 96)
	case "plane":
		mesh = rl.GenMeshPlane(2, 2, 1, 1)
	default:
		return nil, fmt.Errorf("unknown primitive %q", name)
	}
	raw := rl.LoadModelFromMesh(mesh)
	return wrap(raw, "primitive:"+name), nil
}

// PrimitiveNames lists the names Primitive accepts, in menu order.
func PrimitiveNames() []string {
	return []string{"cube", "sphere", "cylinder", "cone", "torus", "knot", "plane"}
}

func wrap(raw rl.Model, path string) *Model {
	box := rl.GetModelBoundingBox(raw)
	m := &Model{
		Path:        path,
		BoundingMin: mgl32.Vec3{box.Min.X, box.Min.Y, box.Min.Z},
		BoundingMax: mgl32.Vec3{box.Max.X, box.Max.Y, box.Max.Z},
		raw:         raw,
	}
	for _, mesh := range unsafe.Slice(raw.Meshes, raw.MeshCount) {
		m.Meshes = append(m.Meshes, Mesh{Raw: mesh, Attribs: attribsOf(mesh)})
	}
	return m
}
