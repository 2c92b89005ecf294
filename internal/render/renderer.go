package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"modelviewer/internal/model"
	"modelviewer/internal/settings"
	"modelviewer/internal/transform"
)

// Renderer owns the per-frame draw sequence: projection from the live
// viewport, shader uniform upload, per-mesh draws branched on each mesh's
// attribute set, then the ground grid. Construction compiles the built-in
// program, so it must happen after the window exists.
type Renderer struct {
	Program  *Program
	Lighting Lighting
	Hud      Hud

	litMaterial  rl.Material
	flatMaterial rl.Material
	frame        int
}

// NewRenderer builds the render resources. Requires a live GL context.
func NewRenderer() (*Renderer, error) {
	program, err := NewProgram()
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		Program:  program,
		Lighting: DefaultLighting(),
	}
	r.litMaterial = rl.LoadMaterialDefault()
	r.flatMaterial = rl.LoadMaterialDefault()
	return r, nil
}

// Draw renders one frame of the scene: the loaded model (if any) and the
// ground grid, under the projection built from the current render size and
// the configured field of view and clip planes. An empty scene still draws
// the grid. HUD overlays are drawn afterward in screen space.
func (r *Renderer) Draw(st *transform.State, mdl *model.Model, cfg settings.Settings, gridVisible bool) {
	// Render size accounts for display pixel-density scaling.
	width := float32(rl.GetRenderWidth())
	height := float32(rl.GetRenderHeight())
	if width <= 0 || height <= 0 {
		return
	}

	proj := mgl32.Perspective(mgl32.DegToRad(cfg.FieldOfView), width/height, cfg.NearPlane, cfg.FarPlane)
	modelMatrix := st.ModelMatrix()

	// The camera sits at the origin looking down -Z (the view matrix is the
	// identity); the model matrix carries the whole placement. BeginMode3D
	// handles depth state and matrix save/restore, then the projection is
	// replaced to honor the configured near/far planes.
	cam := rl.Camera3D{
		Position:   rl.NewVector3(0, 0, 0),
		Target:     rl.NewVector3(0, 0, -1),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       cfg.FieldOfView,
		Projection: rl.CameraPerspective,
	}
	rl.BeginMode3D(cam)
	rl.SetMatrixProjection(matrixToRaylib(proj))

	if mdl.Valid() {
		r.drawModel(mdl, modelMatrix)
	}
	if gridVisible {
		DrawGroundGrid(modelMatrix, mdl.Size(), groundY(mdl))
	}
	rl.EndMode3D()

	r.Hud.Draw(mdl)
	r.frame++
}

// drawModel issues one draw per mesh. Meshes carry different attribute sets,
// so each picks the material its data supports: the ADS program needs
// normals, everything else falls back to the flat material.
func (r *Renderer) drawModel(mdl *model.Model, modelMatrix mgl32.Mat4) {
	r.litMaterial.Shader = r.Program.Shader()
	r.Program.Apply(r.Lighting)
	if albedo := r.flatMaterial.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = colorFromVec4(r.Lighting.ObjectColor)
	}

	transformRl := matrixToRaylib(modelMatrix)
	for _, mesh := range mdl.Meshes {
		if mesh.Attribs.Has(model.AttribNormal) {
			rl.DrawMesh(mesh.Raw, r.litMaterial, transformRl)
		} else {
			rl.DrawMesh(mesh.Raw, r.flatMaterial, transformRl)
		}
	}
}

// Unload releases render resources.
func (r *Renderer) Unload() {
	r.Program.Unload()
}

// groundY places the grid at the model's lower bound, or at the origin when
// nothing is loaded.
func groundY(mdl *model.Model) float32 {
	if !mdl.Valid() {
		return 0
	}
	return mdl.BoundingMin.Y()
}

func colorFromVec4(v mgl32.Vec4) rl.Color {
	return rl.NewColor(channel(v.X()), channel(v.Y()), channel(v.Z()), channel(v.W()))
}

func channel(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f * 255)
}
