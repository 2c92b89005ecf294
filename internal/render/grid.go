package render

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// gridDivisions is the number of grid cells from edge to edge.
	gridDivisions = 10
	// gridMinExtent keeps the grid usable when no model (or a tiny one) is
	// loaded.
	gridMinExtent float32 = 2.5
	// gridSizeFactor sizes the grid relative to the model so it reads as a
	// ground plane under any model scale.
	gridSizeFactor float32 = 1.5
	// gridPasses redraws the line set under a quarter-turn per pass, giving a
	// symmetric crosshatch from a single line direction.
	gridPasses = 4
)

// Reused every frame to avoid per-frame color allocations.
var gridColor = rl.NewColor(140, 140, 140, 110)

// Segment is one grid line in model space.
type Segment struct {
	From, To mgl32.Vec3
}

// gridSegments returns the lines of a single pass: parallel lines spanning
// the square of the given half-extent at height y, spaced extent/divisions
// apart. The draw loop rotates this set to complete the crosshatch.
func gridSegments(extent, y float32) []Segment {
	step := 2 * extent / gridDivisions
	segs := make([]Segment, 0, gridDivisions+1)
	for x := -extent; x <= extent+step/2; x += step {
		segs = append(segs, Segment{
			From: mgl32.Vec3{x, y, -extent},
			To:   mgl32.Vec3{x, y, extent},
		})
	}
	return segs
}

// gridExtent picks the grid half-extent for a model of the given
// characteristic size.
func gridExtent(modelSize float32) float32 {
	return math32.Max(gridMinExtent, modelSize*gridSizeFactor)
}

// DrawGroundGrid draws the ground reference under the model's transform so
// it orbits and zooms with the model. y is the ground height in model space
// (the model's lower bounding Y). Lines are alpha-blended and emitted in
// four passes rotated 90° apart; endpoints are transformed on the CPU so the
// lines go through the plain line batch.
func DrawGroundGrid(modelMatrix mgl32.Mat4, modelSize, y float32) {
	segs := gridSegments(gridExtent(modelSize), y)

	rl.BeginBlendMode(rl.BlendAlpha)
	for pass := 0; pass < gridPasses; pass++ {
		m := modelMatrix.Mul4(mgl32.HomogRotate3DY(float32(pass) * math32.Pi / 2))
		for _, s := range segs {
			from := mgl32.TransformCoordinate(s.From, m)
			to := mgl32.TransformCoordinate(s.To, m)
			rl.DrawLine3D(vec3ToRaylib(from), vec3ToRaylib(to), gridColor)
		}
	}
	rl.EndBlendMode()
}
