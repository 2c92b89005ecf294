package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"modelviewer/internal/transform"
)

// fitMargin backs the camera off a little beyond the strict optimal distance
// so the model does not touch the viewport edges.
const fitMargin = 1.6

// FitScale computes the uniform scale that frames a model whose axis-aligned
// bounding box spans boundingMin..boundingMax in a viewport of the given
// pixel size and field of view (degrees).
//
// The field of view is narrowed when the viewport is taller than wide so
// vertical extents are not under-framed. The model's characteristic size is
// the longer of the two corner vectors; the optimal viewing distance derived
// from it is mapped onto the fixed camera back-off distance.
func FitScale(boundingMin, boundingMax mgl32.Vec3, viewportWidth, viewportHeight, fieldOfView float32) float32 {
	effectiveFOV := fieldOfView
	if viewportHeight > 0 {
		effectiveFOV = math32.Min(fieldOfView, fieldOfView*viewportWidth/viewportHeight)
	}

	modelSize := math32.Max(boundingMax.Len(), boundingMin.Len())
	if modelSize == 0 {
		return 1
	}

	optimalDistance := modelSize / math32.Atan(degToRad(effectiveFOV)) * fitMargin
	return transform.CameraBackOff / optimalDistance
}

func degToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}
