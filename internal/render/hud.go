package render

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"modelviewer/internal/model"
)

const (
	hudFontSize   = 20
	hudPadding    = 12
	hudLineHeight = hudFontSize + 4
	// fpsWindowSeconds is the span of frame deltas the FPS readout averages
	// over, so the number is steady instead of flickering per frame.
	fpsWindowSeconds float32 = 0.25
)

var hudColor = rl.Green

// Hud draws the optional text overlays: an averaged frame-rate counter and
// the loaded model's bounding-box extents.
type Hud struct {
	ShowFPS    bool
	ShowBounds bool

	deltas []float32
	total  float32
}

// AddFrame records one frame delta and drops samples that have fallen out of
// the averaging window. Call once per frame; the first frame's delta may be
// zero and is ignored.
func (h *Hud) AddFrame(dt float32) {
	if dt <= 0 {
		return
	}
	h.deltas = append(h.deltas, dt)
	h.total += dt
	for len(h.deltas) > 1 && h.total-h.deltas[0] >= fpsWindowSeconds {
		h.total -= h.deltas[0]
		h.deltas = h.deltas[1:]
	}
}

// AverageFPS returns the frame rate averaged over the retained window, or 0
// before any frame has been recorded.
func (h *Hud) AverageFPS() float32 {
	if h.total <= 0 {
		return 0
	}
	return float32(len(h.deltas)) / h.total
}

// Draw renders the enabled overlays at the top right. Call after the 3D
// scene, in 2D screen space.
func (h *Hud) Draw(mdl *model.Model) {
	screenW := int32(rl.GetScreenWidth())
	y := int32(hudPadding)

	if h.ShowFPS {
		text := fmt.Sprintf("FPS: %.0f", h.AverageFPS())
		w := rl.MeasureText(text, hudFontSize)
		rl.DrawText(text, screenW-w-hudPadding, y, hudFontSize, hudColor)
		y += hudLineHeight
	}

	if h.ShowBounds && mdl.Valid() {
		e := mdl.Extents()
		text := fmt.Sprintf("Bounds: %.2f x %.2f x %.2f", e.X(), e.Y(), e.Z())
		w := rl.MeasureText(text, hudFontSize)
		rl.DrawText(text, screenW-w-hudPadding, y, hudFontSize, hudColor)
	}
}
