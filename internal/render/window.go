package render

import rl "github.com/gen2brain/raylib-go/raylib"

// Default window size; the window is resizable and the projection follows.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// backgroundColor is the clear color behind model and grid.
var backgroundColor = rl.NewColor(28, 28, 32, 255)

// Run opens the window and drives the main loop. Each frame it calls update
// (input sampling, camera advance), then clears the screen and calls draw.
// The loop is frame-paced: vsync throttles it to the display refresh rate and
// rl.GetFrameTime supplies the elapsed wall-clock time per frame. Multisampling
// is requested so mesh edges stay smooth.
func Run(title string, width, height int32, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		draw()
		rl.EndDrawing()
	}
}
