package screenshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Dir is where screenshots are written, relative to the working directory.
const Dir = "screenshots"

// Capture reads back the current framebuffer and writes it to path as a
// lossless WebP. Must be called on the render thread while a frame is
// available.
func Capture(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := nativewebp.Encode(f, img.ToImage(), nil); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// DefaultPath returns a timestamped path under Dir, e.g.
// screenshots/viewer-20240131-154210.webp.
func DefaultPath(now time.Time) string {
	return filepath.Join(Dir, "viewer-"+now.Format("20060102-150405")+".webp")
}
