package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path is the default location of the settings file, relative to the process
// working directory.
const Path = "config/settings.yaml"

// Settings holds the sensitivity parameters and key-binding overrides loaded
// once at startup. The core treats a loaded Settings as read-only; anything
// the user changes takes effect on the next run.
type Settings struct {
	// Mouse pan/orbit sensitivities. Pan is in view units per pixel before
	// window-size normalization; rotate is in degrees per pixel.
	PanX    float32 `yaml:"pan_x"`
	PanY    float32 `yaml:"pan_y"`
	RotateX float32 `yaml:"rotate_x"`
	RotateY float32 `yaml:"rotate_y"`

	// Movement is the keyboard motion rate in view units per second; Zoom is
	// the scale change per wheel notch.
	Movement float32 `yaml:"movement"`
	Zoom     float32 `yaml:"zoom"`

	// Projection parameters, in degrees and view units.
	FieldOfView float32 `yaml:"field_of_view"`
	NearPlane   float32 `yaml:"near_plane"`
	FarPlane    float32 `yaml:"far_plane"`

	// Bindings rebinds actions by name, e.g. "spin-left: j". Resolved against
	// input.DefaultBindings at startup.
	Bindings map[string]string `yaml:"bindings,omitempty"`
}

// Default returns the documented defaults. Pan and zoom values match a
// one-notch/one-pixel feel at the default 60° field of view.
func Default() Settings {
	return Settings{
		PanX:        0.01,
		PanY:        0.01,
		RotateX:     1,
		RotateY:     1,
		Movement:    1,
		Zoom:        0.1,
		FieldOfView: 60,
		NearPlane:   0.1,
		FarPlane:    100,
	}
}

// Load reads settings from path. A missing file returns Default() with no
// error; a file that exists but does not parse is an error, since silently
// ignoring a broken config hides the user's intent. Fields left at zero are
// filled from Default() so a partial file stays usable.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	s.fillZero()
	return s, nil
}

// Save writes settings to path, creating the config directory if needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// fillZero replaces zero-valued numeric fields with their defaults. A zero
// field of view or far plane would otherwise degenerate the projection.
func (s *Settings) fillZero() {
	d := Default()
	if s.PanX == 0 {
		s.PanX = d.PanX
	}
	if s.PanY == 0 {
		s.PanY = d.PanY
	}
	if s.RotateX == 0 {
		s.RotateX = d.RotateX
	}
	if s.RotateY == 0 {
		s.RotateY = d.RotateY
	}
	if s.Movement == 0 {
		s.Movement = d.Movement
	}
	if s.Zoom == 0 {
		s.Zoom = d.Zoom
	}
	if s.FieldOfView == 0 {
		s.FieldOfView = d.FieldOfView
	}
	if s.NearPlane == 0 {
		s.NearPlane = d.NearPlane
	}
	if s.FarPlane == 0 {
		s.FarPlane = d.FarPlane
	}
}
