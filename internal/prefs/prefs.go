package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrefsPath is the path to the viewer preferences file, relative to the
// process working directory.
const PrefsPath = "config/prefs.json"

// Prefs holds viewer preferences persisted across runs: overlay toggles,
// grid visibility and the last model opened. Sensitivity settings are
// separate (see the settings package) because they are read-only at runtime.
type Prefs struct {
	GridVisible bool   `json:"grid_visible"`
	ShowFPS     bool   `json:"show_fps"`
	ShowBounds  bool   `json:"show_bounds"`
	LastModel   string `json:"last_model,omitempty"`
}

// Default returns default preferences (grid on, FPS counter on, bounding-box
// readout off).
func Default() Prefs {
	return Prefs{
		GridVisible: true,
		ShowFPS:     true,
		ShowBounds:  false,
	}
}

// Load reads preferences from config/prefs.json. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() Prefs {
	data, err := os.ReadFile(PrefsPath)
	if err != nil {
		return Default()
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	return p
}

// Save writes preferences to config/prefs.json, creating the config
// directory if needed.
func Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(PrefsPath), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(PrefsPath, data, 0644)
}
