package input

import (
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action is a logical control the user can hold (continuous motion) or tap
// (discrete command). The camera controller reads held actions every frame;
// the viewer glue reads tapped actions from the same binding table.
type Action int

const (
	// Held: translation in the view plane.
	MoveUp Action = iota
	MoveDown
	StrafeLeft
	StrafeRight
	// Held: rotation about the local axes.
	PitchUp
	PitchDown
	SpinLeft
	SpinRight
	// Held: cumulative scale.
	ScaleUp
	ScaleDown
	// Held: speed modifiers for all of the above.
	SpeedUp
	SpeedDown
	// Tapped: discrete commands.
	ResetView
	ToggleGrid
	ToggleHud
	Screenshot

	actionCount
)

// actionNames maps the config-file spelling of each action to its Action.
var actionNames = map[string]Action{
	"move-up":      MoveUp,
	"move-down":    MoveDown,
	"strafe-left":  StrafeLeft,
	"strafe-right": StrafeRight,
	"pitch-up":     PitchUp,
	"pitch-down":   PitchDown,
	"spin-left":    SpinLeft,
	"spin-right":   SpinRight,
	"scale-up":     ScaleUp,
	"scale-down":   ScaleDown,
	"speed-up":     SpeedUp,
	"speed-down":   SpeedDown,
	"reset-view":   ResetView,
	"toggle-grid":  ToggleGrid,
	"toggle-hud":   ToggleHud,
	"screenshot":   Screenshot,
}

// keyNames maps config-file key spellings to raylib key codes. Only keys
// that make sense as viewer bindings are listed; anything else in a config
// file is rejected so a typo does not silently unbind an action.
var keyNames = map[string]int32{
	"a": rl.KeyA, "b": rl.KeyB, "c": rl.KeyC, "d": rl.KeyD, "e": rl.KeyE,
	"f": rl.KeyF, "g": rl.KeyG, "h": rl.KeyH, "i": rl.KeyI, "j": rl.KeyJ,
	"k": rl.KeyK, "l": rl.KeyL, "m": rl.KeyM, "n": rl.KeyN, "o": rl.KeyO,
	"p": rl.KeyP, "q": rl.KeyQ, "r": rl.KeyR, "s": rl.KeyS, "t": rl.KeyT,
	"u": rl.KeyU, "v": rl.KeyV, "w": rl.KeyW, "x": rl.KeyX, "y": rl.KeyY,
	"z": rl.KeyZ,
	"up": rl.KeyUp, "down": rl.KeyDown, "left": rl.KeyLeft, "right": rl.KeyRight,
	"space":       rl.KeySpace,
	"tab":         rl.KeyTab,
	"left-shift":  rl.KeyLeftShift,
	"right-shift": rl.KeyRightShift,
	"left-ctrl":   rl.KeyLeftControl,
	"right-ctrl":  rl.KeyRightControl,
	"left-alt":    rl.KeyLeftAlt,
	"f2":          rl.KeyF2, "f3": rl.KeyF3, "f4": rl.KeyF4,
	"f5": rl.KeyF5, "f12": rl.KeyF12,
	"home": rl.KeyHome, "end": rl.KeyEnd,
}

// Bindings maps logical actions to keyboard keys.
type Bindings map[Action]int32

// DefaultBindings returns the documented defaults: W/A/S/D for translation,
// arrow keys for rotation, Q/E for scale, Shift/Ctrl for speed modifiers,
// R to reset the view, G to toggle the grid, F3 for the HUD and F12 for a
// screenshot.
func DefaultBindings() Bindings {
	return Bindings{
		MoveUp:      rl.KeyW,
		MoveDown:    rl.KeyS,
		StrafeLeft:  rl.KeyA,
		StrafeRight: rl.KeyD,
		PitchUp:     rl.KeyUp,
		PitchDown:   rl.KeyDown,
		SpinLeft:    rl.KeyLeft,
		SpinRight:   rl.KeyRight,
		ScaleUp:     rl.KeyE,
		ScaleDown:   rl.KeyQ,
		SpeedUp:     rl.KeyLeftShift,
		SpeedDown:   rl.KeyLeftControl,
		ResetView:   rl.KeyR,
		ToggleGrid:  rl.KeyG,
		ToggleHud:   rl.KeyF3,
		Screenshot:  rl.KeyF12,
	}
}

// ApplyOverrides rebinds actions from a name→key map, e.g. from the settings
// file ("spin-left": "j"). Unknown action or key names are an error; nothing
// is applied unless the whole map is valid, so a bad config leaves the
// defaults intact.
func (b Bindings) ApplyOverrides(overrides map[string]string) error {
	resolved := make(map[Action]int32, len(overrides))
	for actionName, keyName := range overrides {
		action, ok := actionNames[actionName]
		if !ok {
			return fmt.Errorf("unknown action %q in key bindings", actionName)
		}
		key, ok := keyNames[keyName]
		if !ok {
			return fmt.Errorf("unknown key %q for action %q", keyName, actionName)
		}
		resolved[action] = key
	}
	for action, key := range resolved {
		b[action] = key
	}
	return nil
}

// Keys returns the distinct bound key codes in ascending order. The input
// pump polls exactly this set every frame.
func (b Bindings) Keys() []int32 {
	seen := make(map[int32]bool, len(b))
	keys := make([]int32, 0, len(b))
	for _, k := range b {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
