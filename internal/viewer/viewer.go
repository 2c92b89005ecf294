package viewer

import (
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"modelviewer/internal/camera"
	"modelviewer/internal/events"
	"modelviewer/internal/input"
	"modelviewer/internal/logger"
	"modelviewer/internal/model"
	"modelviewer/internal/prefs"
	"modelviewer/internal/render"
	"modelviewer/internal/screenshot"
	"modelviewer/internal/settings"
	"modelviewer/internal/transform"
	"modelviewer/internal/watch"
)

// primitivePrefix marks model paths that name a generated primitive instead
// of a file, e.g. "primitive:cube". Used so the last-model preference can
// restore either kind.
const primitivePrefix = "primitive:"

// Viewer owns the interactive core: transform state, input sampler, camera
// controller, the loaded model and the render resources. The GUI layer talks
// to it through the verb methods (LoadModel, ResetView, ...) and listens on
// the event bus. Everything runs on the UI thread.
type Viewer struct {
	cfg settings.Settings
	pf  prefs.Prefs
	log *logger.Logger
	bus *events.Bus

	state    *transform.State
	sampler  *input.Sampler
	bindings input.Bindings
	keys     []int32
	ctrl     *camera.Controller

	renderer *render.Renderer
	mdl      *model.Model
	watcher  *watch.Watcher

	startModel  string
	initialized bool
	focused     bool
}

// New builds a viewer from loaded settings and preferences. Render resources
// are created lazily on the first frame, after the window exists. Binding
// overrides that fail to resolve are logged and the defaults kept.
func New(cfg settings.Settings, pf prefs.Prefs, log *logger.Logger, bus *events.Bus) *Viewer {
	bindings := input.DefaultBindings()
	if err := bindings.ApplyOverrides(cfg.Bindings); err != nil {
		log.Logf("key bindings: %v (using defaults)", err)
	}

	state := transform.New()
	sampler := input.NewSampler()
	return &Viewer{
		cfg:      cfg,
		pf:       pf,
		log:      log,
		bus:      bus,
		state:    state,
		sampler:  sampler,
		bindings: bindings,
		keys:     bindings.Keys(),
		ctrl:     camera.NewController(state, sampler, bindings, cfg),
		focused:  true,
	}
}

// SetStartModel requests a model (file path or "primitive:name") to be
// loaded once render resources are up.
func (v *Viewer) SetStartModel(path string) {
	v.startModel = path
}

// Update runs once per frame before drawing: initialize lazily, sample
// input, advance the camera by the elapsed frame time, and pick up shader
// files changed on disk.
func (v *Viewer) Update() {
	v.ensureInitialized()
	v.pumpInput()

	v.ctrl.SetViewportHeight(float32(rl.GetScreenHeight()))
	dt := rl.GetFrameTime()
	v.ctrl.Advance(dt)
	if v.renderer != nil {
		v.renderer.Hud.AddFrame(dt)
	}

	v.drainShaderChanges()
}

// Draw renders the current frame. If the render resources failed to build,
// the frame stays inert (the outer loop still clears the screen).
func (v *Viewer) Draw() {
	if v.renderer == nil {
		return
	}
	v.renderer.Draw(v.state, v.mdl, v.cfg, v.pf.GridVisible)
}

// LoadModel loads a model file, emitting begin/end events around the
// synchronous parse. On failure the previous model stays active. The view is
// reset and refitted after every attempt.
func (v *Viewer) LoadModel(path string) bool {
	if !v.initialized {
		v.startModel = path
		return false
	}
	v.bus.Publish(events.Event{Type: events.BeginModelLoad, Path: path})
	m, err := model.Load(path)
	v.bus.Publish(events.Event{Type: events.EndModelLoad, Path: path, OK: err == nil})
	if err != nil {
		v.log.Logf("%v", err)
		v.ResetView()
		return false
	}
	v.swapModel(m)
	return true
}

// LoadPrimitive loads a generated primitive by name (cube, sphere, ...).
func (v *Viewer) LoadPrimitive(name string) bool {
	if !v.initialized {
		v.startModel = primitivePrefix + name
		return false
	}
	path := primitivePrefix + name
	v.bus.Publish(events.Event{Type: events.BeginModelLoad, Path: path})
	m, err := model.Primitive(name)
	v.bus.Publish(events.Event{Type: events.EndModelLoad, Path: path, OK: err == nil})
	if err != nil {
		v.log.Logf("%v", err)
		return false
	}
	v.swapModel(m)
	return true
}

// UnloadModel discards the current model, leaving an empty scene.
func (v *Viewer) UnloadModel() {
	if v.mdl == nil {
		return
	}
	v.mdl.Unload()
	v.mdl = nil
	v.bus.Publish(events.Event{Type: events.ModelUnloaded})
	v.ResetView()
}

// ResetView restores the default pose and, when a model is loaded, refits it
// to the current viewport.
func (v *Viewer) ResetView() {
	v.state.Reset()
	if v.mdl.Valid() {
		scale := camera.FitScale(
			v.mdl.BoundingMin, v.mdl.BoundingMax,
			float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()),
			v.cfg.FieldOfView)
		v.state.SetScale(scale)
	}
}

// Model returns the loaded model, or nil.
func (v *Viewer) Model() *model.Model {
	return v.mdl
}

// LoadVertexShader replaces the vertex stage from a file. On failure the
// previous program stays active and a shader-link-error event fires.
func (v *Viewer) LoadVertexShader(path string) bool {
	if v.renderer == nil {
		return false
	}
	return v.shaderResult(path, v.renderer.Program.LoadVertex(path))
}

// LoadFragmentShader replaces the fragment stage from a file.
func (v *Viewer) LoadFragmentShader(path string) bool {
	if v.renderer == nil {
		return false
	}
	return v.shaderResult(path, v.renderer.Program.LoadFragment(path))
}

// ReloadShaders recompiles the current stage pair from disk.
func (v *Viewer) ReloadShaders() bool {
	if v.renderer == nil {
		return false
	}
	return v.shaderResult("", v.renderer.Program.Reload())
}

// Lighting returns the current shading parameters.
func (v *Viewer) Lighting() render.Lighting {
	if v.renderer == nil {
		return render.DefaultLighting()
	}
	return v.renderer.Lighting
}

// SetLighting replaces the shading parameters; they are uploaded on the next
// frame.
func (v *Viewer) SetLighting(l render.Lighting) {
	if v.renderer != nil {
		v.renderer.Lighting = l
	}
}

// Screenshot writes the previous frame to a timestamped WebP under the
// screenshots directory.
func (v *Viewer) Screenshot() {
	path := screenshot.DefaultPath(time.Now())
	if err := screenshot.Capture(path); err != nil {
		v.log.Logf("screenshot: %v", err)
		return
	}
	v.log.Logf("saved %s", path)
}

// Close persists preferences and releases resources. Call after the window
// loop exits.
func (v *Viewer) Close() {
	if v.watcher != nil {
		_ = v.watcher.Close()
	}
	if v.mdl.Valid() {
		v.pf.LastModel = v.mdl.Path
	} else {
		v.pf.LastModel = ""
	}
	if err := prefs.Save(v.pf); err != nil {
		v.log.Logf("save prefs: %v", err)
	}
	if v.mdl != nil {
		v.mdl.Unload()
		v.mdl = nil
	}
	if v.renderer != nil {
		v.renderer.Unload()
	}
}

// ensureInitialized builds the GPU-side resources on the first frame, after
// the window and GL context exist, then loads the requested start model.
func (v *Viewer) ensureInitialized() {
	if v.initialized {
		return
	}
	v.initialized = true

	r, err := render.NewRenderer()
	if err != nil {
		// Fatal to rendering but not to the process: frames stay inert.
		v.log.Logf("render init: %v", err)
		v.bus.Publish(events.Event{Type: events.ShaderLinkError, Message: err.Error()})
		return
	}
	v.renderer = r
	v.renderer.Hud.ShowFPS = v.pf.ShowFPS
	v.renderer.Hud.ShowBounds = v.pf.ShowBounds

	w, err := watch.New()
	if err != nil {
		v.log.Logf("shader watcher unavailable: %v", err)
	} else {
		v.watcher = w
	}

	v.bus.Publish(events.Event{Type: events.Initialized})

	if v.startModel != "" {
		v.openPath(v.startModel)
		v.startModel = ""
	}
}

// openPath dispatches a model path that may name a primitive.
func (v *Viewer) openPath(path string) {
	if name, ok := strings.CutPrefix(path, primitivePrefix); ok {
		v.LoadPrimitive(name)
		return
	}
	v.LoadModel(path)
}

func (v *Viewer) swapModel(m *model.Model) {
	if v.mdl != nil {
		v.mdl.Unload()
	}
	v.mdl = m
	e := m.Extents()
	v.log.Logf("loaded %s: %d meshes, extents %.2f x %.2f x %.2f",
		m.Path, len(m.Meshes), e.X(), e.Y(), e.Z())
	v.ResetView()
}

// shaderResult routes a shader load result into events and the log: an error
// publishes shader-link-error, success clears it and registers the stage
// files with the hot-reload watcher.
func (v *Viewer) shaderResult(path string, err error) bool {
	if err != nil {
		v.log.Logf("%v", err)
		v.bus.Publish(events.Event{Type: events.ShaderLinkError, Path: path, Message: err.Error()})
		return false
	}
	v.bus.Publish(events.Event{Type: events.ErrorCleared, Path: path})
	if v.watcher != nil {
		vert, frag := v.renderer.Program.SourcePaths()
		for _, p := range []string{vert, frag} {
			if p == "" {
				continue
			}
			if err := v.watcher.Add(p); err != nil {
				v.log.Logf("watch %s: %v", p, err)
			}
		}
	}
	return true
}

// pumpInput translates raylib's polled state into sampler events and drag
// deltas. Discrete mouse motion is applied immediately; held keys are left
// in the sampler for Advance.
func (v *Viewer) pumpInput() {
	focused := rl.IsWindowFocused()
	if v.focused && !focused {
		// Key-up events do not arrive while unfocused; drop everything so no
		// key stays stuck across a task switch.
		v.sampler.FocusLost()
	}
	v.focused = focused
	if !focused {
		return
	}

	for _, key := range v.keys {
		if rl.IsKeyPressed(key) {
			v.sampler.KeyDown(key)
		}
		if rl.IsKeyReleased(key) {
			v.sampler.KeyUp(key)
		}
	}

	pos := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		v.sampler.MouseDown(input.MousePrimary, pos.X, pos.Y)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		v.sampler.MouseUp(input.MousePrimary)
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		v.sampler.MouseDown(input.MouseSecondary, pos.X, pos.Y)
	}
	if rl.IsMouseButtonReleased(rl.MouseRightButton) {
		v.sampler.MouseUp(input.MouseSecondary)
	}

	dx, dy := v.sampler.MouseMove(pos.X, pos.Y)
	if dx != 0 || dy != 0 {
		if v.sampler.DragActive(input.MousePrimary) {
			v.ctrl.Drag(dx, dy, input.MousePrimary)
		}
		if v.sampler.DragActive(input.MouseSecondary) {
			v.ctrl.Drag(dx, dy, input.MouseSecondary)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.ctrl.Wheel(wheel)
	}

	if v.tapped(input.ResetView) {
		v.ResetView()
	}
	if v.tapped(input.ToggleGrid) {
		v.pf.GridVisible = !v.pf.GridVisible
	}
	if v.tapped(input.ToggleHud) {
		v.cycleHud()
	}
	if v.tapped(input.Screenshot) {
		v.Screenshot()
	}
}

func (v *Viewer) tapped(a input.Action) bool {
	key, ok := v.bindings[a]
	return ok && rl.IsKeyPressed(key)
}

// cycleHud steps fps-only -> fps+bounds -> nothing.
func (v *Viewer) cycleHud() {
	if v.renderer == nil {
		return
	}
	hud := &v.renderer.Hud
	switch {
	case hud.ShowFPS && !hud.ShowBounds:
		hud.ShowBounds = true
	case hud.ShowFPS && hud.ShowBounds:
		hud.ShowFPS = false
		hud.ShowBounds = false
	default:
		hud.ShowFPS = true
		hud.ShowBounds = false
	}
	v.pf.ShowFPS = hud.ShowFPS
	v.pf.ShowBounds = hud.ShowBounds
}

// drainShaderChanges reloads the program when the watcher has seen the user
// save a shader file from an external editor.
func (v *Viewer) drainShaderChanges() {
	if v.watcher == nil {
		return
	}
	changed := v.watcher.Take()
	if len(changed) == 0 {
		return
	}
	v.log.Logf("shader changed on disk: %s", strings.Join(changed, ", "))
	v.ReloadShaders()
}
