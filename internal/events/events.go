package events

// Type identifies a notification emitted by the viewer core. The GUI glue
// (menus, status bar) subscribes to these instead of polling viewer state.
type Type int

const (
	// BeginModelLoad fires before a model file is parsed; loading is
	// synchronous and may take a while for large files.
	BeginModelLoad Type = iota
	// EndModelLoad fires after a load attempt, successful or not.
	EndModelLoad
	// ModelUnloaded fires when the current model is discarded.
	ModelUnloaded
	// Initialized fires once the render resources exist.
	Initialized
	// ShaderLinkError fires when a shader fails to compile or link; the
	// previous program stays active.
	ShaderLinkError
	// ErrorCleared fires when a later shader load succeeds.
	ErrorCleared
)

// String returns the event type name as used in logs.
func (t Type) String() string {
	switch t {
	case BeginModelLoad:
		return "begin-model-load"
	case EndModelLoad:
		return "end-model-load"
	case ModelUnloaded:
		return "model-unloaded"
	case Initialized:
		return "initialized"
	case ShaderLinkError:
		return "shader-link-error"
	case ErrorCleared:
		return "error-cleared"
	}
	return "unknown"
}

// Event is one notification with its payload. Fields are filled per type:
// Path for model/shader loads, OK for EndModelLoad, Message for errors.
type Event struct {
	Type    Type
	Path    string
	OK      bool
	Message string
}

// Bus fans events out to subscribers synchronously, on the caller's
// goroutine. The viewer runs single-threaded, so subscribers may touch
// viewer state freely.
type Bus struct {
	subs []func(Event)
}

// NewBus returns a bus with no subscribers.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for every future event. There is no unsubscribe;
// subscribers live as long as the viewer.
func (b *Bus) Subscribe(fn func(Event)) {
	b.subs = append(b.subs, fn)
}

// Publish delivers ev to all subscribers in registration order.
func (b *Bus) Publish(ev Event) {
	for _, fn := range b.subs {
		fn(ev)
	}
}
