// Package scheduler decides, once per loop tick, whether the planet view needs a new frame.
//
// Frames are drawn on demand: a small activity budget is replenished by user interaction and spent
// one frame at a time, while an active drag keeps drawing every tick. Drawn frames are additionally
// throttled to a frame-rate cap measured from the last drawn frame.
package scheduler

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-planet/engine/sun"
)

// Interaction identifies the kind of user input reported to the scheduler.
type Interaction int

const (
	DragStart Interaction = iota
	DragMove
	DragEnd
	Wheel
	Resize
)

// String returns the interaction name.
func (i Interaction) String() string {
	switch i {
	case DragStart:
		return "drag-start"
	case DragMove:
		return "drag-move"
	case DragEnd:
		return "drag-end"
	case Wheel:
		return "wheel"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// Viewpoint supplies the camera placement for a frame.
type Viewpoint interface {
	EyePosition() mgl64.Vec3
	Target() mgl64.Vec3
}

// Frontend receives per-frame uniforms and issues the draw.
type Frontend interface {
	UploadCamera(eye, target mgl64.Vec3)
	UploadSunDirection(dir mgl64.Vec3)
	DrawFrame()
}

// Scheduler is the render-on-demand state machine driven by the engine loop.
// It is not safe for concurrent use; the loop and input callbacks share one goroutine.
type Scheduler interface {
	// Tick is called once per loop iteration with a monotonically increasing timestamp in
	// milliseconds.
	//
	// Parameters:
	//   - timestampMs: milliseconds since the loop started
	//
	// Returns:
	//   - bool: true if a frame was drawn
	Tick(timestampMs float64) bool

	// NotifyInteraction replenishes the activity budget or updates drag state for the given input.
	//
	// Parameters:
	//   - kind: the interaction that occurred
	NotifyInteraction(kind Interaction)

	// RequestWake asks the installed waker to interrupt an idle wait.
	RequestWake()

	// Idle reports whether ticks would currently be skipped regardless of the frame-rate cap.
	Idle() bool

	Budget() int
	LastFrame() float64
	DragActive() bool
	FrameRateCap() float64
}

// NewScheduler creates a Scheduler drawing view through frontend.
//
// Parameters:
//   - view: source of the camera eye and target
//   - frontend: receiver of uniforms and draw calls
//   - options: optional configuration
//
// Returns:
//   - Scheduler: the scheduler
func NewScheduler(view Viewpoint, frontend Frontend, options ...SchedulerBuilderOption) Scheduler {
	s := &schedulerImpl{
		view:         view,
		frontend:     frontend,
		frameRateCap: DefaultFrameRateCap,
		budget:       DefaultInitialBudget,
		dragBudget:   DefaultDragBudget,
		wheelBudget:  DefaultWheelBudget,
		resizeBudget: DefaultResizeBudget,
		clock:        time.Now,
		sunModel:     sun.Approximate{},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}
