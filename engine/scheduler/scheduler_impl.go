package scheduler

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultFrameRateCap is the maximum drawn frames per second.
	DefaultFrameRateCap = 48.0

	// DefaultInitialBudget lets the first frames settle after setup.
	DefaultInitialBudget = 10

	DefaultDragBudget   = 2
	DefaultWheelBudget  = 2
	DefaultResizeBudget = 1
)

// SunModel computes the sun direction for an instant. sun.Model satisfies it.
type SunModel interface {
	Direction(t time.Time) mgl64.Vec3
}

type schedulerImpl struct {
	view     Viewpoint
	frontend Frontend
	sunModel SunModel
	clock    func() time.Time
	waker    func()

	frameRateCap float64
	lastFrame    float64
	budget       int
	dragActive   bool

	dragBudget   int
	wheelBudget  int
	resizeBudget int
}

var _ Scheduler = &schedulerImpl{}

func (s *schedulerImpl) Tick(timestampMs float64) bool {
	if s.frameRateCap > 0 && timestampMs-s.lastFrame < 1000.0/s.frameRateCap {
		return false
	}
	if s.budget == 0 && !s.dragActive {
		return false
	}

	if s.budget > 0 {
		s.budget--
	}

	s.frontend.UploadCamera(s.view.EyePosition(), s.view.Target())
	s.frontend.UploadSunDirection(s.sunModel.Direction(s.clock()))
	s.frontend.DrawFrame()

	s.lastFrame = timestampMs
	return true
}

func (s *schedulerImpl) NotifyInteraction(kind Interaction) {
	switch kind {
	case DragStart:
		s.dragActive = true
		s.budget = s.dragBudget
	case DragMove:
		s.budget = s.dragBudget
	case DragEnd:
		// whatever budget remains becomes settle frames
		s.dragActive = false
	case Wheel:
		s.budget = s.wheelBudget
	case Resize:
		s.budget = max(s.budget, s.resizeBudget)
	}
}

func (s *schedulerImpl) RequestWake() {
	if s.waker != nil {
		s.waker()
	}
}

func (s *schedulerImpl) Idle() bool {
	return s.budget == 0 && !s.dragActive
}

func (s *schedulerImpl) Budget() int {
	return s.budget
}

func (s *schedulerImpl) LastFrame() float64 {
	return s.lastFrame
}

func (s *schedulerImpl) DragActive() bool {
	return s.dragActive
}

func (s *schedulerImpl) FrameRateCap() float64 {
	return s.frameRateCap
}
