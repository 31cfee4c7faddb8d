package scheduler

import "time"

// SchedulerBuilderOption is a functional option for configuring a Scheduler.
type SchedulerBuilderOption func(*schedulerImpl)

// WithFrameRateCap sets the maximum drawn frames per second. Pass 0 to uncap.
// Negative values are treated as 0.
//
// Parameters:
//   - fps: maximum frames per second (default 48)
//
// Returns:
//   - SchedulerBuilderOption: option function to apply
func WithFrameRateCap(fps float64) SchedulerBuilderOption {
	return func(s *schedulerImpl) {
		s.frameRateCap = max(fps, 0)
	}
}

// WithInitialBudget sets the number of frames drawn after startup before the scheduler goes idle.
//
// Parameters:
//   - frames: initial activity budget (default 10)
//
// Returns:
//   - SchedulerBuilderOption: option function to apply
func WithInitialBudget(frames int) SchedulerBuilderOption {
	return func(s *schedulerImpl) {
		s.budget = max(frames, 0)
	}
}

// WithDragBudget sets the budget assigned on drag start and on every drag move.
func WithDragBudget(frames int) SchedulerBuilderOption {
	return func(s *schedulerImpl) {
		s.dragBudget = max(frames, 1)
	}
}

// WithWheelBudget sets the budget assigned on a wheel event.
func WithWheelBudget(frames int) SchedulerBuilderOption {
	return func(s *schedulerImpl) {
		s.wheelBudget = max(frames, 1)
	}
}

// WithResizeBudget sets the minimum budget guaranteed after a viewport resize.
func WithResizeBudget(frames int) SchedulerBuilderOption {
	return func(s *schedulerImpl) {
		s.resizeBudget = max(frames, 1)
	}
}

// WithClock replaces the wall clock used for the sun direction.
//
// Parameters:
//   - clock: function returning the current instant
//
// Returns:
//   - SchedulerBuilderOption: option function to apply
func WithClock(clock func() time.Time) SchedulerBuilderOption {
	return func(s *schedulerImpl) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithSunModel replaces the sun direction model.
//
// Parameters:
//   - model: the model, typically obtained from sun.ParseModel
//
// Returns:
//   - SchedulerBuilderOption: option function to apply
func WithSunModel(model SunModel) SchedulerBuilderOption {
	return func(s *schedulerImpl) {
		if model != nil {
			s.sunModel = model
		}
	}
}

// WithWaker installs the function RequestWake calls, typically one that posts an empty window event.
func WithWaker(waker func()) SchedulerBuilderOption {
	return func(s *schedulerImpl) {
		s.waker = waker
	}
}
