package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-planet/engine/camera"
	"github.com/Carmen-Shannon/oxy-planet/engine/loader"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer"
	"github.com/Carmen-Shannon/oxy-planet/engine/scheduler"
	"github.com/Carmen-Shannon/oxy-planet/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, logs tick and draw rates once per second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets how many loop iterations run per second while the view is active.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithIdleTimeout sets the longest the loop blocks waiting for input while nothing needs drawing.
//
// Parameters:
//   - d: maximum wait (default 1s); non-positive values keep the default
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithIdleTimeout(d time.Duration) EngineBuilderOption {
	return func(e *engine) {
		if d > 0 {
			e.idleTimeout = d
		}
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally. The caller keeps ownership and closes it.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithWindowOptions configures the window the engine creates when none is supplied.
func WithWindowOptions(options ...window.WindowBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.windowOptions = append(e.windowOptions, options...)
	}
}

// WithAssets replaces the texture set loaded during setup.
//
// Parameters:
//   - assets: the assets, typically loader.DefaultAssets(dir)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithAssets(assets []loader.Asset) EngineBuilderOption {
	return func(e *engine) {
		e.assets = assets
	}
}

// WithLoader replaces the texture loader.
func WithLoader(l loader.Loader) EngineBuilderOption {
	return func(e *engine) {
		e.loader = l
	}
}

// WithShaderSource replaces the embedded WGSL shader.
func WithShaderSource(source string) EngineBuilderOption {
	return func(e *engine) {
		if source != "" {
			e.shaderSource = source
		}
	}
}

// WithRendererFactory replaces how the renderer is created for the window.
func WithRendererFactory(factory RendererFactory) EngineBuilderOption {
	return func(e *engine) {
		if factory != nil {
			e.newRenderer = factory
		}
	}
}

// WithRendererOptions passes options to the default renderer factory.
func WithRendererOptions(options ...renderer.RendererBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.rendererOptions = append(e.rendererOptions, options...)
	}
}

// WithCameraOptions configures the orbit camera created during setup.
func WithCameraOptions(options ...camera.CameraControllerOption) EngineBuilderOption {
	return func(e *engine) {
		e.cameraOptions = append(e.cameraOptions, options...)
	}
}

// WithSchedulerOptions configures the render scheduler created during setup.
func WithSchedulerOptions(options ...scheduler.SchedulerBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.schedulerOptions = append(e.schedulerOptions, options...)
	}
}
