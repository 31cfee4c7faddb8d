package renderer

import (
	"math"

	"github.com/Carmen-Shannon/oxy-planet/common"
)

const defaultFov = math.Pi / 3

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithFov sets the vertical field of view in radians written to the frame uniform.
func WithFov(fov float64) RendererBuilderOption {
	return func(r *renderer) {
		if fov > 0 && fov < math.Pi {
			r.fov = fov
		}
	}
}

// WithSampler overrides the sampler used for every planet texture. Zero fields keep the
// defaults (repeat addressing, linear filtering).
func WithSampler(data common.SamplerStagingData) RendererBuilderOption {
	return func(r *renderer) {
		r.sampler = data
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithBackend supplies a pre-built backend instead of creating one for the backend type.
func WithBackend(b RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = b
	}
}
