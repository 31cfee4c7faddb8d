package preview

import (
	"image"
	"runtime"

	"github.com/Carmen-Shannon/oxy-planet/engine/sun"
)

const (
	// DefaultWidth is the output width, two pixels per degree of longitude.
	DefaultWidth = 720
	// DefaultHeight is the output height.
	DefaultHeight = 360
	// DefaultTwilight is the half-width of the terminator blend, in units of cos(sun angle).
	// Matches the planet shader.
	DefaultTwilight = 0.15
)

// DefaultWorkers returns one worker per CPU, leaving one free for the caller.
func DefaultWorkers() int {
	return max(runtime.NumCPU()-1, 1)
}

// PreviewBuilderOption is a functional option for configuring a Preview.
type PreviewBuilderOption func(*preview)

// WithSize sets the output dimensions. Non-positive values keep the defaults.
//
// Parameters:
//   - width: output width in pixels
//   - height: output height in pixels
//
// Returns:
//   - PreviewBuilderOption: option function to apply
func WithSize(width, height int) PreviewBuilderOption {
	return func(p *preview) {
		if width > 0 {
			p.width = width
		}
		if height > 0 {
			p.height = height
		}
	}
}

// WithSunModel selects how the sun direction is computed.
func WithSunModel(m sun.Model) PreviewBuilderOption {
	return func(p *preview) {
		if m != nil {
			p.model = m
		}
	}
}

// WithDayTexture sets the lit surface texture. Without one a flat ocean color is used.
func WithDayTexture(img *image.NRGBA) PreviewBuilderOption {
	return func(p *preview) {
		p.day = img
	}
}

// WithNightTexture sets the night lights texture. Without one a flat dark color is used.
func WithNightTexture(img *image.NRGBA) PreviewBuilderOption {
	return func(p *preview) {
		p.night = img
	}
}

// WithTwilight sets the half-width of the terminator blend. Non-positive values keep the default.
func WithTwilight(width float64) PreviewBuilderOption {
	return func(p *preview) {
		if width > 0 {
			p.twilight = width
		}
	}
}

// WithWorkers sets the size of the row rendering pool.
//
// Parameters:
//   - n: worker count, clamped to at least 1
//
// Returns:
//   - PreviewBuilderOption: option function to apply
func WithWorkers(n int) PreviewBuilderOption {
	return func(p *preview) {
		p.workers = max(n, 1)
	}
}
