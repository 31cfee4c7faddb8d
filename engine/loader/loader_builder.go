package loader

import "log/slog"

const (
	// DefaultMaxTextureSize is the largest texture edge uploaded to the GPU (the WebGPU default
	// maxTextureDimension2D).
	DefaultMaxTextureSize = 8192

	DefaultCacheSize   = 16
	DefaultConcurrency = 4
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithMaxTextureSize bounds the longest edge of decoded textures. Larger images are downscaled
// with their aspect ratio preserved. Pass 0 to keep the source size.
//
// Parameters:
//   - size: maximum edge length in pixels
//
// Returns:
//   - LoaderBuilderOption: a function that applies the option to a loader
func WithMaxTextureSize(size int) LoaderBuilderOption {
	return func(l *loader) {
		l.maxTexture = max(size, 0)
	}
}

// WithCacheSize sets how many decoded textures are kept. Values below 1 are ignored.
func WithCacheSize(entries int) LoaderBuilderOption {
	return func(l *loader) {
		if entries > 0 {
			l.cacheSize = entries
		}
	}
}

// WithConcurrency caps the number of files LoadAll decodes at once. Values below 1 are ignored.
func WithConcurrency(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithLogger sets the structured logger used for warnings.
func WithLogger(logger *slog.Logger) LoaderBuilderOption {
	return func(l *loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}
