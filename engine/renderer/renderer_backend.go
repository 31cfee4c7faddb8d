package renderer

import "github.com/Carmen-Shannon/oxy-planet/common"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting. This is the default:
	// the scheduler already throttles drawn frames.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	PresentModeUncapped
)

// RendererBackend is the GPU API boundary used by the Renderer.
// Calls happen on the loop goroutine in the order Configure, Create*, Init*, then per frame
// WriteFrameUniform, BeginFrame, DrawQuad, EndFrame, Present.
type RendererBackend interface {
	// ConfigureSurface (re)configures the swapchain for the given size.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	ConfigureSurface(width, height int)

	SetPresentMode(mode PresentMode)

	// CreatePlanetPipeline compiles the WGSL source and creates the render pipeline together
	// with its bind group layout and the uniform and vertex buffers.
	//
	// Parameters:
	//   - shaderSource: WGSL source with vs_main and fs_main entry points
	//   - vertexData: the full-screen quad vertices
	//
	// Returns:
	//   - error: error if the shader module or pipeline cannot be created
	CreatePlanetPipeline(shaderSource string, vertexData []byte) error

	// InitTexture uploads RGBA8 pixels for a slot.
	InitTexture(slot Slot, data common.TextureStagingData) error

	// InitSampler creates the sampler shared by all planet textures.
	InitSampler(data common.SamplerStagingData) error

	// InitBindGroup binds the uniform buffer, sampler and every slot texture.
	// All textures and the sampler must be initialized first.
	InitBindGroup() error

	WriteFrameUniform(data []byte)

	// BeginFrame acquires the swapchain texture and begins the render pass.
	//
	// Returns:
	//   - error: error if the swapchain texture could not be acquired
	BeginFrame() error

	// DrawQuad encodes the full-screen draw in the current pass.
	DrawQuad()

	EndFrame()
	Present()
	Release()
}
