package renderer

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-planet/common"
)

// ErrNotInitialized is returned when the renderer is used before Init succeeded.
var ErrNotInitialized = errors.New("renderer: not initialized")

// Surface is the window side the renderer presents into.
type Surface interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	uniform     GPUFrameUniform
	sampler     common.SamplerStagingData
	initialized bool
	frames      uint64
	dropped     uint64

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	fov                  float64
}

// Renderer draws the planet view. It is the GPU frontend driven by the scheduler and the input
// router: uniforms are staged with UploadCamera and UploadSunDirection and pushed by DrawFrame.
type Renderer interface {
	// Init compiles the shader, builds the pipeline and uploads all textures.
	// Slots missing from textures are bound to a 1x1 black placeholder.
	//
	// Parameters:
	//   - shaderSource: WGSL source, typically PlanetShaderSource
	//   - textures: decoded RGBA8 textures keyed by slot
	//
	// Returns:
	//   - error: error if any GPU resource cannot be created
	Init(shaderSource string, textures map[Slot]common.TextureStagingData) error

	// UploadCamera stages the eye position and look-at target for the next frame.
	UploadCamera(eye, target mgl64.Vec3)

	// UploadSunDirection stages the unit sun direction for the next frame.
	UploadSunDirection(dir mgl64.Vec3)

	// DrawFrame writes the staged uniforms and draws one frame. Surface acquisition failures are
	// logged and the frame is dropped.
	DrawFrame()

	// OnResize reconfigures the surface and the resolution uniform. Non-positive sizes (a
	// minimized window) are ignored.
	OnResize(width, height int)

	// FramesDrawn returns the number of frames presented and dropped since creation.
	FramesDrawn() (presented, dropped uint64)

	// Release frees GPU resources. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer presenting into surface.
// The surface descriptor is platform-specific and is typically obtained from Window.SurfaceDescriptor().
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - surface: the window to present into
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the configured renderer
//   - error: error if no adapter or device could be acquired
func NewRenderer(backendType RendererBackendType, surface Surface, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		presentMode: PresentModeVSync,
		fov:         defaultFov,
	}

	for _, opt := range options {
		opt(r)
	}

	if r.backend == nil {
		switch backendType {
		case BackendTypeWGPU:
			fallthrough
		default:
			b, err := newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter)
			if err != nil {
				return nil, fmt.Errorf("failed to create wgpu backend: %w", err)
			}
			r.backend = b
		}
	}

	r.backend.SetPresentMode(r.presentMode)
	r.uniform.Fov = float32(r.fov)
	r.uniform.Resolution = [2]float32{float32(surface.Width()), float32(surface.Height())}
	r.backend.ConfigureSurface(surface.Width(), surface.Height())
	return r, nil
}

func (r *renderer) Init(shaderSource string, textures map[Slot]common.TextureStagingData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.backend.CreatePlanetPipeline(shaderSource, common.SliceToBytes(quadVertices)); err != nil {
		return fmt.Errorf("failed to create planet pipeline: %w", err)
	}

	for _, slot := range Slots {
		data, ok := textures[slot]
		if !ok || data.Empty() {
			log.Printf("renderer: no %s texture, using placeholder", slot)
			data = placeholderTexture()
		}
		if err := r.backend.InitTexture(slot, data); err != nil {
			return fmt.Errorf("failed to upload %s texture: %w", slot, err)
		}
	}

	if err := r.backend.InitSampler(r.sampler); err != nil {
		return fmt.Errorf("failed to create sampler: %w", err)
	}
	if err := r.backend.InitBindGroup(); err != nil {
		return fmt.Errorf("failed to create bind group: %w", err)
	}

	r.initialized = true
	return nil
}

func (r *renderer) UploadCamera(eye, target mgl64.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uniform.CameraPosition = toFloat32(eye)
	r.uniform.LookAt = toFloat32(target)
}

func (r *renderer) UploadSunDirection(dir mgl64.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uniform.SunDirection = toFloat32(dir)
}

func (r *renderer) DrawFrame() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		log.Printf("renderer: draw skipped: %v", ErrNotInitialized)
		return
	}

	r.backend.WriteFrameUniform(r.uniform.Marshal())
	if err := r.backend.BeginFrame(); err != nil {
		r.dropped++
		log.Printf("renderer: dropping frame: %v", err)
		return
	}
	r.backend.DrawQuad()
	r.backend.EndFrame()
	r.backend.Present()
	r.frames++
}

func (r *renderer) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uniform.Resolution = [2]float32{float32(width), float32(height)}
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) FramesDrawn() (presented, dropped uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames, r.dropped
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initialized = false
	r.backend.Release()
}

func placeholderTexture() common.TextureStagingData {
	return common.TextureStagingData{Pixels: []byte{0, 0, 0, 255}, Width: 1, Height: 1}
}
