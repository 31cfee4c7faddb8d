package engine

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-planet/engine/camera"
	"github.com/Carmen-Shannon/oxy-planet/engine/input"
	"github.com/Carmen-Shannon/oxy-planet/engine/loader"
	"github.com/Carmen-Shannon/oxy-planet/engine/profiler"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer"
	"github.com/Carmen-Shannon/oxy-planet/engine/scheduler"
	"github.com/Carmen-Shannon/oxy-planet/engine/window"
)

// RendererFactory creates the GPU frontend for a window.
type RendererFactory func(w window.Window) (renderer.Renderer, error)

type engine struct {
	mu     sync.Mutex
	cancel context.CancelFunc

	window        window.Window
	windowOptions []window.WindowBuilderOption
	ownsWindow    bool

	loader       loader.Loader
	assets       []loader.Asset
	shaderSource string

	newRenderer     RendererFactory
	rendererOptions []renderer.RendererBuilderOption
	renderer        renderer.Renderer

	cameraOptions    []camera.CameraControllerOption
	schedulerOptions []scheduler.SchedulerBuilderOption
	camera           camera.CameraController
	scheduler        scheduler.Scheduler
	router           *input.Router

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	idleTimeout    time.Duration
}

// Engine owns the planet viewer: it loads the assets, sets up the renderer and then runs the
// single-goroutine loop that dispatches input and lets the scheduler decide when to draw.
type Engine interface {
	// Run performs setup and then runs the loop until ctx is canceled, Quit is called or the window
	// closes. It must be called from the main goroutine (GLFW requirement). If setup fails the error
	// is logged and returned and no frame is ever drawn.
	//
	// Parameters:
	//   - ctx: cancels setup and stops the loop
	//
	// Returns:
	//   - error: the setup error, or nil after a normal shutdown
	Run(ctx context.Context) error

	// Quit stops a running loop. Safe to call from any goroutine.
	Quit()

	// Window returns the window, or nil before Run created it.
	Window() window.Window

	// Camera returns the orbit camera, or nil before setup completed.
	Camera() camera.CameraController

	// Scheduler returns the render scheduler, or nil before setup completed.
	Scheduler() scheduler.Scheduler

	EnableProfiler()
	DisableProfiler()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: variadic list of EngineBuilderOption functions to configure the engine
//
// Returns:
//   - Engine: the configured engine (not yet running)
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		shaderSource:   renderer.PlanetShaderSource,
		assets:         loader.DefaultAssets("assets"),
		profiler:       profiler.NewProfiler(),
		engineTickRate: time.Second / 60,
		idleTimeout:    time.Second,
	}
	e.newRenderer = func(w window.Window) (renderer.Renderer, error) {
		options := append([]renderer.RendererBuilderOption{renderer.WithFov(e.camera.Fov())}, e.rendererOptions...)
		return renderer.NewRenderer(renderer.BackendTypeWGPU, w, options...)
	}

	for _, opt := range options {
		opt(e)
	}

	if e.loader == nil {
		e.loader = loader.NewLoader()
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.CameraController {
	return e.camera
}

func (e *engine) Scheduler() scheduler.Scheduler {
	return e.scheduler
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Quit() {
	e.mu.Lock()
	cancel := e.cancel
	e.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (e *engine) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	e.mu.Lock()
	e.cancel = cancel
	e.mu.Unlock()

	if err := e.setup(ctx); err != nil {
		log.Printf("engine: setup failed: %v", err)
		e.teardown()
		return err
	}
	defer e.teardown()

	// Wake an idle WaitEvents as soon as the context ends.
	stop := context.AfterFunc(ctx, e.window.PostEmptyEvent)
	defer stop()

	e.loop(ctx)
	return nil
}

// setup loads the textures, creates the renderer and wires input. Nothing here arms the loop.
func (e *engine) setup(ctx context.Context) error {
	if e.window == nil {
		w, err := window.NewWindow(e.windowOptions...)
		if err != nil {
			return err
		}
		e.window = w
		e.ownsWindow = true
	}

	textures, err := e.loader.LoadAll(ctx, e.assets)
	if err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}

	e.camera = camera.NewCameraController(e.cameraOptions...)

	r, err := e.newRenderer(e.window)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	e.renderer = r

	if err := r.Init(e.shaderSource, textures); err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}

	schedulerOptions := append([]scheduler.SchedulerBuilderOption{scheduler.WithWaker(e.window.PostEmptyEvent)}, e.schedulerOptions...)
	e.scheduler = scheduler.NewScheduler(e.camera, r, schedulerOptions...)
	e.router = input.NewRouter(e.camera, e.scheduler, r, e.window.Width(), e.window.Height())
	e.router.PointerArea(e.window.PointerArea())

	e.window.SetPointerDownCallback(e.router.PointerDown)
	e.window.SetPointerUpCallback(e.router.PointerUp)
	e.window.SetPointerMoveCallback(e.router.PointerMove)
	e.window.SetScrollCallback(e.router.Scroll)
	e.window.SetResizeCallback(e.router.Resize)
	e.window.SetPointerAreaCallback(e.router.PointerArea)

	return nil
}

func (e *engine) loop(ctx context.Context) {
	start := time.Now()
	next := start

	for e.window.IsRunning() && ctx.Err() == nil {
		if e.scheduler.Idle() {
			e.window.WaitEvents(e.idleTimeout)
		} else {
			e.window.PollEvents()
		}

		timestamp := float64(time.Since(start)) / float64(time.Millisecond)
		drawn := e.scheduler.Tick(timestamp)

		if e.profilingEnabled && e.profiler != nil {
			e.profiler.Tick(drawn)
		}

		next = next.Add(e.engineTickRate)
		if remaining := time.Until(next); remaining > 0 {
			time.Sleep(remaining)
		} else {
			// fell behind (or just woke from an idle wait); restart the cadence
			next = time.Now()
		}
	}
}

func (e *engine) teardown() {
	if e.renderer != nil {
		e.renderer.Release()
		e.renderer = nil
	}
	if e.ownsWindow && e.window != nil {
		if err := e.window.Close(); err != nil {
			log.Printf("engine: close window: %v", err)
		}
	}
}
