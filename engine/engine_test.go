package engine

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/camera"
	"github.com/Carmen-Shannon/oxy-planet/engine/loader"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer"
	"github.com/Carmen-Shannon/oxy-planet/engine/scheduler"
	"github.com/Carmen-Shannon/oxy-planet/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeWindow struct {
	running bool
	closed  bool
	polls   int
	waits   int
	wakes   atomic.Int32

	// onWait and onPoll run inside WaitEvents and PollEvents, the way GLFW dispatches callbacks.
	onWait func(w *fakeWindow)
	onPoll func(w *fakeWindow)

	// pointer is the window size in cursor coordinates; zero means the framebuffer size
	pointer [2]int

	resize      func(width, height int)
	pointerArea func(width, height int)
	scroll      func(xoff, yoff float64)
	down        func(button int)
	up          func(button int)
	move        func(x, y float64)
}

var _ window.Window = &fakeWindow{}

func (w *fakeWindow) SetResizeCallback(cb func(width, height int))      { w.resize = cb }
func (w *fakeWindow) SetScrollCallback(cb func(xoff, yoff float64))     { w.scroll = cb }
func (w *fakeWindow) SetPointerDownCallback(cb func(button int))        { w.down = cb }
func (w *fakeWindow) SetPointerUpCallback(cb func(button int))          { w.up = cb }
func (w *fakeWindow) SetPointerMoveCallback(cb func(x, y float64))      { w.move = cb }
func (w *fakeWindow) SetPointerAreaCallback(cb func(width, height int)) { w.pointerArea = cb }
func (w *fakeWindow) PointerArea() (int, int) {
	if w.pointer == [2]int{} {
		return w.Width(), w.Height()
	}
	return w.pointer[0], w.pointer[1]
}
func (w *fakeWindow) SetKeyDownCallback(func(key int))           {}
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *fakeWindow) IsRunning() bool                            { return w.running }
func (w *fakeWindow) Close() error                               { w.closed = true; return nil }
func (w *fakeWindow) PostEmptyEvent()                            { w.wakes.Add(1) }
func (w *fakeWindow) Width() int                                 { return 800 }
func (w *fakeWindow) Height() int                                { return 600 }
func (w *fakeWindow) PollEvents() {
	w.polls++
	if w.onPoll != nil {
		w.onPoll(w)
	}
}
func (w *fakeWindow) WaitEvents(time.Duration) {
	w.waits++
	if w.onWait != nil {
		w.onWait(w)
	}
}

type fakeRenderer struct {
	initErr  error
	inits    int
	draws    int
	released bool
	lastEye  mgl64.Vec3
	resized  [2]int
}

func (r *fakeRenderer) Init(string, map[renderer.Slot]common.TextureStagingData) error {
	r.inits++
	return r.initErr
}
func (r *fakeRenderer) UploadCamera(eye, _ mgl64.Vec3) { r.lastEye = eye }
func (r *fakeRenderer) UploadSunDirection(mgl64.Vec3)  {}
func (r *fakeRenderer) DrawFrame()                     { r.draws++ }
func (r *fakeRenderer) OnResize(width, height int)     { r.resized = [2]int{width, height} }
func (r *fakeRenderer) FramesDrawn() (uint64, uint64)  { return uint64(r.draws), 0 }
func (r *fakeRenderer) Release()                       { r.released = true }

type fakeLoader struct {
	err error
}

func (l *fakeLoader) Load(string) (common.TextureStagingData, error) {
	return common.TextureStagingData{}, l.err
}

func (l *fakeLoader) LoadAll(ctx context.Context, _ []loader.Asset) (map[renderer.Slot]common.TextureStagingData, error) {
	if l.err != nil {
		return nil, l.err
	}
	return map[renderer.Slot]common.TextureStagingData{}, nil
}

func newTestEngine(w *fakeWindow, r *fakeRenderer, l loader.Loader, extra ...EngineBuilderOption) Engine {
	options := []EngineBuilderOption{
		WithWindow(w),
		WithLoader(l),
		WithTickRate(10000),
		WithRendererFactory(func(window.Window) (renderer.Renderer, error) { return r, nil }),
		WithSchedulerOptions(scheduler.WithFrameRateCap(0)),
	}
	return NewEngine(append(options, extra...)...)
}

func TestRunDrawsInitialBudgetThenIdles(t *testing.T) {
	w := &fakeWindow{running: true}
	w.onWait = func(w *fakeWindow) {
		switch w.waits {
		case 1:
			w.scroll(0, 1)
		case 2:
			w.running = false
		}
	}
	r := &fakeRenderer{}
	e := newTestEngine(w, r, &fakeLoader{})

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	// 10 settle frames after startup, then the wheel buys 2 more.
	if r.draws != 12 {
		t.Errorf("expected 12 draws, got %d", r.draws)
	}
	if w.waits != 2 {
		t.Errorf("expected 2 idle waits, got %d", w.waits)
	}
	if r.inits != 1 || !r.released {
		t.Errorf("expected one Init and a Release, got inits=%d released=%v", r.inits, r.released)
	}
	if w.closed {
		t.Error("engine closed a window it does not own")
	}

	want := camera.NewCameraController().State().Distance * 0.9
	if got := e.Camera().State().Distance; math.Abs(got-want) > 1e-9 {
		t.Errorf("expected distance %v after scrolling in, got %v", want, got)
	}
	if !r.lastEye.ApproxEqual(e.Camera().EyePosition()) {
		t.Errorf("last uploaded eye %v does not match camera %v", r.lastEye, e.Camera().EyePosition())
	}
}

func TestRunDragDrawsEveryTick(t *testing.T) {
	w := &fakeWindow{running: true}
	w.onWait = func(w *fakeWindow) {
		if w.waits == 1 {
			w.down(common.MouseButtonPrimary)
			w.move(100, 100)
			return
		}
		w.running = false
	}
	w.onPoll = func(w *fakeWindow) {
		if w.polls < 5 {
			w.move(100+float64(w.polls)*10, 100)
			return
		}
		w.up(common.MouseButtonPrimary)
	}
	r := &fakeRenderer{}
	e := newTestEngine(w, r, &fakeLoader{}, WithSchedulerOptions(scheduler.WithInitialBudget(0)))

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	// one frame for the drag start, four while moving, one left over after the release
	if r.draws != 6 {
		t.Errorf("expected 6 draws, got %d", r.draws)
	}
	if w.polls != 5 || w.waits != 2 {
		t.Errorf("expected 5 polls and 2 waits, got %d and %d", w.polls, w.waits)
	}
	if e.Scheduler().DragActive() || e.Scheduler().Budget() != 0 {
		t.Errorf("expected a settled scheduler, got drag=%v budget=%d", e.Scheduler().DragActive(), e.Scheduler().Budget())
	}
	if az := e.Camera().State().Azimuth; az == camera.NewCameraController().State().Azimuth {
		t.Error("expected the drag to rotate the camera")
	}
}

func TestRunResizeReachesRenderer(t *testing.T) {
	w := &fakeWindow{running: true}
	w.onWait = func(w *fakeWindow) {
		if w.waits == 1 {
			w.resize(1024, 768)
			return
		}
		w.running = false
	}
	r := &fakeRenderer{}
	e := newTestEngine(w, r, &fakeLoader{}, WithSchedulerOptions(scheduler.WithInitialBudget(0)))

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if r.resized != [2]int{1024, 768} {
		t.Errorf("expected renderer resize to 1024x768, got %v", r.resized)
	}
	if r.draws != 1 {
		t.Errorf("expected one frame after the resize, got %d", r.draws)
	}
}

func TestRunSetupFailureNeverDraws(t *testing.T) {
	loadErr := errors.New("missing day texture")
	initErr := errors.New("no adapter")

	tests := []struct {
		name    string
		loader  *fakeLoader
		r       *fakeRenderer
		factory func(window.Window) (renderer.Renderer, error)
		wantErr error
	}{
		{name: "loader", loader: &fakeLoader{err: loadErr}, r: &fakeRenderer{}, wantErr: loadErr},
		{name: "init", loader: &fakeLoader{}, r: &fakeRenderer{initErr: initErr}, wantErr: initErr},
		{
			name:    "factory",
			loader:  &fakeLoader{},
			r:       &fakeRenderer{},
			factory: func(window.Window) (renderer.Renderer, error) { return nil, initErr },
			wantErr: initErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWindow{running: true}
			var extra []EngineBuilderOption
			if tt.factory != nil {
				extra = append(extra, WithRendererFactory(tt.factory))
			}
			e := newTestEngine(w, tt.r, tt.loader, extra...)

			err := e.Run(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.r.draws != 0 || w.polls != 0 || w.waits != 0 {
				t.Errorf("loop ran after failed setup: draws=%d polls=%d waits=%d", tt.r.draws, w.polls, w.waits)
			}
			if e.Scheduler() != nil {
				t.Error("scheduler created after failed setup")
			}
		})
	}
}

func TestQuitStopsLoop(t *testing.T) {
	w := &fakeWindow{running: true}
	r := &fakeRenderer{}
	var e Engine
	w.onWait = func(*fakeWindow) { e.Quit() }
	e = newTestEngine(w, r, &fakeLoader{}, WithSchedulerOptions(scheduler.WithInitialBudget(0)))

	done := make(chan error, 1)
	go func() { done <- e.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
	if w.waits != 1 {
		t.Errorf("expected a single wait, got %d", w.waits)
	}
	if !r.released {
		t.Error("renderer not released")
	}
}

func TestCanceledContextNeverDraws(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &fakeWindow{running: true}
	r := &fakeRenderer{}
	e := newTestEngine(w, r, &fakeLoader{})

	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if r.draws != 0 || w.polls != 0 || w.waits != 0 {
		t.Errorf("loop ran with a canceled context: draws=%d polls=%d waits=%d", r.draws, w.polls, w.waits)
	}
}

func TestOptionNormalization(t *testing.T) {
	e := NewEngine(WithTickRate(0), WithIdleTimeout(-time.Second), WithShaderSource("")).(*engine)
	if e.engineTickRate != time.Second/60 {
		t.Errorf("expected default tick rate, got %v", e.engineTickRate)
	}
	if e.idleTimeout != time.Second {
		t.Errorf("expected default idle timeout, got %v", e.idleTimeout)
	}
	if e.shaderSource != renderer.PlanetShaderSource {
		t.Error("expected the embedded shader to be kept")
	}
	if e.loader == nil || e.newRenderer == nil {
		t.Error("expected default loader and renderer factory")
	}

	e.EnableProfiler()
	if !e.profilingEnabled {
		t.Error("EnableProfiler had no effect")
	}
	e.DisableProfiler()
	if e.profilingEnabled {
		t.Error("DisableProfiler had no effect")
	}
}

func TestRunDragUsesPointerArea(t *testing.T) {
	drag := func(pointer [2]int, resizeTo [2]int) float64 {
		w := &fakeWindow{running: true, pointer: pointer}
		w.onWait = func(w *fakeWindow) {
			if w.waits == 1 {
				if resizeTo != [2]int{} {
					w.pointerArea(resizeTo[0], resizeTo[1])
				}
				w.down(common.MouseButtonPrimary)
				w.move(0, 0)
				w.move(60, 0)
				w.up(common.MouseButtonPrimary)
				return
			}
			w.running = false
		}
		e := newTestEngine(w, &fakeRenderer{}, &fakeLoader{}, WithSchedulerOptions(scheduler.WithInitialBudget(0)))
		if err := e.Run(context.Background()); err != nil {
			t.Fatalf("Run returned %v", err)
		}
		return e.Camera().State().Azimuth
	}

	// framebuffer is 800x600 in every case
	want := camera.NewCameraController()
	want.ApplyDrag(60, 0, 300)

	if got := drag([2]int{400, 300}, [2]int{}); math.Abs(got-want.Azimuth()) > 1e-12 {
		t.Errorf("initial pointer area: azimuth %v, want %v", got, want.Azimuth())
	}
	if got := drag([2]int{}, [2]int{400, 300}); math.Abs(got-want.Azimuth()) > 1e-12 {
		t.Errorf("resized pointer area: azimuth %v, want %v", got, want.Azimuth())
	}
}
