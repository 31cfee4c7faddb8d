package window

import (
	"fmt"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling.
// All methods must be called from the goroutine that created the window.
type Window interface {
	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse wheel and trackpad scroll events.
	//
	// Parameters:
	//   - callback: function receiving the raw scroll offsets (positive yoff = scroll up)
	SetScrollCallback(callback func(xoff, yoff float64))

	// SetPointerDownCallback sets the callback for mouse button presses.
	//
	// Parameters:
	//   - callback: function receiving the button index (common.MouseButtonPrimary, ...)
	SetPointerDownCallback(callback func(button int))

	// SetPointerUpCallback sets the callback for mouse button releases.
	SetPointerUpCallback(callback func(button int))

	// SetPointerMoveCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the cursor position in window coordinates
	SetPointerMoveCallback(callback func(x, y float64))

	// SetPointerAreaCallback sets the callback for window size changes in screen coordinates, the
	// space cursor positions are reported in. On high-DPI displays this is smaller than the
	// framebuffer size passed to the resize callback.
	//
	// Parameters:
	//   - callback: function receiving the new window width and height in screen coordinates
	SetPointerAreaCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key presses. Escape is handled by the window
	// and closes it.
	SetKeyDownCallback(callback func(key int))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the window was never initialized
	Close() error

	// PollEvents dispatches pending input events to the callbacks without blocking.
	PollEvents()

	// WaitEvents blocks until at least one event arrives or the timeout elapses, then dispatches
	// pending events to the callbacks.
	//
	// Parameters:
	//   - timeout: maximum time to block
	WaitEvents(timeout time.Duration)

	// PostEmptyEvent wakes a goroutine blocked in WaitEvents. Safe to call from any goroutine.
	PostEmptyEvent()

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int

	// PointerArea returns the window size in screen coordinates, the space of pointer positions.
	PointerArea() (width, height int)
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height track the framebuffer size, which differs from the window size on high-DPI displays.
	width  int
	height int

	// pointerWidth and pointerHeight track the window size in screen coordinates.
	pointerWidth  int
	pointerHeight int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onResize      func(width, height int)
	onScroll      func(xoff, yoff float64)
	onPointerDown func(button int)
	onPointerUp   func(button int)
	onPointerMove func(x, y float64)
	onPointerArea func(width, height int)
	onKeyDown     func(key int)
}

var _ Window = &engineWindow{}

// sizeUnlimited leaves a size limit unconstrained (glfw.DontCare).
const sizeUnlimited = -1

func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:     "Planet",
		maxWidth:  sizeUnlimited,
		maxHeight: sizeUnlimited,
		minWidth:  320,
		minHeight: 240,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	w.pointerWidth, w.pointerHeight = w.width, w.height
	return w
}

// NewWindow creates and shows a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
//   - error: error if GLFW could not be initialized or the window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(xoff, yoff float64)) {
	w.onScroll = callback
}

func (w *engineWindow) SetPointerDownCallback(callback func(button int)) {
	w.onPointerDown = callback
}

func (w *engineWindow) SetPointerUpCallback(callback func(button int)) {
	w.onPointerUp = callback
}

func (w *engineWindow) SetPointerMoveCallback(callback func(x, y float64)) {
	w.onPointerMove = callback
}

func (w *engineWindow) SetPointerAreaCallback(callback func(width, height int)) {
	w.onPointerArea = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(key int)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) PollEvents() {
	platformPollEvents()
}

func (w *engineWindow) WaitEvents(timeout time.Duration) {
	platformWaitEvents(timeout)
}

func (w *engineWindow) PostEmptyEvent() {
	platformPostEmptyEvent()
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) PointerArea() (width, height int) {
	return w.pointerWidth, w.pointerHeight
}
