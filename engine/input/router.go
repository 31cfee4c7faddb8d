// Package input translates window pointer, wheel and resize events into camera motion and
// scheduler notifications.
package input

import (
	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/scheduler"
)

// Camera is the part of the orbit camera the router drives.
type Camera interface {
	ApplyDrag(dx, dy, viewportHeight float64)
	ApplyZoom(deltaY float64)
}

// Notifier is the part of the scheduler the router reports to.
type Notifier interface {
	NotifyInteraction(kind scheduler.Interaction)
	RequestWake()
}

// ResizeTarget receives viewport size changes.
type ResizeTarget interface {
	OnResize(width, height int)
}

// Router tracks primary-button drags and forwards input to the camera, the scheduler and the
// renderer. All methods must be called from the loop goroutine.
type Router struct {
	camera   Camera
	notifier Notifier
	resize   ResizeTarget

	pressed    bool
	dragging   bool
	lastX      float64
	lastY      float64
	viewWidth  int
	viewHeight int

	// pointerHeight is the viewport height in the units of PointerMove. It differs from viewHeight
	// when the cursor is reported in screen coordinates and the surface in pixels (high-DPI).
	pointerHeight int
}

// NewRouter creates a Router for a viewport of the given size.
//
// Parameters:
//   - camera: the orbit camera to move
//   - notifier: the scheduler to notify
//   - resize: the renderer receiving viewport changes (may be nil)
//   - width: initial viewport width in pixels
//   - height: initial viewport height in pixels, also used as the pointer height until PointerArea is called
//
// Returns:
//   - *Router: the router
func NewRouter(camera Camera, notifier Notifier, resize ResizeTarget, width, height int) *Router {
	return &Router{
		camera:        camera,
		notifier:      notifier,
		resize:        resize,
		viewWidth:     width,
		viewHeight:    height,
		pointerHeight: height,
	}
}

// PointerArea sets the viewport size in the coordinate space of PointerMove. Drag sensitivity is
// scaled by this height, so a drag across the full window turns the camera by the same angle at
// any display density.
func (r *Router) PointerArea(width, height int) {
	r.pointerHeight = height
}

// PointerDown begins drag tracking for the primary button. The camera does not move.
func (r *Router) PointerDown(button int) {
	if button == common.MouseButtonPrimary {
		r.pressed = true
	}
}

// PointerUp ends drag tracking for the primary button.
func (r *Router) PointerUp(button int) {
	if button != common.MouseButtonPrimary {
		return
	}
	wasDragging := r.dragging
	r.pressed = false
	r.dragging = false
	if wasDragging {
		r.notifier.NotifyInteraction(scheduler.DragEnd)
	}
}

// PointerMove rotates the camera by the pixel delta since the previous move while the primary
// button is held. The first move of a drag only anchors the position and wakes the scheduler.
//
// Parameters:
//   - x: cursor x in window pixels
//   - y: cursor y in window pixels
func (r *Router) PointerMove(x, y float64) {
	if !r.pressed {
		return
	}
	if !r.dragging {
		r.dragging = true
		r.lastX, r.lastY = x, y
		r.notifier.RequestWake()
		r.notifier.NotifyInteraction(scheduler.DragStart)
	}

	r.camera.ApplyDrag(x-r.lastX, y-r.lastY, float64(r.pointerHeight))
	r.lastX, r.lastY = x, y
	r.notifier.NotifyInteraction(scheduler.DragMove)
}

// Wheel zooms the camera. deltaY follows browser wheel units: positive zooms out and one notch is
// about common.ScrollPixelsPerLine.
func (r *Router) Wheel(deltaY float64) {
	r.camera.ApplyZoom(deltaY)
	r.notifier.NotifyInteraction(scheduler.Wheel)
}

// Scroll converts a glfw scroll offset (positive yoff scrolls up) into Wheel units.
func (r *Router) Scroll(xoff, yoff float64) {
	r.Wheel(-yoff * common.ScrollPixelsPerLine)
}

// Resize stores the new surface size in pixels and forwards it to the renderer. It does not change
// the drag scale, see PointerArea.
func (r *Router) Resize(width, height int) {
	r.viewWidth, r.viewHeight = width, height
	if r.resize != nil {
		r.resize.OnResize(width, height)
	}
	r.notifier.NotifyInteraction(scheduler.Resize)
}

// Dragging reports whether a drag is in progress.
func (r *Router) Dragging() bool {
	return r.dragging
}

// Viewport returns the last known viewport size.
func (r *Router) Viewport() (width, height int) {
	return r.viewWidth, r.viewHeight
}
