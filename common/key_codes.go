package common

// Mouse button codes for cross-platform input handling.
// These values match GLFW mouse button codes, which also line up with the DOM MouseEvent.button
// numbering for the primary and secondary buttons.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
const (
	MouseButtonPrimary   = 0 // Left button
	MouseButtonSecondary = 1 // Right button
	MouseButtonMiddle    = 2 // Middle button / wheel click
)

// ScrollPixelsPerLine converts a GLFW scroll offset (lines, positive = up) into the
// browser-style wheel delta the orbit camera expects (pixels, positive = down / zoom out).
const ScrollPixelsPerLine = 100.0

// KeyEsc is the GLFW escape key code; the window closes when it is pressed.
const KeyEsc = 256
