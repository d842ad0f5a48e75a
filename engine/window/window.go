//go:build !js

package window

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-vis/engine/input"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrWindowNotInitialized reports an operation on a window whose platform window was
// never created or was already closed.
var ErrWindowNotInitialized = errors.New("window: not initialized")

// Window is a desktop window. Its event callbacks write pointer, button, scroll,
// modifier and key state into an input.State; resize events are forwarded to a
// callback.
type Window interface {
	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// Input returns the state the window's events are written into.
	Input() *input.State

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// PollEvents processes pending window events without blocking.
	PollEvents()

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: ErrWindowNotInitialized if the window is not open
	Close() error

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height track the framebuffer, which differs from the window size on
	// high-DPI displays.
	width  int
	height int

	escapeCloses bool

	input *input.State

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow *glfwWindow

	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates and opens a window.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
//   - error: an error if the platform window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:        "oxy-vis",
		maxWidth:     -1,
		maxHeight:    -1,
		minWidth:     200,
		minHeight:    150,
		width:        1280,
		height:       720,
		escapeCloses: true,
	}
	for _, opt := range options {
		opt(w)
	}
	if w.input == nil {
		w.input = input.NewState()
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) Input() *input.State {
	return w.input
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) PollEvents() {
	platformPollEvents(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) resized(width, height int) {
	w.width = width
	w.height = height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}
