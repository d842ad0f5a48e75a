//go:build !js

package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-vis/common"
	"github.com/Carmen-Shannon/oxy-vis/engine/input"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	window  *glfw.Window
	running bool
}

// newPlatformWindow creates the GLFW window with input callbacks and stores it as the internal window.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	// GLFW must be driven from the main thread
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, sizeLimit(w.maxWidth), sizeLimit(w.maxHeight))

	gw := &glfwWindow{
		window:  win,
		running: true,
	}
	w.internalWindow = gw
	in := w.input

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		// mods lags behind when the key itself is a modifier, so read the key states
		in.SetModifiers(
			held(win, glfw.KeyLeftControl, glfw.KeyRightControl),
			held(win, glfw.KeyLeftShift, glfw.KeyRightShift),
			held(win, glfw.KeyLeftAlt, glfw.KeyRightAlt),
		)
		if w.escapeCloses && key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		switch action {
		case glfw.Press:
			in.SetKey(keyFor(key), true)
		case glfw.Release:
			in.SetKey(keyFor(key), false)
		}
	})

	// GLFW reports positive y offsets for scrolling up, which zooms in
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		in.AddScroll(float32(yoff))
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		setModifiers(in, mods)
		if b, ok := buttonFor(button); ok {
			in.SetButton(b, action != glfw.Release)
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		in.SetPointer(float32(xpos), float32(ypos))
	})

	// The framebuffer size is what the surface needs; on high-DPI displays it differs
	// from the window size.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resized(width, height)
	})

	w.width, w.height = win.GetFramebufferSize()
	x, y := win.GetCursorPos()
	in.SetPointer(float32(x), float32(y))
	return nil
}

func sizeLimit(v int) int {
	if v <= 0 {
		return glfw.DontCare
	}
	return v
}

// buttonFor maps a GLFW mouse button to an input button.
func buttonFor(b glfw.MouseButton) (input.Button, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return input.ButtonLeft, true
	case glfw.MouseButtonMiddle:
		return input.ButtonMiddle, true
	case glfw.MouseButtonRight:
		return input.ButtonRight, true
	default:
		return 0, false
	}
}

// keyFor maps a GLFW key to a common.Key. The key codes are shared, except for
// GLFW's negative unknown key.
func keyFor(k glfw.Key) common.Key {
	if k < 0 {
		return common.KeyUnknown
	}
	return common.Key(k)
}

func held(win *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if win.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func setModifiers(in *input.State, mods glfw.ModifierKey) {
	in.SetModifiers(mods&glfw.ModControl != 0, mods&glfw.ModShift != 0, mods&glfw.ModAlt != 0)
}

// platformGetSurfaceDescriptor creates a platform-appropriate wgpu.SurfaceDescriptor from the GLFW window.
// Uses the wgpuglfw bridge package which has per-platform implementations (Windows, X11, Wayland, macOS).
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	if w.internalWindow == nil {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(w.internalWindow.window)
}

// platformIsRunningCheck returns false if the internal window is nil, the running flag
// is cleared, or GLFW reports ShouldClose.
func platformIsRunningCheck(w *engineWindow) bool {
	gw := w.internalWindow
	if gw == nil {
		return false
	}
	return gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
func platformCloseWindow(w *engineWindow) error {
	gw := w.internalWindow
	if gw == nil {
		return ErrWindowNotInitialized
	}
	gw.running = false
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

// platformPollEvents polls GLFW for pending events without blocking. Callbacks run
// on this goroutine, inside the call.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformPollEvents(w *engineWindow) {
	if w.internalWindow == nil {
		return
	}
	glfw.PollEvents()
}
