//go:build !js

package backend

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Carmen-Shannon/oxy-vis/engine"
	"github.com/Carmen-Shannon/oxy-vis/engine/input"
	"github.com/Carmen-Shannon/oxy-vis/engine/renderer"
	"github.com/Carmen-Shannon/oxy-vis/engine/scene"
	"github.com/Carmen-Shannon/oxy-vis/engine/window"
)

// Desktop presents a scene in a GLFW window through the wgpu device.
type Desktop struct {
	window   window.Window
	device   renderer.WGPUDevice
	renderer renderer.Renderer
	logger   *slog.Logger
	onResize func(width, height int)
}

var _ engine.Backend = &Desktop{}

// NewDesktop opens a window, creates the device and initializes the renderer. Window
// events are written into in. The scene's size is set to the framebuffer size.
//
// Parameters:
//   - s: the scene that will be rendered
//   - in: the input state window events are written into
//   - options: functional options to configure the backend
//
// Returns:
//   - *Desktop: the ready backend
//   - error: a window, adapter, device or renderer initialization error; nothing is
//     left open on failure
func NewDesktop(s scene.Scene, in *input.State, options ...Option) (*Desktop, error) {
	cfg := defaultSettings()
	for _, opt := range options {
		opt(&cfg)
	}

	win, err := window.NewWindow(
		window.WithTitle(cfg.title),
		window.WithSize(cfg.width, cfg.height),
		window.WithInput(in),
	)
	if err != nil {
		return nil, err
	}

	dev, err := renderer.NewWGPUDevice(win.SurfaceDescriptor(), win.Width(), win.Height(), cfg.deviceOptions()...)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("create device: %w", err)
	}

	r := renderer.NewRenderer(dev, cfg.rendererOptions()...)
	if err := r.Init(); err != nil {
		r.Release()
		dev.Release()
		win.Close()
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	d := &Desktop{
		window:   win,
		device:   dev,
		renderer: r,
		logger:   cfg.logger,
	}
	win.SetResizeCallback(func(width, height int) {
		if d.onResize != nil {
			d.onResize(width, height)
			return
		}
		s.SetSize(width, height)
		d.Resize(width, height)
	})
	s.SetSize(win.Width(), win.Height())

	d.logger.Info("desktop backend ready",
		"width", win.Width(),
		"height", win.Height(),
		"msaa", int(dev.SampleCount()),
	)
	return d, nil
}

func (d *Desktop) SubmitFrame(s scene.Scene) (renderer.FrameStatus, error) {
	return d.renderer.Submit(s)
}

func (d *Desktop) Resize(width, height int) {
	d.renderer.Resize(width, height)
}

func (d *Desktop) SetResizeCallback(callback func(width, height int)) {
	d.onResize = callback
}

func (d *Desktop) PollEvents() {
	d.window.PollEvents()
}

func (d *Desktop) ShouldStop() bool {
	return !d.window.IsRunning()
}

// Renderer returns the renderer, for its statistics.
func (d *Desktop) Renderer() renderer.Renderer {
	return d.renderer
}

// Close releases the renderer, the device and the window.
func (d *Desktop) Close() error {
	d.renderer.Release()
	d.device.Release()
	err := d.window.Close()
	if errors.Is(err, window.ErrWindowNotInitialized) {
		return nil
	}
	return err
}
