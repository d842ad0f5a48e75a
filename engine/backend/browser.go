//go:build js && wasm

package backend

import (
	"errors"
	"fmt"
	"log/slog"
	"syscall/js"
	"time"

	"github.com/Carmen-Shannon/oxy-vis/common"
	"github.com/Carmen-Shannon/oxy-vis/engine"
	"github.com/Carmen-Shannon/oxy-vis/engine/input"
	"github.com/Carmen-Shannon/oxy-vis/engine/renderer"
	"github.com/Carmen-Shannon/oxy-vis/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrNoDocument is returned by NewBrowser outside a page, for example under node.
var ErrNoDocument = errors.New("backend: no document to place the canvas in")

// wheelLineHeight converts DOM wheel deltas in pixels into scroll units, so one notch
// of a typical wheel is about one unit, as on the desktop.
const wheelLineHeight = 100.0

type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

// Browser presents a scene on an HTML canvas through the WebGPU API of the page.
//
// DOM events are queued by their listeners and applied to the input state in
// PollEvents, so the frame sees one consistent snapshot per iteration.
type Browser struct {
	canvas   js.Value
	device   renderer.WGPUDevice
	renderer renderer.Renderer
	input    *input.State
	logger   *slog.Logger

	pending   []func()
	listeners []listener
	onResize  func(width, height int)
	stopped   bool
}

var _ engine.Backend = &Browser{}

// NewBrowser creates the WebGPU device, places its canvas in the page and registers
// the DOM listeners. It blocks on adapter and device requests, so it must run on the
// main goroutine, never inside a JS callback.
//
// Parameters:
//   - s: the scene that will be rendered
//   - in: the input state DOM events are written into
//   - options: functional options to configure the backend
//
// Returns:
//   - *Browser: the ready backend
//   - error: ErrNoDocument, or an adapter, device or renderer initialization error
//     (renderer.ErrNoAdapter when the browser has no WebGPU support)
func NewBrowser(s scene.Scene, in *input.State, options ...Option) (*Browser, error) {
	cfg := defaultSettings()
	for _, opt := range options {
		opt(&cfg)
	}
	if in == nil {
		in = input.NewState()
	}

	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, ErrNoDocument
	}
	doc.Set("title", cfg.title)

	width, height := cfg.width, cfg.height
	host := doc.Call("getElementById", cfg.canvasID)
	if host.Truthy() {
		if w, h := elementSize(host); w > 0 && h > 0 {
			width, height = w, h
		}
	}

	if nav := js.Global().Get("navigator"); !nav.Truthy() || !nav.Get("gpu").Truthy() {
		return nil, fmt.Errorf("create device: %w: webgpu is not supported", renderer.ErrNoAdapter)
	}

	canvas := doc.Call("createElement", "canvas")
	canvas.Set("width", width)
	canvas.Set("height", height)
	canvas.Call("setAttribute", "tabindex", "0")
	canvas.Get("style").Set("touchAction", "none")

	dev, err := renderer.NewWGPUDevice(&wgpu.SurfaceDescriptor{Canvas: canvas}, width, height, cfg.deviceOptions()...)
	if err != nil {
		return nil, fmt.Errorf("create device: %w", err)
	}
	if host.Truthy() {
		host.Call("appendChild", canvas)
	} else {
		doc.Get("body").Call("appendChild", canvas)
	}

	r := renderer.NewRenderer(dev, cfg.rendererOptions()...)
	if err := r.Init(); err != nil {
		r.Release()
		dev.Release()
		canvas.Call("remove")
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	b := &Browser{
		canvas:   canvas,
		device:   dev,
		renderer: r,
		input:    in,
		logger:   cfg.logger,
	}
	b.onResize = func(width, height int) {
		s.SetSize(width, height)
		b.Resize(width, height)
	}
	b.listen(doc, host)
	s.SetSize(width, height)

	b.logger.Info("browser backend ready", "width", width, "height", height, "msaa", int(dev.SampleCount()))
	return b, nil
}

// elementSize returns the CSS size of el in device pixels.
func elementSize(el js.Value) (int, int) {
	ratio := js.Global().Get("devicePixelRatio").Float()
	if ratio <= 0 {
		ratio = 1
	}
	return int(el.Get("clientWidth").Float() * ratio), int(el.Get("clientHeight").Float() * ratio)
}

// on registers fn for event on target. The handler queues work for PollEvents.
func (b *Browser) on(target js.Value, event string, preventDefault bool, fn func(e js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		e := args[0]
		if preventDefault {
			e.Call("preventDefault")
		}
		fn(e)
		return nil
	})
	target.Call("addEventListener", event, f)
	b.listeners = append(b.listeners, listener{target: target, event: event, fn: f})
}

func (b *Browser) queue(f func()) {
	b.pending = append(b.pending, f)
}

func (b *Browser) listen(doc, host js.Value) {
	in := b.input
	canvas := b.canvas

	pointer := func(e js.Value) (float32, float32) {
		rect := canvas.Call("getBoundingClientRect")
		return float32(e.Get("clientX").Float() - rect.Get("left").Float()),
			float32(e.Get("clientY").Float() - rect.Get("top").Float())
	}
	modifiers := func(e js.Value) {
		ctrl := e.Get("ctrlKey").Bool() || e.Get("metaKey").Bool()
		shift, alt := e.Get("shiftKey").Bool(), e.Get("altKey").Bool()
		b.queue(func() { in.SetModifiers(ctrl, shift, alt) })
	}

	b.on(canvas, "pointerdown", true, func(e js.Value) {
		canvas.Call("focus")
		canvas.Call("setPointerCapture", e.Get("pointerId"))
		modifiers(e)
		x, y := pointer(e)
		if btn, ok := domButton(e.Get("button").Int()); ok {
			b.queue(func() {
				in.SetPointer(x, y)
				in.SetButton(btn, true)
			})
		}
	})
	b.on(canvas, "pointerup", true, func(e js.Value) {
		modifiers(e)
		if btn, ok := domButton(e.Get("button").Int()); ok {
			b.queue(func() { in.SetButton(btn, false) })
		}
	})
	b.on(canvas, "pointermove", false, func(e js.Value) {
		x, y := pointer(e)
		b.queue(func() { in.SetPointer(x, y) })
	})
	b.on(canvas, "wheel", true, func(e js.Value) {
		delta := -e.Get("deltaY").Float()
		if e.Get("deltaMode").Int() == 0 {
			delta /= wheelLineHeight
		}
		b.queue(func() { in.AddScroll(float32(delta)) })
	})
	b.on(canvas, "contextmenu", true, func(js.Value) {})

	b.on(doc, "keydown", false, func(e js.Value) {
		modifiers(e)
		k := common.KeyFromDOMCode(e.Get("code").String())
		b.queue(func() { in.SetKey(k, true) })
	})
	b.on(doc, "keyup", false, func(e js.Value) {
		modifiers(e)
		k := common.KeyFromDOMCode(e.Get("code").String())
		b.queue(func() { in.SetKey(k, false) })
	})

	sizeOf := canvas
	if host.Truthy() {
		sizeOf = host
	}
	b.on(js.Global(), "resize", false, func(js.Value) {
		w, h := elementSize(sizeOf)
		if w <= 0 || h <= 0 {
			return
		}
		b.queue(func() {
			canvas.Set("width", w)
			canvas.Set("height", h)
			if b.onResize != nil {
				b.onResize(w, h)
			}
		})
	})
}

// domButton maps a DOM MouseEvent.button to an input button.
func domButton(button int) (input.Button, bool) {
	switch button {
	case 0:
		return input.ButtonLeft, true
	case 1:
		return input.ButtonMiddle, true
	case 2:
		return input.ButtonRight, true
	default:
		return 0, false
	}
}

func (b *Browser) SubmitFrame(s scene.Scene) (renderer.FrameStatus, error) {
	return b.renderer.Submit(s)
}

func (b *Browser) Resize(width, height int) {
	b.renderer.Resize(width, height)
}

func (b *Browser) SetResizeCallback(callback func(width, height int)) {
	b.onResize = callback
}

func (b *Browser) PollEvents() {
	pending := b.pending
	b.pending = nil
	for _, f := range pending {
		f()
	}
}

func (b *Browser) ShouldStop() bool {
	return b.stopped
}

// Renderer returns the renderer, for its statistics.
func (b *Browser) Renderer() renderer.Renderer {
	return b.renderer
}

// RunAnimationFrames drives e from requestAnimationFrame: each callback polls events
// and runs one engine iteration. Callbacks arriving sooner than the engine's rate
// allows are skipped, so the loop runs at min(rate, display refresh).
//
// Parameters:
//   - e: the engine to drive
//
// Returns:
//   - <-chan struct{}: closed once the backend is closed and the loop has stopped
func (b *Browser) RunAnimationFrames(e engine.Engine) <-chan struct{} {
	done := make(chan struct{})
	var last float64
	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		if b.stopped {
			frame.Release()
			close(done)
			return nil
		}
		now := args[0].Float()
		// rAF timestamps jitter, allow a little slack below the period
		period := float64(time.Second/time.Millisecond) / e.Rate()
		if last == 0 || now-last >= 0.9*period {
			last = now
			b.PollEvents()
			e.RunOnce()
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)
	return done
}

// Close removes the listeners and the canvas and releases the renderer and device.
// The animation frame loop stops at its next callback.
func (b *Browser) Close() error {
	if b.stopped {
		return nil
	}
	b.stopped = true
	for _, l := range b.listeners {
		l.target.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	b.listeners = nil
	b.renderer.Release()
	b.device.Release()
	b.canvas.Call("remove")
	return nil
}
