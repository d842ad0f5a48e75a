package engine

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-vis/engine/camera"
	"github.com/Carmen-Shannon/oxy-vis/engine/config"
	"github.com/Carmen-Shannon/oxy-vis/engine/input"
	"github.com/Carmen-Shannon/oxy-vis/engine/profiler"
	"github.com/Carmen-Shannon/oxy-vis/engine/renderer"
	"github.com/Carmen-Shannon/oxy-vis/engine/scene"
	"github.com/Carmen-Shannon/oxy-vis/engine/timer"
)

// Backend is a platform that can present a scene: a desktop window or a browser
// canvas, each with a graphics device behind it.
type Backend interface {
	// SubmitFrame renders the scene once.
	//
	// Parameters:
	//   - s: the scene to render
	//
	// Returns:
	//   - renderer.FrameStatus: whether the frame was presented
	//   - error: a submission error; a skipped frame alone is not an error
	SubmitFrame(s scene.Scene) (renderer.FrameStatus, error)

	// Resize reconfigures the presentation surface.
	Resize(width, height int)

	// SetResizeCallback registers the function called when the platform surface
	// changes size.
	SetResizeCallback(callback func(width, height int))

	// PollEvents processes pending platform events, updating the input state.
	PollEvents()

	// ShouldStop reports whether the platform asked to close.
	ShouldStop() bool
}

// Stats are cumulative counters of the loop.
type Stats struct {
	Iterations uint64
	Submitted  uint64
	Rendered   uint64
	Skipped    uint64
	Errors     uint64
	Panics     uint64
}

// engine implements the Engine interface.
type engine struct {
	backend    Backend
	scene      scene.Scene
	input      *input.State
	controller camera.Controller

	clock    timer.Clock
	rate     float64
	timer    timer.Timer
	lastStep time.Time

	updateCallback func(deltaTime float32)
	stopWhen       func() bool
	quit           atomic.Bool

	configUpdates <-chan config.Config

	profiler         *profiler.Profiler
	profilingEnabled bool

	logger *slog.Logger
	stats  Stats
}

// Engine is the animation loop. Each iteration processes camera input, runs the
// update callback, records trails and renders the scene if anything marked it dirty.
//
// Input, update and rendering all run on the goroutine that calls Run or RunOnce; the
// scene needs no locking as long as it is only touched from the update callback.
type Engine interface {
	// Run loops until the backend asks to stop, Quit is called or the stop predicate
	// holds. Every iteration polls events, runs RunOnce and paces with the frame timer.
	Run()

	// RunOnce runs one iteration body without polling or pacing, for hosts that own
	// the loop (a browser's animation frame callback):
	//  1. pending config reloads are applied
	//  2. camera input is processed
	//  3. the update callback runs with the elapsed time in seconds
	//  4. trails record moved objects
	//  5. a dirty scene is submitted; dirty is cleared only when the frame was presented
	//
	// Submission errors and panics are logged and counted, and the scene stays dirty
	// so the next iteration retries.
	RunOnce()

	// Quit stops Run after the current iteration. Safe to call from any goroutine.
	Quit()

	// SetRate sets the target iteration rate. Non-positive values are ignored.
	//
	// Parameters:
	//   - fps: target iterations per second
	SetRate(fps float64)

	// Rate returns the target iteration rate.
	Rate() float64

	// SetUpdateCallback registers the function called every iteration. It may mutate
	// the scene and must call MarkDirty for changes to be drawn.
	//
	// Parameters:
	//   - callback: receives the elapsed time since the previous iteration in seconds
	SetUpdateCallback(callback func(deltaTime float32))

	// Resize records a new surface size on the scene and forwards it to the backend.
	Resize(width, height int)

	// Scene returns the scene being animated.
	Scene() scene.Scene

	// Input returns the input state the backend writes into.
	Input() *input.State

	// Controller returns the camera controller.
	Controller() camera.Controller

	// Stats returns the loop counters.
	Stats() Stats
}

var _ Engine = &engine{}

// NewEngine creates an engine animating s on backend. The backend's resize events are
// routed through Resize.
//
// Parameters:
//   - backend: the platform presenting the scene
//   - s: the scene
//   - in: the input state the backend writes into
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(backend Backend, s scene.Scene, in *input.State, options ...EngineBuilderOption) Engine {
	e := &engine{
		backend:    backend,
		scene:      s,
		input:      in,
		controller: camera.NewController(),
		clock:      timer.SystemClock(),
		rate:       timer.DefaultRate,
		logger:     slog.Default(),
	}
	if e.input == nil {
		e.input = input.NewState()
	}

	for _, opt := range options {
		opt(e)
	}

	e.timer = timer.NewTimer(timer.WithClock(e.clock), timer.WithRate(e.rate))
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}
	if backend != nil {
		backend.SetResizeCallback(e.Resize)
	}
	return e
}

func (e *engine) Run() {
	e.timer.Reset()
	e.lastStep = time.Time{}
	for !e.shouldStop() {
		e.backend.PollEvents()
		if e.shouldStop() {
			return
		}
		e.RunOnce()
		e.timer.Wait()
	}
}

func (e *engine) shouldStop() bool {
	if e.quit.Load() {
		return true
	}
	if e.backend != nil && e.backend.ShouldStop() {
		return true
	}
	return e.stopWhen != nil && e.stopWhen()
}

func (e *engine) RunOnce() {
	e.stats.Iterations++
	e.drainConfig()

	e.controller.Process(e.scene.Camera(), e.input, e.scene)

	if e.updateCallback != nil {
		e.updateCallback(e.step())
	}

	e.scene.UpdateTrails()

	submitted, rendered := false, false
	if e.scene.IsDirty() {
		submitted = true
		rendered = e.submit()
	}

	if e.profilingEnabled {
		e.profiler.Tick(submitted, rendered)
	}
}

// step returns the seconds since the previous update. The first update reports one
// target period.
func (e *engine) step() float32 {
	now := e.clock.Now()
	dt := e.timer.Period()
	if !e.lastStep.IsZero() {
		dt = now.Sub(e.lastStep)
	}
	e.lastStep = now
	return float32(dt.Seconds())
}

// submit renders the dirty scene, recovering from panics raised by the backend.
func (e *engine) submit() (rendered bool) {
	e.stats.Submitted++
	defer func() {
		if r := recover(); r != nil {
			e.stats.Panics++
			e.stats.Skipped++
			e.logger.Error("frame submission panicked", "panic", fmt.Sprint(r))
			rendered = false
		}
	}()

	status, err := e.backend.SubmitFrame(e.scene)
	if err != nil {
		e.stats.Errors++
		e.logger.Error("frame submission failed", "err", err)
	}
	if status != renderer.FrameRendered {
		e.stats.Skipped++
		return false
	}

	e.stats.Rendered++
	e.scene.ClearDirty()
	return true
}

// drainConfig applies every config reload queued since the previous iteration.
func (e *engine) drainConfig() {
	if e.configUpdates == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-e.configUpdates:
			if !ok {
				e.configUpdates = nil
				return
			}
			e.applyConfig(cfg)
			e.logger.Info("config reloaded", "rate", e.timer.Rate(), "profiling", e.profilingEnabled)
		default:
			return
		}
	}
}

// applyConfig applies the live settings of cfg. Non-positive values keep the current
// setting.
func (e *engine) applyConfig(cfg config.Config) {
	e.SetRate(cfg.Rate)

	s := e.controller.Sensitivity()
	s.Orbit = positiveOr(cfg.Camera.Orbit, s.Orbit)
	s.Pan = positiveOr(cfg.Camera.Pan, s.Pan)
	s.Zoom = positiveOr(cfg.Camera.Zoom, s.Zoom)
	s.ZoomDrag = positiveOr(cfg.Camera.ZoomDrag, s.ZoomDrag)
	e.controller.SetSensitivity(s)

	e.profilingEnabled = cfg.Profiling
}

func positiveOr(v, fallback float32) float32 {
	if v > 0 {
		return v
	}
	return fallback
}

func (e *engine) Quit() {
	e.quit.Store(true)
}

func (e *engine) SetRate(fps float64) {
	if fps <= 0 {
		return
	}
	e.rate = fps
	if e.timer != nil {
		e.timer.SetRate(fps)
	}
}

func (e *engine) Rate() float64 {
	return e.timer.Rate()
}

func (e *engine) SetUpdateCallback(callback func(deltaTime float32)) {
	e.updateCallback = callback
}

func (e *engine) Resize(width, height int) {
	e.scene.SetSize(width, height)
	if e.backend != nil {
		e.backend.Resize(width, height)
	}
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Input() *input.State {
	return e.input
}

func (e *engine) Controller() camera.Controller {
	return e.controller
}

func (e *engine) Stats() Stats {
	return e.stats
}
