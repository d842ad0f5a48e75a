package engine

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-vis/engine/camera"
	"github.com/Carmen-Shannon/oxy-vis/engine/config"
	"github.com/Carmen-Shannon/oxy-vis/engine/profiler"
	"github.com/Carmen-Shannon/oxy-vis/engine/timer"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithRate sets the target iteration rate in frames per second.
// Values <= 0 keep the default (60Hz).
//
// Parameters:
//   - fps: target iterations per second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps > 0 {
			e.rate = fps
		}
	}
}

// WithUpdateCallback registers the function called every iteration.
//
// Parameters:
//   - callback: receives the elapsed time since the previous iteration in seconds
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithUpdateCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		e.updateCallback = callback
	}
}

// WithController replaces the default camera controller.
func WithController(c camera.Controller) EngineBuilderOption {
	return func(e *engine) {
		if c != nil {
			e.controller = c
		}
	}
}

// WithConfig applies the live settings of a loaded config: rate, camera sensitivities
// and profiling.
//
// Parameters:
//   - cfg: the settings
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfig(cfg config.Config) EngineBuilderOption {
	return func(e *engine) {
		if cfg.Rate > 0 {
			e.rate = cfg.Rate
		}
		e.applyConfig(cfg)
	}
}

// WithConfigUpdates sets a channel of reloaded configs, usually from config.Watch. It
// is drained at the start of every iteration.
//
// Parameters:
//   - updates: the reload channel
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfigUpdates(updates <-chan config.Config) EngineBuilderOption {
	return func(e *engine) {
		e.configUpdates = updates
	}
}

// WithProfiling enables or disables periodic frame statistics logging.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the profiler, for example to change its interval.
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithLogger sets the logger for submission errors and config reloads.
func WithLogger(l *slog.Logger) EngineBuilderOption {
	return func(e *engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithStopWhen adds a predicate checked once per iteration; Run returns when it
// holds.
//
// Parameters:
//   - predicate: the stop condition
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithStopWhen(predicate func() bool) EngineBuilderOption {
	return func(e *engine) {
		e.stopWhen = predicate
	}
}

// WithClock replaces the system clock used for pacing and update deltas.
func WithClock(c timer.Clock) EngineBuilderOption {
	return func(e *engine) {
		if c != nil {
			e.clock = c
		}
	}
}
