package backend

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-vis/common"
	"github.com/Carmen-Shannon/oxy-vis/engine/config"
	"github.com/Carmen-Shannon/oxy-vis/engine/renderer"
)

// settings is shared by the desktop and browser backends; options that do not apply
// to a platform are ignored there.
type settings struct {
	title  string
	width  int
	height int

	// canvasID names the element the browser canvas is placed into.
	canvasID string

	presentMode renderer.PresentMode
	msaa        renderer.MSAASampleCount
	software    bool
	workers     int

	logger *slog.Logger
}

func defaultSettings() settings {
	return settings{
		title:       "oxy-vis",
		width:       1280,
		height:      720,
		canvasID:    "oxy-vis",
		presentMode: renderer.PresentModeVSync,
		msaa:        renderer.MSAA4x,
		logger:      slog.Default(),
	}
}

func (s settings) deviceOptions() []renderer.DeviceOption {
	return []renderer.DeviceOption{
		renderer.WithPresentMode(s.presentMode),
		renderer.WithMSAA(s.msaa),
		renderer.WithForceSoftwareRenderer(s.software),
	}
}

func (s settings) rendererOptions() []renderer.RendererBuilderOption {
	opts := []renderer.RendererBuilderOption{renderer.WithLogger(s.logger)}
	if s.workers > 0 {
		opts = append(opts, renderer.WithWorkers(s.workers))
	}
	return opts
}

// Option is a functional option for configuring a backend.
type Option func(*settings)

// WithTitle sets the window or document title.
func WithTitle(title string) Option {
	return func(s *settings) {
		s.title = common.Coalesce(title, s.title)
	}
}

// WithSize sets the initial surface size in pixels. Non-positive values keep the
// default.
//
// Parameters:
//   - width: surface width
//   - height: surface height
//
// Returns:
//   - Option: functional option to set the size
func WithSize(width, height int) Option {
	return func(s *settings) {
		s.width = common.Coalesce(max(width, 0), s.width)
		s.height = common.Coalesce(max(height, 0), s.height)
	}
}

// WithCanvasID sets the id of the DOM element hosting the browser canvas. If no such
// element exists the canvas is appended to the body.
func WithCanvasID(id string) Option {
	return func(s *settings) {
		s.canvasID = common.Coalesce(id, s.canvasID)
	}
}

// WithPresentMode selects vsync or uncapped presentation.
func WithPresentMode(mode renderer.PresentMode) Option {
	return func(s *settings) {
		s.presentMode = mode
	}
}

// WithMSAA sets the multisample count.
func WithMSAA(count renderer.MSAASampleCount) Option {
	return func(s *settings) {
		s.msaa = count
	}
}

// WithSoftwareRenderer forces the fallback adapter.
func WithSoftwareRenderer(enabled bool) Option {
	return func(s *settings) {
		s.software = enabled
	}
}

// WithWorkers sets the number of instance packing workers.
func WithWorkers(n int) Option {
	return func(s *settings) {
		s.workers = n
	}
}

// WithLogger sets the logger for backend and renderer diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithConfig applies the window and renderer sections of a settings file. Unknown
// present modes and unsupported sample counts keep the defaults.
//
// Parameters:
//   - cfg: the loaded settings
//
// Returns:
//   - Option: functional option applying cfg
func WithConfig(cfg config.Config) Option {
	return func(s *settings) {
		WithTitle(cfg.Window.Title)(s)
		WithSize(cfg.Window.Width, cfg.Window.Height)(s)
		if mode, ok := renderer.ParsePresentMode(cfg.Renderer.PresentMode); ok {
			s.presentMode = mode
		}
		switch m := renderer.MSAASampleCount(cfg.Renderer.MSAA); m {
		case renderer.MSAAOff, renderer.MSAA4x, renderer.MSAA8x, renderer.MSAA16x:
			s.msaa = m
		}
		if cfg.Renderer.Workers > 0 {
			s.workers = cfg.Renderer.Workers
		}
	}
}
