package backend

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-vis/engine/config"
	"github.com/Carmen-Shannon/oxy-vis/engine/renderer"
	"github.com/stretchr/testify/assert"
)

func apply(options ...Option) settings {
	s := defaultSettings()
	for _, opt := range options {
		opt(&s)
	}
	return s
}

func TestOptionsKeepDefaultsForZeroValues(t *testing.T) {
	s := apply(WithTitle(""), WithSize(0, -5), WithCanvasID(""))
	def := defaultSettings()
	assert.Equal(t, def.title, s.title)
	assert.Equal(t, def.width, s.width)
	assert.Equal(t, def.height, s.height)
	assert.Equal(t, def.canvasID, s.canvasID)

	s = apply(WithSize(800, 0))
	assert.Equal(t, 800, s.width)
	assert.Equal(t, def.height, s.height)
}

func TestWithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Title = "orbits"
	cfg.Window.Width = 640
	cfg.Renderer.PresentMode = "uncapped"
	cfg.Renderer.MSAA = 1
	cfg.Renderer.Workers = 3

	s := apply(WithConfig(cfg))
	assert.Equal(t, "orbits", s.title)
	assert.Equal(t, 640, s.width)
	assert.Equal(t, renderer.PresentModeUncapped, s.presentMode)
	assert.Equal(t, renderer.MSAAOff, s.msaa)
	assert.Equal(t, 3, s.workers)
	assert.Len(t, s.rendererOptions(), 2)
	assert.Len(t, s.deviceOptions(), 3)
}

func TestWithConfigRejectsInvalidRendererValues(t *testing.T) {
	cfg := config.Default()
	cfg.Renderer.PresentMode = "adaptive"
	cfg.Renderer.MSAA = 3
	cfg.Renderer.Workers = 0

	s := apply(WithConfig(cfg))
	assert.Equal(t, renderer.PresentModeVSync, s.presentMode)
	assert.Equal(t, renderer.MSAA4x, s.msaa)
	assert.Zero(t, s.workers)
	assert.Len(t, s.rendererOptions(), 1)
}
