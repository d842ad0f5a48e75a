package renderer

import (
	"sync"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPartialDeviceRelease(t *testing.T) {
	// the state NewWGPUDevice is in when the adapter request fails
	d := &wgpuDevice{mu: &sync.Mutex{}, sampleCount: MSAA4x}

	assert.NotPanics(t, d.Release)
	assert.NotPanics(t, d.Release)
	assert.NotPanics(t, func() { d.Resize(640, 480) })
	assert.ErrorIs(t, d.BeginFrame(mgl32.Vec3{}), ErrSurfaceUnavailable)
	assert.NoError(t, d.EndFrame())
}

func TestDeviceOptions(t *testing.T) {
	d := &wgpuDevice{}
	for _, opt := range []DeviceOption{
		WithPresentMode(PresentModeUncapped),
		WithMSAA(MSAAOff),
		WithForceSoftwareRenderer(true),
	} {
		opt(d)
	}
	assert.Equal(t, wgpu.PresentModeImmediate, d.presentMode)
	assert.Equal(t, MSAAOff, d.sampleCount)
	assert.True(t, d.forceFallbackAdapter)
}
