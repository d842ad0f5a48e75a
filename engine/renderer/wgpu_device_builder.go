package renderer

import "github.com/cogentcore/webgpu/wgpu"

// DeviceOption is a functional option for configuring a WGPUDevice.
type DeviceOption func(*wgpuDevice)

// WithPresentMode selects between vsync (Fifo) and uncapped (Immediate) presentation.
//
// Parameters:
//   - mode: the present mode
//
// Returns:
//   - DeviceOption: functional option to set the present mode
func WithPresentMode(mode PresentMode) DeviceOption {
	return func(d *wgpuDevice) {
		switch mode {
		case PresentModeUncapped:
			d.presentMode = wgpu.PresentModeImmediate
		default:
			d.presentMode = wgpu.PresentModeFifo
		}
	}
}

// WithMSAA sets the multisample count of the color and depth targets.
//
// Parameters:
//   - count: MSAAOff, MSAA4x, MSAA8x or MSAA16x
//
// Returns:
//   - DeviceOption: functional option to set the sample count
func WithMSAA(count MSAASampleCount) DeviceOption {
	return func(d *wgpuDevice) {
		if count < MSAAOff {
			count = MSAAOff
		}
		d.sampleCount = count
	}
}

// WithForceSoftwareRenderer requests the fallback (software) adapter.
func WithForceSoftwareRenderer(force bool) DeviceOption {
	return func(d *wgpuDevice) {
		d.forceFallbackAdapter = force
	}
}
