package renderer

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrSurfaceUnavailable reports that no surface image could be acquired this frame,
	// for example while the window is minimized or being resized. It is transient:
	// Submit turns it into a skipped frame.
	ErrSurfaceUnavailable = errors.New("renderer: surface unavailable")

	// ErrNoAdapter reports that no GPU adapter compatible with the surface exists.
	ErrNoAdapter = errors.New("renderer: no compatible adapter")

	// ErrNoDevice reports that the adapter refused to create a device.
	ErrNoDevice = errors.New("renderer: device creation failed")

	// ErrNotInitialized reports a submission before Init succeeded.
	ErrNotInitialized = errors.New("renderer: not initialized")
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// ParsePresentMode maps the config spelling ("vsync" or "uncapped") to a PresentMode.
//
// Parameters:
//   - s: the present mode name
//
// Returns:
//   - PresentMode: the parsed mode
//   - bool: false if s is not a known mode
func ParsePresentMode(s string) (PresentMode, bool) {
	switch s {
	case "vsync":
		return PresentModeVSync, true
	case "uncapped":
		return PresentModeUncapped, true
	default:
		return PresentModeVSync, false
	}
}

// MSAASampleCount is the number of samples per pixel of the color and depth targets.
// WebGPU guarantees 1 and 4; 8 and 16 depend on the adapter.
type MSAASampleCount uint32

const (
	MSAAOff MSAASampleCount = 1
	MSAA4x  MSAASampleCount = 4
	MSAA8x  MSAASampleCount = 8
	MSAA16x MSAASampleCount = 16
)

// BufferUsage selects what a device buffer is bound as.
type BufferUsage int

const (
	BufferUsageVertex BufferUsage = iota
	BufferUsageIndex
	BufferUsageUniform
)

// Buffer is a device-resident buffer handle.
type Buffer interface {
	// Label returns the debug label the buffer was created with.
	Label() string

	// Size returns the buffer capacity in bytes.
	Size() uint64
}

// Mesh is a static mesh uploaded to the device.
type Mesh struct {
	Vertices   Buffer
	Indices    Buffer
	IndexCount uint32
}

// Device is the slice of a graphics device the renderer drives. Calls happen on the
// frame context only. Between BeginFrame and EndFrame the device records draws into
// one render pass; buffer writes issued during that window are visible to the pass.
type Device interface {
	// CreateBuffer allocates a buffer of size bytes.
	//
	// Parameters:
	//   - label: debug label
	//   - usage: what the buffer is bound as
	//   - size: capacity in bytes
	//
	// Returns:
	//   - Buffer: the new buffer
	//   - error: an error if allocation failed
	CreateBuffer(label string, usage BufferUsage, size uint64) (Buffer, error)

	// WriteBuffer uploads data at offset 0 of buf. len(data) must not exceed buf.Size().
	WriteBuffer(buf Buffer, data []byte) error

	// ReleaseBuffer frees buf. The handle must not be used afterwards.
	ReleaseBuffer(buf Buffer)

	// BindUniforms binds the given uniform buffers at group 0, bindings 0..n-1, for
	// every following draw.
	BindUniforms(buffers ...Buffer) error

	// BeginFrame acquires the next surface image and starts a render pass cleared to
	// clear. Returns ErrSurfaceUnavailable (possibly wrapped) when no image can be
	// acquired; no pass is open in that case.
	//
	// Parameters:
	//   - clear: the background color
	//
	// Returns:
	//   - error: ErrSurfaceUnavailable or a device error
	BeginFrame(clear mgl32.Vec3) error

	// DrawIndexedInstanced records one indexed draw of mesh with count instances read
	// from instances.
	DrawIndexedInstanced(mesh Mesh, instances Buffer, count uint32)

	// EndFrame ends the pass, submits it and presents the surface image.
	EndFrame() error

	// Resize reconfigures the surface and the depth and MSAA targets. A zero width or
	// height leaves the surface unconfigured until the next non-zero size.
	Resize(width, height int)

	// Release frees every device resource.
	Release()
}
