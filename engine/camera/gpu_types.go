package camera

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-vis/common"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (208 bytes).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL CameraUniform struct layout exactly (see GPUCameraUniformSource).
// Size: 208 bytes.
type GPUCameraUniform struct {
	View       [16]float32 // offset   0: view matrix (mat4x4<f32>)
	Projection [16]float32 // offset  64: projection matrix (mat4x4<f32>)
	ViewProj   [16]float32 // offset 128: combined view-projection matrix (mat4x4<f32>)
	Position   [3]float32  // offset 192: world-space camera position (vec3<f32>)
	_pad       float32     // offset 204: padding to 208 bytes
}

// NewGPUCameraUniform captures cam's matrices for the given viewport aspect ratio.
//
// Parameters:
//   - cam: the camera to capture
//   - aspect: viewport width / height
//
// Returns:
//   - GPUCameraUniform: the uniform ready to marshal
func NewGPUCameraUniform(cam Camera, aspect float32) GPUCameraUniform {
	view := cam.View()
	proj := cam.Projection(aspect)
	return GPUCameraUniform{
		View:       view,
		Projection: proj,
		ViewProj:   proj.Mul4(view),
		Position:   cam.Position(),
	}
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (208)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	off := common.PutFloat32s(buf, g.View[:]...)
	off += common.PutFloat32s(buf[off:], g.Projection[:]...)
	off += common.PutFloat32s(buf[off:], g.ViewProj[:]...)
	common.PutFloat32s(buf[off:], g.Position[:]...)
	return buf
}
