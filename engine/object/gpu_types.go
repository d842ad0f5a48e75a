package object

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-vis/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUInstanceSource is the canonical WGSL definition of the InstanceInput struct.
// The model matrix is split into four column attributes because vertex inputs cannot
// be matrices. Matches GPUInstance layout exactly (96 bytes).
//
//go:embed assets/instance.wgsl
var GPUInstanceSource string

// GPUInstanceStride is the byte size of one packed GPUInstance.
const GPUInstanceStride = 96

// GPUInstance is the per-instance record fed to the instanced draw of one kind.
// Size: 96 bytes.
type GPUInstance struct {
	Model    [16]float32 // offset  0: model matrix, column-major (4 × vec4<f32>)
	Color    [4]float32  // offset 64: rgb color and opacity (vec4<f32>)
	Material [4]float32  // offset 80: shininess, emissive (0 or 1), unused, unused (vec4<f32>)
}

// NewGPUInstance packs a visible object into its instance record.
//
// Parameters:
//   - o: the object to pack
//
// Returns:
//   - GPUInstance: the instance record
func NewGPUInstance(o Object) GPUInstance {
	b := o.Common()
	emissive := float32(0)
	if b.emissive {
		emissive = 1
	}
	return GPUInstance{
		Model:    common.ModelMatrix(b.pos, b.axis, b.up, o.Scale(), o.Oriented()),
		Color:    [4]float32{b.color[0], b.color[1], b.color[2], b.opacity},
		Material: [4]float32{b.shininess, emissive, 0, 0},
	}
}

// NewTrailInstance packs one trail point of o as a sphere instance of radius
// TrailRadius, sharing the owner's color and material.
//
// Parameters:
//   - o: the object owning the trail
//   - point: the recorded trail position
//
// Returns:
//   - GPUInstance: the sphere instance record
func NewTrailInstance(o Object, point mgl32.Vec3) GPUInstance {
	inst := NewGPUInstance(o)
	r := o.Common().trailRadius
	inst.Model = common.ModelMatrix(point, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{r, r, r}, false)
	return inst
}

// Size returns the size of the GPUInstance struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUInstance) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Put writes the instance into dst, which must hold at least GPUInstanceStride bytes.
//
// Parameters:
//   - dst: destination byte slice
//
// Returns:
//   - int: number of bytes written
func (g *GPUInstance) Put(dst []byte) int {
	off := common.PutFloat32s(dst, g.Model[:]...)
	off += common.PutFloat32s(dst[off:], g.Color[:]...)
	off += common.PutFloat32s(dst[off:], g.Material[:]...)
	return off
}

// Marshal serializes the GPUInstance struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, g.Size())
	g.Put(buf)
	return buf
}
