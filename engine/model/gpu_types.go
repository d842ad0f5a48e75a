package model

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-vis/common"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct for mesh pipelines.
// Matches GPUVertex layout exactly (24 bytes).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertex is the GPU representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 24 bytes (tightly packed vertex attributes).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in unit mesh space (12 bytes)
	Normal   [3]float32 // offset 12: unit vertex normal for lighting (12 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 24-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, g.Size())
	off := common.PutFloat32s(buf, g.Position[:]...)
	common.PutFloat32s(buf[off:], g.Normal[:]...)
	return buf
}
