package light

import (
	_ "embed"
	"encoding/binary"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-vis/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the number of lights the light uniform carries. Enabled lights beyond
// this count are ignored by the shader.
const MaxLights = 8

// GPULightSource is the canonical WGSL definition of the Light and LightUniform structs.
// Matches GPULight and GPULightUniform layouts exactly.
//
//go:embed assets/light.wgsl
var GPULightSource string

// GPULight is the GPU-aligned representation of a single light source.
// Size: 32 bytes.
type GPULight struct {
	PosOrDir [4]float32 // offset  0: xyz position (w=1, local) or direction toward the light (w=0, distant)
	Color    [4]float32 // offset 16: rgb color pre-multiplied by intensity, w unused
}

// NewGPULight packs l.
//
// Parameters:
//   - l: the light to pack
//
// Returns:
//   - GPULight: the packed light
func NewGPULight(l Light) GPULight {
	var g GPULight
	switch l.Type() {
	case LightTypeLocal:
		p := l.Position()
		g.PosOrDir = [4]float32{p[0], p[1], p[2], 1}
	default:
		d := l.Direction()
		g.PosOrDir = [4]float32{d[0], d[1], d[2], 0}
	}
	c := l.Color().Mul(l.Intensity())
	g.Color = [4]float32{c[0], c[1], c[2], 1}
	return g
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, g.Size())
	off := common.PutFloat32s(buf, g.PosOrDir[:]...)
	common.PutFloat32s(buf[off:], g.Color[:]...)
	return buf
}

// GPULightUniform is the light uniform bound next to the camera uniform.
// Size: 16 + MaxLights*32 bytes.
type GPULightUniform struct {
	Ambient [3]float32          // offset  0: ambient color
	Count   uint32              // offset 12: number of valid entries in Lights
	Lights  [MaxLights]GPULight // offset 16: packed lights
}

// NewGPULightUniform packs the ambient color and the first MaxLights enabled lights.
//
// Parameters:
//   - ambient: the scene ambient color
//   - lights: the scene lights, in priority order
//
// Returns:
//   - GPULightUniform: the packed uniform
func NewGPULightUniform(ambient mgl32.Vec3, lights []Light) GPULightUniform {
	u := GPULightUniform{Ambient: ambient}
	for _, l := range lights {
		if l == nil || !l.Enabled() {
			continue
		}
		if u.Count == MaxLights {
			break
		}
		u.Lights[u.Count] = NewGPULight(l)
		u.Count++
	}
	return u
}

// Size returns the size of the GPULightUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes
func (g *GPULightUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULightUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPULightUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	common.PutFloat32s(buf, g.Ambient[:]...)
	binary.LittleEndian.PutUint32(buf[12:16], g.Count)
	off := 16
	for i := range g.Lights {
		off += copy(buf[off:], g.Lights[i].Marshal())
	}
	return buf
}
