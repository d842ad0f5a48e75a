package common

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// PutFloat32s writes the values into dst as little-endian float32s and returns the
// number of bytes written. dst must hold at least 4*len(values) bytes.
//
// Parameters:
//   - dst: destination byte slice
//   - values: the float32 values to encode
//
// Returns:
//   - int: number of bytes written
func PutFloat32s(dst []byte, values ...float32) int {
	for i, v := range values {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
	return len(values) * 4
}

// Translate returns the translation matrix for v.
func Translate(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(v[0], v[1], v[2])
}

// Scale returns the non-uniform scale matrix for v.
func Scale(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Scale3D(v[0], v[1], v[2])
}

// BasisRotation builds the rotation that maps local +Z onto axis, keeping local +Y
// as close to up as possible. The basis is z=normalize(axis), x=normalize(cross(up, z)),
// y=cross(z, x), stored as the matrix columns.
//
// Axis parallel to up (or a zero-length axis) is not rejected; the resulting
// matrix contains NaN components.
//
// Parameters:
//   - axis: the direction the object's local +Z should point along
//   - up: the reference up direction
//
// Returns:
//   - mgl32.Mat4: column-major rotation matrix
func BasisRotation(axis, up mgl32.Vec3) mgl32.Mat4 {
	z := axis.Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)
	return mgl32.Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		0, 0, 0, 1,
	}
}

// ModelMatrix composes translate(pos) × rotation(axis, up) × scale(scale).
// When oriented is false the rotation step is skipped (translate × scale), which
// is what uniformly scaled shapes such as spheres use.
//
// Parameters:
//   - pos: world position
//   - axis: orientation direction (local +Z)
//   - up: reference up direction
//   - scale: per-axis scale in local space
//   - oriented: whether the basis rotation is applied
//
// Returns:
//   - mgl32.Mat4: the model matrix
func ModelMatrix(pos, axis, up, scale mgl32.Vec3, oriented bool) mgl32.Mat4 {
	if !oriented {
		return Translate(pos).Mul4(Scale(scale))
	}
	return Translate(pos).Mul4(BasisRotation(axis, up)).Mul4(Scale(scale))
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view space, with the camera
// looking down -Z.
//
// Parameters:
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation
//
// Returns:
//   - mgl32.Mat4: the view matrix
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, center, up)
}

// Perspective creates a perspective projection matrix for WebGPU clip space,
// where depth maps to [0, 1] rather than OpenGL's [-1, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1 / math32.Tan(fovY/2)
	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1
	out[14] = (near * far) / (near - far)
	return out
}

// RotateAxisAngle rotates v about axis by angle radians using Rodrigues' formula:
// v·cosθ + (k×v)·sinθ + k·(k·v)·(1-cosθ), with k the normalized axis.
//
// Parameters:
//   - v: the vector to rotate
//   - axis: rotation axis (need not be normalized)
//   - angle: rotation angle in radians, counter-clockwise looking down the axis
//
// Returns:
//   - mgl32.Vec3: the rotated vector
func RotateAxisAngle(v, axis mgl32.Vec3, angle float32) mgl32.Vec3 {
	k := axis.Normalize()
	cos, sin := math32.Cos(angle), math32.Sin(angle)
	return v.Mul(cos).
		Add(k.Cross(v).Mul(sin)).
		Add(k.Mul(k.Dot(v) * (1 - cos)))
}
