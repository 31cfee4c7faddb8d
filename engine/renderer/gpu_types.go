package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl64"
)

// PlanetShaderSource is the WGSL source of the full-screen planet pipeline.
// Its FrameUniform struct matches GPUFrameUniform.
//
//go:embed assets/planet.wgsl
var PlanetShaderSource string

// Slot identifies one of the planet textures. The shader binding is textureBindingBase + slot.
type Slot int

const (
	SlotDay Slot = iota
	SlotNight
	SlotSkybox
	SlotClouds
	SlotSun
)

// Slots lists every texture slot in binding order.
var Slots = []Slot{SlotDay, SlotNight, SlotSkybox, SlotClouds, SlotSun}

const (
	uniformBinding     = 0
	samplerBinding     = 1
	textureBindingBase = 2
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotDay:
		return "day"
	case SlotNight:
		return "night"
	case SlotSkybox:
		return "skybox"
	case SlotClouds:
		return "clouds"
	case SlotSun:
		return "sun"
	default:
		return "unknown"
	}
}

// GPUFrameUniform is the GPU-aligned per-frame uniform buffer.
// Size: 64 bytes (WGSL uniform aligned).
type GPUFrameUniform struct {
	CameraPosition [3]float32 // offset  0: eye position (vec3<f32>)
	Fov            float32    // offset 12: vertical field of view in radians
	LookAt         [3]float32 // offset 16: camera target (vec3<f32>)
	_pad0          float32    // offset 28
	SunDirection   [3]float32 // offset 32: unit vector towards the sun (vec3<f32>)
	_pad1          float32    // offset 44
	Resolution     [2]float32 // offset 48: viewport size in pixels (vec2<f32>)
	_pad2          [2]float32 // offset 56: padding to 64 bytes
}

// Size returns the size of the GPUFrameUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUFrameUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUFrameUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUFrameUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	putVec := func(offset int, v []float32) {
		for i, f := range v {
			binary.LittleEndian.PutUint32(buf[offset+i*4:], math.Float32bits(f))
		}
	}
	putVec(0, g.CameraPosition[:])
	putVec(12, []float32{g.Fov})
	putVec(16, g.LookAt[:])
	putVec(32, g.SunDirection[:])
	putVec(48, g.Resolution[:])
	return buf
}

func toFloat32(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

// quadVertices is a full-screen triangle strip in clip space.
var quadVertices = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}
