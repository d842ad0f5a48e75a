package light

import "github.com/go-gl/mathgl/mgl32"

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDistant represents a light infinitely far away, shining along a fixed
	// direction onto every fragment with no attenuation.
	LightTypeDistant LightType = iota

	// LightTypeLocal represents a light at a position in the scene that shines in all
	// directions. Local lights do not attenuate with distance.
	LightTypeLocal
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType LightType
	position  mgl32.Vec3
	direction mgl32.Vec3
	color     mgl32.Vec3
	intensity float32
	enabled   bool
}

// Light defines the interface for a light source in the scene.
//
// Lights are scene-level entities evaluated by the Blinn-Phong fragment shader.
// Both light types share this interface; Position is meaningless for distant
// lights and Direction is meaningless for local ones.
//
// Lights are owned by the scene and packed into the light uniform every frame
// via the gpu_types helpers.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (distant or local)
	Type() LightType

	// Position returns the world-space position of a local light.
	//
	// Returns:
	//   - mgl32.Vec3: position as (x, y, z)
	Position() mgl32.Vec3

	// Direction returns the normalized direction pointing from the scene toward a
	// distant light.
	//
	// Returns:
	//   - mgl32.Vec3: normalized direction as (x, y, z)
	Direction() mgl32.Vec3

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Color() mgl32.Vec3

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Enabled returns whether this light is active for rendering.
	// Disabled lights are skipped when packing the light uniform.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl32.Vec3)

	// SetDirection sets the direction of the light and normalizes it.
	//
	// Parameters:
	//   - d: direction toward the light (will be normalized)
	SetDirection(d mgl32.Vec3)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - c: color components
	SetColor(c mgl32.Vec3)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetEnabled enables or disables the light for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create (distant or local)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType: lightType,
		direction: mgl32.Vec3{0, 1, 0},
		color:     mgl32.Vec3{1, 1, 1},
		intensity: 1.0,
		enabled:   true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewDistantLight creates a distant light shining from direction with the given color.
//
// Parameters:
//   - direction: direction pointing toward the light
//   - color: RGB color
//
// Returns:
//   - Light: a new distant Light
func NewDistantLight(direction, color mgl32.Vec3) Light {
	return NewLight(LightTypeDistant, WithDirection(direction), WithColor(color))
}

// NewLocalLight creates a local light at position with the given color.
//
// Parameters:
//   - position: world-space position
//   - color: RGB color
//
// Returns:
//   - Light: a new local Light
func NewLocalLight(position, color mgl32.Vec3) Light {
	return NewLight(LightTypeLocal, WithPosition(position), WithColor(color))
}

// DefaultLights returns the two distant lights a new scene starts with: a bright key
// light from the upper front right and a dim fill light from the lower back left.
//
// Returns:
//   - []Light: the default lights
func DefaultLights() []Light {
	return []Light{
		NewDistantLight(mgl32.Vec3{0.22, 0.44, 0.88}, mgl32.Vec3{0.8, 0.8, 0.8}),
		NewDistantLight(mgl32.Vec3{-0.88, -0.22, -0.44}, mgl32.Vec3{0.3, 0.3, 0.3}),
	}
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	return l.direction
}

func (l *lightImpl) Color() mgl32.Vec3 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetPosition(p mgl32.Vec3) {
	l.position = p
}

func (l *lightImpl) SetDirection(d mgl32.Vec3) {
	l.direction = normalize(d)
}

func (l *lightImpl) SetColor(c mgl32.Vec3) {
	l.color = c
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
