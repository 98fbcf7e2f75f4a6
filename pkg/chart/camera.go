package chart

import (
	"math"

	"github.com/taigrr/plot3d/pkg/math3d"
)

// Camera arm limits.
const (
	MinArmLength = 0.71
	MaxArmLength = 5.0
	MaxVertical  = math.Pi / 2
)

// CameraPosition is the orbit state of the camera.
type CameraPosition struct {
	Horizontal float64 `json:"horizontal"`
	Vertical   float64 `json:"vertical"`
	Distance   float64 `json:"distance"`
}

// DefaultCameraPosition is the camera position of a new chart.
var DefaultCameraPosition = CameraPosition{Horizontal: 1.0, Vertical: 0.5, Distance: 1.7}

// Camera orbits a fixed arm location. The camera sits at the end of an arm
// of the given length, rotated horizontally around the z axis and
// vertically towards it.
type Camera struct {
	armLocation math3d.Vec3
	horizontal  float64
	vertical    float64
	armLength   float64

	// Cached orientation (computed on demand)
	location math3d.Vec3
	rotation math3d.Vec3
	view     math3d.Mat4
	dirty    bool
}

// NewCamera creates a camera at the default position around the origin.
func NewCamera() *Camera {
	c := &Camera{dirty: true}
	c.SetArmRotation(DefaultCameraPosition.Horizontal, DefaultCameraPosition.Vertical)
	c.SetArmLength(DefaultCameraPosition.Distance)
	return c
}

// SetArmLocation sets the point the camera orbits around.
func (c *Camera) SetArmLocation(x, y, z float64) {
	c.armLocation = math3d.V3(x, y, z)
	c.dirty = true
}

// SetArmRotation sets the orbit angles. The vertical angle is clamped to
// [0, π/2].
func (c *Camera) SetArmRotation(horizontal, vertical float64) {
	c.horizontal = horizontal
	c.vertical = math.Max(0, math.Min(MaxVertical, vertical))
	c.dirty = true
}

// SetArmLength sets the orbit radius, clamped to [MinArmLength, MaxArmLength].
func (c *Camera) SetArmLength(length float64) {
	c.armLength = math.Max(MinArmLength, math.Min(MaxArmLength, length))
	c.dirty = true
}

// ArmRotation returns the horizontal and vertical orbit angles.
func (c *Camera) ArmRotation() (horizontal, vertical float64) {
	return c.horizontal, c.vertical
}

// ArmLength returns the orbit radius.
func (c *Camera) ArmLength() float64 {
	return c.armLength
}

// ArmLocation returns the orbit center.
func (c *Camera) ArmLocation() math3d.Vec3 {
	return c.armLocation
}

// Position returns the orbit state.
func (c *Camera) Position() CameraPosition {
	return CameraPosition{Horizontal: c.horizontal, Vertical: c.vertical, Distance: c.armLength}
}

// Location returns the camera location in scaled world space.
func (c *Camera) Location() math3d.Vec3 {
	c.update()
	return c.location
}

// Rotation returns the camera rotation as Euler angles about x, y and z.
func (c *Camera) Rotation() math3d.Vec3 {
	c.update()
	return c.rotation
}

// ViewMatrix returns the rotation that takes offsets from the camera
// location into camera space.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	c.update()
	return c.view
}

func (c *Camera) update() {
	if !c.dirty {
		return
	}
	sinH, cosH := math.Sincos(c.horizontal)
	sinV, cosV := math.Sincos(c.vertical)
	c.location = c.armLocation.Sub(math3d.V3(sinH*cosV, cosH*cosV, -sinV).Scale(c.armLength))
	c.rotation = math3d.V3(math.Pi/2-c.vertical, 0, -c.horizontal)
	c.view = math3d.ViewRotation(c.rotation)
	c.dirty = false
}

// Drag returns the arm rotation reached by dragging dx, dy pixels from
// start. Angles close to a multiple of π/2 snap onto it. The horizontal
// snap stays 0.001 short so the vertical axis is drawn at the front left
// corner.
func Drag(start CameraPosition, dx, dy float64) (horizontal, vertical float64) {
	horizontal = start.Horizontal + dx/200
	vertical = start.Vertical + dy/200

	snap := math.Sin(4.0 / 360 * 2 * math.Pi)

	if math.Abs(math.Sin(horizontal)) < snap {
		horizontal = math.Round(horizontal/math.Pi)*math.Pi - 0.001
	}
	if math.Abs(math.Cos(horizontal)) < snap {
		horizontal = (math.Round(horizontal/math.Pi-0.5)+0.5)*math.Pi - 0.001
	}

	if math.Abs(math.Sin(vertical)) < snap {
		vertical = math.Round(vertical/math.Pi) * math.Pi
	}
	if math.Abs(math.Cos(vertical)) < snap {
		vertical = (math.Round(vertical/math.Pi-0.5) + 0.5) * math.Pi
	}
	return horizontal, vertical
}

// Zoom returns the arm length after a wheel movement of delta notches.
// Positive deltas zoom in.
func Zoom(length, delta float64) float64 {
	return length * (1 - delta/10)
}
