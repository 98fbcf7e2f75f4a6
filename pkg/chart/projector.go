package chart

import (
	"math"

	"github.com/taigrr/plot3d/pkg/math3d"
)

// DefaultEye is the eye offset used for the perspective divide.
var DefaultEye = math3d.V3(0, 0, -1)

// View is an immutable snapshot of everything needed to project a point:
// camera, scale, eye and canvas geometry. Projecting through a View has no
// side effects.
type View struct {
	Location    math3d.Vec3
	Rotation    math3d.Mat4
	ArmLength   float64
	Scale       Scale
	Eye         math3d.Vec3
	Perspective bool

	// Width is the canvas width; both screen axes are scaled by it.
	Width  float64
	Center math3d.Vec2
}

// NewView captures the current state of cam.
func NewView(cam *Camera, scale Scale, eye math3d.Vec3, perspective bool, width float64, center math3d.Vec2) View {
	return View{
		Location:    cam.Location(),
		Rotation:    cam.ViewMatrix(),
		ArmLength:   cam.ArmLength(),
		Scale:       scale,
		Eye:         eye,
		Perspective: perspective,
		Width:       width,
		Center:      center,
	}
}

// Translate converts a data point to camera space: the point is scaled,
// moved relative to the camera and rotated into the camera frame. The
// camera looks along -z.
func (v View) Translate(p math3d.Vec3) math3d.Vec3 {
	return v.Rotation.MulVec3Dir(p.Mul(v.Scale.Vec3()).Sub(v.Location))
}

// ToScreen converts a camera space point to canvas pixels.
func (v View) ToScreen(t math3d.Vec3) math3d.Vec2 {
	ex, ey, ez := v.Eye.X, v.Eye.Y, v.Eye.Z

	var bx, by float64
	if v.Perspective {
		bx = (t.X - ex) * (ez / t.Z)
		by = (t.Y - ey) * (ez / t.Z)
	} else {
		bx = t.X * -(ez / v.ArmLength)
		by = t.Y * -(ez / v.ArmLength)
	}

	return math3d.V2(v.Center.X+bx*v.Width, v.Center.Y-by*v.Width)
}

// Project converts a data point to canvas pixels.
func (v View) Project(p math3d.Vec3) math3d.Vec2 {
	return v.ToScreen(v.Translate(p))
}

// Depth returns the distance used for back to front ordering of a camera
// space point: its length with perspective, otherwise -z.
func (v View) Depth(t math3d.Vec3) float64 {
	if v.Perspective {
		return t.Len()
	}
	return -t.Z
}

// StrokeWidth scales a line width by the depth of the camera space point t.
func (v View) StrokeWidth(width float64, t math3d.Vec3) float64 {
	if v.Perspective {
		return width / -t.Z
	}
	return -(v.Eye.Z / v.ArmLength) * width
}

// DotRadius returns the radius of a dot of the given base size at camera
// space point t.
func (v View) DotRadius(size float64, t math3d.Vec3) float64 {
	if v.Perspective {
		return size / -t.Z
	}
	return size * -(v.Eye.Z / v.ArmLength)
}

// clamp01 clamps f to [0, 1]; NaN becomes 0.
func clamp01(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Max(0, math.Min(1, f))
}
