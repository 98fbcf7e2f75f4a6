package chart

import "github.com/taigrr/plot3d/pkg/math3d"

// Scale maps data units onto the unit cube the camera looks at.
type Scale struct {
	X, Y, Z float64
	Value   float64
}

// ComputeScale derives per-axis scale factors from the data ranges. With
// keepAspect the x and y factors are both set to the smaller of the two. The
// z factor is multiplied by verticalRatio. The value factor is only set when
// value is non-nil.
func ComputeScale(x, y, z Range, value *Range, keepAspect bool, verticalRatio float64) Scale {
	s := Scale{
		X: 1 / x.Range(),
		Y: 1 / y.Range(),
		Z: 1 / z.Range(),
	}
	if keepAspect {
		if s.X < s.Y {
			s.Y = s.X
		} else {
			s.X = s.Y
		}
	}
	s.Z *= verticalRatio
	if value != nil {
		s.Value = 1 / value.Range()
	}
	return s
}

// Vec3 returns the spatial factors as a vector.
func (s Scale) Vec3() math3d.Vec3 {
	return math3d.V3(s.X, s.Y, s.Z)
}
