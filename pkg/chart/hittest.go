package chart

import (
	"math"

	"github.com/taigrr/plot3d/pkg/math3d"
)

// maxHitDistance is how far, in pixels, a point hit test reaches.
const maxHitDistance = 100

// nearestPoint returns the point whose screen position is closest to at,
// within maxHitDistance.
func nearestPoint(f *Frame, at math3d.Vec2) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for i := range f.Geometry.Points {
		d := f.Geometry.Points[i].Screen.Distance(at)
		if d < bestDist && d < maxHitDistance {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// insideTriangle reports whether p lies inside or on the edge of the
// triangle a, b, c.
func insideTriangle(p, a, b, c math3d.Vec2) bool {
	as := sign(b.Sub(a).Cross(p.Sub(a)))
	bs := sign(c.Sub(b).Cross(p.Sub(b)))
	cs := sign(a.Sub(c).Cross(p.Sub(c)))

	return (as == 0 || bs == 0 || as == bs) &&
		(bs == 0 || cs == 0 || bs == cs) &&
		(as == 0 || cs == 0 || as == cs)
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
