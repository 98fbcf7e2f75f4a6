package chart

import "github.com/taigrr/plot3d/pkg/math3d"

// NoLink marks an absent neighbor in DataPoint links.
const NoLink = -1

// DataPoint is one record placed in the chart. Links to neighbors are
// indices into the owning Geometry's Points.
type DataPoint struct {
	Point    math3d.Vec3 // data space
	Bottom   math3d.Vec3 // Point dropped onto the z floor
	Value    float64
	HasValue bool

	// Set on every frame
	Trans  math3d.Vec3 // camera space
	Screen math3d.Vec2 // canvas pixels
	Dist   float64     // depth of Bottom

	Next  int // line successor
	Right int // grid neighbor at the next distinct x
	Top   int // grid neighbor at the next distinct y
	Cross int // grid neighbor at both

	// Bar faces, back to front
	Surfaces []Surface
}

func newDataPoint(p math3d.Vec3, value float64, hasValue bool, zMin float64) DataPoint {
	return DataPoint{
		Point:    p,
		Bottom:   math3d.V3(p.X, p.Y, zMin),
		Value:    value,
		HasValue: hasValue,
		Next:     NoLink,
		Right:    NoLink,
		Top:      NoLink,
		Cross:    NoLink,
	}
}

// Corner is a surface corner with its projection.
type Corner struct {
	Point  math3d.Vec3
	Screen math3d.Vec2
}

// Surface is a quad with a depth reference point.
type Surface struct {
	Corners [4]Corner
	Center  math3d.Vec3
	Dist    float64
	Top     bool
}

// Geometry is the arena of data points built from one dataset. Order is
// the paint order of the last frame.
type Geometry struct {
	Style  Style
	Points []DataPoint
	Order  []int
}

// Len returns the number of points.
func (g *Geometry) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Points)
}

// link returns the point at index i, or nil for NoLink.
func (g *Geometry) link(i int) *DataPoint {
	if i < 0 || i >= len(g.Points) {
		return nil
	}
	return &g.Points[i]
}
