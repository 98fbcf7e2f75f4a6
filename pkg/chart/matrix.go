package chart

import (
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/taigrr/plot3d/pkg/dataset"
	"github.com/taigrr/plot3d/pkg/math3d"
)

// matrixRenderer places records on the grid of their distinct x and y
// values and links neighboring cells. It draws a wireframe grid, or a
// filled surface when surface is set.
type matrixRenderer struct {
	surface bool
}

func (m *matrixRenderer) AdjustRanges([]dataset.Record, *Layout, *Options) {}

func (m *matrixRenderer) BuildPoints(recs []dataset.Record, l Layout) []DataPoint {
	points := pointsFromRecords(recs, l)

	xs := distinct(points, func(p DataPoint) float64 { return p.Point.X })
	ys := distinct(points, func(p DataPoint) float64 { return p.Point.Y })

	grid := make([][]int, len(xs))
	for i := range grid {
		grid[i] = make([]int, len(ys))
		for j := range grid[i] {
			grid[i][j] = NoLink
		}
	}
	for i, p := range points {
		xi, _ := slices.BinarySearch(xs, p.Point.X)
		yi, _ := slices.BinarySearch(ys, p.Point.Y)
		grid[xi][yi] = i
	}

	for xi := range grid {
		for yi, i := range grid[xi] {
			if i == NoLink {
				continue
			}
			p := &points[i]
			if xi+1 < len(xs) {
				p.Right = grid[xi+1][yi]
			}
			if yi+1 < len(ys) {
				p.Top = grid[xi][yi+1]
			}
			if xi+1 < len(xs) && yi+1 < len(ys) {
				p.Cross = grid[xi+1][yi+1]
			}
		}
	}
	return points
}

// distinct returns the sorted distinct values of key over items.
func distinct[T any](items []T, key func(T) float64) []float64 {
	values := lo.Uniq(lo.Map(items, func(item T, _ int) float64 { return key(item) }))
	slices.Sort(values)
	return values
}

func (m *matrixRenderer) Sorts() bool { return true }

func (m *matrixRenderer) Prepare(*Frame) {}

func (m *matrixRenderer) NeedsValue() bool { return false }

func (m *matrixRenderer) Colors(f *Frame, p *DataPoint) Colors {
	return f.colors(colorByZ, p)
}

func (m *matrixRenderer) Paint(f *Frame, p *DataPoint) {
	if m.surface {
		m.paintSurface(f, p)
		return
	}
	m.gridLine(f, p, f.Geometry.link(p.Right))
	m.gridLine(f, p, f.Geometry.link(p.Top))
}

func (m *matrixRenderer) gridLine(f *Frame, from, to *DataPoint) {
	if to == nil {
		return
	}
	hue := f.zHue((from.Point.Z + to.Point.Z) / 2)
	f.Canvas.SetLineWidth(f.strokeWidth(from) * 2)
	f.line(from.Screen, to.Screen, HSV(hue, 1, 1))
}

func (m *matrixRenderer) paintSurface(f *Frame, p *DataPoint) {
	g := f.Geometry
	right, top, cross := g.link(p.Right), g.link(p.Top), g.link(p.Cross)
	if right == nil || top == nil || cross == nil {
		return
	}

	topVisible := true
	var normal math3d.Vec3
	if f.Options.ShowGrayBottom || f.Options.ShowShadow {
		normal = cross.Trans.Sub(p.Trans).Cross(top.Trans.Sub(right.Trans))
		topVisible = normal.Z > 0
	}

	fill, stroke := f.Palette.Gray, f.Palette.Axis
	if topVisible {
		zAvg := (p.Point.Z + right.Point.Z + top.Point.Z + cross.Point.Z) / 4
		hue := f.zHue(zAvg)
		if f.Options.ShowShadow {
			v := math.Min(1+normal.X/normal.Len()/2, 1)
			fill = HSV(hue, 1, v)
			stroke = fill
		} else {
			fill = HSV(hue, 1, 1)
		}
	}

	c := f.Canvas
	c.SetLineWidth(f.strokeWidth(p))
	c.SetFillColor(fill)
	c.SetStrokeColor(stroke)
	c.BeginPath()
	c.MoveTo(p.Screen.X, p.Screen.Y)
	c.LineTo(right.Screen.X, right.Screen.Y)
	c.LineTo(cross.Screen.X, cross.Screen.Y)
	c.LineTo(top.Screen.X, top.Screen.Y)
	c.ClosePath()
	c.Fill()
	c.Stroke()
}

func (m *matrixRenderer) DrawLegend(f *Frame) {
	drawColorLegend(f, false)
}

func (m *matrixRenderer) HitTest(f *Frame, at math3d.Vec2) (int, bool) {
	return nearestPoint(f, at)
}
