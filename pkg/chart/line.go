package chart

import (
	"github.com/taigrr/plot3d/pkg/dataset"
	"github.com/taigrr/plot3d/pkg/math3d"
)

// lineRenderer connects the records in input order.
type lineRenderer struct{}

func (lineRenderer) AdjustRanges([]dataset.Record, *Layout, *Options) {}

func (lineRenderer) BuildPoints(recs []dataset.Record, l Layout) []DataPoint {
	points := pointsFromRecords(recs, l)
	for i := 1; i < len(points); i++ {
		points[i-1].Next = i
	}
	return points
}

// Sorts is false: the polyline is drawn in input order.
func (lineRenderer) Sorts() bool { return false }

func (lineRenderer) Prepare(*Frame) {}

func (lineRenderer) NeedsValue() bool { return false }

func (lineRenderer) Colors(f *Frame, _ *DataPoint) Colors {
	return Colors{Fill: f.Palette.Fill, Border: f.Palette.Stroke}
}

func (l lineRenderer) Paint(f *Frame, p *DataPoint) {
	next := f.Geometry.link(p.Next)
	if next == nil {
		return
	}
	f.Canvas.SetLineWidth(f.strokeWidth(p))
	f.line(p.Screen, next.Screen, l.Colors(f, p).Border)
}

func (lineRenderer) DrawLegend(*Frame) {}

func (lineRenderer) HitTest(f *Frame, at math3d.Vec2) (int, bool) {
	return nearestPoint(f, at)
}
