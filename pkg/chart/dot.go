package chart

import (
	"math"

	"github.com/taigrr/plot3d/pkg/dataset"
	"github.com/taigrr/plot3d/pkg/math3d"
)

// dotRenderer draws one circle per record. It serves dot, dot-line,
// dot-color and dot-size.
type dotRenderer struct {
	coloring coloring
	sized    bool
	dropLine bool
}

func (d *dotRenderer) AdjustRanges([]dataset.Record, *Layout, *Options) {}

func (d *dotRenderer) BuildPoints(recs []dataset.Record, l Layout) []DataPoint {
	return pointsFromRecords(recs, l)
}

func (d *dotRenderer) Sorts() bool { return true }

func (d *dotRenderer) Prepare(*Frame) {}

func (d *dotRenderer) NeedsValue() bool { return d.coloring == colorByValue || d.sized }

func (d *dotRenderer) Colors(f *Frame, p *DataPoint) Colors {
	return f.colors(d.coloring, p)
}

func (d *dotRenderer) Paint(f *Frame, p *DataPoint) {
	if d.dropLine {
		f.Canvas.SetLineWidth(1)
		f.line(f.View.Project(p.Bottom), p.Screen, f.Palette.Grid)
	}

	size := f.dotSize()
	if d.sized {
		size = size/2 + 2*size*f.valueFraction(p)
	}
	radius := math.Max(0, f.View.DotRadius(size, p.Trans))

	colors := d.Colors(f, p)
	f.Canvas.SetLineWidth(f.strokeWidth(p))
	f.Canvas.SetStrokeColor(colors.Border)
	f.Canvas.SetFillColor(colors.Fill)
	f.Canvas.BeginPath()
	circle(f.Canvas, p.Screen, radius)
	f.Canvas.Fill()
	f.Canvas.Stroke()
}

func (d *dotRenderer) DrawLegend(f *Frame) {
	switch {
	case d.sized:
		size := f.dotSize()
		drawSizeLegend(f, size/2, size/2+2*size)
	case d.coloring == colorByValue:
		drawColorLegend(f, true)
	default:
		drawColorLegend(f, false)
	}
}

func (d *dotRenderer) HitTest(f *Frame, at math3d.Vec2) (int, bool) {
	return nearestPoint(f, at)
}
