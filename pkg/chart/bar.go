package chart

import (
	"math"

	"github.com/taigrr/plot3d/pkg/dataset"
	"github.com/taigrr/plot3d/pkg/math3d"
)

// barRenderer extrudes each record into a box standing on the z floor. It
// serves bar, bar-color and bar-size.
type barRenderer struct {
	coloring coloring
	sized    bool
}

// AdjustRanges sets the bar widths, defaulting to the smallest spacing of
// the distinct x and y values, and widens the x and y ranges by half a bar.
func (b *barRenderer) AdjustRanges(recs []dataset.Record, l *Layout, opts *Options) {
	l.XBarWidth = barWidth(recs, opts.XBarWidth, func(r dataset.Record) float64 { return r.Point().X })
	l.YBarWidth = barWidth(recs, opts.YBarWidth, func(r dataset.Record) float64 { return r.Point().Y })

	l.X.Range.Expand(l.XBarWidth / 2)
	l.Y.Range.Expand(l.YBarWidth / 2)
}

func barWidth(recs []dataset.Record, configured *float64, key func(dataset.Record) float64) float64 {
	if configured != nil {
		return *configured
	}
	xs := distinct(recs, key)

	width := math.Inf(1)
	for i := 1; i < len(xs); i++ {
		width = math.Min(width, xs[i]-xs[i-1])
	}
	if math.IsInf(width, 1) {
		return 1
	}
	return width
}

func (b *barRenderer) BuildPoints(recs []dataset.Record, l Layout) []DataPoint {
	return pointsFromRecords(recs, l)
}

func (b *barRenderer) Sorts() bool { return true }

func (b *barRenderer) NeedsValue() bool { return b.coloring == colorByValue || b.sized }

// Prepare builds the faces of every bar for the current view.
func (b *barRenderer) Prepare(f *Frame) {
	for i := range f.Geometry.Points {
		p := &f.Geometry.Points[i]
		xWidth, yWidth := f.Layout.XBarWidth/2, f.Layout.YBarWidth/2
		if b.sized {
			factor := 0.2 + 0.8*f.valueFraction(p)
			xWidth *= factor
			yWidth *= factor
		}
		p.Surfaces = box(f.View, p.Point, xWidth, yWidth, f.Layout.Z.Range.Min)
	}
}

func (b *barRenderer) Colors(f *Frame, p *DataPoint) Colors {
	return f.colors(b.coloring, p)
}

// Paint draws the three farthest faces of a bar in back to front order;
// the nearest two are hidden behind them.
func (b *barRenderer) Paint(f *Frame, p *DataPoint) {
	colors := b.Colors(f, p)
	c := f.Canvas
	c.SetLineWidth(f.strokeWidth(p))
	c.SetStrokeColor(colors.Border)
	c.SetFillColor(colors.Fill)

	for j := 2; j < len(p.Surfaces); j++ {
		corners := p.Surfaces[j].Corners
		c.BeginPath()
		c.MoveTo(corners[3].Screen.X, corners[3].Screen.Y)
		for _, k := range []int{0, 1, 2, 3} {
			c.LineTo(corners[k].Screen.X, corners[k].Screen.Y)
		}
		c.Fill()
		c.Stroke()
	}
}

func (b *barRenderer) DrawLegend(f *Frame) {
	switch {
	case b.sized:
		drawSizeLegend(f, 0, legendWidth)
	case b.coloring == colorByValue:
		drawColorLegend(f, true)
	default:
		drawColorLegend(f, false)
	}
}

// HitTest returns the front-most bar containing at. Bars are scanned in
// reverse paint order and each face is split into two triangles.
func (b *barRenderer) HitTest(f *Frame, at math3d.Vec2) (int, bool) {
	g := f.Geometry
	for o := len(g.Order) - 1; o >= 0; o-- {
		i := g.Order[o]
		surfaces := g.Points[i].Surfaces
		for s := len(surfaces) - 1; s >= 0; s-- {
			c := surfaces[s].Corners
			if insideTriangle(at, c[0].Screen, c[1].Screen, c[2].Screen) ||
				insideTriangle(at, c[2].Screen, c[3].Screen, c[0].Screen) {
				return i, true
			}
		}
	}
	return -1, false
}
