package chart

import (
	"image/color"
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/taigrr/plot3d/pkg/dataset"
	"github.com/taigrr/plot3d/pkg/math3d"
	"github.com/taigrr/plot3d/pkg/render"
)

// Style selects how records are drawn.
type Style string

// Available styles.
const (
	StyleDot      Style = "dot"
	StyleDotLine  Style = "dot-line"
	StyleDotColor Style = "dot-color"
	StyleDotSize  Style = "dot-size"
	StyleLine     Style = "line"
	StyleGrid     Style = "grid"
	StyleSurface  Style = "surface"
	StyleBar      Style = "bar"
	StyleBarColor Style = "bar-color"
	StyleBarSize  Style = "bar-size"
)

// Renderer turns records into data points and paints them. There is one
// Renderer per Style.
type Renderer interface {
	// AdjustRanges widens the data ranges for primitives with extent.
	AdjustRanges(recs []dataset.Record, l *Layout, opts *Options)
	// BuildPoints creates the data points and their links.
	BuildPoints(recs []dataset.Record, l Layout) []DataPoint
	// Sorts reports whether points are painted back to front.
	Sorts() bool
	// Prepare computes per frame geometry after the points are translated.
	Prepare(f *Frame)
	// Colors returns the colors of a point.
	Colors(f *Frame, p *DataPoint) Colors
	// Paint draws one point.
	Paint(f *Frame, p *DataPoint)
	// DrawLegend draws the legend, if the style has one.
	DrawLegend(f *Frame)
	// HitTest returns the index of the point under at.
	HitTest(f *Frame, at math3d.Vec2) (int, bool)
	// NeedsValue reports whether the style encodes the value column.
	NeedsValue() bool
}

var renderers = map[Style]Renderer{
	StyleDot:      &dotRenderer{coloring: colorByZ},
	StyleDotLine:  &dotRenderer{coloring: colorByZ, dropLine: true},
	StyleDotColor: &dotRenderer{coloring: colorByValue},
	StyleDotSize:  &dotRenderer{coloring: colorFixed, sized: true},
	StyleLine:     &lineRenderer{},
	StyleGrid:     &matrixRenderer{},
	StyleSurface:  &matrixRenderer{surface: true},
	StyleBar:      &barRenderer{coloring: colorByZ},
	StyleBarColor: &barRenderer{coloring: colorByValue},
	StyleBarSize:  &barRenderer{coloring: colorFixed, sized: true},
}

// ParseStyle returns the style with the given name.
func ParseStyle(name string) (Style, error) {
	s := Style(name)
	if _, ok := renderers[s]; !ok {
		return "", errors.Wrapf(ErrUnknownStyle, "%q", name)
	}
	return s, nil
}

// Styles returns all style names in sorted order.
func Styles() []Style {
	out := make([]Style, 0, len(renderers))
	for s := range renderers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RendererFor returns the renderer for a style.
func RendererFor(s Style) (Renderer, error) {
	r, ok := renderers[s]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownStyle, "%q", s)
	}
	return r, nil
}

// BuildGeometry creates the data points for recs in the given style.
func BuildGeometry(style Style, recs []dataset.Record, l Layout) (*Geometry, error) {
	r, err := RendererFor(style)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.Wrap(ErrInvalidData, "no records")
	}
	return &Geometry{Style: style, Points: r.BuildPoints(recs, l)}, nil
}

type coloring int

const (
	colorByZ coloring = iota
	colorByValue
	colorFixed
)

// Frame is everything a renderer needs to paint one frame.
type Frame struct {
	Canvas   render.Canvas
	View     View
	Layout   Layout
	Options  *Options
	Palette  Palette
	Geometry *Geometry
}

func (f *Frame) colors(c coloring, p *DataPoint) Colors {
	switch c {
	case colorByValue:
		if f.Layout.Value != nil {
			return HueColors(HueFromValue(p.Value, f.Layout.Value.Min, f.Layout.Scale.Value))
		}
	case colorFixed:
		return Colors{Fill: f.Palette.Fill, Border: f.Palette.Stroke}
	}
	return HueColors(f.zHue(p.Point.Z))
}

func (f *Frame) zHue(z float64) float64 {
	return HueFromZ(z, f.Layout.Z.Range.Min, f.Layout.Scale.Z, f.Options.VerticalRatio)
}

// valueFraction returns the position of p's value within the value range.
func (f *Frame) valueFraction(p *DataPoint) float64 {
	if f.Layout.Value == nil {
		return 1
	}
	return clamp01((p.Value - f.Layout.Value.Min) / f.Layout.Value.Range())
}

func (f *Frame) strokeWidth(p *DataPoint) float64 {
	return f.View.StrokeWidth(f.Options.DataColor.StrokeWidth, p.Trans)
}

func (f *Frame) dotSize() float64 {
	return f.View.Width * f.Options.DotSizeRatio
}

func (f *Frame) line(from, to math3d.Vec2, c color.RGBA) {
	f.Canvas.SetStrokeColor(c)
	f.Canvas.BeginPath()
	f.Canvas.MoveTo(from.X, from.Y)
	f.Canvas.LineTo(to.X, to.Y)
	f.Canvas.Stroke()
}

func (f *Frame) line3d(from, to math3d.Vec3, c color.RGBA) {
	f.line(f.View.Project(from), f.View.Project(to), c)
}

const circleSegments = 24

// circle adds a closed circle to the current path.
func circle(c render.Canvas, center math3d.Vec2, r float64) {
	c.MoveTo(center.X+r, center.Y)
	for i := 1; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		c.LineTo(center.X+r*math.Cos(a), center.Y+r*math.Sin(a))
	}
	c.ClosePath()
}

// pointsFromRecords creates one data point per record in input order.
func pointsFromRecords(recs []dataset.Record, l Layout) []DataPoint {
	points := make([]DataPoint, len(recs))
	for i, rec := range recs {
		v, ok := rec.Value()
		points[i] = newDataPoint(rec.Point(), v, ok, l.Z.Range.Min)
	}
	return points
}
