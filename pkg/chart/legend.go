package chart

import (
	"math"

	"github.com/taigrr/plot3d/pkg/math3d"
	"github.com/taigrr/plot3d/pkg/render"
)

const (
	legendWidth    = 20 // px
	legendTick     = 5  // px
	legendFontSize = 14 // px
)

type legendBox struct {
	left, top, right, bottom float64
}

func (b legendBox) height() float64 { return b.bottom - b.top }

func newLegendBox(f *Frame, width float64) legendBox {
	height := math.Max(float64(f.Canvas.Height())*0.25, 100)
	right := float64(f.Canvas.Width()) - f.Options.Margin
	top := f.Options.Margin
	return legendBox{left: right - width, top: top, right: right, bottom: top + height}
}

// legendRange returns the range a legend describes and its default label.
func legendRange(f *Frame, byValue bool) (Range, string) {
	if byValue && f.Layout.Value != nil {
		return *f.Layout.Value, "value"
	}
	return f.Layout.Z.Range, "z"
}

// drawColorLegend draws a hue bar, blue at the bottom and red at the top.
func drawColorLegend(f *Frame, byValue bool) {
	box := newLegendBox(f, legendWidth)
	c := f.Canvas
	c.SetLineWidth(1)

	h := box.height()
	for y := 0.0; y < h; y++ {
		hue := y / (h - 1) * 240
		f.line(math3d.V2(box.left, box.top+y), math3d.V2(box.right, box.top+y), HSV(hue, 1, 1))
	}

	c.SetStrokeColor(f.Palette.Axis)
	c.BeginPath()
	c.MoveTo(box.left, box.top)
	c.LineTo(box.right, box.top)
	c.LineTo(box.right, box.bottom)
	c.LineTo(box.left, box.bottom)
	c.ClosePath()
	c.Stroke()

	rng, label := legendRange(f, byValue)
	drawLegendTicks(f, box, rng, label)
}

// drawSizeLegend draws a trapezoid that narrows from width at the top to
// widthMin at the bottom.
func drawSizeLegend(f *Frame, widthMin, width float64) {
	box := newLegendBox(f, width)
	c := f.Canvas
	c.SetLineWidth(1)
	c.SetFillColor(f.Palette.Fill)
	c.SetStrokeColor(f.Palette.Stroke)
	c.BeginPath()
	c.MoveTo(box.left, box.top)
	c.LineTo(box.right, box.top)
	c.LineTo(box.left+widthMin, box.bottom)
	c.LineTo(box.left, box.bottom)
	c.ClosePath()
	c.Fill()
	c.Stroke()

	rng, label := legendRange(f, true)
	drawLegendTicks(f, box, rng, label)
}

func drawLegendTicks(f *Frame, box legendBox, rng Range, label string) {
	c := f.Canvas
	c.SetFontSize(legendFontSize)
	c.SetLineWidth(1)

	step := NewStepNumber(rng.Min, rng.Max, rng.Range()/5, true)
	for step.StartAtOrAbove(); !step.End(); step.Next() {
		if !step.InRange() {
			continue
		}
		v := step.Current()
		y := box.bottom - (v-rng.Min)/rng.Range()*box.height()
		f.line(math3d.V2(box.left-legendTick, y), math3d.V2(box.left, y), f.Palette.Axis)

		c.SetTextAlign(render.AlignRight)
		c.SetTextBaseline(render.BaselineMiddle)
		c.SetFillColor(f.Palette.Axis)
		c.FillText(defaultValueLabel(v), box.left-2*legendTick, y)
	}

	if f.Options.LegendLabel != "" {
		label = f.Options.LegendLabel
	}
	c.SetTextAlign(render.AlignRight)
	c.SetTextBaseline(render.BaselineTop)
	c.SetFillColor(f.Palette.Axis)
	c.FillText(label, box.right, box.bottom+f.Options.Margin)
}
