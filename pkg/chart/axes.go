package chart

import (
	"math"

	"github.com/taigrr/plot3d/pkg/math3d"
	"github.com/taigrr/plot3d/pkg/render"
)

// drawAxes draws the floor grid, the axis box edges, the vertical z axis
// and all tick and axis labels. Label placement follows the horizontal arm
// angle so labels stay on the sides facing the camera.
func drawAxes(f *Frame, armAngle float64) {
	c := f.Canvas
	l := f.Layout
	xr, yr, zr := l.X.Range, l.Y.Range, l.Z.Range
	xLabel, yLabel, zLabel := f.Options.valueLabels()

	c.SetFontSize(24 / f.View.ArmLength)

	gridLenX := 0.025 / l.Scale.X
	gridLenY := 0.025 / l.Scale.Y
	textMargin := 5 / f.View.ArmLength
	armX, armY := math.Cos(armAngle), math.Sin(armAngle)

	// x grid lines
	c.SetLineWidth(1)
	step := NewStepNumber(xr.Min, xr.Max, l.X.Step, l.X.PrettyStep)
	for step.StartAtOrAbove(); !step.End(); step.Next() {
		if !step.InRange() {
			continue
		}
		x := step.Current()
		if f.Options.ShowGrid {
			f.line3d(math3d.V3(x, yr.Min, zr.Min), math3d.V3(x, yr.Max, zr.Min), f.Palette.Grid)
		} else {
			f.line3d(math3d.V3(x, yr.Min, zr.Min), math3d.V3(x, yr.Min+gridLenX, zr.Min), f.Palette.Axis)
			f.line3d(math3d.V3(x, yr.Max, zr.Min), math3d.V3(x, yr.Max-gridLenX, zr.Min), f.Palette.Axis)
		}

		y := yr.Max
		if armX > 0 {
			y = yr.Min
		}
		drawLabelX(f, math3d.V3(x, y, zr.Min), "  "+xLabel(x)+"  ", armAngle, textMargin)
	}

	// y grid lines
	c.SetLineWidth(1)
	step = NewStepNumber(yr.Min, yr.Max, l.Y.Step, l.Y.PrettyStep)
	for step.StartAtOrAbove(); !step.End(); step.Next() {
		if !step.InRange() {
			continue
		}
		y := step.Current()
		if f.Options.ShowGrid {
			f.line3d(math3d.V3(xr.Min, y, zr.Min), math3d.V3(xr.Max, y, zr.Min), f.Palette.Grid)
		} else {
			f.line3d(math3d.V3(xr.Min, y, zr.Min), math3d.V3(xr.Min+gridLenY, y, zr.Min), f.Palette.Axis)
			f.line3d(math3d.V3(xr.Max, y, zr.Min), math3d.V3(xr.Max-gridLenY, y, zr.Min), f.Palette.Axis)
		}

		x := xr.Max
		if armY > 0 {
			x = xr.Min
		}
		drawLabelY(f, math3d.V3(x, y, zr.Min), "  "+yLabel(y)+"  ", armAngle, textMargin)
	}

	// z ticks and the vertical axis, on the corner facing the camera
	xText := xr.Max
	if armX > 0 {
		xText = xr.Min
	}
	yText := yr.Max
	if armY < 0 {
		yText = yr.Min
	}

	c.SetLineWidth(1)
	step = NewStepNumber(zr.Min, zr.Max, l.Z.Step, l.Z.PrettyStep)
	for step.StartAtOrAbove(); !step.End(); step.Next() {
		if !step.InRange() {
			continue
		}
		z := step.Current()
		from := math3d.V3(xText, yText, z)
		from2d := f.View.Project(from)
		f.line(from2d, math3d.V2(from2d.X-textMargin, from2d.Y), f.Palette.Axis)
		drawLabelZ(f, from, zLabel(z)+" ", 5)
	}
	f.line3d(math3d.V3(xText, yText, zr.Min), math3d.V3(xText, yText, zr.Max), f.Palette.Axis)

	// box edges on the floor
	f.line3d(math3d.V3(xr.Min, yr.Min, zr.Min), math3d.V3(xr.Max, yr.Min, zr.Min), f.Palette.Axis)
	f.line3d(math3d.V3(xr.Min, yr.Max, zr.Min), math3d.V3(xr.Max, yr.Max, zr.Min), f.Palette.Axis)
	f.line3d(math3d.V3(xr.Min, yr.Min, zr.Min), math3d.V3(xr.Min, yr.Max, zr.Min), f.Palette.Axis)
	f.line3d(math3d.V3(xr.Max, yr.Min, zr.Min), math3d.V3(xr.Max, yr.Max, zr.Min), f.Palette.Axis)

	if label := f.Options.XLabel; label != "" {
		yOffset := 0.1 / l.Scale.Y
		y := yr.Max + yOffset
		if armX > 0 {
			y = yr.Min - yOffset
		}
		drawLabelX(f, math3d.V3(xr.Center(), y, zr.Min), label, armAngle, 0)
	}

	if label := f.Options.YLabel; label != "" {
		xOffset := 0.1 / l.Scale.X
		x := xr.Max + xOffset
		if armY > 0 {
			x = xr.Min - xOffset
		}
		drawLabelY(f, math3d.V3(x, yr.Center(), zr.Min), label, armAngle, 0)
	}

	if label := f.Options.ZLabel; label != "" {
		drawLabelZ(f, math3d.V3(xText, yText, zr.Center()), label, 30)
	}
}

func drawLabelX(f *Frame, p math3d.Vec3, text string, armAngle, yMargin float64) {
	p2 := f.View.Project(p)
	switch {
	case math.Cos(armAngle*2) > 0:
		f.Canvas.SetTextAlign(render.AlignCenter)
		f.Canvas.SetTextBaseline(render.BaselineTop)
		p2.Y += yMargin
	case math.Sin(armAngle*2) < 0:
		f.Canvas.SetTextAlign(render.AlignRight)
		f.Canvas.SetTextBaseline(render.BaselineMiddle)
	default:
		f.Canvas.SetTextAlign(render.AlignLeft)
		f.Canvas.SetTextBaseline(render.BaselineMiddle)
	}
	f.Canvas.SetFillColor(f.Palette.Axis)
	f.Canvas.FillText(text, p2.X, p2.Y)
}

func drawLabelY(f *Frame, p math3d.Vec3, text string, armAngle, yMargin float64) {
	p2 := f.View.Project(p)
	switch {
	case math.Cos(armAngle*2) < 0:
		f.Canvas.SetTextAlign(render.AlignCenter)
		f.Canvas.SetTextBaseline(render.BaselineTop)
		p2.Y += yMargin
	case math.Sin(armAngle*2) > 0:
		f.Canvas.SetTextAlign(render.AlignRight)
		f.Canvas.SetTextBaseline(render.BaselineMiddle)
	default:
		f.Canvas.SetTextAlign(render.AlignLeft)
		f.Canvas.SetTextBaseline(render.BaselineMiddle)
	}
	f.Canvas.SetFillColor(f.Palette.Axis)
	f.Canvas.FillText(text, p2.X, p2.Y)
}

func drawLabelZ(f *Frame, p math3d.Vec3, text string, offset float64) {
	p2 := f.View.Project(p)
	f.Canvas.SetTextAlign(render.AlignRight)
	f.Canvas.SetTextBaseline(render.BaselineMiddle)
	f.Canvas.SetFillColor(f.Palette.Axis)
	f.Canvas.FillText(text, p2.X-offset, p2.Y)
}
