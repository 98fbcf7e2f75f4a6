// Package render provides the drawing surfaces charts are painted on: an
// in-memory framebuffer that can be shown in a terminal, an anti-aliased
// image canvas backed by gg, and a recorder for inspecting draw calls.
package render

import (
	"image/color"

	"github.com/taigrr/plot3d/pkg/math3d"
)

// TextAlign controls where text is anchored horizontally.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline controls where text is anchored vertically.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

// Canvas is a 2D drawing surface with a current path and mutable pen state,
// modelled on the HTML canvas 2D context.
type Canvas interface {
	Width() int
	Height() int
	Clear(c color.Color)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Stroke()
	Fill()
	FillText(text string, x, y float64)

	SetLineWidth(w float64)
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)
	SetFontSize(px float64)
}

// pen holds the path and drawing state shared by every Canvas
// implementation in this package.
type pen struct {
	lineWidth   float64
	strokeColor color.RGBA
	fillColor   color.RGBA
	align       TextAlign
	baseline    TextBaseline
	fontSize    float64

	subpaths [][]math3d.Vec2
}

func newPen() pen {
	return pen{
		lineWidth:   1,
		strokeColor: ColorBlack,
		fillColor:   ColorBlack,
		fontSize:    14,
	}
}

func (p *pen) BeginPath() {
	p.subpaths = p.subpaths[:0]
}

func (p *pen) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, []math3d.Vec2{math3d.V2(x, y)})
}

func (p *pen) LineTo(x, y float64) {
	if len(p.subpaths) == 0 {
		p.MoveTo(x, y)
		return
	}
	last := len(p.subpaths) - 1
	p.subpaths[last] = append(p.subpaths[last], math3d.V2(x, y))
}

func (p *pen) ClosePath() {
	if len(p.subpaths) == 0 {
		return
	}
	last := p.subpaths[len(p.subpaths)-1]
	if len(last) > 1 && last[0] != last[len(last)-1] {
		p.subpaths[len(p.subpaths)-1] = append(last, last[0])
	}
}

func (p *pen) SetLineWidth(w float64)         { p.lineWidth = w }
func (p *pen) SetStrokeColor(c color.Color)   { p.strokeColor = toRGBA(c) }
func (p *pen) SetFillColor(c color.Color)     { p.fillColor = toRGBA(c) }
func (p *pen) SetTextAlign(a TextAlign)       { p.align = a }
func (p *pen) SetTextBaseline(b TextBaseline) { p.baseline = b }
func (p *pen) SetFontSize(px float64)         { p.fontSize = px }

// alignFactors returns the fraction of the text width and height to shift
// by, matching gg's DrawStringAnchored convention.
func (p *pen) alignFactors() (ax, ay float64) {
	switch p.align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	switch p.baseline {
	case BaselineTop:
		ay = 1
	case BaselineMiddle:
		ay = 0.5
	}
	return ax, ay
}
