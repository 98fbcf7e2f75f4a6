package chart

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Colors is the fill and border color of a primitive.
type Colors struct {
	Fill   color.RGBA
	Border color.RGBA
}

// HSV converts hue (degrees), saturation and value to an opaque color.
// Hues outside [0, 360) map to black.
func HSV(h, s, v float64) color.RGBA {
	r, g, b := colorful.Hsv(h, s, v).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// HueColors returns the fill and the darker border color for a hue.
func HueColors(hue float64) Colors {
	return Colors{Fill: HSV(hue, 1, 1), Border: HSV(hue, 1, 0.8)}
}

// HueFromZ maps z onto a hue: 240 (blue) at zMin, 0 (red) at the top of the
// z range. The vertical ratio folded into scaleZ is divided out again.
func HueFromZ(z, zMin, scaleZ, verticalRatio float64) float64 {
	return (1 - (z-zMin)*scaleZ/verticalRatio) * 240
}

// HueFromValue maps value onto a hue: 240 (blue) at valueMin, 0 (red) at
// the top of the value range.
func HueFromValue(value, valueMin, scaleValue float64) float64 {
	return (1 - (value-valueMin)*scaleValue) * 240
}

// Palette holds the resolved colors of a chart.
type Palette struct {
	Fill       color.RGBA
	Stroke     color.RGBA
	Axis       color.RGBA
	Grid       color.RGBA
	Background color.RGBA
	Gray       color.RGBA
	Info       color.RGBA
}
