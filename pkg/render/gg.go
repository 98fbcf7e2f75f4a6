package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var regular *truetype.Font

// init sets up the font used for chart labels.
func init() {
	var err error
	regular, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// ggCanvas implements the drawing operations of Canvas on a gg context.
// The path is kept by the pen and replayed into gg for every Fill and
// Stroke, since gg consumes its path on each.
type ggCanvas struct {
	pen

	dc *gg.Context

	// face, when set, is used for all text regardless of the font size.
	face  font.Face
	faces map[float64]font.Face
}

func newGGCanvas(dc *gg.Context) ggCanvas {
	return ggCanvas{
		pen:   newPen(),
		dc:    dc,
		faces: make(map[float64]font.Face),
	}
}

// Width returns the canvas width in pixels.
func (c *ggCanvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *ggCanvas) Height() int { return c.dc.Height() }

// Clear fills the whole canvas with a solid color.
func (c *ggCanvas) Clear(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

func (c *ggCanvas) trace() {
	c.dc.ClearPath()
	for _, sp := range c.subpaths {
		if len(sp) == 0 {
			continue
		}
		c.dc.MoveTo(sp[0].X, sp[0].Y)
		for _, p := range sp[1:] {
			c.dc.LineTo(p.X, p.Y)
		}
	}
}

// Stroke strokes the current path.
func (c *ggCanvas) Stroke() {
	c.trace()
	c.dc.SetColor(c.strokeColor)
	c.dc.SetLineWidth(c.lineWidth)
	c.dc.SetLineCapRound()
	c.dc.SetLineJoinRound()
	c.dc.Stroke()
}

// Fill fills the current path using the even-odd rule.
func (c *ggCanvas) Fill() {
	c.trace()
	c.dc.SetColor(c.fillColor)
	c.dc.SetFillRuleEvenOdd()
	c.dc.Fill()
}

// FillText draws text anchored according to the text align and baseline.
func (c *ggCanvas) FillText(text string, x, y float64) {
	face := c.face
	if face == nil {
		var ok bool
		if face, ok = c.faces[c.fontSize]; !ok {
			face = truetype.NewFace(regular, &truetype.Options{Size: c.fontSize})
			c.faces[c.fontSize] = face
		}
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(c.fillColor)
	ax, ay := c.alignFactors()
	c.dc.DrawStringAnchored(text, x, y, ax, ay)
}

// savePNG encodes img to path.
func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create png %q", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close png %q", path)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "encode png %q", path)
	}
	return nil
}
