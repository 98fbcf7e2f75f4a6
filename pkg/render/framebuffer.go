package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Framebuffer is a 2D array of pixels that can be rendered to the terminal.
// We use double vertical resolution by using half-block characters (▀▄).
// It draws through gg directly into its pixel buffer, with a fixed bitmap
// font sized for terminal resolution.
type Framebuffer struct {
	ggCanvas

	img *image.RGBA
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// Height should be 2x the desired terminal rows for half-block rendering.
func NewFramebuffer(width, height int) *Framebuffer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fb := &Framebuffer{
		ggCanvas: newGGCanvas(gg.NewContextForRGBA(img)),
		img:      img,
	}
	fb.face = basicfont.Face7x13
	return fb
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if !image.Pt(x, y).In(fb.img.Rect) {
		return
	}
	fb.img.SetRGBA(x, y, c)
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if !image.Pt(x, y).In(fb.img.Rect) {
		return color.RGBA{}
	}
	return fb.img.RGBAAt(x, y)
}

// Image returns the pixel buffer. It is shared with the framebuffer, not
// copied.
func (fb *Framebuffer) Image() *image.RGBA { return fb.img }

// SavePNG writes the framebuffer to path.
func (fb *Framebuffer) SavePNG(path string) error {
	return savePNG(path, fb.img)
}
