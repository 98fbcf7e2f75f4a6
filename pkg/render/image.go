package render

import (
	"image"

	"github.com/fogleman/gg"
)

// ImageCanvas is an anti-aliased Canvas for raster output such as PNG
// files.
type ImageCanvas struct {
	ggCanvas
}

// NewImageCanvas creates an image canvas with the given size in pixels.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{ggCanvas: newGGCanvas(gg.NewContext(width, height))}
}

// Image returns the rendered image.
func (c *ImageCanvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the rendered image to path.
func (c *ImageCanvas) SavePNG(path string) error {
	return savePNG(path, c.dc.Image())
}
