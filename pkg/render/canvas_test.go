package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var (
	white = RGB(255, 255, 255)
	red   = RGB(255, 0, 0)
)

func square(c Canvas, x0, y0, x1, y1 float64) {
	c.BeginPath()
	c.MoveTo(x0, y0)
	c.LineTo(x1, y0)
	c.LineTo(x1, y1)
	c.LineTo(x0, y1)
	c.ClosePath()
}

func TestFramebufferFill(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.Clear(white)
	fb.SetFillColor(red)
	square(fb, 2, 2, 6, 6)
	fb.Fill()

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"top left inside", 3, 3, red},
		{"bottom right inside", 4, 4, red},
		{"left of square", 0, 3, white},
		{"right of square", 7, 3, white},
		{"below square", 3, 7, white},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fb.GetPixel(tc.x, tc.y); got != tc.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestFramebufferStroke(t *testing.T) {
	t.Run("thin", func(t *testing.T) {
		fb := NewFramebuffer(10, 10)
		fb.SetStrokeColor(red)
		fb.BeginPath()
		fb.MoveTo(0.5, 0.5)
		fb.LineTo(4.5, 0.5)
		fb.Stroke()
		for x := 1; x <= 3; x++ {
			if got := fb.GetPixel(x, 0); got != red {
				t.Errorf("pixel (%d,0) = %v, want red", x, got)
			}
		}
		if got := fb.GetPixel(7, 0); got != (color.RGBA{}) {
			t.Error("stroke ran past its end point")
		}
		if got := fb.GetPixel(2, 2); got != (color.RGBA{}) {
			t.Error("thin stroke too thick")
		}
	})

	t.Run("wide", func(t *testing.T) {
		fb := NewFramebuffer(10, 10)
		fb.SetStrokeColor(red)
		fb.SetLineWidth(4)
		fb.BeginPath()
		fb.MoveTo(2, 5)
		fb.LineTo(8, 5)
		fb.Stroke()
		if got := fb.GetPixel(5, 4); got != red {
			t.Errorf("pixel (5,4) = %v, want red", got)
		}
		if got := fb.GetPixel(5, 8); got == red {
			t.Error("wide stroke too thick")
		}
	})
}

func TestFramebufferOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(-1, 0, red)
	fb.SetPixel(4, 4, red)
	if got := fb.GetPixel(10, 10); got != (color.RGBA{}) {
		t.Errorf("out of bounds read = %v, want zero", got)
	}
	fb.SetFillColor(red)
	square(fb, -5, -5, 20, 20)
	fb.Fill()
	for y := range 4 {
		for x := range 4 {
			if got := fb.GetPixel(x, y); got != red {
				t.Fatalf("pixel (%d,%d) = %v, not filled", x, y, got)
			}
		}
	}
}

func TestFramebufferText(t *testing.T) {
	fb := NewFramebuffer(60, 20)
	fb.SetFillColor(red)
	fb.FillText("888", 5, 15)
	n := 0
	for y := range fb.Height() {
		for x := range fb.Width() {
			if fb.GetPixel(x, y).A != 0 {
				n++
			}
		}
	}
	if n == 0 {
		t.Error("FillText drew nothing")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(100, 50)
	if r.Width() != 100 || r.Height() != 50 {
		t.Fatalf("size = %dx%d", r.Width(), r.Height())
	}

	r.SetStrokeColor(red)
	r.SetLineWidth(3)
	square(r, 0, 0, 1, 1)
	r.Stroke()
	r.BeginPath()
	r.MoveTo(5, 5)
	r.Fill()
	r.FillText("hi", 1, 2)

	if got := r.Count(OpStroke); got != 1 {
		t.Errorf("strokes = %d, want 1", got)
	}
	if got := r.Count(OpFill); got != 1 {
		t.Errorf("fills = %d, want 1", got)
	}
	if got := r.Count(OpText); got != 1 {
		t.Errorf("texts = %d, want 1", got)
	}

	stroke := r.Ops[0]
	if stroke.LineWidth != 3 || stroke.Color != red {
		t.Errorf("stroke state = %v/%v", stroke.LineWidth, stroke.Color)
	}
	// closed square: 4 corners plus the closing point
	if len(stroke.Path) != 1 || len(stroke.Path[0]) != 5 {
		t.Errorf("stroke path = %v", stroke.Path)
	}
	if len(r.Ops[1].Path[0]) != 1 {
		t.Errorf("BeginPath did not reset the path: %v", r.Ops[1].Path)
	}

	r.Reset()
	if len(r.Ops) != 0 {
		t.Error("Reset kept ops")
	}
}

func TestAlignFactors(t *testing.T) {
	tests := []struct {
		align    TextAlign
		baseline TextBaseline
		ax, ay   float64
	}{
		{AlignLeft, BaselineAlphabetic, 0, 0},
		{AlignCenter, BaselineMiddle, 0.5, 0.5},
		{AlignRight, BaselineTop, 1, 1},
		{AlignRight, BaselineBottom, 1, 0},
	}
	for _, tc := range tests {
		p := newPen()
		p.SetTextAlign(tc.align)
		p.SetTextBaseline(tc.baseline)
		ax, ay := p.alignFactors()
		if ax != tc.ax || ay != tc.ay {
			t.Errorf("alignFactors(%v,%v) = %v,%v want %v,%v", tc.align, tc.baseline, ax, ay, tc.ax, tc.ay)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#7DC1FF")
	if err != nil {
		t.Fatal(err)
	}
	if c != RGB(0x7d, 0xc1, 0xff) {
		t.Errorf("ParseHex = %v", c)
	}
	if _, err := ParseHex("blue"); err == nil {
		t.Error("expected error for malformed color")
	}
}

func TestImageCanvasFill(t *testing.T) {
	c := NewImageCanvas(20, 20)
	c.Clear(white)
	c.SetFillColor(red)
	square(c, 0, 0, 10, 10)
	c.Fill()

	img := c.Image()
	if got := toRGBA(img.At(5, 5)); got != red {
		t.Errorf("inside = %v, want red", got)
	}
	if got := toRGBA(img.At(15, 15)); got != white {
		t.Errorf("outside = %v, want white", got)
	}
}

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()

	fb := NewFramebuffer(12, 8)
	fb.Clear(white)
	fb.SetPixel(3, 2, red)
	path := filepath.Join(dir, "fb.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 12x8", b)
	}
	if got := toRGBA(img.At(3, 2)); got != red {
		t.Errorf("pixel (3,2) = %v, want red", got)
	}

	c := NewImageCanvas(4, 4)
	if err := c.SavePNG(filepath.Join(dir, "c.png")); err != nil {
		t.Fatal(err)
	}

	missing := filepath.Join(dir, "missing", "out.png")
	if err := fb.SavePNG(missing); err == nil {
		t.Error("expected error for a missing directory")
	}
	if err := c.SavePNG(missing); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestTerminalRendererSize(t *testing.T) {
	tr := NewTerminalRenderer(nil, 80, 24)
	w, h := tr.FramebufferSize()
	if w != 80 || h != 48 {
		t.Errorf("FramebufferSize = %d,%d want 80,48", w, h)
	}
}
