package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Display is a terminal screen that can present what was drawn on it.
// *uv.Terminal satisfies it.
type Display interface {
	uv.Screen
	Display() error
}

// TerminalRenderer shows framebuffers on a terminal using half-block cells,
// so each terminal row carries two framebuffer rows.
type TerminalRenderer struct {
	out           Display
	width, height int
}

// NewTerminalRenderer creates a renderer for a terminal of the given size in
// cells.
func NewTerminalRenderer(out Display, width, height int) *TerminalRenderer {
	return &TerminalRenderer{out: out, width: width, height: height}
}

// FramebufferSize returns the framebuffer size that fills the terminal.
func (t *TerminalRenderer) FramebufferSize() (int, int) {
	return t.width, t.height * 2
}

// Render draws fb onto the terminal screen.
func (t *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(t.out, uv.Rect(0, 0, t.width, t.height))
}

// Flush presents the screen.
func (t *TerminalRenderer) Flush() error {
	return t.out.Display()
}

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. The framebuffer height should be 2x the terminal height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	// ▀ with fg=top pixel and bg=bottom pixel
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width(); col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.GetPixel(col, topY)),
					Bg: cellColor(fb.GetPixel(col, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

func cellColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
