package render

import (
	"image/color"

	"github.com/taigrr/plot3d/pkg/math3d"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpStroke OpKind = iota
	OpFill
	OpText
	OpClear
)

// Op is one recorded drawing operation together with the pen state that
// was active when it was issued.
type Op struct {
	Kind      OpKind
	Path      [][]math3d.Vec2
	Text      string
	At        math3d.Vec2
	Color     color.RGBA
	LineWidth float64
}

// Recorder is a Canvas that records operations instead of drawing them.
// It is used to inspect what a chart paints.
type Recorder struct {
	pen

	width, height int
	Ops           []Op
}

// NewRecorder creates a recorder reporting the given canvas size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{pen: newPen(), width: width, height: height}
}

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: toRGBA(c)})
}

func (r *Recorder) Stroke() {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Path: r.copyPath(), Color: r.strokeColor, LineWidth: r.lineWidth})
}

func (r *Recorder) Fill() {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Path: r.copyPath(), Color: r.fillColor})
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: text, At: math3d.V2(x, y), Color: r.fillColor})
}

// Count returns how many operations of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) copyPath() [][]math3d.Vec2 {
	out := make([][]math3d.Vec2, len(r.subpaths))
	for i, sp := range r.subpaths {
		out[i] = append([]math3d.Vec2(nil), sp...)
	}
	return out
}
