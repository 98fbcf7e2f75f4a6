// Package chart projects numeric (x, y, z, value) records into 3D charts
// and paints them on a render.Canvas.
//
// A frame runs in fixed stages: the layout gives the scale, every point is
// projected through an immutable View, points and bar faces are sorted back
// to front and the style's Renderer paints them in that order. Hit tests
// reuse the projections of the last frame.
package chart

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/taigrr/plot3d/pkg/dataset"
	"github.com/taigrr/plot3d/pkg/math3d"
	"github.com/taigrr/plot3d/pkg/render"
)

// Default canvas size until the first paint.
const (
	DefaultWidth  = 400
	DefaultHeight = 400
)

// Chart is a drawing session: options, camera, data and the geometry
// built from it. A Chart is not safe for concurrent use.
type Chart struct {
	opts     Options
	logger   *zap.SugaredLogger
	renderer Renderer
	palette  Palette
	camera   *Camera

	records  []dataset.Record
	layout   Layout
	geometry *Geometry
	filter   *Filter

	width, height int
	listeners     []func(CameraPosition)
}

// New creates a chart without data.
func New(opts Options) (*Chart, error) {
	c := &Chart{
		camera: NewCamera(),
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	if err := c.SetOptions(opts); err != nil {
		return nil, err
	}
	return c, nil
}

// SetOptions replaces the options and rebuilds the geometry of the current
// data, if any.
func (c *Chart) SetOptions(opts Options) error {
	if err := opts.Validate(); err != nil {
		return errors.Wrap(err, "invalid options")
	}
	r, err := RendererFor(opts.Style)
	if err != nil {
		return err
	}

	prev, prevLogger, prevCamera := c.opts, c.logger, *c.camera
	c.opts = opts
	c.renderer = r
	c.palette = opts.palette()
	c.logger = opts.Logger
	if c.logger == nil {
		c.logger = zap.NewNop().Sugar()
	}
	if opts.CameraPosition != nil {
		c.placeCamera(*opts.CameraPosition)
	}

	if c.records != nil {
		if err := c.SetData(c.records); err != nil {
			c.opts = prev
			c.renderer, _ = RendererFor(prev.Style)
			c.palette = prev.palette()
			c.logger = prevLogger
			*c.camera = prevCamera
			return err
		}
	}
	return nil
}

// Options returns the chart options.
func (c *Chart) Options() Options { return c.opts }

// SetData replaces the records. On error the previous data and geometry
// are kept.
func (c *Chart) SetData(recs []dataset.Record) error {
	layout, err := ComputeLayout(recs, c.opts)
	if err != nil {
		return err
	}

	var filter *Filter
	visible := recs
	if dataset.HasColumn(recs, dataset.ColFilter) {
		if filter, err = NewFilter(recs); err != nil {
			return err
		}
		visible = filter.Records()
	}

	geometry, err := BuildGeometry(c.opts.Style, visible, layout)
	if err != nil {
		return err
	}

	c.records = recs
	c.layout = layout
	c.filter = filter
	c.geometry = geometry

	loc := layout.ArmLocation()
	c.camera.SetArmLocation(loc.X, loc.Y, loc.Z)

	c.logger.Debugw("data loaded",
		"style", c.opts.Style,
		"records", len(recs),
		"points", geometry.Len(),
		"filtered", filter != nil,
	)
	return nil
}

// Layout returns the layout of the current data.
func (c *Chart) Layout() Layout { return c.layout }

// Geometry returns the geometry of the current data, or nil.
func (c *Chart) Geometry() *Geometry { return c.geometry }

// Camera returns the chart camera.
func (c *Chart) Camera() *Camera { return c.camera }

// Filter returns the filter, or nil when the data has no filter column.
func (c *Chart) Filter() *Filter { return c.filter }

// SelectFilter shows the i-th filter group.
func (c *Chart) SelectFilter(i int) error {
	if c.filter == nil {
		return ErrNoFilter
	}
	if err := c.filter.Select(i); err != nil {
		return err
	}
	geometry, err := BuildGeometry(c.opts.Style, c.filter.Records(), c.layout)
	if err != nil {
		return err
	}
	c.geometry = geometry
	c.logger.Debugw("filter selected", "value", c.filter.Selected(), "points", geometry.Len())
	return nil
}

// SetSize sets the canvas size used for projection.
func (c *Chart) SetSize(width, height int) {
	c.width, c.height = width, height
}

// View returns the projection snapshot for the current camera and size.
func (c *Chart) View() View {
	w, h := float64(c.width), float64(c.height)
	return NewView(c.camera, c.layout.Scale, DefaultEye, c.opts.ShowPerspective, w, c.opts.center(w, h))
}

// Project converts a data point to canvas pixels.
func (c *Chart) Project(p math3d.Vec3) math3d.Vec2 {
	return c.View().Project(p)
}

// Update projects and orders the geometry for the current camera without
// drawing. Paint calls it.
func (c *Chart) Update() (*Frame, error) {
	if c.geometry.Len() == 0 {
		return nil, ErrNoGeometry
	}
	f := &Frame{
		View:     c.View(),
		Layout:   c.layout,
		Options:  &c.opts,
		Palette:  c.palette,
		Geometry: c.geometry,
	}
	c.geometry.Translate(f.View)
	c.geometry.SortPoints(c.renderer.Sorts())
	c.renderer.Prepare(f)
	return f, nil
}

// Paint draws a full frame on canvas: background, axes, data, filter
// caption and legend.
func (c *Chart) Paint(canvas render.Canvas) error {
	c.SetSize(canvas.Width(), canvas.Height())
	f, err := c.Update()
	if err != nil {
		return err
	}
	f.Canvas = canvas

	canvas.Clear(c.palette.Background)
	horizontal, _ := c.camera.ArmRotation()
	drawAxes(f, horizontal)

	for _, i := range c.geometry.Order {
		c.renderer.Paint(f, &c.geometry.Points[i])
	}

	if c.filter != nil {
		canvas.SetFontSize(legendFontSize)
		canvas.SetFillColor(c.palette.Info)
		canvas.SetTextAlign(render.AlignLeft)
		canvas.SetTextBaseline(render.BaselineTop)
		canvas.FillText(c.filter.Message(), c.opts.Margin, c.opts.Margin)
	}

	if c.showLegend() {
		c.renderer.DrawLegend(f)
	}
	return nil
}

func (c *Chart) showLegend() bool {
	if c.opts.ShowLegend != nil {
		return *c.opts.ShowLegend
	}
	return c.opts.Style == StyleDotColor || c.opts.Style == StyleDotSize
}

// HitTest returns the data point under the canvas position (x, y) in the
// last frame. Nothing is hit before the geometry was first projected.
func (c *Chart) HitTest(x, y float64) (*DataPoint, bool) {
	if c.geometry.Len() == 0 || len(c.geometry.Order) == 0 {
		return nil, false
	}
	f := &Frame{View: c.View(), Layout: c.layout, Options: &c.opts, Palette: c.palette, Geometry: c.geometry}
	i, ok := c.renderer.HitTest(f, math3d.V2(x, y))
	if !ok {
		return nil, false
	}
	return &c.geometry.Points[i], true
}

// Tooltip describes a data point with the axis labels.
func (c *Chart) Tooltip(p *DataPoint) string {
	s := fmt.Sprintf("%s: %g, %s: %g, %s: %g",
		c.opts.XLabel, p.Point.X, c.opts.YLabel, p.Point.Y, c.opts.ZLabel, p.Point.Z)
	if p.HasValue {
		s += fmt.Sprintf(", %s: %g", dataset.ColValue, p.Value)
	}
	return s
}

// CameraPosition returns the camera orbit state.
func (c *Chart) CameraPosition() CameraPosition {
	return c.camera.Position()
}

// SetCameraPosition moves the camera. A zero Distance keeps the current arm
// length.
func (c *Chart) SetCameraPosition(pos CameraPosition) {
	c.placeCamera(pos)
	c.cameraChanged()
}

// placeCamera moves the camera to pos. A zero Distance keeps the current
// arm length.
func (c *Chart) placeCamera(pos CameraPosition) {
	c.camera.SetArmRotation(pos.Horizontal, pos.Vertical)
	if pos.Distance != 0 {
		c.camera.SetArmLength(pos.Distance)
	}
}

// Drag rotates the camera as if dragged by (dx, dy) pixels from start.
func (c *Chart) Drag(start CameraPosition, dx, dy float64) {
	h, v := Drag(start, dx, dy)
	c.camera.SetArmRotation(h, v)
	c.cameraChanged()
}

// Zoom changes the arm length by a wheel movement of delta notches.
func (c *Chart) Zoom(delta float64) {
	if delta == 0 {
		return
	}
	c.camera.SetArmLength(Zoom(c.camera.ArmLength(), delta))
	c.cameraChanged()
}

// OnCameraChange registers fn to be called after every camera change.
func (c *Chart) OnCameraChange(fn func(CameraPosition)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Chart) cameraChanged() {
	pos := c.camera.Position()
	c.logger.Debugw("camera changed", "horizontal", pos.Horizontal, "vertical", pos.Vertical, "distance", pos.Distance)
	for _, fn := range c.listeners {
		fn(pos)
	}
}
