package chart

import (
	"math"

	"github.com/pkg/errors"

	"github.com/taigrr/plot3d/pkg/dataset"
	"github.com/taigrr/plot3d/pkg/math3d"
)

// defaultSteps is the number of ticks an axis gets without a configured
// step.
const defaultSteps = 5

// Axis is the range and tick step of one axis.
type Axis struct {
	Range      Range
	Step       float64
	PrettyStep bool
}

func newAxis(r Range, min, max, step *float64) Axis {
	r.Override(min, max)
	if step != nil {
		return Axis{Range: r, Step: *step}
	}
	return Axis{Range: r, Step: r.Range() / defaultSteps, PrettyStep: true}
}

// Layout holds everything derived from the data ranges.
type Layout struct {
	X, Y, Z Axis

	// Value is nil when the records have no value column.
	Value *Range

	Scale Scale

	// XBarWidth and YBarWidth are the full bar widths of bar styles.
	XBarWidth, YBarWidth float64
}

// Center returns the center of the data box in data units.
func (l Layout) Center() math3d.Vec3 {
	return math3d.V3(l.X.Range.Center(), l.Y.Range.Center(), l.Z.Range.Center())
}

// ArmLocation returns the scaled data center the camera orbits.
func (l Layout) ArmLocation() math3d.Vec3 {
	return l.Center().Mul(l.Scale.Vec3())
}

// ComputeLayout derives axis ranges, steps and scale from recs.
func ComputeLayout(recs []dataset.Record, opts Options) (Layout, error) {
	r, err := RendererFor(opts.Style)
	if err != nil {
		return Layout{}, err
	}
	if len(recs) == 0 {
		return Layout{}, errors.Wrap(ErrInvalidData, "no records")
	}

	var xr, yr, zr Range
	var value *Range
	for i, rec := range recs {
		p := rec.Point()
		for _, v := range []float64{p.X, p.Y, p.Z} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Layout{}, errors.Wrapf(ErrInvalidData, "record %d: non-finite coordinate", i)
			}
		}
		xr.Add(p.X)
		yr.Add(p.Y)
		zr.Add(p.Z)

		if v, ok := rec.Value(); ok {
			if value == nil {
				value = &Range{}
			}
			value.Add(v)
		}
	}

	if r.NeedsValue() && value == nil {
		return Layout{}, errors.Wrapf(ErrInvalidData, "style %q needs a %q column", opts.Style, dataset.ColValue)
	}

	var l Layout
	l.X.Range, l.Y.Range, l.Z.Range = xr, yr, zr
	r.AdjustRanges(recs, &l, &opts)

	l.X = newAxis(l.X.Range, opts.XMin, opts.XMax, opts.XStep)
	l.Y = newAxis(l.Y.Range, opts.YMin, opts.YMax, opts.YStep)
	l.Z = newAxis(l.Z.Range, opts.ZMin, opts.ZMax, opts.ZStep)

	if value != nil {
		value.Override(opts.ValueMin, opts.ValueMax)
		l.Value = value
	}

	l.Scale = ComputeScale(l.X.Range, l.Y.Range, l.Z.Range, l.Value, opts.KeepAspectRatio, opts.VerticalRatio)
	return l, nil
}
