package chart

import "math"

// Range tracks the minimum and maximum of a set of values.
type Range struct {
	Min, Max float64

	hasMin, hasMax bool
}

// Add extends the range so that it contains v.
func (r *Range) Add(v float64) {
	if !r.hasMin || r.Min > v {
		r.Min = v
		r.hasMin = true
	}
	if !r.hasMax || r.Max < v {
		r.Max = v
		r.hasMax = true
	}
}

// Combine extends the range so that o fits in it.
func (r *Range) Combine(o Range) {
	if o.hasMin {
		r.Add(o.Min)
	}
	if o.hasMax {
		r.Add(o.Max)
	}
}

// Override replaces the bounds that are non-nil. Once both bounds are set,
// Max is widened to Min+1 if it does not exceed Min, or to the next larger
// float64 where Min+1 rounds back to Min.
func (r *Range) Override(min, max *float64) {
	if min != nil {
		r.Min = *min
		r.hasMin = true
	}
	if max != nil {
		r.Max = *max
		r.hasMax = true
	}
	if r.IsSet() && r.Max <= r.Min {
		r.Max = r.Min + 1
		if r.Max <= r.Min {
			r.Max = math.Nextafter(r.Min, math.Inf(1))
		}
	}
}

// Range returns the width of the range.
func (r Range) Range() float64 {
	return r.Max - r.Min
}

// Center returns the midpoint of the range.
func (r Range) Center() float64 {
	return (r.Min + r.Max) / 2
}

// IsSet reports whether both bounds are known.
func (r Range) IsSet() bool {
	return r.hasMin && r.hasMax
}

// Expand moves both bounds outwards by d.
func (r *Range) Expand(d float64) {
	r.Min -= d
	r.Max += d
}
