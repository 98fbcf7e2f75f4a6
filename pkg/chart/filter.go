package chart

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/taigrr/plot3d/pkg/dataset"
)

// Filter splits records into groups by their filter column. One group is
// selected at a time.
type Filter struct {
	values   []float64
	groups   map[float64][]dataset.Record
	selected int
}

// NewFilter groups recs by the distinct values of the filter column, in
// ascending order, and selects the first group.
func NewFilter(recs []dataset.Record) (*Filter, error) {
	if !dataset.HasColumn(recs, dataset.ColFilter) {
		return nil, ErrNoFilter
	}
	groups := lo.GroupBy(recs, func(r dataset.Record) float64 {
		v, _ := r.Filter()
		return v
	})
	values := lo.Keys(groups)
	slices.Sort(values)
	return &Filter{values: values, groups: groups}, nil
}

// Values returns the distinct filter values in ascending order.
func (f *Filter) Values() []float64 { return f.values }

// Len returns the number of groups.
func (f *Filter) Len() int { return len(f.values) }

// Index returns the index of the selected group.
func (f *Filter) Index() int { return f.selected }

// Select selects the i-th group.
func (f *Filter) Select(i int) error {
	if i < 0 || i >= len(f.values) {
		return errors.Errorf("filter index %d out of range [0, %d)", i, len(f.values))
	}
	f.selected = i
	return nil
}

// Selected returns the selected filter value.
func (f *Filter) Selected() float64 { return f.values[f.selected] }

// Records returns the records of the selected group.
func (f *Filter) Records() []dataset.Record { return f.groups[f.Selected()] }

// Message returns the caption shown for the selected group.
func (f *Filter) Message() string {
	return fmt.Sprintf("%s: %g", dataset.ColFilter, f.Selected())
}
