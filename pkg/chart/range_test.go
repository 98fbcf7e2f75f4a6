package chart

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func ptr(f float64) *float64 { return &f }

func TestRangeAdd(t *testing.T) {
	var r Range
	test.That(t, r.IsSet(), test.ShouldBeFalse)

	for _, v := range []float64{3, -1, 7, 2} {
		r.Add(v)
	}
	test.That(t, r.IsSet(), test.ShouldBeTrue)
	test.That(t, r.Min, test.ShouldEqual, -1)
	test.That(t, r.Max, test.ShouldEqual, 7)
	test.That(t, r.Range(), test.ShouldEqual, 8)
	test.That(t, r.Center(), test.ShouldEqual, 3)

	var o Range
	o.Add(10)
	r.Combine(o)
	test.That(t, r.Max, test.ShouldEqual, 10)

	r.Combine(Range{})
	test.That(t, r.Min, test.ShouldEqual, -1)
	test.That(t, r.Max, test.ShouldEqual, 10)
}

func TestRangeOverrideWidens(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		min, max *float64
		wantMin  float64
		wantMax  float64
	}{
		{"single value", []float64{3}, nil, nil, 3, 4},
		{"equal overrides", nil, ptr(2), ptr(2), 2, 3},
		{"inverted overrides", nil, ptr(5), ptr(1), 5, 6},
		{"min above data", []float64{0, 1}, ptr(4), nil, 4, 5},
		{"untouched", []float64{0, 1}, nil, nil, 0, 1},
		{"override max", []float64{0, 1}, nil, ptr(9), 0, 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var r Range
			for _, v := range tc.values {
				r.Add(v)
			}
			r.Override(tc.min, tc.max)
			test.That(t, r.Min, test.ShouldEqual, tc.wantMin)
			test.That(t, r.Max, test.ShouldEqual, tc.wantMax)
			test.That(t, r.Max, test.ShouldBeGreaterThan, r.Min)
		})
	}
}

func TestRangeOverrideLargeMagnitude(t *testing.T) {
	for _, v := range []float64{1e17, -1e17, math.MaxFloat64 / 2} {
		var r Range
		r.Add(v)
		r.Override(nil, nil)
		test.That(t, r.Min, test.ShouldEqual, v)
		test.That(t, r.Max, test.ShouldBeGreaterThan, r.Min)
		test.That(t, r.Range(), test.ShouldBeGreaterThan, 0.0)
	}

	var r Range
	r.Add(1e17)
	r.Override(nil, nil)
	s := ComputeScale(r, r, r, nil, true, 0.5)
	test.That(t, math.IsInf(s.X, 0), test.ShouldBeFalse)
	test.That(t, math.IsInf(s.Z, 0), test.ShouldBeFalse)
}

func TestRangeExpand(t *testing.T) {
	var r Range
	r.Add(0)
	r.Add(2)
	r.Expand(0.5)
	test.That(t, r.Min, test.ShouldEqual, -0.5)
	test.That(t, r.Max, test.ShouldEqual, 2.5)
}
