package chart

import (
	"testing"

	"go.viam.com/test"
)

func TestPrettyStep(t *testing.T) {
	tests := []struct {
		step, want float64
	}{
		{1, 1},
		{2.3, 2},
		{0.7, 0.5},
		{4, 5},
		{14, 10},
		{180, 200},
	}
	for _, tc := range tests {
		test.That(t, PrettyStep(tc.step), test.ShouldAlmostEqual, tc.want)
	}
}

func collect(s *StepNumber) []float64 {
	var out []float64
	for s.StartAtOrAbove(); !s.End(); s.Next() {
		if s.InRange() {
			out = append(out, s.Current())
		}
	}
	return out
}

// iterations counts loop turns, giving up well past MaxSteps.
func iterations(s *StepNumber) int {
	n := 0
	for s.StartAtOrAbove(); !s.End() && n <= 10*MaxSteps; s.Next() {
		n++
	}
	return n
}

func TestStepNumberIterates(t *testing.T) {
	test.That(t, collect(NewStepNumber(0, 10, 2.3, true)), test.ShouldResemble, []float64{0, 2, 4, 6, 8, 10})
	test.That(t, collect(NewStepNumber(0, 1, 0.2, false)), test.ShouldResemble, []float64{0, 0.2, 0.4, 0.6, 0.8, 1})
	test.That(t, collect(NewStepNumber(1.5, 4, 1, false)), test.ShouldResemble, []float64{2, 3, 4})
	test.That(t, collect(NewStepNumber(-3, 1, 2, false)), test.ShouldResemble, []float64{-2, 0})
	// 0.1+0.1+0.1 overshoots 0.3
	test.That(t, collect(NewStepNumber(0, 0.3, 0.1, false)), test.ShouldResemble, []float64{0, 0.1, 0.2, 0.3})
}

func TestStepNumberStart(t *testing.T) {
	s := NewStepNumber(1.5, 4, 1, false)
	s.Start()
	test.That(t, s.Current(), test.ShouldEqual, 1)

	s = NewStepNumber(0, 1, -1, false)
	test.That(t, s.Step(), test.ShouldEqual, 1)
}

func TestStepNumberStalls(t *testing.T) {
	// 3.2 is below half an ulp at 1e17
	s := NewStepNumber(1e17, 1e17+16, 3.2, false)
	test.That(t, iterations(s), test.ShouldBeLessThanOrEqualTo, 2)

	s = NewStepNumber(1, 2, 1e-300, false)
	test.That(t, iterations(s), test.ShouldBeLessThanOrEqualTo, MaxSteps)
}

func TestStepNumberMaxSteps(t *testing.T) {
	s := NewStepNumber(0, 1e9, 1, false)
	test.That(t, iterations(s), test.ShouldEqual, MaxSteps)
	test.That(t, collect(NewStepNumber(0, 1e9, 1, false)), test.ShouldHaveLength, MaxSteps)
}

func TestStepNumberOffsetRange(t *testing.T) {
	s := NewStepNumber(100000.1, 100000.9, 0.16, true)
	test.That(t, s.Step(), test.ShouldAlmostEqual, 0.2)
	test.That(t, iterations(s), test.ShouldBeLessThanOrEqualTo, 6)

	// every value rounds to 100000, below the range
	test.That(t, collect(NewStepNumber(100000.1, 100000.9, 0.16, true)), test.ShouldBeEmpty)

	for _, v := range collect(NewStepNumber(100000, 100010, 2.5, false)) {
		test.That(t, v, test.ShouldBeBetweenOrEqual, 100000.0, 100010.0)
	}
}
