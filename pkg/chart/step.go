package chart

import (
	"math"
	"strconv"
)

const (
	stepPrecision = 5
	stepSlack     = 1e-9

	// MaxSteps bounds the number of values a StepNumber yields.
	MaxSteps = 1000
)

// StepNumber iterates over evenly spaced values between start and end, such
// as axis tick positions.
//
//	s := NewStepNumber(0, 10, 2.3, true)
//	for s.Start(); !s.End(); s.Next() {
//		fmt.Println(s.Current()) // 0, 2, 4, ..., 10
//	}
type StepNumber struct {
	start, end float64
	step       float64
	current    float64

	count   int
	stalled bool
}

// NewStepNumber creates a step iterator. When pretty is set the step is
// rounded to the closest value of the form 1, 2 or 5 times a power of ten.
// A step that is not positive leaves the step at 1.
func NewStepNumber(start, end, step float64, pretty bool) *StepNumber {
	s := &StepNumber{start: start, end: end, step: 1}
	if step > 0 {
		if pretty {
			s.step = PrettyStep(step)
		} else {
			s.step = step
		}
	}
	return s
}

// PrettyStep returns the value among 1·10ⁿ, 2·10ⁿ and 5·10ⁿ that is
// closest to step.
func PrettyStep(step float64) float64 {
	step1 := math.Pow(10, math.Round(math.Log10(step)))
	step2 := 2 * math.Pow(10, math.Round(math.Log10(step/2)))
	step5 := 5 * math.Pow(10, math.Round(math.Log10(step/5)))

	pretty := step1
	if math.Abs(step2-step) <= math.Abs(pretty-step) {
		pretty = step2
	}
	if math.Abs(step5-step) <= math.Abs(pretty-step) {
		pretty = step5
	}
	if pretty <= 0 {
		pretty = 1
	}
	return pretty
}

// Step returns the step size in use.
func (s *StepNumber) Step() float64 { return s.step }

// Start moves to the first multiple of the step at or below start.
func (s *StepNumber) Start() {
	s.current = s.start - math.Mod(s.start, s.step)
	s.count = 0
	s.stalled = false
}

// StartAtOrAbove is like Start but skips the first value when it lies
// below start.
func (s *StepNumber) StartAtOrAbove() {
	s.Start()
	if s.Current() < s.start {
		s.Next()
	}
}

// Next advances by one step. A step too small to change the current value
// ends the iteration.
func (s *StepNumber) Next() {
	next := s.current + s.step
	if next == s.current {
		s.stalled = true
	}
	s.current = next
	s.count++
}

// End reports whether the iteration has passed end, stalled, or yielded
// MaxSteps values. Overshooting end by a tiny fraction of the step from
// accumulated rounding does not end it.
func (s *StepNumber) End() bool {
	return s.stalled || s.count >= MaxSteps || s.current > s.end+s.step*stepSlack
}

// InRange reports whether the rounded current value lies within
// [start, end]. Rounding can move values of offset ranges outside it.
func (s *StepNumber) InRange() bool {
	v := s.Current()
	return v >= s.start && v <= s.end
}

// Current returns the current value rounded to five significant digits.
func (s *StepNumber) Current() float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(s.current, 'g', stepPrecision, 64), 64)
	if err != nil {
		return s.current
	}
	return v
}
