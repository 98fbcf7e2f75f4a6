package chart

import (
	"context"
	"time"
)

// Animator steps through the filter groups of a chart at a fixed interval.
type Animator struct {
	interval time.Duration
	count    int
	index    int
}

// NewAnimator creates an animator for c's filter. It fails with ErrNoFilter
// when the chart's data has no filter column.
func NewAnimator(c *Chart) (*Animator, error) {
	if c.filter == nil {
		return nil, ErrNoFilter
	}
	return &Animator{
		interval: time.Duration(c.opts.AnimationInterval) * time.Millisecond,
		count:    c.filter.Len(),
		index:    c.filter.Index(),
	}, nil
}

// Interval returns the time between steps.
func (a *Animator) Interval() time.Duration { return a.interval }

// Next returns the group index following the last one, wrapping around.
func (a *Animator) Next() int {
	a.index = (a.index + 1) % a.count
	return a.index
}

// Run calls step with the next group index on every tick until ctx is
// done. step runs on Run's goroutine; it must serialise its access to the
// chart.
func (a *Animator) Run(ctx context.Context, step func(index int)) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			step(a.Next())
		}
	}
}
