package core

import "time"

// FixedStep gates simulation updates inside a faster frame loop so that the
// simulation advances at most once per interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller that fires once per interval.
// The first call to ShouldStep fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the pacing. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	f.step = interval
}

// Interval reports the current pacing.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset makes the next ShouldStep fire immediately and forgets elapsed time.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Long stalls would otherwise replay as a burst of steps.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
