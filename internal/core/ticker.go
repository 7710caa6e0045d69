package core

import (
	"context"
	"time"
)

// Ticker is a restartable wrapper around time.Ticker. While stopped, C returns
// a nil channel so a select case on it never fires.
type Ticker struct {
	interval time.Duration
	t        *time.Ticker
}

// NewTicker returns a stopped Ticker with the given interval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Ticker{interval: interval}
}

// Start begins ticking. Starting a running ticker is a no-op.
func (t *Ticker) Start() {
	if t.t != nil {
		return
	}
	t.t = time.NewTicker(t.interval)
}

// Stop halts ticking. Stopping a stopped ticker is a no-op.
func (t *Ticker) Stop() {
	if t.t == nil {
		return
	}
	t.t.Stop()
	t.t = nil
}

// Running reports whether the ticker is started.
func (t *Ticker) Running() bool { return t.t != nil }

// Interval returns the tick period.
func (t *Ticker) Interval() time.Duration { return t.interval }

// C returns the tick channel, or nil while stopped.
func (t *Ticker) C() <-chan time.Time {
	if t.t == nil {
		return nil
	}
	return t.t.C
}

// Every calls fn once per interval until fn returns false or ctx is done.
// It returns ctx.Err() when cancelled and nil when fn ends the loop.
func Every(ctx context.Context, interval time.Duration, fn func() bool) error {
	t := NewTicker(interval)
	t.Start()
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C():
			if !fn() {
				return nil
			}
		}
	}
}
