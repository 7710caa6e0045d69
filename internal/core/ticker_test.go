package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTickerStartStop(t *testing.T) {
	tk := NewTicker(time.Millisecond)
	if tk.Running() || tk.C() != nil {
		t.Fatal("new ticker should be stopped with a nil channel")
	}
	tk.Start()
	tk.Start()
	if !tk.Running() {
		t.Fatal("expected ticker to run after Start")
	}
	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatal("ticker did not fire")
	}
	tk.Stop()
	tk.Stop()
	if tk.Running() || tk.C() != nil {
		t.Fatal("stopped ticker should expose a nil channel")
	}
}

func TestEveryStopsWhenCallbackReturnsFalse(t *testing.T) {
	calls := 0
	err := Every(context.Background(), time.Millisecond, func() bool {
		calls++
		return calls < 3
	})
	if err != nil {
		t.Fatalf("Every returned %v, expected nil", err)
	}
	if calls != 3 {
		t.Fatalf("callback ran %d times, expected 3", calls)
	}
}

func TestEveryHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Every(ctx, time.Hour, func() bool {
		t.Fatal("callback should not run after cancellation")
		return false
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Every returned %v, expected context.Canceled", err)
	}
}
