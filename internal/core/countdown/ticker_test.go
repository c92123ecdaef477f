package countdown

import (
	"sync/atomic"
	"testing"
	"time"

	"stillpoint/internal/core/model"
)

func TestTickerDrivesTimerToExpiry(t *testing.T) {
	timer := New()
	fired := make(chan struct{})
	timer.SetOnExpired(func() { close(fired) })
	if err := timer.Start(model.Duration{Seconds: 3}); err != nil {
		t.Fatalf("start: %v", err)
	}

	ticker := NewTicker(timer, time.Millisecond)
	ticker.Start()
	defer ticker.Stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatalf("timer never expired")
	}
}

func TestTickerOnTickHook(t *testing.T) {
	timer := New()
	if err := timer.Start(model.Duration{Hours: 1}); err != nil {
		t.Fatalf("start: %v", err)
	}

	var ticks atomic.Int64
	ticker := NewTicker(timer, time.Millisecond)
	ticker.SetOnTick(func() { ticks.Add(1) })
	ticker.Start()
	defer ticker.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("tick hook never fired")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestTickerStopIsIdempotent(t *testing.T) {
	ticker := NewTicker(New(), time.Millisecond)
	ticker.Start()
	ticker.Stop()
	ticker.Stop()

	// A stopped ticker can be started again for the next run.
	ticker.Start()
	ticker.Stop()
}
