package countdown

import (
	"sync"
	"time"
)

// Ticker is the host-side tick source: a loop that delivers one Tick to the
// timer per elapsed interval. The owner must call Stop on every exit path
// (expiry, cancellation, window teardown) so the loop does not outlive the
// countdown view.
type Ticker struct {
	mu       sync.Mutex
	timer    *Timer
	interval time.Duration
	onTick   func()
	stopCh   chan struct{}
	running  bool
}

// NewTicker creates a tick source for the given timer. A non-positive
// interval defaults to one second.
func NewTicker(timer *Timer, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{timer: timer, interval: interval}
}

// SetOnTick registers a hook invoked after every delivered tick, running or
// not. The UI uses it to refresh the displayed remaining time.
func (ticker *Ticker) SetOnTick(handler func()) {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.onTick = handler
}

// Start launches the ticking loop. Starting an already running ticker is a
// no-op.
func (ticker *Ticker) Start() {
	ticker.mu.Lock()
	if ticker.running {
		ticker.mu.Unlock()
		return
	}
	ticker.running = true
	ticker.stopCh = make(chan struct{})
	stopCh := ticker.stopCh
	ticker.mu.Unlock()

	go ticker.run(stopCh)
}

// Stop terminates the ticking loop. Safe to call repeatedly.
func (ticker *Ticker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if !ticker.running {
		return
	}
	close(ticker.stopCh)
	ticker.running = false
}

func (ticker *Ticker) run(stopCh chan struct{}) {
	source := time.NewTicker(ticker.interval)
	defer source.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-source.C:
			ticker.timer.Tick()
			ticker.mu.Lock()
			handler := ticker.onTick
			ticker.mu.Unlock()
			if handler != nil {
				handler()
			}
		}
	}
}
