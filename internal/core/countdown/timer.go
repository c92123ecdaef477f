package countdown

import (
	"errors"
	"sync"

	"stillpoint/internal/core/model"
)

// ErrInvalidState indicates an operation was invoked in a state that forbids it.
var ErrInvalidState = errors.New("operation not allowed in current timer state")

// ErrInvalidDuration indicates a countdown length that cannot be represented.
var ErrInvalidDuration = errors.New("countdown duration must not be negative")

// State represents the current Timer mode.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
	StateExpired State = "expired"
)

// Timer is a tick-driven countdown state machine. It owns the remaining time
// and advances it by one second per delivered tick; the tick source lives
// outside the timer (see Ticker). The expiry callback fires exactly once per
// run, on the tick where remaining time first reaches zero.
type Timer struct {
	mu        sync.Mutex
	state     State
	remaining int
	onExpired func()
}

// New creates an idle timer.
func New() *Timer {
	return &Timer{state: StateIdle}
}

// SetOnExpired registers the single expiry notification handler. The handler
// runs on the goroutine that delivered the expiring tick, outside the timer's
// lock, so it may safely call back into the timer.
func (timer *Timer) SetOnExpired(handler func()) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.onExpired = handler
}

// Start arms the countdown with the given duration and transitions to Running.
// Valid only from Idle.
func (timer *Timer) Start(duration model.Duration) error {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	if timer.state != StateIdle {
		return ErrInvalidState
	}
	total := duration.TotalSeconds()
	if total < 0 {
		return ErrInvalidDuration
	}

	timer.remaining = total
	timer.state = StateRunning
	return nil
}

// Tick advances the countdown by one elapsed second. Ticks delivered in any
// state other than Running are ignored, which is what makes pause freeze the
// displayed time rather than accumulate catch-up. A tick that finds the
// remaining time already at zero while Running still expires the timer, so the
// zero-length run and the final decrement share one expiry path.
func (timer *Timer) Tick() {
	timer.mu.Lock()
	if timer.state != StateRunning {
		timer.mu.Unlock()
		return
	}

	if timer.remaining > 0 {
		timer.remaining--
	}
	if timer.remaining > 0 {
		timer.mu.Unlock()
		return
	}

	timer.state = StateExpired
	handler := timer.onExpired
	timer.mu.Unlock()

	if handler != nil {
		handler()
	}
}

// Pause freezes the countdown. Valid only from Running.
func (timer *Timer) Pause() error {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.state != StateRunning {
		return ErrInvalidState
	}
	timer.state = StatePaused
	return nil
}

// Resume unfreezes a paused countdown. Valid only from Paused.
func (timer *Timer) Resume() error {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.state != StatePaused {
		return ErrInvalidState
	}
	timer.state = StateRunning
	return nil
}

// Cancel abandons the current run and returns to Idle without firing the
// expiry handler, even when remaining time is already zero. Cancelling an
// expired timer is a no-op; cancelling an idle one is caller misuse.
func (timer *Timer) Cancel() error {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	switch timer.state {
	case StateRunning, StatePaused:
		timer.state = StateIdle
		timer.remaining = 0
		return nil
	case StateExpired:
		return nil
	default:
		return ErrInvalidState
	}
}

// Reset returns an expired timer to Idle so the same instance can run again.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.state = StateIdle
	timer.remaining = 0
}

// Current returns the timer state.
func (timer *Timer) Current() State {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.state
}

// Remaining returns the seconds left on the countdown.
func (timer *Timer) Remaining() int {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.remaining
}

// FormattedRemaining renders the remaining time for display.
func (timer *Timer) FormattedRemaining() string {
	return FormatSeconds(timer.Remaining())
}
