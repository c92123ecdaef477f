package breathing

import (
	"context"
	"math"
	"sync"
	"time"
)

// Phase identifies the current segment of the breathing cycle.
type Phase int

const (
	PhaseInhale Phase = iota
	PhaseHold
	PhaseExhale
	PhaseRest
)

// Caption returns the on-screen prompt for the phase.
func (phase Phase) Caption() string {
	switch phase {
	case PhaseInhale:
		return "Breathe in"
	case PhaseHold:
		return "Hold"
	case PhaseExhale:
		return "Breathe out"
	case PhaseRest:
		return "Rest"
	default:
		return ""
	}
}

// Config contains cadence and rendering values for the breathing circle.
type Config struct {
	Inhale time.Duration
	Hold   time.Duration
	Exhale time.Duration
	Rest   time.Duration

	FrameInterval time.Duration
	MinScale      float64
	MaxScale      float64
}

// Engine drives the pulsing breathing circle. It loops through the cadence on
// its own goroutine and reports the circle scale frame by frame; the UI layer
// owns the actual drawing.
type Engine struct {
	mu      sync.Mutex
	config  Config
	onFrame func(scale float64)
	onPhase func(Phase)
	cancel  context.CancelFunc
}

// New creates a breathing engine.
func New(config Config, onFrame func(scale float64)) *Engine {
	return &Engine{config: normalize(config), onFrame: onFrame}
}

// SetConfig replaces the cadence. Takes effect on the next Start.
func (engine *Engine) SetConfig(config Config) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.config = normalize(config)
}

// SetOnPhaseChange sets a callback that is fired when the cycle enters a new
// phase.
func (engine *Engine) SetOnPhaseChange(handler func(Phase)) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.onPhase = handler
}

// Start begins the breathing loop, replacing any loop already running.
func (engine *Engine) Start(parent context.Context) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	config := engine.config
	engine.mu.Unlock()

	go engine.run(runCtx, config)
}

// Stop terminates the breathing loop.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) run(ctx context.Context, config Config) {
	for {
		engine.notifyPhase(PhaseInhale)
		if !engine.runRamp(ctx, config, config.Inhale, config.MinScale, config.MaxScale) {
			return
		}
		if config.Hold > 0 {
			engine.notifyPhase(PhaseHold)
			if !sleepWithContext(ctx, config.Hold) {
				return
			}
		}
		engine.notifyPhase(PhaseExhale)
		if !engine.runRamp(ctx, config, config.Exhale, config.MaxScale, config.MinScale) {
			return
		}
		if config.Rest > 0 {
			engine.notifyPhase(PhaseRest)
			if !sleepWithContext(ctx, config.Rest) {
				return
			}
		}
	}
}

// runRamp eases the scale from one bound to the other over the phase duration.
func (engine *Engine) runRamp(ctx context.Context, config Config, duration time.Duration, from, to float64) bool {
	start := time.Now()
	for {
		elapsed := time.Since(start)
		if elapsed >= duration {
			engine.emitFrame(to)
			return true
		}
		progress := float64(elapsed) / float64(duration)
		engine.emitFrame(from + (to-from)*ease(progress))
		if !sleepWithContext(ctx, config.FrameInterval) {
			return false
		}
	}
}

func (engine *Engine) emitFrame(scale float64) {
	if engine.onFrame != nil {
		engine.onFrame(scale)
	}
}

func (engine *Engine) notifyPhase(phase Phase) {
	engine.mu.Lock()
	handler := engine.onPhase
	engine.mu.Unlock()
	if handler != nil {
		handler(phase)
	}
}

// normalize falls back to defaults for fields a half-filled config left out.
func normalize(config Config) Config {
	defaults := DefaultConfig()
	if config.Inhale <= 0 {
		config.Inhale = defaults.Inhale
	}
	if config.Exhale <= 0 {
		config.Exhale = defaults.Exhale
	}
	if config.Hold < 0 {
		config.Hold = defaults.Hold
	}
	if config.Rest < 0 {
		config.Rest = defaults.Rest
	}
	if config.FrameInterval <= 0 {
		config.FrameInterval = defaults.FrameInterval
	}
	if config.MaxScale <= config.MinScale {
		config.MinScale = defaults.MinScale
		config.MaxScale = defaults.MaxScale
	}
	return config
}

// ease is a sinusoidal ease-in-out over [0,1].
func ease(progress float64) float64 {
	return 0.5 - 0.5*math.Cos(math.Pi*progress)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
