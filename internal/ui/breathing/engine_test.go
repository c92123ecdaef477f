package breathing

import (
	"context"
	"sync"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		Inhale: 20 * time.Millisecond,
		Hold:   5 * time.Millisecond,
		Exhale: 20 * time.Millisecond,
		Rest:   5 * time.Millisecond,

		FrameInterval: time.Millisecond,
		MinScale:      0.5,
		MaxScale:      1.0,
	}
}

type frameRecorder struct {
	mu     sync.Mutex
	scales []float64
}

func (recorder *frameRecorder) record(scale float64) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.scales = append(recorder.scales, scale)
}

func (recorder *frameRecorder) count() int {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return len(recorder.scales)
}

func (recorder *frameRecorder) snapshot() []float64 {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]float64(nil), recorder.scales...)
}

func TestEngineEmitsFramesWithinBounds(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(fastConfig(), recorder.record)

	engine.Start(context.Background())
	time.Sleep(60 * time.Millisecond)
	engine.Stop()

	scales := recorder.snapshot()
	if len(scales) == 0 {
		t.Fatalf("expected frames to be emitted")
	}
	for _, scale := range scales {
		if scale < 0.5-1e-9 || scale > 1.0+1e-9 {
			t.Fatalf("scale %f outside [0.5, 1.0]", scale)
		}
	}
}

func TestEngineStopHaltsFrames(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(fastConfig(), recorder.record)

	engine.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	engine.Stop()

	// Allow any in-flight frame to land before sampling.
	time.Sleep(10 * time.Millisecond)
	countAfterStop := recorder.count()
	time.Sleep(30 * time.Millisecond)

	if got := recorder.count(); got != countAfterStop {
		t.Fatalf("expected no frames after stop, got %d extra", got-countAfterStop)
	}
}

func TestEnginePhaseCycleStartsWithInhale(t *testing.T) {
	engine := New(fastConfig(), nil)

	var mu sync.Mutex
	var phases []Phase
	engine.SetOnPhaseChange(func(phase Phase) {
		mu.Lock()
		phases = append(phases, phase)
		mu.Unlock()
	})

	engine.Start(context.Background())
	time.Sleep(80 * time.Millisecond)
	engine.Stop()

	mu.Lock()
	defer mu.Unlock()
	if len(phases) < 2 {
		t.Fatalf("expected several phase changes, got %d", len(phases))
	}
	if phases[0] != PhaseInhale {
		t.Fatalf("expected cycle to start with inhale, got %v", phases[0])
	}
}

func TestNormalizeFillsInvalidFields(t *testing.T) {
	config := normalize(Config{MinScale: 2, MaxScale: 1})
	defaults := DefaultConfig()

	if config.Inhale != defaults.Inhale || config.Exhale != defaults.Exhale {
		t.Fatalf("expected default cadence, got %+v", config)
	}
	if config.MinScale != defaults.MinScale || config.MaxScale != defaults.MaxScale {
		t.Fatalf("expected default scale bounds, got %+v", config)
	}
	if config.FrameInterval != defaults.FrameInterval {
		t.Fatalf("expected default frame interval, got %v", config.FrameInterval)
	}
}

func TestPhaseCaptions(t *testing.T) {
	if PhaseInhale.Caption() != "Breathe in" || PhaseExhale.Caption() != "Breathe out" {
		t.Fatalf("unexpected captions: %q / %q", PhaseInhale.Caption(), PhaseExhale.Caption())
	}
	if Phase(42).Caption() != "" {
		t.Fatalf("expected empty caption for unknown phase")
	}
}
