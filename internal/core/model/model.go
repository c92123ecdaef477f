package model

// Duration is the countdown length selected on the picker screen.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// TotalSeconds flattens the duration into whole seconds.
func (duration Duration) TotalSeconds() int {
	return duration.Hours*3600 + duration.Minutes*60 + duration.Seconds
}

// IsZero reports whether the duration is empty.
func (duration Duration) IsZero() bool {
	return duration.TotalSeconds() == 0
}

// CompletionSignal selects the side effect fired when the countdown expires.
// The core passes it through unchanged; mapping to audio or a notification is
// the UI layer's job.
type CompletionSignal string

const (
	SignalSilent CompletionSignal = "silent"
	SignalHaptic CompletionSignal = "haptic"
	SignalToneA  CompletionSignal = "tone_a"
	SignalToneB  CompletionSignal = "tone_b"
)

// Valid reports whether the value is one of the known signals.
func (signal CompletionSignal) Valid() bool {
	switch signal {
	case SignalSilent, SignalHaptic, SignalToneA, SignalToneB:
		return true
	}
	return false
}
