package preferences

import (
	"time"

	"stillpoint/internal/core/model"
	"stillpoint/internal/ui/breathing"
)

// Settings defines editable user preferences.
type Settings struct {
	Duration model.Duration
	Signal   model.CompletionSignal

	Breathing bool
	DarkTheme bool

	InhaleSeconds int
	HoldSeconds   int
	ExhaleSeconds int
}

// DefaultSettings returns default settings for Stillpoint.
func DefaultSettings() Settings {
	return Settings{
		Duration:  model.Duration{Minutes: 10},
		Signal:    model.SignalToneA,
		Breathing: true,
		DarkTheme: false,

		InhaleSeconds: 4,
		HoldSeconds:   2,
		ExhaleSeconds: 6,
	}
}

// BreathingConfig converts the cadence fields for the animation engine.
func (settings Settings) BreathingConfig() breathing.Config {
	config := breathing.DefaultConfig()
	if settings.InhaleSeconds > 0 {
		config.Inhale = time.Duration(settings.InhaleSeconds) * time.Second
	}
	if settings.HoldSeconds >= 0 {
		config.Hold = time.Duration(settings.HoldSeconds) * time.Second
	}
	if settings.ExhaleSeconds > 0 {
		config.Exhale = time.Duration(settings.ExhaleSeconds) * time.Second
	}
	return config
}
