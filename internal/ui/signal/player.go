package signal

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"

	"stillpoint/internal/core/model"
)

const (
	toneAFrequency = 523.25 // C5
	toneBFrequency = 392.0  // G4

	toneMillis = 400
	pulseGap   = 150 * time.Millisecond
)

// Player maps a completion signal to a host side effect. The countdown core
// never touches audio or notifications itself; this is the single place where
// that mapping lives.
type Player struct {
	app    fyne.App
	logger zerolog.Logger
}

// NewPlayer creates a player bound to the running Fyne app.
func NewPlayer(app fyne.App, logger zerolog.Logger) *Player {
	return &Player{
		app:    app,
		logger: logger.With().Str("component", "signal").Logger(),
	}
}

// Play fires the configured completion side effect. Failures are logged and
// swallowed: a missed chime must not break the session flow.
func (player *Player) Play(signal model.CompletionSignal) {
	switch signal {
	case model.SignalSilent:
	case model.SignalHaptic:
		// Desktop stand-in for a haptic pulse.
		player.app.SendNotification(fyne.NewNotification("Stillpoint", "Meditation complete"))
	case model.SignalToneA:
		player.beep(toneAFrequency, 1)
	case model.SignalToneB:
		player.beep(toneBFrequency, 2)
	default:
		player.logger.Warn().Str("signal", string(signal)).Msg("unknown completion signal")
	}
}

// beep plays the tone off the caller's goroutine; beeep blocks for the full
// tone duration on some platforms.
func (player *Player) beep(frequency float64, pulses int) {
	go func() {
		for pulse := 0; pulse < pulses; pulse++ {
			if pulse > 0 {
				time.Sleep(pulseGap)
			}
			if err := beeep.Beep(frequency, toneMillis); err != nil {
				player.logger.Warn().Err(err).Msg("tone playback failed")
				return
			}
		}
	}()
}
