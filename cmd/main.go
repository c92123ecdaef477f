package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	"stillpoint/internal/core/countdown"
	"stillpoint/internal/core/session"
	"stillpoint/internal/platform"
	"stillpoint/internal/storage"
	"stillpoint/internal/ui/breathing"
	"stillpoint/internal/ui/home"
	"stillpoint/internal/ui/preferences"
	"stillpoint/internal/ui/signal"
	apptheme "stillpoint/internal/ui/theme"
	"stillpoint/internal/ui/timerview"
	"stillpoint/internal/ui/tray"
)

const appName = "Stillpoint"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	guard, err := platform.Acquire(appName)
	if err != nil {
		logger.Error().Err(err).Msg("another instance appears to be running")
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.stillpoint.app")
	mainWindow := fyneApp.NewWindow(appName)
	mainWindow.Resize(fyne.NewSize(380, 560))

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn().Err(err).Msg("loading settings failed, using defaults")
	}

	sessionStore, err := storage.NewSessionStore(appName)
	if err != nil {
		logger.Warn().Err(err).Msg("config dir unavailable, session counts will not survive restarts")
		sessionStore = storage.NewFileStore(filepath.Join(os.TempDir(), appName, "sessions.yaml"))
	}
	tracker := session.NewTracker(sessionStore)

	timer := countdown.New()
	ticker := countdown.NewTicker(timer, time.Second)
	player := signal.NewPlayer(fyneApp, logger)

	applyTheme := func(dark bool) {
		if dark {
			fyneApp.Settings().SetTheme(apptheme.Dark())
		} else {
			fyneApp.Settings().SetTheme(apptheme.Light())
		}
	}
	applyTheme(settings.DarkTheme)

	var (
		homeScreen  *home.Screen
		view        *timerview.View
		trayManager *tray.Manager
		engine      *breathing.Engine
		active      preferences.Settings
	)

	refreshSessions := func() {
		count, err := tracker.TodayCount(time.Now())
		if err != nil {
			// Session counting is a soft feature; show zero and move on.
			logger.Warn().Err(err).Msg("reading session count failed")
			count = 0
		}
		homeScreen.SetSessionsToday(count)
	}

	showHome := func() {
		mainWindow.SetContent(homeScreen.Root())
		if trayManager != nil {
			trayManager.SetInSession(false)
			trayManager.SetPaused(false)
		}
	}

	endSession := func() {
		ticker.Stop()
		engine.Stop()
		if err := timer.Cancel(); err != nil {
			logger.Debug().Err(err).Msg("cancel outside a run")
		}
		refreshSessions()
		showHome()
	}

	togglePause := func() {
		switch timer.Current() {
		case countdown.StateRunning:
			if err := timer.Pause(); err != nil {
				return
			}
			engine.Stop()
			view.SetPaused(true)
			if trayManager != nil {
				trayManager.SetPaused(true)
			}
		case countdown.StatePaused:
			if err := timer.Resume(); err != nil {
				return
			}
			if active.Breathing {
				engine.Start(context.Background())
			}
			view.SetPaused(false)
			if trayManager != nil {
				trayManager.SetPaused(false)
			}
		}
	}

	view = timerview.New(timerview.Callbacks{
		OnTogglePause: togglePause,
		OnEnd:         func() { endSession() },
	})

	engine = breathing.New(settings.BreathingConfig(), func(scale float64) {
		view.SetScale(scale)
	})
	engine.SetOnPhaseChange(func(phase breathing.Phase) {
		view.SetPhase(phase.Caption())
	})

	startRun := func(updated preferences.Settings) {
		active = updated
		if err := timer.Start(updated.Duration); err != nil {
			logger.Error().Err(err).Msg("starting countdown failed")
			return
		}
		logger.Info().
			Int("seconds", updated.Duration.TotalSeconds()).
			Str("signal", string(updated.Signal)).
			Msg("session started")

		engine.SetConfig(updated.BreathingConfig())
		view.SetRemaining(timer.FormattedRemaining())
		view.SetPaused(false)
		view.SetBreathingVisible(updated.Breathing)
		view.SetPhase("")
		mainWindow.SetContent(view.Root())

		if updated.Breathing {
			engine.Start(context.Background())
		}
		ticker.Start()
		if trayManager != nil {
			trayManager.SetInSession(true)
			trayManager.SetStatus(timer.FormattedRemaining())
		}
	}

	homeScreen = home.New(settings, home.Callbacks{
		OnStart: startRun,
		OnSettingsChanged: func(updated preferences.Settings) {
			if updated.DarkTheme != settings.DarkTheme {
				applyTheme(updated.DarkTheme)
			}
			settings = updated
			if err := storage.SaveSettings(appName, updated); err != nil {
				logger.Warn().Err(err).Msg("saving settings failed")
			}
		},
	})

	// Runs on the ticker goroutine: the timer's single-fire expiry contract
	// guarantees one recorded session per completed run.
	timer.SetOnExpired(func() {
		ticker.Stop()
		engine.Stop()
		player.Play(active.Signal)

		if _, err := tracker.RecordCompletion(time.Now()); err != nil {
			logger.Error().Err(err).Msg("recording completed session failed")
		}
		logger.Info().Msg("session complete")

		timer.Reset()
		refreshSessions()
		fyne.Do(showHome)
	})

	ticker.SetOnTick(func() {
		remaining := timer.FormattedRemaining()
		view.SetRemaining(remaining)
		if trayManager != nil {
			fyne.Do(func() {
				trayManager.SetStatus(remaining)
			})
		}
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				mainWindow.Show()
				mainWindow.RequestFocus()
			},
			OnTogglePause: togglePause,
			OnEndSession:  endSession,
			OnQuit: func() {
				ticker.Stop()
				engine.Stop()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(fynetheme.MediaPlayIcon())
	}

	// Stop the tick source on window teardown as well; a run abandoned by
	// closing the window must not leave the loop alive.
	mainWindow.SetOnClosed(func() {
		ticker.Stop()
		engine.Stop()
	})

	mainWindow.SetContent(homeScreen.Root())
	refreshSessions()
	mainWindow.ShowAndRun()
}
