package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnTogglePause func()
	OnEndSession  func()
	OnQuit        func()
}

// Manager handles system tray state on platforms that support one.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	endItem     *fyne.MenuItem
	callbacks   Callbacks
	paused      bool
	inSession   bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "ready",
	}

	manager.statusItem = fyne.NewMenuItem("Stillpoint: ready", nil)
	manager.statusItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})
	manager.pauseItem.Disabled = true

	manager.endItem = fyne.NewMenuItem("End session", func() {
		if manager.callbacks.OnEndSession != nil {
			manager.callbacks.OnEndSession()
		}
	})
	manager.endItem.Disabled = true

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status line, typically with the remaining time.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshMenu()
}

// SetPaused updates the pause toggle label.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	if paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.refreshMenu()
}

// SetInSession toggles session-bound menu items.
func (manager *Manager) SetInSession(inSession bool) {
	manager.inSession = inSession
	manager.pauseItem.Disabled = !inSession
	manager.endItem.Disabled = !inSession
	if !inSession {
		manager.statusLabel = "ready"
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	status := manager.statusLabel
	if manager.paused && manager.inSession {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Stillpoint: %s", status)

	manager.app.SetSystemTrayMenu(fyne.NewMenu("Stillpoint",
		manager.statusItem,
		fyne.NewMenuItem("Show window", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.pauseItem,
		manager.endItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
