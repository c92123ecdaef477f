package home

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"stillpoint/internal/core/model"
	"stillpoint/internal/ui/preferences"
)

// Callbacks defines selection screen action handlers.
type Callbacks struct {
	// OnStart begins a countdown with the collected settings.
	OnStart func(preferences.Settings)
	// OnSettingsChanged fires whenever a toggle or picker changes, so the
	// host can persist and apply theme/animation choices immediately.
	OnSettingsChanged func(preferences.Settings)
}

var signalLabels = []string{"Silent", "Vibrate", "Bell", "Singing bowl"}

var signalByLabel = map[string]model.CompletionSignal{
	"Silent":       model.SignalSilent,
	"Vibrate":      model.SignalHaptic,
	"Bell":         model.SignalToneA,
	"Singing bowl": model.SignalToneB,
}

// Screen is the duration/signal selection face of the window.
type Screen struct {
	root fyne.CanvasObject

	hours   *widget.Select
	minutes *widget.Select
	seconds *widget.Select

	signalGroup    *widget.RadioGroup
	breathingCheck *widget.Check
	darkCheck      *widget.Check
	sessionsLabel  *widget.Label
	startButton    *widget.Button

	settings  preferences.Settings
	callbacks Callbacks
}

// New creates the selection screen pre-filled from settings.
func New(settings preferences.Settings, callbacks Callbacks) *Screen {
	screen := &Screen{
		settings:  settings,
		callbacks: callbacks,
	}

	screen.hours = widget.NewSelect(wheelOptions(12), nil)
	screen.minutes = widget.NewSelect(wheelOptions(59), nil)
	screen.seconds = widget.NewSelect(wheelOptions(59), nil)
	screen.hours.SetSelected(wheelValue(settings.Duration.Hours))
	screen.minutes.SetSelected(wheelValue(settings.Duration.Minutes))
	screen.seconds.SetSelected(wheelValue(settings.Duration.Seconds))

	screen.signalGroup = widget.NewRadioGroup(signalLabels, nil)
	screen.signalGroup.SetSelected(labelForSignal(settings.Signal))

	screen.breathingCheck = widget.NewCheck("Breathing circle", nil)
	screen.breathingCheck.SetChecked(settings.Breathing)

	screen.darkCheck = widget.NewCheck("Dark theme", nil)
	screen.darkCheck.SetChecked(settings.DarkTheme)

	screen.sessionsLabel = widget.NewLabel("Sessions today: 0")
	screen.sessionsLabel.Alignment = fyne.TextAlignCenter

	screen.startButton = widget.NewButton("Begin", screen.handleStart)
	screen.startButton.Importance = widget.HighImportance

	onChanged := func(string) { screen.handleChange() }
	screen.hours.OnChanged = onChanged
	screen.minutes.OnChanged = onChanged
	screen.seconds.OnChanged = onChanged
	screen.signalGroup.OnChanged = onChanged
	screen.breathingCheck.OnChanged = func(bool) { screen.handleChange() }
	screen.darkCheck.OnChanged = func(bool) { screen.handleChange() }

	pickers := container.NewGridWithColumns(3,
		container.NewVBox(centeredLabel("Hours"), screen.hours),
		container.NewVBox(centeredLabel("Minutes"), screen.minutes),
		container.NewVBox(centeredLabel("Seconds"), screen.seconds),
	)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Duration", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		pickers,
		widget.NewLabelWithStyle("When time is up", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		screen.signalGroup,
		widget.NewSeparator(),
		screen.breathingCheck,
		screen.darkCheck,
	)

	bottom := container.NewVBox(screen.sessionsLabel, screen.startButton)
	screen.root = container.NewBorder(nil, bottom, nil, nil, form)

	screen.refreshStartButton()
	return screen
}

// Root returns the screen's canvas tree.
func (screen *Screen) Root() fyne.CanvasObject {
	return screen.root
}

// Settings returns the current widget values as a settings snapshot.
func (screen *Screen) Settings() preferences.Settings {
	settings := screen.settings
	settings.Duration = model.Duration{
		Hours:   wheelNumber(screen.hours.Selected),
		Minutes: wheelNumber(screen.minutes.Selected),
		Seconds: wheelNumber(screen.seconds.Selected),
	}
	if signal, ok := signalByLabel[screen.signalGroup.Selected]; ok {
		settings.Signal = signal
	}
	settings.Breathing = screen.breathingCheck.Checked
	settings.DarkTheme = screen.darkCheck.Checked
	return settings
}

// SetSessionsToday updates the completed-session counter label. Safe to call
// from any goroutine.
func (screen *Screen) SetSessionsToday(count int) {
	fyne.Do(func() {
		screen.sessionsLabel.SetText(fmt.Sprintf("Sessions today: %d", count))
	})
}

func (screen *Screen) handleChange() {
	screen.settings = screen.Settings()
	screen.refreshStartButton()
	if screen.callbacks.OnSettingsChanged != nil {
		screen.callbacks.OnSettingsChanged(screen.settings)
	}
}

func (screen *Screen) handleStart() {
	settings := screen.Settings()
	if settings.Duration.IsZero() {
		return
	}
	screen.settings = settings
	if screen.callbacks.OnStart != nil {
		screen.callbacks.OnStart(settings)
	}
}

// refreshStartButton disables Begin while the pickers read 00:00:00.
func (screen *Screen) refreshStartButton() {
	if screen.Settings().Duration.IsZero() {
		screen.startButton.Disable()
		return
	}
	screen.startButton.Enable()
}

func centeredLabel(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Alignment = fyne.TextAlignCenter
	return label
}

// wheelOptions lists "00".."NN" for a picker column.
func wheelOptions(max int) []string {
	options := make([]string, 0, max+1)
	for value := 0; value <= max; value++ {
		options = append(options, wheelValue(value))
	}
	return options
}

func wheelValue(value int) string {
	return fmt.Sprintf("%02d", value)
}

func wheelNumber(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

func labelForSignal(signal model.CompletionSignal) string {
	for label, candidate := range signalByLabel {
		if candidate == signal {
			return label
		}
	}
	return "Silent"
}
