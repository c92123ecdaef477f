package timerview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines countdown screen action handlers.
type Callbacks struct {
	OnTogglePause func()
	OnEnd         func()
}

// View is the countdown face of the window: the remaining-time readout, the
// breathing circle and the pause/end controls. It exposes plain setters; the
// caller decides when to redraw.
type View struct {
	root fyne.CanvasObject

	timeLabel   *canvas.Text
	phaseLabel  *canvas.Text
	circle      *canvas.Circle
	circleArea  *fyne.Container
	circleSize  *circleLayout
	pauseButton *widget.Button
	endButton   *widget.Button

	callbacks Callbacks
}

// New creates the countdown screen.
func New(callbacks Callbacks) *View {
	timeLabel := canvas.NewText("--:--", theme.Color(theme.ColorNameForeground))
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeLabel.TextSize = 52

	phaseLabel := canvas.NewText("", theme.Color(theme.ColorNamePlaceHolder))
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextSize = 16

	circle := canvas.NewCircle(circleFill(false))
	circleSize := &circleLayout{scale: 0.55}
	circleArea := container.New(circleSize, circle)

	view := &View{
		timeLabel:  timeLabel,
		phaseLabel: phaseLabel,
		circle:     circle,
		circleArea: circleArea,
		circleSize: circleSize,
		callbacks:  callbacks,
	}

	view.pauseButton = widget.NewButton("Pause", func() {
		if view.callbacks.OnTogglePause != nil {
			view.callbacks.OnTogglePause()
		}
	})
	view.endButton = widget.NewButton("End session", func() {
		if view.callbacks.OnEnd != nil {
			view.callbacks.OnEnd()
		}
	})

	buttons := container.NewGridWithColumns(2, view.pauseButton, view.endButton)
	header := container.NewVBox(timeLabel, phaseLabel)
	view.root = container.NewBorder(header, buttons, nil, nil, circleArea)

	return view
}

// Root returns the screen's canvas tree.
func (view *View) Root() fyne.CanvasObject {
	return view.root
}

// SetRemaining updates the time readout. Safe to call from any goroutine.
func (view *View) SetRemaining(formatted string) {
	fyne.Do(func() {
		view.timeLabel.Text = formatted
		view.timeLabel.Refresh()
	})
}

// SetPaused flips the pause button label and dims the circle.
func (view *View) SetPaused(paused bool) {
	fyne.Do(func() {
		if paused {
			view.pauseButton.SetText("Resume")
		} else {
			view.pauseButton.SetText("Pause")
		}
		view.circle.FillColor = circleFill(paused)
		view.circle.Refresh()
	})
}

// SetBreathingVisible shows or hides the breathing circle and its caption.
func (view *View) SetBreathingVisible(visible bool) {
	fyne.Do(func() {
		if visible {
			view.circle.Show()
			view.phaseLabel.Show()
		} else {
			view.circle.Hide()
			view.phaseLabel.Hide()
		}
		view.circleArea.Refresh()
	})
}

// SetScale resizes the breathing circle. Driven frame by frame by the
// breathing engine.
func (view *View) SetScale(scale float64) {
	fyne.Do(func() {
		view.circleSize.scale = scale
		view.circleArea.Refresh()
	})
}

// SetPhase updates the breathing caption.
func (view *View) SetPhase(caption string) {
	fyne.Do(func() {
		view.phaseLabel.Text = caption
		view.phaseLabel.Refresh()
	})
}

func circleFill(dimmed bool) color.Color {
	base := theme.Color(theme.ColorNamePrimary)
	red, green, blue, _ := base.RGBA()
	alpha := uint8(96)
	if dimmed {
		alpha = 40
	}
	return color.NRGBA{R: uint8(red >> 8), G: uint8(green >> 8), B: uint8(blue >> 8), A: alpha}
}

// circleLayout keeps a single circle centered, sized as a fraction of the
// shorter edge. Mutating scale and refreshing the container re-runs Layout.
type circleLayout struct {
	scale float64
}

func (layout *circleLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	diameter := side * float32(layout.scale)
	if diameter < 0 {
		diameter = 0
	}
	objects[0].Resize(fyne.NewSize(diameter, diameter))
	objects[0].Move(fyne.NewPos((size.Width-diameter)/2, (size.Height-diameter)/2))
}

func (layout *circleLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(180, 180)
}
