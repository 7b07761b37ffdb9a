package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"ChartAnimator/internal/backdrop"
	"ChartAnimator/internal/state"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".svg"}

// Controls is the toolbar above the chart: import, playback, speed and
// status.
type Controls struct {
	chart       *ChartWidget
	window      fyne.Window
	watch       bool
	speedSlider *widget.Slider
	speedLabel  *widget.Label
	statusLabel *widget.Label
	infoLabel   *widget.Label
}

func NewControls(chart *ChartWidget, window fyne.Window, watch bool) *Controls {
	c := &Controls{
		chart:       chart,
		window:      window,
		watch:       watch,
		speedLabel:  widget.NewLabel(""),
		statusLabel: widget.NewLabel(""),
		infoLabel:   widget.NewLabel("Ready"),
	}

	e := chart.Editor()
	c.speedSlider = widget.NewSlider(state.MinSpeed, state.MaxSpeed)
	c.speedSlider.Step = 1
	c.speedSlider.SetValue(e.Speed())
	c.speedSlider.OnChanged = func(v float64) {
		e.SetSpeed(v)
	}

	chart.OnStateChange = c.Update
	chart.OnStatus = c.infoLabel.SetText
	c.Update()
	return c
}

// Update refreshes the speed and status labels from the editor.
func (c *Controls) Update() {
	e := c.chart.Editor()
	c.speedLabel.SetText(speedText(e.Speed()))
	c.statusLabel.SetText(statusText(e))
}

func speedText(speed float64) string {
	return fmt.Sprintf("Speed: %.0f px/s", speed)
}

func statusText(e *state.Editor) string {
	return fmt.Sprintf("%s | %3.0f%% | %d points", e.State(), e.Progress()*100, e.PointCount())
}

// ImportImage opens a file dialog and loads the chosen image as backdrop.
func (c *Controls) ImportImage() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("[BACKDROP] File dialog error: %v", err)
			c.infoLabel.SetText("Could not open file")
			return
		}
		img, err := backdrop.FromURI(rc)
		if err != nil {
			log.Printf("[BACKDROP] %v", err)
			c.infoLabel.SetText("Error reading image")
			return
		}
		c.chart.LoadBackdrop(img, c.watch)
	}, c.window)
	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	d.Show()
}

// Toolbar lays the controls out in one row.
func (c *Controls) Toolbar() fyne.CanvasObject {
	e := c.chart.Editor()
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), c.ImportImage),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MediaPlayIcon(), e.Start),
		widget.NewToolbarAction(theme.MediaPauseIcon(), e.Pause),
		widget.NewToolbarAction(theme.MediaReplayIcon(), e.Reset),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), e.Clear),
	)

	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(180, 35)), c.speedSlider)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		c.speedLabel,
		sliderContainer,
		widget.NewSeparator(),
		c.statusLabel,
		layout.NewSpacer(),
		c.infoLabel,
	)
}
