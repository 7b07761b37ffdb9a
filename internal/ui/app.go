package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"ChartAnimator/internal/backdrop"
	"ChartAnimator/internal/config"
	"ChartAnimator/internal/frame"
	"ChartAnimator/internal/state"
)

// NewEditor builds the editor the window animates. Frames come from fyne's
// animation loop, capped at the configured frame rate.
func NewEditor(cfg config.Config) *state.Editor {
	return state.NewEditor(state.Options{
		Scheduler:     frame.NewAnimation(cfg.FrameInterval()),
		Speed:         cfg.Speed,
		CaptureRadius: cfg.CaptureRadius,
	})
}

// RunApp opens the chart animator window and blocks until it is closed.
func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Chart Animator")
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	chart := NewChartWidget(NewEditor(cfg))
	controls := NewControls(chart, myWindow, cfg.WatchBackdrop)

	if cfg.Image != "" {
		img, err := backdrop.ReadFile(cfg.Image)
		if err != nil {
			log.Printf("[BACKDROP] %v", err)
		} else {
			chart.LoadBackdrop(img, cfg.WatchBackdrop)
		}
	}

	myWindow.SetOnClosed(chart.Close)

	content := container.NewBorder(controls.Toolbar(), nil, nil, nil, chart)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
