package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"ChartAnimator/internal/backdrop"
	"ChartAnimator/internal/state"
)

var (
	pathColor   = color.NRGBA{R: 37, G: 99, B: 235, A: 255}
	pointColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	dragColor   = color.NRGBA{R: 250, G: 204, B: 21, A: 255}
	markerColor = color.NRGBA{R: 220, G: 38, B: 38, A: 255}
)

const (
	pathStroke   = 3
	pointRadius  = 6
	markerRadius = 8
)

// ChartWidget is the canvas the user places points on. It forwards pointer
// input to a state.Editor and draws the backdrop, the path, the points and
// the animated marker.
type ChartWidget struct {
	widget.BaseWidget
	editor   *state.Editor
	backdrop *backdrop.Image
	watcher  *backdrop.Watcher

	// OnStateChange is called after the editor changed, on the UI goroutine.
	OnStateChange func()
	// OnStatus receives short messages for the status bar.
	OnStatus func(string)
}

var _ fyne.Widget = (*ChartWidget)(nil)
var _ fyne.Draggable = (*ChartWidget)(nil)
var _ desktop.Mouseable = (*ChartWidget)(nil)
var _ desktop.Hoverable = (*ChartWidget)(nil)

func NewChartWidget(editor *state.Editor) *ChartWidget {
	c := &ChartWidget{editor: editor}
	editor.OnChange = c.editorChanged
	c.ExtendBaseWidget(c)
	return c
}

func (c *ChartWidget) Editor() *state.Editor { return c.editor }

func (c *ChartWidget) Backdrop() *backdrop.Image { return c.backdrop }

func (c *ChartWidget) editorChanged() {
	c.Refresh()
	if c.OnStateChange != nil {
		c.OnStateChange()
	}
}

func (c *ChartWidget) setStatus(text string) {
	if c.OnStatus != nil {
		c.OnStatus(text)
	}
}

// SetBackdrop replaces the backdrop image. A nil image is ignored.
func (c *ChartWidget) SetBackdrop(img *backdrop.Image) {
	if img == nil {
		return
	}
	c.backdrop = img
	c.Refresh()
	c.setStatus("Loaded " + img.Name)
}

// LoadBackdrop sets img and, when watch is set and the image came from a
// file, reloads it whenever that file changes.
func (c *ChartWidget) LoadBackdrop(img *backdrop.Image, watch bool) {
	if img == nil {
		return
	}
	c.stopWatching()
	c.SetBackdrop(img)
	if !watch || img.Path == "" {
		return
	}

	w, err := backdrop.NewWatcher(img.Path,
		func(reloaded *backdrop.Image) {
			fyne.Do(func() { c.SetBackdrop(reloaded) })
		},
		func(err error) {
			log.Printf("[BACKDROP] Watch error: %v", err)
		})
	if err != nil {
		log.Printf("[BACKDROP] Could not watch %s: %v", img.Path, err)
		return
	}
	c.watcher = w
	log.Printf("[BACKDROP] Watching %s", w.Path())
}

func (c *ChartWidget) stopWatching() {
	if c.watcher == nil {
		return
	}
	if err := c.watcher.Close(); err != nil {
		log.Printf("[BACKDROP] Error closing watcher: %v", err)
	}
	c.watcher = nil
}

// Close stops the animation loop and the backdrop watcher.
func (c *ChartWidget) Close() {
	c.stopWatching()
	c.editor.Close()
}

func (c *ChartWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.editor.PointerDown(float64(e.Position.X), float64(e.Position.Y))
}

func (c *ChartWidget) MouseUp(*desktop.MouseEvent) {
	c.editor.PointerUp()
}

func (c *ChartWidget) MouseMoved(e *desktop.MouseEvent) {
	c.pointerMove(e.Position)
}

// Dragged follows the pointer while a point is grabbed. The dragged widget
// gets no MouseOut when the pointer leaves it, so the bounds are checked here.
func (c *ChartWidget) Dragged(e *fyne.DragEvent) {
	c.pointerMove(e.Position)
}

func (c *ChartWidget) pointerMove(pos fyne.Position) {
	x, y := float64(pos.X), float64(pos.Y)
	if !c.editor.Surface().Contains(x, y) {
		c.editor.PointerLeave()
		return
	}
	c.editor.PointerMove(x, y)
}

func (c *ChartWidget) DragEnd() {
	c.editor.PointerUp()
}

func (c *ChartWidget) MouseIn(*desktop.MouseEvent) {}

func (c *ChartWidget) MouseOut() {
	c.editor.PointerLeave()
}

func (c *ChartWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &chartRenderer{chart: c}
	r.background = canvas.NewRectangle(color.NRGBA{R: 245, G: 246, B: 248, A: 255})
	r.image = canvas.NewImageFromResource(nil)
	r.image.FillMode = canvas.ImageFillStretch
	r.rebuild()
	return r
}

type chartRenderer struct {
	chart      *ChartWidget
	background *canvas.Rectangle
	image      *canvas.Image
	shown      *backdrop.Image
	objects    []fyne.CanvasObject
}

func (r *chartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *chartRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.image.Resize(size)
	r.chart.editor.Resize(state.NewSurface(float64(size.Width), float64(size.Height)))
	r.rebuild()
}

func (r *chartRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *chartRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.chart)
}

func (r *chartRenderer) Destroy() {}

// rebuild regenerates the path, point and marker objects from the editor.
func (r *chartRenderer) rebuild() {
	e := r.chart.editor
	objects := []fyne.CanvasObject{r.background}

	if img := r.chart.backdrop; img != nil {
		if img != r.shown {
			r.image.Resource = img.Resource()
			r.image.Refresh()
			r.shown = img
		}
		objects = append(objects, r.image)
	}

	pts := e.Points()
	surface := e.Surface()
	pixels := make([]fyne.Position, len(pts))
	for i, p := range pts {
		px := surface.ToPixels(p)
		pixels[i] = fyne.NewPos(float32(px.X), float32(px.Y))
	}

	for i := 1; i < len(pixels); i++ {
		segment := canvas.NewLine(pathColor)
		segment.StrokeWidth = pathStroke
		segment.Position1 = pixels[i-1]
		segment.Position2 = pixels[i]
		objects = append(objects, segment)
	}

	dragging, _ := e.Dragging()
	for i, pos := range pixels {
		fill := pointColor
		if pts[i].ID == dragging {
			fill = dragColor
		}
		objects = append(objects, dot(pos, pointRadius, fill, pathColor))
	}

	if m, ok := e.Marker(); ok {
		pos := fyne.NewPos(float32(m.X), float32(m.Y))
		objects = append(objects, dot(pos, markerRadius, markerColor, color.White))
	}

	r.objects = objects
}

func dot(center fyne.Position, radius float32, fill, stroke color.Color) *canvas.Circle {
	c := canvas.NewCircle(fill)
	c.StrokeColor = stroke
	c.StrokeWidth = 2
	c.Resize(fyne.NewSize(2*radius, 2*radius))
	c.Move(center.SubtractXY(radius, radius))
	return c
}
