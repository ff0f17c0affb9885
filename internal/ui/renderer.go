package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"TouchScope/internal/scene"
)

func (o *Overlay) CreateRenderer() fyne.WidgetRenderer {
	r := &overlayRenderer{overlay: o}
	r.background = canvas.NewRectangle(o.cfg.Background)
	return r
}

type overlayRenderer struct {
	overlay    *Overlay
	background *canvas.Rectangle
}

// Objects rebuilds the whole primitive list from the tracker on every
// repaint. The scene stays small, a handful of strokes and labels, so
// recreating the canvas objects beats diffing them.
func (r *overlayRenderer) Objects() []fyne.CanvasObject {
	cfg := r.overlay.cfg
	sc := scene.Build(r.overlay.tracker.Points(), cfg)

	objects := []fyne.CanvasObject{r.background}
	for _, e := range sc.Edges {
		objects = append(objects, newStroke(e, cfg.GeometryColor, cfg.StrokeWidth))
	}
	for _, c := range sc.Crosshairs {
		objects = append(objects, newStroke(c, cfg.CrosshairColor, cfg.StrokeWidth))
	}
	for _, l := range sc.Distances {
		objects = append(objects, newLabel(l, cfg))
	}
	for _, l := range sc.Angles {
		objects = append(objects, newLabel(l, cfg))
	}
	return objects
}

func newStroke(s scene.Segment, col color.Color, width float32) *canvas.Line {
	ln := canvas.NewLine(col)
	ln.StrokeWidth = width
	ln.Position1 = fyne.NewPos(s.A.X, s.A.Y)
	ln.Position2 = fyne.NewPos(s.B.X, s.B.Y)
	return ln
}

func newLabel(l scene.Label, cfg scene.Config) *canvas.Text {
	t := canvas.NewText(l.Text, cfg.GeometryColor)
	t.TextSize = cfg.LabelSize
	t.Move(fyne.NewPos(l.At.X, l.At.Y))
	return t
}

func (r *overlayRenderer) Refresh() {
	canvas.Refresh(r.overlay)
}

func (r *overlayRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *overlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *overlayRenderer) Destroy() {}
