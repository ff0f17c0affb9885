package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"TouchScope/internal/export"
	"TouchScope/internal/geom"
	"TouchScope/internal/scene"
	"TouchScope/internal/state"
)

// Overlay is the interactive measurement surface. It forwards mouse
// and touch events to the tracker and repaints crosshairs, connecting
// edges and measurement labels for whatever the tracker holds.
type Overlay struct {
	widget.BaseWidget
	tracker *state.Tracker
	cfg     scene.Config

	// Toolkit touch events carry no contact id, so the overlay keeps
	// its own slot per finger and matches lift and drag events to the
	// nearest active slot. Slots are only touched on the event thread.
	slots    []state.Contact
	nextSlot int64

	statusBar *widget.Label
}

var _ fyne.Widget = (*Overlay)(nil)
var _ fyne.Draggable = (*Overlay)(nil)
var _ desktop.Mouseable = (*Overlay)(nil)
var _ desktop.Hoverable = (*Overlay)(nil)
var _ mobile.Touchable = (*Overlay)(nil)

// NewOverlay wires an overlay to tr and takes over its change
// callback for repaints.
func NewOverlay(tr *state.Tracker) *Overlay {
	o := &Overlay{
		tracker:   tr,
		cfg:       scene.DefaultConfig(),
		statusBar: widget.NewLabel("Touch or click to measure"),
	}
	tr.OnChange = o.stateChanged
	o.ExtendBaseWidget(o)
	return o
}

func (o *Overlay) stateChanged() {
	o.Refresh()
	o.statusBar.SetText(o.statusText())
}

// StatusBar returns the label the overlay reports into, for docking at
// the bottom of the window.
func (o *Overlay) StatusBar() fyne.CanvasObject {
	return o.statusBar
}

func (o *Overlay) SetStatus(text string) {
	o.statusBar.SetText(text)
}

func (o *Overlay) statusText() string {
	if n := o.tracker.ContactCount(); n > 0 {
		return fmt.Sprintf("Tracking %d contact(s)", n)
	}
	if o.tracker.Pressed() {
		return "Tracking pointer"
	}
	if n := len(o.tracker.Snapshot()); n > 0 {
		return fmt.Sprintf("Released, showing last %d point(s)", n)
	}
	return "Touch or click to measure"
}

func (o *Overlay) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		o.tracker.PointerDown(geom.Pt(e.Position.X, e.Position.Y))
	}
}

func (o *Overlay) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		o.tracker.PointerUp()
	}
}

// Dragged moves the nearest touch slot while fingers are down and
// falls back to the emulated pointer otherwise. Mobile drivers only
// report drags, never touch moves, so this is how a held finger
// travels.
func (o *Overlay) Dragged(e *fyne.DragEvent) {
	p := geom.Pt(e.Position.X, e.Position.Y)
	if len(o.slots) > 0 {
		o.slots[o.nearestSlot(p)].Pos = p
		o.tracker.ContactsChanged(o.slots)
		return
	}
	o.tracker.PointerDragged(p)
}

func (o *Overlay) DragEnd() {
	if len(o.slots) == 0 {
		o.tracker.PointerUp()
	}
}

func (o *Overlay) TouchDown(e *mobile.TouchEvent) {
	o.nextSlot++
	o.slots = append(o.slots, state.Contact{ID: o.nextSlot, Pos: geom.Pt(e.Position.X, e.Position.Y)})
	o.tracker.ContactsChanged(o.slots)
}

func (o *Overlay) TouchUp(e *mobile.TouchEvent) {
	if len(o.slots) == 0 {
		return
	}
	i := o.nearestSlot(geom.Pt(e.Position.X, e.Position.Y))
	o.slots = append(o.slots[:i], o.slots[i+1:]...)
	o.tracker.ContactsEnded(o.slots)
}

func (o *Overlay) TouchCancel(e *mobile.TouchEvent) {
	o.slots = o.slots[:0]
	o.tracker.ContactsCancelled()
}

// nearestSlot assumes at least one slot. With a single finger the
// match is exact; with several it picks the slot closest to the event.
func (o *Overlay) nearestSlot(p geom.Point) int {
	best := 0
	bestDist := geom.Distance(o.slots[0].Pos, p)
	for i, c := range o.slots[1:] {
		if d := geom.Distance(c.Pos, p); d < bestDist {
			best, bestDist = i+1, d
		}
	}
	return best
}

// SnapshotPNG writes the current scene to a timestamped PNG in the
// working directory.
func (o *Overlay) SnapshotPNG() {
	name := export.Filename("png")
	w, h := o.canvasSize()
	sc := scene.Build(o.tracker.Points(), o.cfg)
	if err := export.WritePNG(name, sc, o.cfg, w, h); err != nil {
		log.Printf("[ui] PNG export failed: %v", err)
		o.SetStatus("Error saving PNG")
		return
	}
	log.Printf("[ui] wrote %s", name)
	o.SetStatus("Saved " + name)
}

// ExportPDF writes the current scene to a timestamped PDF in the
// working directory.
func (o *Overlay) ExportPDF() {
	name := export.Filename("pdf")
	sc := scene.Build(o.tracker.Points(), o.cfg)
	if err := export.WritePDF(name, sc); err != nil {
		log.Printf("[ui] PDF export failed: %v", err)
		o.SetStatus("Error saving PDF")
		return
	}
	log.Printf("[ui] wrote %s", name)
	o.SetStatus("Saved " + name)
}

// Clear drops every tracked contact and the snapshot.
func (o *Overlay) Clear() {
	o.slots = o.slots[:0]
	o.tracker.Reset()
}

func (o *Overlay) canvasSize() (int, int) {
	s := o.Size()
	w, h := int(s.Width), int(s.Height)
	if w <= 0 || h <= 0 {
		w, h = 1024, 768
	}
	return w, h
}

func (o *Overlay) MouseIn(*desktop.MouseEvent)    {}
func (o *Overlay) MouseOut()                      {}
func (o *Overlay) MouseMoved(*desktop.MouseEvent) {}
