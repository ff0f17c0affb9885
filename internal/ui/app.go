package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunApp opens the main window around overlay and blocks until it is
// closed. The toolbar docks on top, the status bar underneath, and the
// overlay fills the rest.
func RunApp(overlay *Overlay) {
	myApp := app.New()
	myWindow := myApp.NewWindow("TouchScope")
	myWindow.Resize(fyne.NewSize(1024, 768))

	toolbar := NewToolbar(overlay)
	content := container.NewBorder(toolbar, overlay.StatusBar(), nil, nil, overlay)
	myWindow.SetContent(content)

	// Single key shortcuts; the overlay itself never takes focus.
	myWindow.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case 's', 'S':
			overlay.SnapshotPNG()
		case 'e', 'E':
			overlay.ExportPDF()
		case 'r', 'R':
			overlay.Clear()
		}
	})

	myWindow.ShowAndRun()
}
