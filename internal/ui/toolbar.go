package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewToolbar builds the action bar for overlay: PNG snapshot, PDF
// export and reset, with the matching keyboard hints alongside.
func NewToolbar(overlay *Overlay) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.MediaPhotoIcon(), overlay.SnapshotPNG),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), overlay.ExportPDF),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), overlay.Clear),
	)

	return container.NewHBox(
		widget.NewLabel("TouchScope"),
		widget.NewSeparator(),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("S: save PNG, E: export PDF, R: reset"),
		layout.NewSpacer(),
	)
}
