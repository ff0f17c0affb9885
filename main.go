package main

import (
	"TouchScope/internal/state"
	"TouchScope/internal/ui"
)

func main() {
	tracker := state.NewTracker()
	overlay := ui.NewOverlay(tracker)
	ui.RunApp(overlay)
}
