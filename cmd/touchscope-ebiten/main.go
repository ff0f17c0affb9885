// Command touchscope-ebiten runs the measurement overlay on a plain
// game loop instead of a widget toolkit. It polls the full touch list
// every frame, which is exactly the wholesale resync the tracker
// expects, and emulates a single contact from the left mouse button.
package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"TouchScope/internal/export"
	"TouchScope/internal/geom"
	"TouchScope/internal/scene"
	"TouchScope/internal/state"
)

const hudHeight = 18

type game struct {
	tracker *state.Tracker
	cfg     scene.Config
	face    *text.GoTextFace

	touchIDs []ebiten.TouchID
	contacts []state.Contact
	touching bool

	lastMouse bool
	lastSave  bool
	lastPDF   bool
	lastReset bool

	width  int
	height int
	status string
}

func newGame() (*game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	cfg := scene.DefaultConfig()
	return &game{
		tracker: state.NewTracker(),
		cfg:     cfg,
		face:    &text.GoTextFace{Source: src, Size: float64(cfg.LabelSize)},
		status:  "touch or click to measure",
	}, nil
}

func (g *game) Update() error {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		g.contacts = g.contacts[:0]
		for _, id := range g.touchIDs {
			x, y := ebiten.TouchPosition(id)
			g.contacts = append(g.contacts, state.Contact{
				ID:  int64(id),
				Pos: geom.Pt(float32(x), float32(y)),
			})
		}
		g.tracker.ContactsChanged(g.contacts)
		g.touching = true
	} else if g.touching {
		g.tracker.ContactsEnded(nil)
		g.touching = false
	}

	mouse := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouse || g.lastMouse {
		mx, my := ebiten.CursorPosition()
		p := geom.Pt(float32(mx), float32(my))
		switch {
		case mouse && !g.lastMouse:
			g.tracker.PointerDown(p)
		case mouse && g.lastMouse:
			g.tracker.PointerDragged(p)
		default:
			g.tracker.PointerUp()
		}
	}
	g.lastMouse = mouse

	if save := ebiten.IsKeyPressed(ebiten.KeyS); save && !g.lastSave {
		g.savePNG()
		g.lastSave = true
	} else {
		g.lastSave = save
	}
	if pdf := ebiten.IsKeyPressed(ebiten.KeyE); pdf && !g.lastPDF {
		g.savePDF()
		g.lastPDF = true
	} else {
		g.lastPDF = pdf
	}
	if reset := ebiten.IsKeyPressed(ebiten.KeyR); reset && !g.lastReset {
		g.tracker.Reset()
		g.status = "reset"
		g.lastReset = true
	} else {
		g.lastReset = reset
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	sc := scene.Build(g.tracker.Points(), g.cfg)

	for _, e := range sc.Edges {
		vector.StrokeLine(screen, e.A.X, e.A.Y, e.B.X, e.B.Y, g.cfg.StrokeWidth, g.cfg.GeometryColor, true)
	}
	for _, c := range sc.Crosshairs {
		vector.StrokeLine(screen, c.A.X, c.A.Y, c.B.X, c.B.Y, g.cfg.StrokeWidth, g.cfg.CrosshairColor, true)
	}
	for _, l := range sc.Distances {
		g.drawLabel(screen, l)
	}
	for _, l := range sc.Angles {
		g.drawLabel(screen, l)
	}

	// The debug font is white, so the HUD gets a dark backing strip.
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), hudHeight, color.NRGBA{R: 40, G: 40, B: 40, A: 230}, false)
	hud := fmt.Sprintf("contacts=%d points=%d  [S] png [E] pdf [R] reset  %s",
		g.tracker.ContactCount(), len(sc.Crosshairs)/2, g.status)
	ebitenutil.DebugPrintAt(screen, hud, 8, 1)
}

func (g *game) drawLabel(dst *ebiten.Image, l scene.Label) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(l.At.X), float64(l.At.Y))
	op.ColorScale.ScaleWithColor(g.cfg.GeometryColor)
	text.Draw(dst, l.Text, g.face, op)
}

// Layout makes the drawing surface track the window, so event and
// canvas coordinates stay identical.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *game) savePNG() {
	name := export.Filename("png")
	sc := scene.Build(g.tracker.Points(), g.cfg)
	if err := export.WritePNG(name, sc, g.cfg, g.width, g.height); err != nil {
		log.Printf("[ebiten] PNG export failed: %v", err)
		g.status = "png failed"
		return
	}
	log.Printf("[ebiten] wrote %s", name)
	g.status = "saved " + name
}

func (g *game) savePDF() {
	name := export.Filename("pdf")
	sc := scene.Build(g.tracker.Points(), g.cfg)
	if err := export.WritePDF(name, sc); err != nil {
		log.Printf("[ebiten] PDF export failed: %v", err)
		g.status = "pdf failed"
		return
	}
	log.Printf("[ebiten] wrote %s", name)
	g.status = "saved " + name
}

func main() {
	g, err := newGame()
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("TouchScope")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
