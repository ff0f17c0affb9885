package export

import (
	"fmt"
	"math"
	"time"

	"github.com/jung-kurt/gofpdf"

	"TouchScope/internal/geom"
	"TouchScope/internal/scene"
)

// WritePDF renders sc onto a landscape A4 page at path. The drawing is
// scaled uniformly so the whole scene fits inside the page margins and
// is centered in the remaining area; pixel labels keep their values,
// only the geometry shrinks.
func WritePDF(path string, sc scene.Scene) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	const (
		margin  = 15.0
		headerH = 12.0
	)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(margin, margin-5, "TouchScope measurement")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.Text(margin, margin, fmt.Sprintf("%s, %d point(s), %d edge(s)",
		time.Now().Format("2006-01-02 15:04:05"), len(sc.Crosshairs)/2, len(sc.Edges)))

	availW := pageW - 2*margin
	availH := pageH - 2*margin - headerH
	lo, hi := sc.Bounds()
	spanX := float64(hi.X - lo.X)
	spanY := float64(hi.Y - lo.Y)

	// Uniform page fit, never magnified past 1mm per pixel.
	scale := 1.0
	if spanX > 0 {
		scale = math.Min(scale, availW/spanX)
	}
	if spanY > 0 {
		scale = math.Min(scale, availH/spanY)
	}
	offX := margin + (availW-spanX*scale)/2
	offY := margin + headerH + (availH-spanY*scale)/2
	tx := func(p geom.Point) (float64, float64) {
		return offX + float64(p.X-lo.X)*scale, offY + float64(p.Y-lo.Y)*scale
	}

	pdf.SetLineWidth(0.4)
	pdf.SetDrawColor(255, 0, 0)
	for _, e := range sc.Edges {
		x1, y1 := tx(e.A)
		x2, y2 := tx(e.B)
		pdf.Line(x1, y1, x2, y2)
	}
	pdf.SetDrawColor(0, 0, 0)
	for _, c := range sc.Crosshairs {
		x1, y1 := tx(c.A)
		x2, y2 := tx(c.B)
		pdf.Line(x1, y1, x2, y2)
	}

	// Label text is UTF-8, the core fonts want cp1252.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(255, 0, 0)
	for _, l := range sc.Distances {
		x, y := tx(l.At)
		pdf.Text(x, y, tr(l.Text))
	}
	for _, l := range sc.Angles {
		x, y := tx(l.At)
		pdf.Text(x, y, tr(l.Text))
	}

	return pdf.OutputFileAndClose(path)
}
