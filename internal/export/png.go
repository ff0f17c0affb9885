// Package export writes the current scene to image and document
// files. Both writers consume a built scene, so what lands in the file
// is exactly what the overlay was painting.
package export

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"TouchScope/internal/scene"
)

// Filename returns a timestamped output name like
// touchscope_20060102_150405.png for the given extension.
func Filename(ext string) string {
	return fmt.Sprintf("touchscope_%s.%s", time.Now().Format("20060102_150405"), ext)
}

// The font source is heavyweight, load it once and share it.
var (
	fontOnce sync.Once
	fontSrc  *text.FontSource
	fontErr  error
)

func labelFace(size float64) (text.Face, error) {
	fontOnce.Do(func() {
		fontSrc, fontErr = text.NewFontSource(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("load label font: %w", fontErr)
	}
	return fontSrc.Face(size), nil
}

// WritePNG rasterizes sc onto a w by h canvas and saves it to path.
// The output mirrors the on screen overlay: background fill, red edges
// under black crosshairs, labels on top.
func WritePNG(path string, sc scene.Scene, cfg scene.Config, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("bad canvas size %dx%d", w, h)
	}
	face, err := labelFace(float64(cfg.LabelSize))
	if err != nil {
		return err
	}

	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.FromColor(cfg.Background))
	dc.SetLineWidth(float64(cfg.StrokeWidth))

	dc.SetColor(cfg.GeometryColor)
	for _, e := range sc.Edges {
		dc.DrawLine(float64(e.A.X), float64(e.A.Y), float64(e.B.X), float64(e.B.Y))
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke edges: %w", err)
	}

	dc.SetColor(cfg.CrosshairColor)
	for _, c := range sc.Crosshairs {
		dc.DrawLine(float64(c.A.X), float64(c.A.Y), float64(c.B.X), float64(c.B.Y))
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke crosshairs: %w", err)
	}

	dc.SetFont(face)
	dc.SetColor(cfg.GeometryColor)
	// DrawString anchors on the baseline, labels anchor top left.
	baseline := float64(cfg.LabelSize) * 0.8
	for _, l := range sc.Distances {
		dc.DrawString(l.Text, float64(l.At.X), float64(l.At.Y)+baseline)
	}
	for _, l := range sc.Angles {
		dc.DrawString(l.Text, float64(l.At.X), float64(l.At.Y)+baseline)
	}

	return dc.SavePNG(path)
}
