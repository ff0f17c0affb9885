// Package scene converts a sequence of contact points into the flat
// list of primitives the overlay paints: crosshair strokes, polygon
// edges and measurement labels. Building a scene never touches the
// toolkit, so every frontend and the file exporters share one source
// of truth for what a given set of points looks like.
package scene

import (
	"fmt"
	"image/color"
	"math"

	"TouchScope/internal/geom"
)

// Config collects the drawing parameters. The zero value is not
// useful; start from DefaultConfig.
type Config struct {
	// CrosshairRadius is the half length of each crosshair arm.
	CrosshairRadius float32
	// DistanceOffset displaces a distance label from its edge midpoint.
	DistanceOffset geom.Point
	// AngleOffset displaces an angle label from its vertex.
	AngleOffset geom.Point
	// StrokeWidth applies to crosshair arms and polygon edges alike.
	StrokeWidth float32
	// LabelSize is the label text size in points.
	LabelSize float32

	CrosshairColor color.Color
	GeometryColor  color.Color
	Background     color.Color
}

// DefaultConfig returns the stock look: black crosshairs with 10px
// arms, red geometry and labels, white background, distance labels
// nudged up-right of the midpoint and angle labels down-right of the
// vertex.
func DefaultConfig() Config {
	return Config{
		CrosshairRadius: 10,
		DistanceOffset:  geom.Pt(5, -5),
		AngleOffset:     geom.Pt(15, 15),
		StrokeWidth:     2,
		LabelSize:       12,
		CrosshairColor:  color.Black,
		GeometryColor:   color.NRGBA{R: 255, A: 255},
		Background:      color.White,
	}
}

// Segment is a straight stroke from A to B.
type Segment struct {
	A geom.Point
	B geom.Point
}

// Label is a text anchored at At by its top left corner.
type Label struct {
	Text string
	At   geom.Point
}

// Scene is everything one repaint draws, in paint order: edges first,
// crosshairs above them, labels on top.
type Scene struct {
	Crosshairs []Segment
	Edges      []Segment
	Distances  []Label
	Angles     []Label
}

// Build lays out the scene for pts. Every point gets a crosshair. Two
// points are joined by a single open segment; three or more close into
// a polygon in point order. Each edge carries a rounded pixel distance
// label at its midpoint and, for closed polygons, each vertex carries
// a rounded interior angle label. Vertices whose angle is undefined
// (a zero length edge) get no angle label.
func Build(pts []geom.Point, cfg Config) Scene {
	var s Scene

	for _, p := range pts {
		r := cfg.CrosshairRadius
		s.Crosshairs = append(s.Crosshairs,
			Segment{A: geom.Pt(p.X-r, p.Y), B: geom.Pt(p.X+r, p.Y)},
			Segment{A: geom.Pt(p.X, p.Y-r), B: geom.Pt(p.X, p.Y+r)},
		)
	}

	n := len(pts)
	if n < 2 {
		return s
	}

	// With exactly two points the closing edge would double the only
	// segment, so the polyline stays open.
	edges := n
	if n == 2 {
		edges = 1
	}
	for i := 0; i < edges; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		s.Edges = append(s.Edges, Segment{A: a, B: b})
		s.Distances = append(s.Distances, Label{
			Text: fmt.Sprintf("%dpx", int(math.Round(geom.Distance(a, b)))),
			At:   geom.Midpoint(a, b).Add(cfg.DistanceOffset),
		})
	}

	if n < 3 {
		return s
	}
	for i, v := range pts {
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		deg := geom.VertexAngle(prev, v, next)
		if math.IsNaN(deg) {
			continue
		}
		s.Angles = append(s.Angles, Label{
			Text: fmt.Sprintf("%d°", int(math.Round(deg))),
			At:   v.Add(cfg.AngleOffset),
		})
	}
	return s
}

// Points returns the anchor points of every primitive in s, suitable
// for fitting the whole drawing into an export page.
func (s Scene) Points() []geom.Point {
	pts := make([]geom.Point, 0, 2*len(s.Crosshairs)+2*len(s.Edges)+len(s.Distances)+len(s.Angles))
	for _, seg := range s.Crosshairs {
		pts = append(pts, seg.A, seg.B)
	}
	for _, seg := range s.Edges {
		pts = append(pts, seg.A, seg.B)
	}
	for _, l := range s.Distances {
		pts = append(pts, l.At)
	}
	for _, l := range s.Angles {
		pts = append(pts, l.At)
	}
	return pts
}

// Bounds returns the bounding box of the whole scene.
func (s Scene) Bounds() (min, max geom.Point) {
	return geom.Bounds(s.Points())
}
