// Package geom holds the small amount of plane geometry the overlay
// needs: distances between contact points, interior angles at polygon
// vertices and bounding boxes for export scaling.
package geom

import "math"

// Point is a position on the canvas in pixels. Coordinates are stored
// as float32 to match the toolkit event types; all arithmetic is done
// in float64.
type Point struct {
	X float32
	Y float32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// VertexAngle returns the interior angle at v formed by the rays v->a
// and v->b, in degrees in [0, 180]. If either ray has zero length the
// angle is undefined and NaN is returned; callers are expected to skip
// the label for that vertex.
func VertexAngle(a, v, b Point) float64 {
	ax := float64(a.X - v.X)
	ay := float64(a.Y - v.Y)
	bx := float64(b.X - v.X)
	by := float64(b.Y - v.Y)

	na := math.Hypot(ax, ay)
	nb := math.Hypot(bx, by)
	if na == 0 || nb == 0 {
		return math.NaN()
	}

	// Clamp before Acos so rounding noise on collinear rays cannot
	// push the cosine outside [-1, 1].
	cos := (ax*bx + ay*by) / (na * nb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}

// Bounds returns the axis-aligned bounding box of pts as its minimum
// and maximum corners. An empty slice yields two zero points.
func Bounds(pts []Point) (min, max Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}
