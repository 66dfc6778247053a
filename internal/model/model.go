// Package model defines the geometric entity model consumed by the
// measurement engine, along with material presets and the estimate record
// produced for each drawing.
package model

import "math"

// Kind identifies the DXF entity type of a primitive.
type Kind int

const (
	KindLine Kind = iota
	KindLwPolyline
	KindPolyline
	KindCircle
	KindArc
	KindText
	KindMText
	KindOther
)

// String returns the DXF type name for the kind (e.g. "LWPOLYLINE").
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "LINE"
	case KindLwPolyline:
		return "LWPOLYLINE"
	case KindPolyline:
		return "POLYLINE"
	case KindCircle:
		return "CIRCLE"
	case KindArc:
		return "ARC"
	case KindText:
		return "TEXT"
	case KindMText:
		return "MTEXT"
	default:
		return "OTHER"
	}
}

// Point2D represents a 2D coordinate in drawing units (mm).
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point2D) DistanceTo(q Point2D) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Outline represents a polyline vertex sequence. When used as a polygon
// boundary it is implicitly closed: the last point connects back to the first.
type Outline []Point2D

// BoundingBox returns the min and max corners of the outline.
func (o Outline) BoundingBox() (min, max Point2D) {
	if len(o) == 0 {
		return Point2D{}, Point2D{}
	}
	min = Point2D{X: o[0].X, Y: o[0].Y}
	max = Point2D{X: o[0].X, Y: o[0].Y}
	for _, p := range o[1:] {
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

// Area computes the absolute enclosed area of the outline using the
// shoelace formula, treating it as an implicitly closed simple polygon.
// Fewer than 3 vertices enclose nothing. Self-intersecting outlines yield
// whatever the shoelace sum yields.
func (o Outline) Area() float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].X * o[j].Y
		area -= o[j].X * o[i].Y
	}
	return math.Abs(area) / 2
}

// PathLength sums the segment lengths along the vertex sequence.
// The closing segment back to the first vertex is not included.
func (o Outline) PathLength() float64 {
	var total float64
	for i := 0; i < len(o)-1; i++ {
		total += o[i].DistanceTo(o[i+1])
	}
	return total
}

// Translate shifts all points by dx, dy.
func (o Outline) Translate(dx, dy float64) Outline {
	result := make(Outline, len(o))
	for i, p := range o {
		result[i] = Point2D{X: p.X + dx, Y: p.Y + dy}
	}
	return result
}

// Entity is the closed set of geometric primitives a drawing is made of.
// Measurement code dispatches on the concrete type; anything outside the
// set below is represented as Other and contributes to nothing.
type Entity interface {
	Kind() Kind
}

// Line is a straight segment between two points.
type Line struct {
	Start Point2D `json:"start"`
	End   Point2D `json:"end"`
}

func (Line) Kind() Kind { return KindLine }

// LwPolyline is a lightweight polyline: an ordered vertex sequence,
// implicitly closed when treated as an area boundary.
type LwPolyline struct {
	Vertices Outline `json:"vertices"`
}

func (LwPolyline) Kind() Kind { return KindLwPolyline }

// Polyline is the heavyweight POLYLINE variant. Geometrically identical to
// LwPolyline for measurement purposes, but kept as a distinct kind: the two
// are counted separately and the cut-length pass treats them differently.
type Polyline struct {
	Vertices Outline `json:"vertices"`
}

func (Polyline) Kind() Kind { return KindPolyline }

// Circle is a full circle.
type Circle struct {
	Center Point2D `json:"center"`
	Radius float64 `json:"radius"` // non-negative
}

func (Circle) Kind() Kind { return KindCircle }

// Arc is a circular arc. Angles are in degrees and are taken as given:
// EndAngle may be numerically less than StartAngle, and no wrap
// normalization is applied anywhere in the measurement engine.
type Arc struct {
	Center     Point2D `json:"center"`
	Radius     float64 `json:"radius"` // non-negative
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
}

func (Arc) Kind() Kind { return KindArc }

// Sweep returns the subtended angle in degrees, signed.
func (a Arc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// Text is a single-line text annotation. It contributes no geometry to any
// measurement and is only counted.
type Text struct {
	Value string `json:"value,omitempty"`
}

func (Text) Kind() Kind { return KindText }

// MText is a multi-line text annotation. Like Text it is only counted.
type MText struct {
	Value string `json:"value,omitempty"`
}

func (MText) Kind() Kind { return KindMText }

// Other is a placeholder for any entity type the engine does not measure.
// It carries the raw parser type name for diagnostics.
type Other struct {
	Type string `json:"type,omitempty"`
}

func (Other) Kind() Kind { return KindOther }
