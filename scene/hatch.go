package scene

import "github.com/wieslawsoltes/DxfParser-sub001/geom"

// Hatch is a filled region bounded by one or more loops.
type Hatch struct {
	Common
	Loops        []HatchLoop
	Solid        bool
	Pattern      string
	PatternAngle float64
	PatternScale float64
	PatternLines []PatternLine
	Gradient     *Gradient
	Elevation    float64
}

// HatchLoop is a boundary path. Polyline loops carry Vertices and Bulges;
// edge loops carry Edges.
type HatchLoop struct {
	Polyline bool
	External bool
	Vertices []geom.Vec2
	Bulges   []float64
	Closed   bool
	Edges    []HatchEdge
}

// HatchEdge is one typed edge of an edge loop.
type HatchEdge interface {
	hatchEdge()
}

// LineEdge is a straight boundary edge.
type LineEdge struct {
	Start, End geom.Vec2
}

// ArcEdge is a circular boundary edge. Angles are in degrees; when CCW is
// false they are measured clockwise.
type ArcEdge struct {
	Center     geom.Vec2
	Radius     float64
	StartAngle float64
	EndAngle   float64
	CCW        bool
}

// EllipseEdge is an elliptical boundary edge. Angles are parameters in degrees.
type EllipseEdge struct {
	Center     geom.Vec2
	MajorAxis  geom.Vec2
	Ratio      float64
	StartAngle float64
	EndAngle   float64
	CCW        bool
}

// SplineEdge is a spline boundary edge.
type SplineEdge struct {
	Degree  int
	Control []geom.Vec2
	Weights []float64
	Knots   []float64
	Fit     []geom.Vec2
}

func (LineEdge) hatchEdge()    {}
func (ArcEdge) hatchEdge()     {}
func (EllipseEdge) hatchEdge() {}
func (SplineEdge) hatchEdge()  {}

// Gradient describes a gradient fill.
type Gradient struct {
	Name        string
	Color1      RGB
	Color2      RGB
	SingleColor bool
	Tint        float64
	Angle       float64
	Shift       float64
}

// PatternLine is one line family of a hatch pattern.
type PatternLine struct {
	Angle  float64
	Origin geom.Vec2
	Offset geom.Vec2
	Dashes []float64
}
