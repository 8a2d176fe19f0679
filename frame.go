package dxfrender

import (
	"github.com/google/uuid"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
	"github.com/wieslawsoltes/DxfParser-sub001/style"
	"github.com/wieslawsoltes/DxfParser-sub001/tess"
)

// Frame is the result of one render pass. Screen fields are filled once the
// view is known, after traversal.
type Frame struct {
	ID     uuid.UUID
	Layout string // "" for model space

	Polylines []Polyline
	Fills     []Fill
	Points    []PointMarker
	Texts     []Text
	Pickables []Pickable

	View         ViewState
	WorldBounds  geom.Bounds
	ScreenBounds geom.Bounds
	VisualStyle  style.VisualStyle
	Stats        Stats
}

// Polyline is a stroked path. Dashes and Widths are in screen units.
type Polyline struct {
	World  []geom.Vec2
	Points []geom.Vec2
	Closed bool

	Color      style.Color
	Lineweight float64 // millimeters

	// Dashes is the linetype pattern: positive dashes, negative gaps and
	// zero for dots. Nil means continuous.
	Dashes []float64
	// Widths holds start and end widths per segment for wide polylines.
	Widths [][2]float64

	Highlighted bool
	Handle      string
}

// FillKind selects how a fill is painted.
type FillKind uint8

const (
	FillSolid FillKind = iota
	FillGradient
	FillPattern
)

// Gradient describes a two-color linear or radial gradient fill.
type Gradient struct {
	Name        string
	Color1      style.Color
	Color2      style.Color
	SingleColor bool
	Angle       float64 // radians
	Shift       float64
}

// Pattern describes a hatch pattern. Line definitions are in world units.
type Pattern struct {
	Name  string
	Angle float64 // radians
	Scale float64
	Lines []scene.PatternLine
}

// Fill is a filled region. Contours are closed; outer loops have positive
// area and holes negative. Mesh holds the triangulation in screen space.
type Fill struct {
	World    []geom.Contour
	Contours []geom.Contour

	Kind     FillKind
	Color    style.Color
	Gradient *Gradient
	Pattern  *Pattern
	Material string

	// Unassigned marks holes that no outer loop contains.
	Unassigned bool

	Mesh *tess.Result

	Highlighted bool
	Handle      string
}

// PointMarker is a POINT entity.
type PointMarker struct {
	World    geom.Vec2
	Position geom.Vec2
	Color    style.Color
	Mode     int     // PDMODE
	Size     float64 // screen units

	Highlighted bool
	Handle      string
}

// Text is a laid-out text block. Position is the top-left corner of the
// block. Rotation is counter-clockwise in world space; ScreenRotation is the
// view rotation minus Rotation, clockwise positive since screen y points
// down.
type Text struct {
	Content string
	Lines   []string
	Style   string
	Color   style.Color

	WorldPosition geom.Vec2
	WorldHeight   float64
	Rotation      float64 // radians, world

	Position       geom.Vec2
	Height         float64
	ScreenRotation float64

	WidthFactor float64
	Oblique     float64 // radians
	Width       float64 // block width, world units
	BlockHeight float64 // block height, world units
	LineHeight  float64 // world units

	Highlighted bool
	Handle      string
}

// PrimitiveType names the Frame slice a Pickable points into.
type PrimitiveType uint8

const (
	PrimitivePolyline PrimitiveType = iota
	PrimitiveFill
	PrimitivePoint
	PrimitiveText
)

func (t PrimitiveType) String() string {
	switch t {
	case PrimitivePolyline:
		return "polyline"
	case PrimitiveFill:
		return "fill"
	case PrimitivePoint:
		return "point"
	case PrimitiveText:
		return "text"
	}
	return "unknown"
}

// Pickable links one primitive to the entity that produced it.
type Pickable struct {
	Type  PrimitiveType
	Index int

	Handle     string
	Layer      string
	Kind       scene.Kind
	BlockStack []string // enclosing block names, outermost first

	WorldBounds  geom.Bounds
	ScreenBounds geom.Bounds
	Highlighted  bool
}

// ViewState is the world to screen mapping of a frame.
type ViewState struct {
	Center   geom.Vec2 // world
	Scale    float64   // screen units per world unit
	Rotation float64   // radians
	Width    int
	Height   int
	Screen   geom.Matrix
}

// ToScreen maps a world point to the screen.
func (v ViewState) ToScreen(p geom.Vec2) geom.Vec2 {
	return v.Screen.TransformPoint2(p)
}

// ToWorld maps a screen point back to world coordinates.
func (v ViewState) ToWorld(p geom.Vec2) geom.Vec2 {
	return v.Screen.Invert().TransformPoint2(p)
}

// Stats counts what happened during a render pass.
type Stats struct {
	Entities    int // entities visited, block contents included
	Hidden      int // skipped by layer state, invisibility or isolation
	Culled      int // dropped by block clip regions
	Degenerate  int // produced no geometry
	Skipped     int // recovered handler failures
	Inserts     int // block references expanded
	DepthStops  int
	CycleStops  int
	Tessellated int
	Fallbacks   int // fills triangulated by the fan fallback
}
