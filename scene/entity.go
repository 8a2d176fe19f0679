package scene

import "github.com/wieslawsoltes/DxfParser-sub001/geom"

// Angles are in degrees unless a field says otherwise. Coordinates of planar
// entities are in the entity's object coordinate system (see Common.Extrusion).

// Line is a LINE entity.
type Line struct {
	Common
	Start, End geom.Vec3
}

// XLine is an infinite construction line.
type XLine struct {
	Common
	Origin    geom.Vec3
	Direction geom.Vec3
}

// Ray is a semi-infinite construction line.
type Ray struct {
	Common
	Origin    geom.Vec3
	Direction geom.Vec3
}

// Point is a POINT entity.
type Point struct {
	Common
	Position geom.Vec3
	Angle    float64
}

// Circle is a CIRCLE entity.
type Circle struct {
	Common
	Center geom.Vec3
	Radius float64
}

// Arc is a counter-clockwise ARC entity.
type Arc struct {
	Common
	Center     geom.Vec3
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Ellipse is an ELLIPSE entity. Parameters are in radians.
type Ellipse struct {
	Common
	Center     geom.Vec3
	MajorAxis  geom.Vec3 // relative to Center
	Ratio      float64
	StartParam float64
	EndParam   float64
}

// LWPolyline is a lightweight 2D polyline.
type LWPolyline struct {
	Common
	Vertices      []geom.Vec2
	Bulges        []float64 // per vertex, may be shorter than Vertices
	ConstantWidth float64
	Elevation     float64
	Closed        bool
}

// PolylineMode distinguishes the POLYLINE flavors.
type PolylineMode uint8

const (
	Polyline2D PolylineMode = iota
	Polyline3D
	PolygonMesh
	PolyfaceMesh
)

// PolylineVertex is a VERTEX of a POLYLINE.
type PolylineVertex struct {
	Position   geom.Vec3
	Bulge      float64
	StartWidth float64
	EndWidth   float64
}

// PolyfaceFace is a face record of a polyface mesh. Indices are zero based;
// a hidden edge starts at the vertex with the same position in Indices.
type PolyfaceFace struct {
	Indices []int
	Hidden  []bool
}

// Polyline is a heavy POLYLINE with its VERTEX records.
type Polyline struct {
	Common
	Mode     PolylineMode
	Vertices []PolylineVertex
	Faces    []PolyfaceFace // PolyfaceMesh only
	Closed   bool           // also M-closed for PolygonMesh
	MCount   int            // PolygonMesh only
	NCount   int
	NClosed  bool
}

// Spline is a SPLINE entity.
type Spline struct {
	Common
	Degree  int
	Control []geom.Vec3
	Weights []float64
	Knots   []float64
	Fit     []geom.Vec3
	Closed  bool
}

// Helix is a HELIX entity.
type Helix struct {
	Common
	AxisBase   geom.Vec3
	Start      geom.Vec3 // start point, defines radius and start angle
	AxisDir    geom.Vec3
	Radius     float64
	Turns      float64
	TurnHeight float64
	CCW        bool
}

// MLine is a multiline. Offsets lists the element offsets of its style,
// multiplied by Scale.
type MLine struct {
	Common
	Vertices []geom.Vec3
	Offsets  []float64
	Scale    float64
	Closed   bool
}

// TextAlign is a TEXT horizontal alignment (group 72).
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
	AlignAligned
	AlignMiddle
	AlignFit
)

// TextVAlign is a TEXT vertical alignment (group 73).
type TextVAlign uint8

const (
	VAlignBaseline TextVAlign = iota
	VAlignBottom
	VAlignMiddle
	VAlignTop
)

// Text is a single-line TEXT entity.
type Text struct {
	Common
	Position    geom.Vec3
	AlignPoint  geom.Vec3
	HasAlign    bool
	Height      float64
	Rotation    float64
	WidthFactor float64
	Oblique     float64
	Style       string
	Content     string
	HAlign      TextAlign
	VAlign      TextVAlign
}

// Attrib is an ATTRIB attached to an INSERT.
type Attrib struct {
	Text
	Tag string
}

// AttDef is an attribute definition inside a block.
type AttDef struct {
	Text
	Tag    string
	Prompt string
}

// MText is a multi-line MTEXT entity. Attachment is 1..9, top-left to
// bottom-right.
type MText struct {
	Common
	Position    geom.Vec3
	Direction   geom.Vec3 // x direction, zero when Rotation applies
	Height      float64
	Width       float64 // reference rectangle width
	Rotation    float64
	Attachment  int
	LineSpacing float64
	Style       string
	Content     string
}

// Tolerance is a geometric tolerance frame.
type Tolerance struct {
	Common
	Position  geom.Vec3
	Direction geom.Vec3
	Height    float64
	Style     string
	Content   string
}

// Table is an ACAD_TABLE with its grid and cell contents.
type Table struct {
	Common
	Position     geom.Vec3
	Direction    geom.Vec3
	RowHeights   []float64
	ColumnWidths []float64
	Cells        [][]string // row major
	TextHeight   float64
	Style        string
}

// Solid is a filled SOLID. The corners are in DXF order, so the third and
// fourth corners are swapped relative to the outline.
type Solid struct {
	Common
	Corners [4]geom.Vec3
}

// Trace is a TRACE, drawn like a Solid.
type Trace struct {
	Common
	Corners [4]geom.Vec3
}

// Face3D is a 3DFACE.
type Face3D struct {
	Common
	Corners     [4]geom.Vec3
	HiddenEdges [4]bool
}

// RasterFrame positions a raster in the drawing. U and V are the world
// vectors of one pixel, Size is the image size in pixels and Boundary is a
// clip polygon in pixel coordinates; two points describe a rectangle.
type RasterFrame struct {
	Origin   geom.Vec3
	U, V     geom.Vec3
	Size     geom.Vec2
	Boundary []geom.Vec2
	Clipped  bool
}

// Wipeout masks the geometry behind it.
type Wipeout struct {
	Common
	RasterFrame
}

// Image is a raster IMAGE reference.
type Image struct {
	Common
	RasterFrame
	Source string // image definition file name
}

// Underlay is a PDF, DWF or DGN underlay.
type Underlay struct {
	Common
	Position geom.Vec3
	Scale    geom.Vec3
	Rotation float64
	Boundary []geom.Vec2 // in underlay coordinates
	Extent   geom.Vec2   // underlay size, used when Boundary is empty
	Source   string
}

// OLE2Frame is an embedded OLE object.
type OLE2Frame struct {
	Common
	UpperLeft  geom.Vec3
	LowerRight geom.Vec3
}

// MeshData is a face-vertex mesh. Faces index Vertices.
type MeshData struct {
	Vertices []geom.Vec3
	Faces    [][]int
}

// Mesh is a MESH entity at its base subdivision level.
type Mesh struct {
	Common
	MeshData
}

// Solid3D covers 3DSOLID, REGION, BODY and SURFACE entities. The modeler
// data is not evaluated; Approximation carries a pre-tessellated mesh when
// the loader could produce one.
type Solid3D struct {
	Common
	Subtype       string
	Approximation *MeshData
	Bounds        geom.Bounds // fallback outline when there is no mesh
}

// PolySolid is a swept wall profile along a 2D path.
type PolySolid struct {
	Common
	Vertices      []geom.Vec2
	Width         float64
	Height        float64
	Justification int // 0 left, 1 center, 2 right
	Closed        bool
}

// BlockClip is an XCLIP spatial filter. Boundary is in block coordinates;
// two points describe a rectangle.
type BlockClip struct {
	Boundary []geom.Vec2
	Inverted bool
}

// Insert is a block reference, optionally a rectangular array (MINSERT).
type Insert struct {
	Common
	Block         string
	Position      geom.Vec3
	Scale         geom.Vec3 // zero components mean 1
	Rotation      float64
	Columns       int
	Rows          int
	ColumnSpacing float64
	RowSpacing    float64
	Attribs       []*Attrib
	Clip          *BlockClip
}

// DimensionType is the dimension subtype.
type DimensionType uint8

const (
	DimLinear DimensionType = iota
	DimAligned
	DimAngular2Line
	DimDiameter
	DimRadius
	DimAngular3Point
	DimOrdinate
	DimArcLength
	DimJoggedRadius
)

var dimensionTypeNames = [...]string{
	"linear", "aligned", "angular", "diameter", "radius",
	"angular3point", "ordinate", "arclength", "jogged",
}

func (t DimensionType) String() string {
	if int(t) < len(dimensionTypeNames) {
		return dimensionTypeNames[t]
	}
	return "unknown"
}

// Dimension is a DIMENSION, ARC_DIMENSION or LARGE_RADIAL_DIMENSION.
//
// Point roles follow the DXF definition points:
//
//	linear, aligned    Def1/Def2 extension origins, DefPoint on the dimension line
//	angular 2-line     Def1->Def2 first line, Def3->DefPoint second line, ArcPoint arc location
//	angular 3-point    Def3 vertex, Def1/Def2 end points, DefPoint arc location
//	diameter           Def3 chord point, DefPoint opposite chord point
//	radius             DefPoint center, Def3 chord point
//	ordinate           DefPoint origin, Def1 feature, Def2 leader end
//	arc length         Def1/Def2 arc ends, Def3 center, DefPoint arc location
//	jogged radius      DefPoint center, Def3 chord point, Def2 jog point
type Dimension struct {
	Common
	Type         DimensionType
	Style        string
	Block        string // anonymous geometry block, may be empty
	DefPoint     geom.Vec3
	TextMid      geom.Vec3
	Def1         geom.Vec3
	Def2         geom.Vec3
	Def3         geom.Vec3
	ArcPoint     geom.Vec3
	Rotation     float64
	Oblique      float64
	TextRotation float64
	Measurement  float64 // stored actual measurement, 0 when absent
	Text         string  // override; "" or "<>" means measured
	UserText     bool    // TextMid was placed by the user
	OrdinateX    bool

	// Per-entity style overrides keyed by variable name, e.g. "DIMASZ".
	Overrides       map[string]float64
	StringOverrides map[string]string
}

// Leader is a LEADER entity.
type Leader struct {
	Common
	Vertices []geom.Vec3
	Arrow    bool
	Spline   bool
	Style    string
}

// MLeader is a MULTILEADER with text or block content.
type MLeader struct {
	Common
	Leaders      [][]geom.Vec3 // each ends at the landing
	Arrow        bool
	ArrowSize    float64
	DoglegLength float64
	Content      string
	TextPosition geom.Vec3
	TextHeight   float64
	TextStyle    string
	Block        string
	BlockPos     geom.Vec3
	BlockScale   geom.Vec3
	BlockRot     float64
}

// Viewport is a paper-space VIEWPORT.
type Viewport struct {
	Common
	ID          int
	Center      geom.Vec3 // paper space
	Width       float64
	Height      float64
	ViewCenter  geom.Vec2
	ViewHeight  float64
	ViewDir     geom.Vec3
	ViewTarget  geom.Vec3
	Twist       float64
	Off         bool
	FrozenLayer []string
	VisualStyle string
}

func (*Line) Kind() Kind       { return KindLine }
func (*XLine) Kind() Kind      { return KindXLine }
func (*Ray) Kind() Kind        { return KindRay }
func (*Point) Kind() Kind      { return KindPoint }
func (*Circle) Kind() Kind     { return KindCircle }
func (*Arc) Kind() Kind        { return KindArc }
func (*Ellipse) Kind() Kind    { return KindEllipse }
func (*LWPolyline) Kind() Kind { return KindLWPolyline }
func (*Polyline) Kind() Kind   { return KindPolyline }
func (*Spline) Kind() Kind     { return KindSpline }
func (*Helix) Kind() Kind      { return KindHelix }
func (*MLine) Kind() Kind      { return KindMLine }
func (*Text) Kind() Kind       { return KindText }
func (*Attrib) Kind() Kind     { return KindAttrib }
func (*AttDef) Kind() Kind     { return KindAttDef }
func (*MText) Kind() Kind      { return KindMText }
func (*Tolerance) Kind() Kind  { return KindTolerance }
func (*Table) Kind() Kind      { return KindTable }
func (*Hatch) Kind() Kind      { return KindHatch }
func (*Solid) Kind() Kind      { return KindSolid }
func (*Trace) Kind() Kind      { return KindTrace }
func (*Face3D) Kind() Kind     { return KindFace3D }
func (*Wipeout) Kind() Kind    { return KindWipeout }
func (*Image) Kind() Kind      { return KindImage }
func (*Underlay) Kind() Kind   { return KindUnderlay }
func (*OLE2Frame) Kind() Kind  { return KindOLE2Frame }
func (*Mesh) Kind() Kind       { return KindMesh }
func (*Solid3D) Kind() Kind    { return KindSolid3D }
func (*PolySolid) Kind() Kind  { return KindPolySolid }
func (*Insert) Kind() Kind     { return KindInsert }
func (*Dimension) Kind() Kind  { return KindDimension }
func (*Leader) Kind() Kind     { return KindLeader }
func (*MLeader) Kind() Kind    { return KindMLeader }
func (*Viewport) Kind() Kind   { return KindViewport }
