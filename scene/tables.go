package scene

import "github.com/wieslawsoltes/DxfParser-sub001/geom"

// Tables groups the symbol tables and dictionary objects.
type Tables struct {
	Layers       []Layer
	Linetypes    []Linetype
	TextStyles   []TextStyle
	DimStyles    []DimStyle
	UCS          []UCS
	Views        []View
	Viewports    []VPort
	BlockRecords []BlockRecord
	Layouts      []Layout
	Materials    *MaterialTable
	VisualStyles []VisualStyle
}

// RGB is a 24-bit true color.
type RGB struct {
	R, G, B uint8
}

// Layer is a LAYER table entry.
type Layer struct {
	Name         string
	Handle       string
	Color        ColorIndex // negative values mean the layer is off
	TrueColor    *RGB
	Linetype     string
	Lineweight   Lineweight
	Frozen       bool
	Off          bool
	Locked       bool
	Material     string  // material handle
	Transparency float64 // 0 opaque, 1 fully transparent
}

// IsOff reports whether the layer is switched off.
func (l *Layer) IsOff() bool {
	return l.Off || l.Color < 0
}

// Linetype is an LTYPE table entry. Pattern holds the dash elements:
// positive dashes, negative gaps, zero dots.
type Linetype struct {
	Name        string
	Description string
	Pattern     []float64
}

// TextStyle is a STYLE table entry.
type TextStyle struct {
	Name        string
	Font        string
	BigFont     string
	Height      float64 // fixed height, 0 when variable
	WidthFactor float64
	Oblique     float64 // degrees
}

// UCS is a UCS table entry.
type UCS struct {
	Name   string
	Handle string
	Origin geom.Vec3
	XAxis  geom.Vec3
	YAxis  geom.Vec3
}

// View is a VIEW table entry.
type View struct {
	Name        string
	Handle      string
	Center      geom.Vec2
	Height      float64
	Width       float64
	Direction   geom.Vec3
	Target      geom.Vec3
	Twist       float64 // degrees
	HasUCS      bool
	UCSOrigin   geom.Vec3
	UCSXAxis    geom.Vec3
	UCSYAxis    geom.Vec3
	VisualStyle string // handle
}

// VPort is a VPORT table entry.
type VPort struct {
	Name        string
	Handle      string
	Center      geom.Vec2 // view center
	Height      float64   // view height
	AspectRatio float64
	Direction   geom.Vec3
	Target      geom.Vec3
	Twist       float64 // degrees
	UCSOrigin   geom.Vec3
	UCSXAxis    geom.Vec3
	UCSYAxis    geom.Vec3
	UCSName     string
	UCSHandle   string
	VisualStyle string // handle
}

// BlockRecord is a BLOCK_RECORD table entry.
type BlockRecord struct {
	Name         string
	Handle       string
	Units        int // INSUNITS code, 0 unitless
	UniformScale bool
	Explodable   bool
	LayoutHandle string
}

// Layout is a LAYOUT object.
type Layout struct {
	Name        string
	Handle      string
	BlockRecord string // handle
	TabOrder    int
	InsBase     geom.Vec3
	HasUCS      bool
	UCSOrigin   geom.Vec3
	UCSXAxis    geom.Vec3
	UCSYAxis    geom.Vec3
	UCSName     string
	UCSHandle   string
	ViewName    string
	Viewport    string // last active viewport handle
	VisualStyle string // handle
	LimMin      geom.Vec2
	LimMax      geom.Vec2
}

// IsModel reports whether the layout is the model tab.
func (l *Layout) IsModel() bool {
	k := Key(l.Name)
	return l.TabOrder == 0 && (k == "MODEL" || k == "")
}

// MaterialTable is the MATERIAL dictionary. Caches key on the table's
// identity, so a parser publishes a new table value when materials change.
type MaterialTable struct {
	Entries []Material
}

// Material is a MATERIAL object reduced to the channels the renderer uses.
type Material struct {
	Name          string
	Handle        string
	Diffuse       *RGB    // diffuse color override, nil when the entity color applies
	DiffuseFactor float64 // 0 means 1
	Opacity       float64 // 0 means opaque
	HasOpacity    bool
}

// VisualStyle is a VISUALSTYLE object.
type VisualStyle struct {
	Name   string
	Handle string
	Type   int // DXF group 70
}

// Layer looks up a layer by name, case-insensitively.
func (t *Tables) Layer(name string) (*Layer, bool) {
	k := Key(name)
	for i := range t.Layers {
		if Key(t.Layers[i].Name) == k {
			return &t.Layers[i], true
		}
	}
	return nil, false
}

// Linetype looks up a linetype by name.
func (t *Tables) Linetype(name string) (*Linetype, bool) {
	k := Key(name)
	for i := range t.Linetypes {
		if Key(t.Linetypes[i].Name) == k {
			return &t.Linetypes[i], true
		}
	}
	return nil, false
}

// TextStyle looks up a text style by name.
func (t *Tables) TextStyle(name string) (*TextStyle, bool) {
	k := Key(name)
	for i := range t.TextStyles {
		if Key(t.TextStyles[i].Name) == k {
			return &t.TextStyles[i], true
		}
	}
	return nil, false
}

// DimStyle looks up a dimension style by name or handle.
func (t *Tables) DimStyle(ref string) (*DimStyle, bool) {
	k := Key(ref)
	for i := range t.DimStyles {
		if Key(t.DimStyles[i].Name) == k || (t.DimStyles[i].Handle != "" && Key(t.DimStyles[i].Handle) == k) {
			return &t.DimStyles[i], true
		}
	}
	return nil, false
}

// UCSByRef looks up a UCS by name or handle.
func (t *Tables) UCSByRef(ref string) (*UCS, bool) {
	if ref == "" {
		return nil, false
	}
	k := Key(ref)
	for i := range t.UCS {
		if Key(t.UCS[i].Name) == k || (t.UCS[i].Handle != "" && Key(t.UCS[i].Handle) == k) {
			return &t.UCS[i], true
		}
	}
	return nil, false
}

// View looks up a named view by name or handle.
func (t *Tables) View(ref string) (*View, bool) {
	if ref == "" {
		return nil, false
	}
	k := Key(ref)
	for i := range t.Views {
		if Key(t.Views[i].Name) == k || (t.Views[i].Handle != "" && Key(t.Views[i].Handle) == k) {
			return &t.Views[i], true
		}
	}
	return nil, false
}

// VPortByRef looks up a VPORT entry by name or handle.
func (t *Tables) VPortByRef(ref string) (*VPort, bool) {
	if ref == "" {
		return nil, false
	}
	k := Key(ref)
	for i := range t.Viewports {
		if Key(t.Viewports[i].Name) == k || (t.Viewports[i].Handle != "" && Key(t.Viewports[i].Handle) == k) {
			return &t.Viewports[i], true
		}
	}
	return nil, false
}

// BlockRecord looks up a block record by name or handle.
func (t *Tables) BlockRecord(ref string) (*BlockRecord, bool) {
	if ref == "" {
		return nil, false
	}
	k := Key(ref)
	for i := range t.BlockRecords {
		if Key(t.BlockRecords[i].Name) == k || (t.BlockRecords[i].Handle != "" && Key(t.BlockRecords[i].Handle) == k) {
			return &t.BlockRecords[i], true
		}
	}
	return nil, false
}

// Layout looks up a layout by name, handle or block record handle.
func (t *Tables) Layout(ref string) (*Layout, bool) {
	if ref == "" {
		return nil, false
	}
	k := Key(ref)
	for i := range t.Layouts {
		l := &t.Layouts[i]
		if Key(l.Name) == k || (l.Handle != "" && Key(l.Handle) == k) || (l.BlockRecord != "" && Key(l.BlockRecord) == k) {
			return l, true
		}
	}
	return nil, false
}

// FirstPaperLayout returns the paper layout with the lowest tab order.
func (t *Tables) FirstPaperLayout() *Layout {
	var best *Layout
	for i := range t.Layouts {
		l := &t.Layouts[i]
		if l.IsModel() {
			continue
		}
		if best == nil || l.TabOrder < best.TabOrder {
			best = l
		}
	}
	return best
}

// VisualStyle looks up a visual style by name or handle.
func (t *Tables) VisualStyle(ref string) (*VisualStyle, bool) {
	if ref == "" {
		return nil, false
	}
	k := Key(ref)
	for i := range t.VisualStyles {
		if Key(t.VisualStyles[i].Name) == k || (t.VisualStyles[i].Handle != "" && Key(t.VisualStyles[i].Handle) == k) {
			return &t.VisualStyles[i], true
		}
	}
	return nil, false
}
