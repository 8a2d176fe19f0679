package scene

import "github.com/wieslawsoltes/DxfParser-sub001/geom"

// ColorIndex is an ACI color reference. The zero value means by layer.
type ColorIndex int

const (
	// ColorByLayer inherits the layer color.
	ColorByLayer ColorIndex = 0
	// ColorByBlock inherits the color of the enclosing block reference.
	ColorByBlock ColorIndex = -1
)

// ColorFromDXF converts a raw group 62 value, where 0 means by block and
// 256 means by layer.
func ColorFromDXF(v int) ColorIndex {
	switch v {
	case 0:
		return ColorByBlock
	case 256:
		return ColorByLayer
	}
	return ColorIndex(v)
}

// IsByLayer reports whether the color inherits the layer color.
func (c ColorIndex) IsByLayer() bool { return c == ColorByLayer || c == 256 }

// IsByBlock reports whether the color inherits the block reference color.
func (c ColorIndex) IsByBlock() bool { return c == ColorByBlock }

// Lineweight is a lineweight in 1/100 mm, or one of the inheritance codes.
// The zero value means by layer.
type Lineweight int

const (
	LineweightByLayer Lineweight = -1
	LineweightByBlock Lineweight = -2
	LineweightDefault Lineweight = -3
)

// IsByLayer reports whether the lineweight inherits the layer lineweight.
func (w Lineweight) IsByLayer() bool { return w == 0 || w == LineweightByLayer }

// Common carries the properties every entity shares.
type Common struct {
	Handle string
	Owner  string // owning block record handle
	Layer  string

	Color        ColorIndex
	TrueColor    *RGB
	ColorBook    string  // color book name, paired with TrueColor
	Transparency float64 // 0 opaque, 1 fully transparent

	Linetype      string // "" means BYLAYER
	LinetypeScale float64
	Lineweight    Lineweight
	Material      string // material handle or name

	Invisible  bool
	PaperSpace bool
	Extrusion  geom.Vec3 // zero means +Z
	Thickness  float64
}

// Base returns the shared entity properties.
func (c *Common) Base() *Common { return c }

func (*Common) entity() {}

// Normal returns the extrusion direction, defaulting to +Z.
func (c *Common) Normal() geom.Vec3 {
	if c.Extrusion.IsZero() {
		return geom.ZAxis
	}
	return c.Extrusion.Normalize(geom.ZAxis)
}

// Entity is implemented by every concrete entity type in this package.
type Entity interface {
	Base() *Common
	Kind() Kind
	entity()
}
