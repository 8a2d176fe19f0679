package scene

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

// Scene is a parsed drawing.
type Scene struct {
	Header   Header
	Tables   Tables
	Entities []Entity
	Blocks   map[string]*Block
}

// Block is a named block definition.
type Block struct {
	Name      string
	Handle    string
	Record    string // owning block record handle
	BasePoint geom.Vec3
	Entities  []Entity
	XRef      bool
}

// Key normalizes a table name or handle for lookups: trimmed and uppercased
// with Unicode case mapping.
func Key(s string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}

// Block looks up a block definition by name, case-insensitively.
func (s *Scene) Block(name string) (*Block, bool) {
	if s == nil || name == "" {
		return nil, false
	}
	if b, ok := s.Blocks[name]; ok && b != nil {
		return b, true
	}
	k := Key(name)
	for n, b := range s.Blocks {
		if b != nil && Key(n) == k {
			return b, true
		}
	}
	return nil, false
}

// ModelEntities returns the entities that belong to model space.
func (s *Scene) ModelEntities() []Entity {
	out := make([]Entity, 0, len(s.Entities))
	for _, e := range s.Entities {
		if !e.Base().PaperSpace {
			out = append(out, e)
		}
	}
	return out
}

// LayoutEntities returns the paper-space entities owned by the layout's
// block record. Entities without an owner are attributed to the first paper
// layout.
func (s *Scene) LayoutEntities(l *Layout) []Entity {
	if l == nil {
		return nil
	}
	first := s.Tables.FirstPaperLayout()
	isFirst := first != nil && first.Handle == l.Handle
	var out []Entity
	for _, e := range s.Entities {
		c := e.Base()
		if !c.PaperSpace {
			continue
		}
		switch {
		case c.Owner != "" && Key(c.Owner) == Key(l.BlockRecord):
			out = append(out, e)
		case c.Owner == "" && isFirst:
			out = append(out, e)
		}
	}
	if len(out) == 0 && l.BlockRecord != "" {
		// Paper layouts other than the active one keep their entities in
		// their *Paper_Space block.
		for _, b := range s.Blocks {
			if b != nil && b.Record != "" && Key(b.Record) == Key(l.BlockRecord) {
				return b.Entities
			}
		}
	}
	return out
}

// Header holds the drawing variables the renderer consumes.
type Header struct {
	InsUnits          int // INSUNITS
	InsUnitsDefSource int // INSUNITSDEFSOURCE
	InsUnitsDefTarget int // INSUNITSDEFTARGET

	LTScale   float64 // LTSCALE, 0 means 1
	CELTScale float64 // CELTSCALE
	PSLTScale bool    // PSLTSCALE
	LWDefault int     // LWDEFAULT in 1/100 mm, 0 means 25

	ExtMin, ExtMax geom.Vec3
	InsBase        geom.Vec3
	PInsBase       geom.Vec3

	ViewCenter geom.Vec2 // VIEWCTR
	ViewHeight float64   // VIEWSIZE
	ViewDir    geom.Vec3 // VIEWDIR

	UCSOrigin geom.Vec3 // UCSORG
	UCSXDir   geom.Vec3 // UCSXDIR
	UCSYDir   geom.Vec3 // UCSYDIR

	DimStyle  string // DIMSTYLE
	TextStyle string // TEXTSTYLE
	PDMode    int    // PDMODE
	PDSize    float64

	Measurement int // MEASUREMENT, 0 imperial, 1 metric
}
