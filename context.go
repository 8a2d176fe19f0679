package dxfrender

import (
	"slices"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
	"github.com/wieslawsoltes/DxfParser-sub001/style"
)

// MaxBlockDepth is the deepest block nesting that is expanded.
const MaxBlockDepth = 8

// instance is the block context of one traversal branch. It is never
// modified after creation; entering a block builds a new one.
type instance struct {
	xform geom.Matrix
	depth int

	// path holds the keys of the blocks being expanded, outermost first.
	path []string
	// stack holds the same blocks by display name.
	stack []string

	inherit  style.Inherited
	units    Unit
	clips    *clipStack
	selected bool // inside a selected block reference
	isolated bool // inside an isolated block or reference

	// paper is set for paper-space geometry; vpScale is the scale of the
	// viewport model space is drawn through, 0 outside viewports.
	paper   bool
	vpScale float64
	frozen  []string // layer keys frozen in the enclosing viewport
}

func rootInstance(xform geom.Matrix, units Unit, paper bool) *instance {
	return &instance{xform: xform, units: units, paper: paper}
}

// frozenLayer reports whether the enclosing viewport freezes the layer.
func (in *instance) frozenLayer(layer string) bool {
	return len(in.frozen) > 0 && slices.Contains(in.frozen, scene.Key(layer))
}

// onPath reports whether the block is already being expanded in this
// branch.
func (in *instance) onPath(block string) bool {
	return slices.Contains(in.path, scene.Key(block))
}

// child describes a block entered from an instance.
type child struct {
	block    string
	xform    geom.Matrix
	inherit  style.Inherited
	units    Unit
	clips    *clipStack
	selected bool
	isolated bool
}

func (in *instance) enter(c child) *instance {
	return &instance{
		xform:    c.xform,
		depth:    in.depth + 1,
		path:     append(slices.Clone(in.path), scene.Key(c.block)),
		stack:    append(slices.Clone(in.stack), c.block),
		inherit:  c.inherit,
		units:    c.units,
		clips:    c.clips,
		selected: in.selected || c.selected,
		isolated: in.isolated || c.isolated,
		paper:    in.paper,
		vpScale:  in.vpScale,
		frozen:   in.frozen,
	}
}

// item is one unit of traversal work.
type item struct {
	entity scene.Entity
	ctx    *instance
}
