package dimension

import (
	"math"
	"strings"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

// ArrowKind selects how an arrowhead is drawn.
type ArrowKind uint8

const (
	ArrowOpen ArrowKind = iota
	ArrowTick
	ArrowBlock
	ArrowNone
)

// Arrow is an arrowhead at Tip pointing along Dir. Lines always holds a
// drawable shape: for ArrowBlock it is the open-V fallback used when the
// block cannot be instantiated.
type Arrow struct {
	Tip   geom.Vec2
	Dir   geom.Vec2
	Kind  ArrowKind
	Block string
	Size  float64
	Lines [][]geom.Vec2
}

// Rotation returns the arrow direction angle in radians.
func (a Arrow) Rotation() float64 {
	return a.Dir.Angle()
}

// arrowHalfWidth is the half width of an open V relative to its length.
const arrowHalfWidth = 1.0 / 6

// NewArrow builds the arrowhead for a block name at tip. tickSize > 0
// replaces arrows with ticks, as DIMTSZ does.
func NewArrow(tip, dir geom.Vec2, block string, size, tickSize float64) Arrow {
	dir = dir.Normalize(geom.V2(1, 0))
	a := Arrow{Tip: tip, Dir: dir, Size: size}
	switch {
	case tickSize > 0:
		a.Kind = ArrowTick
		a.Size = tickSize
	default:
		a.Kind, a.Block = classifyBlock(block)
	}
	if a.Size <= 0 {
		a.Kind = ArrowNone
	}
	switch a.Kind {
	case ArrowTick:
		a.Lines = [][]geom.Vec2{tickLines(tip, dir, a.Size)}
	case ArrowOpen, ArrowBlock:
		a.Lines = [][]geom.Vec2{openV(tip, dir, a.Size)}
	}
	return a
}

func classifyBlock(name string) (ArrowKind, string) {
	n := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(name), "_"))
	switch n {
	case "", "CLOSEDFILLED", "CLOSED", "CLOSEDBLANK", "OPEN", "OPEN30", "OPEN90":
		return ArrowOpen, ""
	case "OBLIQUE", "ARCHTICK", "INTEGRAL":
		return ArrowTick, ""
	case "NONE":
		return ArrowNone, ""
	}
	return ArrowBlock, name
}

// openV returns the V polyline with its apex at tip.
func openV(tip, dir geom.Vec2, size float64) []geom.Vec2 {
	back := tip.Sub(dir.Scale(size))
	side := dir.Perp().Scale(size * arrowHalfWidth)
	return []geom.Vec2{back.Add(side), tip, back.Sub(side)}
}

// tickLines returns a tick centered at tip, rotated 45 degrees from dir.
func tickLines(tip, dir geom.Vec2, size float64) []geom.Vec2 {
	d := dir.Rotate(math.Pi / 4).Scale(size)
	return []geom.Vec2{tip.Sub(d), tip.Add(d)}
}
