package recording

import (
	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

// CommandType identifies the kind of drawing command.
type CommandType uint8

const (
	// CmdStroke draws a polyline.
	CmdStroke CommandType = iota
	// CmdFill fills one region made of an outer contour and its holes.
	CmdFill
	// CmdPoint draws a point marker.
	CmdPoint
	// CmdText places a text block.
	CmdText
)

var commandTypeNames = [...]string{
	CmdStroke: "Stroke",
	CmdFill:   "Fill",
	CmdPoint:  "Point",
	CmdText:   "Text",
}

// String returns the command type name.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// ColorRef is an index into a Recording's color pool.
type ColorRef uint32

// InvalidColor marks a command without a pooled color.
const InvalidColor = ^ColorRef(0)

// IsValid reports whether the reference points into a pool.
func (r ColorRef) IsValid() bool {
	return r != InvalidColor
}

// Command is one drawing operation in screen coordinates.
//
// Field use by type:
//
//	Stroke  Points, Closed, Lineweight, Dashes, Widths
//	Fill    Contours
//	Point   Points[0], Size, Mode
//	Text    Points (block corners, top-left first), Text, Height, Rotation
type Command struct {
	Type   CommandType `msgpack:"t"`
	Color  ColorRef    `msgpack:"c"`
	Handle string      `msgpack:"h,omitempty"`
	Layer  string      `msgpack:"l,omitempty"`

	Points   []geom.Vec2   `msgpack:"p,omitempty"`
	Contours [][]geom.Vec2 `msgpack:"k,omitempty"`
	Closed   bool          `msgpack:"z,omitempty"`

	Lineweight float64      `msgpack:"lw,omitempty"` // millimeters
	Dashes     []float64    `msgpack:"d,omitempty"`
	Widths     [][2]float64 `msgpack:"w,omitempty"`

	Size float64 `msgpack:"s,omitempty"`
	Mode int     `msgpack:"m,omitempty"`

	Text     string  `msgpack:"x,omitempty"`
	Height   float64 `msgpack:"th,omitempty"`
	Rotation float64 `msgpack:"r,omitempty"`

	Highlighted bool `msgpack:"hl,omitempty"`
}
