package recording

import (
	"errors"
	"fmt"
	"math"
	"strings"

	dxfrender "github.com/wieslawsoltes/DxfParser-sub001"
	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/style"
)

// ErrNilBackend is returned by Playback without a backend.
var ErrNilBackend = errors.New("recording: nil backend")

// Recording is an immutable, serializable copy of a frame's primitives.
type Recording struct {
	FrameID     string          `msgpack:"frame_id"`
	Layout      string          `msgpack:"layout,omitempty"`
	Width       int             `msgpack:"width"`
	Height      int             `msgpack:"height"`
	VisualStyle string          `msgpack:"visual_style,omitempty"`
	View        View            `msgpack:"view"`
	Commands    []Command       `msgpack:"commands"`
	Colors      []style.Color   `msgpack:"colors"`
	Stats       dxfrender.Stats `msgpack:"stats"`

	pool *ResourcePool
}

// View is the world to screen mapping the recording was made with.
type View struct {
	Center   geom.Vec2 `msgpack:"center"`
	Scale    float64   `msgpack:"scale"`
	Rotation float64   `msgpack:"rotation"`
}

// Record captures the primitives of f in emission order. A nil frame
// yields an empty recording.
func Record(f *dxfrender.Frame) *Recording {
	if f == nil {
		return &Recording{pool: NewResourcePool()}
	}
	pool := NewResourcePool()
	r := &Recording{
		FrameID:     f.ID.String(),
		Layout:      f.Layout,
		Width:       f.View.Width,
		Height:      f.View.Height,
		VisualStyle: f.VisualStyle.Name,
		View:        View{Center: f.View.Center, Scale: f.View.Scale, Rotation: f.View.Rotation},
		Commands:    make([]Command, 0, len(f.Pickables)),
		Stats:       f.Stats,
		pool:        pool,
	}
	for _, pk := range f.Pickables {
		cmd, ok := command(f, pk, pool)
		if !ok {
			continue
		}
		cmd.Handle = pk.Handle
		cmd.Layer = pk.Layer
		cmd.Highlighted = pk.Highlighted
		r.Commands = append(r.Commands, cmd)
	}
	r.Colors = pool.Colors()
	return r
}

func command(f *dxfrender.Frame, pk dxfrender.Pickable, pool *ResourcePool) (Command, bool) {
	switch pk.Type {
	case dxfrender.PrimitivePolyline:
		if pk.Index >= len(f.Polylines) {
			return Command{}, false
		}
		p := f.Polylines[pk.Index]
		return Command{
			Type:       CmdStroke,
			Color:      pool.AddColor(p.Color),
			Points:     p.Points,
			Closed:     p.Closed,
			Lineweight: p.Lineweight,
			Dashes:     p.Dashes,
			Widths:     p.Widths,
		}, true
	case dxfrender.PrimitiveFill:
		if pk.Index >= len(f.Fills) {
			return Command{}, false
		}
		fl := f.Fills[pk.Index]
		return Command{
			Type:     CmdFill,
			Color:    pool.AddColor(fillColor(fl)),
			Contours: fillContours(fl),
		}, true
	case dxfrender.PrimitivePoint:
		if pk.Index >= len(f.Points) {
			return Command{}, false
		}
		p := f.Points[pk.Index]
		return Command{
			Type:   CmdPoint,
			Color:  pool.AddColor(p.Color),
			Points: []geom.Vec2{p.Position},
			Size:   p.Size,
			Mode:   p.Mode,
		}, true
	case dxfrender.PrimitiveText:
		if pk.Index >= len(f.Texts) {
			return Command{}, false
		}
		t := f.Texts[pk.Index]
		return Command{
			Type:     CmdText,
			Color:    pool.AddColor(t.Color),
			Points:   textCorners(t, f.View.Scale),
			Text:     strings.Join(t.Lines, "\n"),
			Height:   t.Height,
			Rotation: t.ScreenRotation,
		}, true
	}
	return Command{}, false
}

// fillColor flattens gradients to their first color.
func fillColor(fl dxfrender.Fill) style.Color {
	if fl.Kind == dxfrender.FillGradient && fl.Gradient != nil {
		return fl.Gradient.Color1
	}
	return fl.Color
}

// fillContours returns the screen contours of a fill, or its triangles
// when it only has a mesh.
func fillContours(fl dxfrender.Fill) [][]geom.Vec2 {
	if len(fl.Contours) > 0 {
		out := make([][]geom.Vec2, len(fl.Contours))
		for i, c := range fl.Contours {
			out[i] = c.Points
		}
		return out
	}
	if fl.Mesh == nil {
		return nil
	}
	n := fl.Mesh.TriangleCount()
	out := make([][]geom.Vec2, n)
	for i := range n {
		t := fl.Mesh.Triangle(i)
		if geom.SignedArea(t[:]) < 0 {
			t[1], t[2] = t[2], t[1]
		}
		out[i] = []geom.Vec2{t[0], t[1], t[2]}
	}
	return out
}

// textCorners returns the screen outline of a text block. Screen y points
// down, so the block grows along the baseline's clockwise normal.
func textCorners(t dxfrender.Text, scale float64) []geom.Vec2 {
	sin, cos := math.Sincos(t.ScreenRotation)
	u := geom.V2(cos, sin).Scale(t.Width * scale)
	d := geom.V2(-sin, cos).Scale(t.BlockHeight * scale)
	p := t.Position
	return []geom.Vec2{p, p.Add(u), p.Add(u).Add(d), p.Add(d)}
}

// Pool returns the color pool of the recording.
func (r *Recording) Pool() *ResourcePool {
	if r.pool == nil {
		r.pool = poolFrom(r.Colors)
	}
	return r.pool
}

// Len returns the number of commands.
func (r *Recording) Len() int {
	return len(r.Commands)
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.Commands {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Playback draws every command on b in order.
func (r *Recording) Playback(b Backend) error {
	if b == nil {
		return ErrNilBackend
	}
	if err := b.Begin(r.Width, r.Height); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}
	pool := r.Pool()
	for i, cmd := range r.Commands {
		c, ok := pool.Color(cmd.Color)
		if !ok {
			c = style.DefaultColor
		}
		if err := b.Draw(cmd, c); err != nil {
			return fmt.Errorf("recording: command %d (%s): %w", i, cmd.Type, err)
		}
	}
	if err := b.End(); err != nil {
		return fmt.Errorf("recording: end: %w", err)
	}
	return nil
}
