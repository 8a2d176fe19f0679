package dxfrender

import (
	"math"
	"slices"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

// pointSizeFraction is the marker size relative to the surface height when
// PDSIZE is zero.
const pointSizeFraction = 0.05

// infiniteLine is an XLINE or RAY. Its stored segment is replaced by the
// part that crosses the view.
type infiniteLine struct {
	polyline int
	pickable int
	origin   geom.Vec2
	dir      geom.Vec2
	ray      bool
}

// view picks the camera: the explicit view, else the active viewport in
// model space, else the drawing fitted to the surface.
func (b *builder) view() ViewState {
	w, h := b.opts.width, b.opts.height
	if v := b.opts.view; v != nil && v.Height > geom.Epsilon {
		return newViewState(v.Center, v.Height, v.Rotation, w, h)
	}
	if b.frame.Layout == "" {
		if av, ok := b.coords.ActiveView(); ok {
			return newViewState(av.Center, av.Height, av.Twist*deg, w, h)
		}
	}
	center, height := b.fit(float64(w) / float64(h))
	return newViewState(center, height, 0, w, h)
}

// fit frames the world bounds, or the header extents when nothing was
// drawn, leaving the configured margin on every side.
func (b *builder) fit(aspect float64) (geom.Vec2, float64) {
	bounds := b.bounds
	if !bounds.Valid {
		hdr := &b.scene.Header
		if hdr.ExtMax.X > hdr.ExtMin.X && hdr.ExtMax.Y > hdr.ExtMin.Y {
			bounds = geom.BoundsOf(hdr.ExtMin.XY(), hdr.ExtMax.XY())
		}
	}
	if !bounds.Valid {
		return geom.Vec2{}, 1
	}
	height := math.Max(bounds.Height(), bounds.Width()/aspect)
	if height < geom.Epsilon {
		height = 1
	}
	return bounds.Center(), height / (1 - 2*b.opts.margin)
}

func newViewState(center geom.Vec2, height, rotation float64, w, h int) ViewState {
	scale := float64(h) / height
	screen := geom.Translate(float64(w)/2, float64(h)/2, 0).
		Multiply(geom.Scale(scale, -scale, 1)).
		Multiply(geom.RotateZ(-rotation)).
		Multiply(geom.Translate(-center.X, -center.Y, 0))
	return ViewState{
		Center:   center,
		Scale:    scale,
		Rotation: rotation,
		Width:    w,
		Height:   h,
		Screen:   screen,
	}
}

// project fixes the view and fills the screen fields of every primitive.
func (b *builder) project() {
	f := b.frame
	v := b.view()
	f.View = v
	f.WorldBounds = b.bounds
	b.sizeInfinite(v)

	m, s := v.Screen, v.Scale
	for i := range f.Polylines {
		p := &f.Polylines[i]
		p.Points = m.TransformPoints2(p.World)
		p.Dashes = scaled(p.Dashes, s)
		if p.Widths != nil {
			w := make([][2]float64, len(p.Widths))
			for j, pair := range p.Widths {
				w[j] = [2]float64{pair[0] * s, pair[1] * s}
			}
			p.Widths = w
		}
	}
	for i := range f.Fills {
		fl := &f.Fills[i]
		fl.Contours = make([]geom.Contour, len(fl.World))
		for j, c := range fl.World {
			fl.Contours[j] = geom.NewContour(m.TransformPoints2(geom.Open(c.Points)), c.IsHole)
		}
		if fl.Mesh != nil {
			mesh := *fl.Mesh
			mesh.Vertices = m.TransformPoints2(mesh.Vertices)
			mesh.Outlines = make([][]geom.Vec2, len(fl.Mesh.Outlines))
			for j, o := range fl.Mesh.Outlines {
				mesh.Outlines[j] = m.TransformPoints2(o)
			}
			fl.Mesh = &mesh
		}
	}
	size := b.pointSize(v)
	for i := range f.Points {
		p := &f.Points[i]
		p.Position = m.TransformPoint2(p.World)
		p.Size = size
	}
	for i := range f.Texts {
		t := &f.Texts[i]
		t.Position = m.TransformPoint2(t.WorldPosition)
		t.Height = t.WorldHeight * s
		t.ScreenRotation = v.Rotation - t.Rotation
	}
	for i := range f.Pickables {
		pk := &f.Pickables[i]
		pk.ScreenBounds = pk.WorldBounds.Transform(m)
	}
	f.ScreenBounds = f.WorldBounds.Transform(m)
}

func scaled(v []float64, s float64) []float64 {
	if v == nil {
		return nil
	}
	out := slices.Clone(v)
	for i := range out {
		out[i] *= s
	}
	return out
}

// pointSize converts PDSIZE to screen units: positive values are drawing
// units, negative values a percentage of the surface height and zero a
// fixed fraction of it.
func (b *builder) pointSize(v ViewState) float64 {
	pd := b.scene.Header.PDSize
	switch {
	case pd > 0:
		return pd * v.Scale
	case pd < 0:
		return -pd / 100 * float64(v.Height)
	}
	return pointSizeFraction * float64(v.Height)
}

// sizeInfinite clips construction lines to the circle around the view.
func (b *builder) sizeInfinite(v ViewState) {
	if len(b.infinite) == 0 {
		return
	}
	f := b.frame
	r := math.Hypot(float64(v.Width), float64(v.Height)) / 2 / v.Scale
	for _, il := range b.infinite {
		tc := v.Center.Sub(il.origin).Dot(il.dir)
		t0, t1 := tc-r, tc+r
		if il.ray {
			t0 = math.Max(t0, 0)
		}
		if t1 <= t0 {
			t1 = t0 + geom.Epsilon
		}
		pts := []geom.Vec2{il.origin.Add(il.dir.Scale(t0)), il.origin.Add(il.dir.Scale(t1))}
		f.Polylines[il.polyline].World = pts
		f.Pickables[il.pickable].WorldBounds = geom.BoundsOf(pts...)
	}
}
