package dxfrender

import (
	"github.com/wieslawsoltes/DxfParser-sub001/coords"
	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
	"github.com/wieslawsoltes/DxfParser-sub001/style"
	"github.com/wieslawsoltes/DxfParser-sub001/tess"
)

// emitter appends the primitives of one entity to the frame. Geometry is
// passed in world coordinates unless a method takes a matrix.
type emitter struct {
	b      *builder
	entity scene.Entity
	common *scene.Common
	ctx    *instance
	layer  string

	color       style.Color
	lineweight  float64
	dashes      []float64 // world units
	highlighted bool

	emitted int
	culled  int
	quiet   bool // produced nothing on purpose
}

func (b *builder) emitter(it item, layer string) *emitter {
	c := it.entity.Base()
	ctx := it.ctx
	e := &emitter{
		b:          b,
		entity:     it.entity,
		common:     c,
		ctx:        ctx,
		layer:      layer,
		color:      b.styles.Color(c, ctx.inherit),
		lineweight: b.styles.Lineweight(c, ctx.inherit),
	}

	// Dash lengths of model geometry shown through a viewport are paper
	// lengths when PSLTSCALE is set.
	vpScale := 1.0
	if ctx.vpScale > 0 {
		vpScale = 1 / ctx.vpScale
	}
	lt := b.styles.LinetypeInSpace(c, ctx.inherit, ctx.vpScale > 0, vpScale)
	if !lt.Continuous() {
		s := ctx.xform.UniformScale2D()
		e.dashes = make([]float64, len(lt.Pattern))
		for i, d := range lt.Pattern {
			e.dashes[i] = d * s
		}
	}

	if b.selected(c, ctx) {
		e.highlighted = true
		e.color = b.opts.highlight
	}
	return e
}

// xform maps the entity's world coordinates into the frame.
func (e *emitter) xform() geom.Matrix {
	return e.ctx.xform
}

// ocs maps the entity's object coordinates into the frame.
func (e *emitter) ocs() geom.Matrix {
	if m, ok := coords.OCSMatrix(e.common.Normal()); ok {
		return e.ctx.xform.Multiply(m)
	}
	return e.ctx.xform
}

// stroke draws a planar path given in the coordinates of m.
func (e *emitter) stroke(m geom.Matrix, pts []geom.Vec2, closed bool) {
	e.path(m.TransformPoints2(pts), closed, nil, e.color)
}

// stroke3 draws a spatial path given in the coordinates of m.
func (e *emitter) stroke3(m geom.Matrix, pts []geom.Vec3, closed bool) {
	e.path(project3(m, pts), closed, nil, e.color)
}

func project3(m geom.Matrix, pts []geom.Vec3) []geom.Vec2 {
	out := make([]geom.Vec2, len(pts))
	for i, p := range pts {
		out[i] = m.TransformPoint(p).XY()
	}
	return out
}

// path appends a stroked path in world coordinates. A closed path may
// repeat its first point. widths, when set, holds one pair per segment and
// disables point merging.
func (e *emitter) path(pts []geom.Vec2, closed bool, widths [][2]float64, color style.Color) {
	if widths == nil {
		pts = geom.Dedupe(pts, geom.Epsilon)
	}
	if closed && len(pts) > 2 && pts[0].Near(pts[len(pts)-1], geom.Epsilon) {
		pts = pts[:len(pts)-1]
		if widths != nil && len(widths) > len(pts) {
			widths = widths[:len(pts)]
		}
	}
	if len(pts) < 2 {
		return
	}
	if len(pts) == 2 && pts[0].Near(pts[1], geom.Epsilon) {
		return
	}

	bounds := geom.BoundsOf(pts...)
	for _, w := range widths {
		bounds = bounds.Inflate(max(w[0], w[1]) / 2)
	}
	path := pts
	if closed {
		path = geom.Close(pts)
	}
	if !e.ctx.clips.visible(path, bounds) {
		e.culled++
		return
	}

	f := e.b.frame
	f.Polylines = append(f.Polylines, Polyline{
		World:       pts,
		Closed:      closed,
		Color:       color,
		Lineweight:  e.lineweight,
		Dashes:      e.dashes,
		Widths:      widths,
		Highlighted: e.highlighted,
		Handle:      e.common.Handle,
	})
	e.pick(PrimitivePolyline, len(f.Polylines)-1, bounds, true)
}

// infiniteLine appends a construction line through origin along dir. Its
// extent is fixed once the view is known.
func (e *emitter) infiniteLine(origin, dir geom.Vec2, ray bool) {
	dir = dir.Normalize(geom.Vec2{})
	if dir == (geom.Vec2{}) {
		return
	}
	f := e.b.frame
	pts := []geom.Vec2{origin, origin.Add(dir)}
	f.Polylines = append(f.Polylines, Polyline{
		World:       pts,
		Color:       e.color,
		Lineweight:  e.lineweight,
		Dashes:      e.dashes,
		Highlighted: e.highlighted,
		Handle:      e.common.Handle,
	})
	e.b.infinite = append(e.b.infinite, infiniteLine{
		polyline: len(f.Polylines) - 1,
		pickable: len(f.Pickables),
		origin:   origin,
		dir:      dir,
		ray:      ray,
	})
	e.pick(PrimitivePolyline, len(f.Polylines)-1, geom.BoundsOf(pts...), false)
}

// fill appends a filled region. Contours are in world coordinates and are
// re-oriented: outer loops positive, holes negative.
func (e *emitter) fill(contours []geom.Contour, f Fill) {
	var (
		out    []geom.Contour
		bounds geom.Bounds
	)
	for _, c := range contours {
		ring := geom.Open(geom.Dedupe(c.Points, geom.Epsilon))
		if len(ring) < 3 {
			continue
		}
		oc := geom.NewContour(ring, c.IsHole)
		out = append(out, oc)
		bounds = bounds.Union(oc.Bounds())
	}
	if len(out) == 0 {
		return
	}
	if !e.ctx.clips.visible(out[0].Points, bounds) {
		e.culled++
		return
	}
	f.World = out
	f.Highlighted = e.highlighted
	f.Handle = e.common.Handle
	e.appendFill(f, bounds)
}

// meshFill appends a pre-triangulated surface. indices are triangle
// corners into vertices, which are in world coordinates.
func (e *emitter) meshFill(vertices []geom.Vec2, indices []int, color style.Color) {
	if len(indices) < 3 {
		return
	}
	bounds := geom.BoundsOf(vertices...)
	if !e.ctx.clips.visible(vertices, bounds) {
		e.culled++
		return
	}
	e.appendFill(Fill{
		Kind:        FillSolid,
		Color:       color,
		Material:    e.common.Material,
		Mesh:        &tess.Result{Vertices: vertices, Indices: indices},
		Highlighted: e.highlighted,
		Handle:      e.common.Handle,
	}, bounds)
}

func (e *emitter) appendFill(f Fill, bounds geom.Bounds) {
	fr := e.b.frame
	fr.Fills = append(fr.Fills, f)
	e.pick(PrimitiveFill, len(fr.Fills)-1, bounds, true)
}

// transformContours maps contours through m.
func transformContours(m geom.Matrix, cs []geom.Contour) []geom.Contour {
	out := make([]geom.Contour, len(cs))
	for i, c := range cs {
		out[i] = geom.Contour{Points: m.TransformPoints2(c.Points), IsHole: c.IsHole}
	}
	return out
}

// marker appends a point marker at a world position.
func (e *emitter) marker(p geom.Vec2, mode int) {
	bounds := geom.BoundsOf(p)
	if !e.ctx.clips.visible([]geom.Vec2{p}, bounds) {
		e.culled++
		return
	}
	f := e.b.frame
	f.Points = append(f.Points, PointMarker{
		World:       p,
		Color:       e.color,
		Mode:        mode,
		Highlighted: e.highlighted,
		Handle:      e.common.Handle,
	})
	e.pick(PrimitivePoint, len(f.Points)-1, bounds, true)
}

// textRun appends a laid-out text block whose outline corners are given in
// world coordinates, top-left first.
func (e *emitter) textRun(t Text, corners [4]geom.Vec2) {
	bounds := geom.BoundsOf(corners[:]...)
	ring := []geom.Vec2{corners[0], corners[1], corners[2], corners[3], corners[0]}
	if !e.ctx.clips.visible(ring, bounds) {
		e.culled++
		return
	}
	t.Color = e.color
	t.Highlighted = e.highlighted
	t.Handle = e.common.Handle
	f := e.b.frame
	f.Texts = append(f.Texts, t)
	e.pick(PrimitiveText, len(f.Texts)-1, bounds, true)
}

// pick records the pickable of a primitive. finite geometry extends the
// frame's world bounds.
func (e *emitter) pick(t PrimitiveType, index int, bounds geom.Bounds, finite bool) {
	f := e.b.frame
	f.Pickables = append(f.Pickables, Pickable{
		Type:        t,
		Index:       index,
		Handle:      e.common.Handle,
		Layer:       e.layer,
		Kind:        e.entity.Kind(),
		BlockStack:  e.ctx.stack,
		WorldBounds: bounds,
		Highlighted: e.highlighted,
	})
	if finite {
		e.b.bounds = e.b.bounds.Union(bounds)
	}
	e.emitted++
}

// finish folds the entity's counters into the frame statistics.
func (e *emitter) finish() {
	st := &e.b.frame.Stats
	st.Culled += e.culled
	if e.emitted == 0 && e.culled == 0 && !e.quiet {
		st.Degenerate++
	}
}
