package dxfrender

import (
	"math"

	"github.com/wieslawsoltes/DxfParser-sub001/coords"
	"github.com/wieslawsoltes/DxfParser-sub001/dimension"
	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
	"github.com/wieslawsoltes/DxfParser-sub001/tess"
)

const deg = math.Pi / 180

// leaderSpanSamples is the Catmull-Rom resolution of spline leaders.
const leaderSpanSamples = 8

func (e *emitter) line(l *scene.Line) {
	e.stroke3(e.xform(), []geom.Vec3{l.Start, l.End}, false)
}

func (e *emitter) xline(origin, dir geom.Vec3, ray bool) {
	m := e.xform()
	e.infiniteLine(m.TransformPoint(origin).XY(), m.TransformVector(dir).XY(), ray)
}

func (e *emitter) point(p *scene.Point) {
	e.marker(e.xform().TransformPoint(p.Position).XY(), e.b.scene.Header.PDMode)
}

// elevated returns the OCS transform lifted to height z.
func (e *emitter) elevated(z float64) geom.Matrix {
	m := e.ocs()
	if z != 0 {
		m = m.Multiply(geom.Translate(0, 0, z))
	}
	return m
}

func (e *emitter) circle(c *scene.Circle) {
	if c.Radius < geom.Epsilon {
		return
	}
	e.stroke(e.elevated(c.Center.Z), geom.SampleCircle(c.Center.XY(), c.Radius), true)
}

func (e *emitter) arc(a *scene.Arc) {
	if a.Radius < geom.Epsilon {
		return
	}
	pts := geom.SampleArc(a.Center.XY(), a.Radius, a.StartAngle*deg, a.EndAngle*deg)
	e.stroke(e.elevated(a.Center.Z), pts, false)
}

func (e *emitter) ellipse(el *scene.Ellipse) {
	major := el.MajorAxis.Length()
	if major < geom.Epsilon || el.Ratio <= 0 {
		return
	}
	z := e.common.Normal()
	x := el.MajorAxis.Scale(1 / major)
	y := z.Cross(x).Normalize(geom.YAxis)
	m := e.xform().Multiply(geom.FromBasis(el.Center, x, y, z))

	pts := geom.SampleEllipse(geom.Vec2{}, geom.V2(major, 0), el.Ratio, el.StartParam, el.EndParam)
	closed := len(pts) > 2 && pts[0].Near(pts[len(pts)-1], geom.Epsilon*major)
	e.stroke(m, pts, closed)
}

func (e *emitter) lwpolyline(p *scene.LWPolyline) {
	n := len(p.Vertices)
	var sw, ew []float64
	if p.ConstantWidth > 0 {
		sw = make([]float64, n)
		for i := range sw {
			sw[i] = p.ConstantWidth
		}
		ew = sw
	}
	e.bulgePath(e.elevated(p.Elevation), p.Vertices, p.Bulges, sw, ew, p.Closed)
}

func (e *emitter) polyline(p *scene.Polyline) {
	switch p.Mode {
	case scene.Polyline3D:
		pts := make([]geom.Vec3, len(p.Vertices))
		for i, v := range p.Vertices {
			pts[i] = v.Position
		}
		e.stroke3(e.xform(), pts, p.Closed)
	case scene.PolygonMesh:
		e.meshFaces(positions(p.Vertices), tess.GridFaces(p.MCount, p.NCount, p.Closed, p.NClosed))
	case scene.PolyfaceMesh:
		faces := make([]tess.Face, len(p.Faces))
		for i, f := range p.Faces {
			faces[i] = tess.Face{Indices: f.Indices, HiddenEdges: f.Hidden}
		}
		e.meshFaces(positions(p.Vertices), faces)
	default:
		if len(p.Vertices) == 0 {
			return
		}
		var (
			n      = len(p.Vertices)
			verts  = make([]geom.Vec2, n)
			bulges = make([]float64, n)
			sw     = make([]float64, n)
			ew     = make([]float64, n)
		)
		for i, v := range p.Vertices {
			verts[i] = v.Position.XY()
			bulges[i] = v.Bulge
			sw[i], ew[i] = v.StartWidth, v.EndWidth
		}
		e.bulgePath(e.elevated(p.Vertices[0].Position.Z), verts, bulges, sw, ew, p.Closed)
	}
}

func positions(vs []scene.PolylineVertex) []geom.Vec3 {
	out := make([]geom.Vec3, len(vs))
	for i, v := range vs {
		out[i] = v.Position
	}
	return out
}

// bulgePath strokes a bulged polyline in the coordinates of m. Per-vertex
// start and end widths, when any is set, are interpolated along arc
// segments and emitted in world units.
func (e *emitter) bulgePath(m geom.Matrix, verts []geom.Vec2, bulges, sw, ew []float64, closed bool) {
	if !anyPositive(sw) && !anyPositive(ew) {
		e.stroke(m, geom.SampleBulgePolyline(verts, bulges, closed), closed)
		return
	}
	pts, widths := widePath(verts, bulges, sw, ew, closed)
	s := m.UniformScale2D()
	for i := range widths {
		widths[i][0] *= s
		widths[i][1] *= s
	}
	e.path(m.TransformPoints2(pts), closed, widths, e.color)
}

// widePath samples a bulged polyline and returns one width pair per
// sampled segment. A closed result does not repeat its first point.
func widePath(verts []geom.Vec2, bulges, sw, ew []float64, closed bool) ([]geom.Vec2, [][2]float64) {
	n := len(verts)
	segs := n - 1
	if closed {
		segs = n
	}
	var (
		pts    []geom.Vec2
		widths [][2]float64
	)
	for i := 0; i < segs; i++ {
		p0, p1 := verts[i], verts[(i+1)%n]
		if p0.Near(p1, geom.Epsilon) {
			continue
		}
		seg := geom.BulgeArc(p0, p1, at(bulges, i))
		w0, w1 := at(sw, i), at(ew, i)
		k := float64(len(seg) - 1)
		for j := 0; j+1 < len(seg); j++ {
			t0, t1 := float64(j)/k, float64(j+1)/k
			pts = append(pts, seg[j])
			widths = append(widths, [2]float64{w0 + (w1-w0)*t0, w0 + (w1-w0)*t1})
		}
	}
	if !closed && n > 0 {
		pts = append(pts, verts[n-1])
	}
	return pts, widths
}

func at(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

func anyPositive(v []float64) bool {
	for _, x := range v {
		if x > 0 {
			return true
		}
	}
	return false
}

func (e *emitter) spline(s *scene.Spline) {
	pts := geom.Spline{
		Degree:  s.Degree,
		Control: s.Control,
		Weights: s.Weights,
		Knots:   s.Knots,
		Fit:     s.Fit,
		Closed:  s.Closed,
	}.Sample()
	e.stroke3(e.xform(), pts, s.Closed)
}

func (e *emitter) helix(h *scene.Helix) {
	z := h.AxisDir.Normalize(geom.ZAxis)
	radial := h.Start.Sub(h.AxisBase)
	radial = radial.Sub(z.Scale(radial.Dot(z)))
	r := h.Radius
	if r <= 0 {
		r = radial.Length()
	}
	x := radial.Normalize(coords.OCS(z).X)
	y := z.Cross(x)
	m := e.xform().Multiply(geom.FromBasis(h.AxisBase, x, y, z))
	e.stroke3(m, geom.Helix(r, 0, h.Turns, h.TurnHeight, h.CCW), false)
}

func (e *emitter) mline(ml *scene.MLine) {
	if len(ml.Vertices) < 2 {
		return
	}
	path := project3(e.xform(), ml.Vertices)
	offsets := ml.Offsets
	if len(offsets) == 0 {
		offsets = []float64{0}
	}
	scale := ml.Scale
	if scale == 0 {
		scale = 1
	}
	ms := e.xform().UniformScale2D()
	var first, last []geom.Vec2
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, o := range offsets {
		d := o * scale * ms
		line := tess.OffsetPath(path, d, ml.Closed)
		e.path(line, ml.Closed, nil, e.color)
		if len(line) < 2 {
			continue
		}
		if d < lo {
			lo, first = d, line
		}
		if d > hi {
			hi, last = d, line
		}
	}
	if ml.Closed || first == nil || last == nil || hi-lo < geom.Epsilon {
		return
	}
	e.path([]geom.Vec2{first[0], last[0]}, false, nil, e.color)
	e.path([]geom.Vec2{first[len(first)-1], last[len(last)-1]}, false, nil, e.color)
}

func (e *emitter) leader(l *scene.Leader) {
	if len(l.Vertices) < 2 {
		return
	}
	pts := l.Vertices
	if l.Spline {
		pts = geom.CatmullRom(pts, leaderSpanSamples)
	}
	m := e.xform()
	e.stroke3(m, pts, false)
	if !l.Arrow {
		return
	}
	s := e.b.dimensionSettings(l.Style, nil, nil)
	tip, from := l.Vertices[0].XY(), l.Vertices[1].XY()
	e.drawArrow(m, dimension.NewArrow(tip, tip.Sub(from), s.Block1, s.ArrowSize, 0), e.color)
}
