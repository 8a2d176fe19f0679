package dxfrender

import (
	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
	"github.com/wieslawsoltes/DxfParser-sub001/style"
	"github.com/wieslawsoltes/DxfParser-sub001/tess"
)

func (e *emitter) hatch(h *scene.Hatch) {
	if !e.b.visual.Hatches {
		e.quiet = true
		e.b.frame.Stats.Hidden++
		return
	}
	hb := ReconstructHatch(h)
	if len(hb.Regions) == 0 && len(hb.Unassigned) == 0 {
		return
	}
	m := e.elevated(h.Elevation)
	proto := e.hatchFill(h, m)
	for _, r := range hb.Regions {
		e.fill(transformContours(m, r.Contours()), proto)
	}
	for _, hole := range hb.Unassigned {
		f := proto
		f.Unassigned = true
		e.fill(transformContours(m, []geom.Contour{hole}), f)
	}
}

// hatchFill describes how a hatch's regions are painted.
func (e *emitter) hatchFill(h *scene.Hatch, m geom.Matrix) Fill {
	f := Fill{Kind: FillSolid, Color: e.color, Material: e.common.Material}
	switch {
	case h.Gradient != nil:
		g := h.Gradient
		f.Kind = FillGradient
		f.Gradient = &Gradient{
			Name:        g.Name,
			Color1:      style.RGBColor(g.Color1).WithAlpha(e.color.A),
			Color2:      style.RGBColor(g.Color2).WithAlpha(e.color.A),
			SingleColor: g.SingleColor,
			Angle:       g.Angle + m.Rotation2D(),
			Shift:       g.Shift,
		}
		if g.SingleColor {
			f.Gradient.Color2 = tint(f.Gradient.Color1, g.Tint)
		}
	case !h.Solid:
		s := m.UniformScale2D()
		lines := make([]scene.PatternLine, len(h.PatternLines))
		for i, pl := range h.PatternLines {
			dashes := make([]float64, len(pl.Dashes))
			for j, d := range pl.Dashes {
				dashes[j] = d * s
			}
			lines[i] = scene.PatternLine{
				Angle:  pl.Angle,
				Origin: m.TransformPoint2(pl.Origin),
				Offset: pl.Offset.Scale(s),
				Dashes: dashes,
			}
		}
		scale := h.PatternScale
		if scale <= 0 {
			scale = 1
		}
		f.Kind = FillPattern
		f.Pattern = &Pattern{
			Name:  h.Pattern,
			Angle: h.PatternAngle*deg + m.Rotation2D(),
			Scale: scale * s,
			Lines: lines,
		}
	}
	return f
}

// solid fills a SOLID or TRACE. The third and fourth corners are stored
// swapped; equal third and fourth corners make a triangle.
func (e *emitter) solid(c [4]geom.Vec3) {
	ring := []geom.Vec2{c[0].XY(), c[1].XY(), c[3].XY(), c[2].XY()}
	if c[2].Near(c[3], geom.Epsilon) {
		ring = ring[:3]
	}
	m := e.ocs()
	pts := make([]geom.Vec2, len(ring))
	for i, p := range ring {
		pts[i] = m.TransformPoint(geom.Vec3{X: p.X, Y: p.Y, Z: c[0].Z}).XY()
	}
	if len(geom.Dedupe(pts, geom.Epsilon)) < 3 {
		e.path(pts, true, nil, e.color)
		return
	}
	e.fill([]geom.Contour{{Points: pts}}, Fill{Kind: FillSolid, Color: e.color, Material: e.common.Material})
}

func (e *emitter) face3D(f *scene.Face3D) {
	verts := f.Corners[:]
	n := 4
	if f.Corners[2].Near(f.Corners[3], geom.Epsilon) {
		n = 3
	}
	face := tess.Face{Indices: make([]int, n), HiddenEdges: make([]bool, n)}
	for i := range n {
		face.Indices[i] = i
		face.HiddenEdges[i] = f.HiddenEdges[i]
	}
	if n == 3 {
		// The third edge collapses; the fourth closes the triangle.
		face.HiddenEdges[2] = f.HiddenEdges[3]
	}
	e.meshFaces(verts[:n], []tess.Face{face})
}

func (e *emitter) mesh(md scene.MeshData) {
	faces := make([]tess.Face, 0, len(md.Faces))
	for _, f := range md.Faces {
		faces = append(faces, tess.Face{Indices: f})
	}
	e.meshFaces(md.Vertices, faces)
}

func (e *emitter) solid3D(s *scene.Solid3D) {
	if s.Approximation != nil && len(s.Approximation.Faces) > 0 {
		e.mesh(*s.Approximation)
		return
	}
	if !s.Bounds.Valid {
		return
	}
	c := s.Bounds.Corners()
	e.stroke(e.xform(), c[:], true)
}

// meshFaces draws mesh faces according to the visual style: filled faces
// when it shows faces, visible edges when it shows edges or hides faces.
func (e *emitter) meshFaces(verts []geom.Vec3, faces []tess.Face) {
	res := tess.TriangulateMesh(tess.Mesh{Vertices: verts, Faces: faces})
	if len(res.Triangles) == 0 && len(res.Edges) == 0 {
		return
	}
	world := project3(e.xform(), verts)
	vs := e.b.visual
	if vs.Faces && len(res.Triangles) > 0 {
		idx := make([]int, 0, 3*len(res.Triangles))
		for _, t := range res.Triangles {
			idx = append(idx, t[0], t[1], t[2])
		}
		e.meshFill(world, idx, vs.FaceColor(e.color))
	}
	if vs.Edges || !vs.Faces {
		c := vs.EdgeColor(e.color)
		for _, ed := range res.Edges {
			e.path([]geom.Vec2{world[ed[0]], world[ed[1]]}, false, nil, c)
		}
	}
}

func (e *emitter) polySolid(p *scene.PolySolid) {
	if len(p.Vertices) < 2 {
		return
	}
	m := e.ocs()
	if p.Width <= 0 {
		e.stroke(m, p.Vertices, p.Closed)
		return
	}
	half := p.Width / 2
	center := p.Vertices
	switch p.Justification {
	case 0:
		center = tess.OffsetPath(p.Vertices, -half, p.Closed)
	case 2:
		center = tess.OffsetPath(p.Vertices, half, p.Closed)
	}
	band := tess.SweepBand(center, half, p.Closed)
	if len(band) == 0 {
		return
	}
	world := transformContours(m, band)
	vs := e.b.visual
	if vs.Faces {
		e.fill(world, Fill{Kind: FillSolid, Color: vs.FaceColor(e.color), Material: e.common.Material})
	}
	if vs.Edges || !vs.Faces {
		c := vs.EdgeColor(e.color)
		for _, ct := range world {
			e.path(ct.Points, true, nil, c)
		}
	}
}

// rasterOutline returns the world outline of a raster frame: its clip
// boundary when clipped, else the full image rectangle. Pixel (0, 0) is
// centered half a pixel in from the origin corner.
func rasterOutline(m geom.Matrix, r scene.RasterFrame) []geom.Vec2 {
	px := func(p geom.Vec2) geom.Vec2 {
		w := r.Origin.Add(r.U.Scale(p.X + 0.5)).Add(r.V.Scale(p.Y + 0.5))
		return m.TransformPoint(w).XY()
	}
	var ring []geom.Vec2
	if r.Clipped && len(r.Boundary) >= 2 {
		ring = geom.Open(clipRing(r.Boundary))
	} else {
		ring = []geom.Vec2{
			geom.V2(-0.5, -0.5),
			geom.V2(r.Size.X-0.5, -0.5),
			geom.V2(r.Size.X-0.5, r.Size.Y-0.5),
			geom.V2(-0.5, r.Size.Y-0.5),
		}
	}
	out := make([]geom.Vec2, len(ring))
	for i, p := range ring {
		out[i] = px(p)
	}
	return out
}

// wipeout masks with the background color.
func (e *emitter) wipeout(w *scene.Wipeout) {
	if !e.b.visual.Wipeouts {
		e.quiet = true
		e.b.frame.Stats.Hidden++
		return
	}
	ring := rasterOutline(e.xform(), w.RasterFrame)
	e.fill([]geom.Contour{{Points: ring}}, Fill{Kind: FillSolid, Color: style.BackgroundColor})
}

// image draws the frame of a raster image; pixels belong to the surface.
func (e *emitter) image(im *scene.Image) {
	e.path(rasterOutline(e.xform(), im.RasterFrame), true, nil, e.color)
}

func (e *emitter) underlay(u *scene.Underlay) {
	ring := u.Boundary
	if len(ring) < 2 {
		if u.Extent.X <= 0 || u.Extent.Y <= 0 {
			return
		}
		ring = []geom.Vec2{{}, u.Extent}
	}
	sx, sy := u.Scale.X, u.Scale.Y
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = sx
	}
	p := u.Position
	m := e.ocs().
		Multiply(geom.Translate(p.X, p.Y, p.Z)).
		Multiply(geom.RotateZ(u.Rotation * deg)).
		Multiply(geom.Scale(sx, sy, 1))
	e.stroke(m, clipRing(ring), true)
}

func (e *emitter) ole2Frame(o *scene.OLE2Frame) {
	a, b := o.UpperLeft.XY(), o.LowerRight.XY()
	e.stroke(e.xform(), clipRing([]geom.Vec2{a, b}), true)
}

// tint blends c toward white; one-color gradients use it for their second
// color.
func tint(c style.Color, amount float64) style.Color {
	amount = min(max(amount, 0), 1)
	lift := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*amount + 0.5)
	}
	return style.Color{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}
