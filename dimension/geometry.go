package dimension

import (
	"math"
	"strings"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
	"github.com/wieslawsoltes/DxfParser-sub001/text"
)

// Label is the placed measurement text.
type Label struct {
	Position geom.Vec2
	Rotation float64 // radians
	Height   float64
	Content  string
}

// Geometry is the synthesized drawing of one dimension in its own plane.
type Geometry struct {
	DimLines [][]geom.Vec2
	ExtLines [][]geom.Vec2
	Arrows   []Arrow
	Label    Label
	Value    float64 // drawing units, or radians for angular subtypes
}

// Lines returns every stroked polyline including arrowheads.
func (g Geometry) Lines() [][]geom.Vec2 {
	out := make([][]geom.Vec2, 0, len(g.DimLines)+len(g.ExtLines)+len(g.Arrows))
	out = append(out, g.DimLines...)
	out = append(out, g.ExtLines...)
	for _, a := range g.Arrows {
		out = append(out, a.Lines...)
	}
	return out
}

// Build synthesizes the geometry of d. ok is false when the definition
// points are degenerate for the subtype.
func Build(d *scene.Dimension, s Settings) (Geometry, bool) {
	var (
		g  Geometry
		ok bool
	)
	switch d.Type {
	case scene.DimLinear:
		g, ok = linear(d, s, d.Rotation*math.Pi/180, false)
	case scene.DimAligned:
		g, ok = linear(d, s, 0, true)
	case scene.DimAngular2Line:
		g, ok = angular2Line(d, s)
	case scene.DimAngular3Point:
		g, ok = angular3Point(d, s)
	case scene.DimDiameter:
		g, ok = diameter(d, s)
	case scene.DimRadius:
		g, ok = radius(d, s)
	case scene.DimOrdinate:
		g, ok = ordinate(d, s)
	case scene.DimArcLength:
		g, ok = arcLength(d, s)
	case scene.DimJoggedRadius:
		g, ok = joggedRadius(d, s)
	}
	if !ok {
		return Geometry{}, false
	}
	g.Label.Height = s.TextHeight
	g.Label.Content = LabelText(d, s, g.Value)
	if userText(d) {
		g.Label.Position = d.TextMid.XY()
	}
	return g, true
}

// LabelText resolves the displayed text for a measured value. An empty
// override or "<>" shows the measurement, "<>" inside an override is
// replaced by it and a single space suppresses the text.
func LabelText(d *scene.Dimension, s Settings, value float64) string {
	var measured string
	switch d.Type {
	case scene.DimAngular2Line, scene.DimAngular3Point:
		measured = s.AngularMeasurement(value)
	default:
		measured = prefix(d.Type) + s.Measurement(value)
	}
	switch o := d.Text; {
	case o == "" || o == "<>":
		return text.PlainMText(measured)
	case o == " ":
		return ""
	default:
		return text.PlainMText(strings.Replace(o, "<>", measured, 1))
	}
}

func prefix(t scene.DimensionType) string {
	switch t {
	case scene.DimDiameter:
		return "Ø"
	case scene.DimRadius, scene.DimJoggedRadius:
		return "R"
	case scene.DimArcLength:
		return "⌒"
	}
	return ""
}

func userText(d *scene.Dimension) bool {
	return d.UserText || !d.TextMid.IsZero()
}

// linear handles rotated (angle) and aligned dimensions.
func linear(d *scene.Dimension, s Settings, angle float64, aligned bool) (Geometry, bool) {
	p1, p2, loc := d.Def1.XY(), d.Def2.XY(), d.DefPoint.XY()
	dir := geom.V2(math.Cos(angle), math.Sin(angle))
	if aligned {
		if p1.Distance(p2) < geom.Epsilon {
			return Geometry{}, false
		}
		dir = p2.Sub(p1).Normalize(dir)
	}

	// Extension lines run along the oblique angle when one is set,
	// otherwise perpendicular to the dimension line.
	ext := dir.Perp()
	if d.Oblique != 0 {
		o := d.Oblique * math.Pi / 180
		ext = geom.V2(math.Cos(o), math.Sin(o))
		if math.Abs(ext.Cross(dir)) < 1e-9 {
			ext = dir.Perp()
		}
	}
	q1, ok1 := geom.LineIntersection(p1, p1.Add(ext), loc, loc.Add(dir))
	q2, ok2 := geom.LineIntersection(p2, p2.Add(ext), loc, loc.Add(dir))
	if !ok1 || !ok2 {
		return Geometry{}, false
	}

	var g Geometry
	g.Value = math.Abs(p2.Sub(p1).Dot(dir))
	if aligned {
		g.Value = p1.Distance(p2)
	}
	if q1.Distance(q2) < geom.Epsilon {
		return Geometry{}, false
	}

	line := []geom.Vec2{q1, q2}
	if s.TickSize > 0 && s.DimExtend > 0 {
		u := q2.Sub(q1).Normalize(dir)
		line = []geom.Vec2{q1.Sub(u.Scale(s.DimExtend)), q2.Add(u.Scale(s.DimExtend))}
	}
	g.DimLines = append(g.DimLines, line)

	if !s.SuppressExt1 {
		g.ExtLines = appendExt(g.ExtLines, p1, q1, s)
	}
	if !s.SuppressExt2 {
		g.ExtLines = appendExt(g.ExtLines, p2, q2, s)
	}
	g.Arrows = pairArrows(q1, q2, s)

	mid := q1.Lerp(q2, 0.5)
	rot := readable(q2.Sub(q1).Angle())
	up := geom.V2(0, 1).Rotate(rot)
	g.Label.Position = mid.Add(up.Scale(s.Gap + s.TextHeight/2))
	g.Label.Rotation = rot
	return g, true
}

// appendExt adds an extension line from origin toward foot, offset from the
// origin by DIMEXO and extended past the foot by DIMEXE.
func appendExt(lines [][]geom.Vec2, origin, foot geom.Vec2, s Settings) [][]geom.Vec2 {
	v := foot.Sub(origin)
	l := v.Length()
	if l < geom.Epsilon {
		return lines
	}
	u := v.Scale(1 / l)
	start := origin.Add(u.Scale(math.Min(s.ExtOffset, l)))
	end := foot.Add(u.Scale(s.ExtExtend))
	return append(lines, []geom.Vec2{start, end})
}

// pairArrows places outward arrows at both ends of a dimension line.
func pairArrows(a, b geom.Vec2, s Settings) []Arrow {
	u := b.Sub(a).Normalize(geom.V2(1, 0))
	var out []Arrow
	if !s.SuppressDim1 {
		out = append(out, NewArrow(a, u.Neg(), s.Block1, s.ArrowSize, s.TickSize))
	}
	if !s.SuppressDim2 {
		out = append(out, NewArrow(b, u, s.Block2, s.ArrowSize, s.TickSize))
	}
	return out
}

// readable folds a text angle so the text never reads upside down.
func readable(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a > math.Pi/2+1e-9 && a <= 3*math.Pi/2+1e-9 {
		a -= math.Pi
	}
	if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// sector is a counter-clockwise angular range.
type sector struct {
	start, sweep float64
}

func (sc sector) contains(a float64) bool {
	return normAngle(a-sc.start) <= sc.sweep+1e-9
}

func (sc sector) end() float64 { return sc.start + sc.sweep }

func normAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// between returns the sector from a to b counter-clockwise if it contains
// probe, else the complementary sector from b to a.
func between(a, b, probe float64) sector {
	s := sector{start: a, sweep: normAngle(b - a)}
	if s.contains(probe) {
		return s
	}
	return sector{start: b, sweep: 2*math.Pi - s.sweep}
}

func angular2Line(d *scene.Dimension, s Settings) (Geometry, bool) {
	a0, a1 := d.Def1.XY(), d.Def2.XY()
	b0, b1 := d.Def3.XY(), d.DefPoint.XY()
	if a0.Distance(a1) < geom.Epsilon || b0.Distance(b1) < geom.Epsilon {
		return Geometry{}, false
	}
	vertex, ok := geom.LineIntersection(a0, a1, b0, b1)
	if !ok {
		return Geometry{}, false
	}
	arcPt := d.ArcPoint.XY()
	r := arcPt.Distance(vertex)
	if r < geom.Epsilon {
		return Geometry{}, false
	}
	probe := arcPt.Sub(vertex).Angle()
	la, lb := a1.Sub(a0).Angle(), b1.Sub(b0).Angle()

	// Pick the sector bounded by one ray of each line that holds the arc
	// location and spans less than a half turn.
	var sc sector
	found := false
	for _, ra := range []float64{la, la + math.Pi} {
		for _, rb := range []float64{lb, lb + math.Pi} {
			c := sector{start: ra, sweep: normAngle(rb - ra)}
			if c.sweep > math.Pi {
				c = sector{start: rb, sweep: 2*math.Pi - c.sweep}
			}
			if c.sweep > geom.Epsilon && c.contains(probe) {
				sc, found = c, true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return Geometry{}, false
	}
	g := arcGeometry(vertex, r, sc, s)
	g.ExtLines = appendRadialExt(g.ExtLines, vertex, sc.start, r, []geom.Vec2{a0, a1, b0, b1}, s)
	g.ExtLines = appendRadialExt(g.ExtLines, vertex, sc.end(), r, []geom.Vec2{a0, a1, b0, b1}, s)
	g.Value = sc.sweep
	return g, true
}

func angular3Point(d *scene.Dimension, s Settings) (Geometry, bool) {
	vertex := d.Def3.XY()
	p1, p2 := d.Def1.XY(), d.Def2.XY()
	arcPt := d.DefPoint.XY()
	if p1.Distance(vertex) < geom.Epsilon || p2.Distance(vertex) < geom.Epsilon {
		return Geometry{}, false
	}
	r := arcPt.Distance(vertex)
	if r < geom.Epsilon {
		return Geometry{}, false
	}
	sc := between(p1.Sub(vertex).Angle(), p2.Sub(vertex).Angle(), arcPt.Sub(vertex).Angle())
	if sc.sweep < geom.Epsilon {
		return Geometry{}, false
	}
	g := arcGeometry(vertex, r, sc, s)
	g.ExtLines = appendRadialExt(g.ExtLines, vertex, sc.start, r, []geom.Vec2{p1, p2}, s)
	g.ExtLines = appendRadialExt(g.ExtLines, vertex, sc.end(), r, []geom.Vec2{p1, p2}, s)
	g.Value = sc.sweep
	return g, true
}

// arcGeometry draws a dimension arc with tangent arrows and a label outside
// its midpoint.
func arcGeometry(center geom.Vec2, r float64, sc sector, s Settings) Geometry {
	var g Geometry
	g.DimLines = append(g.DimLines, geom.SampleArc(center, r, sc.start, sc.end()))

	start := center.Add(geom.V2(math.Cos(sc.start), math.Sin(sc.start)).Scale(r))
	end := center.Add(geom.V2(math.Cos(sc.end()), math.Sin(sc.end())).Scale(r))
	startDir := geom.V2(math.Sin(sc.start), -math.Cos(sc.start))
	endDir := geom.V2(-math.Sin(sc.end()), math.Cos(sc.end()))
	if !s.SuppressDim1 {
		g.Arrows = append(g.Arrows, NewArrow(start, startDir, s.Block1, s.ArrowSize, s.TickSize))
	}
	if !s.SuppressDim2 {
		g.Arrows = append(g.Arrows, NewArrow(end, endDir, s.Block2, s.ArrowSize, s.TickSize))
	}

	mid := sc.start + sc.sweep/2
	radial := geom.V2(math.Cos(mid), math.Sin(mid))
	g.Label.Position = center.Add(radial.Scale(r + s.Gap + s.TextHeight/2))
	g.Label.Rotation = readable(mid - math.Pi/2)
	return g
}

// appendRadialExt adds an extension line along the ray at angle when the
// arc lies beyond the farthest definition point on that ray.
func appendRadialExt(lines [][]geom.Vec2, center geom.Vec2, angle, r float64, pts []geom.Vec2, s Settings) [][]geom.Vec2 {
	u := geom.V2(math.Cos(angle), math.Sin(angle))
	reach := -1.0
	for _, p := range pts {
		v := p.Sub(center)
		if math.Abs(v.Cross(u)) > 1e-6*math.Max(1, v.Length()) {
			continue
		}
		if t := v.Dot(u); t > reach {
			reach = t
		}
	}
	if reach < 0 || reach+s.ExtOffset >= r {
		return lines
	}
	return append(lines, []geom.Vec2{
		center.Add(u.Scale(reach + s.ExtOffset)),
		center.Add(u.Scale(r + s.ExtExtend)),
	})
}

func diameter(d *scene.Dimension, s Settings) (Geometry, bool) {
	a, b := d.Def3.XY(), d.DefPoint.XY()
	if a.Distance(b) < geom.Epsilon {
		return Geometry{}, false
	}
	var g Geometry
	g.Value = a.Distance(b)
	g.DimLines = [][]geom.Vec2{{a, b}}
	u := a.Sub(b).Normalize(geom.V2(1, 0))
	g.Arrows = []Arrow{
		NewArrow(a, u, s.Block1, s.ArrowSize, s.TickSize),
		NewArrow(b, u.Neg(), s.Block2, s.ArrowSize, s.TickSize),
	}
	g.DimLines = append(g.DimLines, centerMark(a.Lerp(b, 0.5), s)...)
	g.Label.Position = a.Lerp(b, 0.5).Add(u.Perp().Scale(s.Gap + s.TextHeight/2))
	g.Label.Rotation = readable(u.Angle())
	return g, true
}

func radius(d *scene.Dimension, s Settings) (Geometry, bool) {
	center, chord := d.DefPoint.XY(), d.Def3.XY()
	r := center.Distance(chord)
	if r < geom.Epsilon {
		return Geometry{}, false
	}
	var g Geometry
	g.Value = r
	u := chord.Sub(center).Scale(1 / r)
	from := center
	if userText(d) {
		// The leader starts at the text when it sits on the radius line.
		tp := d.TextMid.XY()
		if math.Abs(tp.Sub(center).Cross(u)) < 1e-6*math.Max(1, r) {
			from = tp
		}
	}
	g.DimLines = [][]geom.Vec2{{from, chord}}
	g.DimLines = append(g.DimLines, centerMark(center, s)...)
	g.Arrows = []Arrow{NewArrow(chord, u, s.Block2, s.ArrowSize, s.TickSize)}
	g.Label.Position = center.Lerp(chord, 0.5).Add(u.Perp().Scale(s.Gap + s.TextHeight/2))
	g.Label.Rotation = readable(u.Angle())
	return g, true
}

// centerMark returns a cross of half size DIMCEN at c, or nothing.
func centerMark(c geom.Vec2, s Settings) [][]geom.Vec2 {
	if s.CenterMark == 0 {
		return nil
	}
	m := math.Abs(s.CenterMark)
	return [][]geom.Vec2{
		{c.Add(geom.V2(-m, 0)), c.Add(geom.V2(m, 0))},
		{c.Add(geom.V2(0, -m)), c.Add(geom.V2(0, m))},
	}
}

func ordinate(d *scene.Dimension, s Settings) (Geometry, bool) {
	origin, feature, end := d.DefPoint.XY(), d.Def1.XY(), d.Def2.XY()
	var g Geometry
	var axis geom.Vec2
	if d.OrdinateX {
		g.Value = math.Abs(feature.X - origin.X)
		axis = geom.V2(0, 1)
	} else {
		g.Value = math.Abs(feature.Y - origin.Y)
		axis = geom.V2(1, 0)
	}
	along := end.Sub(feature).Dot(axis)
	if math.Abs(along) < geom.Epsilon {
		return Geometry{}, false
	}
	sign := 1.0
	if along < 0 {
		sign = -1
	}
	dir := axis.Scale(sign)
	start := feature.Add(dir.Scale(s.ExtOffset))
	across := end.Sub(feature).Sub(axis.Scale(along))

	pts := []geom.Vec2{start}
	if across.Length() > geom.Epsilon {
		// Dog-leg: leave the feature along the axis, jog across, finish
		// along the axis at the leader end.
		jog := math.Max(2*s.ArrowSize, geom.Epsilon)
		k1 := feature.Add(dir.Scale(math.Max(along*sign-2*jog, s.ExtOffset)))
		k2 := k1.Add(across).Add(dir.Scale(jog))
		pts = append(pts, k1, k2)
	}
	pts = append(pts, end)
	g.DimLines = [][]geom.Vec2{pts}
	g.Label.Position = end.Add(dir.Scale(s.Gap + s.TextHeight/2))
	if d.OrdinateX {
		g.Label.Rotation = math.Pi / 2
	}
	return g, true
}

func arcLength(d *scene.Dimension, s Settings) (Geometry, bool) {
	center := d.Def3.XY()
	p1, p2, loc := d.Def1.XY(), d.Def2.XY(), d.DefPoint.XY()
	r0 := p1.Distance(center)
	r := loc.Distance(center)
	if r0 < geom.Epsilon || r < geom.Epsilon || p2.Distance(center) < geom.Epsilon {
		return Geometry{}, false
	}
	sc := between(p1.Sub(center).Angle(), p2.Sub(center).Angle(), loc.Sub(center).Angle())
	if sc.sweep < geom.Epsilon {
		return Geometry{}, false
	}
	g := arcGeometry(center, r, sc, s)
	if !s.SuppressExt1 {
		g.ExtLines = appendExt(g.ExtLines, p1, center.Add(geom.V2(math.Cos(sc.start), math.Sin(sc.start)).Scale(r)), s)
	}
	if !s.SuppressExt2 {
		g.ExtLines = appendExt(g.ExtLines, p2, center.Add(geom.V2(math.Cos(sc.end()), math.Sin(sc.end())).Scale(r)), s)
	}
	g.Value = r0 * sc.sweep
	return g, true
}

func joggedRadius(d *scene.Dimension, s Settings) (Geometry, bool) {
	center, chord := d.DefPoint.XY(), d.Def3.XY()
	r := center.Distance(chord)
	if r < geom.Epsilon {
		return Geometry{}, false
	}
	u := chord.Sub(center).Scale(1 / r)
	n := u.Perp()
	jp := center.Lerp(chord, 0.5)
	if !d.Def2.IsZero() {
		jp = center.Add(u.Scale(d.Def2.XY().Sub(center).Dot(u)))
	}
	h := math.Max(s.ArrowSize, r*0.05)
	oc := d.Def1.XY()
	if d.Def1.IsZero() {
		oc = jp.Sub(u.Scale(3 * h))
	}
	a := jp.Add(u.Scale(h))
	b := jp.Add(n.Scale(2 * h))
	tail := oc.Add(n.Scale(2 * h))

	var g Geometry
	g.Value = r
	g.DimLines = [][]geom.Vec2{{chord, a, b, tail}}
	g.Arrows = []Arrow{NewArrow(chord, u, s.Block2, s.ArrowSize, s.TickSize)}
	g.Label.Position = a.Lerp(chord, 0.5).Add(n.Scale(s.Gap + s.TextHeight/2))
	g.Label.Rotation = readable(u.Angle())
	return g, true
}
