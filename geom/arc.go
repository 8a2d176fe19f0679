package geom

import "math"

const (
	// MinArcSegments is the floor on segments used for any arc sweep.
	MinArcSegments = 16
	// MaxArcSegments is the segment count used for a full revolution.
	MaxArcSegments = 64
)

// ArcSegments returns the number of segments used to flatten an arc of the
// given sweep (radians). The count is proportional to the sweep, clamped to
// [MinArcSegments, MaxArcSegments].
func ArcSegments(sweep float64) int {
	n := int(math.Ceil(MaxArcSegments * math.Abs(sweep) / (2 * math.Pi)))
	if n < MinArcSegments {
		return MinArcSegments
	}
	if n > MaxArcSegments {
		return MaxArcSegments
	}
	return n
}

// NormalizeSweep returns the counter-clockwise sweep from start to end in
// (0, 2π]. Equal angles denote a full revolution.
func NormalizeSweep(start, end float64) float64 {
	sweep := math.Mod(end-start, 2*math.Pi)
	if sweep <= Epsilon {
		sweep += 2 * math.Pi
	}
	return sweep
}

// SampleArc flattens a counter-clockwise circular arc from start to end
// (radians). A radius below Epsilon yields the single center point.
func SampleArc(center Vec2, radius, start, end float64) []Vec2 {
	if radius < Epsilon || math.IsNaN(radius) {
		return []Vec2{center}
	}
	return sweepArc(center, radius, start, NormalizeSweep(start, end))
}

// SampleCircle flattens a full circle. The first and last points coincide
// exactly.
func SampleCircle(center Vec2, radius float64) []Vec2 {
	if radius < Epsilon || math.IsNaN(radius) {
		return []Vec2{center}
	}
	pts := sweepArc(center, radius, 0, 2*math.Pi)
	pts[len(pts)-1] = pts[0]
	return pts
}

// sweepArc samples from start over a signed sweep.
func sweepArc(center Vec2, radius, start, sweep float64) []Vec2 {
	n := ArcSegments(sweep)
	pts := make([]Vec2, n+1)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		s, c := math.Sincos(a)
		pts[i] = Vec2{X: center.X + radius*c, Y: center.Y + radius*s}
	}
	return pts
}

// SampleEllipse flattens an elliptical arc. major is the vector from the
// center to the end of the major axis, ratio the minor/major length ratio,
// and start/end the eccentric-anomaly parameters in radians. A degenerate
// major axis yields the single center point.
func SampleEllipse(center, major Vec2, ratio, start, end float64) []Vec2 {
	if major.Length() < Epsilon {
		return []Vec2{center}
	}
	minor := major.Perp().Scale(ratio)
	sweep := NormalizeSweep(start, end)
	n := ArcSegments(sweep)
	pts := make([]Vec2, n+1)
	for i := 0; i <= n; i++ {
		t := start + sweep*float64(i)/float64(n)
		s, c := math.Sincos(t)
		pts[i] = center.Add(major.Scale(c)).Add(minor.Scale(s))
	}
	if math.Abs(sweep-2*math.Pi) < Epsilon {
		pts[n] = pts[0]
	}
	return pts
}

// BulgeAngle returns the included angle encoded by a bulge value.
func BulgeAngle(bulge float64) float64 {
	return 4 * math.Atan(bulge)
}

// BulgeCenter returns the arc center and radius for a bulge segment.
// ok is false when the segment is straight or degenerate.
func BulgeCenter(p0, p1 Vec2, bulge float64) (center Vec2, radius float64, ok bool) {
	chord := p1.Sub(p0)
	c := chord.Length()
	if math.Abs(bulge) < Epsilon || c < Epsilon {
		return Vec2{}, 0, false
	}
	theta := BulgeAngle(bulge)
	half := theta / 2
	radius = c / (2 * math.Abs(math.Sin(half)))
	h := (c / 2) / math.Tan(half)
	mid := p0.Lerp(p1, 0.5)
	u := chord.Scale(1 / c)
	return mid.Add(u.Perp().Scale(h)), radius, true
}

// BulgeArc flattens the segment from p0 to p1 with the given bulge. Both
// endpoints are included. A zero bulge yields the straight segment.
func BulgeArc(p0, p1 Vec2, bulge float64) []Vec2 {
	center, radius, ok := BulgeCenter(p0, p1, bulge)
	if !ok {
		return []Vec2{p0, p1}
	}
	start := p0.Sub(center).Angle()
	pts := sweepArc(center, radius, start, BulgeAngle(bulge))
	pts[0] = p0
	pts[len(pts)-1] = p1
	return pts
}

// SampleBulgePolyline flattens a polyline whose vertex i carries the bulge
// of the segment from vertex i to vertex i+1. Missing bulges count as zero.
// When closed, the segment from the last vertex back to the first is added
// and the result ends on the first vertex.
func SampleBulgePolyline(vertices []Vec2, bulges []float64, closed bool) []Vec2 {
	if len(vertices) == 0 {
		return nil
	}
	out := []Vec2{vertices[0]}
	segs := len(vertices) - 1
	if closed {
		segs = len(vertices)
	}
	for i := 0; i < segs; i++ {
		p0 := vertices[i]
		p1 := vertices[(i+1)%len(vertices)]
		var b float64
		if i < len(bulges) {
			b = bulges[i]
		}
		if math.Abs(b) < Epsilon {
			out = append(out, p1)
			continue
		}
		arc := BulgeArc(p0, p1, b)
		out = append(out, arc[1:]...)
	}
	return out
}
