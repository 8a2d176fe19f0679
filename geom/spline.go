package geom

import "math"

// NormalizeKnots maps a non-decreasing knot vector onto [0, 1].
// It returns nil when the vector is decreasing or spans zero length.
func NormalizeKnots(knots []float64) []float64 {
	if len(knots) < 2 {
		return nil
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return nil
		}
	}
	lo, hi := knots[0], knots[len(knots)-1]
	span := hi - lo
	if span < Epsilon {
		return nil
	}
	out := make([]float64, len(knots))
	for i, k := range knots {
		out[i] = (k - lo) / span
	}
	return out
}

// ClampedKnots returns a clamped uniform knot vector on [0, 1] for n control
// points of the given degree: degree+1 zeros, uniform interior knots and
// degree+1 ones.
func ClampedKnots(n, degree int) []float64 {
	m := n + degree + 1
	knots := make([]float64, m)
	interior := n - degree
	for i := 0; i < m; i++ {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= n:
			knots[i] = 1
		default:
			knots[i] = float64(i-degree) / float64(interior)
		}
	}
	return knots
}

// MaxSplineDegree caps the degree used to evaluate a spline. Higher
// degrees are evaluated as this degree.
const MaxSplineDegree = 11

// Spline describes a B-spline or NURBS curve.
type Spline struct {
	Degree  int
	Control []Vec3
	Weights []float64 // optional; missing or short means weight 1
	Knots   []float64 // optional; synthesized when inconsistent
	Fit     []Vec3    // used when Control is empty
	Closed  bool
}

// span returns the knot span index k in [degree, n-1] with
// knots[k] <= t < knots[k+1]. The domain end maps to the last non-empty
// span.
func span(degree, n int, knots []float64, t float64) int {
	k := degree
	for k < n-1 && t >= knots[k+1] {
		k++
	}
	for k > degree && knots[k] == knots[k+1] {
		k--
	}
	return k
}

// deBoor evaluates the curve at t with the de Boor triangle on homogeneous
// points. d is scratch space of at least degree+1 entries.
func deBoor(degree int, ctrl []Vec3, weights, knots []float64, t float64, d []hpoint) Vec3 {
	k := span(degree, len(ctrl), knots, t)
	for j := 0; j <= degree; j++ {
		i := j + k - degree
		w := 1.0
		if i < len(weights) && weights[i] > 0 {
			w = weights[i]
		}
		p := ctrl[i].Scale(w)
		d[j] = hpoint{p.X, p.Y, p.Z, w}
	}
	for r := 1; r <= degree; r++ {
		for j := degree; j >= r; j-- {
			i := j + k - degree
			var a float64
			if den := knots[i+degree-r+1] - knots[i]; den > 0 {
				a = (t - knots[i]) / den
			}
			d[j] = d[j-1].lerp(d[j], a)
		}
	}
	h := d[degree]
	if h.W < Epsilon {
		return ctrl[k]
	}
	return Vec3{X: h.X / h.W, Y: h.Y / h.W, Z: h.Z / h.W}
}

// hpoint is a weighted control point.
type hpoint struct{ X, Y, Z, W float64 }

func (v hpoint) lerp(o hpoint, t float64) hpoint {
	return hpoint{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
		W: v.W + (o.W-v.W)*t,
	}
}

// Sample flattens the spline. Control points are evaluated with the de Boor
// algorithm over a normalized, clamped knot vector; with no control points
// the curve interpolates the fit points with Catmull-Rom. A closed spline
// ends on its first point. Fewer than two usable points returns them
// unchanged.
func (s Spline) Sample() []Vec3 {
	if len(s.Control) == 0 {
		if s.Closed {
			return catmullRomLoop(s.Fit, 8)
		}
		return CatmullRom(s.Fit, 8)
	}
	n := len(s.Control)
	if n < 2 {
		return append([]Vec3(nil), s.Control...)
	}
	degree := min(max(s.Degree, 1), n-1, MaxSplineDegree)
	knots := NormalizeKnots(s.Knots)
	if len(knots) != n+degree+1 || knots[n]-knots[degree] < Epsilon {
		knots = ClampedKnots(n, degree)
	}
	segments := min(max(n*8, MinArcSegments), 256)

	t0, t1 := knots[degree], knots[n]
	scratch := make([]hpoint, degree+1)
	pts := make([]Vec3, segments+1, segments+2)
	for i := 0; i <= segments; i++ {
		t := t0 + (t1-t0)*float64(i)/float64(segments)
		pts[i] = deBoor(degree, s.Control, s.Weights, knots, t, scratch)
	}
	if s.Closed && !pts[0].Near(pts[segments], Epsilon) {
		pts = append(pts, pts[0])
	}
	return pts
}

// CatmullRom interpolates a uniform Catmull-Rom curve through points with
// perSpan samples per span. The end tangents reuse the end points.
func CatmullRom(points []Vec3, perSpan int) []Vec3 {
	if len(points) < 3 {
		return append([]Vec3(nil), points...)
	}
	if perSpan < 1 {
		perSpan = 1
	}
	out := make([]Vec3, 0, (len(points)-1)*perSpan+1)
	out = append(out, points[0])
	for i := 0; i < len(points)-1; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, len(points)-1)]
		for j := 1; j <= perSpan; j++ {
			t := float64(j) / float64(perSpan)
			out = append(out, catmullRomPoint(p0, p1, p2, p3, t))
		}
	}
	return out
}

// catmullRomLoop interpolates a closed Catmull-Rom curve; neighbours wrap
// around and the result returns to the first point.
func catmullRomLoop(points []Vec3, perSpan int) []Vec3 {
	if n := len(points); n > 1 && points[0].Near(points[n-1], Epsilon) {
		points = points[:n-1]
	}
	n := len(points)
	if n < 3 {
		return CatmullRom(points, perSpan)
	}
	perSpan = max(perSpan, 1)
	out := make([]Vec3, 0, n*perSpan+1)
	out = append(out, points[0])
	for i := range n {
		p0 := points[(i+n-1)%n]
		p1 := points[i]
		p2 := points[(i+1)%n]
		p3 := points[(i+2)%n]
		for j := 1; j < perSpan; j++ {
			out = append(out, catmullRomPoint(p0, p1, p2, p3, float64(j)/float64(perSpan)))
		}
		out = append(out, p2)
	}
	return out
}

func catmullRomPoint(p0, p1, p2, p3 Vec3, t float64) Vec3 {
	t2 := t * t
	t3 := t2 * t
	f := func(a, b, c, d float64) float64 {
		return 0.5 * ((2 * b) + (-a+c)*t + (2*a-5*b+4*c-d)*t2 + (-a+3*b-3*c+d)*t3)
	}
	return Vec3{
		X: f(p0.X, p1.X, p2.X, p3.X),
		Y: f(p0.Y, p1.Y, p2.Y, p3.Y),
		Z: f(p0.Z, p1.Z, p2.Z, p3.Z),
	}
}

// Helix samples a helix around the z axis starting at angle start with the
// given radius, turn count and per-turn height. ccw selects the twist.
func Helix(radius, start, turns, turnHeight float64, ccw bool) []Vec3 {
	if radius < Epsilon || turns <= 0 || math.IsNaN(turns) {
		return nil
	}
	n := int(math.Ceil(turns * MaxArcSegments))
	if n > 64*MaxArcSegments {
		n = 64 * MaxArcSegments
	}
	dir := 1.0
	if !ccw {
		dir = -1
	}
	pts := make([]Vec3, n+1)
	for i := 0; i <= n; i++ {
		f := float64(i) / float64(n)
		a := start + dir*f*turns*2*math.Pi
		s, c := math.Sincos(a)
		pts[i] = Vec3{X: radius * c, Y: radius * s, Z: f * turns * turnHeight}
	}
	return pts
}
