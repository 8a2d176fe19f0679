package geom

import "math"

// Contour is a closed ring of points. The first and last points coincide.
// Outer contours have positive signed area, holes negative.
type Contour struct {
	Points []Vec2
	IsHole bool
}

// NewContour closes pts and orients it according to isHole.
func NewContour(pts []Vec2, isHole bool) Contour {
	ring := Close(pts)
	a := SignedArea(ring)
	if (isHole && a > 0) || (!isHole && a < 0) {
		ring = Reverse(ring)
	}
	return Contour{Points: ring, IsHole: isHole}
}

// Area returns the signed area of the contour.
func (c Contour) Area() float64 {
	return SignedArea(c.Points)
}

// Bounds returns the bounds of the contour points.
func (c Contour) Bounds() Bounds {
	return BoundsOf(c.Points...)
}

// SignedArea returns the shoelace area of the ring; counter-clockwise rings
// are positive. The ring may or may not repeat its first point.
func SignedArea(pts []Vec2) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

// PointInPolygon reports whether p is inside the ring using the even-odd
// crossing rule.
func PointInPolygon(p Vec2, ring []Vec2) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Dedupe drops points closer than eps to their predecessor.
func Dedupe(pts []Vec2, eps float64) []Vec2 {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Vec2, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if p.Near(out[len(out)-1], eps) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Close returns pts with the first point appended when the ring is open.
func Close(pts []Vec2) []Vec2 {
	if len(pts) == 0 {
		return nil
	}
	out := append([]Vec2(nil), pts...)
	if !out[0].Near(out[len(out)-1], Epsilon) {
		out = append(out, out[0])
	} else {
		out[len(out)-1] = out[0]
	}
	return out
}

// Open returns pts without a trailing point that repeats the first.
func Open(pts []Vec2) []Vec2 {
	if len(pts) > 1 && pts[0].Near(pts[len(pts)-1], Epsilon) {
		return pts[:len(pts)-1]
	}
	return pts
}

// Reverse returns a reversed copy of pts.
func Reverse(pts []Vec2) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// Centroid returns the mean of pts.
func Centroid(pts []Vec2) Vec2 {
	if len(pts) == 0 {
		return Vec2{}
	}
	var s Vec2
	for _, p := range pts {
		s = s.Add(p)
	}
	return s.Scale(1 / float64(len(pts)))
}

// LineIntersection returns the intersection of the infinite lines through
// (a0, a1) and (b0, b1). ok is false when they are parallel.
func LineIntersection(a0, a1, b0, b1 Vec2) (p Vec2, ok bool) {
	d1 := a1.Sub(a0)
	d2 := b1.Sub(b0)
	den := d1.Cross(d2)
	if math.Abs(den) < Epsilon {
		return Vec2{}, false
	}
	t := b0.Sub(a0).Cross(d2) / den
	return a0.Add(d1.Scale(t)), true
}

// ToVec2 drops the z component of every point.
func ToVec2(pts []Vec3) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = p.XY()
	}
	return out
}
