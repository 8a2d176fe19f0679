package tess

import (
	"math"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

// MiterLimit caps a miter offset at this multiple of the offset distance.
const MiterLimit = 4.0

// OffsetPath offsets path to its left by distance (negative offsets to the
// right). Interior vertices use a miter join: the direction is the average
// of the adjacent segment normals and the length is distance divided by the
// cosine of the half turn angle, clamped to MiterLimit times distance.
func OffsetPath(path []geom.Vec2, distance float64, closed bool) []geom.Vec2 {
	pts := geom.Dedupe(path, dedupeEpsilon)
	if closed {
		pts = geom.Open(pts)
	}
	n := len(pts)
	if n < 2 {
		return nil
	}
	normal := func(a, b geom.Vec2) geom.Vec2 {
		return b.Sub(a).Normalize(geom.Vec2{X: 1}).Perp()
	}
	out := make([]geom.Vec2, n)
	for i := 0; i < n; i++ {
		var prev, next geom.Vec2
		hasPrev := closed || i > 0
		hasNext := closed || i < n-1
		if hasPrev {
			prev = normal(pts[(i-1+n)%n], pts[i])
		}
		if hasNext {
			next = normal(pts[i], pts[(i+1)%n])
		}
		switch {
		case !hasPrev:
			out[i] = pts[i].Add(next.Scale(distance))
		case !hasNext:
			out[i] = pts[i].Add(prev.Scale(distance))
		default:
			out[i] = pts[i].Add(miter(prev, next, distance))
		}
	}
	return out
}

func miter(n1, n2 geom.Vec2, d float64) geom.Vec2 {
	m := n1.Add(n2).Normalize(n1)
	cosHalf := m.Dot(n1)
	if cosHalf < geom.Epsilon {
		return n1.Scale(d)
	}
	l := d / cosHalf
	limit := MiterLimit * math.Abs(d)
	if math.Abs(l) > limit {
		l = math.Copysign(limit, l)
	}
	return m.Scale(l)
}

// SweepBand returns the outline of a band of the given half width swept
// along path. An open path yields one closed outer contour; a closed path
// yields an outer contour and an inner hole.
func SweepBand(path []geom.Vec2, halfWidth float64, closed bool) []geom.Contour {
	if halfWidth <= 0 {
		return nil
	}
	left := OffsetPath(path, halfWidth, closed)
	right := OffsetPath(path, -halfWidth, closed)
	if len(left) < 2 || len(right) < 2 {
		return nil
	}
	if !closed {
		ring := append(append([]geom.Vec2(nil), left...), geom.Reverse(right)...)
		return []geom.Contour{geom.NewContour(ring, false)}
	}
	outer, inner := left, right
	if math.Abs(geom.SignedArea(right)) > math.Abs(geom.SignedArea(left)) {
		outer, inner = right, left
	}
	return []geom.Contour{geom.NewContour(outer, false), geom.NewContour(inner, true)}
}

// TriangulateBand sweeps and triangulates a band in one step.
func TriangulateBand(path []geom.Vec2, halfWidth float64, closed bool) Result {
	return Triangulate(SweepBand(path, halfWidth, closed))
}
