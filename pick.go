package dxfrender

import (
	"math"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

// Hit is a pickable under a screen point.
type Hit struct {
	Pickable
	Distance float64 // screen units from the primitive, 0 inside fills and text
}

// Pick returns the pickables within tolerance screen units of p, nearest
// first. Among equal distances, primitives drawn later come first.
func Pick(f *Frame, p geom.Vec2, tolerance float64) []Hit {
	if f == nil {
		return nil
	}
	tolerance = math.Max(tolerance, 0)
	var hits []Hit
	for i := len(f.Pickables) - 1; i >= 0; i-- {
		pk := f.Pickables[i]
		if !pk.ScreenBounds.Inflate(tolerance).Contains(p) {
			continue
		}
		d, ok := distance(f, pk, p)
		if ok && d <= tolerance {
			hits = append(hits, Hit{Pickable: pk, Distance: d})
		}
	}
	// Insertion sort keeps the later-drawn order among ties.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].Distance < hits[j-1].Distance; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	return hits
}

func distance(f *Frame, pk Pickable, p geom.Vec2) (float64, bool) {
	switch pk.Type {
	case PrimitivePolyline:
		if pk.Index >= len(f.Polylines) {
			return 0, false
		}
		pl := f.Polylines[pk.Index]
		d := pathDistance(pl.Points, pl.Closed, p)
		var half float64
		for _, w := range pl.Widths {
			half = max(half, w[0]/2, w[1]/2)
		}
		return math.Max(d-half, 0), true
	case PrimitiveFill:
		if pk.Index >= len(f.Fills) {
			return 0, false
		}
		fl := f.Fills[pk.Index]
		if fl.Mesh != nil && len(fl.Mesh.Indices) >= 3 && len(fl.Contours) == 0 {
			for t := 0; t < fl.Mesh.TriangleCount(); t++ {
				tri := fl.Mesh.Triangle(t)
				if geom.PointInPolygon(p, tri[:]) {
					return 0, true
				}
			}
			return math.Inf(1), true
		}
		return fillDistance(fl.Contours, p), true
	case PrimitivePoint:
		if pk.Index >= len(f.Points) {
			return 0, false
		}
		return f.Points[pk.Index].Position.Distance(p), true
	case PrimitiveText:
		// Screen bounds already enclose the block.
		return 0, true
	}
	return 0, false
}

func pathDistance(pts []geom.Vec2, closed bool, p geom.Vec2) float64 {
	if len(pts) == 1 {
		return pts[0].Distance(p)
	}
	d := math.Inf(1)
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	for i := 0; i < n; i++ {
		d = math.Min(d, segmentDistance(pts[i], pts[(i+1)%len(pts)], p))
	}
	return d
}

func segmentDistance(a, b, p geom.Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 < geom.Epsilon {
		return a.Distance(p)
	}
	t := min(max(p.Sub(a).Dot(ab)/l2, 0), 1)
	return a.Add(ab.Scale(t)).Distance(p)
}

// fillDistance is zero inside the region (inside the outer contour and
// outside every hole), else the distance to the nearest contour edge.
func fillDistance(contours []geom.Contour, p geom.Vec2) float64 {
	if len(contours) == 0 {
		return math.Inf(1)
	}
	inside := geom.PointInPolygon(p, contours[0].Points)
	for _, h := range contours[1:] {
		if geom.PointInPolygon(p, h.Points) {
			inside = false
		}
	}
	if inside {
		return 0
	}
	d := math.Inf(1)
	for _, c := range contours {
		d = math.Min(d, pathDistance(c.Points, true, p))
	}
	return d
}
