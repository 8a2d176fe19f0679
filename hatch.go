package dxfrender

import (
	"math"
	"sort"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
)

// hatchEpsilon merges boundary points closer than this.
const hatchEpsilon = 1e-7

// Region is an outer boundary with the holes it encloses.
type Region struct {
	Outer geom.Contour
	Holes []geom.Contour
}

// Contours returns the outer contour followed by the holes.
func (r Region) Contours() []geom.Contour {
	out := make([]geom.Contour, 0, 1+len(r.Holes))
	out = append(out, r.Outer)
	return append(out, r.Holes...)
}

// HatchBoundary is the reconstructed boundary of a hatch.
type HatchBoundary struct {
	Regions []Region
	// Unassigned holds holes that no outer loop contains.
	Unassigned []geom.Contour
}

// ReconstructHatch turns the loops of h into oriented contours in the
// hatch's own coordinates. Each loop is sampled and deduplicated; loops
// with fewer than three distinct points or no area are dropped. A loop
// nested inside an odd number of larger loops is a hole unless it is
// flagged external. A top-level loop wound against the largest loop is a
// hole as well. Each hole belongs to the smallest outer loop containing
// its first point; holes no outer loop contains are returned unassigned.
func ReconstructHatch(h *scene.Hatch) HatchBoundary {
	type loop struct {
		pts      []geom.Vec2
		area     float64
		ccw      bool
		external bool
	}
	var loops []loop
	for _, l := range h.Loops {
		pts := geom.Dedupe(sampleLoop(l), hatchEpsilon)
		pts = geom.Dedupe(geom.Open(pts), hatchEpsilon)
		if len(pts) < 3 {
			continue
		}
		sa := geom.SignedArea(geom.Close(pts))
		a := math.Abs(sa)
		if a < geom.Epsilon {
			continue
		}
		loops = append(loops, loop{pts: pts, area: a, ccw: sa > 0, external: l.External})
	}
	// Larger loops first so containers precede their contents.
	sort.SliceStable(loops, func(i, j int) bool { return loops[i].area > loops[j].area })

	rings := make([][]geom.Vec2, len(loops))
	for i := range loops {
		rings[i] = geom.Close(loops[i].pts)
	}
	hole := make([]bool, len(loops))
	for i := range loops {
		depth := 0
		for j := range i {
			if loops[j].area > loops[i].area && geom.PointInPolygon(loops[i].pts[0], rings[j]) {
				depth++
			}
		}
		switch {
		case loops[i].external:
		case depth > 0:
			hole[i] = depth%2 == 1
		default:
			hole[i] = loops[i].ccw != loops[0].ccw
		}
	}

	var b HatchBoundary
	outerIdx := make(map[int]int)
	for i := range loops {
		if !hole[i] {
			outerIdx[i] = len(b.Regions)
			b.Regions = append(b.Regions, Region{Outer: geom.NewContour(loops[i].pts, false)})
		}
	}
	for i := range loops {
		if !hole[i] {
			continue
		}
		c := geom.NewContour(loops[i].pts, true)
		owner := -1
		for j := range loops {
			if hole[j] || j == i || loops[j].area <= loops[i].area {
				continue
			}
			if !geom.PointInPolygon(loops[i].pts[0], rings[j]) {
				continue
			}
			if owner < 0 || loops[j].area < loops[owner].area {
				owner = j
			}
		}
		if owner < 0 {
			b.Unassigned = append(b.Unassigned, c)
			continue
		}
		r := &b.Regions[outerIdx[owner]]
		r.Holes = append(r.Holes, c)
	}
	return b
}

func sampleLoop(l scene.HatchLoop) []geom.Vec2 {
	if l.Polyline || len(l.Edges) == 0 {
		return geom.SampleBulgePolyline(l.Vertices, l.Bulges, true)
	}
	var out []geom.Vec2
	for _, e := range l.Edges {
		pts := sampleEdge(e)
		if len(pts) == 0 {
			continue
		}
		if n := len(out); n > 0 {
			last := out[n-1]
			// Edges are sometimes stored end to start.
			if !pts[0].Near(last, hatchEpsilon) && pts[len(pts)-1].Near(last, hatchEpsilon) {
				pts = geom.Reverse(pts)
			}
			if pts[0].Near(last, hatchEpsilon) {
				pts = pts[1:]
			}
		}
		out = append(out, pts...)
	}
	return out
}

func sampleEdge(e scene.HatchEdge) []geom.Vec2 {
	switch e := e.(type) {
	case scene.LineEdge:
		return []geom.Vec2{e.Start, e.End}
	case *scene.LineEdge:
		return []geom.Vec2{e.Start, e.End}
	case scene.ArcEdge:
		return sampleArcEdge(e)
	case *scene.ArcEdge:
		return sampleArcEdge(*e)
	case scene.EllipseEdge:
		return sampleEllipseEdge(e)
	case *scene.EllipseEdge:
		return sampleEllipseEdge(*e)
	case scene.SplineEdge:
		return sampleSplineEdge(e)
	case *scene.SplineEdge:
		return sampleSplineEdge(*e)
	}
	return nil
}

// clockwise samples a clockwise sweep from start to end given in mirrored
// angles, as stored for clockwise boundary edges.
func clockwise(sample func(start, end float64) []geom.Vec2, start, end float64) []geom.Vec2 {
	return geom.Reverse(sample(-end, -start))
}

func sampleArcEdge(e scene.ArcEdge) []geom.Vec2 {
	if e.Radius < geom.Epsilon {
		return nil
	}
	s, t := e.StartAngle*math.Pi/180, e.EndAngle*math.Pi/180
	arc := func(a, b float64) []geom.Vec2 {
		if math.Abs(b-a) >= 2*math.Pi-geom.Epsilon {
			return geom.SampleCircle(e.Center, e.Radius)
		}
		return geom.SampleArc(e.Center, e.Radius, a, b)
	}
	if e.CCW {
		return arc(s, t)
	}
	return clockwise(arc, s, t)
}

func sampleEllipseEdge(e scene.EllipseEdge) []geom.Vec2 {
	if e.MajorAxis.Length() < geom.Epsilon {
		return nil
	}
	ratio := e.Ratio
	if ratio <= 0 {
		ratio = 1
	}
	s, t := e.StartAngle*math.Pi/180, e.EndAngle*math.Pi/180
	ell := func(a, b float64) []geom.Vec2 {
		return geom.SampleEllipse(e.Center, e.MajorAxis, ratio, a, b)
	}
	if e.CCW {
		return ell(s, t)
	}
	return clockwise(ell, s, t)
}

func sampleSplineEdge(e scene.SplineEdge) []geom.Vec2 {
	sp := geom.Spline{
		Degree:  e.Degree,
		Control: vec3s(e.Control),
		Weights: e.Weights,
		Knots:   e.Knots,
		Fit:     vec3s(e.Fit),
	}
	return geom.ToVec2(sp.Sample())
}

func vec3s(pts []geom.Vec2) []geom.Vec3 {
	if pts == nil {
		return nil
	}
	out := make([]geom.Vec3, len(pts))
	for i, p := range pts {
		out[i] = p.Vec3()
	}
	return out
}
