package tess

import (
	"math"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

// dedupeEpsilon merges adjacent contour points closer than this distance.
const dedupeEpsilon = 1e-9

// Result is a triangulated fill.
type Result struct {
	// Vertices holds every contour vertex, outer loop first.
	Vertices []geom.Vec2
	// Indices holds vertex index triples, one per triangle.
	Indices []int
	// Outlines holds the closed, oriented loops for stroking.
	Outlines [][]geom.Vec2
	// Fallback is set when the fan fallback produced the triangles.
	Fallback bool
}

// TriangleCount returns the number of triangles.
func (r Result) TriangleCount() int {
	return len(r.Indices) / 3
}

// Triangle returns the corners of triangle i.
func (r Result) Triangle(i int) [3]geom.Vec2 {
	return [3]geom.Vec2{
		r.Vertices[r.Indices[3*i]],
		r.Vertices[r.Indices[3*i+1]],
		r.Vertices[r.Indices[3*i+2]],
	}
}

// Area returns the total unsigned area covered by the triangles.
func (r Result) Area() float64 {
	var sum float64
	for i := 0; i < r.TriangleCount(); i++ {
		t := r.Triangle(i)
		sum += math.Abs(t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))) / 2
	}
	return sum
}

// Empty reports whether the result has no triangles.
func (r Result) Empty() bool {
	return len(r.Indices) == 0
}

// Triangulate triangulates a set of closed contours. The first usable loop is
// the outer boundary and is forced to positive area; every later loop is a
// hole and forced negative, matching the hole bridging in Earcut. Loops with
// fewer than three distinct points are dropped. If ear clipping yields no
// triangles, the first loop is fan-triangulated from its first vertex so a
// result is always produced for a usable outer loop.
func Triangulate(contours []geom.Contour) Result {
	var (
		res    Result
		coords []float64
		holes  []int
	)
	for _, c := range contours {
		ring := geom.Open(geom.Dedupe(c.Points, dedupeEpsilon))
		if len(ring) < 3 {
			continue
		}
		a := geom.SignedArea(ring)
		outer := len(res.Outlines) == 0
		if (outer && a < 0) || (!outer && a > 0) {
			ring = geom.Reverse(ring)
		}
		if !outer {
			holes = append(holes, len(res.Vertices))
		}
		for _, p := range ring {
			coords = append(coords, p.X, p.Y)
		}
		res.Vertices = append(res.Vertices, ring...)
		res.Outlines = append(res.Outlines, geom.Close(ring))
	}
	if len(res.Outlines) == 0 {
		return Result{}
	}

	res.Indices = Earcut(coords, holes)
	if len(res.Indices) == 0 {
		res.Indices = fan(len(geom.Open(res.Outlines[0])))
		res.Fallback = true
	}
	return res
}

// TriangulateRing triangulates a single closed ring with no holes.
func TriangulateRing(pts []geom.Vec2) Result {
	return Triangulate([]geom.Contour{{Points: pts}})
}

// fan returns the closing fan over the first n vertices.
func fan(n int) []int {
	if n < 3 {
		return nil
	}
	idx := make([]int, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		idx = append(idx, 0, i, i+1)
	}
	return idx
}
