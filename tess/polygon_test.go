package tess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

func star(n int, r1, r2 float64) []geom.Vec2 {
	pts := make([]geom.Vec2, n)
	for i := range pts {
		r := r1
		if i%2 == 1 {
			r = r2
		}
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.V2(r*math.Cos(a), r*math.Sin(a))
	}
	return pts
}

func TestTriangulateSimplePolygons(t *testing.T) {
	tests := []struct {
		name string
		pts  []geom.Vec2
	}{
		{"triangle", []geom.Vec2{geom.V2(0, 0), geom.V2(1, 0), geom.V2(0, 1)}},
		{"square", []geom.Vec2{geom.V2(0, 0), geom.V2(10, 0), geom.V2(10, 10), geom.V2(0, 10)}},
		{"l shape", []geom.Vec2{geom.V2(0, 0), geom.V2(4, 0), geom.V2(4, 1), geom.V2(1, 1), geom.V2(1, 4), geom.V2(0, 4)}},
		{"clockwise l shape", geom.Reverse([]geom.Vec2{geom.V2(0, 0), geom.V2(4, 0), geom.V2(4, 1), geom.V2(1, 1), geom.V2(1, 4), geom.V2(0, 4)})},
		{"star", star(10, 10, 4)},
		{"hashed star", star(120, 10, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := TriangulateRing(tt.pts)
			assert.Equal(t, len(tt.pts)-2, res.TriangleCount())
			assert.InDelta(t, math.Abs(geom.SignedArea(tt.pts)), res.Area(), 1e-9)
			assert.False(t, res.Fallback)
			require.Len(t, res.Outlines, 1)
			assert.Greater(t, geom.SignedArea(res.Outlines[0]), 0.0, "outer loop is forced positive")
		})
	}
}

func TestTriangulateWithHoles(t *testing.T) {
	outer := geom.Contour{Points: []geom.Vec2{geom.V2(0, 0), geom.V2(10, 0), geom.V2(10, 10), geom.V2(0, 10)}}
	hole := geom.Contour{Points: []geom.Vec2{geom.V2(2, 2), geom.V2(8, 2), geom.V2(8, 8), geom.V2(2, 8)}, IsHole: true}

	res := Triangulate([]geom.Contour{outer, hole})
	require.False(t, res.Empty())
	assert.InDelta(t, 64, res.Area(), 1e-9)
	assert.Less(t, geom.SignedArea(res.Outlines[1]), 0.0, "holes are forced negative")

	for i := 0; i < res.TriangleCount(); i++ {
		tri := res.Triangle(i)
		c := geom.Centroid(tri[:])
		assert.False(t, geom.PointInPolygon(c, hole.Points), "triangle %d centroid %+v inside hole", i, c)
	}
}

func TestTriangulateManyHoles(t *testing.T) {
	contours := []geom.Contour{{Points: geom.SampleCircle(geom.V2(0, 0), 50)}}
	var holeArea float64
	for i := -2; i <= 2; i++ {
		ring := geom.SampleCircle(geom.V2(float64(i)*15, 0), 5)
		holeArea += math.Abs(geom.SignedArea(ring))
		contours = append(contours, geom.Contour{Points: ring, IsHole: true})
	}
	res := Triangulate(contours)
	want := math.Abs(geom.SignedArea(contours[0].Points)) - holeArea
	assert.InDelta(t, want, res.Area(), 1e-6)
	for i := 0; i < res.TriangleCount(); i++ {
		tri := res.Triangle(i)
		c := geom.Centroid(tri[:])
		for _, h := range contours[1:] {
			assert.False(t, geom.PointInPolygon(c, h.Points))
		}
	}
}

func TestTriangulateDegenerateFallsBack(t *testing.T) {
	collinear := []geom.Vec2{geom.V2(0, 0), geom.V2(1, 0), geom.V2(2, 0), geom.V2(3, 0)}
	res := TriangulateRing(collinear)
	assert.True(t, res.Fallback)
	assert.Equal(t, 2, res.TriangleCount())
	assert.InDelta(t, 0, res.Area(), 1e-12)
}

func TestTriangulateTooFewPoints(t *testing.T) {
	assert.True(t, TriangulateRing([]geom.Vec2{geom.V2(0, 0), geom.V2(1, 1)}).Empty())
	assert.True(t, Triangulate(nil).Empty())
}
