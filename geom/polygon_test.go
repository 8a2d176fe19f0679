package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContourOrientation(t *testing.T) {
	square := []Vec2{V2(0, 0), V2(10, 0), V2(10, 10), V2(0, 10)}

	outer := NewContour(Reverse(square), false)
	assert.InDelta(t, 100, outer.Area(), 1e-9)
	assert.Equal(t, outer.Points[0], outer.Points[len(outer.Points)-1])

	hole := NewContour(square, true)
	assert.InDelta(t, -100, hole.Area(), 1e-9)
}

func TestPointInPolygon(t *testing.T) {
	ring := []Vec2{V2(0, 0), V2(4, 0), V2(4, 1), V2(1, 1), V2(1, 4), V2(0, 4)}
	assert.True(t, PointInPolygon(V2(0.5, 3), ring))
	assert.True(t, PointInPolygon(V2(3, 0.5), ring))
	assert.False(t, PointInPolygon(V2(3, 3), ring))
	assert.False(t, PointInPolygon(V2(-1, 0.5), ring))
}

func TestDedupe(t *testing.T) {
	pts := []Vec2{V2(0, 0), V2(0, 1e-12), V2(1, 0), V2(1, 0), V2(2, 0)}
	assert.Equal(t, []Vec2{V2(0, 0), V2(1, 0), V2(2, 0)}, Dedupe(pts, 1e-9))
}

func TestLineIntersection(t *testing.T) {
	p, ok := LineIntersection(V2(0, 0), V2(1, 1), V2(0, 2), V2(2, 0))
	assert.True(t, ok)
	assert.True(t, p.Near(V2(1, 1), 1e-12))

	_, ok = LineIntersection(V2(0, 0), V2(1, 0), V2(0, 1), V2(1, 1))
	assert.False(t, ok)
}
