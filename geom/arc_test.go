package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcSegments(t *testing.T) {
	tests := []struct {
		sweep float64
		want  int
	}{
		{0, MinArcSegments},
		{math.Pi / 8, MinArcSegments},
		{math.Pi, 32},
		{2 * math.Pi, MaxArcSegments},
		{10 * math.Pi, MaxArcSegments},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ArcSegments(tt.sweep), "sweep %v", tt.sweep)
	}
}

func TestFullCircleIsClosed(t *testing.T) {
	pts := SampleArc(V2(5, 5), 3, 0, 2*math.Pi)
	require.Len(t, pts, MaxArcSegments+1)
	assert.True(t, pts[0].Near(pts[len(pts)-1], 1e-9))

	circle := SampleCircle(V2(0, 0), 1)
	assert.Equal(t, circle[0], circle[len(circle)-1])
	assert.InDelta(t, math.Pi, SignedArea(circle), 0.01)
}

func TestArcDegenerateRadius(t *testing.T) {
	assert.Equal(t, []Vec2{V2(1, 2)}, SampleArc(V2(1, 2), 0, 0, math.Pi))
	assert.Equal(t, []Vec2{V2(1, 2)}, SampleEllipse(V2(1, 2), Vec2{}, 0.5, 0, math.Pi))
}

func TestArcSweepWrapsCounterClockwise(t *testing.T) {
	pts := SampleArc(Vec2{}, 1, 3*math.Pi/2, math.Pi/2)
	first, last := pts[0], pts[len(pts)-1]
	assert.True(t, first.Near(V2(0, -1), 1e-9))
	assert.True(t, last.Near(V2(0, 1), 1e-9))
	// passes through +x, not -x
	mid := pts[len(pts)/2]
	assert.Greater(t, mid.X, 0.9)
}

func TestBulgeArc(t *testing.T) {
	t.Run("semicircle counter-clockwise", func(t *testing.T) {
		pts := BulgeArc(V2(0, 0), V2(2, 0), 1)
		assert.Equal(t, V2(0, 0), pts[0])
		assert.Equal(t, V2(2, 0), pts[len(pts)-1])
		mid := pts[len(pts)/2]
		assert.InDelta(t, 1, mid.X, 1e-9)
		assert.InDelta(t, -1, mid.Y, 1e-9)
	})
	t.Run("negative bulge flips side", func(t *testing.T) {
		pts := BulgeArc(V2(0, 0), V2(2, 0), -1)
		mid := pts[len(pts)/2]
		assert.InDelta(t, 1, mid.Y, 1e-9)
	})
	t.Run("quarter arc radius", func(t *testing.T) {
		b := math.Tan(math.Pi / 8)
		c, r, ok := BulgeCenter(V2(1, 0), V2(0, 1), b)
		require.True(t, ok)
		assert.InDelta(t, 1, r, 1e-9)
		assert.True(t, c.Near(Vec2{}, 1e-9))
	})
	t.Run("zero bulge", func(t *testing.T) {
		assert.Equal(t, []Vec2{V2(0, 0), V2(1, 1)}, BulgeArc(V2(0, 0), V2(1, 1), 0))
	})
}

func TestSampleBulgePolylineClosed(t *testing.T) {
	verts := []Vec2{V2(0, 0), V2(10, 0), V2(10, 10), V2(0, 10)}
	pts := SampleBulgePolyline(verts, nil, true)
	require.Len(t, pts, 5)
	assert.Equal(t, pts[0], pts[4])
	assert.InDelta(t, 100, SignedArea(pts), 1e-9)
}

func TestEllipseFull(t *testing.T) {
	pts := SampleEllipse(V2(0, 0), V2(2, 0), 0.5, 0, 2*math.Pi)
	assert.Equal(t, pts[0], pts[len(pts)-1])
	assert.InDelta(t, math.Pi*2*1, SignedArea(pts), 0.02)
}
