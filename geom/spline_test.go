package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampedSplineInterpolatesEnds(t *testing.T) {
	s := Spline{
		Degree:  3,
		Control: []Vec3{V3(0, 0, 0), V3(1, 2, 0), V3(3, 2, 0), V3(4, 0, 0)},
	}
	pts := s.Sample()
	require.NotEmpty(t, pts)
	assert.True(t, pts[0].Near(V3(0, 0, 0), 1e-9))
	assert.True(t, pts[len(pts)-1].Near(V3(4, 0, 0), 1e-9))
	// a cubic Bezier through these control points peaks at y = 1.5
	assert.InDelta(t, 1.5, pts[len(pts)/2].Y, 1e-9)
}

func TestSplineUsesGivenKnots(t *testing.T) {
	s := Spline{
		Degree:  1,
		Control: []Vec3{V3(0, 0, 0), V3(10, 0, 0)},
		Knots:   []float64{5, 5, 7, 7},
	}
	pts := s.Sample()
	assert.True(t, pts[len(pts)/2].Near(V3(5, 0, 0), 1e-9))
}

func TestRationalWeightsPullCurve(t *testing.T) {
	ctrl := []Vec3{V3(0, 0, 0), V3(1, 1, 0), V3(2, 0, 0)}
	plain := Spline{Degree: 2, Control: ctrl}.Sample()
	heavy := Spline{Degree: 2, Control: ctrl, Weights: []float64{1, 5, 1}}.Sample()
	assert.Greater(t, heavy[len(heavy)/2].Y, plain[len(plain)/2].Y)
}

func TestSplineFallsBackToFitPoints(t *testing.T) {
	fit := []Vec3{V3(0, 0, 0), V3(1, 1, 0), V3(2, 0, 0)}
	pts := Spline{Degree: 3, Fit: fit}.Sample()
	require.Len(t, pts, 17)
	assert.Equal(t, fit[0], pts[0])
	assert.True(t, pts[8].Near(fit[1], 1e-12))
	assert.True(t, pts[16].Near(fit[2], 1e-12))
}

func TestNormalizeKnotsRejectsBadInput(t *testing.T) {
	assert.Nil(t, NormalizeKnots([]float64{1, 0}))
	assert.Nil(t, NormalizeKnots([]float64{2, 2, 2}))
	assert.Equal(t, []float64{0, 0.5, 1}, NormalizeKnots([]float64{2, 3, 4}))
}

func TestClampedKnots(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0, 0, 0.5, 1, 1, 1, 1}, ClampedKnots(5, 3))
}

func TestRationalQuadraticMidpoint(t *testing.T) {
	s := Spline{
		Degree:  2,
		Control: []Vec3{V3(0, 0, 0), V3(1, 1, 0), V3(2, 0, 0)},
		Weights: []float64{1, 5, 1},
	}
	pts := s.Sample()
	require.Len(t, pts, 25)
	// (w0*P0 + 2*w1*P1 + w2*P2) / (w0 + 2*w1 + w2) at t = 1/2
	assert.True(t, pts[12].Near(V3(1, 10.0/12, 0), 1e-12), "%v", pts[12])
}

func TestClosedFitSplineWraps(t *testing.T) {
	fit := []Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(1, 1, 0), V3(0, 1, 0)}
	closed := Spline{Fit: fit, Closed: true}.Sample()
	require.Len(t, closed, 33)
	assert.Equal(t, fit[0], closed[0])
	assert.Equal(t, fit[0], closed[32])
	assert.Equal(t, fit[1], closed[8])
	// The first span bends toward the last fit point.
	assert.InDelta(t, -0.125, closed[4].Y, 1e-12)

	open := Spline{Fit: fit}.Sample()
	assert.InDelta(t, -0.0625, open[4].Y, 1e-12)

	repeated := Spline{Fit: append(fit, fit[0]), Closed: true}.Sample()
	assert.Equal(t, closed, repeated)
}

func TestClosedControlSplineEndsOnStart(t *testing.T) {
	s := Spline{
		Degree:  2,
		Control: []Vec3{V3(0, 0, 0), V3(4, 0, 0), V3(4, 4, 0), V3(0, 4, 0)},
		Closed:  true,
	}
	pts := s.Sample()
	require.NotEmpty(t, pts)
	assert.Equal(t, pts[0], pts[len(pts)-1])
}

func TestSplineDegreeIsCapped(t *testing.T) {
	ctrl := make([]Vec3, 400)
	for i := range ctrl {
		ctrl[i] = V3(float64(i), float64(i%7), 0)
	}
	pts := Spline{Degree: 300, Control: ctrl}.Sample()
	require.Len(t, pts, 257)
	assert.True(t, pts[0].Near(ctrl[0], 1e-9))
	assert.True(t, pts[256].Near(ctrl[399], 1e-9))
}
