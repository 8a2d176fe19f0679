package tess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

func TestSweepBandOpen(t *testing.T) {
	tests := []struct {
		name string
		path []geom.Vec2
		want float64
	}{
		{"straight", []geom.Vec2{geom.V2(0, 0), geom.V2(10, 0)}, 20},
		{"right angle", []geom.Vec2{geom.V2(0, 0), geom.V2(10, 0), geom.V2(10, 10)}, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contours := SweepBand(tt.path, 1, false)
			require.Len(t, contours, 1)
			assert.InDelta(t, tt.want, contours[0].Area(), 1e-9)
			assert.InDelta(t, tt.want, TriangulateBand(tt.path, 1, false).Area(), 1e-9)
		})
	}
}

func TestSweepBandClosed(t *testing.T) {
	square := []geom.Vec2{geom.V2(0, 0), geom.V2(10, 0), geom.V2(10, 10), geom.V2(0, 10)}
	contours := SweepBand(square, 1, true)
	require.Len(t, contours, 2)
	assert.InDelta(t, 144, contours[0].Area(), 1e-9)
	assert.InDelta(t, -64, contours[1].Area(), 1e-9)
	assert.InDelta(t, 80, TriangulateBand(square, 1, true).Area(), 1e-9)
}

func TestMiterIsClamped(t *testing.T) {
	path := []geom.Vec2{geom.V2(0, 0), geom.V2(10, 0), geom.V2(0, 0.1)}
	off := OffsetPath(path, 1, false)
	require.Len(t, off, 3)
	assert.LessOrEqual(t, off[1].Distance(path[1]), MiterLimit+1e-9)
}

func TestSweepBandDegenerate(t *testing.T) {
	assert.Nil(t, SweepBand([]geom.Vec2{geom.V2(1, 1)}, 1, false))
	assert.Nil(t, SweepBand([]geom.Vec2{geom.V2(0, 0), geom.V2(1, 0)}, 0, false))
}
