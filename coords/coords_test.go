package coords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
)

func TestNewBasisIsOrthonormal(t *testing.T) {
	axes := []geom.Vec3{
		{}, geom.XAxis, geom.YAxis, geom.ZAxis, geom.ZAxis.Neg(),
		{X: 3, Y: 4}, {X: 1, Y: 1, Z: 1}, {X: -2, Y: 0.5, Z: 7},
		{X: 1e-12}, {X: 0, Y: 0, Z: -5}, {X: 1, Y: 1e-10},
	}
	for i, x := range axes {
		for j, y := range axes {
			b := NewBasis(geom.V3(1, 2, 3), x, y)
			assert.True(t, b.IsOrthonormal(1e-6), "x=%d y=%d: %+v", i, j, b)
		}
	}
}

func TestNewBasisKeepsXDirection(t *testing.T) {
	b := NewBasis(geom.Vec3{}, geom.V3(0, 2, 0), geom.V3(-1, 1, 0))
	assert.True(t, b.X.Near(geom.YAxis, 1e-12))
	assert.True(t, b.Y.Near(geom.XAxis.Neg(), 1e-12))
	assert.True(t, b.Z.Near(geom.ZAxis, 1e-12))
}

func TestFromDirectionIsOrthonormal(t *testing.T) {
	dirs := []geom.Vec3{
		geom.ZAxis, geom.ZAxis.Neg(), geom.XAxis, {X: 1, Y: -1, Z: 1}, {}, {X: 1e-3, Z: 1},
	}
	for _, d := range dirs {
		for _, twist := range []float64{0, 30, 90, -135} {
			b := FromDirection(geom.Vec3{}, d, twist)
			assert.True(t, b.IsOrthonormal(1e-6), "dir=%v twist=%v", d, twist)
		}
	}

	top := FromDirection(geom.Vec3{}, geom.ZAxis, 0)
	assert.True(t, top.IsWorld())

	twisted := FromDirection(geom.Vec3{}, geom.ZAxis, 90)
	assert.True(t, twisted.X.Near(geom.YAxis, 1e-12))
}

func TestBasisInverse(t *testing.T) {
	b := NewBasis(geom.V3(5, -2, 1), geom.V3(1, 1, 0), geom.V3(-1, 1, 0))
	p := geom.V3(3, 4, 5)
	local := b.Inverse().TransformPoint(p)
	back := b.Matrix().TransformPoint(local)
	assert.True(t, back.Near(p, 1e-9))
	assert.True(t, b.Inverse().TransformPoint(b.Origin).Near(geom.Vec3{}, 1e-12))
}

func TestActiveViewportSelection(t *testing.T) {
	s := &scene.Scene{Header: scene.Header{ViewCenter: geom.V2(4, 5), ViewHeight: 12}}
	r := NewResolver(s, nil)

	vp := r.ActiveViewport()
	assert.Equal(t, ActiveViewportName, vp.Name)
	v, ok := r.ActiveView()
	require.True(t, ok)
	assert.Equal(t, geom.V2(4, 5), v.Center)

	s.Tables.Viewports = []scene.VPort{{Name: "Other", Height: 1}, {Name: "*Active", Height: 2}}
	assert.Equal(t, "*Active", r.ActiveViewport().Name)

	s.Tables.Viewports = s.Tables.Viewports[:1]
	assert.Equal(t, "Other", r.ActiveViewport().Name)
}

func TestWorldBasisPriority(t *testing.T) {
	ucs := scene.UCS{Name: "Rot", Handle: "U1", XAxis: geom.YAxis, YAxis: geom.XAxis.Neg()}

	tests := []struct {
		name  string
		vp    scene.VPort
		wantX geom.Vec3
	}{
		{"explicit axes", scene.VPort{Name: "*ACTIVE", UCSXAxis: geom.V3(0, -1, 0), UCSYAxis: geom.XAxis, UCSName: "Rot"}, geom.V3(0, -1, 0)},
		{"referenced ucs", scene.VPort{Name: "*ACTIVE", UCSHandle: "u1", Direction: geom.XAxis}, geom.YAxis},
		{"view direction", scene.VPort{Name: "*ACTIVE", Direction: geom.ZAxis, Twist: 90}, geom.YAxis},
		{"malformed axes", scene.VPort{Name: "*ACTIVE", UCSXAxis: geom.XAxis, UCSYAxis: geom.XAxis}, geom.XAxis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &scene.Scene{Tables: scene.Tables{Viewports: []scene.VPort{tt.vp}, UCS: []scene.UCS{ucs}}}
			b := NewResolver(s, nil).WorldBasis()
			assert.True(t, b.X.Near(tt.wantX, 1e-9), "got %v", b.X)
			assert.True(t, b.IsOrthonormal(1e-6))
		})
	}
}

func paperScene() *scene.Scene {
	return &scene.Scene{Tables: scene.Tables{
		Layouts: []scene.Layout{
			{Name: "Model", Handle: "22", BlockRecord: "1F"},
			{Name: "Layout1", Handle: "1E", BlockRecord: "1B", TabOrder: 1, InsBase: geom.V3(10, 0, 0)},
			{Name: "Rotated", Handle: "2A", BlockRecord: "2B", TabOrder: 2, HasUCS: true, UCSXAxis: geom.YAxis, UCSYAxis: geom.XAxis.Neg()},
			{Name: "Viewed", Handle: "3A", BlockRecord: "3B", TabOrder: 3, ViewName: "Side"},
		},
		Views: []scene.View{{Name: "Side", Direction: geom.XAxis}},
	}}
}

func TestLayoutMatrixKeys(t *testing.T) {
	s := paperScene()
	r := NewResolver(s, nil)

	byName, ok := r.LayoutMatrix("layout1")
	require.True(t, ok)
	assert.True(t, byName.TransformPoint2(geom.V2(10, 3)).Near(geom.V2(0, 3), 1e-12))

	for _, ref := range []string{"LAYOUT1", "1e", "1B", "Paper Space", "*Paper_Space"} {
		m, ok := r.LayoutMatrix(ref)
		require.True(t, ok, ref)
		assert.Equal(t, byName, m, ref)
	}

	for _, ref := range []string{"MODEL", "*Model_Space", "22"} {
		m, ok := r.LayoutMatrix(ref)
		require.True(t, ok, ref)
		assert.True(t, m.IsIdentity(), ref)
	}

	m, ok := r.LayoutMatrix("rotated")
	require.True(t, ok)
	assert.True(t, m.TransformPoint2(geom.V2(0, 1)).Near(geom.V2(1, 0), 1e-12))

	_, ok = r.LayoutMatrix("nope")
	assert.False(t, ok)
}

func TestLayoutBasisFromNamedView(t *testing.T) {
	s := paperScene()
	r := NewResolver(s, nil)
	l, ok := s.Tables.Layout("Viewed")
	require.True(t, ok)

	b := r.LayoutBasis(l)
	assert.True(t, b.Z.Near(geom.XAxis, 1e-12))
	assert.True(t, b.IsOrthonormal(1e-6))
}

func TestMatrixCacheBoundToScene(t *testing.T) {
	c := NewMatrixCache()
	first := paperScene()
	r := NewResolver(first, c)
	_, _ = r.LayoutMatrix("Layout1")
	require.Positive(t, c.Len())

	second := paperScene()
	second.Tables.Layouts[1].InsBase = geom.V3(0, 7, 0)
	r2 := NewResolver(second, c)
	m, ok := r2.LayoutMatrix("Layout1")
	require.True(t, ok)
	assert.InDelta(t, -7, m.TransformPoint2(geom.Vec2{}).Y, 1e-12)
	assert.Equal(t, uint64(1), c.Stats().Rebinds)
}

func TestFromDirectionTwistSign(t *testing.T) {
	b := FromDirection(geom.Vec3{}, geom.ZAxis, 45)
	assert.InDelta(t, math.Pi/4, math.Atan2(b.X.Y, b.X.X), 1e-12)
}

func TestOCS(t *testing.T) {
	m, tilted := OCSMatrix(geom.Vec3{})
	assert.False(t, tilted)
	assert.True(t, m.IsIdentity())

	_, tilted = OCSMatrix(geom.V3(0, 0, 2))
	assert.False(t, tilted)

	m, tilted = OCSMatrix(geom.V3(0, 0, -1))
	require.True(t, tilted)
	assert.True(t, m.TransformPoint(geom.V3(1, 2, 0)).Near(geom.V3(-1, 2, 0), 1e-12))

	for _, n := range []geom.Vec3{{X: 1}, {Y: -1}, {X: 1, Y: 1, Z: 1}, {X: 0.01, Z: 1}, {X: -3, Y: 2, Z: -1}} {
		b := OCS(n)
		assert.True(t, b.IsOrthonormal(1e-9), "%+v", n)
		assert.True(t, b.Z.Near(n.Normalize(geom.ZAxis), 1e-12))
	}
}
