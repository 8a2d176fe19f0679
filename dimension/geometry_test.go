package dimension

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
)

func testSettings() Settings {
	st := scene.DefaultDimStyle()
	st.DIMDEC = 2
	return FromStyle(&st)
}

func TestLinearDimension(t *testing.T) {
	d := &scene.Dimension{
		Type:     scene.DimLinear,
		Def1:     geom.V3(0, 0, 0),
		Def2:     geom.V3(10, 3, 0),
		DefPoint: geom.V3(0, 5, 0),
	}
	s := testSettings()
	g, ok := Build(d, s)
	require.True(t, ok)

	assert.InDelta(t, 10, g.Value, 1e-12)
	assert.Equal(t, "10.00", g.Label.Content)
	require.Len(t, g.DimLines, 1)
	assert.True(t, g.DimLines[0][0].Near(geom.V2(0, 5), 1e-12))
	assert.True(t, g.DimLines[0][1].Near(geom.V2(10, 5), 1e-12))

	require.Len(t, g.ExtLines, 2)
	assert.True(t, g.ExtLines[0][0].Near(geom.V2(0, s.ExtOffset), 1e-12))
	assert.True(t, g.ExtLines[0][1].Near(geom.V2(0, 5+s.ExtExtend), 1e-12))
	assert.True(t, g.ExtLines[1][0].Near(geom.V2(10, 3+s.ExtOffset), 1e-12))

	require.Len(t, g.Arrows, 2)
	assert.True(t, g.Arrows[0].Dir.Near(geom.V2(-1, 0), 1e-12))
	assert.True(t, g.Arrows[1].Dir.Near(geom.V2(1, 0), 1e-12))
	assert.Equal(t, ArrowOpen, g.Arrows[0].Kind)
	assert.Greater(t, g.Label.Position.Y, 5.0)
}

func TestRotatedAndAlignedDimensions(t *testing.T) {
	s := testSettings()
	p1, p2 := geom.V3(0, 0, 0), geom.V3(3, 4, 0)

	vertical, ok := Build(&scene.Dimension{Type: scene.DimLinear, Def1: p1, Def2: p2, DefPoint: geom.V3(-2, 0, 0), Rotation: 90}, s)
	require.True(t, ok)
	assert.InDelta(t, 4, vertical.Value, 1e-12)
	assert.InDelta(t, math.Pi/2, vertical.Label.Rotation, 1e-12)

	aligned, ok := Build(&scene.Dimension{Type: scene.DimAligned, Def1: p1, Def2: p2, DefPoint: geom.V3(-4, 3, 0)}, s)
	require.True(t, ok)
	assert.InDelta(t, 5, aligned.Value, 1e-12)
	assert.InDelta(t, 5, aligned.DimLines[0][0].Distance(aligned.DimLines[0][1]), 1e-9)
}

func TestAngularDimensions(t *testing.T) {
	s := testSettings()

	twoLine, ok := Build(&scene.Dimension{
		Type:     scene.DimAngular2Line,
		Def1:     geom.V3(0, 0, 0),
		Def2:     geom.V3(10, 0, 0),
		Def3:     geom.V3(0, 0, 0),
		DefPoint: geom.V3(5, 5, 0),
		ArcPoint: geom.V3(3, 1, 0),
	}, s)
	require.True(t, ok)
	assert.InDelta(t, math.Pi/4, twoLine.Value, 1e-12)
	assert.Equal(t, "45°", twoLine.Label.Content)

	obtuse, ok := Build(&scene.Dimension{
		Type:     scene.DimAngular2Line,
		Def1:     geom.V3(0, 0, 0),
		Def2:     geom.V3(10, 0, 0),
		Def3:     geom.V3(0, 0, 0),
		DefPoint: geom.V3(5, 5, 0),
		ArcPoint: geom.V3(-1, 3, 0),
	}, s)
	require.True(t, ok)
	assert.InDelta(t, 3*math.Pi/4, obtuse.Value, 1e-12)

	threePoint, ok := Build(&scene.Dimension{
		Type:     scene.DimAngular3Point,
		Def3:     geom.V3(0, 0, 0),
		Def1:     geom.V3(4, 0, 0),
		Def2:     geom.V3(0, 4, 0),
		DefPoint: geom.V3(-2, -2, 0),
	}, s)
	require.True(t, ok)
	assert.InDelta(t, 3*math.Pi/2, threePoint.Value, 1e-12)
	require.Len(t, threePoint.ExtLines, 0)

	parallel, ok := Build(&scene.Dimension{
		Type: scene.DimAngular2Line, Def1: geom.V3(0, 0, 0), Def2: geom.V3(1, 0, 0),
		Def3: geom.V3(0, 1, 0), DefPoint: geom.V3(1, 1, 0), ArcPoint: geom.V3(0, 2, 0),
	}, s)
	assert.False(t, ok)
	assert.Empty(t, parallel.DimLines)
}

func TestRadialDimensions(t *testing.T) {
	s := testSettings()

	dia, ok := Build(&scene.Dimension{Type: scene.DimDiameter, Def3: geom.V3(5, 0, 0), DefPoint: geom.V3(-5, 0, 0)}, s)
	require.True(t, ok)
	assert.InDelta(t, 10, dia.Value, 1e-12)
	assert.Equal(t, "Ø10.00", dia.Label.Content)
	assert.Len(t, dia.Arrows, 2)

	rad, ok := Build(&scene.Dimension{Type: scene.DimRadius, DefPoint: geom.V3(1, 1, 0), Def3: geom.V3(1, 4, 0)}, s)
	require.True(t, ok)
	assert.Equal(t, "R3.00", rad.Label.Content)
	require.Len(t, rad.Arrows, 1)
	assert.True(t, rad.Arrows[0].Dir.Near(geom.V2(0, 1), 1e-12))

	jog, ok := Build(&scene.Dimension{Type: scene.DimJoggedRadius, DefPoint: geom.V3(0, 0, 0), Def3: geom.V3(100, 0, 0)}, s)
	require.True(t, ok)
	assert.Equal(t, "R100.00", jog.Label.Content)
	assert.Len(t, jog.DimLines[0], 4)

	_, ok = Build(&scene.Dimension{Type: scene.DimRadius}, s)
	assert.False(t, ok)
}

func TestOrdinateDimension(t *testing.T) {
	s := testSettings()
	g, ok := Build(&scene.Dimension{
		Type:      scene.DimOrdinate,
		OrdinateX: true,
		DefPoint:  geom.V3(0, 0, 0),
		Def1:      geom.V3(7.25, 2, 0),
		Def2:      geom.V3(8, 6, 0),
	}, s)
	require.True(t, ok)
	assert.InDelta(t, 7.25, g.Value, 1e-12)
	pts := g.DimLines[0]
	assert.True(t, pts[len(pts)-1].Near(geom.V2(8, 6), 1e-12))
	assert.Len(t, pts, 4)

	straight, ok := Build(&scene.Dimension{Type: scene.DimOrdinate, Def1: geom.V3(0, 3, 0), Def2: geom.V3(5, 3, 0)}, s)
	require.True(t, ok)
	assert.InDelta(t, 3, straight.Value, 1e-12)
	assert.Len(t, straight.DimLines[0], 2)
}

func TestArcLengthDimension(t *testing.T) {
	s := testSettings()
	g, ok := Build(&scene.Dimension{
		Type:     scene.DimArcLength,
		Def3:     geom.V3(0, 0, 0),
		Def1:     geom.V3(2, 0, 0),
		Def2:     geom.V3(0, 2, 0),
		DefPoint: geom.V3(3, 3, 0),
	}, s)
	require.True(t, ok)
	assert.InDelta(t, math.Pi, g.Value, 1e-12)
	assert.Equal(t, "⌒3.14", g.Label.Content)
	assert.Len(t, g.ExtLines, 2)
}

func TestLabelOverrides(t *testing.T) {
	s := testSettings()
	tests := []struct {
		override, want string
	}{
		{"", "12.00"},
		{"<>", "12.00"},
		{" ", ""},
		{"<> TYP", "12.00 TYP"},
		{`2X \P<>`, "2X \n12.00"},
		{"FIXED", "FIXED"},
	}
	for _, tt := range tests {
		d := &scene.Dimension{Type: scene.DimLinear, Text: tt.override}
		assert.Equal(t, tt.want, LabelText(d, s, 12), "override %q", tt.override)
	}
}

func TestUserTextPosition(t *testing.T) {
	d := &scene.Dimension{
		Type:     scene.DimLinear,
		Def2:     geom.V3(10, 0, 0),
		DefPoint: geom.V3(0, 5, 0),
		TextMid:  geom.V3(4, 9, 0),
	}
	g, ok := Build(d, testSettings())
	require.True(t, ok)
	assert.Equal(t, geom.V2(4, 9), g.Label.Position)
}

func TestArrowKinds(t *testing.T) {
	tick := NewArrow(geom.Vec2{}, geom.V2(1, 0), "", 1, 0.5)
	assert.Equal(t, ArrowTick, tick.Kind)
	assert.InDelta(t, 1, tick.Lines[0][0].Distance(tick.Lines[0][1]), 1e-12)

	block := NewArrow(geom.Vec2{}, geom.V2(0, 2), "MyArrow", 1, 0)
	assert.Equal(t, ArrowBlock, block.Kind)
	assert.Equal(t, "MyArrow", block.Block)
	assert.InDelta(t, math.Pi/2, block.Rotation(), 1e-12)
	assert.NotEmpty(t, block.Lines, "fallback shape")

	assert.Equal(t, ArrowTick, NewArrow(geom.Vec2{}, geom.V2(1, 0), "_ArchTick", 1, 0).Kind)
	assert.Equal(t, ArrowNone, NewArrow(geom.Vec2{}, geom.V2(1, 0), "_None", 1, 0).Kind)
	assert.Empty(t, NewArrow(geom.Vec2{}, geom.V2(1, 0), "", 0, 0).Lines)

	v := NewArrow(geom.V2(5, 0), geom.V2(1, 0), "", 3, 0)
	require.Len(t, v.Lines[0], 3)
	assert.Equal(t, geom.V2(5, 0), v.Lines[0][1])
	assert.InDelta(t, 2, v.Lines[0][0].X, 1e-12)
}

func TestSettingsFromStyleAndOverrides(t *testing.T) {
	st := scene.DefaultDimStyle()
	st.DIMSCALE = 2
	st.DIMSAH = true
	st.DIMBLK1 = "Dot"
	st.DIMLUNIT = 4
	s := FromStyle(&st)
	assert.InDelta(t, 0.36, s.ArrowSize, 1e-12)
	assert.Equal(t, "Dot", s.Block1)
	assert.Equal(t, "", s.Block2)
	assert.Equal(t, Architectural, s.Linear.Unit)

	o := s.Apply(map[string]float64{"dimasz": 1, "DIMTOL": 1, "DIMLUNIT": 2, "DIMDEC": 12}, map[string]string{"DIMPOST": "<>mm"})
	assert.InDelta(t, 1, o.ArrowSize, 1e-12)
	assert.True(t, o.Tolerance)
	assert.Equal(t, Decimal, o.Linear.Unit)
	assert.Equal(t, 8, o.Linear.Precision)
	assert.Equal(t, "<>mm", o.Post)

	def := FromStyle(nil)
	assert.Equal(t, Decimal, def.Linear.Unit)
	assert.InDelta(t, 25.4, def.AltFactor, 1e-12)
}
