package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieslawsoltes/DxfParser-sub001/scene"
)

func testScene() *scene.Scene {
	return &scene.Scene{
		Header: scene.Header{LTScale: 2},
		Tables: scene.Tables{
			Layers: []scene.Layer{
				{Name: "0", Color: 7},
				{Name: "Walls", Color: 1, Lineweight: 50, Linetype: "Dashed"},
				{Name: "Glass", Color: -5, Transparency: 0.5, TrueColor: &scene.RGB{R: 10, G: 20, B: 30}},
				{Name: "Frozen", Color: 3, Frozen: true},
			},
			Linetypes: []scene.Linetype{
				{Name: "DASHED", Pattern: []float64{0.5, -0.25}},
				{Name: "ZERO", Pattern: []float64{0, 0}},
			},
			Materials: &scene.MaterialTable{Entries: []scene.Material{
				{Name: "Steel", Handle: "4A", Diffuse: &scene.RGB{R: 100, G: 110, B: 120}, Opacity: 0.5, HasOpacity: true},
				{Name: "ByLayer", Handle: "4B"},
			}},
		},
	}
}

func TestACIPalette(t *testing.T) {
	tests := []struct {
		index int
		want  Color
	}{
		{1, Color{255, 0, 0, 1}},
		{5, Color{0, 0, 255, 1}},
		{7, Color{255, 255, 255, 1}},
		{10, Color{255, 0, 0, 1}},
		{11, Color{255, 127, 127, 1}},
		{12, Color{165, 0, 0, 1}},
		{13, Color{165, 82, 82, 1}},
		{250, Color{51, 51, 51, 1}},
		{255, Color{255, 255, 255, 1}},
		{0, DefaultColor},
		{256, DefaultColor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ACI(tt.index), "index %d", tt.index)
	}
}

func TestLineByLayerRed(t *testing.T) {
	r := NewResolver(testScene(), nil, nil)
	line := &scene.Line{Common: scene.Common{Layer: "Walls", Color: scene.ColorByLayer}}

	c := r.Color(line.Base(), Inherited{})
	assert.Equal(t, Color{R: 255, G: 0, B: 0, A: 1}, c)
}

func TestColorPrecedence(t *testing.T) {
	r := NewResolver(testScene(), nil, nil)
	blue := Color{R: 0, G: 0, B: 255, A: 1}

	tests := []struct {
		name string
		c    scene.Common
		inh  Inherited
		want Color
	}{
		{"material wins", scene.Common{Layer: "Walls", Material: "4a", TrueColor: &scene.RGB{R: 1}}, Inherited{}, Color{100, 110, 120, 0.5}},
		{"true color", scene.Common{Layer: "Walls", Color: 3, TrueColor: &scene.RGB{R: 9, G: 8, B: 7}}, Inherited{}, Color{9, 8, 7, 1}},
		{"by block inherits", scene.Common{Layer: "Walls", Color: scene.ColorByBlock}, Inherited{Color: blue, HasColor: true}, blue},
		{"by block top level", scene.Common{Color: scene.ColorByBlock}, Inherited{}, DefaultColor},
		{"indexed", scene.Common{Layer: "Walls", Color: 3}, Inherited{}, Color{0, 255, 0, 1}},
		{"layer true color and transparency", scene.Common{Layer: "Glass"}, Inherited{}, Color{10, 20, 30, 0.5}},
		{"missing layer", scene.Common{Layer: "Nope"}, Inherited{}, DefaultColor},
		{"layer zero takes insert layer", scene.Common{Layer: "0"}, Inherited{Layer: "Walls"}, Color{255, 0, 0, 1}},
		{"layer zero takes insert layer transparency", scene.Common{Layer: "0"}, Inherited{Layer: "Glass"}, Color{10, 20, 30, 0.5}},
		{"bylayer material ignored", scene.Common{Layer: "Walls", Material: "ByLayer"}, Inherited{}, Color{255, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.c
			assert.Equal(t, tt.want, r.Color(&c, tt.inh))
		})
	}
}

func TestLayerStateTransparencyAndVisibility(t *testing.T) {
	r := NewResolver(testScene(), map[string]LayerState{
		"walls": {Transparency: 0.25, HasTransparency: true},
		"0":     {Hidden: true},
	}, nil)

	c := r.Color(&scene.Common{Layer: "Walls"}, Inherited{})
	assert.InDelta(t, 0.75, c.A, 1e-12)

	c = r.Color(&scene.Common{Layer: "0"}, Inherited{Layer: "Walls"})
	assert.InDelta(t, 0.75, c.A, 1e-12, "block contents on layer 0 use the insert layer's state")

	assert.True(t, r.LayerVisible("Walls"))
	assert.False(t, r.LayerVisible("0"))
	assert.False(t, r.LayerVisible("Glass"), "negative color means off")
	assert.False(t, r.LayerVisible("Frozen"))
	assert.True(t, r.LayerVisible("Unknown"))
}

func TestLineweight(t *testing.T) {
	s := testScene()
	r := NewResolver(s, nil, nil)

	assert.InDelta(t, 0.35, r.Lineweight(&scene.Common{Lineweight: 35}, Inherited{}), 1e-12)
	assert.InDelta(t, 0.5, r.Lineweight(&scene.Common{Layer: "Walls"}, Inherited{}), 1e-12)
	assert.InDelta(t, 0.25, r.Lineweight(&scene.Common{Layer: "0"}, Inherited{}), 1e-12)
	assert.InDelta(t, 0.7, r.Lineweight(&scene.Common{Lineweight: scene.LineweightByBlock}, Inherited{Lineweight: 0.7, HasLineweight: true}), 1e-12)

	s.Header.LWDefault = 18
	assert.InDelta(t, 0.18, r.Lineweight(&scene.Common{Lineweight: scene.LineweightDefault}, Inherited{}), 1e-12)
}

func TestLinetypeScaling(t *testing.T) {
	s := testScene()
	r := NewResolver(s, nil, nil)

	lt := r.Linetype(&scene.Common{Layer: "Walls", LinetypeScale: 3}, Inherited{})
	assert.Equal(t, "DASHED", lt.Name)
	assert.InDeltaSlice(t, []float64{3, -1.5}, lt.Pattern, 1e-12)

	assert.True(t, r.Linetype(&scene.Common{Linetype: "Continuous"}, Inherited{}).Continuous())
	assert.True(t, r.Linetype(&scene.Common{Linetype: "zero"}, Inherited{}).Continuous())
	assert.Equal(t, "DASHED", r.Linetype(&scene.Common{Linetype: "ByBlock"}, Inherited{Linetype: "dashed"}).Name)

	s.Header.PSLTScale = true
	assert.InDelta(t, 2, r.LinetypeScale(&scene.Common{}, false, 10), 1e-12)
	assert.InDelta(t, 20, r.LinetypeScale(&scene.Common{}, true, 10), 1e-12)
}

func TestMaterialCacheInvalidatesOnTableIdentity(t *testing.T) {
	s := testScene()
	mc := NewMaterialCache()

	m, ok := mc.Lookup(s.Tables.Materials, "steel")
	require.True(t, ok)
	require.NotNil(t, m.Diffuse)
	assert.Equal(t, Color{100, 110, 120, 1}, *m.Diffuse)

	replaced := &scene.MaterialTable{Entries: []scene.Material{
		{Name: "Steel", Diffuse: &scene.RGB{R: 1, G: 2, B: 3}},
	}}
	m, ok = mc.Lookup(replaced, "STEEL")
	require.True(t, ok)
	assert.Equal(t, Color{1, 2, 3, 1}, *m.Diffuse)
	assert.Equal(t, uint64(1), mc.Stats().Rebinds)

	_, ok = mc.Lookup(replaced, "missing")
	assert.False(t, ok)
}

func TestVisualStyleResolution(t *testing.T) {
	tables := &scene.Tables{VisualStyles: []scene.VisualStyle{
		{Name: "2dWireframe", Handle: "V1", Type: 4},
		{Name: "Custom", Handle: "V2", Type: 9},
		{Name: "Realistic", Handle: "V3"},
	}}

	tests := []struct {
		name string
		req  VisualStyleRequest
		want string
	}{
		{"override keyword", VisualStyleRequest{Override: "X-Ray", Viewport: "V3"}, "x-ray"},
		{"override handle", VisualStyleRequest{Override: "V2"}, "conceptual"},
		{"viewport", VisualStyleRequest{Viewport: "V3", Layout: "V2"}, "realistic"},
		{"layout", VisualStyleRequest{Layout: "v2"}, "conceptual"},
		{"fallback list", VisualStyleRequest{}, "wireframe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveVisualStyle(tables, tt.req).Name)
		})
	}

	assert.Equal(t, "shaded", ResolveVisualStyle(&scene.Tables{}, VisualStyleRequest{}).Name)
}

func TestEdgeColorModes(t *testing.T) {
	red := Color{255, 0, 0, 1}
	hidden, _ := Preset("hidden")
	conceptual, _ := Preset("conceptual")
	wire, _ := Preset("wireframe")

	assert.Equal(t, red, wire.EdgeColor(red))
	assert.Equal(t, MonochromeEdgeColor, hidden.EdgeColor(red))

	d := conceptual.EdgeColor(red)
	assert.Less(t, d.R, uint8(255))
	assert.Greater(t, d.G, uint8(0))
	assert.Equal(t, d.G, d.B)

	xray, _ := Preset("x-ray")
	assert.InDelta(t, 0.5, xray.FaceColor(red).A, 1e-12)
}

func TestClassify(t *testing.T) {
	tests := map[string]string{
		"2dWireframe":        "wireframe",
		"*Shaded_with_edges": "shaded with edges",
		"Shaded":             "shaded",
		"Shades of Gray":     "conceptual",
		"Sketchy":            "hidden",
		"X-Ray":              "x-ray",
		"mystery":            "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Classify(in), in)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, Color{255, 128, 0, 1}, c)
	assert.Equal(t, "#ff8000", c.Hex())

	_, err = ParseHex("nope")
	assert.Error(t, err)
}
