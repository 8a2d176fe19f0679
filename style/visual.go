package style

import (
	"strings"

	"github.com/wieslawsoltes/DxfParser-sub001/scene"
)

// EdgeMode selects how edge colors are derived from entity colors.
type EdgeMode uint8

const (
	EdgeInherit EdgeMode = iota
	EdgeMonochrome
	EdgeDesaturate
)

// VisualStyle is a fixed preset of surface drawing switches.
type VisualStyle struct {
	Name        string
	Edges       bool // outlines of faces, meshes and solids
	Faces       bool
	Hatches     bool
	Wipeouts    bool
	FaceOpacity float64
	EdgeMode    EdgeMode
}

// EdgeColor transforms an entity color into its edge color.
func (v VisualStyle) EdgeColor(c Color) Color {
	switch v.EdgeMode {
	case EdgeMonochrome:
		return MonochromeEdgeColor.WithAlpha(c.A)
	case EdgeDesaturate:
		return c.Desaturate(0.6)
	}
	return c
}

// FaceColor applies the preset opacity to a fill color.
func (v VisualStyle) FaceColor(c Color) Color {
	return c.WithAlpha(c.A * v.FaceOpacity)
}

var presets = map[string]VisualStyle{
	"wireframe":         {Name: "wireframe", Edges: true, Hatches: true, Wipeouts: true, FaceOpacity: 1},
	"hidden":            {Name: "hidden", Edges: true, Faces: true, Hatches: true, Wipeouts: true, FaceOpacity: 1, EdgeMode: EdgeMonochrome},
	"shaded":            {Name: "shaded", Faces: true, Hatches: true, Wipeouts: true, FaceOpacity: 1},
	"shaded with edges": {Name: "shaded with edges", Edges: true, Faces: true, Hatches: true, Wipeouts: true, FaceOpacity: 1},
	"realistic":         {Name: "realistic", Faces: true, Hatches: true, Wipeouts: true, FaceOpacity: 1},
	"conceptual":        {Name: "conceptual", Edges: true, Faces: true, Hatches: true, Wipeouts: true, FaceOpacity: 1, EdgeMode: EdgeDesaturate},
	"x-ray":             {Name: "x-ray", Edges: true, Faces: true, Hatches: true, FaceOpacity: 0.5},
}

// Preset returns a preset by canonical name.
func Preset(name string) (VisualStyle, bool) {
	v, ok := presets[name]
	return v, ok
}

// Classify maps a visual style name onto a preset name, or "" when the name
// is not recognized.
func Classify(name string) string {
	n := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "*")))
	n = strings.NewReplacer("_", " ", "-", "").Replace(n)
	switch {
	case n == "":
		return ""
	case strings.Contains(n, "xray"):
		return "x-ray"
	case strings.Contains(n, "wireframe"):
		return "wireframe"
	case strings.Contains(n, "hidden"), strings.Contains(n, "sketchy"):
		return "hidden"
	case strings.Contains(n, "with edges"), strings.Contains(n, "withedges"):
		return "shaded with edges"
	case strings.Contains(n, "realistic"):
		return "realistic"
	case strings.Contains(n, "conceptual"), strings.Contains(n, "shades of gray"):
		return "conceptual"
	case strings.Contains(n, "shaded"), strings.Contains(n, "gouraud"), strings.Contains(n, "flat"):
		return "shaded"
	}
	return ""
}

// classifyType maps the VISUALSTYLE group 70 type code.
func classifyType(t int) string {
	switch t {
	case 0, 2, 7:
		return "shaded"
	case 1, 3:
		return "shaded with edges"
	case 4, 5:
		return "wireframe"
	case 6:
		return "hidden"
	case 8:
		return "realistic"
	case 9:
		return "conceptual"
	}
	return ""
}

// fallbackStyles are tried by name when no viewport or layout references a
// visual style.
var fallbackStyles = []string{"2dWireframe", "Wireframe", "Shaded"}

// VisualStyleRequest lists the candidate references in priority order.
type VisualStyleRequest struct {
	Override string // explicit preset or style name
	Viewport string // active viewport's style handle
	Layout   string // active layout's style handle
}

// ResolveVisualStyle picks the active preset: explicit override, viewport
// style, layout style, name fallbacks, then the default.
func ResolveVisualStyle(t *scene.Tables, req VisualStyleRequest) VisualStyle {
	if req.Override != "" {
		if p := Classify(req.Override); p != "" {
			return presets[p]
		}
		if p := fromTable(t, req.Override); p != "" {
			return presets[p]
		}
	}
	for _, ref := range []string{req.Viewport, req.Layout} {
		if p := fromTable(t, ref); p != "" {
			return presets[p]
		}
	}
	for _, name := range fallbackStyles {
		if p := fromTable(t, name); p != "" {
			return presets[p]
		}
	}
	return presets[DefaultVisualStyle]
}

func fromTable(t *scene.Tables, ref string) string {
	if t == nil || ref == "" {
		return ""
	}
	vs, ok := t.VisualStyle(ref)
	if !ok {
		return ""
	}
	if p := Classify(vs.Name); p != "" {
		return p
	}
	return classifyType(vs.Type)
}
