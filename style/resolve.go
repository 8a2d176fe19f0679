package style

import (
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
)

// LayerState overrides a layer's table state for one render call.
type LayerState struct {
	Hidden          bool
	Locked          bool
	Transparency    float64
	HasTransparency bool
}

// Inherited carries the by-block properties of the enclosing block
// reference. The zero value means top level, where by-block properties fall
// back to the defaults.
type Inherited struct {
	Color         Color
	HasColor      bool
	Lineweight    float64 // millimeters
	HasLineweight bool
	Linetype      string
	Layer         string // layer of the insert, used by entities on layer "0"
}

// Resolved is the effective appearance of one entity.
type Resolved struct {
	Color      Color
	Lineweight float64 // millimeters
	Linetype   Linetype
}

// Resolver resolves entity appearance against one scene. It is cheap to
// create; the only shared state is the optional material cache.
type Resolver struct {
	scene     *scene.Scene
	layers    map[string]LayerState
	materials *MaterialCache
}

// NewResolver returns a resolver for s. layerStates may be nil; materials
// may be nil, in which case a private cache is used.
func NewResolver(s *scene.Scene, layerStates map[string]LayerState, materials *MaterialCache) *Resolver {
	if materials == nil {
		materials = NewMaterialCache()
	}
	ls := make(map[string]LayerState, len(layerStates))
	for name, st := range layerStates {
		ls[scene.Key(name)] = st
	}
	return &Resolver{scene: s, layers: ls, materials: materials}
}

// LayerState returns the override for a layer, if any.
func (r *Resolver) LayerState(layer string) (LayerState, bool) {
	st, ok := r.layers[scene.Key(layer)]
	return st, ok
}

// Layer returns the layer table entry an entity is on.
func (r *Resolver) Layer(name string) *scene.Layer {
	if name == "" {
		name = "0"
	}
	l, _ := r.scene.Tables.Layer(name)
	return l
}

// LayerVisible reports whether entities on the layer are drawn: the layer
// must exist or be implied, be neither off nor frozen, and not be hidden by
// a layer-state override.
func (r *Resolver) LayerVisible(name string) bool {
	if st, ok := r.LayerState(name); ok && st.Hidden {
		return false
	}
	l := r.Layer(name)
	if l == nil {
		return true
	}
	return !l.IsOff() && !l.Frozen
}

// Resolve computes the effective appearance of an entity.
func (r *Resolver) Resolve(c *scene.Common, inh Inherited) Resolved {
	return Resolved{
		Color:      r.Color(c, inh),
		Lineweight: r.Lineweight(c, inh),
		Linetype:   r.Linetype(c, inh),
	}
}

// Color resolves an entity's color and opacity. Precedence: material
// diffuse channel, true color or color book, by-block inheritance, indexed
// color, layer color.
func (r *Resolver) Color(c *scene.Common, inh Inherited) Color {
	alpha := r.alpha(c, inh)

	if c.Material != "" {
		if m, ok := r.materials.Lookup(r.scene.Tables.Materials, c.Material); ok && m.Diffuse != nil {
			out := *m.Diffuse
			out.A = alpha
			if m.HasOpacity {
				out.A = alpha * m.Opacity
			}
			return out
		}
	}
	if c.TrueColor != nil {
		return RGBColor(*c.TrueColor).WithAlpha(alpha)
	}
	switch {
	case c.Color.IsByBlock():
		if inh.HasColor {
			return inh.Color.WithAlpha(alpha)
		}
		return DefaultColor.WithAlpha(alpha)
	case c.Color.IsByLayer():
		return r.layerColor(r.EffectiveLayer(c, inh)).WithAlpha(alpha)
	}
	return ACI(int(c.Color)).WithAlpha(alpha)
}

func (r *Resolver) layerColor(name string) Color {
	l := r.Layer(name)
	if l == nil {
		return DefaultColor
	}
	if l.TrueColor != nil {
		return RGBColor(*l.TrueColor)
	}
	idx := int(l.Color)
	if idx < 0 {
		idx = -idx
	}
	return ACI(idx)
}

// EffectiveLayer maps layer "0" inside a block to the insert's layer.
func (r *Resolver) EffectiveLayer(c *scene.Common, inh Inherited) string {
	if inh.Layer != "" && (c.Layer == "" || c.Layer == "0") {
		return inh.Layer
	}
	return c.Layer
}

func (r *Resolver) alpha(c *scene.Common, inh Inherited) float64 {
	t := c.Transparency
	if t == 0 {
		layer := r.EffectiveLayer(c, inh)
		if st, ok := r.LayerState(layer); ok && st.HasTransparency {
			t = st.Transparency
		} else if l := r.Layer(layer); l != nil {
			t = l.Transparency
		}
	}
	return 1 - clamp01(t)
}

// Lineweight resolves an entity's lineweight in millimeters.
func (r *Resolver) Lineweight(c *scene.Common, inh Inherited) float64 {
	w := c.Lineweight
	switch {
	case w > 0:
		return float64(w) / 100
	case w == scene.LineweightByBlock:
		if inh.HasLineweight {
			return inh.Lineweight
		}
		return r.defaultLineweight()
	case w == scene.LineweightDefault:
		return r.defaultLineweight()
	}
	if l := r.Layer(r.EffectiveLayer(c, inh)); l != nil && l.Lineweight > 0 {
		return float64(l.Lineweight) / 100
	}
	return r.defaultLineweight()
}

func (r *Resolver) defaultLineweight() float64 {
	if lw := r.scene.Header.LWDefault; lw > 0 {
		return float64(lw) / 100
	}
	return DefaultLineweight
}
