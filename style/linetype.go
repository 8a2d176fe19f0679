package style

import (
	"math"

	"github.com/wieslawsoltes/DxfParser-sub001/scene"
)

// Linetype is a resolved dash pattern. A nil Pattern draws continuous.
type Linetype struct {
	Name    string
	Pattern []float64 // scaled; positive dash, negative gap, zero dot
	Scale   float64
}

// Continuous reports whether the linetype draws a solid line.
func (l Linetype) Continuous() bool {
	return len(l.Pattern) == 0
}

// Linetype resolves an entity's linetype name and returns its pattern scaled
// by LinetypeScale in model space.
func (r *Resolver) Linetype(c *scene.Common, inh Inherited) Linetype {
	name := r.linetypeName(c, inh)
	scale := r.LinetypeScale(c, false, 1)
	return r.pattern(name, scale)
}

// LinetypeInSpace is Linetype with the paper-space switch applied.
func (r *Resolver) LinetypeInSpace(c *scene.Common, inh Inherited, paperSpace bool, viewportScale float64) Linetype {
	return r.pattern(r.linetypeName(c, inh), r.LinetypeScale(c, paperSpace, viewportScale))
}

func (r *Resolver) linetypeName(c *scene.Common, inh Inherited) string {
	name := scene.Key(c.Linetype)
	switch name {
	case "", LinetypeByLayer:
		if l := r.Layer(r.EffectiveLayer(c, inh)); l != nil && l.Linetype != "" {
			name = scene.Key(l.Linetype)
		} else {
			name = LinetypeContinuous
		}
	case LinetypeByBlock:
		name = scene.Key(inh.Linetype)
		if name == "" || name == LinetypeByBlock || name == LinetypeByLayer {
			name = LinetypeContinuous
		}
	}
	return name
}

// LinetypeScale is the dash scale: global LTSCALE times the entity scale,
// times the viewport scale when drawing paper space with PSLTSCALE set.
func (r *Resolver) LinetypeScale(c *scene.Common, paperSpace bool, viewportScale float64) float64 {
	s := positiveOr(r.scene.Header.LTScale, DefaultLinetypeScale) * positiveOr(c.LinetypeScale, DefaultLinetypeScale)
	if paperSpace && r.scene.Header.PSLTScale {
		s *= positiveOr(viewportScale, 1)
	}
	return s
}

func (r *Resolver) pattern(name string, scale float64) Linetype {
	out := Linetype{Name: name, Scale: scale}
	if name == LinetypeContinuous {
		return out
	}
	lt, ok := r.scene.Tables.Linetype(name)
	if !ok || len(lt.Pattern) == 0 {
		return out
	}
	var total float64
	pat := make([]float64, len(lt.Pattern))
	for i, d := range lt.Pattern {
		pat[i] = d * scale
		total += math.Abs(pat[i])
	}
	// A pattern with no length would never advance.
	if total < 1e-9 {
		return out
	}
	out.Pattern = pat
	return out
}

func positiveOr(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
