package coords

import (
	"slices"

	"github.com/wieslawsoltes/DxfParser-sub001/cache"
	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
)

// ActiveViewportName is the VPORT entry describing the current view.
const ActiveViewportName = "*ACTIVE"

// Cache keys for the model and paper aliases.
const (
	keyModel = "MODEL"
	keyPaper = "PAPER SPACE"
)

var (
	modelAliases = []string{keyModel, "*MODEL_SPACE", "MODEL SPACE"}
	paperAliases = []string{keyPaper, "*PAPER_SPACE", "PAPERSPACE"}
)

// MatrixCache holds resolved matrices across Resolver instances.
type MatrixCache = cache.Bound[string, geom.Matrix]

// NewMatrixCache returns an empty matrix cache.
func NewMatrixCache() *MatrixCache {
	return cache.NewBound[string, geom.Matrix](0)
}

// View is the 2D view window of a viewport.
type View struct {
	Center      geom.Vec2
	Height      float64
	AspectRatio float64
	Twist       float64 // degrees
}

// Resolver builds transforms for one scene.
type Resolver struct {
	scene *scene.Scene
	cache *MatrixCache
}

// NewResolver returns a resolver for s. If c is nil a private cache is used.
func NewResolver(s *scene.Scene, c *MatrixCache) *Resolver {
	if c == nil {
		c = NewMatrixCache()
	}
	c.Bind(s)
	return &Resolver{scene: s, cache: c}
}

// ActiveViewport selects the *ACTIVE viewport, else the first one, else a
// viewport synthesized from header defaults.
func (r *Resolver) ActiveViewport() scene.VPort {
	t := &r.scene.Tables
	if vp, ok := t.VPortByRef(ActiveViewportName); ok {
		return *vp
	}
	if len(t.Viewports) > 0 {
		return t.Viewports[0]
	}
	h := &r.scene.Header
	return scene.VPort{
		Name:      ActiveViewportName,
		Center:    h.ViewCenter,
		Height:    h.ViewHeight,
		Direction: h.ViewDir,
		UCSOrigin: h.UCSOrigin,
		UCSXAxis:  h.UCSXDir,
		UCSYAxis:  h.UCSYDir,
	}
}

// ActiveView returns the view window of the active viewport. ok is false
// when the viewport does not describe a usable window.
func (r *Resolver) ActiveView() (View, bool) {
	vp := r.ActiveViewport()
	v := View{Center: vp.Center, Height: vp.Height, AspectRatio: vp.AspectRatio, Twist: vp.Twist}
	return v, vp.Height > geom.Epsilon
}

// WorldBasis resolves the model-space basis from the active viewport:
// explicit UCS axes, a referenced UCS entry, then the view direction.
func (r *Resolver) WorldBasis() Basis {
	vp := r.ActiveViewport()
	if validAxes(vp.UCSXAxis, vp.UCSYAxis) {
		return NewBasis(vp.UCSOrigin, vp.UCSXAxis, vp.UCSYAxis)
	}
	if b, ok := r.ucsBasis(vp.UCSHandle, vp.UCSName); ok {
		return b
	}
	if !vp.Direction.IsZero() {
		return FromDirection(geom.Vec3{}, vp.Direction, vp.Twist)
	}
	return World
}

// WorldMatrix maps model-space coordinates into the world view frame.
func (r *Resolver) WorldMatrix() geom.Matrix {
	r.cache.Bind(r.scene)
	return r.cache.GetOrCreate(keyModel, func() geom.Matrix {
		return r.WorldBasis().Inverse()
	})
}

// LayoutBasis resolves a layout's basis: its own UCS axes, a referenced UCS
// entry, its named view, then its last active viewport.
func (r *Resolver) LayoutBasis(l *scene.Layout) Basis {
	if l == nil {
		return World
	}
	if l.HasUCS && validAxes(l.UCSXAxis, l.UCSYAxis) {
		return NewBasis(l.UCSOrigin, l.UCSXAxis, l.UCSYAxis)
	}
	if b, ok := r.ucsBasis(l.UCSHandle, l.UCSName); ok {
		return b
	}
	if v, ok := r.scene.Tables.View(l.ViewName); ok {
		if v.HasUCS && validAxes(v.UCSXAxis, v.UCSYAxis) {
			return NewBasis(v.UCSOrigin, v.UCSXAxis, v.UCSYAxis)
		}
		if !v.Direction.IsZero() {
			return FromDirection(geom.Vec3{}, v.Direction, v.Twist)
		}
	}
	if l.Viewport != "" {
		if vp, ok := r.scene.Tables.VPortByRef(l.Viewport); ok {
			if validAxes(vp.UCSXAxis, vp.UCSYAxis) {
				return NewBasis(vp.UCSOrigin, vp.UCSXAxis, vp.UCSYAxis)
			}
			if !vp.Direction.IsZero() {
				return FromDirection(geom.Vec3{}, vp.Direction, vp.Twist)
			}
		}
		if vp := r.viewportEntity(l.Viewport); vp != nil && !vp.ViewDir.IsZero() {
			return FromDirection(geom.Vec3{}, vp.ViewDir, vp.Twist)
		}
	}
	return World
}

// LayoutMatrix returns the matrix for a layout reference: a layout name,
// handle, block record handle, or a model/paper alias. ok is false when the
// reference names no layout; the identity matrix is returned then.
func (r *Resolver) LayoutMatrix(ref string) (geom.Matrix, bool) {
	r.cache.Bind(r.scene)
	key := scene.Key(ref)
	if m, hit := r.cache.Get(key); hit {
		return m, true
	}

	switch {
	case slices.Contains(modelAliases, key):
		m := r.WorldMatrix()
		r.cache.Set(key, m)
		return m, true
	case slices.Contains(paperAliases, key):
		l := r.scene.Tables.FirstPaperLayout()
		if l == nil {
			return geom.Identity(), false
		}
		m := r.layoutMatrix(l)
		for _, k := range paperAliases {
			r.cache.Set(k, m)
		}
		return m, true
	}

	l, ok := r.scene.Tables.Layout(ref)
	if !ok {
		return geom.Identity(), false
	}
	if l.IsModel() {
		m := r.WorldMatrix()
		r.cache.Set(key, m)
		return m, true
	}
	return r.layoutMatrix(l), true
}

// layoutMatrix computes and caches a layout's matrix under every key it can
// be referenced by.
func (r *Resolver) layoutMatrix(l *scene.Layout) geom.Matrix {
	m := geom.TranslateVec(l.InsBase.Neg()).Multiply(r.LayoutBasis(l).Inverse())
	for _, k := range []string{l.Name, l.Handle, l.BlockRecord} {
		if k != "" {
			r.cache.Set(scene.Key(k), m)
		}
	}
	return m
}

func (r *Resolver) ucsBasis(handle, name string) (Basis, bool) {
	for _, ref := range []string{handle, name} {
		u, ok := r.scene.Tables.UCSByRef(ref)
		if !ok {
			continue
		}
		if validAxes(u.XAxis, u.YAxis) {
			return NewBasis(u.Origin, u.XAxis, u.YAxis), true
		}
	}
	return Basis{}, false
}

func (r *Resolver) viewportEntity(handle string) *scene.Viewport {
	k := scene.Key(handle)
	for _, e := range r.scene.Entities {
		if vp, ok := e.(*scene.Viewport); ok && scene.Key(vp.Handle) == k {
			return vp
		}
	}
	return nil
}
