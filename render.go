package dxfrender

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wieslawsoltes/DxfParser-sub001/coords"
	"github.com/wieslawsoltes/DxfParser-sub001/dimension"
	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
	"github.com/wieslawsoltes/DxfParser-sub001/style"
	"github.com/wieslawsoltes/DxfParser-sub001/text"
)

// Render converts a scene into a frame. The scene is only read; concurrent
// calls on the same scene are safe.
//
// The only errors are ErrNilScene and ErrInvalidSurface. Problems with
// individual entities are counted in Frame.Stats and never fail the call.
func Render(s *scene.Scene, opts ...Option) (*Frame, error) {
	if s == nil {
		return nil, ErrNilScene
	}
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSurface, o.width, o.height)
	}

	b := newBuilder(s, o)
	entities, root := b.start()
	b.log.Debug("dxfrender: render",
		"frame", b.frame.ID,
		"layout", b.frame.Layout,
		"entities", len(entities),
		"visual_style", b.visual.Name)

	b.run(entities, root)
	b.tessellate()
	b.project()

	st := b.frame.Stats
	b.log.Debug("dxfrender: frame ready",
		"frame", b.frame.ID,
		"polylines", len(b.frame.Polylines),
		"fills", len(b.frame.Fills),
		"texts", len(b.frame.Texts),
		"entities", st.Entities,
		"skipped", st.Skipped,
		"depth_stops", st.DepthStops,
		"cycle_stops", st.CycleStops)
	return b.frame, nil
}

// builder holds the state of one render call.
type builder struct {
	scene    *scene.Scene
	opts     options
	log      *slog.Logger
	caches   *Caches
	styles   *style.Resolver
	coords   *coords.Resolver
	layouter text.Layouter
	visual   style.VisualStyle

	frame    *Frame
	work     []item
	bounds   geom.Bounds    // world bounds of finite geometry
	infinite []infiniteLine // construction lines sized once the view is known

	dimSettings map[string]dimension.Settings
}

func newBuilder(s *scene.Scene, o options) *builder {
	caches := o.caches
	if caches == nil {
		caches = NewCaches()
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}
	layouter := o.layouter
	if layouter == nil {
		layouter = text.FixedWidth{}
	}
	return &builder{
		scene:       s,
		opts:        o,
		log:         log,
		caches:      caches,
		styles:      style.NewResolver(s, o.layerStates, caches.Materials),
		coords:      coords.NewResolver(s, caches.Matrices),
		layouter:    layouter,
		frame:       &Frame{ID: uuid.New()},
		dimSettings: make(map[string]dimension.Settings),
	}
}

// start selects model space or the requested layout and resolves the
// visual style.
func (b *builder) start() ([]scene.Entity, *instance) {
	var (
		xform       = b.coords.WorldMatrix()
		entities    []scene.Entity
		paper       bool
		layoutStyle string
	)
	if ref := b.opts.layout; ref != "" {
		l, ok := b.scene.Tables.Layout(ref)
		switch {
		case !ok:
			b.log.Warn("dxfrender: layout not found, drawing model space", "layout", ref)
		case !l.IsModel():
			xform, _ = b.coords.LayoutMatrix(ref)
			entities = b.scene.LayoutEntities(l)
			paper = true
			layoutStyle = l.VisualStyle
			b.frame.Layout = l.Name
		}
	}
	if !paper {
		entities = b.scene.ModelEntities()
	}

	vp := b.coords.ActiveViewport()
	b.visual = style.ResolveVisualStyle(&b.scene.Tables, style.VisualStyleRequest{
		Override: b.opts.visualStyle,
		Viewport: vp.VisualStyle,
		Layout:   layoutStyle,
	})
	b.frame.VisualStyle = b.visual
	return entities, rootInstance(xform, drawingUnits(&b.scene.Header), paper)
}

// run drains the work stack. Items are pushed in reverse so entities are
// visited in drawing order, block contents in place of their reference.
func (b *builder) run(entities []scene.Entity, root *instance) {
	b.push(entities, root)
	for len(b.work) > 0 {
		n := len(b.work) - 1
		it := b.work[n]
		b.work = b.work[:n]
		b.visit(it)
	}
}

func (b *builder) push(entities []scene.Entity, ctx *instance) {
	for i := len(entities) - 1; i >= 0; i-- {
		if entities[i] != nil {
			b.work = append(b.work, item{entity: entities[i], ctx: ctx})
		}
	}
}

// mark records the frame lengths so a failed entity can be rolled back.
type mark struct {
	polylines, fills, points, texts, pickables int
	infinite, work                             int
	bounds                                     geom.Bounds
}

func (b *builder) mark() mark {
	f := b.frame
	return mark{
		polylines: len(f.Polylines),
		fills:     len(f.Fills),
		points:    len(f.Points),
		texts:     len(f.Texts),
		pickables: len(f.Pickables),
		infinite:  len(b.infinite),
		work:      len(b.work),
		bounds:    b.bounds,
	}
}

func (b *builder) rollback(m mark) {
	f := b.frame
	f.Polylines = f.Polylines[:m.polylines]
	f.Fills = f.Fills[:m.fills]
	f.Points = f.Points[:m.points]
	f.Texts = f.Texts[:m.texts]
	f.Pickables = f.Pickables[:m.pickables]
	b.infinite = b.infinite[:m.infinite]
	b.work = b.work[:m.work]
	b.bounds = m.bounds
}

func (b *builder) visit(it item) {
	st := &b.frame.Stats
	st.Entities++
	m := b.mark()
	defer func() {
		if r := recover(); r != nil {
			b.rollback(m)
			st.Skipped++
			handle, kind := describe(it.entity)
			b.log.Warn("dxfrender: entity skipped", "handle", handle, "kind", kind, "panic", r)
		}
	}()

	c := it.entity.Base()
	if c.Invisible {
		st.Hidden++
		return
	}
	layer := b.styles.EffectiveLayer(c, it.ctx.inherit)
	if !b.styles.LayerVisible(layer) || it.ctx.frozenLayer(layer) {
		st.Hidden++
		return
	}
	if ins, ok := it.entity.(*scene.Insert); ok {
		b.insert(ins, it.ctx, layer)
		return
	}
	if !b.isolationAdmits(c, it.ctx) {
		st.Hidden++
		return
	}
	e := b.emitter(it, layer)
	b.dispatch(e)
	e.finish()
}

// isolationAdmits applies the isolated block and handle sets.
func (b *builder) isolationAdmits(c *scene.Common, ctx *instance) bool {
	if len(b.opts.isolatedBlocks) == 0 && len(b.opts.isolatedHandles) == 0 {
		return true
	}
	return ctx.isolated || b.opts.isolatedHandles[scene.Key(c.Handle)]
}

func (b *builder) selected(c *scene.Common, ctx *instance) bool {
	return ctx.selected || b.opts.selected[scene.Key(c.Handle)]
}

// describe reads an entity's handle and kind for logging without trusting
// the entity.
func describe(e scene.Entity) (handle, kind string) {
	defer func() {
		if recover() != nil {
			handle = ""
		}
	}()
	kind = e.Kind().String()
	return e.Base().Handle, kind
}

// dispatch routes an entity to its geometry handler.
func (b *builder) dispatch(e *emitter) {
	switch ent := e.entity.(type) {
	case *scene.Line:
		e.line(ent)
	case *scene.XLine:
		e.xline(ent.Origin, ent.Direction, false)
	case *scene.Ray:
		e.xline(ent.Origin, ent.Direction, true)
	case *scene.Point:
		e.point(ent)
	case *scene.Circle:
		e.circle(ent)
	case *scene.Arc:
		e.arc(ent)
	case *scene.Ellipse:
		e.ellipse(ent)
	case *scene.LWPolyline:
		e.lwpolyline(ent)
	case *scene.Polyline:
		e.polyline(ent)
	case *scene.Spline:
		e.spline(ent)
	case *scene.Helix:
		e.helix(ent)
	case *scene.MLine:
		e.mline(ent)
	case *scene.Text:
		e.text(ent)
	case *scene.Attrib:
		e.text(&ent.Text)
	case *scene.AttDef:
		e.attdef(ent)
	case *scene.MText:
		e.mtext(ent)
	case *scene.Tolerance:
		e.tolerance(ent)
	case *scene.Table:
		e.table(ent)
	case *scene.Hatch:
		e.hatch(ent)
	case *scene.Solid:
		e.solid(ent.Corners)
	case *scene.Trace:
		e.solid(ent.Corners)
	case *scene.Face3D:
		e.face3D(ent)
	case *scene.Wipeout:
		e.wipeout(ent)
	case *scene.Image:
		e.image(ent)
	case *scene.Underlay:
		e.underlay(ent)
	case *scene.OLE2Frame:
		e.ole2Frame(ent)
	case *scene.Mesh:
		e.mesh(ent.MeshData)
	case *scene.Solid3D:
		e.solid3D(ent)
	case *scene.PolySolid:
		e.polySolid(ent)
	case *scene.Dimension:
		b.dimension(ent, e)
	case *scene.Leader:
		e.leader(ent)
	case *scene.MLeader:
		b.mleader(ent, e)
	case *scene.Viewport:
		b.viewport(ent, e)
	default:
		b.log.Debug("dxfrender: unsupported entity", "kind", e.entity.Kind().String())
	}
}
