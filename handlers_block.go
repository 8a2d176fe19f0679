package dxfrender

import (
	"math"
	"strings"

	"github.com/wieslawsoltes/DxfParser-sub001/coords"
	"github.com/wieslawsoltes/DxfParser-sub001/dimension"
	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
	"github.com/wieslawsoltes/DxfParser-sub001/style"
	"github.com/wieslawsoltes/DxfParser-sub001/text"
)

// maxArrayCells caps the cells expanded for one MINSERT.
const maxArrayCells = 1 << 14

// guard looks up a block for expansion below ctx. It refuses blocks that
// are missing, already on the path, or would exceed MaxBlockDepth.
func (b *builder) guard(ctx *instance, name, handle string) (*scene.Block, bool) {
	blk, ok := b.scene.Block(name)
	if !ok {
		b.log.Debug("dxfrender: block not found", "block", name, "handle", handle)
		return nil, false
	}
	st := &b.frame.Stats
	if ctx.onPath(name) {
		st.CycleStops++
		b.log.Warn("dxfrender: cyclic block reference", "block", name, "handle", handle, "path", ctx.stack)
		return nil, false
	}
	if ctx.depth >= MaxBlockDepth {
		st.DepthStops++
		b.log.Warn("dxfrender: block nesting too deep", "block", name, "handle", handle, "depth", ctx.depth)
		return nil, false
	}
	return blk, true
}

// inheritFrom returns the by-block properties an entity passes to the
// contents of the block it references.
func (b *builder) inheritFrom(c *scene.Common, ctx *instance, layer string) style.Inherited {
	return style.Inherited{
		Color:         b.styles.Color(c, ctx.inherit),
		HasColor:      true,
		Lineweight:    b.styles.Lineweight(c, ctx.inherit),
		HasLineweight: true,
		Linetype:      b.styles.Linetype(c, ctx.inherit).Name,
		Layer:         layer,
	}
}

// blockUnits returns the INSUNITS of a block's record, cached per scene.
func (b *builder) blockUnits(blk *scene.Block) Unit {
	c := b.caches.BlockUnits
	c.Bind(b.scene)
	return c.GetOrCreate(scene.Key(blk.Name), func() Unit {
		t := &b.scene.Tables
		if rec, ok := t.BlockRecord(blk.Record); ok {
			return Unit(rec.Units)
		}
		if rec, ok := t.BlockRecord(blk.Name); ok {
			return Unit(rec.Units)
		}
		return Unitless
	})
}

func (b *builder) uniformScale(blk *scene.Block) bool {
	t := &b.scene.Tables
	if rec, ok := t.BlockRecord(blk.Record); ok {
		return rec.UniformScale
	}
	if rec, ok := t.BlockRecord(blk.Name); ok {
		return rec.UniformScale
	}
	return false
}

// insert expands a block reference. Attributes are drawn after the block
// contents, array cells in row-major order.
func (b *builder) insert(ins *scene.Insert, ctx *instance, layer string) {
	c := &ins.Common
	selected := b.selected(c, ctx)
	isolated := b.opts.isolatedHandles[scene.Key(c.Handle)] || b.opts.isolatedBlocks[scene.Key(ins.Block)]

	if len(ins.Attribs) > 0 {
		actx := ctx
		if (selected && !ctx.selected) || (isolated && !ctx.isolated) {
			cp := *ctx
			cp.selected = ctx.selected || selected
			cp.isolated = ctx.isolated || isolated
			actx = &cp
		}
		attribs := make([]scene.Entity, 0, len(ins.Attribs))
		for _, a := range ins.Attribs {
			if a != nil {
				attribs = append(attribs, a)
			}
		}
		b.push(attribs, actx)
	}

	blk, ok := b.guard(ctx, ins.Block, c.Handle)
	if !ok {
		return
	}
	b.frame.Stats.Inserts++

	factor, units := insertUnits(&b.scene.Header, b.blockUnits(blk), ctx.units)
	sx, sy, sz := orOne(ins.Scale.X), orOne(ins.Scale.Y), orOne(ins.Scale.Z)
	if b.uniformScale(blk) {
		sy, sz = sx, sx
	}
	base := ctx.xform.Multiply(ocsMatrix(c.Normal())).
		Multiply(geom.TranslateVec(ins.Position)).
		Multiply(geom.RotateZ(ins.Rotation * deg))
	local := geom.Scale(sx*factor, sy*factor, sz*factor).
		Multiply(geom.TranslateVec(blk.BasePoint.Neg()))

	cols, rows := max(ins.Columns, 1), max(ins.Rows, 1)
	if cols*rows > maxArrayCells {
		b.log.Warn("dxfrender: block array truncated", "handle", c.Handle, "cells", cols*rows)
		rows = max(maxArrayCells/cols, 1)
		cols = min(cols, maxArrayCells)
	}
	inh := b.inheritFrom(c, ctx, layer)
	for i := cols*rows - 1; i >= 0; i-- {
		row, col := i/cols, i%cols
		xform := base.
			Multiply(geom.Translate(float64(col)*ins.ColumnSpacing, float64(row)*ins.RowSpacing, 0)).
			Multiply(local)
		clips := ctx.clips
		if ins.Clip != nil && len(ins.Clip.Boundary) >= 2 {
			clips = clips.push(xform.TransformPoints2(clipRing(ins.Clip.Boundary)), ins.Clip.Inverted)
		}
		b.push(blk.Entities, ctx.enter(child{
			block:    ins.Block,
			xform:    xform,
			inherit:  inh,
			units:    units,
			clips:    clips,
			selected: selected,
			isolated: isolated,
		}))
	}
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func ocsMatrix(n geom.Vec3) geom.Matrix {
	m, _ := coords.OCSMatrix(n)
	return m
}

// blockAt queues a block drawn at xform on behalf of the emitting entity.
func (e *emitter) blockAt(name string, xform geom.Matrix) bool {
	b := e.b
	blk, ok := b.guard(e.ctx, name, e.common.Handle)
	if !ok {
		return false
	}
	b.frame.Stats.Inserts++
	b.push(blk.Entities, e.ctx.enter(child{
		block:    name,
		xform:    xform.Multiply(geom.TranslateVec(blk.BasePoint.Neg())),
		inherit:  b.inheritFrom(e.common, e.ctx, e.layer),
		units:    e.ctx.units,
		clips:    e.ctx.clips,
		selected: e.highlighted,
	}))
	return true
}

// dimensionSettings resolves a dimension style with per-entity overrides.
// Styles are resolved once per render.
func (b *builder) dimensionSettings(name string, num map[string]float64, str map[string]string) dimension.Settings {
	if name == "" {
		name = b.scene.Header.DimStyle
	}
	key := scene.Key(name)
	s, ok := b.dimSettings[key]
	if !ok {
		st, _ := b.scene.Tables.DimStyle(name)
		s = dimension.FromStyle(st)
		b.dimSettings[key] = s
	}
	if len(num) > 0 || len(str) > 0 {
		s = s.Apply(num, str)
	}
	return s
}

// dimColor applies a dimension style color to a part of the dimension.
func (e *emitter) dimColor(ci scene.ColorIndex) style.Color {
	if e.highlighted || ci <= 0 || ci >= 256 {
		return e.color
	}
	return style.ACI(int(ci)).WithAlpha(e.color.A)
}

// drawArrow draws an arrowhead given in the coordinates of m. Block
// arrowheads are instantiated when the block exists.
func (e *emitter) drawArrow(m geom.Matrix, a dimension.Arrow, color style.Color) {
	if a.Kind == dimension.ArrowNone {
		return
	}
	if a.Kind == dimension.ArrowBlock {
		xform := m.Multiply(geom.Translate(a.Tip.X, a.Tip.Y, 0)).
			Multiply(geom.RotateZ(a.Rotation())).
			Multiply(geom.Scale(a.Size, a.Size, a.Size))
		if e.blockAt(a.Block, xform) {
			return
		}
	}
	for _, l := range a.Lines {
		e.path(m.TransformPoints2(l), false, nil, color)
	}
}

func (b *builder) dimension(d *scene.Dimension, e *emitter) {
	if b.opts.preferDimensionBlocks && d.Block != "" {
		if _, ok := b.scene.Block(d.Block); ok {
			e.quiet = e.blockAt(d.Block, e.xform())
			if e.quiet {
				return
			}
		}
	}
	s := b.dimensionSettings(d.Style, d.Overrides, d.StringOverrides)
	g, ok := dimension.Build(d, s)
	if !ok {
		return
	}
	m := e.xform()
	lineColor, extColor := e.dimColor(s.LineColor), e.dimColor(s.ExtColor)
	for _, l := range g.DimLines {
		e.path(m.TransformPoints2(l), false, nil, lineColor)
	}
	for _, l := range g.ExtLines {
		e.path(m.TransformPoints2(l), false, nil, extColor)
	}
	for _, a := range g.Arrows {
		e.drawArrow(m, a, lineColor)
	}

	lb := g.Label
	content := text.PlainMText(lb.Content)
	if strings.TrimSpace(content) == "" || lb.Height <= 0 {
		return
	}
	l := e.measure(content, s.TextStyle, lb.Height, 1, 0, 0)
	frame := m.Multiply(geom.Translate(lb.Position.X, lb.Position.Y, 0)).Multiply(geom.RotateZ(lb.Rotation))
	color := e.color
	e.color = e.dimColor(s.TextColor)
	e.emitText(textBlock{
		frame:   frame,
		offset:  geom.V2(-l.Width/2, l.Height/2),
		layout:  l,
		content: content,
		style:   s.TextStyle,
		height:  lb.Height,
		width:   1,
	})
	e.color = color
}

func (b *builder) mleader(ml *scene.MLeader, e *emitter) {
	m := e.xform()
	s := b.dimensionSettings("", nil, nil)
	size := ml.ArrowSize
	if size <= 0 {
		size = s.ArrowSize
	}
	for _, pts := range ml.Leaders {
		if len(pts) < 2 {
			continue
		}
		e.stroke3(m, pts, false)
		if ml.Arrow {
			tip, from := pts[0].XY(), pts[1].XY()
			e.drawArrow(m, dimension.NewArrow(tip, tip.Sub(from), "", size, 0), e.color)
		}
		if ml.DoglegLength > 0 {
			land := pts[len(pts)-1]
			dir := 1.0
			if ml.Content != "" && ml.TextPosition.X < land.X {
				dir = -1
			}
			end := land.Add(geom.V3(dir*ml.DoglegLength, 0, 0))
			e.stroke3(m, []geom.Vec3{land, end}, false)
		}
	}

	if content := text.PlainMText(ml.Content); strings.TrimSpace(content) != "" {
		h := ml.TextHeight
		if h <= 0 {
			h = s.TextHeight
		}
		l := e.measure(content, ml.TextStyle, h, 1, 0, 0)
		p := ml.TextPosition
		e.emitText(textBlock{
			frame:   m.Multiply(geom.TranslateVec(p)),
			layout:  l,
			content: content,
			style:   ml.TextStyle,
			height:  h,
			width:   1,
		})
	}
	if ml.Block != "" {
		sc := ml.BlockScale
		xform := m.Multiply(geom.TranslateVec(ml.BlockPos)).
			Multiply(geom.RotateZ(ml.BlockRot * deg)).
			Multiply(geom.Scale(orOne(sc.X), orOne(sc.Y), orOne(sc.Z)))
		e.blockAt(ml.Block, xform)
	}
}

// viewport draws a paper-space viewport's border and the model entities
// seen through it, clipped to the border. Viewport 1 is the sheet itself.
func (b *builder) viewport(vp *scene.Viewport, e *emitter) {
	if !e.ctx.paper || vp.ID == 1 {
		e.quiet = true
		return
	}
	hw, hh := vp.Width/2, vp.Height/2
	if hw <= 0 || hh <= 0 {
		return
	}
	c := vp.Center.XY()
	rect := []geom.Vec2{
		c.Add(geom.V2(-hw, -hh)), c.Add(geom.V2(hw, -hh)),
		c.Add(geom.V2(hw, hh)), c.Add(geom.V2(-hw, hh)),
	}
	m := e.xform()
	e.stroke(m, rect, true)

	if vp.Off || vp.ViewHeight <= geom.Epsilon || e.ctx.vpScale > 0 {
		return
	}
	scale := vp.Height / vp.ViewHeight
	view := m.Multiply(geom.Translate(c.X, c.Y, vp.Center.Z)).
		Multiply(geom.Scale(scale, scale, scale)).
		Multiply(geom.RotateZ(vp.Twist * deg)).
		Multiply(geom.Translate(-vp.ViewCenter.X, -vp.ViewCenter.Y, 0)).
		Multiply(b.coords.WorldMatrix())

	frozen := make([]string, 0, len(vp.FrozenLayer))
	for _, l := range vp.FrozenLayer {
		frozen = append(frozen, scene.Key(l))
	}
	b.push(b.scene.ModelEntities(), &instance{
		xform:    view,
		depth:    e.ctx.depth,
		path:     e.ctx.path,
		stack:    e.ctx.stack,
		units:    drawingUnits(&b.scene.Header),
		clips:    e.ctx.clips.push(m.TransformPoints2(rect), false),
		selected: e.ctx.selected,
		isolated: e.ctx.isolated,
		vpScale:  math.Abs(scale),
		frozen:   frozen,
	})
}
