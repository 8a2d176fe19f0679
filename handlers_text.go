package dxfrender

import (
	"math"
	"strings"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
	"github.com/wieslawsoltes/DxfParser-sub001/text"
)

// textBlock is a measured block of text in a local frame.
type textBlock struct {
	frame   geom.Matrix // local text frame, x along the baseline
	offset  geom.Vec2   // top-left corner in the local frame
	layout  text.Layout
	content string
	style   string
	height  float64
	width   float64 // width factor
	oblique float64 // radians
}

// emitText places a measured block. The local frame's scale applies to
// every length.
func (e *emitter) emitText(tb textBlock) {
	l := tb.layout
	if len(l.Lines) == 0 {
		return
	}
	o := tb.offset
	local := [4]geom.Vec2{
		o,
		o.Add(geom.V2(l.Width, 0)),
		o.Add(geom.V2(l.Width, -l.Height)),
		o.Add(geom.V2(0, -l.Height)),
	}
	var corners [4]geom.Vec2
	for i, p := range local {
		corners[i] = tb.frame.TransformPoint2(p)
	}
	s := tb.frame.UniformScale2D()
	e.textRun(Text{
		Content:       tb.content,
		Lines:         l.Lines,
		Style:         tb.style,
		WorldPosition: corners[0],
		WorldHeight:   tb.height * s,
		Rotation:      tb.frame.Rotation2D(),
		WidthFactor:   tb.width,
		Oblique:       tb.oblique,
		Width:         l.Width * s,
		BlockHeight:   l.Height * s,
		LineHeight:    l.LineHeight * s,
	}, corners)
}

// textStyle returns the style entry of a text entity, falling back to the
// drawing's current style.
func (e *emitter) textStyle(name string) *scene.TextStyle {
	if name == "" {
		name = e.b.scene.Header.TextStyle
	}
	st, _ := e.b.scene.Tables.TextStyle(name)
	return st
}

func (e *emitter) measure(content, style string, height, widthFactor, refWidth, spacing float64) text.Layout {
	return e.b.layouter.Layout(text.Request{
		Content:        content,
		Style:          style,
		Height:         height,
		WidthFactor:    widthFactor,
		ReferenceWidth: refWidth,
		LineSpacing:    spacing,
	})
}

func (e *emitter) text(t *scene.Text) {
	content := text.PlainText(t.Content)
	if strings.TrimSpace(content) == "" {
		return
	}
	st := e.textStyle(t.Style)
	h := t.Height
	if h <= 0 && st != nil {
		h = st.Height
	}
	if h <= 0 {
		return
	}
	wf := t.WidthFactor
	if wf <= 0 && st != nil {
		wf = st.WidthFactor
	}
	if wf <= 0 {
		wf = 1
	}
	oblique := t.Oblique
	if oblique == 0 && st != nil {
		oblique = st.Oblique
	}

	anchor := t.Position.XY()
	rot := t.Rotation * deg
	aligned := t.HAlign != scene.AlignLeft || t.VAlign != scene.VAlignBaseline
	if aligned && t.HasAlign {
		anchor = t.AlignPoint.XY()
	}

	l := e.measure(content, t.Style, h, wf, 0, 0)
	if len(l.Lines) == 0 || l.Width <= 0 {
		return
	}

	var dx float64
	switch t.HAlign {
	case scene.AlignAligned, scene.AlignFit:
		// Both fit the text between the insertion and alignment points:
		// aligned scales the height, fit stretches the width.
		anchor = t.Position.XY()
		if span := t.AlignPoint.XY().Sub(anchor); t.HasAlign && span.Length() > geom.Epsilon {
			rot = span.Angle()
			f := span.Length() / l.Width
			if t.HAlign == scene.AlignAligned {
				h *= f
			} else {
				wf *= f
			}
			l = e.measure(content, t.Style, h, wf, 0, 0)
		}
	case scene.AlignCenter, scene.AlignMiddle:
		dx = -l.Width / 2
	case scene.AlignRight:
		dx = -l.Width
	}
	var dy float64
	switch {
	case t.HAlign == scene.AlignMiddle, t.VAlign == scene.VAlignMiddle:
		dy = h / 2
	case t.VAlign == scene.VAlignTop:
		dy = 0
	default:
		dy = h
	}

	frame := e.elevated(t.Position.Z).
		Multiply(geom.Translate(anchor.X, anchor.Y, 0)).
		Multiply(geom.RotateZ(rot))
	e.emitText(textBlock{
		frame:   frame,
		offset:  geom.V2(dx, dy),
		layout:  l,
		content: content,
		style:   t.Style,
		height:  h,
		width:   wf,
		oblique: oblique * deg,
	})
}

// attdef draws an attribute definition's tag. Definitions only show where
// the block itself is drawn, not through references.
func (e *emitter) attdef(a *scene.AttDef) {
	if e.ctx.depth > 0 {
		e.quiet = true
		return
	}
	t := a.Text
	if t.Content == "" {
		t.Content = a.Tag
	}
	e.text(&t)
}

func (e *emitter) mtext(t *scene.MText) {
	content := text.PlainMText(t.Content)
	if strings.TrimSpace(content) == "" {
		return
	}
	st := e.textStyle(t.Style)
	h := t.Height
	if h <= 0 && st != nil {
		h = st.Height
	}
	if h <= 0 {
		return
	}
	wf := 1.0
	if st != nil && st.WidthFactor > 0 {
		wf = st.WidthFactor
	}
	l := e.measure(content, t.Style, h, wf, t.Width, t.LineSpacing)
	if len(l.Lines) == 0 {
		return
	}

	m := e.xform()
	rot := t.Rotation * deg
	if d := t.Direction.XY(); d.Length() > geom.Epsilon {
		rot = d.Angle()
	}
	p := t.Position
	frame := m.Multiply(geom.Translate(p.X, p.Y, p.Z)).Multiply(geom.RotateZ(rot))
	e.emitText(textBlock{
		frame:   frame,
		offset:  text.AttachmentOffset(t.Attachment, l.Width, l.Height),
		layout:  l,
		content: content,
		style:   t.Style,
		height:  h,
		width:   wf,
	})
}

// tolerance draws a feature control frame: one row per line of content,
// one box per field.
func (e *emitter) tolerance(t *scene.Tolerance) {
	h := t.Height
	if h <= 0 {
		h = e.b.dimensionSettings(t.Style, nil, nil).TextHeight
	}
	if h <= 0 || strings.TrimSpace(t.Content) == "" {
		return
	}
	rot := 0.0
	if d := t.Direction.XY(); d.Length() > geom.Epsilon {
		rot = d.Angle()
	}
	p := t.Position
	frame := e.xform().Multiply(geom.Translate(p.X, p.Y, p.Z)).Multiply(geom.RotateZ(rot))

	gap := h / 2
	rowH := 2 * h
	rows := strings.Split(strings.ReplaceAll(t.Content, "^J", "\n"), "\n")
	for r, row := range rows {
		top := -float64(r) * rowH
		x := 0.0
		for _, field := range strings.Split(row, "%%v") {
			content := text.PlainMText(field)
			l := e.measure(content, t.Style, h, 1, 0, 0)
			w := l.Width + 2*gap
			if strings.TrimSpace(content) == "" {
				w = rowH
			}
			box := []geom.Vec2{
				geom.V2(x, top), geom.V2(x+w, top),
				geom.V2(x+w, top-rowH), geom.V2(x, top-rowH),
			}
			e.stroke(frame, box, true)
			if len(l.Lines) > 0 && strings.TrimSpace(content) != "" {
				e.emitText(textBlock{
					frame:   frame,
					offset:  geom.V2(x+gap, top-(rowH-h)/2),
					layout:  l,
					content: content,
					style:   t.Style,
					height:  h,
					width:   1,
				})
			}
			x += w
		}
	}
}

// table draws the grid of an ACAD_TABLE and its cell contents. Rows grow
// downward from the insertion point.
func (e *emitter) table(t *scene.Table) {
	if len(t.RowHeights) == 0 || len(t.ColumnWidths) == 0 {
		return
	}
	rot := 0.0
	if d := t.Direction.XY(); d.Length() > geom.Epsilon {
		rot = d.Angle()
	}
	p := t.Position
	frame := e.xform().Multiply(geom.Translate(p.X, p.Y, p.Z)).Multiply(geom.RotateZ(rot))

	var width, height float64
	for _, w := range t.ColumnWidths {
		width += math.Max(w, 0)
	}
	for _, h := range t.RowHeights {
		height += math.Max(h, 0)
	}
	if width <= 0 || height <= 0 {
		return
	}

	y := 0.0
	e.stroke(frame, []geom.Vec2{geom.V2(0, 0), geom.V2(width, 0)}, false)
	for _, h := range t.RowHeights {
		y -= math.Max(h, 0)
		e.stroke(frame, []geom.Vec2{geom.V2(0, y), geom.V2(width, y)}, false)
	}
	x := 0.0
	e.stroke(frame, []geom.Vec2{geom.V2(0, 0), geom.V2(0, -height)}, false)
	for _, w := range t.ColumnWidths {
		x += math.Max(w, 0)
		e.stroke(frame, []geom.Vec2{geom.V2(x, 0), geom.V2(x, -height)}, false)
	}

	th := t.TextHeight
	if th <= 0 {
		th = e.b.dimensionSettings("", nil, nil).TextHeight
	}
	top := 0.0
	for r, row := range t.Cells {
		if r >= len(t.RowHeights) {
			break
		}
		rh := math.Max(t.RowHeights[r], 0)
		left := 0.0
		for c, cell := range row {
			if c >= len(t.ColumnWidths) {
				break
			}
			cw := math.Max(t.ColumnWidths[c], 0)
			content := text.PlainMText(cell)
			if strings.TrimSpace(content) != "" {
				pad := th / 2
				l := e.measure(content, t.Style, th, 1, math.Max(cw-2*pad, 0), 0)
				e.emitText(textBlock{
					frame:   frame,
					offset:  geom.V2(left+pad, top-pad),
					layout:  l,
					content: content,
					style:   t.Style,
					height:  th,
					width:   1,
				})
			}
			left += cw
		}
		top -= rh
	}
}
