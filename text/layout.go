package text

import (
	"math"
	"strings"
	"unicode"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

// DefaultLineSpacing is the baseline-to-baseline distance as a multiple of
// the text height.
const DefaultLineSpacing = 5.0 / 3.0

// Request describes a text primitive to measure. Lengths are drawing units.
type Request struct {
	Content        string // plain content; lines separated by '\n'
	Style          string
	Height         float64
	WidthFactor    float64 // 0 means 1
	ReferenceWidth float64 // wrap width, 0 disables wrapping
	LineSpacing    float64 // multiple of DefaultLineSpacing, 0 means 1
}

// Layout is a measured text block. Width and Height enclose all lines.
type Layout struct {
	Lines      []string
	Widths     []float64
	Width      float64
	Height     float64
	LineHeight float64
}

// LineCount returns the number of laid-out lines.
func (l Layout) LineCount() int { return len(l.Lines) }

// Layouter measures text.
type Layouter interface {
	Layout(req Request) Layout
}

// measureFunc returns the advance width of one line at height 1.
type measureFunc func(line string) float64

// layout splits, wraps and measures req with measure.
func layout(req Request, measure measureFunc) Layout {
	h := req.Height
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return Layout{}
	}
	wf := req.WidthFactor
	if wf <= 0 {
		wf = 1
	}
	spacing := DefaultLineSpacing
	if req.LineSpacing > 0 {
		spacing *= req.LineSpacing
	}
	width := func(s string) float64 { return measure(s) * h * wf }

	var out Layout
	for _, para := range strings.Split(req.Content, "\n") {
		if req.ReferenceWidth > 0 {
			out.Lines = append(out.Lines, wrap(para, req.ReferenceWidth, width)...)
			continue
		}
		out.Lines = append(out.Lines, para)
	}

	out.Widths = make([]float64, len(out.Lines))
	for i, line := range out.Lines {
		out.Widths[i] = width(line)
		out.Width = math.Max(out.Width, out.Widths[i])
	}
	out.LineHeight = h * spacing
	out.Height = h
	if n := len(out.Lines); n > 1 {
		out.Height = h + float64(n-1)*out.LineHeight
	}
	return out
}

// wrap breaks a paragraph at spaces so that no line exceeds limit, unless a
// single word is wider on its own.
func wrap(para string, limit float64, width func(string) float64) []string {
	words := strings.FieldsFunc(para, unicode.IsSpace)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		next := cur + " " + w
		if width(next) > limit {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = next
	}
	return append(lines, cur)
}

// AttachmentOffset returns the position of the block's top-left corner
// relative to the insertion point for an MTEXT attachment 1..9, in the text's
// local frame with Y up.
func AttachmentOffset(attachment int, width, height float64) geom.Vec2 {
	if attachment < 1 || attachment > 9 {
		attachment = 1
	}
	col := (attachment - 1) % 3
	row := (attachment - 1) / 3
	return geom.Vec2{
		X: -float64(col) * width / 2,
		Y: float64(row) * height / 2,
	}
}
