// Package raster provides a raster backend for the recording system. It
// scan-converts commands with golang.org/x/image/vector and writes PNG.
//
// # Supported Features
//
//   - Strokes with lineweights, per-segment widths and dash patterns
//   - Fills with holes (nonzero winding)
//   - Point markers
//   - Text blocks, drawn as translucent boxes
//
// Gradient and pattern fills arrive flattened to one color.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/wieslawsoltes/DxfParser-sub001/recording/backends/raster"
//
//	b, _ := recording.NewBackend("raster")
//	_ = rec.Playback(b)
//	_, _ = b.(io.WriterTo).WriteTo(f)
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/recording"
	"github.com/wieslawsoltes/DxfParser-sub001/style"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// DPI converts lineweights in millimeters to pixels.
const DPI = 96

// textAlpha is the opacity of text placeholder boxes.
const textAlpha = 0.35

// ErrNotStarted is returned when drawing before Begin.
var ErrNotStarted = errors.New("raster: Begin not called")

// Backend renders recordings to an RGBA image.
type Backend struct {
	// Background fills the surface on Begin. The zero value leaves it
	// transparent.
	Background style.Color

	img *image.RGBA
	z   *vector.Rasterizer
}

var (
	_ recording.Backend = (*Backend)(nil)
	_ io.WriterTo       = (*Backend)(nil)
)

// NewBackend creates a raster backend with the default background.
func NewBackend() *Backend {
	return &Backend{Background: style.BackgroundColor}
}

// Begin allocates the image.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	b.z = vector.NewRasterizer(width, height)
	if b.Background.A > 0 {
		xdraw.Draw(b.img, b.img.Bounds(), image.NewUniform(nrgba(b.Background)), image.Point{}, xdraw.Src)
	}
	return nil
}

// End finishes rendering.
func (b *Backend) End() error {
	if b.img == nil {
		return ErrNotStarted
	}
	return nil
}

// Image returns the rendered image, nil before Begin.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// Draw executes one command.
func (b *Backend) Draw(cmd recording.Command, c style.Color) error {
	if b.img == nil {
		return ErrNotStarted
	}
	switch cmd.Type {
	case recording.CmdStroke:
		b.stroke(cmd, c)
	case recording.CmdFill:
		b.fill(cmd.Contours, c)
	case recording.CmdPoint:
		b.point(cmd, c)
	case recording.CmdText:
		if len(cmd.Points) == 4 {
			b.fill([][]geom.Vec2{cmd.Points}, c.WithAlpha(c.A*textAlpha))
		}
	default:
		return fmt.Errorf("raster: unknown command %s", cmd.Type)
	}
	return nil
}

// LineWidth converts a lineweight in millimeters to pixels, at least one.
func LineWidth(mm float64) float64 {
	return math.Max(mm*DPI/25.4, 1)
}

func (b *Backend) stroke(cmd recording.Command, c style.Color) {
	pts := cmd.Points
	if len(pts) < 2 {
		return
	}
	if cmd.Closed {
		pts = geom.Close(pts)
	}
	b.z.Reset(b.img.Bounds().Dx(), b.img.Bounds().Dy())
	if len(cmd.Widths) >= len(pts)-1 && anyWide(cmd.Widths) {
		for i := 0; i+1 < len(pts); i++ {
			w := cmd.Widths[i]
			b.quad(pts[i], pts[i+1], math.Max(w[0], 1)/2, math.Max(w[1], 1)/2)
		}
	} else {
		half := LineWidth(cmd.Lineweight) / 2
		for _, piece := range Dash(pts, cmd.Dashes) {
			for i := 0; i+1 < len(piece); i++ {
				b.quad(piece[i], piece[i+1], half, half)
			}
		}
	}
	b.paint(c)
}

func anyWide(ws [][2]float64) bool {
	for _, w := range ws {
		if w[0] > 0 || w[1] > 0 {
			return true
		}
	}
	return false
}

// quad adds a segment widened by h0 at a and h1 at b. A zero-length
// segment becomes a square dot.
func (b *Backend) quad(p0, p1 geom.Vec2, h0, h1 float64) {
	d := p1.Sub(p0)
	if d.Length() < 1e-9 {
		b.rect(p0, h0)
		return
	}
	n := d.Perp().Normalize(geom.V2(0, 1))
	corners := [4]geom.Vec2{
		p0.Add(n.Scale(h0)),
		p1.Add(n.Scale(h1)),
		p1.Sub(n.Scale(h1)),
		p0.Sub(n.Scale(h0)),
	}
	b.polygon(corners[:])
}

func (b *Backend) rect(p geom.Vec2, h float64) {
	// Same winding as quad so overlapping dots and segments add up.
	b.polygon([]geom.Vec2{
		p.Add(geom.V2(-h, h)), p.Add(geom.V2(h, h)),
		p.Add(geom.V2(h, -h)), p.Add(geom.V2(-h, -h)),
	})
}

func (b *Backend) polygon(pts []geom.Vec2) {
	if len(pts) < 3 {
		return
	}
	b.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		b.z.LineTo(float32(p.X), float32(p.Y))
	}
	b.z.ClosePath()
}

func (b *Backend) fill(contours [][]geom.Vec2, c style.Color) {
	if len(contours) == 0 {
		return
	}
	b.z.Reset(b.img.Bounds().Dx(), b.img.Bounds().Dy())
	for _, ring := range contours {
		b.polygon(geom.Open(ring))
	}
	b.paint(c)
}

// point draws a dot, plus a cross for the marker modes that have one.
func (b *Backend) point(cmd recording.Command, c style.Color) {
	if len(cmd.Points) == 0 {
		return
	}
	p := cmd.Points[0]
	b.z.Reset(b.img.Bounds().Dx(), b.img.Bounds().Dy())
	b.rect(p, 1)
	r := cmd.Size / 2
	switch cmd.Mode % 32 {
	case 2:
		b.quad(p.Add(geom.V2(-r, 0)), p.Add(geom.V2(r, 0)), 0.5, 0.5)
		b.quad(p.Add(geom.V2(0, -r)), p.Add(geom.V2(0, r)), 0.5, 0.5)
	case 3:
		b.quad(p.Add(geom.V2(-r, -r)), p.Add(geom.V2(r, r)), 0.5, 0.5)
		b.quad(p.Add(geom.V2(-r, r)), p.Add(geom.V2(r, -r)), 0.5, 0.5)
	case 4:
		b.quad(p, p.Add(geom.V2(0, -r)), 0.5, 0.5)
	}
	b.paint(c)
}

func (b *Backend) paint(c style.Color) {
	b.z.DrawOp = xdraw.Over
	b.z.Draw(b.img, b.img.Bounds(), image.NewUniform(nrgba(c)), image.Point{})
}

func nrgba(c style.Color) color.NRGBA {
	a := math.Round(math.Min(math.Max(c.A, 0), 1) * 255)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// Dash splits a path into the drawn pieces of a dash pattern. Positive
// entries are dashes, negative entries gaps and zeros dots, which come back
// as zero-length pieces. An empty or all-zero pattern returns the path.
func Dash(pts []geom.Vec2, pattern []float64) [][]geom.Vec2 {
	var total float64
	for _, d := range pattern {
		total += math.Abs(d)
	}
	if len(pts) < 2 || total < 1e-9 {
		return [][]geom.Vec2{pts}
	}

	var (
		out  [][]geom.Vec2
		cur  []geom.Vec2
		i    int
		left = math.Abs(pattern[0])
		on   = pattern[0] >= 0
	)
	if on {
		cur = []geom.Vec2{pts[0]}
	}
	for s := 0; s+1 < len(pts); s++ {
		a, c := pts[s], pts[s+1]
		seg := c.Sub(a).Length()
		pos := 0.0
		for seg-pos > left {
			pos += left
			p := a.Lerp(c, pos/seg)
			if on {
				out = append(out, append(cur, p))
				cur = nil
			}
			i = (i + 1) % len(pattern)
			left = math.Abs(pattern[i])
			on = pattern[i] >= 0
			if on {
				cur = []geom.Vec2{p}
			}
		}
		left -= seg - pos
		if on {
			cur = append(cur, c)
		}
	}
	if len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
