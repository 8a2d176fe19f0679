package style

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/wieslawsoltes/DxfParser-sub001/scene"
)

// Color is an 8-bit RGB color with a straight alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// RGBColor converts a true color to an opaque Color.
func RGBColor(c scene.RGB) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// ParseHex parses "#rrggbb" into an opaque color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("style: parse color %q: %w", s, err)
	}
	return fromColorful(c, 1), nil
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Luminance returns the Rec. 601 luma in [0, 1].
func (c Color) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// Desaturate blends c toward the gray of equal luminance. amount 0 keeps the
// color, 1 yields the gray.
func (c Color) Desaturate(amount float64) Color {
	l := c.Luminance()
	gray := colorful.Color{R: l, G: l, B: l}
	return fromColorful(c.colorful().BlendRgb(gray, clamp01(amount)), c.A)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// fromColorful truncates channels to 8 bits, matching how the indexed
// palette is tabulated.
func fromColorful(c colorful.Color, a float64) Color {
	c = c.Clamped()
	return Color{
		R: uint8(c.R*255 + 1e-9),
		G: uint8(c.G*255 + 1e-9),
		B: uint8(c.B*255 + 1e-9),
		A: a,
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
