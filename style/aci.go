package style

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// palette is the 256-entry indexed color table. Index 0 (by block) holds
// white and is never looked up directly.
var palette = buildPalette()

var aciBase = [10]Color{
	{255, 255, 255, 1},
	{255, 0, 0, 1},
	{255, 255, 0, 1},
	{0, 255, 0, 1},
	{0, 255, 255, 1},
	{0, 0, 255, 1},
	{255, 0, 255, 1},
	{255, 255, 255, 1},
	{128, 128, 128, 1},
	{192, 192, 192, 1},
}

var aciGrays = [6]uint8{51, 91, 132, 173, 214, 255}

// aciValues are the brightness levels of the five shade pairs per hue.
var aciValues = [5]float64{1, 0.65, 0.5, 0.3, 0.15}

func buildPalette() [256]Color {
	var p [256]Color
	copy(p[:], aciBase[:])
	for i := 10; i < 250; i++ {
		off := i - 10
		hue := float64(off/10) * 15
		sat := 1.0
		if off%2 == 1 {
			sat = 0.5
		}
		val := aciValues[(off%10)/2]
		p[i] = fromColorful(colorful.Hsv(hue, sat, val), 1)
	}
	for i, g := range aciGrays {
		p[250+i] = Color{R: g, G: g, B: g, A: 1}
	}
	return p
}

// ACI returns the palette color for index 1..255. Out-of-range indices,
// including the by-block and by-layer codes, yield DefaultColor.
func ACI(index int) Color {
	if index < 1 || index > 255 {
		return DefaultColor
	}
	return palette[index]
}
