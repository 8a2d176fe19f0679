package text

import runewidth "github.com/mattn/go-runewidth"

// DefaultCharAspect is the width of one terminal cell relative to the text
// height.
const DefaultCharAspect = 0.6

// FixedWidth estimates text extents from cell widths. East Asian wide
// characters count as two cells.
type FixedWidth struct {
	// CharAspect is the cell width relative to the height; 0 means
	// DefaultCharAspect.
	CharAspect float64
}

// Layout implements Layouter.
func (f FixedWidth) Layout(req Request) Layout {
	aspect := f.CharAspect
	if aspect <= 0 {
		aspect = DefaultCharAspect
	}
	return layout(req, func(line string) float64 {
		return float64(runewidth.StringWidth(line)) * aspect
	})
}
