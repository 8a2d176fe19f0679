package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/wieslawsoltes/DxfParser-sub001/cache"
)

// shapeSize is the size runs are shaped at; widths are scaled from it.
const shapeSize = 64

// Shaper measures text with HarfBuzz shaping.
//
// The parsed font.Font is shared; a font.Face is created per call because
// faces are not safe for concurrent use. HarfbuzzShaper instances are pooled
// for the same reason. Measured line widths are memoized.
type Shaper struct {
	font       *font.Font
	shaperPool sync.Pool
	widths     *cache.Cache[string, float64]
}

// NewShaper parses TrueType or OpenType data. A nil data uses Go Regular.
func NewShaper(data []byte) (*Shaper, error) {
	if data == nil {
		data = goregular.TTF
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Shaper{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		widths: cache.New[string, float64](4096),
	}, nil
}

// Layout implements Layouter.
func (s *Shaper) Layout(req Request) Layout {
	return layout(req, s.measure)
}

// Advance returns the advance width of line at height 1.
func (s *Shaper) Advance(line string) float64 {
	return s.measure(line)
}

func (s *Shaper) measure(line string) float64 {
	if line == "" {
		return 0
	}
	if w, ok := s.widths.Get(line); ok {
		return w
	}
	w := s.shape(line)
	s.widths.Set(line, w)
	return w
}

func (s *Shaper) shape(line string) float64 {
	runes := []rune(line)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      fixed.I(shapeSize),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)

	adv := out.Advance
	if adv < 0 {
		adv = -adv
	}
	return float64(adv) / 64 / shapeSize
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
