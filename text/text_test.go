package text

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"%%c50", "Ø50"},
		{"90%%d", "90°"},
		{"%%P0.1", "±0.1"},
		{"%%uunder%%u", "under"},
		{"100%%%", "100%"},
		{"%%065BC", "ABC"},
		{"50%", "50%"},
		{"%%", "%%"},
		{"%%z", "%%z"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}

func TestPlainMText(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"paragraphs", `First\PSecond`, "First\nSecond"},
		{"formatting", `{\fArial|b1|i0;\H2.5x;Bold}\C1; red`, "Bold red"},
		{"stacked", `1\S1^2; in`, "11/2 in"},
		{"escapes", `a\\b\{c\}`, `a\b{c}`},
		{"underline", `\Lunder\l`, "under"},
		{"unicode", `\U+00B1 5`, "± 5"},
		{"nbsp", `a\~b`, "a b"},
		{"percent codes", `%%c10`, "Ø10"},
		{"alignment", `\A1;centered`, "centered"},
		{"trailing backslash", `end\`, "end"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainMText(tt.in))
		})
	}
}

func TestFixedWidthLayout(t *testing.T) {
	f := FixedWidth{}

	l := f.Layout(Request{Content: "abcd", Height: 2})
	require.Equal(t, 1, l.LineCount())
	assert.InDelta(t, 4*0.6*2, l.Width, 1e-12)
	assert.InDelta(t, 2, l.Height, 1e-12)

	wide := f.Layout(Request{Content: "日本", Height: 1})
	assert.InDelta(t, 4*0.6, wide.Width, 1e-12)

	multi := f.Layout(Request{Content: "ab\nabcdef", Height: 3, WidthFactor: 0.5})
	assert.Equal(t, 2, multi.LineCount())
	assert.InDelta(t, 6*0.6*3*0.5, multi.Width, 1e-12)
	assert.InDelta(t, 3+3*DefaultLineSpacing, multi.Height, 1e-12)

	assert.Equal(t, 0, f.Layout(Request{Content: "x"}).LineCount())
}

func TestWrap(t *testing.T) {
	f := FixedWidth{CharAspect: 1}
	l := f.Layout(Request{Content: "aa bb cc dddddd", Height: 1, ReferenceWidth: 5})
	assert.Equal(t, []string{"aa bb", "cc", "dddddd"}, l.Lines)
	assert.InDelta(t, 6, l.Width, 1e-12)
}

func TestShaperLayout(t *testing.T) {
	s, err := NewShaper(nil)
	require.NoError(t, err)

	short := s.Layout(Request{Content: "Hi", Height: 10})
	long := s.Layout(Request{Content: "Hello, World", Height: 10})
	require.Equal(t, 1, long.LineCount())
	assert.Greater(t, short.Width, 0.0)
	assert.Greater(t, long.Width, short.Width)
	assert.Less(t, long.Width, 12*10.0, "proportional glyphs are narrower than the em")

	double := s.Layout(Request{Content: "Hello, World", Height: 20})
	assert.InDelta(t, 2*long.Width, double.Width, 1e-9)

	_, err = NewShaper([]byte("not a font"))
	assert.Error(t, err)
}

func TestShaperConcurrent(t *testing.T) {
	s, err := NewShaper(nil)
	require.NoError(t, err)
	want := s.Advance("concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				assert.InDelta(t, want, s.Advance("concurrent"), 1e-12)
				s.Advance(string(rune('a' + j)))
			}
		}()
	}
	wg.Wait()
}

func TestAttachmentOffset(t *testing.T) {
	tests := []struct {
		attachment int
		want       geom.Vec2
	}{
		{1, geom.V2(0, 0)},
		{2, geom.V2(-5, 0)},
		{3, geom.V2(-10, 0)},
		{5, geom.V2(-5, 2)},
		{9, geom.V2(-10, 4)},
		{0, geom.V2(0, 0)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AttachmentOffset(tt.attachment, 10, 4), "attachment %d", tt.attachment)
	}
}
