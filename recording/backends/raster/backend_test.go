package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/recording"
	"github.com/wieslawsoltes/DxfParser-sub001/style"
)

var (
	red  = style.Color{R: 255, A: 1}
	blue = style.Color{B: 255, A: 1}
)

func square(x0, y0, x1, y1 float64) []geom.Vec2 {
	return []geom.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestRegistered(t *testing.T) {
	assert.True(t, recording.IsRegistered("raster"))
	b, err := recording.NewBackend("raster")
	require.NoError(t, err)
	assert.IsType(t, &Backend{}, b)
}

func TestBeginValidatesSize(t *testing.T) {
	b := NewBackend()
	assert.Error(t, b.Begin(0, 10))
	assert.ErrorIs(t, b.Draw(recording.Command{}, red), ErrNotStarted)
	assert.ErrorIs(t, b.End(), ErrNotStarted)
	_, err := b.WriteTo(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestFillWithHole(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Begin(20, 20))
	outer := square(2, 2, 18, 18)
	hole := []geom.Vec2{{X: 8, Y: 8}, {X: 8, Y: 12}, {X: 12, Y: 12}, {X: 12, Y: 8}}
	require.NoError(t, b.Draw(recording.Command{Type: recording.CmdFill, Contours: [][]geom.Vec2{outer, hole}}, red))
	require.NoError(t, b.End())

	img := b.Image()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(4, 4))
	bg := style.BackgroundColor
	assert.Equal(t, color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}, img.RGBAAt(10, 10), "hole")
	assert.Equal(t, color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}, img.RGBAAt(0, 0))
}

func TestStroke(t *testing.T) {
	b := NewBackend()
	b.Background = style.Color{}
	require.NoError(t, b.Begin(20, 20))
	cmd := recording.Command{
		Type:       recording.CmdStroke,
		Points:     []geom.Vec2{{X: 2, Y: 10}, {X: 18, Y: 10}},
		Lineweight: 3 * 25.4 / DPI,
	}
	require.NoError(t, b.Draw(cmd, blue))

	img := b.Image()
	assert.GreaterOrEqual(t, img.RGBAAt(10, 10).B, uint8(250))
	assert.Zero(t, img.RGBAAt(10, 2).A, "transparent background")
	assert.Zero(t, img.RGBAAt(0, 10).A)
}

func TestWideStroke(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Begin(20, 20))
	cmd := recording.Command{
		Type:   recording.CmdStroke,
		Points: []geom.Vec2{{X: 0, Y: 10}, {X: 20, Y: 10}},
		Widths: [][2]float64{{8, 8}},
	}
	require.NoError(t, b.Draw(cmd, red))
	assert.GreaterOrEqual(t, b.Image().RGBAAt(10, 7).R, uint8(250))
}

func TestTextIsTranslucentBox(t *testing.T) {
	b := NewBackend()
	b.Background = style.Color{R: 255, G: 255, B: 255, A: 1}
	require.NoError(t, b.Begin(10, 10))
	cmd := recording.Command{Type: recording.CmdText, Points: square(0, 0, 10, 10), Text: "x"}
	require.NoError(t, b.Draw(cmd, style.Color{A: 1}))
	px := b.Image().RGBAAt(5, 5)
	assert.Less(t, px.R, uint8(255))
	assert.Greater(t, px.R, uint8(0))
}

func TestUnknownCommand(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Begin(4, 4))
	assert.Error(t, b.Draw(recording.Command{Type: recording.CommandType(99)}, red))
}

func TestWriteToPNG(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Begin(8, 6))
	require.NoError(t, b.Draw(recording.Command{Type: recording.CmdPoint, Points: []geom.Vec2{{X: 4, Y: 3}}, Size: 4, Mode: 2}, red))
	require.NoError(t, b.End())

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
}

func TestDash(t *testing.T) {
	line := []geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}
	tests := []struct {
		name    string
		pattern []float64
		starts  []float64
		ends    []float64
	}{
		{"continuous", nil, []float64{0}, []float64{10}},
		{"dash gap", []float64{2, -2}, []float64{0, 4, 8}, []float64{2, 6, 10}},
		{"dots", []float64{0, -4}, []float64{0, 4, 8}, []float64{0, 4, 8}},
		{"gap first", []float64{-3, 3}, []float64{3, 9}, []float64{6, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces := Dash(line, tt.pattern)
			require.Len(t, pieces, len(tt.starts))
			for i, p := range pieces {
				assert.InDelta(t, tt.starts[i], p[0].X, 1e-9)
				assert.InDelta(t, tt.ends[i], p[len(p)-1].X, 1e-9)
			}
		})
	}
}

func TestDashAcrossVertices(t *testing.T) {
	path := []geom.Vec2{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}}
	pieces := Dash(path, []float64{4, -1})
	require.Len(t, pieces, 2)
	require.Len(t, pieces[0], 3, "first dash turns the corner")
	assert.True(t, pieces[0][2].Near(geom.V2(3, 1), 1e-9))
	assert.True(t, pieces[1][0].Near(geom.V2(3, 2), 1e-9))
}

func TestLineWidth(t *testing.T) {
	assert.Equal(t, 1.0, LineWidth(0))
	assert.InDelta(t, 96/25.4, LineWidth(1), 1e-9)
}
