package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieslawsoltes/DxfParser-sub001/style"
)

func TestResourcePoolDedupesColors(t *testing.T) {
	p := NewResourcePool()
	red := style.Color{R: 255, A: 1}
	blue := style.Color{B: 255, A: 1}

	r1 := p.AddColor(red)
	r2 := p.AddColor(blue)
	r3 := p.AddColor(red)
	assert.Equal(t, ColorRef(0), r1)
	assert.Equal(t, ColorRef(1), r2)
	assert.Equal(t, r1, r3)
	assert.Equal(t, 2, p.Len())

	c, ok := p.Color(r2)
	require.True(t, ok)
	assert.Equal(t, blue, c)

	_, ok = p.Color(InvalidColor)
	assert.False(t, ok)
	_, ok = p.Color(ColorRef(7))
	assert.False(t, ok)

	// Alpha is part of the identity.
	assert.NotEqual(t, r1, p.AddColor(red.WithAlpha(0.5)))
}

func TestPoolFromKeepsIndices(t *testing.T) {
	red := style.Color{R: 255, A: 1}
	p := poolFrom([]style.Color{red, red, {G: 1, A: 1}})
	assert.Equal(t, 3, p.Len())
	c, ok := p.Color(1)
	require.True(t, ok)
	assert.Equal(t, red, c)
	assert.Equal(t, ColorRef(0), p.AddColor(red))
}
