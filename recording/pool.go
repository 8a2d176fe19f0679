package recording

import (
	"github.com/wieslawsoltes/DxfParser-sub001/style"
)

// ResourcePool stores the colors referenced by commands. Equal colors share
// one entry.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	colors []style.Color
	index  map[style.Color]ColorRef
}

// NewResourcePool creates an empty pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		colors: make([]style.Color, 0, 16),
		index:  make(map[style.Color]ColorRef, 16),
	}
}

// AddColor returns the reference of c, adding it when it is new.
func (p *ResourcePool) AddColor(c style.Color) ColorRef {
	if ref, ok := p.index[c]; ok {
		return ref
	}
	// #nosec G115 -- pool size is bounded by the palette of one frame
	ref := ColorRef(uint32(len(p.colors)))
	p.colors = append(p.colors, c)
	p.index[c] = ref
	return ref
}

// Color returns the color for ref.
func (p *ResourcePool) Color(ref ColorRef) (style.Color, bool) {
	if !ref.IsValid() || int(ref) >= len(p.colors) {
		return style.Color{}, false
	}
	return p.colors[ref], true
}

// Colors returns the pooled colors in reference order.
func (p *ResourcePool) Colors() []style.Color {
	return p.colors
}

// Len returns the number of pooled colors.
func (p *ResourcePool) Len() int {
	return len(p.colors)
}

func poolFrom(colors []style.Color) *ResourcePool {
	p := NewResourcePool()
	for _, c := range colors {
		// Decoded pools may repeat colors; keep indices stable.
		// #nosec G115 -- bounded by the decoded slice
		ref := ColorRef(uint32(len(p.colors)))
		p.colors = append(p.colors, c)
		if _, ok := p.index[c]; !ok {
			p.index[c] = ref
		}
	}
	return p
}
