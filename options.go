package dxfrender

import (
	"log/slog"

	"github.com/wieslawsoltes/DxfParser-sub001/cache"
	"github.com/wieslawsoltes/DxfParser-sub001/coords"
	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
	"github.com/wieslawsoltes/DxfParser-sub001/style"
	"github.com/wieslawsoltes/DxfParser-sub001/text"
)

// Default surface size used when WithSurface is not given.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Option configures a Render call.
//
// Example:
//
//	frame, err := dxfrender.Render(s,
//	    dxfrender.WithSurface(800, 600),
//	    dxfrender.WithLayout("Layout1"),
//	)
type Option func(*options)

// View is an explicit camera: the world point at the surface center, the
// world height visible on the surface and a rotation in radians.
type View struct {
	Center   geom.Vec2
	Height   float64
	Rotation float64
}

// Caches holds the lookups that may be shared between render calls. Each
// cache drops its contents when it is used with a different source table.
type Caches struct {
	Matrices   *coords.MatrixCache
	Materials  *style.MaterialCache
	BlockUnits *cache.Bound[string, Unit]
}

// NewCaches returns empty caches.
func NewCaches() *Caches {
	return &Caches{
		Matrices:   coords.NewMatrixCache(),
		Materials:  style.NewMaterialCache(),
		BlockUnits: cache.NewBound[string, Unit](256),
	}
}

type options struct {
	width, height int
	view          *View
	margin        float64

	layout string

	selected        map[string]bool
	isolatedBlocks  map[string]bool
	isolatedHandles map[string]bool
	layerStates     map[string]style.LayerState

	layouter    text.Layouter
	visualStyle string
	highlight   style.Color

	caches  *Caches
	workers int
	logger  *slog.Logger

	preferDimensionBlocks bool
}

func defaultOptions() options {
	return options{
		width:     DefaultWidth,
		height:    DefaultHeight,
		margin:    0.05,
		highlight: style.HighlightColor,
	}
}

// WithSurface sets the target surface size in screen units.
func WithSurface(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithView fixes the camera instead of using the active viewport or fitting
// the drawing.
func WithView(v View) Option {
	return func(o *options) {
		o.view = &v
	}
}

// WithMargin sets the fraction of the surface left empty around a fitted
// drawing.
func WithMargin(fraction float64) Option {
	return func(o *options) {
		if fraction >= 0 && fraction < 0.5 {
			o.margin = fraction
		}
	}
}

// WithLayout renders a paper-space layout by name, handle or block record
// instead of model space.
func WithLayout(ref string) Option {
	return func(o *options) {
		o.layout = ref
	}
}

// WithSelection highlights the entities with the given handles. Selecting a
// block reference highlights everything it draws.
func WithSelection(handles ...string) Option {
	return func(o *options) {
		o.selected = keySet(o.selected, handles)
	}
}

// WithIsolatedBlocks draws only geometry inside references to the named
// blocks.
func WithIsolatedBlocks(names ...string) Option {
	return func(o *options) {
		o.isolatedBlocks = keySet(o.isolatedBlocks, names)
	}
}

// WithIsolatedHandles draws only the entities with the given handles and
// the contents of block references among them.
func WithIsolatedHandles(handles ...string) Option {
	return func(o *options) {
		o.isolatedHandles = keySet(o.isolatedHandles, handles)
	}
}

// WithLayerStates overrides layer visibility, lock and transparency for
// this call.
func WithLayerStates(states map[string]style.LayerState) Option {
	return func(o *options) {
		o.layerStates = states
	}
}

// WithTextLayouter sets the text measuring collaborator. Without one, text
// is measured with a fixed-width estimate.
func WithTextLayouter(l text.Layouter) Option {
	return func(o *options) {
		o.layouter = l
	}
}

// WithVisualStyle overrides the visual style by preset keyword or table
// name.
func WithVisualStyle(name string) Option {
	return func(o *options) {
		o.visualStyle = name
	}
}

// WithHighlightColor sets the color of selected geometry.
func WithHighlightColor(c style.Color) Option {
	return func(o *options) {
		o.highlight = c
	}
}

// WithCaches shares caches between render calls.
func WithCaches(c *Caches) Option {
	return func(o *options) {
		o.caches = c
	}
}

// WithWorkers tessellates fills on n goroutines. n <= 1 tessellates on the
// calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger logs this call to l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPreferDimensionBlocks draws a dimension's anonymous block when it
// exists instead of synthesizing the geometry.
func WithPreferDimensionBlocks(prefer bool) Option {
	return func(o *options) {
		o.preferDimensionBlocks = prefer
	}
}

func keySet(dst map[string]bool, keys []string) map[string]bool {
	if dst == nil {
		dst = make(map[string]bool, len(keys))
	}
	for _, k := range keys {
		if k = scene.Key(k); k != "" {
			dst[k] = true
		}
	}
	return dst
}
