package style

// Central defaults used when data is missing or unresolvable.
var (
	// DefaultColor is used when neither the entity nor its layer yields a color.
	DefaultColor = Color{R: 173, G: 216, B: 230, A: 1}
	// HighlightColor marks selected entities.
	HighlightColor = Color{R: 255, G: 200, B: 0, A: 1}
	// BackgroundColor is the assumed surface color for wipeouts and
	// hidden-line face fills.
	BackgroundColor = Color{R: 33, G: 40, B: 48, A: 1}
	// MonochromeEdgeColor is the edge color of monochrome visual styles.
	MonochromeEdgeColor = Color{R: 0, G: 0, B: 0, A: 1}
)

const (
	// DefaultLineweight is the lineweight in millimeters for LWDEFAULT 0.
	DefaultLineweight = 0.25
	// DefaultLinetypeScale applies when a scale is zero or unset.
	DefaultLinetypeScale = 1.0

	LinetypeByLayer    = "BYLAYER"
	LinetypeByBlock    = "BYBLOCK"
	LinetypeContinuous = "CONTINUOUS"

	// DefaultVisualStyle is the preset used when nothing else resolves.
	DefaultVisualStyle = "shaded"
)
