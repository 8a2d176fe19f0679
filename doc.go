// Package dxfrender turns a parsed CAD drawing into a flat frame of
// drawable primitives.
//
// # Overview
//
// [Render] walks a [scene.Scene] once and returns a [Frame]: screen-space
// polylines, filled contours with their triangulation, point markers and
// laid-out text, plus one [Pickable] per primitive for hit testing. The
// frame is plain data. Drawing surfaces consume it; this package never
// draws.
//
// # Quick Start
//
//	frame, err := dxfrender.Render(s,
//	    dxfrender.WithSurface(1280, 800),
//	    dxfrender.WithSelection("2F"),
//	)
//	if err != nil {
//	    return err
//	}
//	for _, pl := range frame.Polylines {
//	    // stroke pl.Points with pl.Color and pl.Dashes
//	}
//
// # Traversal
//
// Block references are expanded with an explicit work stack. Each item
// carries an immutable block context: the composed transform, the blocks
// already on the path, inherited by-block style, active units and the clip
// regions of enclosing references. Nesting stops at [MaxBlockDepth] and a
// block that references itself is not entered again.
//
// # Failure Policy
//
// Only a nil scene or an unusable surface size is reported as an error.
// Once traversal starts every entity is best effort: degenerate geometry is
// dropped, a failing handler is recovered and counted in [Stats.Skipped],
// and the rest of the frame continues.
//
// # Coordinate System
//
// World coordinates have Y up. Screen coordinates have the origin at the
// top-left corner of the surface with Y down. [ViewState.Screen] maps one to
// the other.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package dxfrender
