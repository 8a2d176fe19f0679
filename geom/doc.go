// Package geom is the geometry kernel shared by every stage of the frame
// pipeline.
//
// It provides 2D and 3D vectors, a row-major 4x4 affine Matrix, axis-aligned
// bounds, closed contours, and the curve samplers used to flatten CAD
// geometry into point sequences:
//
//   - circular and elliptical arcs, sampled at a step proportional to sweep
//   - bulge-encoded polyline segments (angle = 4*atan(bulge))
//   - B-spline and NURBS curves via the Cox-de Boor recursion, with a
//     Catmull-Rom fallback through fit points
//
// Every sampler returns a finite, fully materialized slice. Degenerate input
// (zero radius, zero-length vectors) never divides by zero: samplers return a
// single point or nil, and Normalize takes a caller-supplied fallback
// direction for magnitudes below Epsilon.
package geom

// Epsilon is the magnitude below which vectors are treated as degenerate.
const Epsilon = 1e-9
