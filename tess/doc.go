// Package tess is the tessellation engine: it turns closed contours, mesh
// faces and swept profiles into triangle lists plus outline loops suitable
// for stroking.
//
// Polygon fills are triangulated by Earcut, an ear-clipping triangulator
// with hole bridging and a Z-order spatial index. Hatch boundaries with many
// edges and holes make naive O(n²) ear clipping a bottleneck, so rings above
// 80 vertices are always indexed. Degenerate input never fails: when ear
// clipping produces nothing, Triangulate falls back to a closing fan over
// the first loop.
package tess
