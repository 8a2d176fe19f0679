package dxfrender

import "github.com/wieslawsoltes/DxfParser-sub001/geom"

// clipRegion is a block clip boundary in world coordinates.
type clipRegion struct {
	ring     []geom.Vec2 // closed
	bounds   geom.Bounds
	inverted bool
}

// clipStack is the list of clip regions inherited down a chain of block
// references. It is immutable: push returns a new stack sharing its parent,
// so sibling branches never see each other's regions. A nil stack clips
// nothing.
//
// Regions only cull. Geometry that may be partly visible is kept whole.
type clipStack struct {
	region clipRegion
	parent *clipStack
	depth  int
}

// push returns a stack with ring added on top. Rings with fewer than three
// distinct points are ignored.
func (c *clipStack) push(ring []geom.Vec2, inverted bool) *clipStack {
	ring = geom.Dedupe(geom.Open(ring), geom.Epsilon)
	if len(ring) < 3 {
		return c
	}
	ring = geom.Close(ring)
	return &clipStack{
		region: clipRegion{ring: ring, bounds: geom.BoundsOf(ring...), inverted: inverted},
		parent: c,
		depth:  c.len() + 1,
	}
}

func (c *clipStack) len() int {
	if c == nil {
		return 0
	}
	return c.depth
}

// visible reports whether geometry through pts, with bounds b, can show
// through every region on the stack.
func (c *clipStack) visible(pts []geom.Vec2, b geom.Bounds) bool {
	for s := c; s != nil; s = s.parent {
		if !s.region.admits(pts, b) {
			return false
		}
	}
	return true
}

func (r clipRegion) admits(pts []geom.Vec2, b geom.Bounds) bool {
	if !b.Valid {
		return true
	}
	if r.inverted {
		if !b.Intersects(r.bounds) {
			return true
		}
		for _, p := range pts {
			if !geom.PointInPolygon(p, r.ring) {
				return true
			}
		}
		return crosses(pts, r.ring)
	}

	if !b.Intersects(r.bounds) {
		return false
	}
	for _, p := range pts {
		if geom.PointInPolygon(p, r.ring) {
			return true
		}
	}
	for _, p := range r.ring {
		if b.Contains(p) {
			return true
		}
	}
	return crosses(pts, r.ring)
}

// crosses reports whether any segment of path intersects any edge of ring.
func crosses(path, ring []geom.Vec2) bool {
	for i := 0; i+1 < len(path); i++ {
		for j := 0; j+1 < len(ring); j++ {
			if segmentsIntersect(path[i], path[i+1], ring[j], ring[j+1]) {
				return true
			}
		}
	}
	return false
}

func segmentsIntersect(a, b, c, d geom.Vec2) bool {
	d1 := orient(c, d, a)
	d2 := orient(c, d, b)
	d3 := orient(a, b, c)
	d4 := orient(a, b, d)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(c, d, a)) || (d2 == 0 && onSegment(c, d, b)) ||
		(d3 == 0 && onSegment(a, b, c)) || (d4 == 0 && onSegment(a, b, d))
}

func orient(a, b, p geom.Vec2) float64 {
	return b.Sub(a).Cross(p.Sub(a))
}

func onSegment(a, b, p geom.Vec2) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

// clipRing expands an XCLIP boundary: two points are opposite corners of a
// rectangle.
func clipRing(boundary []geom.Vec2) []geom.Vec2 {
	if len(boundary) == 2 {
		a, b := boundary[0], boundary[1]
		return []geom.Vec2{a, geom.V2(b.X, a.Y), b, geom.V2(a.X, b.Y), a}
	}
	return boundary
}
